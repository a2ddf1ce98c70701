package binary

import "github.com/wasmcursor/wasmbin/internal/wasm"

// TeeDelegate forwards every event to two delegates in order, A then B,
// stopping at the first error (OnSetState has no error to stop on, so it
// always reaches both). Useful for driving a diagnostic LoggingDelegate
// alongside a real consumer without changing DecodeModule's call site.
type TeeDelegate struct {
	A, B Delegate
}

var _ Delegate = TeeDelegate{}

func (t TeeDelegate) OnSetState(offset int) {
	t.A.OnSetState(offset)
	t.B.OnSetState(offset)
}

func (t TeeDelegate) BeginModule(version uint32) error {
	if err := t.A.BeginModule(version); err != nil {
		return err
	}
	return t.B.BeginModule(version)
}

func (t TeeDelegate) EndModule() error {
	if err := t.A.EndModule(); err != nil {
		return err
	}
	return t.B.EndModule()
}

func (t TeeDelegate) OnError(message string) bool {
	handledA := t.A.OnError(message)
	handledB := t.B.OnError(message)
	return handledA || handledB
}

func (t TeeDelegate) BeginTypeSection(size uint32) error {
	if err := t.A.BeginTypeSection(size); err != nil {
		return err
	}
	return t.B.BeginTypeSection(size)
}

func (t TeeDelegate) OnTypeCount(n wasm.Index) error {
	if err := t.A.OnTypeCount(n); err != nil {
		return err
	}
	return t.B.OnTypeCount(n)
}

func (t TeeDelegate) OnType(index wasm.Index, params, results []wasm.ValueType) error {
	if err := t.A.OnType(index, params, results); err != nil {
		return err
	}
	return t.B.OnType(index, params, results)
}

func (t TeeDelegate) EndTypeSection() error {
	if err := t.A.EndTypeSection(); err != nil {
		return err
	}
	return t.B.EndTypeSection()
}

func (t TeeDelegate) BeginImportSection(size uint32) error {
	if err := t.A.BeginImportSection(size); err != nil {
		return err
	}
	return t.B.BeginImportSection(size)
}

func (t TeeDelegate) OnImportCount(n wasm.Index) error {
	if err := t.A.OnImportCount(n); err != nil {
		return err
	}
	return t.B.OnImportCount(n)
}

func (t TeeDelegate) OnImport(index wasm.Index, module, field string) error {
	if err := t.A.OnImport(index, module, field); err != nil {
		return err
	}
	return t.B.OnImport(index, module, field)
}

func (t TeeDelegate) OnImportFunc(index wasm.Index, module, field string, funcIndex, sigIndex wasm.Index) error {
	if err := t.A.OnImportFunc(index, module, field, funcIndex, sigIndex); err != nil {
		return err
	}
	return t.B.OnImportFunc(index, module, field, funcIndex, sigIndex)
}

func (t TeeDelegate) OnImportTable(index wasm.Index, module, field string, tableIndex wasm.Index, elemType wasm.ValueType, limits wasm.Limits) error {
	if err := t.A.OnImportTable(index, module, field, tableIndex, elemType, limits); err != nil {
		return err
	}
	return t.B.OnImportTable(index, module, field, tableIndex, elemType, limits)
}

func (t TeeDelegate) OnImportMemory(index wasm.Index, module, field string, memoryIndex wasm.Index, limits wasm.Limits) error {
	if err := t.A.OnImportMemory(index, module, field, memoryIndex, limits); err != nil {
		return err
	}
	return t.B.OnImportMemory(index, module, field, memoryIndex, limits)
}

func (t TeeDelegate) OnImportGlobal(index wasm.Index, module, field string, globalIndex wasm.Index, typ wasm.ValueType, mutable bool) error {
	if err := t.A.OnImportGlobal(index, module, field, globalIndex, typ, mutable); err != nil {
		return err
	}
	return t.B.OnImportGlobal(index, module, field, globalIndex, typ, mutable)
}

func (t TeeDelegate) OnImportException(index wasm.Index, module, field string, exceptionIndex wasm.Index, sig []wasm.ValueType) error {
	if err := t.A.OnImportException(index, module, field, exceptionIndex, sig); err != nil {
		return err
	}
	return t.B.OnImportException(index, module, field, exceptionIndex, sig)
}

func (t TeeDelegate) EndImportSection() error {
	if err := t.A.EndImportSection(); err != nil {
		return err
	}
	return t.B.EndImportSection()
}

func (t TeeDelegate) BeginFunctionSection(size uint32) error {
	if err := t.A.BeginFunctionSection(size); err != nil {
		return err
	}
	return t.B.BeginFunctionSection(size)
}

func (t TeeDelegate) OnFunctionCount(n wasm.Index) error {
	if err := t.A.OnFunctionCount(n); err != nil {
		return err
	}
	return t.B.OnFunctionCount(n)
}

func (t TeeDelegate) OnFunction(index, sigIndex wasm.Index) error {
	if err := t.A.OnFunction(index, sigIndex); err != nil {
		return err
	}
	return t.B.OnFunction(index, sigIndex)
}

func (t TeeDelegate) EndFunctionSection() error {
	if err := t.A.EndFunctionSection(); err != nil {
		return err
	}
	return t.B.EndFunctionSection()
}

func (t TeeDelegate) BeginTableSection(size uint32) error {
	if err := t.A.BeginTableSection(size); err != nil {
		return err
	}
	return t.B.BeginTableSection(size)
}

func (t TeeDelegate) OnTableCount(n wasm.Index) error {
	if err := t.A.OnTableCount(n); err != nil {
		return err
	}
	return t.B.OnTableCount(n)
}

func (t TeeDelegate) OnTable(index wasm.Index, elemType wasm.ValueType, limits wasm.Limits) error {
	if err := t.A.OnTable(index, elemType, limits); err != nil {
		return err
	}
	return t.B.OnTable(index, elemType, limits)
}

func (t TeeDelegate) EndTableSection() error {
	if err := t.A.EndTableSection(); err != nil {
		return err
	}
	return t.B.EndTableSection()
}

func (t TeeDelegate) BeginMemorySection(size uint32) error {
	if err := t.A.BeginMemorySection(size); err != nil {
		return err
	}
	return t.B.BeginMemorySection(size)
}

func (t TeeDelegate) OnMemoryCount(n wasm.Index) error {
	if err := t.A.OnMemoryCount(n); err != nil {
		return err
	}
	return t.B.OnMemoryCount(n)
}

func (t TeeDelegate) OnMemory(index wasm.Index, limits wasm.Limits) error {
	if err := t.A.OnMemory(index, limits); err != nil {
		return err
	}
	return t.B.OnMemory(index, limits)
}

func (t TeeDelegate) EndMemorySection() error {
	if err := t.A.EndMemorySection(); err != nil {
		return err
	}
	return t.B.EndMemorySection()
}

func (t TeeDelegate) BeginGlobalSection(size uint32) error {
	if err := t.A.BeginGlobalSection(size); err != nil {
		return err
	}
	return t.B.BeginGlobalSection(size)
}

func (t TeeDelegate) OnGlobalCount(n wasm.Index) error {
	if err := t.A.OnGlobalCount(n); err != nil {
		return err
	}
	return t.B.OnGlobalCount(n)
}

func (t TeeDelegate) BeginGlobal(index wasm.Index, typ wasm.ValueType, mutable bool) error {
	if err := t.A.BeginGlobal(index, typ, mutable); err != nil {
		return err
	}
	return t.B.BeginGlobal(index, typ, mutable)
}

func (t TeeDelegate) BeginGlobalInitExpr(index wasm.Index) error {
	if err := t.A.BeginGlobalInitExpr(index); err != nil {
		return err
	}
	return t.B.BeginGlobalInitExpr(index)
}

func (t TeeDelegate) EndGlobalInitExpr(index wasm.Index) error {
	if err := t.A.EndGlobalInitExpr(index); err != nil {
		return err
	}
	return t.B.EndGlobalInitExpr(index)
}

func (t TeeDelegate) EndGlobal(index wasm.Index) error {
	if err := t.A.EndGlobal(index); err != nil {
		return err
	}
	return t.B.EndGlobal(index)
}

func (t TeeDelegate) EndGlobalSection() error {
	if err := t.A.EndGlobalSection(); err != nil {
		return err
	}
	return t.B.EndGlobalSection()
}

func (t TeeDelegate) BeginExportSection(size uint32) error {
	if err := t.A.BeginExportSection(size); err != nil {
		return err
	}
	return t.B.BeginExportSection(size)
}

func (t TeeDelegate) OnExportCount(n wasm.Index) error {
	if err := t.A.OnExportCount(n); err != nil {
		return err
	}
	return t.B.OnExportCount(n)
}

func (t TeeDelegate) OnExport(index wasm.Index, kind wasm.ExternKind, itemIndex wasm.Index, name string) error {
	if err := t.A.OnExport(index, kind, itemIndex, name); err != nil {
		return err
	}
	return t.B.OnExport(index, kind, itemIndex, name)
}

func (t TeeDelegate) EndExportSection() error {
	if err := t.A.EndExportSection(); err != nil {
		return err
	}
	return t.B.EndExportSection()
}

func (t TeeDelegate) BeginStartSection(size uint32) error {
	if err := t.A.BeginStartSection(size); err != nil {
		return err
	}
	return t.B.BeginStartSection(size)
}

func (t TeeDelegate) OnStartFunction(index wasm.Index) error {
	if err := t.A.OnStartFunction(index); err != nil {
		return err
	}
	return t.B.OnStartFunction(index)
}

func (t TeeDelegate) EndStartSection() error {
	if err := t.A.EndStartSection(); err != nil {
		return err
	}
	return t.B.EndStartSection()
}

func (t TeeDelegate) BeginElementSection(size uint32) error {
	if err := t.A.BeginElementSection(size); err != nil {
		return err
	}
	return t.B.BeginElementSection(size)
}

func (t TeeDelegate) OnElementSegmentCount(n wasm.Index) error {
	if err := t.A.OnElementSegmentCount(n); err != nil {
		return err
	}
	return t.B.OnElementSegmentCount(n)
}

func (t TeeDelegate) BeginElementSegment(index, tableIndex wasm.Index) error {
	if err := t.A.BeginElementSegment(index, tableIndex); err != nil {
		return err
	}
	return t.B.BeginElementSegment(index, tableIndex)
}

func (t TeeDelegate) BeginElementSegmentInitExpr(index wasm.Index) error {
	if err := t.A.BeginElementSegmentInitExpr(index); err != nil {
		return err
	}
	return t.B.BeginElementSegmentInitExpr(index)
}

func (t TeeDelegate) EndElementSegmentInitExpr(index wasm.Index) error {
	if err := t.A.EndElementSegmentInitExpr(index); err != nil {
		return err
	}
	return t.B.EndElementSegmentInitExpr(index)
}

func (t TeeDelegate) OnElementSegmentFunctionIndexCount(index, count wasm.Index) error {
	if err := t.A.OnElementSegmentFunctionIndexCount(index, count); err != nil {
		return err
	}
	return t.B.OnElementSegmentFunctionIndexCount(index, count)
}

func (t TeeDelegate) OnElementSegmentFunctionIndex(index, funcIndex wasm.Index) error {
	if err := t.A.OnElementSegmentFunctionIndex(index, funcIndex); err != nil {
		return err
	}
	return t.B.OnElementSegmentFunctionIndex(index, funcIndex)
}

func (t TeeDelegate) EndElementSegment(index wasm.Index) error {
	if err := t.A.EndElementSegment(index); err != nil {
		return err
	}
	return t.B.EndElementSegment(index)
}

func (t TeeDelegate) EndElementSection() error {
	if err := t.A.EndElementSection(); err != nil {
		return err
	}
	return t.B.EndElementSection()
}

func (t TeeDelegate) BeginCodeSection(size uint32) error {
	if err := t.A.BeginCodeSection(size); err != nil {
		return err
	}
	return t.B.BeginCodeSection(size)
}

func (t TeeDelegate) OnFunctionBodyCount(n wasm.Index) error {
	if err := t.A.OnFunctionBodyCount(n); err != nil {
		return err
	}
	return t.B.OnFunctionBodyCount(n)
}

func (t TeeDelegate) BeginFunctionBody(index wasm.Index) error {
	if err := t.A.BeginFunctionBody(index); err != nil {
		return err
	}
	return t.B.BeginFunctionBody(index)
}

func (t TeeDelegate) OnLocalDeclCount(n wasm.Index) error {
	if err := t.A.OnLocalDeclCount(n); err != nil {
		return err
	}
	return t.B.OnLocalDeclCount(n)
}

func (t TeeDelegate) OnLocalDecl(declIndex, count wasm.Index, typ wasm.ValueType) error {
	if err := t.A.OnLocalDecl(declIndex, count, typ); err != nil {
		return err
	}
	return t.B.OnLocalDecl(declIndex, count, typ)
}

func (t TeeDelegate) EndFunctionBody(index wasm.Index) error {
	if err := t.A.EndFunctionBody(index); err != nil {
		return err
	}
	return t.B.EndFunctionBody(index)
}

func (t TeeDelegate) EndCodeSection() error {
	if err := t.A.EndCodeSection(); err != nil {
		return err
	}
	return t.B.EndCodeSection()
}

func (t TeeDelegate) BeginDataSection(size uint32) error {
	if err := t.A.BeginDataSection(size); err != nil {
		return err
	}
	return t.B.BeginDataSection(size)
}

func (t TeeDelegate) OnDataSegmentCount(n wasm.Index) error {
	if err := t.A.OnDataSegmentCount(n); err != nil {
		return err
	}
	return t.B.OnDataSegmentCount(n)
}

func (t TeeDelegate) BeginDataSegment(index, memoryIndex wasm.Index) error {
	if err := t.A.BeginDataSegment(index, memoryIndex); err != nil {
		return err
	}
	return t.B.BeginDataSegment(index, memoryIndex)
}

func (t TeeDelegate) BeginDataSegmentInitExpr(index wasm.Index) error {
	if err := t.A.BeginDataSegmentInitExpr(index); err != nil {
		return err
	}
	return t.B.BeginDataSegmentInitExpr(index)
}

func (t TeeDelegate) EndDataSegmentInitExpr(index wasm.Index) error {
	if err := t.A.EndDataSegmentInitExpr(index); err != nil {
		return err
	}
	return t.B.EndDataSegmentInitExpr(index)
}

func (t TeeDelegate) OnDataSegmentData(index wasm.Index, data []byte) error {
	if err := t.A.OnDataSegmentData(index, data); err != nil {
		return err
	}
	return t.B.OnDataSegmentData(index, data)
}

func (t TeeDelegate) EndDataSegment(index wasm.Index) error {
	if err := t.A.EndDataSegment(index); err != nil {
		return err
	}
	return t.B.EndDataSegment(index)
}

func (t TeeDelegate) EndDataSection() error {
	if err := t.A.EndDataSection(); err != nil {
		return err
	}
	return t.B.EndDataSection()
}

func (t TeeDelegate) BeginCustomSection(size uint32, name string) error {
	if err := t.A.BeginCustomSection(size, name); err != nil {
		return err
	}
	return t.B.BeginCustomSection(size, name)
}

func (t TeeDelegate) EndCustomSection() error {
	if err := t.A.EndCustomSection(); err != nil {
		return err
	}
	return t.B.EndCustomSection()
}

func (t TeeDelegate) BeginNamesSection(size uint32) error {
	if err := t.A.BeginNamesSection(size); err != nil {
		return err
	}
	return t.B.BeginNamesSection(size)
}

func (t TeeDelegate) OnFunctionNameSubsection(index wasm.Index, nameType, size uint32) error {
	if err := t.A.OnFunctionNameSubsection(index, nameType, size); err != nil {
		return err
	}
	return t.B.OnFunctionNameSubsection(index, nameType, size)
}

func (t TeeDelegate) OnFunctionNamesCount(n wasm.Index) error {
	if err := t.A.OnFunctionNamesCount(n); err != nil {
		return err
	}
	return t.B.OnFunctionNamesCount(n)
}

func (t TeeDelegate) OnFunctionName(funcIndex wasm.Index, name string) error {
	if err := t.A.OnFunctionName(funcIndex, name); err != nil {
		return err
	}
	return t.B.OnFunctionName(funcIndex, name)
}

func (t TeeDelegate) OnLocalNameSubsection(index wasm.Index, nameType, size uint32) error {
	if err := t.A.OnLocalNameSubsection(index, nameType, size); err != nil {
		return err
	}
	return t.B.OnLocalNameSubsection(index, nameType, size)
}

func (t TeeDelegate) OnLocalNameFunctionCount(n wasm.Index) error {
	if err := t.A.OnLocalNameFunctionCount(n); err != nil {
		return err
	}
	return t.B.OnLocalNameFunctionCount(n)
}

func (t TeeDelegate) OnLocalNameLocalCount(funcIndex, n wasm.Index) error {
	if err := t.A.OnLocalNameLocalCount(funcIndex, n); err != nil {
		return err
	}
	return t.B.OnLocalNameLocalCount(funcIndex, n)
}

func (t TeeDelegate) OnLocalName(funcIndex, localIndex wasm.Index, name string) error {
	if err := t.A.OnLocalName(funcIndex, localIndex, name); err != nil {
		return err
	}
	return t.B.OnLocalName(funcIndex, localIndex, name)
}

func (t TeeDelegate) EndNamesSection() error {
	if err := t.A.EndNamesSection(); err != nil {
		return err
	}
	return t.B.EndNamesSection()
}

func (t TeeDelegate) BeginRelocSection(size uint32) error {
	if err := t.A.BeginRelocSection(size); err != nil {
		return err
	}
	return t.B.BeginRelocSection(size)
}

func (t TeeDelegate) OnRelocCount(n wasm.Index, section wasm.SectionID, sectionName string) error {
	if err := t.A.OnRelocCount(n, section, sectionName); err != nil {
		return err
	}
	return t.B.OnRelocCount(n, section, sectionName)
}

func (t TeeDelegate) OnReloc(relocType, offset, index, addend uint32) error {
	if err := t.A.OnReloc(relocType, offset, index, addend); err != nil {
		return err
	}
	return t.B.OnReloc(relocType, offset, index, addend)
}

func (t TeeDelegate) EndRelocSection() error {
	if err := t.A.EndRelocSection(); err != nil {
		return err
	}
	return t.B.EndRelocSection()
}

func (t TeeDelegate) BeginLinkingSection(size uint32) error {
	if err := t.A.BeginLinkingSection(size); err != nil {
		return err
	}
	return t.B.BeginLinkingSection(size)
}

func (t TeeDelegate) OnStackGlobal(globalIndex wasm.Index) error {
	if err := t.A.OnStackGlobal(globalIndex); err != nil {
		return err
	}
	return t.B.OnStackGlobal(globalIndex)
}

func (t TeeDelegate) OnSymbolInfoCount(n uint32) error {
	if err := t.A.OnSymbolInfoCount(n); err != nil {
		return err
	}
	return t.B.OnSymbolInfoCount(n)
}

func (t TeeDelegate) OnSymbolInfo(name string, flags uint32) error {
	if err := t.A.OnSymbolInfo(name, flags); err != nil {
		return err
	}
	return t.B.OnSymbolInfo(name, flags)
}

func (t TeeDelegate) EndLinkingSection() error {
	if err := t.A.EndLinkingSection(); err != nil {
		return err
	}
	return t.B.EndLinkingSection()
}

func (t TeeDelegate) BeginExceptionSection(size uint32) error {
	if err := t.A.BeginExceptionSection(size); err != nil {
		return err
	}
	return t.B.BeginExceptionSection(size)
}

func (t TeeDelegate) OnExceptionCount(n wasm.Index) error {
	if err := t.A.OnExceptionCount(n); err != nil {
		return err
	}
	return t.B.OnExceptionCount(n)
}

func (t TeeDelegate) OnExceptionType(index wasm.Index, sig []wasm.ValueType) error {
	if err := t.A.OnExceptionType(index, sig); err != nil {
		return err
	}
	return t.B.OnExceptionType(index, sig)
}

func (t TeeDelegate) EndExceptionSection() error {
	if err := t.A.EndExceptionSection(); err != nil {
		return err
	}
	return t.B.EndExceptionSection()
}

func (t TeeDelegate) OnInitExprI32ConstExpr(index wasm.Index, v int32) error {
	if err := t.A.OnInitExprI32ConstExpr(index, v); err != nil {
		return err
	}
	return t.B.OnInitExprI32ConstExpr(index, v)
}

func (t TeeDelegate) OnInitExprI64ConstExpr(index wasm.Index, v int64) error {
	if err := t.A.OnInitExprI64ConstExpr(index, v); err != nil {
		return err
	}
	return t.B.OnInitExprI64ConstExpr(index, v)
}

func (t TeeDelegate) OnInitExprF32ConstExpr(index wasm.Index, bits uint32) error {
	if err := t.A.OnInitExprF32ConstExpr(index, bits); err != nil {
		return err
	}
	return t.B.OnInitExprF32ConstExpr(index, bits)
}

func (t TeeDelegate) OnInitExprF64ConstExpr(index wasm.Index, bits uint64) error {
	if err := t.A.OnInitExprF64ConstExpr(index, bits); err != nil {
		return err
	}
	return t.B.OnInitExprF64ConstExpr(index, bits)
}

func (t TeeDelegate) OnInitExprGetGlobalExpr(index wasm.Index, globalIndex wasm.Index) error {
	if err := t.A.OnInitExprGetGlobalExpr(index, globalIndex); err != nil {
		return err
	}
	return t.B.OnInitExprGetGlobalExpr(index, globalIndex)
}

func (t TeeDelegate) OnOpcode(opcode wasm.Opcode) error {
	if err := t.A.OnOpcode(opcode); err != nil {
		return err
	}
	return t.B.OnOpcode(opcode)
}

func (t TeeDelegate) OnOpcodeBare() error {
	if err := t.A.OnOpcodeBare(); err != nil {
		return err
	}
	return t.B.OnOpcodeBare()
}

func (t TeeDelegate) OnOpcodeUint32(v uint32) error {
	if err := t.A.OnOpcodeUint32(v); err != nil {
		return err
	}
	return t.B.OnOpcodeUint32(v)
}

func (t TeeDelegate) OnOpcodeUint64(v uint64) error {
	if err := t.A.OnOpcodeUint64(v); err != nil {
		return err
	}
	return t.B.OnOpcodeUint64(v)
}

func (t TeeDelegate) OnOpcodeIndex(index wasm.Index) error {
	if err := t.A.OnOpcodeIndex(index); err != nil {
		return err
	}
	return t.B.OnOpcodeIndex(index)
}

func (t TeeDelegate) OnOpcodeUint32Uint32(a, b uint32) error {
	if err := t.A.OnOpcodeUint32Uint32(a, b); err != nil {
		return err
	}
	return t.B.OnOpcodeUint32Uint32(a, b)
}

func (t TeeDelegate) OnOpcodeF32(bits uint32) error {
	if err := t.A.OnOpcodeF32(bits); err != nil {
		return err
	}
	return t.B.OnOpcodeF32(bits)
}

func (t TeeDelegate) OnOpcodeF64(bits uint64) error {
	if err := t.A.OnOpcodeF64(bits); err != nil {
		return err
	}
	return t.B.OnOpcodeF64(bits)
}

func (t TeeDelegate) OnOpcodeBlockSig(sigType wasm.ValueType) error {
	if err := t.A.OnOpcodeBlockSig(sigType); err != nil {
		return err
	}
	return t.B.OnOpcodeBlockSig(sigType)
}

func (t TeeDelegate) OnUnreachableExpr() error {
	if err := t.A.OnUnreachableExpr(); err != nil {
		return err
	}
	return t.B.OnUnreachableExpr()
}

func (t TeeDelegate) OnNopExpr() error {
	if err := t.A.OnNopExpr(); err != nil {
		return err
	}
	return t.B.OnNopExpr()
}

func (t TeeDelegate) OnBlockExpr(sigType wasm.ValueType) error {
	if err := t.A.OnBlockExpr(sigType); err != nil {
		return err
	}
	return t.B.OnBlockExpr(sigType)
}

func (t TeeDelegate) OnLoopExpr(sigType wasm.ValueType) error {
	if err := t.A.OnLoopExpr(sigType); err != nil {
		return err
	}
	return t.B.OnLoopExpr(sigType)
}

func (t TeeDelegate) OnIfExpr(sigType wasm.ValueType) error {
	if err := t.A.OnIfExpr(sigType); err != nil {
		return err
	}
	return t.B.OnIfExpr(sigType)
}

func (t TeeDelegate) OnElseExpr() error {
	if err := t.A.OnElseExpr(); err != nil {
		return err
	}
	return t.B.OnElseExpr()
}

func (t TeeDelegate) OnEndExpr() error {
	if err := t.A.OnEndExpr(); err != nil {
		return err
	}
	return t.B.OnEndExpr()
}

func (t TeeDelegate) OnEndFunc() error {
	if err := t.A.OnEndFunc(); err != nil {
		return err
	}
	return t.B.OnEndFunc()
}

func (t TeeDelegate) OnBrExpr(depth wasm.Index) error {
	if err := t.A.OnBrExpr(depth); err != nil {
		return err
	}
	return t.B.OnBrExpr(depth)
}

func (t TeeDelegate) OnBrIfExpr(depth wasm.Index) error {
	if err := t.A.OnBrIfExpr(depth); err != nil {
		return err
	}
	return t.B.OnBrIfExpr(depth)
}

func (t TeeDelegate) OnBrTableExpr(targets []wasm.Index, defaultTarget wasm.Index) error {
	if err := t.A.OnBrTableExpr(targets, defaultTarget); err != nil {
		return err
	}
	return t.B.OnBrTableExpr(targets, defaultTarget)
}

func (t TeeDelegate) OnReturnExpr() error {
	if err := t.A.OnReturnExpr(); err != nil {
		return err
	}
	return t.B.OnReturnExpr()
}

func (t TeeDelegate) OnDropExpr() error {
	if err := t.A.OnDropExpr(); err != nil {
		return err
	}
	return t.B.OnDropExpr()
}

func (t TeeDelegate) OnSelectExpr() error {
	if err := t.A.OnSelectExpr(); err != nil {
		return err
	}
	return t.B.OnSelectExpr()
}

func (t TeeDelegate) OnCallExpr(funcIndex wasm.Index) error {
	if err := t.A.OnCallExpr(funcIndex); err != nil {
		return err
	}
	return t.B.OnCallExpr(funcIndex)
}

func (t TeeDelegate) OnCallIndirectExpr(sigIndex wasm.Index) error {
	if err := t.A.OnCallIndirectExpr(sigIndex); err != nil {
		return err
	}
	return t.B.OnCallIndirectExpr(sigIndex)
}

func (t TeeDelegate) OnGetLocalExpr(localIndex wasm.Index) error {
	if err := t.A.OnGetLocalExpr(localIndex); err != nil {
		return err
	}
	return t.B.OnGetLocalExpr(localIndex)
}

func (t TeeDelegate) OnSetLocalExpr(localIndex wasm.Index) error {
	if err := t.A.OnSetLocalExpr(localIndex); err != nil {
		return err
	}
	return t.B.OnSetLocalExpr(localIndex)
}

func (t TeeDelegate) OnTeeLocalExpr(localIndex wasm.Index) error {
	if err := t.A.OnTeeLocalExpr(localIndex); err != nil {
		return err
	}
	return t.B.OnTeeLocalExpr(localIndex)
}

func (t TeeDelegate) OnGetGlobalExpr(globalIndex wasm.Index) error {
	if err := t.A.OnGetGlobalExpr(globalIndex); err != nil {
		return err
	}
	return t.B.OnGetGlobalExpr(globalIndex)
}

func (t TeeDelegate) OnSetGlobalExpr(globalIndex wasm.Index) error {
	if err := t.A.OnSetGlobalExpr(globalIndex); err != nil {
		return err
	}
	return t.B.OnSetGlobalExpr(globalIndex)
}

func (t TeeDelegate) OnI32ConstExpr(v int32) error {
	if err := t.A.OnI32ConstExpr(v); err != nil {
		return err
	}
	return t.B.OnI32ConstExpr(v)
}

func (t TeeDelegate) OnI64ConstExpr(v int64) error {
	if err := t.A.OnI64ConstExpr(v); err != nil {
		return err
	}
	return t.B.OnI64ConstExpr(v)
}

func (t TeeDelegate) OnF32ConstExpr(bits uint32) error {
	if err := t.A.OnF32ConstExpr(bits); err != nil {
		return err
	}
	return t.B.OnF32ConstExpr(bits)
}

func (t TeeDelegate) OnF64ConstExpr(bits uint64) error {
	if err := t.A.OnF64ConstExpr(bits); err != nil {
		return err
	}
	return t.B.OnF64ConstExpr(bits)
}

func (t TeeDelegate) OnLoadExpr(opcode wasm.Opcode, align, offset uint32) error {
	if err := t.A.OnLoadExpr(opcode, align, offset); err != nil {
		return err
	}
	return t.B.OnLoadExpr(opcode, align, offset)
}

func (t TeeDelegate) OnStoreExpr(opcode wasm.Opcode, align, offset uint32) error {
	if err := t.A.OnStoreExpr(opcode, align, offset); err != nil {
		return err
	}
	return t.B.OnStoreExpr(opcode, align, offset)
}

func (t TeeDelegate) OnCurrentMemoryExpr() error {
	if err := t.A.OnCurrentMemoryExpr(); err != nil {
		return err
	}
	return t.B.OnCurrentMemoryExpr()
}

func (t TeeDelegate) OnGrowMemoryExpr() error {
	if err := t.A.OnGrowMemoryExpr(); err != nil {
		return err
	}
	return t.B.OnGrowMemoryExpr()
}

func (t TeeDelegate) OnUnaryExpr(opcode wasm.Opcode) error {
	if err := t.A.OnUnaryExpr(opcode); err != nil {
		return err
	}
	return t.B.OnUnaryExpr(opcode)
}

func (t TeeDelegate) OnBinaryExpr(opcode wasm.Opcode) error {
	if err := t.A.OnBinaryExpr(opcode); err != nil {
		return err
	}
	return t.B.OnBinaryExpr(opcode)
}

func (t TeeDelegate) OnCompareExpr(opcode wasm.Opcode) error {
	if err := t.A.OnCompareExpr(opcode); err != nil {
		return err
	}
	return t.B.OnCompareExpr(opcode)
}

func (t TeeDelegate) OnConvertExpr(opcode wasm.Opcode) error {
	if err := t.A.OnConvertExpr(opcode); err != nil {
		return err
	}
	return t.B.OnConvertExpr(opcode)
}

func (t TeeDelegate) OnTryExpr(sigType wasm.ValueType) error {
	if err := t.A.OnTryExpr(sigType); err != nil {
		return err
	}
	return t.B.OnTryExpr(sigType)
}

func (t TeeDelegate) OnCatchExpr(exceptionIndex wasm.Index) error {
	if err := t.A.OnCatchExpr(exceptionIndex); err != nil {
		return err
	}
	return t.B.OnCatchExpr(exceptionIndex)
}

func (t TeeDelegate) OnCatchAllExpr() error {
	if err := t.A.OnCatchAllExpr(); err != nil {
		return err
	}
	return t.B.OnCatchAllExpr()
}

func (t TeeDelegate) OnRethrowExpr(depth wasm.Index) error {
	if err := t.A.OnRethrowExpr(depth); err != nil {
		return err
	}
	return t.B.OnRethrowExpr(depth)
}

func (t TeeDelegate) OnThrowExpr(exceptionIndex wasm.Index) error {
	if err := t.A.OnThrowExpr(exceptionIndex); err != nil {
		return err
	}
	return t.B.OnThrowExpr(exceptionIndex)
}

