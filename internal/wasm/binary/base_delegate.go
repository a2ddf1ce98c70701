package binary

import "github.com/wasmcursor/wasmbin/internal/wasm"

// BaseDelegate implements Delegate with no-op methods that always return
// nil (or, for OnError, false). Embed it in a concrete delegate and
// override only the methods that matter; everything else is a no-op.
type BaseDelegate struct{}

var _ Delegate = BaseDelegate{}

func (BaseDelegate) OnSetState(offset int)                   {}
func (BaseDelegate) BeginModule(version uint32) error         { return nil }
func (BaseDelegate) EndModule() error                         { return nil }
func (BaseDelegate) OnError(message string) bool              { return false }

func (BaseDelegate) BeginTypeSection(size uint32) error { return nil }
func (BaseDelegate) OnTypeCount(n wasm.Index) error     { return nil }
func (BaseDelegate) OnType(index wasm.Index, params, results []wasm.ValueType) error {
	return nil
}
func (BaseDelegate) EndTypeSection() error { return nil }

func (BaseDelegate) BeginImportSection(size uint32) error { return nil }
func (BaseDelegate) OnImportCount(n wasm.Index) error     { return nil }
func (BaseDelegate) OnImport(index wasm.Index, module, field string) error {
	return nil
}
func (BaseDelegate) OnImportFunc(index wasm.Index, module, field string, funcIndex, sigIndex wasm.Index) error {
	return nil
}
func (BaseDelegate) OnImportTable(index wasm.Index, module, field string, tableIndex wasm.Index, elemType wasm.ValueType, limits wasm.Limits) error {
	return nil
}
func (BaseDelegate) OnImportMemory(index wasm.Index, module, field string, memoryIndex wasm.Index, limits wasm.Limits) error {
	return nil
}
func (BaseDelegate) OnImportGlobal(index wasm.Index, module, field string, globalIndex wasm.Index, typ wasm.ValueType, mutable bool) error {
	return nil
}
func (BaseDelegate) OnImportException(index wasm.Index, module, field string, exceptionIndex wasm.Index, sig []wasm.ValueType) error {
	return nil
}
func (BaseDelegate) EndImportSection() error { return nil }

func (BaseDelegate) BeginFunctionSection(size uint32) error  { return nil }
func (BaseDelegate) OnFunctionCount(n wasm.Index) error      { return nil }
func (BaseDelegate) OnFunction(index, sigIndex wasm.Index) error { return nil }
func (BaseDelegate) EndFunctionSection() error                { return nil }

func (BaseDelegate) BeginTableSection(size uint32) error { return nil }
func (BaseDelegate) OnTableCount(n wasm.Index) error     { return nil }
func (BaseDelegate) OnTable(index wasm.Index, elemType wasm.ValueType, limits wasm.Limits) error {
	return nil
}
func (BaseDelegate) EndTableSection() error { return nil }

func (BaseDelegate) BeginMemorySection(size uint32) error          { return nil }
func (BaseDelegate) OnMemoryCount(n wasm.Index) error              { return nil }
func (BaseDelegate) OnMemory(index wasm.Index, limits wasm.Limits) error { return nil }
func (BaseDelegate) EndMemorySection() error                       { return nil }

func (BaseDelegate) BeginGlobalSection(size uint32) error { return nil }
func (BaseDelegate) OnGlobalCount(n wasm.Index) error      { return nil }
func (BaseDelegate) BeginGlobal(index wasm.Index, typ wasm.ValueType, mutable bool) error {
	return nil
}
func (BaseDelegate) BeginGlobalInitExpr(index wasm.Index) error { return nil }
func (BaseDelegate) EndGlobalInitExpr(index wasm.Index) error   { return nil }
func (BaseDelegate) EndGlobal(index wasm.Index) error           { return nil }
func (BaseDelegate) EndGlobalSection() error                    { return nil }

func (BaseDelegate) BeginExportSection(size uint32) error { return nil }
func (BaseDelegate) OnExportCount(n wasm.Index) error     { return nil }
func (BaseDelegate) OnExport(index wasm.Index, kind wasm.ExternKind, itemIndex wasm.Index, name string) error {
	return nil
}
func (BaseDelegate) EndExportSection() error { return nil }

func (BaseDelegate) BeginStartSection(size uint32) error { return nil }
func (BaseDelegate) OnStartFunction(index wasm.Index) error { return nil }
func (BaseDelegate) EndStartSection() error               { return nil }

func (BaseDelegate) BeginElementSection(size uint32) error      { return nil }
func (BaseDelegate) OnElementSegmentCount(n wasm.Index) error   { return nil }
func (BaseDelegate) BeginElementSegment(index, tableIndex wasm.Index) error {
	return nil
}
func (BaseDelegate) BeginElementSegmentInitExpr(index wasm.Index) error { return nil }
func (BaseDelegate) EndElementSegmentInitExpr(index wasm.Index) error   { return nil }
func (BaseDelegate) OnElementSegmentFunctionIndexCount(index, count wasm.Index) error {
	return nil
}
func (BaseDelegate) OnElementSegmentFunctionIndex(index, funcIndex wasm.Index) error {
	return nil
}
func (BaseDelegate) EndElementSegment(index wasm.Index) error { return nil }
func (BaseDelegate) EndElementSection() error                 { return nil }

func (BaseDelegate) BeginCodeSection(size uint32) error    { return nil }
func (BaseDelegate) OnFunctionBodyCount(n wasm.Index) error { return nil }
func (BaseDelegate) BeginFunctionBody(index wasm.Index) error { return nil }
func (BaseDelegate) OnLocalDeclCount(n wasm.Index) error    { return nil }
func (BaseDelegate) OnLocalDecl(declIndex, count wasm.Index, typ wasm.ValueType) error {
	return nil
}
func (BaseDelegate) EndFunctionBody(index wasm.Index) error { return nil }
func (BaseDelegate) EndCodeSection() error                  { return nil }

func (BaseDelegate) BeginDataSection(size uint32) error    { return nil }
func (BaseDelegate) OnDataSegmentCount(n wasm.Index) error { return nil }
func (BaseDelegate) BeginDataSegment(index, memoryIndex wasm.Index) error {
	return nil
}
func (BaseDelegate) BeginDataSegmentInitExpr(index wasm.Index) error { return nil }
func (BaseDelegate) EndDataSegmentInitExpr(index wasm.Index) error   { return nil }
func (BaseDelegate) OnDataSegmentData(index wasm.Index, data []byte) error {
	return nil
}
func (BaseDelegate) EndDataSegment(index wasm.Index) error { return nil }
func (BaseDelegate) EndDataSection() error                 { return nil }

func (BaseDelegate) BeginCustomSection(size uint32, name string) error { return nil }
func (BaseDelegate) EndCustomSection() error                           { return nil }

func (BaseDelegate) BeginNamesSection(size uint32) error { return nil }
func (BaseDelegate) OnFunctionNameSubsection(index wasm.Index, nameType, size uint32) error {
	return nil
}
func (BaseDelegate) OnFunctionNamesCount(n wasm.Index) error { return nil }
func (BaseDelegate) OnFunctionName(funcIndex wasm.Index, name string) error {
	return nil
}
func (BaseDelegate) OnLocalNameSubsection(index wasm.Index, nameType, size uint32) error {
	return nil
}
func (BaseDelegate) OnLocalNameFunctionCount(n wasm.Index) error { return nil }
func (BaseDelegate) OnLocalNameLocalCount(funcIndex, n wasm.Index) error {
	return nil
}
func (BaseDelegate) OnLocalName(funcIndex, localIndex wasm.Index, name string) error {
	return nil
}
func (BaseDelegate) EndNamesSection() error { return nil }

func (BaseDelegate) BeginRelocSection(size uint32) error { return nil }
func (BaseDelegate) OnRelocCount(n wasm.Index, section wasm.SectionID, sectionName string) error {
	return nil
}
func (BaseDelegate) OnReloc(relocType, offset, index, addend uint32) error {
	return nil
}
func (BaseDelegate) EndRelocSection() error { return nil }

func (BaseDelegate) BeginLinkingSection(size uint32) error    { return nil }
func (BaseDelegate) OnStackGlobal(globalIndex wasm.Index) error { return nil }
func (BaseDelegate) OnSymbolInfoCount(n uint32) error          { return nil }
func (BaseDelegate) OnSymbolInfo(name string, flags uint32) error {
	return nil
}
func (BaseDelegate) EndLinkingSection() error { return nil }

func (BaseDelegate) BeginExceptionSection(size uint32) error { return nil }
func (BaseDelegate) OnExceptionCount(n wasm.Index) error      { return nil }
func (BaseDelegate) OnExceptionType(index wasm.Index, sig []wasm.ValueType) error {
	return nil
}
func (BaseDelegate) EndExceptionSection() error { return nil }

func (BaseDelegate) OnInitExprI32ConstExpr(index wasm.Index, v int32) error { return nil }
func (BaseDelegate) OnInitExprI64ConstExpr(index wasm.Index, v int64) error { return nil }
func (BaseDelegate) OnInitExprF32ConstExpr(index wasm.Index, bits uint32) error {
	return nil
}
func (BaseDelegate) OnInitExprF64ConstExpr(index wasm.Index, bits uint64) error {
	return nil
}
func (BaseDelegate) OnInitExprGetGlobalExpr(index wasm.Index, globalIndex wasm.Index) error {
	return nil
}

func (BaseDelegate) OnOpcode(opcode wasm.Opcode) error        { return nil }
func (BaseDelegate) OnOpcodeBare() error                      { return nil }
func (BaseDelegate) OnOpcodeUint32(v uint32) error             { return nil }
func (BaseDelegate) OnOpcodeUint64(v uint64) error             { return nil }
func (BaseDelegate) OnOpcodeIndex(index wasm.Index) error      { return nil }
func (BaseDelegate) OnOpcodeUint32Uint32(a, b uint32) error    { return nil }
func (BaseDelegate) OnOpcodeF32(bits uint32) error              { return nil }
func (BaseDelegate) OnOpcodeF64(bits uint64) error              { return nil }
func (BaseDelegate) OnOpcodeBlockSig(sigType wasm.ValueType) error { return nil }

func (BaseDelegate) OnUnreachableExpr() error { return nil }
func (BaseDelegate) OnNopExpr() error         { return nil }
func (BaseDelegate) OnBlockExpr(sigType wasm.ValueType) error { return nil }
func (BaseDelegate) OnLoopExpr(sigType wasm.ValueType) error  { return nil }
func (BaseDelegate) OnIfExpr(sigType wasm.ValueType) error    { return nil }
func (BaseDelegate) OnElseExpr() error { return nil }
func (BaseDelegate) OnEndExpr() error  { return nil }
func (BaseDelegate) OnEndFunc() error  { return nil }
func (BaseDelegate) OnBrExpr(depth wasm.Index) error   { return nil }
func (BaseDelegate) OnBrIfExpr(depth wasm.Index) error { return nil }
func (BaseDelegate) OnBrTableExpr(targets []wasm.Index, defaultTarget wasm.Index) error {
	return nil
}
func (BaseDelegate) OnReturnExpr() error { return nil }
func (BaseDelegate) OnDropExpr() error   { return nil }
func (BaseDelegate) OnSelectExpr() error { return nil }
func (BaseDelegate) OnCallExpr(funcIndex wasm.Index) error         { return nil }
func (BaseDelegate) OnCallIndirectExpr(sigIndex wasm.Index) error  { return nil }
func (BaseDelegate) OnGetLocalExpr(localIndex wasm.Index) error    { return nil }
func (BaseDelegate) OnSetLocalExpr(localIndex wasm.Index) error    { return nil }
func (BaseDelegate) OnTeeLocalExpr(localIndex wasm.Index) error    { return nil }
func (BaseDelegate) OnGetGlobalExpr(globalIndex wasm.Index) error  { return nil }
func (BaseDelegate) OnSetGlobalExpr(globalIndex wasm.Index) error  { return nil }
func (BaseDelegate) OnI32ConstExpr(v int32) error   { return nil }
func (BaseDelegate) OnI64ConstExpr(v int64) error   { return nil }
func (BaseDelegate) OnF32ConstExpr(bits uint32) error { return nil }
func (BaseDelegate) OnF64ConstExpr(bits uint64) error { return nil }
func (BaseDelegate) OnLoadExpr(opcode wasm.Opcode, align, offset uint32) error {
	return nil
}
func (BaseDelegate) OnStoreExpr(opcode wasm.Opcode, align, offset uint32) error {
	return nil
}
func (BaseDelegate) OnCurrentMemoryExpr() error { return nil }
func (BaseDelegate) OnGrowMemoryExpr() error    { return nil }
func (BaseDelegate) OnUnaryExpr(opcode wasm.Opcode) error   { return nil }
func (BaseDelegate) OnBinaryExpr(opcode wasm.Opcode) error  { return nil }
func (BaseDelegate) OnCompareExpr(opcode wasm.Opcode) error { return nil }
func (BaseDelegate) OnConvertExpr(opcode wasm.Opcode) error { return nil }
func (BaseDelegate) OnTryExpr(sigType wasm.ValueType) error { return nil }
func (BaseDelegate) OnCatchExpr(exceptionIndex wasm.Index) error { return nil }
func (BaseDelegate) OnCatchAllExpr() error                       { return nil }
func (BaseDelegate) OnRethrowExpr(depth wasm.Index) error        { return nil }
func (BaseDelegate) OnThrowExpr(exceptionIndex wasm.Index) error { return nil }
