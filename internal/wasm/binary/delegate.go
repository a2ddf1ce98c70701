package binary

import "github.com/wasmcursor/wasmbin/internal/wasm"

// Delegate is the external event consumer driven by DecodeModule. Every
// callback returns an error to abort decoding immediately with
// wasm.ErrCallbackFailure; a nil return lets decoding continue.
//
// String and byte-slice arguments are borrowed views into the buffer passed
// to DecodeModule; they are valid only for the duration of the call. A
// delegate that needs to retain one must copy it.
//
// The method set mirrors the grouping in wabt's BinaryReaderDelegate: a
// lifecycle pair, a Begin/On.../End triple per section, and a semantic
// event plus a raw syntactic event per instruction. Embed BaseDelegate to
// get no-op defaults for methods a particular consumer doesn't care about.
type Delegate interface {
	// Lifecycle.
	OnSetState(offset int)
	BeginModule(version uint32) error
	EndModule() error
	OnError(message string) (handled bool)

	// Type section.
	BeginTypeSection(size uint32) error
	OnTypeCount(n wasm.Index) error
	OnType(index wasm.Index, params, results []wasm.ValueType) error
	EndTypeSection() error

	// Import section.
	BeginImportSection(size uint32) error
	OnImportCount(n wasm.Index) error
	OnImport(index wasm.Index, module, field string) error
	OnImportFunc(index wasm.Index, module, field string, funcIndex, sigIndex wasm.Index) error
	OnImportTable(index wasm.Index, module, field string, tableIndex wasm.Index, elemType wasm.ValueType, limits wasm.Limits) error
	OnImportMemory(index wasm.Index, module, field string, memoryIndex wasm.Index, limits wasm.Limits) error
	OnImportGlobal(index wasm.Index, module, field string, globalIndex wasm.Index, typ wasm.ValueType, mutable bool) error
	OnImportException(index wasm.Index, module, field string, exceptionIndex wasm.Index, sig []wasm.ValueType) error
	EndImportSection() error

	// Function section.
	BeginFunctionSection(size uint32) error
	OnFunctionCount(n wasm.Index) error
	OnFunction(index, sigIndex wasm.Index) error
	EndFunctionSection() error

	// Table section.
	BeginTableSection(size uint32) error
	OnTableCount(n wasm.Index) error
	OnTable(index wasm.Index, elemType wasm.ValueType, limits wasm.Limits) error
	EndTableSection() error

	// Memory section.
	BeginMemorySection(size uint32) error
	OnMemoryCount(n wasm.Index) error
	OnMemory(index wasm.Index, limits wasm.Limits) error
	EndMemorySection() error

	// Global section.
	BeginGlobalSection(size uint32) error
	OnGlobalCount(n wasm.Index) error
	BeginGlobal(index wasm.Index, typ wasm.ValueType, mutable bool) error
	BeginGlobalInitExpr(index wasm.Index) error
	EndGlobalInitExpr(index wasm.Index) error
	EndGlobal(index wasm.Index) error
	EndGlobalSection() error

	// Export section.
	BeginExportSection(size uint32) error
	OnExportCount(n wasm.Index) error
	OnExport(index wasm.Index, kind wasm.ExternKind, itemIndex wasm.Index, name string) error
	EndExportSection() error

	// Start section.
	BeginStartSection(size uint32) error
	OnStartFunction(index wasm.Index) error
	EndStartSection() error

	// Element section.
	BeginElementSection(size uint32) error
	OnElementSegmentCount(n wasm.Index) error
	BeginElementSegment(index, tableIndex wasm.Index) error
	BeginElementSegmentInitExpr(index wasm.Index) error
	EndElementSegmentInitExpr(index wasm.Index) error
	OnElementSegmentFunctionIndexCount(index, count wasm.Index) error
	OnElementSegmentFunctionIndex(index, funcIndex wasm.Index) error
	EndElementSegment(index wasm.Index) error
	EndElementSection() error

	// Code section.
	BeginCodeSection(size uint32) error
	OnFunctionBodyCount(n wasm.Index) error
	BeginFunctionBody(index wasm.Index) error
	OnLocalDeclCount(n wasm.Index) error
	OnLocalDecl(declIndex, count wasm.Index, typ wasm.ValueType) error
	EndFunctionBody(index wasm.Index) error
	EndCodeSection() error

	// Data section.
	BeginDataSection(size uint32) error
	OnDataSegmentCount(n wasm.Index) error
	BeginDataSegment(index, memoryIndex wasm.Index) error
	BeginDataSegmentInitExpr(index wasm.Index) error
	EndDataSegmentInitExpr(index wasm.Index) error
	OnDataSegmentData(index wasm.Index, data []byte) error
	EndDataSegment(index wasm.Index) error
	EndDataSection() error

	// Custom section framing; the specific custom-section decoders below
	// nest inside a Begin/EndCustomSection pair.
	BeginCustomSection(size uint32, name string) error
	EndCustomSection() error

	// "name" custom subsection.
	BeginNamesSection(size uint32) error
	OnFunctionNameSubsection(index wasm.Index, nameType, size uint32) error
	OnFunctionNamesCount(n wasm.Index) error
	OnFunctionName(funcIndex wasm.Index, name string) error
	OnLocalNameSubsection(index wasm.Index, nameType, size uint32) error
	OnLocalNameFunctionCount(n wasm.Index) error
	OnLocalNameLocalCount(funcIndex, n wasm.Index) error
	OnLocalName(funcIndex, localIndex wasm.Index, name string) error
	EndNamesSection() error

	// "reloc.*" custom subsection.
	BeginRelocSection(size uint32) error
	OnRelocCount(n wasm.Index, section wasm.SectionID, sectionName string) error
	OnReloc(relocType, offset, index, addend uint32) error
	EndRelocSection() error

	// "linking" custom subsection.
	BeginLinkingSection(size uint32) error
	OnStackGlobal(globalIndex wasm.Index) error
	OnSymbolInfoCount(n uint32) error
	OnSymbolInfo(name string, flags uint32) error
	EndLinkingSection() error

	// "exception" custom subsection (gated by FeatureExceptions).
	BeginExceptionSection(size uint32) error
	OnExceptionCount(n wasm.Index) error
	OnExceptionType(index wasm.Index, sig []wasm.ValueType) error
	EndExceptionSection() error

	// Init-expr (constant-expression variant), shared by globals and
	// element/data segment offsets.
	OnInitExprI32ConstExpr(index wasm.Index, v int32) error
	OnInitExprI64ConstExpr(index wasm.Index, v int64) error
	OnInitExprF32ConstExpr(index wasm.Index, bits uint32) error
	OnInitExprF64ConstExpr(index wasm.Index, bits uint64) error
	OnInitExprGetGlobalExpr(index wasm.Index, globalIndex wasm.Index) error

	// Full instruction variant: one semantic event plus one raw syntactic
	// event per instruction, matching §4.6.
	OnOpcode(opcode wasm.Opcode) error
	OnOpcodeBare() error
	OnOpcodeUint32(v uint32) error
	OnOpcodeUint64(v uint64) error
	OnOpcodeIndex(index wasm.Index) error
	OnOpcodeUint32Uint32(a, b uint32) error
	OnOpcodeF32(bits uint32) error
	OnOpcodeF64(bits uint64) error
	OnOpcodeBlockSig(sigType wasm.ValueType) error

	OnUnreachableExpr() error
	OnNopExpr() error
	OnBlockExpr(sigType wasm.ValueType) error
	OnLoopExpr(sigType wasm.ValueType) error
	OnIfExpr(sigType wasm.ValueType) error
	OnElseExpr() error
	OnEndExpr() error
	OnEndFunc() error
	OnBrExpr(depth wasm.Index) error
	OnBrIfExpr(depth wasm.Index) error
	OnBrTableExpr(targets []wasm.Index, defaultTarget wasm.Index) error
	OnReturnExpr() error
	OnDropExpr() error
	OnSelectExpr() error
	OnCallExpr(funcIndex wasm.Index) error
	OnCallIndirectExpr(sigIndex wasm.Index) error
	OnGetLocalExpr(localIndex wasm.Index) error
	OnSetLocalExpr(localIndex wasm.Index) error
	OnTeeLocalExpr(localIndex wasm.Index) error
	OnGetGlobalExpr(globalIndex wasm.Index) error
	OnSetGlobalExpr(globalIndex wasm.Index) error
	OnI32ConstExpr(v int32) error
	OnI64ConstExpr(v int64) error
	OnF32ConstExpr(bits uint32) error
	OnF64ConstExpr(bits uint64) error
	OnLoadExpr(opcode wasm.Opcode, align, offset uint32) error
	OnStoreExpr(opcode wasm.Opcode, align, offset uint32) error
	OnCurrentMemoryExpr() error
	OnGrowMemoryExpr() error
	OnUnaryExpr(opcode wasm.Opcode) error
	OnBinaryExpr(opcode wasm.Opcode) error
	OnCompareExpr(opcode wasm.Opcode) error
	OnConvertExpr(opcode wasm.Opcode) error
	OnTryExpr(sigType wasm.ValueType) error
	OnCatchExpr(exceptionIndex wasm.Index) error
	OnCatchAllExpr() error
	OnRethrowExpr(depth wasm.Index) error
	OnThrowExpr(exceptionIndex wasm.Index) error
}
