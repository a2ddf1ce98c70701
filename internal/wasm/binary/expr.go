package binary

import (
	"fmt"

	"github.com/wasmcursor/wasmbin/internal/wasm"
)

// unexpectedOpcode and unexpectedPrefixedOpcode reproduce the message shape
// wabt's ReportUnexpectedOpcode uses, so a reader comparing error text
// against a reference decoder sees the same two numbers in the same two
// bases.
func (d *moduleDecoder) unexpectedOpcode(opcode wasm.Opcode) error {
	return fmt.Errorf("unexpected opcode: %d (0x%x): %w", opcode, opcode, wasm.ErrBadOpcode)
}

func (d *moduleDecoder) unexpectedPrefixedOpcode(prefix wasm.Opcode, sub uint32) error {
	return fmt.Errorf("unexpected opcode: %d %d (0x%x 0x%x): %w", prefix, sub, prefix, sub, wasm.ErrBadOpcode)
}

// readInitExpr decodes the constant-expression variant shared by global
// initializers and element/data segment offsets: exactly one producing
// instruction from {i32.const, i64.const, f32.const, f64.const,
// get_global}, followed by exactly one end.
func (d *moduleDecoder) readInitExpr(index wasm.Index) error {
	opcode, err := d.c.readU8()
	if err != nil {
		return err
	}
	switch opcode {
	case wasm.OpcodeI32Const:
		v, err := d.c.readVars32()
		if err != nil {
			return err
		}
		if err := d.callback(d.delegate.OnInitExprI32ConstExpr(index, v)); err != nil {
			return err
		}
	case wasm.OpcodeI64Const:
		v, err := d.c.readVars64()
		if err != nil {
			return err
		}
		if err := d.callback(d.delegate.OnInitExprI64ConstExpr(index, v)); err != nil {
			return err
		}
	case wasm.OpcodeF32Const:
		bits, err := d.c.readF32Bits()
		if err != nil {
			return err
		}
		if err := d.callback(d.delegate.OnInitExprF32ConstExpr(index, bits)); err != nil {
			return err
		}
	case wasm.OpcodeF64Const:
		bits, err := d.c.readF64Bits()
		if err != nil {
			return err
		}
		if err := d.callback(d.delegate.OnInitExprF64ConstExpr(index, bits)); err != nil {
			return err
		}
	case wasm.OpcodeGetGlobal:
		globalIndex, err := d.c.readIndex("init expr global index")
		if err != nil {
			return err
		}
		if globalIndex >= d.numTotalGlobals() {
			return fmt.Errorf("init expr global index %d out of range: %w", globalIndex, wasm.ErrBadIndex)
		}
		if err := d.callback(d.delegate.OnInitExprGetGlobalExpr(index, globalIndex)); err != nil {
			return err
		}
	default:
		return d.unexpectedOpcode(opcode)
	}
	end, err := d.c.readU8()
	if err != nil {
		return err
	}
	if end != wasm.OpcodeEnd {
		return d.unexpectedOpcode(end)
	}
	return nil
}

// readFunctionBody decodes the full instruction variant that makes up a
// code-section entry's body: every instruction from offset up to
// endOffset, distinguishing the function-terminating end from any
// block/loop/if/try-terminating end by whether it lands exactly on
// endOffset.
func (d *moduleDecoder) readFunctionBody(endOffset int) error {
	seenEnd := false
	for d.c.offset < endOffset {
		opcode, err := d.c.readU8()
		if err != nil {
			return err
		}
		isEnd := opcode == wasm.OpcodeEnd
		if err := d.decodeInstruction(opcode, endOffset); err != nil {
			return err
		}
		if isEnd && d.c.offset == endOffset {
			seenEnd = true
		}
	}
	if d.c.offset != endOffset {
		return fmt.Errorf("function body longer than given size: %w", wasm.ErrUnfinishedSection)
	}
	if !seenEnd {
		return fmt.Errorf("function body must end with END opcode: %w", wasm.ErrUnfinishedSection)
	}
	return nil
}

func (d *moduleDecoder) decodeInstruction(opcode wasm.Opcode, endOffset int) error {
	if err := d.callback(d.delegate.OnOpcode(opcode)); err != nil {
		return err
	}
	switch opcode {
	case wasm.OpcodeUnreachable:
		return d.emitBare(d.delegate.OnUnreachableExpr)
	case wasm.OpcodeNop:
		return d.emitBare(d.delegate.OnNopExpr)
	case wasm.OpcodeBlock, wasm.OpcodeLoop, wasm.OpcodeIf, wasm.OpcodeTry:
		return d.decodeBlockLike(opcode)
	case wasm.OpcodeElse:
		return d.emitBare(d.delegate.OnElseExpr)
	case wasm.OpcodeEnd:
		if d.c.offset == endOffset {
			return d.emitBare(d.delegate.OnEndFunc)
		}
		return d.emitBare(d.delegate.OnEndExpr)
	case wasm.OpcodeBr, wasm.OpcodeBrIf:
		depth, err := d.c.readIndex("branch depth")
		if err != nil {
			return err
		}
		if opcode == wasm.OpcodeBr {
			if err := d.callback(d.delegate.OnBrExpr(depth)); err != nil {
				return err
			}
		} else {
			if err := d.callback(d.delegate.OnBrIfExpr(depth)); err != nil {
				return err
			}
		}
		return d.callback(d.delegate.OnOpcodeIndex(depth))
	case wasm.OpcodeBrTable:
		return d.decodeBrTable()
	case wasm.OpcodeReturn:
		return d.emitBare(d.delegate.OnReturnExpr)
	case wasm.OpcodeCall:
		funcIndex, err := d.c.readIndex("call function index")
		if err != nil {
			return err
		}
		if funcIndex >= d.numTotalFuncs() {
			return fmt.Errorf("call function index %d out of range: %w", funcIndex, wasm.ErrBadIndex)
		}
		if err := d.callback(d.delegate.OnCallExpr(funcIndex)); err != nil {
			return err
		}
		return d.callback(d.delegate.OnOpcodeIndex(funcIndex))
	case wasm.OpcodeCallIndirect:
		sigIndex, err := d.c.readIndex("call_indirect signature index")
		if err != nil {
			return err
		}
		if sigIndex >= d.numTypes {
			return fmt.Errorf("call_indirect signature index %d out of range: %w", sigIndex, wasm.ErrBadIndex)
		}
		reserved, err := d.c.readU8()
		if err != nil {
			return err
		}
		if reserved != 0 {
			return fmt.Errorf("call_indirect reserved byte must be 0, got %d: %w", reserved, wasm.ErrBadType)
		}
		if err := d.callback(d.delegate.OnCallIndirectExpr(sigIndex)); err != nil {
			return err
		}
		return d.callback(d.delegate.OnOpcodeUint32Uint32(sigIndex, uint32(reserved)))
	case wasm.OpcodeDrop:
		return d.emitBare(d.delegate.OnDropExpr)
	case wasm.OpcodeSelect:
		return d.emitBare(d.delegate.OnSelectExpr)
	case wasm.OpcodeGetLocal, wasm.OpcodeSetLocal, wasm.OpcodeTeeLocal:
		localIndex, err := d.c.readIndex("local index")
		if err != nil {
			return err
		}
		switch opcode {
		case wasm.OpcodeGetLocal:
			if err := d.callback(d.delegate.OnGetLocalExpr(localIndex)); err != nil {
				return err
			}
		case wasm.OpcodeSetLocal:
			if err := d.callback(d.delegate.OnSetLocalExpr(localIndex)); err != nil {
				return err
			}
		default:
			if err := d.callback(d.delegate.OnTeeLocalExpr(localIndex)); err != nil {
				return err
			}
		}
		return d.callback(d.delegate.OnOpcodeIndex(localIndex))
	case wasm.OpcodeGetGlobal, wasm.OpcodeSetGlobal:
		globalIndex, err := d.c.readIndex("global index")
		if err != nil {
			return err
		}
		if globalIndex >= d.numTotalGlobals() {
			return fmt.Errorf("global index %d out of range: %w", globalIndex, wasm.ErrBadIndex)
		}
		if opcode == wasm.OpcodeGetGlobal {
			if err := d.callback(d.delegate.OnGetGlobalExpr(globalIndex)); err != nil {
				return err
			}
		} else {
			if err := d.callback(d.delegate.OnSetGlobalExpr(globalIndex)); err != nil {
				return err
			}
		}
		return d.callback(d.delegate.OnOpcodeIndex(globalIndex))
	case wasm.OpcodeI32Const:
		v, err := d.c.readVars32()
		if err != nil {
			return err
		}
		if err := d.callback(d.delegate.OnI32ConstExpr(v)); err != nil {
			return err
		}
		return d.callback(d.delegate.OnOpcodeUint32(uint32(v)))
	case wasm.OpcodeI64Const:
		v, err := d.c.readVars64()
		if err != nil {
			return err
		}
		if err := d.callback(d.delegate.OnI64ConstExpr(v)); err != nil {
			return err
		}
		return d.callback(d.delegate.OnOpcodeUint64(uint64(v)))
	case wasm.OpcodeF32Const:
		bits, err := d.c.readF32Bits()
		if err != nil {
			return err
		}
		if err := d.callback(d.delegate.OnF32ConstExpr(bits)); err != nil {
			return err
		}
		return d.callback(d.delegate.OnOpcodeF32(bits))
	case wasm.OpcodeF64Const:
		bits, err := d.c.readF64Bits()
		if err != nil {
			return err
		}
		if err := d.callback(d.delegate.OnF64ConstExpr(bits)); err != nil {
			return err
		}
		return d.callback(d.delegate.OnOpcodeF64(bits))
	case wasm.OpcodeCurrentMemory, wasm.OpcodeGrowMemory:
		reserved, err := d.c.readU8()
		if err != nil {
			return err
		}
		if reserved != 0 {
			return fmt.Errorf("memory reserved byte must be 0, got %d: %w", reserved, wasm.ErrBadType)
		}
		if opcode == wasm.OpcodeCurrentMemory {
			return d.emitBare(d.delegate.OnCurrentMemoryExpr)
		}
		return d.emitBare(d.delegate.OnGrowMemoryExpr)
	case wasm.OpcodeCatch:
		exceptionIndex, err := d.c.readIndex("catch exception index")
		if err != nil {
			return err
		}
		if err := d.opts.Features.Require(wasm.FeatureExceptions); err != nil {
			return err
		}
		if exceptionIndex >= d.numTotalExceptions() {
			return fmt.Errorf("catch exception index %d out of range: %w", exceptionIndex, wasm.ErrBadIndex)
		}
		if err := d.callback(d.delegate.OnCatchExpr(exceptionIndex)); err != nil {
			return err
		}
		return d.callback(d.delegate.OnOpcodeIndex(exceptionIndex))
	case wasm.OpcodeCatchAll:
		if err := d.opts.Features.Require(wasm.FeatureExceptions); err != nil {
			return err
		}
		return d.emitBare(d.delegate.OnCatchAllExpr)
	case wasm.OpcodeRethrow:
		depth, err := d.c.readIndex("rethrow depth")
		if err != nil {
			return err
		}
		if err := d.opts.Features.Require(wasm.FeatureExceptions); err != nil {
			return err
		}
		if err := d.callback(d.delegate.OnRethrowExpr(depth)); err != nil {
			return err
		}
		return d.callback(d.delegate.OnOpcodeIndex(depth))
	case wasm.OpcodeThrow:
		exceptionIndex, err := d.c.readIndex("throw exception index")
		if err != nil {
			return err
		}
		if err := d.opts.Features.Require(wasm.FeatureExceptions); err != nil {
			return err
		}
		if exceptionIndex >= d.numTotalExceptions() {
			return fmt.Errorf("throw exception index %d out of range: %w", exceptionIndex, wasm.ErrBadIndex)
		}
		if err := d.callback(d.delegate.OnThrowExpr(exceptionIndex)); err != nil {
			return err
		}
		return d.callback(d.delegate.OnOpcodeIndex(exceptionIndex))
	case wasm.OpcodeMiscPrefix:
		return d.decodeMiscInstruction()
	}
	if isLoadOpcode(opcode) || isStoreOpcode(opcode) {
		align, err := d.c.readIndex("memory access alignment")
		if err != nil {
			return err
		}
		offset, err := d.c.readIndex("memory access offset")
		if err != nil {
			return err
		}
		if isLoadOpcode(opcode) {
			if err := d.callback(d.delegate.OnLoadExpr(opcode, align, offset)); err != nil {
				return err
			}
		} else {
			if err := d.callback(d.delegate.OnStoreExpr(opcode, align, offset)); err != nil {
				return err
			}
		}
		return d.callback(d.delegate.OnOpcodeUint32Uint32(align, offset))
	}
	if class := numericOpcodeClass(opcode); class != numericClassNone {
		var err error
		switch class {
		case numericClassUnary:
			err = d.callback(d.delegate.OnUnaryExpr(opcode))
		case numericClassBinary:
			err = d.callback(d.delegate.OnBinaryExpr(opcode))
		case numericClassCompare:
			err = d.callback(d.delegate.OnCompareExpr(opcode))
		default:
			err = d.callback(d.delegate.OnConvertExpr(opcode))
		}
		if err != nil {
			return err
		}
		return d.callback(d.delegate.OnOpcodeBare())
	}
	return d.unexpectedOpcode(opcode)
}

func (d *moduleDecoder) decodeBlockLike(opcode wasm.Opcode) error {
	sig, err := d.c.readValueType("block signature")
	if err != nil {
		return err
	}
	if sig != wasm.ValueTypeVoid && !wasm.IsConcrete(sig) {
		return fmt.Errorf("block signature 0x%x is not void or concrete: %w", sig, wasm.ErrBadType)
	}
	if opcode == wasm.OpcodeTry {
		if err := d.opts.Features.Require(wasm.FeatureExceptions); err != nil {
			return err
		}
	}
	switch opcode {
	case wasm.OpcodeBlock:
		if err := d.callback(d.delegate.OnBlockExpr(sig)); err != nil {
			return err
		}
	case wasm.OpcodeLoop:
		if err := d.callback(d.delegate.OnLoopExpr(sig)); err != nil {
			return err
		}
	case wasm.OpcodeIf:
		if err := d.callback(d.delegate.OnIfExpr(sig)); err != nil {
			return err
		}
	default:
		if err := d.callback(d.delegate.OnTryExpr(sig)); err != nil {
			return err
		}
	}
	return d.callback(d.delegate.OnOpcodeBlockSig(sig))
}

func (d *moduleDecoder) decodeBrTable() error {
	numTargets, err := d.c.readIndex("br_table target count")
	if err != nil {
		return err
	}
	targets := make([]wasm.Index, numTargets)
	for i := range targets {
		targets[i], err = d.c.readIndex("br_table target depth")
		if err != nil {
			return err
		}
	}
	defaultTarget, err := d.c.readIndex("br_table default depth")
	if err != nil {
		return err
	}
	if err := d.callback(d.delegate.OnBrTableExpr(targets, defaultTarget)); err != nil {
		return err
	}
	return d.callback(d.delegate.OnOpcodeIndex(numTargets))
}

func (d *moduleDecoder) decodeMiscInstruction() error {
	if err := d.opts.Features.Require(wasm.FeatureSaturatingFloatToInt); err != nil {
		return err
	}
	sub, err := d.c.readVaru32()
	if err != nil {
		return err
	}
	if sub > 0x07 {
		return d.unexpectedPrefixedOpcode(wasm.OpcodeMiscPrefix, sub)
	}
	switch wasm.OpcodeMisc(sub) {
	case wasm.OpcodeMiscI32TruncSatSF32, wasm.OpcodeMiscI32TruncSatUF32,
		wasm.OpcodeMiscI32TruncSatSF64, wasm.OpcodeMiscI32TruncSatUF64,
		wasm.OpcodeMiscI64TruncSatSF32, wasm.OpcodeMiscI64TruncSatUF32,
		wasm.OpcodeMiscI64TruncSatSF64, wasm.OpcodeMiscI64TruncSatUF64:
		if err := d.callback(d.delegate.OnConvertExpr(wasm.OpcodeMiscPrefix)); err != nil {
			return err
		}
		return d.callback(d.delegate.OnOpcodeUint32(sub))
	default:
		return d.unexpectedPrefixedOpcode(wasm.OpcodeMiscPrefix, sub)
	}
}

// emitBare invokes semantic, the instruction's semantic callback, before
// emitting the raw OnOpcodeBare event, matching the semantic-then-raw
// ordering every event pair in this file follows.
func (d *moduleDecoder) emitBare(semantic func() error) error {
	if err := d.callback(semantic()); err != nil {
		return err
	}
	return d.callback(d.delegate.OnOpcodeBare())
}

type numericOpcodeClassT int

const (
	numericClassNone numericOpcodeClassT = iota
	numericClassUnary
	numericClassBinary
	numericClassCompare
	numericClassConvert
)

// numericOpcodeClass classifies the dense single-byte arithmetic range
// (0x45-0xbf) into unary, binary, compare, or convert, matching the
// grouping wabt's opcode.def gives these instructions. None of these
// opcodes take an immediate.
func numericOpcodeClass(opcode wasm.Opcode) numericOpcodeClassT {
	switch opcode {
	case wasm.OpcodeI32Eqz, wasm.OpcodeI32Eq, wasm.OpcodeI32Ne,
		wasm.OpcodeI32LtS, wasm.OpcodeI32LtU, wasm.OpcodeI32GtS, wasm.OpcodeI32GtU,
		wasm.OpcodeI32LeS, wasm.OpcodeI32LeU, wasm.OpcodeI32GeS, wasm.OpcodeI32GeU,
		wasm.OpcodeI64Eqz, wasm.OpcodeI64Eq, wasm.OpcodeI64Ne,
		wasm.OpcodeI64LtS, wasm.OpcodeI64LtU, wasm.OpcodeI64GtS, wasm.OpcodeI64GtU,
		wasm.OpcodeI64LeS, wasm.OpcodeI64LeU, wasm.OpcodeI64GeS, wasm.OpcodeI64GeU,
		wasm.OpcodeF32Eq, wasm.OpcodeF32Ne, wasm.OpcodeF32Lt, wasm.OpcodeF32Gt, wasm.OpcodeF32Le, wasm.OpcodeF32Ge,
		wasm.OpcodeF64Eq, wasm.OpcodeF64Ne, wasm.OpcodeF64Lt, wasm.OpcodeF64Gt, wasm.OpcodeF64Le, wasm.OpcodeF64Ge:
		return numericClassCompare
	case wasm.OpcodeI32Clz, wasm.OpcodeI32Ctz, wasm.OpcodeI32Popcnt,
		wasm.OpcodeI64Clz, wasm.OpcodeI64Ctz, wasm.OpcodeI64Popcnt,
		wasm.OpcodeF32Abs, wasm.OpcodeF32Neg, wasm.OpcodeF32Ceil, wasm.OpcodeF32Floor,
		wasm.OpcodeF32Trunc, wasm.OpcodeF32Nearest, wasm.OpcodeF32Sqrt,
		wasm.OpcodeF64Abs, wasm.OpcodeF64Neg, wasm.OpcodeF64Ceil, wasm.OpcodeF64Floor,
		wasm.OpcodeF64Trunc, wasm.OpcodeF64Nearest, wasm.OpcodeF64Sqrt:
		return numericClassUnary
	case wasm.OpcodeI32Add, wasm.OpcodeI32Sub, wasm.OpcodeI32Mul, wasm.OpcodeI32DivS, wasm.OpcodeI32DivU,
		wasm.OpcodeI32RemS, wasm.OpcodeI32RemU, wasm.OpcodeI32And, wasm.OpcodeI32Or, wasm.OpcodeI32Xor,
		wasm.OpcodeI32Shl, wasm.OpcodeI32ShrS, wasm.OpcodeI32ShrU, wasm.OpcodeI32Rotl, wasm.OpcodeI32Rotr,
		wasm.OpcodeI64Add, wasm.OpcodeI64Sub, wasm.OpcodeI64Mul, wasm.OpcodeI64DivS, wasm.OpcodeI64DivU,
		wasm.OpcodeI64RemS, wasm.OpcodeI64RemU, wasm.OpcodeI64And, wasm.OpcodeI64Or, wasm.OpcodeI64Xor,
		wasm.OpcodeI64Shl, wasm.OpcodeI64ShrS, wasm.OpcodeI64ShrU, wasm.OpcodeI64Rotl, wasm.OpcodeI64Rotr,
		wasm.OpcodeF32Add, wasm.OpcodeF32Sub, wasm.OpcodeF32Mul, wasm.OpcodeF32Div,
		wasm.OpcodeF32Min, wasm.OpcodeF32Max, wasm.OpcodeF32Copysign,
		wasm.OpcodeF64Add, wasm.OpcodeF64Sub, wasm.OpcodeF64Mul, wasm.OpcodeF64Div,
		wasm.OpcodeF64Min, wasm.OpcodeF64Max, wasm.OpcodeF64Copysign:
		return numericClassBinary
	case wasm.OpcodeI32WrapI64, wasm.OpcodeI32TruncSF32, wasm.OpcodeI32TruncUF32,
		wasm.OpcodeI32TruncSF64, wasm.OpcodeI32TruncUF64,
		wasm.OpcodeI64ExtendSI32, wasm.OpcodeI64ExtendUI32, wasm.OpcodeI64TruncSF32, wasm.OpcodeI64TruncUF32,
		wasm.OpcodeI64TruncSF64, wasm.OpcodeI64TruncUF64,
		wasm.OpcodeF32ConvertSI32, wasm.OpcodeF32ConvertUI32, wasm.OpcodeF32ConvertSI64, wasm.OpcodeF32ConvertUI64,
		wasm.OpcodeF32DemoteF64,
		wasm.OpcodeF64ConvertSI32, wasm.OpcodeF64ConvertUI32, wasm.OpcodeF64ConvertSI64, wasm.OpcodeF64ConvertUI64,
		wasm.OpcodeF64PromoteF32,
		wasm.OpcodeI32ReinterpretF32, wasm.OpcodeI64ReinterpretF64, wasm.OpcodeF32ReinterpretI32, wasm.OpcodeF64ReinterpretI64:
		return numericClassConvert
	}
	return numericClassNone
}

func isLoadOpcode(opcode wasm.Opcode) bool {
	switch opcode {
	case wasm.OpcodeI32Load, wasm.OpcodeI64Load, wasm.OpcodeF32Load, wasm.OpcodeF64Load,
		wasm.OpcodeI32Load8S, wasm.OpcodeI32Load8U, wasm.OpcodeI32Load16S, wasm.OpcodeI32Load16U,
		wasm.OpcodeI64Load8S, wasm.OpcodeI64Load8U, wasm.OpcodeI64Load16S, wasm.OpcodeI64Load16U,
		wasm.OpcodeI64Load32S, wasm.OpcodeI64Load32U:
		return true
	}
	return false
}

func isStoreOpcode(opcode wasm.Opcode) bool {
	switch opcode {
	case wasm.OpcodeI32Store, wasm.OpcodeI64Store, wasm.OpcodeF32Store, wasm.OpcodeF64Store,
		wasm.OpcodeI32Store8, wasm.OpcodeI32Store16, wasm.OpcodeI64Store8, wasm.OpcodeI64Store16, wasm.OpcodeI64Store32:
		return true
	}
	return false
}
