package binary

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wasmcursor/wasmbin/internal/leb128"
	"github.com/wasmcursor/wasmbin/internal/wasm"
)

type exprRecordingDelegate struct {
	BaseDelegate
	bare       []string
	opcodes    []wasm.Opcode
	rawOpcodes []wasm.Opcode
}

func (r *exprRecordingDelegate) OnOpcodeBare() error {
	return nil
}

func (r *exprRecordingDelegate) OnUnreachableExpr() error {
	r.bare = append(r.bare, "unreachable")
	return nil
}

func (r *exprRecordingDelegate) OnEndFunc() error {
	r.bare = append(r.bare, "end")
	return nil
}

func (r *exprRecordingDelegate) OnBinaryExpr(opcode wasm.Opcode) error {
	r.opcodes = append(r.opcodes, opcode)
	return nil
}

func (r *exprRecordingDelegate) OnOpcode(opcode wasm.Opcode) error {
	r.rawOpcodes = append(r.rawOpcodes, opcode)
	return nil
}

func newModuleDecoderFor(data []byte) *moduleDecoder {
	return &moduleDecoder{c: newCursor(data), delegate: &exprRecordingDelegate{}, opts: Options{}}
}

func TestReadFunctionBody_SimpleSequence(t *testing.T) {
	data := []byte{0x00, 0x6a, 0x0b} // unreachable, i32.add, end
	d := newModuleDecoderFor(data)
	rec := d.delegate.(*exprRecordingDelegate)
	err := d.readFunctionBody(len(data))
	require.NoError(t, err)
	require.Equal(t, []string{"unreachable", "end"}, rec.bare)
	require.Equal(t, []wasm.Opcode{wasm.OpcodeI32Add}, rec.opcodes)
}

func TestReadFunctionBody_FiresOnOpcodeForEveryInstruction(t *testing.T) {
	data := []byte{0x00, 0x6a, 0x0b} // unreachable, i32.add, end
	d := newModuleDecoderFor(data)
	rec := d.delegate.(*exprRecordingDelegate)
	err := d.readFunctionBody(len(data))
	require.NoError(t, err)
	require.Equal(t, []wasm.Opcode{wasm.OpcodeUnreachable, wasm.OpcodeI32Add, wasm.OpcodeEnd}, rec.rawOpcodes)
}

func TestReadFunctionBody_MissingEnd(t *testing.T) {
	data := []byte{0x00}
	d := newModuleDecoderFor(data)
	err := d.readFunctionBody(len(data))
	require.Error(t, err)
	require.ErrorIs(t, err, wasm.ErrUnfinishedSection)
}

func TestReadInitExpr_I32Const(t *testing.T) {
	data := append([]byte{wasm.OpcodeI32Const}, leb128.EncodeInt32(7)...)
	data = append(data, wasm.OpcodeEnd)
	d := newModuleDecoderFor(data)
	err := d.readInitExpr(0)
	require.NoError(t, err)
}

func TestReadInitExpr_RejectsNonConstOpcode(t *testing.T) {
	data := []byte{wasm.OpcodeNop, wasm.OpcodeEnd}
	d := newModuleDecoderFor(data)
	err := d.readInitExpr(0)
	require.Error(t, err)
	require.ErrorIs(t, err, wasm.ErrBadOpcode)
}

func TestReadInitExpr_RejectsMissingEnd(t *testing.T) {
	data := append([]byte{wasm.OpcodeI32Const}, leb128.EncodeInt32(7)...)
	data = append(data, wasm.OpcodeNop)
	d := newModuleDecoderFor(data)
	err := d.readInitExpr(0)
	require.Error(t, err)
	require.ErrorIs(t, err, wasm.ErrBadOpcode)
}

type orderRecordingDelegate struct {
	BaseDelegate
	events []string
}

func (r *orderRecordingDelegate) OnBrExpr(depth wasm.Index) error {
	r.events = append(r.events, "OnBrExpr")
	return nil
}

func (r *orderRecordingDelegate) OnOpcodeIndex(value wasm.Index) error {
	r.events = append(r.events, "OnOpcodeIndex")
	return nil
}

func TestDecodeInstruction_SemanticEventFiresBeforeRawEvent(t *testing.T) {
	data := append([]byte{wasm.OpcodeBr}, u32leb(2)...)
	d := &moduleDecoder{c: newCursor(data), delegate: &orderRecordingDelegate{}, opts: Options{}}
	opcode, err := d.c.readU8()
	require.NoError(t, err)
	err = d.decodeInstruction(opcode, len(data))
	require.NoError(t, err)
	require.Equal(t, []string{"OnBrExpr", "OnOpcodeIndex"}, d.delegate.(*orderRecordingDelegate).events)
}

func TestDecodeBrTable(t *testing.T) {
	data := u32leb(2)
	data = append(data, u32leb(1)...)
	data = append(data, u32leb(2)...)
	data = append(data, u32leb(3)...)
	d := newModuleDecoderFor(data)
	err := d.decodeBrTable()
	require.NoError(t, err)
}

func TestNumericOpcodeClass(t *testing.T) {
	require.Equal(t, numericClassBinary, numericOpcodeClass(wasm.OpcodeI32Add))
	require.Equal(t, numericClassUnary, numericOpcodeClass(wasm.OpcodeI32Clz))
	require.Equal(t, numericClassCompare, numericOpcodeClass(wasm.OpcodeI32Eq))
	require.Equal(t, numericClassConvert, numericOpcodeClass(wasm.OpcodeI32WrapI64))
	require.Equal(t, numericClassNone, numericOpcodeClass(wasm.OpcodeNop))
}

func TestIsLoadStoreOpcode(t *testing.T) {
	require.True(t, isLoadOpcode(wasm.OpcodeI32Load))
	require.False(t, isLoadOpcode(wasm.OpcodeI32Store))
	require.True(t, isStoreOpcode(wasm.OpcodeI64Store32))
	require.False(t, isStoreOpcode(wasm.OpcodeNop))
}

type callIndirectRecordingDelegate struct {
	BaseDelegate
	sigIndex   wasm.Index
	rawA, rawB uint32
}

func (r *callIndirectRecordingDelegate) OnCallIndirectExpr(sigIndex wasm.Index) error {
	r.sigIndex = sigIndex
	return nil
}

func (r *callIndirectRecordingDelegate) OnOpcodeUint32Uint32(a, b uint32) error {
	r.rawA, r.rawB = a, b
	return nil
}

// TestDecodeInstruction_CallIndirectCarriesReservedByte verifies the raw
// event for call_indirect pairs the signature index with the reserved byte,
// rather than dropping the reserved byte from the syntactic event.
func TestDecodeInstruction_CallIndirectCarriesReservedByte(t *testing.T) {
	data := append([]byte{wasm.OpcodeCallIndirect}, u32leb(2)...)
	data = append(data, 0x00) // reserved byte
	rec := &callIndirectRecordingDelegate{}
	d := &moduleDecoder{c: newCursor(data), delegate: rec, opts: Options{}}
	d.numTypes = 3
	opcode, err := d.c.readU8()
	require.NoError(t, err)
	err = d.decodeInstruction(opcode, len(data))
	require.NoError(t, err)
	require.Equal(t, wasm.Index(2), rec.sigIndex)
	require.Equal(t, uint32(2), rec.rawA)
	require.Equal(t, uint32(0), rec.rawB)
}

// TestDecodeMiscInstruction_RejectsOutOfRangeSubOpcode verifies a sub-opcode
// value that would alias onto a valid case after truncation to byte (e.g.
// 256 aliasing to 0) is rejected instead of silently accepted.
func TestDecodeMiscInstruction_RejectsOutOfRangeSubOpcode(t *testing.T) {
	data := u32leb(256)
	d := newModuleDecoderFor(data)
	d.opts.Features = wasm.FeatureSaturatingFloatToInt
	err := d.decodeMiscInstruction()
	require.Error(t, err)
	require.ErrorIs(t, err, wasm.ErrBadOpcode)
}

// TestDecodeMiscInstruction_RejectsOutOfRangeSubOpcode_JustOverTable exercises
// a value one past the last valid sub-opcode, with no aliasing involved.
func TestDecodeMiscInstruction_RejectsOutOfRangeSubOpcode_JustOverTable(t *testing.T) {
	data := u32leb(8)
	d := newModuleDecoderFor(data)
	d.opts.Features = wasm.FeatureSaturatingFloatToInt
	err := d.decodeMiscInstruction()
	require.Error(t, err)
	require.ErrorIs(t, err, wasm.ErrBadOpcode)
}

func TestDecodeMiscInstruction_FeatureDisabledErrorIsBadOpcode(t *testing.T) {
	data := u32leb(0)
	d := newModuleDecoderFor(data)
	err := d.decodeMiscInstruction()
	require.Error(t, err)
	require.ErrorIs(t, err, wasm.ErrBadOpcode)
}

// TestDecodeInstruction_CatchAllFeatureDisabledErrorIsBadOpcode verifies the
// exceptions feature gate on catch_all wraps wasm.ErrBadOpcode.
func TestDecodeInstruction_CatchAllFeatureDisabledErrorIsBadOpcode(t *testing.T) {
	data := []byte{wasm.OpcodeCatchAll}
	d := newModuleDecoderFor(data)
	opcode, err := d.c.readU8()
	require.NoError(t, err)
	err = d.decodeInstruction(opcode, len(data))
	require.Error(t, err)
	require.ErrorIs(t, err, wasm.ErrBadOpcode)
}

// TestDecodeBlockLike_TryFeatureDisabledErrorIsBadOpcode verifies the
// exceptions feature gate on try blocks wraps wasm.ErrBadOpcode.
func TestDecodeBlockLike_TryFeatureDisabledErrorIsBadOpcode(t *testing.T) {
	data := []byte{wasm.ValueTypeVoid}
	d := newModuleDecoderFor(data)
	err := d.decodeBlockLike(wasm.OpcodeTry)
	require.Error(t, err)
	require.ErrorIs(t, err, wasm.ErrBadOpcode)
}
