package binary

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wasmcursor/wasmbin/internal/wasm"
)

type customRecordingDelegate struct {
	BaseDelegate
	funcNames  map[wasm.Index]string
	localNames map[wasm.Index]map[wasm.Index]string
	relocs     []uint32
	stackGlobal wasm.Index
	symbols    []string
}

func (r *customRecordingDelegate) OnFunctionName(funcIndex wasm.Index, name string) error {
	if r.funcNames == nil {
		r.funcNames = map[wasm.Index]string{}
	}
	r.funcNames[funcIndex] = name
	return nil
}

func (r *customRecordingDelegate) OnLocalName(funcIndex, localIndex wasm.Index, name string) error {
	if r.localNames == nil {
		r.localNames = map[wasm.Index]map[wasm.Index]string{}
	}
	if r.localNames[funcIndex] == nil {
		r.localNames[funcIndex] = map[wasm.Index]string{}
	}
	r.localNames[funcIndex][localIndex] = name
	return nil
}

func (r *customRecordingDelegate) OnReloc(relocType, offset, index, addend uint32) error {
	r.relocs = append(r.relocs, relocType)
	return nil
}

func (r *customRecordingDelegate) OnStackGlobal(globalIndex wasm.Index) error {
	r.stackGlobal = globalIndex
	return nil
}

func (r *customRecordingDelegate) OnSymbolInfo(name string, flags uint32) error {
	r.symbols = append(r.symbols, name)
	return nil
}

func namesSectionBody(t *testing.T) []byte {
	t.Helper()
	funcSub := u32leb(1) // count
	funcSub = append(funcSub, u32leb(0)...)
	funcSub = append(funcSub, u32leb(3)...)
	funcSub = append(funcSub, "foo"...)

	body := []byte{nameSubsectionFunction}
	body = append(body, u32leb(uint32(len(funcSub)))...)
	body = append(body, funcSub...)
	return body
}

func TestReadNamesSection_Function(t *testing.T) {
	body := namesSectionBody(t)
	d := &moduleDecoder{c: newCursor(body), delegate: &customRecordingDelegate{}, opts: Options{}}
	d.c.readEnd = len(body)
	d.numFunctions = 1
	err := d.readNamesSection(uint32(len(body)))
	require.NoError(t, err)
	rec := d.delegate.(*customRecordingDelegate)
	require.Equal(t, "foo", rec.funcNames[0])
}

// TestReadNamesSection_FunctionIndexOutOfRange verifies a function name
// index that is strictly increasing but points past the module's declared
// function count is rejected, not just checked for ordering.
func TestReadNamesSection_FunctionIndexOutOfRange(t *testing.T) {
	body := namesSectionBody(t)
	d := &moduleDecoder{c: newCursor(body), delegate: &customRecordingDelegate{}, opts: Options{}}
	d.c.readEnd = len(body)
	err := d.readNamesSection(uint32(len(body)))
	require.Error(t, err)
	require.ErrorIs(t, err, wasm.ErrBadIndex)
}

func TestReadLocalNameSubsection_LocalIndexOutOfRange(t *testing.T) {
	body := u32leb(1) // one function
	body = append(body, u32leb(0)...)   // func index 0
	body = append(body, u32leb(1)...)   // declares 1 local
	body = append(body, u32leb(5)...)   // local index 5, out of range
	body = append(body, u32leb(3)...)
	body = append(body, "loc"...)

	d := &moduleDecoder{c: newCursor(body), delegate: &customRecordingDelegate{}, opts: Options{}}
	d.c.readEnd = len(body)
	d.numFunctions = 1
	err := d.readLocalNameSubsection(nameSubsectionLocal, uint32(len(body)))
	require.Error(t, err)
	require.ErrorIs(t, err, wasm.ErrBadIndex)
}

func TestReadNamesSection_OutOfOrderSubsections(t *testing.T) {
	localSub := u32leb(0)
	body := []byte{nameSubsectionLocal}
	body = append(body, u32leb(uint32(len(localSub)))...)
	body = append(body, localSub...)

	funcSub := u32leb(0)
	body = append(body, nameSubsectionFunction)
	body = append(body, u32leb(uint32(len(funcSub)))...)
	body = append(body, funcSub...)

	d := &moduleDecoder{c: newCursor(body), delegate: &customRecordingDelegate{}, opts: Options{}}
	d.c.readEnd = len(body)
	err := d.readNamesSection(uint32(len(body)))
	require.Error(t, err)
	require.ErrorIs(t, err, wasm.ErrSubsectionOrder)
}

func TestReadRelocSection(t *testing.T) {
	body := u32leb(uint32(wasm.SectionIDCode))
	body = append(body, u32leb(1)...) // count
	body = append(body, u32leb(RelocFuncIndexLEB)...)
	body = append(body, u32leb(10)...) // offset
	body = append(body, u32leb(2)...)  // index

	d := &moduleDecoder{c: newCursor(body), delegate: &customRecordingDelegate{}, opts: Options{}}
	d.c.readEnd = len(body)
	err := d.readRelocSection(uint32(len(body)))
	require.NoError(t, err)
	rec := d.delegate.(*customRecordingDelegate)
	require.Equal(t, []uint32{RelocFuncIndexLEB}, rec.relocs)
}

func TestReadLinkingSection_StackPointer(t *testing.T) {
	sub := u32leb(5)
	body := []byte{linkingSubsectionStackPointer}
	body = append(body, u32leb(uint32(len(sub)))...)
	body = append(body, sub...)

	d := &moduleDecoder{c: newCursor(body), delegate: &customRecordingDelegate{}, opts: Options{}}
	d.c.readEnd = len(body)
	err := d.readLinkingSection(uint32(len(body)))
	require.NoError(t, err)
	rec := d.delegate.(*customRecordingDelegate)
	require.Equal(t, wasm.Index(5), rec.stackGlobal)
}

func TestReadLinkingSection_SymbolInfo(t *testing.T) {
	symSub := u32leb(1)
	symSub = append(symSub, u32leb(3)...)
	symSub = append(symSub, "bar"...)
	symSub = append(symSub, u32leb(0)...)

	body := []byte{linkingSubsectionSymbolInfo}
	body = append(body, u32leb(uint32(len(symSub)))...)
	body = append(body, symSub...)

	d := &moduleDecoder{c: newCursor(body), delegate: &customRecordingDelegate{}, opts: Options{}}
	d.c.readEnd = len(body)
	err := d.readLinkingSection(uint32(len(body)))
	require.NoError(t, err)
	rec := d.delegate.(*customRecordingDelegate)
	require.Equal(t, []string{"bar"}, rec.symbols)
}

func TestReadExceptionType(t *testing.T) {
	body := u32leb(2)
	body = append(body, wasm.ValueTypeI32, wasm.ValueTypeI64)
	d := &moduleDecoder{c: newCursor(body), delegate: &customRecordingDelegate{}, opts: Options{}}
	d.c.readEnd = len(body)
	sig, err := d.readExceptionType()
	require.NoError(t, err)
	require.Equal(t, []wasm.ValueType{wasm.ValueTypeI32, wasm.ValueTypeI64}, sig)
}
