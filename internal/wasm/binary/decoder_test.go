package binary

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wasmcursor/wasmbin/internal/leb128"
	"github.com/wasmcursor/wasmbin/internal/wasm"
)

// recordingDelegate embeds BaseDelegate and records the name of every
// overridden event, so tests can assert on ordering without a full mock.
type recordingDelegate struct {
	BaseDelegate
	events []string
	errs   []string
}

func (r *recordingDelegate) BeginModule(version uint32) error {
	r.events = append(r.events, "BeginModule")
	return nil
}

func (r *recordingDelegate) EndModule() error {
	r.events = append(r.events, "EndModule")
	return nil
}

func (r *recordingDelegate) OnError(message string) bool {
	r.errs = append(r.errs, message)
	return false
}

func (r *recordingDelegate) BeginTypeSection(size uint32) error {
	r.events = append(r.events, "BeginTypeSection")
	return nil
}

func (r *recordingDelegate) OnType(index wasm.Index, params, results []wasm.ValueType) error {
	r.events = append(r.events, "OnType")
	return nil
}

func (r *recordingDelegate) EndTypeSection() error {
	r.events = append(r.events, "EndTypeSection")
	return nil
}

func (r *recordingDelegate) BeginFunctionSection(size uint32) error {
	r.events = append(r.events, "BeginFunctionSection")
	return nil
}

func (r *recordingDelegate) OnFunction(index, sigIndex wasm.Index) error {
	r.events = append(r.events, "OnFunction")
	return nil
}

func (r *recordingDelegate) BeginExportSection(size uint32) error {
	r.events = append(r.events, "BeginExportSection")
	return nil
}

func (r *recordingDelegate) OnExport(index wasm.Index, kind wasm.ExternKind, itemIndex wasm.Index, name string) error {
	r.events = append(r.events, "OnExport:"+name)
	return nil
}

func (r *recordingDelegate) BeginCodeSection(size uint32) error {
	r.events = append(r.events, "BeginCodeSection")
	return nil
}

func (r *recordingDelegate) BeginFunctionBody(index wasm.Index) error {
	r.events = append(r.events, "BeginFunctionBody")
	return nil
}

func (r *recordingDelegate) EndFunctionBody(index wasm.Index) error {
	r.events = append(r.events, "EndFunctionBody")
	return nil
}

func (r *recordingDelegate) OnI32ConstExpr(v int32) error {
	r.events = append(r.events, "OnI32ConstExpr")
	return nil
}

func (r *recordingDelegate) OnEndFunc() error {
	r.events = append(r.events, "OnEndFunc")
	return nil
}

// u32leb encodes v as an unsigned LEB128, the wire form of counts, indices,
// and section sizes.
func u32leb(v uint32) []byte { return leb128.EncodeUint32(v) }

// section frames body as a module section with the given id.
func section(id wasm.SectionID, body []byte) []byte {
	out := []byte{id}
	out = append(out, u32leb(uint32(len(body)))...)
	return append(out, body...)
}

func header() []byte {
	return []byte{0x00, 0x61, 0x73, 0x6d, 0x01, 0x00, 0x00, 0x00}
}

func TestDecodeModule_EmptyModule(t *testing.T) {
	d := &recordingDelegate{}
	err := DecodeModule(header(), d, Options{})
	require.NoError(t, err)
	require.Equal(t, []string{"BeginModule", "EndModule"}, d.events)
}

func TestDecodeModule_BadMagic(t *testing.T) {
	d := &recordingDelegate{}
	err := DecodeModule([]byte{0x00, 0x61, 0x73, 0x00, 0x01, 0x00, 0x00, 0x00}, d, Options{})
	require.Error(t, err)
	require.ErrorIs(t, err, wasm.ErrBadMagic)
}

func TestDecodeModule_BadVersion(t *testing.T) {
	d := &recordingDelegate{}
	err := DecodeModule([]byte{0x00, 0x61, 0x73, 0x6d, 0x02, 0x00, 0x00, 0x00}, d, Options{})
	require.Error(t, err)
	require.ErrorIs(t, err, wasm.ErrBadVersion)
}

func TestDecodeModule_Truncated(t *testing.T) {
	d := &recordingDelegate{}
	err := DecodeModule([]byte{0x00, 0x61, 0x73, 0x6d, 0x01, 0x00}, d, Options{})
	require.Error(t, err)
	require.ErrorIs(t, err, wasm.ErrUnexpectedEOF)
}

// typeSection builds a single func type (i32) -> i32.
func typeSectionBody() []byte {
	body := u32leb(1) // count
	body = append(body, 0x60)
	body = append(body, u32leb(1)...)
	body = append(body, wasm.ValueTypeI32)
	body = append(body, u32leb(1)...)
	body = append(body, wasm.ValueTypeI32)
	return body
}

func TestDecodeModule_TypeFunctionExportSection(t *testing.T) {
	data := header()
	data = append(data, section(wasm.SectionIDType, typeSectionBody())...)

	funcBody := u32leb(1)
	funcBody = append(funcBody, u32leb(0)...) // sig index 0
	data = append(data, section(wasm.SectionIDFunction, funcBody)...)

	exportBody := u32leb(1)
	exportBody = append(exportBody, u32leb(3)...)
	exportBody = append(exportBody, "add"...)
	exportBody = append(exportBody, wasm.ExternKindFunc)
	exportBody = append(exportBody, u32leb(0)...)
	data = append(data, section(wasm.SectionIDExport, exportBody)...)

	codeBody := u32leb(1)
	oneFuncBody := u32leb(0)                // no locals
	oneFuncBody = append(oneFuncBody, 0x41) // i32.const
	oneFuncBody = append(oneFuncBody, leb128.EncodeInt32(42)...)
	oneFuncBody = append(oneFuncBody, 0x0b) // end
	oneFuncBody = append(u32leb(uint32(len(oneFuncBody))), oneFuncBody...)
	codeBody = append(codeBody, oneFuncBody...)
	data = append(data, section(wasm.SectionIDCode, codeBody)...)

	d := &recordingDelegate{}
	err := DecodeModule(data, d, Options{})
	require.NoError(t, err)
	require.Equal(t, []string{
		"BeginModule",
		"BeginTypeSection", "OnType", "EndTypeSection",
		"BeginFunctionSection", "OnFunction",
		"BeginExportSection", "OnExport:add",
		"BeginCodeSection", "BeginFunctionBody", "OnI32ConstExpr", "OnEndFunc", "EndFunctionBody",
		"EndModule",
	}, d.events)
}

func TestDecodeModule_SectionOutOfOrder(t *testing.T) {
	data := header()
	data = append(data, section(wasm.SectionIDFunction, u32leb(0))...)
	data = append(data, section(wasm.SectionIDType, u32leb(0))...)

	d := &recordingDelegate{}
	err := DecodeModule(data, d, Options{})
	require.Error(t, err)
	require.ErrorIs(t, err, wasm.ErrSectionOrder)
}

func TestDecodeModule_CustomSectionsRepeatAnywhere(t *testing.T) {
	data := header()
	custom := u32leb(4)
	custom = append(custom, "test"...)
	data = append(data, section(wasm.SectionIDCustom, custom)...)
	data = append(data, section(wasm.SectionIDType, u32leb(0))...)
	data = append(data, section(wasm.SectionIDCustom, custom)...)

	d := &recordingDelegate{}
	err := DecodeModule(data, d, Options{})
	require.NoError(t, err)
}

func TestDecodeModule_FunctionSectionBadTypeIndex(t *testing.T) {
	data := header()
	data = append(data, section(wasm.SectionIDType, u32leb(0))...)
	funcBody := u32leb(1)
	funcBody = append(funcBody, u32leb(0)...)
	data = append(data, section(wasm.SectionIDFunction, funcBody)...)

	d := &recordingDelegate{}
	err := DecodeModule(data, d, Options{})
	require.Error(t, err)
	require.ErrorIs(t, err, wasm.ErrBadIndex)
}

// TestDecodeModule_SectionIDNonMinimalLEB verifies a section code encoded
// as a non-minimal (multi-byte) LEB128, legal per the format's own
// round-trip property, is read correctly rather than misread as a raw
// high-byte value.
func TestDecodeModule_SectionIDNonMinimalLEB(t *testing.T) {
	data := header()
	nonMinimalType := []byte{0x81, 0x00} // 2-byte encoding of section id 1 (Type)
	body := u32leb(0)
	data = append(data, nonMinimalType...)
	data = append(data, u32leb(uint32(len(body)))...)
	data = append(data, body...)

	d := &recordingDelegate{}
	err := DecodeModule(data, d, Options{})
	require.NoError(t, err)
	require.Equal(t, []string{"BeginModule", "BeginTypeSection", "EndTypeSection", "EndModule"}, d.events)
}

func TestDecodeModule_CodeSectionCountMismatch(t *testing.T) {
	data := header()
	data = append(data, section(wasm.SectionIDType, typeSectionBody())...)
	funcBody := u32leb(1)
	funcBody = append(funcBody, u32leb(0)...)
	data = append(data, section(wasm.SectionIDFunction, funcBody)...)
	data = append(data, section(wasm.SectionIDCode, u32leb(0))...)

	d := &recordingDelegate{}
	err := DecodeModule(data, d, Options{})
	require.Error(t, err)
}
