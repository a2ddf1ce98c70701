//go:build amd64
// +build amd64

// Wasmtime cannot be used on non-amd64 platforms.
package binary

import (
	"testing"

	"github.com/bytecodealliance/wasmtime-go"
	"github.com/stretchr/testify/require"
	"github.com/wasmerio/wasmer-go/wasmer"

	"github.com/wasmcursor/wasmbin/internal/wasm"
)

// exampleText is compiled to binary by two independent toolchains
// (wasmtime and wasmer, both backed by wasm-tools via CGO) so this
// decoder's event stream can be checked against two outside
// implementations' idea of what the same module means, not just against
// itself.
const exampleText = `(module
  (type (func (param i32 i32) (result i32)))
  (func $add (type 0) (param i32 i32) (result i32)
    local.get 0
    local.get 1
    i32.add)
  (memory (export "mem") 1 3)
  (export "add" (func $add)))
`

type countingDelegate struct {
	BaseDelegate
	types, funcs, exports, memories int
}

func (c *countingDelegate) OnType(index wasm.Index, params, results []wasm.ValueType) error {
	c.types++
	return nil
}

func (c *countingDelegate) OnFunction(index, sigIndex wasm.Index) error {
	c.funcs++
	return nil
}

func (c *countingDelegate) OnExport(index wasm.Index, kind wasm.ExternKind, itemIndex wasm.Index, name string) error {
	c.exports++
	return nil
}

func (c *countingDelegate) OnMemory(index wasm.Index, limits wasm.Limits) error {
	c.memories++
	return nil
}

func TestCrossValidate_WasmtimeAndWasmerAgree(t *testing.T) {
	wasmtimeBinary, err := wasmtime.Wat2Wasm(exampleText)
	require.NoError(t, err)

	wasmerBinary, err := wasmer.Wat2Wasm(exampleText)
	require.NoError(t, err)

	wasmtimeCount := &countingDelegate{}
	require.NoError(t, DecodeModule(wasmtimeBinary, wasmtimeCount, Options{}))

	wasmerCount := &countingDelegate{}
	require.NoError(t, DecodeModule(wasmerBinary, wasmerCount, Options{}))

	require.Equal(t, wasmtimeCount.types, wasmerCount.types)
	require.Equal(t, wasmtimeCount.funcs, wasmerCount.funcs)
	require.Equal(t, wasmtimeCount.exports, wasmerCount.exports)
	require.Equal(t, wasmtimeCount.memories, wasmerCount.memories)

	require.Equal(t, 1, wasmtimeCount.types)
	require.Equal(t, 1, wasmtimeCount.funcs)
	require.Equal(t, 2, wasmtimeCount.exports)
	require.Equal(t, 1, wasmtimeCount.memories)
}

// TestCrossValidate_WasmtimeModuleValidates feeds a wasmtime-compiled
// binary through wasmtime's own validator as a sanity check that
// exampleText itself is well-formed, independent of this decoder.
func TestCrossValidate_WasmtimeModuleValidates(t *testing.T) {
	engine := wasmtime.NewEngine()
	binary, err := wasmtime.Wat2Wasm(exampleText)
	require.NoError(t, err)
	_, err = wasmtime.NewModule(engine, binary)
	require.NoError(t, err)
}
