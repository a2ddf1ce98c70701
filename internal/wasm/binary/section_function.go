package binary

import (
	"fmt"

	"github.com/wasmcursor/wasmbin/internal/wasm"
)

func (d *moduleDecoder) readFunctionSection(size uint32) error {
	if err := d.callback(d.delegate.BeginFunctionSection(size)); err != nil {
		return err
	}
	count, err := d.c.readIndex("function count")
	if err != nil {
		return d.fail(wasm.SectionIDFunction, err)
	}
	if err := d.callback(d.delegate.OnFunctionCount(count)); err != nil {
		return err
	}
	for i := wasm.Index(0); i < count; i++ {
		sigIndex, err := d.c.readIndex("function type")
		if err != nil {
			return d.fail(wasm.SectionIDFunction, err)
		}
		if sigIndex >= d.numTypes {
			return d.fail(wasm.SectionIDFunction, fmt.Errorf("function type index %d out of range: %w", sigIndex, wasm.ErrBadIndex))
		}
		funcIndex := d.numFuncImports + d.numFunctions
		d.numFunctions++
		if err := d.callback(d.delegate.OnFunction(funcIndex, sigIndex)); err != nil {
			return err
		}
	}
	return d.callback(d.delegate.EndFunctionSection())
}
