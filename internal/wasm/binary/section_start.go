package binary

import (
	"fmt"

	"github.com/wasmcursor/wasmbin/internal/wasm"
)

func (d *moduleDecoder) readStartSection(size uint32) error {
	if err := d.callback(d.delegate.BeginStartSection(size)); err != nil {
		return err
	}
	index, err := d.c.readIndex("start function index")
	if err != nil {
		return d.fail(wasm.SectionIDStart, err)
	}
	if index >= d.numTotalFuncs() {
		return d.fail(wasm.SectionIDStart, fmt.Errorf("start function index %d out of range: %w", index, wasm.ErrBadIndex))
	}
	if err := d.callback(d.delegate.OnStartFunction(index)); err != nil {
		return err
	}
	return d.callback(d.delegate.EndStartSection())
}
