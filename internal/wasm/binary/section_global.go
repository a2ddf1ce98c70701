package binary

import (
	"fmt"

	"github.com/wasmcursor/wasmbin/internal/wasm"
)

func (d *moduleDecoder) readGlobalSection(size uint32) error {
	if err := d.callback(d.delegate.BeginGlobalSection(size)); err != nil {
		return err
	}
	count, err := d.c.readIndex("global count")
	if err != nil {
		return d.fail(wasm.SectionIDGlobal, err)
	}
	if err := d.callback(d.delegate.OnGlobalCount(count)); err != nil {
		return err
	}
	for i := wasm.Index(0); i < count; i++ {
		if err := d.readGlobal(); err != nil {
			return d.fail(wasm.SectionIDGlobal, err)
		}
	}
	return d.callback(d.delegate.EndGlobalSection())
}

func (d *moduleDecoder) readGlobal() error {
	typ, err := d.c.readValueType("global type")
	if err != nil {
		return err
	}
	if !wasm.IsConcrete(typ) {
		return fmt.Errorf("global type 0x%x is not concrete: %w", typ, wasm.ErrBadType)
	}
	mutFlag, err := d.c.readU8()
	if err != nil {
		return err
	}
	if mutFlag > 1 {
		return fmt.Errorf("global mutability flag %d is not 0 or 1: %w", mutFlag, wasm.ErrBadType)
	}
	globalIndex := d.numGlobalImports + d.numGlobals
	d.numGlobals++
	if err := d.callback(d.delegate.BeginGlobal(globalIndex, typ, mutFlag == 1)); err != nil {
		return err
	}
	if err := d.callback(d.delegate.BeginGlobalInitExpr(globalIndex)); err != nil {
		return err
	}
	if err := d.readInitExpr(globalIndex); err != nil {
		return err
	}
	if err := d.callback(d.delegate.EndGlobalInitExpr(globalIndex)); err != nil {
		return err
	}
	return d.callback(d.delegate.EndGlobal(globalIndex))
}
