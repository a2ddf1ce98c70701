package binary

import (
	"fmt"

	"github.com/wasmcursor/wasmbin/internal/wasm"
)

func (d *moduleDecoder) readExportSection(size uint32) error {
	if err := d.callback(d.delegate.BeginExportSection(size)); err != nil {
		return err
	}
	count, err := d.c.readIndex("export count")
	if err != nil {
		return d.fail(wasm.SectionIDExport, err)
	}
	if err := d.callback(d.delegate.OnExportCount(count)); err != nil {
		return err
	}
	for i := wasm.Index(0); i < count; i++ {
		if err := d.readExport(i); err != nil {
			return d.fail(wasm.SectionIDExport, err)
		}
	}
	return d.callback(d.delegate.EndExportSection())
}

func (d *moduleDecoder) readExport(i wasm.Index) error {
	name, err := d.c.readString("export name")
	if err != nil {
		return err
	}
	kind, err := d.c.readU8()
	if err != nil {
		return err
	}
	itemIndex, err := d.c.readIndex("export item index")
	if err != nil {
		return err
	}
	switch kind {
	case wasm.ExternKindFunc:
		if itemIndex >= d.numTotalFuncs() {
			return fmt.Errorf("export func index %d out of range: %w", itemIndex, wasm.ErrBadIndex)
		}
	case wasm.ExternKindTable:
		if itemIndex >= d.numTotalTables() {
			return fmt.Errorf("export table index %d out of range: %w", itemIndex, wasm.ErrBadIndex)
		}
	case wasm.ExternKindMemory:
		if itemIndex >= d.numTotalMemories() {
			return fmt.Errorf("export memory index %d out of range: %w", itemIndex, wasm.ErrBadIndex)
		}
	case wasm.ExternKindGlobal:
		if itemIndex >= d.numTotalGlobals() {
			return fmt.Errorf("export global index %d out of range: %w", itemIndex, wasm.ErrBadIndex)
		}
	case wasm.ExternKindException:
		if err := d.opts.Features.Require(wasm.FeatureExceptions); err != nil {
			return err
		}
		// Not bounds-checked here: the "exception" custom section that
		// defines the exception index space may appear after this
		// section, so its count isn't known yet.
	default:
		return fmt.Errorf("export kind %d is not recognized: %w", kind, wasm.ErrBadType)
	}
	return d.callback(d.delegate.OnExport(i, kind, itemIndex, name))
}
