package binary

import (
	"fmt"

	"github.com/wasmcursor/wasmbin/internal/wasm"
)

func (d *moduleDecoder) readTableSection(size uint32) error {
	if err := d.callback(d.delegate.BeginTableSection(size)); err != nil {
		return err
	}
	count, err := d.c.readIndex("table count")
	if err != nil {
		return d.fail(wasm.SectionIDTable, err)
	}
	if d.numTotalTables()+count > 1 {
		return d.fail(wasm.SectionIDTable, fmt.Errorf("module declares more than one table: %w", wasm.ErrBadLimits))
	}
	if err := d.callback(d.delegate.OnTableCount(count)); err != nil {
		return err
	}
	for i := wasm.Index(0); i < count; i++ {
		elemType, err := d.c.readValueType("table element type")
		if err != nil {
			return d.fail(wasm.SectionIDTable, err)
		}
		if elemType != wasm.ValueTypeAnyFunc {
			return d.fail(wasm.SectionIDTable, fmt.Errorf("table element type 0x%x is not anyfunc: %w", elemType, wasm.ErrBadType))
		}
		limits, err := d.c.readLimits("table limits")
		if err != nil {
			return d.fail(wasm.SectionIDTable, err)
		}
		tableIndex := d.numTableImports + d.numTables
		d.numTables++
		if err := d.callback(d.delegate.OnTable(tableIndex, elemType, limits)); err != nil {
			return err
		}
	}
	return d.callback(d.delegate.EndTableSection())
}
