package binary

import (
	"fmt"

	"github.com/wasmcursor/wasmbin/internal/wasm"
)

func (d *moduleDecoder) readElementSection(size uint32) error {
	if err := d.callback(d.delegate.BeginElementSection(size)); err != nil {
		return err
	}
	count, err := d.c.readIndex("element segment count")
	if err != nil {
		return d.fail(wasm.SectionIDElement, err)
	}
	if count > 0 && d.numTotalTables() == 0 {
		return d.fail(wasm.SectionIDElement, fmt.Errorf("element segment requires a table: %w", wasm.ErrBadIndex))
	}
	if err := d.callback(d.delegate.OnElementSegmentCount(count)); err != nil {
		return err
	}
	for i := wasm.Index(0); i < count; i++ {
		if err := d.readElementSegment(i); err != nil {
			return d.fail(wasm.SectionIDElement, err)
		}
	}
	return d.callback(d.delegate.EndElementSection())
}

func (d *moduleDecoder) readElementSegment(i wasm.Index) error {
	tableIndex, err := d.c.readIndex("element segment table index")
	if err != nil {
		return err
	}
	if tableIndex >= d.numTotalTables() {
		return fmt.Errorf("element segment table index %d out of range: %w", tableIndex, wasm.ErrBadIndex)
	}
	if err := d.callback(d.delegate.BeginElementSegment(i, tableIndex)); err != nil {
		return err
	}
	if err := d.callback(d.delegate.BeginElementSegmentInitExpr(i)); err != nil {
		return err
	}
	if err := d.readInitExpr(i); err != nil {
		return err
	}
	if err := d.callback(d.delegate.EndElementSegmentInitExpr(i)); err != nil {
		return err
	}
	numFuncs, err := d.c.readIndex("element segment function count")
	if err != nil {
		return err
	}
	if err := d.callback(d.delegate.OnElementSegmentFunctionIndexCount(i, numFuncs)); err != nil {
		return err
	}
	for j := wasm.Index(0); j < numFuncs; j++ {
		funcIndex, err := d.c.readIndex("element segment function index")
		if err != nil {
			return err
		}
		if funcIndex >= d.numTotalFuncs() {
			return fmt.Errorf("element segment function index %d out of range: %w", funcIndex, wasm.ErrBadIndex)
		}
		if err := d.callback(d.delegate.OnElementSegmentFunctionIndex(i, funcIndex)); err != nil {
			return err
		}
	}
	return d.callback(d.delegate.EndElementSegment(i))
}
