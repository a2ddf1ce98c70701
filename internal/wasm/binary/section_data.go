package binary

import (
	"fmt"

	"github.com/wasmcursor/wasmbin/internal/wasm"
)

func (d *moduleDecoder) readDataSection(size uint32) error {
	if err := d.callback(d.delegate.BeginDataSection(size)); err != nil {
		return err
	}
	count, err := d.c.readIndex("data segment count")
	if err != nil {
		return d.fail(wasm.SectionIDData, err)
	}
	if count > 0 && d.numTotalMemories() == 0 {
		return d.fail(wasm.SectionIDData, fmt.Errorf("data segment requires a memory: %w", wasm.ErrBadIndex))
	}
	if err := d.callback(d.delegate.OnDataSegmentCount(count)); err != nil {
		return err
	}
	for i := wasm.Index(0); i < count; i++ {
		if err := d.readDataSegment(i); err != nil {
			return d.fail(wasm.SectionIDData, err)
		}
	}
	return d.callback(d.delegate.EndDataSection())
}

func (d *moduleDecoder) readDataSegment(i wasm.Index) error {
	memoryIndex, err := d.c.readIndex("data segment memory index")
	if err != nil {
		return err
	}
	if memoryIndex >= d.numTotalMemories() {
		return fmt.Errorf("data segment memory index %d out of range: %w", memoryIndex, wasm.ErrBadIndex)
	}
	if err := d.callback(d.delegate.BeginDataSegment(i, memoryIndex)); err != nil {
		return err
	}
	if err := d.callback(d.delegate.BeginDataSegmentInitExpr(i)); err != nil {
		return err
	}
	if err := d.readInitExpr(i); err != nil {
		return err
	}
	if err := d.callback(d.delegate.EndDataSegmentInitExpr(i)); err != nil {
		return err
	}
	n, err := d.c.readIndex("data segment length")
	if err != nil {
		return err
	}
	data, err := d.c.readBytes(n)
	if err != nil {
		return err
	}
	if err := d.callback(d.delegate.OnDataSegmentData(i, data)); err != nil {
		return err
	}
	return d.callback(d.delegate.EndDataSegment(i))
}
