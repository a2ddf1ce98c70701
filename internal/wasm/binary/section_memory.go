package binary

import (
	"fmt"

	"github.com/wasmcursor/wasmbin/internal/wasm"
)

func (d *moduleDecoder) readMemorySection(size uint32) error {
	if err := d.callback(d.delegate.BeginMemorySection(size)); err != nil {
		return err
	}
	count, err := d.c.readIndex("memory count")
	if err != nil {
		return d.fail(wasm.SectionIDMemory, err)
	}
	if d.numTotalMemories()+count > 1 {
		return d.fail(wasm.SectionIDMemory, fmt.Errorf("module declares more than one memory: %w", wasm.ErrBadLimits))
	}
	if err := d.callback(d.delegate.OnMemoryCount(count)); err != nil {
		return err
	}
	for i := wasm.Index(0); i < count; i++ {
		limits, err := d.c.readMemoryLimits("memory limits")
		if err != nil {
			return d.fail(wasm.SectionIDMemory, err)
		}
		memoryIndex := d.numMemoryImports + d.numMemories
		d.numMemories++
		if err := d.callback(d.delegate.OnMemory(memoryIndex, limits)); err != nil {
			return err
		}
	}
	return d.callback(d.delegate.EndMemorySection())
}
