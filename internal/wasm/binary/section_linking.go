package binary

import (
	"fmt"

	"github.com/wasmcursor/wasmbin/internal/wasm"
)

const (
	linkingSubsectionStackPointer = 1
	linkingSubsectionSymbolInfo   = 2
)

// readLinkingSection decodes the "linking" custom section: a sequence of
// (type, size)-framed subsections. Only StackPointer and SymbolInfo are
// interpreted; others are skipped whole.
func (d *moduleDecoder) readLinkingSection(size uint32) error {
	if err := d.callback(d.delegate.BeginLinkingSection(size)); err != nil {
		return err
	}
	for d.c.remaining() > 0 {
		subType, err := d.c.readIndex("linking subsection type")
		if err != nil {
			return err
		}
		subSize, err := d.c.readIndex("linking subsection size")
		if err != nil {
			return err
		}
		subEnd := d.c.offset + int(subSize)
		if subEnd > d.c.readEnd {
			return fmt.Errorf("linking subsection extends past end of section: %w", wasm.ErrUnfinishedSubsection)
		}
		prev := d.c.pushReadEnd(subEnd)
		switch subType {
		case linkingSubsectionStackPointer:
			err = d.readStackPointerSubsection()
		case linkingSubsectionSymbolInfo:
			err = d.readSymbolInfoSubsection()
		default:
			_, err = d.c.readBytes(uint32(d.c.remaining()))
		}
		if err == nil && d.c.offset != subEnd {
			err = fmt.Errorf("linking subsection size mismatch: %w", wasm.ErrUnfinishedSubsection)
		}
		d.c.popReadEnd(prev)
		if err != nil {
			return err
		}
	}
	return d.callback(d.delegate.EndLinkingSection())
}

func (d *moduleDecoder) readStackPointerSubsection() error {
	globalIndex, err := d.c.readIndex("stack pointer global index")
	if err != nil {
		return err
	}
	return d.callback(d.delegate.OnStackGlobal(globalIndex))
}

func (d *moduleDecoder) readSymbolInfoSubsection() error {
	count, err := d.c.readIndex("symbol info count")
	if err != nil {
		return err
	}
	if err := d.callback(d.delegate.OnSymbolInfoCount(count)); err != nil {
		return err
	}
	for i := wasm.Index(0); i < count; i++ {
		name, err := d.c.readString("symbol info name")
		if err != nil {
			return err
		}
		flags, err := d.c.readIndex("symbol info flags")
		if err != nil {
			return err
		}
		if err := d.callback(d.delegate.OnSymbolInfo(name, flags)); err != nil {
			return err
		}
	}
	return nil
}
