// Package binary implements a streaming, push-style decoder for the binary
// WebAssembly module format: DecodeModule reads a module from a byte slice
// and drives a Delegate through an ordered sequence of callbacks, without
// ever materializing an abstract syntax tree of its own.
package binary

import (
	"fmt"

	"github.com/wasmcursor/wasmbin/internal/wasm"
)

var wasmMagic = [4]byte{0x00, 0x61, 0x73, 0x6d}

const encodingVersion uint32 = 1

const noSection = 0xff // sentinel: no standard section seen yet

// DecodeModule parses data as a binary WebAssembly module, driving delegate
// through a strictly ordered sequence of Begin/On/End callbacks. Decoding
// stops at the first error: either a malformed encoding, reported by
// wrapping one of the sentinel errors in package wasm inside a
// *DecodeError, or a non-nil return from a Delegate callback, reported as
// wasm.ErrCallbackFailure.
func DecodeModule(data []byte, delegate Delegate, opts Options) error {
	d := &moduleDecoder{
		c:                newCursor(data),
		delegate:         delegate,
		opts:             opts,
		lastKnownSection: noSection,
	}
	return d.run()
}

type moduleDecoder struct {
	c        *cursor
	delegate Delegate
	opts     Options

	lastKnownSection wasm.SectionID

	numFuncImports      wasm.Index
	numTableImports     wasm.Index
	numMemoryImports    wasm.Index
	numGlobalImports    wasm.Index
	numExceptionImports wasm.Index

	numTypes      wasm.Index
	numFunctions  wasm.Index
	numTables     wasm.Index
	numMemories   wasm.Index
	numGlobals    wasm.Index
	numExceptions wasm.Index
}

func (d *moduleDecoder) numTotalFuncs() wasm.Index      { return d.numFuncImports + d.numFunctions }
func (d *moduleDecoder) numTotalTables() wasm.Index     { return d.numTableImports + d.numTables }
func (d *moduleDecoder) numTotalMemories() wasm.Index   { return d.numMemoryImports + d.numMemories }
func (d *moduleDecoder) numTotalGlobals() wasm.Index    { return d.numGlobalImports + d.numGlobals }
func (d *moduleDecoder) numTotalExceptions() wasm.Index { return d.numExceptionImports + d.numExceptions }

func (d *moduleDecoder) fail(section wasm.SectionID, err error) error {
	if err == nil {
		return nil
	}
	return newDecodeError(d.c.offset, section, err)
}

// reportError surfaces a malformed-encoding error to the delegate. If the
// delegate doesn't handle it, or StopOnFirstError is set, decoding aborts.
func (d *moduleDecoder) reportError(section wasm.SectionID, err error) error {
	wrapped := d.fail(section, err)
	if d.opts.StopOnFirstError {
		return wrapped
	}
	if handled := d.delegate.OnError(wrapped.Error()); !handled {
		return wrapped
	}
	return nil
}

func (d *moduleDecoder) callback(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %v", wasm.ErrCallbackFailure, err)
}

func (d *moduleDecoder) run() error {
	if err := d.readHeader(); err != nil {
		return err
	}
	d.delegate.OnSetState(d.c.offset)
	if err := d.callback(d.delegate.BeginModule(encodingVersion)); err != nil {
		return err
	}
	if err := d.readSections(); err != nil {
		return err
	}
	d.delegate.OnSetState(d.c.offset)
	return d.callback(d.delegate.EndModule())
}

func (d *moduleDecoder) readHeader() error {
	magic, err := d.c.readBytes(4)
	if err != nil {
		return d.fail(wasm.SectionIDCustom, fmt.Errorf("%w: %v", wasm.ErrBadMagic, err))
	}
	if [4]byte{magic[0], magic[1], magic[2], magic[3]} != wasmMagic {
		return d.fail(wasm.SectionIDCustom, wasm.ErrBadMagic)
	}
	version, err := d.c.readU32LE()
	if err != nil {
		return d.fail(wasm.SectionIDCustom, fmt.Errorf("%v: %w", wasm.ErrBadVersion, err))
	}
	if version != encodingVersion {
		return d.fail(wasm.SectionIDCustom, wasm.ErrBadVersion)
	}
	return nil
}

// readSections loops over the module's section sequence. Each iteration
// temporarily widens the framing bound to the full buffer to read the
// section header (id + size), matching binary-reader.cc's ReadSections,
// then tightens it to the section's own declared extent for the body.
func (d *moduleDecoder) readSections() error {
	for d.c.offset < d.c.size {
		prev := d.c.pushReadEnd(d.c.size)
		rawID, err := d.c.readIndex("section id")
		if err != nil {
			d.c.popReadEnd(prev)
			return d.fail(wasm.SectionIDCustom, err)
		}
		id := wasm.SectionID(rawID)
		size, err := d.c.readIndex("section size")
		if err != nil {
			d.c.popReadEnd(prev)
			return d.fail(wasm.SectionIDCustom, err)
		}
		sectionEnd := d.c.offset + int(size)
		if sectionEnd < d.c.offset || sectionEnd > d.c.size {
			d.c.popReadEnd(prev)
			return d.fail(id, fmt.Errorf("section extends past end of module: %w", wasm.ErrUnfinishedSection))
		}
		d.c.popReadEnd(prev)

		if id != wasm.SectionIDCustom {
			if d.lastKnownSection != noSection && id <= d.lastKnownSection {
				return d.fail(id, wasm.ErrSectionOrder)
			}
			d.lastKnownSection = id
		}

		prev = d.c.pushReadEnd(sectionEnd)
		d.delegate.OnSetState(d.c.offset)
		if err := d.dispatchSection(id, uint32(size)); err != nil {
			d.c.popReadEnd(prev)
			return err
		}
		if d.c.offset != sectionEnd {
			d.c.popReadEnd(prev)
			return d.fail(id, wasm.ErrUnfinishedSection)
		}
		d.c.popReadEnd(prev)
	}
	return nil
}

func (d *moduleDecoder) dispatchSection(id wasm.SectionID, size uint32) error {
	switch id {
	case wasm.SectionIDCustom:
		return d.readCustomSection(size)
	case wasm.SectionIDType:
		return d.readTypeSection(size)
	case wasm.SectionIDImport:
		return d.readImportSection(size)
	case wasm.SectionIDFunction:
		return d.readFunctionSection(size)
	case wasm.SectionIDTable:
		return d.readTableSection(size)
	case wasm.SectionIDMemory:
		return d.readMemorySection(size)
	case wasm.SectionIDGlobal:
		return d.readGlobalSection(size)
	case wasm.SectionIDExport:
		return d.readExportSection(size)
	case wasm.SectionIDStart:
		return d.readStartSection(size)
	case wasm.SectionIDElement:
		return d.readElementSection(size)
	case wasm.SectionIDCode:
		return d.readCodeSection(size)
	case wasm.SectionIDData:
		return d.readDataSection(size)
	default:
		return d.reportError(id, fmt.Errorf("unknown section code %d: %w", id, wasm.ErrBadType))
	}
}
