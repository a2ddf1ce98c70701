package binary

import (
	"fmt"
	"strings"

	"github.com/wasmcursor/wasmbin/internal/wasm"
)

func (d *moduleDecoder) readCustomSection(size uint32) error {
	name, err := d.c.readString("custom section name")
	if err != nil {
		return d.fail(wasm.SectionIDCustom, err)
	}
	if err := d.callback(d.delegate.BeginCustomSection(size, name)); err != nil {
		return err
	}
	payloadSize := uint32(d.c.remaining())
	switch {
	case name == "name" && d.opts.ReadDebugNames && d.lastKnownSection != noSection && d.lastKnownSection >= wasm.SectionIDImport:
		err = d.readNamesSection(payloadSize)
	case strings.HasPrefix(name, "reloc."):
		err = d.readRelocSection(payloadSize)
	case name == "linking":
		err = d.readLinkingSection(payloadSize)
	case name == "exception" && d.opts.Features.IsEnabled(wasm.FeatureExceptions):
		err = d.readExceptionSection(payloadSize)
	default:
		_, err = d.c.readBytes(uint32(d.c.remaining()))
	}
	if err != nil {
		return d.fail(wasm.SectionIDCustom, err)
	}
	return d.callback(d.delegate.EndCustomSection())
}

// readExceptionType reads a shared exception signature: a count followed by
// that many concrete value types, used both by the "exception" custom
// section and by ExternKindException import payloads.
func (d *moduleDecoder) readExceptionType() ([]wasm.ValueType, error) {
	n, err := d.c.readIndex("exception param count")
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, nil
	}
	sig := make([]wasm.ValueType, n)
	for i := range sig {
		sig[i], err = d.c.readValueType("exception param type")
		if err != nil {
			return nil, err
		}
		if !wasm.IsConcrete(sig[i]) {
			return nil, fmt.Errorf("exception param type 0x%x is not concrete: %w", sig[i], wasm.ErrBadType)
		}
	}
	return sig, nil
}

func (d *moduleDecoder) readExceptionSection(size uint32) error {
	if err := d.callback(d.delegate.BeginExceptionSection(size)); err != nil {
		return err
	}
	count, err := d.c.readIndex("exception count")
	if err != nil {
		return err
	}
	d.numExceptions = count
	if err := d.callback(d.delegate.OnExceptionCount(count)); err != nil {
		return err
	}
	for i := wasm.Index(0); i < count; i++ {
		sig, err := d.readExceptionType()
		if err != nil {
			return err
		}
		index := d.numExceptionImports + i
		if err := d.callback(d.delegate.OnExceptionType(index, sig)); err != nil {
			return err
		}
	}
	return d.callback(d.delegate.EndExceptionSection())
}
