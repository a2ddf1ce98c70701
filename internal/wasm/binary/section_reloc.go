package binary

import (
	"github.com/wasmcursor/wasmbin/internal/wasm"
)

// RelocType identifies which index space a relocation entry patches, per
// the WebAssembly object-file linking convention.
type RelocType = uint32

const (
	RelocFuncIndexLEB      RelocType = 0
	RelocTableIndexSLEB    RelocType = 1
	RelocTableIndexI32     RelocType = 2
	RelocGlobalAddressLEB  RelocType = 3
	RelocGlobalAddressSLEB RelocType = 4
	RelocGlobalAddressI32  RelocType = 5
	RelocTypeIndexLEB      RelocType = 6
	RelocGlobalIndexLEB    RelocType = 7
)

func relocHasAddend(t RelocType) bool {
	switch t {
	case RelocGlobalAddressLEB, RelocGlobalAddressSLEB, RelocGlobalAddressI32:
		return true
	}
	return false
}

// readRelocSection decodes a "reloc.*" custom section: the standard section
// it patches (plus that section's name, if it's itself custom), a count,
// and that many relocation entries.
func (d *moduleDecoder) readRelocSection(size uint32) error {
	if err := d.callback(d.delegate.BeginRelocSection(size)); err != nil {
		return err
	}
	section, err := d.c.readIndex("reloc section")
	if err != nil {
		return err
	}
	var sectionName string
	if wasm.SectionID(section) == wasm.SectionIDCustom {
		sectionName, err = d.c.readString("reloc section name")
		if err != nil {
			return err
		}
	}
	count, err := d.c.readIndex("reloc count")
	if err != nil {
		return err
	}
	if err := d.callback(d.delegate.OnRelocCount(count, wasm.SectionID(section), sectionName)); err != nil {
		return err
	}
	for i := wasm.Index(0); i < count; i++ {
		relocType, err := d.c.readIndex("reloc type")
		if err != nil {
			return err
		}
		offset, err := d.c.readIndex("reloc offset")
		if err != nil {
			return err
		}
		index, err := d.c.readIndex("reloc index")
		if err != nil {
			return err
		}
		var addend uint32
		if relocHasAddend(relocType) {
			a, err := d.c.readVars32()
			if err != nil {
				return err
			}
			addend = uint32(a)
		}
		if err := d.callback(d.delegate.OnReloc(relocType, offset, index, addend)); err != nil {
			return err
		}
	}
	return d.callback(d.delegate.EndRelocSection())
}
