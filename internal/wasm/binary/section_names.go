package binary

import (
	"fmt"

	"github.com/wasmcursor/wasmbin/internal/wasm"
)

const (
	nameSubsectionModule   = 0
	nameSubsectionFunction = 1
	nameSubsectionLocal    = 2
)

// readNamesSection decodes the "name" custom section's subsections. Each is
// framed by its own (type, size) header; subsection types must appear in
// strictly ascending order, and the Function/Local variants each require
// their own index lists to be strictly increasing.
func (d *moduleDecoder) readNamesSection(size uint32) error {
	if err := d.callback(d.delegate.BeginNamesSection(size)); err != nil {
		return err
	}
	seenAny := false
	var previousType uint32
	for d.c.remaining() > 0 {
		subType, err := d.c.readIndex("name subsection type")
		if err != nil {
			return err
		}
		subSize, err := d.c.readIndex("name subsection size")
		if err != nil {
			return err
		}
		subEnd := d.c.offset + int(subSize)
		if subEnd > d.c.readEnd {
			return fmt.Errorf("name subsection extends past end of section: %w", wasm.ErrUnfinishedSubsection)
		}
		if seenAny && subType <= previousType {
			return fmt.Errorf("name subsection type %d out of order: %w", subType, wasm.ErrSubsectionOrder)
		}
		seenAny = true
		previousType = subType

		prev := d.c.pushReadEnd(subEnd)
		switch subType {
		case nameSubsectionFunction:
			err = d.readFunctionNameSubsection(subType, uint32(subSize))
		case nameSubsectionLocal:
			err = d.readLocalNameSubsection(subType, uint32(subSize))
		default:
			_, err = d.c.readBytes(uint32(d.c.remaining()))
		}
		if err == nil && d.c.offset != subEnd {
			err = fmt.Errorf("name subsection size mismatch: %w", wasm.ErrUnfinishedSubsection)
		}
		d.c.popReadEnd(prev)
		if err != nil {
			return err
		}
	}
	return d.callback(d.delegate.EndNamesSection())
}

func (d *moduleDecoder) readFunctionNameSubsection(subType, subSize uint32) error {
	if err := d.callback(d.delegate.OnFunctionNameSubsection(0, subType, subSize)); err != nil {
		return err
	}
	count, err := d.c.readIndex("function name count")
	if err != nil {
		return err
	}
	if err := d.callback(d.delegate.OnFunctionNamesCount(count)); err != nil {
		return err
	}
	lastIndex := int64(-1)
	for i := wasm.Index(0); i < count; i++ {
		funcIndex, err := d.c.readIndex("function name index")
		if err != nil {
			return err
		}
		if int64(funcIndex) <= lastIndex {
			return fmt.Errorf("function name index %d out of order: %w", funcIndex, wasm.ErrSubsectionOrder)
		}
		if funcIndex >= d.numTotalFuncs() {
			return fmt.Errorf("function name index %d out of range: %w", funcIndex, wasm.ErrBadIndex)
		}
		lastIndex = int64(funcIndex)
		name, err := d.c.readString("function name")
		if err != nil {
			return err
		}
		if err := d.callback(d.delegate.OnFunctionName(funcIndex, name)); err != nil {
			return err
		}
	}
	return nil
}

func (d *moduleDecoder) readLocalNameSubsection(subType, subSize uint32) error {
	if err := d.callback(d.delegate.OnLocalNameSubsection(0, subType, subSize)); err != nil {
		return err
	}
	funcCount, err := d.c.readIndex("local name function count")
	if err != nil {
		return err
	}
	if err := d.callback(d.delegate.OnLocalNameFunctionCount(funcCount)); err != nil {
		return err
	}
	lastFuncIndex := int64(-1)
	for i := wasm.Index(0); i < funcCount; i++ {
		funcIndex, err := d.c.readIndex("local name function index")
		if err != nil {
			return err
		}
		if int64(funcIndex) <= lastFuncIndex {
			return fmt.Errorf("local name function index %d out of order: %w", funcIndex, wasm.ErrSubsectionOrder)
		}
		if funcIndex >= d.numTotalFuncs() {
			return fmt.Errorf("local name function index %d out of range: %w", funcIndex, wasm.ErrBadIndex)
		}
		lastFuncIndex = int64(funcIndex)
		localCount, err := d.c.readIndex("local name local count")
		if err != nil {
			return err
		}
		if err := d.callback(d.delegate.OnLocalNameLocalCount(funcIndex, localCount)); err != nil {
			return err
		}
		lastLocalIndex := int64(-1)
		for j := wasm.Index(0); j < localCount; j++ {
			localIndex, err := d.c.readIndex("local name local index")
			if err != nil {
				return err
			}
			if int64(localIndex) <= lastLocalIndex {
				return fmt.Errorf("local name local index %d out of order: %w", localIndex, wasm.ErrSubsectionOrder)
			}
			if localIndex >= localCount {
				return fmt.Errorf("local name local index %d out of range: %w", localIndex, wasm.ErrBadIndex)
			}
			lastLocalIndex = int64(localIndex)
			name, err := d.c.readString("local name")
			if err != nil {
				return err
			}
			if err := d.callback(d.delegate.OnLocalName(funcIndex, localIndex, name)); err != nil {
				return err
			}
		}
	}
	return nil
}
