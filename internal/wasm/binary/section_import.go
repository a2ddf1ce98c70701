package binary

import (
	"fmt"

	"github.com/wasmcursor/wasmbin/internal/wasm"
)

func (d *moduleDecoder) readImportSection(size uint32) error {
	if err := d.callback(d.delegate.BeginImportSection(size)); err != nil {
		return err
	}
	count, err := d.c.readIndex("import count")
	if err != nil {
		return d.fail(wasm.SectionIDImport, err)
	}
	if err := d.callback(d.delegate.OnImportCount(count)); err != nil {
		return err
	}
	for i := wasm.Index(0); i < count; i++ {
		if err := d.readImport(i); err != nil {
			return d.fail(wasm.SectionIDImport, err)
		}
	}
	return d.callback(d.delegate.EndImportSection())
}

func (d *moduleDecoder) readImport(i wasm.Index) error {
	module, err := d.c.readString("import module")
	if err != nil {
		return err
	}
	field, err := d.c.readString("import field")
	if err != nil {
		return err
	}
	if err := d.callback(d.delegate.OnImport(i, module, field)); err != nil {
		return err
	}
	rawKind, err := d.c.readIndex("import kind")
	if err != nil {
		return err
	}
	kind := wasm.ExternKind(rawKind)
	switch kind {
	case wasm.ExternKindFunc:
		sigIndex, err := d.c.readIndex("import func type")
		if err != nil {
			return err
		}
		if sigIndex >= d.numTypes {
			return fmt.Errorf("import func type index %d out of range: %w", sigIndex, wasm.ErrBadIndex)
		}
		funcIndex := d.numFuncImports
		d.numFuncImports++
		return d.callback(d.delegate.OnImportFunc(i, module, field, funcIndex, sigIndex))
	case wasm.ExternKindTable:
		elemType, err := d.c.readValueType("import table element type")
		if err != nil {
			return err
		}
		if elemType != wasm.ValueTypeAnyFunc {
			return fmt.Errorf("import table element type 0x%x is not anyfunc: %w", elemType, wasm.ErrBadType)
		}
		limits, err := d.c.readLimits("import table limits")
		if err != nil {
			return err
		}
		tableIndex := d.numTableImports
		d.numTableImports++
		return d.callback(d.delegate.OnImportTable(i, module, field, tableIndex, elemType, limits))
	case wasm.ExternKindMemory:
		limits, err := d.c.readMemoryLimits("import memory limits")
		if err != nil {
			return err
		}
		memoryIndex := d.numMemoryImports
		d.numMemoryImports++
		return d.callback(d.delegate.OnImportMemory(i, module, field, memoryIndex, limits))
	case wasm.ExternKindGlobal:
		typ, err := d.c.readValueType("import global type")
		if err != nil {
			return err
		}
		if !wasm.IsConcrete(typ) {
			return fmt.Errorf("import global type 0x%x is not concrete: %w", typ, wasm.ErrBadType)
		}
		mutFlag, err := d.c.readU8()
		if err != nil {
			return err
		}
		if mutFlag > 1 {
			return fmt.Errorf("import global mutability flag %d is not 0 or 1: %w", mutFlag, wasm.ErrBadType)
		}
		globalIndex := d.numGlobalImports
		d.numGlobalImports++
		return d.callback(d.delegate.OnImportGlobal(i, module, field, globalIndex, typ, mutFlag == 1))
	case wasm.ExternKindException:
		if err := d.opts.Features.Require(wasm.FeatureExceptions); err != nil {
			return err
		}
		sig, err := d.readExceptionType()
		if err != nil {
			return err
		}
		exceptionIndex := d.numExceptionImports
		d.numExceptionImports++
		return d.callback(d.delegate.OnImportException(i, module, field, exceptionIndex, sig))
	default:
		return fmt.Errorf("import kind %d is not recognized: %w", kind, wasm.ErrBadType)
	}
}
