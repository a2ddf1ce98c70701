package binary

import (
	"fmt"

	"github.com/wasmcursor/wasmbin/internal/wasm"
)

func (d *moduleDecoder) readCodeSection(size uint32) error {
	if err := d.callback(d.delegate.BeginCodeSection(size)); err != nil {
		return err
	}
	count, err := d.c.readIndex("function body count")
	if err != nil {
		return d.fail(wasm.SectionIDCode, err)
	}
	if count != d.numFunctions {
		return d.fail(wasm.SectionIDCode, fmt.Errorf("code section has %d bodies, function section declared %d: %w", count, d.numFunctions, wasm.ErrBadType))
	}
	if err := d.callback(d.delegate.OnFunctionBodyCount(count)); err != nil {
		return err
	}
	for i := wasm.Index(0); i < count; i++ {
		funcIndex := d.numFuncImports + i
		if err := d.readFunctionBodyEntry(funcIndex); err != nil {
			return d.fail(wasm.SectionIDCode, err)
		}
	}
	return d.callback(d.delegate.EndCodeSection())
}

func (d *moduleDecoder) readFunctionBodyEntry(funcIndex wasm.Index) error {
	bodySize, err := d.c.readIndex("function body size")
	if err != nil {
		return err
	}
	bodyEnd := d.c.offset + int(bodySize)
	if bodyEnd > d.c.readEnd {
		return fmt.Errorf("function body extends past end of code section: %w", wasm.ErrUnfinishedSection)
	}
	prev := d.c.pushReadEnd(bodyEnd)
	defer d.c.popReadEnd(prev)

	if err := d.callback(d.delegate.BeginFunctionBody(funcIndex)); err != nil {
		return err
	}
	numLocalDecls, err := d.c.readIndex("local declaration count")
	if err != nil {
		return err
	}
	if err := d.callback(d.delegate.OnLocalDeclCount(numLocalDecls)); err != nil {
		return err
	}
	for j := wasm.Index(0); j < numLocalDecls; j++ {
		declCount, err := d.c.readIndex("local declaration repeat count")
		if err != nil {
			return err
		}
		typ, err := d.c.readValueType("local declaration type")
		if err != nil {
			return err
		}
		if !wasm.IsConcrete(typ) {
			return fmt.Errorf("local declaration type 0x%x is not concrete: %w", typ, wasm.ErrBadType)
		}
		if err := d.callback(d.delegate.OnLocalDecl(j, declCount, typ)); err != nil {
			return err
		}
	}
	if err := d.readFunctionBody(bodyEnd); err != nil {
		return err
	}
	if err := d.callback(d.delegate.EndFunctionBody(funcIndex)); err != nil {
		return err
	}
	if d.c.offset != bodyEnd {
		return fmt.Errorf("function body size mismatch: %w", wasm.ErrUnfinishedSection)
	}
	return nil
}
