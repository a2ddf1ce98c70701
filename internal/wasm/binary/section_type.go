package binary

import (
	"fmt"

	"github.com/wasmcursor/wasmbin/internal/wasm"
)

func (d *moduleDecoder) readTypeSection(size uint32) error {
	if err := d.callback(d.delegate.BeginTypeSection(size)); err != nil {
		return err
	}
	count, err := d.c.readIndex("type count")
	if err != nil {
		return d.fail(wasm.SectionIDType, err)
	}
	d.numTypes = count
	if err := d.callback(d.delegate.OnTypeCount(count)); err != nil {
		return err
	}
	for i := wasm.Index(0); i < count; i++ {
		params, results, err := d.readFunctionType()
		if err != nil {
			return d.fail(wasm.SectionIDType, err)
		}
		if err := d.callback(d.delegate.OnType(i, params, results)); err != nil {
			return err
		}
	}
	return d.callback(d.delegate.EndTypeSection())
}

// readFunctionType reads a (form, params, results) triple. The form byte
// must be ValueTypeFunc; at most one result is permitted in this decoder's
// scope (core-1 MVP, no multi-value proposal).
func (d *moduleDecoder) readFunctionType() (params, results []wasm.ValueType, err error) {
	form, err := d.c.readValueType("type form")
	if err != nil {
		return nil, nil, err
	}
	if form != wasm.ValueTypeFunc {
		return nil, nil, fmt.Errorf("type form 0x%x is not func: %w", form, wasm.ErrBadType)
	}
	numParams, err := d.c.readIndex("param count")
	if err != nil {
		return nil, nil, err
	}
	if numParams > 0 {
		params = make([]wasm.ValueType, numParams)
		for i := range params {
			params[i], err = d.c.readValueType("param type")
			if err != nil {
				return nil, nil, err
			}
			if !wasm.IsConcrete(params[i]) {
				return nil, nil, fmt.Errorf("param type 0x%x is not concrete: %w", params[i], wasm.ErrBadType)
			}
		}
	}
	numResults, err := d.c.readIndex("result count")
	if err != nil {
		return nil, nil, err
	}
	if numResults > 1 {
		return nil, nil, fmt.Errorf("function type has %d results, at most 1 supported: %w", numResults, wasm.ErrBadType)
	}
	if numResults == 1 {
		results = make([]wasm.ValueType, 1)
		results[0], err = d.c.readValueType("result type")
		if err != nil {
			return nil, nil, err
		}
		if !wasm.IsConcrete(results[0]) {
			return nil, nil, fmt.Errorf("result type 0x%x is not concrete: %w", results[0], wasm.ErrBadType)
		}
	}
	return params, results, nil
}
