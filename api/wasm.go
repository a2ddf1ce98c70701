// Package api re-exports the wire-format vocabulary decoder consumers need
// without pulling in the decoder itself: value types, external kinds, and
// section identifiers, plus their canonical text-format names.
package api

import "github.com/wasmcursor/wasmbin/internal/wasm"

// ValueType is the binary encoding of a value type such as i32.
//
// See https://www.w3.org/TR/wasm-core-1/#binary-valtype
type ValueType = wasm.ValueType

const (
	ValueTypeI32 = wasm.ValueTypeI32
	ValueTypeI64 = wasm.ValueTypeI64
	ValueTypeF32 = wasm.ValueTypeF32
	ValueTypeF64 = wasm.ValueTypeF64
)

// ValueTypeName returns the canonical text-format name of t.
func ValueTypeName(t ValueType) string { return wasm.ValueTypeName(t) }

// ExternKind classifies imports and exports with their respective types.
//
// See https://www.w3.org/TR/wasm-core-1/#import-section%E2%91%A0
// See https://www.w3.org/TR/wasm-core-1/#export-section%E2%91%A0
type ExternKind = wasm.ExternKind

const (
	ExternKindFunc      = wasm.ExternKindFunc
	ExternKindTable     = wasm.ExternKindTable
	ExternKindMemory    = wasm.ExternKindMemory
	ExternKindGlobal    = wasm.ExternKindGlobal
	ExternKindException = wasm.ExternKindException
)

// ExternKindName returns the canonical text-format name of k.
func ExternKindName(k ExternKind) string { return wasm.ExternKindName(k) }

// SectionID identifies one of a module's standard sections, in their
// required relative order.
//
// See https://www.w3.org/TR/wasm-core-1/#sections%E2%91%A0
type SectionID = wasm.SectionID

const (
	SectionIDCustom   = wasm.SectionIDCustom
	SectionIDType     = wasm.SectionIDType
	SectionIDImport   = wasm.SectionIDImport
	SectionIDFunction = wasm.SectionIDFunction
	SectionIDTable    = wasm.SectionIDTable
	SectionIDMemory   = wasm.SectionIDMemory
	SectionIDGlobal   = wasm.SectionIDGlobal
	SectionIDExport   = wasm.SectionIDExport
	SectionIDStart    = wasm.SectionIDStart
	SectionIDElement  = wasm.SectionIDElement
	SectionIDCode     = wasm.SectionIDCode
	SectionIDData     = wasm.SectionIDData
)

// SectionIDName returns the canonical name of a SectionID.
func SectionIDName(id SectionID) string { return wasm.SectionIDName(id) }

// Index is an offset into an index namespace (function, table, memory,
// global, type). Namespaces begin with imports of the matching kind,
// followed by module-declared entries of that kind.
type Index = wasm.Index

// Limits is the binary encoding of a resizable limit: an initial size and
// an optional maximum.
type Limits = wasm.Limits
