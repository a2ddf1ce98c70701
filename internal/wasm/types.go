// Package wasm holds types shared between the LEB128 codec and the binary
// decoder: value types, external-kind enumerations, section identifiers, the
// opcode table, the feature gate, and the decoder's error taxonomy.
package wasm

// ValueType is the binary encoding of a value type such as i32.
// See https://www.w3.org/TR/wasm-core-1/#binary-valtype
type ValueType = byte

const (
	ValueTypeI32 ValueType = 0x7f
	ValueTypeI64 ValueType = 0x7e
	ValueTypeF32 ValueType = 0x7d
	ValueTypeF64 ValueType = 0x7c

	// ValueTypeAnyFunc is the binary encoding of the "anyfunc" table element
	// type. It is not a value type a local/param/result may take; it is a
	// reference type used only in table and element-segment contexts.
	ValueTypeAnyFunc ValueType = 0x70

	// ValueTypeFunc is the form marker byte preceding a function type's
	// parameter vector, never a value held on the stack.
	ValueTypeFunc ValueType = 0x60

	// ValueTypeVoid marks an empty block/if/loop signature.
	ValueTypeVoid ValueType = 0x40
)

// ValueTypeName returns the type name of the given ValueType, matching the
// WebAssembly text format, or "unknown" if t is not a recognized value type.
func ValueTypeName(t ValueType) string {
	switch t {
	case ValueTypeI32:
		return "i32"
	case ValueTypeI64:
		return "i64"
	case ValueTypeF32:
		return "f32"
	case ValueTypeF64:
		return "f64"
	case ValueTypeAnyFunc:
		return "anyfunc"
	case ValueTypeFunc:
		return "func"
	case ValueTypeVoid:
		return "void"
	}
	return "unknown"
}

// IsConcrete reports whether t is one of i32, i64, f32, f64 -- the value
// types that may be held on the operand stack, as opposed to a form marker
// or reference type.
func IsConcrete(t ValueType) bool {
	switch t {
	case ValueTypeI32, ValueTypeI64, ValueTypeF32, ValueTypeF64:
		return true
	}
	return false
}

// ExternKind indicates which description an Import or Export entry carries.
// See https://www.w3.org/TR/wasm-core-1/#import-section%E2%91%A0
// See https://www.w3.org/TR/wasm-core-1/#export-section%E2%91%A0
type ExternKind = byte

const (
	ExternKindFunc   ExternKind = 0x00
	ExternKindTable  ExternKind = 0x01
	ExternKindMemory ExternKind = 0x02
	ExternKindGlobal ExternKind = 0x03

	// ExternKindException is the import/export kind introduced by the
	// exception-handling proposal, gated by FeatureExceptions.
	ExternKindException ExternKind = 0x04
)

// ExternKindName returns the canonical name of an ExternKind.
func ExternKindName(k ExternKind) string {
	switch k {
	case ExternKindFunc:
		return "func"
	case ExternKindTable:
		return "table"
	case ExternKindMemory:
		return "memory"
	case ExternKindGlobal:
		return "global"
	case ExternKindException:
		return "except"
	}
	return "unknown"
}

// SectionID identifies the standard sections of a module, in their required
// relative order. SectionIDCustom is exempt from ordering and may repeat.
// See https://www.w3.org/TR/wasm-core-1/#sections%E2%91%A0
type SectionID = byte

const (
	SectionIDCustom SectionID = iota
	SectionIDType
	SectionIDImport
	SectionIDFunction
	SectionIDTable
	SectionIDMemory
	SectionIDGlobal
	SectionIDExport
	SectionIDStart
	SectionIDElement
	SectionIDCode
	SectionIDData
)

// SectionIDName returns the canonical name of a SectionID, used in
// DecodeError messages.
func SectionIDName(id SectionID) string {
	switch id {
	case SectionIDCustom:
		return "custom"
	case SectionIDType:
		return "type"
	case SectionIDImport:
		return "import"
	case SectionIDFunction:
		return "function"
	case SectionIDTable:
		return "table"
	case SectionIDMemory:
		return "memory"
	case SectionIDGlobal:
		return "global"
	case SectionIDExport:
		return "export"
	case SectionIDStart:
		return "start"
	case SectionIDElement:
		return "element"
	case SectionIDCode:
		return "code"
	case SectionIDData:
		return "data"
	}
	return "unknown"
}

// Index is an offset into an index namespace (function, table, memory,
// global, type). Namespaces begin with imports of the matching kind,
// followed by module-declared entries of that kind.
type Index = uint32

// Limits is the binary encoding of a resizable limit: an initial size and an
// optional maximum.
type Limits struct {
	HasMax  bool
	Initial uint32
	Max     uint32
}

// MemoryMaxPages is the upper bound on both a memory's initial and max page
// counts: 2^16 pages of 64KiB each, the linear-memory address-space ceiling
// the core spec fixes for 32-bit memories.
const MemoryMaxPages = uint32(65536)

// FunctionTypeString renders a function signature as the text-format names
// of its params run together, an underscore, then the names of its results
// run together, with "null" standing in for an empty side (e.g. "i32i64_f32").
func FunctionTypeString(params, results []ValueType) string {
	s := ""
	for _, p := range params {
		s += ValueTypeName(p)
	}
	if len(params) == 0 {
		s += "null"
	}
	s += "_"
	for _, r := range results {
		s += ValueTypeName(r)
	}
	if len(results) == 0 {
		s += "null"
	}
	return s
}
