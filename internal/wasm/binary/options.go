package binary

import "github.com/wasmcursor/wasmbin/internal/wasm"

// Options controls optional decoding behavior. The zero value decodes with
// no optional features enabled and debug names skipped.
type Options struct {
	// Features gates opcodes and custom sections that belong to a
	// post-MVP proposal (exception handling, saturating float-to-int
	// conversions).
	Features wasm.FeatureSet

	// ReadDebugNames enables decoding of the "name" custom section. When
	// false, readCustomSection skips it like any other unrecognized custom
	// section, matching wabt's default read_debug_names_ behavior.
	ReadDebugNames bool

	// StopOnFirstError, when true, makes DecodeModule return an unknown
	// section code error immediately instead of first passing its message
	// to Delegate.OnError. When false and OnError reports the error
	// handled, decoding goes on with that section's body unread, so a
	// non-empty unknown section still ends in wasm.ErrUnfinishedSection.
	// Every other decode error is returned without calling OnError.
	StopOnFirstError bool
}
