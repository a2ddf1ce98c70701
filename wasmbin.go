// Package wasmbin implements a streaming, allocation-light decoder for the
// WebAssembly binary module format. Rather than building an AST, DecodeModule
// drives a Delegate through the module's sections and instructions in wire
// order, the same way an XML SAX parser drives a ContentHandler.
package wasmbin

import (
	"github.com/wasmcursor/wasmbin/internal/wasm"
	"github.com/wasmcursor/wasmbin/internal/wasm/binary"
)

// Delegate receives section- and instruction-level events as DecodeModule
// walks a module's byte stream. See binary.Delegate for the full event set.
type Delegate = binary.Delegate

// BaseDelegate implements every Delegate method as a no-op, so a consumer
// can embed it and override only the events it cares about.
type BaseDelegate = binary.BaseDelegate

// TeeDelegate forwards every event to both A and B, stopping at the first
// one either returns an error for.
type TeeDelegate = binary.TeeDelegate

// LoggingDelegate wraps another Delegate and logs section boundaries and
// errors through a zap.Logger.
type LoggingDelegate = binary.LoggingDelegate

// Options configures DecodeModule.
type Options = binary.Options

// DecodeError reports the byte offset and section a decode failure occurred
// in, wrapping the underlying error.
type DecodeError = binary.DecodeError

// DecodeModule decodes the WebAssembly module encoded in data, invoking
// delegate's methods as it encounters each section and instruction. It
// returns as soon as a malformed encoding is found or delegate returns an
// error, wrapping the latter in wasm.ErrCallbackFailure.
//
// DecodeModule never holds onto data past the call: callers may reuse or
// discard the slice once it returns.
func DecodeModule(data []byte, delegate Delegate, opts Options) error {
	return binary.DecodeModule(data, delegate, opts)
}

// FeatureSet toggles support for WebAssembly proposals beyond the core-1
// MVP instruction and section set.
type FeatureSet = wasm.FeatureSet

const (
	FeatureExceptions           = wasm.FeatureExceptions
	FeatureSaturatingFloatToInt = wasm.FeatureSaturatingFloatToInt
)
