package wasm

import "errors"

// Sentinel errors for the decoder's error taxonomy. Call sites wrap these
// with fmt.Errorf("...: %w", err) to attach position/section context;
// callers compare against these with errors.Is.
var (
	// ErrUnexpectedEOF means the cursor ran past the end of the buffer, or
	// past the current framing bound, while reading a primitive value.
	ErrUnexpectedEOF = errors.New("unexpected end of input")
	// ErrBadMagic means the 4-byte magic preamble did not read "\0asm".
	ErrBadMagic = errors.New("bad magic number")
	// ErrBadVersion means the 4-byte version field was not a version this
	// decoder recognizes.
	ErrBadVersion = errors.New("bad version number")
	// ErrBadLEB means a LEB128-encoded integer violated its exact
	// overflow or sign-extension rule for its declared bit width.
	ErrBadLEB = errors.New("bad LEB128 encoding")
	// ErrBadUTF8 means a length-prefixed string was not valid UTF-8.
	ErrBadUTF8 = errors.New("invalid UTF-8 encoding")
	// ErrBadType means a value type, form marker, or element type byte was
	// not one of the recognized encodings.
	ErrBadType = errors.New("invalid value type")
	// ErrBadLimits means a limits pair violated initial <= max, a memory
	// limit exceeded MemoryMaxPages, or a module declared more than one
	// table or memory.
	ErrBadLimits = errors.New("invalid limits")
	// ErrBadIndex means an index referenced a function/table/memory/
	// global/type/exception entry outside the valid index-space bound at
	// the point of reference.
	ErrBadIndex = errors.New("index out of range")
	// ErrBadOpcode means a leading or prefixed opcode byte did not match
	// any known instruction, or matched one gated by a disabled feature.
	ErrBadOpcode = errors.New("unknown opcode")
	// ErrSectionOrder means a standard (non-custom) section appeared out
	// of the required monotone order, or appeared more than once.
	ErrSectionOrder = errors.New("section out of order")
	// ErrSubsectionOrder means a custom section's subsections (e.g. the
	// "name" section's module/function/local subsections) did not appear
	// in strictly ascending subsection-ID order.
	ErrSubsectionOrder = errors.New("subsection out of order")
	// ErrUnfinishedSection means decoding a section did not consume
	// exactly the number of bytes the section's declared size promised.
	ErrUnfinishedSection = errors.New("section size mismatch")
	// ErrUnfinishedSubsection is ErrUnfinishedSection's counterpart for
	// nested subsection framing.
	ErrUnfinishedSubsection = errors.New("subsection size mismatch")
	// ErrCallbackFailure means the delegate returned a non-nil error from
	// one of its event methods; decoding stops immediately and DecodeModule
	// returns an error that wraps ErrCallbackFailure and carries the
	// delegate's error message.
	ErrCallbackFailure = errors.New("delegate callback failed")
)
