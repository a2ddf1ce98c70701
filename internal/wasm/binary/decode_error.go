package binary

import (
	"fmt"

	"github.com/wasmcursor/wasmbin/internal/wasm"
)

// DecodeError reports the byte offset and section in which decoding
// failed, wrapping one of the sentinel errors in the wasm package.
type DecodeError struct {
	Offset  int
	Section wasm.SectionID
	Err     error
}

func (e *DecodeError) Error() string {
	if e.Section == wasm.SectionIDCustom || e.Section == 0 {
		return fmt.Sprintf("offset %d: %v", e.Offset, e.Err)
	}
	return fmt.Sprintf("offset %d, section %s: %v", e.Offset, wasm.SectionIDName(e.Section), e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

func newDecodeError(offset int, section wasm.SectionID, err error) *DecodeError {
	return &DecodeError{Offset: offset, Section: section, Err: err}
}
