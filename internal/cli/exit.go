package cli

import (
	"errors"

	"github.com/spritefold/spritefold/internal/catalog"
	"github.com/spritefold/spritefold/internal/pack"
)

// Process exit codes, one per failure class, so calling scripts can branch
// on why a pack run failed.
const (
	ExitOK       = 0
	ExitFailure  = 1 // usage errors and anything not covered below
	ExitDecode   = 2 // a source image could not be decoded
	ExitEmpty    = 3 // no usable images in the input directory
	ExitOversize = 4 // an image can never fit the canvas or cell
	ExitCapacity = 5 // images collectively exceed canvas capacity
)

// ExitCode maps an error returned by Execute to the process exit code.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}

	var decodeErr *catalog.DecodeError
	var oversizeErr *pack.OversizedImageError
	var capacityErr *pack.CapacityExceededError
	switch {
	case errors.As(err, &decodeErr):
		return ExitDecode
	case errors.Is(err, catalog.ErrEmptyCatalog):
		return ExitEmpty
	case errors.As(err, &oversizeErr):
		return ExitOversize
	case errors.As(err, &capacityErr):
		return ExitCapacity
	default:
		return ExitFailure
	}
}
