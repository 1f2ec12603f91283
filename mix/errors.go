package mix

import (
	"errors"

	"github.com/katalvlaran/lvmix/ratio"
	"github.com/katalvlaran/lvmix/source"
)

// Sentinel errors. The aliases let callers branch on mix errors without
// importing the packages they originate from.
var (
	// ErrNoSources indicates an empty parent list or a nil parent.
	ErrNoSources = errors.New("mix: no sources")

	// ErrArityMismatch indicates a weight count different from the parent count.
	ErrArityMismatch = errors.New("mix: weight count does not match source count")

	// ErrCheckpointMismatch indicates a checkpoint that does not fit the cursor.
	ErrCheckpointMismatch = errors.New("mix: checkpoint mismatch")

	// ErrInvalidWeight is ratio.ErrInvalidWeight.
	ErrInvalidWeight = ratio.ErrInvalidWeight

	// ErrRatioOverflow is ratio.ErrRatioOverflow.
	ErrRatioOverflow = ratio.ErrRatioOverflow

	// ErrOutOfRange is source.ErrOutOfRange.
	ErrOutOfRange = source.ErrOutOfRange

	// ErrExhausted is source.ErrExhausted.
	ErrExhausted = source.ErrExhausted
)
