package mix

import (
	"github.com/mitchellh/hashstructure/v2"

	"github.com/katalvlaran/lvmix/ratio"
	"github.com/katalvlaran/lvmix/schedule"
	"github.com/katalvlaran/lvmix/source"
)

// Checkpoint is the exported state of a sequential mix Cursor.
//
// Parent states are opaque: they are whatever each parent cursor's State
// returned, kept in source order. A Checkpoint is a plain value; the
// Parents slice is freshly allocated on every export and never reused.
type Checkpoint struct {
	// Schedule is the next slot to pull.
	Schedule schedule.Cursor

	// Parents holds one state per parent cursor.
	Parents []source.State

	// Exhausted is the sticky end-of-stream latch.
	Exhausted bool

	// Fingerprint identifies the ratio vector of the exporting mix.
	Fingerprint uint64
}

// fingerprint hashes the ratio vector; the vector length is the source count.
func fingerprint(v ratio.Vector) (uint64, error) {
	return hashstructure.Hash(struct {
		Ratios []int64
	}{Ratios: v}, hashstructure.FormatV2, nil)
}
