// Package lvmix is a deterministic mixing engine for data sources: it blends
// several sources into one, drawing from each in a fixed proportion, so that
// the same inputs always give the same stream.
//
// 🚀 What is lvmix?
//
//	A small, dependency-light library that brings together:
//		• Source contract: random-access and sequential (cursor) sources
//		• Weight normalization: float weights → minimal integer ratios
//		• Scheduling: position → (source, local index), in O(log n)
//		• Random-access mixing with a safe, precomputed length
//		• Sequential mixing with exact checkpoint / resume
//		• Range slicing of any random-access source
//
// ✨ Why choose lvmix?
//
//   - Reproducible: no randomness, position p always maps to the same element
//   - Exact: over every full cycle each source contributes exactly its share
//   - Resumable: a checkpoint restores the precise remaining tail
//   - Composable: mixes are sources, so they nest
//
// Packages:
//
//	source/   - source contract plus Range, FromSlice, Map, Filter, Repeat, ToSequential
//	ratio/    - weight validation and normalization to a minimal integer Vector
//	schedule/ - the cycle scheduler, scheduler cursor and mixed-length calculator
//	mix/      - RandomAccess and Sequential mixes, Checkpoint
//	slice/    - start/stop/step views over a random-access source
//
// Quick example:
//
//	evens: 0 2 4 6 8   odds: 1 3 5 7 9   weights 0.75 / 0.25 → ratio 3:1
//	mix:   0 2 4 1 6 8
//
// See examples/ for a full corpus-blending scenario.
//
//	go get github.com/katalvlaran/lvmix
package lvmix
