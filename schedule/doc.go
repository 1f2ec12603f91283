// Package schedule maps positions of a mixed stream onto the sources that
// feed it.
//
// A ratio.Vector r defines one cycle of C = sum(r) slots: r[0] slots for
// source 0, then r[1] slots for source 1, and so on. The mixed position axis
// tiles that cycle forever:
//
//	r = [3, 1]   cycle = 0 0 0 1 | 0 0 0 1 | 0 0 0 1 | ...
//
// Locate(p) is a pure function returning the source of position p and the
// position inside that source (how many earlier slots the same source had).
// Over any prefix of k·C positions source i is chosen exactly k·r[i] times.
//
// Random-access mixing calls Locate directly; sequential mixing walks a
// Cursor through the same slots, so both modes produce identical orders.
//
// MixedSize computes how long a random-access mix of finite sources can be
// without reading past the end of any of them.
package schedule
