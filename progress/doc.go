// SPDX-License-Identifier: MIT

// Package progress drives progressive aggregation: it walks the frame
// sequence of frames.Sample and, for each frame bound b, yields the ranked
// shape table of [start, b].
//
// The Driver is pull-based. A sink (terminal redraw, GIF encoder, test)
// calls Next until it reports done, or hands itself to Run. Nothing is
// drawn here and no callbacks mutate state behind the caller's back.
//
// Frames are ascending, so the Driver keeps one freq.Table and extends it
// by (previous bound, b] instead of recounting the whole prefix. The result
// is identical to freq.TopShapes(start, b, top) for every frame.
package progress
