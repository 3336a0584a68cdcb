// SPDX-License-Identifier: MIT

// Package render presents factorization results: list lines, terminal bar
// charts (lipgloss) for the plot and animate modes, and an animated GIF for
// video-out. Every sink consumes progress.Frame values and owns nothing of
// the computation.
package render
