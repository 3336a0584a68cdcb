// Package factorshape explores the exponent "shapes" of integers: the
// descending multiset of exponents in a prime factorization, such as
// 360 = 2³·3²·5 → [3, 2, 1].
//
// What is in the module?
//
//	A small, deterministic core plus thin presentation layers:
//		• factor/: trial-division factorization, shapes, memoizing Session
//		• freq/: shape frequency tables, ranking, parallel counting
//		• frames/: logarithmic (per-decade) frame sampling of a range
//		• progress/: pull-based driver yielding one ranked table per frame
//		• render/: list lines, terminal bar charts, animated GIF output
//		• config/: YAML configuration with defaults and validation
//		• cmd/factorshape: the command-line front end
//
// Data flows one way:
//
//	[start, end] ─▶ frames.Sample ─▶ bounds ─▶ freq (via factor.Session) ─▶ sink
//
// Why choose this layout?
//
//   - The core has no I/O: every algorithm is testable without a terminal.
//   - No hidden globals: caches live in a factor.Session you own.
//   - Deterministic output: ties in frequency are broken by shape length,
//     then shape contents.
//
// Quick example:
//
//	s := factor.NewSession()
//	top, _ := freq.TopShapes(ctx, s, 2, 10, 3)
//	// [1]: 4   (2, 3, 5, 7)
//	// [2]: 2   (4, 9)
//	// [1, 1]: 2 (6, 10)
//
//	go install github.com/katalvlaran/factorshape/cmd/factorshape@latest
package factorshape
