// Package puzzle describes the daily puzzles and runs them.
//
// A Day pairs a number and title with up to two Part functions. The Catalog
// holds the days in order; Default returns the catalog of every day in this
// repository. A Runner feeds each part its input from a Source, writes the
// answers as
//
//	Part one: <value>
//	Part two: <value>
//
// and logs timings at debug level. Days listed without parts report
// ErrUnsolved.
package puzzle
