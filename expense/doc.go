// Package expense solves day 1, Report Repair: find the expense report
// entries that sum to 2020 and multiply them together.
//
// What:
//
//   - PairProduct: two distinct entries summing to the target, via a
//     value→count index (O(n)).
//   - TripleProduct: three distinct entries, via sort + two-pointer scan
//     (O(n²)).
//
// Errors:
//
//   - ErrNoPair, ErrNoTriple: no combination reaches the target.
//   - text.ErrNotInteger: a line is not an integer.
package expense
