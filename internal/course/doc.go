// Package course defines the model for a curriculum checkout: the ordered
// list of module directories and the conventionally named source units
// (example, exercise, solution) each of them may contain. It also performs
// the on-disk scan that decides which units are present and eligible for
// compilation.
package course
