// Package gen turns dispatch files into generated source files.
//
// Every table is validated first; any error aborts generation with no
// output. Tables are then built and rendered concurrently, and the result
// keeps table order so regeneration is byte-for-byte deterministic.
//
// Output per table:
//   - C-style languages: the nested if/else body, optionally wrapped by the
//     table template
//   - Go: a formatted file with one function
package gen
