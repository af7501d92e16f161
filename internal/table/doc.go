// Package table provides the dispatch table configuration schema, YAML and
// TOML parsing, range normalization and validation.
//
// # Schema Overview
//
//	version: "1"
//	package: lookup
//	tables:
//	  - name: leading_zeros
//	    variable: value.val
//	    kind: int32
//	    language: csharp
//	    indent: 3
//	    entries:
//	      - range: [min, -1]      # explicit (min, max) pair
//	        output: new uint(0)
//	      - range: 0              # bare integer, the range [0, 0]
//	        output: new uint(32)
//
// Instead of entries a table may list parallel "ranges" and "outputs"
// sequences. Their lengths must match.
//
// # Range bounds
//
// Bounds are integers (decimal, 0x hex, 0b binary) or the sentinels "min"
// and "max", which resolve to the limits of the table kind.
//
// # Checks
//
// Validation reports unsorted, overlapping and out-of-bounds ranges as
// errors and gaps as warnings. A table can narrow this with "checks".
package table
