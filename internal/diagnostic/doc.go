// Package diagnostic provides structured errors, warnings and notes produced
// while checking dispatch table definitions.
//
// Key capabilities:
//   - Count mismatch and empty table errors
//   - Unsorted, overlapping and out-of-bounds range reports
//   - Gap warnings with the uncovered span
//   - "Did you mean" suggestions for unknown names
package diagnostic
