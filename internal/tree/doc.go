// Package tree turns an ascending partition of integer ranges into a binary
// decision tree of threshold comparisons.
//
// Each Branch compares the dispatched value against a threshold: values
// below it go to the Low subtree, the rest to the High subtree. Leaves yield
// one output expression.
//
// # Split heuristic
//
// For n >= 3 entries, let p be the largest power of two <= n:
//   - n == p: split at p/2, giving a perfectly balanced tree.
//   - otherwise: split at n-p, so the high half holds exactly p entries and
//     the smaller remainder goes low. Low values resolve in fewer comparisons.
//
// Two entries become a single terminal comparison against the second
// range's minimum. Ordering and disjointness are not checked here.
package tree
