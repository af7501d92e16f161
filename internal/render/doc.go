// Package render emits a decision tree as source text.
//
// C-style targets (C#, C, Java, JavaScript) produce a function body fragment
// meant to be pasted into a surrounding function, optionally wrapped with a
// text/template. Go targets produce a complete, gofmt-ed file built with
// jennifer.
package render
