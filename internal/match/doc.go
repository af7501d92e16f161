// Package match provides fuzzy name matching used to suggest the intended
// spelling of unknown configuration values such as languages, kinds and checks.
package match
