package options

import "strings"

// CheckEnum selects the range sanity checks run before a table is generated.
type CheckEnum int

const (
	CheckOrder   CheckEnum = 1 << iota // ranges ascend strictly by min
	CheckOverlap                       // no value belongs to two ranges
	CheckBounds                        // every bound fits the table kind
	CheckGaps                          // warn about values no range covers

	CheckAll  = (1 << iota) - 1 // all checks combined
	CheckNone = 0               // no checks selected, ranges are trusted as given
)

var checkNames = map[string]CheckEnum{
	"order":   CheckOrder,
	"overlap": CheckOverlap,
	"bounds":  CheckBounds,
	"gaps":    CheckGaps,
	"all":     CheckAll,
	"none":    CheckNone,
}

// CheckNames returns the accepted check names.
func CheckNames() []string {
	return []string{"order", "overlap", "bounds", "gaps", "all", "none"}
}

// ParseCheck resolves a single check name.
func ParseCheck(name string) (CheckEnum, bool) {
	c, ok := checkNames[strings.ToLower(strings.TrimSpace(name))]
	return c, ok
}

func (c CheckEnum) Has(other CheckEnum) bool {
	return c&other == other && other != CheckNone
}
