package tree

import (
	"strconv"

	"dispatch-generator/utils"
)

// Range is an inclusive integer interval [Min, Max].
type Range struct {
	Min int64
	Max int64
}

// Point returns the width-1 range [v, v].
func Point(v int64) Range {
	return Range{Min: v, Max: v}
}

// Contains reports whether v lies within the range.
func (r Range) Contains(v int64) bool {
	return utils.IsInRange(r.Min, v, r.Max)
}

// Overlaps reports whether r and o share a value.
func (r Range) Overlaps(o Range) bool {
	return utils.Overlaps(r.Min, r.Max, o.Min, o.Max)
}

// String renders the range as "[min,max]".
func (r Range) String() string {
	return "[" + strconv.FormatInt(r.Min, 10) + "," + strconv.FormatInt(r.Max, 10) + "]"
}

// Entry pairs a range with the opaque output expression produced for it.
type Entry struct {
	Range  Range
	Output string
}

// Node is either a *Leaf or a *Branch.
type Node interface {
	node()
}

// Leaf yields Output unconditionally.
type Leaf struct {
	Output string
}

// Branch sends values below Threshold to Low and everything else to High.
type Branch struct {
	Threshold int64
	Low       Node
	High      Node
}

func (*Leaf) node()   {}
func (*Branch) node() {}

// IsTerminal reports whether both children are leaves, i.e. the branch is
// the single comparison built for a two entry slice.
func (b *Branch) IsTerminal() bool {
	_, lowLeaf := b.Low.(*Leaf)
	_, highLeaf := b.High.(*Leaf)

	return lowLeaf && highLeaf
}
