package tree

import (
	"errors"
	"fmt"
	"math/bits"
)

var (
	// ErrCountMismatch is returned when the number of outputs differs from the number of ranges.
	ErrCountMismatch = errors.New("count mismatch")
	// ErrEmptyInput is returned when there is nothing to dispatch on.
	ErrEmptyInput = errors.New("empty input")
)

// BuildLists pairs ranges with outputs by position and builds the tree.
// Nothing is built when the lengths differ.
func BuildLists(ranges []Range, outputs []string) (Node, error) {
	if len(ranges) != len(outputs) {
		return nil, fmt.Errorf("%w: %d ranges, %d outputs", ErrCountMismatch, len(ranges), len(outputs))
	}

	entries := make([]Entry, len(ranges))
	for i := range ranges {
		entries[i] = Entry{Range: ranges[i], Output: outputs[i]}
	}

	return Build(entries)
}

// Build constructs the decision tree for an ascending entry sequence.
func Build(entries []Entry) (Node, error) {
	if len(entries) == 0 {
		return nil, ErrEmptyInput
	}

	return build(entries), nil
}

func build(entries []Entry) Node {
	switch len(entries) {
	case 1:
		return &Leaf{Output: entries[0].Output}
	case 2:
		return &Branch{
			Threshold: entries[1].Range.Min,
			Low:       &Leaf{Output: entries[0].Output},
			High:      &Leaf{Output: entries[1].Output},
		}
	}

	s := SplitPoint(len(entries))

	return &Branch{
		Threshold: entries[s].Range.Min,
		Low:       build(entries[:s]),
		High:      build(entries[s:]),
	}
}

// SplitPoint returns the index dividing n entries into the low and high halves.
func SplitPoint(n int) int {
	if n < 2 {
		panic(fmt.Sprintf("split point requested for %d entries", n))
	}

	p := powerTwoAtMost(n)
	if p == n {
		return p / 2
	}

	// smaller remainder goes low so low values take fewer comparisons
	return n - p
}

func powerTwoAtMost(n int) int {
	return 1 << (bits.Len(uint(n)) - 1)
}
