package table

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"dispatch-generator/internal/common"
	"dispatch-generator/utils"
)

// --- RangeSpec YAML methods ---

// UnmarshalYAML implements custom YAML unmarshaling for RangeSpec.
// Accepts:
//   - Single bound: 5, 0x1f, min
//   - Pair: [0, 9], [min, -1]
func (r *RangeSpec) UnmarshalYAML(node *yaml.Node) error {
	var raw any

	err := node.Decode(&raw)
	if err != nil {
		return err
	}

	spec, err := parseRangeValue(raw)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}

	*r = spec

	return nil
}

// MarshalYAML implements custom YAML marshaling for RangeSpec.
// Outputs a scalar for single values and a flow sequence for pairs.
func (r RangeSpec) MarshalYAML() (any, error) {
	if !r.Pair {
		return r.Lo.yamlNode(), nil
	}

	return &yaml.Node{
		Kind:    yaml.SequenceNode,
		Style:   yaml.FlowStyle,
		Content: []*yaml.Node{r.Lo.yamlNode(), r.Hi.yamlNode()},
	}, nil
}

func (b Bound) yamlNode() *yaml.Node {
	if b.Sym != "" {
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: b.Sym}
	}

	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: strconv.FormatInt(b.Value, 10)}
}

// parseRangeValue converts a decoded YAML or TOML value into a RangeSpec.
func parseRangeValue(raw any) (RangeSpec, error) {
	list, ok := raw.([]any)
	if !ok {
		b, err := parseBound(raw)
		if err != nil {
			return RangeSpec{}, err
		}

		return RangeSpec{Lo: b, Hi: b}, nil
	}

	if common.IsSingle(list) {
		return parseRangeValue(list[0])
	}

	if !common.IsPair(list) {
		return RangeSpec{}, fmt.Errorf("range must be a value or a [min, max] pair, got %d items", len(list))
	}

	first, second := utils.Unpack2(list)

	lo, err := parseBound(first)
	if err != nil {
		return RangeSpec{}, fmt.Errorf("range min: %w", err)
	}

	hi, err := parseBound(second)
	if err != nil {
		return RangeSpec{}, fmt.Errorf("range max: %w", err)
	}

	return Span(lo, hi), nil
}

func parseBound(raw any) (Bound, error) {
	switch v := raw.(type) {
	case int:
		return Val(int64(v)), nil
	case int64:
		return Val(v), nil
	case uint64:
		if v > math.MaxInt64 {
			return Bound{}, fmt.Errorf("bound %d does not fit int64", v)
		}

		return Val(int64(v)), nil
	case float64:
		if v != math.Trunc(v) || v < math.MinInt64 || v >= math.MaxInt64 {
			return Bound{}, fmt.Errorf("bound %v is not an integer", v)
		}

		return Val(int64(v)), nil
	case string:
		return parseBoundString(v)
	case nil:
		return Bound{}, errors.New("missing range bound")
	default:
		return Bound{}, fmt.Errorf("unsupported range bound %v (%T)", v, v)
	}
}

func parseBoundString(s string) (Bound, error) {
	switch sym := foldName(s); sym {
	case SymMin, SymMax:
		return Bound{Sym: sym}, nil
	}

	v, err := strconv.ParseInt(strings.TrimSpace(s), 0, 64)
	if err != nil {
		return Bound{}, fmt.Errorf("invalid range bound %q: expected integer, %q or %q", s, SymMin, SymMax)
	}

	return Val(v), nil
}

// --- StringArray YAML methods ---

// UnmarshalYAML implements yaml.Unmarshaler for StringArray.
func (s *StringArray) UnmarshalYAML(unmarshal func(any) error) error {
	var single string
	if err := unmarshal(&single); err == nil {
		*s = []string{single}
		return nil
	}

	var list []string
	if err := unmarshal(&list); err != nil {
		return errors.New("expected string or list of strings")
	}

	*s = list

	return nil
}
