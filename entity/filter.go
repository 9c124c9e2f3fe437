package entity

import (
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// FilterOp represents a filter operation type.
type FilterOp int

const (
	// Logical operators
	And FilterOp = iota
	Or
	Not

	// Comparison operators
	Eq       // ==
	Ne       // !=
	Gt       // >
	Gte      // >=
	Lt       // <
	Lte      // <=
	Contains // substring match
	Match    // regex match
)

var opNames = []string{
	And:      "and",
	Or:       "or",
	Not:      "not",
	Eq:       "eq",
	Ne:       "ne",
	Gt:       "gt",
	Gte:      "gte",
	Lt:       "lt",
	Lte:      "lte",
	Contains: "contains",
	Match:    "match",
}

func (op FilterOp) String() string {
	if op < 0 || int(op) >= len(opNames) {
		return "unknown"
	}
	return opNames[op]
}

// MarshalYAML writes the op by name.
func (op FilterOp) MarshalYAML() (any, error) {
	return op.String(), nil
}

// UnmarshalYAML reads the op by name, as in "op: gte".
func (op *FilterOp) UnmarshalYAML(node *yaml.Node) (err error) {

	for i, name := range opNames {
		if node.Value == name {
			*op = FilterOp(i)
			return
		}
	}

	err = errors.Errorf("unknown filter op %q at line %d", node.Value, node.Line)
	return
}

// Filter represents a composable filter for row searches.
// Filters can be simple comparisons or logical combinations.
// The zero Filter is an And with no children, matching everything.
type Filter struct {
	Op       FilterOp `yaml:"op"`
	Field    string   `yaml:"field,omitempty"`
	Value    any      `yaml:"value,omitempty"`
	Children []Filter `yaml:"children,omitempty"`
}

// IsZero reports whether the filter matches everything.
func (f Filter) IsZero() bool {
	return f.Op == And && len(f.Children) == 0
}

// SearchFilter builds an Or of Contains over fields.
// An empty text yields the zero Filter.
func SearchFilter(text string, fields []string) Filter {

	if text == "" || len(fields) == 0 {
		return Filter{}
	}

	children := make([]Filter, len(fields))
	for i, field := range fields {
		children[i] = Filter{Op: Contains, Field: field, Value: text}
	}

	return Filter{Op: Or, Children: children}
}
