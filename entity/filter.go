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

// Filter is a composable filter for transaction views.
type Filter struct {
	Op       FilterOp `yaml:"op"`
	Field    string   `yaml:"field,omitempty"`
	Value    any      `yaml:"value,omitempty"`
	Enabled  bool     `yaml:"enabled"`
	Children []Filter `yaml:"children,omitempty"`
}

// Sort is a sort directive for transaction views.
type Sort struct {
	Field string `yaml:"field"`
	Desc  bool   `yaml:"desc,omitempty"`
}

// AccountFilter matches the transactions of one account.
func AccountFilter(accountID string) Filter {
	return Filter{Op: Eq, Field: "account", Value: accountID, Enabled: true}
}

var opNames = []string{"and", "or", "not", "eq", "ne", "gt", "gte", "lt", "lte", "contains", "match"}

func (op FilterOp) String() string {
	if op < 0 || int(op) >= len(opNames) {
		return "unknown"
	}
	return opNames[op]
}

// MarshalYAML writes an op by name.
func (op FilterOp) MarshalYAML() (any, error) {
	return op.String(), nil
}

// UnmarshalYAML reads an op by name.
func (op *FilterOp) UnmarshalYAML(node *yaml.Node) (err error) {

	for i, name := range opNames {
		if node.Value == name {
			*op = FilterOp(i)
			return
		}
	}

	err = errors.Errorf("unknown filter op: %s", node.Value)
	return
}
