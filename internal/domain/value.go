package domain

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// ItemValue holds an item's worth. Catalog sources deliver it either as a
// number or as a formatted string such as "1,500".
type ItemValue struct {
	raw    string
	parsed int64
}

// NewItemValue builds a value from an integer
func NewItemValue(v int64) ItemValue {
	return ItemValue{raw: strconv.FormatInt(v, 10), parsed: v}
}

// ParseItemValue builds a value from text. Every character outside 0-9 is
// stripped before parsing; text with no digits is worth 0.
func ParseItemValue(text string) ItemValue {
	return ItemValue{raw: text, parsed: ParseValue(text)}
}

// ParseValue strips non-digit characters and parses the remainder.
func ParseValue(text string) int64 {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return 0
	}
	v, err := strconv.ParseInt(b.String(), 10, 64)
	if err != nil {
		return 0
	}
	return v
}

// Int returns the parsed value
func (v ItemValue) Int() int64 {
	return v.parsed
}

// Raw returns the value as it appeared in the catalog source
func (v ItemValue) Raw() string {
	return v.raw
}

// MarshalJSON emits the parsed integer
func (v ItemValue) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.parsed)
}

// UnmarshalJSON accepts a JSON number or string
func (v *ItemValue) UnmarshalJSON(data []byte) error {
	var n json.Number
	if err := json.Unmarshal(data, &n); err == nil {
		return v.fromNumber(n.String())
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("%w: item value must be a number or string", ErrValidation)
	}
	*v = ParseItemValue(s)
	return nil
}

// UnmarshalYAML accepts a YAML int or string scalar
func (v *ItemValue) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("%w: item value must be a scalar", ErrValidation)
	}
	if node.Tag == "!!int" || node.Tag == "!!float" {
		return v.fromNumber(node.Value)
	}
	*v = ParseItemValue(node.Value)
	return nil
}

func (v *ItemValue) fromNumber(text string) error {
	if i, err := strconv.ParseInt(text, 10, 64); err == nil {
		*v = ItemValue{raw: text, parsed: i}
		return nil
	}
	f, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return fmt.Errorf("%w: invalid item value %q", ErrValidation, text)
	}
	*v = ItemValue{raw: text, parsed: int64(f)}
	return nil
}
