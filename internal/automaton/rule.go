package automaton

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrInvalidRule is returned when rule text is not hexadecimal.
var ErrInvalidRule = errors.New("invalid rule")

// Rule packs 64 two-bit outputs, one per 3-symbol neighborhood.
type Rule struct {
	rule uint64
}

// NewRule wraps the packed table v.
func NewRule(v uint64) Rule {
	return Rule{rule: v}
}

// ParseRule parses unprefixed hexadecimal text of any case.
func ParseRule(s string) (Rule, error) {
	v, err := strconv.ParseUint(s, 16, 64)
	if err != nil {
		return Rule{}, fmt.Errorf("%w: %w", ErrInvalidRule, err)
	}
	return Rule{rule: v}, nil
}

// Code packs a neighborhood into the 6-bit lookup code.
func Code(left, center, right uint8) uint8 {
	return (left&3)<<4 | (center&3)<<2 | right&3
}

// Apply looks up the output symbol for a neighborhood code. The code is used
// directly as a bit shift into the table.
func (r Rule) Apply(code uint8) uint8 {
	return uint8(r.rule>>(code&63)) & 3
}

// Value returns the packed table.
func (r Rule) Value() uint64 { return r.rule }

// String formats the rule as unpadded lowercase hex.
func (r Rule) String() string {
	return strconv.FormatUint(r.rule, 16)
}

// MarshalText implements encoding.TextMarshaler.
func (r Rule) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (r *Rule) UnmarshalText(text []byte) error {
	parsed, err := ParseRule(string(text))
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}
