// Package builder provides the editor data model consumed by the site generation pipeline
package builder

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// StyleValue is a single CSS value as authored in the editor: a number or a string.
type StyleValue struct {
	num   float64
	str   string
	isNum bool
}

// Number creates a numeric style value
func Number(v float64) StyleValue {
	return StyleValue{num: v, isNum: true}
}

// String creates a string style value
func String(s string) StyleValue {
	return StyleValue{str: s}
}

// IsNumber reports whether the value was authored as a number
func (v StyleValue) IsNumber() bool { return v.isNum }

// Float returns the numeric value, or zero for string values
func (v StyleValue) Float() float64 { return v.num }

// Raw returns the value without any unit applied
func (v StyleValue) Raw() string {
	if v.isNum {
		return FormatNumber(v.num)
	}
	return v.str
}

// FormatNumber renders a float without trailing zeros or exponent notation
func FormatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Declaration is one property/value pair of a style object
type Declaration struct {
	Property string
	Value    StyleValue
}

// Style is an ordered style object. Order is the order keys were first
// authored and is the order CSS declarations are emitted in.
type Style []Declaration

// Get returns the value for a camelCase property name
func (s Style) Get(property string) (StyleValue, bool) {
	for _, d := range s {
		if d.Property == property {
			return d.Value, true
		}
	}
	return StyleValue{}, false
}

// Has reports whether the property is set
func (s Style) Has(property string) bool {
	_, ok := s.Get(property)
	return ok
}

// With returns a copy of s with property set. An existing property keeps its
// position; a new one is appended.
func (s Style) With(property string, value StyleValue) Style {
	out := make(Style, len(s), len(s)+1)
	copy(out, s)
	for i := range out {
		if out[i].Property == property {
			out[i].Value = value
			return out
		}
	}
	return append(out, Declaration{Property: property, Value: value})
}

// Merge overlays override on s, override winning on collision
func (s Style) Merge(override Style) Style {
	out := make(Style, len(s))
	copy(out, s)
	for _, d := range override {
		out = out.With(d.Property, d.Value)
	}
	return out
}

// UnmarshalJSON decodes a style object keeping key order. Values that are
// neither strings nor numbers are dropped.
func (s *Style) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if bytes.Equal(trimmed, []byte("null")) {
		*s = nil
		return nil
	}

	dec := json.NewDecoder(bytes.NewReader(trimmed))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("style: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("style: expected object, got %v", tok)
	}

	var out Style
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return fmt.Errorf("style: %w", err)
		}
		key, _ := keyTok.(string)

		var raw any
		if err := dec.Decode(&raw); err != nil {
			return fmt.Errorf("style %q: %w", key, err)
		}

		switch v := raw.(type) {
		case json.Number:
			f, err := v.Float64()
			if err != nil {
				return fmt.Errorf("style %q: %w", key, err)
			}
			out = out.With(key, Number(f))
		case string:
			out = out.With(key, String(v))
		}
	}

	if _, err := dec.Token(); err != nil {
		return fmt.Errorf("style: %w", err)
	}

	*s = out
	return nil
}

// MarshalJSON encodes the style as an object in declaration order
func (s Style) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, d := range s {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(d.Property)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		if d.Value.isNum {
			buf.WriteString(FormatNumber(d.Value.num))
		} else {
			val, err := json.Marshal(d.Value.str)
			if err != nil {
				return nil, err
			}
			buf.Write(val)
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Breakpoint names a viewport-width tier
type Breakpoint string

const (
	BreakpointDesktop Breakpoint = "desktop"
	BreakpointTablet  Breakpoint = "tablet"
	BreakpointMobile  Breakpoint = "mobile"
)

// ResponsiveBreakpoints lists the override tiers in emission order
var ResponsiveBreakpoints = []Breakpoint{BreakpointTablet, BreakpointMobile}

// MaxWidth returns the media query width for a responsive breakpoint
func (b Breakpoint) MaxWidth() (int, bool) {
	switch b {
	case BreakpointTablet:
		return 1024, true
	case BreakpointMobile:
		return 768, true
	default:
		return 0, false
	}
}

// ResponsiveStyles holds per-breakpoint overrides. Keys other than tablet
// and mobile are ignored on decode.
type ResponsiveStyles struct {
	Tablet Style `json:"tablet,omitempty"`
	Mobile Style `json:"mobile,omitempty"`
}

// For returns the override layer for a breakpoint
func (r ResponsiveStyles) For(b Breakpoint) Style {
	switch b {
	case BreakpointTablet:
		return r.Tablet
	case BreakpointMobile:
		return r.Mobile
	default:
		return nil
	}
}
