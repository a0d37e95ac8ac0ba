package product

import (
	"encoding/json"
	"errors"
	"strings"
)

// DetailKind tags the closed value set for product detail attributes.
type DetailKind int

const (
	DetailString DetailKind = iota
	DetailBool
	DetailNumber
)

// DetailValue is one care/material attribute value.
// The admin UI can store any key, but values are restricted to
// string | bool | number so decoding stays type-safe at the boundary.
type DetailValue struct {
	Kind DetailKind
	Str  string
	Bool bool
	Num  float64
}

func StringDetail(s string) DetailValue {
	return DetailValue{Kind: DetailString, Str: s}
}

func BoolDetail(b bool) DetailValue {
	return DetailValue{Kind: DetailBool, Bool: b}
}

func NumberDetail(n float64) DetailValue {
	return DetailValue{Kind: DetailNumber, Num: n}
}

// ParseDetailValue converts a raw Firestore/JSON value into a DetailValue.
// Unsupported shapes (maps, slices, nil) are rejected.
func ParseDetailValue(v any) (DetailValue, bool) {
	switch t := v.(type) {
	case string:
		return StringDetail(t), true
	case bool:
		return BoolDetail(t), true
	case float64:
		return NumberDetail(t), true
	case float32:
		return NumberDetail(float64(t)), true
	case int:
		return NumberDetail(float64(t)), true
	case int32:
		return NumberDetail(float64(t)), true
	case int64:
		return NumberDetail(float64(t)), true
	default:
		return DetailValue{}, false
	}
}

// Value returns the wire representation for persistence/JSON.
func (d DetailValue) Value() any {
	switch d.Kind {
	case DetailBool:
		return d.Bool
	case DetailNumber:
		return d.Num
	default:
		return d.Str
	}
}

// MarshalJSON writes the bare value, not the tagged struct.
func (d DetailValue) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Value())
}

// UnmarshalJSON accepts a bare string/bool/number.
func (d *DetailValue) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	dv, ok := ParseDetailValue(raw)
	if !ok {
		return errors.New("product: detail value must be string, bool or number")
	}
	*d = dv
	return nil
}

// ParseDetails converts a raw map, dropping empty keys and unsupported values.
func ParseDetails(raw map[string]any) map[string]DetailValue {
	if len(raw) == 0 {
		return nil
	}
	out := map[string]DetailValue{}
	for k, v := range raw {
		key := strings.TrimSpace(k)
		if key == "" {
			continue
		}
		dv, ok := ParseDetailValue(v)
		if !ok {
			continue
		}
		out[key] = dv
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// DetailsToWire converts the typed map back to plain values.
func DetailsToWire(details map[string]DetailValue) map[string]any {
	if len(details) == 0 {
		return nil
	}
	out := map[string]any{}
	for k, v := range details {
		out[k] = v.Value()
	}
	return out
}
