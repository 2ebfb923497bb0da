// Package boolconv converts arbitrary values to bool using a fixed fallback
// chain: exact bool, self-converting values, numeric zero test, then a strict
// parse of the value's text form.
package boolconv

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"unicode"
)

const (
	TrueString  = "True"
	FalseString = "False"
)

// maxIndirect bounds pointer chasing so self-referential pointer types end.
const maxIndirect = 64

var ErrNotBoolean = errors.New("invalid boolean value")

// Converter is implemented by values that know how to convert themselves to
// a bool. A non-nil error makes ToBoolean fall back to the numeric and text
// interpretations of the original value.
type Converter interface {
	ToBoolean(p FormatProvider) (bool, error)
}

// ConverterFunc adapts a plain function to the Converter interface.
type ConverterFunc func(p FormatProvider) (bool, error)

func (f ConverterFunc) ToBoolean(p FormatProvider) (bool, error) {
	return f(p)
}

// tier reports ok=false when it cannot decide, so the next tier is tried.
type tier func(v any, p FormatProvider) (result, ok bool)

var tiers = []tier{exactBool, convertible, numeric, text}

// ToBoolean converts value to a bool and never fails. nil (including nil
// pointers) is false. The first provider that is non-nil is used for
// culture-sensitive parsing; Invariant is used when none is given.
func ToBoolean(value any, provider ...FormatProvider) bool {
	v, ok := indirect(value)
	if !ok {
		return false
	}
	p := resolve(provider)
	for _, t := range tiers {
		if b, ok := t(v, p); ok {
			return b
		}
	}
	return false
}

// StringToBoolean reports whether s is the text "True", ignoring case and
// surrounding white space. Any other text, including "False", is false.
func StringToBoolean(s string) bool {
	b, ok := parseStrict(s)
	return ok && b
}

// ParseBool is the strict parse behind StringToBoolean. Text other than the
// two literals yields an error wrapping ErrNotBoolean.
func ParseBool(s string) (bool, error) {
	b, ok := parseStrict(s)
	if !ok {
		return false, fmt.Errorf("%w: '%s'", ErrNotBoolean, s)
	}
	return b, nil
}

func StringPtrToBoolean(s *string) bool {
	if s == nil {
		return false
	}
	return StringToBoolean(*s)
}

func resolve(provider []FormatProvider) FormatProvider {
	for _, p := range provider {
		if p != nil {
			return p
		}
	}
	return Invariant
}

// indirect follows pointers down to the value they refer to, stopping early
// at a pointer that converts or formats itself. ok is false for nil values.
func indirect(value any) (any, bool) {
	for depth := 0; value != nil && depth < maxIndirect; depth++ {
		rv := reflect.ValueOf(value)
		switch rv.Kind() {
		case reflect.Pointer:
			if rv.IsNil() {
				return nil, false
			}
			switch value.(type) {
			case Converter, fmt.Stringer, error:
				return value, true
			}
			value = rv.Elem().Interface()
		case reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
			if rv.IsNil() {
				return nil, false
			}
			return value, true
		default:
			return value, true
		}
	}
	return nil, false
}

func exactBool(v any, _ FormatProvider) (bool, bool) {
	b, ok := v.(bool)
	return b, ok
}

func convertible(v any, p FormatProvider) (bool, bool) {
	if c, ok := v.(Converter); ok {
		b, err := c.ToBoolean(p)
		return b, err == nil
	}
	if rv := reflect.ValueOf(v); rv.Kind() == reflect.String {
		return parseStrict(rv.String())
	}
	return false, false
}

func numeric(v any, p FormatProvider) (bool, bool) {
	n, ok := toFloat(v, p)
	if !ok {
		return false, false
	}
	return n != 0, true
}

func text(v any, _ FormatProvider) (bool, bool) {
	return StringToBoolean(fmt.Sprint(v)), true
}

func toFloat(v any, p FormatProvider) (float64, bool) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	case reflect.Bool:
		if rv.Bool() {
			return 1, true
		}
		return 0, true
	}
	f, err := p.ParseFloat(fmt.Sprint(v))
	if err != nil {
		return 0, false
	}
	return f, true
}

func parseStrict(s string) (value, ok bool) {
	s = strings.TrimFunc(s, func(r rune) bool {
		return unicode.IsSpace(r) || r == 0
	})
	switch {
	case strings.EqualFold(s, TrueString):
		return true, true
	case strings.EqualFold(s, FalseString):
		return false, true
	}
	return false, false
}
