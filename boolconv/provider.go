package boolconv

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var ErrSyntax = errors.New("invalid number syntax")

// FormatProvider supplies the culture-specific rules used to read numbers
// from text.
type FormatProvider interface {
	Name() string
	ParseFloat(s string) (float64, error)
}

// Invariant reads numbers independently of any locale: '.' separates
// decimals and ',' groups thousands.
var Invariant FormatProvider = invariant{}

type invariant struct{}

func (invariant) Name() string { return "invariant" }

func (invariant) ParseFloat(s string) (float64, error) {
	return parseNumber(s, ".", ",")
}

// Culture reads numbers using the separators of a language tag.
type Culture struct {
	tag     language.Tag
	decimal string
	group   string
}

// probe is formatted for a tag to discover its separators; it has a group
// and a fractional part.
const probe = 1234.5

func NewCulture(tag language.Tag) *Culture {
	decimal, group := separators(tag)
	return &Culture{tag: tag, decimal: decimal, group: group}
}

// ParseCulture builds a Culture from a BCP 47 name such as "de-DE".
func ParseCulture(name string) (*Culture, error) {
	tag, err := language.Parse(name)
	if err != nil {
		return nil, fmt.Errorf("invalid locale '%s': %w", name, err)
	}
	return NewCulture(tag), nil
}

func (c *Culture) Name() string { return c.tag.String() }

func (c *Culture) Separators() (decimal, group string) {
	return c.decimal, c.group
}

func (c *Culture) ParseFloat(s string) (float64, error) {
	return parseNumber(s, c.decimal, c.group)
}

func separators(tag language.Tag) (decimal, group string) {
	formatted := message.NewPrinter(tag).Sprintf("%.1f", probe)
	marks := strings.FieldsFunc(formatted, unicode.IsDigit)
	switch len(marks) {
	case 2:
		return marks[1], marks[0]
	case 1:
		return marks[0], ""
	}
	return ".", ","
}

func parseNumber(s, decimal, group string) (float64, error) {
	t := strings.TrimSpace(s)
	if t == "" || strings.ContainsAny(t, "xX_") {
		return 0, syntaxError(s)
	}
	whole, frac, hasFrac := strings.Cut(t, decimal)
	if group != "" {
		if strings.Contains(frac, group) {
			return 0, syntaxError(s)
		}
		whole = strings.ReplaceAll(whole, group, "")
		if r, _ := utf8.DecodeRuneInString(group); unicode.IsSpace(r) {
			if strings.IndexFunc(frac, unicode.IsSpace) >= 0 {
				return 0, syntaxError(s)
			}
			whole = strings.Map(func(r rune) rune {
				if unicode.IsSpace(r) {
					return -1
				}
				return r
			}, whole)
		}
	}
	if decimal != "." && strings.Contains(whole+frac, ".") {
		return 0, syntaxError(s)
	}
	t = whole
	if hasFrac {
		t += "." + frac
	}
	f, err := strconv.ParseFloat(t, 64)
	if err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) && errors.Is(numErr.Err, strconv.ErrRange) {
			return f, nil
		}
		return 0, syntaxError(s)
	}
	return f, nil
}

func syntaxError(s string) error {
	return fmt.Errorf("%w: '%s'", ErrSyntax, s)
}
