package main

import (
	"fmt"

	"github.com/cdzombak/libwx"
	"github.com/cdzombak/midea2influx/boolconv"
)

type fieldKind int

const (
	boolField fieldKind = iota
	floatField
)

type fieldSpec struct {
	name string
	kind fieldKind
}

// deviceFields maps discover output keys to point fields.
var deviceFields = map[string]fieldSpec{
	"online":  {"online", boolField},
	"running": {"running", boolField},
	"tank":    {"tank_full", boolField},
	"filter":  {"filter_needs_cleaning", boolField},
	"sleep":   {"sleep", boolField},
	"humid%":  {"humidity_pct", floatField},
	"target%": {"target_humidity_pct", floatField},
	"temp":    {"temp_c", floatField},
	"fan":     {"fan", floatField},
}

// deviceTags maps discover output keys to point tags.
var deviceTags = map[string]string{
	"id":      "id",
	"addr":    "addr",
	"s/n":     "sn",
	"name":    "name",
	"version": "version",
}

type Converter struct {
	provider boolconv.FormatProvider
}

func NewConverter(p boolconv.FormatProvider) Converter {
	if p == nil {
		p = boolconv.Invariant
	}
	return Converter{provider: p}
}

func (c Converter) Bool(s string) bool {
	return boolconv.ToBoolean(s, c.provider)
}

// Flag converts a boolean device value. Unlike Bool it refuses text that is
// neither a boolean literal nor a number, so unknown readings are not
// recorded as false.
func (c Converter) Flag(s string) (bool, error) {
	if _, err := boolconv.ParseBool(s); err != nil {
		if _, numErr := c.provider.ParseFloat(s); numErr != nil {
			return false, err
		}
	}
	return c.Bool(s), nil
}

func (c Converter) Float(s string) (float64, error) {
	f, err := c.provider.ParseFloat(s)
	if err != nil {
		return 0, fmt.Errorf("invalid %s numeric value: %w", c.provider.Name(), err)
	}
	return f, nil
}

// Fields converts a single discover value into one or more point fields.
func (c Converter) Fields(spec fieldSpec, value string) (map[string]any, error) {
	switch spec.kind {
	case boolField:
		b, err := c.Flag(value)
		if err != nil {
			return nil, err
		}
		return map[string]any{spec.name: b}, nil
	case floatField:
		f, err := c.Float(value)
		if err != nil {
			return nil, err
		}
		fields := map[string]any{spec.name: f}
		if spec.name == "temp_c" {
			fields["temp_f"] = libwx.TempC(f).F().Unwrap()
		}
		return fields, nil
	}
	return nil, fmt.Errorf("unknown field kind %d", spec.kind)
}
