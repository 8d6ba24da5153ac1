// Package money exposes ISO-4217 currency metadata: codes and
// default fraction digits from golang.org/x/text/currency, with
// numeric codes and localized names and symbols from an
// embedded table.
package money

import (
	_ "embed"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// ErrUnknownCurrency is returned for codes missing from the
// table.
var ErrUnknownCurrency = errors.New("unknown currency")

//go:embed currencies.yaml
var currenciesYAML []byte

// Currency is one ISO-4217 currency. The zero value is unset.
type Currency struct {
	unit    currency.Unit
	numeric int
	names   localized
	symbols localized
}

// localized maps locales to strings, falling back to the first
// locale of the table entry.
type localized struct {
	tags    []language.Tag
	values  []string
	matcher language.Matcher
}

type entry struct {
	Code    string    `yaml:"code"`
	Numeric int       `yaml:"numeric"`
	Names   yaml.Node `yaml:"names"`
	Symbols yaml.Node `yaml:"symbols"`
}

type table struct {
	Currencies []entry `yaml:"currencies"`
}

var loadTable = sync.OnceValues(func() (map[string]Currency, error) {
	return parseTable(currenciesYAML)
})

func parseTable(data []byte) (map[string]Currency, error) {
	var t table
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("parse currency table: %w", err)
	}

	out := make(map[string]Currency, len(t.Currencies))
	for _, e := range t.Currencies {
		unit, err := currency.ParseISO(e.Code)
		if err != nil {
			return nil, fmt.Errorf("currency %s: %w", e.Code, err)
		}
		names, err := parseLocalized(&e.Names)
		if err != nil {
			return nil, fmt.Errorf("currency %s names: %w", e.Code, err)
		}
		symbols, err := parseLocalized(&e.Symbols)
		if err != nil {
			return nil, fmt.Errorf("currency %s symbols: %w", e.Code, err)
		}
		out[unit.String()] = Currency{
			unit:    unit,
			numeric: e.Numeric,
			names:   names,
			symbols: symbols,
		}
	}
	return out, nil
}

// parseLocalized reads a YAML mapping in document order so the
// first locale becomes the fallback.
func parseLocalized(n *yaml.Node) (localized, error) {
	var l localized
	if n.Kind == 0 {
		return l, nil
	}
	if n.Kind != yaml.MappingNode {
		return l, fmt.Errorf("line %d: expected a mapping", n.Line)
	}
	for i := 0; i+1 < len(n.Content); i += 2 {
		tag, err := language.Parse(n.Content[i].Value)
		if err != nil {
			return l, fmt.Errorf("line %d: %w", n.Content[i].Line, err)
		}
		l.tags = append(l.tags, tag)
		l.values = append(l.values, n.Content[i+1].Value)
	}
	if len(l.tags) > 0 {
		l.matcher = language.NewMatcher(l.tags)
	}
	return l, nil
}

// lookup returns the value for the best matching locale. A match
// counts only when the base languages agree, since the matcher
// falls back to English for unrelated languages such as "sw".
// Without a match it returns the first value and false.
func (l localized) lookup(tag language.Tag) (string, bool) {
	if l.matcher == nil {
		return "", false
	}
	_, idx, conf := l.matcher.Match(tag)
	want, _ := tag.Base()
	got, _ := l.tags[idx].Base()
	if conf == language.No || want != got {
		return l.values[0], false
	}
	return l.values[idx], true
}

// Lookup returns the currency for a three-letter code, in any
// letter case.
func Lookup(code string) (Currency, error) {
	t, err := loadTable()
	if err != nil {
		return Currency{}, err
	}
	c, ok := t[strings.ToUpper(strings.TrimSpace(code))]
	if !ok {
		return Currency{}, fmt.Errorf("%w: %q", ErrUnknownCurrency, code)
	}
	return c, nil
}

// MustLookup is like Lookup but panics on error.
func MustLookup(code string) Currency {
	c, err := Lookup(code)
	if err != nil {
		panic(err)
	}
	return c
}

// Available returns every known currency ordered by code.
func Available() ([]Currency, error) {
	t, err := loadTable()
	if err != nil {
		return nil, err
	}
	out := make([]Currency, 0, len(t))
	for _, c := range t {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Code() < out[j].Code()
	})
	return out, nil
}

// IsZero reports whether c is unset.
func (c Currency) IsZero() bool { return c.unit == currency.Unit{} }

// Code returns the ISO-4217 alphabetic code.
func (c Currency) Code() string { return c.unit.String() }

// Unit returns the golang.org/x/text currency unit.
func (c Currency) Unit() currency.Unit { return c.unit }

// NumericCode returns the ISO-4217 numeric code.
func (c Currency) NumericCode() int { return c.numeric }

// DefaultFractionDigits returns the standard number of minor
// unit digits, e.g. 2 for USD and 0 for JPY.
func (c Currency) DefaultFractionDigits() int {
	scale, _ := currency.Standard.Rounding(c.unit)
	return scale
}

// DisplayName returns the name for the closest locale, falling
// back to the table's first locale and then to the code.
func (c Currency) DisplayName(tag language.Tag) string {
	name, _ := c.names.lookup(tag)
	if name == "" {
		return c.Code()
	}
	return name
}

// Symbol returns the symbol for the closest locale. When no
// locale matches, the code is the symbol.
func (c Currency) Symbol(tag language.Tag) string {
	sym, ok := c.symbols.lookup(tag)
	if !ok || sym == "" {
		return c.Code()
	}
	return sym
}

// Equal reports whether both currencies have the same code.
func (c Currency) Equal(o Currency) bool { return c.unit == o.unit }

func (c Currency) String() string {
	if c.IsZero() {
		return "<unset>"
	}
	return c.Code()
}
