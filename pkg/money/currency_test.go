package money

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
)

func TestLookup(t *testing.T) {
	usd, err := Lookup("usd")
	require.NoError(t, err)
	assert.Equal(t, "USD", usd.Code())
	assert.Equal(t, 840, usd.NumericCode())
	assert.Equal(t, currency.USD, usd.Unit())
	assert.Equal(t, "USD", usd.String())
	assert.False(t, usd.IsZero())

	_, err = Lookup("ZZZ")
	assert.ErrorIs(t, err, ErrUnknownCurrency)
	_, err = Lookup("")
	assert.ErrorIs(t, err, ErrUnknownCurrency)
}

func TestMustLookup(t *testing.T) {
	assert.Equal(t, "EUR", MustLookup("EUR").Code())
	assert.Panics(t, func() { MustLookup("nope") })
}

func TestCurrency_DefaultFractionDigits(t *testing.T) {
	tests := []struct {
		code   string
		digits int
	}{
		{"USD", 2},
		{"EUR", 2},
		{"JPY", 0},
		{"KWD", 3},
		{"BHD", 3},
	}
	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			assert.Equal(t, tt.digits, MustLookup(tt.code).DefaultFractionDigits())
		})
	}
}

// TestCurrency_Localized verifies locale matching with regional
// variants and the fallback for unmatched locales.
func TestCurrency_Localized(t *testing.T) {
	usd := MustLookup("USD")
	tests := []struct {
		locale string
		name   string
		symbol string
	}{
		{"en-US", "US Dollar", "$"},
		{"fr-FR", "dollar des États-Unis", "$US"},
		{"de-CH", "US-Dollar", "$"},
		{"ja", "米ドル", "$"},
	}
	for _, tt := range tests {
		t.Run(tt.locale, func(t *testing.T) {
			tag := language.MustParse(tt.locale)
			assert.Equal(t, tt.name, usd.DisplayName(tag))
			assert.Equal(t, tt.symbol, usd.Symbol(tag))
		})
	}

	for _, locale := range []string{"sw", "zu", "th"} {
		t.Run("unmatched "+locale, func(t *testing.T) {
			tag := language.MustParse(locale)
			assert.Equal(t, "US Dollar", usd.DisplayName(tag))
			assert.Equal(t, "USD", usd.Symbol(tag))
		})
	}
}

func TestLocalized_LookupRequiresSameBase(t *testing.T) {
	tags := []language.Tag{language.English, language.German}
	l := localized{
		tags:    tags,
		values:  []string{"en-value", "de-value"},
		matcher: language.NewMatcher(tags),
	}
	tests := []struct {
		locale string
		want   string
		ok     bool
	}{
		{"en-GB", "en-value", true},
		{"de-AT", "de-value", true},
		{"sw", "en-value", false},
		{"zu", "en-value", false},
	}
	for _, tt := range tests {
		t.Run(tt.locale, func(t *testing.T) {
			got, ok := l.lookup(language.MustParse(tt.locale))
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.ok, ok)
		})
	}
}

func TestCurrency_Equal(t *testing.T) {
	assert.True(t, MustLookup("GBP").Equal(MustLookup("gbp")))
	assert.False(t, MustLookup("GBP").Equal(MustLookup("EUR")))
	assert.True(t, Currency{}.IsZero())
	assert.Equal(t, "<unset>", Currency{}.String())
}

func TestAvailable(t *testing.T) {
	all, err := Available()
	require.NoError(t, err)
	require.NotEmpty(t, all)
	for i := 1; i < len(all); i++ {
		assert.Less(t, all[i-1].Code(), all[i].Code())
	}
	for _, c := range all {
		assert.Positive(t, c.NumericCode(), c.Code())
		assert.NotEqual(t, c.Code(), c.DisplayName(language.English), c.Code())
	}
}

func TestParseTable_Errors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"bad yaml", "currencies: [\n"},
		{"bad code", "currencies:\n  - code: Q1\n    numeric: 1\n"},
		{"bad locale", "currencies:\n  - code: USD\n    names:\n      \"!!\": x\n"},
		{"names not a map", "currencies:\n  - code: USD\n    names: [a]\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseTable([]byte(tt.data))
			assert.Error(t, err)
		})
	}
}

func TestParseTable_MissingLocales(t *testing.T) {
	got, err := parseTable([]byte("currencies:\n  - code: USD\n    numeric: 840\n"))
	require.NoError(t, err)
	usd := got["USD"]
	assert.Equal(t, "USD", usd.DisplayName(language.English))
	assert.Equal(t, "USD", usd.Symbol(language.English))
}
