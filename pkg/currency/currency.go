// Package currency provides an assertion subject for ISO 4217
// currencies backed by the money table.
package currency

import (
	"golang.org/x/text/language"

	"digital.vasic.truthext/pkg/money"
	"digital.vasic.truthext/pkg/subject"
)

// CurrencySubject asserts on a money.Currency through its
// projections.
type CurrencySubject struct {
	subject.Subject[money.Currency]
}

// Currencies is the Factory of CurrencySubject.
func Currencies() subject.Factory[CurrencySubject, money.Currency] {
	return func(meta *subject.Metadata, actual *money.Currency) CurrencySubject {
		return CurrencySubject{Subject: subject.New(meta, actual, "currency")}
	}
}

// AssertThatCurrency starts a chain on c.
func AssertThatCurrency(t subject.TestingT, c money.Currency, opts ...subject.Option) CurrencySubject {
	return subject.AssertAbout(t, Currencies(), opts...).That(c)
}

// AssertThatCurrencyPtr starts a chain on a possibly absent
// currency.
func AssertThatCurrencyPtr(t subject.TestingT, c *money.Currency, opts ...subject.Option) CurrencySubject {
	return subject.AssertAbout(t, Currencies(), opts...).ThatPtr(c)
}

// CurrencyCode derives the three-letter code, e.g. "USD".
func (s CurrencySubject) CurrencyCode() subject.StringSubject {
	s.Metadata().T().Helper()
	return subject.Derive(s.Subject, "CurrencyCode()", money.Currency.Code, subject.Strings())
}

// DisplayName derives the name in the configured locale.
func (s CurrencySubject) DisplayName() subject.StringSubject {
	s.Metadata().T().Helper()
	tag := s.Metadata().Locale()
	return subject.Derive(s.Subject, "DisplayName()",
		func(c money.Currency) string { return c.DisplayName(tag) },
		subject.Strings())
}

// DisplayNameIn derives the name in locale.
func (s CurrencySubject) DisplayNameIn(locale language.Tag) subject.StringSubject {
	s.Metadata().T().Helper()
	return subject.Derive(s.Subject, "DisplayNameIn("+locale.String()+")",
		func(c money.Currency) string { return c.DisplayName(locale) },
		subject.Strings())
}

// Symbol derives the symbol in the configured locale.
func (s CurrencySubject) Symbol() subject.StringSubject {
	s.Metadata().T().Helper()
	tag := s.Metadata().Locale()
	return subject.Derive(s.Subject, "Symbol()",
		func(c money.Currency) string { return c.Symbol(tag) },
		subject.Strings())
}

// SymbolIn derives the symbol in locale.
func (s CurrencySubject) SymbolIn(locale language.Tag) subject.StringSubject {
	s.Metadata().T().Helper()
	return subject.Derive(s.Subject, "SymbolIn("+locale.String()+")",
		func(c money.Currency) string { return c.Symbol(locale) },
		subject.Strings())
}

// NumericCode derives the ISO 4217 numeric code.
func (s CurrencySubject) NumericCode() subject.IntegerSubject {
	s.Metadata().T().Helper()
	return subject.Derive(s.Subject, "NumericCode()", money.Currency.NumericCode, subject.Integers())
}

// DefaultFractionDigits derives the number of minor unit digits.
func (s CurrencySubject) DefaultFractionDigits() subject.IntegerSubject {
	s.Metadata().T().Helper()
	return subject.Derive(s.Subject, "DefaultFractionDigits()",
		money.Currency.DefaultFractionDigits, subject.Integers())
}
