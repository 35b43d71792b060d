package locale

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Fixed words used in human-readable values.
const (
	Yes   = "Sim"
	No    = "Não"
	Empty = "Vazio"
)

// DateLayout renders calendar dates as dd/mm/yyyy.
const DateLayout = "02/01/2006"

// Formatter renders values for one locale and one currency. It is safe for
// concurrent use.
type Formatter struct {
	tag     language.Tag
	unit    currency.Unit
	printer *message.Printer
}

// New returns a Formatter for the given language tag and currency.
func New(tag language.Tag, unit currency.Unit) *Formatter {
	return &Formatter{tag: tag, unit: unit, printer: message.NewPrinter(tag)}
}

// Parse builds a Formatter from a BCP-47 tag such as "pt-BR" and an ISO 4217
// currency code such as "BRL".
func Parse(tag, code string) (*Formatter, error) {
	t, err := language.Parse(tag)
	if err != nil {
		return nil, fmt.Errorf("parse locale %q: %w", tag, err)
	}
	u, err := currency.ParseISO(code)
	if err != nil {
		return nil, fmt.Errorf("parse currency %q: %w", code, err)
	}
	return New(t, u), nil
}

// Default is the formatter of the reference deployment: Brazilian
// Portuguese and Brazilian Real.
func Default() *Formatter {
	return New(language.BrazilianPortuguese, currency.BRL)
}

// Currency formats an amount with the currency symbol, grouping and the
// currency's standard number of decimals, e.g. "R$ 1.500,50".
func (f *Formatter) Currency(d decimal.Decimal) string {
	return f.printer.Sprint(currency.Symbol(f.unit.Amount(d.InexactFloat64())))
}

// Number formats a plain number with the given number of decimals.
func (f *Formatter) Number(v float64, decimals int) string {
	return f.printer.Sprint(number.Decimal(v, number.Scale(decimals)))
}

// Date formats the calendar day of t.
func (f *Formatter) Date(t time.Time) string {
	return t.Format(DateLayout)
}

// Bool returns Yes or No.
func (f *Formatter) Bool(b bool) string {
	if b {
		return Yes
	}
	return No
}

// List joins values with ", " or returns Empty for an empty list.
func (f *Formatter) List(values []string) string {
	if len(values) == 0 {
		return Empty
	}
	return strings.Join(values, ", ")
}

// Text returns s, or Empty when s is the empty string.
func (f *Formatter) Text(s string) string {
	if s == "" {
		return Empty
	}
	return s
}
