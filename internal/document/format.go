package document

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var upperPT = cases.Upper(language.BrazilianPortuguese)

// FormatBRL renders d as Brazilian currency: "R$ 1.234,50".
func FormatBRL(d decimal.Decimal) string {
	sign := ""
	if d.IsNegative() {
		sign = "-"
		d = d.Abs()
	}

	intPart, fracPart, _ := strings.Cut(d.StringFixed(2), ".")

	var b strings.Builder
	for i, c := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteRune('.')
		}
		b.WriteRune(c)
	}
	return sign + "R$ " + b.String() + "," + fracPart
}

// FormatDate renders t as dd/mm/yyyy in UTC.
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format("02/01/2006")
}

// Upper applies Portuguese case mapping.
func Upper(s string) string {
	return upperPT.String(s)
}

// ShortID returns the first eight characters of id.
func ShortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
