package money

import (
	"errors"
	"fmt"
	"math"
	"strings"

	gomoney "github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

const fraction = 2

var ErrInvalidAmount = errors.New("invalid amount")

// maxUnits is the largest amount, in cents, go-money can format.
var maxUnits = decimal.NewFromInt(math.MaxInt64)

type Formatter struct {
	f *gomoney.Formatter
}

// NewFormatter builds a two-digit formatter printing the symbol before the value.
func NewFormatter(symbol, decimalSep, thousandSep string) *Formatter {
	return &Formatter{f: gomoney.NewFormatter(fraction, decimalSep, thousandSep, symbol, "$1")}
}

var defaultFormatter = NewFormatter("R$", ".", "")

func Default() *Formatter { return defaultFormatter }

// Format renders the amount rounded half away from zero to cents, e.g. R$800.00.
func (f *Formatter) Format(amount decimal.Decimal) string {
	if f == nil {
		f = defaultFormatter
	}
	units := amount.Shift(fraction).Round(0)
	if units.Abs().GreaterThan(maxUnits) {
		return f.formatLarge(units)
	}
	return f.f.Format(units.IntPart())
}

// formatLarge lays out amounts beyond int64 cents with the same template,
// separators and sign placement as go-money.
func (f *Formatter) formatLarge(units decimal.Decimal) string {
	digits := units.Abs().String()
	whole, cents := digits[:len(digits)-fraction], digits[len(digits)-fraction:]
	if f.f.Thousand != "" {
		for i := len(whole) - 3; i > 0; i -= 3 {
			whole = whole[:i] + f.f.Thousand + whole[i:]
		}
	}

	s := strings.Replace(f.f.Template, "1", whole+f.f.Decimal+cents, 1)
	s = strings.Replace(s, "$", f.f.Grapheme, 1)
	if units.IsNegative() {
		s = "-" + s
	}
	return s
}

func Format(amount decimal.Decimal) string { return defaultFormatter.Format(amount) }

// Parse reads a plain decimal amount; a comma is accepted as decimal separator.
func Parse(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if strings.Contains(s, ",") && !strings.Contains(s, ".") {
		s = strings.Replace(s, ",", ".", 1)
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}
	return d, nil
}
