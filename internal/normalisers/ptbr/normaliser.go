package ptbr

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/custodia-labs/fundamentus-cli/internal/core/domain"
	"github.com/custodia-labs/fundamentus-cli/internal/core/ports/driven"
)

// Ensure Normaliser implements the interface.
var _ driven.CellNormaliser = (*Normaliser)(nil)

// Placeholder marks a cell without data.
const Placeholder = "-"

// PercentPrecision is the number of fractional digits kept for percentages.
const PercentPrecision = 6

var currencyPrefix = regexp.MustCompile(`(?i)^R\$\s?`)

// Normaliser converts cells by column type.
type Normaliser struct{}

// New creates a pt-BR cell normaliser.
func New() *Normaliser {
	return &Normaliser{}
}

// Normalise returns the canonical value of cell.
// Text columns are only tidied.
func (n *Normaliser) Normalise(cell string, t domain.ColumnType) string {
	if t == domain.ColumnNumeric {
		return Number(cell)
	}
	return Tidy(cell)
}

// Tidy replaces non-breaking spaces, collapses whitespace runs and trims.
func Tidy(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// Number converts a pt-BR number, percentage or currency value.
//
//	"1.035.540.000" -> "1035540000"
//	"8,88"          -> "8,88"
//	"7,87%"         -> "0,0787"
//	"R$ 12,50"      -> "12,50"
//	"-", ""         -> ""
func Number(s string) string {
	s = Tidy(s)
	if s == "" || s == Placeholder {
		return ""
	}
	if strings.Contains(s, "%") {
		return Percent(s)
	}
	s = currencyPrefix.ReplaceAllString(s, "")
	return StripThousands(Tidy(s))
}

// StripThousands removes thousands separators and keeps the decimal comma.
//
// With a comma present every dot is a thousands separator. Without one,
// dots are still treated as thousands separators: the source never
// prints dot-decimal values, so "3.5" becomes "35".
func StripThousands(s string) string {
	return strings.ReplaceAll(s, ".", "")
}

// Percent converts "7,87%" into the fraction "0,0787".
// Unparseable values yield the empty string.
func Percent(s string) string {
	s = strings.TrimSpace(strings.Replace(Tidy(s), "%", "", 1))
	if s == "" {
		return ""
	}
	v, err := ParseDecimal(s)
	if err != nil {
		return ""
	}
	return FormatDecimal(v/100, PercentPrecision)
}

// ParseDecimal parses a pt-BR decimal such as "1.234,56".
func ParseDecimal(s string) (float64, error) {
	s = strings.ReplaceAll(s, ".", "")
	s = strings.Replace(s, ",", ".", 1)
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, strconv.ErrRange
	}
	return v, nil
}

// FormatDecimal renders v with prec fixed digits, a decimal comma and
// no trailing zeros: 0.5 -> "0,5", 0 -> "0".
func FormatDecimal(v float64, prec int) string {
	out := strings.Replace(strconv.FormatFloat(v, 'f', prec, 64), ".", ",", 1)
	if i := strings.IndexByte(out, ','); i >= 0 {
		frac := strings.TrimRight(out[i+1:], "0")
		if frac == "" {
			out = out[:i]
		} else {
			out = out[:i+1] + frac
		}
	}
	if out == "-0" {
		return "0"
	}
	return out
}
