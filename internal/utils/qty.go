package utils

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// 1,234 / 12,34,567 (lakh grouping) / 1,234,567
var rxGrouped = regexp.MustCompile(`^-?\d{1,3}(?:,\d{2,3})*,\d{3}(?:\.\d+)?$`)

var spaces = strings.NewReplacer(" ", "", "\u00A0", "", "\u2009", "", "\u202F", "", "\t", "", "'", "")

// ParseQty coerces a quantity cell: "1 234", "1,234", "12,34,567",
// "1.234,5", "0,5", "(12)". Anything else, NaN and Inf included, is
// rejected with ok=false. Blank input is also ok=false; callers decide
// whether blank is allowed.
func ParseQty(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	neg := false
	if strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")") {
		neg = true
		s = s[1 : len(s)-1]
	}
	s = spaces.Replace(s)

	comma := strings.LastIndex(s, ",")
	dot := strings.LastIndex(s, ".")
	switch {
	case comma < 0:
	case rxGrouped.MatchString(s):
		s = strings.ReplaceAll(s, ",", "")
	case dot > comma:
		// 1,234.5 with irregular grouping
		s = strings.ReplaceAll(s, ",", "")
	case dot >= 0:
		// 1.234,5
		s = strings.ReplaceAll(s, ".", "")
		s = strings.Replace(s, ",", ".", 1)
	case strings.Count(s, ",") == 1:
		s = strings.Replace(s, ",", ".", 1)
	default:
		return 0, false
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	if neg {
		f = -f
	}
	return f, true
}

// IsBlank reports a cell with nothing but whitespace.
func IsBlank(s string) bool { return strings.TrimSpace(s) == "" }
