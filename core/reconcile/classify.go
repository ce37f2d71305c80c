package reconcile

import (
	"fmt"
	"strconv"
	"strings"
)

// Supplier feed quantity literals with fixed meanings.
const (
	// quantityOverTen is how the supplier reports "more than ten in stock".
	quantityOverTen = ">10"
	// quantityOne is reported when a single display unit remains. The
	// supplier does not sell display units, so it counts as out of stock.
	quantityOne = "1"
)

// overTenStock is the policy ceiling published for ">10" quantities.
const overTenStock = 100

// ClassifyQuantity maps a raw supplier quantity token to a canonical stock
// count. ">10" classifies as 100 and "1" as 0; any other token must be a
// base-10 integer and classifies as its value. Both literal rules are
// supplier feed conventions carried over verbatim, not parsing artifacts.
func ClassifyQuantity(raw string) (int, error) {
	switch raw {
	case quantityOverTen:
		return overTenStock, nil
	case quantityOne:
		return 0, nil
	}

	count, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrMalformedQuantity, raw)
	}
	return count, nil
}

// NormalizePrice maps a raw supplier price string to an integer price.
// The string is truncated at the first ASCII period (discarding the
// fractional part), every non-digit is stripped from the remaining prefix,
// and the surviving digits are parsed as a base-10 integer.
//
// A decimal comma is not recognized as a fractional separator: "5'990,00"
// normalizes to 599000, not 5990. That matches the supplier's documented
// format, which always separates the fraction with a period.
func NormalizePrice(raw string) (int, error) {
	prefix, _, _ := strings.Cut(raw, ".")

	var digits strings.Builder
	for _, r := range prefix {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	if digits.Len() == 0 {
		return 0, fmt.Errorf("%w: %q", ErrMalformedPrice, raw)
	}

	value, err := strconv.Atoi(digits.String())
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrMalformedPrice, raw)
	}
	return value, nil
}
