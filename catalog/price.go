package catalog

import (
	"regexp"
	"strconv"
	"strings"
)

// digitRuns matches maximal runs of digits and grouping separators.
// Currency symbols and any other noise act as delimiters between runs.
var digitRuns = regexp.MustCompile(`[\d,]+`)

// PriceRange is a parsed price interval. A single listed price yields
// Min == Max.
type PriceRange struct {
	Min int64
	Max int64
}

// ParsePriceRange extracts a price range from a noisy, possibly
// localized price string such as "24,499৳28,100৳" or "93,900৳".
//
// All digit runs in the input are collected; the smallest becomes Min
// and the largest Max, regardless of their order in the string. This
// guards against reversed ranges and trailing noise values. Returns
// ok=false when no run parses as an integer; malformed input never
// produces an error.
func ParsePriceRange(raw string) (PriceRange, bool) {
	var prices []int64
	for _, run := range digitRuns.FindAllString(raw, -1) {
		cleaned := strings.ReplaceAll(run, ",", "")
		if cleaned == "" {
			continue
		}
		value, err := strconv.ParseInt(cleaned, 10, 64)
		if err != nil {
			continue
		}
		prices = append(prices, value)
	}

	if len(prices) == 0 {
		return PriceRange{}, false
	}

	min, max := prices[0], prices[0]
	for _, p := range prices[1:] {
		if p < min {
			min = p
		}
		if p > max {
			max = p
		}
	}

	return PriceRange{Min: min, Max: max}, true
}
