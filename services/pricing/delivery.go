package pricing

import (
	"regexp"
	"strconv"

	"feastly/models"
)

var rangePattern = regexp.MustCompile(`(?i)(\d+)\s*-\s*(\d+)\s*miles?`)

// ParseRange extracts the [min, max] mile bounds from a range label such as
// "5-25 miles". ok is false for labels that do not follow the pattern.
func ParseRange(label string) (min, max float64, ok bool) {
	m := rangePattern.FindStringSubmatch(label)
	if m == nil {
		return 0, 0, false
	}
	min, _ = strconv.ParseFloat(m[1], 64)
	max, _ = strconv.ParseFloat(m[2], 64)
	return min, max, true
}

// ResolveDeliveryFee selects the fee bracket containing the computed
// distance. Malformed range labels are skipped, not errors. Without a known
// distance no bracket is asserted: any previously chosen fee stands and the
// caller leaves the selection untouched. A nil result with a known distance
// means no bracket covers it; whether that rejects the order is the
// caller's call.
func ResolveDeliveryFee(ranges []models.DeliveryRange, distanceMiles float64, hasDistance bool) *models.DeliveryRange {
	if !hasDistance {
		return nil
	}
	for i := range ranges {
		min, max, ok := ParseRange(ranges[i].Range)
		if !ok {
			continue
		}
		if distanceMiles >= min && distanceMiles <= max {
			return &ranges[i]
		}
	}
	return nil
}

// FeeApplies decides whether a recorded delivery fee counts toward the order
// total. A fee is excluded only when a fresh distance was computed and
// contradicts the fee's own bracket; with no distance known the fee stands
// as-is (manual admin selections survive an ungeocodable address).
func FeeApplies(sel models.DeliveryRange, distanceMiles float64, hasDistance bool) bool {
	if !hasDistance {
		return true
	}
	if distanceMiles <= 0 {
		return false
	}
	min, max, ok := ParseRange(sel.Range)
	if !ok {
		// Unparseable manual bracket: nothing to contradict, keep the fee.
		return true
	}
	return distanceMiles >= min && distanceMiles <= max
}
