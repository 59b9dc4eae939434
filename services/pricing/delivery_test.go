package pricing

import (
	"testing"

	"feastly/models"
)

var testRanges = []models.DeliveryRange{
	{Range: "0-5 miles", Fee: 0},
	{Range: "5-25 miles", Fee: 15},
	{Range: "25 - 50 miles", Fee: 35},
	{Range: "not a range", Fee: 999},
}

func TestResolveDeliveryFeeBracketMatch(t *testing.T) {
	got := ResolveDeliveryFee(testRanges, 12, true)
	if got == nil || got.Fee != 15 {
		t.Fatalf("expected the 5-25 bracket, got %+v", got)
	}

	got = ResolveDeliveryFee(testRanges, 40, true)
	if got == nil || got.Fee != 35 {
		t.Fatalf("expected the 25-50 bracket, got %+v", got)
	}
}

func TestResolveDeliveryFeeNoDistance(t *testing.T) {
	if got := ResolveDeliveryFee(testRanges, 0, false); got != nil {
		t.Errorf("no distance known: expected nil, got %+v", got)
	}
}

func TestResolveDeliveryFeeOutOfRange(t *testing.T) {
	if got := ResolveDeliveryFee(testRanges, 80, true); got != nil {
		t.Errorf("distance beyond all brackets: expected nil, got %+v", got)
	}
}

func TestResolveDeliveryFeeSkipsMalformed(t *testing.T) {
	ranges := []models.DeliveryRange{{Range: "garbage", Fee: 10}}
	if got := ResolveDeliveryFee(ranges, 3, true); got != nil {
		t.Errorf("malformed range should be skipped, got %+v", got)
	}
}

func TestFeeAppliesGating(t *testing.T) {
	sel := models.DeliveryRange{Range: "5-25 miles", Fee: 15}

	// Fresh distance outside the bracket contradicts the selection.
	if FeeApplies(sel, 40, true) {
		t.Error("fee should be excluded when distance contradicts the bracket")
	}
	// No distance known: the manual selection stands.
	if !FeeApplies(sel, 0, false) {
		t.Error("fee should stand when no distance is known")
	}
	// Distance inside the bracket.
	if !FeeApplies(sel, 10, true) {
		t.Error("fee should apply when distance matches the bracket")
	}
	// Zero computed distance never confirms a fee.
	if FeeApplies(sel, 0, true) {
		t.Error("fee should be excluded for a computed zero distance")
	}
}

func TestParseRange(t *testing.T) {
	min, max, ok := ParseRange("5 - 25 miles")
	if !ok || min != 5 || max != 25 {
		t.Errorf("got min=%v max=%v ok=%v", min, max, ok)
	}
	if _, _, ok := ParseRange("five to ten miles"); ok {
		t.Error("expected parse failure")
	}
	// Singular "mile" is accepted.
	if _, _, ok := ParseRange("0-1 mile"); !ok {
		t.Error("expected singular form to parse")
	}
}
