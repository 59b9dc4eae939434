package pricing

import (
	"reflect"
	"testing"

	"feastly/models"
)

func flatVenue(id string, price float64) models.ServiceSelection {
	return models.ServiceSelection{
		ID:          id,
		Name:        "Venue " + id,
		ServiceType: models.ServiceTypeVenues,
		Price:       price,
		Quantity:    1,
	}
}

func TestAggregateEndToEnd(t *testing.T) {
	// Subtotal $200, service fee 5% ($10), tax 8% on $210 = $16.80.
	in := AggregateInput{
		Services: []models.ServiceSelection{flatVenue("v1", 200)},
		Location: "Atlantis",
	}
	totals := Aggregate(in)

	if !almostEqual(totals.Subtotal, 200) {
		t.Errorf("subtotal = %v, want 200", totals.Subtotal)
	}
	if !almostEqual(totals.ServiceFee, 10) {
		t.Errorf("serviceFee = %v, want 10", totals.ServiceFee)
	}
	if !almostEqual(totals.Tax, 16.80) {
		t.Errorf("tax = %v, want 16.80", totals.Tax)
	}
	if !almostEqual(totals.Total, 226.80) {
		t.Errorf("total = %v, want 226.80", totals.Total)
	}
}

func TestAggregateIdempotent(t *testing.T) {
	in := AggregateInput{
		Services: []models.ServiceSelection{flatVenue("v1", 120), flatVenue("v2", 80)},
		Adjustments: []models.CustomAdjustment{
			{ID: "a1", Label: "Rush", Type: models.AdjustmentPercentage, Mode: models.AdjustmentSurcharge, Value: 10, Taxable: true},
		},
		DeliveryFees: models.DeliveryFeeSelection{"v1": {Range: "5-25 miles", Fee: 15}},
		Location:     "Austin, TX 78701",
		GuestCount:   40,
	}
	first := Aggregate(in)
	second := Aggregate(in)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("aggregate is not idempotent:\n%+v\n%+v", first, second)
	}
}

func TestAggregateAdjustmentSigns(t *testing.T) {
	in := AggregateInput{
		Services: []models.ServiceSelection{flatVenue("v1", 100)},
		Adjustments: []models.CustomAdjustment{
			{ID: "a1", Label: "Peak weekend", Type: models.AdjustmentPercentage, Mode: models.AdjustmentSurcharge, Value: 10, Taxable: false},
			{ID: "a2", Label: "Loyalty", Type: models.AdjustmentFixed, Mode: models.AdjustmentDiscount, Value: 5, Taxable: false},
		},
	}
	totals := Aggregate(in)

	if !almostEqual(totals.AdjustmentsTotal, 5) {
		t.Errorf("adjustmentsTotal = %v, want +10 -5 = 5", totals.AdjustmentsTotal)
	}
	if len(totals.AdjustmentsBreakdown) != 2 {
		t.Fatalf("expected 2 breakdown lines, got %d", len(totals.AdjustmentsBreakdown))
	}
	if !almostEqual(totals.AdjustmentsBreakdown[0].Amount, 10) {
		t.Errorf("surcharge amount = %v, want 10", totals.AdjustmentsBreakdown[0].Amount)
	}
	if !almostEqual(totals.AdjustmentsBreakdown[1].Amount, -5) {
		t.Errorf("discount amount = %v, want -5", totals.AdjustmentsBreakdown[1].Amount)
	}

	want := totals.Subtotal + 5 + totals.ServiceFee + totals.Tax
	if !almostEqual(totals.Total, want) {
		t.Errorf("total = %v, want %v", totals.Total, want)
	}
}

func TestAggregateTaxableAdjustmentsOnly(t *testing.T) {
	base := AggregateInput{
		Services: []models.ServiceSelection{flatVenue("v1", 100)},
		Adjustments: []models.CustomAdjustment{
			{ID: "a1", Type: models.AdjustmentFixed, Mode: models.AdjustmentSurcharge, Value: 50, Taxable: false},
		},
	}
	nonTaxable := Aggregate(base)

	base.Adjustments[0].Taxable = true
	taxable := Aggregate(base)

	// The surcharge moves both totals, but only the taxable variant moves tax.
	if !almostEqual(nonTaxable.AdjustmentsTotal, taxable.AdjustmentsTotal) {
		t.Error("taxability should not change the adjustment amount")
	}
	wantDelta := 50 * DefaultTaxRate
	if !almostEqual(taxable.Tax-nonTaxable.Tax, wantDelta) {
		t.Errorf("tax delta = %v, want %v", taxable.Tax-nonTaxable.Tax, wantDelta)
	}
}

func TestAggregateDeliveryFeeGating(t *testing.T) {
	in := AggregateInput{
		Services:     []models.ServiceSelection{flatVenue("v1", 100)},
		DeliveryFees: models.DeliveryFeeSelection{"v1": {Range: "5-25 miles", Fee: 15}},
	}

	// No distance known: manual fee stands.
	totals := Aggregate(in)
	if !almostEqual(totals.DeliveryFee, 15) {
		t.Errorf("deliveryFee = %v, want 15 with no distance", totals.DeliveryFee)
	}

	// Fresh distance outside the bracket: fee excluded.
	in.HasDistance = true
	in.DistanceMiles = 40
	totals = Aggregate(in)
	if !almostEqual(totals.DeliveryFee, 0) {
		t.Errorf("deliveryFee = %v, want 0 for contradicted bracket", totals.DeliveryFee)
	}

	// Distance inside the bracket: fee included again.
	in.DistanceMiles = 12
	totals = Aggregate(in)
	if !almostEqual(totals.DeliveryFee, 15) {
		t.Errorf("deliveryFee = %v, want 15 inside the bracket", totals.DeliveryFee)
	}
}

func TestAggregateOverrides(t *testing.T) {
	in := AggregateInput{
		Services:           []models.ServiceSelection{flatVenue("v1", 200)},
		IsTaxExempt:        true,
		IsServiceFeeWaived: true,
	}
	totals := Aggregate(in)
	if totals.Tax != 0 || totals.ServiceFee != 0 {
		t.Errorf("overrides ignored: %+v", totals)
	}
	if !almostEqual(totals.Total, 200) {
		t.Errorf("total = %v, want 200", totals.Total)
	}
	// The resolved rate is still reported for display, even when exempt.
	if totals.TaxRate != DefaultTaxRate {
		t.Errorf("taxRate = %v, want %v", totals.TaxRate, DefaultTaxRate)
	}
}

func TestAggregateDeliveryFeeEntersTaxBase(t *testing.T) {
	in := AggregateInput{
		Services:     []models.ServiceSelection{flatVenue("v1", 100)},
		DeliveryFees: models.DeliveryFeeSelection{"v1": {Range: "0-5 miles", Fee: 20}},
	}
	totals := Aggregate(in)
	wantTax := (100 + 100*DefaultServiceFeeRate + 20) * DefaultTaxRate
	if !almostEqual(totals.Tax, wantTax) {
		t.Errorf("tax = %v, want %v", totals.Tax, wantTax)
	}
}
