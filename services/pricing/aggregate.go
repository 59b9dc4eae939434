package pricing

import "feastly/models"

// DefaultServiceFeeRate is the platform fee applied to the subtotal unless
// an admin waives it.
const DefaultServiceFeeRate = 0.05

// AggregateInput bundles everything the order-level totals derive from.
// Aggregation is a pure function of this input: same input, same output,
// no hidden state.
type AggregateInput struct {
	Services      []models.ServiceSelection
	SelectedItems map[string]float64
	Adjustments   []models.CustomAdjustment
	DeliveryFees  models.DeliveryFeeSelection

	// Computed delivery distance, when the event address has geocoded.
	DistanceMiles float64
	HasDistance   bool

	// Admin overrides.
	IsTaxExempt        bool
	IsServiceFeeWaived bool

	ServiceFeeRate float64 // 0 means DefaultServiceFeeRate
	GuestCount     int
	Location       string
}

// Aggregate computes the full order totals: per-service subtotals, signed
// custom adjustments, gated delivery fees, service fee, location-resolved
// tax and the grand total. No intermediate rounding happens here; values
// round to cents at presentation time only.
func Aggregate(in AggregateInput) models.OrderTotals {
	var subtotal float64
	for _, svc := range in.Services {
		subtotal += ServiceTotal(svc, in.SelectedItems, in.GuestCount)
	}

	breakdown := make([]models.AdjustmentLine, 0, len(in.Adjustments))
	var adjustmentsTotal, taxableAdjustments float64
	for _, adj := range in.Adjustments {
		amount := adj.Value
		if adj.Type == models.AdjustmentPercentage {
			amount = subtotal * adj.Value / 100
		}
		if adj.Mode == models.AdjustmentDiscount {
			amount = -amount
		}
		adjustmentsTotal += amount
		if adj.Taxable {
			taxableAdjustments += amount
		}
		breakdown = append(breakdown, models.AdjustmentLine{
			ID:      adj.ID,
			Label:   adj.Label,
			Type:    adj.Type,
			Mode:    adj.Mode,
			Amount:  amount,
			Taxable: adj.Taxable,
		})
	}

	var deliveryFee float64
	for _, svc := range in.Services {
		sel, ok := in.DeliveryFees[svc.CanonicalID()]
		if !ok {
			continue
		}
		if FeeApplies(sel, in.DistanceMiles, in.HasDistance) {
			deliveryFee += sel.Fee
		}
	}

	feeRate := in.ServiceFeeRate
	if feeRate == 0 {
		feeRate = DefaultServiceFeeRate
	}
	var serviceFee float64
	if !in.IsServiceFeeWaived {
		serviceFee = subtotal * feeRate
	}

	taxInfo := ResolveTax(in.Location)
	var tax float64
	if !in.IsTaxExempt {
		taxableBase := subtotal + taxableAdjustments + serviceFee + deliveryFee
		tax = taxableBase * taxInfo.Rate
	}

	return models.OrderTotals{
		Subtotal:             subtotal,
		ServiceFee:           serviceFee,
		Tax:                  tax,
		DeliveryFee:          deliveryFee,
		AdjustmentsTotal:     adjustmentsTotal,
		AdjustmentsBreakdown: breakdown,
		Total:                subtotal + adjustmentsTotal + serviceFee + deliveryFee + tax,
		TaxRate:              taxInfo.Rate,
		TaxJurisdiction:      taxInfo.Jurisdiction,
	}
}
