package pricing

import (
	"time"

	"feastly/models"
)

// MapServices serializes the resolved services into the wire shape persisted
// on the invoice. Line totals come from the same breakdown the UI renders,
// so the invoice and the booking screen can never disagree.
func MapServices(in AggregateInput) []models.MappedService {
	mapped := make([]models.MappedService, 0, len(in.Services))
	for _, svc := range in.Services {
		breakdown := BuildServiceBreakdown(svc, in.SelectedItems, in.GuestCount)

		ms := models.MappedService{
			ServiceType: svc.ServiceType,
			ServiceName: svc.Name,
			VendorID:    svc.VendorID,
			TotalPrice:  breakdown.Total,
			PriceType:   "flat",
			Image:       svc.Image,
		}

		for _, line := range breakdown.Lines {
			if line.Detail {
				continue
			}
			ms.PriceType = "itemized"
			ms.CateringItems = append(ms.CateringItems, models.CateringItem{
				Name:     line.Name,
				Quantity: line.Quantity,
				Price:    line.UnitPrice,
				Total:    line.Total,
			})
		}

		if sel, ok := in.DeliveryFees[svc.CanonicalID()]; ok && FeeApplies(sel, in.DistanceMiles, in.HasDistance) {
			ms.DeliveryFee = sel.Fee
		}
		if ranges := svc.Catalog().DeliveryRanges; len(ranges) > 0 {
			ms.DeliveryRanges = make(map[string]float64, len(ranges))
			for _, r := range ranges {
				ms.DeliveryRanges[r.Range] = r.Fee
			}
		}

		mapped = append(mapped, ms)
	}
	return mapped
}

// BuildInvoiceSnapshot flattens an order into the numeric record PDF
// rendering consumes. The embedded totals are passed through from the
// already-computed aggregate, never recomputed, so the PDF matches the UI
// to the cent.
func BuildInvoiceSnapshot(invoiceID string, in AggregateInput, totals models.OrderTotals) models.InvoiceSnapshot {
	services := make([]models.ServiceBreakdown, 0, len(in.Services))
	for _, svc := range in.Services {
		services = append(services, BuildServiceBreakdown(svc, in.SelectedItems, in.GuestCount))
	}
	return models.InvoiceSnapshot{
		InvoiceID:   invoiceID,
		Services:    services,
		Totals:      totals,
		GeneratedAt: time.Now(),
	}
}
