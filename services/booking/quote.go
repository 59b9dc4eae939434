package booking

import (
	"context"

	"feastly/config"
	"feastly/models"
	"feastly/services/geo"
	"feastly/services/pricing"
	"feastly/utils"

	"go.uber.org/zap"
)

// normalizeServices runs the one-time ingestion pass: canonical service
// types and ids, so nothing downstream re-derives synonyms ad hoc.
func normalizeServices(services []models.ServiceSelection) []models.ServiceSelection {
	out := make([]models.ServiceSelection, len(services))
	for i, svc := range services {
		svc.ServiceType = models.NormalizeServiceType(string(svc.ServiceType))
		out[i] = svc
	}
	return out
}

// computeDistance geocodes both ends of the delivery leg. Any failure, or a
// still-pending address, degrades to "no distance known" — a valid state
// the pricing core is built to tolerate, never an error.
func (s *DefaultBookingService) computeDistance(ctx context.Context, eventLocation, vendorAddress string) (float64, bool) {
	if s.Geocoder == nil || eventLocation == "" || vendorAddress == "" {
		return 0, false
	}
	logger := utils.GetLogger()

	event, err := s.Geocoder.Geocode(ctx, eventLocation)
	if err != nil {
		logger.Debug("event location not geocoded yet", zap.String("location", eventLocation), zap.Error(err))
		return 0, false
	}
	vendor, err := s.Geocoder.Geocode(ctx, vendorAddress)
	if err != nil {
		logger.Debug("vendor address not geocoded yet", zap.String("address", vendorAddress), zap.Error(err))
		return 0, false
	}
	return geo.DistanceMiles(event.Lat, event.Lng, vendor.Lat, vendor.Lng), true
}

// autoSelectDeliveryFees picks the fee bracket matching the computed
// distance for every service that publishes delivery ranges. Without a
// distance, existing (manual) selections are left untouched.
func autoSelectDeliveryFees(services []models.ServiceSelection, fees models.DeliveryFeeSelection, distanceMiles float64, hasDistance bool) models.DeliveryFeeSelection {
	out := models.DeliveryFeeSelection{}
	for id, sel := range fees {
		out[id] = sel
	}
	if !hasDistance {
		return out
	}
	for _, svc := range services {
		ranges := svc.Catalog().DeliveryRanges
		if len(ranges) == 0 {
			continue
		}
		if bracket := pricing.ResolveDeliveryFee(ranges, distanceMiles, true); bracket != nil {
			out[svc.CanonicalID()] = *bracket
		}
	}
	return out
}

// Quote recomputes the order totals from the current booking state. It is
// idempotent and side-effect-free; the same request always yields the same
// totals regardless of which screen asks.
func (s *DefaultBookingService) Quote(ctx context.Context, req QuoteRequest) (*QuoteResponse, error) {
	services := normalizeServices(req.Services)

	distance, hasDistance := s.computeDistance(ctx, req.Form.EventLocation, req.VendorAddress)
	fees := autoSelectDeliveryFees(services, req.DeliveryFees, distance, hasDistance)

	in := pricing.AggregateInput{
		Services:           services,
		SelectedItems:      req.SelectedItems,
		Adjustments:        req.CustomAdjustments,
		DeliveryFees:       fees,
		DistanceMiles:      distance,
		HasDistance:        hasDistance,
		IsTaxExempt:        req.Form.TaxExemptStatus,
		IsServiceFeeWaived: req.Form.WaiveServiceFee,
		ServiceFeeRate:     config.AppConfig.ServiceFeeRate,
		GuestCount:         req.Form.GuestCount,
		Location:           req.Form.EventLocation,
	}
	totals := pricing.Aggregate(in)

	breakdowns := make([]models.ServiceBreakdown, 0, len(services))
	for _, svc := range services {
		breakdowns = append(breakdowns, pricing.BuildServiceBreakdown(svc, req.SelectedItems, req.Form.GuestCount))
	}

	resp := &QuoteResponse{
		Totals:       totals,
		Services:     breakdowns,
		DeliveryFees: fees,
	}
	if hasDistance {
		resp.DistanceMiles = &distance
	}
	return resp, nil
}
