package booking

import (
	"context"
	"fmt"

	"feastly/config"
	"feastly/models"
	"feastly/services/pricing"
	"feastly/services/tasks"
	"feastly/utils"

	"go.uber.org/zap"
)

// validateSubmission enforces the hard preconditions of a submission:
// required contact fields (or their group-order substitutes) and every
// catering service's declared minimums. Errors name the offending field or
// service with required vs. actual values.
func validateSubmission(req QuoteRequest, services []models.ServiceSelection) error {
	form := req.Form

	if form.EventLocation == "" {
		return NewValidationError("eventLocation", "event location is required")
	}
	if form.EventDate == "" {
		return NewValidationError("eventDate", "event date is required")
	}
	if form.GuestCount <= 0 {
		return NewValidationError("guestCount", "guest count must be greater than zero")
	}

	if form.IsGroupOrder {
		if form.OrderDeadline == "" {
			return NewValidationError("orderDeadline", "order deadline is required for group orders")
		}
		if form.BudgetPerPerson <= 0 && form.Budget <= 0 {
			return NewValidationError("budget", "a budget or budget per person is required for group orders")
		}
	} else {
		if form.ContactName == "" {
			return NewValidationError("contactName", "contact name is required")
		}
		if form.PhoneNumber == "" {
			return NewValidationError("phoneNumber", "phone number is required")
		}
		if form.EmailAddress == "" {
			return NewValidationError("emailAddress", "email address is required")
		}
	}

	for _, svc := range services {
		if err := pricing.ValidateMinimums(svc, req.SelectedItems, form.GuestCount); err != nil {
			return NewValidationError("minimumOrder", err.Error())
		}
	}
	return nil
}

// Submit turns the current booking state into a persisted invoice. On any
// failure nothing is written, so the caller's local state survives intact
// for a retry. The PDF-input snapshot is flattened asynchronously; a slow
// or failed enqueue never fails the submission.
func (s *DefaultBookingService) Submit(ctx context.Context, req QuoteRequest) (*models.Invoice, error) {
	logger := utils.GetLogger()
	services := normalizeServices(req.Services)

	if err := validateSubmission(req, services); err != nil {
		return nil, err
	}

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

	invoice := models.Invoice{
		Form:            req.Form,
		Services:        pricing.MapServices(in),
		CustomLineItems: totals.AdjustmentsBreakdown,
		Totals:          totals,
		Status:          "created",
	}

	invoiceID, err := s.InvoiceRepo.Create(ctx, invoice)
	if err != nil {
		return nil, fmt.Errorf("failed to create invoice: %w", err)
	}
	invoice.ID = invoiceID

	if s.Queue != nil {
		snap := pricing.BuildInvoiceSnapshot(invoiceID, in, totals)
		task, opts, err := tasks.NewInvoiceSnapshotTask(snap)
		if err == nil {
			_, err = s.Queue.EnqueueContext(ctx, task, opts...)
		}
		if err != nil {
			logger.Warn("failed to enqueue invoice snapshot", zap.String("invoiceId", invoiceID), zap.Error(err))
		}
	}

	logger.Info("invoice created",
		zap.String("invoiceId", invoiceID),
		zap.Float64("total", totals.Total),
		zap.Int("services", len(invoice.Services)),
	)
	return &invoice, nil
}

// GetInvoice fetches a persisted invoice for the summary view.
func (s *DefaultBookingService) GetInvoice(ctx context.Context, invoiceID string) (*models.Invoice, error) {
	return s.InvoiceRepo.GetByID(ctx, invoiceID)
}
