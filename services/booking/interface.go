package booking

import (
	"context"

	draftRepo "feastly/database/repository/draft"
	invoiceRepo "feastly/database/repository/invoice"
	"feastly/models"
	"feastly/services/geo"

	"github.com/hibiken/asynq"
)

// QuoteRequest carries the current booking state the totals derive from.
type QuoteRequest struct {
	Services          []models.ServiceSelection `json:"services"`
	SelectedItems     map[string]float64        `json:"selectedItems"`
	CustomAdjustments []models.CustomAdjustment `json:"customAdjustments"`
	DeliveryFees      models.DeliveryFeeSelection `json:"deliveryFees,omitempty"`
	Form              models.BookingForm        `json:"form"`

	// VendorAddress is the delivering vendor's address; together with the
	// event location it yields the delivery distance. Either address
	// failing to geocode simply means "no distance known yet".
	VendorAddress string `json:"vendorAddress,omitempty"`
}

// QuoteResponse is the recomputed order state: totals, per-service
// breakdowns, and the delivery-fee selection after auto-bracketing.
type QuoteResponse struct {
	Totals        models.OrderTotals          `json:"totals"`
	Services      []models.ServiceBreakdown   `json:"services"`
	DeliveryFees  models.DeliveryFeeSelection `json:"deliveryFees,omitempty"`
	DistanceMiles *float64                    `json:"distanceMiles,omitempty"`
}

// BookingService defines the order-level operations around the pricing core.
type BookingService interface {
	Quote(ctx context.Context, req QuoteRequest) (*QuoteResponse, error)
	SaveDraft(ctx context.Context, draft models.BookingDraft) error
	GetDraft(ctx context.Context, draftID string) (*models.BookingDraft, error)
	DeleteDraft(ctx context.Context, draftID string) error
	Submit(ctx context.Context, req QuoteRequest) (*models.Invoice, error)
	GetInvoice(ctx context.Context, invoiceID string) (*models.Invoice, error)
}

// DefaultBookingService implements BookingService.
type DefaultBookingService struct {
	InvoiceRepo invoiceRepo.InvoiceRepository
	DraftRepo   draftRepo.DraftRepository
	Geocoder    geo.Geocoder
	Queue       *asynq.Client
}
