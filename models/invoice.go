package models

import "time"

// CateringItem is one itemized line on a mapped service, as persisted to the
// invoice and rendered on the PDF.
type CateringItem struct {
	Name     string  `bson:"name" json:"name"`
	Quantity float64 `bson:"quantity" json:"quantity"`
	Price    float64 `bson:"price" json:"price"`
	Total    float64 `bson:"total" json:"total"`
}

// MappedService is the wire shape of one service on an invoice.
type MappedService struct {
	ServiceType    ServiceType        `bson:"service_type" json:"serviceType"`
	ServiceName    string             `bson:"service_name" json:"serviceName"`
	VendorID       string             `bson:"vendor_id,omitempty" json:"vendorId,omitempty"`
	TotalPrice     float64            `bson:"total_price" json:"totalPrice"`
	PriceType      string             `bson:"price_type" json:"priceType"` // "itemized" or "flat"
	Image          string             `bson:"image,omitempty" json:"image,omitempty"`
	CateringItems  []CateringItem     `bson:"catering_items,omitempty" json:"cateringItems,omitempty"`
	DeliveryFee    float64            `bson:"delivery_fee,omitempty" json:"deliveryFee,omitempty"`
	DeliveryRanges map[string]float64 `bson:"delivery_ranges,omitempty" json:"deliveryRanges,omitempty"` // range label -> fee
}

// Invoice is the persisted record created on booking submission. The embedded
// totals are the exact Aggregate output shown in the UI; the PDF renderer
// consumes them verbatim so both always agree to the cent.
type Invoice struct {
	ID              string           `bson:"id" json:"id"`
	Form            BookingForm      `bson:"form" json:"form"`
	Services        []MappedService  `bson:"services" json:"services"`
	CustomLineItems []AdjustmentLine `bson:"custom_line_items,omitempty" json:"customLineItems,omitempty"`
	Totals          OrderTotals      `bson:"totals" json:"totals"`
	Status          string           `bson:"status" json:"status"` // e.g. "created"
	CreatedAt       time.Time        `bson:"created_at" json:"createdAt"`
}

// InvoiceSnapshot is the flattened numeric record handed to PDF rendering.
// It is derived from the invoice by the background snapshot worker.
type InvoiceSnapshot struct {
	InvoiceID   string             `bson:"invoice_id" json:"invoiceId"`
	Services    []ServiceBreakdown `bson:"services" json:"services"`
	Totals      OrderTotals        `bson:"totals" json:"totals"`
	GeneratedAt time.Time          `bson:"generated_at" json:"generatedAt"`
}
