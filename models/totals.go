package models

// TaxInfo is a resolved tax rate with its jurisdiction label.
type TaxInfo struct {
	Rate         float64 `bson:"rate" json:"rate"`
	Jurisdiction string  `bson:"jurisdiction" json:"jurisdiction"`
}

// LineItem is one priced row of a service breakdown, as shown in the UI and
// reproduced on the invoice PDF.
type LineItem struct {
	ItemID    string  `bson:"item_id" json:"itemId"`
	Name      string  `bson:"name" json:"name"`
	Quantity  float64 `bson:"quantity" json:"quantity"`
	UnitPrice float64 `bson:"unit_price" json:"unitPrice"`
	Upcharge  float64 `bson:"upcharge,omitempty" json:"upcharge,omitempty"` // Per-guest premium portion, if any
	Total     float64 `bson:"total" json:"total"`
	Premium   bool    `bson:"premium,omitempty" json:"premium,omitempty"`
	Detail    bool    `bson:"detail,omitempty" json:"detail,omitempty"` // Informational sub-row; excluded when summing lines
}

// ServiceBreakdown is the itemized pricing of a single service.
type ServiceBreakdown struct {
	ServiceID   string      `bson:"service_id" json:"serviceId"`
	ServiceName string      `bson:"service_name" json:"serviceName"`
	ServiceType ServiceType `bson:"service_type" json:"serviceType"`
	Lines       []LineItem  `bson:"lines" json:"lines"`
	Total       float64     `bson:"total" json:"total"`
}

// OrderTotals is the full order-level pricing breakdown. It is a pure
// derivation of the current inputs, rebuilt on every change, never mutated
// in place. Values are unrounded; rounding to cents is a display concern.
type OrderTotals struct {
	Subtotal             float64          `bson:"subtotal" json:"subtotal"`
	ServiceFee           float64          `bson:"service_fee" json:"serviceFee"`
	Tax                  float64          `bson:"tax" json:"tax"`
	DeliveryFee          float64          `bson:"delivery_fee" json:"deliveryFee"`
	AdjustmentsTotal     float64          `bson:"adjustments_total" json:"adjustmentsTotal"`
	AdjustmentsBreakdown []AdjustmentLine `bson:"adjustments_breakdown,omitempty" json:"adjustmentsBreakdown,omitempty"`
	Total                float64          `bson:"total" json:"total"`
	TaxRate              float64          `bson:"tax_rate" json:"taxRate"`
	TaxJurisdiction      string           `bson:"tax_jurisdiction" json:"taxJurisdiction"`
}
