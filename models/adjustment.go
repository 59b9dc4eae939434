package models

// AdjustmentType distinguishes absolute from percentage adjustments.
type AdjustmentType string

// AdjustmentMode distinguishes surcharges from discounts.
type AdjustmentMode string

const (
	AdjustmentFixed      AdjustmentType = "fixed"
	AdjustmentPercentage AdjustmentType = "percentage"

	AdjustmentSurcharge AdjustmentMode = "surcharge"
	AdjustmentDiscount  AdjustmentMode = "discount"
)

// CustomAdjustment is an admin-entered order-level surcharge or discount.
// Immutable once added except by removal.
type CustomAdjustment struct {
	ID      string         `bson:"id" json:"id"`
	Label   string         `bson:"label" json:"label"`
	Type    AdjustmentType `bson:"type" json:"type"`       // fixed | percentage
	Mode    AdjustmentMode `bson:"mode" json:"mode"`       // surcharge | discount
	Value   float64        `bson:"value" json:"value"`     // Currency amount, or percent of the pre-adjustment subtotal
	Taxable bool           `bson:"taxable" json:"taxable"` // Whether the amount enters the taxable base
}

// AdjustmentLine is a priced adjustment inside an order breakdown.
// Amount is signed: negative for discounts, positive for surcharges.
type AdjustmentLine struct {
	ID      string         `bson:"id" json:"id"`
	Label   string         `bson:"label" json:"label"`
	Type    AdjustmentType `bson:"type" json:"type"`
	Mode    AdjustmentMode `bson:"mode" json:"mode"`
	Amount  float64        `bson:"amount" json:"amount"`
	Taxable bool           `bson:"taxable" json:"taxable"`
}
