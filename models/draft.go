package models

import "time"

// BookingDraft is a resumable in-progress booking snapshot, persisted as one
// key-value record per draft id. Writes replace the full snapshot (last
// write wins); there are no field-level patches.
type BookingDraft struct {
	DraftID          string               `bson:"draft_id" json:"draftId"`
	SelectedServices []ServiceSelection   `bson:"selected_services" json:"selected_services"`
	SelectedItems    map[string]float64   `bson:"selected_items" json:"selected_items"`
	FormData         BookingForm          `bson:"form_data" json:"form_data"`
	CustomAdjustments []CustomAdjustment  `bson:"custom_adjustments" json:"custom_adjustments"`
	DeliveryFees     DeliveryFeeSelection `bson:"delivery_fees,omitempty" json:"delivery_fees,omitempty"`
	UpdatedAt        time.Time            `bson:"updated_at" json:"updatedAt"`
}
