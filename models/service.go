package models

import "strings"

// ServiceType is the closed set of bookable service categories.
type ServiceType string

const (
	ServiceTypeCatering     ServiceType = "catering"
	ServiceTypeVenues       ServiceType = "venues"
	ServiceTypePartyRentals ServiceType = "party_rentals"
	ServiceTypeEventsStaff  ServiceType = "events_staff"
	ServiceTypeUnknown      ServiceType = ""
)

// NormalizeServiceType maps the synonym spellings seen in stored selections
// ("venue", "party-rental", "staff", ...) onto the canonical enum. It is run
// once at ingestion; downstream code switches on the enum only.
func NormalizeServiceType(raw string) ServiceType {
	switch strings.ToLower(strings.TrimSpace(strings.ReplaceAll(raw, "-", "_"))) {
	case "catering", "caterer":
		return ServiceTypeCatering
	case "venue", "venues":
		return ServiceTypeVenues
	case "party_rental", "party_rentals", "rental", "rentals":
		return ServiceTypePartyRentals
	case "staff", "event_staff", "events_staff":
		return ServiceTypeEventsStaff
	default:
		return ServiceTypeUnknown
	}
}

// ServiceSelection is one purchased service instance inside an order.
type ServiceSelection struct {
	ID           string      `bson:"id" json:"id"`                                       // Canonical service identifier
	ServiceID    string      `bson:"service_id,omitempty" json:"serviceId,omitempty"`    // Legacy alias of ID; either may be set
	VendorID     string      `bson:"vendor_id,omitempty" json:"vendorId,omitempty"`      // Owning vendor
	Name         string      `bson:"name" json:"name"`                                   // Display name
	ServiceType  ServiceType `bson:"service_type" json:"serviceType"`                    // Normalized category
	Quantity     float64     `bson:"quantity" json:"quantity"`                           // Unit count (meaning depends on type)
	Duration     float64     `bson:"duration,omitempty" json:"duration,omitempty"`       // Hours for venues/staff, otherwise count
	Price        float64     `bson:"price,omitempty" json:"price,omitempty"`             // Flat unit price; used only when no line items resolve
	ServicePrice float64     `bson:"service_price,omitempty" json:"servicePrice,omitempty"` // Legacy alias of Price
	Image        string      `bson:"image,omitempty" json:"image,omitempty"`             // Card image URL
	Details      ServiceDetails `bson:"service_details,omitempty" json:"service_details,omitempty"` // Normalized catalog blob

	// Top-level item arrays some legacy records carry instead of a
	// service_details blob. Used as a fallback catalog only.
	MenuItems   []CatalogItem `bson:"menu_items,omitempty" json:"menuItems,omitempty"`
	RentalItems []CatalogItem `bson:"rental_items,omitempty" json:"rentalItems,omitempty"`
}

// CanonicalID returns the one effective identifier for the service,
// treating the id/serviceId aliases as equivalent.
func (s ServiceSelection) CanonicalID() string {
	if s.ID != "" {
		return s.ID
	}
	return s.ServiceID
}

// FlatPrice returns the flat unit price, honoring the legacy alias.
func (s ServiceSelection) FlatPrice() float64 {
	if s.Price != 0 {
		return s.Price
	}
	return s.ServicePrice
}

// Catalog returns the effective catalog for the service. A malformed or
// absent service_details blob degrades to the top-level item arrays, never
// to an error (pricing then falls back to flat price x quantity).
func (s ServiceSelection) Catalog() ServiceDetails {
	if !s.Details.Empty() {
		return s.Details
	}
	return ServiceDetails{
		MenuItems:   s.MenuItems,
		RentalItems: s.RentalItems,
	}
}
