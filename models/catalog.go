package models

import (
	"bytes"
	"encoding/json"
	"math"
)

// CatalogItem is a single orderable entry in a service's catalog: a menu
// item, rental item, staff role or venue option. Vendors record prices under
// several historical field names; ResolvedPrice picks the effective one.
type CatalogItem struct {
	ID     string `bson:"id,omitempty" json:"id,omitempty"`
	ItemID string `bson:"item_id,omitempty" json:"itemId,omitempty"` // Legacy alias of ID
	Name   string `bson:"name,omitempty" json:"name,omitempty"`
	Title  string `bson:"title,omitempty" json:"title,omitempty"` // Legacy alias of Name

	PricePerPerson *float64 `bson:"price_per_person,omitempty" json:"pricePerPerson,omitempty"`
	Price          *float64 `bson:"price,omitempty" json:"price,omitempty"`
	ItemPrice      *float64 `bson:"item_price,omitempty" json:"itemPrice,omitempty"`
	BasePrice      *float64 `bson:"base_price,omitempty" json:"basePrice,omitempty"`
	UnitPrice      *float64 `bson:"unit_price,omitempty" json:"unitPrice,omitempty"`

	HourlyRate float64 `bson:"hourly_rate,omitempty" json:"hourlyRate,omitempty"` // Staff roles billed by the hour
}

// DisplayName returns the effective display name, honoring the legacy alias.
func (it CatalogItem) DisplayName() string {
	if it.Name != "" {
		return it.Name
	}
	return it.Title
}

// ResolvedPrice returns the first usable price field in priority order:
// pricePerPerson, price, itemPrice, basePrice, unitPrice. Absence and NaN
// both resolve to 0; a broken price must never break the booking flow.
func (it CatalogItem) ResolvedPrice() float64 {
	for _, p := range []*float64{it.PricePerPerson, it.Price, it.ItemPrice, it.BasePrice, it.UnitPrice} {
		if p != nil && !math.IsNaN(*p) {
			return *p
		}
	}
	return 0
}

// Matches reports whether the item answers to the given raw id, optionally
// prefixed with "<serviceID>_".
func (it CatalogItem) Matches(itemID, serviceID string) bool {
	for _, key := range []string{it.ID, it.ItemID, it.Name, it.Title} {
		if key == "" {
			continue
		}
		if key == itemID {
			return true
		}
		if serviceID != "" && serviceID+"_"+key == itemID {
			return true
		}
	}
	return false
}

// ComboItem is one selectable sub-item inside a combo category.
type ComboItem struct {
	ID               string  `bson:"id" json:"id"`
	Name             string  `bson:"name" json:"name"`
	Price            float64 `bson:"price,omitempty" json:"price,omitempty"`
	AdditionalCharge float64 `bson:"additional_charge,omitempty" json:"additionalCharge,omitempty"` // Per-guest premium upcharge
}

// Premium reports whether selecting the item adds a per-guest upcharge.
func (ci ComboItem) Premium() bool {
	return ci.AdditionalCharge > 0
}

// ComboCategory groups the selectable sub-items of a combo (e.g. proteins,
// sides), with a cap on how many the guest may pick.
type ComboCategory struct {
	ID            string      `bson:"id" json:"id"`
	Name          string      `bson:"name" json:"name"`
	MaxSelections int         `bson:"max_selections,omitempty" json:"maxSelections,omitempty"`
	Items         []ComboItem `bson:"items" json:"items"`
}

// ComboPackage is a bundled menu item composed of categories of sub-items.
type ComboPackage struct {
	ID              string          `bson:"id" json:"id"`
	Name            string          `bson:"name" json:"name"`
	PricePerPerson  *float64        `bson:"price_per_person,omitempty" json:"pricePerPerson,omitempty"`
	Price           *float64        `bson:"price,omitempty" json:"price,omitempty"`
	ComboCategories []ComboCategory `bson:"combo_categories" json:"comboCategories"`
}

// BaseUnitPrice returns the combo's base unit price (pricePerPerson wins
// over the plain price field).
func (cp ComboPackage) BaseUnitPrice() float64 {
	if cp.PricePerPerson != nil && !math.IsNaN(*cp.PricePerPerson) {
		return *cp.PricePerPerson
	}
	if cp.Price != nil && !math.IsNaN(*cp.Price) {
		return *cp.Price
	}
	return 0
}

// ServiceDetails is the normalized per-service catalog. Exactly the arrays
// matching the service type are populated; the zero value means "no catalog
// available".
type ServiceDetails struct {
	MenuItems     []CatalogItem  `bson:"menu_items,omitempty" json:"menuItems,omitempty"`
	ComboPackages []ComboPackage `bson:"combo_packages,omitempty" json:"comboPackages,omitempty"`
	RentalItems   []CatalogItem  `bson:"rental_items,omitempty" json:"rentalItems,omitempty"`
	StaffRoles    []CatalogItem  `bson:"staff_roles,omitempty" json:"staffRoles,omitempty"`
	VenueOptions  []CatalogItem  `bson:"venue_options,omitempty" json:"venueOptions,omitempty"`

	DeliveryRanges []DeliveryRange `bson:"delivery_ranges,omitempty" json:"deliveryRanges,omitempty"`

	MinimumGuests      int     `bson:"minimum_guests,omitempty" json:"minimumGuests,omitempty"`
	MinimumOrderAmount float64 `bson:"minimum_order_amount,omitempty" json:"minimumOrderAmount,omitempty"`
}

// Empty reports whether the catalog carries no usable entries at all.
func (d ServiceDetails) Empty() bool {
	return len(d.MenuItems) == 0 && len(d.ComboPackages) == 0 && len(d.RentalItems) == 0 &&
		len(d.StaffRoles) == 0 && len(d.VenueOptions) == 0 && len(d.DeliveryRanges) == 0 &&
		d.MinimumGuests == 0 && d.MinimumOrderAmount == 0
}

// Items returns the catalog array matching the given service type.
func (d ServiceDetails) Items(t ServiceType) []CatalogItem {
	switch t {
	case ServiceTypeCatering:
		return d.MenuItems
	case ServiceTypePartyRentals:
		return d.RentalItems
	case ServiceTypeEventsStaff:
		return d.StaffRoles
	case ServiceTypeVenues:
		return d.VenueOptions
	default:
		return nil
	}
}

// detailsAlias carries the alternate key spellings legacy records use for
// the same arrays. Normalization happens here, once, at decode time.
type detailsAlias struct {
	MenuItems     []CatalogItem  `json:"menuItems"`
	ComboPackages []ComboPackage `json:"comboPackages"`
	Combos        []ComboPackage `json:"combos"`
	RentalItems   []CatalogItem  `json:"rentalItems"`
	Items         []CatalogItem  `json:"items"`
	StaffRoles    []CatalogItem  `json:"staffRoles"`
	Roles         []CatalogItem  `json:"roles"`
	VenueOptions  []CatalogItem  `json:"venueOptions"`
	Options       []CatalogItem  `json:"options"`

	Catering *struct {
		MenuItems     []CatalogItem  `json:"menuItems"`
		ComboPackages []ComboPackage `json:"comboPackages"`
	} `json:"catering"`

	DeliveryRanges []DeliveryRange `json:"deliveryRanges"`

	MinimumGuests      int     `json:"minimumGuests"`
	MinimumOrderAmount float64 `json:"minimumOrderAmount"`
}

// UnmarshalJSON tolerates the sentinel "undefined" string, null, and the
// legacy alternate field names. A blob we cannot make sense of decodes to
// the zero value instead of failing the whole order.
func (d *ServiceDetails) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) ||
		bytes.Equal(trimmed, []byte(`"undefined"`)) || bytes.Equal(trimmed, []byte(`""`)) {
		*d = ServiceDetails{}
		return nil
	}

	var alias detailsAlias
	if err := json.Unmarshal(trimmed, &alias); err != nil {
		*d = ServiceDetails{}
		return nil
	}

	out := ServiceDetails{
		MenuItems:          alias.MenuItems,
		ComboPackages:      alias.ComboPackages,
		RentalItems:        alias.RentalItems,
		StaffRoles:         alias.StaffRoles,
		VenueOptions:       alias.VenueOptions,
		DeliveryRanges:     alias.DeliveryRanges,
		MinimumGuests:      alias.MinimumGuests,
		MinimumOrderAmount: alias.MinimumOrderAmount,
	}
	if len(out.ComboPackages) == 0 {
		out.ComboPackages = alias.Combos
	}
	if len(out.RentalItems) == 0 {
		out.RentalItems = alias.Items
	}
	if len(out.StaffRoles) == 0 {
		out.StaffRoles = alias.Roles
	}
	if len(out.VenueOptions) == 0 {
		out.VenueOptions = alias.Options
	}
	if alias.Catering != nil {
		if len(out.MenuItems) == 0 {
			out.MenuItems = alias.Catering.MenuItems
		}
		if len(out.ComboPackages) == 0 {
			out.ComboPackages = alias.Catering.ComboPackages
		}
	}

	*d = out
	return nil
}
