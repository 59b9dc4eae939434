package pricing

import (
	"fmt"

	"feastly/models"
)

// BuildServiceBreakdown resolves everything the guest selected for one
// service into itemized lines and a service subtotal.
//
// Catering totals are items-only; the service's flat price field never adds
// on top (catering pricing is inherently itemized, a flat base would double
// count). The other service types use their resolved lines when any carry a
// price, falling back to flat price x quantity (with an hours multiplier
// for venues/staff when a duration is recorded).
func BuildServiceBreakdown(svc models.ServiceSelection, selected map[string]float64, guestCount int) models.ServiceBreakdown {
	breakdown := models.ServiceBreakdown{
		ServiceID:   svc.CanonicalID(),
		ServiceName: svc.Name,
		ServiceType: svc.ServiceType,
	}

	catalog := svc.Catalog()
	serviceID := svc.CanonicalID()

	// Combos first: their selection keys must not be re-resolved as plain
	// items afterwards.
	consumed := make(map[string]bool)
	for _, combo := range catalog.ComboPackages {
		sel := CollectComboSelection(combo, selected, serviceID)
		consumed[combo.ID] = true
		consumed[serviceID+"_"+combo.ID] = true
		for _, pick := range sel.Items {
			consumed[combo.ID+"_"+pick.CategoryID+"_"+pick.Item.ID] = true
		}
		if sel.Empty() {
			continue
		}

		quote := PriceCombo(combo, sel, guestCount)
		unit := 0.0
		if quote.Quantity > 0 {
			unit = quote.FinalTotal / quote.Quantity
		}
		breakdown.Lines = append(breakdown.Lines, models.LineItem{
			ItemID:    combo.ID,
			Name:      combo.Name,
			Quantity:  quote.Quantity,
			UnitPrice: unit,
			Upcharge:  quote.UpchargeTotal,
			Total:     quote.FinalTotal,
		})
		breakdown.Lines = append(breakdown.Lines, ComboLines(combo, sel)...)
		breakdown.Total += quote.FinalTotal
	}

	for itemID, qty := range selected {
		if qty <= 0 || consumed[itemID] || IsDurationKey(itemID) {
			continue
		}
		line := ResolveItem(catalog, svc.ServiceType, itemID, serviceID, qty)
		if line == nil {
			continue
		}
		if svc.ServiceType == models.ServiceTypeEventsStaff {
			applyStaffHours(line, catalog, selected, itemID)
		}
		breakdown.Lines = append(breakdown.Lines, *line)
		breakdown.Total += line.Total
	}

	if svc.ServiceType != models.ServiceTypeCatering && breakdown.Total == 0 {
		breakdown.Total = flatFallback(svc)
	}
	return breakdown
}

// ServiceTotal returns the service's subtotal contribution to the order.
func ServiceTotal(svc models.ServiceSelection, selected map[string]float64, guestCount int) float64 {
	return BuildServiceBreakdown(svc, selected, guestCount).Total
}

// applyStaffHours upgrades a staff line to hourly math when the role bills
// by the hour and an "<itemId>_duration" hours key was recorded.
func applyStaffHours(line *models.LineItem, catalog models.ServiceDetails, selected map[string]float64, itemID string) {
	hours := selected[itemID+DurationKeySuffix]
	if hours <= 0 {
		return
	}
	for _, role := range catalog.StaffRoles {
		if !role.Matches(itemID, "") || role.HourlyRate <= 0 {
			continue
		}
		line.UnitPrice = role.HourlyRate
		line.Total = line.Quantity * hours * role.HourlyRate
		return
	}
}

// flatFallback prices a service with no resolvable line items: flat price x
// quantity, with the recorded duration as an hours multiplier for venues
// and staff.
func flatFallback(svc models.ServiceSelection) float64 {
	price := svc.FlatPrice()
	qty := svc.Quantity
	if qty <= 0 {
		qty = 1
	}
	switch svc.ServiceType {
	case models.ServiceTypeVenues, models.ServiceTypeEventsStaff:
		if svc.Duration > 0 {
			return price * qty * svc.Duration
		}
	}
	return price * qty
}

// ValidateMinimums enforces a catering service's declared minimums. It is a
// hard submission precondition applied by the caller, not part of the total
// calculation itself.
func ValidateMinimums(svc models.ServiceSelection, selected map[string]float64, guestCount int) error {
	if svc.ServiceType != models.ServiceTypeCatering {
		return nil
	}
	catalog := svc.Catalog()
	if catalog.MinimumGuests > 0 && guestCount < catalog.MinimumGuests {
		return fmt.Errorf("%s requires at least %d guests, got %d", svc.Name, catalog.MinimumGuests, guestCount)
	}
	if catalog.MinimumOrderAmount > 0 {
		total := ServiceTotal(svc, selected, guestCount)
		if total < catalog.MinimumOrderAmount {
			return fmt.Errorf("%s requires a minimum order of $%.2f, got $%.2f", svc.Name, catalog.MinimumOrderAmount, total)
		}
	}
	return nil
}
