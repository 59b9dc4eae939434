package pricing

import (
	"strings"

	"github.com/google/uuid"

	"feastly/models"
)

// DurationKeySuffix marks selected-items keys that record hours for a staff
// item rather than a selection of their own.
const DurationKeySuffix = "_duration"

// IsDurationKey reports whether a selected-items key is a derived hours key.
func IsDurationKey(itemID string) bool {
	return strings.HasSuffix(itemID, DurationKeySuffix)
}

func isUUIDShaped(s string) bool {
	return uuid.Validate(s) == nil
}

// ResolveItem resolves one selected-item id against a service's catalog into
// a concrete line item, or nil when the id has nothing priceable behind it.
//
// Three id shapes are tried in order: combo-category
// ("comboId_categoryId_itemId"), direct (id/itemId/name/title equality, with
// or without the serviceId prefix), and prefix-stripped direct. Stale
// combo-category references with UUID-shaped ids and no price resolve to
// nil rather than fabricating a zero-value line; unknown rental ids
// synthesize a zero-priced placeholder because rentals are routinely added
// outside the known catalog.
func ResolveItem(details models.ServiceDetails, serviceType models.ServiceType, itemID, serviceID string, qty float64) *models.LineItem {
	if itemID == "" || qty <= 0 || IsDurationKey(itemID) {
		return nil
	}

	if strings.Count(itemID, "_") >= 2 {
		if line, terminal := resolveComboCategoryItem(details, itemID, qty); terminal {
			return line
		}
	}

	if line := resolveDirect(details, serviceType, itemID, serviceID, qty); line != nil {
		return line
	}

	if serviceID != "" && strings.HasPrefix(itemID, serviceID+"_") {
		stripped := strings.TrimPrefix(itemID, serviceID+"_")
		if line := resolveDirect(details, serviceType, stripped, serviceID, qty); line != nil {
			return line
		}
		itemID = stripped
	}

	if serviceType == models.ServiceTypePartyRentals {
		// Rentals may be ad-hoc additions outside the catalog; keep them
		// visible on the breakdown at zero price instead of dropping them.
		return &models.LineItem{ItemID: itemID, Name: itemID, Quantity: qty, UnitPrice: 0, Total: 0}
	}
	return nil
}

// resolveComboCategoryItem handles the "comboId_categoryId_itemId" shape.
// terminal is true when the shape was conclusively handled (hit or
// deliberate exclusion); false means the id should fall through to direct
// matching.
func resolveComboCategoryItem(details models.ServiceDetails, itemID string, qty float64) (line *models.LineItem, terminal bool) {
	parts := strings.SplitN(itemID, "_", 3)
	comboID, categoryID, actualItemID := parts[0], parts[1], parts[2]

	for _, combo := range details.ComboPackages {
		if combo.ID != comboID {
			continue
		}
		for _, cat := range combo.ComboCategories {
			if cat.ID != categoryID {
				continue
			}
			for _, it := range cat.Items {
				if it.ID != actualItemID && it.Name != actualItemID {
					continue
				}
				unit := it.Price
				total := unit * qty
				if it.Premium() {
					total = (unit + it.AdditionalCharge) * qty
				}
				return &models.LineItem{
					ItemID:    itemID,
					Name:      it.Name,
					Quantity:  qty,
					UnitPrice: unit,
					Upcharge:  it.AdditionalCharge,
					Total:     total,
					Premium:   it.Premium(),
				}, true
			}
		}
		// Combo exists but the category item is gone. A UUID-shaped leftover
		// with nothing priceable behind it is a stale selection key
		// surviving a catalog edit; drop it silently.
		if isUUIDShaped(actualItemID) {
			return nil, true
		}
		return nil, false
	}
	return nil, false
}

func resolveDirect(details models.ServiceDetails, serviceType models.ServiceType, itemID, serviceID string, qty float64) *models.LineItem {
	for _, it := range details.Items(serviceType) {
		if !it.Matches(itemID, serviceID) {
			continue
		}
		price := it.ResolvedPrice()
		name := it.DisplayName()
		// Dummy guard: a catering entry with a UUID id, no display name and
		// no price exists only as a stale selection key.
		if serviceType == models.ServiceTypeCatering && name == "" && price == 0 && isUUIDShaped(itemID) {
			return nil
		}
		if name == "" {
			name = itemID
		}
		return &models.LineItem{
			ItemID:    itemID,
			Name:      name,
			Quantity:  qty,
			UnitPrice: price,
			Total:     price * qty,
		}
	}
	return nil
}
