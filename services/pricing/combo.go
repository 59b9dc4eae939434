package pricing

import (
	"strings"

	"feastly/models"
)

// mainCategoryMarkers identify the category whose selections drive a combo's
// base quantity.
var mainCategoryMarkers = []string{"protein", "meat", "main"}

func isMainCategory(name string) bool {
	lower := strings.ToLower(name)
	for _, marker := range mainCategoryMarkers {
		if strings.Contains(lower, marker) {
			return true
		}
	}
	return false
}

// CollectComboSelection gathers everything in the selected-items map that
// references the given combo: its category items (keyed
// "comboId_categoryId_itemId") and any direct quantity recorded under the
// combo's own id, plain or service-prefixed.
func CollectComboSelection(combo models.ComboPackage, selected map[string]float64, serviceID string) models.ComboSelection {
	sel := models.ComboSelection{ComboID: combo.ID}

	for _, cat := range combo.ComboCategories {
		for _, it := range cat.Items {
			qty := selected[combo.ID+"_"+cat.ID+"_"+it.ID]
			if qty <= 0 {
				continue
			}
			sel.Items = append(sel.Items, models.ComboItemSelection{
				CategoryID:   cat.ID,
				CategoryName: cat.Name,
				Item:         it,
				Quantity:     qty,
			})
		}
	}

	if qty := selected[combo.ID]; qty > 0 {
		sel.DirectQuantity = qty
	} else if serviceID != "" {
		if qty := selected[serviceID+"_"+combo.ID]; qty > 0 {
			sel.DirectQuantity = qty
		}
	}
	return sel
}

// baseQuantity derives the combo's base multiplier: the summed quantity of
// selected main-category (protein/meat/main) items, falling back to the
// direct quantity under the combo's own id, then to 1 when at least one
// category item was picked. An untouched combo keeps quantity 0 so it can
// never charge by mere presence in the catalog.
func baseQuantity(sel models.ComboSelection) float64 {
	var mains float64
	for _, pick := range sel.Items {
		if isMainCategory(pick.CategoryName) {
			mains += pick.Quantity
		}
	}
	if mains > 0 {
		return mains
	}
	if sel.DirectQuantity > 0 {
		return sel.DirectQuantity
	}
	if len(sel.Items) > 0 {
		return 1
	}
	return 0
}

// PriceCombo prices a combo selection. The base price multiplies by the
// main-course servings ordered, while premium upcharges multiply by the
// guest headcount; the two multipliers are intentionally independent and
// must not be merged.
func PriceCombo(combo models.ComboPackage, sel models.ComboSelection, guestCount int) models.ComboQuote {
	if sel.Empty() {
		return models.ComboQuote{}
	}

	qty := baseQuantity(sel)
	baseTotal := combo.BaseUnitPrice() * qty

	var upchargeTotal float64
	for _, pick := range sel.Items {
		if pick.Item.Premium() {
			upchargeTotal += pick.Item.AdditionalCharge * float64(guestCount)
		}
	}

	return models.ComboQuote{
		BaseTotal:     baseTotal,
		UpchargeTotal: upchargeTotal,
		FinalTotal:    baseTotal + upchargeTotal,
		Quantity:      qty,
	}
}

// ComboLines renders each selected category item as its own display row.
// The rows are marked Detail: premium rows show (unit + upcharge) x their
// own selection count for the guest's benefit, while the parent combo
// line's PriceCombo total stays authoritative for the order sum.
func ComboLines(combo models.ComboPackage, sel models.ComboSelection) []models.LineItem {
	var lines []models.LineItem
	for _, pick := range sel.Items {
		unit := pick.Item.Price
		total := unit * pick.Quantity
		if pick.Item.Premium() {
			total = (unit + pick.Item.AdditionalCharge) * pick.Quantity
		}
		lines = append(lines, models.LineItem{
			ItemID:    combo.ID + "_" + pick.CategoryID + "_" + pick.Item.ID,
			Name:      pick.Item.Name,
			Quantity:  pick.Quantity,
			UnitPrice: unit,
			Upcharge:  pick.Item.AdditionalCharge,
			Total:     total,
			Premium:   pick.Item.Premium(),
			Detail:    true,
		})
	}
	return lines
}
