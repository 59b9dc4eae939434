package models

// ComboItemSelection is one category sub-item the guest picked, with the
// quantity they picked it at.
type ComboItemSelection struct {
	CategoryID   string
	CategoryName string
	Item         ComboItem
	Quantity     float64
}

// ComboSelection is the subset of a combo's category items present in the
// guest's selected-items map.
type ComboSelection struct {
	ComboID string
	Items   []ComboItemSelection
	// DirectQuantity is any quantity recorded under the combo's own item id
	// (plain or service-prefixed), used when no main-category quantity exists.
	DirectQuantity float64
}

// Empty reports whether nothing referencing the combo was selected at all.
func (cs ComboSelection) Empty() bool {
	return len(cs.Items) == 0 && cs.DirectQuantity == 0
}

// ComboQuote is the priced result of a combo selection. BaseTotal tracks the
// main-course servings ordered; UpchargeTotal tracks per-guest premiums.
type ComboQuote struct {
	BaseTotal     float64 `json:"baseTotal"`
	UpchargeTotal float64 `json:"upchargeTotal"`
	FinalTotal    float64 `json:"finalTotal"`
	Quantity      float64 `json:"quantity"` // Base quantity, for per-unit display
}
