package models

import (
	"encoding/json"
	"testing"
)

func TestNormalizeServiceType(t *testing.T) {
	cases := []struct {
		raw  string
		want ServiceType
	}{
		{"catering", ServiceTypeCatering},
		{"Caterer", ServiceTypeCatering},
		{"venue", ServiceTypeVenues},
		{"Venues", ServiceTypeVenues},
		{"party-rental", ServiceTypePartyRentals},
		{"party_rentals", ServiceTypePartyRentals},
		{"rentals", ServiceTypePartyRentals},
		{"staff", ServiceTypeEventsStaff},
		{"events-staff", ServiceTypeEventsStaff},
		{" catering ", ServiceTypeCatering},
		{"photography", ServiceTypeUnknown},
		{"", ServiceTypeUnknown},
	}
	for _, tc := range cases {
		if got := NormalizeServiceType(tc.raw); got != tc.want {
			t.Errorf("NormalizeServiceType(%q) = %q, want %q", tc.raw, got, tc.want)
		}
	}
}

func TestServiceDetailsUndefinedSentinel(t *testing.T) {
	for _, raw := range []string{`"undefined"`, `null`, `""`} {
		var d ServiceDetails
		if err := json.Unmarshal([]byte(raw), &d); err != nil {
			t.Errorf("unmarshal %s: unexpected error: %v", raw, err)
		}
		if !d.Empty() {
			t.Errorf("unmarshal %s: expected empty details", raw)
		}
	}
}

func TestServiceDetailsGarbageDecodesToZero(t *testing.T) {
	var d ServiceDetails
	if err := json.Unmarshal([]byte(`[1,2,3]`), &d); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !d.Empty() {
		t.Error("expected empty details for a non-object blob")
	}
}

func TestServiceDetailsAliasKeys(t *testing.T) {
	raw := `{
		"combos": [{"id": "c1", "name": "Feast"}],
		"items": [{"id": "chair", "name": "Chair"}],
		"roles": [{"id": "server", "name": "Server", "hourlyRate": 30}],
		"options": [{"id": "hall", "name": "Hall"}]
	}`
	var d ServiceDetails
	if err := json.Unmarshal([]byte(raw), &d); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(d.ComboPackages) != 1 || d.ComboPackages[0].ID != "c1" {
		t.Errorf("combos alias not mapped: %+v", d.ComboPackages)
	}
	if len(d.RentalItems) != 1 || d.RentalItems[0].ID != "chair" {
		t.Errorf("items alias not mapped: %+v", d.RentalItems)
	}
	if len(d.StaffRoles) != 1 || d.StaffRoles[0].HourlyRate != 30 {
		t.Errorf("roles alias not mapped: %+v", d.StaffRoles)
	}
	if len(d.VenueOptions) != 1 {
		t.Errorf("options alias not mapped: %+v", d.VenueOptions)
	}
}

func TestServiceDetailsNestedCateringBlock(t *testing.T) {
	raw := `{"catering": {"menuItems": [{"id": "taco", "name": "Taco", "price": 4}]}}`
	var d ServiceDetails
	if err := json.Unmarshal([]byte(raw), &d); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(d.MenuItems) != 1 || d.MenuItems[0].ID != "taco" {
		t.Errorf("nested catering block not mapped: %+v", d.MenuItems)
	}
}

func TestCatalogFallsBackToTopLevelArrays(t *testing.T) {
	svc := ServiceSelection{
		ID:        "r1",
		MenuItems: []CatalogItem{{ID: "taco", Name: "Taco"}},
	}
	cat := svc.Catalog()
	if len(cat.MenuItems) != 1 {
		t.Fatalf("expected top-level menu items, got %+v", cat)
	}

	svc.Details = ServiceDetails{MenuItems: []CatalogItem{{ID: "burrito"}}}
	cat = svc.Catalog()
	if len(cat.MenuItems) != 1 || cat.MenuItems[0].ID != "burrito" {
		t.Errorf("details blob should win over top-level arrays: %+v", cat)
	}
}

func TestCanonicalIDAndFlatPrice(t *testing.T) {
	svc := ServiceSelection{ServiceID: "legacy", ServicePrice: 120}
	if got := svc.CanonicalID(); got != "legacy" {
		t.Errorf("CanonicalID = %q, want legacy", got)
	}
	if got := svc.FlatPrice(); got != 120 {
		t.Errorf("FlatPrice = %v, want 120", got)
	}

	svc.ID = "canonical"
	svc.Price = 150
	if got := svc.CanonicalID(); got != "canonical" {
		t.Errorf("CanonicalID = %q, want canonical", got)
	}
	if got := svc.FlatPrice(); got != 150 {
		t.Errorf("FlatPrice = %v, want 150", got)
	}
}
