package portfolio

import (
	"reflect"
	"testing"

	"github.com/estateflow/estateflow/internal/models"
	"github.com/estateflow/estateflow/internal/store"
)

func TestUnitsForPropertyOrdering(t *testing.T) {
	snap := store.Seed()

	units := UnitsForProperty(snap.Units, "prop1")
	var names []string
	for _, u := range units {
		names = append(names, u.Name)
	}
	want := []string{"401호", "305호", "202호", "101호"}
	if !reflect.DeepEqual(names, want) {
		t.Errorf("order = %v, want %v", names, want)
	}
}

func TestUnitsForPropertyNameTieBreakIsLexicographic(t *testing.T) {
	units := []models.Unit{
		{ID: "a", PropertyID: "p", Floor: 1, Name: "2호"},
		{ID: "b", PropertyID: "p", Floor: 1, Name: "10호"},
	}

	got := UnitsForProperty(units, "p")
	// Plain string comparison puts "10호" before "2호".
	if got[0].Name != "10호" || got[1].Name != "2호" {
		t.Errorf("order = %s, %s", got[0].Name, got[1].Name)
	}
}

func TestUnitsForPropertyFiltersOtherProperties(t *testing.T) {
	units := []models.Unit{
		{ID: "a", PropertyID: "p1", Floor: 1, Name: "101호"},
		{ID: "b", PropertyID: "p2", Floor: 1, Name: "101호"},
	}
	got := UnitsForProperty(units, "p1")
	if len(got) != 1 || got[0].ID != "a" {
		t.Errorf("got = %+v", got)
	}
}

func TestFloorsDescending(t *testing.T) {
	snap := store.Seed()
	if got := FloorsDescending(snap.Units); !reflect.DeepEqual(got, []int{4, 3, 2, 1}) {
		t.Errorf("floors = %v", got)
	}

	dup := []models.Unit{
		{Floor: 2}, {Floor: 5}, {Floor: 2}, {Floor: 5},
	}
	if got := FloorsDescending(dup); !reflect.DeepEqual(got, []int{5, 2}) {
		t.Errorf("deduped floors = %v", got)
	}
}

func TestTenantForUnit(t *testing.T) {
	snap := store.Seed()

	tenant, ok := TenantForUnit(snap.Tenants, "u101")
	if !ok || tenant.Name != "김철수" {
		t.Errorf("tenant = %+v, ok = %v", tenant, ok)
	}

	if _, ok := TenantForUnit(snap.Tenants, "u401"); ok {
		t.Error("u401 is vacant, expected no tenant")
	}
}

func TestVacantUnitsForProperty(t *testing.T) {
	snap := store.Seed()

	vacant := VacantUnitsForProperty(snap.Units, snap.Tenants, "prop1")
	if len(vacant) != 1 || vacant[0].ID != "u401" {
		t.Errorf("vacant = %+v, want just u401", vacant)
	}
}

func TestChainForPayment(t *testing.T) {
	snap := store.Seed()

	chain := ChainForPayment(snap, snap.Payments[0])
	if chain.Tenant == nil || chain.Tenant.ID != "t1" {
		t.Fatalf("tenant = %+v", chain.Tenant)
	}
	if chain.Unit == nil || chain.Unit.ID != "u101" {
		t.Fatalf("unit = %+v", chain.Unit)
	}
	if chain.Property == nil || chain.Property.ID != "prop1" {
		t.Fatalf("property = %+v", chain.Property)
	}
}

func TestChainForPaymentDanglingTenant(t *testing.T) {
	snap := store.Seed()
	p := models.PaymentRecord{ID: "px", TenantID: "ghost"}

	chain := ChainForPayment(snap, p)
	if chain.Tenant != nil || chain.Unit != nil || chain.Property != nil {
		t.Errorf("chain should stop at the dangling tenant: %+v", chain)
	}
	if chain.Payment.ID != "px" {
		t.Errorf("payment should still be carried: %+v", chain.Payment)
	}
}

func TestChainForPaymentDanglingUnit(t *testing.T) {
	snap := store.Seed()
	snap.Tenants = append(snap.Tenants, models.Tenant{ID: "t9", UnitID: "ghost", Name: "유령"})

	chain := ChainForPayment(snap, models.PaymentRecord{ID: "px", TenantID: "t9"})
	if chain.Tenant == nil || chain.Tenant.Name != "유령" {
		t.Fatalf("tenant = %+v", chain.Tenant)
	}
	if chain.Unit != nil || chain.Property != nil {
		t.Errorf("chain should stop at the dangling unit: %+v", chain)
	}
}
