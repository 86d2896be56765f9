// Package portfolio provides pure, side-effect-free lookups and derived
// metrics over a store snapshot. Nothing here caches; every call recomputes
// from the collections it is given.
package portfolio

import (
	"sort"

	"github.com/estateflow/estateflow/internal/models"
	"github.com/estateflow/estateflow/internal/store"
)

// UnitsForProperty returns the property's units ordered by floor descending,
// then by name ascending. Name comparison is plain string order, so "10호"
// sorts before "2호".
func UnitsForProperty(units []models.Unit, propertyID string) []models.Unit {
	var out []models.Unit
	for _, u := range units {
		if u.PropertyID == propertyID {
			out = append(out, u)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Floor != out[j].Floor {
			return out[i].Floor > out[j].Floor
		}
		return out[i].Name < out[j].Name
	})
	return out
}

// FloorsDescending returns the distinct floors among the given units,
// highest first.
func FloorsDescending(units []models.Unit) []int {
	seen := make(map[int]bool)
	var floors []int
	for _, u := range units {
		if !seen[u.Floor] {
			seen[u.Floor] = true
			floors = append(floors, u.Floor)
		}
	}
	sort.Sort(sort.Reverse(sort.IntSlice(floors)))
	return floors
}

// UnitByID finds a unit by its ID.
func UnitByID(units []models.Unit, unitID string) (models.Unit, bool) {
	for _, u := range units {
		if u.ID == unitID {
			return u, true
		}
	}
	return models.Unit{}, false
}

// TenantForUnit returns the first tenant leasing the unit, if any.
func TenantForUnit(tenants []models.Tenant, unitID string) (models.Tenant, bool) {
	for _, t := range tenants {
		if t.UnitID == unitID {
			return t, true
		}
	}
	return models.Tenant{}, false
}

// VacantUnitsForProperty returns the property's units with no tenant, in
// insertion order.
func VacantUnitsForProperty(units []models.Unit, tenants []models.Tenant, propertyID string) []models.Unit {
	occupied := make(map[string]bool, len(tenants))
	for _, t := range tenants {
		occupied[t.UnitID] = true
	}
	var out []models.Unit
	for _, u := range units {
		if u.PropertyID == propertyID && !occupied[u.ID] {
			out = append(out, u)
		}
	}
	return out
}

// PaymentChain is a payment resolved through tenant, unit, and property.
// Any link may be nil when the referenced ID is dangling.
type PaymentChain struct {
	Payment  models.PaymentRecord
	Tenant   *models.Tenant
	Unit     *models.Unit
	Property *models.Property
}

// ChainForPayment resolves payment, tenant, unit, and property in turn,
// returning
// partial results rather than failing on a dangling reference.
func ChainForPayment(snap store.Snapshot, p models.PaymentRecord) PaymentChain {
	chain := PaymentChain{Payment: p}
	for i := range snap.Tenants {
		if snap.Tenants[i].ID == p.TenantID {
			chain.Tenant = &snap.Tenants[i]
			break
		}
	}
	if chain.Tenant == nil {
		return chain
	}
	for i := range snap.Units {
		if snap.Units[i].ID == chain.Tenant.UnitID {
			chain.Unit = &snap.Units[i]
			break
		}
	}
	if chain.Unit == nil {
		return chain
	}
	for i := range snap.Properties {
		if snap.Properties[i].ID == chain.Unit.PropertyID {
			chain.Property = &snap.Properties[i]
			break
		}
	}
	return chain
}
