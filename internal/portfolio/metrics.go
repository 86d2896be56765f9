package portfolio

import (
	"github.com/estateflow/estateflow/internal/models"
	"github.com/estateflow/estateflow/internal/store"
)

// MonthlyPotentialRevenue sums rent plus maintenance across all tenants.
func MonthlyPotentialRevenue(tenants []models.Tenant) int64 {
	var total int64
	for _, t := range tenants {
		total += t.RentAmount + t.MaintenanceAmount
	}
	return total
}

// CollectedThisMonth sums the amounts of PAID payments whose due date falls
// in the same calendar year-month as today.
func CollectedThisMonth(payments []models.PaymentRecord, today models.Date) int64 {
	var total int64
	for _, p := range payments {
		if p.Status == models.StatusPaid && p.Date.SameMonth(today) {
			total += p.Amount
		}
	}
	return total
}

// OverdueCount counts payments currently classified OVERDUE.
func OverdueCount(payments []models.PaymentRecord) int {
	n := 0
	for _, p := range payments {
		if p.Status == models.StatusOverdue {
			n++
		}
	}
	return n
}

// OverduePayments returns the OVERDUE payments in insertion order.
func OverduePayments(payments []models.PaymentRecord) []models.PaymentRecord {
	var out []models.PaymentRecord
	for _, p := range payments {
		if p.Status == models.StatusOverdue {
			out = append(out, p)
		}
	}
	return out
}

// OccupancyRate is tenant count over unit count as a percentage. This is the
// dashboard's definition, not "occupied units over total units": if more than
// one tenant references a unit the rate can exceed 100. Zero units yields 0.
func OccupancyRate(tenantCount, unitCount int) float64 {
	if unitCount == 0 {
		return 0
	}
	return float64(tenantCount) / float64(unitCount) * 100
}

// Stats bundles the dashboard aggregates.
type Stats struct {
	MonthlyPotential   int64   `json:"monthlyPotential"`
	CollectedThisMonth int64   `json:"collectedThisMonth"`
	OverdueCount       int     `json:"overdueCount"`
	OccupancyRate      float64 `json:"occupancyRate"`
	TotalUnits         int     `json:"totalUnits"`
}

// ComputeStats derives all dashboard aggregates from the snapshot.
func ComputeStats(snap store.Snapshot, today models.Date) Stats {
	return Stats{
		MonthlyPotential:   MonthlyPotentialRevenue(snap.Tenants),
		CollectedThisMonth: CollectedThisMonth(snap.Payments, today),
		OverdueCount:       OverdueCount(snap.Payments),
		OccupancyRate:      OccupancyRate(len(snap.Tenants), len(snap.Units)),
		TotalUnits:         len(snap.Units),
	}
}

// RecentOverdue resolves up to limit overdue payments through their chains
// for the dashboard's overdue panel.
func RecentOverdue(snap store.Snapshot, limit int) []PaymentChain {
	var out []PaymentChain
	for _, p := range OverduePayments(snap.Payments) {
		if limit > 0 && len(out) >= limit {
			break
		}
		out = append(out, ChainForPayment(snap, p))
	}
	return out
}
