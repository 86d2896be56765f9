package portfolio

import (
	"testing"
	"time"

	"github.com/estateflow/estateflow/internal/models"
	"github.com/estateflow/estateflow/internal/store"
	"github.com/estateflow/estateflow/internal/testutil"
)

func TestMonthlyPotentialRevenue(t *testing.T) {
	snap := store.Seed()
	// 600000+50000 + 450000+50000 + 800000+100000
	if got := MonthlyPotentialRevenue(snap.Tenants); got != 2050000 {
		t.Errorf("MonthlyPotentialRevenue = %d, want 2050000", got)
	}
	if got := MonthlyPotentialRevenue(nil); got != 0 {
		t.Errorf("empty = %d, want 0", got)
	}
}

func TestCollectedThisMonth(t *testing.T) {
	snap := store.Seed()

	may := models.NewDate(2024, time.May, 20)
	if got := CollectedThisMonth(snap.Payments, may); got != 650000 {
		t.Errorf("collected in May = %d, want 650000", got)
	}

	// Same payments viewed from June: due dates fall outside the month.
	june := models.NewDate(2024, time.June, 3)
	if got := CollectedThisMonth(snap.Payments, june); got != 0 {
		t.Errorf("collected in June = %d, want 0", got)
	}
}

func TestOverdueCount(t *testing.T) {
	snap := store.Seed()
	if got := OverdueCount(snap.Payments); got != 1 {
		t.Errorf("OverdueCount = %d, want 1", got)
	}
	if got := OverdueCount(nil); got != 0 {
		t.Errorf("empty = %d, want 0", got)
	}
}

func TestOccupancyRate(t *testing.T) {
	if got := OccupancyRate(3, 4); got != 75.0 {
		t.Errorf("3/4 = %v, want 75", got)
	}
	if got := OccupancyRate(0, 0); got != 0 {
		t.Errorf("0/0 = %v, want 0", got)
	}
	// Tenant count over unit count, so duplicate leases can push past 100.
	if got := OccupancyRate(5, 4); got != 125.0 {
		t.Errorf("5/4 = %v, want 125", got)
	}
}

func TestComputeStats(t *testing.T) {
	st := testutil.SeededStore(t)
	stats := ComputeStats(st.Snapshot(), testutil.FixedToday())

	want := Stats{
		MonthlyPotential:   2050000,
		CollectedThisMonth: 650000,
		OverdueCount:       1,
		OccupancyRate:      75.0,
		TotalUnits:         4,
	}
	if stats != want {
		t.Errorf("stats = %+v, want %+v", stats, want)
	}
}

func TestComputeStatsEmpty(t *testing.T) {
	stats := ComputeStats(store.Snapshot{}, testutil.FixedToday())
	if stats != (Stats{}) {
		t.Errorf("empty stats = %+v, want zero value", stats)
	}
}

func TestRecentOverdue(t *testing.T) {
	snap := store.Seed()

	chains := RecentOverdue(snap, 5)
	if len(chains) != 1 {
		t.Fatalf("chains = %d, want 1", len(chains))
	}
	c := chains[0]
	if c.Payment.ID != "p3" {
		t.Errorf("payment = %s, want p3", c.Payment.ID)
	}
	if c.Tenant == nil || c.Tenant.Name != "이영희" {
		t.Errorf("tenant = %+v", c.Tenant)
	}
	if c.Unit == nil || c.Unit.Name != "202호" {
		t.Errorf("unit = %+v", c.Unit)
	}
	if c.Property == nil || c.Property.Name != "강남 선샤인 빌라" {
		t.Errorf("property = %+v", c.Property)
	}
}

func TestRecentOverdueLimit(t *testing.T) {
	snap := store.Snapshot{
		Payments: []models.PaymentRecord{
			{ID: "a", Status: models.StatusOverdue},
			{ID: "b", Status: models.StatusOverdue},
			{ID: "c", Status: models.StatusOverdue},
		},
	}
	chains := RecentOverdue(snap, 2)
	if len(chains) != 2 {
		t.Fatalf("chains = %d, want 2", len(chains))
	}
	if chains[0].Payment.ID != "a" || chains[1].Payment.ID != "b" {
		t.Errorf("order = %s, %s", chains[0].Payment.ID, chains[1].Payment.ID)
	}
}
