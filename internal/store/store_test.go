package store

import (
	"reflect"
	"testing"
	"time"

	"github.com/estateflow/estateflow/internal/models"
)

var fixedNow = time.Date(2024, 5, 20, 12, 0, 0, 0, time.UTC)

func seededStore(opts ...Option) *Store {
	base := []Option{
		WithClock(func() time.Time { return fixedNow }),
	}
	s := New(append(base, opts...)...)
	s.Load(Seed())
	return s
}

func TestSeedShape(t *testing.T) {
	snap := seededStore().Snapshot()

	if len(snap.Landlords) != 1 || len(snap.Properties) != 1 {
		t.Fatalf("landlords = %d, properties = %d", len(snap.Landlords), len(snap.Properties))
	}
	if len(snap.Units) != 4 || len(snap.Tenants) != 3 || len(snap.Payments) != 4 {
		t.Fatalf("units = %d, tenants = %d, payments = %d",
			len(snap.Units), len(snap.Tenants), len(snap.Payments))
	}
	if snap.Properties[0].LandlordID != snap.Landlords[0].ID {
		t.Error("seed property should reference the seed landlord")
	}
	for _, u := range snap.Units {
		if u.PropertyID != snap.Properties[0].ID {
			t.Errorf("unit %s references unknown property %s", u.ID, u.PropertyID)
		}
	}
}

func TestAddAssignsFreshIDs(t *testing.T) {
	ids := []string{"gen1", "gen2"}
	s := New(WithIDGenerator(func() string {
		id := ids[0]
		ids = ids[1:]
		return id
	}))

	l := s.AddLandlord(models.Landlord{ID: "client-supplied", Name: "홍길동"})
	if l.ID != "gen1" {
		t.Errorf("landlord ID = %q, want store-assigned gen1", l.ID)
	}

	p := s.AddProperty(models.Property{LandlordID: l.ID, Name: "테스트 빌라"})
	if p.ID != "gen2" {
		t.Errorf("property ID = %q, want gen2", p.ID)
	}

	snap := s.Snapshot()
	if len(snap.Landlords) != 1 || snap.Landlords[0].ID != "gen1" {
		t.Errorf("stored landlords = %+v", snap.Landlords)
	}
}

func TestAddPreservesInsertionOrder(t *testing.T) {
	s := New()
	names := []string{"첫째", "둘째", "셋째"}
	for _, n := range names {
		s.AddLandlord(models.Landlord{Name: n})
	}

	snap := s.Snapshot()
	for i, n := range names {
		if snap.Landlords[i].Name != n {
			t.Errorf("landlords[%d] = %q, want %q", i, snap.Landlords[i].Name, n)
		}
	}
}

func TestUpdatePaymentStatusPaidStampsDate(t *testing.T) {
	s := seededStore()

	updated, found := s.UpdatePaymentStatus("p3", models.StatusPaid)
	if !found {
		t.Fatal("p3 should exist")
	}
	if updated.Status != models.StatusPaid {
		t.Errorf("status = %s", updated.Status)
	}
	if updated.PaidDate == nil {
		t.Fatal("paid date should be stamped")
	}
	if got := updated.PaidDate.String(); got != "2024-05-20" {
		t.Errorf("paid date = %s, want 2024-05-20", got)
	}
}

func TestUpdatePaymentStatusNonPaidClearsDate(t *testing.T) {
	s := seededStore()

	// p1 is seeded PAID with a paid date.
	updated, found := s.UpdatePaymentStatus("p1", models.StatusPending)
	if !found {
		t.Fatal("p1 should exist")
	}
	if updated.PaidDate != nil {
		t.Errorf("paid date should be cleared, got %s", updated.PaidDate)
	}

	updated, _ = s.UpdatePaymentStatus("p1", models.StatusOverdue)
	if updated.PaidDate != nil {
		t.Error("paid date should stay cleared on OVERDUE")
	}
}

func TestUpdatePaymentStatusUnknownIDLeavesStoreUntouched(t *testing.T) {
	s := seededStore()
	before := s.Snapshot()

	_, found := s.UpdatePaymentStatus("nope", models.StatusPaid)
	if found {
		t.Fatal("unknown ID should report found=false")
	}

	after := s.Snapshot()
	if !reflect.DeepEqual(before, after) {
		t.Error("unknown ID update should not change any collection")
	}
}

func TestSnapshotIsolatedFromLaterWrites(t *testing.T) {
	s := seededStore()
	snap := s.Snapshot()

	s.UpdatePaymentStatus("p3", models.StatusPaid)
	s.AddLandlord(models.Landlord{Name: "새 임대인"})

	if snap.Payments[2].Status != models.StatusOverdue {
		t.Error("earlier snapshot should keep the old payment status")
	}
	if len(snap.Landlords) != 1 {
		t.Errorf("earlier snapshot has %d landlords, want 1", len(snap.Landlords))
	}
}

func TestChangeHookFiresPerMutation(t *testing.T) {
	type event struct{ kind, id string }
	var events []event
	s := New(WithChangeHook(func(kind, id string) {
		events = append(events, event{kind, id})
	}))
	s.Load(Seed())

	if len(events) != 0 {
		t.Fatalf("Load should not fire the hook, got %d events", len(events))
	}

	l := s.AddLandlord(models.Landlord{Name: "임대인"})
	s.UpdatePaymentStatus("p4", models.StatusPaid)
	s.UpdatePaymentStatus("missing", models.StatusPaid)

	want := []event{
		{ChangeLandlordCreated, l.ID},
		{ChangePaymentUpdated, "p4"},
	}
	if !reflect.DeepEqual(events, want) {
		t.Errorf("events = %v, want %v", events, want)
	}
}
