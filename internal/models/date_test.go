package models

import (
	"encoding/json"
	"testing"
	"time"
)

func TestDateJSONRoundTrip(t *testing.T) {
	d := NewDate(2024, time.May, 15)

	data, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(data) != `"2024-05-15"` {
		t.Errorf("marshal = %s, want \"2024-05-15\"", data)
	}

	var back Date
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !back.Equal(d.Time) {
		t.Errorf("round trip = %s, want %s", back, d)
	}
}

func TestDateUnmarshalRejectsGarbage(t *testing.T) {
	var d Date
	if err := json.Unmarshal([]byte(`"15/05/2024"`), &d); err == nil {
		t.Error("expected error for non-ISO date")
	}
	if err := json.Unmarshal([]byte(`42`), &d); err == nil {
		t.Error("expected error for non-string value")
	}
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2023-01-01")
	if err != nil {
		t.Fatalf("ParseDate: %v", err)
	}
	if d.Year() != 2023 || d.Month() != time.January || d.Day() != 1 {
		t.Errorf("parsed = %s", d)
	}

	if _, err := ParseDate("not-a-date"); err == nil {
		t.Error("expected error for invalid input")
	}
}

func TestSameMonth(t *testing.T) {
	may1 := NewDate(2024, time.May, 1)
	may31 := NewDate(2024, time.May, 31)
	june1 := NewDate(2024, time.June, 1)
	mayLastYear := NewDate(2023, time.May, 1)

	if !may1.SameMonth(may31) {
		t.Error("dates in the same month should match")
	}
	if may31.SameMonth(june1) {
		t.Error("adjacent months should not match")
	}
	if may1.SameMonth(mayLastYear) {
		t.Error("same month of a different year should not match")
	}
}

func TestDaysSince(t *testing.T) {
	due := NewDate(2024, time.May, 15)
	today := NewDate(2024, time.May, 20)

	if got := today.DaysSince(due); got != 5 {
		t.Errorf("DaysSince = %d, want 5", got)
	}
	if got := due.DaysSince(today); got != -5 {
		t.Errorf("DaysSince future = %d, want -5", got)
	}
	if got := due.DaysSince(due); got != 0 {
		t.Errorf("DaysSince same day = %d, want 0", got)
	}
}

func TestPaymentStatusValid(t *testing.T) {
	for _, s := range []PaymentStatus{StatusPending, StatusPaid, StatusOverdue} {
		if !s.Valid() {
			t.Errorf("%s should be valid", s)
		}
	}
	if PaymentStatus("CANCELLED").Valid() {
		t.Error("unknown status should be invalid")
	}
}

func TestLabels(t *testing.T) {
	if got := StatusOverdue.Label(); got != "연체" {
		t.Errorf("overdue label = %q", got)
	}
	if got := StatusPaid.Label(); got != "납부완료" {
		t.Errorf("paid label = %q", got)
	}
	if got := TypeRent.Label(); got != "월세" {
		t.Errorf("rent label = %q", got)
	}
	if got := TypeMaintenance.Label(); got != "관리비" {
		t.Errorf("maintenance label = %q", got)
	}
}
