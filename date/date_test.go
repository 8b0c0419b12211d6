package date

import (
	"testing"
	"time"
)

func TestParse(t *testing.T) {
	testCases := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "2025-03-05", want: "2025-03-05"},
		{in: "2025-3-5", want: "2025-03-05"}, // lenient read format
		{in: "2025-12-31", want: "2025-12-31"},
		{in: "not-a-date", wantErr: true},
		{in: "2025/03/05", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tc := range testCases {
		got, err := Parse(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Errorf("Parse(%q) error = nil, want error", tc.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("Parse(%q) error = %v", tc.in, err)
			continue
		}
		if got.String() != tc.want {
			t.Errorf("Parse(%q) = %s, want %s", tc.in, got, tc.want)
		}
	}
}

func TestDate_Ordering(t *testing.T) {
	a := New(2025, time.March, 1)
	b := New(2025, time.March, 2)
	if !a.Before(b) {
		t.Errorf("%s.Before(%s) = false, want true", a, b)
	}
	if !b.After(a) {
		t.Errorf("%s.After(%s) = false, want true", b, a)
	}
	if a.Before(a) || a.After(a) {
		t.Errorf("a date compares before or after itself")
	}
}

func TestDate_Add(t *testing.T) {
	d := New(2025, time.February, 28)
	if got := d.Add(1).String(); got != "2025-03-01" {
		t.Errorf("Add(1) = %s, want 2025-03-01", got)
	}
	if got := d.Add(-28).String(); got != "2025-01-31" {
		t.Errorf("Add(-28) = %s, want 2025-01-31", got)
	}
}

func TestDate_IsZero(t *testing.T) {
	var zero Date
	if !zero.IsZero() {
		t.Errorf("zero value IsZero() = false")
	}
	if Today().IsZero() {
		t.Errorf("Today().IsZero() = true")
	}
}

// The string form is ISO-8601, so lexicographic order matches calendar
// order. The sales report relies on this.
func TestDate_StringOrderMatchesCalendarOrder(t *testing.T) {
	d := New(2025, time.January, 1)
	for i := 0; i < 400; i++ {
		next := d.Add(1)
		if !(d.String() < next.String()) {
			t.Fatalf("%s not lexicographically before %s", d, next)
		}
		d = next
	}
}
