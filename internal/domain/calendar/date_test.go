package calendar

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/juristech/prazo/pkg/errors"
)

func TestParseDate_RoundTrip(t *testing.T) {
	for _, s := range []string{"2025-01-06", "2024-02-29", "1999-12-31"} {
		d, err := ParseDate(s)
		if err != nil {
			t.Fatalf("ParseDate(%q): %v", s, err)
		}
		if d.String() != s {
			t.Errorf("round trip broken: %q -> %q", s, d.String())
		}
	}
}

func TestParseDate_Invalid(t *testing.T) {
	for _, s := range []string{"", "2025-13-40", "06/01/2025", "yesterday", "2025-02-30"} {
		_, err := ParseDate(s)
		if err == nil {
			t.Errorf("ParseDate(%q) should fail", s)
			continue
		}
		if !errors.IsInvalidDate(err) {
			t.Errorf("ParseDate(%q) should carry the invalid-date code, got %v", s, err)
		}
	}
}

func TestDate_Format(t *testing.T) {
	d := NewDate(2025, time.January, 6)
	if d.Format() != "06/01/2025" {
		t.Errorf("display format wrong: %q", d.Format())
	}
	if d.String() != "2025-01-06" {
		t.Errorf("ISO format wrong: %q", d.String())
	}
}

func TestDate_Arithmetic(t *testing.T) {
	d := NewDate(2025, time.January, 31)
	next := d.AddDays(1)
	if next.String() != "2025-02-01" {
		t.Errorf("AddDays month rollover: %s", next)
	}
	if !d.Before(next) || !next.After(d) {
		t.Error("ordering broken")
	}
	if d.DaysUntil(next) != 1 || next.DaysUntil(d) != -1 {
		t.Error("DaysUntil broken")
	}
	if !d.AddDays(0).Equal(d) {
		t.Error("AddDays(0) must be identity")
	}
}

func TestDate_Weekend(t *testing.T) {
	sat := NewDate(2025, time.January, 4)
	sun := NewDate(2025, time.January, 5)
	mon := NewDate(2025, time.January, 6)
	if !sat.IsWeekend() || !sun.IsWeekend() {
		t.Error("Sat/Sun must be weekend")
	}
	if mon.IsWeekend() {
		t.Error("Monday is not a weekend")
	}
	if mon.Weekday() != time.Monday {
		t.Errorf("2025-01-06 is a Monday, got %v", mon.Weekday())
	}
}

func TestDate_JSON(t *testing.T) {
	d := NewDate(2025, time.April, 21)
	raw, err := json.Marshal(d)
	if err != nil {
		t.Fatal(err)
	}
	if string(raw) != `"2025-04-21"` {
		t.Errorf("unexpected JSON %s", raw)
	}
	var back Date
	if err := json.Unmarshal(raw, &back); err != nil {
		t.Fatal(err)
	}
	if !back.Equal(d) {
		t.Errorf("JSON round trip: %s != %s", back, d)
	}
}

func TestDateOf_TruncatesTime(t *testing.T) {
	instant := time.Date(2025, time.March, 15, 23, 59, 1, 0, time.UTC)
	d := DateOf(instant)
	if d.String() != "2025-03-15" {
		t.Errorf("DateOf should keep the civil date, got %s", d)
	}
	if !d.Equal(NewDate(2025, time.March, 15)) {
		t.Error("DateOf and NewDate must agree")
	}
}

//Personal.AI order the ending
