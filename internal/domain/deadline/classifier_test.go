package deadline

import (
	"strings"
	"testing"
)

func TestClassifyStatus_Boundaries(t *testing.T) {
	cases := []struct {
		remaining int
		want      Status
	}{
		{-100, StatusOverdue},
		{-1, StatusOverdue},
		{0, StatusDueToday},
		{1, StatusUrgent},
		{3, StatusUrgent},
		{4, StatusAttention},
		{7, StatusAttention},
		{8, StatusOnTrack},
		{90, StatusOnTrack},
	}
	for _, c := range cases {
		if got := ClassifyStatus(c.remaining); got != c.want {
			t.Errorf("ClassifyStatus(%d) = %s, want %s", c.remaining, got, c.want)
		}
	}
}

func TestBuildAlerts_Levels(t *testing.T) {
	overdue := BuildAlerts(-2, StatusOverdue, LegalEffect{})
	if len(overdue) != 1 || overdue[0].Level != AlertCritical {
		t.Errorf("overdue should carry one critical alert, got %v", overdue)
	}

	today := BuildAlerts(0, StatusDueToday, LegalEffect{})
	if len(today) != 1 || today[0].Level != AlertUrgent {
		t.Errorf("due today should carry one urgent alert, got %v", today)
	}
	if !strings.Contains(today[0].Message, "last opportunity") {
		t.Errorf("unexpected due-today message %q", today[0].Message)
	}

	urgent := BuildAlerts(3, StatusUrgent, LegalEffect{})
	if len(urgent) != 1 || urgent[0].Level != AlertHigh {
		t.Errorf("urgent should carry one high alert, got %v", urgent)
	}
	if !strings.Contains(urgent[0].Message, "3") {
		t.Errorf("urgent alert must include the exact day count, got %q", urgent[0].Message)
	}

	attention := BuildAlerts(5, StatusAttention, LegalEffect{})
	if len(attention) != 1 || attention[0].Level != AlertMedium {
		t.Errorf("attention should carry one medium alert, got %v", attention)
	}

	onTrack := BuildAlerts(30, StatusOnTrack, LegalEffect{})
	if len(onTrack) != 0 {
		t.Errorf("on-track should carry no alerts, got %v", onTrack)
	}
}

func TestBuildAlerts_SingularDayCount(t *testing.T) {
	alerts := BuildAlerts(1, StatusUrgent, LegalEffect{})
	if len(alerts) != 1 || !strings.Contains(alerts[0].Message, "1 business day ") {
		t.Errorf("singular form expected for one day, got %v", alerts)
	}
}

func TestBuildAlerts_PreclusionAppended(t *testing.T) {
	effects := LegalEffect{PreclusionOccurred: true, PreclusionType: "temporal"}
	alerts := BuildAlerts(-5, StatusOverdue, effects)
	if len(alerts) != 2 {
		t.Fatalf("expected status alert plus preclusion alert, got %v", alerts)
	}
	if alerts[1].Level != AlertCritical || !strings.Contains(alerts[1].Message, "preclusion") {
		t.Errorf("second alert should flag preclusion, got %v", alerts[1])
	}
}

//Personal.AI order the ending
