package deadline

import "fmt"

// ClassifyStatus maps a remaining business-day count to the deadline status.
//
//	< 0   OVERDUE
//	== 0  DUE_TODAY
//	1–3   URGENT
//	4–7   ATTENTION
//	> 7   ON_TRACK
func ClassifyStatus(remaining int) Status {
	switch {
	case remaining < 0:
		return StatusOverdue
	case remaining == 0:
		return StatusDueToday
	case remaining <= 3:
		return StatusUrgent
	case remaining <= 7:
		return StatusAttention
	default:
		return StatusOnTrack
	}
}

// BuildAlerts assembles the alert list for a classified deadline.  ON_TRACK
// deadlines carry no status alert; a preclusion alert is appended whenever
// the legal-effect analysis found the deadline lapsed.
func BuildAlerts(remaining int, status Status, effects LegalEffect) []Alert {
	var alerts []Alert
	switch status {
	case StatusOverdue:
		alerts = append(alerts, Alert{Level: AlertCritical, Message: "deadline passed"})
	case StatusDueToday:
		alerts = append(alerts, Alert{Level: AlertUrgent, Message: "last opportunity to file"})
	case StatusUrgent:
		unit := "days"
		if remaining == 1 {
			unit = "day"
		}
		alerts = append(alerts, Alert{
			Level:   AlertHigh,
			Message: fmt.Sprintf("%d business %s remaining", remaining, unit),
		})
	case StatusAttention:
		alerts = append(alerts, Alert{Level: AlertMedium, Message: "deadline approaching"})
	}
	if effects.PreclusionOccurred {
		alerts = append(alerts, Alert{
			Level:   AlertCritical,
			Message: "temporal preclusion: right to perform the procedural act has lapsed",
		})
	}
	return alerts
}

//Personal.AI order the ending
