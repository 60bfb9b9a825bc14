// Package deadline implements the statutory deadline pipeline: the
// disclosure → publication → start → due-date chain, status classification,
// alert assembly and legal-effect analysis.
package deadline

import (
	"github.com/juristech/prazo/internal/domain/calendar"
)

// Status is the five-state deadline taxonomy.  States are mutually exclusive
// and derived solely from the remaining business-day count; no transitions
// are persisted, every evaluation is independent.
type Status string

const (
	StatusOverdue   Status = "OVERDUE"
	StatusDueToday  Status = "DUE_TODAY"
	StatusUrgent    Status = "URGENT"
	StatusAttention Status = "ATTENTION"
	StatusOnTrack   Status = "ON_TRACK"
)

// AlertLevel orders alert severity.
type AlertLevel string

const (
	AlertCritical AlertLevel = "critical"
	AlertUrgent   AlertLevel = "urgent"
	AlertHigh     AlertLevel = "high"
	AlertMedium   AlertLevel = "medium"
)

// Alert is a single actionable warning attached to a deadline result.
type Alert struct {
	Level   AlertLevel `json:"level"`
	Message string     `json:"message"`
}

// LegalContext carries the caller-supplied classification of the underlying
// action.  The engine never derives it; the case record owns it.
type LegalContext struct {
	ActionType string `json:"action_type"`
}

// Basis is an informational statutory time-bar reference.  The engine reports
// the period and citation only; elapsed-time computation needs the claim's
// origin date, which lies outside this engine.
type Basis struct {
	Years    int    `json:"years"`
	Citation string `json:"citation"`
	Note     string `json:"note,omitempty"`
}

// LegalEffect aggregates the procedural and substantive consequences of a
// computed deadline.  Preclusion is derived here from the deadline itself;
// prescription and decadence are table lookups.
type LegalEffect struct {
	PreclusionOccurred bool   `json:"preclusion_occurred"`
	PreclusionType     string `json:"preclusion_type,omitempty"`
	PrescriptionBasis  *Basis `json:"prescription_basis,omitempty"`
	DecadenceBasis     *Basis `json:"decadence_basis,omitempty"`
}

// Request is a single deadline calculation request.  At is the evaluation
// instant ("now") and must be supplied by the caller; the pipeline never
// reads the system clock, keeping identical requests reproducible.
type Request struct {
	// DisclosureDate is the ISO-8601 date the item entered the electronic
	// court diary.  Kept as a string so validation is owned by the pipeline.
	DisclosureDate string `json:"disclosure_date"`

	// LengthInDays is the statutory length in business days.  Must be > 0.
	LengthInDays int `json:"length_in_days"`

	// TribunalID selects the holiday calendar.
	TribunalID string `json:"tribunal_id"`

	// Doubled doubles the effective length (public defender, Fazenda Pública
	// and similar parties).  Whether doubling also switches the calendar is
	// the caller's configuration decision, never inferred here.
	Doubled bool `json:"doubled"`

	// LegalContext is optional; when present it drives the informational
	// prescription/decadence lookup.
	LegalContext *LegalContext `json:"legal_context,omitempty"`

	// At is the evaluation date.
	At calendar.Date `json:"at"`
}

// Result is the assembled outcome of one calculation.  Ephemeral by design:
// recomputed on demand, never persisted, so RemainingBusinessDays is always
// relative to the request's At.
type Result struct {
	DisclosureDate        calendar.Date `json:"disclosure_date"`
	PublicationDate       calendar.Date `json:"publication_date"`
	StartDate             calendar.Date `json:"start_date"`
	DueDate               calendar.Date `json:"due_date"`
	EffectiveLength       int           `json:"effective_length"`
	RemainingBusinessDays int           `json:"remaining_business_days"`
	Status                Status        `json:"status"`
	Alerts                []Alert       `json:"alerts"`
	LegalEffects          LegalEffect   `json:"legal_effects"`

	// CalendarNote is set when any calendar involved in the computation was
	// degraded (tribunal holiday source unavailable), so callers can surface
	// the data-quality warning alongside the dates.
	CalendarNote string `json:"calendar_note,omitempty"`
}

//Personal.AI order the ending
