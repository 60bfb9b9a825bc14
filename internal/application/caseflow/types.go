// Package caseflow aggregates per-case deadline and timeline views: the
// deadline matrix over a case's movement stream and the merged chronology of
// movements, documents and decisions.
package caseflow

import (
	"github.com/juristech/prazo/internal/domain/calendar"
	"github.com/juristech/prazo/internal/domain/deadline"
	"github.com/juristech/prazo/pkg/types/common"
)

// MovementEvent is one entry of a case's movement stream as delivered by the
// case-processing collaborator.  Date stays a raw string because upstream
// data is not guaranteed parseable; the builder turns bad dates into soft
// errors instead of failing the batch.
type MovementEvent struct {
	Date    string `json:"date"`
	RawText string `json:"raw_text"`
}

// MatrixRequest is the input to BuildMatrix.
type MatrixRequest struct {
	Movements  []MovementEvent `json:"movements"`
	Area       string          `json:"area"`
	TribunalID string          `json:"tribunal_id"`

	// At is the evaluation date applied to every computed deadline.
	At calendar.Date `json:"at"`
}

// MatrixEntry links a matched rule, its computed deadline and the movement
// that triggered it.  At most one entry exists per movement.
type MatrixEntry struct {
	RuleMatched    deadline.Rule    `json:"rule_matched"`
	Result         *deadline.Result `json:"result"`
	SourceMovement MovementEvent    `json:"source_movement"`
}

// MatrixAlerts partitions the entries that need attention.  Both slices are
// sorted ascending by due date.
type MatrixAlerts struct {
	// Overdue holds entries whose status is OVERDUE.
	Overdue []MatrixEntry `json:"overdue"`

	// DueSoon holds entries with 0 to 5 remaining business days.
	DueSoon []MatrixEntry `json:"due_soon"`
}

// DeadlineMatrix is the aggregate result of one BuildMatrix call.
type DeadlineMatrix struct {
	Area       string               `json:"area"`
	TribunalID string               `json:"tribunal_id"`
	At         calendar.Date        `json:"at"`
	Entries    []MatrixEntry        `json:"entries"`
	Alerts     MatrixAlerts         `json:"alerts"`
	SoftErrors []common.ErrorDetail `json:"soft_errors,omitempty"`
}

// CaseRecord is the minimal shape shared by movements, documents and
// decisions in the chronology input.
type CaseRecord struct {
	Date        string `json:"date"`
	Description string `json:"description"`
}

// CaseData bundles the three record streams of one case.
type CaseData struct {
	Movements []CaseRecord `json:"movements"`
	Documents []CaseRecord `json:"documents"`
	Decisions []CaseRecord `json:"decisions"`
}

// ChronologyRequest is the input to BuildChronology.
type ChronologyRequest struct {
	Case         CaseData         `json:"case"`
	SortOrder    common.SortOrder `json:"sort_order,omitempty"`
	GroupByMonth bool             `json:"group_by_month,omitempty"`
}

// EventType tags the origin stream of a timeline event.
type EventType string

const (
	EventMovement EventType = "movement"
	EventDocument EventType = "document"
	EventDecision EventType = "decision"
)

// TimelineEvent is one dated entry of the merged chronology.
type TimelineEvent struct {
	Date        calendar.Date `json:"date"`
	Type        EventType     `json:"type"`
	Description string        `json:"description"`
	Category    string        `json:"category"`
	Importance  string        `json:"importance,omitempty"`
}

// Summary aggregates counts over the included (parseable) events.
type Summary struct {
	TotalMovements int `json:"total_movements"`
	TotalDocuments int `json:"total_documents"`
	TotalDecisions int `json:"total_decisions"`

	// DurationDays is the calendar-day span between the earliest and latest
	// event.
	DurationDays int `json:"duration_days"`
}

// MonthGroup is one "YYYY-MM" bucket; groups and the events inside them keep
// the already-applied sort order.
type MonthGroup struct {
	Month  string          `json:"month"`
	Events []TimelineEvent `json:"events"`
}

// Chronology is the aggregate result of one BuildChronology call.
type Chronology struct {
	Events     []TimelineEvent      `json:"events"`
	Summary    Summary              `json:"summary"`
	ByMonth    []MonthGroup         `json:"by_month,omitempty"`
	SoftErrors []common.ErrorDetail `json:"soft_errors,omitempty"`
}

//Personal.AI order the ending
