// internal/application/caseflow/service.go
//
// Functional positioning: application service over the deadline domain.
// BuildMatrix runs the rule scan plus deadline pipeline per movement;
// BuildChronology merges the case's record streams into one sortable
// timeline.  Independent cases may run through one Service concurrently;
// the service keeps no per-case state.
//
// Dependencies: internal/domain/deadline (calculator, rule tables),
// internal/domain/calendar (dates), pkg/errors, pkg/types/common, logging.
package caseflow

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/juristech/prazo/internal/domain/calendar"
	"github.com/juristech/prazo/internal/domain/deadline"
	"github.com/juristech/prazo/internal/infrastructure/monitoring/logging"
	"github.com/juristech/prazo/pkg/errors"
	"github.com/juristech/prazo/pkg/types/common"
)

// Service is the case-level aggregation contract.
type Service interface {
	// BuildMatrix scans the case's movements against the area's rule table
	// and computes a deadline for every matched movement.  Unparseable
	// movement dates become soft errors; the call still succeeds.
	BuildMatrix(ctx context.Context, req MatrixRequest) (*DeadlineMatrix, error)

	// BuildChronology merges movements, documents and decisions into one
	// categorized, sorted timeline.
	BuildChronology(ctx context.Context, req ChronologyRequest) (*Chronology, error)
}

// Metrics receives service timing events; the prometheus adapter implements
// it.
type Metrics interface {
	ObserveMatrixBuild(d time.Duration)
	ObserveChronologyBuild(d time.Duration)
}

// NopMetrics discards all events.
type NopMetrics struct{}

func (NopMetrics) ObserveMatrixBuild(time.Duration)     {}
func (NopMetrics) ObserveChronologyBuild(time.Duration) {}

type serviceImpl struct {
	calculator *deadline.Calculator
	logger     logging.Logger
	metrics    Metrics
}

// Option customizes a Service.
type Option func(*serviceImpl)

// WithMetrics attaches a metrics sink.
func WithMetrics(m Metrics) Option { return func(s *serviceImpl) { s.metrics = m } }

// NewService constructs the caseflow service.
func NewService(calculator *deadline.Calculator, logger logging.Logger, opts ...Option) Service {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	s := &serviceImpl{
		calculator: calculator,
		logger:     logger.Named("caseflow"),
		metrics:    NopMetrics{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ─────────────────────────────────────────────────────────────────────────────
// Deadline matrix
// ─────────────────────────────────────────────────────────────────────────────

// dueSoonWindow is the inclusive remaining-day range for the DueSoon
// partition.
const dueSoonWindow = 5

func (s *serviceImpl) BuildMatrix(ctx context.Context, req MatrixRequest) (*DeadlineMatrix, error) {
	started := time.Now()
	defer func() { s.metrics.ObserveMatrixBuild(time.Since(started)) }()

	if req.At.IsZero() {
		return nil, errors.NewValidationOp("matrix.build", "evaluation date (at) is required")
	}
	rules, err := deadline.RulesForArea(req.Area)
	if err != nil {
		return nil, err
	}

	matrix := &DeadlineMatrix{
		Area:       req.Area,
		TribunalID: req.TribunalID,
		At:         req.At,
	}

	for _, movement := range req.Movements {
		rule, ok := deadline.MatchRule(rules, deadline.NormalizeText(movement.RawText))
		if !ok {
			// Not every movement starts a deadline; silence is correct here.
			continue
		}
		result, err := s.calculator.Calculate(ctx, deadline.Request{
			DisclosureDate: movement.Date,
			LengthInDays:   rule.LengthInDays,
			TribunalID:     req.TribunalID,
			LegalContext:   &deadline.LegalContext{ActionType: rule.LegalCategory},
			At:             req.At,
		})
		if err != nil {
			if errors.IsInvalidDate(err) {
				matrix.SoftErrors = append(matrix.SoftErrors, common.ErrorDetail{
					ID:      common.NewID(),
					Code:    errors.GetCode(err).String(),
					Message: err.Error(),
					Details: map[string]interface{}{"movement": movement.RawText, "date": movement.Date},
				})
				continue
			}
			// Anything else (unknown tribunal, computus range) poisons the
			// whole batch.
			return nil, err
		}
		matrix.Entries = append(matrix.Entries, MatrixEntry{
			RuleMatched:    rule,
			Result:         result,
			SourceMovement: movement,
		})
	}

	matrix.Alerts = partitionAlerts(matrix.Entries)

	s.logger.Info("deadline matrix built",
		logging.String("area", req.Area),
		logging.String("tribunal", req.TribunalID),
		logging.Int("movements", len(req.Movements)),
		logging.Int("entries", len(matrix.Entries)),
		logging.Int("overdue", len(matrix.Alerts.Overdue)),
		logging.Int("due_soon", len(matrix.Alerts.DueSoon)),
		logging.Int("soft_errors", len(matrix.SoftErrors)))
	return matrix, nil
}

// partitionAlerts splits entries into the Overdue and DueSoon buckets, each
// sorted ascending by due date.
func partitionAlerts(entries []MatrixEntry) MatrixAlerts {
	var alerts MatrixAlerts
	for _, e := range entries {
		switch {
		case e.Result.Status == deadline.StatusOverdue:
			alerts.Overdue = append(alerts.Overdue, e)
		case e.Result.RemainingBusinessDays >= 0 && e.Result.RemainingBusinessDays <= dueSoonWindow:
			alerts.DueSoon = append(alerts.DueSoon, e)
		}
	}
	byDue := func(list []MatrixEntry) {
		sort.SliceStable(list, func(i, j int) bool {
			return list[i].Result.DueDate.Before(list[j].Result.DueDate)
		})
	}
	byDue(alerts.Overdue)
	byDue(alerts.DueSoon)
	return alerts
}

// ─────────────────────────────────────────────────────────────────────────────
// Chronology
// ─────────────────────────────────────────────────────────────────────────────

// categoryRule is one keyword bucket of the timeline categorizer.
type categoryRule struct {
	name       string
	importance string
	keywords   []string
}

// Scanned in order, first match wins.  The keyword sets overlap, so the order
// is load-bearing: transit phrases ("transitou em julgado") contain decision
// verbs, enforcement phrases ("cumprimento de sentença") contain "sentença",
// and embargos belong to the appeal bucket even when the text also names the
// decision under attack.  Buckets therefore run most specific to most
// general, with decision and document last among the keyed categories.
var categoryRules = []categoryRule{
	{"transit", "high", []string{"trânsito em julgado", "transitou em julgado"}},
	{"appeal", "medium", []string{"recurso", "apelação", "agravo", "embargos"}},
	{"enforcement", "medium", []string{"penhora", "execução", "cumprimento de sentença", "bloqueio"}},
	{"hearing", "medium", []string{"audiência", "sessão de julgamento"}},
	{"summons", "medium", []string{"citação", "intimação", "notificação"}},
	{"decision", "high", []string{"sentença", "decisão", "acórdão", "julgou", "deferiu", "indeferiu"}},
	{"document", "normal", []string{"juntada", "petição", "documento", "manifestação"}},
}

// categorize assigns the first matching category to a description; anything
// unmatched is "general".
func categorize(description string) (category, importance string) {
	norm := deadline.NormalizeText(description)
	for _, cr := range categoryRules {
		for _, kw := range cr.keywords {
			if strings.Contains(norm, kw) {
				return cr.name, cr.importance
			}
		}
	}
	return "general", ""
}

func (s *serviceImpl) BuildChronology(_ context.Context, req ChronologyRequest) (*Chronology, error) {
	started := time.Now()
	defer func() { s.metrics.ObserveChronologyBuild(time.Since(started)) }()

	chron := &Chronology{}

	merge := func(records []CaseRecord, typ EventType) int {
		included := 0
		for _, r := range records {
			d, err := calendar.ParseDate(r.Date)
			if err != nil {
				chron.SoftErrors = append(chron.SoftErrors, common.ErrorDetail{
					ID:      common.NewID(),
					Code:    errors.GetCode(err).String(),
					Message: err.Error(),
					Details: map[string]interface{}{"type": string(typ), "description": r.Description, "date": r.Date},
				})
				continue
			}
			category, importance := categorize(r.Description)
			chron.Events = append(chron.Events, TimelineEvent{
				Date:        d,
				Type:        typ,
				Description: r.Description,
				Category:    category,
				Importance:  importance,
			})
			included++
		}
		return included
	}

	chron.Summary.TotalMovements = merge(req.Case.Movements, EventMovement)
	chron.Summary.TotalDocuments = merge(req.Case.Documents, EventDocument)
	chron.Summary.TotalDecisions = merge(req.Case.Decisions, EventDecision)

	// A case where every date is unparseable still returns partial success:
	// the failures are all per-record, and each is in SoftErrors.
	if len(chron.Events) > 0 {
		desc := req.SortOrder == common.SortDesc
		sort.SliceStable(chron.Events, func(i, j int) bool {
			if desc {
				return chron.Events[i].Date.After(chron.Events[j].Date)
			}
			return chron.Events[i].Date.Before(chron.Events[j].Date)
		})

		first, last := chron.Events[0].Date, chron.Events[len(chron.Events)-1].Date
		if desc {
			first, last = last, first
		}
		chron.Summary.DurationDays = first.DaysUntil(last)

		if req.GroupByMonth {
			chron.ByMonth = groupByMonth(chron.Events)
		}
	}

	s.logger.Info("chronology built",
		logging.Int("events", len(chron.Events)),
		logging.Int("duration_days", chron.Summary.DurationDays),
		logging.Int("soft_errors", len(chron.SoftErrors)))
	return chron, nil
}

// groupByMonth buckets events by "YYYY-MM", preserving the already-applied
// sort order both across and within groups.
func groupByMonth(events []TimelineEvent) []MonthGroup {
	var groups []MonthGroup
	index := map[string]int{}
	for _, e := range events {
		key := fmt.Sprintf("%04d-%02d", e.Date.Year(), int(e.Date.Month()))
		i, ok := index[key]
		if !ok {
			i = len(groups)
			index[key] = i
			groups = append(groups, MonthGroup{Month: key})
		}
		groups[i].Events = append(groups[i].Events, e)
	}
	return groups
}

//Personal.AI order the ending
