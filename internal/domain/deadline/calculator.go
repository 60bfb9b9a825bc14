// internal/domain/deadline/calculator.go
//
// Functional positioning: the three-hop statutory pipeline.  Publication is
// the next business day after disclosure, the countable period starts the
// next business day after publication, and the due date is the effective
// length in business days after the start.
//
// Dependencies: internal/domain/calendar (store + business-day arithmetic),
// pkg/errors, the logging interface.
package deadline

import (
	"context"
	"fmt"
	"strings"

	"github.com/juristech/prazo/internal/domain/calendar"
	"github.com/juristech/prazo/internal/infrastructure/monitoring/logging"
	"github.com/juristech/prazo/pkg/errors"
)

// Calculator computes deadline results.  Stateless between calls: an
// identical request with an identical At always yields an identical Result.
type Calculator struct {
	store  *calendar.CalendarStore
	logger logging.Logger
}

// NewCalculator constructs a Calculator over the given calendar store.
func NewCalculator(store *calendar.CalendarStore, logger logging.Logger) *Calculator {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	return &Calculator{store: store, logger: logger.Named("deadline")}
}

func (c *Calculator) validate(req Request) (calendar.Date, error) {
	disclosure, err := calendar.ParseDate(req.DisclosureDate)
	if err != nil {
		return calendar.Date{}, err
	}
	if req.LengthInDays <= 0 {
		return calendar.Date{}, errors.New(errors.ErrCodeInvalidDeadlineSpan,
			fmt.Sprintf("deadline length must be positive, got %d", req.LengthInDays))
	}
	if req.At.IsZero() {
		return calendar.Date{}, errors.NewValidationOp("deadline.calculate",
			"evaluation date (at) is required")
	}
	if req.TribunalID == "" {
		return calendar.Date{}, errors.NewValidationOp("deadline.calculate",
			"tribunal id is required")
	}
	return disclosure, nil
}

// Calculate runs the full pipeline for one request.  It either returns a
// complete Result or an error; there is no partial Result.
func (c *Calculator) Calculate(ctx context.Context, req Request) (*Result, error) {
	disclosure, err := c.validate(req)
	if err != nil {
		return nil, err
	}

	calc := calendar.NewCalc(c.store, req.TribunalID)

	publication, err := calc.NextBusinessDay(ctx, disclosure)
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeUnknown, "publication date resolution failed")
	}
	start, err := calc.NextBusinessDay(ctx, publication)
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeUnknown, "start date resolution failed")
	}

	effLen := req.LengthInDays
	if req.Doubled {
		effLen *= 2
	}

	due, err := calc.AddBusinessDays(ctx, start, effLen)
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeUnknown, "due date resolution failed")
	}

	remaining, err := c.remaining(ctx, calc, req.At, due)
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeUnknown, "remaining day count failed")
	}

	status := ClassifyStatus(remaining)
	effects := AnalyzeLegalEffects(remaining, req.LegalContext)
	alerts := BuildAlerts(remaining, status, effects)

	result := &Result{
		DisclosureDate:        disclosure,
		PublicationDate:       publication,
		StartDate:             start,
		DueDate:               due,
		EffectiveLength:       effLen,
		RemainingBusinessDays: remaining,
		Status:                status,
		Alerts:                alerts,
		LegalEffects:          effects,
		CalendarNote:          c.calendarNote(ctx, req.TribunalID, disclosure, due),
	}

	c.logger.Debug("deadline calculated",
		logging.String("tribunal", req.TribunalID),
		logging.String("disclosure", disclosure.String()),
		logging.String("due", due.String()),
		logging.Int("remaining", remaining),
		logging.String("status", string(status)))
	return result, nil
}

// remaining counts business days from at to due.  When the evaluation date is
// past due the count runs the other way and is negated, so overdue deadlines
// surface as negative values rather than clamping to zero.
func (c *Calculator) remaining(ctx context.Context, calc *calendar.Calc, at, due calendar.Date) (int, error) {
	if at.After(due) {
		n, err := calc.BusinessDaysBetween(ctx, due, at)
		if err != nil {
			return 0, err
		}
		return -n, nil
	}
	return calc.BusinessDaysBetween(ctx, at, due)
}

// calendarNote collects degradation reasons from every calendar year the
// computation touched.  Empty when all calendars were complete.
func (c *Calculator) calendarNote(ctx context.Context, tribunalID string, disclosure, due calendar.Date) string {
	var notes []string
	seen := map[int]struct{}{}
	for _, year := range []int{disclosure.Year(), due.Year()} {
		if _, dup := seen[year]; dup {
			continue
		}
		seen[year] = struct{}{}
		cal, err := c.store.Holidays(ctx, tribunalID, year)
		if err != nil {
			continue
		}
		if cal.Completeness.IsDegraded() {
			notes = append(notes, fmt.Sprintf("calendar %d degraded: %s", year, cal.Completeness.Reason))
		}
	}
	return strings.Join(notes, "; ")
}

//Personal.AI order the ending
