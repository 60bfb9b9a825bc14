package calendar

import (
	"context"
)

// Calc performs business-day arithmetic for one tribunal over the calendars
// served by a CalendarStore.  A business day is a day that is neither a
// weekend day nor a registered holiday for the tribunal.
//
// Convention: AddBusinessDays never counts the start date itself, and
// BusinessDaysBetween counts the half-open-at-the-left interval (start, end].
// The two agree so that BusinessDaysBetween(s, AddBusinessDays(s, n)) == n
// for every start date, business day or not.
type Calc struct {
	store      *CalendarStore
	tribunalID string
}

// NewCalc binds a calculator to a store and tribunal.
func NewCalc(store *CalendarStore, tribunalID string) *Calc {
	return &Calc{store: store, tribunalID: tribunalID}
}

// TribunalID returns the tribunal this calculator is bound to.
func (c *Calc) TribunalID() string { return c.tribunalID }

// Calendar returns the tribunal calendar covering d's year.
func (c *Calc) Calendar(ctx context.Context, year int) (*TribunalCalendar, error) {
	return c.store.Holidays(ctx, c.tribunalID, year)
}

// IsBusinessDay reports whether d is a business day for the tribunal.
func (c *Calc) IsBusinessDay(ctx context.Context, d Date) (bool, error) {
	if d.IsWeekend() {
		return false, nil
	}
	cal, err := c.store.Holidays(ctx, c.tribunalID, d.Year())
	if err != nil {
		return false, err
	}
	return !cal.IsHoliday(d), nil
}

// NextBusinessDay returns the first business day strictly after d.  It always
// advances at least one day even when d itself is a business day; the
// publication and start-date chain depends on this strict-next semantics.
func (c *Calc) NextBusinessDay(ctx context.Context, d Date) (Date, error) {
	cur := d
	for {
		cur = cur.AddDays(1)
		ok, err := c.IsBusinessDay(ctx, cur)
		if err != nil {
			return Date{}, err
		}
		if ok {
			return cur, nil
		}
	}
}

// AddBusinessDays returns the date reached by counting n business days
// strictly after start.  The start date is never counted, so the result is a
// business day whenever n > 0.  For n <= 0 the start date is returned
// unchanged.
func (c *Calc) AddBusinessDays(ctx context.Context, start Date, n int) (Date, error) {
	if n <= 0 {
		return start, nil
	}
	cur := start
	counted := 0
	for counted < n {
		cur = cur.AddDays(1)
		ok, err := c.IsBusinessDay(ctx, cur)
		if err != nil {
			return Date{}, err
		}
		if ok {
			counted++
		}
	}
	return cur, nil
}

// BusinessDaysBetween counts the business days in (start, end], excluding
// start and including end.  Returns 0 when end is on or before start.
func (c *Calc) BusinessDaysBetween(ctx context.Context, start, end Date) (int, error) {
	if !end.After(start) {
		return 0, nil
	}
	count := 0
	for cur := start.AddDays(1); !cur.After(end); cur = cur.AddDays(1) {
		ok, err := c.IsBusinessDay(ctx, cur)
		if err != nil {
			return 0, err
		}
		if ok {
			count++
		}
	}
	return count, nil
}

//Personal.AI order the ending
