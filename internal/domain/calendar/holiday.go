package calendar

import (
	"fmt"
	"sort"
	"time"

	"github.com/juristech/prazo/pkg/errors"
)

// ─────────────────────────────────────────────────────────────────────────────
// Holiday
// ─────────────────────────────────────────────────────────────────────────────

// HolidayScope classifies the origin of a holiday entry.
type HolidayScope string

const (
	ScopeNational  HolidayScope = "national"
	ScopeMovable   HolidayScope = "movable"
	ScopeTribunal  HolidayScope = "tribunal"
	ScopeMunicipal HolidayScope = "municipal"
)

// Holiday is a single non-business day with its origin.
type Holiday struct {
	Date  Date         `json:"date"`
	Name  string       `json:"name"`
	Scope HolidayScope `json:"scope"`
}

// ─────────────────────────────────────────────────────────────────────────────
// Fixed national holidays
// ─────────────────────────────────────────────────────────────────────────────

// fixedHoliday is a literal (month, day) national holiday.
type fixedHoliday struct {
	month time.Month
	day   int
	name  string
}

// The nine Brazilian fixed national holidays.
var fixedNational = []fixedHoliday{
	{time.January, 1, "Confraternização Universal"},
	{time.April, 21, "Tiradentes"},
	{time.May, 1, "Dia do Trabalho"},
	{time.September, 7, "Independência do Brasil"},
	{time.October, 12, "Nossa Senhora Aparecida"},
	{time.November, 2, "Finados"},
	{time.November, 15, "Proclamação da República"},
	{time.November, 20, "Dia da Consciência Negra"},
	{time.December, 25, "Natal"},
}

// FixedNationalHolidays returns the nine fixed Brazilian national holidays
// for the given year, in calendar order.
func FixedNationalHolidays(year int) []Holiday {
	out := make([]Holiday, 0, len(fixedNational))
	for _, f := range fixedNational {
		out = append(out, Holiday{
			Date:  NewDate(year, f.month, f.day),
			Name:  f.name,
			Scope: ScopeNational,
		})
	}
	return out
}

// ─────────────────────────────────────────────────────────────────────────────
// Movable holidays (computus)
// ─────────────────────────────────────────────────────────────────────────────

// The anonymous Gregorian computus is valid for the Gregorian calendar only.
const (
	computusMinYear = 1583
	computusMaxYear = 4099
)

// EasterSunday computes the date of Easter Sunday for a Gregorian year using
// the Meeus/Jones/Butcher (anonymous Gregorian) algorithm.  The computation is
// pure integer arithmetic; the only failure mode is a year outside the
// algorithm's validity range.
func EasterSunday(year int) (Date, error) {
	if year < computusMinYear || year > computusMaxYear {
		return Date{}, errors.New(errors.ErrCodeComputusYearOutOfRange,
			fmt.Sprintf("year %d outside computus range [%d, %d]", year, computusMinYear, computusMaxYear))
	}
	a := year % 19
	b := year / 100
	c := year % 100
	d := b / 4
	e := b % 4
	f := (b + 8) / 25
	g := (b - f + 1) / 3
	h := (19*a + b - d - g + 15) % 30
	i := c / 4
	k := c % 4
	l := (32 + 2*e + 2*i - h - k) % 7
	m := (a + 11*h + 22*l) / 451
	month := (h + l - 7*m + 114) / 31
	day := (h+l-7*m+114)%31 + 1
	return NewDate(year, time.Month(month), day), nil
}

// MovableHolidays derives the three Easter-dependent Brazilian holidays for
// the given year: Carnival (Easter − 47 days), Good Friday (Easter − 2 days)
// and Corpus Christi (Easter + 60 days).
func MovableHolidays(year int) ([]Holiday, error) {
	easter, err := EasterSunday(year)
	if err != nil {
		return nil, err
	}
	return []Holiday{
		{Date: easter.AddDays(-47), Name: "Carnaval", Scope: ScopeMovable},
		{Date: easter.AddDays(-2), Name: "Sexta-feira Santa", Scope: ScopeMovable},
		{Date: easter.AddDays(60), Name: "Corpus Christi", Scope: ScopeMovable},
	}, nil
}

// ─────────────────────────────────────────────────────────────────────────────
// TribunalCalendar
// ─────────────────────────────────────────────────────────────────────────────

// CompletenessState tags whether a calendar includes the tribunal-specific
// holiday source or had to fall back to national+movable only.
type CompletenessState string

const (
	CalendarComplete CompletenessState = "complete"
	CalendarDegraded CompletenessState = "degraded"
)

// Completeness carries the tag plus the degradation reason when applicable.
type Completeness struct {
	State  CompletenessState `json:"state"`
	Reason string            `json:"reason,omitempty"`
}

// IsDegraded reports whether the calendar was built without its tribunal
// holiday source.
func (c Completeness) IsDegraded() bool { return c.State == CalendarDegraded }

// TribunalCalendar is the merged, deduplicated holiday set for one
// (tribunal, year) pair.  Immutable once built; the store replaces the whole
// value on expiry.
type TribunalCalendar struct {
	TribunalID   string        `json:"tribunal_id"`
	Year         int           `json:"year"`
	Holidays     []Holiday     `json:"holidays"`
	FetchedAt    time.Time     `json:"fetched_at"`
	TTL          time.Duration `json:"ttl"`
	Completeness Completeness  `json:"completeness"`

	byDate map[Date]struct{}
}

// newTribunalCalendar merges the given holiday lists, deduplicating by date
// (first occurrence wins, so national entries shadow tribunal duplicates when
// passed first) and sorting ascending.
func newTribunalCalendar(tribunalID string, year int, fetchedAt time.Time, ttl time.Duration, completeness Completeness, lists ...[]Holiday) *TribunalCalendar {
	byDate := make(map[Date]struct{})
	var merged []Holiday
	for _, list := range lists {
		for _, h := range list {
			if _, dup := byDate[h.Date]; dup {
				continue
			}
			byDate[h.Date] = struct{}{}
			merged = append(merged, h)
		}
	}
	sort.Slice(merged, func(i, j int) bool { return merged[i].Date.Before(merged[j].Date) })
	return &TribunalCalendar{
		TribunalID:   tribunalID,
		Year:         year,
		Holidays:     merged,
		FetchedAt:    fetchedAt,
		TTL:          ttl,
		Completeness: completeness,
		byDate:       byDate,
	}
}

// buildIndex rebuilds the date index.  Called once after a calendar is decoded
// from the shared cache, before the value is published to readers.
func (c *TribunalCalendar) buildIndex() {
	c.byDate = make(map[Date]struct{}, len(c.Holidays))
	for _, h := range c.Holidays {
		c.byDate[h.Date] = struct{}{}
	}
}

// IsHoliday reports whether d is a registered holiday in this calendar.
func (c *TribunalCalendar) IsHoliday(d Date) bool {
	if c.byDate != nil {
		_, ok := c.byDate[d]
		return ok
	}
	for _, h := range c.Holidays {
		if h.Date.Equal(d) {
			return true
		}
	}
	return false
}

// Expired reports whether the calendar's TTL has elapsed at the given instant.
func (c *TribunalCalendar) Expired(now time.Time) bool {
	return now.Sub(c.FetchedAt) >= c.TTL
}

//Personal.AI order the ending
