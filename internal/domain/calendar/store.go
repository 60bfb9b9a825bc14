package calendar

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/juristech/prazo/internal/infrastructure/monitoring/logging"
	"github.com/juristech/prazo/pkg/errors"
)

// ─────────────────────────────────────────────────────────────────────────────
// Ports
// ─────────────────────────────────────────────────────────────────────────────

// Clock abstracts wall-clock access so tests can freeze time.
type Clock interface {
	Now() time.Time
}

// SystemClock is the production Clock.
type SystemClock struct{}

// Now returns the current wall-clock time.
func (SystemClock) Now() time.Time { return time.Now() }

// HolidaySource fetches tribunal-specific holidays from an external registry.
// Implementations must treat an empty result as valid; only transport or
// parse failures return an error.
type HolidaySource interface {
	FetchTribunalHolidays(ctx context.Context, tribunalID string, year int) ([]Holiday, error)
}

// NopHolidaySource always returns an empty holiday list.  Used when no
// registry is configured; the resulting calendars stay complete because the
// source answered (with nothing) rather than failed.
type NopHolidaySource struct{}

func (NopHolidaySource) FetchTribunalHolidays(_ context.Context, _ string, _ int) ([]Holiday, error) {
	return nil, nil
}

// StaticHolidaySource serves holidays from an in-memory table keyed by
// tribunal ID, typically seeded from the configuration file.
type StaticHolidaySource struct {
	byTribunal map[string][]Holiday
}

// NewStaticHolidaySource builds a source over the given table.  The map is
// not copied; callers must not mutate it afterwards.
func NewStaticHolidaySource(byTribunal map[string][]Holiday) *StaticHolidaySource {
	return &StaticHolidaySource{byTribunal: byTribunal}
}

func (s *StaticHolidaySource) FetchTribunalHolidays(_ context.Context, tribunalID string, year int) ([]Holiday, error) {
	var out []Holiday
	for _, h := range s.byTribunal[tribunalID] {
		if h.Date.Year() == year {
			out = append(out, h)
		}
	}
	return out, nil
}

// CachePort is an optional shared second-level cache for built calendars,
// letting multiple engine processes reuse one registry fetch.
type CachePort interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// Metrics receives calendar store events.  The prometheus adapter implements
// it; tests and metric-less deployments use NopMetrics.
type Metrics interface {
	CalendarCacheHit(tribunalID string)
	CalendarCacheMiss(tribunalID string)
	CalendarDegradedBuild(tribunalID string)
	ObserveHolidayFetch(tribunalID string, d time.Duration)
}

// NopMetrics discards all events.
type NopMetrics struct{}

func (NopMetrics) CalendarCacheHit(string)                   {}
func (NopMetrics) CalendarCacheMiss(string)                  {}
func (NopMetrics) CalendarDegradedBuild(string)              {}
func (NopMetrics) ObserveHolidayFetch(string, time.Duration) {}

// ─────────────────────────────────────────────────────────────────────────────
// CalendarStore
// ─────────────────────────────────────────────────────────────────────────────

// DefaultTTL is the calendar freshness window.
const DefaultTTL = 24 * time.Hour

// DefaultFetchTimeout bounds a single registry fetch.
const DefaultFetchTimeout = 5 * time.Second

// StoreConfig carries the store's construction parameters.
type StoreConfig struct {
	// TTL is the per-calendar freshness window.  Zero means DefaultTTL.
	TTL time.Duration

	// FetchTimeout bounds the tribunal holiday fetch.  Zero means
	// DefaultFetchTimeout.  On timeout the calendar degrades, it never fails.
	FetchTimeout time.Duration

	// Tribunals is the set of tribunal IDs the store will serve.
	Tribunals []string

	// DefaultTribunal, when set, answers requests for tribunals missing from
	// Tribunals using the default tribunal's calendar.  When empty, unknown
	// tribunals are a configuration error.
	DefaultTribunal string
}

// CalendarStore owns the per-(tribunal, year) calendar cache.  One instance
// per process; all access goes through Holidays.  Concurrent misses for the
// same key are coalesced so the external registry sees exactly one fetch.
type CalendarStore struct {
	cfg     StoreConfig
	source  HolidaySource
	shared  CachePort // optional, may be nil
	clock   Clock
	logger  logging.Logger
	metrics Metrics

	mu      sync.RWMutex
	entries map[string]*TribunalCalendar
	known   map[string]struct{}

	group singleflight.Group
}

// StoreOption customizes a CalendarStore.
type StoreOption func(*CalendarStore)

// WithClock replaces the wall clock.
func WithClock(c Clock) StoreOption { return func(s *CalendarStore) { s.clock = c } }

// WithSharedCache attaches an optional second-level cache.
func WithSharedCache(c CachePort) StoreOption { return func(s *CalendarStore) { s.shared = c } }

// WithMetrics attaches a metrics sink.
func WithMetrics(m Metrics) StoreOption { return func(s *CalendarStore) { s.metrics = m } }

// NewCalendarStore constructs a store over the given holiday source.
func NewCalendarStore(cfg StoreConfig, source HolidaySource, logger logging.Logger, opts ...StoreOption) *CalendarStore {
	if cfg.TTL <= 0 {
		cfg.TTL = DefaultTTL
	}
	if cfg.FetchTimeout <= 0 {
		cfg.FetchTimeout = DefaultFetchTimeout
	}
	if source == nil {
		source = NopHolidaySource{}
	}
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	s := &CalendarStore{
		cfg:     cfg,
		source:  source,
		clock:   SystemClock{},
		logger:  logger.Named("calendar.store"),
		metrics: NopMetrics{},
		entries: make(map[string]*TribunalCalendar),
		known:   make(map[string]struct{}, len(cfg.Tribunals)),
	}
	for _, t := range cfg.Tribunals {
		s.known[t] = struct{}{}
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func cacheKey(tribunalID string, year int) string {
	return "prazo:calendar:" + tribunalID + ":" + strconv.Itoa(year)
}

// resolveTribunal maps the requested tribunal to the one whose calendar will
// be used.  Unknown tribunal with no default configured is fatal for the call
// because business-day semantics are undefined without any calendar.
func (s *CalendarStore) resolveTribunal(tribunalID string) (string, error) {
	if _, ok := s.known[tribunalID]; ok {
		return tribunalID, nil
	}
	if s.cfg.DefaultTribunal != "" {
		return s.cfg.DefaultTribunal, nil
	}
	return "", errors.New(errors.ErrCodeTribunalUnknown,
		fmt.Sprintf("tribunal %q has no configured calendar and no default tribunal is set", tribunalID))
}

// Holidays returns the calendar for (tribunalID, year), building it on first
// use and rebuilding it after TTL expiry.  Registry failures degrade the
// calendar to national+movable holidays; only an unknown tribunal or a
// computus range error fail the call.
func (s *CalendarStore) Holidays(ctx context.Context, tribunalID string, year int) (*TribunalCalendar, error) {
	resolved, err := s.resolveTribunal(tribunalID)
	if err != nil {
		return nil, err
	}

	key := cacheKey(resolved, year)
	now := s.clock.Now()

	s.mu.RLock()
	cal, ok := s.entries[key]
	s.mu.RUnlock()
	if ok && !cal.Expired(now) {
		s.metrics.CalendarCacheHit(resolved)
		return cal, nil
	}
	s.metrics.CalendarCacheMiss(resolved)

	v, err, _ := s.group.Do(key, func() (interface{}, error) {
		// A caller that lost the singleflight race may arrive after the
		// winner already refreshed the entry.
		s.mu.RLock()
		cal, ok := s.entries[key]
		s.mu.RUnlock()
		if ok && !cal.Expired(s.clock.Now()) {
			return cal, nil
		}

		built, err := s.build(ctx, resolved, year)
		if err != nil {
			return nil, err
		}
		s.mu.Lock()
		s.entries[key] = built
		s.mu.Unlock()
		return built, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*TribunalCalendar), nil
}

// build assembles a fresh calendar: shared cache first, then the three-list
// merge (fixed national, movable, tribunal-specific).
func (s *CalendarStore) build(ctx context.Context, tribunalID string, year int) (*TribunalCalendar, error) {
	if cal := s.fromSharedCache(ctx, tribunalID, year); cal != nil {
		return cal, nil
	}

	movable, err := MovableHolidays(year)
	if err != nil {
		// Pure arithmetic failing is a caller bug (year out of range),
		// not a degradable condition.
		return nil, err
	}
	national := FixedNationalHolidays(year)

	completeness := Completeness{State: CalendarComplete}
	tribunal, fetchErr := s.fetchTribunal(ctx, tribunalID, year)
	if fetchErr != nil {
		completeness = Completeness{State: CalendarDegraded, Reason: fetchErr.Error()}
		s.metrics.CalendarDegradedBuild(tribunalID)
		s.logger.Warn("holiday source unavailable, using degraded calendar",
			logging.String("tribunal", tribunalID),
			logging.Int("year", year),
			logging.Err(fetchErr))
		tribunal = nil
	}

	cal := newTribunalCalendar(tribunalID, year, s.clock.Now(), s.cfg.TTL, completeness,
		national, movable, tribunal)

	s.toSharedCache(ctx, cal)
	s.logger.Debug("calendar built",
		logging.String("tribunal", tribunalID),
		logging.Int("year", year),
		logging.Int("holidays", len(cal.Holidays)),
		logging.String("completeness", string(cal.Completeness.State)))
	return cal, nil
}

// fetchTribunal queries the registry under the configured timeout.
func (s *CalendarStore) fetchTribunal(ctx context.Context, tribunalID string, year int) ([]Holiday, error) {
	fctx, cancel := context.WithTimeout(ctx, s.cfg.FetchTimeout)
	defer cancel()

	started := s.clock.Now()
	holidays, err := s.source.FetchTribunalHolidays(fctx, tribunalID, year)
	s.metrics.ObserveHolidayFetch(tribunalID, s.clock.Now().Sub(started))
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeHolidaySourceUnavailable, "tribunal holiday fetch failed")
	}
	return holidays, nil
}

// fromSharedCache tries the optional L2.  Any shared-cache failure is logged
// and ignored; the L2 is an optimization, never a dependency.
func (s *CalendarStore) fromSharedCache(ctx context.Context, tribunalID string, year int) *TribunalCalendar {
	if s.shared == nil {
		return nil
	}
	raw, found, err := s.shared.Get(ctx, cacheKey(tribunalID, year))
	if err != nil {
		s.logger.Warn("shared calendar cache read failed", logging.Err(err))
		return nil
	}
	if !found {
		return nil
	}
	var cal TribunalCalendar
	if err := json.Unmarshal(raw, &cal); err != nil {
		s.logger.Warn("shared calendar cache entry corrupt, discarding",
			logging.String("tribunal", tribunalID), logging.Err(err))
		_ = s.shared.Delete(ctx, cacheKey(tribunalID, year))
		return nil
	}
	if cal.Expired(s.clock.Now()) {
		return nil
	}
	cal.buildIndex()
	return &cal
}

func (s *CalendarStore) toSharedCache(ctx context.Context, cal *TribunalCalendar) {
	if s.shared == nil {
		return
	}
	raw, err := json.Marshal(cal)
	if err != nil {
		s.logger.Warn("calendar marshal for shared cache failed", logging.Err(err))
		return
	}
	if err := s.shared.Set(ctx, cacheKey(cal.TribunalID, cal.Year), raw, cal.TTL); err != nil {
		s.logger.Warn("shared calendar cache write failed", logging.Err(err))
	}
}

// Invalidate drops the in-process and shared entries for (tribunalID, year).
// Used by operators after correcting registry data.
func (s *CalendarStore) Invalidate(ctx context.Context, tribunalID string, year int) {
	key := cacheKey(tribunalID, year)
	s.mu.Lock()
	delete(s.entries, key)
	s.mu.Unlock()
	if s.shared != nil {
		if err := s.shared.Delete(ctx, key); err != nil {
			s.logger.Warn("shared calendar cache delete failed", logging.Err(err))
		}
	}
}

//Personal.AI order the ending
