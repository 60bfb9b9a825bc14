// Package testutil provides shared test doubles used across package tests.
package testutil

import (
	"sync"
	"time"

	"github.com/juristech/prazo/internal/infrastructure/monitoring/logging"
)

// ─────────────────────────────────────────────────────────────────────────────
// MockLogger — records every entry for assertion
// ─────────────────────────────────────────────────────────────────────────────

// LogEntry is a single recorded log call.
type LogEntry struct {
	Level   string
	Message string
	Fields  []logging.Field
}

// MockLogger is a Logger implementation that records entries in memory.
// Safe for concurrent use.
type MockLogger struct {
	mu      sync.Mutex
	entries []LogEntry
	with    []logging.Field
	root    *MockLogger
}

// NewMockLogger returns an empty MockLogger.
func NewMockLogger() *MockLogger { return &MockLogger{} }

func (m *MockLogger) sink() *MockLogger {
	if m.root != nil {
		return m.root
	}
	return m
}

func (m *MockLogger) record(level, msg string, fields []logging.Field) {
	s := m.sink()
	s.mu.Lock()
	defer s.mu.Unlock()
	all := append(append([]logging.Field{}, m.with...), fields...)
	s.entries = append(s.entries, LogEntry{Level: level, Message: msg, Fields: all})
}

func (m *MockLogger) Debug(msg string, fields ...logging.Field) { m.record("debug", msg, fields) }
func (m *MockLogger) Info(msg string, fields ...logging.Field)  { m.record("info", msg, fields) }
func (m *MockLogger) Warn(msg string, fields ...logging.Field)  { m.record("warn", msg, fields) }
func (m *MockLogger) Error(msg string, fields ...logging.Field) { m.record("error", msg, fields) }

// With returns a child that shares the parent's entry sink so tests can
// inspect everything through the root MockLogger.
func (m *MockLogger) With(fields ...logging.Field) logging.Logger {
	return &MockLogger{
		with: append(append([]logging.Field{}, m.with...), fields...),
		root: m.sink(),
	}
}

func (m *MockLogger) Named(_ string) logging.Logger { return m }

// Entries returns a copy of all recorded entries.
func (m *MockLogger) Entries() []LogEntry {
	s := m.sink()
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]LogEntry, len(s.entries))
	copy(out, s.entries)
	return out
}

// CountLevel returns how many entries were recorded at the given level.
func (m *MockLogger) CountLevel(level string) int {
	n := 0
	for _, e := range m.Entries() {
		if e.Level == level {
			n++
		}
	}
	return n
}

// HasMessage reports whether any entry carries the exact message.
func (m *MockLogger) HasMessage(msg string) bool {
	for _, e := range m.Entries() {
		if e.Message == msg {
			return true
		}
	}
	return false
}

// ─────────────────────────────────────────────────────────────────────────────
// FixedClock — frozen, manually advanced clock
// ─────────────────────────────────────────────────────────────────────────────

// FixedClock returns a fixed instant until advanced.  It implements the
// calendar.Clock contract (Now() time.Time).
type FixedClock struct {
	mu  sync.Mutex
	now time.Time
}

// NewFixedClock returns a FixedClock frozen at t.
func NewFixedClock(t time.Time) *FixedClock { return &FixedClock{now: t} }

// Now returns the frozen instant.
func (c *FixedClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Advance moves the clock forward by d.
func (c *FixedClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// Set replaces the frozen instant.
func (c *FixedClock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = t
}

//Personal.AI order the ending
