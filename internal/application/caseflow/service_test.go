package caseflow

import (
	"context"
	"testing"
	"time"

	"github.com/juristech/prazo/internal/domain/calendar"
	"github.com/juristech/prazo/internal/domain/deadline"
	"github.com/juristech/prazo/internal/testutil"
	"github.com/juristech/prazo/pkg/errors"
	"github.com/juristech/prazo/pkg/types/common"
)

func newTestService(t *testing.T) Service {
	t.Helper()
	clock := testutil.NewFixedClock(time.Date(2025, 1, 2, 9, 0, 0, 0, time.UTC))
	store := calendar.NewCalendarStore(calendar.StoreConfig{
		Tribunals: []string{"TJSP"},
	}, calendar.NopHolidaySource{}, nil, calendar.WithClock(clock))
	return NewService(deadline.NewCalculator(store, nil), testutil.NewMockLogger())
}

func at(iso string) calendar.Date {
	d, err := calendar.ParseDate(iso)
	if err != nil {
		panic(err)
	}
	return d
}

func TestBuildMatrix_FirstMatchWins(t *testing.T) {
	svc := newTestService(t)
	matrix, err := svc.BuildMatrix(context.Background(), MatrixRequest{
		Movements: []MovementEvent{
			{Date: "2025-01-06", RawText: "Apresentou contestação"},
			{Date: "2025-01-07", RawText: "Mero despacho de expediente"},
		},
		Area:       "civil",
		TribunalID: "TJSP",
		At:         at("2025-01-08"),
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(matrix.Entries) != 1 {
		t.Fatalf("expected exactly one entry, got %d", len(matrix.Entries))
	}
	entry := matrix.Entries[0]
	if entry.RuleMatched.Pattern != "contestação" || entry.RuleMatched.LengthInDays != 15 {
		t.Errorf("contestação should match the 15-day civil rule, got %+v", entry.RuleMatched)
	}
	if entry.Result.DueDate.String() != "2025-01-29" {
		t.Errorf("due = %s, want 2025-01-29", entry.Result.DueDate)
	}
	if len(matrix.SoftErrors) != 0 {
		t.Errorf("no-rule movements are not errors, got %v", matrix.SoftErrors)
	}
}

func TestBuildMatrix_SoftErrorOnBadDate(t *testing.T) {
	svc := newTestService(t)
	matrix, err := svc.BuildMatrix(context.Background(), MatrixRequest{
		Movements: []MovementEvent{
			{Date: "garbage", RawText: "Apresentou contestação"},
			{Date: "2025-01-06", RawText: "Interposta apelação"},
		},
		Area:       "civil",
		TribunalID: "TJSP",
		At:         at("2025-01-08"),
	})
	if err != nil {
		t.Fatalf("bad movement date must not fail the batch: %v", err)
	}
	if len(matrix.Entries) != 1 {
		t.Errorf("good movement should still produce its entry, got %d", len(matrix.Entries))
	}
	if len(matrix.SoftErrors) != 1 {
		t.Fatalf("expected one soft error, got %d", len(matrix.SoftErrors))
	}
	if matrix.SoftErrors[0].Code != errors.ErrCodeInvalidDate.String() {
		t.Errorf("soft error should carry the invalid-date code, got %s", matrix.SoftErrors[0].Code)
	}
	if matrix.SoftErrors[0].ID == "" {
		t.Error("soft errors must carry an id")
	}
}

func TestBuildMatrix_AlertPartitions(t *testing.T) {
	svc := newTestService(t)
	// At 2025-03-03: the January deadline is overdue, the February one due soon.
	matrix, err := svc.BuildMatrix(context.Background(), MatrixRequest{
		Movements: []MovementEvent{
			{Date: "2025-02-10", RawText: "Prazo para contestação"},
			{Date: "2025-01-06", RawText: "Interposta apelação"},
		},
		Area:       "civil",
		TribunalID: "TJSP",
		At:         at("2025-03-03"),
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(matrix.Entries) != 2 {
		t.Fatalf("expected two entries, got %d", len(matrix.Entries))
	}
	if len(matrix.Alerts.Overdue) != 1 {
		t.Fatalf("expected one overdue entry, got %d", len(matrix.Alerts.Overdue))
	}
	if got := matrix.Alerts.Overdue[0].Result.Status; got != deadline.StatusOverdue {
		t.Errorf("overdue partition holds status %s", got)
	}
	if len(matrix.Alerts.DueSoon) != 1 {
		t.Fatalf("expected one due-soon entry, got %d", len(matrix.Alerts.DueSoon))
	}
	r := matrix.Alerts.DueSoon[0].Result.RemainingBusinessDays
	if r < 0 || r > 5 {
		t.Errorf("due-soon remaining %d outside [0,5]", r)
	}
}

func TestBuildMatrix_AlertsSortedByDueDate(t *testing.T) {
	svc := newTestService(t)
	matrix, err := svc.BuildMatrix(context.Background(), MatrixRequest{
		Movements: []MovementEvent{
			{Date: "2025-01-20", RawText: "Interposta apelação"},
			{Date: "2025-01-06", RawText: "Prazo para contestação"},
			{Date: "2025-01-13", RawText: "Embargos de declaração opostos"},
		},
		Area:       "civil",
		TribunalID: "TJSP",
		At:         at("2025-04-01"),
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(matrix.Alerts.Overdue) != 3 {
		t.Fatalf("all three should be overdue at 2025-04-01, got %d", len(matrix.Alerts.Overdue))
	}
	for i := 1; i < len(matrix.Alerts.Overdue); i++ {
		prev := matrix.Alerts.Overdue[i-1].Result.DueDate
		cur := matrix.Alerts.Overdue[i].Result.DueDate
		if cur.Before(prev) {
			t.Errorf("overdue not sorted ascending by due date: %s before %s", cur, prev)
		}
	}
}

func TestBuildMatrix_NilMovementsIsEmpty(t *testing.T) {
	svc := newTestService(t)
	matrix, err := svc.BuildMatrix(context.Background(), MatrixRequest{
		Area: "civil", TribunalID: "TJSP", At: at("2025-01-08"),
	})
	if err != nil {
		t.Fatalf("nil movements are an empty case, not an error: %v", err)
	}
	if len(matrix.Entries) != 0 || len(matrix.SoftErrors) != 0 {
		t.Errorf("empty matrix expected, got %d entries / %d soft errors",
			len(matrix.Entries), len(matrix.SoftErrors))
	}
}

func TestBuildMatrix_Validation(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.BuildMatrix(ctx, MatrixRequest{
		Movements: []MovementEvent{}, Area: "criminal", TribunalID: "TJSP", At: at("2025-01-08"),
	})
	if !errors.IsCode(err, errors.ErrCodeRuleAreaUnknown) {
		t.Errorf("unknown area should fail, got %v", err)
	}

	_, err = svc.BuildMatrix(ctx, MatrixRequest{
		Movements:  []MovementEvent{{Date: "2025-01-06", RawText: "contestação"}},
		Area:       "civil",
		TribunalID: "TJXX",
		At:         at("2025-01-08"),
	})
	if !errors.IsCode(err, errors.ErrCodeTribunalUnknown) {
		t.Errorf("unknown tribunal must poison the batch, got %v", err)
	}
}

func TestBuildChronology_MergeAndSort(t *testing.T) {
	svc := newTestService(t)
	req := ChronologyRequest{
		Case: CaseData{
			Movements: []CaseRecord{
				{Date: "2025-02-10", Description: "Juntada de petição"},
				{Date: "2025-01-06", Description: "Citação da parte ré"},
			},
			Documents: []CaseRecord{
				{Date: "2025-01-20", Description: "Procuração juntada aos autos"},
			},
			Decisions: []CaseRecord{
				{Date: "2025-03-01", Description: "Sentença de procedência"},
			},
		},
	}
	chron, err := svc.BuildChronology(context.Background(), req)
	if err != nil {
		t.Fatal(err)
	}
	if len(chron.Events) != 4 {
		t.Fatalf("expected 4 events, got %d", len(chron.Events))
	}
	for i := 1; i < len(chron.Events); i++ {
		if chron.Events[i].Date.Before(chron.Events[i-1].Date) {
			t.Error("default sort must be ascending")
		}
	}
	s := chron.Summary
	if s.TotalMovements != 2 || s.TotalDocuments != 1 || s.TotalDecisions != 1 {
		t.Errorf("summary counts wrong: %+v", s)
	}
	// 2025-01-06 to 2025-03-01.
	if s.DurationDays != 54 {
		t.Errorf("duration = %d days, want 54", s.DurationDays)
	}
}

func TestBuildChronology_Categories(t *testing.T) {
	svc := newTestService(t)
	req := ChronologyRequest{
		Case: CaseData{
			Movements: []CaseRecord{
				{Date: "2025-01-06", Description: "Citação da parte ré"},
				{Date: "2025-01-10", Description: "Audiência de conciliação designada"},
				{Date: "2025-02-01", Description: "Interposto recurso de apelação"},
				{Date: "2025-03-05", Description: "Trânsito em julgado certificado"},
				{Date: "2025-03-20", Description: "Penhora de valores via SISBAJUD"},
				{Date: "2025-04-01", Description: "Conclusos para despacho"},
			},
			Decisions: []CaseRecord{
				{Date: "2025-02-20", Description: "Sentença julgou procedente o pedido"},
			},
		},
	}
	chron, err := svc.BuildChronology(context.Background(), req)
	if err != nil {
		t.Fatal(err)
	}
	want := map[string]string{
		"Citação da parte ré":                  "summons",
		"Audiência de conciliação designada":   "hearing",
		"Interposto recurso de apelação":       "appeal",
		"Trânsito em julgado certificado":      "transit",
		"Penhora de valores via SISBAJUD":      "enforcement",
		"Conclusos para despacho":              "general",
		"Sentença julgou procedente o pedido":  "decision",
	}
	for _, e := range chron.Events {
		if got := e.Category; got != want[e.Description] {
			t.Errorf("%q categorized as %q, want %q", e.Description, got, want[e.Description])
		}
	}
}

func TestBuildChronology_DescAndGrouping(t *testing.T) {
	svc := newTestService(t)
	req := ChronologyRequest{
		Case: CaseData{
			Movements: []CaseRecord{
				{Date: "2025-01-06", Description: "Citação"},
				{Date: "2025-01-20", Description: "Juntada de petição"},
				{Date: "2025-02-10", Description: "Sentença proferida"},
			},
		},
		SortOrder:    common.SortDesc,
		GroupByMonth: true,
	}
	chron, err := svc.BuildChronology(context.Background(), req)
	if err != nil {
		t.Fatal(err)
	}
	if !chron.Events[0].Date.After(chron.Events[1].Date) {
		t.Error("descending sort not applied")
	}
	if chron.Summary.DurationDays != 35 {
		t.Errorf("duration must be positive regardless of sort order, got %d", chron.Summary.DurationDays)
	}
	if len(chron.ByMonth) != 2 {
		t.Fatalf("expected 2 month groups, got %d", len(chron.ByMonth))
	}
	if chron.ByMonth[0].Month != "2025-02" || chron.ByMonth[1].Month != "2025-01" {
		t.Errorf("groups must preserve the applied (descending) order: %v, %v",
			chron.ByMonth[0].Month, chron.ByMonth[1].Month)
	}
}

func TestBuildChronology_SoftErrorsAndEmpty(t *testing.T) {
	svc := newTestService(t)

	chron, err := svc.BuildChronology(context.Background(), ChronologyRequest{
		Case: CaseData{
			Movements: []CaseRecord{
				{Date: "bad-date", Description: "Citação"},
				{Date: "2025-01-06", Description: "Juntada de petição"},
			},
		},
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(chron.Events) != 1 || len(chron.SoftErrors) != 1 {
		t.Errorf("expected 1 event + 1 soft error, got %d/%d", len(chron.Events), len(chron.SoftErrors))
	}
	if chron.SoftErrors[0].ID == "" {
		t.Error("soft errors must carry an id")
	}
}

func TestBuildChronology_AllDatesBad_PartialSuccess(t *testing.T) {
	svc := newTestService(t)
	chron, err := svc.BuildChronology(context.Background(), ChronologyRequest{
		Case: CaseData{
			Movements: []CaseRecord{
				{Date: "bad", Description: "Citação"},
				{Date: "also-bad", Description: "Sentença"},
			},
		},
	})
	if err != nil {
		t.Fatalf("per-record failures must not fail the batch: %v", err)
	}
	if len(chron.Events) != 0 {
		t.Errorf("no event should survive, got %d", len(chron.Events))
	}
	if len(chron.SoftErrors) != 2 {
		t.Fatalf("every bad record gets a soft error, got %d", len(chron.SoftErrors))
	}
	if chron.SoftErrors[0].ID == chron.SoftErrors[1].ID {
		t.Error("soft error ids must be unique")
	}
	if chron.Summary.DurationDays != 0 {
		t.Errorf("empty timeline has zero duration, got %d", chron.Summary.DurationDays)
	}
}

//Personal.AI order the ending
