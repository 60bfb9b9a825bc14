package reporting

import (
	"strings"
	"testing"
	"time"

	"github.com/juristech/prazo/internal/application/caseflow"
	"github.com/juristech/prazo/internal/domain/calendar"
	"github.com/juristech/prazo/internal/domain/deadline"
	"github.com/juristech/prazo/pkg/types/common"
)

func sampleMatrix() *caseflow.DeadlineMatrix {
	entry := caseflow.MatrixEntry{
		RuleMatched: deadline.Rule{Pattern: "contestação", LengthInDays: 15, LegalCategory: "defesa"},
		Result: &deadline.Result{
			StartDate:             calendar.NewDate(2025, time.January, 8),
			DueDate:               calendar.NewDate(2025, time.January, 29),
			EffectiveLength:       15,
			RemainingBusinessDays: 2,
			Status:                deadline.StatusUrgent,
		},
		SourceMovement: caseflow.MovementEvent{Date: "2025-01-06", RawText: "Apresentou contestação"},
	}
	return &caseflow.DeadlineMatrix{
		Area:       "civil",
		TribunalID: "TJSP",
		At:         calendar.NewDate(2025, time.January, 27),
		Entries:    []caseflow.MatrixEntry{entry},
		Alerts:     caseflow.MatrixAlerts{DueSoon: []caseflow.MatrixEntry{entry}},
	}
}

func TestRenderMatrixMarkdown(t *testing.T) {
	md := RenderMatrixMarkdown(sampleMatrix())

	for _, want := range []string{
		"| Tipo | Início | Vencimento |",
		"| contestação | 08/01/2025 | 29/01/2025 | 15 | URGENTE | 2 |",
		"Vencimentos próximos (1)",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("markdown missing %q:\n%s", want, md)
		}
	}
	if strings.Contains(md, "2025-01-29") {
		t.Error("matrix display must use DD/MM/YYYY, found ISO date")
	}
}

func TestRenderMatrixMarkdown_Empty(t *testing.T) {
	md := RenderMatrixMarkdown(&caseflow.DeadlineMatrix{
		Area:       "civil",
		TribunalID: "TJSP",
		At:         calendar.NewDate(2025, time.January, 27),
	})
	if !strings.Contains(md, "Nenhum prazo identificado") {
		t.Errorf("empty matrix should say so:\n%s", md)
	}
}

func TestRenderChronologyMarkdown(t *testing.T) {
	chron := &caseflow.Chronology{
		Events: []caseflow.TimelineEvent{
			{Date: calendar.NewDate(2025, time.January, 6), Type: caseflow.EventMovement,
				Description: "Citação da parte ré", Category: "summons"},
			{Date: calendar.NewDate(2025, time.February, 20), Type: caseflow.EventDecision,
				Description: "Sentença de procedência", Category: "decision"},
		},
		Summary: caseflow.Summary{TotalMovements: 1, TotalDecisions: 1, DurationDays: 45},
		SoftErrors: []common.ErrorDetail{
			{Code: "DDL_001", Message: "invalid date: garbage"},
		},
	}
	md := RenderChronologyMarkdown(chron)
	for _, want := range []string{
		"Movimentações: 1",
		"Duração: 45 dias",
		"06/01/2025 — Citação da parte ré",
		"⚖️",
		"Avisos (1)",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("markdown missing %q:\n%s", want, md)
		}
	}
}

func TestRenderChronologyMarkdown_Grouped(t *testing.T) {
	e1 := caseflow.TimelineEvent{Date: calendar.NewDate(2025, time.January, 6),
		Description: "Citação", Category: "summons"}
	e2 := caseflow.TimelineEvent{Date: calendar.NewDate(2025, time.February, 20),
		Description: "Sentença", Category: "decision"}
	chron := &caseflow.Chronology{
		Events: []caseflow.TimelineEvent{e1, e2},
		ByMonth: []caseflow.MonthGroup{
			{Month: "2025-01", Events: []caseflow.TimelineEvent{e1}},
			{Month: "2025-02", Events: []caseflow.TimelineEvent{e2}},
		},
	}
	md := RenderChronologyMarkdown(chron)
	if !strings.Contains(md, "## 2025-01") || !strings.Contains(md, "## 2025-02") {
		t.Errorf("grouped rendering should emit month headings:\n%s", md)
	}
	if strings.Contains(md, "Linha do tempo") {
		t.Error("grouped rendering should replace the flat timeline")
	}
}

//Personal.AI order the ending
