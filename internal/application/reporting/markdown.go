// Package reporting renders aggregate results as markdown.  Pure string
// builders outside the computational core's contract; nothing here mutates
// or recomputes a result.
package reporting

import (
	"fmt"
	"strings"

	"github.com/juristech/prazo/internal/application/caseflow"
	"github.com/juristech/prazo/internal/domain/deadline"
)

// statusLabel maps statuses to their display labels.
var statusLabel = map[deadline.Status]string{
	deadline.StatusOverdue:   "VENCIDO",
	deadline.StatusDueToday:  "VENCE HOJE",
	deadline.StatusUrgent:    "URGENTE",
	deadline.StatusAttention: "ATENÇÃO",
	deadline.StatusOnTrack:   "EM DIA",
}

// categoryIcon maps timeline categories to their report icons.
var categoryIcon = map[string]string{
	"decision":    "⚖️",
	"appeal":      "📤",
	"document":    "📄",
	"hearing":     "🗣️",
	"transit":     "🔒",
	"enforcement": "💰",
	"summons":     "📨",
	"general":     "•",
}

// RenderMatrixMarkdown renders a deadline matrix as a markdown table.
// Dates use the DD/MM/YYYY display convention.
func RenderMatrixMarkdown(matrix *caseflow.DeadlineMatrix) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "# Matriz de Prazos — %s\n\n", strings.ToUpper(matrix.Area))
	fmt.Fprintf(&sb, "Tribunal: %s | Referência: %s\n\n", matrix.TribunalID, matrix.At.Format())

	if len(matrix.Entries) == 0 {
		sb.WriteString("Nenhum prazo identificado nas movimentações.\n")
	} else {
		sb.WriteString("| Tipo | Início | Vencimento | Prazo (dias úteis) | Status | Restantes |\n")
		sb.WriteString("|------|--------|------------|--------------------|--------|-----------|\n")
		for _, e := range matrix.Entries {
			fmt.Fprintf(&sb, "| %s | %s | %s | %d | %s | %d |\n",
				e.RuleMatched.Pattern,
				e.Result.StartDate.Format(),
				e.Result.DueDate.Format(),
				e.Result.EffectiveLength,
				statusLabel[e.Result.Status],
				e.Result.RemainingBusinessDays)
		}
	}

	if len(matrix.Alerts.Overdue) > 0 {
		fmt.Fprintf(&sb, "\n## ⚠️ Prazos vencidos (%d)\n\n", len(matrix.Alerts.Overdue))
		for _, e := range matrix.Alerts.Overdue {
			fmt.Fprintf(&sb, "- %s — vencido em %s\n", e.RuleMatched.Pattern, e.Result.DueDate.Format())
		}
	}
	if len(matrix.Alerts.DueSoon) > 0 {
		fmt.Fprintf(&sb, "\n## ⏰ Vencimentos próximos (%d)\n\n", len(matrix.Alerts.DueSoon))
		for _, e := range matrix.Alerts.DueSoon {
			fmt.Fprintf(&sb, "- %s — vence em %s (%d dias úteis)\n",
				e.RuleMatched.Pattern, e.Result.DueDate.Format(), e.Result.RemainingBusinessDays)
		}
	}
	if len(matrix.SoftErrors) > 0 {
		fmt.Fprintf(&sb, "\n## Avisos (%d)\n\n", len(matrix.SoftErrors))
		for _, se := range matrix.SoftErrors {
			fmt.Fprintf(&sb, "- [%s] %s\n", se.Code, se.Message)
		}
	}
	return sb.String()
}

// RenderChronologyMarkdown renders a chronology as a summary block followed
// by the per-category icon timeline.
func RenderChronologyMarkdown(chron *caseflow.Chronology) string {
	var sb strings.Builder
	sb.WriteString("# Cronologia Processual\n\n")
	fmt.Fprintf(&sb, "- Movimentações: %d\n", chron.Summary.TotalMovements)
	fmt.Fprintf(&sb, "- Documentos: %d\n", chron.Summary.TotalDocuments)
	fmt.Fprintf(&sb, "- Decisões: %d\n", chron.Summary.TotalDecisions)
	fmt.Fprintf(&sb, "- Duração: %d dias\n\n", chron.Summary.DurationDays)

	writeEvent := func(e caseflow.TimelineEvent) {
		icon, ok := categoryIcon[e.Category]
		if !ok {
			icon = categoryIcon["general"]
		}
		fmt.Fprintf(&sb, "- %s %s — %s\n", icon, e.Date.Format(), e.Description)
	}

	if len(chron.ByMonth) > 0 {
		for _, g := range chron.ByMonth {
			fmt.Fprintf(&sb, "## %s\n\n", g.Month)
			for _, e := range g.Events {
				writeEvent(e)
			}
			sb.WriteString("\n")
		}
	} else {
		sb.WriteString("## Linha do tempo\n\n")
		for _, e := range chron.Events {
			writeEvent(e)
		}
	}

	if len(chron.SoftErrors) > 0 {
		fmt.Fprintf(&sb, "\n## Avisos (%d)\n\n", len(chron.SoftErrors))
		for _, se := range chron.SoftErrors {
			fmt.Fprintf(&sb, "- [%s] %s\n", se.Code, se.Message)
		}
	}
	return sb.String()
}

//Personal.AI order the ending
