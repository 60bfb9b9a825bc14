package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/juristech/prazo/internal/domain/deadline"
)

func newDeadlineCmd(appRef func() *app, outRef func() string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "deadline",
		Short: "Deadline calculations",
	}
	cmd.AddCommand(newDeadlineCalcCmd(appRef, outRef))
	return cmd
}

func newDeadlineCalcCmd(appRef func() *app, outRef func() string) *cobra.Command {
	var (
		disclosure string
		days       int
		tribunal   string
		doubled    bool
		actionType string
		atFlag     string
	)

	cmd := &cobra.Command{
		Use:   "calc",
		Short: "Calculate one statutory deadline",
		Example: `  prazo deadline calc --disclosure 2025-01-06 --days 15 --tribunal TJSP
  prazo deadline calc --disclosure 2025-01-10 --days 5 --tribunal TJSP --doubled --at 2025-02-01`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a := appRef()
			at, err := parseAtFlag(atFlag, a.clock)
			if err != nil {
				return err
			}
			req := deadline.Request{
				DisclosureDate: disclosure,
				LengthInDays:   days,
				TribunalID:     tribunal,
				Doubled:        doubled,
				At:             at,
			}
			if actionType != "" {
				req.LegalContext = &deadline.LegalContext{ActionType: actionType}
			}
			result, err := a.calculator.Calculate(cmd.Context(), req)
			if err != nil {
				return err
			}
			if outRef() == "json" {
				return printJSON(cmd.OutOrStdout(), result)
			}
			return printDeadlineText(cmd, result)
		},
	}

	cmd.Flags().StringVar(&disclosure, "disclosure", "", "disclosure date (YYYY-MM-DD)")
	cmd.Flags().IntVar(&days, "days", 0, "statutory length in business days")
	cmd.Flags().StringVar(&tribunal, "tribunal", "", "tribunal id")
	cmd.Flags().BoolVar(&doubled, "doubled", false, "double the effective length")
	cmd.Flags().StringVar(&actionType, "action-type", "", "legal context action type (e.g. civil-liability)")
	cmd.Flags().StringVar(&atFlag, "at", "", "evaluation date (YYYY-MM-DD), defaults to today")
	_ = cmd.MarkFlagRequired("disclosure")
	_ = cmd.MarkFlagRequired("days")
	_ = cmd.MarkFlagRequired("tribunal")
	return cmd
}

func printDeadlineText(cmd *cobra.Command, r *deadline.Result) error {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Disclosure:   %s\n", r.DisclosureDate.Format())
	fmt.Fprintf(out, "Publication:  %s\n", r.PublicationDate.Format())
	fmt.Fprintf(out, "Start:        %s\n", r.StartDate.Format())
	fmt.Fprintf(out, "Due:          %s (%d business days)\n", r.DueDate.Format(), r.EffectiveLength)
	fmt.Fprintf(out, "Remaining:    %d business days\n", r.RemainingBusinessDays)
	fmt.Fprintf(out, "Status:       %s\n", r.Status)
	for _, alert := range r.Alerts {
		fmt.Fprintf(out, "Alert:        [%s] %s\n", alert.Level, alert.Message)
	}
	if r.LegalEffects.PreclusionOccurred {
		fmt.Fprintf(out, "Preclusion:   %s\n", r.LegalEffects.PreclusionType)
	}
	if b := r.LegalEffects.PrescriptionBasis; b != nil {
		fmt.Fprintf(out, "Prescription: %d years (%s)\n", b.Years, b.Citation)
	}
	if b := r.LegalEffects.DecadenceBasis; b != nil {
		fmt.Fprintf(out, "Decadence:    %d years (%s)\n", b.Years, b.Citation)
	}
	if r.CalendarNote != "" {
		fmt.Fprintf(out, "Warning:      %s\n", r.CalendarNote)
	}
	return nil
}

//Personal.AI order the ending
