package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newCalendarCmd(appRef func() *app, outRef func() string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "calendar",
		Short: "Tribunal calendar inspection",
	}
	cmd.AddCommand(newCalendarHolidaysCmd(appRef, outRef))
	return cmd
}

func newCalendarHolidaysCmd(appRef func() *app, outRef func() string) *cobra.Command {
	var (
		tribunal string
		year     int
	)

	cmd := &cobra.Command{
		Use:     "holidays",
		Short:   "List the merged holiday calendar for a tribunal and year",
		Example: `  prazo calendar holidays --tribunal TJSP --year 2025`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a := appRef()
			if year == 0 {
				year = a.clock.Now().Year()
			}
			cal, err := a.store.Holidays(cmd.Context(), tribunal, year)
			if err != nil {
				return err
			}
			if outRef() == "json" {
				return printJSON(cmd.OutOrStdout(), cal)
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Calendar %s/%d (%s)\n", cal.TribunalID, cal.Year, cal.Completeness.State)
			if cal.Completeness.IsDegraded() {
				fmt.Fprintf(out, "Warning: %s\n", cal.Completeness.Reason)
			}
			for _, h := range cal.Holidays {
				fmt.Fprintf(out, "  %s  %-10s %s\n", h.Date.Format(), h.Scope, h.Name)
			}
			fmt.Fprintf(out, "%d holidays\n", len(cal.Holidays))
			return nil
		},
	}

	cmd.Flags().StringVar(&tribunal, "tribunal", "", "tribunal id")
	cmd.Flags().IntVar(&year, "year", 0, "calendar year, defaults to the current year")
	_ = cmd.MarkFlagRequired("tribunal")
	return cmd
}

//Personal.AI order the ending
