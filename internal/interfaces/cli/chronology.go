package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/juristech/prazo/internal/application/caseflow"
	"github.com/juristech/prazo/internal/application/reporting"
	"github.com/juristech/prazo/pkg/errors"
	"github.com/juristech/prazo/pkg/types/common"
)

func newChronologyCmd(appRef func() *app, outRef func() string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chronology",
		Short: "Case chronology",
	}
	cmd.AddCommand(newChronologyBuildCmd(appRef, outRef))
	return cmd
}

func newChronologyBuildCmd(appRef func() *app, outRef func() string) *cobra.Command {
	var (
		file         string
		descending   bool
		groupByMonth bool
		markdown     bool
	)

	cmd := &cobra.Command{
		Use:     "build",
		Short:   "Build the merged case timeline from a case file",
		Example: `  prazo chronology build --file case.json --group-by-month --markdown`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a := appRef()
			caseData, err := readCaseData(file)
			if err != nil {
				return err
			}
			sortOrder := common.SortAsc
			if descending {
				sortOrder = common.SortDesc
			}
			chron, err := a.service.BuildChronology(cmd.Context(), caseflow.ChronologyRequest{
				Case:         caseData,
				SortOrder:    sortOrder,
				GroupByMonth: groupByMonth,
			})
			if err != nil {
				return err
			}
			switch {
			case markdown:
				fmt.Fprint(cmd.OutOrStdout(), reporting.RenderChronologyMarkdown(chron))
				return nil
			case outRef() == "json":
				return printJSON(cmd.OutOrStdout(), chron)
			default:
				return printChronologyText(cmd, chron)
			}
		},
	}

	cmd.Flags().StringVar(&file, "file", "", "JSON file with movements, documents and decisions")
	cmd.Flags().BoolVar(&descending, "desc", false, "sort newest first")
	cmd.Flags().BoolVar(&groupByMonth, "group-by-month", false, "group events by YYYY-MM")
	cmd.Flags().BoolVar(&markdown, "markdown", false, "render the chronology as markdown")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

func readCaseData(path string) (caseflow.CaseData, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return caseflow.CaseData{}, errors.Wrap(err, errors.ErrCodeValidation, "case file read failed").WithDetail(path)
	}
	var data caseflow.CaseData
	if err := json.Unmarshal(raw, &data); err != nil {
		return caseflow.CaseData{}, errors.Wrap(err, errors.ErrCodeSerialization, "case file decode failed").WithDetail(path)
	}
	return data, nil
}

func printChronologyText(cmd *cobra.Command, c *caseflow.Chronology) error {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Events: %d (movements %d, documents %d, decisions %d), span %d days\n",
		len(c.Events), c.Summary.TotalMovements, c.Summary.TotalDocuments,
		c.Summary.TotalDecisions, c.Summary.DurationDays)
	for _, e := range c.Events {
		fmt.Fprintf(out, "  %s  %-12s %s\n", e.Date.Format(), e.Category, e.Description)
	}
	for _, se := range c.SoftErrors {
		fmt.Fprintf(out, "Warning: [%s] %s\n", se.Code, se.Message)
	}
	return nil
}

//Personal.AI order the ending
