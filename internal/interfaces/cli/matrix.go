package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/juristech/prazo/internal/application/caseflow"
	"github.com/juristech/prazo/internal/application/reporting"
	"github.com/juristech/prazo/pkg/errors"
)

func newMatrixCmd(appRef func() *app, outRef func() string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "matrix",
		Short: "Case deadline matrix",
	}
	cmd.AddCommand(newMatrixBuildCmd(appRef, outRef))
	return cmd
}

func newMatrixBuildCmd(appRef func() *app, outRef func() string) *cobra.Command {
	var (
		file     string
		area     string
		tribunal string
		atFlag   string
		markdown bool
	)

	cmd := &cobra.Command{
		Use:     "build",
		Short:   "Build the deadline matrix from a movements file",
		Example: `  prazo matrix build --file movements.json --area civil --tribunal TJSP --markdown`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a := appRef()
			at, err := parseAtFlag(atFlag, a.clock)
			if err != nil {
				return err
			}
			movements, err := readMovements(file)
			if err != nil {
				return err
			}
			matrix, err := a.service.BuildMatrix(cmd.Context(), caseflow.MatrixRequest{
				Movements:  movements,
				Area:       area,
				TribunalID: tribunal,
				At:         at,
			})
			if err != nil {
				return err
			}
			switch {
			case markdown:
				fmt.Fprint(cmd.OutOrStdout(), reporting.RenderMatrixMarkdown(matrix))
				return nil
			case outRef() == "json":
				return printJSON(cmd.OutOrStdout(), matrix)
			default:
				return printMatrixText(cmd, matrix)
			}
		},
	}

	cmd.Flags().StringVar(&file, "file", "", "JSON file with the movement list")
	cmd.Flags().StringVar(&area, "area", "civil", "procedural area (civil, labor)")
	cmd.Flags().StringVar(&tribunal, "tribunal", "", "tribunal id")
	cmd.Flags().StringVar(&atFlag, "at", "", "evaluation date (YYYY-MM-DD), defaults to today")
	cmd.Flags().BoolVar(&markdown, "markdown", false, "render the matrix as markdown")
	_ = cmd.MarkFlagRequired("file")
	_ = cmd.MarkFlagRequired("tribunal")
	return cmd
}

// readMovements decodes the input file, accepting either a bare array or an
// object with a "movements" field.
func readMovements(path string) ([]caseflow.MovementEvent, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeValidation, "movements file read failed").WithDetail(path)
	}
	var movements []caseflow.MovementEvent
	if err := json.Unmarshal(raw, &movements); err == nil {
		return movements, nil
	}
	var wrapped struct {
		Movements []caseflow.MovementEvent `json:"movements"`
	}
	if err := json.Unmarshal(raw, &wrapped); err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeSerialization, "movements file decode failed").WithDetail(path)
	}
	return wrapped.Movements, nil
}

func printMatrixText(cmd *cobra.Command, m *caseflow.DeadlineMatrix) error {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Matrix %s/%s at %s: %d entries\n", m.Area, m.TribunalID, m.At.Format(), len(m.Entries))
	for _, e := range m.Entries {
		fmt.Fprintf(out, "  %-30s due %s  %-10s %d remaining\n",
			e.RuleMatched.Pattern, e.Result.DueDate.Format(), e.Result.Status, e.Result.RemainingBusinessDays)
	}
	if n := len(m.Alerts.Overdue); n > 0 {
		fmt.Fprintf(out, "Overdue: %d\n", n)
	}
	if n := len(m.Alerts.DueSoon); n > 0 {
		fmt.Fprintf(out, "Due soon: %d\n", n)
	}
	for _, se := range m.SoftErrors {
		fmt.Fprintf(out, "Warning: [%s] %s\n", se.Code, se.Message)
	}
	return nil
}

//Personal.AI order the ending
