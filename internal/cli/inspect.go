package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	rio "github.com/matzehuels/riverspiral/pkg/io"
	"github.com/matzehuels/riverspiral/pkg/pipeline"
)

// inspectCommand creates the inspect command, which reports the ordering and
// geometry of a dataset without rendering it.
func (c *CLI) inspectCommand() *cobra.Command {
	var (
		f      optionFlags
		asJSON bool
		export string
	)

	cmd := &cobra.Command{
		Use:   "inspect [rivers.csv]",
		Short: "Show continent order, value ranges and canvas size",
		Long: `Show continent order, value ranges and canvas size.

The inspect command runs grouping and layout for a dataset and prints a
summary table. With --json the normalised records are written to stdout
instead; --export writes them to a file, which 'render' accepts as input.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := f.options(cmd, args[0])
			if err != nil {
				return err
			}
			return c.runInspect(cmd.Context(), opts, asJSON, export)
		},
	}

	f.register(cmd)
	cmd.Flags().BoolVar(&asJSON, "json", false, "write the records as JSON to stdout")
	cmd.Flags().StringVar(&export, "export", "", "write the records as JSON to a file")

	return cmd
}

func (c *CLI) runInspect(ctx context.Context, opts pipeline.Options, asJSON bool, export string) error {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return err
	}

	prog := newProgress(loggerFromContext(ctx))
	runner := c.newRunner()
	ds, err := runner.Load(ctx, opts.Input)
	if err != nil {
		return err
	}

	if asJSON {
		return rio.WriteJSON(ds, os.Stdout)
	}
	if export != "" {
		if err := rio.ExportJSON(ds, export); err != nil {
			return err
		}
		printSuccess("Exported %d rivers", ds.Len())
		printFile(export)
		return nil
	}

	prepared, err := runner.Prepare(ctx, ds, opts)
	if err != nil {
		return err
	}
	frame, err := runner.Relayout(ctx, prepared, opts, opts.Width)
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Laid out %d rivers at %.0fpx", ds.Len(), opts.Width))

	fmt.Println(StyleTitle.Render(opts.Title))
	if prepared.Empty {
		printWarning("dataset is empty")
	} else {
		fmt.Println(continentTable(prepared, frame))
	}
	printNewline()

	r := prepared.Ranges
	printKeyValue("Rivers", strconv.Itoa(ds.Len()))
	if !prepared.Empty {
		printKeyValue("Temperature", fmt.Sprintf("%g … %g °C", r.MinTemp, r.MaxTemp))
		printKeyValue("Discharge", fmt.Sprintf("%g … %g m³/s", r.MinDischarge, r.MaxDischarge))
	}
	printKeyValue("Cell", fmt.Sprintf("%.1fpx", frame.Layout.CellSize))
	printKeyValue("Canvas", fmt.Sprintf("%.0f × %.0fpx", frame.Layout.Width, frame.Layout.Height))
	return nil
}

// continentTable renders one row per continent in drawing order.
func continentTable(p *pipeline.Prepared, frame pipeline.Frame) string {
	rows := make([][]string, 0, len(frame.Layout.Groups))
	for i, g := range frame.Layout.Groups {
		longest := "-"
		if cells := frame.Layout.GroupCells(i); len(cells) > 0 {
			longest = cells[0].Record.Name
		}
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			g.Continent,
			strconv.Itoa(g.Count),
			strconv.Itoa(g.Rows),
			longest,
			fmt.Sprintf("%.0f", g.Y),
		})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	cellStyle := lipgloss.NewStyle().Padding(0, 1)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("#", "Continent", "Rivers", "Rows", "Longest", "Top").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle.Padding(0, 1)
			case col == 1:
				return cellStyle.Foreground(colorCyan)
			default:
				return cellStyle
			}
		})
	return t.Render()
}
