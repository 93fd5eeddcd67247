package cli

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/matzehuels/riverspiral/pkg/buildinfo"
	"github.com/matzehuels/riverspiral/pkg/pipeline"
)

// pxPerColumn maps one terminal column to canvas pixels, so a 120-column
// terminal previews the default 1200px poster.
const pxPerColumn = 10

const glyphRune = "●"

var (
	previewLabelStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	previewDimStyle   = lipgloss.NewStyle().Foreground(colorDim)
	previewErrStyle   = lipgloss.NewStyle().Foreground(colorRed)
)

// previewCommand creates the preview command, a terminal view of the grid
// that is laid out again on every resize.
func (c *CLI) previewCommand() *cobra.Command {
	var f optionFlags

	cmd := &cobra.Command{
		Use:   "preview [rivers.csv]",
		Short: "Preview the poster grid in the terminal",
		Long: `Preview the poster grid in the terminal.

Each river is drawn as a dot in its spiral colour. The canvas width follows
the terminal width, so resizing the window recomputes the layout the same way
a new --width would. Use +/- to change the column count and q to quit.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := f.options(cmd, args[0])
			if err != nil {
				return err
			}
			return c.runPreview(cmd.Context(), opts)
		},
	}

	f.register(cmd)
	return cmd
}

func (c *CLI) runPreview(ctx context.Context, opts pipeline.Options) error {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return err
	}

	// The alt screen owns the terminal; pipeline logs would corrupt it.
	runner := pipeline.NewRunner(nil)
	ds, err := runner.Load(ctx, opts.Input)
	if err != nil {
		return err
	}
	prepared, err := runner.Prepare(ctx, ds, opts)
	if err != nil {
		return err
	}

	m := newPreviewModel(ctx, runner, prepared, opts)
	if _, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx)).Run(); err != nil {
		return fmt.Errorf("preview: %w", err)
	}
	return nil
}

// =============================================================================
// previewModel
// =============================================================================

// previewModel is the bubbletea model for the preview command.
type previewModel struct {
	ctx      context.Context
	runner   *pipeline.Runner
	prepared *pipeline.Prepared
	opts     pipeline.Options

	frame  pipeline.Frame
	width  int // terminal columns
	height int // terminal rows
	err    error
}

func newPreviewModel(ctx context.Context, r *pipeline.Runner, p *pipeline.Prepared, opts pipeline.Options) previewModel {
	m := previewModel{ctx: ctx, runner: r, prepared: p, opts: opts}
	m.relayout(opts.Width)
	return m
}

// relayout recomputes the frame for a canvas width in pixels. On error the
// previous frame is kept and the error is shown.
func (m *previewModel) relayout(width float64) {
	frame, err := m.runner.Relayout(m.ctx, m.prepared, m.opts, width)
	m.err = err
	if err == nil {
		m.frame = frame
	}
}

func (m previewModel) Init() tea.Cmd {
	return nil
}

func (m previewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "+", "=":
			m.opts.Layout.Columns++
			m.relayout(m.frame.Layout.Width)
		case "-", "_":
			if m.opts.Layout.Columns > 1 {
				m.opts.Layout.Columns--
				m.relayout(m.frame.Layout.Width)
			}
		}
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.relayout(float64(msg.Width * pxPerColumn))
	}
	return m, nil
}

func (m previewModel) View() string {
	var b strings.Builder

	l := m.frame.Layout
	b.WriteString(StyleTitle.Render(m.opts.Title))
	b.WriteString("\n")
	b.WriteString(previewDimStyle.Render(fmt.Sprintf("%.0f × %.0fpx · cell %.1fpx · %d columns",
		l.Width, l.Height, l.CellSize, l.Config.Columns)))
	b.WriteString("\n")
	if m.err != nil {
		b.WriteString(previewErrStyle.Render(m.err.Error()))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	lines := m.gridLines()
	if limit := m.height - 6; m.height > 0 && len(lines) > limit {
		if limit < 0 {
			limit = 0
		}
		hidden := len(lines) - limit
		lines = append(lines[:limit], previewDimStyle.Render(fmt.Sprintf("… %d more lines", hidden)))
	}
	for _, line := range lines {
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(previewDimStyle.Render("+/- columns  q quit  " + buildinfo.Short()))
	return b.String()
}

// gridLines renders each continent as a label followed by rows of dots.
func (m previewModel) gridLines() []string {
	l := m.frame.Layout
	glyphs := m.frame.Scene.Glyphs

	var lines []string
	for i, g := range l.Groups {
		lines = append(lines, previewLabelStyle.Render(g.Continent)+previewDimStyle.Render(fmt.Sprintf(" (%d)", g.Count)))

		row := make([]string, 0, l.Config.Columns)
		for j := g.First; j < g.First+g.Count; j++ {
			color := lipgloss.Color(glyphs[j].Command.Color.Hex())
			row = append(row, lipgloss.NewStyle().Foreground(color).Render(glyphRune))
			if len(row) == l.Config.Columns || j == g.First+g.Count-1 {
				lines = append(lines, "  "+strings.Join(row, " "))
				row = row[:0]
			}
		}
		if i < len(l.Groups)-1 {
			lines = append(lines, "")
		}
	}
	return lines
}
