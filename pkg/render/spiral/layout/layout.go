// Package layout computes grid positions for grouped river records.
//
// The canvas width is an input; the canvas height is an output. Each
// continent block starts on a fresh row, wraps its rivers across
// [Config.Columns] square cells, and pushes the next block down:
//
//	l, err := layout.Compute(groups, layout.DefaultConfig(), 1200)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(l.Height, len(l.Cells))
//
// Compute keeps no state between calls. A width change is handled by calling
// it again with the same groups.
package layout

import (
	"github.com/matzehuels/riverspiral/pkg/dataset"
	"github.com/matzehuels/riverspiral/pkg/render/spiral/ordering"
)

// GroupPlacement is the vertical extent of one continent block.
type GroupPlacement struct {
	Continent string
	Y         float64 // top of the first row
	LabelY    float64 // baseline of the continent label
	Rows      int
	Count     int
	First     int // index of the group's first cell in Layout.Cells
}

// Bottom returns the y coordinate just below the group's last row of cells.
func (g GroupPlacement) Bottom(cfg Config, cellSize float64) float64 {
	if g.Rows == 0 {
		return g.Y
	}
	return g.Y + float64(g.Rows-1)*cfg.RowPitch(cellSize) + cellSize
}

// Placement is the position of one river in the grid.
type Placement struct {
	Record   dataset.Record
	Group    int // index into Layout.Groups
	Index    int // position within the group
	Row      int
	Column   int
	X, Y     float64 // top-left corner of the cell
	CellSize float64
}

// CenterX returns the horizontal centre of the cell.
func (p Placement) CenterX() float64 { return p.X + p.CellSize/2 }

// CenterY returns the vertical centre of the cell.
func (p Placement) CenterY() float64 { return p.Y + p.CellSize/2 }

// Bottom returns the y coordinate of the cell's bottom edge.
func (p Placement) Bottom() float64 { return p.Y + p.CellSize }

// Layout is the complete geometry for one canvas width.
type Layout struct {
	Width    float64
	Height   float64
	CellSize float64
	Config   Config
	Groups   []GroupPlacement
	Cells    []Placement
}

// GroupCells returns the placements belonging to group i.
func (l Layout) GroupCells(i int) []Placement {
	if i < 0 || i >= len(l.Groups) {
		return nil
	}
	g := l.Groups[i]
	return l.Cells[g.First : g.First+g.Count]
}

// Compute places every record of groups on a canvas of the given width.
// Groups are laid out in slice order and records in their group order.
func Compute(groups []ordering.ContinentGroup, cfg Config, width float64) (Layout, error) {
	cellSize, err := CellSize(cfg, width)
	if err != nil {
		return Layout{}, err
	}

	total := 0
	for _, g := range groups {
		total += g.Len()
	}

	l := Layout{
		Width:    width,
		CellSize: cellSize,
		Config:   cfg,
		Groups:   make([]GroupPlacement, 0, len(groups)),
		Cells:    make([]Placement, 0, total),
	}

	pitch := cfg.RowPitch(cellSize)
	cursor := cfg.ContentTop()

	for gi, g := range groups {
		rows := (g.Len() + cfg.Columns - 1) / cfg.Columns
		gp := GroupPlacement{
			Continent: g.Continent,
			Y:         cursor,
			LabelY:    cursor - cfg.LabelOffset,
			Rows:      rows,
			Count:     g.Len(),
			First:     len(l.Cells),
		}
		for i, rec := range g.Records {
			row, col := i/cfg.Columns, i%cfg.Columns
			l.Cells = append(l.Cells, Placement{
				Record:   rec,
				Group:    gi,
				Index:    i,
				Row:      row,
				Column:   col,
				X:        cfg.OuterMargin + float64(col)*(cellSize+cfg.CellSpacing),
				Y:        cursor + float64(row)*pitch,
				CellSize: cellSize,
			})
		}
		l.Groups = append(l.Groups, gp)
		cursor += float64(rows)*pitch + cfg.GroupGap
	}

	if len(groups) == 0 {
		l.Height = cfg.OuterMargin + cfg.TitleHeight + cfg.BottomMargin
	} else {
		l.Height = cursor + cfg.BottomMargin
	}
	return l, nil
}
