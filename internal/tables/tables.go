// Package tables converts the table elements of a filing document into
// trimmed row/column grids.
package tables

import (
	"errors"
	"sort"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"github.com/mkenealy/secreports/internal/markup"
)

// Grid is one table as rows of cell strings, row-major.
type Grid [][]string

var errNoRows = errors.New("table has no rows")

// Extract returns a grid for every table element that survives
// normalization, parsing and trimming, in document order. Each table is
// normalized on a private copy and parsed in isolation; a table that fails
// to parse or trims below the validity threshold is dropped without
// affecting its siblings.
func Extract(doc *goquery.Document) []Grid {
	var grids []Grid
	doc.Find("table").Each(func(_ int, table *goquery.Selection) {
		grid, err := parse(markup.NormalizeTable(table))
		if err != nil {
			return
		}
		grid = grid.Trim()
		if grid.Valid() {
			grids = append(grids, grid)
		}
	})
	return grids
}

// Valid reports whether the grid carries enough structure to be worth
// keeping: more than one row and at least one column.
func (g Grid) Valid() bool {
	return len(g) > 1 && len(g[0]) > 0
}

// Trim rectangularizes the grid and removes every row and column whose
// cells are all empty. Trimming a trimmed grid is a no-op.
func (g Grid) Trim() Grid {
	width := 0
	for _, row := range g {
		if len(row) > width {
			width = len(row)
		}
	}
	keepCol := make([]bool, width)
	var rows Grid
	for _, row := range g {
		padded := make([]string, width)
		copy(padded, row)
		empty := true
		for i, cell := range padded {
			if cell != "" {
				empty = false
				keepCol[i] = true
			}
		}
		if !empty {
			rows = append(rows, padded)
		}
	}
	var out Grid
	for _, row := range rows {
		var cells []string
		for i, cell := range row {
			if keepCol[i] {
				cells = append(cells, cell)
			}
		}
		out = append(out, cells)
	}
	return out
}

// carryCell tracks a rowspan continuation for one column.
type carryCell struct {
	rows int
	text string
}

// parse renders one normalized table selection into a raw grid, expanding
// colspan and rowspan so every logical cell occupies its grid positions.
// Rows and cells belonging to nested tables are left to their own table's
// pass.
func parse(table *goquery.Selection) (Grid, error) {
	tableNode := table.Get(0)
	rows := table.Find("tr").FilterFunction(func(_ int, tr *goquery.Selection) bool {
		return tr.Closest("table").Get(0) == tableNode
	})
	if rows.Length() == 0 {
		return nil, errNoRows
	}

	carry := make(map[int]carryCell)
	var grid Grid
	rows.Each(func(_ int, tr *goquery.Selection) {
		trNode := tr.Get(0)
		var row []string
		col := 0
		// carries registered by this row start counting down next row
		fresh := make(map[int]bool)
		take := func(k int) string {
			c := carry[k]
			c.rows--
			if c.rows == 0 {
				delete(carry, k)
			} else {
				carry[k] = c
			}
			return c.text
		}
		spill := func() {
			for {
				if _, ok := carry[col]; !ok {
					return
				}
				row = append(row, take(col))
				col++
			}
		}
		tr.Find("td, th").FilterFunction(func(_ int, cell *goquery.Selection) bool {
			return cell.Closest("tr").Get(0) == trNode
		}).Each(func(_ int, cell *goquery.Selection) {
			spill()
			text := cellText(cell)
			colspan := spanAttr(cell, "colspan")
			rowspan := spanAttr(cell, "rowspan")
			for i := 0; i < colspan; i++ {
				row = append(row, text)
				if rowspan > 1 {
					carry[col] = carryCell{rows: rowspan - 1, text: text}
					fresh[col] = true
				}
				col++
			}
		})
		// Cells exhausted: each carry pending from an earlier row still owns
		// its column here, even past a gap left by a short row. Pad the gap
		// columns so carried values stay in place, and decrement every
		// pending carry exactly once per row.
		cols := make([]int, 0, len(carry))
		for k := range carry {
			if !fresh[k] {
				cols = append(cols, k)
			}
		}
		sort.Ints(cols)
		for _, k := range cols {
			if k < col {
				// overlapped by an oversized cell; consume without a slot
				take(k)
				continue
			}
			for col < k {
				row = append(row, "")
				col++
			}
			row = append(row, take(col))
			col++
		}
		grid = append(grid, row)
	})
	return grid, nil
}

func spanAttr(cell *goquery.Selection, name string) int {
	v, ok := cell.Attr(name)
	if !ok {
		return 1
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 1 {
		return 1
	}
	return n
}

// cellText flattens a cell to its trimmed text, treating non-breaking
// spaces as blanks so padding-only cells trim away.
func cellText(cell *goquery.Selection) string {
	var b strings.Builder
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(cell.Get(0))
	return markup.CollapseSpaces(b.String())
}
