package core

// Cell is a snapshot of one grid location.
type Cell struct {
	Row, Col int
	Color    Color
}

// Grid stores the colors of a toroidal board in row-major order.
type Grid struct {
	Rows, Cols int
	NumColors  int
	data       []Color
}

// NewGrid allocates a rows x cols grid whose colors live in [0, numColors).
// A nil init leaves every cell at color 0; otherwise init must match the
// declared dimensions exactly.
func NewGrid(rows, cols, numColors int, init [][]Color) (*Grid, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrEmptyGrid
	}
	if numColors < 1 || numColors > MaxColors {
		return nil, ErrColorCount
	}
	g := &Grid{Rows: rows, Cols: cols, NumColors: numColors, data: make([]Color, rows*cols)}
	if init == nil {
		return g, nil
	}
	if len(init) != rows {
		return nil, &DimensionError{Rows: rows, Cols: cols, GotRows: len(init), GotCols: cols}
	}
	for r, line := range init {
		if len(line) != cols {
			return nil, &DimensionError{Rows: rows, Cols: cols, GotRows: rows, GotCols: len(line)}
		}
		for c, color := range line {
			if int(color) >= numColors {
				return nil, &CellError{Row: r, Col: c, Err: &ColorError{Color: int(color), NumColors: numColors}}
			}
			g.data[g.Index(r, c)] = color
		}
	}
	return g, nil
}

// Cells exposes the backing slice in row-major order.
func (g *Grid) Cells() []Color { return g.data }

// Index returns the linear slice index for (row, col).
func (g *Grid) Index(row, col int) int { return row*g.Cols + col }

// Wrap applies toroidal wrapping to the provided coordinates.
func (g *Grid) Wrap(row, col int) (int, int) {
	row = (row%g.Rows + g.Rows) % g.Rows
	col = (col%g.Cols + g.Cols) % g.Cols
	return row, col
}

// InBounds reports whether (row, col) addresses a cell without wrapping.
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.Rows && col >= 0 && col < g.Cols
}

func (g *Grid) mustIndex(row, col int) int {
	if !g.InBounds(row, col) {
		panic(&CellError{Row: row, Col: col, Err: ErrIndexOutOfBounds})
	}
	return g.Index(row, col)
}

// Get returns the cell at (row, col). The position must already be wrapped.
func (g *Grid) Get(row, col int) Cell {
	return Cell{Row: row, Col: col, Color: g.data[g.mustIndex(row, col)]}
}

// Color returns the color at (row, col). The position must already be wrapped.
func (g *Grid) Color(row, col int) Color {
	return g.data[g.mustIndex(row, col)]
}

// SetColor overwrites one cell. It is the editing hook, not part of stepping.
func (g *Grid) SetColor(row, col int, color Color) error {
	idx := g.mustIndex(row, col)
	if int(color) >= g.NumColors {
		return &CellError{Row: row, Col: col, Err: &ColorError{Color: int(color), NumColors: g.NumColors}}
	}
	g.data[idx] = color
	return nil
}

// ApplyTransition advances the cell at (row, col) through table. The table
// must be total over the grid's color domain.
func (g *Grid) ApplyTransition(row, col int, table TransitionTable) {
	idx := g.mustIndex(row, col)
	g.data[idx] = table[g.data[idx]]
}

// Row returns a copy of one row.
func (g *Grid) Row(row int) []Color {
	start := g.mustIndex(row, 0)
	return append([]Color(nil), g.data[start:start+g.Cols]...)
}

// Snapshot copies the grid into a rows x cols matrix.
func (g *Grid) Snapshot() [][]Color {
	out := make([][]Color, g.Rows)
	for r := range out {
		out[r] = g.Row(r)
	}
	return out
}

// Clone returns an independent copy.
func (g *Grid) Clone() *Grid {
	return &Grid{Rows: g.Rows, Cols: g.Cols, NumColors: g.NumColors, data: append([]Color(nil), g.data...)}
}

// CopyFrom overwrites every color with src's. Both grids must share a size.
func (g *Grid) CopyFrom(src *Grid) {
	if len(src.data) != len(g.data) {
		panic(ErrDimensionMismatch)
	}
	copy(g.data, src.data)
}
