package core

// MaxColors is the largest color domain a Color can address.
const MaxColors = 256

// Color is a cell state in [0, num_colors).
type Color uint8

// TransitionTable maps each color of a domain to the color a touched cell
// takes next. It is indexed by color and is total over its domain.
type TransitionTable []Color

// CycleTable builds the default table: every color advances by one and the
// last color loops back over the trailing cycleSize colors. A cycleSize of
// zero loops over all colors.
//
//	n = 5, cycleSize = 0:  0 -> 1 -> 2 -> 3 -> 4 -> 0
//	n = 5, cycleSize = 4:  0 -> 1 -> 2 -> 3 -> 4 -> 1
func CycleTable(numColors, cycleSize int) (TransitionTable, error) {
	if numColors < 1 || numColors > MaxColors {
		return nil, ErrColorCount
	}
	if cycleSize == 0 {
		cycleSize = numColors
	}
	if cycleSize < 1 || cycleSize > numColors {
		return nil, ErrCycleSize
	}
	table := make(TransitionTable, numColors)
	for c := 0; c < numColors-1; c++ {
		table[c] = Color(c + 1)
	}
	table[numColors-1] = Color(numColors - cycleSize)
	return table, nil
}

// OverrideTable builds a table from a partial map. Colors missing from m
// keep their color when touched.
func OverrideTable(numColors int, m map[Color]Color) (TransitionTable, error) {
	if numColors < 1 || numColors > MaxColors {
		return nil, ErrColorCount
	}
	table := make(TransitionTable, numColors)
	for c := range table {
		table[c] = Color(c)
	}
	for from, to := range m {
		if int(from) >= numColors {
			return nil, &ColorError{Color: int(from), NumColors: numColors}
		}
		if int(to) >= numColors {
			return nil, &ColorError{Color: int(to), NumColors: numColors}
		}
		table[from] = to
	}
	return table, nil
}

// Next returns the color that c becomes.
func (t TransitionTable) Next(c Color) Color { return t[c] }

// Validate checks that the table is total over [0, numColors) and that every
// image stays inside the domain.
func (t TransitionTable) Validate(numColors int) error {
	if len(t) != numColors {
		return ErrColorCount
	}
	for _, to := range t {
		if int(to) >= numColors {
			return &ColorError{Color: int(to), NumColors: numColors}
		}
	}
	return nil
}

// Map returns the table as a map, mostly for display.
func (t TransitionTable) Map() map[Color]Color {
	m := make(map[Color]Color, len(t))
	for from, to := range t {
		m[Color(from)] = to
	}
	return m
}
