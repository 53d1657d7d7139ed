package dataset

import (
	"strconv"
)

// Row is one record of a rectangular dataset, keyed by column name.
type Row map[string]any

// Frame is a rectangular dataset: named columns plus an ordered sequence of
// rows. It carries the generic warehouse tables (command-center views, raw
// factor tables) that have no fixed schema on our side.
type Frame struct {
	Columns []string `json:"columns"`
	Rows    []Row    `json:"rows"`
}

// Float reads a cell as float64. Missing, nil or unparseable values coerce
// to 0 so a half-filled warehouse row never breaks a simulation.
func (r Row) Float(col string) float64 {
	v, ok := r[col]
	if !ok || v == nil {
		return 0
	}
	switch t := v.(type) {
	case float64:
		return t
	case float32:
		return float64(t)
	case int:
		return float64(t)
	case int32:
		return float64(t)
	case int64:
		return float64(t)
	case []byte:
		f, err := strconv.ParseFloat(string(t), 64)
		if err != nil {
			return 0
		}
		return f
	case string:
		f, err := strconv.ParseFloat(t, 64)
		if err != nil {
			return 0
		}
		return f
	default:
		return 0
	}
}

// String reads a cell as a string, empty when missing or nil.
func (r Row) String(col string) string {
	v, ok := r[col]
	if !ok || v == nil {
		return ""
	}
	switch t := v.(type) {
	case string:
		return t
	case []byte:
		return string(t)
	default:
		return ""
	}
}

// HasColumn reports whether the frame carries the named column.
func (f *Frame) HasColumn(col string) bool {
	for _, c := range f.Columns {
		if c == col {
			return true
		}
	}
	return false
}

// Len returns the row count.
func (f *Frame) Len() int {
	if f == nil {
		return 0
	}
	return len(f.Rows)
}
