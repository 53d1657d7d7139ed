package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRowFloatCoercions(t *testing.T) {
	row := Row{
		"f64":   1.5,
		"i":     int(2),
		"i64":   int64(3),
		"bytes": []byte("4.25"),
		"str":   "5.5",
		"bad":   "not-a-number",
		"nil":   nil,
	}

	assert.Equal(t, 1.5, row.Float("f64"))
	assert.Equal(t, 2.0, row.Float("i"))
	assert.Equal(t, 3.0, row.Float("i64"))
	assert.Equal(t, 4.25, row.Float("bytes"))
	assert.Equal(t, 5.5, row.Float("str"))
	assert.Equal(t, 0.0, row.Float("bad"))
	assert.Equal(t, 0.0, row.Float("nil"))
	assert.Equal(t, 0.0, row.Float("missing"))
}

func TestRowString(t *testing.T) {
	row := Row{"s": "abc", "b": []byte("def"), "n": 42}

	assert.Equal(t, "abc", row.String("s"))
	assert.Equal(t, "def", row.String("b"))
	assert.Equal(t, "", row.String("n"))
	assert.Equal(t, "", row.String("missing"))
}

func TestFrameHelpers(t *testing.T) {
	f := &Frame{Columns: []string{"a"}, Rows: []Row{{"a": 1}}}

	assert.True(t, f.HasColumn("a"))
	assert.False(t, f.HasColumn("b"))
	assert.Equal(t, 1, f.Len())

	var nilFrame *Frame
	assert.Equal(t, 0, nilFrame.Len())
}
