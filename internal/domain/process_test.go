package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseProcess(t *testing.T) {
	p, err := ParseProcess("catlote")
	require.NoError(t, err)
	assert.Equal(t, ProcessCatlote, p)

	table, err := p.Table()
	require.NoError(t, err)
	assert.Equal(t, "pricing.d_catlote", table)
}

func TestParseProcessUnknown(t *testing.T) {
	_, err := ParseProcess("drop_table")
	require.Error(t, err)

	var unknown *ErrUnknownProcess
	require.True(t, errors.As(err, &unknown))
	assert.Equal(t, "drop_table", unknown.Name)
}

func TestCommandCenterProcesses(t *testing.T) {
	procs := CommandCenterProcesses()

	require.Len(t, procs, 11)
	for i := 1; i < len(procs); i++ {
		assert.Less(t, string(procs[i-1]), string(procs[i]))
	}
	for _, p := range procs {
		_, err := p.Table()
		assert.NoError(t, err, string(p))
	}
}
