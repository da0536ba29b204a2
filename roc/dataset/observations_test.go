package dataset

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/epiroc/epiroc/roc"
)

func TestGroupedObservations_Flatten(t *testing.T) {
	g := GroupedObservations{
		"R": {"2": {4}},
		"I": {"2": {1}, "0": {3}},
		"S": {"2": {1}},
	}

	obs, err := g.Flatten()

	require.NoError(t, err)
	assert.Equal(t, []roc.Observation{
		{Node: 3, State: roc.Infected, Time: 0},
		{Node: 1, State: roc.Susceptible, Time: 2},
		{Node: 1, State: roc.Infected, Time: 2},
		{Node: 4, State: roc.Recovered, Time: 2},
	}, obs)
}

func TestGroupedObservations_FlattenErrors(t *testing.T) {
	_, err := GroupedObservations{"E": {"0": {1}}}.Flatten()
	assert.Error(t, err)

	_, err = GroupedObservations{"I": {"t0": {1}}}.Flatten()
	assert.Error(t, err)
}

func TestReadObservationsCSV(t *testing.T) {
	obs, err := ReadObservationsCSV(strings.NewReader("st,i,t\n1,0,2\n-1,3,1\n"))
	require.NoError(t, err)
	assert.Equal(t, []roc.Observation{
		{Node: 0, State: roc.Infected, Time: 2},
		{Node: 3, State: roc.Untested, Time: 1},
	}, obs)
}

func TestReadObservationsCSV_Errors(t *testing.T) {
	tests := []struct {
		name string
		csv  string
	}{
		{"empty", ""},
		{"missing column", "i,t\n0,1\n"},
		{"bad state", "i,st,t\n0,3,1\n"},
		{"not a number", "i,st,t\n0,1,x\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadObservationsCSV(strings.NewReader(tt.csv))
			assert.Error(t, err)
		})
	}
}

func TestLoadObservationsCSV_File(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "obs.csv", []byte("i,st,t\n2,0,5\n"))

	obs, err := LoadObservationsCSV(path)

	require.NoError(t, err)
	assert.Equal(t, []roc.Observation{{Node: 2, State: roc.Susceptible, Time: 5}}, obs)

	_, err = LoadObservationsCSV(filepath.Join(dir, "absent.csv"))
	assert.Error(t, err)
}
