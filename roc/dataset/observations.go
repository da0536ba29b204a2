package dataset

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/epiroc/epiroc/roc"
)

// GroupedObservations is the on-disk observation layout of one epidemic
// instance: state name -> time (as a decimal string) -> observed nodes.
type GroupedObservations map[string]map[string][]int

// Flatten converts grouped observations into (node, state, time) records
// sorted by time, then node, then state.
func (g GroupedObservations) Flatten() ([]roc.Observation, error) {
	var out []roc.Observation
	for name, byTime := range g {
		state, err := roc.ParseStateName(name)
		if err != nil {
			return nil, err
		}
		for ts, nodes := range byTime {
			t, err := strconv.Atoi(ts)
			if err != nil {
				return nil, fmt.Errorf("state %s: bad time %q: %w", name, ts, err)
			}
			for _, i := range nodes {
				out = append(out, roc.Observation{Node: i, State: state, Time: t})
			}
		}
	}
	sort.Slice(out, func(a, b int) bool {
		if out[a].Time != out[b].Time {
			return out[a].Time < out[b].Time
		}
		if out[a].Node != out[b].Node {
			return out[a].Node < out[b].Node
		}
		return out[a].State < out[b].State
	})
	return out, nil
}

// ReadObservationsJSON decodes a JSON list of grouped observations, one
// entry per epidemic instance.
func ReadObservationsJSON(r io.Reader) ([][]roc.Observation, error) {
	var groups []GroupedObservations
	if err := json.NewDecoder(r).Decode(&groups); err != nil {
		return nil, fmt.Errorf("parsing observations: %w", err)
	}
	out := make([][]roc.Observation, len(groups))
	for k, g := range groups {
		obs, err := g.Flatten()
		if err != nil {
			return nil, fmt.Errorf("instance %d: %w", k, err)
		}
		out[k] = obs
	}
	return out, nil
}

// LoadObservationsJSON reads a grouped observation file, optionally bzip2-compressed.
func LoadObservationsJSON(path string) ([][]roc.Observation, error) {
	rc, err := openData(path)
	if err != nil {
		return nil, fmt.Errorf("reading observations: %w", err)
	}
	defer func() { _ = rc.Close() }()
	return ReadObservationsJSON(rc)
}

// observationColumns are the required CSV columns: node, state code, time.
var observationColumns = []string{"i", "st", "t"}

// ReadObservationsCSV decodes a flat observation log with a header row
// naming the columns i, st and t in any order. st is a state code, -1 for untested.
func ReadObservationsCSV(r io.Reader) ([]roc.Observation, error) {
	reader := csv.NewReader(r)
	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("reading CSV header: %w", err)
	}
	idx, err := columnIndex(header, observationColumns)
	if err != nil {
		return nil, err
	}

	var out []roc.Observation
	for line := 2; ; line++ {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading CSV row: %w", err)
		}
		vals, err := atoiColumns(row, idx)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		state := roc.StateCode(vals[1])
		if !state.Valid() {
			return nil, fmt.Errorf("line %d: invalid state code %d", line, vals[1])
		}
		out = append(out, roc.Observation{Node: vals[0], State: state, Time: vals[2]})
	}
	return out, nil
}

// LoadObservationsCSV reads a flat observation CSV, optionally bzip2-compressed.
func LoadObservationsCSV(path string) ([]roc.Observation, error) {
	rc, err := openData(path)
	if err != nil {
		return nil, fmt.Errorf("reading observations: %w", err)
	}
	defer func() { _ = rc.Close() }()
	return ReadObservationsCSV(rc)
}

// columnIndex locates each wanted column in header.
func columnIndex(header, want []string) ([]int, error) {
	pos := make(map[string]int, len(header))
	for k, name := range header {
		pos[name] = k
	}
	idx := make([]int, len(want))
	for k, name := range want {
		p, ok := pos[name]
		if !ok {
			return nil, fmt.Errorf("CSV header %v lacks column %q", header, name)
		}
		idx[k] = p
	}
	return idx, nil
}

func atoiColumns(row []string, idx []int) ([]int, error) {
	vals := make([]int, len(idx))
	for k, p := range idx {
		if p >= len(row) {
			return nil, fmt.Errorf("row has %d columns, need column %d", len(row), p+1)
		}
		v, err := strconv.Atoi(row[p])
		if err != nil {
			return nil, fmt.Errorf("column %d: %w", p+1, err)
		}
		vals[k] = v
	}
	return vals, nil
}
