package dataset

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/epiroc/epiroc/roc"
)

// epidemyColumns are the columns of the long-form ground truth table.
var epidemyColumns = []string{"instance", "t", "node", "state"}

type epidemyCell struct {
	instance, t, node int
	state             roc.StateCode
}

// ReadTrueConfigurations decodes a long-form ground-truth CSV with columns
// instance, t, node and state. Each instance must cover every (t, node) pair
// of a rectangle starting at (0, 0) exactly once; instances must be numbered
// from 0 without gaps.
func ReadTrueConfigurations(r io.Reader) ([]roc.TrueConfiguration, error) {
	reader := csv.NewReader(r)
	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("reading CSV header: %w", err)
	}
	idx, err := columnIndex(header, epidemyColumns)
	if err != nil {
		return nil, err
	}

	var cells []epidemyCell
	nInstances := 0
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
		c := epidemyCell{instance: vals[0], t: vals[1], node: vals[2], state: roc.StateCode(vals[3])}
		if c.instance < 0 || c.t < 0 || c.node < 0 {
			return nil, fmt.Errorf("line %d: negative index in %v", line, row)
		}
		if !c.state.Valid() {
			return nil, fmt.Errorf("line %d: invalid state code %d", line, vals[3])
		}
		cells = append(cells, c)
		nInstances = max(nInstances, c.instance+1)
	}

	// Shapes are checked against row counts before anything is sized from
	// the parsed indices.
	rows := make(map[int]int)
	for _, c := range cells {
		rows[c.instance]++
	}
	if nInstances > len(rows) {
		for k := range nInstances {
			if rows[k] == 0 {
				return nil, fmt.Errorf("instance %d has no rows", k)
			}
		}
	}
	nTimes := make([]int, nInstances)
	nNodes := make([]int, nInstances)
	for _, c := range cells {
		nTimes[c.instance] = max(nTimes[c.instance], c.t+1)
		nNodes[c.instance] = max(nNodes[c.instance], c.node+1)
	}
	for k := range nInstances {
		n := rows[k]
		if nTimes[k] > n || nNodes[k] > n || nTimes[k]*nNodes[k] != n {
			return nil, fmt.Errorf("instance %d: %d rows do not fill %d times x %d nodes", k, n, nTimes[k], nNodes[k])
		}
	}

	out := make([]roc.TrueConfiguration, nInstances)
	seen := make([][][]bool, nInstances)
	for k := range out {
		out[k] = make(roc.TrueConfiguration, nTimes[k])
		seen[k] = make([][]bool, nTimes[k])
		for t := range out[k] {
			out[k][t] = make([]roc.StateCode, nNodes[k])
			seen[k][t] = make([]bool, nNodes[k])
		}
	}
	for _, c := range cells {
		if seen[c.instance][c.t][c.node] {
			return nil, fmt.Errorf("instance %d: duplicate state for node %d at t=%d", c.instance, c.node, c.t)
		}
		seen[c.instance][c.t][c.node] = true
		out[c.instance][c.t][c.node] = c.state
	}
	for k := range seen {
		for t := range seen[k] {
			for i, ok := range seen[k][t] {
				if !ok {
					return nil, fmt.Errorf("instance %d: missing state for node %d at t=%d", k, i, t)
				}
			}
		}
	}
	return out, nil
}

// LoadTrueConfigurations reads a ground-truth CSV, optionally bzip2-compressed.
func LoadTrueConfigurations(path string) ([]roc.TrueConfiguration, error) {
	rc, err := openData(path)
	if err != nil {
		return nil, fmt.Errorf("reading epidemies: %w", err)
	}
	defer func() { _ = rc.Close() }()
	return ReadTrueConfigurations(rc)
}
