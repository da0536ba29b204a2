package dataset

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/epiroc/epiroc/roc"
)

// posteriorFile is the JSON layout written by the inference engine export.
type posteriorFile struct {
	Nodes []posteriorNode `json:"nodes"`
}

type posteriorNode struct {
	Node      int         `json:"node"`
	Times     []int       `json:"times"`
	Marginals [][]float64 `json:"marginals"`
}

// ReadPosterior decodes a posterior export. Each node lists its own time
// axis and the marginals stored by the engine, where marginals[k] belongs
// to times[k+1]. So a node cannot store more marginals than it has times.
func ReadPosterior(r io.Reader) (*roc.MemoryPosterior, error) {
	var pf posteriorFile
	if err := json.NewDecoder(r).Decode(&pf); err != nil {
		return nil, fmt.Errorf("parsing posterior: %w", err)
	}

	src := roc.NewMemoryPosterior()
	for _, n := range pf.Nodes {
		if _, dup := src.Node(n.Node); dup {
			return nil, fmt.Errorf("node %d listed twice", n.Node)
		}
		if len(n.Marginals) >= len(n.Times) && len(n.Marginals) > 0 {
			return nil, fmt.Errorf("node %d: %d marginals for %d times", n.Node, len(n.Marginals), len(n.Times))
		}
		ms := make([]roc.Marginal, len(n.Marginals))
		for k, p := range n.Marginals {
			if len(p) != len(ms[k]) {
				return nil, fmt.Errorf("node %d marginal %d: got %d probabilities, want %d", n.Node, k, len(p), len(ms[k]))
			}
			copy(ms[k][:], p)
			if err := ms[k].Validate(); err != nil {
				return nil, fmt.Errorf("node %d marginal %d: %w", n.Node, k, err)
			}
		}
		src.Add(n.Node, roc.NewTrajectory(n.Times, ms))
	}
	return src, nil
}

// LoadPosterior reads a posterior export, optionally bzip2-compressed.
func LoadPosterior(path string) (*roc.MemoryPosterior, error) {
	rc, err := openData(path)
	if err != nil {
		return nil, fmt.Errorf("reading posterior: %w", err)
	}
	defer func() { _ = rc.Close() }()
	return ReadPosterior(rc)
}
