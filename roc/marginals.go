package roc

import "fmt"

// Marginal is the posterior probability triple (P(S), P(I), P(R)) of one node at one time.
type Marginal [3]float64

// MarginalRecord maps node index to its marginal at the evaluation time.
type MarginalRecord map[int]Marginal

// NodeTrajectory is one node's posterior time series as stored by the inference engine.
// The engine keeps an initial condition before its first real step, so the
// marginal for Times()[k] lives at index k-1.
type NodeTrajectory interface {
	Times() []int
	MarginalAt(index int) (Marginal, error)
}

// PosteriorSource is an addressable collection of node trajectories.
// Implementations are read-only from the point of view of this package.
type PosteriorSource interface {
	Node(id int) (NodeTrajectory, bool)
	// NodeIDs returns every known node in ascending order.
	NodeIDs() []int
}

// EngineIndex returns the engine-internal index for absolute time t:
// the position of t in times, minus one.
func EngineIndex(times []int, t int) (int, error) {
	for k, tk := range times {
		if tk == t {
			return k - 1, nil
		}
	}
	return 0, fmt.Errorf("t=%d: %w", t, ErrTimeNotFound)
}

func marginalAt(src PosteriorSource, node, t int) (Marginal, error) {
	traj, ok := src.Node(node)
	if !ok {
		return Marginal{}, fmt.Errorf("node %d: %w", node, ErrNodeNotFound)
	}
	idx, err := EngineIndex(traj.Times(), t)
	if err != nil {
		return Marginal{}, fmt.Errorf("node %d: %w", node, err)
	}
	m, err := traj.MarginalAt(idx)
	if err != nil {
		return Marginal{}, fmt.Errorf("node %d at t=%d: %w", node, t, err)
	}
	return m, nil
}

// MarginalsForEvents reads the marginal of every event's node at the event's time.
func MarginalsForEvents(src PosteriorSource, events []Event) (MarginalRecord, error) {
	out := make(MarginalRecord, len(events))
	for _, e := range events {
		m, err := marginalAt(src, e.Node, e.Time)
		if err != nil {
			return nil, err
		}
		out[e.Node] = m
	}
	return out, nil
}

// MarginalsAtTime reads the marginal of every node known to src at time t.
func MarginalsAtTime(src PosteriorSource, t int) (MarginalRecord, error) {
	ids := src.NodeIDs()
	out := make(MarginalRecord, len(ids))
	for _, id := range ids {
		m, err := marginalAt(src, id, t)
		if err != nil {
			return nil, err
		}
		out[id] = m
	}
	return out, nil
}
