package roc

import (
	"fmt"
	"math"
	"sort"
)

// marginalSumTolerance bounds how far a marginal may sum away from 1.
const marginalSumTolerance = 1e-3

// Validate checks that every probability is in [0, 1] and that they sum to about 1.
func (m Marginal) Validate() error {
	sum := 0.0
	for k, p := range m {
		if math.IsNaN(p) || p < 0 || p > 1 {
			return fmt.Errorf("P(%v) = %g not in [0, 1]", StateCode(k), p)
		}
		sum += p
	}
	if math.Abs(sum-1) > marginalSumTolerance {
		return fmt.Errorf("probabilities sum to %g, want 1", sum)
	}
	return nil
}

// Trajectory is an in-memory NodeTrajectory.
type Trajectory struct {
	times     []int
	marginals []Marginal
}

// NewTrajectory copies times and marginals into a Trajectory.
func NewTrajectory(times []int, marginals []Marginal) *Trajectory {
	return &Trajectory{
		times:     append([]int(nil), times...),
		marginals: append([]Marginal(nil), marginals...),
	}
}

// Times returns a copy of the node's time axis.
func (t *Trajectory) Times() []int {
	return append([]int(nil), t.times...)
}

// MarginalAt returns the marginal stored at engine index. Index -1, the
// position before the first stored marginal, is out of range.
func (t *Trajectory) MarginalAt(index int) (Marginal, error) {
	if index < 0 || index >= len(t.marginals) {
		return Marginal{}, fmt.Errorf("engine index %d not in [0, %d): %w", index, len(t.marginals), ErrIndexOutOfRange)
	}
	return t.marginals[index], nil
}

// MemoryPosterior is a PosteriorSource backed by a map of trajectories.
type MemoryPosterior struct {
	nodes map[int]*Trajectory
}

// NewMemoryPosterior returns an empty posterior source.
func NewMemoryPosterior() *MemoryPosterior {
	return &MemoryPosterior{nodes: make(map[int]*Trajectory)}
}

// Add registers the trajectory of node id, replacing any previous one.
func (p *MemoryPosterior) Add(id int, traj *Trajectory) {
	p.nodes[id] = traj
}

func (p *MemoryPosterior) Node(id int) (NodeTrajectory, bool) {
	traj, ok := p.nodes[id]
	if !ok {
		return nil, false
	}
	return traj, true
}

func (p *MemoryPosterior) NodeIDs() []int {
	ids := make([]int, 0, len(p.nodes))
	for id := range p.nodes {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// Len returns the number of nodes.
func (p *MemoryPosterior) Len() int {
	return len(p.nodes)
}
