package roc

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// Event is one evaluation unit: a node still hidden at Time and its ground-truth label.
type Event struct {
	Node  int
	Time  int
	Label bool
}

// ExcludedNodes marks every node already confirmed as a case at or before t.
// An observation (i, s, t1) excludes node i when t1 <= t, s is not Untested
// and the label policy counts s as a case.
func ExcludedNodes(t int, observations []Observation, nNodes int, label LabelPolicy) ([]bool, error) {
	if !label.Valid() {
		return nil, fmt.Errorf("%w %v", ErrUnknownLabelPolicy, label)
	}
	exclude := make([]bool, nNodes)
	for k, o := range observations {
		if o.Time > t || o.State == Untested || !label.IsCase(o.State) {
			continue
		}
		if o.Node < 0 || o.Node >= nNodes {
			return nil, fmt.Errorf("observation %d: node %d not in [0, %d): %w", k, o.Node, nNodes, ErrIndexOutOfRange)
		}
		exclude[o.Node] = true
	}
	return exclude, nil
}

// SelectEvents returns, in node order, an event for every node of truth[t]
// not excluded by a qualifying observation. Labels come from truth[t]
// under the same policy used for exclusion.
func SelectEvents(t int, observations []Observation, truth TrueConfiguration, label LabelPolicy) ([]Event, error) {
	if !label.Valid() {
		return nil, fmt.Errorf("%w %v", ErrUnknownLabelPolicy, label)
	}
	if t < 0 || t >= len(truth) {
		return nil, fmt.Errorf("time %d not in [0, %d): %w", t, len(truth), ErrIndexOutOfRange)
	}
	states := truth[t]
	exclude, err := ExcludedNodes(t, observations, len(states), label)
	if err != nil {
		return nil, err
	}

	events := make([]Event, 0, len(states))
	for i, s := range states {
		if exclude[i] {
			continue
		}
		events = append(events, Event{Node: i, Time: t, Label: label.IsCase(s)})
	}
	logrus.Debugf("selected %d events at t=%d (%d nodes excluded, policy %v)", len(events), t, len(states)-len(events), label)
	return events, nil
}
