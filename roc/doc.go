// Package roc evaluates how well posterior marginals from an epidemic
// inference engine detect hidden cases.
//
// # Reading Guide
//
// The evaluation pipeline runs leaves first:
//   - events.go: selects the nodes still hidden at time t and labels them from ground truth
//   - marginals.go: reads the (S, I, R) posterior triple for each node from a PosteriorSource
//   - policy.go: label policies, rankers, and the named recipes pairing them
//   - curve.go: ranks events and builds the step ROC curve and its AUC
//   - evaluate.go: the recipes wired end to end, plus time sweeps
//
// # Sub-packages
//
//   - roc/dataset/: loads ground truth, observation logs and posterior files from disk
//   - roc/report/: evaluation reports, sweep summaries, curve export and the SQLite run store
//
// Every function in this package is pure: inputs are read-only and results
// are freshly allocated. On error no partial result is returned.
package roc
