// Package dataset loads evaluation inputs from a benchmark directory:
// generator parameters, per-instance observation logs and ground-truth
// epidemies. Posterior exports from the inference engine are loaded
// separately with LoadPosterior.
package dataset

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/epiroc/epiroc/roc"
)

// Dataset is one benchmark directory. Observations and Truths are indexed by instance.
type Dataset struct {
	Dir          string
	Params       *Parameters
	Observations [][]roc.Observation
	Truths       []roc.TrueConfiguration
}

// Load reads a benchmark directory. A missing observation file is not an
// error: every instance then has an empty observation log.
func Load(dir string) (*Dataset, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("dataset directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("dataset %s is not a directory", dir)
	}

	ds := &Dataset{Dir: dir}

	paramsPath, err := resolve(dir, ParamsFileName)
	if err != nil {
		return nil, err
	}
	if ds.Params, err = LoadParameters(paramsPath); err != nil {
		return nil, err
	}

	epiPath, err := resolve(dir, EpidemiesFileName)
	if err != nil {
		return nil, err
	}
	if ds.Truths, err = LoadTrueConfigurations(epiPath); err != nil {
		return nil, err
	}

	obsPath, err := resolve(dir, ObservationsFileName)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		logrus.Warnf("no observations found in %s", dir)
		ds.Observations = make([][]roc.Observation, len(ds.Truths))
	case err != nil:
		return nil, err
	default:
		if ds.Observations, err = LoadObservationsJSON(obsPath); err != nil {
			return nil, err
		}
	}

	if len(ds.Observations) != len(ds.Truths) {
		return nil, fmt.Errorf("%d observation instances for %d epidemies", len(ds.Observations), len(ds.Truths))
	}
	logrus.Debugf("loaded dataset %s: %d instances, params N=%d T=%d", dir, len(ds.Truths), ds.Params.N, ds.Params.T)
	return ds, nil
}

// Instances returns the number of epidemic instances.
func (d *Dataset) Instances() int {
	return len(d.Truths)
}

// Instance returns the observation log and ground truth of instance k.
func (d *Dataset) Instance(k int) ([]roc.Observation, roc.TrueConfiguration, error) {
	if k < 0 || k >= len(d.Truths) {
		return nil, nil, fmt.Errorf("instance %d not in [0, %d): %w", k, len(d.Truths), roc.ErrIndexOutOfRange)
	}
	return d.Observations[k], d.Truths[k], nil
}
