package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/epiroc/epiroc/roc"
)

// curveColumns is the header of an exported curve: cumulative false and true positives.
var curveColumns = []string{"fp", "tp"}

// WriteCurveCSV writes the curve points, one (fp, tp) row per point.
func WriteCurveCSV(w io.Writer, c *roc.Curve) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(curveColumns); err != nil {
		return fmt.Errorf("writing CSV header: %w", err)
	}
	for k := range c.X {
		if err := writer.Write([]string{strconv.Itoa(c.X[k]), strconv.Itoa(c.Y[k])}); err != nil {
			return fmt.Errorf("writing CSV row %d: %w", k, err)
		}
	}
	writer.Flush()
	return writer.Error()
}

// SaveCurveCSV writes the curve to path, replacing any existing file.
func SaveCurveCSV(path string, c *roc.Curve) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating curve file: %w", err)
	}
	if err := WriteCurveCSV(file, c); err != nil {
		_ = file.Close()
		return err
	}
	return file.Close()
}
