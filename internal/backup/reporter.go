package backup

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/afero"
)

const (
	UsageLogFile   = "san_usage_log.csv"
	PredictionFile = "san_prediction.json"
)

// ErrNoUsageData means the usage log is absent or holds only its header row.
var ErrNoUsageData = errors.New("no SAN usage log yet")

// Sample is one row of the SAN usage log.
type Sample struct {
	Timestamp string  `json:"timestamp"`
	UsedGB    float64 `json:"used_gb"`
	TotalGB   float64 `json:"total_gb"`
}

// Status is the latest sample plus the forecast date, if any.
type Status struct {
	Sample
	PredictionDate *string `json:"prediction_date"`
}

// Reporter reads the files the external backup and prediction scripts leave behind.
type Reporter struct {
	fs  afero.Fs
	dir string
}

func NewReporter(fsys afero.Fs, dir string) *Reporter {
	return &Reporter{fs: fsys, dir: dir}
}

func (r *Reporter) Dir() string {
	return r.dir
}

func (r *Reporter) path(name string) string {
	return filepath.Join(r.dir, name)
}

// Status returns the last logged sample. Prediction problems never fail the call.
func (r *Reporter) Status() (*Status, error) {
	samples, err := r.readLog()
	if err != nil {
		return nil, err
	}
	if len(samples) == 0 {
		return nil, ErrNoUsageData
	}
	return &Status{
		Sample:         samples[len(samples)-1],
		PredictionDate: r.prediction(),
	}, nil
}

// Log returns every sample, newest first. A missing log is an empty list.
func (r *Reporter) Log() ([]Sample, error) {
	samples, err := r.readLog()
	if err != nil {
		return nil, err
	}
	for i, j := 0, len(samples)-1; i < j; i, j = i+1, j-1 {
		samples[i], samples[j] = samples[j], samples[i]
	}
	return samples, nil
}

func (r *Reporter) readLog() ([]Sample, error) {
	f, err := r.fs.Open(r.path(UsageLogFile))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []Sample{}, nil
		}
		return nil, fmt.Errorf("open usage log: %w", err)
	}
	defer f.Close()

	cr := csv.NewReader(f)
	// Rows may carry extra columns such as sent_gb.
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	samples := []Sample{}
	header := true
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("parse usage log: %w", err)
		}
		if header {
			header = false
			continue
		}
		samples = append(samples, parseSample(rec))
	}
	return samples, nil
}

func parseSample(rec []string) Sample {
	field := func(i int) string {
		if i < len(rec) {
			return strings.TrimSpace(rec[i])
		}
		return ""
	}
	return Sample{
		Timestamp: field(0),
		UsedGB:    parseNumber(field(1)),
		TotalGB:   parseNumber(field(2)),
	}
}

// parseNumber reads a capacity figure; anything unparseable counts as 0.
func parseNumber(s string) float64 {
	if s == "" {
		return 0
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0
	}
	return d.InexactFloat64()
}

func (r *Reporter) prediction() *string {
	data, err := afero.ReadFile(r.fs, r.path(PredictionFile))
	if err != nil {
		return nil
	}
	var pred struct {
		PredictionDate *string `json:"prediction_date"`
	}
	if err := json.Unmarshal(data, &pred); err != nil {
		return nil
	}
	if pred.PredictionDate == nil || *pred.PredictionDate == "" {
		return nil
	}
	return pred.PredictionDate
}
