package storage

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"
)

var ErrRunNotFound = errors.New("run not found")

const (
	metadataFile  = "metadata.json"
	telemetryFile = "telemetry.csv"
)

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

// Dir is the directory holding the runs.
func (s *Store) Dir() string { return s.baseDir }

type RunMetadata struct {
	ID        string             `json:"id"`
	Sketch    string             `json:"sketch"`
	Timestamp time.Time          `json:"timestamp"`
	Seed      int64              `json:"seed"`
	Speed     float64            `json:"speed"`
	Size      float64            `json:"size"`
	Frames    int                `json:"frames"`
	FPS       int                `json:"fps"`
	Width     int                `json:"width"`
	Height    int                `json:"height"`
	Metrics   map[string]float64 `json:"metrics"`
}

// Telemetry is a table of per-frame readings.
type Telemetry struct {
	Columns []string
	Rows    [][]float64
}

// Column returns the series under name.
func (t Telemetry) Column(name string) ([]float64, bool) {
	for i, c := range t.Columns {
		if c != name {
			continue
		}
		out := make([]float64, 0, len(t.Rows))
		for _, row := range t.Rows {
			if i < len(row) {
				out = append(out, row[i])
			}
		}
		return out, true
	}
	return nil, false
}

// Save writes metadata.json and telemetry.csv into a fresh run directory.
// ID and Timestamp of meta are filled in.
func (s *Store) Save(meta RunMetadata, tel Telemetry) (string, error) {
	now := time.Now()
	runID := fmt.Sprintf("%s_%d", meta.Sketch, now.UnixNano())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta.ID = runID
	meta.Timestamp = now
	if meta.Metrics == nil {
		meta.Metrics = map[string]float64{}
	}

	metaFile, err := os.Create(filepath.Join(runDir, metadataFile))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvFile, err := os.Create(filepath.Join(runDir, telemetryFile))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	if err := WriteCSV(csvFile, tel); err != nil {
		return "", fmt.Errorf("write telemetry: %w", err)
	}
	return runID, nil
}

// List returns every readable run, newest first.
func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		meta, err := s.Load(entry.Name())
		if err != nil {
			continue
		}

		runs = append(runs, *meta)
	}

	sort.Slice(runs, func(i, j int) bool {
		return runs[i].Timestamp.After(runs[j].Timestamp)
	})
	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, metadataFile))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrRunNotFound, runID)
		}
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, fmt.Errorf("parse %s: %w", metadataFile, err)
	}

	return &meta, nil
}

// LoadTelemetry reads a run's telemetry table. Unparseable cells read as 0.
func (s *Store) LoadTelemetry(runID string) (Telemetry, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, telemetryFile))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Telemetry{}, fmt.Errorf("%w: %s", ErrRunNotFound, runID)
		}
		return Telemetry{}, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return Telemetry{}, err
	}

	if len(records) == 0 {
		return Telemetry{}, nil
	}

	tel := Telemetry{
		Columns: records[0],
		Rows:    make([][]float64, 0, len(records)-1),
	}
	for _, record := range records[1:] {
		if len(record) == 0 {
			continue
		}
		row := make([]float64, len(record))
		for j, cell := range record {
			if v, err := strconv.ParseFloat(cell, 64); err == nil {
				row[j] = v
			}
		}
		tel.Rows = append(tel.Rows, row)
	}

	return tel, nil
}
