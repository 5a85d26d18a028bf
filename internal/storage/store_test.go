package storage

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func sampleTelemetry() Telemetry {
	return Telemetry{
		Columns: []string{"frame", "Angle", "Velocity"},
		Rows: [][]float64{
			{0, 0.78, -0.003},
			{1, 0.77, -0.006},
		},
	}
}

func TestStoreSaveLoad(t *testing.T) {
	tmpDir := t.TempDir()
	st := New(tmpDir)

	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	meta := RunMetadata{
		Sketch:  "pendulum",
		Seed:    42,
		Speed:   5,
		Size:    5,
		Frames:  2,
		Metrics: map[string]float64{"energy_drift": 0.5},
	}

	runID, err := st.Save(meta, sampleTelemetry())
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}

	if !strings.HasPrefix(runID, "pendulum_") {
		t.Errorf("expected run id prefixed with sketch, got %q", runID)
	}

	loaded, err := st.Load(runID)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if loaded.Sketch != "pendulum" {
		t.Errorf("expected sketch 'pendulum', got '%s'", loaded.Sketch)
	}

	if loaded.Seed != 42 {
		t.Errorf("expected seed 42, got %d", loaded.Seed)
	}

	if loaded.Metrics["energy_drift"] != 0.5 {
		t.Errorf("expected drift 0.5, got %f", loaded.Metrics["energy_drift"])
	}

	tel, err := st.LoadTelemetry(runID)
	if err != nil {
		t.Fatalf("load telemetry failed: %v", err)
	}

	if len(tel.Rows) != 2 {
		t.Errorf("expected 2 rows, got %d", len(tel.Rows))
	}

	angle, ok := tel.Column("Angle")
	if !ok || angle[1] != 0.77 {
		t.Errorf("expected Angle column with 0.77, got %v", angle)
	}
}

func TestStoreList(t *testing.T) {
	tmpDir := t.TempDir()
	st := New(tmpDir)

	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	runs, err := st.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}

	if len(runs) != 0 {
		t.Errorf("expected 0 runs, got %d", len(runs))
	}

	for _, id := range []string{"bouncing-ball", "wave-patterns"} {
		if _, err := st.Save(RunMetadata{Sketch: id}, sampleTelemetry()); err != nil {
			t.Fatalf("save failed: %v", err)
		}
	}

	runs, err = st.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}

	if len(runs) != 2 {
		t.Fatalf("expected 2 runs, got %d", len(runs))
	}
	if runs[0].Timestamp.Before(runs[1].Timestamp) {
		t.Error("expected newest run first")
	}
}

func TestStoreListMissingDir(t *testing.T) {
	st := New(filepath.Join(t.TempDir(), "absent"))

	runs, err := st.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("expected 0 runs, got %d", len(runs))
	}
}

func TestStoreNotFound(t *testing.T) {
	st := New(t.TempDir())

	if _, err := st.Load("nope"); !errors.Is(err, ErrRunNotFound) {
		t.Errorf("expected ErrRunNotFound, got %v", err)
	}
	if _, err := st.LoadTelemetry("nope"); !errors.Is(err, ErrRunNotFound) {
		t.Errorf("expected ErrRunNotFound, got %v", err)
	}
}

func TestStoreFileStructure(t *testing.T) {
	tmpDir := t.TempDir()
	st := New(tmpDir)

	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	runID, err := st.Save(RunMetadata{Sketch: "pendulum"}, sampleTelemetry())
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}

	runDir := filepath.Join(tmpDir, runID)

	if _, err := os.Stat(filepath.Join(runDir, "metadata.json")); os.IsNotExist(err) {
		t.Error("metadata.json not created")
	}

	if _, err := os.Stat(filepath.Join(runDir, "telemetry.csv")); os.IsNotExist(err) {
		t.Error("telemetry.csv not created")
	}
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, sampleTelemetry()); err != nil {
		t.Fatal(err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}
	if lines[0] != "frame,Angle,Velocity" {
		t.Errorf("unexpected header %q", lines[0])
	}
	if lines[1] != "0.000000,0.780000,-0.003000" {
		t.Errorf("unexpected row %q", lines[1])
	}
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	meta := RunMetadata{Sketch: "pendulum", Seed: 7, Metrics: map[string]float64{"stability": 1}}
	if err := WriteJSON(&buf, meta, sampleTelemetry()); err != nil {
		t.Fatal(err)
	}

	var got ExportData
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatal(err)
	}
	if got.Sketch != "pendulum" || got.Frames != 2 || got.Metrics["stability"] != 1 {
		t.Errorf("unexpected export %+v", got)
	}
}
