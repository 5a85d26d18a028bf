package storage

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"os"
	"strconv"
)

type ExportData struct {
	Sketch  string             `json:"sketch"`
	Seed    int64              `json:"seed"`
	Speed   float64            `json:"speed"`
	Size    float64            `json:"size"`
	Frames  int                `json:"frames"`
	Columns []string           `json:"columns"`
	Rows    [][]float64        `json:"rows"`
	Metrics map[string]float64 `json:"metrics"`
}

// WriteCSV writes the header followed by one line per row.
func WriteCSV(w io.Writer, tel Telemetry) error {
	cw := csv.NewWriter(w)
	if len(tel.Columns) > 0 {
		if err := cw.Write(tel.Columns); err != nil {
			return err
		}
	}
	record := make([]string, 0, len(tel.Columns))
	for _, row := range tel.Rows {
		record = record[:0]
		for _, v := range row {
			record = append(record, strconv.FormatFloat(v, 'f', 6, 64))
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteJSON writes a run and its telemetry as indented JSON.
func WriteJSON(w io.Writer, meta RunMetadata, tel Telemetry) error {
	data := ExportData{
		Sketch:  meta.Sketch,
		Seed:    meta.Seed,
		Speed:   meta.Speed,
		Size:    meta.Size,
		Frames:  len(tel.Rows),
		Columns: tel.Columns,
		Rows:    tel.Rows,
		Metrics: meta.Metrics,
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}

// ExportJSON writes WriteJSON output to path.
func ExportJSON(path string, meta RunMetadata, tel Telemetry) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	return WriteJSON(file, meta, tel)
}

// ExportCSV writes WriteCSV output to path.
func ExportCSV(path string, tel Telemetry) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	return WriteCSV(file, tel)
}
