// Package storage persists recorded viewer runs on disk, one directory per
// recording with a metadata.json and a samples.csv.
package storage

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/san-kum/molview/internal/config"
	"github.com/san-kum/molview/internal/viewer"
)

var (
	ErrNoSamples     = errors.New("storage: recording has no samples")
	ErrUnknownColumn = errors.New("storage: unknown column")
)

const (
	metadataFile = "metadata.json"
	samplesFile  = "samples.csv"
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

type RecordingMetadata struct {
	ID        string             `json:"id"`
	Timestamp time.Time          `json:"timestamp"`
	Ticks     uint64             `json:"ticks"`
	Every     uint64             `json:"every"`
	FPS       int                `json:"fps"`
	Spin      float64            `json:"spin"`
	Preset    string             `json:"preset,omitempty"`
	Config    *config.Config     `json:"config,omitempty"`
	Metrics   map[string]float64 `json:"metrics,omitempty"`
}

// Columns is the samples.csv header: the tick, the molecule rotation and the
// world position of each peripheral atom.
func Columns() []string {
	cols := []string{"tick", "rot_x", "rot_y", "rot_z"}
	for i := 1; i <= 4; i++ {
		for _, axis := range []string{"x", "y", "z"} {
			cols = append(cols, fmt.Sprintf("h%d_%s", i, axis))
		}
	}
	return cols
}

// Save writes a new recording and returns its id. meta.ID and
// meta.Timestamp are filled in.
func (s *Store) Save(meta RecordingMetadata, samples []viewer.Sample) (string, error) {
	if err := s.Init(); err != nil {
		return "", err
	}

	meta.Timestamp = time.Now()
	id, runDir, err := s.newRunDir(meta.Timestamp)
	if err != nil {
		return "", err
	}
	meta.ID = id

	if err := writeJSON(filepath.Join(runDir, metadataFile), meta); err != nil {
		return "", err
	}
	if err := writeSamples(filepath.Join(runDir, samplesFile), samples); err != nil {
		return "", err
	}
	return id, nil
}

func (s *Store) newRunDir(ts time.Time) (string, string, error) {
	base := fmt.Sprintf("methane_%d", ts.Unix())
	id := base
	for n := 2; ; n++ {
		dir := filepath.Join(s.baseDir, id)
		err := os.Mkdir(dir, 0755)
		if err == nil {
			return id, dir, nil
		}
		if !errors.Is(err, os.ErrExist) {
			return "", "", err
		}
		id = fmt.Sprintf("%s_%d", base, n)
	}
}

func writeJSON(path string, v any) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeSamples(path string, samples []viewer.Sample) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(Columns()); err != nil {
		return err
	}
	for _, smp := range samples {
		row := []string{
			strconv.FormatUint(smp.Tick, 10),
			formatFloat(smp.Rotation.X),
			formatFloat(smp.Rotation.Y),
			formatFloat(smp.Rotation.Z),
		}
		for i := 0; i < 4; i++ {
			if i < len(smp.Atoms) {
				a := smp.Atoms[i]
				row = append(row, formatFloat(a[0]), formatFloat(a[1]), formatFloat(a[2]))
			} else {
				row = append(row, "0", "0", "0")
			}
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

func formatFloat(v float64) string { return strconv.FormatFloat(v, 'f', 6, 64) }

// List returns every readable recording, oldest first.
func (s *Store) List() ([]RecordingMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RecordingMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RecordingMetadata, 0)
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
	sort.SliceStable(runs, func(i, j int) bool { return runs[i].Timestamp.Before(runs[j].Timestamp) })
	return runs, nil
}

func (s *Store) Load(id string) (*RecordingMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, id, metadataFile))
	if err != nil {
		return nil, fmt.Errorf("load recording %s: %w", id, err)
	}

	var meta RecordingMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, fmt.Errorf("load recording %s: %w", id, err)
	}
	return &meta, nil
}

// Table is a parsed samples.csv.
type Table struct {
	Columns []string
	Rows    [][]float64
}

// Column returns one column by name.
func (t *Table) Column(name string) ([]float64, error) {
	idx := -1
	for i, c := range t.Columns {
		if c == name {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, fmt.Errorf("%w: %q", ErrUnknownColumn, name)
	}
	out := make([]float64, 0, len(t.Rows))
	for _, row := range t.Rows {
		if idx < len(row) {
			out = append(out, row[idx])
		}
	}
	return out, nil
}

// LoadSamples reads samples.csv. Unparseable rows are skipped. A recording
// without data rows yields ErrNoSamples.
func (s *Store) LoadSamples(id string) (*Table, error) {
	file, err := os.Open(filepath.Join(s.baseDir, id, samplesFile))
	if err != nil {
		return nil, fmt.Errorf("load samples %s: %w", id, err)
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("load samples %s: %w", id, err)
	}
	if len(records) < 2 {
		return nil, fmt.Errorf("%s: %w", id, ErrNoSamples)
	}

	t := &Table{Columns: records[0], Rows: make([][]float64, 0, len(records)-1)}
	for _, record := range records[1:] {
		row := make([]float64, 0, len(record))
		for _, field := range record {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				row = nil
				break
			}
			row = append(row, v)
		}
		if row != nil {
			t.Rows = append(t.Rows, row)
		}
	}
	if len(t.Rows) == 0 {
		return nil, fmt.Errorf("%s: %w", id, ErrNoSamples)
	}
	return t, nil
}
