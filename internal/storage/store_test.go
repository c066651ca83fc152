package storage

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/san-kum/molview/internal/config"
	"github.com/san-kum/molview/internal/scene"
	"github.com/san-kum/molview/internal/viewer"
)

func testSamples() []viewer.Sample {
	atoms := []mgl64.Vec3{{0, 45, 0}, {1, 2, 3}, {4, 5, 6}, {7, 8, 9}}
	return []viewer.Sample{
		{Tick: 1, Rotation: scene.Euler{X: 0.005, Y: 0.005, Z: 0.005}, Atoms: atoms},
		{Tick: 2, Rotation: scene.Euler{X: 0.01, Y: 0.01, Z: 0.01}, Atoms: atoms},
	}
}

func TestStoreSaveLoad(t *testing.T) {
	st := New(filepath.Join(t.TempDir(), "data"))

	id, err := st.Save(RecordingMetadata{
		Ticks:   2,
		Every:   1,
		FPS:     60,
		Spin:    0.005,
		Config:  config.DefaultConfig(),
		Metrics: map[string]float64{"final_rot_x": 0.01},
	}, testSamples())
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if id == "" {
		t.Error("expected non-empty recording id")
	}

	meta, err := st.Load(id)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if meta.ID != id {
		t.Errorf("expected id %q, got %q", id, meta.ID)
	}
	if meta.Ticks != 2 || meta.FPS != 60 {
		t.Errorf("unexpected metadata %+v", meta)
	}
	if meta.Config == nil || meta.Config.Camera.FOV != 75 {
		t.Errorf("config not persisted: %+v", meta.Config)
	}
	if meta.Metrics["final_rot_x"] != 0.01 {
		t.Errorf("expected final_rot_x 0.01, got %f", meta.Metrics["final_rot_x"])
	}

	table, err := st.LoadSamples(id)
	if err != nil {
		t.Fatalf("load samples failed: %v", err)
	}
	if len(table.Columns) != 16 {
		t.Errorf("expected 16 columns, got %d", len(table.Columns))
	}
	if len(table.Rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(table.Rows))
	}

	rot, err := table.Column("rot_x")
	if err != nil {
		t.Fatal(err)
	}
	if rot[0] != 0.005 || rot[1] != 0.01 {
		t.Errorf("rot_x = %v", rot)
	}
	h1y, _ := table.Column("h1_y")
	if h1y[0] != 45 {
		t.Errorf("h1_y = %v", h1y)
	}
	if _, err := table.Column("nope"); !errors.Is(err, ErrUnknownColumn) {
		t.Errorf("expected ErrUnknownColumn, got %v", err)
	}
}

func TestStoreIDsAreUnique(t *testing.T) {
	st := New(t.TempDir())
	a, err := st.Save(RecordingMetadata{}, testSamples())
	if err != nil {
		t.Fatal(err)
	}
	b, err := st.Save(RecordingMetadata{}, testSamples())
	if err != nil {
		t.Fatal(err)
	}
	if a == b {
		t.Errorf("ids collide: %s", a)
	}
}

func TestStoreList(t *testing.T) {
	tmpDir := t.TempDir()
	st := New(tmpDir)

	runs, err := st.List()
	if err != nil || len(runs) != 0 {
		t.Fatalf("empty store: %v, %v", runs, err)
	}

	for i := 0; i < 2; i++ {
		if _, err := st.Save(RecordingMetadata{Ticks: uint64(i)}, testSamples()); err != nil {
			t.Fatal(err)
		}
	}
	// stray entries are ignored
	os.Mkdir(filepath.Join(tmpDir, "junk"), 0755)
	os.WriteFile(filepath.Join(tmpDir, "notes.txt"), []byte("x"), 0644)

	runs, err = st.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(runs) != 2 {
		t.Errorf("expected 2 runs, got %d", len(runs))
	}
}

func TestStoreListMissingDir(t *testing.T) {
	st := New(filepath.Join(t.TempDir(), "missing"))
	runs, err := st.List()
	if err != nil || len(runs) != 0 {
		t.Errorf("expected empty list, got %v, %v", runs, err)
	}
}

func TestLoadSamplesEmpty(t *testing.T) {
	st := New(t.TempDir())
	id, err := st.Save(RecordingMetadata{}, nil)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := st.LoadSamples(id); !errors.Is(err, ErrNoSamples) {
		t.Errorf("expected ErrNoSamples, got %v", err)
	}
}

func TestLoadMissing(t *testing.T) {
	st := New(t.TempDir())
	if _, err := st.Load("nope"); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected not-exist, got %v", err)
	}
}

func TestExportJSON(t *testing.T) {
	st := New(t.TempDir())
	id, err := st.Save(RecordingMetadata{Ticks: 2}, testSamples())
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := st.ExportJSON(&buf, id); err != nil {
		t.Fatalf("export failed: %v", err)
	}

	var data ExportData
	if err := json.Unmarshal(buf.Bytes(), &data); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if data.Metadata.ID != id || data.Samples != 2 || len(data.Rows[0]) != 16 {
		t.Errorf("unexpected export %+v", data)
	}
}
