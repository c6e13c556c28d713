package telemetry

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gocarina/gocsv"

	"github.com/pthm-cable/meshgrid/config"
)

func TestOutputManagerDisabled(t *testing.T) {
	om, err := NewOutputManager("")
	if err != nil || om != nil {
		t.Fatalf("NewOutputManager(\"\") = %v, %v", om, err)
	}

	// A nil manager accepts every call.
	if err := om.WriteTelemetry(WindowStats{}); err != nil {
		t.Error(err)
	}
	if err := om.WritePerf(PerfStats{}, 0); err != nil {
		t.Error(err)
	}
	if err := om.Close(); err != nil {
		t.Error(err)
	}
	if om.Dir() != "" {
		t.Error("nil manager should report empty dir")
	}
}

func TestOutputManagerWritesCSV(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "run")
	om, err := NewOutputManager(dir)
	if err != nil {
		t.Fatalf("NewOutputManager: %v", err)
	}

	for i := int64(1); i <= 3; i++ {
		if err := om.WriteTelemetry(WindowStats{WindowEndTick: i * 60, StrainMean: 0.1 * float64(i)}); err != nil {
			t.Fatalf("WriteTelemetry: %v", err)
		}
		if err := om.WritePerf(PerfStats{AvgTickDuration: time.Millisecond}, i*60); err != nil {
			t.Fatalf("WritePerf: %v", err)
		}
	}

	cfg, err := config.Load("")
	if err != nil {
		t.Fatal(err)
	}
	if err := om.WriteConfig(cfg); err != nil {
		t.Fatalf("WriteConfig: %v", err)
	}
	if err := om.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	f, err := os.Open(filepath.Join(dir, "telemetry.csv"))
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	var rows []WindowStats
	if err := gocsv.UnmarshalFile(f, &rows); err != nil {
		t.Fatalf("reading telemetry.csv: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("got %d rows, want 3 (header written once)", len(rows))
	}
	if rows[2].WindowEndTick != 180 {
		t.Errorf("last window end = %d", rows[2].WindowEndTick)
	}

	pf, err := os.Open(filepath.Join(dir, "perf.csv"))
	if err != nil {
		t.Fatal(err)
	}
	defer pf.Close()

	var perf []PerfStatsCSV
	if err := gocsv.UnmarshalFile(pf, &perf); err != nil {
		t.Fatalf("reading perf.csv: %v", err)
	}
	if len(perf) != 3 || perf[0].AvgTickUS != 1000 {
		t.Errorf("perf rows = %+v", perf)
	}

	if _, err := config.Load(filepath.Join(dir, "config.yaml")); err != nil {
		t.Errorf("config snapshot unreadable: %v", err)
	}
}
