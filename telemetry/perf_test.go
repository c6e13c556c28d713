package telemetry

import (
	"testing"
	"time"

	"github.com/pthm-cable/meshgrid/mesh"
)

func TestPerfCollector_BasicTiming(t *testing.T) {
	pc := NewPerfCollector(10)

	for i := 0; i < 5; i++ {
		pc.StartTick()
		pc.StartPhase(PhaseRelax)
		time.Sleep(100 * time.Microsecond)
		pc.StartPhase(PhaseOpacity)
		time.Sleep(200 * time.Microsecond)
		pc.EndTick()
	}

	stats := pc.Stats()

	if stats.AvgTickDuration <= 0 {
		t.Error("expected positive average tick duration")
	}
	if _, ok := stats.PhaseAvg[PhaseRelax]; !ok {
		t.Error("expected relax phase to be tracked")
	}
	if _, ok := stats.PhaseAvg[PhaseOpacity]; !ok {
		t.Error("expected opacity phase to be tracked")
	}
}

func TestPerfCollector_ObservesGridStep(t *testing.T) {
	g, err := mesh.New(mesh.DefaultConfig())
	if err != nil {
		t.Fatalf("mesh.New: %v", err)
	}
	pc := NewPerfCollector(4)

	for i := 0; i < 8; i++ {
		pc.StartTick()
		g.StepObserved(float64(i)/60, pc)
		pc.EndTick()
	}

	stats := pc.Stats()
	for _, phase := range []string{PhasePin, PhaseIntegrate, PhaseRelax, PhaseCollisions, PhaseFlatten} {
		if _, ok := stats.PhaseAvg[phase]; !ok {
			t.Errorf("expected %s phase to be tracked", phase)
		}
	}
	if stats.TicksPerSecond <= 0 {
		t.Error("expected positive ticks per second")
	}
}

func TestPerfCollector_PhasePercentages(t *testing.T) {
	pc := NewPerfCollector(10)

	for i := 0; i < 5; i++ {
		pc.StartTick()
		pc.StartPhase("fast")
		time.Sleep(10 * time.Microsecond)
		pc.StartPhase("slow")
		time.Sleep(2 * time.Millisecond)
		pc.EndTick()
	}

	stats := pc.Stats()
	if stats.PhasePct["slow"] <= stats.PhasePct["fast"] {
		t.Errorf("expected slow phase (%v%%) > fast phase (%v%%)", stats.PhasePct["slow"], stats.PhasePct["fast"])
	}
}

func TestPerfCollector_EmptyStats(t *testing.T) {
	stats := NewPerfCollector(10).Stats()

	if stats.AvgTickDuration != 0 {
		t.Error("expected zero avg tick duration for empty collector")
	}
	if stats.PhaseAvg == nil || stats.PhasePct == nil {
		t.Error("expected non-nil phase maps")
	}
}

func TestPerfStatsToCSV(t *testing.T) {
	s := PerfStats{
		AvgTickDuration: 1500 * time.Microsecond,
		PhasePct:        map[string]float64{PhaseRelax: 60, PhaseCollisions: 25},
	}

	row := s.ToCSV(120)
	if row.WindowEnd != 120 || row.AvgTickUS != 1500 {
		t.Errorf("unexpected header fields: %+v", row)
	}
	if row.RelaxPct != 60 || row.CollisionsPct != 25 || row.PinPct != 0 {
		t.Errorf("unexpected phase fields: %+v", row)
	}
}
