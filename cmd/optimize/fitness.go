package main

import (
	"math"
	"sync"

	"github.com/pthm-cable/meshgrid/config"
	"github.com/pthm-cable/meshgrid/game"
	"github.com/pthm-cable/meshgrid/telemetry"
)

// Scenario is a lattice shape the candidate parameters must hold up on.
// Zero Cols or Rows keeps the base config's value. The pointer only drives
// opacity, so scenarios vary the physics input instead.
type Scenario struct {
	Name       string
	Cols, Rows int
}

// DefaultScenarios covers the configured lattice plus a coarse and a fine one.
func DefaultScenarios() []Scenario {
	return []Scenario{
		{Name: "base"},
		{Name: "coarse", Cols: 16, Rows: 10},
		{Name: "fine", Cols: 48, Rows: 30},
	}
}

// shaped returns a copy of cfg with the scenario's lattice shape applied.
func (sc Scenario) shaped(cfg *config.Config) *config.Config {
	out := *cfg
	if sc.Cols > 0 {
		out.Grid.Cols = sc.Cols
	}
	if sc.Rows > 0 {
		out.Grid.Rows = sc.Rows
	}
	out.Derived.Mesh = out.Grid.Mesh()
	return &out
}

// Fitness weights. Strain dominates; speed and iterations break ties toward
// calm, cheap grids.
const (
	speedWeight     = 0.5
	iterationWeight = 0.0005
	driftWeight     = 10.0
	divergedFitness = 1e6
)

// FitnessEvaluator runs headless sessions and scores grid parameters.
type FitnessEvaluator struct {
	params      *ParamVector
	maxTicks    int64
	scenarios   []Scenario
	baseConfig  *config.Config
	statsWindow float64

	mu        sync.Mutex
	lastScore Score
}

// Score is the breakdown of one evaluation, averaged over scenarios.
type Score struct {
	Fitness   float64
	StrainP90 float64
	SpeedMean float64
	PinDrift  float64
}

// NewFitnessEvaluator creates a new evaluator.
func NewFitnessEvaluator(params *ParamVector, maxTicks int64, scenarios []Scenario, baseCfg *config.Config) *FitnessEvaluator {
	return &FitnessEvaluator{
		params:      params,
		maxTicks:    maxTicks,
		scenarios:   scenarios,
		baseConfig:  baseCfg,
		statsWindow: 2.0,
	}
}

// LastScore returns the breakdown from the most recent evaluation.
func (fe *FitnessEvaluator) LastScore() Score {
	fe.mu.Lock()
	defer fe.mu.Unlock()
	return fe.lastScore
}

// Evaluate computes fitness for a raw parameter vector (lower = better).
func (fe *FitnessEvaluator) Evaluate(x []float64) float64 {
	cfg := fe.copyConfig()
	fe.params.ApplyToConfig(cfg, x)

	results := make([]Score, len(fe.scenarios))
	var wg sync.WaitGroup
	for i, sc := range fe.scenarios {
		wg.Add(1)
		go func(idx int, sc Scenario) {
			defer wg.Done()
			scCfg := sc.shaped(cfg)
			results[idx] = fe.score(scCfg, fe.runScenario(scCfg))
		}(i, sc)
	}
	wg.Wait()

	var avg Score
	for _, r := range results {
		avg.Fitness += r.Fitness
		avg.StrainP90 += r.StrainP90
		avg.SpeedMean += r.SpeedMean
		avg.PinDrift = math.Max(avg.PinDrift, r.PinDrift)
	}
	n := float64(len(results))
	if n > 0 {
		avg.Fitness /= n
		avg.StrainP90 /= n
		avg.SpeedMean /= n
	}

	fe.mu.Lock()
	fe.lastScore = avg
	fe.mu.Unlock()
	return avg.Fitness
}

// runScenario runs one headless session and returns its closed windows.
// Returns nil if the session could not be built.
func (fe *FitnessEvaluator) runScenario(cfg *config.Config) []telemetry.WindowStats {
	var windows []telemetry.WindowStats
	s, err := game.NewSession(cfg, game.Options{
		StatsWindowSec: fe.statsWindow,
		StatsCallback: func(stats telemetry.WindowStats) {
			windows = append(windows, stats)
		},
	})
	if err != nil {
		return nil
	}
	defer s.Close()

	for s.Tick() < fe.maxTicks {
		s.UpdateHeadless()
	}
	return windows
}

// score reduces a run to a Score. Windows after the first are averaged so
// the settling transient is ignored when there is more than one.
func (fe *FitnessEvaluator) score(cfg *config.Config, windows []telemetry.WindowStats) Score {
	if len(windows) > 1 {
		windows = windows[1:]
	}
	if len(windows) == 0 {
		return Score{Fitness: divergedFitness}
	}

	var sc Score
	for _, w := range windows {
		sc.StrainP90 += w.StrainP90
		sc.SpeedMean += w.SpeedMean
		sc.PinDrift = math.Max(sc.PinDrift, w.PinDrift)
	}
	n := float64(len(windows))
	sc.StrainP90 /= n
	sc.SpeedMean /= n

	sc.Fitness = sc.StrainP90 +
		speedWeight*sc.SpeedMean +
		iterationWeight*float64(cfg.Grid.Iterations) +
		driftWeight*sc.PinDrift
	if math.IsNaN(sc.Fitness) || math.IsInf(sc.Fitness, 0) {
		sc.Fitness = divergedFitness
	}
	return sc
}

// copyConfig returns an independent copy of the base config.
func (fe *FitnessEvaluator) copyConfig() *config.Config {
	cfg := *fe.baseConfig
	return &cfg
}
