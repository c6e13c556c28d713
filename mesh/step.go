package mesh

// Phase names reported to a PhaseObserver during StepObserved.
const (
	PhasePin        = "pin"
	PhaseIntegrate  = "integrate"
	PhaseRelax      = "relax"
	PhaseCollisions = "collisions"
	PhaseFlatten    = "flatten"
)

// PhaseObserver is told when each phase of a tick begins.
type PhaseObserver interface {
	StartPhase(phase string)
}

// Step advances the grid by one tick. time is the caller's elapsed time in
// seconds and only drives the forcing term.
func (g *Grid) Step(time float64) {
	g.StepObserved(time, nil)
}

// StepObserved is Step with phase notifications. obs may be nil.
func (g *Grid) StepObserved(time float64, obs PhaseObserver) {
	mark := func(phase string) {
		if obs != nil {
			obs.StartPhase(phase)
		}
	}

	mark(PhasePin)
	g.pinEdges()

	mark(PhaseIntegrate)
	g.integrate(time)

	mark(PhaseRelax)
	g.relax()

	mark(PhaseCollisions)
	g.resolveCollisions()

	mark(PhasePin)
	g.pinEdges()

	mark(PhaseFlatten)
	g.flatten()
}
