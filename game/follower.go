package game

import (
	"github.com/charmbracelet/harmonica"

	"github.com/pthm-cable/meshgrid/config"
	"github.com/pthm-cable/meshgrid/mesh"
	"github.com/pthm-cable/meshgrid/motion"
)

// follower moves the smoothed pointer one tick toward its target.
type follower interface {
	step(current, target mesh.Vec2) mesh.Vec2
	velocity() mesh.Vec2
	setVelocity(v mesh.Vec2)
}

func newFollower(p config.PointerConfig, dt float64) follower {
	if p.Mode == config.PointerSpring {
		return &springFollower{spring: harmonica.NewSpring(dt, p.Frequency, p.Damping)}
	}
	return lerpFollower{t: p.Follow}
}

// lerpFollower closes a fixed fraction of the gap each tick.
type lerpFollower struct {
	t float64
}

func (f lerpFollower) step(current, target mesh.Vec2) mesh.Vec2 {
	return mesh.Vec2{
		X: motion.Lerp(current.X, target.X, f.t),
		Y: motion.Lerp(current.Y, target.Y, f.t),
	}
}

// A lerp follower is stateless.
func (lerpFollower) velocity() mesh.Vec2 { return mesh.Vec2{} }

func (lerpFollower) setVelocity(mesh.Vec2) {}

// springFollower runs a damped spring per axis.
type springFollower struct {
	spring harmonica.Spring
	vel    mesh.Vec2
}

func (f *springFollower) step(current, target mesh.Vec2) mesh.Vec2 {
	var next mesh.Vec2
	next.X, f.vel.X = f.spring.Update(current.X, f.vel.X, target.X)
	next.Y, f.vel.Y = f.spring.Update(current.Y, f.vel.Y, target.Y)
	return next
}

func (f *springFollower) velocity() mesh.Vec2 { return f.vel }

func (f *springFollower) setVelocity(v mesh.Vec2) { f.vel = v }
