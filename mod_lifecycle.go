package gizmo

import (
	"github.com/gekko3d/gizmo/core"
	"github.com/go-gl/mathgl/mgl32"
)

// LifetimeComponent removes its entity once TimeLeft seconds have passed.
type LifetimeComponent struct {
	TimeLeft float32
}

type LifecycleModule struct{}

func (mod LifecycleModule) Install(app *App, cmd *Commands) {
	app.UseSystem(
		System(lifetimeSystem).
			InStage(PostUpdate),
	)
}

func lifetimeSystem(time *Time, cmd *Commands) {
	dt := time.Seconds()
	if dt <= 0 {
		return
	}
	MakeQuery1[LifetimeComponent](cmd).Map(func(eid EntityId, lt *LifetimeComponent) bool {
		lt.TimeLeft -= dt
		if lt.TimeLeft <= 0 {
			cmd.Logger().Debugf("lifetime expired for entity %d", eid)
			cmd.RemoveEntity(eid)
		}
		return true
	})
}

// DragGhostModule leaves a short-lived wire cube where a dragged target
// started once the drag ends. It needs LifecycleModule to expire them.
type DragGhostModule struct {
	Lifetime float32
	Size     float32
	Color    core.Color
}

func NewDragGhostModule() DragGhostModule {
	return DragGhostModule{Lifetime: 1.5, Size: 0.5, Color: core.RGBA(1, 1, 1, 0.5)}
}

type dragGhosts struct {
	DragGhostModule
	last    core.Drag
	hasLast bool
}

// DragGhostComponent tags the entities spawned by DragGhostModule.
type DragGhostComponent struct {
	Drag core.Drag
}

func (mod DragGhostModule) Install(app *App, cmd *Commands) {
	cmd.AddResources(&dragGhosts{DragGhostModule: mod})
	app.UseSystem(
		System(dragGhostSystem).
			InStage(PostUpdate),
	)
}

func dragGhostSystem(cmd *Commands, state *core.State, ghosts *dragGhosts) {
	d, dragging := state.Drag()
	if dragging {
		ghosts.last, ghosts.hasLast = d, true
		return
	}
	if !ghosts.hasLast {
		return
	}
	ghosts.hasLast = false

	prev := ghosts.last
	wire := NewWireCube(mgl32.Vec3{}, mgl32.Vec3{ghosts.Size, ghosts.Size, ghosts.Size}, ghosts.Color)
	tr := TransformComponent{Position: prev.StartTranslation, Rotation: prev.StartRotation, Scale: mgl32.Vec3{1, 1, 1}}
	cmd.AddEntity(wire, tr, LifetimeComponent{TimeLeft: ghosts.Lifetime}, DragGhostComponent{Drag: prev})
}
