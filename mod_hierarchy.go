package gizmo

type HierarchyModule struct{}

func (HierarchyModule) Install(app *App, cmd *Commands) {
	app.UseSystem(
		System(TransformHierarchySystem).
			InStage(PostUpdate),
	)
}

const maxHierarchyPasses = 8

// TransformHierarchySystem mirrors root world transforms into their local
// transforms and recomputes child world transforms from their parents.
func TransformHierarchySystem(cmd *Commands) {
	MakeQuery2[LocalTransformComponent, TransformComponent](cmd).Map(func(eid EntityId, local *LocalTransformComponent, tr *TransformComponent) bool {
		if componentOf[Parent](cmd, eid) != nil {
			return true
		}
		local.Position = tr.Position
		local.Rotation = tr.Rotation
		local.Scale = tr.Scale
		return true
	})

	// Children usually have larger ids than their parents, so one pass is
	// typical; deeper or reordered chains take more.
	for pass := 0; pass < maxHierarchyPasses; pass++ {
		changed := false
		MakeQuery3[LocalTransformComponent, Parent, TransformComponent](cmd).Map(func(eid EntityId, local *LocalTransformComponent, parent *Parent, world *TransformComponent) bool {
			parentWorld := componentOf[TransformComponent](cmd, parent.Entity)
			if parentWorld == nil {
				return true
			}

			next := composeWorld(*parentWorld, *local)
			if next != *world {
				*world = next
				changed = true
			}
			return true
		})
		if !changed {
			return
		}
	}
	cmd.Logger().Warnf("hierarchy did not settle after %d passes", maxHierarchyPasses)
}

// writeWorldTransform stores a new world transform for eid. Children also
// get the matching local transform so the hierarchy pass keeps it.
func writeWorldTransform(cmd *Commands, eid EntityId, world *TransformComponent, next TransformComponent) {
	*world = next

	p := componentOf[Parent](cmd, eid)
	local := componentOf[LocalTransformComponent](cmd, eid)
	if p == nil || local == nil {
		return
	}
	parentWorld := componentOf[TransformComponent](cmd, p.Entity)
	if parentWorld == nil {
		return
	}
	*local = worldToLocal(*parentWorld, next)
}
