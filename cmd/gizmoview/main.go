// Command gizmoview opens a window with a few boxes that can be moved,
// rotated and scaled with the transform gizmo.
//
// Left mouse drags a handle. Hold the right mouse button to fly the camera
// with WASD, Space and Control. T/R/S switch mode, Q toggles the space,
// Z/X/C/V/B toggle snapping, Escape quits.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/gekko3d/gizmo"
	"github.com/gekko3d/gizmo/core"
	"github.com/go-gl/mathgl/mgl32"
)

var (
	flagConfig     = flag.String("config", "", "Path to config file")
	flagSaveConfig = flag.String("save-config", "", "Write the effective config to this path and exit")
	flagDebug      = flag.Bool("debug", false, "Enable debug logging")
	flagSpace      = flag.String("space", "", "Initial gizmo space (local|world)")
)

func main() {
	flag.Parse()

	cfg, err := gizmo.LoadConfig(*flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagSpace != "" {
		cfg.Space = *flagSpace
	}

	if *flagSaveConfig != "" {
		if err := cfg.SaveTo(*flagSaveConfig); err != nil {
			fmt.Fprintf(os.Stderr, "Save config: %v\n", err)
			os.Exit(1)
		}
		return
	}

	gizmoModule, err := gizmo.TransformGizmoModuleFromConfig(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	logFile := gizmo.LogFileConfig{}
	if cfg.Logging.File != "" {
		logFile = gizmo.DefaultLogFileConfig(cfg.Logging.File)
	}

	app := gizmo.NewAppBuilder().
		UseModule(
			gizmo.LoggingModule{Prefix: "gizmoview", Level: cfg.Logging.Level, File: logFile},
			gizmo.TimeModule{},
			gizmo.NewPlatformWindow(cfg.Window.Width, cfg.Window.Height, cfg.Window.Title),
			gizmo.InputModule{},
			gizmo.FlyingCameraModule{},
			gizmoModule,
			gizmo.HierarchyModule{},
			gizmo.LifecycleModule{},
			gizmo.NewDragGhostModule(),
			LineRendererModule{Sky: core.RGB(0.12, 0.12, 0.14)},
			sceneModule{},
		).
		Build()

	log := app.Logger()
	defer log.Sync()

	app.Run()

	if r := gizmo.Resource[lineRenderer](app); r != nil {
		r.Destroy()
	}
	if ws := gizmo.Resource[gizmo.WindowState](app); ws != nil {
		ws.Destroy()
	}
}

type sceneModule struct{}

func (sceneModule) Install(app *gizmo.App, cmd *gizmo.Commands) {
	cmd.AddEntity(
		gizmo.NewCamera(mgl32.Vec3{6, 5, 9}, mgl32.Vec3{}),
		gizmo.GizmoCameraComponent{},
		gizmo.FlyingCameraComponent{Speed: 6, Sensitivity: 0.15},
	)

	grid := core.RGBA(0.35, 0.35, 0.4, 1)
	for i := -5; i <= 5; i++ {
		f := float32(i)
		cmd.AddEntity(gizmo.NewWireLine(mgl32.Vec3{f, 0, -5}, mgl32.Vec3{f, 0, 5}, grid))
		cmd.AddEntity(gizmo.NewWireLine(mgl32.Vec3{-5, 0, f}, mgl32.Vec3{5, 0, f}, grid))
	}

	box := func(pos mgl32.Vec3, color core.Color) gizmo.EntityId {
		return cmd.AddEntity(
			gizmo.NewTransform(pos),
			gizmo.NewLocalTransform(pos),
			gizmo.GizmoTargetComponent{},
			gizmo.NewWireCube(mgl32.Vec3{}, mgl32.Vec3{1, 1, 1}, color),
		)
	}

	first := box(mgl32.Vec3{0, 0.5, 0}, core.RGB(0.9, 0.9, 0.9))
	cmd.AddComponents(first, gizmo.GizmoActiveComponent{})
	box(mgl32.Vec3{-3, 0.5, 1}, core.RGB(0.6, 0.8, 1.0))
	parent := box(mgl32.Vec3{3, 0.5, -1}, core.RGB(1.0, 0.8, 0.6))

	// Child of the third box: follows it and converts drags to local space.
	child := gizmo.NewLocalTransform(mgl32.Vec3{0, 1.5, 0})
	cmd.AddEntity(
		gizmo.NewTransform(mgl32.Vec3{3, 2, -1}),
		child,
		gizmo.Parent{Entity: parent},
		gizmo.GizmoTargetComponent{},
		gizmo.NewWireSphere(mgl32.Vec3{}, 0.4, core.RGB(0.8, 1.0, 0.6)),
	)
}
