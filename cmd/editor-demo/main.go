package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"scene-editor/core"
	"scene-editor/editor"
	"scene-editor/internal/opengl"
	"scene-editor/math"
	"scene-editor/scene"
)

// Scripted walkthrough of the edit history: builds a small scene with real
// GPU-backed meshes, drives every action kind through the editor, then
// unwinds and replays the whole session. Run with -gltf to import a model
// as the starting content instead of primitives.
func main() {
	gltfPath := flag.String("gltf", "", "optional .glb/.gltf file to import")
	verbose := flag.Bool("v", false, "debug logging")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	if err := run(*gltfPath, logger); err != nil {
		logger.Error("demo failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run(gltfPath string, logger *slog.Logger) error {
	// A GL context is only needed so mesh uploads/releases hit a real GPU.
	cfg := core.DefaultWindowConfig()
	cfg.Visible = false
	window, err := core.NewWindow(cfg)
	if err != nil {
		return fmt.Errorf("window: %w", err)
	}
	defer window.Destroy()

	backend, err := opengl.NewBackend()
	if err != nil {
		return fmt.Errorf("backend: %w", err)
	}

	s := scene.NewScene()
	s.Backend = backend
	ed := editor.New(s, logger)

	// Create
	cube := scene.NewNode("Cube")
	cube.Mesh = scene.CreateCube(1)
	if err := backend.UploadMesh(cube.Mesh); err != nil {
		return fmt.Errorf("upload cube: %w", err)
	}
	ed.AddNode(cube)

	anchor := scene.NewNode("Anchor")
	anchor.SetPosition(math.Vec3{X: 5, Y: 0, Z: 0})
	ed.AddNode(anchor)

	if gltfPath != "" {
		result, err := scene.LoadGLTF(gltfPath)
		if err != nil {
			return fmt.Errorf("import: %w", err)
		}
		for _, tex := range result.Textures {
			if err := backend.UploadTexture(tex); err != nil {
				logger.Warn("texture upload failed", slog.String("texture", tex.Name))
			}
		}
		for _, root := range result.Roots {
			root.Traverse(func(n *scene.Node) {
				if n.Mesh != nil {
					if err := backend.UploadMesh(n.Mesh); err != nil {
						logger.Warn("mesh upload failed", slog.String("mesh", n.Mesh.Name))
					}
				}
			})
			ed.AddNode(root)
		}
	}

	// Transform, reparent, property change
	ed.MoveNode(cube, math.Vec3{X: 5, Y: 0, Z: 0})
	ed.ReparentNode(cube, anchor)
	if err := ed.SetProperty(cube, "name", "Cube_1"); err != nil {
		return err
	}

	pos, _, _ := cube.WorldPose()
	logger.Info("after edits",
		slog.String("cube", cube.Name),
		slog.Float64("world_x", float64(pos.X)))

	// Unwind everything, then replay it.
	for ed.Undo() {
	}
	logger.Info("history unwound", slog.Bool("can_undo", ed.CanUndo()))
	for ed.Redo() {
	}
	logger.Info("history replayed", slog.Bool("can_redo", ed.CanRedo()))

	// Undoing the cube's creation freed its buffers, so re-upload before
	// exercising delete; the delete releases them exactly once.
	if err := backend.UploadMesh(cube.Mesh); err != nil {
		return fmt.Errorf("re-upload cube: %w", err)
	}
	ed.DeleteNode(cube)
	ed.Undo() // node comes back, CPU-side only
	return nil
}
