// cmd/pathviz3d/main.go
package main

import (
	"log"
	"math"

	"go-pathfinder/internal/config"
	"go-pathfinder/internal/utils"
	"go-pathfinder/pkg/hexgeom"
	"go-pathfinder/pkg/hexmap"
	"go-pathfinder/pkg/pathfind"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Vector3Lerp performs linear interpolation between two vectors.
func Vector3Lerp(v1, v2 rl.Vector3, t float32) rl.Vector3 {
	return rl.Vector3Add(v1, rl.Vector3Scale(rl.Vector3Subtract(v2, v1), t))
}

// ColorLerp performs linear interpolation between two colors.
func ColorLerp(c1, c2 rl.Color, t float32) rl.Color {
	return rl.NewColor(
		uint8(float32(c1.R)*(1-t)+float32(c2.R)*t),
		uint8(float32(c1.G)*(1-t)+float32(c2.G)*t),
		uint8(float32(c1.B)*(1-t)+float32(c2.B)*t),
		uint8(float32(c1.A)*(1-t)+float32(c2.A)*t),
	)
}

type scene struct {
	hexMap *hexmap.Map
	result pathfind.Result[hexmap.MapNode]
	onPath map[hexgeom.Hex]struct{}
	closed map[hexgeom.Hex]struct{}
	mode   pathfind.HeuristicMode
	seed   int64
}

func newScene(seed int64, mode pathfind.HeuristicMode) *scene {
	s := &scene{mode: mode, seed: seed}
	s.hexMap = hexmap.Generate(config.MapRadius, config.HexSize, utils.NewRand(seed))
	s.search()
	return s
}

// search runs the full query once and keeps both the path and the visited set
// so the viewer can show how much of the map the heuristic explored.
func (s *scene) search() {
	stepper, err := pathfind.NewStepper(
		s.hexMap.Node(s.hexMap.Entry),
		s.hexMap.Node(s.hexMap.Exit),
		pathfind.WithHeuristic(s.mode),
	)
	if err != nil {
		log.Fatal(err)
	}
	var snap pathfind.StepSnapshot[hexmap.MapNode]
	for !stepper.Done() {
		if snap, err = stepper.Step(); err != nil {
			log.Fatal(err)
		}
	}
	s.result = stepper.Result()

	s.onPath = make(map[hexgeom.Hex]struct{}, len(s.result.Path))
	for _, node := range s.result.Path {
		s.onPath[node.Hex()] = struct{}{}
	}
	s.closed = make(map[hexgeom.Hex]struct{}, len(snap.Closed))
	for node := range snap.Closed {
		s.closed[node.Hex()] = struct{}{}
	}

	if s.result.Found {
		log.Printf("%s: path of %d nodes, cost %.2f, %d expanded",
			s.mode, len(s.result.Path), s.result.Cost, s.result.Expanded)
	} else {
		log.Printf("%s: no path, %d expanded", s.mode, s.result.Expanded)
	}
}

func main() {
	const screenWidth = 1280
	const screenHeight = 720
	backgroundColor := rl.NewColor(10, 10, 20, 255)

	rl.InitWindow(screenWidth, screenHeight, "Pathfinder 3D | Q/E - Rotate, Wheel - Angle, 1-5 - Heuristic, R - Regenerate")
	rl.SetTargetFPS(60)

	camera := rl.Camera3D{}
	camera.Up = rl.NewVector3(0, 1, 0)
	camera.Projection = rl.CameraPerspective

	isoPos := rl.NewVector3(80, 180, 180)
	topDownPos := rl.NewVector3(0, 400, 0.1)
	target := rl.NewVector3(0, 0, 0)
	isoFovy := float32(55.0)
	topDownFovy := float32(35.0)
	cameraAngleT := float32(0.5)

	var seed int64 = 1
	s := newScene(seed, pathfind.HexagonalDistance)

	const coordScale = 0.5
	const hexSizeRender = 10.0

	modeKeys := map[int32]pathfind.HeuristicMode{
		rl.KeyOne:   pathfind.EuclideanDistance,
		rl.KeyTwo:   pathfind.EuclideanDistance2D,
		rl.KeyThree: pathfind.ManhattanDistance,
		rl.KeyFour:  pathfind.ManhattanDistance2D,
		rl.KeyFive:  pathfind.HexagonalDistance,
	}

	for !rl.WindowShouldClose() {
		if rl.IsKeyDown(rl.KeyQ) {
			isoPos = rl.Vector3RotateByAxisAngle(isoPos, camera.Up, -0.02)
		}
		if rl.IsKeyDown(rl.KeyE) {
			isoPos = rl.Vector3RotateByAxisAngle(isoPos, camera.Up, 0.02)
		}
		wheel := rl.GetMouseWheelMove()
		if wheel != 0 {
			cameraAngleT += wheel * 0.05
			if cameraAngleT > 0.99 {
				cameraAngleT = 0.99
			} else if cameraAngleT < 0.0 {
				cameraAngleT = 0.0
			}
		}
		for key, mode := range modeKeys {
			if rl.IsKeyPressed(key) && s.mode != mode {
				s.mode = mode
				s.search()
			}
		}
		if rl.IsKeyPressed(rl.KeyR) {
			seed++
			s = newScene(seed, s.mode)
		}

		camera.Position = Vector3Lerp(isoPos, topDownPos, cameraAngleT)
		camera.Target = target
		camera.Fovy = isoFovy + (topDownFovy-isoFovy)*cameraAngleT

		rl.BeginDrawing()
		rl.ClearBackground(backgroundColor)
		rl.BeginMode3D(camera)

		for h, tile := range s.hexMap.Tiles {
			pixelX, pixelY := h.ToPixel(hexSizeRender)

			var baseColor rl.Color
			switch {
			case h == s.hexMap.Entry:
				baseColor = rl.SkyBlue
			case h == s.hexMap.Exit:
				baseColor = rl.Red
			case !tile.Passable:
				baseColor = rl.Gray
			default:
				if _, ok := s.onPath[h]; ok {
					baseColor = rl.Gold
				} else if _, ok := s.closed[h]; ok {
					baseColor = rl.NewColor(70, 90, 130, 255)
				} else {
					baseColor = rl.NewColor(100, 140, 110, 255)
				}
			}

			x := float32(pixelX) * coordScale
			z := float32(pixelY) * coordScale
			radius := float32(hexSizeRender * 0.5)
			elevation := float32(s.hexMap.Heights[h]/config.HexSize) * 4
			hexPos := rl.NewVector3(x, elevation, z)

			distance := rl.Vector3Distance(camera.Position, hexPos)
			fogStart := float32(150.0)
			fogEnd := float32(350.0)
			fogFactor := (distance - fogStart) / (fogEnd - fogStart)
			fogFactor = float32(math.Max(0, math.Min(1, float64(fogFactor))))

			finalColor := ColorLerp(baseColor, backgroundColor, fogFactor)
			columnColor := ColorLerp(rl.DarkGray, backgroundColor, fogFactor)

			capHeight := float32(2.0)
			capBottomPos := rl.NewVector3(x, elevation-1.0, z)
			rl.DrawCylinder(capBottomPos, radius, radius, capHeight, 6, finalColor)
			rl.DrawCylinderWires(capBottomPos, radius, radius, capHeight, 6, rl.DarkGray)

			if elevation > 0 {
				columnBottomPos := rl.NewVector3(x, -1.0, z)
				rl.DrawCylinder(columnBottomPos, radius, radius, elevation, 6, columnColor)
			}
		}

		rl.EndMode3D()

		rl.DrawText("1-5 heuristic | R regenerate | Q/E rotate | wheel angle", 10, 10, 20, rl.White)
		rl.DrawText(s.mode.String(), 10, 35, 20, rl.Gold)
		rl.DrawFPS(10, 64)

		rl.EndDrawing()
	}

	rl.CloseWindow()
}
