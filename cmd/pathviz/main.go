// cmd/pathviz/main.go
package main

import (
	"log"
	"math"
	"net/http"
	_ "net/http/pprof"
	"os"

	"go-pathfinder/internal/config"
	"go-pathfinder/internal/defs"
	"go-pathfinder/internal/utils"
	"go-pathfinder/pkg/hexgeom"
	"go-pathfinder/pkg/hexmap"
	"go-pathfinder/pkg/loot"
	"go-pathfinder/pkg/pathfind"
	"go-pathfinder/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const rewardTableID = "exit-rewards"

// App animates an A* search over a procedurally generated hex map.
//
// Controls: left click sets the start, right click sets the goal, keys 1-5
// switch the heuristic mode, Space pauses, N steps once while paused, R
// regenerates the map.
type App struct {
	scenario defs.Scenario
	hexMap   *hexmap.Map
	renderer *render.HexRenderer

	start   hexgeom.Hex
	goal    hexgeom.Hex
	mode    pathfind.HeuristicMode
	stepper *pathfind.Stepper[hexmap.MapNode]
	snap    pathfind.StepSnapshot[hexmap.MapNode]
	paused  bool
	rolled  bool
}

func NewApp(scenario defs.Scenario) *App {
	mode := pathfind.HexagonalDistance
	if scenario.Heuristic != "" {
		parsed, ok := pathfind.ParseMode(scenario.Heuristic)
		if !ok {
			log.Printf("scenario %q: unknown heuristic %q, using %s", scenario.ID, scenario.Heuristic, mode)
		} else {
			mode = parsed
		}
	}
	a := &App{scenario: scenario, mode: mode}
	a.regenerate()
	return a
}

func (a *App) regenerate() {
	rng := utils.NewRand(a.scenario.Seed)
	a.hexMap = hexmap.Generate(a.scenario.MapRadius, config.HexSize, rng)
	a.renderer = render.NewHexRenderer(a.hexMap, mapColors(), config.HexSize,
		config.ScreenWidth, config.ScreenHeight, config.FontPath, config.FontSize)
	a.start = a.hexMap.Entry
	a.goal = a.hexMap.Exit
	a.restartSearch()
}

func (a *App) restartSearch() {
	opts := []pathfind.Option{pathfind.WithHeuristic(a.mode)}
	if a.scenario.MaxDistance > 0 {
		opts = append(opts, pathfind.WithMaxDistance(a.scenario.MaxDistance))
	}
	stepper, err := pathfind.NewStepper(a.hexMap.Node(a.start), a.hexMap.Node(a.goal), opts...)
	if err != nil {
		log.Fatalf("cannot start search: %v", err)
	}
	a.stepper = stepper
	a.snap = pathfind.StepSnapshot[hexmap.MapNode]{}
	a.rolled = false
}

func (a *App) Update() error {
	a.handleInput()
	if a.paused || a.stepper.Done() {
		return nil
	}
	for i := 0; i < config.StepsPerTick && !a.stepper.Done(); i++ {
		a.advance()
	}
	return nil
}

func (a *App) advance() {
	snap, err := a.stepper.Step()
	if err != nil {
		log.Fatalf("search failed: %v", err)
	}
	a.snap = snap
	if snap.Done && !a.rolled {
		a.rolled = true
		result := a.stepper.Result()
		if snap.Found {
			log.Printf("path found: %d nodes, cost %.2f, %d expanded", len(result.Path), result.Cost, result.Expanded)
			a.rollReward()
		} else {
			log.Printf("no path: %d expanded, best partial has %d nodes", result.Expanded, len(result.Path))
		}
	}
}

func (a *App) rollReward() {
	table, ok := defs.LootLibrary[rewardTableID]
	if !ok {
		return
	}
	id, err := loot.Table{Entries: table.Entries}.Roll(utils.NewRand(0))
	if err != nil {
		log.Printf("reward roll failed: %v", err)
		return
	}
	log.Printf("reward: %s", id)
}

func (a *App) handleInput() {
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		if hex, ok := a.hexUnderCursor(); ok {
			a.start = hex
			a.restartSearch()
		}
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		if hex, ok := a.hexUnderCursor(); ok {
			a.goal = hex
			a.restartSearch()
		}
	}

	modes := map[ebiten.Key]pathfind.HeuristicMode{
		ebiten.Key1: pathfind.EuclideanDistance,
		ebiten.Key2: pathfind.EuclideanDistance2D,
		ebiten.Key3: pathfind.ManhattanDistance,
		ebiten.Key4: pathfind.ManhattanDistance2D,
		ebiten.Key5: pathfind.HexagonalDistance,
	}
	for key, mode := range modes {
		if inpututil.IsKeyJustPressed(key) && a.mode != mode {
			a.mode = mode
			log.Printf("heuristic: %s", mode)
			a.restartSearch()
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		a.paused = !a.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) && a.paused && !a.stepper.Done() {
		a.advance()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		if a.scenario.Seed != 0 {
			a.scenario.Seed++
		}
		a.regenerate()
	}
}

func (a *App) hexUnderCursor() (hexgeom.Hex, bool) {
	mx, my := ebiten.CursorPosition()
	x := float64(mx) - float64(config.ScreenWidth)/2
	y := float64(my) - float64(config.ScreenHeight)/2
	hex := hexgeom.FromPixel(x, y, config.HexSize)
	return hex, a.hexMap.IsPassable(hex)
}

func (a *App) Draw(screen *ebiten.Image) {
	overlay := render.SearchOverlay{
		Open:   make(map[hexgeom.Hex]bool, len(a.snap.Open)),
		Closed: make(map[hexgeom.Hex]bool, len(a.snap.Closed)),
		Start:  &a.start,
		Goal:   &a.goal,
	}
	for node := range a.snap.Open {
		overlay.Open[node.Hex()] = true
	}
	for node := range a.snap.Closed {
		overlay.Closed[node.Hex()] = true
	}
	for _, node := range a.snap.Path {
		overlay.Path = append(overlay.Path, node.Hex())
	}
	if a.snap.StepIndex > 0 && !a.snap.Done {
		current := a.snap.Current.Hex()
		overlay.Current = &current
	}
	a.renderer.Draw(screen, overlay)
}

func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func mapColors() render.MapColors {
	return render.MapColors{
		BackgroundColor: config.BackgroundColor,
		PassableColor:   config.PassableColor,
		ImpassableColor: config.ImpassableColor,
		EntryColor:      config.EntryColor,
		ExitColor:       config.ExitColor,
		OpenColor:       config.OpenColor,
		ClosedColor:     config.ClosedColor,
		PathColor:       config.PathColor,
		CurrentColor:    config.CurrentColor,
		GuideLineColor:  config.GuideLineColor,
		TextDarkColor:   config.TextDarkColor,
		TextLightColor:  config.TextLightColor,
		StrokeWidth:     float32(config.StrokeWidth),
	}
}

func main() {
	go func() {
		log.Println(http.ListenAndServe("localhost:6060", nil))
	}()

	scenario := defs.Scenario{
		ID:          "default",
		MapRadius:   config.MapRadius,
		MaxDistance: math.Inf(1),
	}
	if len(os.Args) > 1 {
		loaded, err := defs.LoadScenario(os.Args[1])
		if err != nil {
			log.Fatal(err)
		}
		scenario = loaded
	}
	if err := defs.LoadLootTables("assets/defs/loot_tables.json"); err != nil {
		log.Printf("no loot tables: %v", err)
	}

	app := NewApp(scenario)
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Pathfinder")
	if err := ebiten.RunGame(app); err != nil {
		log.Fatal(err)
	}
}
