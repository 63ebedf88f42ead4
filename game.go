package main

import (
	"fmt"
	"image/color"
	"time"

	"github.com/charmbracelet/log"
	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/milk9111/skybound/assets"
	"github.com/milk9111/skybound/common"
	"github.com/milk9111/skybound/ecs"
	"github.com/milk9111/skybound/ecs/component"
	"github.com/milk9111/skybound/ecs/entity"
	"github.com/milk9111/skybound/ecs/system"
	"github.com/milk9111/skybound/input"
	"github.com/milk9111/skybound/levels"
	"github.com/milk9111/skybound/prefabs"
	"github.com/milk9111/skybound/storage"
)

type scene int

const (
	sceneMenu scene = iota
	scenePlaying
	scenePaused
	sceneEnded
)

const outcomeQuit = "quit"

type Options struct {
	Level    string
	Debug    bool
	TPS      int
	Bindings input.Bindings
	Results  *storage.Store // nil disables recording
}

type Game struct {
	opts  Options
	scene scene
	quit  bool

	level     *levels.Level
	images    *assets.Loader
	input     *input.EbitenSource
	world     *ecs.World
	scheduler *ecs.Scheduler
	frameStep time.Duration

	render *system.RenderSystem
	hud    *system.HUDSystem

	menuUI  *ebitenui.UI
	pauseUI *ebitenui.UI
	endUI   *ebitenui.UI

	watcher *prefabs.Watcher
}

// NewGame validates the level up front so a bad file fails before the
// window opens. The game starts on the main menu.
func NewGame(opts Options) (*Game, error) {
	lvl, err := levels.Load(opts.Level)
	if err != nil {
		return nil, err
	}
	if opts.TPS <= 0 {
		opts.TPS = ebiten.DefaultTPS
	}

	g := &Game{
		opts:      opts,
		scene:     sceneMenu,
		level:     lvl,
		images:    assets.NewLoader(),
		input:     input.NewEbitenSource(opts.Bindings),
		frameStep: time.Second / time.Duration(opts.TPS),
		render:    system.NewRenderSystem(),
	}
	g.render.Debug = opts.Debug
	g.menuUI = newMainMenuUI(g)
	g.pauseUI = newPauseUI(g)

	if opts.Debug {
		w, err := prefabs.NewWatcher("prefabs", "prefabs/scripts")
		if err != nil {
			log.Warn("prefab hot reload disabled", "err", err)
		} else {
			g.watcher = w
		}
	}
	return g, nil
}

func (g *Game) Close() error {
	if g.watcher != nil {
		return g.watcher.Close()
	}
	return nil
}

// startLevel builds a fresh world for the level and begins play.
func (g *Game) startLevel() error {
	w := ecs.NewWorld()
	if _, err := entity.LoadLevelToWorld(w, g.level, g.images); err != nil {
		return fmt.Errorf("start level %s: %w", g.levelName(), err)
	}

	g.world = w
	g.scheduler = system.NewGameplayScheduler(g.input)
	g.hud = system.NewHUDSystem(assetNotices(g.images.Failures())...)
	g.input.Reset()
	g.scene = scenePlaying
	log.Info("level started", "level", g.levelName())
	return nil
}

func (g *Game) Update() error {
	if g.quit {
		return ebiten.Termination
	}

	switch g.scene {
	case sceneMenu:
		g.menuUI.Update()
	case scenePlaying:
		return g.updatePlaying()
	case scenePaused:
		if g.input.PausePressed() {
			g.resume()
			return nil
		}
		g.pauseUI.Update()
	case sceneEnded:
		g.endUI.Update()
	}
	return nil
}

func (g *Game) updatePlaying() error {
	g.input.Capture()
	if g.input.PausePressed() {
		g.scene = scenePaused
		return nil
	}
	if g.reloadChanged() {
		return nil
	}

	g.scheduler.Advance(g.world, g.frameStep)
	for _, evt := range g.world.Events().Drain() {
		switch evt.Kind {
		case ecs.EventLevelComplete, ecs.EventGameOver:
			g.finish()
		}
	}
	return nil
}

// reloadChanged rebuilds the level when prefab files changed on disk.
func (g *Game) reloadChanged() bool {
	if g.watcher == nil {
		return false
	}
	select {
	case err, ok := <-g.watcher.Errors:
		if ok {
			log.Warn("prefab watcher", "err", err)
		}
	default:
	}

	changed := g.watcher.Drain()
	if len(changed) == 0 {
		return false
	}
	log.Info("prefabs changed, reloading level", "files", changed)
	if err := g.startLevel(); err != nil {
		// Keep playing the previous world until the files are fixed.
		log.Error("reload failed", "err", err)
		return false
	}
	return true
}

func (g *Game) resume() {
	g.input.Reset()
	g.scheduler.Reset()
	g.scene = scenePlaying
}

// finish records the ended session and shows the end screen.
func (g *Game) finish() {
	session := sessionOf(g.world)
	if session == nil {
		return
	}
	g.record(session.State.String(), session.EndTick)

	title := "Level Complete!"
	if session.State == component.SessionGameOver {
		title = "Game Over"
	}
	g.endUI = newEndUI(g, title)
	g.scene = sceneEnded
}

// quitToMenu abandons the current level.
func (g *Game) quitToMenu() {
	if g.scene == scenePaused && g.world != nil {
		g.record(outcomeQuit, g.world.Tick())
	}
	g.world = nil
	g.scheduler = nil
	g.scene = sceneMenu
}

func (g *Game) record(outcome string, ticks uint64) {
	if g.opts.Results == nil || g.world == nil {
		return
	}
	result := storage.Result{
		Level:      g.levelName(),
		Outcome:    outcome,
		Ticks:      int64(ticks),
		HealthLeft: playerHealth(g.world),
	}
	if _, err := g.opts.Results.RecordResult(result); err != nil {
		log.Error("record result", "err", err)
	}
}

func (g *Game) levelName() string {
	if g.level != nil && g.level.Name != "" {
		return g.level.Name
	}
	if g.opts.Level != "" {
		return g.opts.Level
	}
	return levels.DefaultLevel
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)

	if g.world != nil && g.scene != sceneMenu {
		g.render.Draw(g.world, screen)
		g.hud.Draw(g.world, screen)
	}

	switch g.scene {
	case sceneMenu:
		g.menuUI.Draw(screen)
	case scenePaused:
		g.pauseUI.Draw(screen)
	case sceneEnded:
		g.endUI.Draw(screen)
	}
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return common.BaseWidth, common.BaseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}

func sessionOf(w *ecs.World) *component.Session {
	if w == nil {
		return nil
	}
	e, ok := ecs.First(w, component.SessionComponent.Kind())
	if !ok {
		return nil
	}
	s, _ := ecs.Get(w, e, component.SessionComponent.Kind())
	return s
}

func playerHealth(w *ecs.World) int {
	player, ok := ecs.First(w, component.PlayerTagComponent.Kind())
	if !ok {
		return 0
	}
	health, ok := ecs.Get(w, player, component.HealthComponent.Kind())
	if !ok {
		return 0
	}
	return health.Current
}

func assetNotices(failed []string) []string {
	if len(failed) == 0 {
		return nil
	}
	notices := make([]string, 0, len(failed))
	for _, path := range failed {
		notices = append(notices, "missing sprite: "+path)
	}
	return notices
}
