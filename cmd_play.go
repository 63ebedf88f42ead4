package main

import (
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	"github.com/milk9111/skybound/common"
	"github.com/milk9111/skybound/levels"
	"github.com/milk9111/skybound/storage"
)

var (
	flagLevel string
	flagDebug bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a level",
	Long: `Open the game window on the main menu. Escape pauses.

In debug mode contact boxes are outlined and edits to prefabs/*.yaml or
prefabs/scripts/*.tengo reload the level.`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagLevel, "level", levels.DefaultLevel, "Level name in levels/ (.json optional)")
	playCmd.Flags().BoolVar(&flagDebug, "debug", false, "Debug drawing, prefab hot reload and debug logging")
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, err := loadSettings(flagDebug)
	if err != nil {
		return err
	}
	bindings, err := cfg.Bindings()
	if err != nil {
		return err
	}

	var store *storage.Store
	if cfg.Results.DBPath != "" {
		store, err = storage.Open(cfg.Results.DBPath)
		if err != nil {
			return err
		}
		defer store.Close()
	}

	game, err := NewGame(Options{
		Level:    flagLevel,
		Debug:    flagDebug,
		TPS:      cfg.Window.TPS,
		Bindings: bindings,
		Results:  store,
	})
	if err != nil {
		return err
	}
	defer game.Close()

	ebiten.SetTPS(cfg.Window.TPS)
	ebiten.SetWindowTitle("Skybound")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(int(common.BaseWidth*cfg.Window.Scale), int(common.BaseHeight*cfg.Window.Scale))
	ebiten.SetFullscreen(cfg.Window.Fullscreen)

	log.Info("starting", "level", flagLevel, "debug", flagDebug, "tps", cfg.Window.TPS)
	return ebiten.RunGame(game)
}
