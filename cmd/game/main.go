// pipehop is a single-screen platformer: run, jump, stomp and reach the flag
// on each of four levels.
//
// Usage:
//
//	pipehop                 - Play
//	pipehop replay <file>   - Re-run a recording without a window
//	pipehop levels          - List levels
//
// Global flags:
//
//	--config <dir>      - Load configs from a directory instead of the embedded set
//	--log-level <lvl>   - debug, info, warn or error (default: info)
//
// Play flags:
//
//	--level <n>         - Start on level n (1-based)
//	--record <file>     - Record input for replay (a directory gets a timestamped file)
//	--watch             - Reload physics.yaml on change (needs --config)
package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	"github.com/younwookim/pipehop/internal/application/game"
	"github.com/younwookim/pipehop/internal/application/replay"
	"github.com/younwookim/pipehop/internal/application/scene/menu"
	"github.com/younwookim/pipehop/internal/application/scene/playing"
	"github.com/younwookim/pipehop/internal/application/session"
	"github.com/younwookim/pipehop/internal/application/system"
	"github.com/younwookim/pipehop/internal/infrastructure/config"
	"github.com/younwookim/pipehop/internal/infrastructure/logging"
	"github.com/younwookim/pipehop/internal/infrastructure/watch"
)

var (
	// Global flags
	flagConfigDir string
	flagLogLevel  string

	// Play flags
	flagLevel  int
	flagRecord string
	flagWatch  bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "pipehop",
	Short: "Pipe Hop - a single-screen platformer",
	Long: `Pipe Hop is a single-screen platformer with four levels.

Examples:
  pipehop
  pipehop --level 3
  pipehop --record run.json
  pipehop replay run.json
  pipehop --config ./configs --watch`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         runPlay,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config", "", "Config directory (default: embedded configs)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.Flags().IntVar(&flagLevel, "level", 1, "Level to start on (1-based)")
	rootCmd.Flags().StringVar(&flagRecord, "record", "", "Record input to file, or to a timestamped file in a directory")
	rootCmd.Flags().BoolVar(&flagWatch, "watch", false, "Reload physics.yaml when it changes (requires --config)")

	rootCmd.AddCommand(replayCmd)
	rootCmd.AddCommand(levelsCmd)
}

// newLoader returns a loader over --config, or over the embedded configs
func newLoader(dir string) (*config.Loader, error) {
	if dir != "" {
		return config.NewLoader(dir), nil
	}
	fsys, err := fs.Sub(configFS, "configs")
	if err != nil {
		return nil, fmt.Errorf("embedded configs: %w", err)
	}
	return config.NewFSLoader(fsys, "configs"), nil
}

// resolveRecordPath names a timestamped file when path is a directory
func resolveRecordPath(path string) string {
	if path == "" {
		return ""
	}
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		return filepath.Join(path, replay.GenerateFilename())
	}
	return path
}

// loadSession loads every config and builds a validated session
func loadSession(loader *config.Loader, logger *log.Logger) (*session.Session, error) {
	gc, err := loader.LoadAll()
	if err != nil {
		return nil, fmt.Errorf("load config from %s: %w", loader.BasePath(), err)
	}
	s, err := session.New(gc, logger)
	if err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}
	return s, nil
}

func runPlay(cmd *cobra.Command, args []string) error {
	logger, err := logging.New(os.Stderr, flagLogLevel)
	if err != nil {
		return err
	}

	loader, err := newLoader(flagConfigDir)
	if err != nil {
		return err
	}
	s, err := loadSession(loader, logger)
	if err != nil {
		return err
	}
	if err := s.SetStartLevel(flagLevel - 1); err != nil {
		return fmt.Errorf("--level: %w", err)
	}

	var watcher *watch.Watcher
	if flagWatch {
		if flagConfigDir == "" {
			return errors.New("--watch requires --config")
		}
		watcher, err = watch.New(flagConfigDir)
		if err != nil {
			return fmt.Errorf("start config watcher: %w", err)
		}
		defer func() { _ = watcher.Close() }()
		logger.Info("watching configs", "dir", flagConfigDir)
	}

	display := s.Physics().Display
	input := system.NewInputSystem(s.Physics())

	menuScene := menu.New(s, input, strings.ToUpper(display.Title))
	playingScene := playing.New(s, input, playing.Options{
		RecordPath: resolveRecordPath(flagRecord),
		Watcher:    watcher,
		Loader:     loader,
		Logger:     logger,
	})
	menuScene.SetPlaying(playingScene)
	playingScene.SetMenu(menuScene)

	g := game.New(menuScene, display.ScreenWidth, display.ScreenHeight)

	scale := display.Scale
	if scale < 1 {
		scale = 1
	}
	ebiten.SetWindowSize(display.ScreenWidth*scale, display.ScreenHeight*scale)
	ebiten.SetWindowTitle(display.Title)
	ebiten.SetTPS(display.Framerate)

	logger.Info("starting", "levels", s.LevelCount(), "startLevel", flagLevel, "config", loader.BasePath())
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("run game: %w", err)
	}
	logger.Info("bye")
	return nil
}
