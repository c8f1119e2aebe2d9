package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/younwookim/pipehop/internal/application/replay"
	"github.com/younwookim/pipehop/internal/infrastructure/config"
	"github.com/younwookim/pipehop/internal/infrastructure/logging"
)

var replayCmd = &cobra.Command{
	Use:   "replay <file>",
	Short: "Re-run a recording without a window",
	Long: `Plays a file written by --record through the simulation, headless,
and prints where the run ended. The simulation is deterministic, so the
result matches the recorded session.`,
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
	RunE:         runReplayCmd,
}

func runReplayCmd(cmd *cobra.Command, args []string) error {
	logger, err := logging.New(os.Stderr, flagLogLevel)
	if err != nil {
		return err
	}
	loader, err := newLoader(flagConfigDir)
	if err != nil {
		return err
	}

	res, err := runReplay(loader, args[0], logger)
	if err != nil {
		return err
	}
	printResult(cmd.OutOrStdout(), args[0], res)
	return nil
}

func runReplay(loader *config.Loader, path string, logger *log.Logger) (replay.Result, error) {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	data, err := replay.LoadReplay(path)
	if err != nil {
		return replay.Result{}, fmt.Errorf("load replay %s: %w", path, err)
	}
	s, err := loadSession(loader, logger)
	if err != nil {
		return replay.Result{}, err
	}

	logger.Debug("replaying", "file", path, "frames", len(data.Frames), "startLevel", data.StartLevel+1)
	return replay.Run(s, data)
}

func printResult(w io.Writer, path string, res replay.Result) {
	fmt.Fprintf(w, "Replay %s\n\n", path)
	fmt.Fprintf(w, "  %-8s %s\n", "state", res.State)
	fmt.Fprintf(w, "  %-8s %d\n", "level", res.Level)
	fmt.Fprintf(w, "  %-8s %d\n", "lives", res.Lives)
	fmt.Fprintf(w, "  %-8s %d\n", "score", res.Score)
	fmt.Fprintf(w, "  %-8s %d\n", "coins", res.Coins)
	fmt.Fprintf(w, "  %-8s %d\n", "frames", res.Frames)
}
