package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/younwookim/pipehop/internal/domain/entity"
	"github.com/younwookim/pipehop/internal/infrastructure/config"
)

var levelsCmd = &cobra.Command{
	Use:          "levels",
	Short:        "List levels in play order",
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         runLevels,
}

func runLevels(cmd *cobra.Command, args []string) error {
	loader, err := newLoader(flagConfigDir)
	if err != nil {
		return err
	}
	levels, err := loader.LoadLevels()
	if err != nil {
		return fmt.Errorf("load levels from %s: %w", loader.BasePath(), err)
	}
	printLevels(cmd.OutOrStdout(), levels)
	return nil
}

// powerUpKinds lists power-up kinds in level order, "-" for none
func powerUpKinds(pus []config.PowerUpSpawnConfig) string {
	if len(pus) == 0 {
		return "-"
	}
	kinds := make([]string, len(pus))
	for i, pu := range pus {
		kind, ok := entity.ParsePowerUpKind(pu.Kind)
		if !ok {
			kinds[i] = pu.Kind + "?"
			continue
		}
		kinds[i] = kind.String()
	}
	return strings.Join(kinds, ",")
}

func printLevels(w io.Writer, levels []*config.LevelConfig) {
	maxIDLen := 2 // "ID" header
	for _, l := range levels {
		if len(l.ID) > maxIDLen {
			maxIDLen = len(l.ID)
		}
	}

	fmt.Fprintf(w, "  #  %-*s  %-16s %7s %5s  %s\n", maxIDLen, "ID", "Name", "Enemies", "Coins", "PowerUps")
	for i, l := range levels {
		fmt.Fprintf(w, "  %d  %-*s  %-16s %7d %5d  %s\n",
			i+1, maxIDLen, l.ID, l.Name, len(l.Enemies), len(l.Coins), powerUpKinds(l.PowerUps))
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'pipehop --level <#>' to start on a level.")
}
