package cmd

import (
	"fmt"

	"github.com/arnavj/mathsprint/internal/app"
	"github.com/arnavj/mathsprint/internal/engine"
	"github.com/arnavj/mathsprint/internal/store"
	"github.com/spf13/cobra"
)

// runApp opens the store, wires the engine, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	eng := engine.New(engine.Options{
		Profiles:     st.ProfileRepo(),
		Progress:     st.ProgressRepo(),
		Achievements: st.AchievementRepo(),
		PowerUps:     st.PowerUpRepo(),
	})

	return app.Run(eng)
}
