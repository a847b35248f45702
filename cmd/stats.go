package cmd

import (
	"fmt"

	"github.com/arnavj/mathsprint/internal/curriculum"
	"github.com/arnavj/mathsprint/internal/store"
	"github.com/arnavj/mathsprint/internal/xp"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show learner statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		p, err := st.ProfileRepo().Load(cmd.Context())
		if err != nil {
			return fmt.Errorf("load profile: %w", err)
		}
		if p == nil {
			fmt.Println("No profile yet. Run mathsprint to get started.")
			return nil
		}

		prog := xp.ProgressFor(p.XP)
		fmt.Printf("Player:   %s\n", p.Username)
		fmt.Printf("Level:    %d (%d/%d XP)\n", p.Level(), prog.Current, prog.Needed)
		fmt.Printf("Total XP: %d\n", p.TotalXPEarned)
		fmt.Printf("Coins:    %d\n", p.Coins)
		fmt.Printf("Hearts:   %d/%d\n", p.Hearts, p.MaxHearts)
		fmt.Printf("Streak:   %d days (best %d)\n", p.StreakCount, p.LongestStreak)
		fmt.Printf("Lessons:  %d completed\n", p.TotalLessonsCompleted)

		progress, err := st.ProgressRepo().All(cmd.Context())
		if err != nil {
			return fmt.Errorf("load progress: %w", err)
		}
		fmt.Println()
		for _, skill := range curriculum.AllSkills() {
			c, err := curriculum.SkillCompletion(skill.ID, progress)
			if err != nil {
				return err
			}
			fmt.Printf("%-16s %d/%d lessons (%d%%)\n", skill.Name, c.Completed, c.Total, c.Percentage)
		}
		return nil
	},
}
