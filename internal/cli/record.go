package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/habitloop/habitloop/internal/daemon"
	"github.com/habitloop/habitloop/internal/domain"
)

func init() {
	recordCmd.Flags().StringVar(&recordMode, "mode", "focus", "Timer mode: focus, short_break, long_break")
	recordCmd.Flags().BoolVar(&recordAbandoned, "abandoned", false, "Mark the session as abandoned early")
	rootCmd.AddCommand(recordCmd)
}

var (
	recordMode      string
	recordAbandoned bool
)

var recordCmd = &cobra.Command{
	Use:   "record MINUTES",
	Short: "Record a finished timer session",
	Args:  cobra.ExactArgs(1),
	RunE:  runRecord,
}

func runRecord(cmd *cobra.Command, args []string) error {
	var minutes float64
	if _, err := fmt.Sscanf(args[0], "%f", &minutes); err != nil || minutes <= 0 {
		return fmt.Errorf("invalid minutes: %q", args[0])
	}

	d, err := daemon.New()
	if err != nil {
		return err
	}
	defer d.Close()

	var completed *bool
	if recordAbandoned {
		f := false
		completed = &f
	}

	rec, result, err := d.Recorder.Record(domain.TimerMode(recordMode), minutes*60, time.Now(), completed)
	if err != nil {
		return err
	}

	fmt.Printf("Recorded %.0f min %s session\n", rec.DurationSeconds/60, rec.Mode)
	if result == nil {
		return nil
	}
	for _, g := range result.CompletedGoals {
		fmt.Printf("  Goal completed: %s\n", g.Name)
	}
	for _, a := range result.NewlyUnlocked {
		fmt.Printf("  Achievement unlocked: %s %s — %s\n", a.Icon, a.Name, a.Description)
	}
	if result.Stats.CurrentStreak > 1 {
		fmt.Printf("  Streak: %d days\n", result.Stats.CurrentStreak)
	}
	return nil
}
