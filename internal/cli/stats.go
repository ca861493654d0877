package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/habitloop/habitloop/internal/daemon"
	"github.com/habitloop/habitloop/internal/domain"
)

func init() {
	rootCmd.AddCommand(statsCmd)
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show aggregate session statistics",
	RunE:  runStats,
}

func runStats(cmd *cobra.Command, args []string) error {
	d, err := daemon.New()
	if err != nil {
		return err
	}
	defer d.Close()

	stats, err := d.Recorder.Stats()
	if err != nil {
		return err
	}

	fmt.Printf("Sessions:       %d\n", stats.TotalSessions)
	fmt.Printf("Total time:     %s\n", formatDuration(stats.TotalDurationSeconds))
	fmt.Printf("Active days:    %d\n", stats.DistinctActiveDays)
	fmt.Printf("Current streak: %d days\n", stats.CurrentStreak)
	fmt.Printf("Longest streak: %d days\n", stats.LongestStreak)
	for _, mode := range domain.AllModes() {
		if n := stats.SessionsByMode[mode]; n > 0 {
			fmt.Printf("  %-12s %d\n", mode, n)
		}
	}
	return nil
}

// formatDuration renders seconds as "3h 25m" or "25m".
func formatDuration(seconds float64) string {
	total := int(seconds) / 60
	h, m := total/60, total%60
	if h > 0 {
		return fmt.Sprintf("%dh %dm", h, m)
	}
	return fmt.Sprintf("%dm", m)
}
