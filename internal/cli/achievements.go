package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/habitloop/habitloop/internal/daemon"
)

func init() {
	achievementsCmd.Flags().BoolVar(&achievementsAll, "all", false, "Show locked achievements too")
	rootCmd.AddCommand(achievementsCmd)
}

var achievementsAll bool

var achievementsCmd = &cobra.Command{
	Use:   "achievements",
	Short: "Show unlocked achievements",
	RunE:  runAchievements,
}

func runAchievements(cmd *cobra.Command, args []string) error {
	d, err := daemon.New()
	if err != nil {
		return err
	}
	defer d.Close()

	stats, err := d.Recorder.Stats()
	if err != nil {
		return err
	}
	history, err := d.Recorder.History()
	if err != nil {
		return err
	}
	snapshot, err := d.Achievements.Snapshot(stats, history)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	for _, a := range snapshot {
		if a.Unlocked {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
				a.Icon, a.Name, a.Rarity, a.UnlockedAt.Format("2006-01-02"))
		} else if achievementsAll {
			fmt.Fprintf(w, "?\t%s\t%s\t%.0f/%.0f\n",
				a.Name, a.Rarity, a.Progress, a.Requirement)
		}
	}
	if err := w.Flush(); err != nil {
		return err
	}

	unlocked, err := d.Achievements.UnlockedCount()
	if err != nil {
		return err
	}
	fmt.Printf("\n%d of %d unlocked\n", unlocked, d.Achievements.TotalCount())
	return nil
}
