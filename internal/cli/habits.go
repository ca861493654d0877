package cli

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/habitloop/habitloop/internal/daemon"
	"github.com/habitloop/habitloop/internal/domain"
)

func init() {
	habitsAddCmd.Flags().StringVar(&habitCategory, "category", "", "Habit category")
	habitsAddCmd.Flags().StringVar(&habitFreq, "frequency", "daily", "Frequency: daily, weekly, monthly")
	habitsListCmd.Flags().BoolVar(&habitsAll, "all", false, "Include archived habits")

	habitsCmd.AddCommand(habitsListCmd, habitsAddCmd, habitsDoneCmd, habitsArchiveCmd, habitsRmCmd)
	rootCmd.AddCommand(habitsCmd)
}

var (
	habitCategory string
	habitFreq     string
	habitsAll     bool
)

var habitsCmd = &cobra.Command{
	Use:   "habits",
	Short: "Manage habits",
}

var habitsListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List habits with their streaks",
	RunE:    runHabitsList,
}

func runHabitsList(cmd *cobra.Command, args []string) error {
	d, err := daemon.New()
	if err != nil {
		return err
	}
	defer d.Close()

	habits, err := d.Habits.List(habitsAll)
	if err != nil {
		return err
	}

	if len(habits) == 0 {
		fmt.Println("No habits yet. Run 'habitloop habits add <name>' to get started.")
		return nil
	}

	now := time.Now()
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tCATEGORY\tFREQUENCY\tSTREAK")
	for _, h := range habits {
		streak, err := d.Habits.Streak(h.ID, now)
		if err != nil {
			streak = 0
		}
		name := h.Name
		if h.Archived {
			name += " (archived)"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\n", h.ID, name, h.Category, h.Frequency, streak)
	}
	return w.Flush()
}

var habitsAddCmd = &cobra.Command{
	Use:   "add NAME",
	Short: "Create a habit",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := daemon.New()
		if err != nil {
			return err
		}
		defer d.Close()

		h, err := d.Habits.Add(domain.Habit{
			Name:      args[0],
			Category:  habitCategory,
			Frequency: domain.HabitFrequency(habitFreq),
		})
		if err != nil {
			return err
		}
		fmt.Printf("Created habit %q (%s)\n", h.Name, h.ID)
		return nil
	},
}

var habitsDoneCmd = &cobra.Command{
	Use:   "done ID",
	Short: "Mark a habit completed for today",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := daemon.New()
		if err != nil {
			return err
		}
		defer d.Close()

		recorded, err := d.Habits.Complete(args[0], time.Now())
		if err != nil {
			return err
		}
		if !recorded {
			fmt.Println("Already completed today.")
			return nil
		}
		streak, _ := d.Habits.Streak(args[0], time.Now())
		fmt.Printf("Done. Streak: %d days\n", streak)
		return nil
	},
}

var habitsArchiveCmd = &cobra.Command{
	Use:   "archive ID",
	Short: "Archive a habit (keeps its history)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := daemon.New()
		if err != nil {
			return err
		}
		defer d.Close()

		if err := d.Habits.Archive(args[0]); err != nil {
			return err
		}
		fmt.Printf("Archived %s\n", args[0])
		return nil
	},
}

var habitsRmCmd = &cobra.Command{
	Use:   "rm ID",
	Short: "Delete a habit and its completion log",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := daemon.New()
		if err != nil {
			return err
		}
		defer d.Close()

		if err := d.Habits.Delete(args[0]); err != nil {
			return err
		}
		fmt.Printf("Removed %s\n", args[0])
		return nil
	},
}
