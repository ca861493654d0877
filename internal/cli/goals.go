package cli

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/habitloop/habitloop/internal/app/progress"
	"github.com/habitloop/habitloop/internal/daemon"
	"github.com/habitloop/habitloop/internal/domain"
)

func init() {
	goalsAddCmd.Flags().StringVar(&goalType, "type", "time", "Goal type: time, sessions, streak, mode_specific")
	goalsAddCmd.Flags().StringVar(&goalPeriod, "period", "weekly", "Period: daily, weekly, monthly, custom")
	goalsAddCmd.Flags().StringVar(&goalMode, "mode", "", "Timer mode (mode_specific goals only)")
	goalsAddCmd.Flags().Float64Var(&goalTarget, "target", 0, "Target value (seconds, sessions, or days)")
	goalsAddCmd.Flags().StringVar(&goalEnd, "end", "", "End date for custom periods (YYYY-MM-DD)")

	goalsCmd.AddCommand(goalsListCmd, goalsAddCmd, goalsPauseCmd, goalsResumeCmd, goalsRmCmd)
	rootCmd.AddCommand(goalsCmd)
}

var (
	goalType   string
	goalPeriod string
	goalMode   string
	goalTarget float64
	goalEnd    string
)

var goalsCmd = &cobra.Command{
	Use:   "goals",
	Short: "Manage goals",
}

var goalsListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List goals with their progress",
	RunE:    runGoalsList,
}

func runGoalsList(cmd *cobra.Command, args []string) error {
	d, err := daemon.New()
	if err != nil {
		return err
	}
	defer d.Close()

	goals, err := d.Goals.All()
	if err != nil {
		return err
	}

	if len(goals) == 0 {
		fmt.Println("No goals yet. Run 'habitloop goals add <name>' to get started.")
		return nil
	}

	now := time.Now()
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tPROGRESS\t\tSTATUS\tDEADLINE")
	for _, g := range goals {
		det := progress.Details(g, now)
		status := string(g.Status)
		if progress.IsFailed(g, now) {
			status = "failed"
		}
		fmt.Fprintf(w, "%s\t%s\t%3.0f%%\t%s\t%s\n",
			g.Name,
			renderBar(det.Percentage),
			det.Percentage,
			status,
			det.TimeLeft,
		)
	}
	return w.Flush()
}

const barWidth = 20

// renderBar draws a fixed-width progress bar: [=======>............]
func renderBar(pct float64) string {
	if pct < 0 {
		pct = 0
	}
	if pct > 100 {
		pct = 100
	}
	filled := int(pct / 100 * float64(barWidth))
	if filled >= barWidth {
		return "[" + strings.Repeat("=", barWidth) + "]"
	}
	if filled > 0 {
		return "[" + strings.Repeat("=", filled-1) + ">" + strings.Repeat(".", barWidth-filled) + "]"
	}
	return "[" + strings.Repeat(".", barWidth) + "]"
}

var goalsAddCmd = &cobra.Command{
	Use:   "add NAME",
	Short: "Create a goal",
	Args:  cobra.ExactArgs(1),
	RunE:  runGoalsAdd,
}

func runGoalsAdd(cmd *cobra.Command, args []string) error {
	d, err := daemon.New()
	if err != nil {
		return err
	}
	defer d.Close()

	g := domain.Goal{
		Name:   args[0],
		Type:   domain.GoalType(goalType),
		Period: domain.GoalPeriod(goalPeriod),
		Mode:   domain.TimerMode(goalMode),
		Target: goalTarget,
	}
	if goalEnd != "" {
		end, err := time.ParseInLocation("2006-01-02", goalEnd, time.Local)
		if err != nil {
			return fmt.Errorf("invalid end date: %w", err)
		}
		g.EndDate = end
	}

	created, err := d.Goals.Add(g)
	if err != nil {
		return err
	}
	fmt.Printf("Created goal %q (%s, due %s)\n",
		created.Name, created.Type, created.EndDate.Format("2006-01-02"))
	return nil
}

var goalsPauseCmd = &cobra.Command{
	Use:   "pause ID",
	Short: "Pause a goal",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return setGoalStatus(args[0], "Paused", func(d *daemon.Daemon, id string) (*domain.Goal, error) {
			return d.Goals.Pause(id)
		})
	},
}

var goalsResumeCmd = &cobra.Command{
	Use:   "resume ID",
	Short: "Resume a paused goal",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return setGoalStatus(args[0], "Resumed", func(d *daemon.Daemon, id string) (*domain.Goal, error) {
			return d.Goals.Resume(id)
		})
	},
}

func setGoalStatus(id, verb string, fn func(*daemon.Daemon, string) (*domain.Goal, error)) error {
	d, err := daemon.New()
	if err != nil {
		return err
	}
	defer d.Close()

	g, err := fn(d, id)
	if err != nil {
		return err
	}
	if g == nil {
		return domain.ErrGoalNotFound
	}
	fmt.Printf("%s %q\n", verb, g.Name)
	return nil
}

var goalsRmCmd = &cobra.Command{
	Use:   "rm ID",
	Short: "Delete a goal",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := daemon.New()
		if err != nil {
			return err
		}
		defer d.Close()

		if err := d.Goals.Delete(args[0]); err != nil {
			return err
		}
		fmt.Printf("Removed %s\n", args[0])
		return nil
	},
}
