package commands

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"tableflip.dev/mindmap/pkg/commands/options"
	"tableflip.dev/mindmap/pkg/runner/goal"
)

func addGoal(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "goal",
		Short: "Show or manage the weekly mood goal",
		Example: `
mindmap goal
mindmap goal set Happy 3
mindmap goal clear
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runGoal(cmd, goal.Goal{Action: goal.Show})
		},
	}
	options.AddOutputArg(cmd, output)

	show := &cobra.Command{
		Use:   "show",
		Short: "Show the goal and progress over the last seven days",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runGoal(cmd, goal.Goal{Action: goal.Show})
		},
	}
	options.AddOutputArg(show, output)

	set := &cobra.Command{
		Use:   "set <emotion> <times-per-week>",
		Short: "Aim to log an emotion a number of times each week",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 2 {
				return errors.New("requires an emotion and a weekly target")
			}
			if _, err := strconv.Atoi(args[1]); err != nil {
				return fmt.Errorf("target %q is not a whole number", args[1])
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			target, _ := strconv.Atoi(args[1])
			return runGoal(cmd, goal.Goal{Action: goal.Set, Emotion: args[0], Target: target})
		},
	}
	options.AddOutputArg(set, output)

	clearCmd := &cobra.Command{
		Use:   "clear",
		Short: "Remove the goal",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runGoal(cmd, goal.Goal{Action: goal.Clear})
		},
	}

	cmd.AddCommand(show, set, clearCmd)
	topLevel.AddCommand(cmd)
}

func runGoal(cmd *cobra.Command, g goal.Goal) error {
	cmd.SilenceUsage = true
	format, err := output.Format()
	if err != nil {
		return err
	}
	s, err := openSession()
	if err != nil {
		return output.HandleError(err)
	}
	out := cmd.OutOrStdout()
	g.Store = s.log
	g.Theme = styleFor(out)
	g.Output = format
	g.Out = out
	err = g.Do(cmd.Context())
	return output.HandleError(err)
}
