package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"smart-routine/internal/app"
	"smart-routine/internal/command"
	"smart-routine/internal/model"
	"smart-routine/internal/task"
)

var cliScope = model.Scope{UserID: "local-user", Source: model.SourceCLI}

func sayCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "say <text>",
		Short: "Run a natural-language command",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text := strings.Join(args, " ")
			return withApp(cmd.Context(), opts, func(ctx context.Context, a *app.App) error {
				out, err := a.Commands.Process(ctx, cliScope, command.ProcessInput{Text: text})
				if err != nil {
					return err
				}
				if opts.json {
					return printJSON(cmd.OutOrStdout(), map[string]string{"intent": string(out.Intent), "reply": out.Reply})
				}
				fmt.Fprintln(cmd.OutOrStdout(), out.Reply)
				return nil
			})
		},
	}
}

func tasksCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "tasks",
		Short: "List pending tasks",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd.Context(), opts, func(ctx context.Context, a *app.App) error {
				out, err := a.Tasks.ListPending(ctx)
				if err != nil {
					return err
				}
				if opts.json {
					return printJSON(cmd.OutOrStdout(), out.Tasks)
				}
				renderTasks(cmd.OutOrStdout(), out.Tasks, a.DateMath.Location())
				return nil
			})
		},
	}
}

func doneCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "done <id>",
		Short: "Complete a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd.Context(), opts, func(ctx context.Context, a *app.App) error {
				t, err := a.Tasks.MarkDone(ctx, args[0])
				if err != nil {
					return err
				}
				if opts.json {
					return printJSON(cmd.OutOrStdout(), t)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Done: %s\n", t.Title)
				return nil
			})
		},
	}
}

func rmCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a task and its calendar event",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd.Context(), opts, func(ctx context.Context, a *app.App) error {
				if err := a.Tasks.Delete(ctx, args[0]); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s\n", args[0])
				return nil
			})
		},
	}
}

func eventsCmd(opts *rootOptions) *cobra.Command {
	var (
		days  int
		limit int
	)
	cmd := &cobra.Command{
		Use:   "events",
		Short: "List upcoming Google Calendar events",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd.Context(), opts, func(ctx context.Context, a *app.App) error {
				from := time.Now().In(a.DateMath.Location())
				out, err := a.Tasks.UpcomingEvents(ctx, task.UpcomingInput{
					From:  from,
					To:    from.AddDate(0, 0, days),
					Limit: limit,
				})
				if err != nil {
					return err
				}
				if opts.json {
					return printJSON(cmd.OutOrStdout(), out.Events)
				}
				renderEvents(cmd.OutOrStdout(), out.Events, a.DateMath.Location())
				return nil
			})
		},
	}
	cmd.Flags().IntVar(&days, "days", 7, "days ahead")
	cmd.Flags().IntVar(&limit, "limit", 10, "max events")
	return cmd
}

func moodsCmd(opts *rootOptions) *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "moods",
		Short: "List recent moods",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd.Context(), opts, func(ctx context.Context, a *app.App) error {
				out, err := a.Moods.ListRecent(ctx, limit)
				if err != nil {
					return err
				}
				if opts.json {
					return printJSON(cmd.OutOrStdout(), out.Moods)
				}
				renderMoods(cmd.OutOrStdout(), out.Moods, a.DateMath.Location())
				return nil
			})
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 20, "max moods")
	return cmd
}

func suggestCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "suggest",
		Short: "Suggest a routine from your latest mood",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd.Context(), opts, func(ctx context.Context, a *app.App) error {
				out, err := a.Moods.Suggest(ctx, time.Now().In(a.DateMath.Location()))
				if err != nil {
					return err
				}
				if opts.json {
					return printJSON(cmd.OutOrStdout(), map[string]string{"suggestion": out.Suggestion})
				}
				fmt.Fprintln(cmd.OutOrStdout(), out.Suggestion)
				return nil
			})
		},
	}
}

func historyCmd(opts *rootOptions) *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recent commands",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd.Context(), opts, func(ctx context.Context, a *app.App) error {
				out, err := a.Commands.History(ctx, limit)
				if err != nil {
					return err
				}
				if opts.json {
					return printJSON(cmd.OutOrStdout(), out.Interactions)
				}
				renderHistory(cmd.OutOrStdout(), out.Interactions, a.DateMath.Location())
				return nil
			})
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 20, "max entries")
	return cmd
}
