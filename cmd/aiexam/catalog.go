package main

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/nguyencmc/app-exam-test-online-sub002/client"
)

func newCoursesCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "courses",
		Short: "List courses",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.withClient(cmd.Context(), func(ctx context.Context, c *client.Client) error {
				courses, err := c.ListCourses(ctx)
				if err != nil {
					return err
				}
				tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
				fmt.Fprintln(tw, "ID\tTITLE\tLEVEL\tLESSONS")
				for _, co := range courses {
					fmt.Fprintf(tw, "%s\t%s\t%s\t%d\n", co.ID, co.Title, co.Level, co.LessonCount)
				}
				return tw.Flush()
			})
		},
	}
}

func newExamsCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "exams",
		Short: "List exams",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.withClient(cmd.Context(), func(ctx context.Context, c *client.Client) error {
				exams, err := c.ListExams(ctx)
				if err != nil {
					return err
				}
				tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
				fmt.Fprintln(tw, "ID\tTITLE\tQUESTIONS\tMINUTES")
				for _, e := range exams {
					fmt.Fprintf(tw, "%s\t%s\t%d\t%d\n", e.ID, e.Title, e.QuestionCount, e.DurationMinutes)
				}
				return tw.Flush()
			})
		},
	}
}

func newExamCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "exam <id>",
		Short: "Show one exam with its questions",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.withClient(cmd.Context(), func(ctx context.Context, c *client.Client) error {
				e, err := c.GetExam(ctx, args[0])
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "%s (%s)\n", e.Title, e.ID)
				fmt.Fprintf(out, "%d questions, %d minutes\n", e.QuestionCount, e.DurationMinutes)
				for i, q := range e.Questions {
					fmt.Fprintf(out, "\n%d. %s\n", i+1, q.Prompt)
					for j, o := range q.Options {
						fmt.Fprintf(out, "   [%d] %s\n", j, o)
					}
				}
				return nil
			})
		},
	}
}
