package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"shift-tracker/internal/delivery/telegram/flows"
	"shift-tracker/internal/view"
)

func newListCmd(a *app) *cobra.Command {
	var full bool
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List shifts, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			shifts := a.shifts.List()
			if len(shifts) == 0 {
				fmt.Fprintln(out, "No shifts recorded yet.")
				return nil
			}
			for _, s := range shifts {
				if full {
					fmt.Fprintf(out, "%s\n%s\n\n", s.ID, view.Card(s))
					continue
				}
				fmt.Fprintf(out, "%s  %s\n", s.ID, view.Line(s))
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&full, "full", false, "print every field of each shift")
	return cmd
}

func newSummaryCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Show totals and this week's earnings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), view.Summary(a.shifts.Summary(time.Now())))
			return nil
		},
	}
}

func newAddCmd(a *app) *cobra.Command {
	var (
		date, start, end, location, notes string
		tips, rate                        float64
		tags                              []string
	)
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a shift",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s := a.shifts.NewShift()
			if date != "" {
				s.Date = date
			}
			var err error
			if s.StartTime, err = flows.ParseTime(start); err != nil {
				return fmt.Errorf("--start: %w", err)
			}
			if s.EndTime, err = flows.ParseTime(end); err != nil {
				return fmt.Errorf("--end: %w", err)
			}
			s.Location, s.Notes, s.Tips = location, notes, tips
			if cmd.Flags().Changed("rate") {
				s.HourlyRate = rate
			}
			for _, t := range tags {
				s.AddTag(t)
			}

			saved, err := a.shifts.Create(cmd.Context(), s)
			if err != nil {
				return err
			}
			a.log.Info("shift created", zap.String("id", saved.ID), zap.String("date", saved.Date))
			fmt.Fprintf(cmd.OutOrStdout(), "%s\n%s\n", saved.ID, view.Card(saved))
			return nil
		},
	}
	f := cmd.Flags()
	f.StringVar(&date, "date", "", "shift date as YYYY-MM-DD (default today)")
	f.StringVar(&start, "start", "", "start time, HH:MM")
	f.StringVar(&end, "end", "", "end time, HH:MM; earlier than start means past midnight")
	f.StringVar(&location, "location", "", "where the shift was worked")
	f.Float64Var(&tips, "tips", 0, "tips earned")
	f.Float64Var(&rate, "rate", 0, "hourly rate (default from config)")
	f.StringVar(&notes, "notes", "", "free-form notes")
	f.StringSliceVar(&tags, "tag", nil, "tag the shift; repeat or comma-separate")
	_ = cmd.MarkFlagRequired("start")
	_ = cmd.MarkFlagRequired("end")
	_ = cmd.MarkFlagRequired("location")
	return cmd
}

func newRmCmd(a *app) *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a shift with its coworkers and parties",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := args[0]
			s, err := a.shifts.Get(id)
			if err != nil {
				return err
			}
			if !yes {
				return fmt.Errorf("refusing to delete %s (%s) without --yes", id, view.Line(s))
			}
			if err := a.shifts.Delete(cmd.Context(), id); err != nil {
				return err
			}
			a.log.Info("shift deleted", zap.String("id", id))
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s\n", view.Line(s))
			return nil
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "confirm the deletion")
	return cmd
}
