package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/username/work-journal/pkg/timeutil"
)

func addCmd() *cobra.Command {
	var dateStr string

	cmd := &cobra.Command{
		Use:   "add <start> <end> [description...]",
		Short: "Add a work entry for a day",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			date, err := resolveDate(dateStr)
			if err != nil {
				return err
			}

			_, store, err := openJournal()
			if err != nil {
				return err
			}

			description := strings.Join(args[2:], " ")
			if err := store.Add(date, args[0], args[1], description); err != nil {
				return err
			}

			fmt.Printf("Added %s-%s on %s (day total %s)\n",
				args[0], args[1],
				date.Format("2006-01-02"),
				timeutil.FormatMinutes(store.DayTotal(date)))

			return nil
		},
	}

	cmd.Flags().StringVar(&dateStr, "date", "", "Date (YYYY-MM-DD, default today)")

	return cmd
}

func dayCmd() *cobra.Command {
	var dateStr string

	cmd := &cobra.Command{
		Use:   "day",
		Short: "List a day's entries with their indices",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			date, err := resolveDate(dateStr)
			if err != nil {
				return err
			}

			_, store, err := openJournal()
			if err != nil {
				return err
			}

			entries := store.Entries(date)
			fmt.Printf("%s, %s\n", date.Weekday(), date.Format("2006-01-02"))

			if len(entries) == 0 {
				fmt.Println("No entries for this day")
				return nil
			}

			for i, e := range entries {
				fmt.Printf("  [%d] %s - %s (%s): %s\n",
					i, e.StartTime, e.EndTime,
					timeutil.FormatMinutes(e.Duration()), e.Description)
			}
			fmt.Printf("Day Total: %s\n", timeutil.FormatMinutes(store.DayTotal(date)))

			return nil
		},
	}

	cmd.Flags().StringVar(&dateStr, "date", "", "Date (YYYY-MM-DD, default today)")

	return cmd
}

func deleteCmd() *cobra.Command {
	var dateStr string

	cmd := &cobra.Command{
		Use:   "delete <index>",
		Short: "Delete a day's entry by index",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid index %q: %w", args[0], err)
			}

			date, err := resolveDate(dateStr)
			if err != nil {
				return err
			}

			_, store, err := openJournal()
			if err != nil {
				return err
			}

			if err := store.Delete(date, index); err != nil {
				return err
			}

			fmt.Printf("Deleted entry %d on %s\n", index, date.Format("2006-01-02"))

			return nil
		},
	}

	cmd.Flags().StringVar(&dateStr, "date", "", "Date (YYYY-MM-DD, default today)")

	return cmd
}

func clearCmd() *cobra.Command {
	var dateStr string
	var yes bool

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Remove all entries for a day",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			date, err := resolveDate(dateStr)
			if err != nil {
				return err
			}

			if !yes {
				return fmt.Errorf("refusing to clear %s without --yes", date.Format("2006-01-02"))
			}

			_, store, err := openJournal()
			if err != nil {
				return err
			}

			if err := store.ClearDay(date); err != nil {
				return err
			}

			fmt.Printf("Cleared %s\n", date.Format("2006-01-02"))

			return nil
		},
	}

	cmd.Flags().StringVar(&dateStr, "date", "", "Date (YYYY-MM-DD, default today)")
	cmd.Flags().BoolVar(&yes, "yes", false, "Confirm clearing the day")

	return cmd
}
