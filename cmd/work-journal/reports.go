package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/username/work-journal/internal/config"
	"github.com/username/work-journal/internal/report"
	"github.com/username/work-journal/pkg/dateutil"
	"github.com/username/work-journal/pkg/timeutil"
	"go.uber.org/zap"
)

func importCmd() *cobra.Command {
	var weekStr string

	cmd := &cobra.Command{
		Use:   "import [file]",
		Short: "Bulk-import entries from text lines",
		Long: `Import entries from a file (or stdin) with one entry per line:

  <day> <start>-<end> <description>

Example: mon 9:00-17:00 Client work

Lines are anchored to the week of --week (default: the current week).`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			anchor, err := resolveDate(weekStr)
			if err != nil {
				return err
			}
			weekStart := dateutil.StartOfWeek(anchor)

			var text []byte
			if len(args) == 1 {
				text, err = os.ReadFile(args[0])
				if err != nil {
					return fmt.Errorf("failed to read import file: %w", err)
				}
			} else {
				text, err = io.ReadAll(os.Stdin)
				if err != nil {
					return fmt.Errorf("failed to read stdin: %w", err)
				}
			}

			_, store, err := openJournal()
			if err != nil {
				return err
			}

			result := store.BulkImport(string(text), weekStart)

			fmt.Printf("Imported %d entries into week %s\n",
				result.Imported, weekStart.Format("2006-01-02"))
			for _, e := range result.Errors {
				fmt.Println(e)
			}
			if len(result.Errors) > 0 {
				return fmt.Errorf("%d line(s) could not be imported", len(result.Errors))
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&weekStr, "week", "", "Any date inside the target week (YYYY-MM-DD, default today)")

	return cmd
}

func reportCmd() *cobra.Command {
	var dateStr string
	var output string
	var export bool

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Print the weekly report",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			date, err := resolveDate(dateStr)
			if err != nil {
				return err
			}
			weekStart := dateutil.StartOfWeek(date)

			_, store, err := openJournal()
			if err != nil {
				return err
			}

			text := report.Generate(weekStart, store).Text()
			fmt.Print(text)

			if export && output == "" {
				output = report.DefaultExportName(weekStart)
			}
			if output != "" {
				if err := os.WriteFile(output, []byte(text), 0o644); err != nil {
					return fmt.Errorf("failed to export report: %w", err)
				}
				logger.Info("Report exported", zap.String("file", output))
				fmt.Printf("\nReport written to %s\n", output)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&dateStr, "date", "", "Any date inside the report week (YYYY-MM-DD, default today)")
	cmd.Flags().StringVar(&output, "output", "", "Write the report to this file")
	cmd.Flags().BoolVar(&export, "export", false, "Write the report to weekly-report-<weekstart>.txt")

	return cmd
}

func weekCmd() *cobra.Command {
	var dateStr string

	cmd := &cobra.Command{
		Use:   "week",
		Short: "Show the week at a glance with schedule decorations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			date, err := resolveDate(dateStr)
			if err != nil {
				return err
			}
			weekStart := dateutil.StartOfWeek(date)

			cfg, store, err := openJournal()
			if err != nil {
				return err
			}
			policy := newPolicy(cfg)

			fmt.Printf("Week %s - %s\n\n",
				weekStart.Format("1/2/2006"),
				dateutil.EndOfWeek(weekStart).Format("1/2/2006"))

			today := dateutil.Today()
			for i := 0; i < 7; i++ {
				d := weekStart.AddDate(0, 0, i)

				marker := " "
				if dateutil.IsSameDay(d, today) {
					marker = "*"
				}

				entries := store.Entries(d)
				summary := "-"
				if len(entries) > 0 {
					spans := make([]string, len(entries))
					for j, e := range entries {
						spans[j] = e.StartTime + "-" + e.EndTime
					}
					summary = strings.Join(spans, ", ")
				}

				var tags []string
				if policy.IsHoliday(d) {
					tags = append(tags, "holiday")
				}
				if len(entries) == 0 && policy.ShouldWork(d) {
					tags = append(tags, "scheduled")
				}
				tagText := ""
				if len(tags) > 0 {
					tagText = "  [" + strings.Join(tags, ", ") + "]"
				}

				fmt.Printf("%s %s %s  %-8s %s%s\n",
					marker,
					d.Format("Mon"),
					d.Format("2006-01-02"),
					timeutil.FormatMinutes(store.DayTotal(d)),
					summary,
					tagText)
			}

			fmt.Printf("\nWeek Total: %s\n", timeutil.FormatMinutes(store.WeekTotal(weekStart)))

			return nil
		},
	}

	cmd.Flags().StringVar(&dateStr, "date", "", "Any date inside the week (YYYY-MM-DD, default today)")

	return cmd
}

func totalsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "totals",
		Short: "Show this week, last week and this month totals",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, store, err := openJournal()
			if err != nil {
				return err
			}

			today := dateutil.Today()
			thisWeek := dateutil.StartOfWeek(today)
			lastWeek := thisWeek.AddDate(0, 0, -7)

			fmt.Printf("This week:  %s\n", timeutil.FormatMinutes(store.WeekTotal(thisWeek)))
			fmt.Printf("Last week:  %s\n", timeutil.FormatMinutes(store.WeekTotal(lastWeek)))
			fmt.Printf("This month: %s\n", timeutil.FormatMinutes(store.MonthTotal(today.Year(), today.Month())))

			return nil
		},
	}

	return cmd
}

func settingsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Show or change schedule settings",
	}

	cmd.AddCommand(settingsShowCmd())
	cmd.AddCommand(settingsSetCmd())

	return cmd
}

func settingsShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show effective settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}

			fmt.Printf("mode:          %s\n", cfg.Schedule.Mode)
			fmt.Printf("fixed_days:    %v\n", cfg.Schedule.FixedDays)
			fmt.Printf("holiday_mode:  %s\n", cfg.Schedule.HolidayMode)
			fmt.Printf("dark_mode:     %v\n", cfg.Schedule.DarkMode)
			fmt.Printf("holidays:      %v\n", cfg.Schedule.Holidays)
			if cfg.Schedule.HolidaysFile != "" {
				fmt.Printf("holidays_file: %s\n", cfg.Schedule.HolidaysFile)
			}
			fmt.Printf("journal_file:  %s\n", cfg.State.JournalFile)

			return nil
		},
	}
}

func settingsSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Change a setting (mode, holiday_mode, dark_mode, fixed_days, holidays_file)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, raw := args[0], args[1]

			var value interface{}
			switch key {
			case "mode", "holiday_mode", "holidays_file":
				value = raw
			case "dark_mode":
				b, err := strconv.ParseBool(raw)
				if err != nil {
					return fmt.Errorf("invalid dark_mode value %q: %w", raw, err)
				}
				value = b
			case "fixed_days":
				var days []int
				for _, part := range strings.Split(raw, ",") {
					d, err := strconv.Atoi(strings.TrimSpace(part))
					if err != nil {
						return fmt.Errorf("invalid fixed_days value %q: %w", raw, err)
					}
					days = append(days, d)
				}
				value = days
			default:
				return fmt.Errorf("unknown setting %q", key)
			}

			if err := config.Save(configPath, "schedule."+key, value); err != nil {
				return err
			}

			// five_fixed always means Monday-Friday
			if key == "mode" && raw == "five_fixed" {
				if err := config.Save(configPath, "schedule.fixed_days", []int{1, 2, 3, 4, 5}); err != nil {
					return err
				}
			}

			fmt.Printf("Set schedule.%s = %s\n", key, raw)

			return nil
		},
	}
}
