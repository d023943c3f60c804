package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/username/work-journal/internal/config"
	"github.com/username/work-journal/internal/journal"
	"github.com/username/work-journal/internal/schedule"
	"github.com/username/work-journal/pkg/dateutil"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	configPath string
	logger     *zap.Logger
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "work-journal",
		Short: "Personal work-hours journal",
		Long:  "Record per-day work intervals, apply a work-schedule policy, and produce weekly reports",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			cfg, err := config.Load(configPath)
			if err == nil && cfg.Log.File != "" {
				logger, err = initFileLogger(cfg.Log.File, cfg.Log.Level)
				if err != nil {
					initLogger() // Fallback to console
				}
			} else {
				initLogger()
			}
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = logger.Sync()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file path")

	rootCmd.AddCommand(addCmd())
	rootCmd.AddCommand(dayCmd())
	rootCmd.AddCommand(deleteCmd())
	rootCmd.AddCommand(clearCmd())
	rootCmd.AddCommand(importCmd())
	rootCmd.AddCommand(reportCmd())
	rootCmd.AddCommand(weekCmd())
	rootCmd.AddCommand(totalsCmd())
	rootCmd.AddCommand(settingsCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// openJournal loads config and opens the journal store behind it
func openJournal() (*config.Config, *journal.Store, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	persistence := journal.NewFilePersistence(cfg.State.JournalFile, logger)
	store, err := journal.Open(persistence, logger)
	if err != nil {
		return nil, nil, err
	}

	return cfg, store, nil
}

// newPolicy builds the schedule policy from settings, merging in the optional
// holiday file
func newPolicy(cfg *config.Config) *schedule.Policy {
	holidays := cfg.Schedule.Holidays
	if cfg.Schedule.HolidaysFile != "" {
		extra, err := schedule.LoadHolidayFile(cfg.Schedule.HolidaysFile, logger)
		if err != nil {
			logger.Warn("Failed to load holiday file, continuing with configured holidays",
				zap.Error(err))
		} else {
			holidays = append(append([]string{}, holidays...), extra...)
		}
	}

	return schedule.NewPolicy(cfg.Schedule.Mode, cfg.Schedule.FixedDays, cfg.Schedule.HolidayMode, holidays)
}

// resolveDate parses a --date value, defaulting to today
func resolveDate(dateStr string) (time.Time, error) {
	if dateStr == "" {
		return dateutil.Today(), nil
	}
	return dateutil.ParseKey(dateStr)
}

func initLogger() {
	config := zap.NewProductionConfig()
	config.EncoderConfig.TimeKey = "timestamp"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.OutputPaths = []string{"stderr"}

	var err error
	logger, err = config.Build()
	if err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}
}

func initFileLogger(logFile string, level string) (*zap.Logger, error) {
	// Setup lumberjack for log rotation
	logWriter := &lumberjack.Logger{
		Filename:   logFile,
		MaxSize:    100, // MB
		MaxBackups: 3,
		MaxAge:     28, // days
		Compress:   true,
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "timestamp"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	var zapLevel zapcore.Level
	if err := zapLevel.UnmarshalText([]byte(level)); err != nil {
		zapLevel = zapcore.InfoLevel
	}

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderConfig),
		zapcore.AddSync(logWriter),
		zapLevel,
	)

	return zap.New(core), nil
}
