// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"sort"
	"strconv"
	"time"

	"github.com/mdhender/advent2022"
	"github.com/mdhender/advent2022/config"
	"github.com/mdhender/advent2022/crates"
	"github.com/mdhender/advent2022/days"
	"github.com/mdhender/advent2022/inputs"
	"github.com/mdhender/advent2022/runner"
	store "github.com/mdhender/advent2022/stores/sqlite"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func main() {
	var configFile string
	addFlags := func(cmd *cobra.Command) error {
		cmd.PersistentFlags().StringVarP(&configFile, "config-file", "c", configFile, "load configuration from file")
		cmd.PersistentFlags().Bool("debug", false, "log debugging information")
		cmd.PersistentFlags().Bool("log-with-default-flags", false, "log with default flags")
		cmd.PersistentFlags().Bool("log-with-shortfile", true, "log with short file name")
		cmd.PersistentFlags().Bool("log-with-timestamp", false, "log with timestamp")
		cmd.PersistentFlags().Bool("quiet", false, "log less information")
		cmd.PersistentFlags().Bool("show-version", false, "show version")
		cmd.PersistentFlags().Bool("verbose", false, "log more information")
		cmd.PersistentFlags().String("inputs", "contents", "directory holding day_NAME.txt input files")
		cmd.PersistentFlags().String("database", "", "record answers in this history database")
		cmd.PersistentFlags().Bool("auto-eol", true, "automatically convert line endings")
		cmd.PersistentFlags().Bool("strip-cr", false, "strip CR from end-of-lines")
		return nil
	}
	var cmdRoot = &cobra.Command{
		Use:   "advent",
		Short: "Advent of Code 2022 puzzle runner",
		Long:  `Solve the Advent of Code 2022 puzzles from their input files.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logWithDefaultFlags, _ := cmd.Flags().GetBool("log-with-default-flags")
			logWithShortFileName, _ := cmd.Flags().GetBool("log-with-shortfile")
			logWithTimestamp, _ := cmd.Flags().GetBool("log-with-timestamp")
			logFlags := 0
			if logWithShortFileName {
				logFlags |= log.Lshortfile
			}
			if logWithTimestamp {
				logFlags |= log.Ltime
			}
			if logWithDefaultFlags || logFlags == 0 {
				logFlags = log.LstdFlags
			}
			log.SetFlags(logFlags)

			if debug, _ := cmd.Flags().GetBool("debug"); debug {
				slog.SetLogLoggerLevel(slog.LevelDebug)
			}

			if showVersion, _ := cmd.Flags().GetBool("show-version"); showVersion {
				fmt.Printf("advent: version %q\n", advent2022.Version().Core())
			}

			return nil
		},
	}
	cmdRoot.AddCommand(cmdRun(&configFile))
	cmdRoot.AddCommand(cmdCrates())
	cmdRoot.AddCommand(cmdHistory(&configFile))
	cmdRoot.AddCommand(cmdInitDB())
	cmdRoot.AddCommand(cmdVersion())
	if err := addFlags(cmdRoot); err != nil {
		log.Fatal(err)
	}

	if err := cmdRoot.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadConfig merges the config file, ADVENT_ environment variables and
// any flags set on the command line.
func loadConfig(cmd *cobra.Command, configFile string) (*config.Config, error) {
	v, err := config.New(afero.NewOsFs(), configFile)
	if err != nil {
		return nil, err
	}
	for key, flag := range map[string]string{
		"inputs":   "inputs",
		"database": "database",
		"auto_eol": "auto-eol",
		"strip_cr": "strip-cr",
	} {
		if err := bindFlag(v, cmd, key, flag); err != nil {
			return nil, err
		}
	}
	return config.Load(v)
}

// bindFlag lets a flag override the config, but only when it was set.
func bindFlag(v *viper.Viper, cmd *cobra.Command, key, name string) error {
	flag := cmd.Flags().Lookup(name)
	if flag == nil || !flag.Changed {
		return nil
	}
	return v.BindPFlag(key, flag)
}

// openHistory opens the history database, or returns nil if none is configured.
func openHistory(ctx context.Context, path string) (*store.SQLiteStore, error) {
	if path == "" {
		return nil, nil
	}
	return store.NewSQLiteStoreWithConfig(ctx, store.StoreConfig{Path: path})
}

func cmdRun(configFile *string) *cobra.Command {
	showTiming := false
	addFlags := func(cmd *cobra.Command) error {
		cmd.Flags().BoolVar(&showTiming, "show-timing", showTiming, "show timing for each day")
		return nil
	}
	var cmd = &cobra.Command{
		Use:          "run [day...]",
		Short:        "solve the puzzles for the given days (default all)",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			quiet, _ := cmd.Flags().GetBool("quiet")
			verbose, _ := cmd.Flags().GetBool("verbose")
			if quiet {
				verbose = false
			}

			cfg, err := loadConfig(cmd, *configFile)
			if err != nil {
				return err
			}
			if len(args) == 0 {
				for _, day := range cfg.Days {
					args = append(args, strconv.Itoa(day))
				}
			}
			list, err := days.Select(args)
			if err != nil {
				return err
			}

			history, err := openHistory(ctx, cfg.Database)
			if err != nil {
				return err
			}
			var r *runner.Runner
			if history != nil {
				defer history.Close()
				r = runner.New(afero.NewOsFs(), cfg.Inputs, history, slog.Default())
			} else {
				r = runner.New(afero.NewOsFs(), cfg.Inputs, nil, slog.Default())
			}
			r.SetLineEndings(cfg.AutoEOL, cfg.StripCR)

			started := time.Now()
			for _, day := range list {
				result, err := r.Run(ctx, day)
				if err != nil {
					if result != nil && result.Input != nil {
						if diag, ok := advent2022.DiagnosticFromError(err); ok {
							advent2022.PrintDiagnostic(os.Stderr, diag, result.Input.Path, result.Input.Lines)
						}
					}
					return fmt.Errorf("day %d: %w", day.Number, err)
				}
				if verbose {
					log.Printf("%s: %d lines, digest %s\n", day, len(result.Input.Lines), result.Input.Digest[:12])
				}
				for part, answer := range result.Answers {
					fmt.Printf("day %d part %d: %s\n", day.Number, part+1, answer)
				}
				if result.Changed {
					log.Printf("day %d: warning: answers changed from %q\n", day.Number, result.Previous)
				}
				if showTiming {
					log.Printf("day %d: solved in %v\n", day.Number, result.Elapsed)
				}
			}
			if showTiming {
				log.Printf("%d days: completed in %v\n", len(list), time.Since(started))
			}

			return nil
		},
	}
	if err := addFlags(cmd); err != nil {
		log.Fatal(err)
	}
	return cmd
}

func cmdCrates() *cobra.Command {
	mode := "both"
	showTrace := false
	addFlags := func(cmd *cobra.Command) error {
		cmd.Flags().StringVar(&mode, "mode", mode, "crane mode: single, block or both")
		cmd.Flags().BoolVar(&showTrace, "trace", showTrace, "show the top crates after each move")
		return nil
	}
	var cmd = &cobra.Command{
		Use:          "crates <input-file>",
		Short:        "run the supply stacks simulation over an input file",
		SilenceUsage: true,
		Args:         cobra.ExactArgs(1), // require path to input file
		RunE: func(cmd *cobra.Command, args []string) error {
			autoEOL, _ := cmd.Flags().GetBool("auto-eol")
			stripCR, _ := cmd.Flags().GetBool("strip-cr")

			var modes []crates.Mode
			if mode == "both" {
				modes = []crates.Mode{crates.Single, crates.Block}
			} else if m, err := crates.ParseMode(mode); err != nil {
				return err
			} else {
				modes = []crates.Mode{m}
			}

			in, err := inputs.Load(afero.NewOsFs(), args[0], inputs.WithAutoEOL(autoEOL), inputs.WithStripCR(stripCR))
			if err != nil {
				return err
			}
			p, err := crates.Parse(in.Lines)
			if err != nil {
				if diag, ok := advent2022.DiagnosticFromError(err); ok {
					advent2022.PrintDiagnostic(os.Stderr, diag, in.Path, in.Lines)
				}
				return err
			}
			log.Printf("%s: %d stacks, %d crates, %d moves\n", in.Path, len(p.Stacks), p.Stacks.Count(), len(p.Moves))

			for _, m := range modes {
				if showTrace {
					trace, err := p.Trace(m)
					for n, tops := range trace {
						if n == 0 {
							fmt.Printf("%-6s start:           %q\n", m, tops)
							continue
						}
						fmt.Printf("%-6s %-18s %q\n", m, p.Moves[n-1].String()+":", tops)
					}
					if err != nil {
						return err
					}
					continue
				}
				tops, err := p.Run(m)
				if err != nil {
					return err
				}
				fmt.Printf("%s: %s\n", m, tops)
			}

			return nil
		},
	}
	if err := addFlags(cmd); err != nil {
		log.Fatal(err)
	}
	return cmd
}

func cmdHistory(configFile *string) *cobra.Command {
	day := 0
	showDBStats := false
	addFlags := func(cmd *cobra.Command) error {
		cmd.Flags().IntVar(&day, "day", day, "only show runs for this day")
		cmd.Flags().BoolVar(&showDBStats, "show-db-stats", showDBStats, "dump row counts from each table")
		return nil
	}
	var cmd = &cobra.Command{
		Use:          "history",
		Short:        "list the answers recorded in the history database",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			cfg, err := loadConfig(cmd, *configFile)
			if err != nil {
				return err
			}
			if cfg.Database == "" {
				return fmt.Errorf("history: no database configured (use --database)")
			}
			history, err := openHistory(ctx, cfg.Database)
			if err != nil {
				return err
			}
			defer history.Close()

			runs, err := history.Runs(ctx, day)
			if err != nil {
				return err
			}
			for _, run := range runs {
				fmt.Println(formatRun(run))
			}

			if showDBStats {
				stats, err := history.Stats(ctx)
				if err != nil {
					return fmt.Errorf("get table stats: %w", err)
				}
				log.Println("database stats:")
				tables := make([]string, 0, len(stats))
				for table := range stats {
					tables = append(tables, table)
				}
				sort.Strings(tables)
				for _, table := range tables {
					log.Printf("  %-20s %d rows\n", table, stats[table])
				}
			}

			return nil
		},
	}
	if err := addFlags(cmd); err != nil {
		log.Fatal(err)
	}
	return cmd
}

// formatRun returns one history line for the run.
func formatRun(run *store.Run) string {
	if run.Status != store.RunStatusOK {
		return fmt.Sprintf("%s  day %2d  %s: %s", run.CreatedAt.Format(time.DateTime), run.Day, run.ErrorCode, run.ErrorMsg)
	}
	var answers [2]string
	copy(answers[:], run.Answers)
	return fmt.Sprintf("%s  day %2d  %-20s %-20s %v", run.CreatedAt.Format(time.DateTime), run.Day, answers[0], answers[1], run.Elapsed)
}

func cmdInitDB() *cobra.Command {
	var cmd = &cobra.Command{
		Use:          "init-db <path>",
		Short:        "create a history database",
		SilenceUsage: true,
		Args:         cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := store.InitDatabase(context.Background(), args[0]); err != nil {
				return err
			}
			log.Printf("%s: created\n", args[0])
			return nil
		},
	}
	return cmd
}

func cmdVersion() *cobra.Command {
	showBuildInfo := false
	addFlags := func(cmd *cobra.Command) error {
		cmd.Flags().BoolVar(&showBuildInfo, "build-info", showBuildInfo, "show build information")
		return nil
	}
	var cmd = &cobra.Command{
		Use:   "version",
		Short: "display the application's version number",
		RunE: func(cmd *cobra.Command, args []string) error {
			if showBuildInfo {
				fmt.Println(advent2022.Version().String())
				return nil
			}
			fmt.Println(advent2022.Version().Core())
			return nil
		},
	}
	if err := addFlags(cmd); err != nil {
		log.Fatal(err)
	}
	return cmd
}
