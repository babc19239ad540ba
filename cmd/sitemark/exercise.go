package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"sitemark/internal/stress"
	"sitemark/internal/trace"
)

var exerciseCmd = &cobra.Command{
	Use:   "exercise [flags] [profile.toml]",
	Short: "Hammer one tracker from many goroutines",
	Long: `Exercise runs many workers over one shared tracker and verifies that
every synthetic call site reported "first" exactly once, however the
goroutines interleaved`,
	Args: cobra.MaximumNArgs(1),
	RunE: runExercise,
}

func init() {
	exerciseCmd.Flags().Int("workers", 0, "concurrent workers (0 = profile value)")
	exerciseCmd.Flags().Int("rounds", 0, "passes over the corpus per worker (0 = profile value)")
	exerciseCmd.Flags().Int("sites", 0, "distinct synthetic call sites (0 = profile value)")
	exerciseCmd.Flags().String("out", "", "write the run report (*.json for JSON, msgpack otherwise)")
	exerciseCmd.Flags().String("trace", "", "stream first/repeat events to a file (- for stderr, *.ndjson for NDJSON)")
	exerciseCmd.Flags().Int("trace-ring", 0, "keep the last N events in memory and dump them after the run")
	exerciseCmd.Flags().Bool("plain", false, "disable the progress UI even on a terminal")
}

func runExercise(cmd *cobra.Command, args []string) error {
	profile, err := exerciseProfile(cmd, args)
	if err != nil {
		return err
	}

	sink, ring, err := exerciseSinks(cmd)
	if err != nil {
		return err
	}
	defer func() {
		_ = sink.Close()
	}()

	quiet, _ := cmd.Root().PersistentFlags().GetBool("quiet")
	plain, _ := cmd.Flags().GetBool("plain")

	opts := stress.Options{Profile: profile, Trace: sink}

	var report stress.Report
	if !plain && !quiet && isTerminal(os.Stdout) {
		title := fmt.Sprintf("exercising %d workers x %d rounds x %d sites",
			profile.Workers, profile.Rounds, profile.Sites)
		report, err = runExerciseWithUI(cmd.Context(), title, opts)
	} else {
		report, err = stress.Run(cmd.Context(), opts)
	}
	if err != nil {
		return fmt.Errorf("exercise failed: %w", err)
	}

	out := cmd.OutOrStdout()
	if !quiet {
		fmt.Fprintf(out, "checks: %d  firsts: %d  repeats: %d\n",
			report.Checks, report.Firsts, report.Repeats)
	}

	if timings, _ := cmd.Root().PersistentFlags().GetBool("timings"); timings {
		fmt.Fprintf(out, "timings: total %.2f ms\n", report.Timing.TotalMS)
		for _, p := range report.Timing.Phases {
			fmt.Fprintf(out, "  %-12s %8.2f ms", p.Name, p.DurationMS)
			if p.Note != "" {
				fmt.Fprintf(out, "  // %s", p.Note)
			}
			fmt.Fprintln(out)
		}
	}

	if ring != nil && !quiet {
		fmt.Fprintln(out, "last events:")
		if err := ring.Dump(out, trace.FormatText); err != nil {
			return fmt.Errorf("failed to dump event ring: %w", err)
		}
	}

	if outPath, _ := cmd.Flags().GetString("out"); outPath != "" {
		if err := stress.WriteReport(outPath, report); err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
		if !quiet {
			fmt.Fprintf(out, "report written to %s\n", outPath)
		}
	}
	return nil
}

// exerciseProfile resolves the profile: TOML file if given, defaults
// otherwise, with positive flags overriding either.
func exerciseProfile(cmd *cobra.Command, args []string) (stress.Profile, error) {
	profile := stress.DefaultProfile()
	if len(args) == 1 {
		var err error
		if profile, err = stress.LoadProfile(args[0]); err != nil {
			return stress.Profile{}, err
		}
	}

	if workers, _ := cmd.Flags().GetInt("workers"); workers > 0 {
		profile.Workers = workers
	}
	if rounds, _ := cmd.Flags().GetInt("rounds"); rounds > 0 {
		profile.Rounds = rounds
	}
	if sites, _ := cmd.Flags().GetInt("sites"); sites > 0 {
		profile.Sites = sites
	}
	if err := profile.Validate(); err != nil {
		return stress.Profile{}, err
	}
	return profile, nil
}

// exerciseSinks builds the trace sink from --trace and --trace-ring.
// The ring is returned separately so the run can dump it afterwards.
func exerciseSinks(cmd *cobra.Command) (trace.Sink, *trace.RingSink, error) {
	var sinks []trace.Sink

	tracePath, _ := cmd.Flags().GetString("trace")
	if tracePath != "" {
		if tracePath == "-" {
			sinks = append(sinks, trace.NewStreamSink(os.Stderr, trace.FormatText))
		} else {
			f, err := os.Create(tracePath)
			if err != nil {
				return nil, nil, fmt.Errorf("failed to open trace output: %w", err)
			}
			sinks = append(sinks, trace.NewStreamSink(f, trace.DetectFormat(tracePath)))
		}
	}

	var ring *trace.RingSink
	if ringSize, _ := cmd.Flags().GetInt("trace-ring"); ringSize > 0 {
		ring = trace.NewRingSink(ringSize)
		sinks = append(sinks, ring)
	}

	return trace.NewMultiSink(sinks...), ring, nil
}
