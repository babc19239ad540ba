package main

import (
	"context"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"sitemark/internal/stress"
	"sitemark/internal/ui"
)

type exerciseOutcome struct {
	report stress.Report
	err    error
}

func runExerciseWithUI(ctx context.Context, title string, opts stress.Options) (stress.Report, error) {
	events := make(chan stress.Event, 256)
	outcomeCh := make(chan exerciseOutcome, 1)

	go func() {
		optsCopy := opts
		optsCopy.Progress = stress.ChannelSink{Ch: events}
		report, err := stress.Run(ctx, optsCopy)
		outcomeCh <- exerciseOutcome{report: report, err: err}
		close(events)
	}()

	model := ui.NewProgressModel(title, opts.Profile.Workers, events)
	program := tea.NewProgram(model, tea.WithOutput(os.Stdout))
	_, uiErr := program.Run()
	outcome := awaitOutcome(events, outcomeCh)
	if uiErr != nil {
		return outcome.report, uiErr
	}
	return outcome.report, outcome.err
}

// awaitOutcome waits for the runner to finish once the UI has stopped
// consuming events. The runner blocks on Publish when the channel buffer
// fills, so the channel is drained until the runner closes it — otherwise
// an early UI exit (ctrl-c) would leave the runner stuck and the outcome
// never delivered.
func awaitOutcome(events <-chan stress.Event, outcomeCh <-chan exerciseOutcome) exerciseOutcome {
	go func() {
		for range events {
		}
	}()
	return <-outcomeCh
}
