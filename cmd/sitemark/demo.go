package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"sitemark"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Walk through first-time call-site tracking",
	Long:  `Demo runs a short annotated walkthrough of tracker semantics: captured sites, token sites, repeats, and instance isolation`,
	Args:  cobra.NoArgs,
	RunE:  runDemo,
}

func runDemo(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	colored := useColor(cmd, os.Stdout)

	firstStyle := color.New(color.FgGreen, color.Bold)
	repeatStyle := color.New(color.Faint)
	headStyle := color.New(color.Bold)
	if !colored {
		firstStyle.DisableColor()
		repeatStyle.DisableColor()
		headStyle.DisableColor()
	}

	report := func(label string, first bool) {
		if first {
			firstStyle.Fprintf(out, "  first   %s\n", label)
		} else {
			repeatStyle.Fprintf(out, "  repeat  %s\n", label)
		}
	}

	// Один трекер — одна область "первых разов".
	tracker := sitemark.NewTracker()

	headStyle.Fprintln(out, "one call site, three executions")
	for i := 0; i < 3; i++ {
		report("looped check", tracker.FirstTimeHere())
	}

	headStyle.Fprintln(out, "two distinct call sites")
	report("site A", tracker.FirstTimeHere())
	report("site B", tracker.FirstTimeHere())

	headStyle.Fprintln(out, "token sites (manual discipline)")
	report("token welcome-banner", tracker.FirstTime(sitemark.Token("welcome-banner")))
	report("token welcome-banner", tracker.FirstTime(sitemark.Token("welcome-banner")))
	report("token whats-new", tracker.FirstTime(sitemark.Token("whats-new")))

	headStyle.Fprintln(out, "independent instances")
	demoInstanceIsolation(out, report)

	return nil
}

// demoInstanceIsolation shows that two owners with their own trackers do
// not share seen state, even for the same textual call site.
func demoInstanceIsolation(out io.Writer, report func(string, bool)) {
	a := sitemark.NewTracker()
	b := sitemark.NewTracker()

	turns := []struct {
		label   string
		tracker *sitemark.Tracker
	}{
		{"owner a, shared site", a},
		{"owner b, shared site", b},
		{"owner a, again", a},
	}
	for _, turn := range turns {
		// Одна текстовая строка — один сайт для всех трёх проверок.
		report(turn.label, turn.tracker.FirstTimeHere())
	}

	_, _ = fmt.Fprintln(out)
}
