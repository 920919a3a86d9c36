// Package cli implements the interactive terminal shell around the
// simulation engine: the intro banner, the validated group-size prompt
// loop, and the orchestration of runs, reports, exports, and contacts
// analysis. All reads and writes go through injected streams so tests can
// script a whole session.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/tartampluch/go-paradox/internal/config"
	"github.com/tartampluch/go-paradox/internal/contacts"
	"github.com/tartampluch/go-paradox/internal/export"
	"github.com/tartampluch/go-paradox/internal/report"
	"github.com/tartampluch/go-paradox/internal/simulation"
)

// Options carries the parsed command-line settings into the shell.
type Options struct {
	// People, when positive, requests a single non-interactive run.
	People int

	// Simulations is the trial count per run.
	Simulations int

	// Seed seeds the generator; 0 picks a fresh seed.
	Seed int64

	// Lang selects the output language.
	Lang string

	// ExportPath, when set, receives the sampled trial as iCalendar data.
	ExportPath string

	// ContactsSource switches to real-group analysis of a .vcf file or URL.
	ContactsSource string

	// User and Pass authenticate remote contact sources. An empty Pass is
	// resolved through the system keyring.
	User string
	Pass string
}

// App wires the shell's collaborators together.
type App struct {
	Reporter *report.Reporter
	Runner   *simulation.Runner
	Loader   *contacts.Loader
	Clock    export.Clock
	Opts     Options

	in  *bufio.Scanner
	out io.Writer
}

// NewApp constructs the shell around the given streams.
func NewApp(in io.Reader, out io.Writer, opts Options) *App {
	if opts.Simulations <= 0 {
		opts.Simulations = config.DefaultSimulations
	}

	return &App{
		Reporter: report.NewReporter(opts.Lang),
		Runner:   &simulation.Runner{Gen: simulation.NewGenerator(opts.Seed)},
		Loader:   &contacts.Loader{Fetcher: contacts.NewHTTPFetcher()},
		Clock:    export.RealClock{},
		Opts:     opts,
		in:       bufio.NewScanner(in),
		out:      out,
	}
}

// Run executes the mode the options selected: contacts analysis, a single
// non-interactive run, or the interactive prompt loop.
func (a *App) Run(ctx context.Context) error {
	if a.Opts.ContactsSource != "" {
		return a.runContacts(ctx)
	}
	if a.Opts.People > 0 {
		return a.runOnce(a.Opts.People)
	}
	return a.runInteractive(ctx)
}

// runInteractive is the classic session: banner, prompt, simulate, repeat.
func (a *App) runInteractive(ctx context.Context) error {
	a.println(a.Reporter.Intro())

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		people, ok, err := a.promptGroupSize()
		if err != nil {
			return err
		}
		if !ok {
			// Input stream ended; treat it as a quiet quit.
			return nil
		}

		if err := a.runOnce(people); err != nil {
			return err
		}

		a.println(a.Reporter.PromptAgain())
		answer, ok := a.readLine()
		if !ok || strings.HasPrefix(strings.ToLower(strings.TrimSpace(answer)), "n") {
			return a.in.Err()
		}
		a.println("")
	}
}

// runOnce performs one full simulation and prints the complete report.
func (a *App) runOnce(people int) error {
	a.println("")
	a.println(a.Reporter.Generating(people, a.Opts.Simulations))
	a.println("")

	a.Runner.Progress = func(trial int) {
		a.println(a.Reporter.Progress(trial))
	}

	result, err := a.Runner.Run(people, a.Opts.Simulations)
	if err != nil {
		return err
	}

	a.println(a.Reporter.SimulationsRun(a.Opts.Simulations))
	a.println("")

	// Detailed report over the last trial's sample.
	occurrences := simulation.CountOccurrences(result.LastTrial)
	a.println(a.Reporter.SampleHeader())
	for _, line := range a.Reporter.OccurrenceLines(occurrences) {
		a.println(line)
	}
	a.println("")

	for _, sentence := range a.Reporter.MatchSentences(simulation.Summarize(occurrences)) {
		a.println(sentence)
	}
	a.println("")

	for _, sentence := range a.Reporter.FinalSentences(people, a.Opts.Simulations, result) {
		a.println(sentence)
	}
	a.println("")

	if a.Opts.ExportPath != "" {
		if err := export.WriteFile(a.Opts.ExportPath, result.LastTrial, a.Clock); err != nil {
			return err
		}
	}
	return nil
}

// runContacts loads a real group and reports its actual collisions.
func (a *App) runContacts(ctx context.Context) error {
	pass := a.resolvePassword()

	people, err := a.Loader.Load(ctx, a.Opts.ContactsSource, a.Opts.User, pass)
	if err != nil {
		return err
	}

	group := contacts.Analyze(people)
	a.println(a.Reporter.GroupHeader(group.Size))

	if !group.Shared {
		a.println(a.Reporter.GroupUnique())
		return nil
	}

	a.println(a.Reporter.GroupShared())
	for _, shared := range group.SharedDays {
		line := a.Reporter.OccurrenceLines(simulation.OccurrenceMap{shared.Day: len(shared.Names)})[0]
		a.println(fmt.Sprintf("%s (%s)", line, strings.Join(shared.Names, ", ")))
	}
	return nil
}

// resolvePassword prefers the explicit flag value, then the system keyring.
func (a *App) resolvePassword() string {
	if a.Opts.Pass != "" || a.Opts.User == "" {
		return a.Opts.Pass
	}
	pass, err := lookupPassword(a.Opts.User)
	if err != nil {
		slog.Debug(config.MsgPassFail,
			config.LogKeyComponent, config.CompCLI,
			config.LogKeyUser, a.Opts.User,
			config.LogKeyError, err,
		)
		return ""
	}
	return pass
}

// promptGroupSize loops until the user supplies a valid group size.
// The bool result is false when the input stream ended.
func (a *App) promptGroupSize() (int, bool, error) {
	for {
		a.println(a.Reporter.Prompt())
		a.print("> ")

		line, ok := a.readLine()
		if !ok {
			if err := a.in.Err(); err != nil {
				return 0, false, fmt.Errorf("%s: %w", config.ErrReadInput, err)
			}
			return 0, false, nil
		}

		people, valid := parseGroupSize(line)
		if valid {
			return people, true, nil
		}
		a.println(a.Reporter.PromptInvalid())
	}
}

// parseGroupSize accepts only digit strings in [1, 1000], mirroring the
// strictness of a numeric-only entry field: "23" passes, "+23", "2 3" and
// "1e2" do not.
func parseGroupSize(input string) (int, bool) {
	input = strings.TrimSpace(input)
	if input == "" {
		return 0, false
	}
	for _, r := range input {
		if r < '0' || r > '9' {
			return 0, false
		}
	}

	people, err := strconv.Atoi(input)
	if err != nil || people < config.MinGroupSize || people > config.MaxGroupSize {
		return 0, false
	}
	return people, true
}

func (a *App) readLine() (string, bool) {
	if !a.in.Scan() {
		return "", false
	}
	return a.in.Text(), true
}

func (a *App) print(s string) {
	fmt.Fprint(a.out, s)
}

func (a *App) println(s string) {
	fmt.Fprintln(a.out, s)
}
