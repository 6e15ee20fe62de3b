// Copyright 2025 The WordServe Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package main implements the hangsolve letter suggestion CLI, IPC server and self-test.

hangsolve plays the guessing side of Hangman (or Snowman). The player thinks of
a word and types its pattern, with _ for letters that are still hidden. After
every pattern hangsolve answers with the letter most likely to be in the word,
or with the word itself once only one candidate is left.

# Usage

Play interactively against the embedded word list:

	hangsolve

Use your own word list (one lowercase word per line) and enable debug mode:

	hangsolve -words /path/to/words.txt -d

Replay every four letter word in the dictionary and report the win rate:

	hangsolve -selftest -len 4 -max-misses 6

# Playing

A session starts with a fully blank pattern of the word's length:

	Type your word: _____
	I think 'e' is the best letter.

When the letter is in the word, reveal it in every position and type the new
pattern. Otherwise type the same pattern again; hangsolve counts that as a miss.

	Type your word: ____e
	I think 'a' is the best letter.

Once the word length is known it cannot change, and only guessed letters may
appear in a pattern. Patterns breaking either rule are rejected and the prompt
repeats. The session ends when hangsolve names the word, runs out of candidates,
cannot tell the remaining words apart, or the word is fully revealed.

# Configuration

Runtime configuration lives in a TOML file created with defaults on first run:

	[solver]
	exclude_full_coverage = true
	short_list_threshold = 5
	workers = 0
	parallel_threshold = 4096

	[game]
	max_misses = 0

	[dict]
	path = ""
	max_words = 0

	[cli]
	color = true
	show_candidates = true

	[selftest]
	max_misses = 6
	workers = 0
	max_turns = 26

Broken sections fall back to their defaults; the rest of the file is still used.

# IPC Protocol

With -ipc the session is driven through MessagePack over stdin/stdout instead:

	{"id": "t1", "p": "_____"}
	{"id": "t1", "k": "suggestion", "l": "e", "c": 633, "g": "e", "m": 0, "o": false, "t": 412}

See package server for the full message set.

# Command Line Flags

	-version
	    Show current version
	-d  Enable debug mode with detailed logging
	-config string
	    Path to a custom config file
	-words string
	    Word list to load instead of the embedded one
	-ipc
	    Serve a session over msgpack on stdin/stdout
	-selftest
	    Play every dictionary word and report the results
	-len int
	    Restrict the self-test to words of this length
	-max-misses int
	    Misses allowed before the game is lost (-1 uses the config)
	-no-color
	    Disable colored output
*/
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/bastiangx/hangsolve/internal/cli"
	"github.com/bastiangx/hangsolve/internal/utils"
	"github.com/bastiangx/hangsolve/pkg/config"
	"github.com/bastiangx/hangsolve/pkg/dictionary"
	"github.com/bastiangx/hangsolve/pkg/server"
	"github.com/bastiangx/hangsolve/pkg/session"
	"github.com/bastiangx/hangsolve/pkg/simulate"
	"github.com/bastiangx/hangsolve/pkg/suggest"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/mattn/go-isatty"
)

const (
	Version = "0.3.0"
	gh      = "https://github.com/bastiangx/hangsolve"
)

// sigHandler is a simple handler for OS signals to exit normally.
func sigHandler() {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		fmt.Fprintf(os.Stderr, "\nExiting...\n")
		os.Exit(0)
	}()
}

// main wires the packages together for the selected mode and only manages the flow.
func main() {
	sigHandler()

	showVersion := flag.Bool("version", false, "Show current version")
	debugMode := flag.Bool("d", false, "Toggle debug mode")
	configPath := flag.String("config", "", "Path to a custom config file")
	wordsPath := flag.String("words", "", "Word list to load instead of the embedded one")
	ipcMode := flag.Bool("ipc", false, "Serve a session over msgpack on stdin/stdout")
	selfTest := flag.Bool("selftest", false, "Play every dictionary word and report the results")
	length := flag.Int("len", 0, "Restrict the self-test to words of this length (0 for all)")
	maxMisses := flag.Int("max-misses", -1, "Misses allowed before the game is lost (-1 uses the config)")
	noColor := flag.Bool("no-color", false, "Disable colored output")

	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	if *debugMode {
		log.SetLevel(log.DebugLevel)
		log.SetReportTimestamp(true)
	} else {
		log.SetLevel(log.WarnLevel)
	}

	cfg, activePath, err := config.LoadConfigWithPriority(*configPath)
	if err != nil {
		log.Warnf("Failed to load config: %v. Using builtin defaults...", err)
		cfg = config.DefaultConfig()
	}
	log.Debugf("Using config: %s", config.GetActiveConfigPath(activePath))

	if *wordsPath != "" {
		cfg.Dict.Path = *wordsPath
	}
	dict := loadDictionary(cfg.Dict)
	log.Debug("Dictionary loaded", "words", dict.Len(), "lengths", len(dict.Lengths()))

	solver := suggest.NewSolver(dict, cfg.SolverOptions())
	ctx := context.Background()

	if *selfTest {
		opts := simulate.Options{
			MaxMisses: cfg.SelfTest.MaxMisses,
			MaxTurns:  cfg.SelfTest.MaxTurns,
			Workers:   cfg.SelfTest.Workers,
			Length:    *length,
		}
		if *maxMisses >= 0 {
			opts.MaxMisses = *maxMisses
		}
		runSelfTest(ctx, solver, dict, opts)
		return
	}

	sessOpts := cfg.SessionOptions()
	if *maxMisses >= 0 {
		sessOpts.MaxMisses = *maxMisses
	}
	sess := session.New(solver, sessOpts)

	if *ipcMode {
		log.Debug("spawning IPC")
		srv := server.NewServer(solver, sess, os.Stdin, os.Stdout)
		if err := srv.Start(ctx); err != nil {
			log.Fatalf("Server error: %v", err)
		}
		return
	}

	log.SetReportTimestamp(false)
	color := cfg.CLI.Color && !*noColor && isatty.IsTerminal(os.Stdout.Fd())
	renderer := cli.NewRenderer(color, cfg.CLI.ShowCandidates)
	inputHandler := cli.NewInputHandler(sess, os.Stdin, os.Stdout, renderer)
	if err := inputHandler.Start(ctx); err != nil {
		log.Fatalf("CLI error: %v", err)
	}
}

// loadDictionary reads the configured word list, or the embedded one when no
// path is set. Any failure here is fatal.
func loadDictionary(dc config.DictConfig) *dictionary.Dictionary {
	if dc.Path == "" {
		dict, err := dictionary.Embedded(dc.MaxWords)
		if err != nil {
			log.Fatalf("Failed to load embedded word list: %v", err)
		}
		return dict
	}

	pathResolver, err := utils.NewPathResolver(config.AppName)
	if err != nil {
		log.Fatalf("Failed to initialize path resolver: %v", err)
	}
	resolved, err := pathResolver.ResolveFile(dc.Path)
	if err != nil {
		log.Fatalf("Word list %s not found in %v", dc.Path, pathResolver.Candidates(dc.Path))
	}
	log.Debugf("Using word list at: %s", resolved)

	dict, err := dictionary.LoadFile(resolved, dc.MaxWords)
	if err != nil {
		log.Fatalf("Failed to load word list: %v", err)
	}
	return dict
}

// runSelfTest plays the dictionary and prints a summary with the failed words.
func runSelfTest(ctx context.Context, solver suggest.ISolver, dict *dictionary.Dictionary, opts simulate.Options) {
	report, err := simulate.New(solver, dict, opts).Run(ctx)
	if err != nil {
		log.Fatalf("Self-test failed: %v", err)
	}

	out := log.NewWithOptions(os.Stdout, log.Options{ReportTimestamp: false})
	for _, game := range report.Failures {
		out.Print("", "word", game.Word, "final", game.Final, "misses", game.Misses, "guesses", game.Guesses)
	}
	out.Print("===========")
	out.Print("", "games", utils.FormatWithCommas(report.Games))
	out.Print("", "solved", utils.FormatWithCommas(report.Solved),
		"rate", utils.FormatPercent(report.Solved, report.Games))
	out.Print("", "won", utils.FormatWithCommas(report.Won),
		"rate", utils.FormatPercent(report.Won, report.Games))
	out.Print("", "avgTurns", fmt.Sprintf("%.2f", report.AverageTurns()),
		"avgMisses", fmt.Sprintf("%.2f", report.AverageMisses()))
	out.Print("", "elapsed", report.Elapsed)
}

func printVersion() {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportCaller:    false,
		ReportTimestamp: false,
		Prefix:          "",
	})

	styles := log.DefaultStyles()
	styles.Values["version"] = lipgloss.NewStyle().Bold(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"}).
		Background(lipgloss.AdaptiveColor{Light: "#f2e9e1", Dark: "#26233a"})
	styles.Values["gh"] = lipgloss.NewStyle().Italic(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
	logger.SetStyles(styles)

	logger.Print("")
	logger.Print("[ hangsolve ] Guesses your word one letter at a time!")
	logger.Print("", "version", Version)
	logger.Print("")
	logger.Print("use -h or --help to see available options")
	logger.Print("Github Repo", "gh", gh)
}
