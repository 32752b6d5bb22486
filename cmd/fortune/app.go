// Copyright 2025 Ian Lewis
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/k3a/html2text"
	"github.com/urfave/cli/v2"
	"sigs.k8s.io/release-utils/version"

	"github.com/ianlewis/go-fortune"
	"github.com/ianlewis/go-fortune/strfile"
)

const (
	// ExitCodeSuccess is successful error code.
	ExitCodeSuccess int = iota

	// ExitCodeFlagParseError is the exit code for a flag parsing error.
	ExitCodeFlagParseError

	// ExitCodeUnknownError is the exit code for an unknown error.
	ExitCodeUnknownError
)

// ErrFortune is a parent error for all command errors.
var ErrFortune = errors.New("fortune")

// ErrFlagParse is a flag parsing error.
var ErrFlagParse = fmt.Errorf("%w: parsing flags", ErrFortune)

// strfilePadding is the number of padding bytes after the delimiter in
// index files written by the classic strfile tool.
const strfilePadding = 3

var copyrightNames = []string{
	"2025 Ian Lewis",
}

//nolint:gochecknoinits // init needed needed for global variable.
func init() {
	// Set the HelpFlag to a random name so that it isn't used. `cli` handles
	// the flag with the root command such that it takes a command name argument
	// but we don't use commands.
	//
	// This is done because `fortune --help foo` will display a
	// "command foo not found" error instead of the help.
	//
	// This flag is hidden by the help output.
	// See: github.com/urfave/cli/issues/1809
	cli.HelpFlag = &cli.BoolFlag{
		// NOTE: Use a random name no one would guess.
		Name:               "d41d8cd98f00b204e980",
		DisableDefaultText: true,
	}
}

// check checks the error and panics if not nil.
func check(err error) {
	if err != nil {
		panic(err)
	}
}

func newFortuneApp() *cli.App {
	return &cli.App{
		Name:      filepath.Base(os.Args[0]),
		Usage:     "Print a random, hopefully interesting, adage.",
		ArgsUsage: "[FILE|DIR]...",
		Description: strings.Join([]string{
			"Fortune written in Go.",
			"Adages are read from fortune collections under each FILE or DIR.",
			"http://github.com/ianlewis/go-fortune",
		}, "\n"),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "pattern",
				Usage:   "print all adages matching the regular expression `PATTERN`",
				Aliases: []string{"m"},
			},
			&cli.BoolFlag{
				Name:               "insensitive",
				Usage:              "ignore case when matching --pattern",
				Aliases:            []string{"i"},
				DisableDefaultText: true,
			},
			&cli.BoolFlag{
				Name:               "fold",
				Usage:              "fold whitespace and line breaks before matching --pattern",
				DisableDefaultText: true,
			},
			&cli.Uint64Flag{
				Name:    "seed",
				Usage:   "pick adages using the random `SEED`",
				Aliases: []string{"s"},
				EnvVars: []string{"FORTUNE_SEED"},
			},
			&cli.BoolFlag{
				Name:               "show-file",
				Usage:              "show the collection the adage was picked from",
				Aliases:            []string{"c"},
				DisableDefaultText: true,
			},
			&cli.BoolFlag{
				Name:               "files",
				Usage:              "print the list of collections and exit",
				Aliases:            []string{"f"},
				DisableDefaultText: true,
			},
			&cli.BoolFlag{
				Name:               "padded",
				Usage:              "read index files with the 4 byte delimiter field written by strfile",
				DisableDefaultText: true,
			},
			&cli.BoolFlag{
				Name:               "html",
				Usage:              "render adages written in HTML as plain text",
				DisableDefaultText: true,
			},
			&cli.StringSliceFlag{
				Name:    "path",
				Usage:   "read collections in `DIR` when no FILE or DIR is given",
				EnvVars: []string{"FORTUNE_PATH"},
				Value:   cli.NewStringSlice(fortuneLocations()...),
			},

			// Special flags are shown at the end.
			&cli.BoolFlag{
				Name:               "help",
				Usage:              "print this help text and exit",
				Aliases:            []string{"h"},
				DisableDefaultText: true,
			},
			&cli.BoolFlag{
				Name:               "version",
				Usage:              "print version information and exit",
				Aliases:            []string{"V"},
				DisableDefaultText: true,
			},
		},
		Copyright:       strings.Join(copyrightNames, "\n"),
		HideHelp:        true,
		HideHelpCommand: true,
		Writer:          os.Stdout,
		ErrWriter:       os.Stderr,
		OnUsageError: func(_ *cli.Context, err error, _ bool) error {
			return fmt.Errorf("%w: %w", ErrFlagParse, err)
		},
		Action: func(c *cli.Context) error {
			if c.Bool("help") {
				check(cli.ShowAppHelp(c))
				return nil
			}
			if c.Bool("version") {
				return printVersion(c)
			}
			if c.Bool("insensitive") && !c.IsSet("pattern") {
				return fmt.Errorf("%w: --insensitive requires --pattern", ErrFlagParse)
			}

			idx := buildIndex(c)

			switch {
			case c.Bool("files"):
				return listCollections(c, idx)
			case c.IsSet("pattern"):
				return searchAdages(c, idx)
			default:
				return pickAdage(c, idx)
			}
		},
	}
}

// buildIndex builds the index for the command line arguments and prints
// any warnings.
func buildIndex(c *cli.Context) fortune.Index {
	paths := c.Args().Slice()
	if len(paths) == 0 {
		// Default locations that don't exist are skipped quietly.
		for _, path := range c.StringSlice("path") {
			if _, err := os.Stat(path); err == nil {
				paths = append(paths, path)
			}
		}
	}

	options := fortune.DefaultOptions
	if c.Bool("padded") {
		options = &fortune.Options{
			Header: &strfile.Options{
				DelimPadding: strfilePadding,
			},
		}
	}

	idx, errs := fortune.BuildIndex(resolvePaths(paths), options)
	for _, err := range errs {
		fmt.Fprintf(c.App.ErrWriter, "%s: warning: %v\n", c.App.Name, err)
	}
	return idx
}

// resolvePaths replaces paths to data files with the path to their index
// file so that a collection can be named by its data file.
func resolvePaths(paths []string) []string {
	resolved := make([]string, 0, len(paths))
	for _, path := range paths {
		resolved = append(resolved, resolvePath(path))
	}
	return resolved
}

func resolvePath(path string) string {
	if strings.HasSuffix(path, fortune.IndexExt) || strings.HasSuffix(path, fortune.GzipIndexExt) {
		return path
	}
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		return path
	}
	for _, ext := range []string{fortune.IndexExt, fortune.GzipIndexExt} {
		if info, err := os.Stat(path + ext); err == nil && info.Mode().IsRegular() {
			return path + ext
		}
	}
	return path
}

// render returns the adage text as it should be printed.
func render(c *cli.Context, text string) string {
	if !c.Bool("html") {
		return text
	}
	text = html2text.HTML2Text(text)
	if text != "" && !strings.HasSuffix(text, "\n") {
		text += "\n"
	}
	return text
}

func pickAdage(c *cli.Context, idx fortune.Index) error {
	var seed *uint64
	if c.IsSet("seed") {
		s := c.Uint64("seed")
		seed = &s
	}

	e, err := idx.Pick(fortune.NewRand(seed))
	if err != nil {
		return err
	}
	text, err := e.Text()
	if err != nil {
		return err
	}

	if c.Bool("show-file") {
		fmt.Fprintf(c.App.ErrWriter, "(%s)\n%%\n", e.Source.Name())
	}
	_, err = fmt.Fprint(c.App.Writer, render(c, text))
	return err
}

func searchAdages(c *cli.Context, idx fortune.Index) error {
	matches, err := idx.Search(c.String("pattern"), &fortune.SearchOptions{
		CaseInsensitive: c.Bool("insensitive"),
		FoldWhitespace:  c.Bool("fold"),
	})
	if err != nil {
		return err
	}
	for _, m := range matches {
		m.Text = render(c, m.Text)
	}
	return fortune.PrintMatches(c.App.Writer, c.App.ErrWriter, matches)
}

func printVersion(c *cli.Context) error {
	versionInfo := version.GetVersionInfo()

	_, err := fmt.Fprintf(c.App.Writer, `%s %s
Copyright (c) %s

Licensed under the Apache License, Version 2.0.
`, c.App.Name, versionInfo.GitVersion, strings.Join(copyrightNames, "\n"))
	if err != nil {
		return fmt.Errorf("%w: printing version: %w", ErrFortune, err)
	}
	return nil
}
