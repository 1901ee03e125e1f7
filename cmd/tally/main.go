// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/danielhkuo/quickly-tally/ballotfile"
	"github.com/danielhkuo/quickly-tally/election"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:      "tally",
		Usage:     "run an instant-runoff tally over a ballot file",
		ArgsUsage: "FILE",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "policy",
				Aliases: []string{"p"},
				Usage:   "tied-lowest elimination policy (single or batch)",
				Value:   election.PolicySingle.String(),
				EnvVars: []string{"TALLY_POLICY"},
			},
			&cli.BoolFlag{
				Name:    "rounds",
				Aliases: []string{"r"},
				Usage:   "print vote counts for every round",
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "log election state changes",
			},
		},
		Action: run,
	}
}

func run(c *cli.Context) error {
	if c.NArg() != 1 {
		return cli.Exit("expected exactly one ballot file", 2)
	}

	policy, err := election.ParsePolicy(c.String("policy"))
	if err != nil {
		return cli.Exit(err.Error(), 2)
	}

	level := slog.LevelWarn
	if c.Bool("verbose") {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(c.App.ErrWriter, &slog.HandlerOptions{Level: level}))

	file, err := ballotfile.Load(c.Args().First())
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	e, rejected, err := file.Election(election.WithPolicy(policy), election.WithLogger(logger))
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	w := c.App.Writer
	printRejected(w, rejected)

	res, err := e.Tally()
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	if c.Bool("rounds") {
		printRounds(w, res)
	}
	printOutcome(w, res)
	return nil
}
