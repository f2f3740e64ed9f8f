// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/logger"
	"github.com/urfave/cli"

	"github.com/bitmark-inc/scoretree/fault"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {

	// ensure exit handler is first, so that it will be last to run
	defer exitwithstatus.Handler()

	app := cli.NewApp()
	app.Name = "scoretree"
	app.Usage = "inspect a balanced score index from the command line"
	app.Version = version
	app.HideVersion = true

	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringSliceFlag{
			Name:  "entry, e",
			Usage: "*scored entry `ID=SCORE` (repeatable)",
		},
		cli.StringFlag{
			Name:  "file, f",
			Value: "",
			Usage: " read ID=SCORE lines from `FILE`, \"-\" for stdin",
		},
		cli.IntFlag{
			Name:  "limit, l",
			Value: 0,
			Usage: " maximum entries `COUNT`, zero for unlimited",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "sorted",
			Usage:     "list all entries in score order",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.BoolFlag{
					Name:  "reverse, r",
					Usage: " highest score first",
				},
			},
			Action: runSorted,
		},
		{
			Name:      "rank",
			Usage:     "position of one identifier, 1 = highest",
			ArgsUsage: "ID\n   (* = required)",
			Action:    runRank,
		},
		{
			Name:      "percentile",
			Usage:     "percentage of entries scoring strictly below a value",
			ArgsUsage: "SCORE\n   (* = required)",
			Action:    runPercentile,
		},
		{
			Name:      "top",
			Usage:     "highest scoring entries",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.IntFlag{
					Name:  "count, c",
					Value: 10,
					Usage: " maximum records to output `COUNT`",
				},
			},
			Action: runTop,
		},
		{
			Name:      "bottom",
			Usage:     "lowest scoring entries",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.IntFlag{
					Name:  "count, c",
					Value: 10,
					Usage: " maximum records to output `COUNT`",
				},
			},
			Action: runBottom,
		},
		{
			Name:      "filter",
			Usage:     "entries inside a score band",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.Float64Flag{
					Name:  "min, m",
					Value: 0,
					Usage: "*lowest score to include `SCORE`",
				},
				cli.Float64Flag{
					Name:  "max, M",
					Value: 100,
					Usage: "*highest score to include `SCORE`",
				},
			},
			Action: runFilter,
		},
		{
			Name:      "tree",
			Usage:     "ASCII dump of the index structure",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.BoolFlag{
					Name:  "height, H",
					Usage: " show node height and balance",
				},
			},
			Action: runTree,
		},
		{
			Name:   "check",
			Usage:  "run the index consistency scan",
			Action: runCheck,
		},
		{
			Name:  "version",
			Usage: "display scoretree version",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "%s\n", version)
				return nil
			},
		},
	}

	// load the entries into a scoreboard
	app.Before = func(c *cli.Context) error {

		// no point setting up a board just to print the version
		command := c.Args().Get(0)
		if "version" == command {
			return nil
		}

		logDirectory := filepath.Join(os.TempDir(), "scoretree-log")
		if err := os.MkdirAll(logDirectory, 0700); nil != err {
			return err
		}
		err := logger.Initialise(logger.Configuration{
			Directory: logDirectory,
			File:      "scoretree.log",
			Size:      50000,
			Count:     10,
			Console:   false,
			Levels: map[string]string{
				logger.DefaultTag: "critical",
			},
		})
		if nil != err {
			return err
		}

		// setup the last resort log channel
		if err := fault.Initialise(); nil != err {
			return err
		}

		entries := c.GlobalStringSlice("entry")
		if file := c.GlobalString("file"); "" != file {
			fileEntries, err := readEntries(file)
			if nil != err {
				return err
			}
			entries = append(entries, fileEntries...)
		}
		board, err := loadBoard(entries, c.GlobalInt("limit"))
		if nil != err {
			fault.Criticalf("cannot load entries: %s", err)
			return err
		}
		if c.GlobalBool("verbose") {
			fmt.Fprintf(c.App.ErrWriter, "loaded %d entries\n", board.Count())
		}
		c.App.Metadata["board"] = board

		return nil
	}

	app.After = func(c *cli.Context) error {
		if _, ok := c.App.Metadata["board"]; ok {
			fault.Finalise()
			logger.Finalise()
		}
		return nil
	}

	err := app.Run(os.Args)
	if nil != err {
		exitwithstatus.Message("terminated with error: %s", err)
	}
}
