// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/scoretree/fault"
	"github.com/bitmark-inc/scoretree/scoreboard"
)

// read ID=SCORE lines, "-" selects stdin; blank lines and
// "#" comments are skipped
func readEntries(file string) ([]string, error) {
	f := os.Stdin
	if "-" != file {
		var err error
		f, err = os.Open(file)
		if nil != err {
			return nil, err
		}
		defer f.Close()
	}

	entries := []string{}
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if "" == line || strings.HasPrefix(line, "#") {
			continue
		}
		entries = append(entries, line)
	}
	return entries, scanner.Err()
}

// build a board from repeated "ID=SCORE" flag values
func loadBoard(entries []string, limit int) (*scoreboard.Scoreboard, error) {
	board := scoreboard.New(limit)
	for _, entry := range entries {
		s := strings.SplitN(entry, "=", 2)
		if 2 != len(s) || "" == s[0] {
			return nil, fmt.Errorf("entry: %q is not ID=SCORE", entry)
		}
		score, err := strconv.ParseFloat(s[1], 64)
		if nil != err {
			return nil, fmt.Errorf("entry: %q has invalid score: %s", entry, err)
		}
		if _, err := board.Add(s[0], score); nil != err {
			return nil, fmt.Errorf("entry: %q rejected: %s", entry, err)
		}
	}
	return board, nil
}

func theBoard(c *cli.Context) *scoreboard.Scoreboard {
	return c.App.Metadata["board"].(*scoreboard.Scoreboard)
}

func printKeys(c *cli.Context, keys []scoreboard.Key) {
	for i, k := range keys {
		fmt.Fprintf(c.App.Writer, "%d: %s  %g\n", i+1, k.ID, k.Score)
	}
}

func runSorted(c *cli.Context) error {
	board := theBoard(c)

	keys := board.Export()
	if c.Bool("reverse") {
		for i, j := 0, len(keys)-1; i < j; i, j = i+1, j-1 {
			keys[i], keys[j] = keys[j], keys[i]
		}
	}
	printKeys(c, keys)
	return nil
}

func runRank(c *cli.Context) error {
	id := c.Args().Get(0)
	if "" == id {
		return fault.RequiredIdentifier
	}

	rank, ok := theBoard(c).Rank(id)
	if !ok {
		return fault.NotFoundIdentifier
	}
	fmt.Fprintf(c.App.Writer, "%d\n", rank)
	return nil
}

func runPercentile(c *cli.Context) error {
	score, err := strconv.ParseFloat(c.Args().Get(0), 64)
	if nil != err {
		return fmt.Errorf("score: %q is invalid: %s", c.Args().Get(0), err)
	}

	fmt.Fprintf(c.App.Writer, "%.1f\n", theBoard(c).Percentile(score))
	return nil
}

func runTop(c *cli.Context) error {
	count := c.Int("count")
	if count <= 0 {
		return fault.InvalidCount
	}
	printKeys(c, theBoard(c).Top(count))
	return nil
}

func runBottom(c *cli.Context) error {
	count := c.Int("count")
	if count <= 0 {
		return fault.InvalidCount
	}
	printKeys(c, theBoard(c).Bottom(count))
	return nil
}

func runFilter(c *cli.Context) error {
	min := c.Float64("min")
	max := c.Float64("max")
	if min > max {
		return fmt.Errorf("filter: min %g is above max %g", min, max)
	}
	printKeys(c, theBoard(c).Between(min, max))
	return nil
}

func runTree(c *cli.Context) error {
	board := theBoard(c)
	count := board.Print(c.App.Writer, c.Bool("height"))
	if c.GlobalBool("verbose") {
		fmt.Fprintf(c.App.ErrWriter, "printed %d nodes\n", count)
	}
	return nil
}

func runCheck(c *cli.Context) error {
	if !theBoard(c).Check() {
		return fmt.Errorf("check: index is inconsistent")
	}
	fmt.Fprintf(c.App.Writer, "ok\n")
	return nil
}
