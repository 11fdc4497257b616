// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

// Package astab loads subnet-to-AS tables and answers address queries
// against them, the collaborator around the trie core.
//
// The input file is a whitespace-separated stream of alternating
// "<prefix>/<len> <tag>" pairs, the tag is an opaque signed integer,
// an AS number in the motivating use.
package astab

import (
	"bufio"
	"fmt"
	"io"
	"net/netip"
	"os"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/gaissmai/ptrie"
	"github.com/gaissmai/ptrie/internal/logging"
)

var log = logging.DefaultLogger.WithField(logging.LogSubsys, "astab")

// maxLineLen bounds a single query line, textual addresses are at most
// 63 characters long.
const maxLineLen = 64

// Load reads alternating "<prefix>/<len> <tag>" tokens from r and
// builds the lookup table. A later pair for the same prefix overwrites
// the earlier tag.
//
// Tokenization is by successful reads only, trailing whitespace and
// blank lines are tolerated. Any unparseable token is an error.
func Load(r io.Reader) (*ptrie.Table[int], error) {
	tbl := new(ptrie.Table[int])

	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	for sc.Scan() {
		subnet := sc.Text()

		pfx, err := netip.ParsePrefix(subnet)
		if err != nil {
			return nil, fmt.Errorf("parsing subnet %q: %w", subnet, err)
		}

		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return nil, fmt.Errorf("reading input: %w", err)
			}
			return nil, fmt.Errorf("missing tag after subnet %q", subnet)
		}

		tag, err := strconv.Atoi(sc.Text())
		if err != nil {
			return nil, fmt.Errorf("parsing tag for subnet %q: %w", subnet, err)
		}

		tbl.Insert(pfx, tag)
	}

	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading input: %w", err)
	}

	return tbl, nil
}

// LoadFile opens path and loads the table from it.
func LoadFile(path string) (*ptrie.Table[int], error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening input file: %w", err)
	}
	defer file.Close()

	tbl, err := Load(file)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}

	log.WithFields(logrus.Fields{
		"file":     path,
		"ipv4":     tbl.Size4(),
		"ipv6":     tbl.Size6(),
		"prefixes": tbl.Size(),
	}).Debug("table loaded")

	return tbl, nil
}

// Run reads one textual address per line from r and writes one line
// per query to w: the tag of the longest covering prefix, or a single
// hyphen if no prefix covers the address. Blank lines produce no
// output.
//
// An address that is neither IPv4 nor IPv6 is an error, the stream is
// presumed structured.
func Run(tbl *ptrie.Table[int], r io.Reader, w io.Writer) error {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, maxLineLen), maxLineLen)

	bw := bufio.NewWriter(w)

	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}

		ip, err := netip.ParseAddr(line)
		if err != nil {
			bw.Flush() // keep the answers produced so far
			return fmt.Errorf("parsing address %q: %w", line, err)
		}

		if tag, ok := tbl.Lookup(ip); ok {
			fmt.Fprintln(bw, tag)
		} else {
			fmt.Fprintln(bw, "-")
		}
	}

	if err := sc.Err(); err != nil {
		bw.Flush()
		return fmt.Errorf("reading queries: %w", err)
	}

	return bw.Flush()
}
