// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package ballotfile reads and writes the plain-text ballot file format:
// a candidate count, one candidate name per line, then one ballot per line
// as whitespace-separated ranks.
package ballotfile

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/danielhkuo/quickly-tally/election"
)

// File is the parsed content of a ballot file.
type File struct {
	Candidates []string
	Ballots    []Ballot
}

// Ballot is one ranking as it appeared in the source. Line is 0 when the
// ballot did not come from a file.
type Ballot struct {
	Line  int
	Ranks []int
}

// ParseError reports a malformed line.
type ParseError struct {
	Line int
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// MaxLineBytes is the longest line Parse accepts. It matches the server's
// default request body limit, so any file the server would accept parses.
const MaxLineBytes = 32 << 20

var (
	ErrMissingHeader = errors.New("missing candidate count")
	ErrEmptyName     = errors.New("empty candidate name")
)

// Load opens and parses the ballot file at path.
func Load(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open ballot file: %w", err)
	}
	defer f.Close()

	return Parse(f)
}

// Parse reads a ballot file. Ranks are only checked for being integers;
// whether a line is a valid ranking is decided when it is added to an
// election.
func Parse(r io.Reader) (*File, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), MaxLineBytes)
	line := 0

	next := func() (string, bool) {
		if !scanner.Scan() {
			return "", false
		}
		line++
		return strings.TrimSpace(scanner.Text()), true
	}

	header, ok := next()
	if !ok {
		if err := scanner.Err(); err != nil {
			return nil, fmt.Errorf("failed to read ballot file: %w", err)
		}
		return nil, &ParseError{Line: 1, Err: ErrMissingHeader}
	}
	count, err := strconv.Atoi(header)
	if err != nil {
		return nil, &ParseError{Line: line, Err: fmt.Errorf("invalid candidate count %q", header)}
	}
	if count < 1 {
		return nil, &ParseError{Line: line, Err: fmt.Errorf("candidate count must be at least 1, got %d", count)}
	}

	// count is untrusted; names are appended as they are read.
	file := &File{}
	for i := 0; i < count; i++ {
		name, ok := next()
		if !ok {
			break
		}
		if name == "" {
			return nil, &ParseError{Line: line, Err: ErrEmptyName}
		}
		file.Candidates = append(file.Candidates, name)
	}
	if len(file.Candidates) < count {
		if err := scanner.Err(); err != nil {
			return nil, fmt.Errorf("failed to read ballot file: %w", err)
		}
		return nil, &ParseError{
			Line: line + 1,
			Err:  fmt.Errorf("expected %d candidate names, got %d", count, len(file.Candidates)),
		}
	}

	for {
		text, ok := next()
		if !ok {
			break
		}
		if text == "" {
			continue
		}

		fields := strings.Fields(text)
		ranks := make([]int, len(fields))
		for i, field := range fields {
			rank, err := strconv.Atoi(field)
			if err != nil {
				return nil, &ParseError{Line: line, Err: fmt.Errorf("invalid rank %q", field)}
			}
			ranks[i] = rank
		}
		file.Ballots = append(file.Ballots, Ballot{Line: line, Ranks: ranks})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read ballot file: %w", err)
	}

	return file, nil
}

// Write emits f in the ballot file format.
func Write(w io.Writer, f *File) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "%d\n", len(f.Candidates))
	for _, name := range f.Candidates {
		fmt.Fprintln(bw, name)
	}
	for _, b := range f.Ballots {
		for i, rank := range b.Ranks {
			if i > 0 {
				bw.WriteByte(' ')
			}
			bw.WriteString(strconv.Itoa(rank))
		}
		bw.WriteByte('\n')
	}

	return bw.Flush()
}

// Rejection is a ballot the election refused.
type Rejection struct {
	// Index is the ballot's position in File.Ballots.
	Index int
	Line  int
	Ranks []int
	Err   error
}

// Election builds an election from f. Invalid ballots are skipped and
// reported instead of failing the whole file.
func (f *File) Election(opts ...election.Option) (*election.Election, []Rejection, error) {
	e, err := election.New(len(f.Candidates), opts...)
	if err != nil {
		return nil, nil, err
	}
	for _, name := range f.Candidates {
		if err := e.AddCandidate(name); err != nil {
			return nil, nil, fmt.Errorf("failed to add candidate: %w", err)
		}
	}

	var rejected []Rejection
	for i, b := range f.Ballots {
		err := e.AddBallot(b.Ranks)
		if errors.Is(err, election.ErrInvalidBallot) {
			rejected = append(rejected, Rejection{Index: i, Line: b.Line, Ranks: b.Ranks, Err: err})
			continue
		}
		if err != nil {
			return nil, nil, fmt.Errorf("failed to add ballot %d: %w", i, err)
		}
	}

	return e, rejected, nil
}
