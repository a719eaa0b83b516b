package crontab

import (
	"bufio"
	"fmt"
	"os"

	"github.com/hzerrad/cronic/internal/cronx"
)

// Reader provides methods to read crontab files.
type Reader interface {
	// ReadFile reads and parses cron jobs from a file.
	ReadFile(path string) ([]*Job, error)

	// ParseFile reads all entries (including comments, env vars) from a file.
	ParseFile(path string) ([]*Entry, error)
}

// reader implements the Reader interface, reusing one cronx.Parser
// (and its expression cache) across every line of every file it reads.
type reader struct {
	parser cronx.Parser
}

// NewReader creates a new crontab reader using the default cronx.Parser
// configuration (Optional seconds, Optional year, POSIX day numbering).
func NewReader() Reader {
	return &reader{parser: cronx.NewParser()}
}

// NewReaderWithParser creates a crontab reader validating expressions
// against a caller-supplied parser, e.g. one configured with
// cronx.WithDomAndDow or cronx.WithAlternativeWeekdays.
func NewReaderWithParser(parser cronx.Parser) Reader {
	return &reader{parser: parser}
}

// ReadFile reads and parses cron jobs from a file.
func (r *reader) ReadFile(path string) ([]*Job, error) {
	entries, err := r.ParseFile(path)
	if err != nil {
		return nil, err
	}

	var jobs []*Job
	for _, entry := range entries {
		if entry.Type == EntryTypeJob && entry.Job != nil {
			jobs = append(jobs, entry.Job)
		}
	}

	return jobs, nil
}

// ParseFile reads all entries from a crontab file.
func (r *reader) ParseFile(path string) (entries []*Entry, err error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("error closing file: %w", closeErr)
		}
	}()

	scanner := bufio.NewScanner(file)
	lineNumber := 0

	for scanner.Scan() {
		lineNumber++
		line := scanner.Text()
		entry := ParseLine(r.parser, line, lineNumber)
		entries = append(entries, entry)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading file: %w", err)
	}

	return entries, nil
}
