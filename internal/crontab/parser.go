package crontab

import (
	"regexp"
	"strings"

	"github.com/hzerrad/cronic/internal/cronx"
)

var (
	// envVarRegex matches environment variable lines (VAR=value)
	envVarRegex = regexp.MustCompile(`^[A-Z_][A-Z0-9_]*=`)

	// cronAliasRegex matches cron special strings (@hourly, @daily, etc.)
	cronAliasRegex = regexp.MustCompile(`^@(reboot|yearly|annually|monthly|weekly|daily|hourly)`)

	// maxExpressionFields/minExpressionFields bound how many leading
	// whitespace-separated tokens parser.go will try as the cron
	// expression before the rest of the line is treated as the command.
	// cronx accepts 5, 6, or 7 fields, so the expression's extent is
	// ambiguous from whitespace alone; parseJob resolves it by trying
	// the longest prefix first.
	maxExpressionFields = 7
	minExpressionFields = 5
)

// ParseLine parses a single line from a crontab file and returns an Entry.
func ParseLine(parser cronx.Parser, line string, lineNumber int) *Entry {
	entry := &Entry{
		LineNumber: lineNumber,
		Raw:        line,
	}

	trimmed := strings.TrimSpace(line)

	if trimmed == "" {
		entry.Type = EntryTypeEmpty
		return entry
	}

	if strings.HasPrefix(trimmed, "#") {
		entry.Type = EntryTypeComment
		return entry
	}

	if envVarRegex.MatchString(trimmed) {
		entry.Type = EntryTypeEnvVar
		return entry
	}

	job := parseJob(parser, trimmed, lineNumber)
	if job != nil {
		entry.Type = EntryTypeJob
		entry.Job = job
		return entry
	}

	entry.Type = EntryTypeInvalid
	return entry
}

// parseJob attempts to parse a cron job line. Returns nil if the line
// cannot be parsed as a job at all (too few fields for even the
// shortest valid expression plus a command).
func parseJob(parser cronx.Parser, line string, lineNumber int) *Job {
	if cronAliasRegex.MatchString(line) {
		return parseAliasJob(parser, line, lineNumber)
	}

	fields := strings.Fields(line)
	if len(fields) < minExpressionFields+1 {
		return nil
	}

	// Prefer the longest leading run of fields that cronx accepts as a
	// well-formed expression, so "0 0 0 1 1 * 2030 run.sh" is read as a
	// 7-field (second minute hour dom month dow year) expression rather
	// than a shorter one with "* 2030" swallowed into the command.
	n := len(fields) - 1
	if n > maxExpressionFields {
		n = maxExpressionFields
	}
	for ; n >= minExpressionFields; n-- {
		candidate := strings.Join(fields[:n], " ")
		if _, err := parser.Parse(candidate); err == nil {
			return buildJob(parser, candidate, fields[n:], line, lineNumber)
		}
	}

	// No prefix parsed cleanly; fall back to the classic 5-field
	// reading so the job still surfaces with its parse error attached.
	expression := strings.Join(fields[:minExpressionFields], " ")
	return buildJob(parser, expression, fields[minExpressionFields:], line, lineNumber)
}

// buildJob assembles a Job from an already-chosen expression and the
// remaining command tokens, recovering the command/comment split from
// the original line text so inline spacing is preserved.
func buildJob(parser cronx.Parser, expression string, commandFields []string, line string, lineNumber int) *Job {
	rest := strings.Join(commandFields, " ")
	if idx := strings.LastIndex(line, rest); idx >= 0 && rest != "" {
		rest = line[idx:]
	}

	var command, comment string
	if idx := strings.Index(rest, "#"); idx != -1 {
		command = strings.TrimSpace(rest[:idx])
		comment = strings.TrimSpace(rest[idx+1:])
	} else {
		command = strings.TrimSpace(rest)
	}

	_, err := parser.Parse(expression)
	job := &Job{
		LineNumber: lineNumber,
		Expression: expression,
		Command:    command,
		Comment:    comment,
		Valid:      err == nil,
	}
	if err != nil {
		job.Error = err.Error()
	}
	return job
}

// parseAliasJob parses a cron job with an alias (@daily, @hourly, etc.)
func parseAliasJob(parser cronx.Parser, line string, lineNumber int) *Job {
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return nil
	}

	alias := fields[0]
	commandAndComment := strings.TrimSpace(line[len(alias):])

	var command, comment string
	if idx := strings.Index(commandAndComment, "#"); idx != -1 {
		command = strings.TrimSpace(commandAndComment[:idx])
		comment = strings.TrimSpace(commandAndComment[idx+1:])
	} else {
		command = commandAndComment
	}

	_, err := parser.Parse(alias)
	job := &Job{
		LineNumber: lineNumber,
		Expression: alias,
		Command:    command,
		Comment:    comment,
		Valid:      err == nil,
	}
	if err != nil {
		job.Error = err.Error()
	}
	return job
}
