// Package diag records advisory messages produced while collecting fields and
// generating companions. Nothing recorded here stops a generation pass.
package diag

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/jinzhu/inflection"
)

type Severity int

const (
	SeverityInfo Severity = iota
	SeverityUnsupported
)

func (s Severity) String() string {
	switch s {
	case SeverityUnsupported:
		return "unsupported"
	default:
		return "info"
	}
}

func (s Severity) level() slog.Level {
	if s == SeverityUnsupported {
		return slog.LevelWarn
	}
	return slog.LevelInfo
}

type Diagnostic struct {
	Severity Severity
	Message  string
}

func (d Diagnostic) String() string {
	return d.Severity.String() + ": " + d.Message
}

// Sink is an append-only diagnostic record. Every entry is mirrored to the
// sink's logger. It is not safe for concurrent use.
type Sink struct {
	log     *slog.Logger
	entries []Diagnostic
}

// NewSink returns a sink logging to l, or to slog.Default() when l is nil.
func NewSink(l *slog.Logger) *Sink {
	if l == nil {
		l = slog.Default()
	}
	return &Sink{log: l}
}

func (s *Sink) Record(sev Severity, msg string, args ...any) {
	s.entries = append(s.entries, Diagnostic{Severity: sev, Message: msg})
	s.log.Log(context.Background(), sev.level(), msg, args...)
}

func (s *Sink) Infof(format string, a ...any) {
	s.Record(SeverityInfo, fmt.Sprintf(format, a...))
}

func (s *Sink) Unsupportedf(format string, a ...any) {
	s.Record(SeverityUnsupported, fmt.Sprintf(format, a...))
}

// Entries returns a copy of everything recorded so far.
func (s *Sink) Entries() []Diagnostic {
	out := make([]Diagnostic, len(s.entries))
	copy(out, s.entries)
	return out
}

func (s *Sink) Count(sev Severity) int {
	n := 0
	for _, d := range s.entries {
		if d.Severity == sev {
			n++
		}
	}
	return n
}

// Summary renders the entry counts, e.g. "3 notes, 1 unsupported field".
func (s *Sink) Summary() string {
	parts := []string{
		countNoun(s.Count(SeverityInfo), "note"),
		countNoun(s.Count(SeverityUnsupported), "unsupported field"),
	}
	return strings.Join(parts, ", ")
}

func countNoun(n int, noun string) string {
	if n != 1 {
		noun = inflection.Plural(noun)
	}
	return fmt.Sprintf("%d %s", n, noun)
}
