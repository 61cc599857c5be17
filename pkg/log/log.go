// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


// Package log prints what a run did to a project, for people, and mirrors it to zerolog, for machines.
package log

import (
	"context"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"sync"

	"github.com/fatih/color"
	"github.com/pterm/pterm"
	"github.com/rs/zerolog"
)

// 🎨 column layout of a reported operation
const (
	indent    = "    "
	pathWidth = 35
	kindWidth = 18
)

// 🎯 FileOperation is one change made to a project path
type FileOperation struct {
	Path         string // relative to the project root, slash separated
	Kind         string // edit_comment, replace, regex_replace, delete_file, delete_directory
	Detail       string // block name and mode, or the rule that was applied
	IsModified   bool
	IsRemoved    bool
	Replacements int
}

// mark picks the leading symbol for an operation
func (op FileOperation) mark() (string, *color.Color) {
	switch {
	case op.IsRemoved:
		return "✗", color.New(color.FgRed)
	case op.IsModified:
		return "⟳", color.New(color.FgBlue)
	default:
		return "-", color.New(color.FgYellow)
	}
}

var kindColors = map[string]*color.Color{
	"edit_comment":     color.New(color.FgCyan),
	"replace":          color.New(color.FgBlue),
	"regex_replace":    color.New(color.FgMagenta),
	"delete_file":      color.New(color.FgRed),
	"delete_directory": color.New(color.FgRed),
}

func (op FileOperation) String() string {
	sym, symColor := op.mark()

	kindColor, ok := kindColors[op.Kind]
	if !ok {
		kindColor = color.New(color.Reset)
	}

	line := fmt.Sprintf("%s%s %-*s %s %s",
		indent,
		symColor.Sprint(sym),
		pathWidth, op.Path,
		kindColor.Sprintf("%-*s", kindWidth, op.Kind),
		op.Detail)

	if op.Replacements > 0 {
		line += color.New(color.Faint).Sprintf(" ×%d", op.Replacements)
	}
	return strings.TrimRight(line, " ")
}

// 🎯 Logger is the console side of a run. It implements operation.Reporter.
type Logger struct {
	mu      sync.Mutex
	console io.Writer
	zlog    zerolog.Logger
	root    string
	ops     []FileOperation
}

// 🏭 New writes human output to console and mirrors events at level and above to stderr
func New(console io.Writer, level zerolog.Level) *Logger {
	return &Logger{
		console: console,
		zlog:    zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level).With().Timestamp().Logger(),
	}
}

// 📝 Report records and prints one operation
func (l *Logger) Report(ctx context.Context, op FileOperation) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.ops = append(l.ops, op)
	fmt.Fprintln(l.console, op.String())

	l.zlog.Info().
		Str("path", op.Path).
		Str("kind", op.Kind).
		Str("detail", op.Detail).
		Bool("modified", op.IsModified).
		Bool("removed", op.IsRemoved).
		Int("replacements", op.Replacements).
		Msg("file operation")
}

// 🚀 StartRun resets the tally and announces the project root
func (l *Logger) StartRun(ctx context.Context, root string, dryRun bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.root = root
	l.ops = nil

	label := "editing"
	if dryRun {
		label = "dry run"
	}
	fmt.Fprintf(l.console, "[%s %s]\n", label, color.New(color.FgCyan).Sprint(root))

	l.zlog.Info().Str("root", root).Bool("dry_run", dryRun).Msg("run started")
}

// 🏁 EndRun closes the current run
func (l *Logger) EndRun(ctx context.Context) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.zlog.Info().Str("root", l.root).Int("operations", len(l.ops)).Msg("run finished")
}

// Operations returns a copy of everything reported since StartRun
func (l *Logger) Operations() []FileOperation {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]FileOperation(nil), l.ops...)
}

// 📊 Summary prints a table with one row per operation kind
func (l *Logger) Summary() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	type row struct {
		paths, removed, replacements int
	}
	rows := map[string]*row{}
	for _, op := range l.ops {
		r := rows[op.Kind]
		if r == nil {
			r = &row{}
			rows[op.Kind] = r
		}
		r.paths++
		r.replacements += op.Replacements
		if op.IsRemoved {
			r.removed++
		}
	}

	kinds := make([]string, 0, len(rows))
	for kind := range rows {
		kinds = append(kinds, kind)
	}
	sort.Strings(kinds)

	data := pterm.TableData{{"operation", "paths", "removed", "replacements"}}
	for _, kind := range kinds {
		r := rows[kind]
		data = append(data, []string{kind, fmt.Sprint(r.paths), fmt.Sprint(r.removed), fmt.Sprint(r.replacements)})
	}

	table, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return err
	}
	fmt.Fprintln(l.console, table)
	return nil
}

// 🔍 Diff prints a pending change to path, coloring added and removed lines
func (l *Logger) Diff(path string, diff string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	fmt.Fprintln(l.console, indent+color.New(color.Bold).Sprint(path))
	for _, line := range strings.SplitAfter(diff, "\n") {
		if line == "" {
			continue
		}
		c := color.New(color.Faint)
		switch line[0] {
		case '+':
			c = color.New(color.FgGreen)
		case '-':
			c = color.New(color.FgRed)
		}
		fmt.Fprint(l.console, indent+indent+c.Sprint(line))
	}
}

// Newline prints an empty line
func (l *Logger) Newline() {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.console)
}

// Header prints a title line for a command
func (l *Logger) Header(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	name := color.New(color.Bold, color.FgCyan).Sprint("scaffoldrc")
	fmt.Fprintf(l.console, "\n%s %s\n\n", name, color.New(color.Faint).Sprint("• "+msg))
	l.zlog.Info().Msg(msg)
}

type tone struct {
	icon  string
	color *color.Color
	level zerolog.Level
}

var (
	toneInfo    = tone{"ℹ️  ", color.New(color.FgCyan), zerolog.InfoLevel}
	toneSuccess = tone{"✅ ", color.New(color.FgGreen), zerolog.InfoLevel}
	toneWarn    = tone{"⚠️  ", color.New(color.FgYellow), zerolog.WarnLevel}
	toneError   = tone{"❌ ", color.New(color.FgRed), zerolog.ErrorLevel}
)

func (l *Logger) say(t tone, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)

	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.console, t.icon+t.color.Sprint(msg))
	l.zlog.WithLevel(t.level).Msg(msg)
}

func (l *Logger) Info(format string, args ...any)    { l.say(toneInfo, format, args...) }
func (l *Logger) Success(format string, args ...any) { l.say(toneSuccess, format, args...) }
func (l *Logger) Warn(format string, args ...any)    { l.say(toneWarn, format, args...) }
func (l *Logger) Error(format string, args ...any)   { l.say(toneError, format, args...) }
