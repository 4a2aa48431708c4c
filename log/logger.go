// Package log provides the leveled logger shared by the command-line
// tools. Log lines go to stderr so the data the tools write to stdout
// stays clean; an optional file sink rotates via lumberjack.
package log

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/natefinch/lumberjack.v2"
)

type Logger struct {
	out  io.Writer
	name string

	level      Level
	timeFormat string
	color      bool
	json       bool
	exit       func(int)
}

type Option func(*config)

type config struct {
	level      Level
	timeFormat string
	terminal   io.Writer
	noTerminal bool
	color      bool
	json       bool
	file       string
	rotation   Rotation
	exit       func(int)
}

// Rotation configures the file sink.
type Rotation struct {
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Compress   bool
}

func WithLevel(level Level) Option {
	return func(c *config) { c.level = level }
}

// WithFile adds a rotating file sink.
func WithFile(path string, rot Rotation) Option {
	return func(c *config) {
		c.file = path
		c.rotation = rot
	}
}

// WithJSON switches lines to one JSON object each.
func WithJSON() Option {
	return func(c *config) { c.json = true }
}

// WithTerminal redirects terminal output, mainly for tests.
func WithTerminal(w io.Writer) Option {
	return func(c *config) {
		c.terminal = w
		c.color = false
	}
}

// WithoutTerminal drops the terminal sink, leaving only the file.
func WithoutTerminal() Option {
	return func(c *config) { c.noTerminal = true }
}

func WithColor(enabled bool) Option {
	return func(c *config) { c.color = enabled }
}

// WithExitFunc replaces os.Exit for Fatal, mainly for tests.
func WithExitFunc(exit func(int)) Option {
	return func(c *config) { c.exit = exit }
}

// New builds a logger named name. With no options it logs Info and up
// to stderr with colors.
func New(name string, opts ...Option) *Logger {
	c := config{
		level:      Info,
		timeFormat: "2006-01-02 15:04:05",
		terminal:   os.Stderr,
		color:      true,
		exit:       os.Exit,
	}
	for _, opt := range opts {
		opt(&c)
	}

	var sinks []io.Writer
	if !c.noTerminal {
		sinks = append(sinks, c.terminal)
	}
	if c.file != "" {
		rot := c.rotation
		if rot.MaxSizeMB == 0 {
			rot.MaxSizeMB = 128
		}
		sinks = append(sinks, &lumberjack.Logger{
			Filename:   c.file,
			MaxSize:    rot.MaxSizeMB,
			MaxBackups: rot.MaxBackups,
			MaxAge:     rot.MaxAgeDays,
			Compress:   rot.Compress,
		})
		// Colors would end up as escape bytes in the file
		c.color = false
	}
	if len(sinks) == 0 {
		sinks = append(sinks, io.Discard)
	}

	return &Logger{
		out:        io.MultiWriter(sinks...),
		name:       name,
		level:      c.level,
		timeFormat: c.timeFormat,
		color:      c.color,
		json:       c.json,
		exit:       c.exit,
	}
}

// Named returns a child logger sharing the sinks, with name appended to
// the parent's.
func (l *Logger) Named(name string) *Logger {
	child := *l
	if l.name != "" {
		child.name = l.name + "/" + name
	} else {
		child.name = name
	}
	return &child
}

// SetLevel adjusts the threshold, typically after flag parsing.
func (l *Logger) SetLevel(level Level) {
	l.level = level
}

type entry struct {
	Timestamp string `json:"timestamp"`
	Level     string `json:"level"`
	Name      string `json:"name,omitempty"`
	Message   string `json:"message"`
}

func (l *Logger) log(level Level, msg string, args ...any) {
	if level < l.level {
		return
	}

	timestamp := time.Now().Format(l.timeFormat)
	text := fmt.Sprintf(msg, args...)

	if l.json {
		line, _ := json.Marshal(entry{
			Timestamp: timestamp,
			Level:     level.String(),
			Name:      l.name,
			Message:   text,
		})
		fmt.Fprintf(l.out, "%s\n", line)
	} else {
		prefix := fmt.Sprintf("[%s] %-5s", timestamp, level)
		if l.name != "" {
			prefix += " [" + l.name + "]"
		}
		if l.color {
			fmt.Fprintf(l.out, "%s%s %s\033[0m\n", level.color(), prefix, text)
		} else {
			fmt.Fprintf(l.out, "%s %s\n", prefix, text)
		}
	}

	if level == Fatal {
		l.exit(1)
	}
}

func (l *Logger) Debug(msg string, args ...any) { l.log(Debug, msg, args...) }
func (l *Logger) Info(msg string, args ...any)  { l.log(Info, msg, args...) }
func (l *Logger) Warn(msg string, args ...any)  { l.log(Warn, msg, args...) }
func (l *Logger) Error(msg string, args ...any) { l.log(Error, msg, args...) }
func (l *Logger) Fatal(msg string, args ...any) { l.log(Fatal, msg, args...) }
