package main

import (
	"context"
	"io"
	"log/slog"

	navigator "github.com/glendon144/ai-navigator"
	"github.com/glendon144/ai-navigator/capture"
	"github.com/glendon144/ai-navigator/export"
	"github.com/glendon144/ai-navigator/sqlite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdout    io.Writer
	Stderr    io.Writer
	Logger    *slog.Logger
	DB        *sqlite.DB
	Archive   navigator.ArchiveService
	Outliner  navigator.Outliner
	Suggester navigator.Suggester
	Capturer  *capture.Capturer
	Exporter  *export.Exporter
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool `short:"v" help:"Enable debug logging"`

	Convert ConvertCmd `cmd:"" help:"Convert an HTML or text file to OPML"`
	Export  ExportCmd  `cmd:"" help:"Export the whole page archive as one OPML document"`
	Capture CaptureCmd `cmd:"" help:"Fetch pages and store them in the archive"`
	List    ListCmd    `cmd:"" help:"List archived pages"`
	Search  SearchCmd  `cmd:"" help:"Search archived pages"`
	Load    LoadCmd    `cmd:"" help:"Print an OPML file as an indented tree"`
}

// ConvertCmd is the "convert" subcommand.
type ConvertCmd struct {
	Input      string `arg:"" help:"Input file path (HTML or text)"`
	Title      string `short:"t" help:"Override the document title"`
	Assume     string `enum:"auto,html,text" default:"auto" help:"Payload kind instead of auto-detection"`
	Owner      string `help:"Owner name for the OPML head"`
	Out        string `short:"o" help:"Write OPML to this path instead of stdout"`
	AI         bool   `help:"Append an AI-suggested outline (requires GEMINI_API_KEY)"`
	NoUnsorted bool   `help:"Drop paragraphs outside any heading instead of bucketing them"`
}

// ExportCmd is the "export" subcommand.
type ExportCmd struct {
	Out   string `short:"o" default:"archive.opml" help:"Output path"`
	Owner string `help:"Owner name for the OPML head"`
}

// CaptureCmd is the "capture" subcommand.
type CaptureCmd struct {
	URLs        []string `arg:"" help:"Page URLs to capture"`
	Concurrency int      `short:"c" default:"4" help:"Concurrent fetch limit"`
	MaxPages    int      `help:"Capture at most this many URLs (0 means all)"`
	RPS         float64  `default:"1.0" help:"Requests per second per domain"`
	Cleaner     string   `enum:"trafilatura,readability" default:"trafilatura" help:"Reader-mode cleaner"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct {
	Limit int `short:"n" default:"20" help:"Maximum pages to list"`
}

// SearchCmd is the "search" subcommand.
type SearchCmd struct {
	Query string `arg:"" help:"Substring to match against title, URL and snippet"`
	Limit int    `short:"n" default:"20" help:"Maximum pages to list"`
}

// LoadCmd is the "load" subcommand.
type LoadCmd struct {
	File string `arg:"" help:"OPML file path"`
}
