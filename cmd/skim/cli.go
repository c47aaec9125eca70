package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/fwojciec/skim"
	skimgin "github.com/fwojciec/skim/gin"
	"github.com/fwojciec/skim/pipeline"
	"github.com/fwojciec/skim/sqlite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdout    io.Writer
	Stderr    io.Writer
	Logger    *slog.Logger
	DB        *sqlite.DB
	Summaries skim.SummaryService
	History   skim.HistoryStore
	Pipeline  *pipeline.Pipeline
	Server    *skimgin.Server
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Add     AddCmd     `cmd:"" help:"Summarize one or more web pages"`
	List    ListCmd    `cmd:"" help:"List stored summaries"`
	Delete  DeleteCmd  `cmd:"" help:"Delete a stored summary"`
	History HistoryCmd `cmd:"" help:"Show recently summarized pages"`
	Serve   ServeCmd   `cmd:"" help:"Run the HTTP API server"`
}

// AddCmd is the "add" subcommand.
type AddCmd struct {
	URLs        []string `arg:"" help:"Page URLs to summarize"`
	Browser     bool     `short:"b" help:"Fetch pages with a headless browser"`
	Readability bool     `short:"r" help:"Extract content with the readability algorithm"`
	Concurrency int      `short:"c" default:"4" help:"Concurrent summarization limit"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct {
	URL    string `help:"Filter by page URL"`
	Limit  int    `default:"20" help:"Maximum number of summaries to show"`
	Offset int    `default:"0" help:"Number of summaries to skip"`
}

// DeleteCmd is the "delete" subcommand.
type DeleteCmd struct {
	ID    string `arg:"" help:"Summary ID"`
	Force bool   `help:"Confirm deletion"`
}

// HistoryCmd is the "history" subcommand.
type HistoryCmd struct{}

// ServeCmd is the "serve" subcommand.
type ServeCmd struct {
	Addr    string   `default:":8080" help:"Listen address"`
	Origins []string `help:"Allowed CORS origins (repeatable)"`
	Browser bool     `short:"b" help:"Fetch pages with a headless browser"`
}
