package main

import (
	"context"
	"io"

	"github.com/pageforge/pageforge"
	"github.com/pageforge/pageforge/sqlite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdout    io.Writer
	Stderr    io.Writer
	DB        *sqlite.DB
	Pages     pageforge.PageService
	Contacts  pageforge.ContactExtractor
	Products  pageforge.ProductExtractor
	Describer pageforge.Describer
	Detector  pageforge.CategoryDetector
	Renderer  pageforge.Renderer
	Sanitizer pageforge.Sanitizer
	Generator pageforge.ContentGenerator
	Fetcher   pageforge.Fetcher
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Create  CreateCmd  `cmd:"" help:"Create a page from business details"`
	Import  ImportCmd  `cmd:"" help:"Import pages from raw HTML files"`
	Extract ExtractCmd `cmd:"" help:"Extract business data from an HTML file"`
	Render  RenderCmd  `cmd:"" help:"Render a stored page to HTML"`
	Set     SetCmd     `cmd:"" help:"Set a single page field by dotted path"`
	Show    ShowCmd    `cmd:"" help:"Show a page as JSON"`
	List    ListCmd    `cmd:"" help:"List all pages"`
	Delete  DeleteCmd  `cmd:"" help:"Delete a page"`
}

// CreateCmd is the "create" subcommand.
type CreateCmd struct {
	Title    string `arg:"" help:"Business name"`
	Type     string `short:"t" default:"generic" help:"Page type (store, serviceProvider, event, ...)"`
	Owner    string `help:"Owner ID used for slug generation"`
	Phone    string `help:"Contact phone"`
	Email    string `help:"Contact email"`
	City     string `help:"City"`
	Address  string `help:"Street address"`
	About    string `help:"About text"`
	Sections []string `short:"s" help:"Optional sections to include (repeatable)"`
	Generate bool   `short:"g" help:"Generate section content with Gemini"`
}

// ImportCmd is the "import" subcommand.
type ImportCmd struct {
	Sources     []string `arg:"" help:"HTML files or http(s) URLs to import"`
	Type        string   `short:"t" help:"Page type for all imports; auto-detected when empty"`
	Owner       string   `help:"Owner ID used for slug generation"`
	Concurrency int      `short:"c" default:"4" help:"Concurrent import limit"`
}

// ExtractCmd is the "extract" subcommand.
type ExtractCmd struct {
	File       string `arg:"" type:"existingfile" help:"HTML file to extract from"`
	Structured bool   `help:"Use structured product extraction without price bounds"`
}

// RenderCmd is the "render" subcommand.
type RenderCmd struct {
	Page     string `arg:"" help:"Page ID or slug"`
	Out      string `short:"o" help:"Export directory; stdout when empty"`
	Generate bool   `short:"g" help:"Generate section content with Gemini"`
}

// SetCmd is the "set" subcommand.
type SetCmd struct {
	Page  string `arg:"" help:"Page ID"`
	Path  string `arg:"" help:"Dotted field path, e.g. sections.0.data.title"`
	Value string `arg:"" help:"New value; parsed as JSON when possible"`
}

// ShowCmd is the "show" subcommand.
type ShowCmd struct {
	Page string `arg:"" help:"Page ID or slug"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct {
	Type   string `short:"t" help:"Filter by page type"`
	Active bool   `help:"Only active pages"`
}

// DeleteCmd is the "delete" subcommand.
type DeleteCmd struct {
	Page  string `arg:"" help:"Page ID"`
	Force bool   `help:"Confirm deletion"`
}
