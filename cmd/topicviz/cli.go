package main

import (
	"context"
	"io"

	"github.com/topiclab/topicviz"
	"github.com/topiclab/topicviz/sqlite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx     context.Context
	Stdout  io.Writer
	Stderr  io.Writer
	DB      *sqlite.DB
	Apps    topicviz.AppService
	Bundles topicviz.BundleService
	Scanner topicviz.SourceScanner
	Locator topicviz.ArtifactLocator
	Plots   topicviz.PlotDetector
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool `short:"v" help:"Enable debug logging"`

	Generate GenerateCmd `cmd:"" help:"Generate visualization bundles from source folders"`
	Inspect  InspectCmd  `cmd:"" help:"Inspect a source folder without generating"`
	List     ListCmd     `cmd:"" help:"List generated apps"`
	Delete   DeleteCmd   `cmd:"" help:"Delete an app from the catalog"`
}

// GenerateCmd is the "generate" subcommand.
type GenerateCmd struct {
	Path   string `arg:"" help:"Source folder, or a directory of source folders"`
	Output string `short:"o" default:"apps" help:"Directory bundles are written into"`
}

// InspectCmd is the "inspect" subcommand.
type InspectCmd struct {
	Path string `arg:"" help:"Source folder"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct {
	Dataset string `help:"Filter by dataset"`
	Method  string `help:"Filter by method (nmtf or pnmf)"`
}

// DeleteCmd is the "delete" subcommand.
type DeleteCmd struct {
	Slug  string `arg:"" help:"App slug, e.g. heart-failure-nmtf-34"`
	Force bool   `help:"Confirm deletion"`
	Purge bool   `help:"Also remove the generated bundle directory"`
}
