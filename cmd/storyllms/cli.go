package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/storyllms"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger

	Extractor storyllms.Extractor
	Pages     storyllms.PageReader
	Converter storyllms.Converter
	Docs      storyllms.DocsWriter
}

// CLI defines the command-line interface structure for Kong.
//
// BaseURL, Title and Description carry no Kong defaults so an unset flag can
// be told apart from an explicit value; merging with the config file depends
// on that.
type CLI struct {
	DistPath    string        `arg:"" type:"existingdir" help:"Path to the built Storybook output directory"`
	BaseURL     string        `short:"b" env:"STORYLLMS_BASE_URL" help:"Base URL prefixed to generated links (default: /)"`
	Title       string        `short:"t" env:"STORYLLMS_TITLE" help:"Summary document heading (default: Summary)"`
	Description string        `short:"d" env:"STORYLLMS_DESCRIPTION" help:"Summary document description"`
	Config      string        `short:"c" env:"STORYLLMS_CONFIG" help:"YAML config file with title, description, base URL and reference links"`
	Timeout     time.Duration `default:"30s" help:"How long to wait for the story registry to appear"`
	Verbose     bool          `short:"v" help:"Enable debug logging"`
}

// GenerateCmd runs the documentation generation pipeline.
type GenerateCmd struct {
	Config storyllms.Config
}
