package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/khartman/linkprune"
	"github.com/khartman/linkprune/check"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger

	Extractor linkprune.Extractor
	Rewriter  linkprune.Rewriter
	Checker   *check.Checker
	Confirmer linkprune.Confirmer
}

// PruneCmd validates a bookmark file and writes a pruned copy.
type PruneCmd struct {
	Input  string
	Output string
	Yes    bool
}
