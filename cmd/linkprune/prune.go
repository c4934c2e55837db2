package main

import (
	"bytes"
	"fmt"
	"os"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/khartman/linkprune"
	"github.com/khartman/linkprune/check"
)

// Run validates every link in the input document, asks for confirmation,
// and writes the pruned copy.
func (cmd *PruneCmd) Run(deps *Dependencies) error {
	start := time.Now()

	source, err := os.ReadFile(cmd.Input)
	if err != nil {
		return linkprune.Errorf(linkprune.ENOTFOUND, "cannot read bookmark file %q: %v", cmd.Input, err)
	}

	links, err := deps.Extractor.ExtractLinks(bytes.NewReader(source))
	if err != nil {
		return err
	}

	fmt.Fprintf(deps.Stdout, "Total links to check: %d\n", len(links))

	report, err := deps.Checker.CheckLinks(deps.Ctx, links, func(event check.ProgressEvent) {
		switch event.Type {
		case check.ProgressStarted:
			deps.Logger.Debug("validation started", "run", event.RunID, "total", event.Total)
		case check.ProgressChecked:
			fmt.Fprintf(deps.Stdout, "Checking link %d/%d: %s\n", event.Completed, event.Total, event.URL)
			if !event.Result.Valid {
				fmt.Fprintf(deps.Stdout, "Invalid link: %s\n", event.URL)
			}
		}
	})
	if err != nil {
		return err
	}

	if deps.Ctx.Err() != nil {
		fmt.Fprintln(deps.Stdout, "\nProcess interrupted by user. Exiting...")
		return nil
	}

	deps.Logger.Debug("validation finished",
		"run", report.RunID,
		"valid", len(report.Valid),
		"invalid", len(report.Invalid),
	)

	if len(report.Invalid) == 0 {
		fmt.Fprintln(deps.Stdout, "No invalid links found.")
		fmt.Fprintf(deps.Stdout, "Script execution time: %.2f seconds\n", time.Since(start).Seconds())
		return nil
	}

	remove := cmd.Yes
	if !remove {
		prompt := fmt.Sprintf("\nFound %d invalid links. Do you want to remove them? (y/n): ", len(report.Invalid))
		remove, err = deps.Confirmer.Confirm(prompt)
		if err != nil {
			return err
		}
	}

	if !remove {
		fmt.Fprintln(deps.Stdout, "No changes were made.")
		fmt.Fprintf(deps.Stdout, "Script execution time: %.2f seconds\n", time.Since(start).Seconds())
		return nil
	}

	pruned, removed, err := deps.Rewriter.Prune(bytes.NewReader(source), report.Invalid)
	if err != nil {
		return err
	}

	if unchanged(cmd.Output, pruned) {
		fmt.Fprintf(deps.Stdout, "Output %s is already up to date.\n", cmd.Output)
	} else {
		if err := os.WriteFile(cmd.Output, pruned, 0644); err != nil {
			return linkprune.Errorf(linkprune.EINTERNAL, "cannot write %q: %v", cmd.Output, err)
		}
		fmt.Fprintf(deps.Stdout, "Cleaned bookmarks saved to %s (%d links removed)\n", cmd.Output, removed)
	}

	fmt.Fprintf(deps.Stdout, "Script execution time: %.2f seconds\n", time.Since(start).Seconds())
	return nil
}

// unchanged reports whether the existing output file already has this exact
// content, so repeated runs don't touch its modification time.
func unchanged(path string, content []byte) bool {
	existing, err := os.ReadFile(path)
	if err != nil {
		return false
	}
	return xxhash.Sum64(existing) == xxhash.Sum64(content)
}
