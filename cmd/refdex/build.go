package main

import (
	"fmt"

	"github.com/fwojciec/refdex"
	refdexslog "github.com/fwojciec/refdex/slog"
)

// Run executes the build command: list pages, scan, index, write manifest.
func (c *BuildCmd) Run(deps *Dependencies) error {
	paths, err := deps.Pages.ListPages(c.DocRoot)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", refdex.ErrorMessage(err))
		return err
	}

	m, skipped, err := refdex.BuildManifest(deps.Ctx, c.DocRoot, paths, deps.Scanner)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", refdex.ErrorMessage(err))
		return err
	}

	// Malformed anchors never abort a build; surface them instead.
	refdexslog.LogSkippedAnchors(deps.Logger, skipped)

	if err := deps.Manifests.WriteManifest(c.Out, m); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", refdex.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Wrote manifest: %s\n", c.Out)
	fmt.Fprintf(deps.Stdout, "Scanned pages: %d\n", m.PagesScanned)
	return nil
}
