package main

import (
	"fmt"

	"github.com/fwojciec/refdex"
)

// Run executes the query command: load the manifest, match, print rows.
func (c *QueryCmd) Run(deps *Dependencies) error {
	m, err := deps.Manifests.LoadManifest(c.Manifest)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", refdex.ErrorMessage(err))
		return err
	}

	res := refdex.QueryManifest(m, c.Needle, c.Limit)

	for _, row := range res.Rows {
		if row.Anchor != "" {
			fmt.Fprintf(deps.Stdout, "%s: %s\n", row.File, row.Anchor)
		} else {
			fmt.Fprintf(deps.Stdout, "%s: %s\n", row.File, row.Title)
		}
	}

	fmt.Fprintf(deps.Stdout, "\nresults=%d shown / total=%d\n", len(res.Rows), res.Total)
	return nil
}
