package main

import (
	"fmt"

	"github.com/fwojciec/seofetch"
)

// Run executes the show command.
func (c *ShowCmd) Run(deps *Dependencies) error {
	job, err := deps.Jobs.FindJobByID(deps.Ctx, c.ID)
	if err != nil {
		if seofetch.ErrorCode(err) == seofetch.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "error: job %q not found. Use 'seofetch jobs' to see saved jobs.\n", c.ID)
			return err
		}
		fmt.Fprintf(deps.Stderr, "error: %s\n", seofetch.ErrorMessage(err))
		return err
	}

	if c.JSON {
		return writeJSON(deps, job)
	}

	fmt.Fprintf(deps.Stdout, "Job %s for %q (%d results):\n\n", job.ID, job.Keyword, len(job.Results))
	fmt.Fprintln(deps.Stdout, seofetch.FormatResults(job.Results))
	return nil
}
