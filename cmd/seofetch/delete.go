package main

import (
	"fmt"

	"github.com/fwojciec/seofetch"
)

// Run executes the delete command.
func (c *DeleteCmd) Run(deps *Dependencies) error {
	if !c.Force {
		fmt.Fprintf(deps.Stderr, "error: use --force to confirm deletion\n")
		return seofetch.Errorf(seofetch.EINVALID, "use --force to confirm deletion")
	}

	if err := deps.Jobs.DeleteJob(deps.Ctx, c.ID); err != nil {
		if seofetch.ErrorCode(err) == seofetch.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "error: job %q not found. Use 'seofetch jobs' to see saved jobs.\n", c.ID)
			return err
		}
		fmt.Fprintf(deps.Stderr, "error: %s\n", seofetch.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Deleted job %s\n", c.ID)
	return nil
}
