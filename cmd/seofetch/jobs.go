package main

import (
	"fmt"
	"time"

	"github.com/fwojciec/seofetch"
)

// Run executes the jobs command.
func (c *JobsCmd) Run(deps *Dependencies) error {
	filter := seofetch.JobFilter{Limit: c.Limit}
	if c.Keyword != "" {
		filter.Keyword = &c.Keyword
	}

	jobs, err := deps.Jobs.FindJobs(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", seofetch.ErrorMessage(err))
		return err
	}

	if len(jobs) == 0 {
		fmt.Fprintln(deps.Stdout, "No jobs found. Use 'seofetch run' to create one.")
		return nil
	}

	for _, j := range jobs {
		fmt.Fprintf(deps.Stdout, "%s  %s  %d/%d  %s\n",
			j.ID, j.CreatedAt.Local().Format(time.DateTime), j.Succeeded(), len(j.Results), j.Keyword)
	}

	return nil
}
