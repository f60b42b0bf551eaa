package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	jobsadapter "github.com/bnema/mc-assistant/internal/adapters/render/jobs"
	"github.com/bnema/mc-assistant/internal/domain"
	"github.com/spf13/cobra"
)

const (
	defaultListLimit = 20
	historyScanLimit = 10000
)

func newSubmitCommandCmd(a *app) *cobra.Command {
	var wait bool

	cmd := &cobra.Command{
		Use:   "submit-command <command...>",
		Short: "Queue a Minecraft command for execution",
		Long:  "Queue a Minecraft command. The job runs before mca exits; --wait also prints its outcome.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			command := strings.Join(args, " ")
			a.start(cmd.Context())

			id, err := a.runtime.Submit(command)
			if err != nil {
				return fmt.Errorf("submit command: %w", err)
			}

			if !wait {
				_, err = fmt.Fprintf(cmd.OutOrStdout(), "queued job %s\n", id)
				return err
			}

			job, err := runWaitSpinner(cmd.Context(), cmd.ErrOrStderr(), fmt.Sprintf("Running %s...", command), func(ctx context.Context) (domain.CommandJob, error) {
				return a.runtime.WaitJob(ctx, id)
			})
			if err != nil {
				return fmt.Errorf("wait for job %s: %w", id, err)
			}

			return writeJobOutput(cmd, a, job, false)
		},
	}

	cmd.Flags().BoolVar(&wait, "wait", false, "Wait for the job to finish and print its outcome")

	return cmd
}

func newGetJobCmd(a *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "get-job <id>",
		Short: "Show one command job",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			job, err := findJob(cmd, a, domain.JobID(args[0]))
			if err != nil {
				return err
			}

			return writeJobOutput(cmd, a, job, asJSON)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	return cmd
}

func newListJobsCmd(a *app) *cobra.Command {
	var (
		limit  int
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "list-jobs",
		Short: "List recent command jobs, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if limit <= 0 {
				return fmt.Errorf("--limit must be positive, got %d", limit)
			}

			jobs, err := a.runtime.ListRecent(cmd.Context(), limit)
			if err != nil {
				return err
			}

			return writeJobsOutput(cmd, a, jobs, asJSON)
		},
	}

	cmd.Flags().IntVar(&limit, "limit", defaultListLimit, "Maximum number of jobs to show")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	return cmd
}

// findJob checks the live runtime first, then the history store.
func findJob(cmd *cobra.Command, a *app, id domain.JobID) (domain.CommandJob, error) {
	job, err := a.runtime.GetJob(id)
	if err == nil {
		return job, nil
	}
	if !errors.Is(err, domain.ErrUnknownJob) {
		return domain.CommandJob{}, err
	}

	stored, err := a.history.ListRecent(cmd.Context(), historyScanLimit)
	if err != nil {
		return domain.CommandJob{}, fmt.Errorf("get job %s: %w", id, err)
	}
	for _, candidate := range stored {
		if candidate.ID == id {
			return candidate, nil
		}
	}

	return domain.CommandJob{}, fmt.Errorf("get job %s: %w", id, domain.ErrUnknownJob)
}

func writeJobOutput(cmd *cobra.Command, a *app, job domain.CommandJob, asJSON bool) error {
	if asJSON {
		return writeJSON(cmd, job)
	}
	return writeJobsOutput(cmd, a, []domain.CommandJob{job}, false)
}

func writeJobsOutput(cmd *cobra.Command, a *app, jobs []domain.CommandJob, asJSON bool) error {
	if asJSON {
		return writeJSON(cmd, jobs)
	}

	rendered, err := a.jobRenderer(jobs, jobsadapter.RenderOptions{Now: a.now()})
	if err != nil {
		return fmt.Errorf("render jobs: %w", err)
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
	return err
}

func writeJSON(cmd *cobra.Command, value any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(value)
}
