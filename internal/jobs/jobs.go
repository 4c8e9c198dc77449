// Package jobs implements the scheduled maintenance jobs. Each job issues one
// GraphQL call against the running server and appends human-readable lines to
// its own flat log file; the log formats are operator-facing contracts and
// intentionally differ per job.
package jobs

import (
	"fmt"
	"os"

	"github.com/machinebox/graphql"
)

func newClient(endpoint string) *graphql.Client {
	return graphql.NewClient(endpoint)
}

// appendLog appends one line to the job's log file, creating it on first use.
func appendLog(path, line string) error {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer f.Close()

	if _, err := fmt.Fprintln(f, line); err != nil {
		return fmt.Errorf("failed to write log line: %w", err)
	}
	return nil
}
