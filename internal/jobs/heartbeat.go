package jobs

import (
	"context"
	"fmt"
	"time"

	"github.com/machinebox/graphql"
)

const heartbeatTimestampLayout = "2006-01-02 15:04:05"

// HeartbeatJob appends a liveness line and pings the GraphQL endpoint's hello
// query so a silent endpoint outage shows up in the log.
type HeartbeatJob struct {
	client  *graphql.Client
	logPath string
}

func NewHeartbeatJob(endpoint, logPath string) *HeartbeatJob {
	return &HeartbeatJob{
		client:  newClient(endpoint),
		logPath: logPath,
	}
}

func (j *HeartbeatJob) Run(ctx context.Context) error {
	timestamp := time.Now().Format(heartbeatTimestampLayout)

	if err := appendLog(j.logPath, fmt.Sprintf("%s - CRM heartbeat", timestamp)); err != nil {
		return err
	}

	req := graphql.NewRequest(`{ hello }`)
	var resp struct {
		Hello string `json:"hello"`
	}
	if err := j.client.Run(ctx, req, &resp); err != nil {
		return appendLog(j.logPath, fmt.Sprintf("%s - ERROR: GraphQL hello failed: %v", timestamp, err))
	}
	return nil
}
