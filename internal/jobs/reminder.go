package jobs

import (
	"context"
	"fmt"
	"time"

	"github.com/machinebox/graphql"
)

// ReminderJob looks up orders placed inside the lookback window and logs one
// reminder line per order. Unlike the restock job, a transport failure is
// logged and also returned, so the scheduler sees a non-zero exit.
type ReminderJob struct {
	client       *graphql.Client
	logPath      string
	lookbackDays int
}

func NewReminderJob(endpoint, logPath string, lookbackDays int) *ReminderJob {
	if lookbackDays <= 0 {
		lookbackDays = 7
	}
	return &ReminderJob{
		client:       newClient(endpoint),
		logPath:      logPath,
		lookbackDays: lookbackDays,
	}
}

func (j *ReminderJob) Run(ctx context.Context) error {
	since := time.Now().AddDate(0, 0, -j.lookbackDays)

	req := graphql.NewRequest(`
		query RecentOrders($since: DateTime!) {
			allOrders(filter: { orderDateGte: $since }) {
				id
				orderDate
				customer {
					email
				}
			}
		}
	`)
	req.Var("since", since.Format(time.RFC3339))

	var resp struct {
		AllOrders []struct {
			ID       string `json:"id"`
			Customer struct {
				Email string `json:"email"`
			} `json:"customer"`
		} `json:"allOrders"`
	}

	timestamp := time.Now().Format(time.RFC3339)
	if err := j.client.Run(ctx, req, &resp); err != nil {
		if logErr := appendLog(j.logPath, fmt.Sprintf("[%s] ERROR processing order reminders: %v", timestamp, err)); logErr != nil {
			return logErr
		}
		return fmt.Errorf("failed to query recent orders: %w", err)
	}

	for _, order := range resp.AllOrders {
		line := fmt.Sprintf("[%s] Order ID: %s, Email: %s", timestamp, order.ID, order.Customer.Email)
		if err := appendLog(j.logPath, line); err != nil {
			return err
		}
	}
	return nil
}
