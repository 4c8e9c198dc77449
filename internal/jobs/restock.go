package jobs

import (
	"context"
	"fmt"
	"time"

	"github.com/machinebox/graphql"
)

const restockTimestampLayout = "02/01/2006-15:04:05"

// RestockJob invokes updateLowStockProducts once and logs the outcome. It
// never propagates failures: a broken endpoint becomes an ERROR log line, not
// a crashed scheduler slot.
type RestockJob struct {
	client  *graphql.Client
	token   string
	logPath string
}

func NewRestockJob(endpoint, token, logPath string) *RestockJob {
	return &RestockJob{
		client:  newClient(endpoint),
		token:   token,
		logPath: logPath,
	}
}

func (j *RestockJob) Run(ctx context.Context) error {
	timestamp := time.Now().Format(restockTimestampLayout)

	req := graphql.NewRequest(`
		mutation {
			updateLowStockProducts {
				message
				updatedProducts {
					name
					stock
				}
			}
		}
	`)
	if j.token != "" {
		req.Header.Set("Authorization", "Bearer "+j.token)
	}

	var resp struct {
		UpdateLowStockProducts struct {
			Message         string `json:"message"`
			UpdatedProducts []struct {
				Name  string `json:"name"`
				Stock int    `json:"stock"`
			} `json:"updatedProducts"`
		} `json:"updateLowStockProducts"`
	}

	if err := j.client.Run(ctx, req, &resp); err != nil {
		return appendLog(j.logPath, fmt.Sprintf("[%s] ERROR running update_low_stock: %v", timestamp, err))
	}

	if err := appendLog(j.logPath, fmt.Sprintf("[%s] %s", timestamp, resp.UpdateLowStockProducts.Message)); err != nil {
		return err
	}
	for _, p := range resp.UpdateLowStockProducts.UpdatedProducts {
		if err := appendLog(j.logPath, fmt.Sprintf("    - %s: stock=%d", p.Name, p.Stock)); err != nil {
			return err
		}
	}
	return nil
}
