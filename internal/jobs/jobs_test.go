package jobs_test

import (
	"context"
	"fmt"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/matthieukhl/gocrm/internal/database"
	"github.com/matthieukhl/gocrm/internal/gql"
	"github.com/matthieukhl/gocrm/internal/jobs"
	"github.com/matthieukhl/gocrm/internal/logging"
	"github.com/matthieukhl/gocrm/internal/models"
	"github.com/matthieukhl/gocrm/internal/server"
	"github.com/matthieukhl/gocrm/internal/store"
)

// startTestAPI runs the full GraphQL server over an in-memory store so jobs
// exercise the same transport path they use in production.
func startTestAPI(t *testing.T, restockToken string) (*httptest.Server, *gorm.DB) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	gormDB, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, gormDB.AutoMigrate(&models.Customer{}, &models.Product{}, &models.Order{}))

	schema, err := gql.NewSchema(store.New(gormDB), restockToken)
	require.NoError(t, err)

	srv := server.NewServer(&database.DB{DB: gormDB}, schema, logging.New())
	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)

	return ts, gormDB
}

func readLog(t *testing.T, path string) []string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return strings.Split(strings.TrimRight(string(data), "\n"), "\n")
}

func TestRestockJob(t *testing.T) {
	ts, db := startTestAPI(t, "s3cret")

	products := []models.Product{
		{Name: "Keyboard", Price: decimal.RequireFromString("75.00"), Stock: 3},
		{Name: "Laptop", Price: decimal.RequireFromString("999.99"), Stock: 5},
		{Name: "Monitor", Price: decimal.RequireFromString("299.99"), Stock: 20},
	}
	for i := range products {
		require.NoError(t, db.Create(&products[i]).Error)
	}

	logPath := filepath.Join(t.TempDir(), "low_stock_updates_log.txt")
	job := jobs.NewRestockJob(ts.URL+"/graphql", "s3cret", logPath)
	require.NoError(t, job.Run(context.Background()))

	lines := readLog(t, logPath)
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "Successfully restocked 2 product(s).")
	assert.Equal(t, "    - Keyboard: stock=13", lines[1])
	assert.Equal(t, "    - Laptop: stock=15", lines[2])

	// Timestamp prefix uses the DD/MM/YYYY-HH:MM:SS layout.
	assert.Regexp(t, `^\[\d{2}/\d{2}/\d{4}-\d{2}:\d{2}:\d{2}\] `, lines[0])
}

func TestRestockJobUnauthorized(t *testing.T) {
	ts, db := startTestAPI(t, "s3cret")

	require.NoError(t, db.Create(&models.Product{
		Name: "Keyboard", Price: decimal.RequireFromString("75.00"), Stock: 3,
	}).Error)

	logPath := filepath.Join(t.TempDir(), "low_stock_updates_log.txt")
	job := jobs.NewRestockJob(ts.URL+"/graphql", "wrong-token", logPath)

	// Auth failures are logged, never raised.
	require.NoError(t, job.Run(context.Background()))

	lines := readLog(t, logPath)
	require.Len(t, lines, 1)
	assert.Contains(t, lines[0], "ERROR running update_low_stock")

	var keyboard models.Product
	require.NoError(t, db.Where("name = ?", "Keyboard").First(&keyboard).Error)
	assert.Equal(t, 3, keyboard.Stock)
}

func TestRestockJobTransportFailure(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "low_stock_updates_log.txt")
	job := jobs.NewRestockJob("http://127.0.0.1:1/graphql", "", logPath)

	require.NoError(t, job.Run(context.Background()))

	lines := readLog(t, logPath)
	require.Len(t, lines, 1)
	assert.Contains(t, lines[0], "ERROR running update_low_stock")
}

func TestReminderJob(t *testing.T) {
	ts, db := startTestAPI(t, "")

	alice := models.Customer{Name: "Alice", Email: "alice@example.com"}
	require.NoError(t, db.Create(&alice).Error)
	mouse := models.Product{Name: "Mouse", Price: decimal.RequireFromString("25.50"), Stock: 50}
	require.NoError(t, db.Create(&mouse).Error)

	st := store.New(db)
	recent, err := st.CreateOrder(context.Background(), store.OrderInput{
		CustomerID: alice.ID,
		ProductIDs: []uint{mouse.ID},
	})
	require.NoError(t, err)

	old := time.Now().AddDate(0, 0, -10)
	_, err = st.CreateOrder(context.Background(), store.OrderInput{
		CustomerID: alice.ID,
		ProductIDs: []uint{mouse.ID},
		OrderDate:  &old,
	})
	require.NoError(t, err)

	logPath := filepath.Join(t.TempDir(), "order_reminders_log.txt")
	job := jobs.NewReminderJob(ts.URL+"/graphql", logPath, 7)
	require.NoError(t, job.Run(context.Background()))

	// Only the order inside the 7-day window is logged.
	lines := readLog(t, logPath)
	require.Len(t, lines, 1)
	assert.Contains(t, lines[0], fmt.Sprintf("Order ID: %d", recent.ID))
	assert.Contains(t, lines[0], "Email: alice@example.com")
}

func TestReminderJobTransportFailure(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "order_reminders_log.txt")
	job := jobs.NewReminderJob("http://127.0.0.1:1/graphql", logPath, 7)

	err := job.Run(context.Background())
	require.Error(t, err)

	lines := readLog(t, logPath)
	require.Len(t, lines, 1)
	assert.Contains(t, lines[0], "ERROR processing order reminders")
}

func TestHeartbeatJob(t *testing.T) {
	ts, _ := startTestAPI(t, "")

	logPath := filepath.Join(t.TempDir(), "crm_heartbeat_log.txt")
	job := jobs.NewHeartbeatJob(ts.URL+"/graphql", logPath)
	require.NoError(t, job.Run(context.Background()))

	lines := readLog(t, logPath)
	require.Len(t, lines, 1)
	assert.Regexp(t, `^\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2} - CRM heartbeat$`, lines[0])
}

func TestHeartbeatJobEndpointDown(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "crm_heartbeat_log.txt")
	job := jobs.NewHeartbeatJob("http://127.0.0.1:1/graphql", logPath)
	require.NoError(t, job.Run(context.Background()))

	lines := readLog(t, logPath)
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "CRM heartbeat")
	assert.Contains(t, lines[1], "ERROR: GraphQL hello failed")
}
