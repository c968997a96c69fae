package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"go-ims/internal/backup"
	"go-ims/internal/invoice"
	"go-ims/internal/repository"
	"go-ims/internal/service"
	"go-ims/pkg/database"
	"go-ims/pkg/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

type stubRunner struct {
	err error
}

func (s stubRunner) Run(ctx context.Context, step backup.Step) error {
	if s.err != nil {
		return &backup.StepError{Step: step.Name, Err: s.err}
	}
	return nil
}

type testServer struct {
	app      *fiber.App
	fs       afero.Fs
	invoices *invoice.Store
}

func newTestServer(t *testing.T, runner backup.StepRunner) *testServer {
	t.Helper()
	db, err := database.Connect(database.Options{
		Driver: "sqlite",
		Path:   filepath.Join(t.TempDir(), "ims.db"),
	}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close(db) })

	fsys := afero.NewMemMapFs()
	invoices := invoice.NewStore(fsys, "bill")
	reporter := backup.NewReporter(fsys, "backup")
	if runner == nil {
		runner = stubRunner{}
	}

	productRepo := repository.NewProductRepo(db)
	hub := service.NopBroadcaster()

	app := fiber.New()
	SetupRoutes(app, &Handlers{
		Employee:  NewEmployeeHandler(service.NewEmployeeService(repository.NewEmployeeRepo(db))),
		Supplier:  NewSupplierHandler(repository.NewSupplierRepo(db)),
		Category:  NewCategoryHandler(repository.NewCategoryRepo(db)),
		Inventory: NewInventoryHandler(service.NewInventoryService(productRepo, hub)),
		Bill: NewBillHandler(service.NewBillingService(
			repository.NewSaleRepo(db), productRepo, db, invoices, invoice.NewNumberer(), hub,
		)),
		Dashboard: NewDashboardHandler(service.NewDashboardService(repository.NewSummaryRepo(db))),
		Backup:    NewBackupHandler(reporter, backup.NewTrigger(reporter, runner, backup.TriggerOptions{})),
	})
	return &testServer{app: app, fs: fsys, invoices: invoices}
}

// call sends a request and decodes the JSON answer into out when out is not nil.
func (s *testServer) call(t *testing.T, method, path string, body interface{}, out interface{}) int {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, ok := body.(string)
		if !ok {
			data, err := json.Marshal(body)
			require.NoError(t, err)
			raw = string(data)
		}
		reader = bytes.NewBufferString(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := s.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp.StatusCode
}

var errStepFailed = errors.New("Access is denied.")
