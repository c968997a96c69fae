package service

import (
	"context"
	"errors"
	"testing"

	"go-ims/internal/model"
	"go-ims/internal/repository"

	"github.com/stretchr/testify/require"
)

type flakyCounter struct {
	repository.SummaryRepository
}

func (c flakyCounter) Count(ctx context.Context, m interface{}) (int64, error) {
	if _, ok := m.(*model.Product); ok {
		return 0, errors.New("table locked")
	}
	return c.SummaryRepository.Count(ctx, m)
}

func TestGetSummary(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, db.Create(&model.Category{Name: "Tools"}).Error)
	require.NoError(t, db.Create(&model.Category{Name: "Food"}).Error)
	require.NoError(t, db.Create(&model.Product{Name: "Widget"}).Error)
	require.NoError(t, db.Create(&model.Sale{InvoiceNo: "INV1"}).Error)

	summary, err := NewDashboardService(repository.NewSummaryRepo(db)).GetSummary(context.Background())
	require.NoError(t, err)
	require.Equal(t, model.Summary{Categories: 2, Products: 1, Sales: 1}, *summary)
}

func TestGetSummaryFailedCountIsZero(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, db.Create(&model.Product{Name: "Widget"}).Error)
	require.NoError(t, db.Create(&model.Supplier{Name: "Acme"}).Error)

	svc := NewDashboardService(flakyCounter{SummaryRepository: repository.NewSummaryRepo(db)})
	summary, err := svc.GetSummary(context.Background())
	require.NoError(t, err)
	require.Zero(t, summary.Products)
	require.EqualValues(t, 1, summary.Suppliers)
}
