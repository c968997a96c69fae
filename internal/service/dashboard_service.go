package service

import (
	"context"

	"go-ims/internal/model"
	"go-ims/internal/repository"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

type DashboardService interface {
	GetSummary(ctx context.Context) (*model.Summary, error)
}

type dashboardService struct {
	summaryRepo repository.SummaryRepository
}

func NewDashboardService(summaryRepo repository.SummaryRepository) DashboardService {
	return &dashboardService{summaryRepo: summaryRepo}
}

// GetSummary counts the five tables concurrently. A count that fails is reported as 0.
func (s *dashboardService) GetSummary(ctx context.Context) (*model.Summary, error) {
	var summary model.Summary
	targets := []struct {
		name  string
		model interface{}
		dest  *int64
	}{
		{"employees", &model.Employee{}, &summary.Employees},
		{"suppliers", &model.Supplier{}, &summary.Suppliers},
		{"categories", &model.Category{}, &summary.Categories},
		{"products", &model.Product{}, &summary.Products},
		{"sales", &model.Sale{}, &summary.Sales},
	}

	g, gctx := errgroup.WithContext(ctx)
	for _, target := range targets {
		target := target
		g.Go(func() error {
			n, err := s.summaryRepo.Count(gctx, target.model)
			if err != nil {
				log.Warn().Err(err).Str("table", target.name).Msg("summary count failed")
				n = 0
			}
			*target.dest = n
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &summary, nil
}
