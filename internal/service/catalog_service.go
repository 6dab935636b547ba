package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/fixbay/booking-api/internal/models"
	appErrors "github.com/fixbay/booking-api/pkg/errors"
)

type planRepository interface {
	FindByID(ctx context.Context, id string) (*models.ServicePlan, error)
	ListActive(ctx context.Context) ([]models.ServicePlan, error)
}

// CatalogService serves service plans, fronted by the cache layer. Plan
// duration drives the slot grid, so reads are hot on every availability call.
type CatalogService struct {
	repo     planRepository
	cache    *CacheService
	cacheTTL time.Duration
	logger   *zap.Logger
}

// NewCatalogService constructs a catalog service.
func NewCatalogService(repo planRepository, cache *CacheService, cacheTTL time.Duration, logger *zap.Logger) *CatalogService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CatalogService{repo: repo, cache: cache, cacheTTL: cacheTTL, logger: logger}
}

// GetPlan returns one plan by id. Inactive plans are not bookable.
func (s *CatalogService) GetPlan(ctx context.Context, id string) (*models.ServicePlan, error) {
	if id == "" {
		return nil, appErrors.Clone(appErrors.ErrValidation, "plan id is required")
	}
	cacheKey := "catalog:plan:" + id
	var cached models.ServicePlan
	if hit, err := s.cache.Get(ctx, cacheKey, &cached); err == nil && hit {
		return &cached, nil
	}

	plan, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !plan.Active {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "plan "+id+" is inactive")
	}
	if err := s.cache.Set(ctx, cacheKey, plan, s.cacheTTL); err != nil {
		s.logger.Warn("plan cache write failed", zap.String("plan_id", id), zap.Error(err))
	}
	return plan, nil
}

// ListPlans returns every active plan.
func (s *CatalogService) ListPlans(ctx context.Context) ([]models.ServicePlan, error) {
	cacheKey := "catalog:plans:active"
	var cached []models.ServicePlan
	if hit, err := s.cache.Get(ctx, cacheKey, &cached); err == nil && hit {
		return cached, nil
	}

	plans, err := s.repo.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.cache.Set(ctx, cacheKey, plans, s.cacheTTL); err != nil {
		s.logger.Warn("plan list cache write failed", zap.Error(err))
	}
	return plans, nil
}
