package service

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/fixbay/booking-api/internal/models"
	appErrors "github.com/fixbay/booking-api/pkg/errors"
)

type planRepoStub struct {
	plans map[string]*models.ServicePlan
	calls int
}

func (s *planRepoStub) FindByID(_ context.Context, id string) (*models.ServicePlan, error) {
	s.calls++
	plan, ok := s.plans[id]
	if !ok {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "plan "+id)
	}
	return plan, nil
}

func (s *planRepoStub) ListActive(_ context.Context) ([]models.ServicePlan, error) {
	s.calls++
	out := make([]models.ServicePlan, 0, len(s.plans))
	for _, p := range s.plans {
		if p.Active {
			out = append(out, *p)
		}
	}
	return out, nil
}

type memoryCacheRepo struct {
	store map[string][]byte
}

func (m *memoryCacheRepo) Get(_ context.Context, key string, dest interface{}) error {
	raw, ok := m.store[key]
	if !ok {
		return appErrors.ErrCacheMiss
	}
	return json.Unmarshal(raw, dest)
}

func (m *memoryCacheRepo) Set(_ context.Context, key string, value interface{}, _ time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.store[key] = raw
	return nil
}

func TestCatalogGetPlanServesFromCache(t *testing.T) {
	repo := &planRepoStub{plans: map[string]*models.ServicePlan{
		"plan-1": {ID: "plan-1", Name: "Oil Change", DurationMinutes: 60, Active: true},
	}}
	cacheSvc := NewCacheService(&memoryCacheRepo{store: map[string][]byte{}}, nil, time.Minute, zap.NewNop(), true)
	svc := NewCatalogService(repo, cacheSvc, time.Minute, zap.NewNop())

	for i := 0; i < 3; i++ {
		plan, err := svc.GetPlan(context.Background(), "plan-1")
		require.NoError(t, err)
		assert.Equal(t, "Oil Change", plan.Name)
	}
	assert.Equal(t, 1, repo.calls)
}

func TestCatalogGetPlan(t *testing.T) {
	repo := &planRepoStub{plans: map[string]*models.ServicePlan{
		"plan-1": {ID: "plan-1", Name: "Oil Change", DurationMinutes: 60, Active: true},
	}}
	svc := NewCatalogService(repo, nil, 0, zap.NewNop())

	plan, err := svc.GetPlan(context.Background(), "plan-1")
	require.NoError(t, err)
	assert.Equal(t, 60, plan.DurationMinutes)
}

func TestCatalogGetPlanRequiresID(t *testing.T) {
	svc := NewCatalogService(&planRepoStub{}, nil, 0, zap.NewNop())

	_, err := svc.GetPlan(context.Background(), "")
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

func TestCatalogGetPlanInactive(t *testing.T) {
	repo := &planRepoStub{plans: map[string]*models.ServicePlan{
		"plan-2": {ID: "plan-2", Name: "Retired Service", DurationMinutes: 30, Active: false},
	}}
	svc := NewCatalogService(repo, nil, 0, zap.NewNop())

	_, err := svc.GetPlan(context.Background(), "plan-2")
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code)
}

func TestCatalogGetPlanUnknown(t *testing.T) {
	svc := NewCatalogService(&planRepoStub{plans: map[string]*models.ServicePlan{}}, nil, 0, zap.NewNop())

	_, err := svc.GetPlan(context.Background(), "missing")
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code)
}

func TestCatalogListPlansFiltersInactive(t *testing.T) {
	repo := &planRepoStub{plans: map[string]*models.ServicePlan{
		"plan-1": {ID: "plan-1", Name: "Oil Change", Active: true},
		"plan-2": {ID: "plan-2", Name: "Retired", Active: false},
	}}
	svc := NewCatalogService(repo, nil, 0, zap.NewNop())

	plans, err := svc.ListPlans(context.Background())
	require.NoError(t, err)
	assert.Len(t, plans, 1)
	assert.Equal(t, "plan-1", plans[0].ID)
}
