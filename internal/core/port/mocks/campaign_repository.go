package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"pauta-midia/internal/core/domain"
	"pauta-midia/internal/core/port"
)

// MockCampaignRepository is a testify mock of port.CampaignRepository.
type MockCampaignRepository struct {
	mock.Mock
}

var _ port.CampaignRepository = (*MockCampaignRepository)(nil)

// NewMockCampaignRepository creates the mock and asserts its expectations
// when the test ends.
func NewMockCampaignRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockCampaignRepository {
	m := &MockCampaignRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

type MockCampaignRepository_Expecter struct {
	mock *mock.Mock
}

func (m *MockCampaignRepository) EXPECT() *MockCampaignRepository_Expecter {
	return &MockCampaignRepository_Expecter{mock: &m.Mock}
}

func (m *MockCampaignRepository) CreateCampaign(ctx context.Context, c domain.Campaign) error {
	ret := m.Called(ctx, c)
	return ret.Error(0)
}

func (e *MockCampaignRepository_Expecter) CreateCampaign(ctx, c interface{}) *mock.Call {
	return e.mock.On("CreateCampaign", ctx, c)
}

func (m *MockCampaignRepository) UpdateCampaign(ctx context.Context, id string, mutate port.MutateFunc) (*domain.Campaign, error) {
	ret := m.Called(ctx, id, mutate)
	if fn, ok := ret.Get(0).(func(context.Context, string, port.MutateFunc) (*domain.Campaign, error)); ok {
		return fn(ctx, id, mutate)
	}
	c, _ := ret.Get(0).(*domain.Campaign)
	return c, ret.Error(1)
}

func (e *MockCampaignRepository_Expecter) UpdateCampaign(ctx, id, mutate interface{}) *mock.Call {
	return e.mock.On("UpdateCampaign", ctx, id, mutate)
}

func (m *MockCampaignRepository) GetCampaign(ctx context.Context, id string) (*domain.Campaign, error) {
	ret := m.Called(ctx, id)
	c, _ := ret.Get(0).(*domain.Campaign)
	return c, ret.Error(1)
}

func (e *MockCampaignRepository_Expecter) GetCampaign(ctx, id interface{}) *mock.Call {
	return e.mock.On("GetCampaign", ctx, id)
}

func (m *MockCampaignRepository) ListCampaigns(ctx context.Context) ([]domain.Campaign, error) {
	ret := m.Called(ctx)
	cs, _ := ret.Get(0).([]domain.Campaign)
	return cs, ret.Error(1)
}

func (e *MockCampaignRepository_Expecter) ListCampaigns(ctx interface{}) *mock.Call {
	return e.mock.On("ListCampaigns", ctx)
}

func (m *MockCampaignRepository) DeleteCampaign(ctx context.Context, id string) error {
	ret := m.Called(ctx, id)
	return ret.Error(0)
}

func (e *MockCampaignRepository_Expecter) DeleteCampaign(ctx, id interface{}) *mock.Call {
	return e.mock.On("DeleteCampaign", ctx, id)
}
