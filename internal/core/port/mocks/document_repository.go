package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"pauta-midia/internal/core/domain"
	"pauta-midia/internal/core/port"
)

// MockDocumentRepository is a testify mock of port.DocumentRepository.
type MockDocumentRepository struct {
	mock.Mock
}

var _ port.DocumentRepository = (*MockDocumentRepository)(nil)

func NewMockDocumentRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockDocumentRepository {
	m := &MockDocumentRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

type MockDocumentRepository_Expecter struct {
	mock *mock.Mock
}

func (m *MockDocumentRepository) EXPECT() *MockDocumentRepository_Expecter {
	return &MockDocumentRepository_Expecter{mock: &m.Mock}
}

func (m *MockDocumentRepository) AddDocument(ctx context.Context, d domain.Document) error {
	ret := m.Called(ctx, d)
	return ret.Error(0)
}

func (e *MockDocumentRepository_Expecter) AddDocument(ctx, d interface{}) *mock.Call {
	return e.mock.On("AddDocument", ctx, d)
}

func (m *MockDocumentRepository) ListDocuments(ctx context.Context, campaignID string) ([]domain.Document, error) {
	ret := m.Called(ctx, campaignID)
	ds, _ := ret.Get(0).([]domain.Document)
	return ds, ret.Error(1)
}

func (e *MockDocumentRepository_Expecter) ListDocuments(ctx, campaignID interface{}) *mock.Call {
	return e.mock.On("ListDocuments", ctx, campaignID)
}
