package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"pauta-midia/internal/core/port"
)

// MockImageEditor is a testify mock of port.ImageEditor.
type MockImageEditor struct {
	mock.Mock
}

var _ port.ImageEditor = (*MockImageEditor)(nil)

func NewMockImageEditor(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockImageEditor {
	m := &MockImageEditor{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

type MockImageEditor_Expecter struct {
	mock *mock.Mock
}

func (m *MockImageEditor) EXPECT() *MockImageEditor_Expecter {
	return &MockImageEditor_Expecter{mock: &m.Mock}
}

func (m *MockImageEditor) EditImage(ctx context.Context, img port.Image, prompt string) (*port.Image, error) {
	ret := m.Called(ctx, img, prompt)
	out, _ := ret.Get(0).(*port.Image)
	return out, ret.Error(1)
}

func (e *MockImageEditor_Expecter) EditImage(ctx, img, prompt interface{}) *mock.Call {
	return e.mock.On("EditImage", ctx, img, prompt)
}
