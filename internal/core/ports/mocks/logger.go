package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/olusolaa/rpm-diff/internal/core/ports"
)

// Logger is a mock implementation of ports.Logger. Variadic args are
// recorded as a single slice argument.
type Logger struct {
	mock.Mock
}

func (m *Logger) Debugf(ctx context.Context, format string, args ...any) {
	m.Called(ctx, format, args)
}

func (m *Logger) Infof(ctx context.Context, format string, args ...any) {
	m.Called(ctx, format, args)
}

func (m *Logger) Warnf(ctx context.Context, format string, args ...any) {
	m.Called(ctx, format, args)
}

func (m *Logger) Errorf(ctx context.Context, err error, format string, args ...any) {
	m.Called(ctx, err, format, args)
}

func (m *Logger) WithFields(fields map[string]any) ports.Logger {
	args := m.Called(fields)
	return args.Get(0).(ports.Logger)
}

type testingT interface {
	mock.TestingT
	Cleanup(func())
}

// NewLogger returns a Logger accepting any call. Expectations added on top
// are asserted when the test finishes.
func NewLogger(t testingT) *Logger {
	m := &Logger{}
	m.Mock.Test(t)
	m.On("WithFields", mock.Anything).Maybe().Return(m)
	m.On("Debugf", mock.Anything, mock.Anything, mock.Anything).Maybe().Return()
	m.On("Infof", mock.Anything, mock.Anything, mock.Anything).Maybe().Return()
	m.On("Warnf", mock.Anything, mock.Anything, mock.Anything).Maybe().Return()
	m.On("Errorf", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Maybe().Return()
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}
