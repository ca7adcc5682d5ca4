package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"ledgerly/internal/domain"
)

// MockEmailSender is a mock implementation of port.EmailSender.
type MockEmailSender struct {
	mock.Mock
}

func (m *MockEmailSender) SendImportSummary(ctx context.Context, toEmail string, summary domain.ImportSummary) error {
	args := m.Called(ctx, toEmail, summary)
	return args.Error(0)
}
