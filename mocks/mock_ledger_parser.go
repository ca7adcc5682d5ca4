package mocks

import (
	"github.com/stretchr/testify/mock"

	"ledgerly/internal/domain"
)

// MockLedgerParser is a mock implementation of port.LedgerParser.
type MockLedgerParser struct {
	mock.Mock
}

func (m *MockLedgerParser) Parse(markup string) (*domain.ParsedDocument, error) {
	args := m.Called(markup)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ParsedDocument), args.Error(1)
}
