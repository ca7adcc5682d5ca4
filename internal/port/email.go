package port

import (
	"context"

	"ledgerly/internal/domain"
)

// EmailSender defines the contract for sending emails.
type EmailSender interface {
	SendImportSummary(ctx context.Context, toEmail string, summary domain.ImportSummary) error
}
