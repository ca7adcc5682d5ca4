package noop

import (
	"context"

	"go.uber.org/zap"

	"ledgerly/internal/domain"
	"ledgerly/internal/port"
)

type noopSender struct {
	log *zap.Logger
}

// NewNoopSender creates a no-op EmailSender that only logs what would be sent.
func NewNoopSender(log *zap.Logger) port.EmailSender {
	return &noopSender{log: log}
}

func (s *noopSender) SendImportSummary(_ context.Context, toEmail string, summary domain.ImportSummary) error {
	s.log.Info("[NOOP EMAIL] import summary",
		zap.String("to", toEmail),
		zap.String("import_id", summary.ImportID.String()),
		zap.String("file", summary.FileName),
		zap.Int("items", summary.Counts.Items),
		zap.Int("ledgers", summary.Counts.Ledgers),
		zap.Int("parties", summary.Counts.Parties),
		zap.Int("vouchers", summary.Counts.Vouchers),
	)
	return nil
}
