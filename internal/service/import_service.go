package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"ledgerly/internal/config"
	"ledgerly/internal/domain"
	"ledgerly/internal/metrics"
	"ledgerly/internal/port"
	"ledgerly/internal/tally"
	"ledgerly/internal/validator"
)

// ImportInput is the DTO for a Tally import request.
type ImportInput struct {
	UserID    uuid.UUID
	UserEmail string
	FileName  string
	Content   string
}

// ImportService defines the Tally import contract.
type ImportService interface {
	// Import parses the export and commits the derived masters for the user.
	Import(ctx context.Context, input ImportInput) (*domain.ImportResult, error)
	// Parse only parses; nothing is written.
	Parse(content string) (*domain.ParsedDocument, error)
}

// ImportDeps groups the collaborators of the import service.
type ImportDeps struct {
	Parser    port.LedgerParser
	Store     port.ImportStore
	Storage   port.ObjectStorage
	Email     port.EmailSender
	Metrics   *metrics.Metrics
	Logger    *zap.Logger
	Validator *validator.Engine // nil uses every built-in rule
}

type importService struct {
	parser  port.LedgerParser
	store   port.ImportStore
	storage port.ObjectStorage
	email   port.EmailSender
	metrics *metrics.Metrics
	checks  *validator.Engine
	log     *zap.Logger
	cfg     config.ImportConfig
	bucket  string
}

// NewImportService creates a new ImportService implementation. Storage is
// only used when cfg.ArchiveUploads is set and Email only when
// cfg.NotifyOnComplete is set.
func NewImportService(deps ImportDeps, cfg config.ImportConfig, bucket string) ImportService {
	if !cfg.CommitPolicy.Valid() {
		cfg.CommitPolicy = domain.CommitTransactional
	}
	log := deps.Logger
	if log == nil {
		log = zap.NewNop()
	}
	checks := deps.Validator
	if checks == nil {
		checks = validator.NewDefaultEngine()
	}
	return &importService{
		parser:  deps.Parser,
		store:   deps.Store,
		storage: deps.Storage,
		email:   deps.Email,
		metrics: deps.Metrics,
		checks:  checks,
		log:     log,
		cfg:     cfg,
		bucket:  bucket,
	}
}

// importRows are the destination rows derived from one parsed document.
type importRows struct {
	items    []domain.Item
	accounts []domain.Account
	clients  []domain.Party
	vendors  []domain.Party
}

func (s *importService) Parse(content string) (*domain.ParsedDocument, error) {
	return s.parser.Parse(content)
}

func (s *importService) Import(ctx context.Context, input ImportInput) (*domain.ImportResult, error) {
	run := domain.NewImportRun(input.UserID)
	log := s.log.With(
		zap.String("import_id", run.ID.String()),
		zap.String("user_id", input.UserID.String()),
		zap.String("file", input.FileName),
	)
	result := &domain.ImportResult{ImportID: run.ID}

	if err := run.Transition(domain.ImportStateValidating); err != nil {
		return nil, err
	}
	if strings.TrimSpace(input.Content) == "" {
		log.Warn("importService.Import: rejected empty upload")
		return s.fail(run, result, metrics.OutcomeRejected, &domain.ImportError{State: run.State, Err: domain.ErrNoContent})
	}

	s.archive(ctx, log, run, input)

	if err := run.Transition(domain.ImportStateParsing); err != nil {
		return nil, err
	}
	doc, err := s.parser.Parse(input.Content)
	if err != nil {
		return s.fail(run, result, metrics.OutcomeRejected, &domain.ImportError{State: run.State, Err: err})
	}
	result.Document = doc
	result.Counts = doc.Counts()
	result.Warnings = s.checks.Validate(doc)
	log.Info("importService.Import: parsed export",
		zap.Int("items", result.Counts.Items),
		zap.Int("ledgers", result.Counts.Ledgers),
		zap.Int("parties", result.Counts.Parties),
		zap.Int("vouchers", result.Counts.Vouchers),
		zap.Int("warnings", len(result.Warnings)),
	)

	rows := mapDocument(run, doc)
	if err := s.commit(ctx, log, run, rows); err != nil {
		log.Error("importService.Import: import failed",
			zap.String("state", string(run.State)),
			zap.String("commit_policy", string(s.cfg.CommitPolicy)),
			zap.Error(err),
		)
		return s.fail(run, result, metrics.OutcomeFailed, err)
	}

	if err := run.Transition(domain.ImportStateCompleted); err != nil {
		return nil, err
	}
	result.Success = true
	s.observe(run, metrics.OutcomeCompleted, result.Counts)
	log.Info("importService.Import: import completed",
		zap.Duration("elapsed", time.Since(run.StartedAt)))

	s.notify(ctx, log, input, result)
	return result, nil
}

// commit writes the rows according to the configured commit policy.
func (s *importService) commit(ctx context.Context, log *zap.Logger, run *domain.ImportRun, rows *importRows) error {
	switch s.cfg.CommitPolicy {
	case domain.CommitSequential:
		return insertPhases(ctx, run, s.store, rows)

	case domain.CommitCompensating:
		err := insertPhases(ctx, run, s.store, rows)
		if err != nil && len(run.Committed) > 0 {
			if derr := s.store.DeleteByImport(ctx, run.ID); derr != nil {
				log.Error("importService.commit: compensating delete failed; rows of earlier phases remain",
					zap.Strings("committed", committedNames(run)), zap.Error(derr))
			} else {
				log.Info("importService.commit: removed rows of earlier phases",
					zap.Strings("committed", committedNames(run)))
			}
		}
		return err

	default:
		err := s.store.WithinTx(ctx, func(w port.ImportWriter) error {
			return insertPhases(ctx, run, w, rows)
		})
		if err != nil {
			// The transaction rolled every phase back.
			run.Committed = nil
		}
		var importErr *domain.ImportError
		if err != nil && !errors.As(err, &importErr) {
			// Begin or commit failed outside a phase; report it against the
			// phase it blocked.
			state := run.State
			if !state.Inserting() {
				state = domain.ImportStateInsertingItems
			}
			return &domain.ImportError{State: state, Err: err}
		}
		return err
	}
}

// insertPhases runs items, ledgers and parties in that order, stopping at the
// first write failure. Empty collections make no call. A phase is recorded as
// committed after its first successful write, so a parties phase that wrote
// clients and then failed on vendors still counts.
func insertPhases(ctx context.Context, run *domain.ImportRun, w port.ImportWriter, rows *importRows) error {
	type write struct {
		rows int
		fn   func() error
	}
	phases := []struct {
		state  domain.ImportState
		writes []write
	}{
		{domain.ImportStateInsertingItems, []write{
			{len(rows.items), func() error { return w.InsertItems(ctx, rows.items) }},
		}},
		{domain.ImportStateInsertingLedgers, []write{
			{len(rows.accounts), func() error { return w.InsertAccounts(ctx, rows.accounts) }},
		}},
		{domain.ImportStateInsertingParties, []write{
			{len(rows.clients), func() error { return w.InsertClients(ctx, rows.clients) }},
			{len(rows.vendors), func() error { return w.InsertVendors(ctx, rows.vendors) }},
		}},
	}

	for _, p := range phases {
		if err := run.Transition(p.state); err != nil {
			return err
		}
		for _, wr := range p.writes {
			if wr.rows == 0 {
				continue
			}
			if err := wr.fn(); err != nil {
				return &domain.ImportError{State: p.state, Err: err}
			}
			run.MarkCommitted(p.state)
		}
	}
	return nil
}

// mapDocument converts parsed records into destination rows owned by the
// run's user. Numeric fields that do not parse become zero.
func mapDocument(run *domain.ImportRun, doc *domain.ParsedDocument) *importRows {
	importID := run.ID
	now := time.Now().UTC()
	rows := &importRows{}

	for _, it := range doc.Items {
		rows.items = append(rows.items, domain.Item{
			ID:        uuid.New(),
			UserID:    run.UserID,
			ImportID:  &importID,
			Name:      it.Name,
			Category:  it.Category,
			HSNCode:   it.HSNCode,
			Unit:      it.Unit,
			Rate:      tally.ParseAmount(it.Rate),
			TaxRate:   taxRate(it.TaxRate),
			CreatedAt: now,
		})
	}

	for _, l := range doc.Ledgers {
		rows.accounts = append(rows.accounts, domain.Account{
			ID:             uuid.New(),
			UserID:         run.UserID,
			ImportID:       &importID,
			Name:           l.Name,
			Type:           tally.ClassifyAccountType(l.Type),
			OpeningBalance: tally.ParseAmount(l.OpeningBalance),
			CurrentBalance: tally.ParseAmount(l.ClosingBalance),
			CreatedAt:      now,
		})
	}

	for _, p := range doc.Parties {
		party := domain.Party{
			ID:                 uuid.New(),
			UserID:             run.UserID,
			ImportID:           &importID,
			Name:               p.Name,
			GSTIN:              p.GSTIN,
			Phone:              p.Phone,
			Address:            p.Address,
			OutstandingBalance: tally.ParseAmount(p.Outstanding),
			CreatedAt:          now,
		}
		if p.Kind == domain.PartyKindCustomer {
			rows.clients = append(rows.clients, party)
		} else {
			rows.vendors = append(rows.vendors, party)
		}
	}

	return rows
}

var maxTaxRate = decimal.NewFromInt(100)

// taxRate coerces a GST/VAT percentage. Values outside 0-100 are import noise
// and become zero, like unparseable ones.
func taxRate(raw string) decimal.Decimal {
	d := tally.ParseAmount(raw)
	if d.IsNegative() || d.GreaterThan(maxTaxRate) {
		return decimal.Zero
	}
	return d
}

func (s *importService) fail(run *domain.ImportRun, result *domain.ImportResult, outcome string, err error) (*domain.ImportResult, error) {
	if terr := run.Transition(domain.ImportStateFailed); terr != nil {
		return nil, fmt.Errorf("%w (while handling: %v)", terr, err)
	}
	result.Success = false
	result.Error = err.Error()
	s.observe(run, outcome, result.Counts)
	return result, err
}

func (s *importService) observe(run *domain.ImportRun, outcome string, counts domain.ImportCounts) {
	if s.metrics != nil {
		s.metrics.ObserveImport(outcome, counts, time.Since(run.StartedAt))
	}
}

// archive keeps a copy of the raw upload. Failures are logged only.
func (s *importService) archive(ctx context.Context, log *zap.Logger, run *domain.ImportRun, input ImportInput) {
	if !s.cfg.ArchiveUploads || s.storage == nil {
		return
	}
	key := ArchiveKey(input.UserID, run.ID, input.FileName)
	_, err := s.storage.Upload(ctx, port.UploadInput{
		Bucket:      s.bucket,
		Key:         key,
		Body:        bytes.NewReader([]byte(input.Content)),
		ContentType: "application/xml",
		Size:        int64(len(input.Content)),
	})
	if err != nil {
		log.Warn("importService.archive: upload archive failed", zap.String("key", key), zap.Error(err))
		return
	}
	log.Debug("importService.archive: archived upload", zap.String("key", key))
}

// notify emails the uploader a summary. Failures are logged only.
func (s *importService) notify(ctx context.Context, log *zap.Logger, input ImportInput, result *domain.ImportResult) {
	if !s.cfg.NotifyOnComplete || s.email == nil || input.UserEmail == "" {
		return
	}
	err := s.email.SendImportSummary(ctx, input.UserEmail, domain.ImportSummary{
		ImportID: result.ImportID,
		FileName: input.FileName,
		Counts:   result.Counts,
	})
	if err != nil {
		log.Warn("importService.notify: summary email failed", zap.Error(err))
	}
}

// ArchiveKey returns the object key under which an upload is archived.
func ArchiveKey(userID, importID uuid.UUID, fileName string) string {
	name := path.Base(strings.ReplaceAll(fileName, `\`, "/"))
	if name == "." || name == "/" || name == "" {
		name = "upload.xml"
	}
	return fmt.Sprintf("imports/%s/%s/%s", userID, importID, name)
}

func committedNames(run *domain.ImportRun) []string {
	names := make([]string, len(run.Committed))
	for i, st := range run.Committed {
		names[i] = string(st)
	}
	return names
}
