package application

import (
	"context"
	"fmt"
	"time"

	"github.com/D-C-Legacy/ad-admin/internal/domain"
	"github.com/D-C-Legacy/ad-admin/internal/ports"
	"github.com/D-C-Legacy/ad-admin/internal/synth"
)

// defaultReferenceDate anchors generated time series so re-querying the
// same window yields the same points.
var defaultReferenceDate = time.Date(2026, 2, 6, 0, 0, 0, 0, time.UTC)

// Config tunes the service. Zero values fall back to the defaults used
// by the synthetic dataset.
type Config struct {
	ReferenceDate time.Time
	Invoices      []domain.Invoice
}

// Service is the single command/query surface over the entity graph.
// Queries are pure; mutations go through the command methods only, so
// derived fields stay consistent with the totals they are computed from.
type Service struct {
	accounts  ports.AccountRepository
	campaigns ports.CampaignRepository
	adGroups  ports.AdGroupRepository
	creatives ports.CreativeRepository
	invoices  []domain.Invoice
	clock     ports.Clock
	refDate   time.Time
}

func NewService(
	accounts ports.AccountRepository,
	campaigns ports.CampaignRepository,
	adGroups ports.AdGroupRepository,
	creatives ports.CreativeRepository,
	clock ports.Clock,
	cfg Config,
) *Service {
	if clock == nil {
		clock = ports.SystemClock{}
	}
	if cfg.ReferenceDate.IsZero() {
		cfg.ReferenceDate = defaultReferenceDate
	}
	if cfg.Invoices == nil {
		cfg.Invoices = synth.Invoices()
	}

	return &Service{
		accounts:  accounts,
		campaigns: campaigns,
		adGroups:  adGroups,
		creatives: creatives,
		invoices:  cfg.Invoices,
		clock:     clock,
		refDate:   cfg.ReferenceDate,
	}
}

func (s *Service) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	accounts, err := s.accounts.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list accounts: %w", err)
	}
	return accounts, nil
}

// ListInvoices returns the static billing table.
func (s *Service) ListInvoices() []domain.Invoice {
	return append([]domain.Invoice(nil), s.invoices...)
}
