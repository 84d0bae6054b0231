// Package memory holds the whole entity graph in process memory behind a
// single read-write lock. Collections keep insertion order so listings
// are deterministic; campaigns are prepended on create so listings stay
// most-recent-first.
package memory

import (
	"sync"

	"github.com/D-C-Legacy/ad-admin/internal/domain"
	"github.com/D-C-Legacy/ad-admin/internal/synth"
)

type Store struct {
	mu        sync.RWMutex
	accounts  []domain.Account
	campaigns []domain.Campaign
	adGroups  []domain.AdGroup
	creatives []domain.Creative
}

// NewStore seeds the store with a synthesized dataset. The slices are
// copied so the caller's dataset stays untouched by later mutations.
func NewStore(ds synth.Dataset) *Store {
	return &Store{
		accounts:  append([]domain.Account(nil), ds.Accounts...),
		campaigns: append([]domain.Campaign(nil), ds.Campaigns...),
		adGroups:  append([]domain.AdGroup(nil), ds.AdGroups...),
		creatives: append([]domain.Creative(nil), ds.Creatives...),
	}
}

// Accounts returns the account repository view of the store.
func (s *Store) Accounts() *AccountRepository { return &AccountRepository{store: s} }

// Campaigns returns the campaign repository view of the store.
func (s *Store) Campaigns() *CampaignRepository { return &CampaignRepository{store: s} }

// AdGroups returns the ad-group repository view of the store.
func (s *Store) AdGroups() *AdGroupRepository { return &AdGroupRepository{store: s} }

// Creatives returns the creative repository view of the store.
func (s *Store) Creatives() *CreativeRepository { return &CreativeRepository{store: s} }
