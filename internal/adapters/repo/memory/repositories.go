package memory

import (
	"context"

	"github.com/D-C-Legacy/ad-admin/internal/domain"
	"github.com/D-C-Legacy/ad-admin/internal/ports"
)

type AccountRepository struct{ store *Store }

var _ ports.AccountRepository = (*AccountRepository)(nil)

func (r *AccountRepository) GetByID(ctx context.Context, id domain.AccountID) (domain.Account, error) {
	if err := ctx.Err(); err != nil {
		return domain.Account{}, err
	}

	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	for _, account := range r.store.accounts {
		if account.ID == id {
			return account, nil
		}
	}
	return domain.Account{}, domain.ErrAccountNotFound
}

func (r *AccountRepository) List(ctx context.Context) ([]domain.Account, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return append([]domain.Account(nil), r.store.accounts...), nil
}

func (r *AccountRepository) Save(ctx context.Context, account domain.Account) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for i := range r.store.accounts {
		if r.store.accounts[i].ID == account.ID {
			r.store.accounts[i] = account
			return nil
		}
	}
	return domain.ErrAccountNotFound
}

type CampaignRepository struct{ store *Store }

var _ ports.CampaignRepository = (*CampaignRepository)(nil)

func (r *CampaignRepository) GetByID(ctx context.Context, id domain.CampaignID) (domain.Campaign, error) {
	if err := ctx.Err(); err != nil {
		return domain.Campaign{}, err
	}

	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	for _, campaign := range r.store.campaigns {
		if campaign.ID == id {
			return campaign, nil
		}
	}
	return domain.Campaign{}, domain.ErrCampaignNotFound
}

func (r *CampaignRepository) List(ctx context.Context) ([]domain.Campaign, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return append([]domain.Campaign(nil), r.store.campaigns...), nil
}

func (r *CampaignRepository) ListByAccount(ctx context.Context, id domain.AccountID) ([]domain.Campaign, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	var out []domain.Campaign
	for _, campaign := range r.store.campaigns {
		if campaign.AccountID == id {
			out = append(out, campaign)
		}
	}
	return out, nil
}

func (r *CampaignRepository) Save(ctx context.Context, campaign domain.Campaign) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for i := range r.store.campaigns {
		if r.store.campaigns[i].ID == campaign.ID {
			r.store.campaigns[i] = campaign
			return nil
		}
	}
	return domain.ErrCampaignNotFound
}

func (r *CampaignRepository) Insert(ctx context.Context, campaign domain.Campaign) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.campaigns = append([]domain.Campaign{campaign}, r.store.campaigns...)
	return nil
}

type AdGroupRepository struct{ store *Store }

var _ ports.AdGroupRepository = (*AdGroupRepository)(nil)

func (r *AdGroupRepository) GetByID(ctx context.Context, id domain.AdGroupID) (domain.AdGroup, error) {
	if err := ctx.Err(); err != nil {
		return domain.AdGroup{}, err
	}

	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	for _, group := range r.store.adGroups {
		if group.ID == id {
			return group, nil
		}
	}
	return domain.AdGroup{}, domain.ErrAdGroupNotFound
}

func (r *AdGroupRepository) List(ctx context.Context) ([]domain.AdGroup, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return append([]domain.AdGroup(nil), r.store.adGroups...), nil
}

func (r *AdGroupRepository) ListByCampaign(ctx context.Context, id domain.CampaignID) ([]domain.AdGroup, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	var out []domain.AdGroup
	for _, group := range r.store.adGroups {
		if group.CampaignID == id {
			out = append(out, group)
		}
	}
	return out, nil
}

func (r *AdGroupRepository) Save(ctx context.Context, group domain.AdGroup) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for i := range r.store.adGroups {
		if r.store.adGroups[i].ID == group.ID {
			r.store.adGroups[i] = group
			return nil
		}
	}
	return domain.ErrAdGroupNotFound
}

type CreativeRepository struct{ store *Store }

var _ ports.CreativeRepository = (*CreativeRepository)(nil)

func (r *CreativeRepository) GetByID(ctx context.Context, id domain.CreativeID) (domain.Creative, error) {
	if err := ctx.Err(); err != nil {
		return domain.Creative{}, err
	}

	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	for _, creative := range r.store.creatives {
		if creative.ID == id {
			return creative, nil
		}
	}
	return domain.Creative{}, domain.ErrCreativeNotFound
}

func (r *CreativeRepository) List(ctx context.Context) ([]domain.Creative, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return append([]domain.Creative(nil), r.store.creatives...), nil
}

func (r *CreativeRepository) Save(ctx context.Context, creative domain.Creative) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for i := range r.store.creatives {
		if r.store.creatives[i].ID == creative.ID {
			r.store.creatives[i] = creative
			return nil
		}
	}
	return domain.ErrCreativeNotFound
}
