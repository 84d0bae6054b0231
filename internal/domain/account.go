package domain

type AccountID string

// Account is an advertiser tenant owning campaigns and a budget.
// TotalSpend is derived from the account's campaigns and must only be
// written by the spend fix-up in the synthesizer or by rollup code.
type Account struct {
	ID          AccountID
	Name        string
	Timezone    string
	Industry    string
	Currency    string
	TotalBudget float64
	TotalSpend  float64
}

// AccountDetails carries the account fields a caller is allowed to
// change. Nil fields are left untouched; budget and spend are not
// reachable through this type on purpose.
type AccountDetails struct {
	Name     *string
	Timezone *string
	Industry *string
}

// Apply merges the provided fields into the account, field by field.
func (d AccountDetails) Apply(account *Account) {
	if account == nil {
		return
	}
	if d.Name != nil {
		account.Name = *d.Name
	}
	if d.Timezone != nil {
		account.Timezone = *d.Timezone
	}
	if d.Industry != nil {
		account.Industry = *d.Industry
	}
}
