package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

const guestName = "Guest"

type BankAccount struct {
	ID               string          `json:"id"`
	ItemID           string          `json:"itemId"`
	Name             string          `json:"name"`
	OfficialName     string          `json:"officialName,omitempty"`
	Mask             string          `json:"mask,omitempty"`
	Type             string          `json:"type"`
	Subtype          string          `json:"subtype,omitempty"`
	AvailableBalance decimal.Decimal `json:"availableBalance"`
	CurrentBalance   decimal.Decimal `json:"currentBalance"`
	Currency         string          `json:"currency"`
}

type LinkToken struct {
	Token      string    `json:"linkToken"`
	Expiration time.Time `json:"expiration"`
}

// BankItem is a linked institution login at the bank-data vendor.
type BankItem struct {
	ItemID      string
	AccessToken string
}

// LinkedBank is the outcome of linking a bank account and registering it as
// a funding source.
type LinkedBank struct {
	ItemID        string          `json:"itemId"`
	AccessToken   string          `json:"accessToken"`
	AccountID     string          `json:"accountId"`
	BankName      string          `json:"bankName"`
	FundingSource ResourceLocator `json:"fundingSource"`
}

type Dashboard struct {
	Greeting            string          `json:"greeting"`
	TotalBanks          int             `json:"totalBanks"`
	TotalCurrentBalance decimal.Decimal `json:"totalCurrentBalance"`
	Accounts            []BankAccount   `json:"accounts"`
}

// NewDashboard summarizes the accounts for the signed-in user, or greets a
// guest when profile is nil.
func NewDashboard(profile *UserProfile, accounts []BankAccount) *Dashboard {
	greeting := profile.FirstName()
	if greeting == "" {
		greeting = guestName
	}

	total := decimal.Zero
	for _, a := range accounts {
		total = total.Add(a.CurrentBalance)
	}

	if accounts == nil {
		accounts = []BankAccount{}
	}

	return &Dashboard{
		Greeting:            greeting,
		TotalBanks:          len(accounts),
		TotalCurrentBalance: total,
		Accounts:            accounts,
	}
}
