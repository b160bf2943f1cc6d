package plaid

import (
	"time"

	"github.com/DanielPopoola/horizon-banking/internal/domain"
	"github.com/shopspring/decimal"
)

type LinkTokenUser struct {
	ClientUserID string `json:"client_user_id"`
}

type LinkTokenCreateRequest struct {
	ClientName   string        `json:"client_name"`
	User         LinkTokenUser `json:"user"`
	Products     []string      `json:"products"`
	CountryCodes []string      `json:"country_codes"`
	Language     string        `json:"language"`
}

type LinkTokenCreateResponse struct {
	LinkToken  string    `json:"link_token"`
	Expiration time.Time `json:"expiration"`
	RequestID  string    `json:"request_id"`
}

type PublicTokenExchangeRequest struct {
	PublicToken string `json:"public_token"`
}

type PublicTokenExchangeResponse struct {
	AccessToken string `json:"access_token"`
	ItemID      string `json:"item_id"`
	RequestID   string `json:"request_id"`
}

type AccessTokenRequest struct {
	AccessToken string `json:"access_token"`
}

type Balances struct {
	Available       decimal.NullDecimal `json:"available"`
	Current         decimal.NullDecimal `json:"current"`
	IsoCurrencyCode string              `json:"iso_currency_code"`
}

type Account struct {
	AccountID    string   `json:"account_id"`
	Balances     Balances `json:"balances"`
	Mask         string   `json:"mask"`
	Name         string   `json:"name"`
	OfficialName string   `json:"official_name"`
	Type         string   `json:"type"`
	Subtype      string   `json:"subtype"`
}

type Item struct {
	ItemID string `json:"item_id"`
}

type AccountsBalanceResponse struct {
	Accounts  []Account `json:"accounts"`
	Item      Item      `json:"item"`
	RequestID string    `json:"request_id"`
}

type ProcessorTokenCreateRequest struct {
	AccessToken string `json:"access_token"`
	AccountID   string `json:"account_id"`
	Processor   string `json:"processor"`
}

type ProcessorTokenCreateResponse struct {
	ProcessorToken string `json:"processor_token"`
	RequestID      string `json:"request_id"`
}

type ErrorResponse struct {
	ErrorType      string `json:"error_type"`
	ErrorCode      string `json:"error_code"`
	ErrorMessage   string `json:"error_message"`
	DisplayMessage string `json:"display_message"`
	RequestID      string `json:"request_id"`
}

func (r *AccountsBalanceResponse) toDomain() []domain.BankAccount {
	accounts := make([]domain.BankAccount, 0, len(r.Accounts))
	for _, a := range r.Accounts {
		accounts = append(accounts, domain.BankAccount{
			ID:               a.AccountID,
			ItemID:           r.Item.ItemID,
			Name:             a.Name,
			OfficialName:     a.OfficialName,
			Mask:             a.Mask,
			Type:             a.Type,
			Subtype:          a.Subtype,
			AvailableBalance: a.Balances.Available.Decimal,
			CurrentBalance:   a.Balances.Current.Decimal,
			Currency:         a.Balances.IsoCurrencyCode,
		})
	}
	return accounts
}
