package services

import (
	"github.com/DanielPopoola/horizon-banking/internal/domain"
	"github.com/shopspring/decimal"
)

const (
	vendorPayments = "dwolla"
	vendorIdentity = "appwrite"
	vendorBankData = "plaid"
)

type AddFundingSourceCommand struct {
	CustomerLocator domain.ResourceLocator
	BankName        string
	ProcessorToken  string
}

type TransferCommand struct {
	Source      domain.ResourceLocator
	Destination domain.ResourceLocator
	Amount      decimal.Decimal
}

type LinkBankCommand struct {
	PublicToken     string
	CustomerLocator domain.ResourceLocator
}
