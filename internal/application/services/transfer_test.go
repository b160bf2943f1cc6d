package services_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/DanielPopoola/horizon-banking/internal/application"
	"github.com/DanielPopoola/horizon-banking/internal/application/mocks"
	"github.com/DanielPopoola/horizon-banking/internal/application/services"
	"github.com/DanielPopoola/horizon-banking/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestTransferService_CreateTransfer(t *testing.T) {
	source := domain.ResourceLocator("https://api-sandbox.dwolla.com/funding-sources/src")
	destination := domain.ResourceLocator("https://api-sandbox.dwolla.com/funding-sources/dst")

	t.Run("submits USD transfer", func(t *testing.T) {
		network := mocks.NewMockPaymentNetwork(t)
		svc := services.NewTransferService(network, discardLogger())
		want := domain.ResourceLocator("https://api-sandbox.dwolla.com/transfers/t-1")

		network.On("CreateTransfer", mock.Anything, mock.MatchedBy(func(req domain.TransferRequest) bool {
			return req.Source == source &&
				req.Destination == destination &&
				req.Amount.Currency == "USD" &&
				req.Amount.Value() == "25.00"
		})).Return(want, nil).Once()

		got, err := svc.CreateTransfer(context.Background(), services.TransferCommand{
			Source:      source,
			Destination: destination,
			Amount:      decimal.NewFromInt(25),
		})

		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("rejects non-positive amount", func(t *testing.T) {
		network := mocks.NewMockPaymentNetwork(t)
		svc := services.NewTransferService(network, discardLogger())

		_, err := svc.CreateTransfer(context.Background(), services.TransferCommand{
			Source:      source,
			Destination: destination,
			Amount:      decimal.Zero,
		})

		assert.True(t, domain.IsErrorCode(err, domain.ErrCodeValidation))
		network.AssertNotCalled(t, "CreateTransfer", mock.Anything, mock.Anything)
	})

	t.Run("vendor rejection stays distinguishable", func(t *testing.T) {
		network := mocks.NewMockPaymentNetwork(t)
		svc := services.NewTransferService(network, discardLogger())

		rejection := &application.VendorError{
			Vendor:     "dwolla",
			StatusCode: http.StatusBadRequest,
			Code:       "InsufficientFunds",
			Message:    "Insufficient funds.",
		}
		network.On("CreateTransfer", mock.Anything, mock.Anything).
			Return(domain.ResourceLocator(""), rejection).Once()

		_, err := svc.CreateTransfer(context.Background(), services.TransferCommand{
			Source:      source,
			Destination: destination,
			Amount:      decimal.RequireFromString("10.99"),
		})

		require.Error(t, err)
		assert.True(t, domain.IsErrorCode(err, domain.ErrCodeVendorCall))
		vendorErr, ok := application.IsVendorError(err)
		require.True(t, ok)
		assert.Equal(t, "InsufficientFunds", vendorErr.Code)
	})

	t.Run("missing location is a failure", func(t *testing.T) {
		network := mocks.NewMockPaymentNetwork(t)
		svc := services.NewTransferService(network, discardLogger())

		network.On("CreateTransfer", mock.Anything, mock.Anything).
			Return(domain.ResourceLocator(""), nil).Once()

		_, err := svc.CreateTransfer(context.Background(), services.TransferCommand{
			Source:      source,
			Destination: destination,
			Amount:      decimal.NewFromInt(1),
		})

		assert.True(t, domain.IsErrorCode(err, domain.ErrCodeVendorCall))
	})
}
