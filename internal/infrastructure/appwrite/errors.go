package appwrite

import (
	"encoding/json"
	"errors"

	"github.com/DanielPopoola/horizon-banking/internal/application"
)

const vendorName = "appwrite"

var errEmptyResponse = errors.New("appwrite returned an empty body")

func decodeError(statusCode int, body []byte) error {
	var errResp ErrorResponse
	if err := json.Unmarshal(body, &errResp); err != nil {
		return &application.VendorError{
			Vendor:     vendorName,
			StatusCode: statusCode,
			Message:    string(body),
		}
	}
	return &application.VendorError{
		Vendor:     vendorName,
		StatusCode: statusCode,
		Code:       errResp.Type,
		Message:    errResp.Message,
	}
}
