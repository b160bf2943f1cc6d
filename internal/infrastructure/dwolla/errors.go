package dwolla

import (
	"encoding/json"

	"github.com/DanielPopoola/horizon-banking/internal/application"
)

const vendorName = "dwolla"

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
		Code:       errResp.Code,
		Message:    errResp.Message,
		Fields:     errResp.Embedded.Errors,
	}
}
