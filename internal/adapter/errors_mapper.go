package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-user-records/models"
)

var statusSentinels = map[int]error{
	http.StatusBadRequest:          ErrBadRequest,
	http.StatusUnauthorized:        ErrUnauthorized,
	http.StatusForbidden:           ErrForbidden,
	http.StatusNotFound:            ErrNotFound,
	http.StatusConflict:            ErrConflict,
	http.StatusUnprocessableEntity: ErrValidation,
	http.StatusBadGateway:          ErrBadGateway,
	http.StatusInternalServerError: ErrInternalServerError,
}

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	apiErr := &APIError{StatusCode: resp.StatusCode(), sentinel: statusSentinels[resp.StatusCode()]}

	body := strings.TrimSpace(string(resp.Body()))
	var payload models.ErrorResponse
	if err := json.Unmarshal([]byte(body), &payload); err == nil {
		apiErr.Message = payload.Message
		apiErr.Fields = payload.Errors
	} else {
		apiErr.Message = body
	}

	if apiErr.sentinel == nil {
		if apiErr.Message == "" {
			apiErr.Message = http.StatusText(resp.StatusCode())
		}
		apiErr.sentinel = fmt.Errorf("http %d", resp.StatusCode())
	}

	return apiErr
}
