package apierr

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mcoot/inboxd/internal/model"
)

// APIError represents an API error response
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse wraps an APIError
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// Common error codes
const (
	CodeInvalidRequest    = "INVALID_REQUEST"
	CodeInvalidName       = "INVALID_PLAYER_NAME"
	CodeInvalidItemType   = "INVALID_ITEM_TYPE"
	CodeUnauthorized      = "UNAUTHORIZED"
	CodePlayerNotFound    = "PLAYER_NOT_FOUND"
	CodePlayerExists      = "PLAYER_EXISTS"
	CodePlayerOnline      = "PLAYER_ONLINE"
	CodePlayerOffline     = "PLAYER_OFFLINE"
	CodeItemTypeNotFound  = "ITEM_TYPE_NOT_FOUND"
	CodeRecipientNotFound = "RECIPIENT_NOT_FOUND"
	CodeItemInvalid       = "ITEM_INVALID"
	CodeNotFound          = "NOT_FOUND"
	CodeInternalError     = "INTERNAL_ERROR"
)

// httpError combines an HTTP status code with an APIError
type httpError struct {
	status   int
	apiError APIError
}

// Error implements error interface
func (e *httpError) Error() string {
	return e.apiError.Message
}

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	he := toHTTPError(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(he.status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Error: he.apiError})
}

// toHTTPError converts an error to an httpError
func toHTTPError(err error) *httpError {
	var he *httpError
	if errors.As(err, &he) {
		return he
	}

	switch {
	case errors.Is(err, model.ErrPlayerNotFound):
		return &httpError{http.StatusNotFound, APIError{CodePlayerNotFound, "Player not found"}}
	case errors.Is(err, model.ErrPlayerExists):
		return &httpError{http.StatusConflict, APIError{CodePlayerExists, "Player already exists"}}
	case errors.Is(err, model.ErrPlayerOnline):
		return &httpError{http.StatusConflict, APIError{CodePlayerOnline, "Player is already online"}}
	case errors.Is(err, model.ErrPlayerOffline):
		return &httpError{http.StatusConflict, APIError{CodePlayerOffline, "Player is not online"}}
	case errors.Is(err, model.ErrInvalidPlayerName):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidName, "Player name must be 1-32 characters without surrounding spaces"}}
	case errors.Is(err, model.ErrItemTypeNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeItemTypeNotFound, "Item type not found"}}
	case errors.Is(err, model.ErrInvalidItemType):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidItemType, "Item type needs a non-zero id, a name and max_count >= 1"}}
	default:
		return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
	}
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return &httpError{http.StatusBadRequest, APIError{CodeInvalidRequest, message}}
}

// NewNotFoundError creates an error for requests that match no route
func NewNotFoundError() error {
	return &httpError{http.StatusNotFound, APIError{CodeNotFound, "Resource not found"}}
}

// NewUnauthorizedError creates an unauthorized error
func NewUnauthorizedError() error {
	return &httpError{http.StatusUnauthorized, APIError{CodeUnauthorized, "Valid admin key required"}}
}

// NewInternalError creates an internal server error
func NewInternalError() error {
	return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
}

// NewDeliveryError maps an aborted delivery to its error response
func NewDeliveryError(status model.DeliveryStatus) error {
	switch status {
	case model.DeliveryRecipientNotFound:
		return &httpError{http.StatusNotFound, APIError{CodeRecipientNotFound, "Recipient not found"}}
	case model.DeliveryItemInvalid:
		return &httpError{http.StatusUnprocessableEntity, APIError{CodeItemInvalid, "Item type does not exist"}}
	default:
		return NewInternalError()
	}
}
