package httperrors

import (
	"net/http"

	"github/chapool/go-receive/internal/types"
)

var (
	ErrBadRequestInvalidHandle = NewHTTPError(http.StatusBadRequest, types.PublicHTTPErrorTypeGeneric, "Invalid device handle.")
	ErrInternalServerError     = NewHTTPError(http.StatusInternalServerError, types.PublicHTTPErrorTypeGeneric, http.StatusText(http.StatusInternalServerError))
)
