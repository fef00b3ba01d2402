package httperrors

import (
	"net/http"

	"github/chapool/go-receive/internal/types"
)

var (
	ErrNotFoundDevice            = NewHTTPError(http.StatusNotFound, types.PublicHTTPErrorTypeDEVICENOTFOUND, "Device not found.")
	ErrNotFoundProfile           = NewHTTPError(http.StatusNotFound, types.PublicHTTPErrorTypeUNKNOWNPROFILE, "Device profile not found.")
	ErrNotFoundSession           = NewHTTPError(http.StatusNotFound, types.PublicHTTPErrorTypeSESSIONNOTFOUND, "Receive session not found.")
	ErrConflictNoDevice          = NewHTTPError(http.StatusConflict, types.PublicHTTPErrorTypeNODEVICE, "No device connected.")
	ErrConflictWrongStep         = NewHTTPError(http.StatusConflict, types.PublicHTTPErrorTypeWRONGSTEP, "Operation not available in the current step.")
	ErrConflictInvalidState      = NewHTTPError(http.StatusConflict, types.PublicHTTPErrorTypeINVALIDTRANSITION, "Operation not available in the current verification state.")
	ErrGoneSessionClosed         = NewHTTPError(http.StatusGone, types.PublicHTTPErrorTypeSESSIONCLOSED, "Receive session closed.")
	ErrBadRequestUnknownCurrency = NewHTTPError(http.StatusBadRequest, types.PublicHTTPErrorTypeUNKNOWNCURRENCY, "Unknown currency.")
	ErrBadRequestUnsupportedMode = NewHTTPError(http.StatusBadRequest, types.PublicHTTPErrorTypeUNSUPPORTEDMODE, "Derivation mode not supported by currency.")
)
