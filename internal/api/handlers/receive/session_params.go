package receive

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github/chapool/go-receive/internal/api"
	"github/chapool/go-receive/internal/api/httperrors"
	"github/chapool/go-receive/internal/flow"
	"github/chapool/go-receive/internal/types"
	"github/chapool/go-receive/internal/util"
)

func sessionFromPath(c echo.Context, s *api.Server) (*flow.Session, error) {
	var params types.ReceiveSessionRouteParams
	if err := util.BindAndValidatePathParams(c, &params); err != nil {
		return nil, err
	}

	id, err := uuid.Parse(params.ID.String())
	if err != nil {
		return nil, httperrors.NewHTTPError(http.StatusBadRequest, types.PublicHTTPErrorTypeGeneric, "Invalid session id.")
	}

	session, err := s.Sessions.Get(id)
	if err != nil {
		return nil, api.HTTPErrorFrom(err)
	}

	return session, nil
}
