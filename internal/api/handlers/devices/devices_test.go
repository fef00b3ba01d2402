package devices_test

import (
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github/chapool/go-receive/internal/api"
	"github/chapool/go-receive/internal/api/httperrors"
	"github/chapool/go-receive/internal/test"
	"github/chapool/go-receive/internal/types"
)

func TestPlugListUnplugDevice(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server) {
		res := test.PerformRequest(t, s, "GET", "/api/v1/devices", nil, nil)
		require.Equal(t, http.StatusOK, res.Result().StatusCode)

		var list types.GetDevicesResponse
		test.ParseResponseAndValidate(t, res, &list)
		assert.Empty(t, list.Data)

		res = test.PerformRequest(t, s, "POST", "/api/v1/devices", test.GenericPayload{"profile": "emulator"}, nil)
		require.Equal(t, http.StatusCreated, res.Result().StatusCode)

		var first types.Device
		test.ParseResponseAndValidate(t, res, &first)
		assert.Equal(t, "emulator", *first.Path)
		assert.Equal(t, "nanoX", *first.ModelID)
		assert.True(t, *first.Live)

		// replugging replaces the connection with a new handle
		res = test.PerformRequest(t, s, "POST", "/api/v1/devices", test.GenericPayload{"profile": "emulator"}, nil)
		require.Equal(t, http.StatusCreated, res.Result().StatusCode)

		var second types.Device
		test.ParseResponseAndValidate(t, res, &second)
		assert.NotEqual(t, *first.Handle, *second.Handle)

		res = test.PerformRequest(t, s, "GET", "/api/v1/devices", nil, nil)
		require.Equal(t, http.StatusOK, res.Result().StatusCode)
		test.ParseResponseAndValidate(t, res, &list)
		require.Len(t, list.Data, 1)
		assert.Equal(t, *second.Handle, *list.Data[0].Handle)

		res = test.PerformRequest(t, s, "DELETE", "/api/v1/devices/"+second.Handle.String(), nil, nil)
		require.Equal(t, http.StatusNoContent, res.Result().StatusCode)
		assert.True(t, s.Hub.Current().IsNone())

		res = test.PerformRequest(t, s, "DELETE", "/api/v1/devices/"+second.Handle.String(), nil, nil)
		test.RequireHTTPError(t, res, httperrors.ErrNotFoundDevice)
	})
}

func TestPlugDeviceUnknownProfile(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server) {
		res := test.PerformRequest(t, s, "POST", "/api/v1/devices", test.GenericPayload{"profile": "nano-42"}, nil)
		test.RequireHTTPError(t, res, httperrors.ErrNotFoundProfile)
	})
}

func TestPlugDeviceValidation(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server) {
		res := test.PerformRequest(t, s, "POST", "/api/v1/devices", test.GenericPayload{}, nil)
		require.Equal(t, http.StatusBadRequest, res.Result().StatusCode)

		var response types.PublicHTTPValidationError
		test.ParseResponseAndValidate(t, res, &response)
		require.Len(t, response.ValidationErrors, 1)
		assert.Equal(t, "profile", *response.ValidationErrors[0].Key)
		assert.Equal(t, "body", *response.ValidationErrors[0].In)
	})
}

func TestUnplugDeviceInvalidHandle(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server) {
		res := test.PerformRequest(t, s, "DELETE", "/api/v1/devices/not-a-uuid", nil, nil)
		require.Equal(t, http.StatusBadRequest, res.Result().StatusCode)

		res = test.PerformRequest(t, s, "PUT", "/api/v1/devices", nil, nil)
		test.RequireHTTPError(t, res, httperrors.NewFromEcho(echo.ErrMethodNotAllowed))
	})
}
