package test

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/go-openapi/runtime"
	"github.com/go-openapi/strfmt"
	"github.com/stretchr/testify/require"
	"github/chapool/go-receive/internal/api/httperrors"
	"github/chapool/go-receive/internal/types"
)

// ParseResponseBody decodes the JSON body of res into v.
func ParseResponseBody(t *testing.T, res *httptest.ResponseRecorder, v interface{}) {
	t.Helper()

	require.NoError(t, json.NewDecoder(res.Result().Body).Decode(v), "failed to parse response body")
}

// ParseResponseAndValidate decodes the JSON body of res into v and validates
// it against its schema.
func ParseResponseAndValidate(t *testing.T, res *httptest.ResponseRecorder, v runtime.Validatable) {
	t.Helper()

	ParseResponseBody(t, res, v)

	require.NoError(t, v.Validate(strfmt.Default), "response did not match schema")
}

// RequireHTTPError checks that res carries httpErr.
func RequireHTTPError(t *testing.T, res *httptest.ResponseRecorder, httpErr *httperrors.HTTPError) types.PublicHTTPError {
	t.Helper()

	require.Equal(t, int(*httpErr.Code), res.Result().StatusCode)

	var response types.PublicHTTPError
	ParseResponseAndValidate(t, res, &response)

	require.Equal(t, *httpErr.Code, *response.Code)
	require.Equal(t, *httpErr.Type, *response.Type)
	require.Equal(t, *httpErr.Title, *response.Title)

	return response
}
