// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/pet-haven/internal/logger"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHandler() *Handler {
	return &Handler{logger: logger.Nop()}
}

func executeWithTraceID(h *Handler, header string) (*httptest.ResponseRecorder, *http.Request) {
	var captured *http.Request
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured = r
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/pets", nil)
	if header != "" {
		req.Header.Set(traceIDHeader, header)
	}

	rr := httptest.NewRecorder()
	h.withTraceID(next).ServeHTTP(rr, req)
	return rr, captured
}

func TestWithTraceID_TableTest(t *testing.T) {
	clientID := uuid.NewString()

	tests := []struct {
		name       string
		header     string
		wantReused bool
	}{
		{name: "client uuid is reused", header: clientID, wantReused: true},
		{name: "missing header generates id", header: ""},
		{name: "non-uuid header is replaced", header: "my-custom-trace-id"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr, captured := executeWithTraceID(newTestHandler(), tt.header)

			require.NotNil(t, captured)
			got := rr.Header().Get(traceIDHeader)
			if tt.wantReused {
				assert.Equal(t, tt.header, got)
				return
			}
			assert.NotEqual(t, tt.header, got)
			_, err := uuid.Parse(got)
			assert.NoError(t, err)
		})
	}
}

func TestWithTraceID_AttachesLoggerToContext(t *testing.T) {
	_, captured := executeWithTraceID(newTestHandler(), "")

	require.NotNil(t, captured)
	assert.NotNil(t, logger.FromRequest(captured))
}

func TestWithTraceID_UniquePerRequest(t *testing.T) {
	h := newTestHandler()
	rr1, _ := executeWithTraceID(h, "")
	rr2, _ := executeWithTraceID(h, "")

	assert.NotEqual(t, rr1.Header().Get(traceIDHeader), rr2.Header().Get(traceIDHeader))
}
