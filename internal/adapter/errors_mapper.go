// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

// providerError is the error envelope returned by the provider API.
type providerError struct {
	Error struct {
		Message string `json:"message"`
		Type    string `json:"type"`
		Code    string `json:"code"`
	} `json:"error"`
}

func mapProviderError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	var pe providerError
	if err := json.Unmarshal(resp.Body(), &pe); err == nil && pe.Error.Message != "" {
		if pe.Error.Code != "" {
			return fmt.Errorf("%w: http %d: %s (%s/%s)", ErrPaymentProvider, resp.StatusCode(), pe.Error.Message, pe.Error.Type, pe.Error.Code)
		}
		return fmt.Errorf("%w: http %d: %s (%s)", ErrPaymentProvider, resp.StatusCode(), pe.Error.Message, pe.Error.Type)
	}

	body := strings.TrimSpace(string(resp.Body()))
	if body == "" {
		body = http.StatusText(resp.StatusCode())
	}
	return fmt.Errorf("%w: http %d: %s", ErrPaymentProvider, resp.StatusCode(), body)
}
