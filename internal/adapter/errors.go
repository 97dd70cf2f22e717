// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import "errors"

var (
	ErrPaymentProvider     = errors.New("payment provider error")
	ErrEmptyPaymentIntent  = errors.New("empty payment intent id")
	ErrInvalidProviderAddr = errors.New("invalid payment provider address")
)
