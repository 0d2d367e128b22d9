// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "context"

//go:generate mockgen -source=collaborators.go -destination=../mock/service_collaborators_mock.go -package=mock

// Refresher exposes the single refresh entry point.
type Refresher interface {
	// Refresh resets the countdown, lists the store and applies the result.
	// A failure is notified and returned; it never panics the session.
	Refresh(ctx context.Context) error
}

// Notifier surfaces transient messages to the user.
type Notifier interface {
	Success(msg string)
	Error(msg string)
	Info(msg string)
}

// NopNotifier discards every message.
type NopNotifier struct{}

func (NopNotifier) Success(string) {}
func (NopNotifier) Error(string)   {}
func (NopNotifier) Info(string)    {}

// RefresherFunc adapts a function to the [Refresher] interface.
type RefresherFunc func(ctx context.Context) error

// Refresh implements [Refresher].
func (f RefresherFunc) Refresh(ctx context.Context) error {
	return f(ctx)
}
