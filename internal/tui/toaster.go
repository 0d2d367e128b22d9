// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"sync"
	"time"
)

const (
	// ToastTTL is how long a toast stays visible.
	ToastTTL = 4 * time.Second

	maxVisibleToasts = 3
)

type toastKind int

const (
	toastInfo toastKind = iota
	toastSuccess
	toastError
)

type toast struct {
	kind    toastKind
	text    string
	expires time.Time
}

// Toaster collects transient notifications for the gallery view. It is
// safe for concurrent use: services call it from job and command
// goroutines while the view reads it on every frame.
type Toaster struct {
	mu     sync.Mutex
	toasts []toast

	ttl time.Duration
	now func() time.Time
}

// NewToaster returns a Toaster whose messages expire after [ToastTTL].
func NewToaster() *Toaster {
	return &Toaster{ttl: ToastTTL, now: time.Now}
}

func (t *Toaster) Success(msg string) { t.push(toastSuccess, msg) }
func (t *Toaster) Error(msg string)   { t.push(toastError, msg) }
func (t *Toaster) Info(msg string)    { t.push(toastInfo, msg) }

func (t *Toaster) push(kind toastKind, msg string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.toasts = append(t.toasts, toast{kind: kind, text: msg, expires: t.now().Add(t.ttl)})
	if len(t.toasts) > maxVisibleToasts {
		t.toasts = t.toasts[len(t.toasts)-maxVisibleToasts:]
	}
}

// active drops expired toasts and returns the rest, oldest first.
func (t *Toaster) active() []toast {
	t.mu.Lock()
	defer t.mu.Unlock()

	now := t.now()
	kept := t.toasts[:0]
	for _, item := range t.toasts {
		if now.Before(item.expires) {
			kept = append(kept, item)
		}
	}
	t.toasts = kept

	out := make([]toast, len(kept))
	copy(out, kept)
	return out
}
