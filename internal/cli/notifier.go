// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"fmt"
	"io"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

var (
	successMark = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Render("✓")
	errorMark   = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Render("✕")
)

// consoleNotifier prints notifications as lines: successes and infos to
// out, errors to errOut.
type consoleNotifier struct {
	mu     sync.Mutex
	out    io.Writer
	errOut io.Writer
}

func newConsoleNotifier(out, errOut io.Writer) *consoleNotifier {
	return &consoleNotifier{out: out, errOut: errOut}
}

func (n *consoleNotifier) Success(msg string) {
	n.println(n.out, successMark+" "+msg)
}

func (n *consoleNotifier) Error(msg string) {
	n.println(n.errOut, errorMark+" "+msg)
}

func (n *consoleNotifier) Info(msg string) {
	n.println(n.out, msg)
}

func (n *consoleNotifier) println(w io.Writer, line string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	_, _ = fmt.Fprintln(w, line)
}
