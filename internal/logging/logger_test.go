// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package logging

import (
	"testing"
)

func TestDebugLogger(t *testing.T) {
	func() {
		_ = recover()
		NewLogger("DEBUG")
	}()
}

func TestInvalidLevel(t *testing.T) {
	func() {
		_ = recover()
		NewLogger("invalid")
	}()
}

func TestSecurityLoggerEvents(t *testing.T) {
	l := NewNoopLogger()
	l.Security().SystemStartup()
	l.Security().PrivilegeAssigned("42", "super_admin")
	l.Security().AccessDenied("42", "tenant 7")
	l.Security().SystemShutdown()
}
