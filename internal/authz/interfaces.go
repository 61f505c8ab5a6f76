// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authz

import (
	"context"

	"github.com/canonical/dns-tenant-bot/internal/types"
)

type AuthorizerInterface interface {
	// IsSuperAdmin reports whether callerID is the super administrator. When no
	// super administrator is configured anywhere, the caller is adopted as the
	// permanent super administrator (one-time bootstrap).
	IsSuperAdmin(ctx context.Context, callerID string) (bool, error)
	// IsTenantAdmin reports whether callerID administers the tenant with the
	// given id, or any active tenant when tenantID is zero.
	IsTenantAdmin(ctx context.Context, callerID string, tenantID int64) (bool, error)
	// HasAccess is the dispatcher-facing predicate: super administrators have
	// access to everything, others fall back to IsTenantAdmin.
	HasAccess(ctx context.Context, callerID string, tenantID int64) (bool, error)
}

type StorageInterface interface {
	GetTenantByID(ctx context.Context, id int64) (*types.Tenant, error)
	ListActiveTenants(ctx context.Context, adminID string) ([]*types.Tenant, error)
	GetConfig(ctx context.Context, key string) (string, error)
	SetConfig(ctx context.Context, key, value string) error
}
