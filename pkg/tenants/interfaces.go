// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tenants

import (
	"context"

	"github.com/canonical/dns-tenant-bot/internal/types"
)

type ServiceInterface interface {
	CreateTenant(ctx context.Context, name, adminID, description string) (*types.Tenant, error)
	GetTenant(ctx context.Context, id int64) (*types.Tenant, error)
	// ListTenantsFor returns every active tenant for the super administrator
	// and only owned tenants for anybody else.
	ListTenantsFor(ctx context.Context, callerID string) ([]*types.Tenant, error)
	// ConnectTenant attaches the provider credential and invalidates the
	// tenant's cache entry so the next read goes through a fresh refresh.
	ConnectTenant(ctx context.Context, id int64, token string) error
	DeactivateTenant(ctx context.Context, id int64) error
	UpdateTenant(ctx context.Context, tenant *types.Tenant, paths []string) (*types.Tenant, error)
}

type StorageInterface interface {
	CreateTenant(ctx context.Context, t *types.Tenant) (*types.Tenant, error)
	GetTenantByID(ctx context.Context, id int64) (*types.Tenant, error)
	ListActiveTenants(ctx context.Context, adminID string) ([]*types.Tenant, error)
	UpdateTenant(ctx context.Context, tenant *types.Tenant, paths []string) error
	SetTenantToken(ctx context.Context, id int64, token string) error
	SetTenantStatus(ctx context.Context, id int64, active bool) error
}

type AuthzInterface interface {
	IsSuperAdmin(ctx context.Context, callerID string) (bool, error)
}

type CacheInterface interface {
	Invalidate(tenantID int64)
}
