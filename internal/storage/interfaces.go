// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"

	"github.com/canonical/dns-tenant-bot/internal/types"
)

type StorageInterface interface {
	CreateTenant(ctx context.Context, t *types.Tenant) (*types.Tenant, error)
	GetTenantByID(ctx context.Context, id int64) (*types.Tenant, error)
	// ListActiveTenants returns every active tenant, or only those administered
	// by adminID when adminID is not empty.
	ListActiveTenants(ctx context.Context, adminID string) ([]*types.Tenant, error)
	UpdateTenant(ctx context.Context, tenant *types.Tenant, paths []string) error
	SetTenantToken(ctx context.Context, id int64, token string) error
	SetTenantStatus(ctx context.Context, id int64, active bool) error
	GetConfig(ctx context.Context, key string) (string, error)
	SetConfig(ctx context.Context, key, value string) error
}
