// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tenantcache

import (
	"context"

	"github.com/canonical/dns-tenant-bot/internal/types"
)

type CacheInterface interface {
	Refresh(ctx context.Context, tenantID int64) error
	Invalidate(tenantID int64)
	Get(tenantID int64) (*Entry, bool)
}

type StorageInterface interface {
	GetTenantByID(ctx context.Context, id int64) (*types.Tenant, error)
}

type GatewayInterface interface {
	ListZones(ctx context.Context, token string) ([]types.Zone, error)
	ListAccounts(ctx context.Context, token string) ([]types.Account, error)
	ListTunnels(ctx context.Context, token, accountID string) ([]types.Tunnel, error)
}
