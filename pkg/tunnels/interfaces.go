// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tunnels

import (
	"context"

	"github.com/canonical/dns-tenant-bot/internal/tenantcache"
	"github.com/canonical/dns-tenant-bot/internal/types"
)

type ServiceInterface interface {
	// ListTunnels reads the cached snapshot, it never calls the provider.
	ListTunnels(ctx context.Context, tenantID int64) ([]types.Tunnel, error)
	CreateTunnel(ctx context.Context, tenantID int64, name string) (*types.Tunnel, error)
	DeleteTunnel(ctx context.Context, tenantID int64, tunnelID string) error
}

type CacheInterface interface {
	Get(tenantID int64) (*tenantcache.Entry, bool)
	Refresh(ctx context.Context, tenantID int64) error
}

type GatewayInterface interface {
	CreateTunnel(ctx context.Context, token, accountID, name, secret string) (*types.Tunnel, error)
	DeleteTunnel(ctx context.Context, token, accountID, tunnelID string) error
}
