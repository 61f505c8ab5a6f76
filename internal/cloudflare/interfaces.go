// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cloudflare

import (
	"context"

	"github.com/canonical/dns-tenant-bot/internal/types"
)

// GatewayInterface wraps the remote provider API. Every call authenticates with
// the tenant credential passed in, no state is cached here.
type GatewayInterface interface {
	ListZones(ctx context.Context, token string) ([]types.Zone, error)
	ListAccounts(ctx context.Context, token string) ([]types.Account, error)
	ListTunnels(ctx context.Context, token, accountID string) ([]types.Tunnel, error)
	CreateTunnel(ctx context.Context, token, accountID, name, secret string) (*types.Tunnel, error)
	DeleteTunnel(ctx context.Context, token, accountID, tunnelID string) error
	ListDNSRecords(ctx context.Context, token, zoneID string) ([]types.DNSRecord, error)
	CreateDNSRecord(ctx context.Context, token, zoneID string, record types.DNSRecord) (*types.DNSRecord, error)
	UpdateDNSRecord(ctx context.Context, token, zoneID string, record types.DNSRecord) (*types.DNSRecord, error)
	DeleteDNSRecord(ctx context.Context, token, zoneID, recordID string) error
}
