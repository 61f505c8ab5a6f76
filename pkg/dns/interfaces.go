// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package dns

import (
	"context"

	"github.com/canonical/dns-tenant-bot/internal/tenantcache"
	"github.com/canonical/dns-tenant-bot/internal/types"
)

type ServiceInterface interface {
	// ResolveZone resolves ref against the tenant's cached zones, by id first
	// and by domain name second.
	ResolveZone(ctx context.Context, tenantID int64, ref string) (*types.Zone, error)
	ListRecords(ctx context.Context, tenantID int64, zoneID string) ([]types.DNSRecord, error)
	CreateRecord(ctx context.Context, tenantID int64, record types.DNSRecord) (*types.DNSRecord, error)
	UpdateRecord(ctx context.Context, tenantID int64, record types.DNSRecord) (*types.DNSRecord, error)
	DeleteRecord(ctx context.Context, tenantID int64, zoneID, recordID string) error
}

type CacheInterface interface {
	Get(tenantID int64) (*tenantcache.Entry, bool)
}

type GatewayInterface interface {
	ListDNSRecords(ctx context.Context, token, zoneID string) ([]types.DNSRecord, error)
	CreateDNSRecord(ctx context.Context, token, zoneID string, record types.DNSRecord) (*types.DNSRecord, error)
	UpdateDNSRecord(ctx context.Context, token, zoneID string, record types.DNSRecord) (*types.DNSRecord, error)
	DeleteDNSRecord(ctx context.Context, token, zoneID, recordID string) error
}
