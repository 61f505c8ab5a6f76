// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package bot

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/canonical/dns-tenant-bot/internal/tenantcache"
	"github.com/canonical/dns-tenant-bot/internal/types"
)

// TelegramInterface is the slice of the bot API the dispatcher uses, kept
// narrow so tests can stub the transport.
type TelegramInterface interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
	GetUpdatesChan(config tgbotapi.UpdateConfig) tgbotapi.UpdatesChannel
}

type AuthzInterface interface {
	IsSuperAdmin(ctx context.Context, callerID string) (bool, error)
	IsTenantAdmin(ctx context.Context, callerID string, tenantID int64) (bool, error)
	HasAccess(ctx context.Context, callerID string, tenantID int64) (bool, error)
}

type TenantServiceInterface interface {
	CreateTenant(ctx context.Context, name, adminID, description string) (*types.Tenant, error)
	GetTenant(ctx context.Context, id int64) (*types.Tenant, error)
	ListTenantsFor(ctx context.Context, callerID string) ([]*types.Tenant, error)
	ConnectTenant(ctx context.Context, id int64, token string) error
	DeactivateTenant(ctx context.Context, id int64) error
	UpdateTenant(ctx context.Context, tenant *types.Tenant, paths []string) (*types.Tenant, error)
}

type DNSServiceInterface interface {
	ResolveZone(ctx context.Context, tenantID int64, ref string) (*types.Zone, error)
	ListRecords(ctx context.Context, tenantID int64, zoneID string) ([]types.DNSRecord, error)
	CreateRecord(ctx context.Context, tenantID int64, record types.DNSRecord) (*types.DNSRecord, error)
	UpdateRecord(ctx context.Context, tenantID int64, record types.DNSRecord) (*types.DNSRecord, error)
	DeleteRecord(ctx context.Context, tenantID int64, zoneID, recordID string) error
}

type TunnelServiceInterface interface {
	ListTunnels(ctx context.Context, tenantID int64) ([]types.Tunnel, error)
	CreateTunnel(ctx context.Context, tenantID int64, name string) (*types.Tunnel, error)
	DeleteTunnel(ctx context.Context, tenantID int64, tunnelID string) error
}

type CacheInterface interface {
	Refresh(ctx context.Context, tenantID int64) error
	Invalidate(tenantID int64)
	Get(tenantID int64) (*tenantcache.Entry, bool)
}
