// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cloudflare

import (
	"context"
	"fmt"
	"time"

	cf "github.com/cloudflare/cloudflare-go"

	"github.com/canonical/dns-tenant-bot/internal/logging"
	"github.com/canonical/dns-tenant-bot/internal/monitoring"
	"github.com/canonical/dns-tenant-bot/internal/tracing"
	"github.com/canonical/dns-tenant-bot/internal/types"
)

var _ GatewayInterface = (*Client)(nil)

type Client struct {
	baseURL string
	timeout time.Duration

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewClient(baseURL string, timeout time.Duration, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Client {
	return &Client{
		baseURL: baseURL,
		timeout: timeout,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

// api builds a provider client scoped to one tenant credential.
func (c *Client) api(token string) (*cf.API, error) {
	opts := []cf.Option{}
	if c.baseURL != "" {
		opts = append(opts, cf.BaseURL(c.baseURL))
	}

	api, err := cf.NewWithAPIToken(token, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to build provider client: %w", err)
	}
	return api, nil
}

func (c *Client) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if c.timeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, c.timeout)
}

func (c *Client) ListZones(ctx context.Context, token string) ([]types.Zone, error) {
	ctx, span := c.tracer.Start(ctx, "cloudflare.Client.ListZones")
	defer span.End()

	api, err := c.api(token)
	if err != nil {
		return nil, err
	}

	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	zones, err := api.ListZones(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list zones: %w", err)
	}

	ret := make([]types.Zone, 0, len(zones))
	for _, z := range zones {
		ret = append(ret, normalizeZone(z))
	}
	return ret, nil
}

func (c *Client) ListAccounts(ctx context.Context, token string) ([]types.Account, error) {
	ctx, span := c.tracer.Start(ctx, "cloudflare.Client.ListAccounts")
	defer span.End()

	api, err := c.api(token)
	if err != nil {
		return nil, err
	}

	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	accounts, _, err := api.Accounts(ctx, cf.AccountsListParams{})
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}

	ret := make([]types.Account, 0, len(accounts))
	for _, a := range accounts {
		ret = append(ret, types.Account{ID: a.ID, Name: a.Name})
	}
	return ret, nil
}

func (c *Client) ListTunnels(ctx context.Context, token, accountID string) ([]types.Tunnel, error) {
	ctx, span := c.tracer.Start(ctx, "cloudflare.Client.ListTunnels")
	defer span.End()

	api, err := c.api(token)
	if err != nil {
		return nil, err
	}

	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	tunnels, _, err := api.ListTunnels(ctx, cf.AccountIdentifier(accountID), cf.TunnelListParams{
		IsDeleted: cf.BoolPtr(false),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list tunnels: %w", err)
	}

	ret := make([]types.Tunnel, 0, len(tunnels))
	for _, t := range tunnels {
		ret = append(ret, normalizeTunnel(t))
	}
	return ret, nil
}

func (c *Client) CreateTunnel(ctx context.Context, token, accountID, name, secret string) (*types.Tunnel, error) {
	ctx, span := c.tracer.Start(ctx, "cloudflare.Client.CreateTunnel")
	defer span.End()

	api, err := c.api(token)
	if err != nil {
		return nil, err
	}

	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	tunnel, err := api.CreateTunnel(ctx, cf.AccountIdentifier(accountID), cf.TunnelCreateParams{
		Name:      name,
		Secret:    secret,
		ConfigSrc: "cloudflare",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create tunnel: %w", err)
	}

	ret := normalizeTunnel(tunnel)
	return &ret, nil
}

func (c *Client) DeleteTunnel(ctx context.Context, token, accountID, tunnelID string) error {
	ctx, span := c.tracer.Start(ctx, "cloudflare.Client.DeleteTunnel")
	defer span.End()

	api, err := c.api(token)
	if err != nil {
		return err
	}

	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	if err := api.DeleteTunnel(ctx, cf.AccountIdentifier(accountID), tunnelID); err != nil {
		return fmt.Errorf("failed to delete tunnel: %w", err)
	}
	return nil
}

func (c *Client) ListDNSRecords(ctx context.Context, token, zoneID string) ([]types.DNSRecord, error) {
	ctx, span := c.tracer.Start(ctx, "cloudflare.Client.ListDNSRecords")
	defer span.End()

	api, err := c.api(token)
	if err != nil {
		return nil, err
	}

	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	records, _, err := api.ListDNSRecords(ctx, cf.ZoneIdentifier(zoneID), cf.ListDNSRecordsParams{})
	if err != nil {
		return nil, fmt.Errorf("failed to list dns records: %w", err)
	}

	ret := make([]types.DNSRecord, 0, len(records))
	for _, r := range records {
		ret = append(ret, normalizeDNSRecord(r))
	}
	return ret, nil
}

func (c *Client) CreateDNSRecord(ctx context.Context, token, zoneID string, record types.DNSRecord) (*types.DNSRecord, error) {
	ctx, span := c.tracer.Start(ctx, "cloudflare.Client.CreateDNSRecord")
	defer span.End()

	api, err := c.api(token)
	if err != nil {
		return nil, err
	}

	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	created, err := api.CreateDNSRecord(ctx, cf.ZoneIdentifier(zoneID), cf.CreateDNSRecordParams{
		Type:     record.Type,
		Name:     record.Name,
		Content:  record.Content,
		TTL:      record.TTL,
		Priority: record.Priority,
		Proxied:  cf.BoolPtr(record.Proxied),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create dns record: %w", err)
	}

	ret := normalizeDNSRecord(created)
	return &ret, nil
}

func (c *Client) UpdateDNSRecord(ctx context.Context, token, zoneID string, record types.DNSRecord) (*types.DNSRecord, error) {
	ctx, span := c.tracer.Start(ctx, "cloudflare.Client.UpdateDNSRecord")
	defer span.End()

	api, err := c.api(token)
	if err != nil {
		return nil, err
	}

	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	updated, err := api.UpdateDNSRecord(ctx, cf.ZoneIdentifier(zoneID), cf.UpdateDNSRecordParams{
		ID:       record.ID,
		Type:     record.Type,
		Name:     record.Name,
		Content:  record.Content,
		TTL:      record.TTL,
		Priority: record.Priority,
		Proxied:  cf.BoolPtr(record.Proxied),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to update dns record: %w", err)
	}

	ret := normalizeDNSRecord(updated)
	return &ret, nil
}

func (c *Client) DeleteDNSRecord(ctx context.Context, token, zoneID, recordID string) error {
	ctx, span := c.tracer.Start(ctx, "cloudflare.Client.DeleteDNSRecord")
	defer span.End()

	api, err := c.api(token)
	if err != nil {
		return err
	}

	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	if err := api.DeleteDNSRecord(ctx, cf.ZoneIdentifier(zoneID), recordID); err != nil {
		return fmt.Errorf("failed to delete dns record: %w", err)
	}
	return nil
}
