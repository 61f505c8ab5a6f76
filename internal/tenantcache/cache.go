// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tenantcache

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/canonical/dns-tenant-bot/internal/logging"
	"github.com/canonical/dns-tenant-bot/internal/monitoring"
	"github.com/canonical/dns-tenant-bot/internal/storage"
	"github.com/canonical/dns-tenant-bot/internal/tracing"
	"github.com/canonical/dns-tenant-bot/internal/types"
)

// ErrUpstreamListing is the one error class Refresh surfaces: the primary zone
// listing failed and no cache entry was written.
var ErrUpstreamListing = errors.New("resource listing failed")

// Entry is one tenant's snapshot of remote resources. Domains and Zones are two
// indices over the same zone list fetched in a single refresh, always rebuilt
// together.
type Entry struct {
	Tenant    *types.Tenant
	Domains   map[string]types.Zone
	Zones     map[string]types.Zone
	Tunnels   map[string]types.Tunnel
	AccountID string
}

var _ CacheInterface = (*Cache)(nil)

type Cache struct {
	storage StorageInterface
	gateway GatewayInterface

	mu      sync.RWMutex
	entries map[int64]*Entry

	slotMu sync.Mutex
	slots  map[int64]*sync.Mutex

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewCache(s StorageInterface, gateway GatewayInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Cache {
	c := new(Cache)

	c.storage = s
	c.gateway = gateway
	c.entries = make(map[int64]*Entry)
	c.slots = make(map[int64]*sync.Mutex)

	c.tracer = tracer
	c.monitor = monitor
	c.logger = logger

	return c
}

// slot returns the per-tenant refresh lock, so concurrent refreshes of the same
// tenant serialize while independent tenants stay concurrent.
func (c *Cache) slot(tenantID int64) *sync.Mutex {
	c.slotMu.Lock()
	defer c.slotMu.Unlock()

	m, ok := c.slots[tenantID]
	if !ok {
		m = new(sync.Mutex)
		c.slots[tenantID] = m
	}
	return m
}

// Refresh re-fetches the tenant's zones and tunnels and atomically replaces its
// cache entry. An unknown or inactive tenant id is a no-op. Zone listing
// failure aborts without touching the existing entry; a missing account id or a
// tunnel listing failure degrades to absent/empty instead of failing.
func (c *Cache) Refresh(ctx context.Context, tenantID int64) error {
	ctx, span := c.tracer.Start(ctx, "tenantcache.Cache.Refresh")
	defer span.End()

	slot := c.slot(tenantID)
	slot.Lock()
	defer slot.Unlock()

	tenant, err := c.storage.GetTenantByID(ctx, tenantID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			c.logger.Debugf("skipping refresh for unknown tenant %d", tenantID)
			return nil
		}
		return fmt.Errorf("failed to resolve tenant %d: %w", tenantID, err)
	}
	if !tenant.IsActive {
		c.logger.Debugf("skipping refresh for inactive tenant %d", tenantID)
		return nil
	}

	zones, err := c.gateway.ListZones(ctx, tenant.APIToken)
	if err != nil {
		c.logger.Errorf("failed to refresh zones for tenant %s: %v", tenant.Name, err)
		_ = c.monitor.IncCacheRefresh(map[string]string{"outcome": "failed"})
		return fmt.Errorf("%w: %v", ErrUpstreamListing, err)
	}

	accountID := c.resolveAccountID(ctx, tenant, zones)

	tunnels := []types.Tunnel{}
	if accountID != "" {
		tunnels, err = c.gateway.ListTunnels(ctx, tenant.APIToken, accountID)
		if err != nil {
			// Tunnels are a secondary feature not enabled on every account.
			c.logger.Warnf("could not fetch tunnels for tenant %s: %v", tenant.Name, err)
			tunnels = []types.Tunnel{}
		}
	}

	entry := &Entry{
		Tenant:    tenant,
		Domains:   make(map[string]types.Zone, len(zones)),
		Zones:     make(map[string]types.Zone, len(zones)),
		Tunnels:   make(map[string]types.Tunnel, len(tunnels)),
		AccountID: accountID,
	}
	for _, z := range zones {
		entry.Domains[z.Name] = z
		entry.Zones[z.ID] = z
	}
	for _, t := range tunnels {
		entry.Tunnels[t.ID] = t
	}

	c.mu.Lock()
	c.entries[tenantID] = entry
	c.mu.Unlock()

	_ = c.monitor.IncCacheRefresh(map[string]string{"outcome": "success"})
	c.logger.Infof("refreshed cache for tenant %s with %d domains and %d tunnels", tenant.Name, len(zones), len(tunnels))

	return nil
}

// resolveAccountID prefers the account embedded in the first returned zone and
// falls back to listing accounts under the same credential. An empty result is
// a degraded capability, not an error.
func (c *Cache) resolveAccountID(ctx context.Context, tenant *types.Tenant, zones []types.Zone) string {
	if len(zones) > 0 && zones[0].AccountID != "" {
		return zones[0].AccountID
	}

	accounts, err := c.gateway.ListAccounts(ctx, tenant.APIToken)
	if err != nil {
		c.logger.Warnf("could not resolve account id for tenant %s: %v", tenant.Name, err)
		return ""
	}
	if len(accounts) == 0 {
		return ""
	}
	return accounts[0].ID
}

// Invalidate discards any cache entry for the tenant. Used after a credential
// change so the next read is forced through a fresh Refresh.
func (c *Cache) Invalidate(tenantID int64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.entries, tenantID)
}

// Get is a pure read of the current in-memory state, it never refreshes.
func (c *Cache) Get(tenantID int64) (*Entry, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, ok := c.entries[tenantID]
	return entry, ok
}
