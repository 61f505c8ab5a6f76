// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tenantcache

import (
	"context"
	"errors"
	"testing"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"

	"github.com/canonical/dns-tenant-bot/internal/storage"
	"github.com/canonical/dns-tenant-bot/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package tenantcache -destination ./mock_tenantcache.go -source=./interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package tenantcache -destination ./mock_logger.go -source=../logging/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package tenantcache -destination ./mock_monitor.go -source=../monitoring/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package tenantcache -destination ./mock_tracing.go -source=../tracing/interfaces.go

func setupCache(t *testing.T) (*Cache, *MockStorageInterface, *MockGatewayInterface, *MockMonitorInterface, *MockLoggerInterface) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockStorage := NewMockStorageInterface(ctrl)
	mockGateway := NewMockGatewayInterface(ctrl)
	mockTracer := NewMockTracingInterface(ctrl)
	mockMonitor := NewMockMonitorInterface(ctrl)
	mockLogger := NewMockLoggerInterface(ctrl)

	mockTracer.EXPECT().Start(gomock.Any(), "tenantcache.Cache.Refresh").
		Return(context.Background(), trace.SpanFromContext(context.Background())).AnyTimes()

	return NewCache(mockStorage, mockGateway, mockTracer, mockMonitor, mockLogger), mockStorage, mockGateway, mockMonitor, mockLogger
}

func TestCache_RefreshBuildsBothZoneIndices(t *testing.T) {
	cache, mockStorage, mockGateway, mockMonitor, mockLogger := setupCache(t)

	tenant := &types.Tenant{ID: 7, Name: "acme", APIToken: "tok_abc", IsActive: true}
	zones := []types.Zone{
		{ID: "z1ize", Name: "acme.com", Status: "active", AccountID: "acc1"},
		{ID: "z2", Name: "acme.org", Status: "active", AccountID: "acc1"},
	}
	tunnels := []types.Tunnel{{ID: "t1", Name: "office", Status: "healthy"}}

	mockStorage.EXPECT().GetTenantByID(gomock.Any(), int64(7)).Return(tenant, nil)
	mockGateway.EXPECT().ListZones(gomock.Any(), "tok_abc").Return(zones, nil)
	mockGateway.EXPECT().ListTunnels(gomock.Any(), "tok_abc", "acc1").Return(tunnels, nil)
	mockMonitor.EXPECT().IncCacheRefresh(map[string]string{"outcome": "success"}).Return(nil)
	mockLogger.EXPECT().Infof(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any())

	if err := cache.Refresh(context.Background(), 7); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	entry, ok := cache.Get(7)
	if !ok {
		t.Fatal("expected a cache entry for tenant 7")
	}

	if entry.AccountID != "acc1" {
		t.Errorf("expected account acc1, got %q", entry.AccountID)
	}
	if len(entry.Domains) != 2 || len(entry.Zones) != 2 {
		t.Fatalf("expected both indices to hold 2 zones, got %d and %d", len(entry.Domains), len(entry.Zones))
	}

	// Both indices must point at the same snapshot.
	for name, zone := range entry.Domains {
		byID, ok := entry.Zones[zone.ID]
		if !ok {
			t.Errorf("zone %s present by name but missing by id %s", name, zone.ID)
			continue
		}
		if byID != zone {
			t.Errorf("zone %s differs between indices", name)
		}
	}

	if _, ok := entry.Tunnels["t1"]; !ok {
		t.Error("expected tunnel t1 in the snapshot")
	}
	if entry.Tenant.Name != "acme" {
		t.Errorf("expected tenant acme, got %q", entry.Tenant.Name)
	}
}

func TestCache_RefreshZoneFailureKeepsOldEntry(t *testing.T) {
	cache, mockStorage, mockGateway, mockMonitor, mockLogger := setupCache(t)

	tenant := &types.Tenant{ID: 7, Name: "acme", APIToken: "tok_abc", IsActive: true}
	zones := []types.Zone{{ID: "z1ize", Name: "acme.com", AccountID: "acc1"}}

	mockStorage.EXPECT().GetTenantByID(gomock.Any(), int64(7)).Return(tenant, nil).Times(2)
	mockGateway.EXPECT().ListZones(gomock.Any(), "tok_abc").Return(zones, nil)
	mockGateway.EXPECT().ListTunnels(gomock.Any(), "tok_abc", "acc1").Return([]types.Tunnel{}, nil)
	mockMonitor.EXPECT().IncCacheRefresh(map[string]string{"outcome": "success"}).Return(nil)
	mockLogger.EXPECT().Infof(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any())

	if err := cache.Refresh(context.Background(), 7); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	mockGateway.EXPECT().ListZones(gomock.Any(), "tok_abc").Return(nil, errors.New("403 authentication error"))
	mockMonitor.EXPECT().IncCacheRefresh(map[string]string{"outcome": "failed"}).Return(nil)
	mockLogger.EXPECT().Errorf(gomock.Any(), gomock.Any(), gomock.Any())

	err := cache.Refresh(context.Background(), 7)
	if !errors.Is(err, ErrUpstreamListing) {
		t.Fatalf("expected ErrUpstreamListing, got %v", err)
	}

	entry, ok := cache.Get(7)
	if !ok {
		t.Fatal("previous entry must survive a failed refresh")
	}
	if _, ok := entry.Zones["z1ize"]; !ok {
		t.Error("previous snapshot was clobbered by a failed refresh")
	}
}

func TestCache_RefreshTunnelFailureDegrades(t *testing.T) {
	cache, mockStorage, mockGateway, mockMonitor, mockLogger := setupCache(t)

	tenant := &types.Tenant{ID: 7, Name: "acme", APIToken: "tok_abc", IsActive: true}
	zones := []types.Zone{{ID: "z1ize", Name: "acme.com", AccountID: "acc1"}}

	mockStorage.EXPECT().GetTenantByID(gomock.Any(), int64(7)).Return(tenant, nil)
	mockGateway.EXPECT().ListZones(gomock.Any(), "tok_abc").Return(zones, nil)
	mockGateway.EXPECT().ListTunnels(gomock.Any(), "tok_abc", "acc1").Return(nil, errors.New("tunnels not enabled"))
	mockLogger.EXPECT().Warnf(gomock.Any(), gomock.Any(), gomock.Any())
	mockMonitor.EXPECT().IncCacheRefresh(map[string]string{"outcome": "success"}).Return(nil)
	mockLogger.EXPECT().Infof(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any())

	if err := cache.Refresh(context.Background(), 7); err != nil {
		t.Fatalf("tunnel failure must not fail the refresh: %v", err)
	}

	entry, ok := cache.Get(7)
	if !ok {
		t.Fatal("expected a cache entry for tenant 7")
	}
	if len(entry.Tunnels) != 0 {
		t.Errorf("expected empty tunnels, got %d", len(entry.Tunnels))
	}
	if len(entry.Zones) != 1 {
		t.Errorf("zones must still be cached, got %d", len(entry.Zones))
	}
}

func TestCache_RefreshAccountFallback(t *testing.T) {
	cache, mockStorage, mockGateway, mockMonitor, mockLogger := setupCache(t)

	tenant := &types.Tenant{ID: 7, Name: "acme", APIToken: "tok_abc", IsActive: true}

	// No zones at all, so the account comes from the accounts listing.
	mockStorage.EXPECT().GetTenantByID(gomock.Any(), int64(7)).Return(tenant, nil)
	mockGateway.EXPECT().ListZones(gomock.Any(), "tok_abc").Return([]types.Zone{}, nil)
	mockGateway.EXPECT().ListAccounts(gomock.Any(), "tok_abc").Return([]types.Account{{ID: "acc9", Name: "fallback"}}, nil)
	mockGateway.EXPECT().ListTunnels(gomock.Any(), "tok_abc", "acc9").Return([]types.Tunnel{}, nil)
	mockMonitor.EXPECT().IncCacheRefresh(map[string]string{"outcome": "success"}).Return(nil)
	mockLogger.EXPECT().Infof(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any())

	if err := cache.Refresh(context.Background(), 7); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	entry, _ := cache.Get(7)
	if entry.AccountID != "acc9" {
		t.Errorf("expected fallback account acc9, got %q", entry.AccountID)
	}
}

func TestCache_RefreshNoAccountSkipsTunnels(t *testing.T) {
	cache, mockStorage, mockGateway, mockMonitor, mockLogger := setupCache(t)

	tenant := &types.Tenant{ID: 7, Name: "acme", APIToken: "tok_abc", IsActive: true}

	mockStorage.EXPECT().GetTenantByID(gomock.Any(), int64(7)).Return(tenant, nil)
	mockGateway.EXPECT().ListZones(gomock.Any(), "tok_abc").Return([]types.Zone{}, nil)
	mockGateway.EXPECT().ListAccounts(gomock.Any(), "tok_abc").Return(nil, errors.New("forbidden"))
	mockLogger.EXPECT().Warnf(gomock.Any(), gomock.Any(), gomock.Any())
	mockMonitor.EXPECT().IncCacheRefresh(map[string]string{"outcome": "success"}).Return(nil)
	mockLogger.EXPECT().Infof(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any())

	if err := cache.Refresh(context.Background(), 7); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	entry, _ := cache.Get(7)
	if entry.AccountID != "" {
		t.Errorf("expected no account, got %q", entry.AccountID)
	}
	if len(entry.Tunnels) != 0 {
		t.Error("tunnels must be empty when no account is known")
	}
}

func TestCache_RefreshUnknownOrInactiveTenantIsNoop(t *testing.T) {
	testCases := []struct {
		name       string
		setupMocks func(*MockStorageInterface, *MockLoggerInterface)
	}{
		{
			name: "unknown tenant",
			setupMocks: func(mockStorage *MockStorageInterface, mockLogger *MockLoggerInterface) {
				mockStorage.EXPECT().GetTenantByID(gomock.Any(), int64(7)).Return(nil, storage.ErrNotFound)
				mockLogger.EXPECT().Debugf(gomock.Any(), gomock.Any())
			},
		},
		{
			name: "inactive tenant",
			setupMocks: func(mockStorage *MockStorageInterface, mockLogger *MockLoggerInterface) {
				mockStorage.EXPECT().GetTenantByID(gomock.Any(), int64(7)).
					Return(&types.Tenant{ID: 7, IsActive: false}, nil)
				mockLogger.EXPECT().Debugf(gomock.Any(), gomock.Any())
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cache, mockStorage, _, _, mockLogger := setupCache(t)
			tc.setupMocks(mockStorage, mockLogger)

			if err := cache.Refresh(context.Background(), 7); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if _, ok := cache.Get(7); ok {
				t.Error("no entry may be written for an unknown or inactive tenant")
			}
		})
	}
}

func TestCache_InvalidateDropsEntry(t *testing.T) {
	cache, mockStorage, mockGateway, mockMonitor, mockLogger := setupCache(t)

	tenant := &types.Tenant{ID: 7, Name: "acme", APIToken: "tok_abc", IsActive: true}
	zones := []types.Zone{{ID: "z1ize", Name: "acme.com", AccountID: "acc1"}}

	mockStorage.EXPECT().GetTenantByID(gomock.Any(), int64(7)).Return(tenant, nil)
	mockGateway.EXPECT().ListZones(gomock.Any(), "tok_abc").Return(zones, nil)
	mockGateway.EXPECT().ListTunnels(gomock.Any(), "tok_abc", "acc1").Return([]types.Tunnel{}, nil)
	mockMonitor.EXPECT().IncCacheRefresh(gomock.Any()).Return(nil)
	mockLogger.EXPECT().Infof(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any())

	if err := cache.Refresh(context.Background(), 7); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cache.Invalidate(7)

	if _, ok := cache.Get(7); ok {
		t.Error("entry must be gone after Invalidate")
	}

	// Invalidating an absent tenant is fine.
	cache.Invalidate(42)
}

func TestCache_GetIsolatesTenants(t *testing.T) {
	cache, mockStorage, mockGateway, mockMonitor, mockLogger := setupCache(t)

	mockStorage.EXPECT().GetTenantByID(gomock.Any(), int64(7)).
		Return(&types.Tenant{ID: 7, Name: "acme", APIToken: "tok_abc", IsActive: true}, nil)
	mockGateway.EXPECT().ListZones(gomock.Any(), "tok_abc").
		Return([]types.Zone{{ID: "z1ize", Name: "acme.com", AccountID: "acc1"}}, nil)
	mockGateway.EXPECT().ListTunnels(gomock.Any(), "tok_abc", "acc1").Return([]types.Tunnel{}, nil)
	mockMonitor.EXPECT().IncCacheRefresh(gomock.Any()).Return(nil)
	mockLogger.EXPECT().Infof(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any())

	if err := cache.Refresh(context.Background(), 7); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, ok := cache.Get(8); ok {
		t.Error("tenant 8 must not see tenant 7's entry")
	}
}
