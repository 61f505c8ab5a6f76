// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package dns

import (
	"context"
	"errors"
	"testing"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"

	"github.com/canonical/dns-tenant-bot/internal/tenantcache"
	"github.com/canonical/dns-tenant-bot/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package dns -destination ./mock_dns.go -source=./interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package dns -destination ./mock_logger.go -source=../../internal/logging/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package dns -destination ./mock_monitor.go -source=../../internal/monitoring/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package dns -destination ./mock_tracing.go -source=../../internal/tracing/interfaces.go

func cachedEntry() *tenantcache.Entry {
	zone := types.Zone{ID: "z1ize", Name: "acme.com", Status: "active", AccountID: "acc1"}
	return &tenantcache.Entry{
		Tenant:    &types.Tenant{ID: 7, Name: "acme", APIToken: "tok_abc", IsActive: true},
		Domains:   map[string]types.Zone{zone.Name: zone},
		Zones:     map[string]types.Zone{zone.ID: zone},
		Tunnels:   map[string]types.Tunnel{},
		AccountID: "acc1",
	}
}

func setupService(t *testing.T) (*Service, *MockCacheInterface, *MockGatewayInterface, *MockLoggerInterface, *MockTracingInterface) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockCache := NewMockCacheInterface(ctrl)
	mockGateway := NewMockGatewayInterface(ctrl)
	mockTracer := NewMockTracingInterface(ctrl)
	mockMonitor := NewMockMonitorInterface(ctrl)
	mockLogger := NewMockLoggerInterface(ctrl)

	mockTracer.EXPECT().Start(gomock.Any(), gomock.Any()).
		Return(context.Background(), trace.SpanFromContext(context.Background())).AnyTimes()

	s := NewService(mockCache, mockGateway, mockTracer, mockMonitor, mockLogger)

	return s, mockCache, mockGateway, mockLogger, mockTracer
}

func TestService_ResolveZone(t *testing.T) {
	testCases := []struct {
		name        string
		ref         string
		setupMocks  func(*MockCacheInterface)
		expectedID  string
		expectedErr error
	}{
		{
			name: "by zone id",
			ref:  "z1ize",
			setupMocks: func(mockCache *MockCacheInterface) {
				mockCache.EXPECT().Get(int64(7)).Return(cachedEntry(), true)
			},
			expectedID: "z1ize",
		},
		{
			name: "by domain name",
			ref:  "acme.com",
			setupMocks: func(mockCache *MockCacheInterface) {
				mockCache.EXPECT().Get(int64(7)).Return(cachedEntry(), true)
			},
			expectedID: "z1ize",
		},
		{
			name: "unknown reference",
			ref:  "other.com",
			setupMocks: func(mockCache *MockCacheInterface) {
				mockCache.EXPECT().Get(int64(7)).Return(cachedEntry(), true)
			},
			expectedErr: ErrZoneNotFound,
		},
		{
			name: "nothing cached",
			ref:  "acme.com",
			setupMocks: func(mockCache *MockCacheInterface) {
				mockCache.EXPECT().Get(int64(7)).Return(nil, false)
			},
			expectedErr: ErrNotCached,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s, mockCache, _, _, _ := setupService(t)
			tc.setupMocks(mockCache)

			zone, err := s.ResolveZone(context.Background(), 7, tc.ref)

			if tc.expectedErr != nil {
				if !errors.Is(err, tc.expectedErr) {
					t.Fatalf("expected %v, got %v", tc.expectedErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if zone.ID != tc.expectedID {
				t.Errorf("expected zone %s, got %s", tc.expectedID, zone.ID)
			}
		})
	}
}

func TestService_ListRecords(t *testing.T) {
	s, mockCache, mockGateway, _, _ := setupService(t)

	records := []types.DNSRecord{{ID: "r1", ZoneID: "z1ize", Type: "A", Name: "www.acme.com", Content: "192.0.2.1"}}

	mockCache.EXPECT().Get(int64(7)).Return(cachedEntry(), true)
	mockGateway.EXPECT().ListDNSRecords(gomock.Any(), "tok_abc", "z1ize").Return(records, nil)

	got, err := s.ListRecords(context.Background(), 7, "z1ize")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || got[0].ID != "r1" {
		t.Errorf("unexpected records: %+v", got)
	}
}

func TestService_ListRecordsUnknownZone(t *testing.T) {
	s, mockCache, _, _, _ := setupService(t)

	mockCache.EXPECT().Get(int64(7)).Return(cachedEntry(), true)

	if _, err := s.ListRecords(context.Background(), 7, "zX"); !errors.Is(err, ErrZoneNotFound) {
		t.Fatalf("expected ErrZoneNotFound, got %v", err)
	}
}

func TestService_CreateRecord(t *testing.T) {
	testCases := []struct {
		name        string
		record      types.DNSRecord
		setupMocks  func(*MockCacheInterface, *MockGatewayInterface, *MockLoggerInterface)
		expectedErr bool
	}{
		{
			name:   "success",
			record: types.DNSRecord{ZoneID: "z1ize", Type: "A", Name: "www.acme.com", Content: "192.0.2.1", TTL: 300},
			setupMocks: func(mockCache *MockCacheInterface, mockGateway *MockGatewayInterface, mockLogger *MockLoggerInterface) {
				mockCache.EXPECT().Get(int64(7)).Return(cachedEntry(), true)
				mockGateway.EXPECT().CreateDNSRecord(gomock.Any(), "tok_abc", "z1ize", gomock.Any()).DoAndReturn(
					func(_ context.Context, _, _ string, record types.DNSRecord) (*types.DNSRecord, error) {
						created := record
						created.ID = "r1"
						return &created, nil
					})
				mockLogger.EXPECT().Infof(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any())
			},
		},
		{
			name:   "error - zone outside tenant",
			record: types.DNSRecord{ZoneID: "zX", Type: "A", Name: "www.other.com", Content: "192.0.2.1"},
			setupMocks: func(mockCache *MockCacheInterface, _ *MockGatewayInterface, _ *MockLoggerInterface) {
				mockCache.EXPECT().Get(int64(7)).Return(cachedEntry(), true)
			},
			expectedErr: true,
		},
		{
			name:   "error - gateway rejects",
			record: types.DNSRecord{ZoneID: "z1ize", Type: "A", Name: "www.acme.com", Content: "192.0.2.1"},
			setupMocks: func(mockCache *MockCacheInterface, mockGateway *MockGatewayInterface, _ *MockLoggerInterface) {
				mockCache.EXPECT().Get(int64(7)).Return(cachedEntry(), true)
				mockGateway.EXPECT().CreateDNSRecord(gomock.Any(), "tok_abc", "z1ize", gomock.Any()).
					Return(nil, errors.New("400 record already exists"))
			},
			expectedErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s, mockCache, mockGateway, mockLogger, _ := setupService(t)
			tc.setupMocks(mockCache, mockGateway, mockLogger)

			created, err := s.CreateRecord(context.Background(), 7, tc.record)

			if tc.expectedErr {
				if err == nil {
					t.Error("expected error but got none")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if created.ID != "r1" {
				t.Errorf("expected record r1, got %q", created.ID)
			}
		})
	}
}

func TestService_DeleteRecord(t *testing.T) {
	s, mockCache, mockGateway, mockLogger, _ := setupService(t)

	mockCache.EXPECT().Get(int64(7)).Return(cachedEntry(), true)
	mockGateway.EXPECT().DeleteDNSRecord(gomock.Any(), "tok_abc", "z1ize", "r1").Return(nil)
	mockLogger.EXPECT().Infof(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any())

	if err := s.DeleteRecord(context.Background(), 7, "z1ize", "r1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
