// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tunnels

import (
	"context"
	"errors"
	"testing"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"

	"github.com/canonical/dns-tenant-bot/internal/tenantcache"
	"github.com/canonical/dns-tenant-bot/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package tunnels -destination ./mock_tunnels.go -source=./interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package tunnels -destination ./mock_logger.go -source=../../internal/logging/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package tunnels -destination ./mock_monitor.go -source=../../internal/monitoring/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package tunnels -destination ./mock_tracing.go -source=../../internal/tracing/interfaces.go

func cachedEntry(accountID string) *tenantcache.Entry {
	return &tenantcache.Entry{
		Tenant:    &types.Tenant{ID: 7, Name: "acme", APIToken: "tok_abc", IsActive: true},
		Domains:   map[string]types.Zone{},
		Zones:     map[string]types.Zone{},
		Tunnels:   map[string]types.Tunnel{"t1": {ID: "t1", Name: "office", Status: "healthy"}},
		AccountID: accountID,
	}
}

func setupService(t *testing.T) (*Service, *MockCacheInterface, *MockGatewayInterface, *MockLoggerInterface) {
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

	return s, mockCache, mockGateway, mockLogger
}

func TestService_ListTunnels(t *testing.T) {
	s, mockCache, _, _ := setupService(t)

	mockCache.EXPECT().Get(int64(7)).Return(cachedEntry("acc1"), true)

	got, err := s.ListTunnels(context.Background(), 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || got[0].ID != "t1" {
		t.Errorf("unexpected tunnels: %+v", got)
	}
}

func TestService_ListTunnelsSortedByName(t *testing.T) {
	s, mockCache, _, _ := setupService(t)

	entry := cachedEntry("acc1")
	entry.Tunnels = map[string]types.Tunnel{
		"t3": {ID: "t3", Name: "warehouse"},
		"t1": {ID: "t1", Name: "office"},
		"t2": {ID: "t2", Name: "datacenter"},
	}
	mockCache.EXPECT().Get(int64(7)).Return(entry, true)

	got, err := s.ListTunnels(context.Background(), 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	names := make([]string, 0, len(got))
	for _, tunnel := range got {
		names = append(names, tunnel.Name)
	}
	want := []string{"datacenter", "office", "warehouse"}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("expected order %v, got %v", want, names)
		}
	}
}

func TestService_ListTunnelsNotCached(t *testing.T) {
	s, mockCache, _, _ := setupService(t)

	mockCache.EXPECT().Get(int64(7)).Return(nil, false)

	if _, err := s.ListTunnels(context.Background(), 7); !errors.Is(err, ErrNotCached) {
		t.Fatalf("expected ErrNotCached, got %v", err)
	}
}

func TestService_CreateTunnel(t *testing.T) {
	testCases := []struct {
		name        string
		setupMocks  func(*MockCacheInterface, *MockGatewayInterface, *MockLoggerInterface)
		expectedErr error
	}{
		{
			name: "success",
			setupMocks: func(mockCache *MockCacheInterface, mockGateway *MockGatewayInterface, mockLogger *MockLoggerInterface) {
				mockCache.EXPECT().Get(int64(7)).Return(cachedEntry("acc1"), true)
				mockGateway.EXPECT().CreateTunnel(gomock.Any(), "tok_abc", "acc1", "office2", gomock.Any()).DoAndReturn(
					func(_ context.Context, _, _, name, secret string) (*types.Tunnel, error) {
						if secret == "" {
							return nil, errors.New("secret must be generated")
						}
						return &types.Tunnel{ID: "t2", Name: name, Status: "inactive"}, nil
					})
				mockLogger.EXPECT().Infof(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any())
				mockCache.EXPECT().Refresh(gomock.Any(), int64(7)).Return(nil)
			},
		},
		{
			name: "success - refresh failure only warns",
			setupMocks: func(mockCache *MockCacheInterface, mockGateway *MockGatewayInterface, mockLogger *MockLoggerInterface) {
				mockCache.EXPECT().Get(int64(7)).Return(cachedEntry("acc1"), true)
				mockGateway.EXPECT().CreateTunnel(gomock.Any(), "tok_abc", "acc1", "office2", gomock.Any()).
					Return(&types.Tunnel{ID: "t2", Name: "office2"}, nil)
				mockLogger.EXPECT().Infof(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any())
				mockCache.EXPECT().Refresh(gomock.Any(), int64(7)).Return(errors.New("listing failed"))
				mockLogger.EXPECT().Warnf(gomock.Any(), gomock.Any())
			},
		},
		{
			name: "error - not cached",
			setupMocks: func(mockCache *MockCacheInterface, _ *MockGatewayInterface, _ *MockLoggerInterface) {
				mockCache.EXPECT().Get(int64(7)).Return(nil, false)
			},
			expectedErr: ErrNotCached,
		},
		{
			name: "error - no account",
			setupMocks: func(mockCache *MockCacheInterface, _ *MockGatewayInterface, _ *MockLoggerInterface) {
				mockCache.EXPECT().Get(int64(7)).Return(cachedEntry(""), true)
			},
			expectedErr: ErrNoAccount,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s, mockCache, mockGateway, mockLogger := setupService(t)
			tc.setupMocks(mockCache, mockGateway, mockLogger)

			tunnel, err := s.CreateTunnel(context.Background(), 7, "office2")

			if tc.expectedErr != nil {
				if !errors.Is(err, tc.expectedErr) {
					t.Fatalf("expected %v, got %v", tc.expectedErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tunnel.ID != "t2" {
				t.Errorf("expected tunnel t2, got %q", tunnel.ID)
			}
		})
	}
}

func TestService_DeleteTunnel(t *testing.T) {
	testCases := []struct {
		name        string
		setupMocks  func(*MockCacheInterface, *MockGatewayInterface, *MockLoggerInterface)
		expectedErr error
	}{
		{
			name: "success",
			setupMocks: func(mockCache *MockCacheInterface, mockGateway *MockGatewayInterface, mockLogger *MockLoggerInterface) {
				mockCache.EXPECT().Get(int64(7)).Return(cachedEntry("acc1"), true)
				mockGateway.EXPECT().DeleteTunnel(gomock.Any(), "tok_abc", "acc1", "t1").Return(nil)
				mockLogger.EXPECT().Infof(gomock.Any(), gomock.Any(), gomock.Any())
				mockCache.EXPECT().Refresh(gomock.Any(), int64(7)).Return(nil)
			},
		},
		{
			name: "error - not cached",
			setupMocks: func(mockCache *MockCacheInterface, _ *MockGatewayInterface, _ *MockLoggerInterface) {
				mockCache.EXPECT().Get(int64(7)).Return(nil, false)
			},
			expectedErr: ErrNotCached,
		},
		{
			name: "error - no account",
			setupMocks: func(mockCache *MockCacheInterface, _ *MockGatewayInterface, _ *MockLoggerInterface) {
				mockCache.EXPECT().Get(int64(7)).Return(cachedEntry(""), true)
			},
			expectedErr: ErrNoAccount,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s, mockCache, mockGateway, mockLogger := setupService(t)
			tc.setupMocks(mockCache, mockGateway, mockLogger)

			err := s.DeleteTunnel(context.Background(), 7, "t1")

			if tc.expectedErr != nil {
				if !errors.Is(err, tc.expectedErr) {
					t.Fatalf("expected %v, got %v", tc.expectedErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}
