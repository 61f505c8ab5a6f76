// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tenants

import (
	"context"
	"errors"
	"testing"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"

	"github.com/canonical/dns-tenant-bot/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package tenants -destination ./mock_tenants.go -source=./interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package tenants -destination ./mock_logger.go -source=../../internal/logging/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package tenants -destination ./mock_monitor.go -source=../../internal/monitoring/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package tenants -destination ./mock_tracing.go -source=../../internal/tracing/interfaces.go

func setupService(t *testing.T) (*Service, *MockStorageInterface, *MockAuthzInterface, *MockCacheInterface, *MockLoggerInterface, *MockTracingInterface) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockStorage := NewMockStorageInterface(ctrl)
	mockAuthz := NewMockAuthzInterface(ctrl)
	mockCache := NewMockCacheInterface(ctrl)
	mockTracer := NewMockTracingInterface(ctrl)
	mockMonitor := NewMockMonitorInterface(ctrl)
	mockLogger := NewMockLoggerInterface(ctrl)

	s := NewService(mockStorage, mockAuthz, mockCache, mockTracer, mockMonitor, mockLogger)

	return s, mockStorage, mockAuthz, mockCache, mockLogger, mockTracer
}

func TestService_CreateTenant(t *testing.T) {
	testCases := []struct {
		name        string
		tenantName  string
		adminID     string
		setupMocks  func(*MockStorageInterface, *MockLoggerInterface)
		expectedErr bool
	}{
		{
			name:       "success",
			tenantName: "acme",
			adminID:    "100",
			setupMocks: func(mockStorage *MockStorageInterface, mockLogger *MockLoggerInterface) {
				mockStorage.EXPECT().CreateTenant(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, tenant *types.Tenant) (*types.Tenant, error) {
						if tenant.APIToken != "" {
							return nil, errors.New("new tenant must start without a credential")
						}
						if tenant.AdminUserID != "100" {
							return nil, errors.New("wrong admin")
						}
						created := *tenant
						created.ID = 7
						return &created, nil
					})
				mockLogger.EXPECT().Infof(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any())
			},
		},
		{
			name:        "error - empty name",
			tenantName:  "",
			adminID:     "100",
			setupMocks:  func(*MockStorageInterface, *MockLoggerInterface) {},
			expectedErr: true,
		},
		{
			name:        "error - empty admin",
			tenantName:  "acme",
			adminID:     "",
			setupMocks:  func(*MockStorageInterface, *MockLoggerInterface) {},
			expectedErr: true,
		},
		{
			name:       "error - storage failure",
			tenantName: "acme",
			adminID:    "100",
			setupMocks: func(mockStorage *MockStorageInterface, _ *MockLoggerInterface) {
				mockStorage.EXPECT().CreateTenant(gomock.Any(), gomock.Any()).Return(nil, errors.New("db down"))
			},
			expectedErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s, mockStorage, _, _, mockLogger, mockTracer := setupService(t)

			mockTracer.EXPECT().Start(gomock.Any(), "tenants.Service.CreateTenant").
				Return(context.Background(), trace.SpanFromContext(context.Background()))
			tc.setupMocks(mockStorage, mockLogger)

			created, err := s.CreateTenant(context.Background(), tc.tenantName, tc.adminID, "test tenant")

			if tc.expectedErr {
				if err == nil {
					t.Error("expected error but got none")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if created.ID != 7 {
				t.Errorf("expected id 7, got %d", created.ID)
			}
		})
	}
}

func TestService_ListTenantsFor(t *testing.T) {
	all := []*types.Tenant{{ID: 7, AdminUserID: "200"}, {ID: 8, AdminUserID: "300"}}
	owned := []*types.Tenant{{ID: 7, AdminUserID: "200"}}

	testCases := []struct {
		name       string
		callerID   string
		setupMocks func(*MockStorageInterface, *MockAuthzInterface)
		expected   int
	}{
		{
			name:     "super admin sees all tenants",
			callerID: "100",
			setupMocks: func(mockStorage *MockStorageInterface, mockAuthz *MockAuthzInterface) {
				mockAuthz.EXPECT().IsSuperAdmin(gomock.Any(), "100").Return(true, nil)
				mockStorage.EXPECT().ListActiveTenants(gomock.Any(), "").Return(all, nil)
			},
			expected: 2,
		},
		{
			name:     "tenant admin sees only owned tenants",
			callerID: "200",
			setupMocks: func(mockStorage *MockStorageInterface, mockAuthz *MockAuthzInterface) {
				mockAuthz.EXPECT().IsSuperAdmin(gomock.Any(), "200").Return(false, nil)
				mockStorage.EXPECT().ListActiveTenants(gomock.Any(), "200").Return(owned, nil)
			},
			expected: 1,
		},
		{
			name:     "empty caller lists everything",
			callerID: "",
			setupMocks: func(mockStorage *MockStorageInterface, _ *MockAuthzInterface) {
				mockStorage.EXPECT().ListActiveTenants(gomock.Any(), "").Return(all, nil)
			},
			expected: 2,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s, mockStorage, mockAuthz, _, _, mockTracer := setupService(t)

			mockTracer.EXPECT().Start(gomock.Any(), "tenants.Service.ListTenantsFor").
				Return(context.Background(), trace.SpanFromContext(context.Background()))
			tc.setupMocks(mockStorage, mockAuthz)

			list, err := s.ListTenantsFor(context.Background(), tc.callerID)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(list) != tc.expected {
				t.Errorf("expected %d tenants, got %d", tc.expected, len(list))
			}
		})
	}
}

func TestService_ConnectTenant(t *testing.T) {
	testCases := []struct {
		name        string
		token       string
		setupMocks  func(*MockStorageInterface, *MockCacheInterface, *MockLoggerInterface)
		expectedErr bool
	}{
		{
			name:  "success - token attach invalidates cache",
			token: "tok_abc",
			setupMocks: func(mockStorage *MockStorageInterface, mockCache *MockCacheInterface, mockLogger *MockLoggerInterface) {
				mockStorage.EXPECT().SetTenantToken(gomock.Any(), int64(7), "tok_abc").Return(nil)
				mockCache.EXPECT().Invalidate(int64(7))
				mockLogger.EXPECT().Infof(gomock.Any(), gomock.Any())
			},
		},
		{
			name:        "error - empty token",
			token:       "",
			setupMocks:  func(*MockStorageInterface, *MockCacheInterface, *MockLoggerInterface) {},
			expectedErr: true,
		},
		{
			name:  "error - storage failure leaves cache alone",
			token: "tok_abc",
			setupMocks: func(mockStorage *MockStorageInterface, _ *MockCacheInterface, _ *MockLoggerInterface) {
				mockStorage.EXPECT().SetTenantToken(gomock.Any(), int64(7), "tok_abc").Return(errors.New("db down"))
			},
			expectedErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s, mockStorage, _, mockCache, mockLogger, mockTracer := setupService(t)

			mockTracer.EXPECT().Start(gomock.Any(), "tenants.Service.ConnectTenant").
				Return(context.Background(), trace.SpanFromContext(context.Background()))
			tc.setupMocks(mockStorage, mockCache, mockLogger)

			err := s.ConnectTenant(context.Background(), 7, tc.token)

			if tc.expectedErr && err == nil {
				t.Error("expected error but got none")
			}
			if !tc.expectedErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestService_DeactivateTenant(t *testing.T) {
	s, mockStorage, _, mockCache, mockLogger, mockTracer := setupService(t)

	mockTracer.EXPECT().Start(gomock.Any(), "tenants.Service.DeactivateTenant").
		Return(context.Background(), trace.SpanFromContext(context.Background()))
	mockStorage.EXPECT().SetTenantStatus(gomock.Any(), int64(7), false).Return(nil)
	mockCache.EXPECT().Invalidate(int64(7))
	mockLogger.EXPECT().Infof(gomock.Any(), gomock.Any())

	if err := s.DeactivateTenant(context.Background(), 7); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestService_UpdateTenant(t *testing.T) {
	s, mockStorage, _, _, _, mockTracer := setupService(t)

	tenant := &types.Tenant{ID: 7, Name: "acme renamed"}

	mockTracer.EXPECT().Start(gomock.Any(), "tenants.Service.UpdateTenant").
		Return(context.Background(), trace.SpanFromContext(context.Background()))
	mockStorage.EXPECT().UpdateTenant(gomock.Any(), tenant, []string{"name"}).Return(nil)
	mockStorage.EXPECT().GetTenantByID(gomock.Any(), int64(7)).
		Return(&types.Tenant{ID: 7, Name: "acme renamed"}, nil)

	updated, err := s.UpdateTenant(context.Background(), tenant, []string{"name"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Name != "acme renamed" {
		t.Errorf("expected updated name, got %q", updated.Name)
	}
}
