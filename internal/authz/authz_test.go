// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authz

import (
	"context"
	"errors"
	"testing"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"

	"github.com/canonical/dns-tenant-bot/internal/logging"
	"github.com/canonical/dns-tenant-bot/internal/storage"
	"github.com/canonical/dns-tenant-bot/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package authz -destination ./mock_authz.go -source=./interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package authz -destination ./mock_logger.go -source=../logging/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package authz -destination ./mock_monitor.go -source=../monitoring/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package authz -destination ./mock_tracing.go -source=../tracing/interfaces.go

func TestAuthorizer_IsSuperAdmin(t *testing.T) {
	testCases := []struct {
		name        string
		bootstrapID string
		callerID    string
		setupMocks  func(*MockStorageInterface, *MockLoggerInterface)
		expected    bool
		expectedErr bool
	}{
		{
			name:        "preseeded match",
			bootstrapID: "100",
			callerID:    "100",
			setupMocks:  func(*MockStorageInterface, *MockLoggerInterface) {},
			expected:    true,
		},
		{
			name:        "preseeded mismatch",
			bootstrapID: "100",
			callerID:    "200",
			setupMocks:  func(*MockStorageInterface, *MockLoggerInterface) {},
			expected:    false,
		},
		{
			name:     "configured in store",
			callerID: "100",
			setupMocks: func(mockStorage *MockStorageInterface, _ *MockLoggerInterface) {
				mockStorage.EXPECT().GetConfig(gomock.Any(), SuperAdminConfigKey).Return("100", nil)
			},
			expected: true,
		},
		{
			name:     "configured in store - different caller",
			callerID: "200",
			setupMocks: func(mockStorage *MockStorageInterface, _ *MockLoggerInterface) {
				mockStorage.EXPECT().GetConfig(gomock.Any(), SuperAdminConfigKey).Return("100", nil)
			},
			expected: false,
		},
		{
			name:     "first caller bootstraps",
			callerID: "100",
			setupMocks: func(mockStorage *MockStorageInterface, mockLogger *MockLoggerInterface) {
				mockStorage.EXPECT().GetConfig(gomock.Any(), SuperAdminConfigKey).Return("", storage.ErrNotFound)
				mockStorage.EXPECT().SetConfig(gomock.Any(), SuperAdminConfigKey, "100").Return(nil)
				mockLogger.EXPECT().Security().Return(logging.NewNoopLogger().Security())
				mockLogger.EXPECT().Infof(gomock.Any(), gomock.Any())
			},
			expected: true,
		},
		{
			name:     "error - config lookup fails",
			callerID: "100",
			setupMocks: func(mockStorage *MockStorageInterface, _ *MockLoggerInterface) {
				mockStorage.EXPECT().GetConfig(gomock.Any(), SuperAdminConfigKey).Return("", errors.New("db down"))
			},
			expectedErr: true,
		},
		{
			name:     "error - bootstrap write fails",
			callerID: "100",
			setupMocks: func(mockStorage *MockStorageInterface, _ *MockLoggerInterface) {
				mockStorage.EXPECT().GetConfig(gomock.Any(), SuperAdminConfigKey).Return("", storage.ErrNotFound)
				mockStorage.EXPECT().SetConfig(gomock.Any(), SuperAdminConfigKey, "100").Return(errors.New("db down"))
			},
			expectedErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStorage := NewMockStorageInterface(ctrl)
			mockTracer := NewMockTracingInterface(ctrl)
			mockMonitor := NewMockMonitorInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)

			mockTracer.EXPECT().Start(gomock.Any(), "authz.Authorizer.IsSuperAdmin").
				Return(context.Background(), trace.SpanFromContext(context.Background()))
			tc.setupMocks(mockStorage, mockLogger)

			a := NewAuthorizer(mockStorage, tc.bootstrapID, mockTracer, mockMonitor, mockLogger)

			got, err := a.IsSuperAdmin(context.Background(), tc.callerID)

			if tc.expectedErr {
				if err == nil {
					t.Error("expected error but got none")
				}
				return
			}
			if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
			if got != tc.expected {
				t.Errorf("expected %v, got %v", tc.expected, got)
			}
		})
	}
}

func TestAuthorizer_IsSuperAdminBootstrapHappensOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStorage := NewMockStorageInterface(ctrl)
	mockTracer := NewMockTracingInterface(ctrl)
	mockMonitor := NewMockMonitorInterface(ctrl)
	mockLogger := NewMockLoggerInterface(ctrl)

	mockTracer.EXPECT().Start(gomock.Any(), "authz.Authorizer.IsSuperAdmin").
		Return(context.Background(), trace.SpanFromContext(context.Background())).Times(3)

	// The store misses exactly once, then the adopted identity is served from
	// memory with no further storage traffic.
	mockStorage.EXPECT().GetConfig(gomock.Any(), SuperAdminConfigKey).Return("", storage.ErrNotFound)
	mockStorage.EXPECT().SetConfig(gomock.Any(), SuperAdminConfigKey, "100").Return(nil)
	mockLogger.EXPECT().Security().Return(logging.NewNoopLogger().Security())
	mockLogger.EXPECT().Infof(gomock.Any(), gomock.Any())

	a := NewAuthorizer(mockStorage, "", mockTracer, mockMonitor, mockLogger)

	got, err := a.IsSuperAdmin(context.Background(), "100")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got {
		t.Error("first caller should have been adopted as super admin")
	}

	got, err = a.IsSuperAdmin(context.Background(), "100")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got {
		t.Error("adopted super admin should stay super admin")
	}

	got, err = a.IsSuperAdmin(context.Background(), "200")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got {
		t.Error("second caller must not be adopted once a super admin exists")
	}
}

func TestAuthorizer_IsTenantAdmin(t *testing.T) {
	testCases := []struct {
		name        string
		callerID    string
		tenantID    int64
		setupMocks  func(*MockStorageInterface)
		expected    bool
		expectedErr bool
	}{
		{
			name:     "admin of tenant",
			callerID: "100",
			tenantID: 7,
			setupMocks: func(mockStorage *MockStorageInterface) {
				mockStorage.EXPECT().GetTenantByID(gomock.Any(), int64(7)).
					Return(&types.Tenant{ID: 7, AdminUserID: "100", IsActive: true}, nil)
			},
			expected: true,
		},
		{
			name:     "admin of another tenant",
			callerID: "100",
			tenantID: 7,
			setupMocks: func(mockStorage *MockStorageInterface) {
				mockStorage.EXPECT().GetTenantByID(gomock.Any(), int64(7)).
					Return(&types.Tenant{ID: 7, AdminUserID: "200", IsActive: true}, nil)
			},
			expected: false,
		},
		{
			name:     "inactive tenant grants nothing",
			callerID: "100",
			tenantID: 7,
			setupMocks: func(mockStorage *MockStorageInterface) {
				mockStorage.EXPECT().GetTenantByID(gomock.Any(), int64(7)).
					Return(&types.Tenant{ID: 7, AdminUserID: "100", IsActive: false}, nil)
			},
			expected: false,
		},
		{
			name:     "unknown tenant",
			callerID: "100",
			tenantID: 7,
			setupMocks: func(mockStorage *MockStorageInterface) {
				mockStorage.EXPECT().GetTenantByID(gomock.Any(), int64(7)).Return(nil, storage.ErrNotFound)
			},
			expected: false,
		},
		{
			name:     "any tenant - admin somewhere",
			callerID: "100",
			tenantID: 0,
			setupMocks: func(mockStorage *MockStorageInterface) {
				mockStorage.EXPECT().ListActiveTenants(gomock.Any(), "100").
					Return([]*types.Tenant{{ID: 7, AdminUserID: "100", IsActive: true}}, nil)
			},
			expected: true,
		},
		{
			name:     "any tenant - admin nowhere",
			callerID: "100",
			tenantID: 0,
			setupMocks: func(mockStorage *MockStorageInterface) {
				mockStorage.EXPECT().ListActiveTenants(gomock.Any(), "100").Return([]*types.Tenant{}, nil)
			},
			expected: false,
		},
		{
			name:     "error - storage failure",
			callerID: "100",
			tenantID: 7,
			setupMocks: func(mockStorage *MockStorageInterface) {
				mockStorage.EXPECT().GetTenantByID(gomock.Any(), int64(7)).Return(nil, errors.New("db down"))
			},
			expectedErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStorage := NewMockStorageInterface(ctrl)
			mockTracer := NewMockTracingInterface(ctrl)
			mockMonitor := NewMockMonitorInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)

			mockTracer.EXPECT().Start(gomock.Any(), "authz.Authorizer.IsTenantAdmin").
				Return(context.Background(), trace.SpanFromContext(context.Background()))
			tc.setupMocks(mockStorage)

			a := NewAuthorizer(mockStorage, "100", mockTracer, mockMonitor, mockLogger)

			got, err := a.IsTenantAdmin(context.Background(), tc.callerID, tc.tenantID)

			if tc.expectedErr {
				if err == nil {
					t.Error("expected error but got none")
				}
				return
			}
			if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
			if got != tc.expected {
				t.Errorf("expected %v, got %v", tc.expected, got)
			}
		})
	}
}

func TestAuthorizer_HasAccess(t *testing.T) {
	testCases := []struct {
		name       string
		callerID   string
		tenantID   int64
		setupMocks func(*MockStorageInterface)
		expected   bool
	}{
		{
			name:       "super admin dominates every tenant",
			callerID:   "100",
			tenantID:   7,
			setupMocks: func(*MockStorageInterface) {},
			expected:   true,
		},
		{
			name:     "tenant admin has access to own tenant",
			callerID: "200",
			tenantID: 7,
			setupMocks: func(mockStorage *MockStorageInterface) {
				mockStorage.EXPECT().GetTenantByID(gomock.Any(), int64(7)).
					Return(&types.Tenant{ID: 7, AdminUserID: "200", IsActive: true}, nil)
			},
			expected: true,
		},
		{
			name:     "tenant admin locked out of foreign tenant",
			callerID: "200",
			tenantID: 8,
			setupMocks: func(mockStorage *MockStorageInterface) {
				mockStorage.EXPECT().GetTenantByID(gomock.Any(), int64(8)).
					Return(&types.Tenant{ID: 8, AdminUserID: "300", IsActive: true}, nil)
			},
			expected: false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStorage := NewMockStorageInterface(ctrl)
			mockTracer := NewMockTracingInterface(ctrl)
			mockMonitor := NewMockMonitorInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)

			mockTracer.EXPECT().Start(gomock.Any(), gomock.Any()).
				Return(context.Background(), trace.SpanFromContext(context.Background())).AnyTimes()
			tc.setupMocks(mockStorage)

			a := NewAuthorizer(mockStorage, "100", mockTracer, mockMonitor, mockLogger)

			got, err := a.HasAccess(context.Background(), tc.callerID, tc.tenantID)
			if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
			if got != tc.expected {
				t.Errorf("expected %v, got %v", tc.expected, got)
			}
		})
	}
}
