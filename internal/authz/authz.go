// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authz

import (
	"errors"
	"fmt"

	"context"

	"github.com/canonical/dns-tenant-bot/internal/logging"
	"github.com/canonical/dns-tenant-bot/internal/monitoring"
	"github.com/canonical/dns-tenant-bot/internal/storage"
	"github.com/canonical/dns-tenant-bot/internal/tracing"
)

const SuperAdminConfigKey = "super_admin_id"

var _ AuthorizerInterface = (*Authorizer)(nil)

type Authorizer struct {
	storage StorageInterface

	// superAdminID is the resolved super administrator identity. Plain field,
	// only mutated from the sequential dispatcher loop.
	superAdminID string

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// NewAuthorizer builds the authorizer. bootstrapID may be empty, in which case
// the super administrator is resolved from bot_config, or adopted from the
// first caller when none is configured at all.
func NewAuthorizer(s StorageInterface, bootstrapID string, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Authorizer {
	a := new(Authorizer)

	a.storage = s
	a.superAdminID = bootstrapID

	a.tracer = tracer
	a.monitor = monitor
	a.logger = logger

	return a
}

func (a *Authorizer) IsSuperAdmin(ctx context.Context, callerID string) (bool, error) {
	ctx, span := a.tracer.Start(ctx, "authz.Authorizer.IsSuperAdmin")
	defer span.End()

	if a.superAdminID != "" {
		return callerID == a.superAdminID, nil
	}

	value, err := a.storage.GetConfig(ctx, SuperAdminConfigKey)
	if err == nil {
		a.superAdminID = value
		return callerID == value, nil
	}

	if !errors.Is(err, storage.ErrNotFound) {
		return false, fmt.Errorf("failed to resolve super admin: %w", err)
	}

	// First-ever caller with no configured super admin: adopt it. bot_config is
	// the durable source of truth, so this fires at most once globally.
	if err := a.storage.SetConfig(ctx, SuperAdminConfigKey, callerID); err != nil {
		return false, fmt.Errorf("failed to bootstrap super admin: %w", err)
	}
	a.superAdminID = callerID
	a.logger.Security().PrivilegeAssigned(callerID, "super_admin")
	a.logger.Infof("bootstrapped super admin %s", callerID)

	return true, nil
}

func (a *Authorizer) IsTenantAdmin(ctx context.Context, callerID string, tenantID int64) (bool, error) {
	ctx, span := a.tracer.Start(ctx, "authz.Authorizer.IsTenantAdmin")
	defer span.End()

	if tenantID != 0 {
		tenant, err := a.storage.GetTenantByID(ctx, tenantID)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return false, nil
			}
			return false, fmt.Errorf("failed to get tenant %d: %w", tenantID, err)
		}
		return tenant.IsActive && tenant.AdminUserID == callerID, nil
	}

	tenants, err := a.storage.ListActiveTenants(ctx, callerID)
	if err != nil {
		return false, fmt.Errorf("failed to list tenants for %s: %w", callerID, err)
	}
	return len(tenants) > 0, nil
}

func (a *Authorizer) HasAccess(ctx context.Context, callerID string, tenantID int64) (bool, error) {
	ctx, span := a.tracer.Start(ctx, "authz.Authorizer.HasAccess")
	defer span.End()

	isSuper, err := a.IsSuperAdmin(ctx, callerID)
	if err != nil {
		return false, err
	}
	if isSuper {
		return true, nil
	}

	return a.IsTenantAdmin(ctx, callerID, tenantID)
}
