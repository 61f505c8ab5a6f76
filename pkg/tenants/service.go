// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tenants

import (
	"context"
	"fmt"

	validator "github.com/go-playground/validator/v10"

	"github.com/canonical/dns-tenant-bot/internal/logging"
	"github.com/canonical/dns-tenant-bot/internal/monitoring"
	"github.com/canonical/dns-tenant-bot/internal/tracing"
	"github.com/canonical/dns-tenant-bot/internal/types"
)

type createTenantRequest struct {
	Name        string `validate:"required,min=1,max=128"`
	AdminID     string `validate:"required"`
	Description string `validate:"max=1024"`
}

var _ ServiceInterface = (*Service)(nil)

type Service struct {
	storage StorageInterface
	authz   AuthzInterface
	cache   CacheInterface

	validate *validator.Validate

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(
	storage StorageInterface,
	authz AuthzInterface,
	cache CacheInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		storage:  storage,
		authz:    authz,
		cache:    cache,
		validate: validator.New(),
		tracer:   tracer,
		monitor:  monitor,
		logger:   logger,
	}
}

func (s *Service) CreateTenant(ctx context.Context, name, adminID, description string) (*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "tenants.Service.CreateTenant")
	defer span.End()

	req := createTenantRequest{Name: name, AdminID: adminID, Description: description}
	if err := s.validate.Struct(req); err != nil {
		return nil, fmt.Errorf("invalid tenant: %w", err)
	}

	t := &types.Tenant{
		Name:        name,
		AdminUserID: adminID,
		Description: description,
		// Credential is attached later via ConnectTenant
		APIToken: "",
	}

	created, err := s.storage.CreateTenant(ctx, t)
	if err != nil {
		return nil, fmt.Errorf("failed to create tenant: %w", err)
	}

	s.logger.Infof("created tenant %s (id %d) with admin %s", created.Name, created.ID, created.AdminUserID)

	return created, nil
}

func (s *Service) GetTenant(ctx context.Context, id int64) (*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "tenants.Service.GetTenant")
	defer span.End()

	return s.storage.GetTenantByID(ctx, id)
}

func (s *Service) ListTenantsFor(ctx context.Context, callerID string) ([]*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "tenants.Service.ListTenantsFor")
	defer span.End()

	if callerID != "" {
		isSuper, err := s.authz.IsSuperAdmin(ctx, callerID)
		if err != nil {
			return nil, err
		}
		if !isSuper {
			return s.storage.ListActiveTenants(ctx, callerID)
		}
	}

	return s.storage.ListActiveTenants(ctx, "")
}

func (s *Service) ConnectTenant(ctx context.Context, id int64, token string) error {
	ctx, span := s.tracer.Start(ctx, "tenants.Service.ConnectTenant")
	defer span.End()

	if err := s.validate.Var(token, "required"); err != nil {
		return fmt.Errorf("invalid credential: %w", err)
	}

	if err := s.storage.SetTenantToken(ctx, id, token); err != nil {
		return fmt.Errorf("failed to attach credential: %w", err)
	}

	// Two sequential effects, not a transaction: a stale entry is acceptable
	// until the next explicit refresh.
	s.cache.Invalidate(id)
	s.logger.Infof("attached credential for tenant %d and invalidated its cache entry", id)

	return nil
}

func (s *Service) DeactivateTenant(ctx context.Context, id int64) error {
	ctx, span := s.tracer.Start(ctx, "tenants.Service.DeactivateTenant")
	defer span.End()

	if err := s.storage.SetTenantStatus(ctx, id, false); err != nil {
		return fmt.Errorf("failed to deactivate tenant: %w", err)
	}

	s.cache.Invalidate(id)
	s.logger.Infof("deactivated tenant %d", id)

	return nil
}

func (s *Service) UpdateTenant(ctx context.Context, tenant *types.Tenant, paths []string) (*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "tenants.Service.UpdateTenant")
	defer span.End()

	if err := s.storage.UpdateTenant(ctx, tenant, paths); err != nil {
		return nil, fmt.Errorf("failed to update tenant: %w", err)
	}

	updated, err := s.storage.GetTenantByID(ctx, tenant.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get updated tenant: %w", err)
	}

	return updated, nil
}
