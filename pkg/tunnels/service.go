// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tunnels

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/google/uuid"

	"github.com/canonical/dns-tenant-bot/internal/logging"
	"github.com/canonical/dns-tenant-bot/internal/monitoring"
	"github.com/canonical/dns-tenant-bot/internal/tracing"
	"github.com/canonical/dns-tenant-bot/internal/types"
)

var (
	// ErrNotCached means the tenant has no cache entry yet, callers must
	// trigger an explicit refresh first.
	ErrNotCached = errors.New("tenant cache not populated")
	// ErrNoAccount means the tenant's account id could not be resolved during
	// the last refresh. Tunnels require an account with Zero Trust enabled.
	ErrNoAccount = errors.New("no provider account id resolved for tenant")
)

var _ ServiceInterface = (*Service)(nil)

type Service struct {
	cache   CacheInterface
	gateway GatewayInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(
	cache CacheInterface,
	gateway GatewayInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		cache:   cache,
		gateway: gateway,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

func (s *Service) ListTunnels(ctx context.Context, tenantID int64) ([]types.Tunnel, error) {
	_, span := s.tracer.Start(ctx, "tunnels.Service.ListTunnels")
	defer span.End()

	entry, ok := s.cache.Get(tenantID)
	if !ok {
		return nil, ErrNotCached
	}

	ret := make([]types.Tunnel, 0, len(entry.Tunnels))
	for _, t := range entry.Tunnels {
		ret = append(ret, t)
	}

	sort.Slice(ret, func(i, j int) bool { return ret[i].Name < ret[j].Name })

	return ret, nil
}

func (s *Service) CreateTunnel(ctx context.Context, tenantID int64, name string) (*types.Tunnel, error) {
	ctx, span := s.tracer.Start(ctx, "tunnels.Service.CreateTunnel")
	defer span.End()

	entry, ok := s.cache.Get(tenantID)
	if !ok {
		return nil, ErrNotCached
	}
	if entry.AccountID == "" {
		return nil, ErrNoAccount
	}

	secret := uuid.New().String()
	tunnel, err := s.gateway.CreateTunnel(ctx, entry.Tenant.APIToken, entry.AccountID, name, secret)
	if err != nil {
		return nil, fmt.Errorf("failed to create tunnel: %w", err)
	}

	s.logger.Infof("created tunnel %s (%s) for tenant %d", tunnel.Name, tunnel.ID, tenantID)

	// Pick up the new tunnel in the snapshot. Refresh failure leaves the
	// created tunnel visible on the next explicit refresh.
	if err := s.cache.Refresh(ctx, tenantID); err != nil {
		s.logger.Warnf("failed to refresh cache after tunnel creation: %v", err)
	}

	return tunnel, nil
}

func (s *Service) DeleteTunnel(ctx context.Context, tenantID int64, tunnelID string) error {
	ctx, span := s.tracer.Start(ctx, "tunnels.Service.DeleteTunnel")
	defer span.End()

	entry, ok := s.cache.Get(tenantID)
	if !ok {
		return ErrNotCached
	}
	if entry.AccountID == "" {
		return ErrNoAccount
	}

	if err := s.gateway.DeleteTunnel(ctx, entry.Tenant.APIToken, entry.AccountID, tunnelID); err != nil {
		return fmt.Errorf("failed to delete tunnel: %w", err)
	}

	s.logger.Infof("deleted tunnel %s for tenant %d", tunnelID, tenantID)

	if err := s.cache.Refresh(ctx, tenantID); err != nil {
		s.logger.Warnf("failed to refresh cache after tunnel deletion: %v", err)
	}

	return nil
}
