// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package dns

import (
	"context"
	"errors"
	"fmt"

	"github.com/canonical/dns-tenant-bot/internal/logging"
	"github.com/canonical/dns-tenant-bot/internal/monitoring"
	"github.com/canonical/dns-tenant-bot/internal/tenantcache"
	"github.com/canonical/dns-tenant-bot/internal/tracing"
	"github.com/canonical/dns-tenant-bot/internal/types"
)

var (
	// ErrNotCached means the tenant has no cache entry yet, callers must
	// trigger an explicit refresh first.
	ErrNotCached    = errors.New("tenant cache not populated")
	ErrZoneNotFound = errors.New("zone not found")
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

func (s *Service) entry(tenantID int64) (*tenantcache.Entry, error) {
	entry, ok := s.cache.Get(tenantID)
	if !ok {
		return nil, ErrNotCached
	}
	return entry, nil
}

func (s *Service) ResolveZone(ctx context.Context, tenantID int64, ref string) (*types.Zone, error) {
	_, span := s.tracer.Start(ctx, "dns.Service.ResolveZone")
	defer span.End()

	entry, err := s.entry(tenantID)
	if err != nil {
		return nil, err
	}

	if zone, ok := entry.Zones[ref]; ok {
		return &zone, nil
	}
	if zone, ok := entry.Domains[ref]; ok {
		return &zone, nil
	}

	return nil, fmt.Errorf("%w: %s", ErrZoneNotFound, ref)
}

func (s *Service) ListRecords(ctx context.Context, tenantID int64, zoneID string) ([]types.DNSRecord, error) {
	ctx, span := s.tracer.Start(ctx, "dns.Service.ListRecords")
	defer span.End()

	entry, err := s.entry(tenantID)
	if err != nil {
		return nil, err
	}
	if _, ok := entry.Zones[zoneID]; !ok {
		return nil, fmt.Errorf("%w: %s", ErrZoneNotFound, zoneID)
	}

	return s.gateway.ListDNSRecords(ctx, entry.Tenant.APIToken, zoneID)
}

func (s *Service) CreateRecord(ctx context.Context, tenantID int64, record types.DNSRecord) (*types.DNSRecord, error) {
	ctx, span := s.tracer.Start(ctx, "dns.Service.CreateRecord")
	defer span.End()

	entry, err := s.entry(tenantID)
	if err != nil {
		return nil, err
	}
	if _, ok := entry.Zones[record.ZoneID]; !ok {
		return nil, fmt.Errorf("%w: %s", ErrZoneNotFound, record.ZoneID)
	}

	created, err := s.gateway.CreateDNSRecord(ctx, entry.Tenant.APIToken, record.ZoneID, record)
	if err != nil {
		return nil, err
	}

	s.logger.Infof("created %s record %s in zone %s for tenant %d", created.Type, created.Name, record.ZoneID, tenantID)
	return created, nil
}

func (s *Service) UpdateRecord(ctx context.Context, tenantID int64, record types.DNSRecord) (*types.DNSRecord, error) {
	ctx, span := s.tracer.Start(ctx, "dns.Service.UpdateRecord")
	defer span.End()

	entry, err := s.entry(tenantID)
	if err != nil {
		return nil, err
	}
	if _, ok := entry.Zones[record.ZoneID]; !ok {
		return nil, fmt.Errorf("%w: %s", ErrZoneNotFound, record.ZoneID)
	}

	return s.gateway.UpdateDNSRecord(ctx, entry.Tenant.APIToken, record.ZoneID, record)
}

func (s *Service) DeleteRecord(ctx context.Context, tenantID int64, zoneID, recordID string) error {
	ctx, span := s.tracer.Start(ctx, "dns.Service.DeleteRecord")
	defer span.End()

	entry, err := s.entry(tenantID)
	if err != nil {
		return err
	}
	if _, ok := entry.Zones[zoneID]; !ok {
		return fmt.Errorf("%w: %s", ErrZoneNotFound, zoneID)
	}

	if err := s.gateway.DeleteDNSRecord(ctx, entry.Tenant.APIToken, zoneID, recordID); err != nil {
		return err
	}

	s.logger.Infof("deleted record %s from zone %s for tenant %d", recordID, zoneID, tenantID)
	return nil
}
