// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/canonical/dns-tenant-bot/internal/db"
	"github.com/canonical/dns-tenant-bot/internal/logging"
	"github.com/canonical/dns-tenant-bot/internal/monitoring"
	"github.com/canonical/dns-tenant-bot/internal/tracing"
	"github.com/canonical/dns-tenant-bot/internal/types"
)

var _ StorageInterface = (*Storage)(nil)

const tenantColumns = "id, name, admin_user_id, api_token, description, is_active, created_at"

type Storage struct {
	db db.DBClientInterface

	logger  logging.LoggerInterface
	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
}

func NewStorage(c db.DBClientInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Storage {
	s := new(Storage)

	s.db = c

	s.logger = logger
	s.tracer = tracer
	s.monitor = monitor

	return s
}

func (s *Storage) CreateTenant(ctx context.Context, t *types.Tenant) (*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateTenant")
	defer span.End()

	var newTenant types.Tenant
	err := s.db.Statement(ctx).
		Insert("tenants").
		Columns("name", "admin_user_id", "api_token", "description", "is_active").
		Values(t.Name, t.AdminUserID, t.APIToken, t.Description, true).
		Suffix("RETURNING " + tenantColumns).
		QueryRowContext(ctx).
		Scan(&newTenant.ID, &newTenant.Name, &newTenant.AdminUserID, &newTenant.APIToken,
			&newTenant.Description, &newTenant.IsActive, &newTenant.CreatedAt)

	if err != nil {
		if IsDuplicateKeyError(err) {
			return nil, ErrDuplicateKey
		}
		return nil, fmt.Errorf("failed to insert tenant: %w", err)
	}

	return &newTenant, nil
}

func (s *Storage) GetTenantByID(ctx context.Context, id int64) (*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetTenantByID")
	defer span.End()

	var t types.Tenant
	err := s.db.Statement(ctx).
		Select("id", "name", "admin_user_id", "api_token", "description", "is_active", "created_at").
		From("tenants").
		Where(sq.Eq{"id": id}).
		QueryRowContext(ctx).
		Scan(&t.ID, &t.Name, &t.AdminUserID, &t.APIToken, &t.Description, &t.IsActive, &t.CreatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get tenant: %w", err)
	}

	return &t, nil
}

func (s *Storage) ListActiveTenants(ctx context.Context, adminID string) ([]*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListActiveTenants")
	defer span.End()

	query := s.db.Statement(ctx).
		Select("id", "name", "admin_user_id", "api_token", "description", "is_active", "created_at").
		From("tenants").
		Where(sq.Eq{"is_active": true}).
		OrderBy("id")

	if adminID != "" {
		query = query.Where(sq.Eq{"admin_user_id": adminID})
	}

	rows, err := query.QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tenants: %w", err)
	}
	defer rows.Close()

	var tenants []*types.Tenant
	for rows.Next() {
		var t types.Tenant
		if err := rows.Scan(&t.ID, &t.Name, &t.AdminUserID, &t.APIToken, &t.Description, &t.IsActive, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan tenant: %w", err)
		}
		tenants = append(tenants, &t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating tenant rows: %w", err)
	}

	return tenants, nil
}

// UpdateTenant updates fields specified in paths, following PATCH semantics.
func (s *Storage) UpdateTenant(ctx context.Context, tenant *types.Tenant, paths []string) error {
	ctx, span := s.tracer.Start(ctx, "storage.UpdateTenant")
	defer span.End()

	if len(paths) == 0 {
		return nil
	}

	updateMap := make(map[string]interface{})
	for _, p := range paths {
		switch p {
		case "name":
			updateMap["name"] = tenant.Name
		case "admin_user_id":
			updateMap["admin_user_id"] = tenant.AdminUserID
		case "description":
			updateMap["description"] = tenant.Description
		}
	}

	if len(updateMap) == 0 {
		return nil
	}

	_, err := s.db.Statement(ctx).
		Update("tenants").
		SetMap(updateMap).
		Where(sq.Eq{"id": tenant.ID}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to update tenant: %w", err)
	}

	return nil
}

func (s *Storage) SetTenantToken(ctx context.Context, id int64, token string) error {
	ctx, span := s.tracer.Start(ctx, "storage.SetTenantToken")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("tenants").
		Set("api_token", token).
		Where(sq.Eq{"id": id}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to set tenant token: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}

	return nil
}

func (s *Storage) SetTenantStatus(ctx context.Context, id int64, active bool) error {
	ctx, span := s.tracer.Start(ctx, "storage.SetTenantStatus")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("tenants").
		Set("is_active", active).
		Where(sq.Eq{"id": id}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to set tenant status: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}

	return nil
}

func (s *Storage) GetConfig(ctx context.Context, key string) (string, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetConfig")
	defer span.End()

	var value string
	err := s.db.Statement(ctx).
		Select("value").
		From("bot_config").
		Where(sq.Eq{"key": key}).
		QueryRowContext(ctx).
		Scan(&value)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("failed to get config %q: %w", key, err)
	}

	return value, nil
}

func (s *Storage) SetConfig(ctx context.Context, key, value string) error {
	ctx, span := s.tracer.Start(ctx, "storage.SetConfig")
	defer span.End()

	_, err := s.db.Statement(ctx).
		Insert("bot_config").
		Columns("key", "value").
		Values(key, value).
		Suffix("ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = NOW()").
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to set config %q: %w", key, err)
	}

	return nil
}
