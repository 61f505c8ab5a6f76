// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"time"
)

type Tenant struct {
	ID          int64     `db:"id"`
	Name        string    `db:"name"`
	AdminUserID string    `db:"admin_user_id"`
	APIToken    string    `db:"api_token"`
	Description string    `db:"description"`
	IsActive    bool      `db:"is_active"`
	CreatedAt   time.Time `db:"created_at"`
}

// Connected reports whether a provider credential has been attached yet.
func (t *Tenant) Connected() bool {
	return t.APIToken != ""
}

type BotConfig struct {
	Key       string    `db:"key"`
	Value     string    `db:"value"`
	UpdatedAt time.Time `db:"updated_at"`
}

// Zone is the normalized provider zone shape. AccountID may be empty when the
// provider response does not embed account information.
type Zone struct {
	ID        string
	Name      string
	Status    string
	AccountID string
}

type Account struct {
	ID   string
	Name string
}

type Tunnel struct {
	ID        string
	Name      string
	Status    string
	CreatedAt *time.Time
}

type DNSRecord struct {
	ID       string
	ZoneID   string
	Type     string
	Name     string
	Content  string
	TTL      int
	Priority *uint16
	Proxied  bool
}
