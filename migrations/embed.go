// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package migrations embeds the SQL migration files consumed by goose.
package migrations

import "embed"

//go:embed *.sql
var EmbedMigrations embed.FS
