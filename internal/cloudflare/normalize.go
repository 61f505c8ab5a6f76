// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cloudflare

import (
	cf "github.com/cloudflare/cloudflare-go"

	"github.com/canonical/dns-tenant-bot/internal/types"
)

// The provider SDK exposes several response envelopes for the same resources.
// All shape handling lives here so the cache and services only ever see the
// fixed types package shapes.

func normalizeZone(z cf.Zone) types.Zone {
	return types.Zone{
		ID:        z.ID,
		Name:      z.Name,
		Status:    z.Status,
		AccountID: z.Account.ID,
	}
}

func normalizeTunnel(t cf.Tunnel) types.Tunnel {
	return types.Tunnel{
		ID:        t.ID,
		Name:      t.Name,
		Status:    t.Status,
		CreatedAt: t.CreatedAt,
	}
}

func normalizeDNSRecord(r cf.DNSRecord) types.DNSRecord {
	record := types.DNSRecord{
		ID:       r.ID,
		ZoneID:   r.ZoneID,
		Type:     r.Type,
		Name:     r.Name,
		Content:  r.Content,
		TTL:      r.TTL,
		Priority: r.Priority,
	}
	if r.Proxied != nil {
		record.Proxied = *r.Proxied
	}
	return record
}
