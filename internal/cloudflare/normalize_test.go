// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cloudflare

import (
	"testing"
	"time"

	cf "github.com/cloudflare/cloudflare-go"
)

func TestNormalizeZone(t *testing.T) {
	zone := normalizeZone(cf.Zone{
		ID:     "z1ize",
		Name:   "acme.com",
		Status: "active",
		Account: cf.Account{
			ID:   "acc1",
			Name: "Acme",
		},
	})

	if zone.ID != "z1ize" || zone.Name != "acme.com" || zone.Status != "active" {
		t.Errorf("unexpected zone: %+v", zone)
	}
	if zone.AccountID != "acc1" {
		t.Errorf("account id must be lifted out of the nested account, got %q", zone.AccountID)
	}
}

func TestNormalizeTunnel(t *testing.T) {
	created := time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC)

	tunnel := normalizeTunnel(cf.Tunnel{
		ID:        "t1",
		Name:      "office",
		Status:    "healthy",
		CreatedAt: &created,
	})

	if tunnel.ID != "t1" || tunnel.Name != "office" || tunnel.Status != "healthy" {
		t.Errorf("unexpected tunnel: %+v", tunnel)
	}
	if tunnel.CreatedAt == nil || !tunnel.CreatedAt.Equal(created) {
		t.Errorf("unexpected creation time: %v", tunnel.CreatedAt)
	}
}

func TestNormalizeDNSRecord(t *testing.T) {
	testCases := []struct {
		name     string
		proxied  *bool
		expected bool
	}{
		{name: "proxied set", proxied: cf.BoolPtr(true), expected: true},
		{name: "proxied unset", proxied: nil, expected: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			record := normalizeDNSRecord(cf.DNSRecord{
				ID:      "r1",
				ZoneID:  "z1ize",
				Type:    "A",
				Name:    "www.acme.com",
				Content: "192.0.2.1",
				TTL:     300,
				Proxied: tc.proxied,
			})

			if record.ID != "r1" || record.Type != "A" || record.TTL != 300 {
				t.Errorf("unexpected record: %+v", record)
			}
			if record.Proxied != tc.expected {
				t.Errorf("expected proxied %v, got %v", tc.expected, record.Proxied)
			}
		})
	}
}
