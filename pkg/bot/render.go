// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package bot

import (
	"sort"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/canonical/dns-tenant-bot/internal/tenantcache"
	"github.com/canonical/dns-tenant-bot/internal/types"
)

const helpText = `Manage Cloudflare zones, DNS records and tunnels per tenant.

/start - pick a tenant and open its menu
/help - this message

With a tenant selected, send a domain name or zone id to jump to its records.`

const notLoadedText = "Tenant data is not loaded yet. Open the menu and press Refresh."

func mainMenuKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("Zones", "domains"),
			tgbotapi.NewInlineKeyboardButtonData("Tunnels", "tunnels"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("Refresh", "refresh"),
			tgbotapi.NewInlineKeyboardButtonData("Switch tenant", "tenants"),
		),
	)
}

func backRow(target string) []tgbotapi.InlineKeyboardButton {
	return tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData("Back", target),
	)
}

func backKeyboard(target string) tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(backRow(target))
}

func sortedZones(entry *tenantcache.Entry) []types.Zone {
	zones := make([]types.Zone, 0, len(entry.Zones))
	for _, z := range entry.Zones {
		zones = append(zones, z)
	}

	sort.Slice(zones, func(i, j int) bool { return zones[i].Name < zones[j].Name })

	return zones
}
