// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package bot

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/canonical/dns-tenant-bot/internal/tenantcache"
	"github.com/canonical/dns-tenant-bot/pkg/dns"
	"github.com/canonical/dns-tenant-bot/pkg/tunnels"
)

func (s *Service) handleCommand(ctx context.Context, callerID string, sess *session, msg *tgbotapi.Message) {
	ctx, span := s.tracer.Start(ctx, "bot.Service.handleCommand")
	defer span.End()

	sess.resetFlow()

	switch msg.Command() {
	case "start":
		s.showTenantPicker(ctx, callerID, sess)
	case "help":
		s.reply(sess, helpText)
	default:
		s.reply(sess, "Unknown command. Try /start.")
	}
}

func (s *Service) handleCallback(ctx context.Context, callerID string, sess *session, callback *tgbotapi.CallbackQuery) {
	ctx, span := s.tracer.Start(ctx, "bot.Service.handleCallback")
	defer span.End()

	s.ack(callback)

	data := callback.Data

	switch {
	case data == "menu":
		s.showMainMenu(ctx, callerID, sess)
	case data == "tenants":
		s.showTenantPicker(ctx, callerID, sess)
	case strings.HasPrefix(data, "tenant:"):
		s.selectTenant(ctx, callerID, sess, parseCallbackArg(data, "tenant:"))
	case data == "domains":
		s.showDomains(ctx, callerID, sess)
	case strings.HasPrefix(data, "dns:"):
		s.showRecords(ctx, callerID, sess, parseCallbackArg(data, "dns:"))
	case strings.HasPrefix(data, "dns_add:"):
		s.startRecordFlow(ctx, callerID, sess, parseCallbackArg(data, "dns_add:"))
	case strings.HasPrefix(data, "dns_edit:"):
		s.startEditRecordFlow(ctx, callerID, sess, parseCallbackArg(data, "dns_edit:"))
	case strings.HasPrefix(data, "dns_del:"):
		s.deleteRecord(ctx, callerID, sess, parseCallbackArg(data, "dns_del:"))
	case data == "tunnels":
		s.showTunnels(ctx, callerID, sess)
	case data == "tunnel_add":
		s.startTunnelFlow(ctx, callerID, sess)
	case strings.HasPrefix(data, "tunnel_del:"):
		s.deleteTunnel(ctx, callerID, sess, parseCallbackArg(data, "tunnel_del:"))
	case data == "refresh":
		s.refreshTenant(ctx, callerID, sess)
	case data == "admin":
		s.showAdminPanel(ctx, callerID, sess)
	case data == "tenant_add":
		s.startTenantFlow(ctx, callerID, sess)
	case strings.HasPrefix(data, "tenant_connect:"):
		s.startConnectFlow(ctx, callerID, sess, parseCallbackArg(data, "tenant_connect:"))
	case strings.HasPrefix(data, "tenant_rename:"):
		s.startRenameFlow(ctx, callerID, sess, parseCallbackArg(data, "tenant_rename:"))
	case strings.HasPrefix(data, "tenant_off:"):
		s.deactivateTenant(ctx, callerID, sess, parseCallbackArg(data, "tenant_off:"))
	default:
		s.logger.Debugf("unhandled callback data %q from %s", data, callerID)
	}
}

func (s *Service) showTenantPicker(ctx context.Context, callerID string, sess *session) {
	// First caller to reach this check claims the operator seat, so the
	// super admin probe runs before any tenant lookup.
	super, err := s.authz.IsSuperAdmin(ctx, callerID)
	if err != nil {
		s.logger.Errorf("super admin check failed for %s: %v", callerID, err)
		s.reply(sess, "Something went wrong, please try again.")
		return
	}

	list, err := s.tenants.ListTenantsFor(ctx, callerID)
	if err != nil {
		s.logger.Errorf("unable to list tenants for %s: %v", callerID, err)
		s.reply(sess, "Something went wrong, please try again.")
		return
	}

	if len(list) == 0 && !super {
		s.reply(sess, "You don't have access to any tenant. Ask the operator to add you.")
		return
	}

	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(list)+1)
	for _, t := range list {
		label := t.Name
		if !t.Connected() {
			label = label + " (no token)"
		}

		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(label, fmt.Sprintf("tenant:%d", t.ID)),
		))
	}

	if super {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("Administration", "admin"),
		))
	}

	s.replyWithKeyboard(sess, "Select a tenant:", tgbotapi.NewInlineKeyboardMarkup(rows...))
}

func (s *Service) selectTenant(ctx context.Context, callerID string, sess *session, arg string) {
	tenantID, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		s.reply(sess, "Invalid tenant reference.")
		return
	}

	allowed, err := s.authz.HasAccess(ctx, callerID, tenantID)
	if err != nil {
		s.logger.Errorf("access check failed for caller %s: %v", callerID, err)
		s.reply(sess, "Something went wrong, please try again.")
		return
	}

	if !allowed {
		s.logger.Security().AccessDenied(callerID, fmt.Sprintf("tenant %d", tenantID))
		s.reply(sess, "You don't have access to this tenant.")
		return
	}

	sess.tenantID = tenantID

	if _, ok := s.cache.Get(tenantID); !ok {
		s.refreshTenant(ctx, callerID, sess)
		return
	}

	s.showMainMenu(ctx, callerID, sess)
}

func (s *Service) showMainMenu(ctx context.Context, callerID string, sess *session) {
	if !s.requireTenantAccess(ctx, callerID, sess) {
		return
	}

	tenant, err := s.tenants.GetTenant(ctx, sess.tenantID)
	if err != nil {
		s.logger.Errorf("unable to load tenant %d: %v", sess.tenantID, err)
		s.reply(sess, "Something went wrong, please try again.")
		return
	}

	if !tenant.Connected() {
		s.reply(sess, fmt.Sprintf("Tenant <b>%s</b> has no API token attached yet.", tenant.Name))
		return
	}

	s.replyWithKeyboard(sess, fmt.Sprintf("Tenant <b>%s</b>", tenant.Name), mainMenuKeyboard())
}

func (s *Service) showDomains(ctx context.Context, callerID string, sess *session) {
	if !s.requireTenantAccess(ctx, callerID, sess) {
		return
	}

	entry, ok := s.cache.Get(sess.tenantID)
	if !ok {
		s.reply(sess, notLoadedText)
		return
	}

	if len(entry.Zones) == 0 {
		s.replyWithKeyboard(sess, "No zones found for this tenant.", backKeyboard("menu"))
		return
	}

	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(entry.Zones)+1)
	for _, zone := range sortedZones(entry) {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(zone.Name, "dns:"+zone.ID),
		))
	}
	rows = append(rows, backRow("menu"))

	s.replyWithKeyboard(sess, "Zones:", tgbotapi.NewInlineKeyboardMarkup(rows...))
}

func (s *Service) showRecords(ctx context.Context, callerID string, sess *session, zoneID string) {
	if !s.requireTenantAccess(ctx, callerID, sess) {
		return
	}

	records, err := s.dns.ListRecords(ctx, sess.tenantID, zoneID)
	if err != nil {
		s.renderDNSError(sess, err)
		return
	}

	var b strings.Builder
	b.WriteString("DNS records:\n")

	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(records)+2)
	for _, r := range records {
		fmt.Fprintf(&b, "\n<code>%s %s -> %s</code>", r.Type, r.Name, r.Content)

		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(
				"Edit "+r.Name,
				fmt.Sprintf("dns_edit:%s:%s", zoneID, r.ID),
			),
			tgbotapi.NewInlineKeyboardButtonData(
				"Delete "+r.Name,
				fmt.Sprintf("dns_del:%s:%s", zoneID, r.ID),
			),
		))
	}

	rows = append(rows,
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("Add record", "dns_add:"+zoneID),
		),
		backRow("domains"),
	)

	s.replyWithKeyboard(sess, b.String(), tgbotapi.NewInlineKeyboardMarkup(rows...))
}

// lookupZone jumps straight to a zone's records from free text, accepting
// either the domain name or the zone id.
func (s *Service) lookupZone(ctx context.Context, callerID string, sess *session, ref string) {
	if sess.tenantID == 0 {
		return
	}
	if !s.requireTenantAccess(ctx, callerID, sess) {
		return
	}

	zone, err := s.dns.ResolveZone(ctx, sess.tenantID, ref)
	if err != nil {
		s.renderDNSError(sess, err)
		return
	}

	s.showRecords(ctx, callerID, sess, zone.ID)
}

func (s *Service) deleteRecord(ctx context.Context, callerID string, sess *session, arg string) {
	if !s.requireTenantAccess(ctx, callerID, sess) {
		return
	}

	zoneID, recordID, ok := strings.Cut(arg, ":")
	if !ok {
		s.reply(sess, "Invalid record reference.")
		return
	}

	if err := s.dns.DeleteRecord(ctx, sess.tenantID, zoneID, recordID); err != nil {
		s.renderDNSError(sess, err)
		return
	}

	s.reply(sess, "Record deleted.")
	s.showRecords(ctx, callerID, sess, zoneID)
}

func (s *Service) showTunnels(ctx context.Context, callerID string, sess *session) {
	if !s.requireTenantAccess(ctx, callerID, sess) {
		return
	}

	list, err := s.tunnels.ListTunnels(ctx, sess.tenantID)
	if err != nil {
		s.renderTunnelError(sess, err)
		return
	}

	var b strings.Builder
	b.WriteString("Tunnels:\n")

	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(list)+2)
	for _, t := range list {
		fmt.Fprintf(&b, "\n<code>%s</code> (%s)", t.Name, t.Status)

		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("Delete "+t.Name, "tunnel_del:"+t.ID),
		))
	}

	if len(list) == 0 {
		b.WriteString("\nnone")
	}

	rows = append(rows,
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("Create tunnel", "tunnel_add"),
		),
		backRow("menu"),
	)

	s.replyWithKeyboard(sess, b.String(), tgbotapi.NewInlineKeyboardMarkup(rows...))
}

func (s *Service) deleteTunnel(ctx context.Context, callerID string, sess *session, tunnelID string) {
	if !s.requireTenantAccess(ctx, callerID, sess) {
		return
	}

	if err := s.tunnels.DeleteTunnel(ctx, sess.tenantID, tunnelID); err != nil {
		s.renderTunnelError(sess, err)
		return
	}

	s.reply(sess, "Tunnel deleted.")
	s.showTunnels(ctx, callerID, sess)
}

func (s *Service) refreshTenant(ctx context.Context, callerID string, sess *session) {
	if !s.requireTenantAccess(ctx, callerID, sess) {
		return
	}

	if err := s.cache.Refresh(ctx, sess.tenantID); err != nil {
		if errors.Is(err, tenantcache.ErrUpstreamListing) {
			// Surface the upstream message so the operator can see what
			// the provider rejected, usually a bad or expired token.
			s.reply(sess, fmt.Sprintf("Refresh failed: %v", err))
			return
		}

		s.logger.Errorf("refresh failed for tenant %d: %v", sess.tenantID, err)
		s.reply(sess, "Something went wrong, please try again.")
		return
	}

	s.showMainMenu(ctx, callerID, sess)
}

func (s *Service) showAdminPanel(ctx context.Context, callerID string, sess *session) {
	if !s.requireSuperAdmin(ctx, callerID, sess) {
		return
	}

	list, err := s.tenants.ListTenantsFor(ctx, "")
	if err != nil {
		s.logger.Errorf("unable to list tenants: %v", err)
		s.reply(sess, "Something went wrong, please try again.")
		return
	}

	var b strings.Builder
	b.WriteString("Tenants:\n")

	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(list)+2)
	for _, t := range list {
		fmt.Fprintf(&b, "\n<b>%s</b> (admin %s)", t.Name, t.AdminUserID)

		row := []tgbotapi.InlineKeyboardButton{
			tgbotapi.NewInlineKeyboardButtonData(
				"Token: "+t.Name, fmt.Sprintf("tenant_connect:%d", t.ID),
			),
			tgbotapi.NewInlineKeyboardButtonData(
				"Rename: "+t.Name, fmt.Sprintf("tenant_rename:%d", t.ID),
			),
			tgbotapi.NewInlineKeyboardButtonData(
				"Deactivate: "+t.Name, fmt.Sprintf("tenant_off:%d", t.ID),
			),
		}
		rows = append(rows, row)
	}

	rows = append(rows,
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("Add tenant", "tenant_add"),
		),
		backRow("tenants"),
	)

	s.replyWithKeyboard(sess, b.String(), tgbotapi.NewInlineKeyboardMarkup(rows...))
}

func (s *Service) deactivateTenant(ctx context.Context, callerID string, sess *session, arg string) {
	if !s.requireSuperAdmin(ctx, callerID, sess) {
		return
	}

	tenantID, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		s.reply(sess, "Invalid tenant reference.")
		return
	}

	if err := s.tenants.DeactivateTenant(ctx, tenantID); err != nil {
		s.logger.Errorf("unable to deactivate tenant %d: %v", tenantID, err)
		s.reply(sess, "Something went wrong, please try again.")
		return
	}

	if sess.tenantID == tenantID {
		sess.tenantID = 0
	}

	s.reply(sess, "Tenant deactivated.")
	s.showAdminPanel(ctx, callerID, sess)
}

func (s *Service) requireSuperAdmin(ctx context.Context, callerID string, sess *session) bool {
	super, err := s.authz.IsSuperAdmin(ctx, callerID)
	if err != nil {
		s.logger.Errorf("super admin check failed for %s: %v", callerID, err)
		s.reply(sess, "Something went wrong, please try again.")
		return false
	}

	if !super {
		s.logger.Security().AccessDenied(callerID, "administration")
		s.reply(sess, "This area is restricted to the operator.")
		return false
	}

	return true
}

func (s *Service) renderDNSError(sess *session, err error) {
	switch {
	case errors.Is(err, dns.ErrNotCached):
		s.reply(sess, notLoadedText)
	case errors.Is(err, dns.ErrZoneNotFound):
		s.reply(sess, "Zone not found in this tenant.")
	default:
		s.reply(sess, fmt.Sprintf("DNS operation failed: %v", err))
	}
}

func (s *Service) renderTunnelError(sess *session, err error) {
	switch {
	case errors.Is(err, tunnels.ErrNotCached):
		s.reply(sess, notLoadedText)
	case errors.Is(err, tunnels.ErrNoAccount):
		s.reply(sess, "No account is known for this tenant, refresh and retry.")
	default:
		s.reply(sess, fmt.Sprintf("Tunnel operation failed: %v", err))
	}
}
