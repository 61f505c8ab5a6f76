// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package bot

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/canonical/dns-tenant-bot/internal/types"
)

// handleText advances whatever multi-step conversation the user is in.
// Outside of a flow, free text is looked up as a zone reference.
func (s *Service) handleText(ctx context.Context, callerID string, sess *session, msg *tgbotapi.Message) {
	ctx, span := s.tracer.Start(ctx, "bot.Service.handleText")
	defer span.End()

	text := strings.TrimSpace(msg.Text)
	if text == "" {
		return
	}

	switch sess.flow {
	case flowNone:
		s.lookupZone(ctx, callerID, sess, text)
	case flowCreateTenantName:
		sess.draftName = text
		sess.flow = flowCreateTenantAdmin
		s.reply(sess, "Telegram user id of the tenant admin:")
	case flowCreateTenantAdmin:
		sess.draftAdminID = text
		sess.flow = flowCreateTenantDescription
		s.reply(sess, "Short description (or \"-\" for none):")
	case flowCreateTenantDescription:
		s.finishTenantFlow(ctx, callerID, sess, text)
	case flowConnectTenantToken:
		s.finishConnectFlow(ctx, callerID, sess, text)
	case flowRenameTenant:
		s.finishRenameFlow(ctx, callerID, sess, text)
	case flowRecordType:
		sess.draftRecord.Type = strings.ToUpper(text)
		sess.flow = flowRecordName
		s.reply(sess, "Record name (e.g. www.example.com):")
	case flowRecordName:
		sess.draftRecord.Name = text
		sess.flow = flowRecordContent
		s.reply(sess, "Record content (e.g. an IP address):")
	case flowRecordContent:
		sess.draftRecord.Content = text
		// MX and SRV records carry a priority the provider requires.
		if t := sess.draftRecord.Type; t == "MX" || t == "SRV" {
			sess.flow = flowRecordPriority
			s.reply(sess, "Record priority (0-65535):")
			return
		}
		sess.flow = flowRecordTTL
		s.reply(sess, "TTL in seconds (or \"auto\"):")
	case flowRecordPriority:
		priority, err := strconv.ParseUint(text, 10, 16)
		if err != nil {
			s.reply(sess, "Priority must be a number between 0 and 65535:")
			return
		}
		p := uint16(priority)
		sess.draftRecord.Priority = &p
		sess.flow = flowRecordTTL
		s.reply(sess, "TTL in seconds (or \"auto\"):")
	case flowRecordTTL:
		s.finishRecordFlow(ctx, callerID, sess, text)
	case flowRecordEditContent:
		s.finishEditRecordFlow(ctx, callerID, sess, text)
	case flowTunnelName:
		s.finishTunnelFlow(ctx, callerID, sess, text)
	}
}

func (s *Service) startTenantFlow(ctx context.Context, callerID string, sess *session) {
	if !s.requireSuperAdmin(ctx, callerID, sess) {
		return
	}

	sess.resetFlow()
	sess.flow = flowCreateTenantName

	s.reply(sess, "Name of the new tenant:")
}

func (s *Service) finishTenantFlow(ctx context.Context, callerID string, sess *session, text string) {
	description := text
	if description == "-" {
		description = ""
	}

	tenant, err := s.tenants.CreateTenant(ctx, sess.draftName, sess.draftAdminID, description)

	sess.resetFlow()

	if err != nil {
		s.logger.Errorf("unable to create tenant: %v", err)
		s.reply(sess, fmt.Sprintf("Tenant creation failed: %v", err))
		return
	}

	s.reply(sess, fmt.Sprintf("Tenant <b>%s</b> created with id %d. Attach an API token to connect it.", tenant.Name, tenant.ID))
	s.showAdminPanel(ctx, callerID, sess)
}

func (s *Service) startConnectFlow(ctx context.Context, callerID string, sess *session, arg string) {
	if !s.requireSuperAdmin(ctx, callerID, sess) {
		return
	}

	tenantID, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		s.reply(sess, "Invalid tenant reference.")
		return
	}

	sess.resetFlow()
	sess.flow = flowConnectTenantToken
	sess.draftTenantID = tenantID

	s.reply(sess, "Paste the Cloudflare API token for this tenant:")
}

func (s *Service) finishConnectFlow(ctx context.Context, callerID string, sess *session, token string) {
	tenantID := sess.draftTenantID

	sess.resetFlow()

	if err := s.tenants.ConnectTenant(ctx, tenantID, token); err != nil {
		s.logger.Errorf("unable to attach token to tenant %d: %v", tenantID, err)
		s.reply(sess, fmt.Sprintf("Token attach failed: %v", err))
		return
	}

	s.reply(sess, "Token attached. Resources will be fetched on the next refresh.")
	s.showAdminPanel(ctx, callerID, sess)
}

func (s *Service) startRenameFlow(ctx context.Context, callerID string, sess *session, arg string) {
	if !s.requireSuperAdmin(ctx, callerID, sess) {
		return
	}

	tenantID, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		s.reply(sess, "Invalid tenant reference.")
		return
	}

	sess.resetFlow()
	sess.flow = flowRenameTenant
	sess.draftTenantID = tenantID

	s.reply(sess, "New name for the tenant:")
}

func (s *Service) finishRenameFlow(ctx context.Context, callerID string, sess *session, name string) {
	tenantID := sess.draftTenantID

	sess.resetFlow()

	tenant, err := s.tenants.UpdateTenant(ctx, &types.Tenant{ID: tenantID, Name: name}, []string{"name"})
	if err != nil {
		s.logger.Errorf("unable to rename tenant %d: %v", tenantID, err)
		s.reply(sess, fmt.Sprintf("Tenant rename failed: %v", err))
		return
	}

	s.reply(sess, fmt.Sprintf("Tenant renamed to <b>%s</b>.", tenant.Name))
	s.showAdminPanel(ctx, callerID, sess)
}

func (s *Service) startRecordFlow(ctx context.Context, callerID string, sess *session, zoneID string) {
	if !s.requireTenantAccess(ctx, callerID, sess) {
		return
	}

	sess.resetFlow()
	sess.flow = flowRecordType
	sess.draftZoneID = zoneID

	s.reply(sess, "Record type (A, AAAA, CNAME, TXT, MX):")
}

func (s *Service) finishRecordFlow(ctx context.Context, callerID string, sess *session, text string) {
	record := sess.draftRecord
	record.ZoneID = sess.draftZoneID
	zoneID := sess.draftZoneID

	// Cloudflare treats TTL 1 as automatic.
	record.TTL = 1
	if text != "auto" {
		ttl, err := strconv.Atoi(text)
		if err != nil || ttl < 1 {
			s.reply(sess, "TTL must be a positive number of seconds or \"auto\":")
			return
		}
		record.TTL = ttl
	}

	sess.resetFlow()

	created, err := s.dns.CreateRecord(ctx, sess.tenantID, record)
	if err != nil {
		s.renderDNSError(sess, err)
		return
	}

	s.reply(sess, fmt.Sprintf("Record <code>%s %s</code> created.", created.Type, created.Name))
	s.showRecords(ctx, callerID, sess, zoneID)
}

func (s *Service) startEditRecordFlow(ctx context.Context, callerID string, sess *session, arg string) {
	if !s.requireTenantAccess(ctx, callerID, sess) {
		return
	}

	zoneID, recordID, ok := strings.Cut(arg, ":")
	if !ok {
		s.reply(sess, "Invalid record reference.")
		return
	}

	records, err := s.dns.ListRecords(ctx, sess.tenantID, zoneID)
	if err != nil {
		s.renderDNSError(sess, err)
		return
	}

	sess.resetFlow()
	for _, r := range records {
		if r.ID == recordID {
			sess.flow = flowRecordEditContent
			sess.draftZoneID = zoneID
			sess.draftRecord = r

			s.reply(sess, fmt.Sprintf("New content for <code>%s %s</code>:", r.Type, r.Name))
			return
		}
	}

	s.reply(sess, "Record not found, refresh the list and retry.")
}

func (s *Service) finishEditRecordFlow(ctx context.Context, callerID string, sess *session, text string) {
	record := sess.draftRecord
	record.ZoneID = sess.draftZoneID
	record.Content = text
	zoneID := sess.draftZoneID

	sess.resetFlow()

	updated, err := s.dns.UpdateRecord(ctx, sess.tenantID, record)
	if err != nil {
		s.renderDNSError(sess, err)
		return
	}

	s.reply(sess, fmt.Sprintf("Record <code>%s %s</code> updated.", updated.Type, updated.Name))
	s.showRecords(ctx, callerID, sess, zoneID)
}

func (s *Service) startTunnelFlow(ctx context.Context, callerID string, sess *session) {
	if !s.requireTenantAccess(ctx, callerID, sess) {
		return
	}

	sess.resetFlow()
	sess.flow = flowTunnelName

	s.reply(sess, "Name of the new tunnel:")
}

func (s *Service) finishTunnelFlow(ctx context.Context, callerID string, sess *session, name string) {
	sess.resetFlow()

	tunnel, err := s.tunnels.CreateTunnel(ctx, sess.tenantID, name)
	if err != nil {
		s.renderTunnelError(sess, err)
		return
	}

	s.reply(sess, fmt.Sprintf("Tunnel <b>%s</b> created with id <code>%s</code>.", tunnel.Name, tunnel.ID))
	s.showTunnels(ctx, callerID, sess)
}
