// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package bot

import "github.com/canonical/dns-tenant-bot/internal/types"

type flow int

const (
	flowNone flow = iota
	flowCreateTenantName
	flowCreateTenantAdmin
	flowCreateTenantDescription
	flowConnectTenantToken
	flowRenameTenant
	flowRecordType
	flowRecordName
	flowRecordContent
	flowRecordPriority
	flowRecordTTL
	flowRecordEditContent
	flowTunnelName
)

// session carries per-user conversation state. The dispatcher processes
// updates sequentially, so sessions are never accessed concurrently.
type session struct {
	chatID   int64
	tenantID int64

	flow flow

	draftName     string
	draftAdminID  string
	draftTenantID int64
	draftZoneID   string
	draftRecord   types.DNSRecord
}

func (s *session) resetFlow() {
	s.flow = flowNone
	s.draftName = ""
	s.draftAdminID = ""
	s.draftTenantID = 0
	s.draftZoneID = ""
	s.draftRecord = types.DNSRecord{}
}
