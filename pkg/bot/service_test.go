// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package bot

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"

	"github.com/canonical/dns-tenant-bot/internal/logging"
	"github.com/canonical/dns-tenant-bot/internal/tenantcache"
	"github.com/canonical/dns-tenant-bot/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package bot -destination ./mock_bot.go -source=./interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package bot -destination ./mock_logger.go -source=../../internal/logging/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package bot -destination ./mock_monitor.go -source=../../internal/monitoring/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package bot -destination ./mock_tracing.go -source=../../internal/tracing/interfaces.go

type fixture struct {
	service *Service

	api     *MockTelegramInterface
	authz   *MockAuthzInterface
	tenants *MockTenantServiceInterface
	dns     *MockDNSServiceInterface
	tunnels *MockTunnelServiceInterface
	cache   *MockCacheInterface
	logger  *MockLoggerInterface

	sent *[]string
}

func setupFixture(t *testing.T) *fixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	f := &fixture{
		api:     NewMockTelegramInterface(ctrl),
		authz:   NewMockAuthzInterface(ctrl),
		tenants: NewMockTenantServiceInterface(ctrl),
		dns:     NewMockDNSServiceInterface(ctrl),
		tunnels: NewMockTunnelServiceInterface(ctrl),
		cache:   NewMockCacheInterface(ctrl),
		logger:  NewMockLoggerInterface(ctrl),
	}

	mockTracer := NewMockTracingInterface(ctrl)
	mockTracer.EXPECT().Start(gomock.Any(), gomock.Any()).
		Return(context.Background(), trace.SpanFromContext(context.Background())).AnyTimes()

	mockMonitor := NewMockMonitorInterface(ctrl)

	sent := []string{}
	f.sent = &sent
	f.api.EXPECT().Send(gomock.Any()).DoAndReturn(
		func(c tgbotapi.Chattable) (tgbotapi.Message, error) {
			if msg, ok := c.(tgbotapi.MessageConfig); ok {
				sent = append(sent, msg.Text)
			}
			return tgbotapi.Message{}, nil
		}).AnyTimes()

	f.service = NewService(f.api, f.authz, f.tenants, f.dns, f.tunnels, f.cache, mockTracer, mockMonitor, f.logger)

	return f
}

func (f *fixture) lastSent(t *testing.T) string {
	t.Helper()

	if len(*f.sent) == 0 {
		t.Fatal("expected at least one outgoing message")
	}
	return (*f.sent)[len(*f.sent)-1]
}

func commandUpdate(userID, chatID int64, command string) tgbotapi.Update {
	return tgbotapi.Update{
		Message: &tgbotapi.Message{
			MessageID: 1,
			From:      &tgbotapi.User{ID: userID},
			Chat:      &tgbotapi.Chat{ID: chatID},
			Text:      "/" + command,
			Entities:  []tgbotapi.MessageEntity{{Type: "bot_command", Offset: 0, Length: len(command) + 1}},
		},
	}
}

func callbackUpdate(userID, chatID int64, data string) tgbotapi.Update {
	return tgbotapi.Update{
		CallbackQuery: &tgbotapi.CallbackQuery{
			ID:      "cb1",
			From:    &tgbotapi.User{ID: userID},
			Message: &tgbotapi.Message{Chat: &tgbotapi.Chat{ID: chatID}},
			Data:    data,
		},
	}
}

func textUpdate(userID, chatID int64, text string) tgbotapi.Update {
	return tgbotapi.Update{
		Message: &tgbotapi.Message{
			MessageID: 1,
			From:      &tgbotapi.User{ID: userID},
			Chat:      &tgbotapi.Chat{ID: chatID},
			Text:      text,
		},
	}
}

func TestService_StartShowsTenantPicker(t *testing.T) {
	f := setupFixture(t)

	f.authz.EXPECT().IsSuperAdmin(gomock.Any(), "100").Return(false, nil)
	f.tenants.EXPECT().ListTenantsFor(gomock.Any(), "100").
		Return([]*types.Tenant{{ID: 7, Name: "acme", APIToken: "tok_abc"}}, nil)

	f.service.dispatch(context.Background(), commandUpdate(100, 500, "start"))

	if got := f.lastSent(t); got != "Select a tenant:" {
		t.Errorf("unexpected reply %q", got)
	}
}

func TestService_StartWithoutAnyAccess(t *testing.T) {
	f := setupFixture(t)

	f.authz.EXPECT().IsSuperAdmin(gomock.Any(), "100").Return(false, nil)
	f.tenants.EXPECT().ListTenantsFor(gomock.Any(), "100").Return([]*types.Tenant{}, nil)

	f.service.dispatch(context.Background(), commandUpdate(100, 500, "start"))

	if got := f.lastSent(t); !strings.Contains(got, "don't have access") {
		t.Errorf("unexpected reply %q", got)
	}
}

func TestService_SelectTenantDenied(t *testing.T) {
	f := setupFixture(t)

	f.api.EXPECT().Request(gomock.Any()).Return(&tgbotapi.APIResponse{Ok: true}, nil)
	f.authz.EXPECT().HasAccess(gomock.Any(), "100", int64(7)).Return(false, nil)
	f.logger.EXPECT().Security().Return(logging.NewNoopLogger().Security())

	f.service.dispatch(context.Background(), callbackUpdate(100, 500, "tenant:7"))

	if got := f.lastSent(t); !strings.Contains(got, "don't have access") {
		t.Errorf("unexpected reply %q", got)
	}

	if f.service.sessions[100].tenantID != 0 {
		t.Error("denied caller must not get the tenant selected")
	}
}

func TestService_RefreshSurfacesUpstreamError(t *testing.T) {
	f := setupFixture(t)

	f.service.session(100).tenantID = 7

	f.api.EXPECT().Request(gomock.Any()).Return(&tgbotapi.APIResponse{Ok: true}, nil)
	f.authz.EXPECT().HasAccess(gomock.Any(), "100", int64(7)).Return(true, nil)
	f.cache.EXPECT().Refresh(gomock.Any(), int64(7)).
		Return(fmt.Errorf("%w: 403 authentication error", tenantcache.ErrUpstreamListing))

	f.service.dispatch(context.Background(), callbackUpdate(100, 500, "refresh"))

	got := f.lastSent(t)
	if !strings.Contains(got, "Refresh failed") || !strings.Contains(got, "403 authentication error") {
		t.Errorf("upstream message must be surfaced verbatim, got %q", got)
	}
}

func TestService_AdminPanelRestricted(t *testing.T) {
	f := setupFixture(t)

	f.api.EXPECT().Request(gomock.Any()).Return(&tgbotapi.APIResponse{Ok: true}, nil)
	f.authz.EXPECT().IsSuperAdmin(gomock.Any(), "200").Return(false, nil)
	f.logger.EXPECT().Security().Return(logging.NewNoopLogger().Security())

	f.service.dispatch(context.Background(), callbackUpdate(200, 500, "admin"))

	if got := f.lastSent(t); !strings.Contains(got, "restricted") {
		t.Errorf("unexpected reply %q", got)
	}
}

func TestService_TenantCreationFlow(t *testing.T) {
	f := setupFixture(t)

	f.api.EXPECT().Request(gomock.Any()).Return(&tgbotapi.APIResponse{Ok: true}, nil)
	f.authz.EXPECT().IsSuperAdmin(gomock.Any(), "100").Return(true, nil).Times(2)

	f.tenants.EXPECT().CreateTenant(gomock.Any(), "acme", "200", "a test tenant").
		Return(&types.Tenant{ID: 7, Name: "acme", AdminUserID: "200"}, nil)
	// The admin panel re-renders after the flow finishes.
	f.tenants.EXPECT().ListTenantsFor(gomock.Any(), "").
		Return([]*types.Tenant{{ID: 7, Name: "acme", AdminUserID: "200"}}, nil)

	f.service.dispatch(context.Background(), callbackUpdate(100, 500, "tenant_add"))
	f.service.dispatch(context.Background(), textUpdate(100, 500, "acme"))
	f.service.dispatch(context.Background(), textUpdate(100, 500, "200"))
	f.service.dispatch(context.Background(), textUpdate(100, 500, "a test tenant"))

	var sawCreated bool
	for _, msg := range *f.sent {
		if strings.Contains(msg, "created with id 7") {
			sawCreated = true
		}
	}
	if !sawCreated {
		t.Errorf("expected a creation confirmation, got %v", *f.sent)
	}

	if f.service.sessions[100].flow != flowNone {
		t.Error("flow must reset after completion")
	}
}

func TestService_ConnectTenantFlow(t *testing.T) {
	f := setupFixture(t)

	f.api.EXPECT().Request(gomock.Any()).Return(&tgbotapi.APIResponse{Ok: true}, nil)
	f.authz.EXPECT().IsSuperAdmin(gomock.Any(), "100").Return(true, nil).Times(2)

	f.tenants.EXPECT().ConnectTenant(gomock.Any(), int64(7), "tok_abc").Return(nil)
	f.tenants.EXPECT().ListTenantsFor(gomock.Any(), "").Return([]*types.Tenant{}, nil)

	f.service.dispatch(context.Background(), callbackUpdate(100, 500, "tenant_connect:7"))
	f.service.dispatch(context.Background(), textUpdate(100, 500, "tok_abc"))

	var sawAttached bool
	for _, msg := range *f.sent {
		if strings.Contains(msg, "Token attached") {
			sawAttached = true
		}
	}
	if !sawAttached {
		t.Errorf("expected a token confirmation, got %v", *f.sent)
	}
}

func TestService_RecordCreationFlow(t *testing.T) {
	uint16Ptr := func(v uint16) *uint16 { return &v }

	testCases := []struct {
		name         string
		inputs       []string
		wantType     string
		wantTTL      int
		wantPriority *uint16
	}{
		{
			name:     "a record skips the priority step",
			inputs:   []string{"a", "www.acme.com", "198.51.100.7", "auto"},
			wantType: "A",
			wantTTL:  1,
		},
		{
			name:         "mx record collects a priority",
			inputs:       []string{"mx", "acme.com", "mail.acme.com", "10", "300"},
			wantType:     "MX",
			wantTTL:      300,
			wantPriority: uint16Ptr(10),
		},
		{
			name:         "invalid priority is re-prompted",
			inputs:       []string{"srv", "_sip._tcp.acme.com", "sip.acme.com", "high", "70000", "5", "auto"},
			wantType:     "SRV",
			wantTTL:      1,
			wantPriority: uint16Ptr(5),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			f := setupFixture(t)
			f.service.session(100).tenantID = 7

			f.api.EXPECT().Request(gomock.Any()).Return(&tgbotapi.APIResponse{Ok: true}, nil)
			f.authz.EXPECT().HasAccess(gomock.Any(), "100", int64(7)).Return(true, nil).AnyTimes()

			var created types.DNSRecord
			f.dns.EXPECT().CreateRecord(gomock.Any(), int64(7), gomock.Any()).DoAndReturn(
				func(_ context.Context, _ int64, record types.DNSRecord) (*types.DNSRecord, error) {
					created = record
					return &record, nil
				})
			f.dns.EXPECT().ListRecords(gomock.Any(), int64(7), "z1").Return([]types.DNSRecord{}, nil)

			f.service.dispatch(context.Background(), callbackUpdate(100, 500, "dns_add:z1"))
			for _, input := range tc.inputs {
				f.service.dispatch(context.Background(), textUpdate(100, 500, input))
			}

			if created.Type != tc.wantType {
				t.Errorf("expected a %s record, got %q", tc.wantType, created.Type)
			}
			if created.ZoneID != "z1" {
				t.Errorf("unexpected zone %q", created.ZoneID)
			}
			if created.TTL != tc.wantTTL {
				t.Errorf("expected ttl %d, got %d", tc.wantTTL, created.TTL)
			}
			switch {
			case tc.wantPriority == nil && created.Priority != nil:
				t.Errorf("unexpected priority %d", *created.Priority)
			case tc.wantPriority != nil && (created.Priority == nil || *created.Priority != *tc.wantPriority):
				t.Errorf("expected priority %d, got %v", *tc.wantPriority, created.Priority)
			}
		})
	}
}

func TestService_ZoneLookupByName(t *testing.T) {
	f := setupFixture(t)

	f.service.session(100).tenantID = 7

	f.authz.EXPECT().HasAccess(gomock.Any(), "100", int64(7)).Return(true, nil).Times(2)
	f.dns.EXPECT().ResolveZone(gomock.Any(), int64(7), "acme.com").
		Return(&types.Zone{ID: "z1", Name: "acme.com"}, nil)
	f.dns.EXPECT().ListRecords(gomock.Any(), int64(7), "z1").
		Return([]types.DNSRecord{{ID: "r1", Type: "A", Name: "www.acme.com", Content: "198.51.100.7"}}, nil)

	f.service.dispatch(context.Background(), textUpdate(100, 500, "acme.com"))

	if got := f.lastSent(t); !strings.Contains(got, "www.acme.com") {
		t.Errorf("unexpected reply %q", got)
	}
}

func TestService_ZoneLookupWithoutTenantIgnored(t *testing.T) {
	f := setupFixture(t)

	f.service.dispatch(context.Background(), textUpdate(100, 500, "acme.com"))

	if len(*f.sent) != 0 {
		t.Errorf("free text without a tenant must be ignored, got %v", *f.sent)
	}
}

func TestService_EditRecordFlow(t *testing.T) {
	f := setupFixture(t)

	f.service.session(100).tenantID = 7

	f.api.EXPECT().Request(gomock.Any()).Return(&tgbotapi.APIResponse{Ok: true}, nil)
	f.authz.EXPECT().HasAccess(gomock.Any(), "100", int64(7)).Return(true, nil).AnyTimes()

	// Listed once to resolve the record, once re-rendering after the update.
	f.dns.EXPECT().ListRecords(gomock.Any(), int64(7), "z1").
		Return([]types.DNSRecord{{ID: "r1", Type: "A", Name: "www.acme.com", Content: "198.51.100.7", TTL: 300}}, nil).
		Times(2)
	f.dns.EXPECT().UpdateRecord(gomock.Any(), int64(7), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ int64, record types.DNSRecord) (*types.DNSRecord, error) {
			if record.ID != "r1" || record.ZoneID != "z1" || record.Content != "203.0.113.9" {
				t.Errorf("unexpected update payload %+v", record)
			}
			return &record, nil
		})

	f.service.dispatch(context.Background(), callbackUpdate(100, 500, "dns_edit:z1:r1"))
	f.service.dispatch(context.Background(), textUpdate(100, 500, "203.0.113.9"))

	var sawUpdated bool
	for _, msg := range *f.sent {
		if strings.Contains(msg, "updated") {
			sawUpdated = true
		}
	}
	if !sawUpdated {
		t.Errorf("expected an update confirmation, got %v", *f.sent)
	}
}

func TestService_RenameTenantFlow(t *testing.T) {
	f := setupFixture(t)

	f.api.EXPECT().Request(gomock.Any()).Return(&tgbotapi.APIResponse{Ok: true}, nil)
	f.authz.EXPECT().IsSuperAdmin(gomock.Any(), "100").Return(true, nil).Times(2)

	f.tenants.EXPECT().UpdateTenant(gomock.Any(), gomock.Any(), []string{"name"}).DoAndReturn(
		func(_ context.Context, tenant *types.Tenant, _ []string) (*types.Tenant, error) {
			if tenant.ID != 7 || tenant.Name != "globex" {
				t.Errorf("unexpected rename payload %+v", tenant)
			}
			return tenant, nil
		})
	f.tenants.EXPECT().ListTenantsFor(gomock.Any(), "").
		Return([]*types.Tenant{{ID: 7, Name: "globex", AdminUserID: "200"}}, nil)

	f.service.dispatch(context.Background(), callbackUpdate(100, 500, "tenant_rename:7"))
	f.service.dispatch(context.Background(), textUpdate(100, 500, "globex"))

	var sawRenamed bool
	for _, msg := range *f.sent {
		if strings.Contains(msg, "renamed to") {
			sawRenamed = true
		}
	}
	if !sawRenamed {
		t.Errorf("expected a rename confirmation, got %v", *f.sent)
	}
}

func TestService_ShowDomainsNotLoaded(t *testing.T) {
	f := setupFixture(t)

	f.service.session(100).tenantID = 7

	f.api.EXPECT().Request(gomock.Any()).Return(&tgbotapi.APIResponse{Ok: true}, nil)
	f.authz.EXPECT().HasAccess(gomock.Any(), "100", int64(7)).Return(true, nil)
	f.cache.EXPECT().Get(int64(7)).Return(nil, false)

	f.service.dispatch(context.Background(), callbackUpdate(100, 500, "domains"))

	if got := f.lastSent(t); got != notLoadedText {
		t.Errorf("unexpected reply %q", got)
	}
}

func TestService_TunnelErrorsRendered(t *testing.T) {
	f := setupFixture(t)

	f.service.session(100).tenantID = 7

	f.api.EXPECT().Request(gomock.Any()).Return(&tgbotapi.APIResponse{Ok: true}, nil)
	f.authz.EXPECT().HasAccess(gomock.Any(), "100", int64(7)).Return(true, nil)
	f.tunnels.EXPECT().ListTunnels(gomock.Any(), int64(7)).Return(nil, errors.New("api error"))

	f.service.dispatch(context.Background(), callbackUpdate(100, 500, "tunnels"))

	if got := f.lastSent(t); !strings.Contains(got, "Tunnel operation failed") {
		t.Errorf("unexpected reply %q", got)
	}
}
