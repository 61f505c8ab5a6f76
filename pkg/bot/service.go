// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package bot implements the Telegram front end. A single dispatcher
// goroutine consumes updates in order and routes them to command,
// callback and conversation handlers.
package bot

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/canonical/dns-tenant-bot/internal/logging"
	"github.com/canonical/dns-tenant-bot/internal/monitoring"
	"github.com/canonical/dns-tenant-bot/internal/tracing"
)

type Service struct {
	api TelegramInterface

	authz   AuthzInterface
	tenants TenantServiceInterface
	dns     DNSServiceInterface
	tunnels TunnelServiceInterface
	cache   CacheInterface

	sessions map[int64]*session

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// Run consumes the update channel until ctx is cancelled. Updates are
// handled one at a time so conversation state needs no locking.
func (s *Service) Run(ctx context.Context) error {
	cfg := tgbotapi.NewUpdate(0)
	cfg.Timeout = 30

	updates := s.api.GetUpdatesChan(cfg)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case update, ok := <-updates:
			if !ok {
				return nil
			}

			s.dispatch(ctx, update)
		}
	}
}

func (s *Service) dispatch(ctx context.Context, update tgbotapi.Update) {
	ctx, span := s.tracer.Start(ctx, "bot.Service.dispatch")
	defer span.End()

	from := update.SentFrom()
	if from == nil {
		return
	}

	callerID := strconv.FormatInt(from.ID, 10)
	sess := s.session(from.ID)

	switch {
	case update.CallbackQuery != nil:
		sess.chatID = update.CallbackQuery.Message.Chat.ID
		s.handleCallback(ctx, callerID, sess, update.CallbackQuery)
	case update.Message != nil && update.Message.IsCommand():
		sess.chatID = update.Message.Chat.ID
		s.handleCommand(ctx, callerID, sess, update.Message)
	case update.Message != nil:
		sess.chatID = update.Message.Chat.ID
		s.handleText(ctx, callerID, sess, update.Message)
	}
}

func (s *Service) session(userID int64) *session {
	sess, ok := s.sessions[userID]
	if !ok {
		sess = new(session)
		s.sessions[userID] = sess
	}

	return sess
}

func (s *Service) reply(sess *session, text string) {
	msg := tgbotapi.NewMessage(sess.chatID, text)
	msg.ParseMode = tgbotapi.ModeHTML

	if _, err := s.api.Send(msg); err != nil {
		s.logger.Errorf("unable to send message to chat %v: %v", sess.chatID, err)
	}
}

func (s *Service) replyWithKeyboard(sess *session, text string, keyboard tgbotapi.InlineKeyboardMarkup) {
	msg := tgbotapi.NewMessage(sess.chatID, text)
	msg.ParseMode = tgbotapi.ModeHTML
	msg.ReplyMarkup = keyboard

	if _, err := s.api.Send(msg); err != nil {
		s.logger.Errorf("unable to send message to chat %v: %v", sess.chatID, err)
	}
}

func (s *Service) ack(callback *tgbotapi.CallbackQuery) {
	if _, err := s.api.Request(tgbotapi.NewCallback(callback.ID, "")); err != nil {
		s.logger.Debugf("unable to ack callback %s: %v", callback.ID, err)
	}
}

// requireTenantAccess resolves the caller's permission on the session's
// current tenant, rendering the denial itself when access is missing.
func (s *Service) requireTenantAccess(ctx context.Context, callerID string, sess *session) bool {
	if sess.tenantID == 0 {
		s.reply(sess, "No tenant selected. Use /start to pick one.")
		return false
	}

	allowed, err := s.authz.HasAccess(ctx, callerID, sess.tenantID)
	if err != nil {
		s.logger.Errorf("access check failed for caller %s: %v", callerID, err)
		s.reply(sess, "Something went wrong, please try again.")
		return false
	}

	if !allowed {
		s.logger.Security().AccessDenied(callerID, fmt.Sprintf("tenant %d", sess.tenantID))
		s.reply(sess, "You don't have access to this tenant.")
		return false
	}

	return true
}

func parseCallbackArg(data, prefix string) string {
	return strings.TrimPrefix(data, prefix)
}

func NewService(
	api TelegramInterface,
	authz AuthzInterface,
	tenants TenantServiceInterface,
	dns DNSServiceInterface,
	tunnels TunnelServiceInterface,
	cache CacheInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	s := new(Service)

	s.api = api
	s.authz = authz
	s.tenants = tenants
	s.dns = dns
	s.tunnels = tunnels
	s.cache = cache
	s.sessions = make(map[int64]*session)

	s.tracer = tracer
	s.monitor = monitor
	s.logger = logger

	return s
}
