// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Wicket Proxy Authors

package service

import (
	"github.com/wicket-proxy/wicket/internal/cache"
	"github.com/wicket-proxy/wicket/internal/config"
	"github.com/wicket-proxy/wicket/internal/logger"
	"github.com/wicket-proxy/wicket/internal/store"
	"github.com/wicket-proxy/wicket/internal/utils"
)

type Services struct {
	SessionService SessionService
	AuthService    AuthService
	UserService    UserService
}

func NewServices(storages *store.Storages, sessions cache.Cache, cfg *config.StructuredConfig, logger *logger.Logger) *Services {
	sessionService := NewSessionService(sessions, utils.NewCodec(cfg.App.SigningSecret), logger)

	return &Services{
		SessionService: sessionService,
		AuthService:    NewAuthService(storages.UserRepository, sessionService, logger),
		UserService:    NewUserService(storages.UserRepository, sessionService, logger),
	}
}
