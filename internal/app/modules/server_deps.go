package modules

import (
	"etree.io/etree/internal/api/handlers"
	"etree.io/etree/internal/api/middleware"
	"etree.io/etree/internal/config"
)

// NewServerDeps builds base server deps then lets each module contribute explicit wiring.
func NewServerDeps(cfg *config.Config, infra *Infrastructure, mods []Module) handlers.ServerDeps {
	deps := handlers.ServerDeps{
		EntClient: infra.EntClient,
		JWTCfg: middleware.JWTConfig{
			SigningKey: []byte(cfg.Auth.JWTSecret),
			Issuer:     "etree",
			ExpiresIn:  cfg.Auth.TokenLifetime,
			Cookie:     cfg.Auth.Cookie,
		},
		CookieSecure: cfg.Auth.CookieSecure,
		CookieDomain: cfg.Auth.CookieDomain,
	}
	for _, mod := range mods {
		if mod == nil {
			continue
		}
		mod.ContributeServerDeps(&deps)
	}
	return deps
}
