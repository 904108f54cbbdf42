package modules

import (
	cache "github.com/patrickmn/go-cache"

	"github.com/km-arc/go-injector/framework/config"
	"github.com/km-arc/go-injector/framework/injector"
	"github.com/km-arc/go-injector/framework/routing"
)

// ── ConfigModule ─────────────────────────────────────────────────────────────

// ConfigModule loads the application configuration from .env and binds it
// under "config".
type ConfigModule struct {
	injector.BaseModule
	EnvFiles []string
}

func (m *ConfigModule) Register(inj *injector.Injector) error {
	envFiles := m.EnvFiles
	return inj.RegisterSingleton("config", func(*injector.Injector, string) any {
		return config.Load(envFiles...)
	})
}

// ── RoutingModule ────────────────────────────────────────────────────────────

// RoutingModule binds the HTTP router under "router" and installs the
// per-request injector scope during Boot, before any routes exist.
type RoutingModule struct {
	injector.BaseModule
}

func (m *RoutingModule) Register(inj *injector.Injector) error {
	return inj.RegisterSingleton("router", func(*injector.Injector, string) any {
		return routing.New()
	})
}

func (m *RoutingModule) Boot(inj *injector.Injector) error {
	router, err := injector.Resolve[*routing.Router](inj, "router")
	if err != nil {
		return err
	}
	router.Middleware(routing.ScopeMiddleware(inj))
	return nil
}

// ── CacheModule ──────────────────────────────────────────────────────────────

// CacheModule binds an in-memory TTL cache under "cache", with expiry and
// sweep intervals taken from configuration.
type CacheModule struct {
	injector.BaseModule
}

func (m *CacheModule) Register(inj *injector.Injector) error {
	return inj.RegisterSingleton("cache", func(i *injector.Injector, _ string) any {
		cfg := injector.MustResolve[*config.Config](i, "config")
		return cache.New(cfg.Cache.TTL, cfg.Cache.Sweep)
	})
}
