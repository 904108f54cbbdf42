package app

import (
	"fmt"
	"net/http"

	cache "github.com/patrickmn/go-cache"

	"github.com/km-arc/go-injector/framework/config"
	"github.com/km-arc/go-injector/framework/injector"
	"github.com/km-arc/go-injector/framework/modules"
	"github.com/km-arc/go-injector/framework/routing"
)

// Application is the top-level kernel. It embeds the root injector so user
// code can call app.RegisterSingleton(), app.Resolve(), app.Child() directly.
type Application struct {
	*injector.Injector
	Modules *injector.Registry
}

// New creates and bootstraps the application: a labeled root injector plus
// the framework core modules (config, routing, cache). Call Boot (or Run,
// which boots on demand) before registering routes.
func New(envFiles ...string) *Application {
	root := injector.New(injector.WithLabel("app"))
	registry := injector.NewRegistry(root)

	a := &Application{
		Injector: root,
		Modules:  registry,
	}

	must(registry.Register(&modules.ConfigModule{EnvFiles: envFiles}))
	must(registry.Register(&modules.RoutingModule{}))
	must(registry.Register(&modules.CacheModule{}))

	return a
}

// RegisterModule adds a module to the application.
func (a *Application) RegisterModule(m injector.Module) error {
	return a.Modules.Register(m)
}

// Boot runs the Boot phase on all registered modules.
func (a *Application) Boot() error {
	return a.Modules.Boot()
}

// Config resolves *config.Config from the injector.
func (a *Application) Config() *config.Config {
	return injector.MustResolve[*config.Config](a.Injector, "config")
}

// Router resolves *routing.Router from the injector.
func (a *Application) Router() *routing.Router {
	return injector.MustResolve[*routing.Router](a.Injector, "router")
}

// Cache resolves the shared TTL cache from the injector.
func (a *Application) Cache() *cache.Cache {
	return injector.MustResolve[*cache.Cache](a.Injector, "cache")
}

// Run boots the application (if needed) and starts the HTTP server on
// APP_PORT.
func (a *Application) Run() error {
	if !a.Modules.Booted() {
		if err := a.Boot(); err != nil {
			return err
		}
	}
	cfg := a.Config()
	addr := ":" + cfg.App.Port
	fmt.Printf("🚀  %s running on http://localhost%s  [%s]\n",
		cfg.App.Name, addr, cfg.App.Env)
	return http.ListenAndServe(addr, a.Router())
}

// Environment returns the APP_ENV value.
func (a *Application) Environment() string { return a.Config().App.Env }
func (a *Application) IsLocal() bool       { return a.Environment() == "local" }
func (a *Application) IsProduction() bool  { return a.Environment() == "production" }
func (a *Application) IsTesting() bool     { return a.Environment() == "testing" }
func (a *Application) IsDebug() bool       { return a.Config().App.Debug }

func must(err error) {
	if err != nil {
		panic(err)
	}
}
