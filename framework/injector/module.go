package injector

import "sync"

// ── Module interface ─────────────────────────────────────────────────────────

// Module groups related mappings behind a two-phase lifecycle: Register binds
// identifiers into the injector, Boot runs after all modules have registered
// and may therefore resolve anything.
//
//	type StoreModule struct{ injector.BaseModule }
//
//	func (m *StoreModule) Register(inj *injector.Injector) error {
//	    return inj.RegisterSingleton("store", func(i *injector.Injector, _ string) any {
//	        return NewMemoryStore()
//	    })
//	}
type Module interface {
	// Register binds mappings into the injector. Do not resolve other
	// identifiers here; use Boot for that.
	Register(inj *Injector) error

	// Boot is called after all modules are registered. Safe to resolve
	// any identifier here.
	Boot(inj *Injector) error

	// Provides lists the identifiers this module registers. Only consulted
	// for deferred modules.
	Provides() []string

	// Deferred reports whether the module should be loaded lazily, on the
	// first resolution of one of its Provides identifiers.
	Deferred() bool
}

// BaseModule is an embeddable no-op implementation of everything but
// Register. Embed it and override what you need.
type BaseModule struct{}

func (BaseModule) Boot(*Injector) error { return nil }
func (BaseModule) Provides() []string   { return nil }
func (BaseModule) Deferred() bool       { return false }

// ── Registry ─────────────────────────────────────────────────────────────────

// Registry manages registration and booting of modules against one injector,
// including deferred (lazy) modules.
type Registry struct {
	inj        *Injector
	eager      []Module
	booted     bool
	registered map[Module]bool
}

// NewRegistry creates a registry bound to inj.
func NewRegistry(inj *Injector) *Registry {
	return &Registry{
		inj:        inj,
		registered: make(map[Module]bool),
	}
}

// Injector returns the injector the registry registers modules into.
func (r *Registry) Injector() *Injector { return r.inj }

// Register adds a module and runs its Register phase, unless the module is
// deferred. Registering the same module instance twice is a no-op.
func (r *Registry) Register(m Module) error {
	if r.registered[m] {
		return nil
	}
	r.registered[m] = true

	if m.Deferred() {
		return r.interceptDeferred(m)
	}

	if err := m.Register(r.inj); err != nil {
		return err
	}
	r.eager = append(r.eager, m)

	// Late registration after Boot: boot the module immediately.
	if r.booted {
		return m.Boot(r.inj)
	}
	return nil
}

// interceptDeferred binds a placeholder mapping for each provided identifier.
// The first resolution registers the module for real — its own mappings
// replace the placeholders — then resolves again on the original requester.
func (r *Registry) interceptDeferred(m Module) error {
	var load sync.Once // the module registers once even with several ids
	for _, id := range m.Provides() {
		err := r.inj.RegisterMapping(id, func(requesting *Injector, matched string) any {
			load.Do(func() {
				if err := m.Register(r.inj); err != nil {
					panic(err)
				}
				if r.booted {
					if err := m.Boot(r.inj); err != nil {
						panic(err)
					}
				} else {
					r.eager = append(r.eager, m)
				}
			})
			return MustResolve[any](requesting, matched)
		})
		if err != nil {
			return err
		}
	}
	return nil
}

// Boot runs the Boot phase on all registered modules, in registration order.
// Must be called after all eager modules have been registered; subsequent
// calls are no-ops.
func (r *Registry) Boot() error {
	if r.booted {
		return nil
	}
	r.booted = true
	for _, m := range r.eager {
		if err := m.Boot(r.inj); err != nil {
			return err
		}
	}
	return nil
}

// Booted reports whether Boot has run.
func (r *Registry) Booted() bool { return r.booted }

// Modules returns the modules whose Register phase has run.
func (r *Registry) Modules() []Module { return r.eager }
