package injector_test

import (
	"testing"

	"github.com/km-arc/go-injector/framework/injector"
)

// ── stub modules ─────────────────────────────────────────────────────────────

type eagerModule struct {
	injector.BaseModule
	registerCalled bool
	bootCalled     bool
}

func (m *eagerModule) Register(inj *injector.Injector) error {
	m.registerCalled = true
	return inj.RegisterSingleton("eager-svc", func(*injector.Injector, string) any { return "eager" })
}

func (m *eagerModule) Boot(inj *injector.Injector) error {
	m.bootCalled = true
	return nil
}

// deferredModule is lazy — only registered when "deferred-svc" is first resolved.
type deferredModule struct {
	injector.BaseModule
	registerCalled bool
}

func (m *deferredModule) Register(inj *injector.Injector) error {
	m.registerCalled = true
	return inj.RegisterSingleton("deferred-svc", func(*injector.Injector, string) any { return "deferred-value" })
}

func (m *deferredModule) Deferred() bool     { return true }
func (m *deferredModule) Provides() []string { return []string{"deferred-svc"} }

// ── Registry ─────────────────────────────────────────────────────────────────

func TestRegistry_EagerModule_RegisterCalled(t *testing.T) {
	reg := injector.NewRegistry(injector.New())

	m := &eagerModule{}
	if err := reg.Register(m); err != nil {
		t.Fatalf("Register: %v", err)
	}

	if !m.registerCalled {
		t.Error("Register() should be called immediately for eager modules")
	}
}

func TestRegistry_EagerModule_BootCalledAfterBoot(t *testing.T) {
	reg := injector.NewRegistry(injector.New())

	m := &eagerModule{}
	_ = reg.Register(m)

	if m.bootCalled {
		t.Error("Boot() should NOT be called before registry.Boot()")
	}

	if err := reg.Boot(); err != nil {
		t.Fatalf("Boot: %v", err)
	}

	if !m.bootCalled {
		t.Error("Boot() should be called after registry.Boot()")
	}
}

func TestRegistry_EagerModule_ServiceResolvable(t *testing.T) {
	inj := injector.New()
	reg := injector.NewRegistry(inj)
	_ = reg.Register(&eagerModule{})
	_ = reg.Boot()

	got := injector.MustResolve[string](inj, "eager-svc")
	if got != "eager" {
		t.Errorf("eager-svc: got %q, want 'eager'", got)
	}
}

func TestRegistry_Boot_IdempotentCallsAreIgnored(t *testing.T) {
	reg := injector.NewRegistry(injector.New())
	_ = reg.Register(&eagerModule{})

	_ = reg.Boot()
	_ = reg.Boot() // second call should be no-op

	if !reg.Booted() {
		t.Error("Booted() should be true after Boot()")
	}
}

func TestRegistry_DuplicateRegister_Ignored(t *testing.T) {
	inj := injector.New()
	reg := injector.NewRegistry(inj)

	m := &eagerModule{}
	_ = reg.Register(m)
	_ = reg.Register(m)

	if len(reg.Modules()) != 1 {
		t.Errorf("expected one registered module, got %d", len(reg.Modules()))
	}
}

func TestRegistry_LateRegister_BootsImmediately(t *testing.T) {
	reg := injector.NewRegistry(injector.New())
	_ = reg.Boot()

	m := &eagerModule{}
	_ = reg.Register(m)

	if !m.bootCalled {
		t.Error("a module registered after Boot() should boot immediately")
	}
}

// ── Deferred modules ─────────────────────────────────────────────────────────

func TestRegistry_DeferredModule_NotRegisteredEagerly(t *testing.T) {
	reg := injector.NewRegistry(injector.New())

	m := &deferredModule{}
	_ = reg.Register(m)
	_ = reg.Boot()

	if m.registerCalled {
		t.Error("deferred module Register() should not be called until first resolution")
	}
}

func TestRegistry_DeferredModule_RegisteredOnFirstResolve(t *testing.T) {
	inj := injector.New()
	reg := injector.NewRegistry(inj)

	m := &deferredModule{}
	_ = reg.Register(m)
	_ = reg.Boot()

	got := injector.MustResolve[string](inj, "deferred-svc")
	if got != "deferred-value" {
		t.Errorf("deferred-svc: got %q, want 'deferred-value'", got)
	}
	if !m.registerCalled {
		t.Error("deferred module should be registered on first resolution")
	}
}

func TestRegistry_DeferredModule_RegistersOnlyOnce(t *testing.T) {
	inj := injector.New()
	reg := injector.NewRegistry(inj)
	_ = reg.Register(&deferredModule{})
	_ = reg.Boot()

	first := injector.MustResolve[string](inj, "deferred-svc")
	second := injector.MustResolve[string](inj, "deferred-svc")

	if first != second {
		t.Errorf("deferred singleton should be stable: %q vs %q", first, second)
	}
}
