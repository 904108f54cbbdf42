package injector

import (
	"fmt"
	"reflect"
	"strings"
	"sync"
	"sync/atomic"
)

// SelfID is the reserved identifier under which every injector registers
// itself at construction, so a mapping can request "the injector that
// resolved me":
//
//	self := injector.MustResolve[*injector.Injector](inj, injector.SelfID)
//
// Runtime registration under SelfID is rejected with [ReservedIdentifierError].
const SelfID = "injector"

var labelSeq atomic.Uint64

// Injector resolves string identifiers to values by consulting its own
// mapping table, a derived wildcard identifier, and then its parent chain.
// Injectors form a tree: each has at most one parent, fixed at construction,
// so the chain is acyclic and can be walked without synchronization.
//
// Use [New] for a root and [Injector.Child] for derivatives.
type Injector struct {
	label  string
	parent *Injector // nil for roots; never mutated after construction
	table  *table

	// memo guards singleton write-back per identifier, so a racing first
	// resolution invokes the factory exactly once on this injector.
	memoMu sync.Mutex
	memo   map[string]*memoEntry
}

type memoEntry struct {
	once sync.Once
	val  any
}

// Option configures an injector during construction.
type Option func(*Injector)

// WithLabel sets the injector's diagnostic label, reported by
// [UnresolvedIdentifierError]. Defaults to a generated "injector#N".
func WithLabel(label string) Option {
	return func(i *Injector) { i.label = label }
}

// WithMappings seeds the injector's table at construction. A seed under
// [SelfID] is superseded by the injector's own self-registration, which runs
// after all options.
func WithMappings(mappings map[string]Mapping) Option {
	return func(i *Injector) {
		for id, m := range mappings {
			i.table.set(id, m)
		}
	}
}

// New creates a root injector with no parent.
func New(opts ...Option) *Injector {
	return construct(nil, opts...)
}

// Child creates an injector whose parent is i. The child starts with an
// empty table (plus any [WithMappings] seed); everything else is reached
// through the parent chain at resolution time rather than copied.
func (i *Injector) Child(opts ...Option) *Injector {
	return construct(i, opts...)
}

func construct(parent *Injector, opts ...Option) *Injector {
	inj := &Injector{
		parent: parent,
		table:  newTable(),
		memo:   make(map[string]*memoEntry),
	}
	for _, opt := range opts {
		opt(inj)
	}
	if inj.label == "" {
		inj.label = fmt.Sprintf("injector#%d", labelSeq.Add(1))
	}
	// Self-registration: the injector answers for SelfID in its own table,
	// so a child resolving SelfID gets the child, not an ancestor.
	inj.table.set(SelfID, Value(inj))
	return inj
}

// Label returns the injector's diagnostic label.
func (i *Injector) Label() string { return i.label }

// Parent returns the parent injector, or nil for a root.
func (i *Injector) Parent() *Injector { return i.parent }

// Identifiers returns the identifiers present in this injector's own table,
// including [SelfID] and any singleton write-back entries. Parent tables are
// not included.
func (i *Injector) Identifiers() []string { return i.table.identifiers() }

// ── Registration ─────────────────────────────────────────────────────────────

// RegisterMapping binds m under id in this injector's table, replacing any
// prior entry. Registering under "" or [SelfID] fails.
func (i *Injector) RegisterMapping(id string, m Mapping) error {
	if err := checkIdentifier(id); err != nil {
		return err
	}
	// A replaced mapping must not reuse an already-fired memo guard.
	i.memoMu.Lock()
	delete(i.memo, id)
	i.memoMu.Unlock()
	i.table.set(id, m)
	return nil
}

// RegisterValue binds a pre-built value under id.
func (i *Injector) RegisterValue(id string, v any) error {
	return i.RegisterMapping(id, Value(v))
}

// RegisterSingleton binds factory under id with [Singleton] semantics: one
// cached instance per requesting injector, factory invoked at most once per
// requester.
func (i *Injector) RegisterSingleton(id string, factory Mapping) error {
	return i.RegisterMapping(id, Singleton(factory))
}

func checkIdentifier(id string) error {
	if id == "" {
		return ErrEmptyIdentifier
	}
	if id == SelfID {
		return ReservedIdentifierError{Identifier: id}
	}
	return nil
}

// ── Resolution ───────────────────────────────────────────────────────────────

// wildcardOf returns the identifier text before the first space, or id itself
// when it has no qualifier segment.
func wildcardOf(id string) string {
	if n := strings.IndexByte(id, ' '); n >= 0 {
		return id[:n]
	}
	return id
}

// Resolve resolves id starting at this injector. Precedence, first match
// wins: exact entry in the local table, wildcard entry in the local table,
// then the parent chain (with this injector kept as the requesting identity
// throughout). When nothing matches anywhere, an [UnresolvedIdentifierError]
// is returned.
func (i *Injector) Resolve(id string) (any, error) {
	return i.ResolveFor(id, i)
}

// ResolveFor resolves id on behalf of requesting. The requesting identity is
// threaded unchanged through the parent walk so that side effects — singleton
// write-back in particular — always land on the injector where resolution
// began, not on the ancestor that happened to own the match. A nil requesting
// defaults to i.
func (i *Injector) ResolveFor(id string, requesting *Injector) (any, error) {
	if requesting == nil {
		requesting = i
	}
	if m, ok := i.table.lookup(id); ok {
		return m(requesting, id), nil
	}
	if wid := wildcardOf(id); wid != id {
		if m, ok := i.table.lookup(wid); ok {
			return m(requesting, wid), nil
		}
	}
	if i.parent != nil {
		return i.parent.ResolveFor(id, requesting)
	}
	return nil, UnresolvedIdentifierError{Identifier: id, Injector: requesting.label}
}

// TryResolve performs a full resolution and returns fallback when no mapping
// exists anywhere in the chain. It never returns an error; it also never
// recovers panics raised inside a factory, so a broken mapping still fails
// loudly instead of being mistaken for a missing one.
func (i *Injector) TryResolve(id string, fallback any) any {
	v, err := i.Resolve(id)
	if err != nil {
		return fallback
	}
	return v
}

// ResolveParentFirst resolves id against the ancestor chain only, skipping
// this injector's table entirely. The first ancestor holding an exact entry
// for id is invoked with (i, id); when no ancestor has one, fallback is
// invoked with (i, id). Use it for mappings that should defer to whatever a
// parent provides and keep a local default otherwise. A nil fallback yields
// nil.
func (i *Injector) ResolveParentFirst(id string, fallback Mapping) any {
	for a := i.parent; a != nil; a = a.parent {
		if m, ok := a.table.lookup(id); ok {
			return m(i, id)
		}
	}
	if fallback == nil {
		return nil
	}
	return fallback(i, id)
}

// Has reports whether id would resolve on this injector: an exact or wildcard
// entry in its table or any ancestor's.
func (i *Injector) Has(id string) bool {
	wid := wildcardOf(id)
	for a := i; a != nil; a = a.parent {
		if a.table.exists(id) {
			return true
		}
		if wid != id && a.table.exists(wid) {
			return true
		}
	}
	return false
}

// memoize runs factory at most once per identifier on this injector, then
// publishes the result into the local table as a plain [Value] entry. The
// lock is not held across the factory call, so factories are free to resolve
// further identifiers on the same injector.
func (i *Injector) memoize(id string, factory Mapping) any {
	i.memoMu.Lock()
	e, ok := i.memo[id]
	if !ok {
		e = &memoEntry{}
		i.memo[id] = e
	}
	i.memoMu.Unlock()

	e.once.Do(func() {
		e.val = factory(i, id)
		i.table.set(id, Value(e.val))
	})
	return e.val
}

// ── Generic helpers ──────────────────────────────────────────────────────────

// Resolve is a generic helper that resolves id and type-asserts the result:
//
//	store, err := injector.Resolve[*UserStore](inj, "store users")
func Resolve[T any](i *Injector, id string) (T, error) {
	var zero T
	v, err := i.Resolve(id)
	if err != nil {
		return zero, err
	}
	out, ok := v.(T)
	if !ok {
		return zero, WrongTypeError{
			Identifier: id,
			GotType:    fmt.Sprintf("%T", v),
			WantType:   reflect.TypeOf((*T)(nil)).Elem().String(),
		}
	}
	return out, nil
}

// MustResolve is like [Resolve] but panics on failure. Intended for
// bootstrap code where a missing mapping is a programming error.
func MustResolve[T any](i *Injector, id string) T {
	out, err := Resolve[T](i, id)
	if err != nil {
		panic(err)
	}
	return out
}
