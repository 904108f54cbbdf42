// Package injector provides a hierarchical, string-identified dependency
// injection container.
//
// # Overview
//
// An [Injector] maps opaque string identifiers to [Mapping] factories. A
// request walks the injector's own table, falls back to a derived wildcard
// identifier, then recurses into the parent chain. Values are untyped; the
// generic [Resolve] helper is the typed boundary on top.
//
//	root := injector.New(injector.WithLabel("app"))
//	_ = root.RegisterSingleton("store", func(i *injector.Injector, _ string) any {
//	    return NewMemoryStore()
//	})
//
//	child := root.Child()
//	store := injector.MustResolve[*MemoryStore](child, "store")
//
// # Identifiers and wildcards
//
// An identifier may carry a single space separating a base token from a
// qualifier, e.g. "store users". The text before the first space is the
// wildcard identifier: when "store users" has no exact entry, an entry for
// "store" answers instead, and its mapping is invoked with "store". Exact
// entries always win over wildcard ones, and both win over the parent chain.
//
// # Singletons
//
// A mapping registered via [Injector.RegisterSingleton] (or wrapped in
// [Singleton]) runs its factory once per requesting injector, then writes the
// result back into the requesting injector's table as a plain [Value] entry.
// A singleton shared at the root therefore yields one cached instance per
// subtree that requests it, while the factory definition stays shared.
//
// # Parent-preferring resolution
//
// [Injector.ResolveParentFirst] checks ancestors first and never the local
// table, falling back to a supplied default mapping. Use it when a local
// mapping should yield to whatever an enclosing scope provides.
//
// # Modules
//
// [Module] and [Registry] group mappings behind a Laravel-style
// register/boot lifecycle, with optional deferred loading on first
// resolution.
package injector
