package injector

// Mapping is a factory bound to an identifier. It receives the injector on
// which resolution started — not necessarily the injector whose table held
// the match — and the identifier the match was found under (the wildcard
// identifier when the match came through wildcard fallback).
type Mapping func(requesting *Injector, id string) any

// Value returns a Mapping that always yields v.
//
//	inj.RegisterMapping("config", injector.Value(cfg))
func Value(v any) Mapping {
	return func(*Injector, string) any { return v }
}

// Singleton wraps factory so its result is computed once per requesting
// injector. On first resolution the result is written back into the
// requesting injector's table as a [Value] entry under the invoked
// identifier, so later lookups on that injector short-circuit before ever
// reaching the table that held the factory. Two siblings sharing a singleton
// mapping inherited from a common parent therefore each get their own cached
// instance.
func Singleton(factory Mapping) Mapping {
	return func(requesting *Injector, id string) any {
		return requesting.memoize(id, factory)
	}
}
