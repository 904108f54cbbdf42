package injector

import (
	"errors"
	"strconv"
)

// ErrEmptyIdentifier is returned when a mapping is registered under "".
var ErrEmptyIdentifier = errors.New("injector: empty identifier")

// NotFoundError reports that a single mapping table holds no entry for an
// identifier. The resolution walk recovers from it internally (wildcard, then
// parent chain); callers of [Injector.Resolve] never see it.
type NotFoundError struct {
	Identifier string
}

func (e NotFoundError) Error() string {
	return "injector: no mapping for identifier " + strconv.Quote(e.Identifier)
}

// UnresolvedIdentifierError reports that an identifier matched nothing in the
// entire injector chain. Injector is the label of the injector on which
// resolution began, which in deep hierarchies is the piece of context that
// actually locates the bug.
type UnresolvedIdentifierError struct {
	Identifier string
	Injector   string
}

func (e UnresolvedIdentifierError) Error() string {
	return "injector: identifier " + strconv.Quote(e.Identifier) +
		" unresolved (requested on " + e.Injector + ")"
}

// ReservedIdentifierError is returned when user code tries to register a
// mapping under an identifier the injector reserves for itself (see [SelfID]).
type ReservedIdentifierError struct {
	Identifier string
}

func (e ReservedIdentifierError) Error() string {
	return "injector: identifier " + strconv.Quote(e.Identifier) + " is reserved"
}

// WrongTypeError is returned by the generic [Resolve] helper when a mapping
// resolved successfully but its value is not assignable to the requested type.
type WrongTypeError struct {
	Identifier string
	GotType    string
	WantType   string
}

func (e WrongTypeError) Error() string {
	return "injector: identifier " + strconv.Quote(e.Identifier) +
		" resolved to " + e.GotType + ", not " + e.WantType
}
