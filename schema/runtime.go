package schema

import "reflect"

// Getter reads a property from a concrete receiver.
type Getter func(receiver any) (any, error)

// Setter writes a property on a concrete receiver.
type Setter func(receiver, value any) error

// ReadResolution is the outcome of resolving a property read. The zero value
// is unresolved.
type ReadResolution struct {
	Get Getter
}

// Resolved reports whether the read resolved to a getter.
func (r ReadResolution) Resolved() bool { return r.Get != nil }

// WriteResolution is the outcome of resolving a property write. The zero
// value is unresolved.
type WriteResolution struct {
	Set Setter
}

// Resolved reports whether the write resolved to a setter.
func (r WriteResolution) Resolved() bool { return r.Set != nil }

var (
	UnresolvedRead  = ReadResolution{}
	UnresolvedWrite = WriteResolution{}
)

// ResolvedRead wraps get into a resolved read.
func ResolvedRead(get Getter) ReadResolution { return ReadResolution{Get: get} }

// ResolvedWrite wraps set into a resolved write.
func ResolvedWrite(set Setter) WriteResolution { return WriteResolution{Set: set} }

// RuntimePropertyResolver maps script-time property accesses on receivers of
// a given Go type to executable actions. Implementations must not keep state
// across calls.
type RuntimePropertyResolver interface {
	ResolvePropertyRead(receiver reflect.Type, name string) ReadResolution
	ResolvePropertyWrite(receiver reflect.Type, name string) WriteResolution
}

// ResolverChain asks each resolver in order; the first resolved answer wins.
type ResolverChain []RuntimePropertyResolver

func (c ResolverChain) ResolvePropertyRead(receiver reflect.Type, name string) ReadResolution {
	for _, r := range c {
		if res := r.ResolvePropertyRead(receiver, name); res.Resolved() {
			return res
		}
	}
	return UnresolvedRead
}

func (c ResolverChain) ResolvePropertyWrite(receiver reflect.Type, name string) WriteResolution {
	for _, r := range c {
		if res := r.ResolvePropertyWrite(receiver, name); res.Resolved() {
			return res
		}
	}
	return UnresolvedWrite
}
