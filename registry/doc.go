// Package registry maps profile-type names to generator constructors.
//
// A Registry is an explicit, caller-owned object: construct one with New
// (or Default, which pre-registers the four built-in families), pass it
// into whatever layer performs name-based lookup, and throw it away when
// done. There is no package-level registry and no init-time registration,
// so tests and embedders stay free of hidden global mutation.
//
// The registry is the only mutable structure around the computation core
// and is safe for concurrent use: a sync.RWMutex guards the name map.
package registry
