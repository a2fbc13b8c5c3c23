// Package registry maps keys to logger handles and controls their
// levels at runtime.
//
// The registry is the slow path: handle creation, explicit level
// changes, and listings run under one RWMutex with O(1) critical
// sections. The hot path never touches it — call sites cache their
// handle in a CallSite cell after the first bind and log through a
// lock-free atomic load from then on. Level changes mutate handles in
// place, so every cached reference observes them without rebinding.
//
// Handles live for the process: the registry creates, never deletes.
// SetLevel on an unknown key creates the handle at the requested level
// rather than failing, so an operator can pre-tune a component that
// has not logged yet.
package registry
