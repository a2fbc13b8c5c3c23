// Package admin exposes the registry's level controls over HTTP, so
// operators can retune component verbosity in a running process. It
// only translates requests into registry calls; all policy (creation
// on unknown keys, level visibility) lives in the registry itself.
package admin
