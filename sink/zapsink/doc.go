// Package zapsink adapts a zapcore.Core into a sitelog sink, so an
// application already wired for zap can route per-call-site handles
// into its existing encoder and output stack.
package zapsink
