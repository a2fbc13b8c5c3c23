// Package config sources the process-wide logging defaults: default
// severity, output pattern, sink target, and the admin listen address.
// Values load from a YAML file and/or pflag flags, with flags taking
// precedence, and build into a ready registry via BuildRegistry.
package config
