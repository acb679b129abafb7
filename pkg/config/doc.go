// Package config specifies the tuning parameters for the exploration and
// compression phases and the separator that drives each one. Config is
// YAML-loadable and mirrors the CLI flags documented in cmd/gonest, whose
// values override a loaded file's defaults.
package config
