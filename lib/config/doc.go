// Copyright 2026 The Roster Authors
// SPDX-License-Identifier: Apache-2.0

// Package config loads and validates the roster client configuration.
//
// Configuration is a YAML file resolved in order of precedence:
//
//  1. The --config flag.
//  2. The ROSTER_CONFIG environment variable.
//  3. Built-in defaults ([Default]).
//
// The file is optional: the client runs against a development
// capability service with no configuration at all. String values
// support ${VAR} and ${VAR:-default} expansion from the environment,
// so a shared config file can point log output at ${HOME} without
// hardcoding a user's path.
//
// Durations (request_timeout, refresh_interval) are strings in
// time.ParseDuration format ("10s", "1m30s") and are validated at
// load time along with the service URL scheme and log level.
package config
