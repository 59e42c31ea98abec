// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package config provides configuration loading, merging, and validation
// facilities for the PhD Matcher client.
//
// Configuration is assembled from multiple sources; later sources override
// earlier non-zero fields:
//  1. Built-in defaults
//  2. JSON config file (path from -c / -config or the CONFIG variable)
//  3. Environment variables
//  4. Command-line flags
//
// The main entry points are [GetStructuredConfig] for the raw merged view and
// [GetClientConfig] for the validated client view.
package config
