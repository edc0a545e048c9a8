// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package config loads, merges and persists JSON configuration files whose
// structure is fixed in code.
//
// An application describes its options and their defaults with a [Schema].
// A [Loader] then:
//  1. builds a fresh [Config] holding only the defaults ([Loader.Defaults]);
//  2. overlays user values onto the defaults ([Loader.FromMap]), rejecting
//     any key the defaults do not already define with [ErrUnexpectedOption];
//  3. reads a JSON file and overlays it the same way ([Loader.FromJSON]).
//
// When the file does not exist yet, [Loader.FromJSON] writes the defaults
// to it as a template and reports [StatusTemplateGenerated] instead of a
// usable configuration, so the operator can review the template before the
// application runs. What happens next is decided by the caller or by a
// [BootstrapFunc] installed with [WithBootstrap].
//
// Files are always written with keys sorted at every level and a fixed
// two-space indentation, so identical content produces identical bytes.
package config
