// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package namespace provides [Namespace], an ordered mapping from identifier
// keys to arbitrary values used as the building block of statically
// structured configuration trees.
//
// Every key must be an identifier: a non-empty string starting with a letter
// or underscore, followed by letters, digits or underscores. Keys that do not
// match are rejected with [ErrKeyFormat] before the namespace is touched.
//
// Reading an absent key is governed by the namespace's [Policy]:
//   - [Vivify] (the default) creates, stores and returns an empty child
//     namespace, so nested structure can be built without declaring each
//     level first;
//   - [Strict] fails with [ErrKeyNotFound].
//
// Namespaces encode to JSON objects whose members are sorted by key at every
// nesting level, so equal content always produces identical bytes.
package namespace
