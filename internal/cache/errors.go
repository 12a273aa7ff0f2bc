// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cache

import "errors"

// ErrCacheMiss is returned when a key-based lookup finds no live entry.
// It covers both never-written and expired keys; callers cannot distinguish
// the two and should treat the entry as absent.
var ErrCacheMiss = errors.New("cache entry not found")
