// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

// Package cacheutil manages the local data directory that holds downloaded
// archives so they are fetched only once.
package cacheutil
