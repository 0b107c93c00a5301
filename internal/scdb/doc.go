// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

// Package scdb reads the Supreme Court Database case archive. It fetches the
// zipped CSV into a local data directory, parses it, and groups the rows into
// court terms in the order the terms first appear.
package scdb
