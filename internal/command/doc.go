// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

// Package command defines the scdb command line. It wires flags, validators
// and the action that reads and prints the grouped terms.
package command
