// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

// scdbgo is the main package for the scdb command line tool. It downloads
// the Supreme Court Database case archive once, then prints its rows grouped
// by court term.
package main
