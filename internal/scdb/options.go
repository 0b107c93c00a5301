// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package scdb

import "net/http"

const (
	DefaultCasesURL = "http://scdb.wustl.edu/_brickFiles/2021_01/SCDB_2021_01_justiceCentered_Citation.csv.zip"
	DefaultDataDir  = "data"

	// CasesFileName is the name of the cached archive inside the data dir.
	CasesFileName = "SCDB_justiceCentered_Citation.csv.zip"
)

// options holds the Client settings.
type options struct {
	casesURL string
	dataDir  string
	http     *http.Client
	s3       ObjectGetter
}

// Option customizes a Client. With no options, the Client reads the default
// cases URL into DefaultDataDir using http.DefaultClient.
type Option func(*options)

// WithDataDir sets the directory that holds the cached archive.
func WithDataDir(dir string) Option {
	return func(o *options) { o.dataDir = dir }
}

// WithCasesURL sets where the archive is fetched from. http, https and s3
// URLs are accepted.
func WithCasesURL(url string) Option {
	return func(o *options) { o.casesURL = url }
}

// WithHTTPClient replaces http.DefaultClient.
func WithHTTPClient(c *http.Client) Option {
	return func(o *options) { o.http = c }
}

// WithS3Client sets the client used for s3:// URLs. Without it, one is built
// from the ambient AWS config on first use.
func WithS3Client(c ObjectGetter) Option {
	return func(o *options) { o.s3 = c }
}
