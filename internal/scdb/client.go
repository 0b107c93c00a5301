// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package scdb

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/apex/log"
	"github.com/dustin/go-humanize"

	"github.com/staranto/scdbgo/internal/cacheutil"
)

// Client reads terms from a cached copy of the SCDB archive, downloading it
// into the data directory first if it is not there.
type Client struct {
	opts options
}

// NewClient returns a Client configured by opts.
func NewClient(opts ...Option) *Client {
	o := options{
		casesURL: DefaultCasesURL,
		dataDir:  DefaultDataDir,
		http:     http.DefaultClient,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return &Client{opts: o}
}

// CasesURL is where the archive is fetched from on a cache miss.
func (c *Client) CasesURL() string {
	return c.opts.casesURL
}

// CachePath is the location of the cached archive.
func (c *Client) CachePath() string {
	p, _ := cacheutil.EntryPath(c.opts.dataDir, CasesFileName)
	return p
}

// ReadTerms makes sure the archive is cached, then parses it. The cached file
// is trusted as-is; a truncated download stays until the data dir is reset.
func (c *Client) ReadTerms(ctx context.Context) ([]*Term, error) {
	dst, err := c.ensureDownload(ctx)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(dst)
	if err != nil {
		return nil, fmt.Errorf("failed to open cases archive: %w", err)
	}
	defer f.Close()

	fi, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("failed to stat cases archive: %w", err)
	}

	return ReadTerms(f, fi.Size())
}

// ensureDownload fetches the cases URL into the data dir unless the archive
// is already there, and returns its path.
func (c *Client) ensureDownload(ctx context.Context) (string, error) {
	dst, ok := cacheutil.EntryPath(c.opts.dataDir, CasesFileName)
	if ok {
		log.Debugf("cache hit: %s", dst)
		return dst, nil
	}
	log.Debugf("cache miss: %s", dst)

	body, err := c.open(ctx, c.opts.casesURL)
	if err != nil {
		return "", err
	}
	defer body.Close()

	w, err := os.Create(dst)
	if err != nil {
		return "", fmt.Errorf("failed to create cases archive: %w", err)
	}
	defer w.Close()

	n, err := io.Copy(w, body)
	if err != nil {
		return "", fmt.Errorf("failed to download %s: %w", c.opts.casesURL, err)
	}
	log.Infof("downloaded %s from %s", humanize.Bytes(uint64(n)), c.opts.casesURL)

	return dst, nil
}
