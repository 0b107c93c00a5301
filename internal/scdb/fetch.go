// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package scdb

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/apex/log"
	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	s3v2 "github.com/aws/aws-sdk-go-v2/service/s3"

	awsx "github.com/staranto/scdbgo/internal/aws"
)

// ObjectGetter is the slice of the S3 API used to fetch an archive.
type ObjectGetter interface {
	GetObject(ctx context.Context, in *s3v2.GetObjectInput, optFns ...func(*s3v2.Options)) (*s3v2.GetObjectOutput, error)
}

// open starts the transfer of src and returns its body. Any status error is
// reported here, before the caller touches the filesystem.
func (c *Client) open(ctx context.Context, src string) (io.ReadCloser, error) {
	u, err := url.Parse(src)
	if err != nil {
		return nil, fmt.Errorf("failed to parse cases url: %w", err)
	}

	switch strings.ToLower(u.Scheme) {
	case "http", "https":
		return c.openHTTP(ctx, src)
	case "s3":
		return c.openS3(ctx, u)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedScheme, u.Scheme)
	}
}

func (c *Client) openHTTP(ctx context.Context, src string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, src, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	res, err := c.opts.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}

	if res.StatusCode != http.StatusOK {
		res.Body.Close()
		return nil, &StatusError{URL: src, StatusCode: res.StatusCode}
	}

	return res.Body, nil
}

func (c *Client) openS3(ctx context.Context, u *url.URL) (io.ReadCloser, error) {
	bucket, key, err := splitS3URL(u)
	if err != nil {
		return nil, err
	}

	if c.opts.s3 == nil {
		cfg, err := awsx.LoadAWSConfig(ctx, awsx.EnvOptions()...)
		if err != nil {
			return nil, fmt.Errorf("failed to load aws config: %w", err)
		}
		c.opts.s3 = awsx.NewS3(cfg)
	}

	log.Debugf("s3 get: bucket=%s key=%s", bucket, key)
	out, err := c.opts.s3.GetObject(ctx, &s3v2.GetObjectInput{
		Bucket: awsv2.String(bucket),
		Key:    awsv2.String(key),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get s3 object: %w", err)
	}
	return out.Body, nil
}

// splitS3URL turns s3://bucket/path/to/key into its bucket and key.
func splitS3URL(u *url.URL) (bucket, key string, err error) {
	bucket = u.Host
	key = strings.TrimPrefix(u.Path, "/")
	if bucket == "" || key == "" {
		return "", "", fmt.Errorf("s3 url needs a bucket and key: %s", u.String())
	}
	return bucket, key, nil
}
