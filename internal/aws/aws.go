// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package aws

import (
	"context"
	"os"

	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	s3v2 "github.com/aws/aws-sdk-go-v2/service/s3"
)

// options holds optional overrides for AWS config loading.
type options struct {
	profile string
	region  string
}

// Option customizes how AWS config is loaded. With no options the shell's
// AWS setup is inherited (AWS_PROFILE, shared config, env, IMDS).
type Option func(*options)

// WithProfile sets the shared config profile.
func WithProfile(profile string) Option {
	return func(o *options) { o.profile = profile }
}

// WithRegion sets the region override.
func WithRegion(region string) Option {
	return func(o *options) { o.region = region }
}

// EnvOptions returns the overrides named by SCDB_AWS_PROFILE and
// SCDB_AWS_REGION. Unset variables contribute nothing.
func EnvOptions() []Option {
	var opts []Option
	if p := os.Getenv("SCDB_AWS_PROFILE"); p != "" {
		opts = append(opts, WithProfile(p))
	}
	if r := os.Getenv("SCDB_AWS_REGION"); r != "" {
		opts = append(opts, WithRegion(r))
	}
	return opts
}

// LoadAWSConfig loads AWS SDK v2 config with opts applied on top of the
// default chain.
func LoadAWSConfig(ctx context.Context, opts ...Option) (awsv2.Config, error) {
	return config.LoadDefaultConfig(ctx, loadOptions(opts)...)
}

func loadOptions(opts []Option) []func(*config.LoadOptions) error {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	var loadOpts []func(*config.LoadOptions) error
	if o.profile != "" {
		loadOpts = append(loadOpts, config.WithSharedConfigProfile(o.profile))
	}
	if o.region != "" {
		loadOpts = append(loadOpts, config.WithRegion(o.region))
	}
	return loadOpts
}

// NewS3 constructs an S3 client from cfg. SCDB_S3_ENDPOINT, when set, points
// the client at an S3 compatible store using path-style addressing.
func NewS3(cfg awsv2.Config, optFns ...func(*s3v2.Options)) *s3v2.Client {
	if ep := os.Getenv("SCDB_S3_ENDPOINT"); ep != "" {
		optFns = append([]func(*s3v2.Options){WithEndpoint(ep)}, optFns...)
	}
	return s3v2.NewFromConfig(cfg, optFns...)
}

// WithEndpoint overrides the S3 base endpoint.
func WithEndpoint(url string) func(*s3v2.Options) {
	return func(o *s3v2.Options) {
		o.BaseEndpoint = awsv2.String(url)
		o.UsePathStyle = true
	}
}
