// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package scdb

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"

	s3v2 "github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const scenarioCSV = "term,caseId\n2020,\"001\"\n2020,\"002\"\n2019,\"003\"\n"

// countingServer serves body and counts the requests it receives.
func countingServer(t *testing.T, status int, body []byte) (*httptest.Server, *atomic.Int32) {
	t.Helper()

	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.WriteHeader(status)
		_, _ = w.Write(body)
	}))
	t.Cleanup(srv.Close)
	return srv, &hits
}

func TestClient_DownloadsOnceThenUsesCache(t *testing.T) {
	srv, hits := countingServer(t, http.StatusOK, casesZip(t, scenarioCSV))
	dir := t.TempDir()

	c := NewClient(WithDataDir(dir), WithCasesURL(srv.URL+"/cases.zip"), WithHTTPClient(srv.Client()))

	terms, err := c.ReadTerms(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []uint32{2020, 2019}, termYears(terms))
	assert.Equal(t, int32(1), hits.Load())
	assert.FileExists(t, filepath.Join(dir, CasesFileName))

	terms, err = c.ReadTerms(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []uint32{2020, 2019}, termYears(terms))
	assert.Equal(t, int32(1), hits.Load())
}

func TestClient_PreSeededCacheMakesNoRequests(t *testing.T) {
	srv, hits := countingServer(t, http.StatusOK, nil)
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, CasesFileName), casesZip(t, scenarioCSV), 0o600))

	c := NewClient(WithDataDir(dir), WithCasesURL(srv.URL), WithHTTPClient(srv.Client()))

	terms, err := c.ReadTerms(context.Background())
	require.NoError(t, err)
	require.Len(t, terms, 2)
	assert.Equal(t, []string{"001", "002"}, caseIDs(terms[0]))
	assert.Equal(t, []string{"003"}, caseIDs(terms[1]))
	assert.Equal(t, int32(0), hits.Load())
}

func TestClient_BadStatusLeavesNoFile(t *testing.T) {
	srv, hits := countingServer(t, http.StatusNotFound, []byte("not found"))
	dir := t.TempDir()

	c := NewClient(WithDataDir(dir), WithCasesURL(srv.URL), WithHTTPClient(srv.Client()))

	terms, err := c.ReadTerms(context.Background())
	assert.Nil(t, terms)
	assert.ErrorIs(t, err, ErrHTTPStatus)

	var se *StatusError
	if assert.ErrorAs(t, err, &se) {
		assert.Equal(t, http.StatusNotFound, se.StatusCode)
	}
	assert.NoFileExists(t, filepath.Join(dir, CasesFileName))
	assert.Equal(t, int32(1), hits.Load())
}

func TestClient_TruncatedCacheIsTrusted(t *testing.T) {
	srv, hits := countingServer(t, http.StatusOK, casesZip(t, scenarioCSV))
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, CasesFileName), []byte("PK\x03\x04trunc"), 0o600))

	c := NewClient(WithDataDir(dir), WithCasesURL(srv.URL), WithHTTPClient(srv.Client()))

	_, err := c.ReadTerms(context.Background())
	assert.ErrorIs(t, err, ErrArchive)
	assert.Equal(t, int32(0), hits.Load())
}

func TestClient_MissingDataDir(t *testing.T) {
	srv, _ := countingServer(t, http.StatusOK, casesZip(t, scenarioCSV))
	dir := filepath.Join(t.TempDir(), "does", "not", "exist")

	c := NewClient(WithDataDir(dir), WithCasesURL(srv.URL), WithHTTPClient(srv.Client()))

	_, err := c.ReadTerms(context.Background())
	assert.ErrorContains(t, err, "failed to create cases archive")
}

func TestClient_UnsupportedScheme(t *testing.T) {
	c := NewClient(WithDataDir(t.TempDir()), WithCasesURL("ftp://example.com/cases.zip"))

	_, err := c.ReadTerms(context.Background())
	assert.ErrorIs(t, err, ErrUnsupportedScheme)
}

func TestClient_Defaults(t *testing.T) {
	c := NewClient()
	assert.Equal(t, DefaultCasesURL, c.CasesURL())
	assert.Equal(t, filepath.Join(DefaultDataDir, CasesFileName), c.CachePath())
}

type fakeS3 struct {
	body  []byte
	input *s3v2.GetObjectInput
}

func (f *fakeS3) GetObject(_ context.Context, in *s3v2.GetObjectInput, _ ...func(*s3v2.Options)) (*s3v2.GetObjectOutput, error) {
	f.input = in
	return &s3v2.GetObjectOutput{Body: io.NopCloser(bytes.NewReader(f.body))}, nil
}

func TestClient_S3Source(t *testing.T) {
	fake := &fakeS3{body: casesZip(t, scenarioCSV)}
	dir := t.TempDir()

	c := NewClient(WithDataDir(dir), WithCasesURL("s3://scdb-mirror/2021_01/cases.csv.zip"), WithS3Client(fake))

	terms, err := c.ReadTerms(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []uint32{2020, 2019}, termYears(terms))

	require.NotNil(t, fake.input)
	assert.Equal(t, "scdb-mirror", *fake.input.Bucket)
	assert.Equal(t, "2021_01/cases.csv.zip", *fake.input.Key)
	assert.FileExists(t, filepath.Join(dir, CasesFileName))
}

func TestSplitS3URL(t *testing.T) {
	tests := []struct {
		raw        string
		wantBucket string
		wantKey    string
		wantErr    bool
	}{
		{raw: "s3://bucket/key.zip", wantBucket: "bucket", wantKey: "key.zip"},
		{raw: "s3://bucket/a/b/c.zip", wantBucket: "bucket", wantKey: "a/b/c.zip"},
		{raw: "s3://bucket/", wantErr: true},
		{raw: "s3:///key.zip", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			u, err := url.Parse(tt.raw)
			require.NoError(t, err)

			bucket, key, err := splitS3URL(u)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.wantBucket, bucket)
			assert.Equal(t, tt.wantKey, key)
		})
	}
}
