// Package store fetches definition and share-configuration documents from a
// config store by location.
//
// Locations are scheme-dispatched: a bare path or file:// URL reads from the
// local filesystem, http(s):// performs a GET, and s3://bucket/key fetches
// an object. The store returns raw bytes; parsing belongs to the schema
// package.
package store

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// S3Options configures object-store access. All fields are optional; absent
// credentials fall back to the ambient AWS configuration.
type S3Options struct {
	AccessKey string
	SecretKey string
	Region    string
	Endpoint  string // custom S3-compatible endpoint
}

// Client fetches documents by location.
type Client struct {
	httpClient *http.Client
	s3Opts     S3Options
	logger     *slog.Logger
}

// New creates a Client. A nil logger disables logging.
func New(s3Opts S3Options, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Client{
		httpClient: &http.Client{Timeout: 2 * time.Minute},
		s3Opts:     s3Opts,
		logger:     logger,
	}
}

// scheme represents the location scheme of a document.
type scheme string

const (
	schemeFile  scheme = "file"
	schemeS3    scheme = "s3"
	schemeHTTP  scheme = "http"
	schemeHTTPS scheme = "https"
	schemeLocal scheme = "local" // no scheme, local path
)

// detectScheme detects the location scheme from a path string.
func detectScheme(location string) scheme {
	lower := strings.ToLower(location)
	switch {
	case strings.HasPrefix(lower, "s3://"):
		return schemeS3
	case strings.HasPrefix(lower, "https://"):
		return schemeHTTPS
	case strings.HasPrefix(lower, "http://"):
		return schemeHTTP
	case strings.HasPrefix(lower, "file://"):
		return schemeFile
	default:
		return schemeLocal
	}
}

// Fetch reads the document at location.
func (c *Client) Fetch(ctx context.Context, location string) ([]byte, error) {
	c.logger.Debug("fetching document", "location", location)

	switch detectScheme(location) {
	case schemeLocal:
		return os.ReadFile(location)
	case schemeFile:
		return os.ReadFile(strings.TrimPrefix(location, "file://"))
	case schemeHTTP, schemeHTTPS:
		return c.fetchHTTP(ctx, location)
	case schemeS3:
		return c.fetchS3(ctx, location)
	default:
		return nil, fmt.Errorf("unsupported location scheme: %s", location)
	}
}

func (c *Client) fetchHTTP(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("HTTP request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP request returned status %d", resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}

// parseS3URL parses s3://bucket/key into bucket and key parts.
func parseS3URL(url string) (bucket, key string, err error) {
	path := strings.TrimPrefix(url, "s3://")
	parts := strings.SplitN(path, "/", 2)
	if len(parts) < 2 || parts[0] == "" || parts[1] == "" {
		return "", "", fmt.Errorf("invalid S3 URL: %s", url)
	}
	return parts[0], parts[1], nil
}

func (c *Client) fetchS3(ctx context.Context, url string) ([]byte, error) {
	bucket, key, err := parseS3URL(url)
	if err != nil {
		return nil, err
	}

	client, err := c.s3Client(ctx)
	if err != nil {
		return nil, err
	}

	resp, err := client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, fmt.Errorf("fetching s3://%s/%s: %w", bucket, key, err)
	}
	defer resp.Body.Close()

	return io.ReadAll(resp.Body)
}

// s3Client creates an S3 client from the configured options.
func (c *Client) s3Client(ctx context.Context) (*s3.Client, error) {
	var opts []func(*awsconfig.LoadOptions) error
	if c.s3Opts.Region != "" {
		opts = append(opts, awsconfig.WithRegion(c.s3Opts.Region))
	}
	if c.s3Opts.AccessKey != "" && c.s3Opts.SecretKey != "" {
		creds := credentials.NewStaticCredentialsProvider(c.s3Opts.AccessKey, c.s3Opts.SecretKey, "")
		opts = append(opts, awsconfig.WithCredentialsProvider(creds))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("loading AWS config: %w", err)
	}

	var clientOpts []func(*s3.Options)
	if c.s3Opts.Endpoint != "" {
		clientOpts = append(clientOpts, func(o *s3.Options) {
			o.BaseEndpoint = aws.String(c.s3Opts.Endpoint)
			o.UsePathStyle = true // for S3-compatible services
		})
	}
	return s3.NewFromConfig(awsCfg, clientOpts...), nil
}
