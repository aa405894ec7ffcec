package document

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/url"
	"path/filepath"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/dmitrijs2005/autoprime/internal/filex"
	"github.com/dmitrijs2005/autoprime/internal/netx"
)

// Sink stores a rendered document under name and returns where it went.
type Sink interface {
	Put(ctx context.Context, name, contentType string, data []byte) (string, error)
}

// FileSink writes documents into a local directory, replacing files with the
// same name.
type FileSink struct {
	dir string
}

func NewFileSink(dir string) (*FileSink, error) {
	abs, err := filex.EnsureDir(dir)
	if err != nil {
		return nil, err
	}
	return &FileSink{dir: abs}, nil
}

func (s *FileSink) Put(ctx context.Context, name, contentType string, data []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if name == "" || strings.ContainsAny(name, `/\`) || name == "." || name == ".." {
		return "", fmt.Errorf("invalid document name %q", name)
	}
	path := filepath.Join(s.dir, name)
	if err := filex.WriteFileAtomic(path, data, 0o640); err != nil {
		return "", err
	}
	return path, nil
}

// PutObjectAPI is the part of *s3.Client the sink needs.
type PutObjectAPI interface {
	PutObject(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

type S3Config struct {
	Bucket          string
	Region          string
	Endpoint        string
	AccessKeyID     string
	SecretAccessKey string
	PathStyle       bool
	Prefix          string
}

// S3Sink uploads documents to an S3-compatible bucket (AWS or MinIO).
type S3Sink struct {
	client PutObjectAPI
	bucket string
	prefix string
}

func NewS3SinkWithClient(client PutObjectAPI, bucket, prefix string) *S3Sink {
	return &S3Sink{client: client, bucket: bucket, prefix: strings.Trim(prefix, "/")}
}

// NewS3Sink builds a client from cfg. Static credentials are used when both
// keys are set, otherwise the default AWS credential chain applies.
func NewS3Sink(ctx context.Context, cfg S3Config) (*S3Sink, error) {
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("s3 bucket required")
	}
	region := cfg.Region
	if region == "" {
		region = "us-east-1"
	}

	opts := []func(*config.LoadOptions) error{config.WithRegion(region)}
	if cfg.AccessKeyID != "" && cfg.SecretAccessKey != "" {
		opts = append(opts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		))
	}
	awsCfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.UsePathStyle = cfg.PathStyle
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
	})
	return NewS3SinkWithClient(client, cfg.Bucket, cfg.Prefix), nil
}

func (s *S3Sink) key(name string) string {
	if s.prefix == "" {
		return name
	}
	return s.prefix + "/" + name
}

func (s *S3Sink) Put(ctx context.Context, name, contentType string, data []byte) (string, error) {
	key := s.key(name)
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload %s: %w", key, err)
	}
	return fmt.Sprintf("s3://%s/%s", s.bucket, key), nil
}

// TimeoutSink bounds every Put of the wrapped sink by Timeout.
type TimeoutSink struct {
	Sink    Sink
	Timeout time.Duration
}

func (s TimeoutSink) Put(ctx context.Context, name, contentType string, data []byte) (string, error) {
	if s.Timeout <= 0 {
		return s.Sink.Put(ctx, name, contentType, data)
	}
	ctx, cancel := context.WithTimeout(ctx, s.Timeout)
	defer cancel()
	return s.Sink.Put(ctx, name, contentType, data)
}

// HTTPSink PUTs documents under a base URL, for presigned bucket prefixes or
// WebDAV shares.
type HTTPSink struct {
	base   string
	client *http.Client
}

// NewHTTPSink returns a sink that uploads to base + "/" + name. A nil client
// means http.DefaultClient.
func NewHTTPSink(base string, client *http.Client) (*HTTPSink, error) {
	u, err := url.Parse(base)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid upload url %q", base)
	}
	return &HTTPSink{base: strings.TrimRight(base, "/"), client: client}, nil
}

func (s *HTTPSink) Put(ctx context.Context, name, contentType string, data []byte) (string, error) {
	target := s.base + "/" + url.PathEscape(name)
	if err := netx.Put(ctx, s.client, target, contentType, data); err != nil {
		return "", fmt.Errorf("failed to upload %s: %w", name, err)
	}
	return target, nil
}
