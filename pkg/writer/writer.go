// Package writer serializes built graph documents and persists them to
// the local filesystem or S3.
package writer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/orgviz/orgviz/pkg/common"
)

// Writer persists an encoded output document under the given reference.
type Writer interface {
	Put(ctx context.Context, ref string, data []byte) error
}

// Encode marshals an output document with two-space indentation, matching
// the format the visualization tooling expects.
func Encode(g *common.SigmaGraph) ([]byte, error) {
	data, err := json.MarshalIndent(g, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode graph document: %w", err)
	}
	return data, nil
}

// FileWriter writes output documents to the local filesystem, creating
// parent directories as needed.
type FileWriter struct{}

// NewFileWriter creates a filesystem writer.
func NewFileWriter() *FileWriter {
	return &FileWriter{}
}

// Put writes the document to the given path.
func (w *FileWriter) Put(ctx context.Context, ref string, data []byte) error {
	dir := filepath.Dir(ref)
	if dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create output directory %q: %w", dir, err)
		}
	}
	if err := os.WriteFile(ref, data, 0o644); err != nil {
		return fmt.Errorf("failed to write output document %q: %w", ref, err)
	}
	return nil
}

// S3Writer uploads output documents to an S3 bucket.
type S3Writer struct {
	bucket string
	client *s3.Client
}

// NewS3Writer creates a writer on top of an existing s3.Client.
func NewS3Writer(bucket string, client *s3.Client) *S3Writer {
	return &S3Writer{
		bucket: bucket,
		client: client,
	}
}

// NewS3WriterParams configures a new S3 writer. Endpoint allows
// overriding the S3 endpoint for S3-compatible storage.
type NewS3WriterParams struct {
	Bucket    string
	Endpoint  string
	Region    string
	AccessKey string
	SecretKey string
}

// NewS3WriterFromParams creates an S3 writer with static credentials and
// the given endpoint/region.
func NewS3WriterFromParams(ctx context.Context, params NewS3WriterParams) (*S3Writer, error) {
	cfg, err := config.LoadDefaultConfig(
		ctx,
		config.WithRegion(params.Region),
		config.WithBaseEndpoint(params.Endpoint),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			params.AccessKey,
			params.SecretKey,
			"",
		)),
	)
	if err != nil {
		return nil, err
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		o.UsePathStyle = true
	})

	return NewS3Writer(params.Bucket, client), nil
}

// Put uploads the document under the given key.
func (w *S3Writer) Put(ctx context.Context, ref string, data []byte) error {
	_, err := w.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(w.bucket),
		Key:         aws.String(ref),
		Body:        bytes.NewReader(data),
		ContentType: aws.String("application/json"),
	})
	if err != nil {
		return fmt.Errorf("failed to upload output document %q: %w", ref, err)
	}
	return nil
}
