package s3

import (
	"bytes"
	"context"
	"io"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"golang.org/x/sync/singleflight"
)

// DocumentLoader loads graph documents from an S3 bucket using the AWS
// SDK v2. Like the filesystem loader, retrieved objects are cached for
// the lifetime of the loader.
type DocumentLoader struct {
	bucket string
	client *s3.Client

	cache   map[string][]byte
	cacheMu sync.RWMutex
	group   singleflight.Group
}

// NewDocumentLoaderWithClient creates a loader on top of an existing
// s3.Client, for callers that already carry a preconfigured AWS client.
func NewDocumentLoaderWithClient(bucket string, client *s3.Client) *DocumentLoader {
	return &DocumentLoader{
		bucket: bucket,
		client: client,
		cache:  make(map[string][]byte),
	}
}

// NewDocumentLoaderParams configures a new S3 document loader. Endpoint
// allows overriding the S3 endpoint for S3-compatible storage like MinIO.
type NewDocumentLoaderParams struct {
	Bucket    string
	Endpoint  string
	Region    string
	AccessKey string
	SecretKey string
}

// NewDocumentLoader creates an S3 document loader with static credentials
// and the given endpoint/region.
func NewDocumentLoader(ctx context.Context, params NewDocumentLoaderParams) (*DocumentLoader, error) {
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

	return NewDocumentLoaderWithClient(params.Bucket, client), nil
}

// GetDocument retrieves the object at the given key from the configured
// bucket.
func (l *DocumentLoader) GetDocument(ctx context.Context, ref string) ([]byte, error) {
	l.cacheMu.RLock()
	if cached, ok := l.cache[ref]; ok {
		l.cacheMu.RUnlock()
		return cached, nil
	}
	l.cacheMu.RUnlock()

	result, err, _ := l.group.Do(ref, func() (any, error) {
		l.cacheMu.RLock()
		if cached, ok := l.cache[ref]; ok {
			l.cacheMu.RUnlock()
			return cached, nil
		}
		l.cacheMu.RUnlock()

		out, err := l.client.GetObject(ctx, &s3.GetObjectInput{
			Bucket: aws.String(l.bucket),
			Key:    aws.String(ref),
		})
		if err != nil {
			return nil, err
		}
		defer out.Body.Close()

		buf := new(bytes.Buffer)
		if _, err := io.Copy(buf, out.Body); err != nil {
			return nil, err
		}

		data := buf.Bytes()

		l.cacheMu.Lock()
		l.cache[ref] = data
		l.cacheMu.Unlock()

		return data, nil
	})
	if err != nil {
		return nil, err
	}

	return result.([]byte), nil
}
