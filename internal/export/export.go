// Package export writes the session list out as a dated JSON file, optionally
// mirroring it to object storage.
package export

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/nymphhq/nymph/internal/models"
)

var (
	loadDefaultAWSConfig = awsconfig.LoadDefaultConfig

	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		return s3.NewFromConfig(cfg, optFns...)
	}

	putObject = func(c *s3.Client, ctx context.Context, in *s3.PutObjectInput) (*s3.PutObjectOutput, error) {
		return c.PutObject(ctx, in)
	}
)

// S3Options configures the optional object-storage mirror. A zero value
// (empty Bucket) disables it.
type S3Options struct {
	Bucket       string
	Region       string
	BaseEndpoint string
	AccessKey    string
	SecretKey    string
}

// Exporter serializes entries to a dated file in Dir.
type Exporter struct {
	Dir string
	S3  S3Options
}

// Filename returns the export file name for the given day.
func Filename(now time.Time) string {
	return fmt.Sprintf("nymph-data-export-%s.json", now.Format(time.DateOnly))
}

// Export writes the entries as an indented JSON array and returns the path of
// the written file. When a bucket is configured the same bytes are also
// uploaded under exports/<filename>; an upload failure does not undo the
// local write.
func (e *Exporter) Export(ctx context.Context, entries []models.Entry) (string, error) {
	if entries == nil {
		entries = []models.Entry{}
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return "", fmt.Errorf("error serializing entries: %w", err)
	}

	name := Filename(time.Now())
	path := filepath.Join(e.Dir, name)

	if err := os.MkdirAll(e.Dir, 0o755); err != nil {
		return "", fmt.Errorf("error creating export dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("error writing export file: %w", err)
	}

	if e.S3.Bucket != "" {
		if err := e.upload(ctx, name, data); err != nil {
			return path, fmt.Errorf("error uploading export: %w", err)
		}
	}

	return path, nil
}

func (e *Exporter) upload(ctx context.Context, name string, data []byte) error {
	cfg, err := loadDefaultAWSConfig(ctx,
		awsconfig.WithRegion(e.S3.Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			e.S3.AccessKey,
			e.S3.SecretKey,
			"",
		)))
	if err != nil {
		return err
	}

	client := newS3ClientFromConfig(cfg, func(o *s3.Options) {
		if e.S3.BaseEndpoint != "" {
			o.BaseEndpoint = aws.String(e.S3.BaseEndpoint)
		}
	})

	key := "exports/" + name
	_, err = putObject(client, ctx, &s3.PutObjectInput{
		Bucket:      &e.S3.Bucket,
		Key:         &key,
		Body:        bytes.NewReader(data),
		ContentType: aws.String("application/json"),
	})
	return err
}
