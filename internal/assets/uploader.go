package assets

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// ErrIncompleteConfig is returned when required asset storage settings are missing.
var ErrIncompleteConfig = errors.New("incomplete asset storage configuration")

// Config holds the settings for the external asset host. It is loaded once at
// startup and passed in explicitly; the uploader never reads the environment.
type Config struct {
	Endpoint        string
	Region          string
	Bucket          string
	AccessKeyID     string
	SecretAccessKey string
	// PublicBaseURL, when set, is used to build the returned asset URL
	// instead of the upload location reported by the storage service.
	PublicBaseURL string
}

// Enabled reports whether enough configuration is present to attempt uploads.
func (c Config) Enabled() bool {
	return strings.TrimSpace(c.Endpoint) != "" &&
		strings.TrimSpace(c.Region) != "" &&
		strings.TrimSpace(c.Bucket) != "" &&
		strings.TrimSpace(c.AccessKeyID) != "" &&
		strings.TrimSpace(c.SecretAccessKey) != ""
}

// Uploader transfers binary payloads to an S3-compatible asset host and hands
// back a retrievable URL. One attempt per call, no retries.
type Uploader struct {
	client  manager.UploadAPIClient
	bucket  string
	baseURL string
}

// New builds an Uploader from explicit configuration.
func New(cfg Config) (*Uploader, error) {
	if !cfg.Enabled() {
		return nil, ErrIncompleteConfig
	}

	client := s3.New(s3.Options{
		UsePathStyle: true,
		BaseEndpoint: aws.String(cfg.Endpoint),
		Region:       cfg.Region,
		Credentials: aws.NewCredentialsCache(
			credentials.NewStaticCredentialsProvider(
				cfg.AccessKeyID,
				cfg.SecretAccessKey,
				"",
			),
		),
	})

	return &Uploader{
		client:  client,
		bucket:  cfg.Bucket,
		baseURL: strings.TrimRight(cfg.PublicBaseURL, "/"),
	}, nil
}

// Upload stores the payload under a fresh key inside folder and returns the
// public URL. The original filename only contributes its extension.
func (u *Uploader) Upload(ctx context.Context, body io.Reader, folder, filename string) (string, error) {
	key := objectKey(folder, filename)

	uploader := manager.NewUploader(u.client)
	result, err := uploader.Upload(ctx, &s3.PutObjectInput{
		Bucket: aws.String(u.bucket),
		Key:    aws.String(key),
		Body:   body,
	})
	if err != nil {
		log.Error().Err(err).Str("key", key).Msg("asset upload failed")
		return "", fmt.Errorf("upload asset: %w", err)
	}

	if u.baseURL != "" {
		return u.baseURL + "/" + key, nil
	}
	return result.Location, nil
}

func objectKey(folder, filename string) string {
	name := strings.ReplaceAll(uuid.New().String(), "-", "")
	if ext := strings.ToLower(path.Ext(filename)); ext != "" {
		name += ext
	}
	return path.Join(folder, name)
}
