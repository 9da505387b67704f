package assets

import (
	"context"
	"errors"
	"path"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

func validConfig() Config {
	return Config{
		Endpoint:        "https://assets.example.test",
		Region:          "us-east-1",
		Bucket:          "melodia-media",
		AccessKeyID:     "key",
		SecretAccessKey: "secret",
	}
}

func TestNewRejectsIncompleteConfig(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{name: "missing endpoint", mutate: func(c *Config) { c.Endpoint = "" }},
		{name: "missing region", mutate: func(c *Config) { c.Region = " " }},
		{name: "missing bucket", mutate: func(c *Config) { c.Bucket = "" }},
		{name: "missing access key", mutate: func(c *Config) { c.AccessKeyID = "" }},
		{name: "missing secret", mutate: func(c *Config) { c.SecretAccessKey = "" }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := validConfig()
			tc.mutate(&cfg)
			if _, err := New(cfg); !errors.Is(err, ErrIncompleteConfig) {
				t.Fatalf("New() error = %v, want ErrIncompleteConfig", err)
			}
		})
	}
}

func TestObjectKey(t *testing.T) {
	key := objectKey("song-audio", "Berghain.MP3")

	if dir := path.Dir(key); dir != "song-audio" {
		t.Fatalf("object key folder = %q, want song-audio", dir)
	}
	if !strings.HasSuffix(key, ".mp3") {
		t.Fatalf("object key %q should keep a lowercased extension", key)
	}
	if strings.Contains(path.Base(key), "-") {
		t.Fatalf("object key base %q should be a bare hex name", path.Base(key))
	}

	if other := objectKey("song-audio", "Berghain.MP3"); other == key {
		t.Fatal("consecutive uploads must not reuse object keys")
	}
}

func TestObjectKeyWithoutExtension(t *testing.T) {
	key := objectKey("covers", "raw-upload")
	if strings.Contains(path.Base(key), ".") {
		t.Fatalf("object key %q should have no extension", key)
	}
}

type stubUploadClient struct {
	lastBucket string
	lastKey    string
	err        error
}

func (s *stubUploadClient) PutObject(ctx context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	if in.Bucket != nil {
		s.lastBucket = *in.Bucket
	}
	if in.Key != nil {
		s.lastKey = *in.Key
	}
	if s.err != nil {
		return nil, s.err
	}
	return &s3.PutObjectOutput{}, nil
}

func (s *stubUploadClient) UploadPart(context.Context, *s3.UploadPartInput, ...func(*s3.Options)) (*s3.UploadPartOutput, error) {
	return &s3.UploadPartOutput{}, nil
}

func (s *stubUploadClient) CreateMultipartUpload(context.Context, *s3.CreateMultipartUploadInput, ...func(*s3.Options)) (*s3.CreateMultipartUploadOutput, error) {
	return &s3.CreateMultipartUploadOutput{}, nil
}

func (s *stubUploadClient) CompleteMultipartUpload(context.Context, *s3.CompleteMultipartUploadInput, ...func(*s3.Options)) (*s3.CompleteMultipartUploadOutput, error) {
	return &s3.CompleteMultipartUploadOutput{}, nil
}

func (s *stubUploadClient) AbortMultipartUpload(context.Context, *s3.AbortMultipartUploadInput, ...func(*s3.Options)) (*s3.AbortMultipartUploadOutput, error) {
	return &s3.AbortMultipartUploadOutput{}, nil
}

var _ manager.UploadAPIClient = (*stubUploadClient)(nil)

func TestUploadBuildsPublicURL(t *testing.T) {
	stub := &stubUploadClient{}
	u := &Uploader{client: stub, bucket: "melodia-media", baseURL: "https://cdn.example.test"}

	url, err := u.Upload(context.Background(), strings.NewReader("audio-bytes"), "song-audio", "track.mp3")
	if err != nil {
		t.Fatalf("Upload: %v", err)
	}

	if stub.lastBucket != "melodia-media" {
		t.Fatalf("uploaded to bucket %q", stub.lastBucket)
	}
	want := "https://cdn.example.test/" + stub.lastKey
	if url != want {
		t.Fatalf("Upload url = %q, want %q", url, want)
	}
}

func TestUploadReportsFailure(t *testing.T) {
	stub := &stubUploadClient{err: errors.New("quota exceeded")}
	u := &Uploader{client: stub, bucket: "melodia-media"}

	if _, err := u.Upload(context.Background(), strings.NewReader("x"), "covers", "cover.png"); err == nil {
		t.Fatal("Upload should surface the storage error")
	}
}
