package storage

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/hackflow/hackflow-api/pkg/logger"
	"github.com/hackflow/hackflow-api/pkg/metrics"
	"go.uber.org/zap"
)

// MaxAudioSize bounds a single narration upload
const MaxAudioSize = 25 * 1024 * 1024

// Config describes an S3-compatible bucket
type Config struct {
	AccessKeyID     string
	SecretAccessKey string
	BucketName      string
	Endpoint        string
	Region          string
	// PublicBaseURL overrides the URL prefix returned for uploaded objects
	PublicBaseURL string
}

// Client uploads generated media to an S3-compatible object store
type Client struct {
	s3Client      *s3.Client
	bucketName    string
	publicBaseURL string
}

// NewClient creates a storage client. An empty endpoint targets AWS S3.
func NewClient(cfg Config) (*Client, error) {
	if cfg.BucketName == "" {
		return nil, fmt.Errorf("storage bucket name is required")
	}
	if cfg.Region == "" {
		cfg.Region = "us-east-1"
	}

	opts := s3.Options{
		Region: cfg.Region,
		Credentials: credentials.NewStaticCredentialsProvider(
			cfg.AccessKeyID,
			cfg.SecretAccessKey,
			"",
		),
		RequestChecksumCalculation: aws.RequestChecksumCalculationWhenRequired,
	}
	if cfg.Endpoint != "" {
		opts.BaseEndpoint = aws.String(cfg.Endpoint)
		opts.UsePathStyle = true
	}

	publicBaseURL := strings.TrimSuffix(cfg.PublicBaseURL, "/")
	if publicBaseURL == "" {
		if cfg.Endpoint != "" {
			publicBaseURL = fmt.Sprintf("%s/%s", strings.TrimSuffix(cfg.Endpoint, "/"), cfg.BucketName)
		} else {
			publicBaseURL = fmt.Sprintf("https://%s.s3.%s.amazonaws.com", cfg.BucketName, cfg.Region)
		}
	}

	logger.Info("Object storage client initialized",
		zap.String("bucket", cfg.BucketName),
		zap.String("endpoint", cfg.Endpoint),
		zap.String("region", cfg.Region),
	)

	return &Client{
		s3Client:      s3.New(opts),
		bucketName:    cfg.BucketName,
		publicBaseURL: publicBaseURL,
	}, nil
}

// UploadAudio stores data under key and returns its public URL
func (c *Client) UploadAudio(ctx context.Context, data []byte, key, contentType string) (string, error) {
	start := time.Now()
	operation := "uploadAudio"

	if err := ValidateAudio(data, contentType); err != nil {
		metrics.StorageRequestTotal.WithLabelValues(operation, "invalid").Inc()
		return "", err
	}

	_, err := c.s3Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(c.bucketName),
		Key:           aws.String(key),
		Body:          bytes.NewReader(data),
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(int64(len(data))),
	})

	duration := metrics.MeasureDuration(start)

	if err != nil {
		metrics.StorageRequestDuration.WithLabelValues(operation, "error").Observe(duration)
		metrics.StorageRequestTotal.WithLabelValues(operation, "error").Inc()
		logger.LogAPICall("object_storage", operation, "error", duration,
			zap.Error(err),
			zap.String("key", key),
		)
		return "", fmt.Errorf("failed to upload audio: %w", err)
	}

	metrics.StorageRequestDuration.WithLabelValues(operation, "success").Observe(duration)
	metrics.StorageRequestTotal.WithLabelValues(operation, "success").Inc()
	logger.LogAPICall("object_storage", operation, "success", duration,
		zap.String("key", key),
		zap.Int("size_bytes", len(data)),
	)

	return fmt.Sprintf("%s/%s", c.publicBaseURL, key), nil
}

// ValidateAudio checks the payload before upload
func ValidateAudio(data []byte, contentType string) error {
	if len(data) == 0 {
		return fmt.Errorf("audio payload is empty")
	}
	if len(data) > MaxAudioSize {
		return fmt.Errorf("audio payload too large: %d bytes (max %d)", len(data), MaxAudioSize)
	}
	if !strings.HasPrefix(strings.ToLower(contentType), "audio/") {
		return fmt.Errorf("invalid content type: %s", contentType)
	}
	return nil
}
