package objectstore

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/rs/zerolog/log"

	appconfig "buglens/internal/config"
	"buglens/internal/logger"
)

// s3Store - реализация Store поверх S3-совместимого хранилища
type s3Store struct {
	client     *s3.Client
	presigner  *s3.PresignClient
	bucket     string
	presignTTL time.Duration
}

// NewS3Store создаёт хранилище скриншотов поверх AWS S3 (или MinIO при
// непустом Endpoint). Учётные данные берутся из стандартной цепочки AWS SDK.
func NewS3Store(ctx context.Context, cfg appconfig.ObjectStorage) (Store, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not load aws config: %w", err)
	}

	if cfg.Region != "" {
		awsCfg.Region = cfg.Region
	}

	var s3Opts []func(*s3.Options)
	if cfg.Endpoint != "" {
		s3Opts = append(s3Opts, func(o *s3.Options) {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		})
	}
	if cfg.UsePathStyle {
		s3Opts = append(s3Opts, func(o *s3.Options) {
			o.UsePathStyle = true
		})
	}

	client := s3.NewFromConfig(awsCfg, s3Opts...)

	ttl := DefaultPresignTTL
	if cfg.PresignTTL != "" {
		parsed, err := time.ParseDuration(cfg.PresignTTL)
		if err != nil {
			return nil, fmt.Errorf("invalid presign ttl %q: %w", cfg.PresignTTL, err)
		}
		ttl = parsed
	}

	return &s3Store{
		client:     client,
		presigner:  s3.NewPresignClient(client),
		bucket:     cfg.Bucket,
		presignTTL: ttl,
	}, nil
}

// Put сохраняет объект по ключу
func (s *s3Store) Put(ctx context.Context, key string, contentType string, data []byte) error {
	requestID := logger.GetRequestID(ctx)

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(data),
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(int64(len(data))),
	})
	if err != nil {
		log.Error().
			Err(err).
			Str("request_id", requestID).
			Str("layer", "objectstore").
			Str("key", key).
			Msg("error putting object")
		return fmt.Errorf("could not put object %s: %w", key, err)
	}

	log.Info().
		Str("request_id", requestID).
		Str("layer", "objectstore").
		Str("key", key).
		Int("size", len(data)).
		Msg("object stored")

	return nil
}

// PresignGet возвращает временную ссылку на скачивание объекта
func (s *s3Store) PresignGet(ctx context.Context, key string) (string, error) {
	req, err := s.presigner.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(s.presignTTL))
	if err != nil {
		log.Error().
			Err(err).
			Str("request_id", logger.GetRequestID(ctx)).
			Str("layer", "objectstore").
			Str("key", key).
			Msg("error presigning object")
		return "", fmt.Errorf("could not presign object %s: %w", key, err)
	}

	return req.URL, nil
}

// Delete удаляет объект по ключу
func (s *s3Store) Delete(ctx context.Context, key string) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("could not delete object %s: %w", key, err)
	}
	return nil
}
