package store

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"go.uber.org/zap"

	"github.com/leandrogodoyn-star/Proyecto-estetica/internal/config"
	"github.com/leandrogodoyn-star/Proyecto-estetica/internal/models"
)

// S3Store guarda o documento da agenda como um único objeto no bucket.
// Compatível com MinIO via S3_ENDPOINT.
type S3Store struct {
	client *s3.Client
	bucket string
	key    string
	log    *zap.Logger
}

func NewS3Store(cfg *config.Config, log *zap.Logger) (*S3Store, error) {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.S3Region),
	}
	if cfg.S3AccessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.S3AccessKey, cfg.S3SecretKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(), opts...)
	if err != nil {
		return nil, err
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.S3Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.S3Endpoint)
			o.UsePathStyle = true
		}
	})

	return &S3Store{
		client: client,
		bucket: cfg.S3Bucket,
		key:    cfg.S3Key,
		log:    log,
	}, nil
}

func (s *S3Store) EnsureInitialized(ctx context.Context) error {
	_, err := s.client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.key),
	})
	if err == nil {
		return nil
	}

	// Só grava o documento vazio quando o objeto realmente não existe.
	// Qualquer outra falha (rede, DNS, credenciais) sobe para o caller:
	// sobrescrever a agenda viva por causa de um erro transitório seria
	// perda de dados.
	var notFound *types.NotFound
	if !errors.As(err, &notFound) {
		return err
	}

	return s.Save(ctx, models.Agenda{Appointments: []models.Appointment{}})
}

func (s *S3Store) Load(ctx context.Context) models.Agenda {
	empty := models.Agenda{Appointments: []models.Appointment{}}

	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.key),
	})
	if err != nil {
		s.log.Warn("agenda object unreadable, serving empty collection",
			zap.String("bucket", s.bucket), zap.String("key", s.key), zap.Error(err))
		return empty
	}
	defer out.Body.Close()

	data, err := io.ReadAll(out.Body)
	if err != nil {
		s.log.Warn("agenda object read failed, serving empty collection",
			zap.String("key", s.key), zap.Error(err))
		return empty
	}

	var agenda models.Agenda
	if err := json.Unmarshal(data, &agenda); err != nil {
		s.log.Warn("agenda object malformed, serving empty collection",
			zap.String("key", s.key), zap.Error(err))
		return empty
	}

	if agenda.Appointments == nil {
		agenda.Appointments = []models.Appointment{}
	}
	return agenda
}

func (s *S3Store) Save(ctx context.Context, agenda models.Agenda) error {
	data, err := json.MarshalIndent(agenda, "", "  ")
	if err != nil {
		return err
	}

	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(s.key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String("application/json"),
	})
	return err
}
