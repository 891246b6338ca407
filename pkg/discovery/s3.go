package discovery

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/vango-dev/gallery/internal/errors"
	"github.com/vango-dev/gallery/pkg/page"
)

// DefaultMaxObjectSize caps the size of a single page object.
const DefaultMaxObjectSize = 4 << 20

// S3API is the subset of the S3 client used by S3Source.
type S3API interface {
	ListObjectsV2(ctx context.Context, params *s3.ListObjectsV2Input, optFns ...func(*s3.Options)) (*s3.ListObjectsV2Output, error)
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// S3Source discovers page objects under a bucket prefix.
type S3Source struct {
	client  S3API
	bucket  string
	conv    Convention
	maxSize int64
	logger  *slog.Logger
}

// S3Option configures an S3Source.
type S3Option func(*S3Source)

// WithMaxObjectSize sets the largest object that will be read.
func WithMaxObjectSize(n int64) S3Option {
	return func(s *S3Source) {
		s.maxSize = n
	}
}

// WithS3Logger sets the logger.
func WithS3Logger(logger *slog.Logger) S3Option {
	return func(s *S3Source) {
		s.logger = logger
	}
}

// S3 returns a Source that reads pages from bucket. Object keys are
// matched against the convention root with any leading "./" removed.
//
// Example:
//
//	client := discovery.NewS3Client(discovery.S3ClientOptions{Region: "us-east-1"})
//	mods, err := discovery.S3(client, "gallery-pages", discovery.DefaultConvention()).Discover(ctx)
func S3(client S3API, bucket string, conv Convention, opts ...S3Option) *S3Source {
	s := &S3Source{
		client:  client,
		bucket:  bucket,
		conv:    conv,
		maxSize: DefaultMaxObjectSize,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.With("component", "discovery", "source", "s3", "bucket", bucket)
	return s
}

// Discover implements Source. Keys are visited in S3 listing order, which
// is lexical.
func (s *S3Source) Discover(ctx context.Context) (Modules, error) {
	prefix := strings.TrimPrefix(s.conv.Root, "./")

	paginator := s3.NewListObjectsV2Paginator(s.client, &s3.ListObjectsV2Input{
		Bucket: aws.String(s.bucket),
		Prefix: aws.String(prefix),
	})

	var mods Modules
	for paginator.HasMorePages() {
		out, err := paginator.NextPage(ctx)
		if err != nil {
			return Modules{}, errors.New("E205").
				WithDetailf("listing s3://%s/%s", s.bucket, prefix).
				Wrap(err)
		}

		for _, obj := range out.Contents {
			key := aws.ToString(obj.Key)
			if !s.wanted(key, prefix) {
				continue
			}

			data, err := s.read(ctx, key)
			if err != nil {
				return Modules{}, errors.New("E205").
					WithDetailf("reading s3://%s/%s", s.bucket, key).
					Wrap(err)
			}
			pg, err := page.Parse(key, data)
			if err != nil {
				return Modules{}, err
			}

			if err := mods.Add(Module{
				Source:    sourcePath(s.conv, strings.TrimPrefix(key, prefix)),
				Component: pg,
				Meta:      pg.Meta,
			}); err != nil {
				return Modules{}, err
			}
		}
	}

	s.logger.Debug("discovered pages", "count", mods.Len())
	return mods, nil
}

func (s *S3Source) wanted(key, prefix string) bool {
	if strings.HasSuffix(key, "/") {
		return false
	}
	for _, seg := range strings.Split(strings.TrimPrefix(key, prefix), "/") {
		if skipName(seg) {
			return false
		}
	}
	return accepts(s.conv, path.Base(key))
}

func (s *S3Source) read(ctx context.Context, key string) ([]byte, error) {
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, err
	}
	defer out.Body.Close()

	data, err := io.ReadAll(io.LimitReader(out.Body, s.maxSize+1))
	if err != nil {
		return nil, err
	}
	if int64(len(data)) > s.maxSize {
		return nil, fmt.Errorf("object larger than %d bytes", s.maxSize)
	}
	return data, nil
}

// S3ClientOptions configures NewS3Client.
type S3ClientOptions struct {
	Region string

	// Endpoint overrides the service endpoint (MinIO, localstack).
	Endpoint string

	// PathStyle forces path-style addressing.
	PathStyle bool

	// AccessKeyID and SecretAccessKey are static credentials. When both
	// are empty the client signs nothing and can only read public buckets.
	AccessKeyID     string
	SecretAccessKey string
}

// NewS3Client builds an S3 client from explicit options.
func NewS3Client(opts S3ClientOptions) *s3.Client {
	o := s3.Options{
		Region:       opts.Region,
		UsePathStyle: opts.PathStyle,
	}
	if opts.Endpoint != "" {
		o.BaseEndpoint = aws.String(opts.Endpoint)
	}
	if opts.AccessKeyID != "" || opts.SecretAccessKey != "" {
		creds := aws.Credentials{
			AccessKeyID:     opts.AccessKeyID,
			SecretAccessKey: opts.SecretAccessKey,
			Source:          "gallery",
		}
		o.Credentials = aws.CredentialsProviderFunc(func(context.Context) (aws.Credentials, error) {
			return creds, nil
		})
	} else {
		o.Credentials = aws.AnonymousCredentials{}
	}
	return s3.New(o)
}
