package report

import (
	"context"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/sirupsen/logrus"
)

// ObjectPutter is the subset of the S3 client the uploader needs.
type ObjectPutter interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3Uploader stores exported reports in a bucket.
type S3Uploader struct {
	bucket string
	client ObjectPutter
}

func NewS3Uploader(bucket string, client ObjectPutter) *S3Uploader {
	return &S3Uploader{bucket: bucket, client: client}
}

// NewS3UploaderFromCredentials builds an uploader backed by a real S3 client
// using static credentials.
func NewS3UploaderFromCredentials(ctx context.Context, accessKey, secretKey, bucket, region string) (*S3Uploader, error) {
	creds := credentials.NewStaticCredentialsProvider(accessKey, secretKey, "")
	sdkConfig, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region), awsconfig.WithCredentialsProvider(creds))
	if err != nil {
		return nil, fmt.Errorf("loading aws sdk config: %w", err)
	}
	return NewS3Uploader(bucket, s3.NewFromConfig(sdkConfig)), nil
}

// Upload puts body under key.
func (u *S3Uploader) Upload(ctx context.Context, key string, body io.Reader) error {
	_, err := u.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(u.bucket),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String("text/csv"),
	})
	if err != nil {
		return fmt.Errorf("uploading report %q to bucket %q: %w", key, u.bucket, err)
	}
	logrus.Infof("report %s uploaded to s3://%s", key, u.bucket)
	return nil
}
