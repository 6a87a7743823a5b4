package s3

import (
	"fmt"
	"os"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
)

// ItfS3 provides read access to externally provisioned accessory assets
// (GLB/GLTF model files and thumbnails). Upload and lifecycle of the
// objects are managed outside this service.
type ItfS3 interface {
	PresignUrl(key string) (string, error)
	ObjectExists(key string) (bool, error)
}

type s3Client struct {
	client     *s3.S3
	session    *session.Session
	bucketName string
}

func New() (ItfS3, error) {
	sess, err := newSession()
	if err != nil {
		return nil, err
	}

	return &s3Client{
		client:     s3.New(sess),
		session:    sess,
		bucketName: os.Getenv("AWS_BUCKET_NAME"),
	}, nil
}

func newSession() (*session.Session, error) {
	region := os.Getenv("AWS_REGION")
	accessKey := os.Getenv("AWS_ACCESS_KEY_ID")
	secretKey := os.Getenv("AWS_SECRET_ACCESS_KEY")

	if region == "" || accessKey == "" || secretKey == "" {
		return nil, fmt.Errorf("missing AWS configuration")
	}

	return session.NewSession(&aws.Config{
		Region:      aws.String(region),
		Credentials: credentials.NewStaticCredentials(accessKey, secretKey, ""),
	})
}

func (s *s3Client) PresignUrl(key string) (string, error) {
	req, _ := s.client.GetObjectRequest(&s3.GetObjectInput{
		Bucket: aws.String(s.bucketName),
		Key:    aws.String(key),
	})

	url, err := req.Presign(15 * time.Minute)
	if err != nil {
		return "", fmt.Errorf("failed to presign %s: %w", key, err)
	}

	return url, nil
}

func (s *s3Client) ObjectExists(key string) (bool, error) {
	_, err := s.client.HeadObject(&s3.HeadObjectInput{
		Bucket: aws.String(s.bucketName),
		Key:    aws.String(key),
	})
	if err != nil {
		return false, nil
	}
	return true, nil
}
