package s3

import (
	"bytes"
	"os"
	"path"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"
)

// ItfS3 stores and retrieves classifier model artifacts. Load matches the
// signature the resolution engine expects from an artifact store.
type ItfS3 interface {
	Load(name string) ([]byte, error)
	Upload(name string, data []byte) error
}

type s3Client struct {
	client     *s3.S3
	session    *session.Session
	bucketName string
	prefix     string
}

func New() (ItfS3, error) {
	sess, err := newSession()
	if err != nil {
		return nil, err
	}

	prefix := os.Getenv("AWS_MODEL_PREFIX")
	if prefix == "" {
		prefix = "models"
	}

	return &s3Client{
		client:     s3.New(sess),
		session:    sess,
		bucketName: os.Getenv("AWS_BUCKET_NAME"),
		prefix:     prefix,
	}, nil
}

func (s *s3Client) Load(name string) ([]byte, error) {
	downloader := s3manager.NewDownloader(s.session)

	buf := aws.NewWriteAtBuffer(nil)
	_, err := downloader.Download(buf, &s3.GetObjectInput{
		Bucket: aws.String(s.bucketName),
		Key:    aws.String(path.Join(s.prefix, name)),
	})
	if err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

func (s *s3Client) Upload(name string, data []byte) error {
	uploader := s3manager.NewUploader(s.session)

	_, err := uploader.Upload(&s3manager.UploadInput{
		Bucket: aws.String(s.bucketName),
		Key:    aws.String(path.Join(s.prefix, name)),
		Body:   bytes.NewReader(data),
	})

	return err
}

func newSession() (*session.Session, error) {
	sess, err := session.NewSession(&aws.Config{
		Region: aws.String(os.Getenv("AWS_REGION")),
		Credentials: credentials.NewStaticCredentials(
			os.Getenv("AWS_ACCESS_KEY_ID"),
			os.Getenv("AWS_SECRET_ACCESS_KEY"),
			"",
		),
	})

	if err != nil {
		return nil, err
	}

	return sess, nil
}
