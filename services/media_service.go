package services

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
	"github.com/peer-pixels/api-go/config"
)

const (
	maxImageSize  = 10 * 1024 * 1024
	maxAvatarSize = 5 * 1024 * 1024
)

var allowedImageTypes = []string{
	"image/jpeg", "image/jpg", "image/png", "image/webp",
}

type PresignedUpload struct {
	UploadURL string `json:"uploadUrl"`
	FileURL   string `json:"fileUrl"`
	Key       string `json:"key"`
	ExpiresIn int    `json:"expiresIn"`
}

// MediaService issues presigned PUT URLs against the R2 bucket that
// backs post image and avatar URLs. The API never proxies file bytes.
type MediaService struct {
	client   *s3.Client
	r2Config *config.R2Config
}

func NewMediaService() *MediaService {
	r2Config := config.GetR2Config()

	client := s3.New(s3.Options{
		BaseEndpoint: aws.String(fmt.Sprintf("https://%s.r2.cloudflarestorage.com", r2Config.AccountID)),
		Credentials: credentials.NewStaticCredentialsProvider(
			r2Config.AccessKeyID,
			r2Config.SecretAccessKey,
			"",
		),
		Region: r2Config.Region,
	})

	return &MediaService{client: client, r2Config: r2Config}
}

func (m *MediaService) PresignPostImage(ctx context.Context, userID, fileName, contentType string, fileSize int64) (*PresignedUpload, error) {
	if !isAllowedImageType(contentType) {
		return nil, fmt.Errorf("unsupported content type %q", contentType)
	}
	if fileSize <= 0 || fileSize > maxImageSize {
		return nil, fmt.Errorf("file size exceeds %d byte limit", maxImageSize)
	}

	key := fmt.Sprintf("uploads/posts/%s/%d_%s%s", userID, time.Now().Unix(), uuid.New().String(), filepath.Ext(fileName))
	return m.presign(ctx, key, contentType)
}

func (m *MediaService) PresignAvatar(ctx context.Context, userID, fileName, contentType string, fileSize int64) (*PresignedUpload, error) {
	if !isAllowedImageType(contentType) {
		return nil, fmt.Errorf("unsupported content type %q", contentType)
	}
	if fileSize <= 0 || fileSize > maxAvatarSize {
		return nil, fmt.Errorf("file size exceeds %d byte limit", maxAvatarSize)
	}

	key := fmt.Sprintf("uploads/avatars/%s/%d_avatar%s", userID, time.Now().Unix(), filepath.Ext(fileName))
	return m.presign(ctx, key, contentType)
}

// ConfirmUpload reports whether the object actually landed in the
// bucket, so callers only persist URLs that resolve.
func (m *MediaService) ConfirmUpload(ctx context.Context, key string) (bool, error) {
	input := &s3.HeadObjectInput{
		Bucket: aws.String(m.r2Config.BucketName),
		Key:    aws.String(key),
	}

	if _, err := m.client.HeadObject(ctx, input); err != nil {
		return false, nil
	}
	return true, nil
}

func (m *MediaService) DeleteFile(ctx context.Context, userID, key string) error {
	if !m.ownsKey(userID, key) {
		return fmt.Errorf("key %q does not belong to user %s", key, userID)
	}

	input := &s3.DeleteObjectInput{
		Bucket: aws.String(m.r2Config.BucketName),
		Key:    aws.String(key),
	}

	_, err := m.client.DeleteObject(ctx, input)
	return err
}

func (m *MediaService) presign(ctx context.Context, key, contentType string) (*PresignedUpload, error) {
	input := &s3.PutObjectInput{
		Bucket:      aws.String(m.r2Config.BucketName),
		Key:         aws.String(key),
		ContentType: aws.String(contentType),
	}

	presigner := s3.NewPresignClient(m.client)
	req, err := presigner.PresignPutObject(ctx, input, func(opts *s3.PresignOptions) {
		opts.Expires = time.Hour
	})
	if err != nil {
		return nil, err
	}

	return &PresignedUpload{
		UploadURL: req.URL,
		FileURL:   fmt.Sprintf("%s/%s", m.r2Config.PublicURL, key),
		Key:       key,
		ExpiresIn: 3600,
	}, nil
}

// Keys are namespaced uploads/{kind}/{userID}/..., so ownership is
// decided by the key's second path segment.
func (m *MediaService) ownsKey(userID, key string) bool {
	parts := strings.Split(key, "/")
	if len(parts) < 3 {
		return false
	}
	return parts[2] == userID
}

func isAllowedImageType(contentType string) bool {
	for _, allowed := range allowedImageTypes {
		if contentType == allowed {
			return true
		}
	}
	return false
}
