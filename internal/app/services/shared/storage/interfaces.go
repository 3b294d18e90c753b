package storage

import (
	"context"
	"time"
)

type Storage interface {
	GetObjectPresignedURL(ctx context.Context, bucketName, objectName string, expiry time.Duration) (string, error)
}
