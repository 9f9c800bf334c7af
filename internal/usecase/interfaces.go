package usecase

import (
	"context"
	"errors"
	"io"

	"gorm.io/gorm"
)

// AssetStore is the contract the external media host fulfils.
// Upload returns the public URL of the stored object; Delete removes
// the object a previously returned URL points at.
type AssetStore interface {
	Upload(ctx context.Context, key string, body io.Reader, contentType string) (string, error)
	Delete(ctx context.Context, url string) error
}

// NotificationPublisher hands notification tasks to the queue.
// A nil publisher disables notifications.
type NotificationPublisher interface {
	PublishNotificationTask(task map[string]interface{}) error
}

// AssetUpload carries an inbound multipart file into a usecase.
type AssetUpload struct {
	Reader      io.Reader
	Filename    string
	ContentType string
}

func isNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}

func isDuplicate(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey)
}
