package interfaces

import (
	"context"
	"errors"

	"github.com/taxdesk/tax-service/internal/db"
)

// ErrObjectNotFound is returned by an ObjectStore for a missing key.
var ErrObjectNotFound = errors.New("object not found")

// ObjectStore keeps binary objects such as scanned W-2 images
type ObjectStore interface {
	PutObject(ctx context.Context, key, contentType string, body []byte) error
	GetObject(ctx context.Context, key string) (*StoredObject, error)
	DeleteObject(ctx context.Context, key string) error
}

// StoredObject is an object read back from an ObjectStore
type StoredObject struct {
	Key         string
	ContentType string
	Body        []byte
}

// QueueMessage is a message received from a queue
type QueueMessage struct {
	ID            string
	Body          string
	ReceiptHandle string
}

// MessageQueue receives and acknowledges queued messages
type MessageQueue interface {
	Receive(ctx context.Context, maxMessages int32, waitSeconds int32) ([]QueueMessage, error)
	Delete(ctx context.Context, receiptHandle string) error
}

// TxRunner runs fn with queries bound to a single database transaction
type TxRunner interface {
	InTx(ctx context.Context, fn func(q db.Querier) error) error
}
