package objectstore

import (
	"context"
	"time"
)

// Store - порт объектного хранилища для файлов скриншотов.
//
//go:generate mockery --name=Store --output=../mocks --outpkg=mocks --filename=object_store.go --structname=ObjectStore
type Store interface {
	// Put сохраняет объект по ключу
	Put(ctx context.Context, key string, contentType string, data []byte) error

	// PresignGet возвращает временную ссылку на скачивание объекта
	PresignGet(ctx context.Context, key string) (string, error)

	// Delete удаляет объект по ключу
	Delete(ctx context.Context, key string) error
}

// DefaultPresignTTL - срок жизни presigned-ссылки, если не задан в конфиге
const DefaultPresignTTL = 15 * time.Minute
