package blob

import (
	"context"
	"errors"
)

// ErrNotFound — содержимого по локатору нет в хранилище.
var ErrNotFound = errors.New("blob not found")

// Store — непрозрачное байтовое хранилище. Write возвращает локатор,
// по которому содержимое читается обратно; формат локатора — деталь бэкенда.
type Store interface {
	Write(ctx context.Context, data []byte) (ref string, err error)
	Read(ctx context.Context, ref string) ([]byte, error)
	Exists(ctx context.Context, ref string) (bool, error)

	// WriteRef пишет содержимое под заранее известным локатором
	// (миниатюры кладутся рядом с оригиналом как <ref>_<width>).
	WriteRef(ctx context.Context, ref string, data []byte) error
}
