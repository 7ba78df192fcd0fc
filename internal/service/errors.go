package service

import "errors"

// Типизированные ошибки ядра. Транспорт маппит их в HTTP-статусы:
// ErrUnauthorized — 401, ошибки валидации — 400, ErrNotFound — 404,
// ErrStorageWrite — 500.
var (
	// ErrUnauthorized покрывает плохой/отсутствующий/истёкший токен и
	// любой неуспех логина: неверный формат, неизвестный пользователь,
	// неверный пароль — снаружи неразличимы намеренно.
	ErrUnauthorized = errors.New("unauthorized")

	// Ошибки регистрации.
	ErrMissingEmail    = errors.New("missing email")
	ErrMissingPassword = errors.New("missing password")
	ErrAlreadyExists   = errors.New("already exist")

	// Ошибки валидации загрузки.
	ErrMissingName     = errors.New("missing name")
	ErrInvalidType     = errors.New("missing type")
	ErrMissingData     = errors.New("missing data")
	ErrInvalidParentID = errors.New("invalid parent id")
	ErrParentNotFound  = errors.New("parent not found")
	ErrParentNotFolder = errors.New("parent is not a folder")

	// ErrNotFound намеренно склеивает «нет записи» и «не твоя запись»,
	// чтобы не выдавать существование чужих приватных файлов.
	ErrNotFound = errors.New("not found")

	// ErrStorageWrite — не удалось сохранить содержимое; запись каталога
	// при этом не создаётся.
	ErrStorageWrite = errors.New("unable to save the file")
)
