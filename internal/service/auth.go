package service

import (
	"FileVault/internal/model"
	"FileVault/internal/repo"
	"FileVault/internal/session"
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// TokenTTL — время жизни сессионного токена.
const TokenTTL = 24 * time.Hour

// sessionKeyPrefix повторяет схему ключей auth_<token>.
const sessionKeyPrefix = "auth_"

// AuthService выпускает и гасит сессионные токены и резолвит их в личности.
type AuthService struct {
	users    repo.UserRepository
	sessions session.Store
	logger   *zap.SugaredLogger
}

// NewAuthService создаёт аутентификатор.
func NewAuthService(users repo.UserRepository, sessions session.Store, logger *zap.SugaredLogger) *AuthService {
	return &AuthService{users: users, sessions: sessions, logger: logger}
}

// Register создаёт пользователя с bcrypt-хешем пароля.
func (s *AuthService) Register(ctx context.Context, email, password string) (*model.User, error) {
	if email == "" {
		return nil, ErrMissingEmail
	}
	if password == "" {
		return nil, ErrMissingPassword
	}

	if _, err := s.users.GetUserByEmail(ctx, email); err == nil {
		return nil, ErrAlreadyExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	return s.users.CreateUser(ctx, &model.User{
		ID:       uuid.NewString(),
		Email:    email,
		Password: string(hash),
	})
}

// Login принимает base64-кодированную пару "email:password", проверяет её
// и возвращает свежий токен. Любой неуспех — ErrUnauthorized, без деталей.
func (s *AuthService) Login(ctx context.Context, basic string) (string, error) {
	email, password, ok := decodeBasic(basic)
	if !ok {
		return "", ErrUnauthorized
	}

	user, err := s.users.GetUserByEmail(ctx, email)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", ErrUnauthorized
	}
	if err != nil {
		return "", err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return "", ErrUnauthorized
	}

	token, err := newToken()
	if err != nil {
		return "", err
	}

	if err := s.sessions.Put(ctx, sessionKeyPrefix+token, user.ID, TokenTTL); err != nil {
		// хранилище сессий лежит — закрываемся, а не пускаем без сессии
		s.logger.Errorw("Login: session store put failed", "error", err)
		return "", fmt.Errorf("%w: %v", ErrUnauthorized, err)
	}

	return token, nil
}

// Logout удаляет сессию токена. Отсутствующий токен — ErrUnauthorized.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	_, ok, err := s.sessions.Get(ctx, sessionKeyPrefix+token)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnauthorized, err)
	}
	if !ok {
		return ErrUnauthorized
	}
	if err := s.sessions.Delete(ctx, sessionKeyPrefix+token); err != nil {
		return fmt.Errorf("%w: %v", ErrUnauthorized, err)
	}
	return nil
}

// Resolve превращает токен в id пользователя, перепроверяя,
// что пользователь ещё существует.
func (s *AuthService) Resolve(ctx context.Context, token string) (string, error) {
	if token == "" {
		return "", ErrUnauthorized
	}

	userID, ok, err := s.sessions.Get(ctx, sessionKeyPrefix+token)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnauthorized, err)
	}
	if !ok {
		return "", ErrUnauthorized
	}

	if _, err := s.users.GetUserByID(ctx, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrUnauthorized
		}
		return "", err
	}

	return userID, nil
}

// GetUser возвращает пользователя по id (для /users/me).
func (s *AuthService) GetUser(ctx context.Context, userID string) (*model.User, error) {
	user, err := s.users.GetUserByID(ctx, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrUnauthorized
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}

// SessionsAvailable — живо ли хранилище сессий (для /status).
func (s *AuthService) SessionsAvailable(ctx context.Context) bool {
	return s.sessions.Available(ctx)
}

// decodeBasic разбирает base64("email:password").
func decodeBasic(basic string) (email, password string, ok bool) {
	raw, err := base64.StdEncoding.DecodeString(basic)
	if err != nil {
		return "", "", false
	}
	email, password, ok = strings.Cut(string(raw), ":")
	if !ok || email == "" || password == "" {
		return "", "", false
	}
	return email, password, true
}

// newToken генерирует 256 бит случайности в base64url.
func newToken() (string, error) {
	key := make([]byte, 32)
	if _, err := rand.Read(key); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(key), nil
}
