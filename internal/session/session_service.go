package session

import (
	"context"
	"errors"
	"time"

	"go-pet-storefront/internal/backend"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

//go:generate mockgen -source=session_service.go -destination=../mock/session/session_service_mock.go -package=mock
type Service interface {
	Login(ctx context.Context, sid string, req LoginRequest) (LoginResponse, error)
	Logout(ctx context.Context, sid string) error
	Resolve(ctx context.Context, sid string) (Session, error)
	RememberNext(ctx context.Context, sid, next string) error
}

// Authenticator exchanges credentials for a bearer token at the backend.
type Authenticator interface {
	Login(ctx context.Context, email, password string) (backend.LoginResult, error)
}

type Deps struct {
	Store  Store
	Auth   Authenticator
	TTL    time.Duration
	Logger *zap.Logger
	Now    func() time.Time
}

type service struct {
	store    Store
	auth     Authenticator
	ttl      time.Duration
	logger   *zap.Logger
	now      func() time.Time
	validate *validator.Validate
}

const nextTTL = 15 * time.Minute

func NewService(deps Deps) Service {
	if deps.Store == nil {
		panic("session store cannot be nil")
	}
	if deps.Auth == nil {
		panic("authenticator cannot be nil")
	}
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}
	if deps.Now == nil {
		deps.Now = time.Now
	}
	if deps.TTL <= 0 {
		deps.TTL = 24 * time.Hour
	}

	return &service{
		store:    deps.Store,
		auth:     deps.Auth,
		ttl:      deps.TTL,
		logger:   deps.Logger,
		now:      deps.Now,
		validate: validator.New(),
	}
}

// Login always issues a fresh session id so an id handed out before
// authentication never carries a token. The post-login URL saved under the
// previous id moves over and the previous id is forgotten.
func (s *service) Login(ctx context.Context, prevSID string, req LoginRequest) (LoginResponse, error) {
	if err := s.validate.Struct(req); err != nil {
		return LoginResponse{}, ErrInvalidCredentials
	}
	sid := uuid.NewString()
	logger := s.logger.With(zap.String("sid", sid))

	res, err := s.auth.Login(ctx, req.Email, req.Password)
	if err != nil {
		var se *backend.StatusError
		if errors.As(err, &se) && se.Status < 500 {
			return LoginResponse{}, ErrInvalidCredentials
		}
		logger.Warn("backend login failed", zap.Error(err))
		return LoginResponse{}, backend.AsAppError(err)
	}

	now := s.now()
	claims, err := ParseToken(res.Bearer(), now)
	if err != nil {
		logger.Warn("backend issued unusable token", zap.Error(err))
		return LoginResponse{}, ErrLoginFailed
	}

	if err := s.store.Save(ctx, sid, res.Bearer(), s.lifetime(claims, now)); err != nil {
		logger.Error("failed to store session", zap.Error(err))
		return LoginResponse{}, ErrSessionFailed
	}

	next := ""
	if prevSID != "" {
		next, err = s.store.PopNext(ctx, prevSID)
		if err != nil {
			logger.Warn("failed to read post-login url", zap.Error(err))
			next = ""
		}
		if err := s.store.Delete(ctx, prevSID); err != nil {
			logger.Warn("failed to drop previous session", zap.String("prev_sid", prevSID), zap.Error(err))
		}
	}

	return LoginResponse{
		SessionID: sid,
		UserID:    claims.UserID,
		ExpiresAt: claims.ExpiresAt,
		Next:      next,
	}, nil
}

func (s *service) Logout(ctx context.Context, sid string) error {
	if sid == "" {
		return nil
	}
	if err := s.store.Delete(ctx, sid); err != nil {
		s.logger.Error("failed to delete session", zap.String("sid", sid), zap.Error(err))
		return ErrSessionFailed
	}
	return nil
}

// Resolve loads and checks the session token. An expired token is removed
// from the store on detection.
func (s *service) Resolve(ctx context.Context, sid string) (Session, error) {
	if sid == "" {
		return Session{}, ErrUnauthorized
	}

	token, err := s.store.Load(ctx, sid)
	if errors.Is(err, ErrNoSession) {
		return Session{}, ErrUnauthorized
	}
	if err != nil {
		s.logger.Error("failed to load session", zap.String("sid", sid), zap.Error(err))
		return Session{}, ErrSessionFailed
	}

	claims, err := ParseToken(token, s.now())
	if err != nil {
		if delErr := s.store.Delete(ctx, sid); delErr != nil {
			s.logger.Warn("failed to drop stale session", zap.String("sid", sid), zap.Error(delErr))
		}
		return Session{}, err
	}

	return Session{
		ID:        sid,
		Token:     token,
		UserID:    claims.UserID,
		ExpiresAt: claims.ExpiresAt,
	}, nil
}

func (s *service) RememberNext(ctx context.Context, sid, next string) error {
	if sid == "" || next == "" {
		return nil
	}
	return s.store.SaveNext(ctx, sid, next, nextTTL)
}

func (s *service) lifetime(claims Claims, now time.Time) time.Duration {
	ttl := claims.ExpiresAt.Sub(now)
	if ttl > s.ttl {
		return s.ttl
	}
	return ttl
}
