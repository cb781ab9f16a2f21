// internal/service/auth/service.go
package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"caseflow-service/internal/domain/admin"
	"caseflow-service/internal/pkg/actor"
	xerrors "caseflow-service/internal/pkg/errors"
	"caseflow-service/internal/store"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const tokenTTL = 24 * time.Hour

// Claims carries the actor snapshot inside the access token so the
// request layer can rebuild the acting admin without a store lookup.
type Claims struct {
	Name   string `json:"name"`
	Role   string `json:"role"`
	Avatar string `json:"avatar,omitempty"`
	jwt.RegisteredClaims
}

type LoginResult struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expires_at"`
	Admin     *admin.Admin `json:"admin"`
}

type Service struct {
	admins store.AdminStore
	secret []byte
	logger *zap.Logger
}

func NewService(admins store.AdminStore, secret string, logger *zap.Logger) *Service {
	return &Service{
		admins: admins,
		secret: []byte(secret),
		logger: logger,
	}
}

func (s *Service) Login(ctx context.Context, req *admin.LoginRequest) (*LoginResult, error) {
	a, err := s.admins.FindByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, xerrors.ErrNotFound) {
			return nil, xerrors.Wrap(xerrors.ErrUnauthorized, "invalid credentials")
		}
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte(req.Password)); err != nil {
		s.logger.Warn("failed login attempt", zap.String("username", req.Username))
		return nil, xerrors.Wrap(xerrors.ErrUnauthorized, "invalid credentials")
	}

	expires := time.Now().Add(tokenTTL)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		Name:   a.DisplayName,
		Role:   string(a.Role),
		Avatar: a.Avatar,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   a.ID,
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(expires),
		},
	})
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return nil, fmt.Errorf("sign token: %w", err)
	}

	s.logger.Info("admin logged in",
		zap.String("admin_id", a.ID),
		zap.String("role", string(a.Role)),
	)
	return &LoginResult{Token: signed, ExpiresAt: expires, Admin: a}, nil
}

// VerifyToken parses and validates an access token and rebuilds the
// actor it carries.
func (s *Service) VerifyToken(tokenString string) (actor.Actor, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return actor.Actor{}, xerrors.Wrap(xerrors.ErrUnauthorized, "invalid or expired token")
	}
	return actor.Actor{
		ID:     claims.Subject,
		Name:   claims.Name,
		Role:   claims.Role,
		Avatar: claims.Avatar,
	}, nil
}

// CreateSubAdmin is restricted to the superadmin. The created account is
// always a subadmin; there is exactly one superadmin, created at boot.
func (s *Service) CreateSubAdmin(ctx context.Context, act actor.Actor, req *admin.CreateAdminRequest) (*admin.Admin, error) {
	if act.Role != string(admin.RoleSuperAdmin) {
		return nil, xerrors.Wrap(xerrors.ErrForbidden, "only the superadmin may create admins")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	a := &admin.Admin{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: string(hash),
		DisplayName:  req.DisplayName,
		Role:         admin.RoleSubAdmin,
		Avatar:       req.Avatar,
	}
	if err := s.admins.Create(ctx, a); err != nil {
		return nil, err
	}

	s.logger.Info("subadmin created",
		zap.String("admin_id", a.ID),
		zap.String("username", a.Username),
		zap.String("created_by", act.ID),
	)
	return a, nil
}

func (s *Service) ListAdmins(ctx context.Context) ([]*admin.Admin, error) {
	return s.admins.FindAll(ctx)
}

// DeleteAdmin removes a subadmin. The superadmin account cannot be
// deleted, by anyone.
func (s *Service) DeleteAdmin(ctx context.Context, act actor.Actor, id string) error {
	if act.Role != string(admin.RoleSuperAdmin) {
		return xerrors.Wrap(xerrors.ErrForbidden, "only the superadmin may delete admins")
	}
	target, err := s.admins.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if target.Role == admin.RoleSuperAdmin {
		return xerrors.Wrap(xerrors.ErrForbidden, "the superadmin account cannot be deleted")
	}
	if err := s.admins.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("admin deleted",
		zap.String("admin_id", id),
		zap.String("deleted_by", act.ID),
	)
	return nil
}
