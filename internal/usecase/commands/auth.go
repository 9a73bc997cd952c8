package commands

import (
	"context"
	"log/slog"
	"time"

	"hospital-ops/internal/domain/user"
	"hospital-ops/internal/infra"
	"hospital-ops/internal/pkg/clock"
	"hospital-ops/internal/pkg/errs"
	"hospital-ops/internal/pkg/password"
	"hospital-ops/internal/usecase/queries"
	"hospital-ops/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	// Unknown email and wrong password share this error so callers cannot enumerate accounts.
	ErrInvalidCredentials = errs.Mark(errs.New("invalid email or password"), errs.ErrUnauthorized)
	ErrDuplicateEmail     = errs.Validation("email is already registered")
	ErrTokenGeneration    = errs.New("token generation failed")
	ErrPasswordHashing    = errs.New("password hashing failed")
)

const bootstrapAdminName = "Administrator"

type TokenIssuer interface {
	GenerateToken(userID uuid.UUID, role user.Role) (string, error)
	TokenDuration() time.Duration
}

type RegisterInput struct {
	Name       string
	Email      string
	Password   string
	Role       string
	Department string
}

type LoginInput struct {
	Email    string
	Password string
}

type LoginResult struct {
	UserID      uuid.UUID
	AccessToken string
	ExpiresIn   time.Duration
}

type AuthCommands interface {
	Register(ctx context.Context, in RegisterInput) (uuid.UUID, error)
	Login(ctx context.Context, in LoginInput) (*LoginResult, error)
	// EnsureAdmin creates the first admin account when the email is not registered yet.
	EnsureAdmin(ctx context.Context, email, plainPassword string) error
}

type authCommandsImpl struct {
	uow    shared.UnitOfWork
	tokens TokenIssuer
	clock  clock.Clock
}

func NewAuthCommands(uow shared.UnitOfWork, tokens TokenIssuer, clk clock.Clock) AuthCommands {
	return &authCommandsImpl{
		uow:    uow,
		tokens: tokens,
		clock:  clk,
	}
}

func (a *authCommandsImpl) Register(ctx context.Context, in RegisterInput) (uuid.UUID, error) {
	email, err := user.NewEmail(in.Email)
	if err != nil {
		return uuid.Nil, err
	}
	pw, err := user.NewPassword(in.Password)
	if err != nil {
		return uuid.Nil, err
	}
	role, err := user.NewRole(in.Role)
	if err != nil {
		return uuid.Nil, err
	}

	hash, err := password.HashPassword(pw.Value())
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrPasswordHashing)
	}

	u, err := user.NewUser(in.Name, email, hash, role, in.Department, a.clock.Now())
	if err != nil {
		return uuid.Nil, err
	}

	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return translateDuplicate(tx.Users().Create(ctx, u), ErrDuplicateEmail)
	})
	if err != nil {
		return uuid.Nil, err
	}
	return u.ID(), nil
}

func (a *authCommandsImpl) Login(ctx context.Context, in LoginInput) (*LoginResult, error) {
	credentials, err := user.NewCredentials(in.Email, in.Password)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	snap, err := a.uow.CommandReads().UserByEmail(ctx, credentials.Email().Value())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := password.ComparePassword(snap.PasswordHash, credentials.Password()); err != nil {
		return nil, ErrInvalidCredentials
	}
	if !snap.IsActive {
		return nil, queries.ErrUserInactive
	}

	role, err := user.NewRole(snap.Role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}
	token, err := a.tokens.GenerateToken(snap.ID, role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Users().UpdateLastLogin(ctx, snap.ID, a.clock.Now())
	})
	if err != nil {
		// login already succeeded
		slog.Warn("failed to update last login", "user_id", snap.ID, "error", err.Error())
	}

	return &LoginResult{
		UserID:      snap.ID,
		AccessToken: token,
		ExpiresIn:   a.tokens.TokenDuration(),
	}, nil
}

func (a *authCommandsImpl) EnsureAdmin(ctx context.Context, email, plainPassword string) error {
	_, err := a.uow.CommandReads().UserByEmail(ctx, email)
	if err == nil {
		return nil
	}
	if !infra.IsKind(err, infra.KindNotFound) {
		return err
	}

	_, err = a.Register(ctx, RegisterInput{
		Name:     bootstrapAdminName,
		Email:    email,
		Password: plainPassword,
		Role:     string(user.RoleAdmin),
	})
	if errs.Is(err, ErrDuplicateEmail) {
		return nil
	}
	if err != nil {
		return err
	}

	slog.Info("bootstrap admin created", "email", email)
	return nil
}
