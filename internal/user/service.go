package user

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/thesrcielos/SnakeArena/internal/apperrors"
	"golang.org/x/crypto/bcrypt"
)

const invalidCredentials = "Invalid credentials"

type UserService struct {
	repo     UserRepository
	tokens   *TokenManager
	revoked  RevocationList
	hashCost int
	// dummyHash is compared against when the email is unknown so both login
	// failures cost one bcrypt comparison.
	dummyHash []byte
}

func NewUserService(repo UserRepository, tokens *TokenManager, revoked RevocationList, hashCost int) *UserService {
	if hashCost < bcrypt.MinCost || hashCost > bcrypt.MaxCost {
		hashCost = bcrypt.DefaultCost
	}
	dummy, _ := bcrypt.GenerateFromPassword([]byte("snake-arena-dummy"), hashCost)
	return &UserService{
		repo:      repo,
		tokens:    tokens,
		revoked:   revoked,
		hashCost:  hashCost,
		dummyHash: dummy,
	}
}

// Register stores a new user with a bcrypt hash of the password.
func (u *UserService) Register(ctx context.Context, req SignupRequest) (*User, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	existing, err := u.repo.GetUserByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperrors.Conflict("Email already registered")
	}
	existing, err = u.repo.GetUserByUsername(ctx, req.Username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperrors.Conflict("Username already taken")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), u.hashCost)
	if err != nil {
		return nil, apperrors.NewAppError(500, "error hashing password", err)
	}

	newUser := &User{
		ID:           uuid.NewString(),
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: string(hashed),
		CreatedAt:    time.Now().UTC(),
	}
	if err := u.repo.CreateUser(ctx, newUser); err != nil {
		return nil, err
	}
	return newUser, nil
}

func (u *UserService) Signup(ctx context.Context, req SignupRequest) (*Session, error) {
	created, err := u.Register(ctx, req)
	if err != nil {
		return nil, err
	}
	return u.newSession(created)
}

func (u *UserService) Login(ctx context.Context, req LoginRequest) (*Session, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	found, err := u.repo.GetUserByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if found == nil {
		_ = bcrypt.CompareHashAndPassword(u.dummyHash, []byte(req.Password))
		return nil, apperrors.Unauthorized(invalidCredentials)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(found.PasswordHash), []byte(req.Password)); err != nil {
		return nil, apperrors.Unauthorized(invalidCredentials)
	}
	return u.newSession(found)
}

// Logout revokes the session carried by token. Unparseable or expired tokens
// need no revocation and are ignored.
func (u *UserService) Logout(ctx context.Context, token string) error {
	claims, err := u.tokens.Parse(token)
	if err != nil {
		return nil
	}
	if err := u.revoked.Revoke(ctx, claims.ID, claims.ExpiresAt.Time); err != nil {
		return apperrors.Storage("error revoking session", err)
	}
	return nil
}

// Authenticate resolves already verified claims to a live user.
func (u *UserService) Authenticate(ctx context.Context, claims *SessionClaims) (*User, error) {
	if claims == nil {
		return nil, apperrors.Unauthorized("Not authenticated")
	}
	revoked, err := u.revoked.IsRevoked(ctx, claims.ID)
	if err != nil {
		return nil, apperrors.Storage("error checking session", err)
	}
	if revoked {
		return nil, apperrors.Unauthorized("Not authenticated")
	}

	found, err := u.repo.GetUser(ctx, claims.UserID)
	if err != nil {
		return nil, err
	}
	if found == nil {
		return nil, apperrors.Unauthorized("Not authenticated")
	}
	return found, nil
}

func (u *UserService) HasUsers(ctx context.Context) (bool, error) {
	n, err := u.repo.CountUsers(ctx)
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (u *UserService) newSession(usr *User) (*Session, error) {
	token, claims, err := u.tokens.Generate(usr.ID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "error creating jwt token", err)
	}
	return &Session{
		User:      usr,
		Token:     token,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}
