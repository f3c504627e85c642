package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/lavka-tech/storefront-backend/internal/domain"
	"github.com/lavka-tech/storefront-backend/pkg/e"
	"github.com/lavka-tech/storefront-backend/pkg/logger"
)

// AuthUseCase реализует жизненный цикл сессии:
// SignedOut -> (SignIn | SignUp) -> SignedIn -> SignOut -> SignedOut.
// Выход из аккаунта удаляет сессию в Redis, поэтому токен отзывается фактически.
type AuthUseCase struct {
	profileRepo ProfileRepository
	sessionRepo SessionRepository
	hasher      PasswordHasher
	tokens      TokenManager
	logger      logger.Logger
}

func NewAuthUC(
	profileRepo ProfileRepository,
	sessionRepo SessionRepository,
	hasher PasswordHasher,
	tokens TokenManager,
	logger logger.Logger,
) *AuthUseCase {
	return &AuthUseCase{
		profileRepo: profileRepo,
		sessionRepo: sessionRepo,
		hasher:      hasher,
		tokens:      tokens,
		logger:      logger,
	}
}

// SignUp регистрирует профиль с ролью customer и сразу открывает сессию.
func (a *AuthUseCase) SignUp(ctx context.Context, req *SignUpReq) (*AuthRes, error) {
	const op = "AuthUseCase.SignUp"

	if err := a.validateSignUp(req); err != nil {
		return nil, e.Wrap(op, err)
	}

	hash, err := a.hasher.Hash(req.Password)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	email := normalizeEmail(req.Email)
	profile, err := a.profileRepo.Create(ctx, domain.NewProfile(email, hash, strings.TrimSpace(req.FullName)))
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return a.openSession(ctx, op, profile)
}

// SignIn аутентифицирует по email и паролю. Неизвестный email и неверный пароль
// дают одну и ту же структурированную ошибку e.ErrInvalidCredentials.
func (a *AuthUseCase) SignIn(ctx context.Context, req *SignInReq) (*AuthRes, error) {
	const op = "AuthUseCase.SignIn"

	profile, err := a.profileRepo.GetByEmail(ctx, normalizeEmail(req.Email))
	if err != nil {
		if errors.Is(err, e.ErrProfileNotFound) {
			return nil, e.Wrap(op, e.ErrInvalidCredentials)
		}
		return nil, e.Wrap(op, err)
	}

	if err := a.hasher.Compare(profile.PasswordHash, req.Password); err != nil {
		return nil, e.Wrap(op, e.ErrInvalidCredentials)
	}

	return a.openSession(ctx, op, profile)
}

// SignOut отзывает сессию. Повторный выход — no-op.
func (a *AuthUseCase) SignOut(ctx context.Context, sessionID string) error {
	const op = "AuthUseCase.SignOut"

	if err := a.sessionRepo.Delete(ctx, sessionID); err != nil {
		return e.Wrap(op, err)
	}

	return nil
}

// Authenticate проверяет токен доступа и наличие живой сессии в Redis.
func (a *AuthUseCase) Authenticate(ctx context.Context, rawToken string) (*Identity, error) {
	const op = "AuthUseCase.Authenticate"

	claims, err := a.tokens.Parse(rawToken)
	if err != nil {
		return nil, e.Wrap(op, e.ErrUnauthorized)
	}

	profileID, err := a.sessionRepo.Get(ctx, claims.SessionID)
	if err != nil {
		return nil, e.Wrap(op, e.ErrSessionRevoked)
	}

	if profileID != claims.ProfileID {
		return nil, e.Wrap(op, e.ErrUnauthorized)
	}

	return NewIdentity(claims.ProfileID, domain.Role(claims.Role), claims.SessionID), nil
}

// Me возвращает профиль текущего пользователя.
func (a *AuthUseCase) Me(ctx context.Context, profileID int64) (*domain.Profile, error) {
	const op = "AuthUseCase.Me"

	profile, err := a.profileRepo.GetByID(ctx, profileID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return profile, nil
}

// UpdateProfile применяет частичное обновление профиля. nil-поля не меняются.
func (a *AuthUseCase) UpdateProfile(ctx context.Context, req *UpdateProfileReq) (*domain.Profile, error) {
	const op = "AuthUseCase.UpdateProfile"

	profile, err := a.profileRepo.GetByID(ctx, req.ProfileID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	if req.FullName != nil {
		profile.FullName = strings.TrimSpace(*req.FullName)
	}
	if req.AvatarURL != nil {
		profile.AvatarURL = *req.AvatarURL
	}

	updated, err := a.profileRepo.Update(ctx, profile)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return updated, nil
}

// openSession создаёт Redis-сессию и выпускает токен доступа.
func (a *AuthUseCase) openSession(ctx context.Context, op string, profile *domain.Profile) (*AuthRes, error) {
	sessionID := uuid.NewString()
	if err := a.sessionRepo.Create(ctx, sessionID, profile.ID); err != nil {
		return nil, e.Wrap(op, err)
	}

	accessToken, err := a.tokens.Issue(profile.ID, string(profile.Role), sessionID)
	if err != nil {
		// Сессия без токена бесполезна, подчищаем сразу
		if delErr := a.sessionRepo.Delete(ctx, sessionID); delErr != nil {
			a.logger.Warnf("Failed to delete orphaned session %s: %v", sessionID, delErr)
		}
		return nil, e.Wrap(op, err)
	}

	return NewAuthRes(profile, accessToken), nil
}

func (a *AuthUseCase) validateSignUp(req *SignUpReq) error {
	email := normalizeEmail(req.Email)
	if email == "" || !strings.Contains(email, "@") {
		return e.ErrInvalidEmail
	}

	if len(req.Password) < 8 {
		return e.ErrPasswordTooShort
	}

	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
