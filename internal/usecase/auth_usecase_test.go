package usecase

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/lavka-tech/storefront-backend/internal/domain"
	"github.com/lavka-tech/storefront-backend/pkg/e"
	"github.com/lavka-tech/storefront-backend/pkg/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeProfileRepo — in-memory реализация ProfileRepository.
type fakeProfileRepo struct {
	byID    map[int64]*domain.Profile
	byEmail map[string]*domain.Profile
	nextID  int64
}

func newFakeProfileRepo() *fakeProfileRepo {
	return &fakeProfileRepo{
		byID:    make(map[int64]*domain.Profile),
		byEmail: make(map[string]*domain.Profile),
	}
}

func (f *fakeProfileRepo) Create(ctx context.Context, profile *domain.Profile) (*domain.Profile, error) {
	if _, ok := f.byEmail[profile.Email]; ok {
		return nil, e.ErrEmailTaken
	}
	f.nextID++
	profile.ID = f.nextID
	f.byID[profile.ID] = profile
	f.byEmail[profile.Email] = profile
	return profile, nil
}

func (f *fakeProfileRepo) GetByID(ctx context.Context, id int64) (*domain.Profile, error) {
	profile, ok := f.byID[id]
	if !ok {
		return nil, e.ErrProfileNotFound
	}
	return profile, nil
}

func (f *fakeProfileRepo) GetByEmail(ctx context.Context, email string) (*domain.Profile, error) {
	profile, ok := f.byEmail[email]
	if !ok {
		return nil, e.ErrProfileNotFound
	}
	return profile, nil
}

func (f *fakeProfileRepo) Update(ctx context.Context, profile *domain.Profile) (*domain.Profile, error) {
	f.byID[profile.ID] = profile
	f.byEmail[profile.Email] = profile
	return profile, nil
}

// fakeSessionRepo — in-memory реализация SessionRepository.
type fakeSessionRepo struct {
	sessions map[string]int64
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{sessions: make(map[string]int64)}
}

func (f *fakeSessionRepo) Create(ctx context.Context, sessionID string, profileID int64) error {
	f.sessions[sessionID] = profileID
	return nil
}

func (f *fakeSessionRepo) Get(ctx context.Context, sessionID string) (int64, error) {
	profileID, ok := f.sessions[sessionID]
	if !ok {
		return 0, e.ErrSessionRevoked
	}
	return profileID, nil
}

func (f *fakeSessionRepo) Delete(ctx context.Context, sessionID string) error {
	delete(f.sessions, sessionID)
	return nil
}

// fakeHasher — детерминированный хешер без затрат bcrypt.
type fakeHasher struct{}

func (fakeHasher) Hash(password string) (string, error) {
	return "hashed:" + password, nil
}

func (fakeHasher) Compare(hash, password string) error {
	if hash != "hashed:"+password {
		return fmt.Errorf("hash mismatch")
	}
	return nil
}

func newAuthForTest() (*AuthUseCase, *fakeProfileRepo, *fakeSessionRepo) {
	profileRepo := newFakeProfileRepo()
	sessionRepo := newFakeSessionRepo()
	tokens := token.NewManager("test-secret", time.Hour)
	uc := NewAuthUC(profileRepo, sessionRepo, fakeHasher{}, tokens, nopLogger{})
	return uc, profileRepo, sessionRepo
}

func TestAuthUC_SignUpOpensSession(t *testing.T) {
	uc, _, sessionRepo := newAuthForTest()

	res, err := uc.SignUp(context.Background(), NewSignUpReq("User@Example.com", "secret-pass", "Test User"))
	require.NoError(t, err)

	assert.NotEmpty(t, res.Token)
	assert.Equal(t, "user@example.com", res.Profile.Email)
	assert.Equal(t, domain.RoleCustomer, res.Profile.Role)
	assert.Len(t, sessionRepo.sessions, 1)

	// Токен сразу пригоден для аутентификации
	identity, err := uc.Authenticate(context.Background(), res.Token)
	require.NoError(t, err)
	assert.Equal(t, res.Profile.ID, identity.ProfileID)
	assert.Equal(t, domain.RoleCustomer, identity.Role)
}

func TestAuthUC_SignUpValidation(t *testing.T) {
	uc, _, _ := newAuthForTest()
	ctx := context.Background()

	_, err := uc.SignUp(ctx, NewSignUpReq("not-an-email", "secret-pass", ""))
	assert.ErrorIs(t, err, e.ErrInvalidEmail)

	_, err = uc.SignUp(ctx, NewSignUpReq("a@b.com", "short", ""))
	assert.ErrorIs(t, err, e.ErrPasswordTooShort)
}

func TestAuthUC_SignUpDuplicateEmail(t *testing.T) {
	uc, _, _ := newAuthForTest()
	ctx := context.Background()

	_, err := uc.SignUp(ctx, NewSignUpReq("a@b.com", "secret-pass", ""))
	require.NoError(t, err)

	_, err = uc.SignUp(ctx, NewSignUpReq("A@B.com", "secret-pass", ""))
	assert.ErrorIs(t, err, e.ErrEmailTaken)
}

// Неизвестный email и неверный пароль неразличимы для клиента.
func TestAuthUC_SignInInvalidCredentials(t *testing.T) {
	uc, _, _ := newAuthForTest()
	ctx := context.Background()

	_, err := uc.SignUp(ctx, NewSignUpReq("a@b.com", "secret-pass", ""))
	require.NoError(t, err)

	_, err = uc.SignIn(ctx, NewSignInReq("missing@b.com", "secret-pass"))
	assert.ErrorIs(t, err, e.ErrInvalidCredentials)

	_, err = uc.SignIn(ctx, NewSignInReq("a@b.com", "wrong-pass"))
	assert.ErrorIs(t, err, e.ErrInvalidCredentials)
}

func TestAuthUC_SignInSuccess(t *testing.T) {
	uc, _, _ := newAuthForTest()
	ctx := context.Background()

	_, err := uc.SignUp(ctx, NewSignUpReq("a@b.com", "secret-pass", "Test User"))
	require.NoError(t, err)

	res, err := uc.SignIn(ctx, NewSignInReq("A@b.com ", "secret-pass"))
	require.NoError(t, err)
	assert.NotEmpty(t, res.Token)
}

// Выход отзывает сессию: тот же токен перестаёт проходить аутентификацию.
func TestAuthUC_SignOutRevokesToken(t *testing.T) {
	uc, _, _ := newAuthForTest()
	ctx := context.Background()

	res, err := uc.SignUp(ctx, NewSignUpReq("a@b.com", "secret-pass", ""))
	require.NoError(t, err)

	identity, err := uc.Authenticate(ctx, res.Token)
	require.NoError(t, err)

	require.NoError(t, uc.SignOut(ctx, identity.SessionID))

	_, err = uc.Authenticate(ctx, res.Token)
	assert.ErrorIs(t, err, e.ErrSessionRevoked)

	// Повторный выход — no-op
	assert.NoError(t, uc.SignOut(ctx, identity.SessionID))
}

func TestAuthUC_AuthenticateGarbageToken(t *testing.T) {
	uc, _, _ := newAuthForTest()

	_, err := uc.Authenticate(context.Background(), "not-a-jwt")
	assert.ErrorIs(t, err, e.ErrUnauthorized)
}

func TestAuthUC_UpdateProfilePartial(t *testing.T) {
	uc, _, _ := newAuthForTest()
	ctx := context.Background()

	res, err := uc.SignUp(ctx, NewSignUpReq("a@b.com", "secret-pass", "Old Name"))
	require.NoError(t, err)

	newName := "New Name"
	updated, err := uc.UpdateProfile(ctx, &UpdateProfileReq{ProfileID: res.Profile.ID, FullName: &newName})
	require.NoError(t, err)

	assert.Equal(t, "New Name", updated.FullName)
	assert.Equal(t, "a@b.com", updated.Email)
}
