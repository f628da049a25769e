package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/mihretgelan/TasteReel/internal/domain/contract"
	"github.com/mihretgelan/TasteReel/internal/domain/entity"
	"github.com/mihretgelan/TasteReel/internal/usecase"
	"github.com/stretchr/testify/assert"
)

type fakeUserRepo struct {
	users map[string]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*entity.User{}}
}

func (r *fakeUserRepo) CreateUser(ctx context.Context, user *entity.User) error {
	r.users[user.Email] = user
	return nil
}

func (r *fakeUserRepo) GetUserByID(ctx context.Context, id string) (*entity.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, contract.ErrUserNotFound
}

func (r *fakeUserRepo) GetUserByEmail(ctx context.Context, email string) (*entity.User, error) {
	if u, ok := r.users[email]; ok {
		return u, nil
	}
	return nil, contract.ErrUserNotFound
}

type fakePartnerRepo struct {
	partners map[string]*entity.FoodPartner
}

func newFakePartnerRepo() *fakePartnerRepo {
	return &fakePartnerRepo{partners: map[string]*entity.FoodPartner{}}
}

func (r *fakePartnerRepo) CreateFoodPartner(ctx context.Context, partner *entity.FoodPartner) error {
	r.partners[partner.Email] = partner
	return nil
}

func (r *fakePartnerRepo) GetFoodPartnerByID(ctx context.Context, id string) (*entity.FoodPartner, error) {
	for _, p := range r.partners {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, contract.ErrPartnerNotFound
}

func (r *fakePartnerRepo) GetFoodPartnerByEmail(ctx context.Context, email string) (*entity.FoodPartner, error) {
	if p, ok := r.partners[email]; ok {
		return p, nil
	}
	return nil, contract.ErrPartnerNotFound
}

// fakeHasher makes hashes reversible so tests can assert the stored value.
type fakeHasher struct{}

func (fakeHasher) HashPassword(password string) (string, error) {
	return "hashed:" + password, nil
}

func (fakeHasher) ComparePasswordHash(password, hashedPassword string) error {
	if "hashed:"+password != hashedPassword {
		return errors.New("hash mismatch")
	}
	return nil
}

type fakeJWT struct{}

func (fakeJWT) GenerateToken(id string, kind entity.PrincipalKind) (string, error) {
	return "token:" + id + ":" + string(kind), nil
}

func (fakeJWT) ParseToken(token string) (*entity.Claims, error) {
	return nil, errors.New("not implemented")
}

type acceptAllValidator struct {
	rejectEmail    bool
	rejectPassword bool
}

func (v acceptAllValidator) ValidateEmail(email string) error {
	if v.rejectEmail {
		return errors.New("invalid email")
	}
	return nil
}

func (v acceptAllValidator) ValidatePasswordStrength(password string) error {
	if v.rejectPassword {
		return errors.New("too weak")
	}
	return nil
}

func newAuthUsecase(userRepo *fakeUserRepo, partnerRepo *fakePartnerRepo, v acceptAllValidator) *usecase.AuthUsecase {
	return usecase.NewAuthUsecase(userRepo, partnerRepo, fakeHasher{}, fakeJWT{}, &seqUUID{}, v, nopLogger{})
}

func TestRegisterUser(t *testing.T) {
	userRepo := newFakeUserRepo()
	uc := newAuthUsecase(userRepo, newFakePartnerRepo(), acceptAllValidator{})

	user, token, err := uc.RegisterUser(context.Background(), "Abel Tesfaye", "abel@example.com", "Password123")

	assert.NoError(t, err)
	assert.Equal(t, "uuid-1", user.ID)
	assert.Equal(t, "token:uuid-1:user", token)
	assert.Equal(t, "hashed:Password123", user.PasswordHash)
	assert.False(t, user.CreatedAt.IsZero())

	stored, err := userRepo.GetUserByEmail(context.Background(), "abel@example.com")
	assert.NoError(t, err)
	assert.Equal(t, user.ID, stored.ID)
}

func TestRegisterUser_EmailTaken(t *testing.T) {
	userRepo := newFakeUserRepo()
	uc := newAuthUsecase(userRepo, newFakePartnerRepo(), acceptAllValidator{})

	_, _, err := uc.RegisterUser(context.Background(), "Abel Tesfaye", "abel@example.com", "Password123")
	assert.NoError(t, err)

	_, _, err = uc.RegisterUser(context.Background(), "Other Person", "abel@example.com", "Password456")
	assert.ErrorIs(t, err, contract.ErrEmailTaken)
}

func TestRegisterUser_WeakPassword(t *testing.T) {
	uc := newAuthUsecase(newFakeUserRepo(), newFakePartnerRepo(), acceptAllValidator{rejectPassword: true})

	_, _, err := uc.RegisterUser(context.Background(), "Abel Tesfaye", "abel@example.com", "short")
	assert.Error(t, err)
}

func TestRegisterUser_BadEmail(t *testing.T) {
	uc := newAuthUsecase(newFakeUserRepo(), newFakePartnerRepo(), acceptAllValidator{rejectEmail: true})

	_, _, err := uc.RegisterUser(context.Background(), "Abel Tesfaye", "not-an-email", "Password123")
	assert.Error(t, err)
}

func TestLoginUser(t *testing.T) {
	userRepo := newFakeUserRepo()
	uc := newAuthUsecase(userRepo, newFakePartnerRepo(), acceptAllValidator{})

	registered, _, err := uc.RegisterUser(context.Background(), "Abel Tesfaye", "abel@example.com", "Password123")
	assert.NoError(t, err)

	user, token, err := uc.LoginUser(context.Background(), "abel@example.com", "Password123")
	assert.NoError(t, err)
	assert.Equal(t, registered.ID, user.ID)
	assert.NotEmpty(t, token)
}

func TestLoginUser_WrongPassword(t *testing.T) {
	uc := newAuthUsecase(newFakeUserRepo(), newFakePartnerRepo(), acceptAllValidator{})

	_, _, err := uc.RegisterUser(context.Background(), "Abel Tesfaye", "abel@example.com", "Password123")
	assert.NoError(t, err)

	_, _, err = uc.LoginUser(context.Background(), "abel@example.com", "Password124")
	assert.ErrorIs(t, err, usecase.ErrInvalidCredentials)
}

func TestLoginUser_UnknownEmail(t *testing.T) {
	uc := newAuthUsecase(newFakeUserRepo(), newFakePartnerRepo(), acceptAllValidator{})

	_, _, err := uc.LoginUser(context.Background(), "nobody@example.com", "Password123")
	assert.ErrorIs(t, err, usecase.ErrInvalidCredentials)
}

func TestRegisterFoodPartner(t *testing.T) {
	partnerRepo := newFakePartnerRepo()
	uc := newAuthUsecase(newFakeUserRepo(), partnerRepo, acceptAllValidator{})

	partner, token, err := uc.RegisterFoodPartner(context.Background(), "Mama's Kitchen", "mama@example.com", "Password123", "0911000000", "Addis Ababa")

	assert.NoError(t, err)
	assert.Equal(t, "token:uuid-1:food-partner", token)
	assert.Equal(t, "Addis Ababa", partner.City)
	assert.Equal(t, "0911000000", partner.Phone)
}

func TestLoginFoodPartner(t *testing.T) {
	uc := newAuthUsecase(newFakeUserRepo(), newFakePartnerRepo(), acceptAllValidator{})

	registered, _, err := uc.RegisterFoodPartner(context.Background(), "Mama's Kitchen", "mama@example.com", "Password123", "0911000000", "Addis Ababa")
	assert.NoError(t, err)

	partner, _, err := uc.LoginFoodPartner(context.Background(), "mama@example.com", "Password123")
	assert.NoError(t, err)
	assert.Equal(t, registered.ID, partner.ID)

	_, _, err = uc.LoginFoodPartner(context.Background(), "mama@example.com", "wrong")
	assert.ErrorIs(t, err, usecase.ErrInvalidCredentials)
}

func TestUserAndPartnerEmailsAreSeparate(t *testing.T) {
	uc := newAuthUsecase(newFakeUserRepo(), newFakePartnerRepo(), acceptAllValidator{})

	_, _, err := uc.RegisterUser(context.Background(), "Abel Tesfaye", "shared@example.com", "Password123")
	assert.NoError(t, err)

	// The same email may exist as a user and as a partner.
	_, _, err = uc.RegisterFoodPartner(context.Background(), "Shared Kitchen", "shared@example.com", "Password123", "0911000000", "Addis Ababa")
	assert.NoError(t, err)
}
