package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mihretgelan/TasteReel/internal/domain/contract"
	"github.com/mihretgelan/TasteReel/internal/domain/entity"
	usecasecontract "github.com/mihretgelan/TasteReel/internal/usecase/contract"
)

// ErrInvalidCredentials is returned for a wrong email/password pair. The same
// error covers both cases so responses do not reveal which field was wrong.
var ErrInvalidCredentials = errors.New("invalid email or password")

// AuthUsecase implements registration and login for both principal kinds
// (users and food partners).
type AuthUsecase struct {
	userRepo      contract.IUserRepository
	partnerRepo   contract.IFoodPartnerRepository
	hasher        contract.IHasher
	jwtService    JWTService
	uuidGenerator contract.IUUIDGenerator
	validator     usecasecontract.IValidator
	logger        usecasecontract.IAppLogger
}

// NewAuthUsecase creates a new AuthUsecase instance.
func NewAuthUsecase(
	userRepo contract.IUserRepository,
	partnerRepo contract.IFoodPartnerRepository,
	hasher contract.IHasher,
	jwtService JWTService,
	uuidGenerator contract.IUUIDGenerator,
	validator usecasecontract.IValidator,
	logger usecasecontract.IAppLogger,
) *AuthUsecase {
	return &AuthUsecase{
		userRepo:      userRepo,
		partnerRepo:   partnerRepo,
		hasher:        hasher,
		jwtService:    jwtService,
		uuidGenerator: uuidGenerator,
		validator:     validator,
		logger:        logger,
	}
}

// check if AuthUsecase implements the IAuthUseCase
var _ usecasecontract.IAuthUseCase = (*AuthUsecase)(nil)

// RegisterUser creates a viewer account and returns it with a signed token.
func (uc *AuthUsecase) RegisterUser(ctx context.Context, fullName, email, password string) (*entity.User, string, error) {
	if err := uc.validator.ValidateEmail(email); err != nil {
		return nil, "", fmt.Errorf("invalid email format: %w", err)
	}
	if err := uc.validator.ValidatePasswordStrength(password); err != nil {
		return nil, "", fmt.Errorf("weak password: %w", err)
	}

	existing, err := uc.userRepo.GetUserByEmail(ctx, email)
	if err != nil && !errors.Is(err, contract.ErrUserNotFound) {
		uc.logger.Errorf("failed to check for existing user by email: %v", err)
		return nil, "", fmt.Errorf("failed to check existing account: %w", err)
	}
	if existing != nil {
		return nil, "", contract.ErrEmailTaken
	}

	hashedPassword, err := uc.hasher.HashPassword(password)
	if err != nil {
		uc.logger.Errorf("failed to hash password: %v", err)
		return nil, "", fmt.Errorf("failed to process password")
	}

	now := time.Now()
	user := &entity.User{
		ID:           uc.uuidGenerator.NewUUID(),
		FullName:     fullName,
		Email:        email,
		PasswordHash: hashedPassword,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.userRepo.CreateUser(ctx, user); err != nil {
		uc.logger.Errorf("failed to create user: %v", err)
		return nil, "", fmt.Errorf("failed to create user: %w", err)
	}

	token, err := uc.jwtService.GenerateToken(user.ID, entity.PrincipalUser)
	if err != nil {
		uc.logger.Errorf("failed to sign token for user %s: %v", user.ID, err)
		return nil, "", fmt.Errorf("failed to sign token: %w", err)
	}
	return user, token, nil
}

// LoginUser authenticates a viewer account and returns it with a signed token.
func (uc *AuthUsecase) LoginUser(ctx context.Context, email, password string) (*entity.User, string, error) {
	user, err := uc.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, contract.ErrUserNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		uc.logger.Errorf("failed to fetch user by email: %v", err)
		return nil, "", fmt.Errorf("failed to fetch user: %w", err)
	}
	if err := uc.hasher.ComparePasswordHash(password, user.PasswordHash); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := uc.jwtService.GenerateToken(user.ID, entity.PrincipalUser)
	if err != nil {
		uc.logger.Errorf("failed to sign token for user %s: %v", user.ID, err)
		return nil, "", fmt.Errorf("failed to sign token: %w", err)
	}
	return user, token, nil
}

// RegisterFoodPartner creates a partner account and returns it with a signed token.
func (uc *AuthUsecase) RegisterFoodPartner(ctx context.Context, fullName, email, password, phone, city string) (*entity.FoodPartner, string, error) {
	if err := uc.validator.ValidateEmail(email); err != nil {
		return nil, "", fmt.Errorf("invalid email format: %w", err)
	}
	if err := uc.validator.ValidatePasswordStrength(password); err != nil {
		return nil, "", fmt.Errorf("weak password: %w", err)
	}

	existing, err := uc.partnerRepo.GetFoodPartnerByEmail(ctx, email)
	if err != nil && !errors.Is(err, contract.ErrPartnerNotFound) {
		uc.logger.Errorf("failed to check for existing partner by email: %v", err)
		return nil, "", fmt.Errorf("failed to check existing account: %w", err)
	}
	if existing != nil {
		return nil, "", contract.ErrEmailTaken
	}

	hashedPassword, err := uc.hasher.HashPassword(password)
	if err != nil {
		uc.logger.Errorf("failed to hash password: %v", err)
		return nil, "", fmt.Errorf("failed to process password")
	}

	now := time.Now()
	partner := &entity.FoodPartner{
		ID:           uc.uuidGenerator.NewUUID(),
		FullName:     fullName,
		Email:        email,
		PasswordHash: hashedPassword,
		Phone:        phone,
		City:         city,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.partnerRepo.CreateFoodPartner(ctx, partner); err != nil {
		uc.logger.Errorf("failed to create food partner: %v", err)
		return nil, "", fmt.Errorf("failed to create food partner: %w", err)
	}

	token, err := uc.jwtService.GenerateToken(partner.ID, entity.PrincipalFoodPartner)
	if err != nil {
		uc.logger.Errorf("failed to sign token for partner %s: %v", partner.ID, err)
		return nil, "", fmt.Errorf("failed to sign token: %w", err)
	}
	return partner, token, nil
}

// LoginFoodPartner authenticates a partner account and returns it with a signed token.
func (uc *AuthUsecase) LoginFoodPartner(ctx context.Context, email, password string) (*entity.FoodPartner, string, error) {
	partner, err := uc.partnerRepo.GetFoodPartnerByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, contract.ErrPartnerNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		uc.logger.Errorf("failed to fetch partner by email: %v", err)
		return nil, "", fmt.Errorf("failed to fetch partner: %w", err)
	}
	if err := uc.hasher.ComparePasswordHash(password, partner.PasswordHash); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := uc.jwtService.GenerateToken(partner.ID, entity.PrincipalFoodPartner)
	if err != nil {
		uc.logger.Errorf("failed to sign token for partner %s: %v", partner.ID, err)
		return nil, "", fmt.Errorf("failed to sign token: %w", err)
	}
	return partner, token, nil
}

// GetUserByID loads a viewer account, used by the auth middleware.
func (uc *AuthUsecase) GetUserByID(ctx context.Context, id string) (*entity.User, error) {
	return uc.userRepo.GetUserByID(ctx, id)
}

// GetFoodPartnerByID loads a partner account, used by the auth middleware.
func (uc *AuthUsecase) GetFoodPartnerByID(ctx context.Context, id string) (*entity.FoodPartner, error) {
	return uc.partnerRepo.GetFoodPartnerByID(ctx, id)
}
