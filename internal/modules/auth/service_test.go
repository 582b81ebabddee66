package auth

import (
	"context"
	"testing"

	"makeupshop/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, u *domain.User) error {
	args := m.Called(ctx, u)
	if u != nil {
		u.ID = 42 // simulate DB insert
	}
	return args.Error(0)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

type MockTokenIssuer struct {
	mock.Mock
}

func (m *MockTokenIssuer) GenerateToken(userID int64, role string) (string, error) {
	args := m.Called(userID, role)
	return args.String(0), args.Error(1)
}

func TestService_Register_Success(t *testing.T) {
	users := new(MockUserRepository)
	tokens := new(MockTokenIssuer)
	svc := NewService(users, tokens)

	users.On("GetByEmail", mock.Anything, "jane@makeupshop.io").Return(nil, gorm.ErrRecordNotFound)
	users.On("Create", mock.Anything, mock.Anything).Return(nil)
	tokens.On("GenerateToken", int64(42), "artist").Return("token123", nil)

	resp, err := svc.Register(context.Background(), RegisterRequest{
		Email:    "Jane@MakeupShop.io",
		Password: "secret-pass",
		Nickname: "glowbyjane",
		Role:     "artist",
	})

	assert.NoError(t, err)
	assert.Equal(t, "token123", resp.AccessToken)
	assert.Equal(t, "artist", resp.Role)

	// email is normalized to lowercase before any lookup
	users.AssertCalled(t, "GetByEmail", mock.Anything, "jane@makeupshop.io")
}

func TestService_Register_EmailTaken(t *testing.T) {
	users := new(MockUserRepository)
	tokens := new(MockTokenIssuer)
	svc := NewService(users, tokens)

	users.On("GetByEmail", mock.Anything, "jane@makeupshop.io").Return(&domain.User{ID: 1}, nil)

	_, err := svc.Register(context.Background(), RegisterRequest{
		Email:    "jane@makeupshop.io",
		Password: "secret-pass",
		Nickname: "glowbyjane",
		Role:     "model",
	})

	assert.ErrorIs(t, err, ErrEmailTaken)
	users.AssertNotCalled(t, "Create")
}

func TestService_Register_InvalidRole(t *testing.T) {
	users := new(MockUserRepository)
	svc := NewService(users, new(MockTokenIssuer))

	_, err := svc.Register(context.Background(), RegisterRequest{
		Email:    "jane@makeupshop.io",
		Password: "secret-pass",
		Nickname: "glowbyjane",
		Role:     "admin",
	})

	assert.ErrorIs(t, err, ErrInvalidRole)
	users.AssertNotCalled(t, "GetByEmail")
}

func TestService_Login_Success(t *testing.T) {
	users := new(MockUserRepository)
	tokens := new(MockTokenIssuer)
	svc := NewService(users, tokens)

	hash, _ := bcrypt.GenerateFromPassword([]byte("secret-pass"), bcrypt.MinCost)
	users.On("GetByEmail", mock.Anything, "jane@makeupshop.io").Return(&domain.User{
		ID:           7,
		Email:        "jane@makeupshop.io",
		PasswordHash: string(hash),
		Role:         domain.RoleModel,
	}, nil)
	tokens.On("GenerateToken", int64(7), "model").Return("token456", nil)

	resp, err := svc.Login(context.Background(), LoginRequest{
		Email:    "jane@makeupshop.io",
		Password: "secret-pass",
	})

	assert.NoError(t, err)
	assert.Equal(t, int64(7), resp.UserID)
	assert.Equal(t, "token456", resp.AccessToken)
}

func TestService_Login_WrongPassword(t *testing.T) {
	users := new(MockUserRepository)
	tokens := new(MockTokenIssuer)
	svc := NewService(users, tokens)

	hash, _ := bcrypt.GenerateFromPassword([]byte("secret-pass"), bcrypt.MinCost)
	users.On("GetByEmail", mock.Anything, "jane@makeupshop.io").Return(&domain.User{
		ID:           7,
		PasswordHash: string(hash),
	}, nil)

	_, err := svc.Login(context.Background(), LoginRequest{
		Email:    "jane@makeupshop.io",
		Password: "wrong-pass",
	})

	assert.ErrorIs(t, err, ErrInvalidCredentials)
	tokens.AssertNotCalled(t, "GenerateToken")
}

func TestService_Login_UnknownEmail(t *testing.T) {
	users := new(MockUserRepository)
	svc := NewService(users, new(MockTokenIssuer))

	users.On("GetByEmail", mock.Anything, "nobody@makeupshop.io").Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.Login(context.Background(), LoginRequest{
		Email:    "nobody@makeupshop.io",
		Password: "whatever1",
	})

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
