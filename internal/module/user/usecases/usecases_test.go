package usecases_test

import (
	"context"
	"database/sql"
	"testing"

	"callbooking-service/config"
	"callbooking-service/internal/module/user/mocks"
	"callbooking-service/internal/module/user/models/entity"
	"callbooking-service/internal/module/user/models/request"
	"callbooking-service/internal/module/user/usecases"
	"callbooking-service/internal/pkg/errors"
	logpkg "callbooking-service/internal/pkg/log"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/oauth2"
)

var (
	uc       usecases.Usecase
	repoMock *mocks.Repositories
)

func setup() {
	repoMock = new(mocks.Repositories)
	uc = usecases.New(
		repoMock,
		logpkg.Setup(),
		&config.JwtConfig{Secret: "test-secret", ExpiryHours: 1},
		&oauth2.Config{},
		&config.SmsGatewayConfig{Sender: "CallBooking", CodeTTL: 5},
	)
}

func teardown() {
	repoMock = nil
	uc = nil
}

func TestRegister(t *testing.T) {
	setup()
	defer teardown()

	ctx := context.Background()

	t.Run("registers a user with the default role", func(t *testing.T) {
		payload := &request.Register{
			Email:    "user@example.com",
			Password: "password123",
		}

		repoMock.On("CreateUser", ctx, mock.MatchedBy(func(user *entity.User) bool {
			return user.Role == entity.RoleUser && user.Email == "user@example.com"
		})).Return(nil).Once()

		resp, err := uc.Register(ctx, payload)

		assert.NoError(t, err)
		assert.NotEmpty(t, resp.Token)
		assert.Equal(t, entity.RoleUser, resp.User.Role)
	})

	t.Run("influencer registration starts unsubmitted", func(t *testing.T) {
		payload := &request.Register{
			Email:    "jane@example.com",
			Password: "password123",
			Role:     entity.RoleInfluencer,
			Name:     "Jane",
		}

		repoMock.On("CreateUser", ctx, mock.MatchedBy(func(user *entity.User) bool {
			return user.Role == entity.RoleInfluencer &&
				user.VerificationStatus.String == entity.VerificationNotSubmitted
		})).Return(nil).Once()

		resp, err := uc.Register(ctx, payload)

		assert.NoError(t, err)
		assert.Equal(t, entity.VerificationNotSubmitted, resp.User.VerificationStatus)
	})

	t.Run("duplicate email surfaces the conflict", func(t *testing.T) {
		payload := &request.Register{
			Email:    "user@example.com",
			Password: "password123",
		}

		repoMock.On("CreateUser", ctx, mock.Anything).
			Return(errors.Conflict("email or phone already registered")).Once()

		_, err := uc.Register(ctx, payload)

		assert.Error(t, err)
		resp, ok := errors.FromError(err)
		assert.True(t, ok)
		assert.Equal(t, 409, resp.Code)
	})
}

func TestLogin(t *testing.T) {
	setup()
	defer teardown()

	ctx := context.Background()
	hash, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	user := entity.User{
		ID:           uuid.New(),
		Email:        "user@example.com",
		PasswordHash: string(hash),
		Role:         entity.RoleUser,
	}

	t.Run("valid credentials issue a token", func(t *testing.T) {
		repoMock.On("FindUserByEmail", ctx, "user@example.com").Return(user, nil).Once()

		resp, err := uc.Login(ctx, &request.Login{Email: "user@example.com", Password: "password123"})

		assert.NoError(t, err)
		assert.NotEmpty(t, resp.Token)
		assert.Equal(t, user.ID, resp.User.ID)
	})

	t.Run("wrong password is unauthorized", func(t *testing.T) {
		repoMock.On("FindUserByEmail", ctx, "user@example.com").Return(user, nil).Once()

		_, err := uc.Login(ctx, &request.Login{Email: "user@example.com", Password: "wrong"})

		assert.Error(t, err)
		resp, ok := errors.FromError(err)
		assert.True(t, ok)
		assert.Equal(t, 401, resp.Code)
	})

	t.Run("unknown email is unauthorized, not not-found", func(t *testing.T) {
		repoMock.On("FindUserByEmail", ctx, "ghost@example.com").
			Return(entity.User{}, errors.NotFound("user not found")).Once()

		_, err := uc.Login(ctx, &request.Login{Email: "ghost@example.com", Password: "password123"})

		assert.Error(t, err)
		resp, ok := errors.FromError(err)
		assert.True(t, ok)
		assert.Equal(t, 401, resp.Code)
	})
}

func TestVerifySmsCode(t *testing.T) {
	setup()
	defer teardown()

	ctx := context.Background()
	phone := "+15550001111"

	t.Run("matching code logs in an existing user", func(t *testing.T) {
		user := entity.User{
			ID:    uuid.New(),
			Email: "user@example.com",
			Phone: sql.NullString{String: phone, Valid: true},
			Role:  entity.RoleUser,
		}

		repoMock.On("GetSmsCode", ctx, phone).Return("123456", nil).Once()
		repoMock.On("DeleteSmsCode", ctx, phone).Return(nil).Once()
		repoMock.On("FindUserByPhone", ctx, phone).Return(user, nil).Once()

		resp, err := uc.VerifySmsCode(ctx, &request.VerifySmsCode{Phone: phone, Code: "123456"})

		assert.NoError(t, err)
		assert.NotEmpty(t, resp.Token)
	})

	t.Run("mismatched code is rejected", func(t *testing.T) {
		setup()
		repoMock.On("GetSmsCode", ctx, phone).Return("123456", nil).Once()

		_, err := uc.VerifySmsCode(ctx, &request.VerifySmsCode{Phone: phone, Code: "654321"})

		assert.Error(t, err)
		resp, ok := errors.FromError(err)
		assert.True(t, ok)
		assert.Equal(t, 400, resp.Code)
		repoMock.AssertNotCalled(t, "DeleteSmsCode", ctx, phone)
	})

	t.Run("first login provisions an account", func(t *testing.T) {
		repoMock.On("GetSmsCode", ctx, phone).Return("123456", nil).Once()
		repoMock.On("DeleteSmsCode", ctx, phone).Return(nil).Once()
		repoMock.On("FindUserByPhone", ctx, phone).
			Return(entity.User{}, errors.NotFound("user not found")).Once()
		repoMock.On("CreateUser", ctx, mock.MatchedBy(func(user *entity.User) bool {
			return user.Phone.String == phone && user.IsVerified
		})).Return(nil).Once()

		resp, err := uc.VerifySmsCode(ctx, &request.VerifySmsCode{Phone: phone, Code: "123456"})

		assert.NoError(t, err)
		assert.NotEmpty(t, resp.Token)
	})
}

func TestSendSmsCode(t *testing.T) {
	setup()
	defer teardown()

	ctx := context.Background()
	phone := "+15550001111"

	t.Run("stores a six digit code and sends it", func(t *testing.T) {
		var storedCode string
		repoMock.On("SetSmsCode", ctx, phone, mock.MatchedBy(func(code string) bool {
			storedCode = code
			return len(code) == 6
		}), mock.Anything).Return(nil).Once()
		repoMock.On("SendSms", ctx, phone, mock.MatchedBy(func(body string) bool {
			return storedCode != "" && len(body) > 0
		})).Return(nil).Once()

		err := uc.SendSmsCode(ctx, &request.SendSmsCode{Phone: phone})

		assert.NoError(t, err)
	})
}

func TestSubmitVerification(t *testing.T) {
	setup()
	defer teardown()

	ctx := context.Background()
	userID := uuid.New()
	docs := []string{"https://cdn.example.com/id-card.png"}

	t.Run("influencer submission goes to pending", func(t *testing.T) {
		influencer := entity.User{
			ID:                 userID,
			Email:              "jane@example.com",
			Role:               entity.RoleInfluencer,
			VerificationStatus: sql.NullString{String: entity.VerificationNotSubmitted, Valid: true},
		}

		repoMock.On("FindUserByID", ctx, userID).Return(influencer, nil).Once()
		repoMock.On("SubmitVerification", ctx, userID, docs).Return(nil).Once()

		resp, err := uc.SubmitVerification(ctx, userID, &request.SubmitVerification{Documents: docs})

		assert.NoError(t, err)
		assert.Equal(t, entity.VerificationPending, resp.VerificationStatus)
	})

	t.Run("plain user cannot submit verification", func(t *testing.T) {
		plainUser := entity.User{ID: userID, Role: entity.RoleUser}
		repoMock.On("FindUserByID", ctx, userID).Return(plainUser, nil).Once()

		_, err := uc.SubmitVerification(ctx, userID, &request.SubmitVerification{Documents: docs})

		assert.Error(t, err)
		resp, ok := errors.FromError(err)
		assert.True(t, ok)
		assert.Equal(t, 403, resp.Code)
	})

	t.Run("already approved influencer cannot resubmit", func(t *testing.T) {
		approved := entity.User{
			ID:                 userID,
			Role:               entity.RoleInfluencer,
			VerificationStatus: sql.NullString{String: entity.VerificationApproved, Valid: true},
		}
		repoMock.On("FindUserByID", ctx, userID).Return(approved, nil).Once()

		_, err := uc.SubmitVerification(ctx, userID, &request.SubmitVerification{Documents: docs})

		assert.Error(t, err)
		resp, ok := errors.FromError(err)
		assert.True(t, ok)
		assert.Equal(t, 409, resp.Code)
	})
}
