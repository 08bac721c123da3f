package usecases

import (
	"context"
	"crypto/rand"
	"database/sql"
	"fmt"
	"math/big"
	"time"

	"callbooking-service/config"
	"callbooking-service/internal/module/user/models/entity"
	"callbooking-service/internal/module/user/models/request"
	"callbooking-service/internal/module/user/models/response"
	"callbooking-service/internal/module/user/repositories"
	"callbooking-service/internal/pkg/errors"
	"callbooking-service/internal/pkg/middleware"

	"github.com/goccy/go-json"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/oauth2"
)

type Usecase interface {
	Register(ctx context.Context, payload *request.Register) (response.AuthToken, error)
	Login(ctx context.Context, payload *request.Login) (response.AuthToken, error)
	GoogleAuthURL(state string) string
	GoogleCallback(ctx context.Context, code string) (response.AuthToken, error)
	SendSmsCode(ctx context.Context, payload *request.SendSmsCode) error
	VerifySmsCode(ctx context.Context, payload *request.VerifySmsCode) (response.AuthToken, error)
	GetProfile(ctx context.Context, userID uuid.UUID) (response.User, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, payload *request.UpdateProfile) (response.User, error)
	SubmitVerification(ctx context.Context, userID uuid.UUID, payload *request.SubmitVerification) (response.User, error)
}

type usecase struct {
	repo   repositories.Repositories
	log    *otelzap.Logger
	jwtCfg *config.JwtConfig
	oauth  *oauth2.Config
	smsCfg *config.SmsGatewayConfig
}

func New(repo repositories.Repositories, log *otelzap.Logger, jwtCfg *config.JwtConfig, oauth *oauth2.Config, smsCfg *config.SmsGatewayConfig) Usecase {
	return &usecase{
		repo:   repo,
		log:    log,
		jwtCfg: jwtCfg,
		oauth:  oauth,
		smsCfg: smsCfg,
	}
}

func (u *usecase) Register(ctx context.Context, payload *request.Register) (response.AuthToken, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(payload.Password), bcrypt.DefaultCost)
	if err != nil {
		u.log.Ctx(ctx).Error(fmt.Sprintf("failed to hash password: %v", err))
		return response.AuthToken{}, errors.InternalServerError("failed to register user")
	}

	role := payload.Role
	if role == "" {
		role = entity.RoleUser
	}

	user := entity.User{
		ID:           uuid.New(),
		Email:        payload.Email,
		PasswordHash: string(hash),
		Role:         role,
		CreatedAt:    time.Now(),
	}
	if payload.Phone != "" {
		user.Phone = sql.NullString{String: payload.Phone, Valid: true}
	}
	applyProfileFields(&user, payload.Name, payload.ProfilePicture, payload.ProfilePhotos, payload.Bio, payload.SocialLinks)
	if role == entity.RoleInfluencer {
		user.VerificationStatus = sql.NullString{String: entity.VerificationNotSubmitted, Valid: true}
	}

	if err := u.repo.CreateUser(ctx, &user); err != nil {
		return response.AuthToken{}, err
	}

	return u.issueToken(ctx, user)
}

func (u *usecase) Login(ctx context.Context, payload *request.Login) (response.AuthToken, error) {
	user, err := u.repo.FindUserByEmail(ctx, payload.Email)
	if err != nil {
		if errResp, ok := errors.FromError(err); ok && errResp.Code == 404 {
			return response.AuthToken{}, errors.UnauthorizedError("invalid email or password")
		}
		return response.AuthToken{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(payload.Password)); err != nil {
		return response.AuthToken{}, errors.UnauthorizedError("invalid email or password")
	}

	return u.issueToken(ctx, user)
}

func (u *usecase) GoogleAuthURL(state string) string {
	return u.oauth.AuthCodeURL(state, oauth2.AccessTypeOnline)
}

func (u *usecase) GoogleCallback(ctx context.Context, code string) (response.AuthToken, error) {
	token, err := u.oauth.Exchange(ctx, code)
	if err != nil {
		u.log.Ctx(ctx).Error(fmt.Sprintf("google code exchange failed: %v", err))
		return response.AuthToken{}, errors.UnauthorizedError("google authentication failed")
	}

	resp, err := u.oauth.Client(ctx, token).Get("https://www.googleapis.com/oauth2/v2/userinfo")
	if err != nil {
		u.log.Ctx(ctx).Error(fmt.Sprintf("failed to fetch google profile: %v", err))
		return response.AuthToken{}, errors.UnauthorizedError("google authentication failed")
	}
	defer resp.Body.Close()

	var profile struct {
		ID      string `json:"id"`
		Email   string `json:"email"`
		Name    string `json:"name"`
		Picture string `json:"picture"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&profile); err != nil {
		u.log.Ctx(ctx).Error(fmt.Sprintf("failed to decode google profile: %v", err))
		return response.AuthToken{}, errors.UnauthorizedError("google authentication failed")
	}
	if profile.ID == "" || profile.Email == "" {
		return response.AuthToken{}, errors.UnauthorizedError("google authentication failed")
	}

	user, err := u.repo.FindUserByGoogleID(ctx, profile.ID)
	if err != nil {
		if errResp, ok := errors.FromError(err); !ok || errResp.Code != 404 {
			return response.AuthToken{}, err
		}

		user = entity.User{
			ID:           uuid.New(),
			Email:        profile.Email,
			PasswordHash: randomCredential(),
			GoogleID:     sql.NullString{String: profile.ID, Valid: true},
			Role:         entity.RoleUser,
			IsVerified:   true,
			CreatedAt:    time.Now(),
		}
		if profile.Name != "" {
			user.Name = sql.NullString{String: profile.Name, Valid: true}
		}
		if profile.Picture != "" {
			user.ProfilePicture = sql.NullString{String: profile.Picture, Valid: true}
		}
		if err := u.repo.CreateUser(ctx, &user); err != nil {
			return response.AuthToken{}, err
		}
	}

	return u.issueToken(ctx, user)
}

func (u *usecase) SendSmsCode(ctx context.Context, payload *request.SendSmsCode) error {
	code, err := randomSmsCode()
	if err != nil {
		u.log.Ctx(ctx).Error(fmt.Sprintf("failed to generate sms code: %v", err))
		return errors.InternalServerError("failed to generate sms code")
	}

	ttl := time.Duration(u.smsCfg.CodeTTL) * time.Minute
	if err := u.repo.SetSmsCode(ctx, payload.Phone, code, ttl); err != nil {
		return err
	}

	body := fmt.Sprintf("Your verification code is %s. It expires in %d minutes.", code, u.smsCfg.CodeTTL)
	return u.repo.SendSms(ctx, payload.Phone, body)
}

func (u *usecase) VerifySmsCode(ctx context.Context, payload *request.VerifySmsCode) (response.AuthToken, error) {
	stored, err := u.repo.GetSmsCode(ctx, payload.Phone)
	if err != nil {
		return response.AuthToken{}, err
	}
	if stored != payload.Code {
		return response.AuthToken{}, errors.BadRequest("invalid verification code")
	}

	if err := u.repo.DeleteSmsCode(ctx, payload.Phone); err != nil {
		return response.AuthToken{}, err
	}

	user, err := u.repo.FindUserByPhone(ctx, payload.Phone)
	if err != nil {
		if errResp, ok := errors.FromError(err); !ok || errResp.Code != 404 {
			return response.AuthToken{}, err
		}

		user = entity.User{
			ID:           uuid.New(),
			Email:        fmt.Sprintf("%s@sms.onlycalls.example", payload.Phone),
			PasswordHash: randomCredential(),
			Phone:        sql.NullString{String: payload.Phone, Valid: true},
			Role:         entity.RoleUser,
			IsVerified:   true,
			CreatedAt:    time.Now(),
		}
		if err := u.repo.CreateUser(ctx, &user); err != nil {
			return response.AuthToken{}, err
		}
	}

	return u.issueToken(ctx, user)
}

func (u *usecase) GetProfile(ctx context.Context, userID uuid.UUID) (response.User, error) {
	user, err := u.repo.FindUserByID(ctx, userID)
	if err != nil {
		return response.User{}, err
	}

	return toUserResponse(user), nil
}

func (u *usecase) UpdateProfile(ctx context.Context, userID uuid.UUID, payload *request.UpdateProfile) (response.User, error) {
	user, err := u.repo.FindUserByID(ctx, userID)
	if err != nil {
		return response.User{}, err
	}

	if payload.Phone != "" {
		user.Phone = sql.NullString{String: payload.Phone, Valid: true}
	}
	applyProfileFields(&user, payload.Name, payload.ProfilePicture, payload.ProfilePhotos, payload.Bio, payload.SocialLinks)

	if err := u.repo.UpdateProfile(ctx, &user); err != nil {
		return response.User{}, err
	}

	return toUserResponse(user), nil
}

func (u *usecase) SubmitVerification(ctx context.Context, userID uuid.UUID, payload *request.SubmitVerification) (response.User, error) {
	user, err := u.repo.FindUserByID(ctx, userID)
	if err != nil {
		return response.User{}, err
	}
	if user.Role != entity.RoleInfluencer {
		return response.User{}, errors.ForbiddenError("only influencers can submit verification")
	}
	if user.VerificationStatus.String == entity.VerificationApproved {
		return response.User{}, errors.Conflict("influencer is already verified")
	}

	if err := u.repo.SubmitVerification(ctx, userID, payload.Documents); err != nil {
		return response.User{}, err
	}

	user.VerificationStatus = sql.NullString{String: entity.VerificationPending, Valid: true}
	user.VerificationDocuments = pq.StringArray(payload.Documents)
	return toUserResponse(user), nil
}

func (u *usecase) issueToken(ctx context.Context, user entity.User) (response.AuthToken, error) {
	now := time.Now()
	claims := middleware.TokenClaims{
		UserID:     user.ID.String(),
		Role:       user.Role,
		Email:      user.Email,
		IsVerified: user.IsVerified,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(u.jwtCfg.ExpiryHours) * time.Hour)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(u.jwtCfg.Secret))
	if err != nil {
		u.log.Ctx(ctx).Error(fmt.Sprintf("failed to sign token: %v", err))
		return response.AuthToken{}, errors.InternalServerError("failed to issue token")
	}

	return response.AuthToken{Token: signed, User: toUserResponse(user)}, nil
}

func applyProfileFields(user *entity.User, name, picture string, photos []string, bio string, links map[string]string) {
	if name != "" {
		user.Name = sql.NullString{String: name, Valid: true}
	}
	if picture != "" {
		user.ProfilePicture = sql.NullString{String: picture, Valid: true}
	}
	if len(photos) > 0 {
		user.ProfilePhotos = pq.StringArray(photos)
	}
	if bio != "" {
		user.Bio = sql.NullString{String: bio, Valid: true}
	}
	if len(links) > 0 {
		raw, err := json.Marshal(links)
		if err == nil {
			user.SocialLinks = raw
		}
	}
}

func toUserResponse(user entity.User) response.User {
	resp := response.User{
		ID:                 user.ID,
		Email:              user.Email,
		Role:               user.Role,
		IsVerified:         user.IsVerified,
		Phone:              user.Phone.String,
		Name:               user.Name.String,
		ProfilePicture:     user.ProfilePicture.String,
		ProfilePhotos:      user.ProfilePhotos,
		Bio:                user.Bio.String,
		VerificationStatus: user.VerificationStatus.String,
	}
	if len(user.SocialLinks) > 0 {
		links := map[string]string{}
		if err := json.Unmarshal(user.SocialLinks, &links); err == nil {
			resp.SocialLinks = links
		}
	}

	return resp
}

func randomSmsCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("%06d", n.Int64()+100000), nil
}

// randomCredential fills password_hash for accounts created through
// google or sms login so the column stays non-null and unguessable.
func randomCredential() string {
	return "!oauth:" + uuid.NewString()
}
