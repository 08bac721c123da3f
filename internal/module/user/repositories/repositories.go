package repositories

import (
	"bytes"
	"context"
	"database/sql"
	"fmt"
	"io"
	"net/http"
	"time"

	"callbooking-service/config"
	"callbooking-service/internal/module/user/models/entity"
	"callbooking-service/internal/pkg/errors"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	circuit "github.com/rubyist/circuitbreaker"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"

	goredis "github.com/redis/go-redis/v9"
)

type Repositories interface {
	CreateUser(ctx context.Context, user *entity.User) error
	FindUserByID(ctx context.Context, id uuid.UUID) (entity.User, error)
	FindUserByEmail(ctx context.Context, email string) (entity.User, error)
	FindUserByPhone(ctx context.Context, phone string) (entity.User, error)
	FindUserByGoogleID(ctx context.Context, googleID string) (entity.User, error)
	UpdateProfile(ctx context.Context, user *entity.User) error
	SubmitVerification(ctx context.Context, userID uuid.UUID, documents []string) error
	SetSmsCode(ctx context.Context, phone, code string, ttl time.Duration) error
	GetSmsCode(ctx context.Context, phone string) (string, error)
	DeleteSmsCode(ctx context.Context, phone string) error
	SendSms(ctx context.Context, phone, body string) error
}

type repositories struct {
	db         *sqlx.DB
	log        *otelzap.Logger
	redis      *goredis.Client
	httpClient *circuit.HTTPClient
	smsCfg     *config.SmsGatewayConfig
}

func New(db *sqlx.DB, log *otelzap.Logger, redis *goredis.Client, httpClient *circuit.HTTPClient, smsCfg *config.SmsGatewayConfig) Repositories {
	return &repositories{
		db:         db,
		log:        log,
		redis:      redis,
		httpClient: httpClient,
		smsCfg:     smsCfg,
	}
}

func (r *repositories) CreateUser(ctx context.Context, user *entity.User) error {
	query := `
		INSERT INTO users (id, email, password_hash, phone, google_id, role, is_verified, name, profile_picture, profile_photos, bio, social_links, verification_status, created_at)
		VALUES (:id, :email, :password_hash, :phone, :google_id, :role, :is_verified, :name, :profile_picture, :profile_photos, :bio, :social_links, :verification_status, :created_at)`

	_, err := r.db.NamedExecContext(ctx, query, user)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
			return errors.Conflict("email or phone already registered")
		}
		r.log.Ctx(ctx).Error(fmt.Sprintf("failed to create user: %v", err))
		return errors.InternalServerError("failed to create user")
	}

	return nil
}

func (r *repositories) FindUserByID(ctx context.Context, id uuid.UUID) (entity.User, error) {
	return r.findUserBy(ctx, `SELECT * FROM users WHERE id = $1`, id)
}

func (r *repositories) FindUserByEmail(ctx context.Context, email string) (entity.User, error) {
	return r.findUserBy(ctx, `SELECT * FROM users WHERE email = $1`, email)
}

func (r *repositories) FindUserByPhone(ctx context.Context, phone string) (entity.User, error) {
	return r.findUserBy(ctx, `SELECT * FROM users WHERE phone = $1`, phone)
}

func (r *repositories) FindUserByGoogleID(ctx context.Context, googleID string) (entity.User, error) {
	return r.findUserBy(ctx, `SELECT * FROM users WHERE google_id = $1`, googleID)
}

func (r *repositories) findUserBy(ctx context.Context, query string, arg interface{}) (entity.User, error) {
	var user entity.User
	err := r.db.GetContext(ctx, &user, query, arg)
	if err != nil {
		if err == sql.ErrNoRows {
			return entity.User{}, errors.NotFound("user not found")
		}
		r.log.Ctx(ctx).Error(fmt.Sprintf("failed to find user: %v", err))
		return entity.User{}, errors.InternalServerError("failed to find user")
	}

	return user, nil
}

func (r *repositories) UpdateProfile(ctx context.Context, user *entity.User) error {
	query := `
		UPDATE users
		SET name = :name, phone = :phone, profile_picture = :profile_picture, profile_photos = :profile_photos, bio = :bio, social_links = :social_links, updated_at = now()
		WHERE id = :id`

	result, err := r.db.NamedExecContext(ctx, query, user)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
			return errors.Conflict("phone already registered")
		}
		r.log.Ctx(ctx).Error(fmt.Sprintf("failed to update profile: %v", err))
		return errors.InternalServerError("failed to update profile")
	}

	rows, err := result.RowsAffected()
	if err != nil {
		r.log.Ctx(ctx).Error(fmt.Sprintf("failed to update profile: %v", err))
		return errors.InternalServerError("failed to update profile")
	}
	if rows == 0 {
		return errors.NotFound("user not found")
	}

	return nil
}

func (r *repositories) SubmitVerification(ctx context.Context, userID uuid.UUID, documents []string) error {
	query := `
		UPDATE users
		SET verification_status = $2, verification_documents = $3, updated_at = now()
		WHERE id = $1 AND role = $4`

	result, err := r.db.ExecContext(ctx, query, userID, entity.VerificationPending, pq.StringArray(documents), entity.RoleInfluencer)
	if err != nil {
		r.log.Ctx(ctx).Error(fmt.Sprintf("failed to submit verification: %v", err))
		return errors.InternalServerError("failed to submit verification")
	}

	rows, err := result.RowsAffected()
	if err != nil {
		r.log.Ctx(ctx).Error(fmt.Sprintf("failed to submit verification: %v", err))
		return errors.InternalServerError("failed to submit verification")
	}
	if rows == 0 {
		return errors.ForbiddenError("only influencers can submit verification")
	}

	return nil
}

func (r *repositories) SetSmsCode(ctx context.Context, phone, code string, ttl time.Duration) error {
	if err := r.redis.Set(ctx, smsCodeKey(phone), code, ttl).Err(); err != nil {
		r.log.Ctx(ctx).Error(fmt.Sprintf("failed to store sms code: %v", err))
		return errors.InternalServerError("failed to store sms code")
	}

	return nil
}

func (r *repositories) GetSmsCode(ctx context.Context, phone string) (string, error) {
	code, err := r.redis.Get(ctx, smsCodeKey(phone)).Result()
	if err != nil {
		if err == goredis.Nil {
			return "", errors.NotFound("code expired or not requested")
		}
		r.log.Ctx(ctx).Error(fmt.Sprintf("failed to read sms code: %v", err))
		return "", errors.InternalServerError("failed to read sms code")
	}

	return code, nil
}

func (r *repositories) DeleteSmsCode(ctx context.Context, phone string) error {
	if err := r.redis.Del(ctx, smsCodeKey(phone)).Err(); err != nil {
		r.log.Ctx(ctx).Error(fmt.Sprintf("failed to delete sms code: %v", err))
		return errors.InternalServerError("failed to delete sms code")
	}

	return nil
}

func (r *repositories) SendSms(ctx context.Context, phone, body string) error {
	payload, err := json.Marshal(map[string]string{
		"to":   phone,
		"from": r.smsCfg.Sender,
		"body": body,
	})
	if err != nil {
		return errors.InternalServerError("failed to encode sms payload")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.smsCfg.BaseURL+"/messages", bytes.NewReader(payload))
	if err != nil {
		return errors.InternalServerError("failed to build sms request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+r.smsCfg.ApiKey)

	resp, err := r.httpClient.Do(req)
	if err != nil {
		r.log.Ctx(ctx).Error(fmt.Sprintf("sms gateway request failed: %v", err))
		return errors.InternalServerError("sms gateway unavailable")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		respBody, _ := io.ReadAll(resp.Body)
		r.log.Ctx(ctx).Error("sms gateway rejected message", zap.Int("status", resp.StatusCode), zap.ByteString("body", respBody))
		return errors.InternalServerError("sms gateway rejected message")
	}

	return nil
}

func smsCodeKey(phone string) string {
	return "sms:code:" + phone
}
