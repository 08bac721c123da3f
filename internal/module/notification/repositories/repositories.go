package repositories

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"

	"callbooking-service/config"
	"callbooking-service/internal/pkg/errors"
	"callbooking-service/internal/pkg/mailer"

	"github.com/goccy/go-json"
	circuit "github.com/rubyist/circuitbreaker"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"
)

type Repositories interface {
	SendEmail(ctx context.Context, recipient, subject, body string) error
	SendSms(ctx context.Context, recipient, body string) error
}

type repositories struct {
	log        *otelzap.Logger
	mailer     *mailer.Mailer
	httpClient *circuit.HTTPClient
	smsCfg     *config.SmsGatewayConfig
}

func New(log *otelzap.Logger, m *mailer.Mailer, httpClient *circuit.HTTPClient, smsCfg *config.SmsGatewayConfig) Repositories {
	return &repositories{
		log:        log,
		mailer:     m,
		httpClient: httpClient,
		smsCfg:     smsCfg,
	}
}

func (r *repositories) SendEmail(ctx context.Context, recipient, subject, body string) error {
	if err := r.mailer.Send(recipient, subject, body); err != nil {
		r.log.Ctx(ctx).Error(fmt.Sprintf("failed to send email to %s: %v", recipient, err))
		return errors.InternalServerError("failed to send email")
	}

	return nil
}

func (r *repositories) SendSms(ctx context.Context, recipient, body string) error {
	payload, err := json.Marshal(map[string]string{
		"to":   recipient,
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
