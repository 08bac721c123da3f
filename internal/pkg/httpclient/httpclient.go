package httpclient

import (
	"time"

	circuit "github.com/rubyist/circuitbreaker"

	"callbooking-service/config"
)

func InitCircuitBreaker(cfg *config.HttpClientConfig, cbType string) *circuit.Breaker {
	switch cbType {
	case "consecutive":
		return circuit.NewConsecutiveBreaker(cfg.ConsecutiveFailures)
	case "rate":
		return circuit.NewRateBreaker(cfg.ErrorRate, cfg.MinSamples)
	default:
		return circuit.NewThresholdBreaker(cfg.Threshold)
	}
}

func InitHttpClient(cfg *config.HttpClientConfig, cb *circuit.Breaker) *circuit.HTTPClient {
	client := circuit.NewHTTPClient(time.Duration(cfg.Timeout)*time.Second, 0, nil)
	client.BreakerLookup = func(c *circuit.HTTPClient, _ interface{}) *circuit.Breaker {
		return cb
	}
	return client
}
