package httpclient

import (
	"net/http"

	"turf-booking-service/config"

	circuit "github.com/rubyist/circuitbreaker"
)

const (
	BreakerThreshold   = "threshold"
	BreakerConsecutive = "consecutive"
	BreakerRate        = "rate"
)

func InitCircuitBreaker(cfg *config.HttpClientConfig, breakerType string) *circuit.Breaker {
	switch breakerType {
	case BreakerThreshold:
		return circuit.NewThresholdBreaker(cfg.Threshold)
	case BreakerRate:
		return circuit.NewRateBreaker(cfg.ErrorRate, cfg.MinSamples)
	default:
		return circuit.NewConsecutiveBreaker(cfg.ConsecutiveFails)
	}
}

// InitHttpClient wraps a plain client with the breaker. The breaker timeout bounds every call.
func InitHttpClient(cfg *config.HttpClientConfig, cb *circuit.Breaker) *circuit.HTTPClient {
	client := &http.Client{Timeout: cfg.Timeout}
	return circuit.NewHTTPClientWithBreaker(cb, cfg.Timeout, client)
}
