package config

import (
	"log"
	"time"
)

const (
	baseURLVar        = "API_BASE_URL"
	requestTimeoutVar = "REQUEST_TIMEOUT"

	defaultBaseURL        = "http://localhost:8000/api/v1"
	defaultRequestTimeout = 15 * time.Second
)

type ClientConfig interface {
	GetBaseURL() string
	GetRequestTimeout() time.Duration
}

type Client struct{}

var _ ClientConfig = Client{}

func (Client) GetBaseURL() string {
	return GetEnv(baseURLVar, defaultBaseURL)
}

func (Client) GetRequestTimeout() time.Duration {
	v := GetEnv(requestTimeoutVar, "")
	if v == "" {
		return defaultRequestTimeout
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		log.Printf("Invalid duration in %s: %s, using default %s", requestTimeoutVar, v, defaultRequestTimeout)
		return defaultRequestTimeout
	}
	return d
}
