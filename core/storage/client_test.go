package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewClient(t *testing.T) {
	t.Run("Valid Config", func(t *testing.T) {
		cfg := Config{
			Endpoint:  "localhost:9000",
			AccessKey: "minioadmin",
			SecretKey: "minioadmin",
		}

		client, err := NewClient(cfg)
		assert.NoError(t, err)
		assert.NotNil(t, client)
	})

	t.Run("Endpoint Scheme Stripped", func(t *testing.T) {
		cfg := Config{
			Endpoint:  "https://s3.example.com",
			AccessKey: "key",
			SecretKey: "secret",
			UseSSL:    true,
		}

		client, err := NewClient(cfg)
		assert.NoError(t, err)
		assert.NotNil(t, client)
	})

	t.Run("Invalid Endpoint", func(t *testing.T) {
		cfg := Config{
			Endpoint:  "not a valid endpoint!",
			AccessKey: "key",
			SecretKey: "secret",
		}

		client, err := NewClient(cfg)
		assert.Error(t, err)
		assert.Nil(t, client)
	})
}
