package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Defaults(t *testing.T) {
	t.Setenv("POSTGRES_USER", "postgres")
	t.Setenv("POSTGRES_PASSWORD", "postgres")
	t.Setenv("REAUTH_SECRET", "0123456789abcdef0123")

	cfg := New()

	require.NoError(t, cfg.Validate())
	assert.Equal(t, 450.0, cfg.Shipping.FastRate)
	assert.Equal(t, 280.0, cfg.Shipping.NormalRate)
	assert.Equal(t, 5*time.Minute, cfg.Auth.ReauthTTL)
	assert.Equal(t, "shipments", cfg.Kafka.ShipmentTopic)
}

func TestNew_Overrides(t *testing.T) {
	t.Setenv("POSTGRES_USER", "postgres")
	t.Setenv("POSTGRES_PASSWORD", "postgres")
	t.Setenv("REAUTH_SECRET", "0123456789abcdef0123")
	t.Setenv("SHIPPING_FAST_RATE", "500")
	t.Setenv("KAFKA_BROKERS", "kafka-1:9092,kafka-2:9092")

	cfg := New()

	require.NoError(t, cfg.Validate())
	assert.Equal(t, 500.0, cfg.Shipping.FastRate)
	assert.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, cfg.Kafka.Brokers)
}

func TestValidate_MissingSecret(t *testing.T) {
	t.Setenv("POSTGRES_USER", "postgres")
	t.Setenv("POSTGRES_PASSWORD", "postgres")
	t.Setenv("REAUTH_SECRET", "")

	err := New().Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ReauthSecret")
}
