//go:build integration

package cache

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// setupRedisContainer starts a Redis container and returns a client
func setupRedisContainer(t *testing.T) (*redis.Client, func()) {
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "redis:7-alpine",
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForLog("Ready to accept connections"),
	}

	redisContainer, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		t.Fatalf("Failed to start Redis container: %v", err)
	}

	endpoint, err := redisContainer.Endpoint(ctx, "")
	if err != nil {
		t.Fatalf("Failed to get Redis endpoint: %v", err)
	}

	client := redis.NewClient(&redis.Options{
		Addr: endpoint,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		t.Fatalf("Failed to connect to Redis: %v", err)
	}

	cleanup := func() {
		client.Close()
		redisContainer.Terminate(ctx)
	}

	return client, cleanup
}

func TestRedisStore_Integration_Expiry(t *testing.T) {
	client, cleanup := setupRedisContainer(t)
	defer cleanup()

	ctx := context.Background()
	store := NewRedisStore[string](client, "it", StoreValidators, time.Second)
	key := NewRequestKey("GET", "/api/v2/projects", nil)

	if err := store.Set(ctx, key, `"v1"`); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	got, err := store.Get(ctx, key)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got != `"v1"` {
		t.Errorf("Get() = %q, want %q", got, `"v1"`)
	}

	time.Sleep(1500 * time.Millisecond)

	if _, err := store.Get(ctx, key); err != ErrCacheMiss {
		t.Errorf("Expected ErrCacheMiss after TTL, got %v", err)
	}
}

func TestRedisStore_Integration_PayloadRoundTrip(t *testing.T) {
	client, cleanup := setupRedisContainer(t)
	defer cleanup()

	ctx := context.Background()
	store := NewRedisStore[Payload](client, "it", StoreResponses, time.Minute)
	key := NewRequestKey("GET", "/api/v2/projects/p/locales/l/download", nil)

	want := Payload{Kind: PayloadRaw, ContentType: "text/plain", Body: []byte("a=b\n")}
	if err := store.Set(ctx, key, want); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	got, err := store.Get(ctx, key)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got.Kind != want.Kind || string(got.Body) != string(want.Body) || got.ContentType != want.ContentType {
		t.Errorf("Get() = %+v, want %+v", got, want)
	}
}
