package cache

import (
	"context"
	"net/url"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
)

// setupTestRedis creates a test Redis client for testing.
// Tests are skipped when no Redis listens on localhost; the integration
// build tag runs the same checks against a container.
func setupTestRedis(t *testing.T) *redis.Client {
	t.Helper()

	client := redis.NewClient(&redis.Options{
		Addr: "localhost:6379",
		DB:   15, // Use a separate DB for tests
	})

	// Ping to check connection
	ctx := context.Background()
	if err := client.Ping(ctx).Err(); err != nil {
		t.Skipf("Redis not available for testing: %v", err)
	}

	// Flush test DB before each test
	if err := client.FlushDB(ctx).Err(); err != nil {
		t.Fatalf("Failed to flush test DB: %v", err)
	}

	t.Cleanup(func() {
		client.FlushDB(context.Background())
		client.Close()
	})

	return client
}

func TestNewRedisStore(t *testing.T) {
	client := redis.NewClient(&redis.Options{Addr: "localhost:6379"})
	defer client.Close()

	store := NewRedisStore[string](client, "ns", StoreValidators, 0)
	if store == nil {
		t.Fatal("NewRedisStore returned nil")
	}
	if store.redis != client {
		t.Error("store redis client not set correctly")
	}
	if store.TTL() != DefaultTTL {
		t.Errorf("TTL() = %v, want %v", store.TTL(), DefaultTTL)
	}
}

func TestNewRedisStore_Panic(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("NewRedisStore should panic with nil redis client")
		}
	}()
	NewRedisStore[string](nil, "ns", StoreValidators, time.Minute)
}

func TestRedisStore_Key(t *testing.T) {
	store := &RedisStore[string]{namespace: "phrase-test", name: StoreValidators}
	key := NewRequestKey("GET", "/api/v2/projects", url.Values{"page": {"2"}})

	want := "phrase-test:validators:GET /api/v2/projects?page=2"
	if got := store.redisKey(key); got != want {
		t.Errorf("redisKey() = %q, want %q", got, want)
	}
}

func TestRedisStore_SetAndGet(t *testing.T) {
	client := setupTestRedis(t)
	store := NewRedisStore[Payload](client, "test", StoreResponses, 5*time.Minute)
	ctx := context.Background()

	key := NewRequestKey("GET", "/api/v2/projects/p1", nil)
	payload := Payload{
		Kind:        PayloadStructured,
		ContentType: "application/json",
		Body:        []byte(`{"id":"p1"}`),
	}

	if err := store.Set(ctx, key, payload); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	retrieved, err := store.Get(ctx, key)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}

	if string(retrieved.Body) != string(payload.Body) {
		t.Errorf("Body mismatch: got %s, want %s", retrieved.Body, payload.Body)
	}
	if retrieved.Kind != payload.Kind {
		t.Errorf("Kind mismatch: got %v, want %v", retrieved.Kind, payload.Kind)
	}

	ttl, err := client.TTL(ctx, store.redisKey(key)).Result()
	if err != nil {
		t.Fatalf("TTL failed: %v", err)
	}
	if ttl <= 0 || ttl > 5*time.Minute {
		t.Errorf("redis TTL = %v, want within (0, 5m]", ttl)
	}
}

func TestRedisStore_Get_CacheMiss(t *testing.T) {
	client := setupTestRedis(t)
	store := NewRedisStore[string](client, "test", StoreValidators, time.Minute)

	_, err := store.Get(context.Background(), NewRequestKey("GET", "/nonexistent", nil))
	if err != ErrCacheMiss {
		t.Errorf("Expected ErrCacheMiss, got %v", err)
	}
}

func TestRedisStore_Delete(t *testing.T) {
	client := setupTestRedis(t)
	store := NewRedisStore[string](client, "test", StoreValidators, time.Minute)
	ctx := context.Background()
	key := NewRequestKey("GET", "/api/v2/projects", nil)

	if err := store.Set(ctx, key, `"abc"`); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if err := store.Delete(ctx, key); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, err := store.Get(ctx, key); err != ErrCacheMiss {
		t.Errorf("Expected ErrCacheMiss after Delete, got %v", err)
	}
}

func TestRedisStore_NamespacesAreIsolated(t *testing.T) {
	client := setupTestRedis(t)
	ctx := context.Background()
	key := NewRequestKey("GET", "/api/v2/projects", nil)

	a := NewRedisStore[string](client, "client-a", StoreValidators, time.Minute)
	b := NewRedisStore[string](client, "client-b", StoreValidators, time.Minute)

	if err := a.Set(ctx, key, `"a"`); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if _, err := b.Get(ctx, key); err != ErrCacheMiss {
		t.Errorf("store b saw store a's entry: %v", err)
	}
}

func TestRedisStore_InvalidEntry(t *testing.T) {
	client := setupTestRedis(t)
	store := NewRedisStore[Payload](client, "test", StoreResponses, time.Minute)
	ctx := context.Background()
	key := NewRequestKey("GET", "/api/v2/projects", nil)

	if err := client.Set(ctx, store.redisKey(key), "not json", time.Minute).Err(); err != nil {
		t.Fatalf("raw set failed: %v", err)
	}

	if _, err := store.Get(ctx, key); err == nil {
		t.Error("expected error for corrupted entry")
	}
}
