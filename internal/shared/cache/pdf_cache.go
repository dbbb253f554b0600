package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"resume-portal/internal/shared/telemetry"
)

const (
	keyPrefix  = "pdfcache:"
	opTimeout  = time.Second
	defaultTTL = time.Minute
)

// PDFCache stores rendered PDFs by content key.
type PDFCache interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, data []byte)
}

// Key hashes the parts that determine a rendered document.
func Key(parts ...string) string {
	h := sha256.New()
	for _, p := range parts {
		h.Write([]byte(p))
		h.Write([]byte{0})
	}
	return keyPrefix + hex.EncodeToString(h.Sum(nil))
}

// RedisPDFCache is a PDFCache on Redis. Failures are logged and treated as misses.
type RedisPDFCache struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewRedis connects to addr. A non-positive ttl falls back to one minute.
func NewRedis(addr string, db int, ttl time.Duration) *RedisPDFCache {
	return NewRedisWithClient(redis.NewClient(&redis.Options{Addr: addr, DB: db}), ttl)
}

// NewRedisWithClient wraps an existing client.
func NewRedisWithClient(rdb *redis.Client, ttl time.Duration) *RedisPDFCache {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &RedisPDFCache{rdb: rdb, ttl: ttl}
}

func (c *RedisPDFCache) Get(ctx context.Context, key string) ([]byte, bool) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	data, err := c.rdb.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false
	}
	if err != nil {
		telemetry.Warn("pdfcache.read_failed", map[string]any{"error": err.Error()})
		return nil, false
	}
	return data, true
}

func (c *RedisPDFCache) Set(ctx context.Context, key string, data []byte) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	if err := c.rdb.Set(ctx, key, data, c.ttl).Err(); err != nil {
		telemetry.Warn("pdfcache.write_failed", map[string]any{"error": err.Error()})
	}
}

// Ping checks connectivity.
func (c *RedisPDFCache) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()
	return c.rdb.Ping(ctx).Err()
}

// Close releases the client.
func (c *RedisPDFCache) Close() error {
	return c.rdb.Close()
}

// Nop is a PDFCache that never stores anything.
type Nop struct{}

func (Nop) Get(context.Context, string) ([]byte, bool) { return nil, false }
func (Nop) Set(context.Context, string, []byte)        {}

var (
	_ PDFCache = (*RedisPDFCache)(nil)
	_ PDFCache = Nop{}
)
