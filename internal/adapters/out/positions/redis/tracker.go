// Package redis keeps courier positions in Redis so that several service instances share
// them. Each courier is a hash with a TTL; a sorted set indexes couriers by report time for
// eviction.
//
// Usage:
//
//	client := goredis.NewClient(&goredis.Options{Addr: "localhost:6379"})
//	tracker := redis.NewTracker(client, redis.WithTTL(30*time.Minute))
package redis

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"waterdelivery/internal/core/domain/model/kernel"
	"waterdelivery/internal/core/ports"
)

const (
	keyPrefix = "waterdelivery:"
	indexKey  = keyPrefix + "positions"

	DefaultTTL = time.Hour
)

// positionKey returns the hash key of a courier: waterdelivery:position:{courierID}
func positionKey(courierID string) string { return keyPrefix + "position:" + courierID }

// updateScript writes the position only if it is not older than the stored one.
// KEYS: position hash, index zset. ARGV: reported_at ms, lat, lon, order id, ttl ms, courier id.
var updateScript = goredis.NewScript(`
local current = redis.call('HGET', KEYS[1], 'reported_at')
if current and tonumber(current) > tonumber(ARGV[1]) then
	return 0
end
redis.call('HSET', KEYS[1], 'reported_at', ARGV[1], 'lat', ARGV[2], 'lon', ARGV[3], 'order_id', ARGV[4])
redis.call('PEXPIRE', KEYS[1], ARGV[5])
redis.call('ZADD', KEYS[2], ARGV[1], ARGV[6])
return 1
`)

var _ ports.PositionTracker = (*Tracker)(nil)

// Option configures the Tracker.
type Option func(*Tracker)

// WithTTL sets how long a position survives without updates.
func WithTTL(ttl time.Duration) Option {
	return func(t *Tracker) { t.ttl = ttl }
}

// WithLogger sets a custom logger.
func WithLogger(l *slog.Logger) Option {
	return func(t *Tracker) { t.logger = l }
}

// Tracker implements ports.PositionTracker on Redis. The caller owns the client lifecycle.
type Tracker struct {
	client goredis.Cmdable
	ttl    time.Duration
	logger *slog.Logger
}

func NewTracker(client goredis.Cmdable, opts ...Option) *Tracker {
	t := &Tracker{client: client, ttl: DefaultTTL, logger: slog.Default()}
	for _, o := range opts {
		o(t)
	}
	return t
}

// Ping verifies the Redis connection is alive.
func (t *Tracker) Ping(ctx context.Context) error {
	return t.client.Ping(ctx).Err()
}

func (t *Tracker) UpdatePosition(ctx context.Context, position ports.Position) error {
	if err := position.CourierID.Validate(); err != nil {
		return err
	}
	if err := position.Point.Validate(); err != nil {
		return err
	}

	courierID := position.CourierID.String()
	orderID := ""
	if position.OrderID != nil {
		orderID = position.OrderID.String()
	}

	written, err := updateScript.Run(ctx, t.client,
		[]string{positionKey(courierID), indexKey},
		position.ReportedAt.UnixMilli(),
		strconv.FormatFloat(position.Point.Lat(), 'f', -1, 64),
		strconv.FormatFloat(position.Point.Lon(), 'f', -1, 64),
		orderID,
		t.ttl.Milliseconds(),
		courierID,
	).Int()
	if err != nil {
		return fmt.Errorf("positions/redis: update position: %w", err)
	}

	if written == 0 {
		t.logger.DebugContext(ctx, "ignored stale position", "courier_id", courierID)
	}
	return nil
}

func (t *Tracker) GetPosition(ctx context.Context, courierID kernel.UUID) (ports.Position, bool, error) {
	fields, err := t.client.HGetAll(ctx, positionKey(courierID.String())).Result()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return ports.Position{}, false, nil
		}
		return ports.Position{}, false, fmt.Errorf("positions/redis: get position: %w", err)
	}
	if len(fields) == 0 {
		return ports.Position{}, false, nil
	}

	position, err := positionFromMap(courierID, fields)
	if err != nil {
		return ports.Position{}, false, fmt.Errorf("positions/redis: decode position of %s: %w", courierID, err)
	}
	return position, true, nil
}

// Evict removes couriers whose last report is older than olderThan. Hashes that already
// expired through their TTL are dropped from the index without being counted.
func (t *Tracker) Evict(ctx context.Context, olderThan time.Time) (int, error) {
	ids, err := t.client.ZRangeByScore(ctx, indexKey, &goredis.ZRangeBy{
		Min: "-inf",
		Max: "(" + strconv.FormatInt(olderThan.UnixMilli(), 10),
	}).Result()
	if err != nil {
		return 0, fmt.Errorf("positions/redis: evict range: %w", err)
	}
	if len(ids) == 0 {
		return 0, nil
	}

	pipe := t.client.TxPipeline()
	deletes := make([]*goredis.IntCmd, 0, len(ids))
	for _, id := range ids {
		deletes = append(deletes, pipe.Del(ctx, positionKey(id)))
		pipe.ZRem(ctx, indexKey, id)
	}
	if _, err = pipe.Exec(ctx); err != nil {
		return 0, fmt.Errorf("positions/redis: evict: %w", err)
	}

	evicted := 0
	for _, del := range deletes {
		evicted += int(del.Val())
	}
	return evicted, nil
}

func positionFromMap(courierID kernel.UUID, fields map[string]string) (ports.Position, error) {
	lat, err := strconv.ParseFloat(fields["lat"], 64)
	if err != nil {
		return ports.Position{}, err
	}
	lon, err := strconv.ParseFloat(fields["lon"], 64)
	if err != nil {
		return ports.Position{}, err
	}
	reportedAt, err := strconv.ParseInt(fields["reported_at"], 10, 64)
	if err != nil {
		return ports.Position{}, err
	}

	point, err := kernel.NewGeoPoint(lat, lon)
	if err != nil {
		return ports.Position{}, err
	}

	position := ports.Position{
		CourierID:  courierID,
		Point:      point,
		ReportedAt: time.UnixMilli(reportedAt).UTC(),
	}

	if raw := fields["order_id"]; raw != "" {
		orderID, parseErr := kernel.UUIDFromString(raw)
		if parseErr != nil {
			return ports.Position{}, parseErr
		}
		position.OrderID = &orderID
	}

	return position, nil
}
