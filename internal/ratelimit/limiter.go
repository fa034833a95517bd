// Package ratelimit implements per-user, per-tier request accounting over
// wall-clock hourly windows. Counters live in a sharded in-memory map so
// checks for different keys never serialize against each other.
package ratelimit

import (
	"hash/fnv"
	"sync"
	"time"

	"github.com/nusarithm/news-gateway/internal/apperr"
	"github.com/nusarithm/news-gateway/internal/domain"
)

const shardCount = 64

// entry tracks requests admitted for one (user, tier) key in the current
// window. hour/day identify the window; a mismatch with the wall clock means
// the entry is stale and count restarts from zero. The day-of-year exists
// only to tell "09:00 today" apart from "09:00 yesterday".
type entry struct {
	count int
	hour  int
	day   int
}

type shard struct {
	mu      sync.Mutex
	entries map[string]*entry
}

// Limiter admits or rejects requests against hourly tier quotas.
// Safe for concurrent use. Entries are never evicted; the table grows with
// the number of distinct (user, tier) keys seen since startup.
type Limiter struct {
	shards [shardCount]*shard
	quotas domain.Quotas

	now func() time.Time
}

// Status reports the window state for the X-RateLimit-* headers.
type Status struct {
	Limit     int
	Remaining int
	ResetAt   time.Time
}

func New(quotas domain.Quotas) *Limiter {
	l := &Limiter{
		quotas: quotas,
		now:    time.Now,
	}
	for i := range l.shards {
		l.shards[i] = &shard{entries: make(map[string]*entry)}
	}
	return l
}

// Check admits the request and returns the remaining quota, or rejects it
// with a RateLimitError carrying the reset timestamp. Rejections never
// mutate the stored count, so repeated over-quota calls keep returning the
// same answer until the window rolls over. The reset is lazy: stale windows
// are detected on the next check, there is no background sweep.
func (l *Limiter) Check(userID string, tier domain.Tier) (Status, error) {
	now := l.now().UTC()
	hour, day := now.Hour(), now.YearDay()
	limit := tier.HourlyQuota(l.quotas)

	key := userID + ":" + tier.Name()
	s := l.shardFor(key)

	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[key]
	if !ok {
		e = &entry{hour: hour, day: day}
		s.entries[key] = e
	}

	if e.hour != hour || e.day != day {
		e.count = 0
		e.hour = hour
		e.day = day
	}

	if e.count >= limit {
		return Status{}, apperr.NewRateLimit(tier.Name(), limit, nextHour(now))
	}

	e.count++
	return Status{
		Limit:     limit,
		Remaining: limit - e.count,
		ResetAt:   nextHour(now),
	}, nil
}

func (l *Limiter) shardFor(key string) *shard {
	h := fnv.New32a()
	_, _ = h.Write([]byte(key))
	return l.shards[h.Sum32()%shardCount]
}

// nextHour truncates minutes and seconds and moves to the following hour,
// so every window boundary is wall-clock aligned.
func nextHour(t time.Time) time.Time {
	return t.Truncate(time.Hour).Add(time.Hour)
}
