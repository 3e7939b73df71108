package ratelimit

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *Config {
	return &Config{
		Enabled:       true,
		DefaultLimit:  100,
		DefaultWindow: time.Minute,
		Rules:         DefaultRules(),
	}
}

func TestBucketTake_RefillsOverTime(t *testing.T) {
	// 2 tokens, refilling at 1 token/s.
	start := time.Now()
	b := &bucket{capacity: 2, refillRate: 1, tokens: 2, updated: start}

	allowed, remaining, _ := b.take(start)
	require.True(t, allowed)
	assert.Equal(t, 1, remaining)

	allowed, remaining, reset := b.take(start)
	require.True(t, allowed)
	assert.Equal(t, 0, remaining)
	assert.Equal(t, start.Add(2*time.Second), reset)

	allowed, _, _ = b.take(start)
	assert.False(t, allowed, "empty bucket must deny")

	// Half a second later there is still less than one token.
	allowed, _, _ = b.take(start.Add(500 * time.Millisecond))
	assert.False(t, allowed)

	// Two seconds after the denial the bucket has refilled enough.
	allowed, _, _ = b.take(start.Add(3 * time.Second))
	assert.True(t, allowed)
}

func TestBucketTake_CapsAtCapacity(t *testing.T) {
	start := time.Now()
	b := &bucket{capacity: 3, refillRate: 100, tokens: 3, updated: start}

	// A long idle stretch must not accumulate beyond capacity.
	allowed, remaining, reset := b.take(start.Add(time.Hour))
	require.True(t, allowed)
	assert.Equal(t, 2, remaining)
	assert.True(t, reset.After(start))
}

func TestAllow_ScreeningBurstExhausts(t *testing.T) {
	l := NewLimiter(testConfig())
	defer l.Stop()

	// POST /analysis/create allows a burst of 5, then refills at 30/hour.
	for i := 0; i < 5; i++ {
		allowed, info := l.Allow("10.0.0.1", "POST", "/analysis/create")
		require.True(t, allowed, "upload %d should pass", i+1)
		assert.Equal(t, 30, info.Limit)
		assert.Equal(t, 4-i, info.Remaining)
	}

	allowed, info := l.Allow("10.0.0.1", "POST", "/analysis/create")
	assert.False(t, allowed)
	assert.Greater(t, info.RetryAfter, time.Duration(0))
	assert.True(t, info.ResetTime.After(time.Now()))
}

func TestAllow_SigninGuessingIsolatedPerClient(t *testing.T) {
	l := NewLimiter(testConfig())
	defer l.Stop()

	// One client burning through signin attempts must not affect another.
	for i := 0; i < 5; i++ {
		allowed, _ := l.Allow("attacker", "POST", "/auth/signin")
		require.True(t, allowed)
	}
	allowed, _ := l.Allow("attacker", "POST", "/auth/signin")
	require.False(t, allowed)

	allowed, info := l.Allow("legit-user", "POST", "/auth/signin")
	assert.True(t, allowed)
	assert.Equal(t, 4, info.Remaining)
}

func TestAllow_DeleteBudgetSharedAcrossIDs(t *testing.T) {
	l := NewLimiter(testConfig())
	defer l.Stop()

	// Every analysis ID matches the same DELETE rule, so all deletes draw
	// from one per-client bucket.
	for i := 0; i < 10; i++ {
		allowed, info := l.Allow("10.0.0.1", "DELETE", fmt.Sprintf("/analysis/id-%d", i))
		require.True(t, allowed, "delete %d should pass", i+1)
		assert.Equal(t, 100, info.Limit)
	}

	allowed, _ := l.Allow("10.0.0.1", "DELETE", "/analysis/yet-another")
	assert.False(t, allowed, "burst of 10 must be spent across distinct IDs")
}

func TestAllow_ReadsUseDefaultLimit(t *testing.T) {
	cfg := testConfig()
	cfg.DefaultLimit = 3
	l := NewLimiter(cfg)
	defer l.Stop()

	for i := 0; i < 3; i++ {
		allowed, info := l.Allow("10.0.0.1", "GET", "/analysis/list")
		require.True(t, allowed)
		assert.Equal(t, 3, info.Limit)
	}
	allowed, _ := l.Allow("10.0.0.1", "GET", "/analysis/list")
	assert.False(t, allowed)

	// GET and DELETE on the same path are separate scopes.
	allowed, _ = l.Allow("10.0.0.1", "DELETE", "/analysis/abc")
	assert.True(t, allowed)
}

func TestAllow_HealthNeverLimited(t *testing.T) {
	l := NewLimiter(testConfig())
	defer l.Stop()

	for i := 0; i < 500; i++ {
		allowed, _ := l.Allow("probe-host", "GET", "/health")
		require.True(t, allowed)
	}
}

func TestAllow_TrustedClientBypasses(t *testing.T) {
	cfg := testConfig()
	cfg.Trusted = map[string]bool{"10.0.0.9": true}
	l := NewLimiter(cfg)
	defer l.Stop()

	for i := 0; i < 50; i++ {
		allowed, _ := l.Allow("10.0.0.9", "POST", "/analysis/create")
		require.True(t, allowed)
	}
}

func TestAllow_Disabled(t *testing.T) {
	l := NewLimiter(&Config{Enabled: false})
	defer l.Stop()

	for i := 0; i < 100; i++ {
		allowed, _ := l.Allow("anyone", "POST", "/auth/signin")
		require.True(t, allowed)
	}
}

func TestAllow_Concurrent(t *testing.T) {
	cfg := testConfig()
	cfg.Rules = []Rule{
		{Pattern: "POST /analysis/create", Limit: 10, Window: time.Hour, Burst: 10},
	}
	l := NewLimiter(cfg)
	defer l.Stop()

	var wg sync.WaitGroup
	results := make(chan bool, 50)
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			allowed, _ := l.Allow("10.0.0.1", "POST", "/analysis/create")
			results <- allowed
		}()
	}
	wg.Wait()
	close(results)

	allowed := 0
	for ok := range results {
		if ok {
			allowed++
		}
	}
	assert.Equal(t, 10, allowed, "exactly the burst capacity may pass")
}

func TestReap_DropsIdleBuckets(t *testing.T) {
	cfg := testConfig()
	cfg.CleanupInterval = 10 * time.Millisecond
	l := NewLimiter(cfg)
	defer l.Stop()

	l.Allow("10.0.0.1", "POST", "/analysis/create")

	// Age the bucket past the idle TTL and wait for the reaper.
	l.mu.Lock()
	for _, b := range l.buckets {
		b.updated = time.Now().Add(-2 * bucketIdleTTL)
	}
	l.mu.Unlock()

	assert.Eventually(t, func() bool {
		l.mu.Lock()
		defer l.mu.Unlock()
		return len(l.buckets) == 0
	}, time.Second, 5*time.Millisecond)
}

func TestMatchRule(t *testing.T) {
	rules := DefaultRules()

	tests := []struct {
		name   string
		method string
		path   string
		want   string // matched pattern, "" for no match
	}{
		{name: "create exact", method: "POST", path: "/analysis/create", want: "POST /analysis/create"},
		{name: "delete wildcard", method: "DELETE", path: "/analysis/68a1f3", want: "DELETE /analysis/{id}"},
		{name: "wrong method falls through", method: "GET", path: "/analysis/68a1f3", want: ""},
		{name: "get on create path falls through", method: "GET", path: "/analysis/create", want: ""},
		{name: "extra segment falls through", method: "DELETE", path: "/analysis/a/b", want: ""},
		{name: "signin", method: "POST", path: "/auth/signin", want: "POST /auth/signin"},
		{name: "list unmatched", method: "GET", path: "/analysis/list", want: ""},
		{name: "health", method: "GET", path: "/health", want: "GET /health"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rule := matchRule(tt.method, tt.path, rules)
			if tt.want == "" {
				assert.Nil(t, rule)
				return
			}
			require.NotNil(t, rule)
			assert.Equal(t, tt.want, rule.Pattern)
		})
	}

	t.Run("trailing slash does not satisfy a wildcard segment", func(t *testing.T) {
		assert.False(t, matchPath("/analysis/{id}", "/analysis/"))
	})
}

func TestLoadConfig(t *testing.T) {
	t.Run("disabled via env", func(t *testing.T) {
		t.Setenv("RATE_LIMIT_ENABLED", "false")
		cfg := LoadConfig()
		assert.False(t, cfg.Enabled)
	})

	t.Run("defaults with trusted list", func(t *testing.T) {
		t.Setenv("RATE_LIMIT_ENABLED", "true")
		t.Setenv("RATE_LIMIT_DEFAULT_LIMIT", "42")
		t.Setenv("RATE_LIMIT_TRUSTED", "10.0.0.1, 10.0.0.2")

		cfg := LoadConfig()
		assert.True(t, cfg.Enabled)
		assert.Equal(t, 42, cfg.DefaultLimit)
		assert.Equal(t, time.Minute, cfg.DefaultWindow)
		assert.True(t, cfg.Trusted["10.0.0.1"])
		assert.True(t, cfg.Trusted["10.0.0.2"])
		assert.Len(t, cfg.Rules, len(DefaultRules()))
	})
}
