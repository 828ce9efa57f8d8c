package health_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen11/moneygoal/internal/platform/health"
	"github.com/jsamuelsen11/moneygoal/mocks"
)

// checker is a HealthChecker backed by a function.
type checker struct {
	name  string
	check func(context.Context) error
}

func (c checker) Name() string { return c.name }
func (c checker) HealthCheck(ctx context.Context) error { return c.check(ctx) }

func returns(name string, err error) checker {
	return checker{name: name, check: func(context.Context) error { return err }}
}

func TestCheckAll(t *testing.T) {
	t.Parallel()

	refused := errors.New("connection refused")
	open := errors.New("wise: failing (circuit breaker open)")

	tests := []struct {
		name     string
		checkers []checker
		want     map[string]error
	}{
		{
			name: "no checkers",
			want: map[string]error{},
		},
		{
			name:     "all healthy",
			checkers: []checker{returns("database", nil), returns("exchange", nil)},
			want:     map[string]error{"database": nil, "exchange": nil},
		},
		{
			name:     "mixed",
			checkers: []checker{returns("database", nil), returns("wise", open), returns("plaid", refused)},
			want:     map[string]error{"database": nil, "wise": open, "plaid": refused},
		},
		{
			name:     "duplicate name keeps the last registered",
			checkers: []checker{returns("database", nil), returns("database", refused)},
			want:     map[string]error{"database": refused},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r := health.New()
			for _, c := range tt.checkers {
				r.Register(c)
			}

			got := r.CheckAll(context.Background())
			if got == nil {
				t.Fatal("CheckAll() = nil, want a map")
			}
			if diff := cmp.Diff(tt.want, got, cmpopts.EquateErrors()); diff != "" {
				t.Errorf("CheckAll() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCheckAll_PassesCallerContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	m := mocks.NewMockHealthChecker(t)
	m.EXPECT().Name().Return("wise")
	m.EXPECT().HealthCheck(mock.MatchedBy(func(ctx context.Context) bool {
		return ctx.Err() != nil
	})).Return(context.Canceled)

	r := health.New()
	r.Register(m)

	if err := r.CheckAll(ctx)["wise"]; !errors.Is(err, context.Canceled) {
		t.Errorf("wise = %v, want context.Canceled", err)
	}
}

func TestCheckAll_SlowCheckerTimesOut(t *testing.T) {
	t.Parallel()

	slow := checker{name: "plaid", check: func(ctx context.Context) error {
		<-ctx.Done()
		return ctx.Err()
	}}

	r := health.New(health.WithCheckTimeout(20 * time.Millisecond))
	r.Register(slow)
	r.Register(returns("database", nil))

	start := time.Now()
	results := r.CheckAll(context.Background())

	if !errors.Is(results["plaid"], context.DeadlineExceeded) {
		t.Errorf("plaid = %v, want deadline exceeded", results["plaid"])
	}
	if results["database"] != nil {
		t.Errorf("database = %v, want nil", results["database"])
	}
	if elapsed := time.Since(start); elapsed > time.Second {
		t.Errorf("CheckAll took %v, want bounded by the check timeout", elapsed)
	}
}

func TestCheckAll_ChecksRunConcurrently(t *testing.T) {
	t.Parallel()

	// Each checker waits for the other; sequential execution would time out.
	var wg sync.WaitGroup
	wg.Add(2)
	rendezvous := func(ctx context.Context) error {
		wg.Done()
		done := make(chan struct{})
		go func() { wg.Wait(); close(done) }()
		select {
		case <-done:
			return nil
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	r := health.New(health.WithCheckTimeout(time.Second))
	r.Register(checker{name: "wise", check: rendezvous})
	r.Register(checker{name: "exchange", check: rendezvous})

	for name, err := range r.CheckAll(context.Background()) {
		if err != nil {
			t.Errorf("%s = %v, want nil", name, err)
		}
	}
}

func TestRegister_ConcurrentWithCheckAll(t *testing.T) {
	t.Parallel()

	r := health.New()

	var wg sync.WaitGroup
	for i := range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if i%2 == 0 {
				r.Register(returns("checker", nil))
				return
			}
			r.CheckAll(context.Background())
		}()
	}
	wg.Wait()
}
