package resilience

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestSingleFlight_CollapsesConcurrentCalls(t *testing.T) {
	t.Parallel()

	var g SingleFlight
	var executions atomic.Int32

	const callers = 25
	release := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(callers)

	for i := 0; i < callers; i++ {
		go func() {
			defer wg.Done()
			<-release
			v, err := g.Do("weeks", func() (any, error) {
				executions.Add(1)
				time.Sleep(15 * time.Millisecond)
				return 42, nil
			})
			if err != nil {
				t.Errorf("Do returned error: %v", err)
				return
			}
			if got, _ := v.(int); got != 42 {
				t.Errorf("Do returned %v, want 42", v)
			}
		}()
	}

	close(release)
	wg.Wait()

	if got := executions.Load(); got != 1 {
		t.Fatalf("function executed %d times, want 1", got)
	}
}

func TestSingleFlight_ErrorsSharedAndKeyReleased(t *testing.T) {
	t.Parallel()

	var g SingleFlight
	wantErr := errors.New("load failed")

	if _, err := g.Do("k", func() (any, error) { return nil, wantErr }); !errors.Is(err, wantErr) {
		t.Fatalf("first call error = %v, want %v", err, wantErr)
	}

	// The failed key must not stay occupied.
	v, err := g.Do("k", func() (any, error) { return "recovered", nil })
	if err != nil {
		t.Fatalf("second call error: %v", err)
	}
	if got, _ := v.(string); got != "recovered" {
		t.Fatalf("second call returned %v, want recovered", v)
	}
}
