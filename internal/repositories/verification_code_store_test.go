package repositories

import (
	"sync"
	"testing"
	"time"
)

func TestIssueAndConsumeSingleUse(t *testing.T) {
	store := NewMemoryVerificationCodeStore(6, time.Minute)

	code := store.Issue("a@x.com")
	if len(code) != 6 {
		t.Fatalf("Expected a 6-digit code, got %q", code)
	}

	if res := store.Peek("a@x.com", code); !res.OK {
		t.Fatalf("Peek should not consume; got reason %q", res.Reason)
	}
	if res := store.Consume("a@x.com", code); !res.OK {
		t.Fatalf("First consume should succeed; got reason %q", res.Reason)
	}
	res := store.Consume("a@x.com", code)
	if res.OK || res.Reason != ReasonNotFound {
		t.Fatalf("Second consume should fail with not_found, got %+v", res)
	}
}

func TestIssueOverwritesPriorCode(t *testing.T) {
	store := NewMemoryVerificationCodeStore(6, time.Minute)

	old := store.Issue("a@x.com")
	fresh := store.Issue("a@x.com")

	if old != fresh {
		if res := store.Peek("a@x.com", old); res.OK || res.Reason != ReasonMismatch {
			t.Fatalf("Old code should no longer verify, got %+v", res)
		}
	}
	if res := store.Consume("a@x.com", fresh); !res.OK {
		t.Fatalf("Fresh code should verify, got reason %q", res.Reason)
	}
}

func TestIdentityIsCaseInsensitive(t *testing.T) {
	store := NewMemoryVerificationCodeStore(6, time.Minute)

	code := store.Issue("A@X.com")
	if res := store.Consume("a@x.COM", code); !res.OK {
		t.Fatalf("Identity lookup should be case-insensitive, got reason %q", res.Reason)
	}
}

func TestMismatchDoesNotConsume(t *testing.T) {
	store := NewMemoryVerificationCodeStore(6, time.Minute)

	code := store.Issue("a@x.com")
	wrong := "000000"
	if wrong == code {
		wrong = "111111"
	}

	res := store.Consume("a@x.com", wrong)
	if res.OK || res.Reason != ReasonMismatch {
		t.Fatalf("Expected mismatch, got %+v", res)
	}
	if res := store.Consume("a@x.com", code); !res.OK {
		t.Fatalf("Record should survive a mismatch, got reason %q", res.Reason)
	}
}

func TestEvictIfCodeRemovesMatchingRecord(t *testing.T) {
	store := NewMemoryVerificationCodeStore(6, time.Minute)

	code := store.Issue("a@x.com")
	store.EvictIfCode("a@x.com", code)

	res := store.Peek("a@x.com", code)
	if res.OK || res.Reason != ReasonNotFound {
		t.Fatalf("Evicted code should report not_found, got %+v", res)
	}
}

func TestEvictIfCodeSparesNewerCode(t *testing.T) {
	store := NewMemoryVerificationCodeStore(6, time.Minute)

	old := store.Issue("a@x.com")
	fresh := store.Issue("a@x.com")
	if old == fresh {
		t.Skip("codes collided; nothing to distinguish")
	}

	// A stale eviction (say, after a failed dispatch of the old code)
	// must not delete the code issued afterwards.
	store.EvictIfCode("a@x.com", old)

	if res := store.Consume("a@x.com", fresh); !res.OK {
		t.Fatalf("Newer code should survive a stale eviction, got reason %q", res.Reason)
	}
}

func TestExpiredThenNotFound(t *testing.T) {
	store := NewMemoryVerificationCodeStore(6, 20*time.Millisecond)

	code := store.Issue("a@x.com")
	time.Sleep(40 * time.Millisecond)

	res := store.Peek("a@x.com", code)
	if res.OK || res.Reason != ReasonExpired {
		t.Fatalf("First check after TTL should report expired, got %+v", res)
	}

	// The expired record was evicted during the first check.
	res = store.Peek("a@x.com", code)
	if res.OK || res.Reason != ReasonNotFound {
		t.Fatalf("Second check should report not_found, got %+v", res)
	}
}

func TestSweepExpired(t *testing.T) {
	store := NewMemoryVerificationCodeStore(6, 20*time.Millisecond)

	store.Issue("a@x.com")
	store.Issue("b@x.com")
	time.Sleep(40 * time.Millisecond)
	store.Issue("c@x.com")

	if removed := store.SweepExpired(); removed != 2 {
		t.Fatalf("Expected 2 expired records swept, got %d", removed)
	}
	if removed := store.SweepExpired(); removed != 0 {
		t.Fatalf("Second sweep should remove nothing, got %d", removed)
	}
}

func TestConcurrentConsumeAdmitsExactlyOne(t *testing.T) {
	store := NewMemoryVerificationCodeStore(6, time.Minute)
	code := store.Issue("a@x.com")

	const workers = 32
	var wg sync.WaitGroup
	results := make(chan VerificationResult, workers)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results <- store.Consume("a@x.com", code)
		}()
	}
	wg.Wait()
	close(results)

	successes := 0
	for res := range results {
		if res.OK {
			successes++
		} else if res.Reason != ReasonNotFound {
			t.Fatalf("Losers must observe not_found, got %q", res.Reason)
		}
	}
	if successes != 1 {
		t.Fatalf("Expected exactly one successful consume, got %d", successes)
	}
}
