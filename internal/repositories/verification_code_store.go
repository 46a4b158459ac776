package repositories

import (
	"strings"
	"sync"
	"time"

	"github.com/Hafizirfan96/spu-backend/internal/utils"
)

// Failure reasons reported by Peek and Consume.
const (
	ReasonNotFound = "not_found"
	ReasonExpired  = "expired"
	ReasonMismatch = "mismatch"
)

// VerificationResult is the outcome of a code check. The code itself is
// never echoed back.
type VerificationResult struct {
	OK     bool
	Reason string
}

// VerificationCodeStore holds the live email verification codes.
//
// The store is process-local and in-memory on purpose: codes are short-lived
// throwaway state and the service runs as a single instance. Scaling out
// requires replacing this with a shared keyed store with per-key TTL.
type VerificationCodeStore interface {
	// Issue generates a fresh code for the identity, replacing any live
	// code for the same identity, and returns it for dispatch.
	Issue(identity string) string

	// Peek checks identity/code without consuming. An expired record is
	// evicted as a side effect, but that check still reports expired;
	// later checks report not_found.
	Peek(identity, code string) VerificationResult

	// Consume is Peek plus removal on success. At most one of any number
	// of concurrent Consume calls for the same identity/code succeeds.
	Consume(identity, code string) VerificationResult

	// EvictIfCode drops the live record for identity only if it still
	// holds the given code. Used when dispatch of that code fails after
	// issuance; a newer code issued concurrently for the same identity
	// is left alone.
	EvictIfCode(identity, code string)

	// SweepExpired removes every expired record and reports how many.
	SweepExpired() int
}

type verificationRecord struct {
	code      string
	issuedAt  time.Time
	expiresAt time.Time
}

type memoryVerificationCodeStore struct {
	mu         sync.Mutex
	records    map[string]verificationRecord
	codeLength int
	ttl        time.Duration
}

func NewMemoryVerificationCodeStore(codeLength int, ttl time.Duration) VerificationCodeStore {
	return &memoryVerificationCodeStore{
		records:    make(map[string]verificationRecord),
		codeLength: codeLength,
		ttl:        ttl,
	}
}

func normalizeIdentity(identity string) string {
	return strings.ToLower(strings.TrimSpace(identity))
}

func (s *memoryVerificationCodeStore) Issue(identity string) string {
	code := utils.RandomNumericString(s.codeLength)
	now := time.Now()

	s.mu.Lock()
	defer s.mu.Unlock()

	s.records[normalizeIdentity(identity)] = verificationRecord{
		code:      code,
		issuedAt:  now,
		expiresAt: now.Add(s.ttl),
	}
	return code
}

func (s *memoryVerificationCodeStore) Peek(identity, code string) VerificationResult {
	return s.check(identity, code, false)
}

func (s *memoryVerificationCodeStore) Consume(identity, code string) VerificationResult {
	return s.check(identity, code, true)
}

// check evaluates identity/code under the store lock, so a concurrent
// consume of the same record cannot succeed twice: the first winner
// deletes the record and the loser observes not_found.
func (s *memoryVerificationCodeStore) check(identity, code string, consume bool) VerificationResult {
	key := normalizeIdentity(identity)

	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.records[key]
	if !ok {
		return VerificationResult{Reason: ReasonNotFound}
	}
	if time.Now().After(rec.expiresAt) {
		delete(s.records, key)
		return VerificationResult{Reason: ReasonExpired}
	}
	if rec.code != code {
		return VerificationResult{Reason: ReasonMismatch}
	}
	if consume {
		delete(s.records, key)
	}
	return VerificationResult{OK: true}
}

func (s *memoryVerificationCodeStore) EvictIfCode(identity, code string) {
	key := normalizeIdentity(identity)

	s.mu.Lock()
	defer s.mu.Unlock()

	if rec, ok := s.records[key]; ok && rec.code == code {
		delete(s.records, key)
	}
}

func (s *memoryVerificationCodeStore) SweepExpired() int {
	now := time.Now()

	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for key, rec := range s.records {
		if now.After(rec.expiresAt) {
			delete(s.records, key)
			removed++
		}
	}
	return removed
}
