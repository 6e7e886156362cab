package server

import (
	"errors"
	"testing"
	"time"

	"github.com/pdrpinto/waterjug"
)

func newTestStepper() *waterjug.Stepper {
	return waterjug.NewStepper(waterjug.Puzzle{CapacityA: 4, CapacityB: 3, Goal: 2})
}

func TestSessionStore_EvictsIdleSessions(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	store := newSessionStore(2, time.Minute)
	store.now = func() time.Time { return now }

	idle, err := store.create(newTestStepper())
	if err != nil {
		t.Fatalf("create returned error: %v", err)
	}
	now = now.Add(30 * time.Second)
	active, err := store.create(newTestStepper())
	if err != nil {
		t.Fatalf("create returned error: %v", err)
	}

	if _, err := store.create(newTestStepper()); !errors.Is(err, errTooManySessions) {
		t.Fatalf("create on a full store = %v, want %v", err, errTooManySessions)
	}

	now = now.Add(45 * time.Second)
	sess, ok := store.get(active)
	if !ok {
		t.Fatal("active session missing")
	}
	store.step(sess)

	if _, err := store.create(newTestStepper()); err != nil {
		t.Fatalf("create after the idle session expired returned error: %v", err)
	}
	if _, ok := store.get(idle); ok {
		t.Error("expected the idle session to be evicted")
	}
	if _, ok := store.get(active); !ok {
		t.Error("expected the recently stepped session to be kept")
	}
}

func TestSessionStore_EvictsFinishedSessions(t *testing.T) {
	t.Parallel()

	store := newSessionStore(1, time.Hour)

	finished, err := store.create(newTestStepper())
	if err != nil {
		t.Fatalf("create returned error: %v", err)
	}
	sess, _ := store.get(finished)
	for !sess.stepper.Done() {
		store.step(sess)
	}

	if _, err := store.create(newTestStepper()); err != nil {
		t.Fatalf("create returned error: %v", err)
	}
	if _, ok := store.get(finished); ok {
		t.Error("expected the finished session to be evicted")
	}
}

func TestSessionStore_KeepsSessionsWhileNotFull(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	store := newSessionStore(0, time.Minute)
	store.now = func() time.Time { return now }

	first, _ := store.create(newTestStepper())
	now = now.Add(time.Hour)
	for range 10 {
		if _, err := store.create(newTestStepper()); err != nil {
			t.Fatalf("create on an unlimited store returned error: %v", err)
		}
	}
	if _, ok := store.get(first); !ok {
		t.Error("expected sessions to be evicted only when the store is full")
	}
}
