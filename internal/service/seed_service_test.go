package service

import (
	"context"
	"errors"
	"testing"
)

func TestSeed_ResetsBothCollections(t *testing.T) {
	lessons := &fakeLessonRepo{}
	orders := &fakeOrderRepo{}
	svc := NewSeedService(lessons, orders)

	count, err := svc.Seed(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if count != 10 {
		t.Errorf("expected 10 lessons seeded, got %d", count)
	}
	if !orders.deleted {
		t.Error("expected orders to be wiped")
	}
}

func TestSeed_Idempotent(t *testing.T) {
	lessons := &fakeLessonRepo{}
	svc := NewSeedService(lessons, &fakeOrderRepo{})

	for i := 0; i < 2; i++ {
		if _, err := svc.Seed(context.Background()); err != nil {
			t.Fatalf("seed %d failed: %v", i+1, err)
		}
	}
	if len(lessons.lessons) != 10 {
		t.Errorf("expected exactly the 10-lesson catalog after reseeding, got %d", len(lessons.lessons))
	}
}

func TestSeed_OrderWipeFailure(t *testing.T) {
	storeErr := errors.New("store down")
	svc := NewSeedService(&fakeLessonRepo{}, &fakeOrderRepo{err: storeErr})

	if _, err := svc.Seed(context.Background()); !errors.Is(err, storeErr) {
		t.Errorf("expected store error to propagate, got %v", err)
	}
}
