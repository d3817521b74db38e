package application

import (
	"context"
	"errors"
	"testing"
	"time"

	"employee-backend/middleware/ratelimit/domain"
)

type fakeAdmitter struct {
	dec domain.Decision
	err error
}

func (f fakeAdmitter) Admit(context.Context, domain.Key) (domain.Decision, error) {
	return f.dec, f.err
}

func TestService_Decide_AllowsWhenNoAdmitter(t *testing.T) {
	svc := Service{}
	dec, err := svc.Decide(context.Background(), "k")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !dec.Allowed {
		t.Fatalf("expected allowed")
	}
	if dec.RetryAfter != 0 {
		t.Fatalf("expected RetryAfter=0 when allowed, got %s", dec.RetryAfter)
	}
}

func TestService_Decide_AllowsWhenAdmitterAllows(t *testing.T) {
	svc := Service{Admitter: fakeAdmitter{dec: domain.Decision{Allowed: true}}, RetryAfter: 5 * time.Second}
	dec, err := svc.Decide(context.Background(), "k")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !dec.Allowed {
		t.Fatalf("expected allowed")
	}
}

func TestService_Decide_BlocksWithRetryAfterDefault(t *testing.T) {
	svc := Service{Admitter: fakeAdmitter{dec: domain.Decision{}}}
	dec, err := svc.Decide(context.Background(), "k")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if dec.Allowed {
		t.Fatalf("expected blocked")
	}
	if dec.RetryAfter != 1*time.Second {
		t.Fatalf("expected default RetryAfter=1s, got %s", dec.RetryAfter)
	}
}

func TestService_Decide_KeepsAdmitterRetryAfter(t *testing.T) {
	svc := Service{
		Admitter:   fakeAdmitter{dec: domain.Decision{RetryAfter: time.Minute}},
		RetryAfter: 2 * time.Second,
	}
	dec, err := svc.Decide(context.Background(), "k")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if dec.Allowed {
		t.Fatalf("expected blocked")
	}
	if dec.RetryAfter != time.Minute {
		t.Fatalf("expected RetryAfter from admitter, got %s", dec.RetryAfter)
	}
}

func TestService_Decide_PropagatesInfraError(t *testing.T) {
	boom := errors.New("store down")
	svc := Service{Admitter: fakeAdmitter{err: boom}}
	_, err := svc.Decide(context.Background(), "k")
	if !errors.Is(err, boom) {
		t.Fatalf("expected error to propagate, got %v", err)
	}
}
