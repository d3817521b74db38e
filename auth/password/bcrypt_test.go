package password

import "testing"

func TestHashAndVerify(t *testing.T) {
	h, err := Hash("s3cret")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if h == "s3cret" {
		t.Fatalf("hash must not equal the plain password")
	}
	if !Verify(h, "s3cret") {
		t.Fatalf("expected password to verify")
	}
	if Verify(h, "wrong") {
		t.Fatalf("expected wrong password to fail")
	}
}
