package errdomain

import (
	"errors"
	"fmt"
	"testing"
)

const testDomain = "ovpncc.test"

var errSample = New(testDomain, 7, "sample failure")

func TestErrorMessage(t *testing.T) {
	if errSample.Error() != "sample failure" {
		t.Fatalf("unexpected message: %q", errSample.Error())
	}
}

func TestIsMatchesSentinel(t *testing.T) {
	if !errors.Is(errSample, errSample) {
		t.Fatal("sentinel should match itself")
	}

	wrapped := fmt.Errorf("%w: extra context", errSample)
	if !errors.Is(wrapped, errSample) {
		t.Fatal("wrapped error should match its sentinel")
	}
}

func TestIsRejectsOtherDomainOrCode(t *testing.T) {
	otherCode := New(testDomain, 8, "sample failure")
	if errors.Is(errSample, otherCode) {
		t.Fatal("different code should not match")
	}

	otherDomain := New("ovpncc.other", 7, "sample failure")
	if errors.Is(errSample, otherDomain) {
		t.Fatal("different domain should not match")
	}

	if errors.Is(errSample, errors.New("sample failure")) {
		t.Fatal("plain error should not match")
	}
}

func TestCodeExtraction(t *testing.T) {
	wrapped := fmt.Errorf("outer: %w", errSample)

	code, ok := Code(wrapped, testDomain)
	if !ok || code != 7 {
		t.Fatalf("expected code 7, got %d (ok=%v)", code, ok)
	}

	if _, ok := Code(wrapped, "ovpncc.other"); ok {
		t.Fatal("code extraction should fail for a foreign domain")
	}

	if _, ok := Code(errors.New("unrelated"), testDomain); ok {
		t.Fatal("code extraction should fail for an untagged error")
	}
}

func TestIn(t *testing.T) {
	if !In(errSample, testDomain) {
		t.Fatal("expected error to belong to its domain")
	}
	if In(errSample, "ovpncc.other") {
		t.Fatal("expected error not to belong to a foreign domain")
	}
}
