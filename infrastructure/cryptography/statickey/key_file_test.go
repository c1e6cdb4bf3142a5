package statickey

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"ovpncc/domain/errdomain"
)

func TestKeyFileRoundTrip(t *testing.T) {
	generated, err := GenerateStaticKey(Bidirectional)
	if err != nil {
		t.Fatalf("GenerateStaticKey failed: %v", err)
	}

	content := EncodeKeyFile(generated)
	if !strings.HasPrefix(content, beginMarker) {
		t.Fatal("encoded file should start with the begin marker")
	}
	if lines := strings.Count(content, "\n"); lines != 18 {
		t.Fatalf("expected 18 lines (markers + 16 hex lines), got %d", lines)
	}

	parsed, err := ParseKeyFile(content, Server)
	if err != nil {
		t.Fatalf("ParseKeyFile failed: %v", err)
	}
	if !bytes.Equal(parsed.secret[:], generated.secret[:]) {
		t.Fatal("parsed secret differs from generated secret")
	}
	if parsed.Direction() != Server {
		t.Fatalf("expected server direction, got %v", parsed.Direction())
	}
}

func TestParseKeyFileIgnoresComments(t *testing.T) {
	generated, err := GenerateStaticKey(Bidirectional)
	if err != nil {
		t.Fatalf("GenerateStaticKey failed: %v", err)
	}
	content := "#\n# 2048 bit OpenVPN static key\n#\n" + EncodeKeyFile(generated)

	if _, err := ParseKeyFile(content, Bidirectional); err != nil {
		t.Fatalf("ParseKeyFile with leading comments failed: %v", err)
	}
}

func TestParseKeyFileErrors(t *testing.T) {
	valid, _ := GenerateStaticKey(Bidirectional)
	content := EncodeKeyFile(valid)

	cases := []struct {
		name    string
		content string
		want    error
	}{
		{"no header", strings.Replace(content, beginMarker, "", 1), ErrMissingHeader},
		{"no footer", strings.Replace(content, endMarker, "", 1), ErrMissingFooter},
		{"bad hex", strings.Replace(content, beginMarker+"\n", beginMarker+"\nzz", 1), ErrBadHex},
		{"short key", beginMarker + "\nabcd\n" + endMarker, ErrBadKeyLength},
	}
	for _, c := range cases {
		_, err := ParseKeyFile(c.content, Bidirectional)
		if !errors.Is(err, c.want) {
			t.Fatalf("%s: expected %v, got %v", c.name, c.want, err)
		}
		if !errdomain.In(err, Domain) {
			t.Fatalf("%s: error should carry the %s domain", c.name, Domain)
		}
	}
}

func TestDirectionFromKeyDirection(t *testing.T) {
	if d, err := DirectionFromKeyDirection(nil); err != nil || d != Bidirectional {
		t.Fatalf("nil: expected bidirectional, got %v (%v)", d, err)
	}

	zero, one, two := 0, 1, 2
	if d, err := DirectionFromKeyDirection(&zero); err != nil || d != Server {
		t.Fatalf("0: expected server, got %v (%v)", d, err)
	}
	if d, err := DirectionFromKeyDirection(&one); err != nil || d != Client {
		t.Fatalf("1: expected client, got %v (%v)", d, err)
	}
	if _, err := DirectionFromKeyDirection(&two); !errors.Is(err, ErrBadKeyDirection) {
		t.Fatalf("2: expected ErrBadKeyDirection, got %v", err)
	}
}
