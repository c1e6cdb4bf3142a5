package statickey

import (
	"bytes"
	"testing"
)

// patternSecret fills each 64-byte slice with its own index so sub-key
// assignments are visible in the derived bytes.
func patternSecret() []byte {
	secret := make([]byte, KeyLength)
	for i := range secret {
		secret[i] = byte(i / SubkeyLength)
	}
	return secret
}

func TestNewStaticKeyPanicsOnWrongLength(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for short secret")
		}
	}()
	NewStaticKey(make([]byte, KeyLength-1), Server)
}

func TestCipherKeysPanicOnBidirectional(t *testing.T) {
	k := NewStaticKey(patternSecret(), Bidirectional)

	assertPanics := func(name string, f func()) {
		defer func() {
			if recover() == nil {
				t.Fatalf("%s: expected panic on bidirectional key", name)
			}
		}()
		f()
	}
	assertPanics("CipherEncryptKey", func() { k.CipherEncryptKey() })
	assertPanics("CipherDecryptKey", func() { k.CipherDecryptKey() })
}

func TestDirectionalSliceAssignment(t *testing.T) {
	server := NewStaticKey(patternSecret(), Server)
	client := NewStaticKey(patternSecret(), Client)

	cases := []struct {
		name string
		got  []byte
		want byte
	}{
		{"server enc", server.CipherEncryptKey(), 0},
		{"server dec", server.CipherDecryptKey(), 2},
		{"client enc", client.CipherEncryptKey(), 2},
		{"client dec", client.CipherDecryptKey(), 0},
		{"server hmac send", server.HMACSendKey(), 1},
		{"server hmac recv", server.HMACReceiveKey(), 3},
		{"client hmac send", client.HMACSendKey(), 3},
		{"client hmac recv", client.HMACReceiveKey(), 1},
	}
	for _, c := range cases {
		if len(c.got) != SubkeyLength {
			t.Fatalf("%s: expected %d bytes, got %d", c.name, SubkeyLength, len(c.got))
		}
		for i, v := range c.got {
			if v != c.want {
				t.Fatalf("%s: byte %d from slice %d, expected slice %d", c.name, i, v, c.want)
			}
		}
	}
}

func TestServerClientSymmetry(t *testing.T) {
	secret := make([]byte, KeyLength)
	for i := range secret {
		secret[i] = byte(i * 7)
	}
	server := NewStaticKey(secret, Server)
	client := NewStaticKey(secret, Client)

	if !bytes.Equal(server.CipherEncryptKey(), client.CipherDecryptKey()) {
		t.Fatal("server encrypt key should equal client decrypt key")
	}
	if !bytes.Equal(server.CipherDecryptKey(), client.CipherEncryptKey()) {
		t.Fatal("server decrypt key should equal client encrypt key")
	}
	if !bytes.Equal(server.HMACSendKey(), client.HMACReceiveKey()) {
		t.Fatal("server hmac send key should equal client hmac receive key")
	}
	if !bytes.Equal(server.HMACReceiveKey(), client.HMACSendKey()) {
		t.Fatal("server hmac receive key should equal client hmac send key")
	}
}

func TestBidirectionalHMACKeysShared(t *testing.T) {
	k := NewStaticKey(patternSecret(), Bidirectional)
	if !bytes.Equal(k.HMACSendKey(), k.HMACReceiveKey()) {
		t.Fatal("bidirectional hmac send and receive keys should match")
	}
	if k.HMACSendKey()[0] != 1 {
		t.Fatal("bidirectional hmac key should be slice 1")
	}
}

func TestZeroSecretServerScenario(t *testing.T) {
	k := NewStaticKey(make([]byte, KeyLength), Server)

	enc := k.CipherEncryptKey()
	recv := k.HMACReceiveKey()
	if len(enc) != SubkeyLength || len(recv) != SubkeyLength {
		t.Fatal("unexpected sub-key length")
	}
	if !bytes.Equal(enc, make([]byte, SubkeyLength)) {
		t.Fatal("cipher encrypt key of a zero secret should be all zero")
	}
	if !bytes.Equal(recv, make([]byte, SubkeyLength)) {
		t.Fatal("hmac receive key of a zero secret should be all zero")
	}
}

func TestZeroizeWipesSubkeys(t *testing.T) {
	k := NewStaticKey(patternSecret(), Server)
	send := k.HMACSendKey()
	k.Zeroize()
	for i, v := range send {
		if v != 0 {
			t.Fatalf("byte %d of sub-key not wiped: %#x", i, v)
		}
	}
}

func TestDirectionString(t *testing.T) {
	if Bidirectional.String() != "bidirectional" ||
		Server.String() != "server" ||
		Client.String() != "client" {
		t.Fatal("unexpected direction names")
	}
}
