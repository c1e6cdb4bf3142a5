package settings

import (
	"encoding/json"
	"errors"
)

// Digest selects the control-channel authentication digest.
type Digest int

const (
	SHA1 Digest = iota
	SHA256
	SHA512
)

func (d Digest) String() string {
	switch d {
	case SHA1:
		return "SHA1"
	case SHA256:
		return "SHA256"
	case SHA512:
		return "SHA512"
	default:
		return "invalid"
	}
}

func (d Digest) MarshalJSON() ([]byte, error) {
	switch d {
	case SHA1, SHA256, SHA512:
		return json.Marshal(d.String())
	default:
		return nil, errors.New("invalid digest")
	}
}

func (d *Digest) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	switch s {
	case "SHA1":
		*d = SHA1
	case "SHA256":
		*d = SHA256
	case "SHA512":
		*d = SHA512
	default:
		return errors.New("invalid digest")
	}
	return nil
}

// ControlSettings configures the control-channel protection of one tunnel.
// KeyDirection mirrors the key-direction option: nil for a bidirectional
// key, 0 for the server end, 1 for the client end.
type ControlSettings struct {
	Digest       Digest `json:"Digest"`
	KeyDirection *int   `json:"KeyDirection,omitempty"`
}
