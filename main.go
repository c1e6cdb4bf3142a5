package main

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"

	"ovpncc/infrastructure/cryptography/statickey"
	"ovpncc/infrastructure/logging"
	"ovpncc/infrastructure/settings"
)

const (
	PackageName  = "ovpncc"
	GenerateMode = "g"
	InspectMode  = "i"
)

func main() {
	logger := logging.NewLogLogger()

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case GenerateMode:
		key, keyErr := statickey.GenerateStaticKey(statickey.Bidirectional)
		if keyErr != nil {
			logger.Printf("failed to generate static key: %v", keyErr)
			os.Exit(1)
		}
		defer key.Zeroize()

		content := statickey.EncodeKeyFile(key)
		if len(os.Args) > 2 {
			if writeErr := os.WriteFile(os.Args[2], []byte(content), 0600); writeErr != nil {
				logger.Printf("failed to write key file: %v", writeErr)
				os.Exit(1)
			}
			logger.Printf("static key written to %s", os.Args[2])
			return
		}
		fmt.Print(content)
	case InspectMode:
		if len(os.Args) < 3 {
			printUsage()
			os.Exit(1)
		}
		content, readErr := os.ReadFile(os.Args[2])
		if readErr != nil {
			logger.Printf("failed to read key file: %v", readErr)
			os.Exit(1)
		}

		conf := settings.ControlSettings{Digest: settings.SHA256}
		if len(os.Args) > 3 {
			if parseErr := json.Unmarshal([]byte(os.Args[3]), &conf); parseErr != nil {
				logger.Printf("failed to parse settings: %v", parseErr)
				os.Exit(1)
			}
		}
		direction, directionErr := statickey.DirectionFromKeyDirection(conf.KeyDirection)
		if directionErr != nil {
			logger.Printf("%v", directionErr)
			os.Exit(1)
		}

		key, parseErr := statickey.ParseKeyFile(string(content), direction)
		if parseErr != nil {
			logger.Printf("failed to parse key file: %v", parseErr)
			os.Exit(1)
		}
		defer key.Zeroize()

		fmt.Printf("direction:          %s\n", key.Direction())
		fmt.Printf("digest:             %s\n", conf.Digest)
		fmt.Printf("hmac send key:      %s\n", fingerprint(key.HMACSendKey()))
		fmt.Printf("hmac receive key:   %s\n", fingerprint(key.HMACReceiveKey()))
		if key.Direction() != statickey.Bidirectional {
			fmt.Printf("cipher encrypt key: %s\n", fingerprint(key.CipherEncryptKey()))
			fmt.Printf("cipher decrypt key: %s\n", fingerprint(key.CipherDecryptKey()))
		}
	default:
		printUsage()
		os.Exit(1)
	}
}

// fingerprint renders a short digest of a sub-key so inspection never
// prints key material.
func fingerprint(key []byte) string {
	sum := sha256.Sum256(key)
	return hex.EncodeToString(sum[:8])
}

func printUsage() {
	fmt.Printf(`Usage: %s <mode> [args]
Modes:
  %s [file]            - generate a static key (stdout when no file is given)
  %s <file> [settings] - inspect a static key file; settings is a JSON
                        ControlSettings document, e.g. {"KeyDirection":0}
`, PackageName, GenerateMode, InspectMode)
}
