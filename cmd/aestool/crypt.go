// Copyright 2023 Sneller, Inc.
//
//  Licensed under the Apache License, Version 2.0 (the "License");
//  you may not use this file except in compliance with the License.
//  You may obtain a copy of the License at
//
//    http://www.apache.org/licenses/LICENSE-2.0
//
//  Unless required by applicable law or agreed to in writing, software
//  distributed under the License is distributed on an "AS IS" BASIS,
//  WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
//  See the License for the specific language governing permissions and
//  limitations under the License.

package main

import (
	"bytes"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/scrypt"

	"github.com/SnellerInc/rijndael/analysis"
	"github.com/SnellerInc/rijndael/compr"
	"github.com/SnellerInc/rijndael/config"
	"github.com/SnellerInc/rijndael/internal/aes"
	"github.com/SnellerInc/rijndael/ints"
	"github.com/SnellerInc/rijndael/modes"
	"github.com/SnellerInc/rijndael/padding"
)

// scrypt parameters recommended for interactive use (2017)
const (
	scryptN = 1 << 15
	scryptR = 8
	scryptP = 1
)

var errNoKey = errors.New("no key: use -key or -passphrase")

func decodeValue(format, s string) ([]byte, error) {
	switch format {
	case "raw":
		return []byte(s), nil
	case "hex":
		return hex.DecodeString(strings.TrimSpace(s))
	case "base64":
		return base64.StdEncoding.DecodeString(strings.TrimSpace(s))
	default:
		return nil, fmt.Errorf("unknown format %q", format)
	}
}

func decodeInput(format string, buf []byte) ([]byte, error) {
	if format == "raw" {
		return buf, nil
	}
	return decodeValue(format, strings.Join(strings.Fields(string(buf)), ""))
}

func encodeOutput(format string, buf []byte) []byte {
	switch format {
	case "hex":
		return []byte(hex.EncodeToString(buf) + "\n")
	case "base64":
		return []byte(base64.StdEncoding.EncodeToString(buf) + "\n")
	default:
		return buf
	}
}

func resolveKey(c *config.Config) ([]byte, error) {
	switch {
	case c.Key != "":
		key, err := decodeValue(c.Format, c.Key)
		if err != nil {
			return nil, fmt.Errorf("decoding key: %w", err)
		}
		if len(key) != aes.KeySize {
			return nil, fmt.Errorf("key is %d bytes: %w", len(key), aes.ErrKeySize)
		}
		return key, nil
	case c.Passphrase != "":
		if c.Salt == "" {
			return nil, fmt.Errorf("-passphrase requires -salt")
		}
		salt, err := decodeValue(c.Format, c.Salt)
		if err != nil {
			return nil, fmt.Errorf("decoding salt: %w", err)
		}
		return scrypt.Key([]byte(c.Passphrase), salt, scryptN, scryptR, scryptP, aes.KeySize)
	default:
		return nil, errNoKey
	}
}

// fingerprint identifies a key without revealing it
func fingerprint(key []byte) string {
	sum := blake2b.Sum256(key)
	return hex.EncodeToString(sum[:8])
}

func encrypt(c *config.Config, plaintext []byte, w io.Writer) error {
	key, err := resolveKey(c)
	if err != nil {
		return err
	}
	logf("key fingerprint %s", fingerprint(key))
	data := plaintext
	if c.Compression != "" {
		data = compr.Compression(c.Compression).Compress(data, nil)
		logf("compressed %d bytes to %d with %s", len(plaintext), len(data), c.Compression)
	}
	if c.Padding() {
		data = padding.Pad(data, modes.BlockSize)
	}
	var out []byte
	switch c.Mode {
	case "ecb":
		out, err = modes.ECB{}.Encrypt(data, key)
	case "cbc":
		var iv []byte
		var prefix bool
		if c.IV != "" {
			iv, err = decodeValue(c.Format, c.IV)
			if err != nil {
				return fmt.Errorf("decoding iv: %w", err)
			}
		} else {
			iv, err = ints.RandomBytes(modes.BlockSize)
			if err != nil {
				return err
			}
			prefix = true
		}
		var cbc *modes.CBC
		cbc, err = modes.NewCBC(iv)
		if err != nil {
			return err
		}
		out, err = cbc.Encrypt(data, key)
		if err == nil && prefix {
			out = append(iv, out...)
		}
	default:
		return fmt.Errorf("unknown mode %q", c.Mode)
	}
	if err != nil {
		return err
	}
	_, err = w.Write(encodeOutput(c.Format, out))
	return err
}

func decrypt(c *config.Config, input []byte, w io.Writer) error {
	ct, err := decodeInput(c.Format, input)
	if err != nil {
		return fmt.Errorf("decoding input: %w", err)
	}
	key, err := resolveKey(c)
	if err != nil {
		return err
	}
	logf("key fingerprint %s", fingerprint(key))
	var data []byte
	switch c.Mode {
	case "ecb":
		data, err = modes.ECB{}.Decrypt(ct, key)
	case "cbc":
		var iv []byte
		if c.IV != "" {
			iv, err = decodeValue(c.Format, c.IV)
			if err != nil {
				return fmt.Errorf("decoding iv: %w", err)
			}
		} else {
			if len(ct) < modes.BlockSize {
				return fmt.Errorf("input too short to hold an iv")
			}
			iv, ct = ct[:modes.BlockSize], ct[modes.BlockSize:]
		}
		var cbc *modes.CBC
		cbc, err = modes.NewCBC(iv)
		if err != nil {
			return err
		}
		data, err = cbc.Decrypt(ct, key)
	default:
		return fmt.Errorf("unknown mode %q", c.Mode)
	}
	if err != nil {
		return err
	}
	if c.Padding() {
		data, err = padding.Unpad(data, modes.BlockSize)
		if err != nil {
			return err
		}
	}
	if c.Compression != "" {
		data, err = compr.Decompression(c.Compression).Decompress(data, nil)
		if err != nil {
			return err
		}
	}
	_, err = w.Write(data)
	return err
}

// detect treats every non-empty line of the inputs as
// a separate ciphertext and reports the one most
// likely to have been produced in ECB mode
func detect(c *config.Config, names []string, w io.Writer) error {
	var lines []string
	var decoded [][]byte
	err := eachInput(names, func(name string, buf []byte) error {
		for _, line := range bytes.Split(buf, []byte("\n")) {
			line = bytes.TrimSpace(line)
			if len(line) == 0 {
				continue
			}
			ct, err := decodeInput(c.Format, line)
			if err != nil {
				return err
			}
			lines = append(lines, string(line))
			decoded = append(decoded, ct)
		}
		return nil
	})
	if err != nil {
		return err
	}
	logf("detecting AES in ECB mode from %d inputs", len(decoded))
	i, score := analysis.MostLikelyECB(decoded)
	if i < 0 {
		return fmt.Errorf("no input")
	}
	_, err = fmt.Fprintf(w, "most likely result (line %d): %s\nscore: %g\n", i+1, lines[i], score)
	return err
}

func keygen(c *config.Config, w io.Writer) error {
	key, err := aes.RandomKey()
	if err != nil {
		return err
	}
	_, err = w.Write(encodeOutput(c.Format, key))
	return err
}

func info(c *config.Config, w io.Writer) error {
	fmt.Fprintf(w, "hardware aes: %v (unused)\n", aes.HardwareAES())
	fmt.Fprintf(w, "mode: %s\n", c.Mode)
	key, err := resolveKey(c)
	if errors.Is(err, errNoKey) {
		return nil
	}
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "key fingerprint: %s\n", fingerprint(key))
	return err
}
