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

// Package config holds the settings of the aestool command.
// Files may be written in YAML or JSON.
package config

import (
	"fmt"
	"os"

	"sigs.k8s.io/yaml"
)

// Config describes how aestool encrypts or decrypts its input.
// Key, IV and Salt are encoded according to Format
// (raw, hex or base64).
type Config struct {
	Mode        string `json:"mode,omitempty"`
	Format      string `json:"format,omitempty"`
	Key         string `json:"key,omitempty"`
	IV          string `json:"iv,omitempty"`
	Passphrase  string `json:"passphrase,omitempty"`
	Salt        string `json:"salt,omitempty"`
	Compression string `json:"compression,omitempty"`
	Pad         *bool  `json:"pad,omitempty"`
}

// Default returns the configuration used when nothing is specified.
func Default() Config {
	pad := true
	return Config{
		Mode:   "cbc",
		Format: "hex",
		Pad:    &pad,
	}
}

// Load reads a configuration file and merges it over Default.
func Load(path string) (Config, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	return Parse(buf)
}

// Parse decodes YAML or JSON and merges it over Default.
func Parse(buf []byte) (Config, error) {
	c := Default()
	if err := yaml.UnmarshalStrict(buf, &c); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Padding reports whether PKCS#7 padding is enabled.
func (c *Config) Padding() bool {
	return c.Pad == nil || *c.Pad
}

// Validate checks the enumerated fields.
func (c *Config) Validate() error {
	switch c.Mode {
	case "ecb", "cbc":
	default:
		return fmt.Errorf("config: field 'mode': unknown mode %q", c.Mode)
	}
	switch c.Format {
	case "raw", "hex", "base64":
	default:
		return fmt.Errorf("config: field 'format': unknown format %q", c.Format)
	}
	switch c.Compression {
	case "", "zstd", "zstd-better", "s2":
	default:
		return fmt.Errorf("config: field 'compression': unknown algorithm %q", c.Compression)
	}
	if c.Key != "" && c.Passphrase != "" {
		return fmt.Errorf("config: 'key' and 'passphrase' are mutually exclusive")
	}
	if c.Mode == "ecb" && c.IV != "" {
		return fmt.Errorf("config: field 'iv': not used in ecb mode")
	}
	return nil
}
