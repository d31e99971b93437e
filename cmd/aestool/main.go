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
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/SnellerInc/rijndael/config"
)

var (
	dashv      bool
	dashh      bool
	dashconfig string
	dasho      string

	// flag values that override the configuration file when set
	dashmode   string
	dashformat string
	dashkey    string
	dashiv     string
	dashpass   string
	dashsalt   string
	dashz      string
	dashpad    bool

	logger = log.New(os.Stderr, "aestool: ", 0)
)

func init() {
	flag.BoolVar(&dashv, "v", false, "verbose")
	flag.BoolVar(&dashh, "h", false, "show usage help")
	flag.StringVar(&dashconfig, "config", "", "YAML or JSON configuration file")
	flag.StringVar(&dasho, "o", "-", "output file (or - for stdout)")
	flag.StringVar(&dashmode, "mode", "cbc", "block chaining mode (ecb, cbc)")
	flag.StringVar(&dashformat, "format", "hex", "encoding of ciphertext, keys and IVs (raw, hex, base64)")
	flag.StringVar(&dashkey, "key", "", "16-byte key, encoded according to -format")
	flag.StringVar(&dashiv, "iv", "", "16-byte CBC IV, encoded according to -format (default: random, stored in the output)")
	flag.StringVar(&dashpass, "passphrase", "", "derive the key from a passphrase with scrypt")
	flag.StringVar(&dashsalt, "salt", "", "scrypt salt, encoded according to -format")
	flag.StringVar(&dashz, "z", "", "compress plaintext before encryption (zstd, zstd-better, s2)")
	flag.BoolVar(&dashpad, "pad", true, "apply PKCS#7 padding")
}

func exitf(f string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, f, args...)
	os.Exit(1)
}

func logf(f string, args ...interface{}) {
	if dashv {
		logger.Printf(f, args...)
	}
}

// settings returns the configuration file (if any)
// with the explicitly set flags applied on top
func settings() (config.Config, error) {
	c := config.Default()
	if dashconfig != "" {
		var err error
		c, err = config.Load(dashconfig)
		if err != nil {
			return c, err
		}
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "mode":
			c.Mode = dashmode
		case "format":
			c.Format = dashformat
		case "key":
			c.Key = dashkey
		case "iv":
			c.IV = dashiv
		case "passphrase":
			c.Passphrase = dashpass
		case "salt":
			c.Salt = dashsalt
		case "z":
			c.Compression = dashz
		case "pad":
			pad := dashpad
			c.Pad = &pad
		}
	})
	return c, c.Validate()
}

func usage() {
	fmt.Fprintf(os.Stderr, "usage:\n")
	fmt.Fprintf(os.Stderr, "    %s [flags] encrypt <file>...\n", os.Args[0])
	fmt.Fprintf(os.Stderr, "        encrypt files (or - for stdin) with AES-128\n")
	fmt.Fprintf(os.Stderr, "    %s [flags] decrypt <file>...\n", os.Args[0])
	fmt.Fprintf(os.Stderr, "        decrypt files produced by encrypt\n")
	fmt.Fprintf(os.Stderr, "    %s [-format <fmt>] detect <file>...\n", os.Args[0])
	fmt.Fprintf(os.Stderr, "        find the line most likely to be ECB ciphertext\n")
	fmt.Fprintf(os.Stderr, "    %s [-format <fmt>] keygen\n", os.Args[0])
	fmt.Fprintf(os.Stderr, "        print a random key\n")
	fmt.Fprintf(os.Stderr, "    %s [flags] info\n", os.Args[0])
	fmt.Fprintf(os.Stderr, "        print host and key information\n")
	fmt.Fprintf(os.Stderr, "flag usage:\n")
	flag.PrintDefaults()
}

func output() (io.WriteCloser, error) {
	if dasho == "-" {
		return nopCloser{os.Stdout}, nil
	}
	return os.Create(dasho)
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }

func main() {
	flag.Parse()
	args := flag.Args()
	if len(args) == 0 || dashh {
		usage()
		os.Exit(1)
	}
	c, err := settings()
	if err != nil {
		exitf("%s\n", err)
	}
	inputs := args[1:]
	if len(inputs) == 0 {
		inputs = []string{"-"}
	}
	out, err := output()
	if err != nil {
		exitf("%s\n", err)
	}
	switch args[0] {
	case "encrypt":
		err = eachInput(inputs, func(name string, buf []byte) error {
			logf("encrypting %s (%d bytes, %s)", name, len(buf), c.Mode)
			return encrypt(&c, buf, out)
		})
	case "decrypt":
		err = eachInput(inputs, func(name string, buf []byte) error {
			logf("decrypting %s (%d bytes, %s)", name, len(buf), c.Mode)
			return decrypt(&c, buf, out)
		})
	case "detect":
		err = detect(&c, inputs, out)
	case "keygen":
		err = keygen(&c, out)
	case "info":
		err = info(&c, out)
	default:
		usage()
		os.Exit(1)
	}
	if err != nil {
		exitf("%s: %s\n", args[0], err)
	}
	if err := out.Close(); err != nil {
		exitf("%s\n", err)
	}
}

func readInput(name string) ([]byte, error) {
	if name == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(name)
}

func eachInput(names []string, fn func(name string, buf []byte) error) error {
	for _, name := range names {
		buf, err := readInput(name)
		if err != nil {
			return err
		}
		if err := fn(name, buf); err != nil {
			return fmt.Errorf("input %s: %w", name, err)
		}
	}
	return nil
}
