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

package aes

import (
	"os"
	"strings"

	"golang.org/x/sys/cpu"
)

const hardwareEnvVar = "RIJNDAEL_REPORT_HWAES"

// HardwareAES reports whether the host CPU advertises AES instructions.
// This package never uses them; the value is informational and can be
// forced off with RIJNDAEL_REPORT_HWAES=off.
func HardwareAES() bool {
	if v, ok := os.LookupEnv(hardwareEnvVar); ok {
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "off", "0", "false", "no":
			return false
		}
	}
	return cpu.X86.HasAES || cpu.ARM64.HasAES || cpu.S390X.HasAES
}
