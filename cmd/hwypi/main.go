// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Command hwypi estimates π by Monte-Carlo sampling on all cores.
//
// Usage:
//
//	hwypi [threads [mode]] [flags]
//	hwypi cpuinfo
//
// Flags may also come from HWYPI_* environment variables or from
// $HOME/.hwypi.yaml.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "hwypi:", err)
		os.Exit(1)
	}
}
