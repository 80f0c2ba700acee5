// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package version

import (
	"strings"
	"testing"
)

func TestInfo(t *testing.T) {
	info := Info()
	if !strings.HasPrefix(info, "fullname-parser "+Version) {
		t.Errorf("expected info to start with program name and version, got %q", info)
	}
	if !strings.Contains(info, "platform: "+Platform) {
		t.Errorf("expected platform in info, got %q", info)
	}
}

func TestFull(t *testing.T) {
	full := Full()
	for _, key := range []string{"version", "commit", "buildDate", "goVersion", "platform"} {
		if full[key] == "" {
			t.Errorf("expected non-empty %q", key)
		}
	}
	if Short() != full["version"] {
		t.Errorf("Short() = %q, want %q", Short(), full["version"])
	}
}
