// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package observability

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStandardObserver_Levels(t *testing.T) {
	tests := []struct {
		name        string
		level       ObservabilityLevel
		wantSuccess bool
		wantFailure bool
		wantSummary bool
	}{
		{"off", ObservabilityOff, false, false, false},
		{"metrics", ObservabilityMetrics, false, true, true},
		{"debug", ObservabilityDebug, true, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			o := NewStandardObserver(tt.level, &buf)

			o.StartTiming("personname", "parse", "")(true, nil)
			assert.Equal(t, tt.wantSuccess, strings.Contains(buf.String(), `"msg":"parse"`))

			buf.Reset()
			o.StartTiming("batch", "read", "x.txt")(false, nil)
			assert.Equal(t, tt.wantFailure, strings.Contains(buf.String(), `"level":"WARN"`))

			buf.Reset()
			o.StartSummary("batch", "process_file", "x.txt")(true, 3, nil)
			assert.Equal(t, tt.wantSummary, strings.Contains(buf.String(), `"record_count":3`))
		})
	}
}

func TestStandardObserver_NilIsOff(t *testing.T) {
	var o *StandardObserver
	assert.Equal(t, ObservabilityOff, o.Level())
	assert.NotPanics(t, func() { o.LogOperation(StandardObservabilityData{Operation: "parse"}) })
}

func TestStandardObserver_JSONRecord(t *testing.T) {
	var buf bytes.Buffer
	o := NewStandardObserver(ObservabilityDebug, &buf)

	o.LogOperation(StandardObservabilityData{
		Component:   "personname",
		Operation:   "parse",
		Target:      "names.txt",
		Success:     true,
		InputLength: 12,
		Metadata:    map[string]interface{}{"method": "parsed"},
	})

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "parse", entry["msg"])
	assert.Equal(t, "personname", entry["component"])
	assert.Equal(t, "names.txt", entry["target"])
	assert.EqualValues(t, 12, entry["input_length"])
	assert.True(t, strings.HasPrefix(entry["request_id"].(string), "req-"))
	assert.Equal(t, map[string]interface{}{"method": "parsed"}, entry["metadata"])
}

func TestDebugObserver_Steps(t *testing.T) {
	var buf bytes.Buffer
	d := NewDebugObserver(&buf)
	assert.Same(t, d, d.StandardObserver.DebugObserver)

	done := d.StartStep("batch", "process_file", "a.txt")
	d.LogDetail("batch", "2 names")
	d.LogMetric("batch", "fallbacks", 1)
	done(false, "write failed")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "-> batch: process_file (a.txt)", lines[0])
	assert.Equal(t, "     . batch: 2 names", lines[1])
	assert.Equal(t, "     # batch: fallbacks = 1", lines[2])
	assert.True(t, strings.HasPrefix(lines[3], "FAIL batch: process_file failed"))
	assert.True(t, strings.HasSuffix(lines[3], "write failed"))
}
