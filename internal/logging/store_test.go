// Conflict Globe - Geospatial Conflict Event Explorer
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/conflictglobe

package logging

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func TestStoreLogger_LogQuery(t *testing.T) {
	prev := zerolog.GlobalLevel()
	zerolog.SetGlobalLevel(zerolog.TraceLevel)
	defer zerolog.SetGlobalLevel(prev)

	tests := []struct {
		name      string
		duration  time.Duration
		err       error
		wantLevel string
	}{
		{"fast query", 5 * time.Millisecond, nil, `"level":"debug"`},
		{"slow query", 3 * time.Second, nil, `"level":"warn"`},
		{"failed query", time.Millisecond, errors.New("io error"), `"level":"error"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			sl := NewStoreLoggerWithLogger(zerolog.New(&buf), "duckdb")
			ctx := ContextWithRequestID(context.Background(), "req-7")

			sl.LogQuery(ctx, "clusters", tt.duration, 12, tt.err)

			output := buf.String()
			for _, want := range []string{tt.wantLevel, `"operation":"clusters"`, `"backend":"duckdb"`, `"request_id":"req-7"`, `"rows":12`} {
				if !strings.Contains(output, want) {
					t.Errorf("expected %s in output: %s", want, output)
				}
			}
		})
	}
}

func TestStoreLogger_LogImport(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	sl := NewStoreLoggerWithLogger(zerolog.New(&buf), "memory")
	sl.LogImport("events.json", 10, 8, 2, time.Second)

	output := buf.String()
	for _, want := range []string{`"read":10`, `"inserted":8`, `"skipped":2`, `"source":"events.json"`} {
		if !strings.Contains(output, want) {
			t.Errorf("expected %s in output: %s", want, output)
		}
	}
}

func TestStoreLogger_LogBreakerStateChange(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	sl := NewStoreLoggerWithLogger(zerolog.New(&buf), "duckdb")
	sl.LogBreakerStateChange("event-store", "closed", "open")

	if !strings.Contains(buf.String(), `"level":"warn"`) {
		t.Errorf("opening breaker should log at warn: %s", buf.String())
	}
}
