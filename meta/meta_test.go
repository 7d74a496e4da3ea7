// Package meta_test contains tests for the meta package.
package meta_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rise-and-shine/tablekit/meta"
)

func TestInjectMetaToContext(t *testing.T) {
	tests := []struct {
		name        string
		metaData    map[meta.ContextKey]string
		keyToVerify meta.ContextKey
		valueExpect string
	}{
		{
			name: "inject single value",
			metaData: map[meta.ContextKey]string{
				meta.TraceID: "abc-123",
			},
			keyToVerify: meta.TraceID,
			valueExpect: "abc-123",
		},
		{
			name: "inject multiple values",
			metaData: map[meta.ContextKey]string{
				meta.TraceID:     "trace-123",
				meta.IPAddress:   "10.0.0.7",
				meta.ServiceName: "table-service",
			},
			keyToVerify: meta.ServiceName,
			valueExpect: "table-service",
		},
		{
			name: "empty values are skipped",
			metaData: map[meta.ContextKey]string{
				meta.UserAgent: "",
			},
			keyToVerify: meta.UserAgent,
			valueExpect: "",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ctx := meta.InjectMetaToContext(context.Background(), tc.metaData)
			assert.Equal(t, tc.valueExpect, meta.Find(ctx, tc.keyToVerify))
		})
	}
}

func TestExtractMetaFromContext(t *testing.T) {
	in := map[meta.ContextKey]string{
		meta.TraceID:        "trace-42",
		meta.IPAddress:      "192.168.1.1",
		meta.UserAgent:      "curl/8.0",
		meta.ServiceVersion: "1.2.3",
	}

	ctx := meta.InjectMetaToContext(context.Background(), in)
	out := meta.ExtractMetaFromContext(ctx)

	assert.Equal(t, in, out)
}

func TestExtractMetaFromEmptyContext(t *testing.T) {
	out := meta.ExtractMetaFromContext(context.Background())
	assert.Empty(t, out)
}

func TestFindMissingKey(t *testing.T) {
	assert.Equal(t, "", meta.Find(context.Background(), meta.Referer))
}
