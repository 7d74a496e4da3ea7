package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/rise-and-shine/tablekit/http/server/middleware"
	"github.com/rise-and-shine/tablekit/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type logRecord struct {
	name   string
	fields []string
}

// recordingLogger captures the logger name and field keys of every
// emitted entry into a shared slice.
type recordingLogger struct {
	records *[]logRecord
	name    string
	fields  []string
}

func newRecordingLogger(records *[]logRecord) logger.Logger {
	return &recordingLogger{records: records}
}

func (l *recordingLogger) With(kv ...any) logger.Logger {
	fields := append([]string{}, l.fields...)
	for i := 0; i+1 < len(kv); i += 2 {
		if key, ok := kv[i].(string); ok {
			fields = append(fields, key)
		}
	}
	return &recordingLogger{records: l.records, name: l.name, fields: fields}
}

func (l *recordingLogger) Named(name string) logger.Logger {
	full := name
	if l.name != "" {
		full = l.name + "." + name
	}
	return &recordingLogger{records: l.records, name: full, fields: l.fields}
}

func (l *recordingLogger) WithContext(_ context.Context) logger.Logger { return l }

func (l *recordingLogger) emit() {
	*l.records = append(*l.records, logRecord{name: l.name, fields: l.fields})
}

func (l *recordingLogger) Debug(_ any) { l.emit() }
func (l *recordingLogger) Info(_ any)  { l.emit() }
func (l *recordingLogger) Warn(_ any)  { l.emit() }
func (l *recordingLogger) Error(_ any) { l.emit() }
func (l *recordingLogger) Fatal(_ any) { l.emit() }

func (l *recordingLogger) Debugf(_ string, _ ...any) { l.emit() }
func (l *recordingLogger) Infof(_ string, _ ...any)  { l.emit() }
func (l *recordingLogger) Warnf(_ string, _ ...any)  { l.emit() }
func (l *recordingLogger) Errorf(_ string, _ ...any) { l.emit() }
func (l *recordingLogger) Fatalf(_ string, _ ...any) { l.emit() }

func (l *recordingLogger) Warnx(_ error)  { l.emit() }
func (l *recordingLogger) Errorx(_ error) { l.emit() }
func (l *recordingLogger) Fatalx(_ error) { l.emit() }

func (l *recordingLogger) Sync() error { return nil }

func TestLoggerMWFieldsDoNotAccumulateAcrossRequests(t *testing.T) {
	var records []logRecord

	app := fiber.New()
	app.Use(middleware.NewLoggerMW(newRecordingLogger(&records)).Handler)
	app.Get("/ping", func(c *fiber.Ctx) error {
		return c.SendString("pong")
	})

	for range 3 {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/ping", nil))
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		_ = resp.Body.Close()
	}

	require.Len(t, records, 3)

	for _, rec := range records {
		assert.Equal(t, "middleware.logger", rec.name)

		methodFields := 0
		for _, field := range rec.fields {
			if field == "http_method" {
				methodFields++
			}
		}
		assert.Equal(t, 1, methodFields)
	}

	assert.Equal(t, len(records[0].fields), len(records[1].fields))
	assert.Equal(t, len(records[0].fields), len(records[2].fields))
}
