package postgres

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newBufferedGormLogger(debug bool) (gormlogger.Interface, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	base := slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	return newGormSlogLogger(base, debug), buf
}

func sqlFn() (string, int64) {
	return `SELECT * FROM "users"`, 1
}

func TestGormSlogLogger_Trace(t *testing.T) {
	t.Run("query failure is logged", func(t *testing.T) {
		l, buf := newBufferedGormLogger(false)
		l.Trace(context.Background(), time.Now(), sqlFn, errors.New("boom"))
		assert.Contains(t, buf.String(), "GORM query failed")
		assert.Contains(t, buf.String(), "boom")
	})

	t.Run("record not found is ignored", func(t *testing.T) {
		l, buf := newBufferedGormLogger(false)
		l.Trace(context.Background(), time.Now(), sqlFn, gorm.ErrRecordNotFound)
		assert.Empty(t, buf.String())
	})

	t.Run("slow query warns", func(t *testing.T) {
		l, buf := newBufferedGormLogger(false)
		l.Trace(context.Background(), time.Now().Add(-time.Second), sqlFn, nil)
		assert.Contains(t, buf.String(), "GORM slow query")
	})

	t.Run("fast query only in debug", func(t *testing.T) {
		l, buf := newBufferedGormLogger(false)
		l.Trace(context.Background(), time.Now(), sqlFn, nil)
		assert.Empty(t, buf.String())

		l, buf = newBufferedGormLogger(true)
		l.Trace(context.Background(), time.Now(), sqlFn, nil)
		assert.Contains(t, buf.String(), `SELECT * FROM \"users\"`)
	})

	t.Run("silent mode", func(t *testing.T) {
		l, buf := newBufferedGormLogger(true)
		l.LogMode(gormlogger.Silent).Trace(context.Background(), time.Now(), sqlFn, errors.New("boom"))
		assert.Empty(t, buf.String())
	})
}
