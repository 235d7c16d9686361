package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oakwood-commons/dispval/pkg/settings"
)

const mockLogLevel int8 = 0 // zapcore.InfoLevel

func TestGetReturnsSameInstance(t *testing.T) {
	l1 := Get(mockLogLevel)
	l2 := Get(mockLogLevel)
	require.NotNil(t, l1)
	assert.Same(t, l1, l2)
	assert.Same(t, l1, Setup(Options{Level: -4}))
}

func TestNewWritesJSONWithBuildInfo(t *testing.T) {
	var buf bytes.Buffer
	lgr := zapr.NewLogger(New(Options{Output: &buf}))
	lgr.Info("rendered", RowKey, "row-1")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "rendered", entry[MessageKey])
	assert.Equal(t, "row-1", entry[RowKey])
	assert.Equal(t, settings.VersionInformation.BuildVersion, entry[VersionKey])
	assert.Contains(t, entry, TimeStampKey)
}

func TestNewRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	lgr := zapr.NewLogger(New(Options{Output: &buf}))
	lgr.V(1).Info("hidden")
	assert.Empty(t, buf.String())

	buf.Reset()
	verbose := zapr.NewLogger(New(Options{Level: -1, Output: &buf}))
	verbose.V(1).Info("shown")
	assert.Contains(t, buf.String(), "shown")
}

func TestOpenLogFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dispval.log")
	f, err := OpenLogFile(path)
	require.NoError(t, err)
	require.NoError(t, f.Close())

	_, err = OpenLogFile(filepath.Join(t.TempDir(), "missing", "x.log"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "open log file")
}

func TestWithLogger(t *testing.T) {
	ctx := context.Background()
	lgr := Get(mockLogLevel)

	withLogger := WithLogger(ctx, lgr)
	assert.Same(t, lgr, FromContext(withLogger))
	assert.Equal(t, withLogger, WithLogger(withLogger, lgr))

	other := logr.Discard()
	replaced := WithLogger(withLogger, &other)
	assert.Same(t, &other, FromContext(replaced))
}

func TestFromContextFallbacks(t *testing.T) {
	orig := globalLogrLogger
	defer func() { globalLogrLogger = orig }()

	globalLogrLogger = nil
	assert.Same(t, &defaultNoopLogger, FromContext(context.Background()))
	assert.Same(t, &defaultNoopLogger, GetGlobalLogger())

	mock := logr.Discard()
	globalLogrLogger = &mock
	assert.Same(t, &mock, FromContext(context.Background()))
}

func TestSyncWithoutLogger(t *testing.T) {
	orig := globalZapLogger
	globalZapLogger = nil
	defer func() { globalZapLogger = orig }()

	assert.NotPanics(t, Sync)
}

func TestWithValuesAndNamed(t *testing.T) {
	lgr := Get(mockLogLevel)
	assert.NotSame(t, lgr, WithValues(lgr, "k", "v"))
	assert.NotSame(t, lgr, WithValues(lgr))
	assert.NotSame(t, lgr, Named(lgr, "preview"))
	assert.Panics(t, func() { _ = WithValues(nil, "k", "v") })
}

func TestGetNoopLogger(t *testing.T) {
	assert.Same(t, &defaultNoopLogger, GetNoopLogger())
	assert.NotPanics(t, func() { GetNoopLogger().Info("nothing") })
}
