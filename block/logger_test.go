package block

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/arloliu/overlay/errs"
)

func TestSetLoggerObservesChecksumMismatch(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	SetLogger(zap.New(core))
	t.Cleanup(func() { SetLogger(nil) })

	data := writeTrades(t, 10)
	data[HeaderSize+3] ^= 0xFF

	rd := NewReader(bytes.NewReader(data))
	defer rd.Close()
	_, err := rd.Next()
	require.ErrorIs(t, err, errs.ErrChecksumMismatch)

	require.Equal(t, 1, logs.FilterMessage("block checksum mismatch").Len())
}

func TestLoggerResetToNop(t *testing.T) {
	SetLogger(zap.NewExample())
	SetLogger(nil)
	require.False(t, Logger().Core().Enabled(zapcore.ErrorLevel))
}
