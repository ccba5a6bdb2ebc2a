package logging

import (
	"bytes"
	"encoding/json"
	"errors"
	"flag"
	"sync"
	"testing"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
)

// -- SetupLogging tests --

func TestNewLogger_JSONWithLoglevelKey(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf)

	logger.WithField("rowID", 7).Info("hello")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "info", line["loglevel"])
	assert.Equal(t, "hello", line["msg"])
	assert.EqualValues(t, 7, line["rowID"])
}

func TestSetLevel(t *testing.T) {
	logger := SetupLogging()

	require.NoError(t, SetLevel(logger, "debug"))
	assert.Equal(t, logrus.DebugLevel, logger.GetLevel())

	assert.ErrorContains(t, SetLevel(logger, "loud"), "log level")
	assert.Equal(t, logrus.DebugLevel, logger.GetLevel())
}

// -- LogData tests --

func TestLogData_FieldsAndTimings(t *testing.T) {
	logger, hook := logtest.NewNullLogger()
	logData := NewLogData(logger)

	endTimer := logData.AddTiming("duration")
	logData.AddData("decoded", 3)
	endTimer()
	logData.Log().Info("done")

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, 3, entry.Data["decoded"])
	assert.Contains(t, entry.Data, "duration")
}

func TestLogData_ConcurrentWrites(t *testing.T) {
	logger, hook := logtest.NewNullLogger()
	logData := NewLogData(logger)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			logData.AddData("last", i)
			logData.AddTiming("total")()
		}(i)
	}
	wg.Wait()
	logData.Log().Info("done")

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Contains(t, entry.Data, "last")
	assert.Contains(t, entry.Data, "total")
}

// -- LoggingWrapper tests --

func TestLoggingWrapper(t *testing.T) {
	tests := []struct {
		name      string
		actionErr error
		wantMsg   string
		wantLevel logrus.Level
	}{
		{"success", nil, "Command.decode.Complete", logrus.InfoLevel},
		{"failure", errors.New("boom"), "Command.decode.Error", logrus.ErrorLevel},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, hook := logtest.NewNullLogger()
			action := LoggingWrapper("decode", logger, func(c *cli.Context, logData *LogData) error {
				logData.AddData("rows", 2)
				return tt.actionErr
			})

			err := action(cli.NewContext(cli.NewApp(), flag.NewFlagSet("test", flag.ContinueOnError), nil))

			assert.Equal(t, tt.actionErr, err)
			entries := hook.AllEntries()
			require.Len(t, entries, 2)
			assert.Equal(t, "Command.decode.Start", entries[0].Message)
			assert.Equal(t, tt.wantMsg, entries[1].Message)
			assert.Equal(t, tt.wantLevel, entries[1].Level)
			assert.Equal(t, 2, entries[1].Data["rows"])
		})
	}
}
