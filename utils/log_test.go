package utils_test

import (
	"encoding/json"
	"testing"

	"github.com/starkstream/node/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogLevelString(t *testing.T) {
	for level, str := range map[utils.LogLevel]string{
		utils.DEBUG: "debug",
		utils.INFO:  "info",
		utils.WARN:  "warn",
		utils.ERROR: "error",
	} {
		t.Run(str, func(t *testing.T) {
			assert.Equal(t, str, level.String())
		})
	}
}

func TestLogLevelSet(t *testing.T) {
	tests := map[string]utils.LogLevel{
		"debug": utils.DEBUG,
		"DEBUG": utils.DEBUG,
		"info":  utils.INFO,
		"INFO":  utils.INFO,
		"warn":  utils.WARN,
		"WARN":  utils.WARN,
		"error": utils.ERROR,
		"ERROR": utils.ERROR,
	}
	for str, level := range tests {
		t.Run("level "+str, func(t *testing.T) {
			l := new(utils.LogLevel)
			require.NoError(t, l.Set(str))
			assert.Equal(t, level, *l)
		})
	}

	t.Run("unknown level", func(t *testing.T) {
		l := new(utils.LogLevel)
		require.ErrorIs(t, l.Set("fake"), utils.ErrUnknownLogLevel)
	})
}

func TestLogLevelUnmarshalText(t *testing.T) {
	l := new(utils.LogLevel)
	require.NoError(t, l.UnmarshalText([]byte("warn")))
	assert.Equal(t, utils.WARN, *l)
}

func TestLogLevelMarshalJSON(t *testing.T) {
	level := utils.ERROR
	got, err := json.Marshal(&level)
	require.NoError(t, err)
	assert.Equal(t, `"error"`, string(got))
}

func TestNewZapLogger(t *testing.T) {
	for _, colour := range []bool{true, false} {
		log, err := utils.NewZapLogger(utils.INFO, colour)
		require.NoError(t, err)
		require.NotNil(t, log)
	}
}
