package logging

import (
	"bytes"
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	// t.Setenv 负责测试结束后恢复原值
	t.Setenv("GOTODO_LOG_LEVEL", "")
	t.Setenv("GOTODO_LOG_FORMAT", "")
	require.NoError(t, os.Unsetenv("GOTODO_LOG_LEVEL"))
	require.NoError(t, os.Unsetenv("GOTODO_LOG_FORMAT"))

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "info", cfg.Level)
	assert.Equal(t, "json", cfg.Format)
}

func TestLoadConfig_FromEnv(t *testing.T) {
	t.Setenv("GOTODO_LOG_LEVEL", "debug")
	t.Setenv("GOTODO_LOG_FORMAT", "console")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, Config{Level: "debug", Format: "console"}, cfg)
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    Level
		wantErr bool
	}{
		{in: "debug", want: DebugLevel},
		{in: "INFO", want: InfoLevel},
		{in: "", want: InfoLevel},
		{in: "warning", want: WarnLevel},
		{in: "error", want: ErrorLevel},
		{in: "verbose", want: InfoLevel, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLevel(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNew_UnknownFormat(t *testing.T) {
	_, err := New(Config{Level: "info", Format: "xml"}, &bytes.Buffer{})
	assert.Error(t, err)
}

func TestSetup_InstallsGlobalLogger(t *testing.T) {
	original := GetLogger()
	defer SetLogger(original)

	var buf bytes.Buffer
	require.NoError(t, Setup(Config{Level: "warn", Format: "console"}, &buf))

	GetLogger().Info(context.Background(), "filtered")
	GetLogger().Warn(context.Background(), "visible")

	assert.NotContains(t, buf.String(), "filtered")
	assert.Contains(t, buf.String(), "visible")
}
