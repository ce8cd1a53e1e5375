package textlog_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grafana/textview/internal/textlog"
)

func TestNewJSONFormatFlattensErrorFields(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := textlog.New(&buf, textlog.FormatJSON, logrus.InfoLevel)
	logger.WithField("cause", errors.New("boom")).Info("failed")

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "failed", decoded["message"])
	assert.Equal(t, "boom", decoded["cause"])
	assert.Equal(t, "info", decoded["level_name"])
	assert.Contains(t, decoded, "@timestamp")
	assert.Equal(t, "1", decoded["@version"])
}

func TestNewTextFormatIsHumanReadable(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := textlog.New(&buf, textlog.FormatText, logrus.InfoLevel)
	logger.Info("hello")
	assert.Contains(t, buf.String(), "hello")
	assert.Contains(t, buf.String(), "level=info")
}
