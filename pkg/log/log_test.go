package log

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	logger := New("debug")
	require.NotNil(t, logger)
}

func TestNewWithOutput(t *testing.T) {
	var buf bytes.Buffer

	logger := NewWithOutput("debug", &buf)
	logger.Infof("loaded %d vendors", 5)

	assert.Contains(t, buf.String(), "loaded 5 vendors")
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer

	logger := NewWithOutput("warn", &buf)
	logger.Debugf("hidden")
	logger.Infof("hidden")
	logger.Warnf("visible")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "visible")
}

func TestInvalidLevelFallsBackToInfo(t *testing.T) {
	var buf bytes.Buffer

	logger := NewWithOutput("chatty", &buf)
	logger.Debugf("hidden")
	logger.Infof("visible")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "visible")
}

func TestWithFields(t *testing.T) {
	var buf bytes.Buffer

	logger := NewWithOutput("info", &buf)
	logger.WithFields(Fields{"vendor": 311, "attribute": "MS-MPPE-Encryption-Policy"}).Infof("encoded")

	out := buf.String()
	assert.Contains(t, out, "vendor=311")
	assert.Contains(t, out, "MS-MPPE-Encryption-Policy")
}

func TestWithFieldChaining(t *testing.T) {
	var buf bytes.Buffer

	logger := NewWithOutput("info", &buf)
	logger.WithField("vendor", 14988).WithField("attribute", 8).Infof("encoded")

	out := buf.String()
	assert.Contains(t, out, "vendor=14988")
	assert.Contains(t, out, "attribute=8")
}

func TestNop(t *testing.T) {
	logger := Nop()

	assert.NotPanics(t, func() {
		logger.Debugf("nothing %d", 1)
		logger.Infof("nothing")
		logger.Warnf("nothing")
		logger.WithField("k", "v").Errorf("nothing")
		logger.WithFields(Fields{"k": "v"}).Infof("nothing")
	})
}
