package devlog

import (
	"bytes"
	"log"
	"testing"

	"github.com/stretchr/testify/assert"
)

func withCapturedOutput(t *testing.T, fn func()) string {
	t.Helper()
	var buf bytes.Buffer
	orig := std
	std = log.New(&buf, "", 0)
	defer func() { std = orig }()
	fn()
	return buf.String()
}

func TestWarn_AlwaysLogs(t *testing.T) {
	out := withCapturedOutput(t, func() { Warn("panic in %s: %v", "render", "boom") })
	assert.Contains(t, out, "panic in render: boom")
}

func TestDebugf_OnlyLogsWhenVerbose(t *testing.T) {
	out := withCapturedOutput(t, func() { Debugf(false, "should not appear") })
	assert.Empty(t, out)

	out = withCapturedOutput(t, func() { Debugf(true, "flush took %dms", 3) })
	assert.Contains(t, out, "flush took 3ms")
}
