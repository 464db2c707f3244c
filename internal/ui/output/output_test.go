package output_test

import (
	"bytes"
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"go.trai.ch/mrjar/internal/core/domain"
	"go.trai.ch/mrjar/internal/ui/output"
	"go.trai.ch/mrjar/internal/ui/style"
)

func TestColorProfile(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	assert.Equal(t, termenv.Ascii, output.ColorProfile(), "NO_COLOR should force Ascii profile")

	t.Setenv("NO_COLOR", "")
	p := output.ColorProfile()
	assert.True(t, p >= termenv.TrueColor && p <= termenv.Ascii, "should return a valid profile")
}

func TestNew(t *testing.T) {
	var buf bytes.Buffer
	out := output.New(&buf)
	assert.NotNil(t, out)

	_, _ = out.WriteString("test")
	assert.Equal(t, "test", buf.String())
}

func TestNew_Nil(t *testing.T) {
	assert.NotNil(t, output.New(nil))
}

func TestPrinter_Plain(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	var buf bytes.Buffer
	p := output.NewPrinter(&buf)
	p.Pass("compile default", domain.PassStatusCompleted)
	p.Pass("1. compile 11 (sources)", domain.PassStatusPending)
	p.Detail("source", "src/main/java-mr/11")

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	assert.Len(t, lines, 3)
	assert.True(t, bytes.HasPrefix(lines[0], []byte(style.Check+" compile default")))
	assert.True(t, bytes.HasSuffix(lines[0], []byte("completed")))
	assert.True(t, bytes.HasPrefix(lines[1], []byte(style.Circle+" 1. compile 11 (sources)")))
	assert.True(t, bytes.HasSuffix(lines[1], []byte("pending")))
	assert.Equal(t, "   source: src/main/java-mr/11", string(bytes.TrimRight(lines[2], " ")))
}
