package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExportError_Message(t *testing.T) {
	err := TemplateNotFound("simples")
	assert.Contains(t, err.Error(), ErrCodeTemplateNotFound)
	assert.Contains(t, err.Error(), "simples")
}

func TestExportError_UnwrapAndIs(t *testing.T) {
	cause := fmt.Errorf("exit status 1")
	err := CompilationFailed(1, "! Emergency stop.", cause)

	assert.ErrorIs(t, err, cause, "cause must unwrap")
	assert.True(t, stderrors.Is(err, CompilationFailed(2, "", nil)),
		"Is matches on type+code, not on context")
	assert.False(t, stderrors.Is(err, ArtifactMissing("x")))
}

func TestExportError_WrappedThroughFmt(t *testing.T) {
	inner := InvalidName("a/b", "contains path separator")
	wrapped := fmt.Errorf("export failed: %w", inner)

	assert.True(t, IsCode(wrapped, ErrCodeInvalidName))
	assert.False(t, IsCode(wrapped, ErrCodeTemplateNotFound))
}

func TestCompilationContext(t *testing.T) {
	err := CompilationFailed(2, "! LaTeX Error: File `x.sty' not found.", nil)

	assert.Equal(t, 2, CompilationPass(err))
	assert.Contains(t, CompilerOutput(err), "x.sty")

	assert.Equal(t, 0, CompilationPass(ArtifactMissing("x")))
	assert.Equal(t, 0, CompilationPass(fmt.Errorf("plain")))
}

func TestIsCode_NonExportError(t *testing.T) {
	assert.False(t, IsCode(fmt.Errorf("plain"), ErrCodeInvalidName))
	assert.False(t, IsCode(nil, ErrCodeInvalidName))
}
