package domainerrors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCodeOf(t *testing.T) {
	t.Run("coded error returns its code", func(t *testing.T) {
		err := New(CodeExtraction, "not a pdf")
		assert.Equal(t, CodeExtraction, CodeOf(err))
	})

	t.Run("wrapped coded error is found through the chain", func(t *testing.T) {
		inner := Wrap(errors.New("eof"), CodeConfiguration, "missing endpoint")
		err := fmt.Errorf("startup: %w", inner)
		assert.Equal(t, CodeConfiguration, CodeOf(err))
	})

	t.Run("plain error defaults to internal", func(t *testing.T) {
		assert.Equal(t, CodeInternal, CodeOf(errors.New("boom")))
	})
}

func TestMessageOf(t *testing.T) {
	assert.Equal(t, "not a pdf", MessageOf(New(CodeExtraction, "not a pdf")))
	assert.Equal(t, "internal error", MessageOf(errors.New("raw db failure")))
}

func TestToHTTPStatus(t *testing.T) {
	cases := map[Code]int{
		CodeBadRequest:       http.StatusBadRequest,
		CodeValidation:       http.StatusBadRequest,
		CodeExtraction:       http.StatusBadRequest,
		CodeNotFound:         http.StatusNotFound,
		CodeConfiguration:    http.StatusInternalServerError,
		CodeJudgeUnavailable: http.StatusInternalServerError,
		CodeParse:            http.StatusInternalServerError,
		CodeInternal:         http.StatusInternalServerError,
		Code("unknown"):      http.StatusInternalServerError,
	}
	for code, want := range cases {
		assert.Equal(t, want, ToHTTPStatus(code), "code %s", code)
	}
}

func TestErrorString(t *testing.T) {
	err := Wrap(errors.New("dial tcp: refused"), CodeJudgeUnavailable, "judge call failed")
	assert.Contains(t, err.Error(), "judge_unavailable")
	assert.Contains(t, err.Error(), "dial tcp: refused")
	assert.ErrorContains(t, errors.Unwrap(err), "refused")
}
