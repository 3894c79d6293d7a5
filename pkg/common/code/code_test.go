package code

import (
	// 外部依赖
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWithMsgKeepsIdentity(t *testing.T) {
	derived := ReagentNotFound.WithMsgf("reagent %d not in DB", 42)

	assert.ErrorIs(t, derived, ReagentNotFound)
	assert.Equal(t, ReagentNotFound.Code(), derived.Code())
	assert.Equal(t, http.StatusNotFound, derived.HTTPStatus())
	assert.Equal(t, "reagent 42 not in DB", derived.Msg())
	// 原错误不被改写
	assert.Equal(t, "reagent not found", ReagentNotFound.Msg())
}

func TestWithErrUnwrap(t *testing.T) {
	cause := errors.New("connection reset")
	derived := QueryRecordErr.WithErr(cause)

	assert.ErrorIs(t, derived, cause)
	assert.ErrorIs(t, derived, QueryRecordErr)
	assert.Contains(t, derived.Error(), "connection reset")
}

func TestFrom(t *testing.T) {
	assert.Equal(t, ParamErr.Code(), From(ParamErr.WithMsg("bad id")).Code())

	// 包装链中也能提取
	wrapped := fmt.Errorf("handler: %w", ProjectNotFound)
	assert.Equal(t, ProjectNotFound.Code(), From(wrapped).Code())

	plain := From(errors.New("plain"))
	assert.Equal(t, UnDefineErr.Code(), plain.Code())
	assert.Equal(t, http.StatusInternalServerError, plain.HTTPStatus())
}
