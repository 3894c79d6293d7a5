package code

import (
	// 外部依赖
	"errors"
	"fmt"
	"net/http"
)

// Code 业务错误码，携带 HTTP 状态与提示信息
type Code struct {
	code   int
	status int
	msg    string
	err    error
}

func New(code int, status int, msg string) *Code {
	return &Code{code: code, status: status, msg: msg}
}

func (c *Code) Error() string {
	if c.err != nil {
		return fmt.Sprintf("code: %d, msg: %s, err: %v", c.code, c.msg, c.err)
	}
	return fmt.Sprintf("code: %d, msg: %s", c.code, c.msg)
}

func (c *Code) Code() int {
	return c.code
}

func (c *Code) HTTPStatus() int {
	return c.status
}

func (c *Code) Msg() string {
	return c.msg
}

func (c *Code) Unwrap() error {
	return c.err
}

// Is 只比较业务码，便于 errors.Is 判定派生错误
func (c *Code) Is(target error) bool {
	t := &Code{}
	if !errors.As(target, &t) {
		return false
	}
	return t.code == c.code
}

func (c *Code) WithErr(err error) *Code {
	return &Code{code: c.code, status: c.status, msg: c.msg, err: err}
}

func (c *Code) WithMsg(msg string) *Code {
	return &Code{code: c.code, status: c.status, msg: msg, err: c.err}
}

func (c *Code) WithMsgf(format string, args ...any) *Code {
	return c.WithMsg(fmt.Sprintf(format, args...))
}

// From 从任意 error 中提取 *Code，非 Code 错误归为 UnDefineErr
func From(err error) *Code {
	c := &Code{}
	if errors.As(err, &c) {
		return c
	}
	return UnDefineErr.WithErr(err)
}

var (
	Success = New(0, http.StatusOK, "ok")

	// 通用
	ParamErr        = New(100001, http.StatusBadRequest, "invalid param")
	RecordNotFound  = New(100002, http.StatusNotFound, "record not found")
	QueryRecordErr  = New(100003, http.StatusInternalServerError, "query record failed")
	CreateDataErr   = New(100004, http.StatusInternalServerError, "create data failed")
	UpdateDataErr   = New(100005, http.StatusInternalServerError, "update data failed")
	DataExistErr    = New(100006, http.StatusBadRequest, "data already exists")
	UnDefineErr     = New(100099, http.StatusInternalServerError, "internal error")
	RPCHttpErr      = New(100101, http.StatusInternalServerError, "rpc request failed")
	RPCHttpCodeErr  = New(100102, http.StatusInternalServerError, "rpc response code error")
	RPCHttpRespErr  = New(100103, http.StatusInternalServerError, "rpc response parse error")

	// project
	ProjectNotFound   = New(200001, http.StatusNotFound, "project not found")
	ProjectImageErr   = New(200002, http.StatusBadRequest, "invalid project image")
	ProjectPathArcErr = New(200003, http.StatusInternalServerError, "project ancestor chain too deep")
	ProjectCreateErr  = New(200004, http.StatusInternalServerError, "create project failed")

	// experiment
	ExperimentNotFound  = New(200101, http.StatusNotFound, "experiment not found")
	ExperimentCreateErr = New(200102, http.StatusInternalServerError, "create experiment failed")
	ReagentAssignedErr  = New(200103, http.StatusBadRequest, "reagent already assigned to experiment")

	// reagent
	ReagentNotFound       = New(200201, http.StatusNotFound, "reagent not found")
	ReagentExistErr       = New(200202, http.StatusBadRequest, "reagent already stored")
	ReagentCreateErr      = New(200203, http.StatusInternalServerError, "create reagent failed")
	InvalidSMILESErr      = New(200204, http.StatusBadRequest, "invalid SMILES")
	MolWeightRequiredErr  = New(200205, http.StatusBadRequest, "molecular weight is required")
	CompoundNotFoundErr   = New(200206, http.StatusNotFound, "compound not found")
	CompoundLookupErr     = New(200207, http.StatusInternalServerError, "compound lookup failed")
)
