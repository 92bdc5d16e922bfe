package dex

import (
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/gnames/gnpokedex/pkg/errcode"
)

// NotFoundError is returned when an identifier, form, language or
// version does not exist in the corpus.
func NotFoundError(what, value string) error {
	msg := "Cannot find %s <em>%s</em>"
	vars := []any{what, value}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.NotFoundError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: %s %q not found", fn.Name(), what, value),
	}
}

// MissingStatError is returned when a form lacks one of the six base
// stats.
func MissingStatError(form, stat string) error {
	msg := "Form <em>%s</em> has no <em>%s</em> stat"
	vars := []any{form, stat}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.MissingStatError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: stat %s is missing for %s", fn.Name(), stat, form),
	}
}

// MalformedChainError is returned when an evolution chain does not have
// exactly one root.
func MalformedChainError(chainID int, reason string) error {
	msg := "Evolution chain <em>%d</em> is malformed: %s"
	vars := []any{chainID, reason}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.MalformedChainError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: chain %d: %s", fn.Name(), chainID, reason),
	}
}
