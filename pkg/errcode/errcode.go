package errcode

import (
	"errors"

	"github.com/gnames/gn"
)

const (
	UnknownError gn.ErrorCode = iota

	// File System errors
	CreateDirError
	CopyFileError
	ReadFileError

	// Logging errors
	CreateLogFileError

	// Corpus errors
	LoadError
	CorpusOpenError
	ConvertError

	// Resolution errors
	NotFoundError
	MissingStatError
	MalformedChainError

	// Request errors
	BadRequestError

	// Server errors
	ServerError
)

// Is reports whether any error in err's chain is a *gn.Error with the
// given code.
func Is(err error, code gn.ErrorCode) bool {
	var gnErr *gn.Error
	if !errors.As(err, &gnErr) {
		return false
	}
	return gnErr.Code == code
}

// Name returns a stable machine-readable name for a code, used in JSON
// error bodies.
func Name(code gn.ErrorCode) string {
	switch code {
	case LoadError, CorpusOpenError:
		return "LoadError"
	case NotFoundError:
		return "NotFound"
	case MissingStatError:
		return "MissingStat"
	case MalformedChainError:
		return "MalformedChain"
	case BadRequestError:
		return "BadRequest"
	default:
		return "Unknown"
	}
}
