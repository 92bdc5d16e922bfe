package iofs

import (
	"errors"
	"testing"

	"github.com/gnames/gn"
	"github.com/gnames/gnpokedex/pkg/errcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrors(t *testing.T) {
	cause := errors.New("permission denied")

	tests := []struct {
		name    string
		err     error
		code    gn.ErrorCode
		path    string
		errPart string
	}{
		{"create dir", CreateDirError("/dex/cache", cause),
			errcode.CreateDirError, "/dex/cache", "cannot create"},
		{"copy file", CopyFileError("/dex/config.yaml", cause),
			errcode.CopyFileError, "/dex/config.yaml", "cannot copy"},
		{"read file", ReadFileError("/dex/config.yaml", cause),
			errcode.ReadFileError, "/dex/config.yaml", "cannot read"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gnErr, ok := tt.err.(*gn.Error)
			require.True(t, ok, "Error should be of type *gn.Error")

			assert.Equal(t, tt.code, gnErr.Code)
			require.Len(t, gnErr.Vars, 1)
			assert.Equal(t, tt.path, gnErr.Vars[0])
			assert.Contains(t, gnErr.Err.Error(), tt.errPart)
			assert.Contains(t, gnErr.Err.Error(), "from")
			assert.ErrorIs(t, gnErr.Err, cause)
			assert.True(t, errcode.Is(tt.err, tt.code))
		})
	}
}
