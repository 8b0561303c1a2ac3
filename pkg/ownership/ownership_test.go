package ownership

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"vidtube.com/pkg/errno"
)

type owned struct{ id int64 }

func (o owned) GetOwnerID() int64 { return o.id }

func TestAssertOwner(t *testing.T) {
	assert.NoError(t, Assert(owned{id: 42}, 42))
}

func TestAssertStranger(t *testing.T) {
	err := Assert(owned{id: 42}, 7)
	assert.Error(t, err)
	assert.Equal(t, int64(errno.AuthorizationFailedCode), errno.ConvertErr(err).ErrCode)
}
