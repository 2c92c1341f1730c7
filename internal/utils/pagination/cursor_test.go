package pagination_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Tw1zzzzz/CisBot2/internal/utils/pagination"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	token, err := pagination.Encode(pagination.Cursor{Offset: 40})
	require.NoError(t, err)

	c, err := pagination.Decode(token)
	require.NoError(t, err)
	assert.Equal(t, 40, c.Offset)
}

func TestDecodeEmptyTokenIsFirstPage(t *testing.T) {
	c, err := pagination.Decode("")
	require.NoError(t, err)
	assert.Equal(t, 0, c.Offset)
}

func TestDecodeRejectsGarbage(t *testing.T) {
	_, err := pagination.Decode("!!not-base64!!")
	assert.Error(t, err)

	// valid base64 but not a cursor payload
	_, err = pagination.Decode("aGVsbG8=")
	assert.Error(t, err)
}

func TestDecodeRejectsNegativeOffset(t *testing.T) {
	token, err := pagination.Encode(pagination.Cursor{Offset: -1})
	require.NoError(t, err)

	_, err = pagination.Decode(token)
	assert.Error(t, err)
}
