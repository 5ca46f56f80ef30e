package password

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashAndVerify(t *testing.T) {
	digest, err := Hash("pw123")
	assert.NoError(t, err)
	assert.NotEmpty(t, digest)
	assert.NotEqual(t, "pw123", digest)

	assert.True(t, Verify("pw123", digest))
	assert.False(t, Verify("wrong", digest))
}

func TestHash_FreshSaltPerCall(t *testing.T) {
	a, err := Hash("pw123")
	assert.NoError(t, err)
	b, err := Hash("pw123")
	assert.NoError(t, err)

	assert.NotEqual(t, a, b)
	assert.True(t, Verify("pw123", a))
	assert.True(t, Verify("pw123", b))
}

func TestVerify_MalformedDigest(t *testing.T) {
	assert.False(t, Verify("pw123", "not-a-bcrypt-digest"))
	assert.False(t, Verify("pw123", ""))
}
