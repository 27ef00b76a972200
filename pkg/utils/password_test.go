package utils_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reflectdiary/diary-api/pkg/utils"
)

func Test_PasswordHashRoundtrip(t *testing.T) {
	hash, err := utils.GenPasswordHash("hunter22")
	require.NoError(t, err)
	assert.NotEqual(t, "hunter22", hash)

	assert.True(t, utils.VerifyPassword(hash, "hunter22"))
	assert.False(t, utils.VerifyPassword(hash, "hunter2"))
	assert.False(t, utils.VerifyPassword("not-a-hash", "hunter22"))
}
