// file: internals/features/school/classes/service/membership_test.go
package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	userModel "campushub_backend/internals/features/users/user/model"
)

func TestListForRole(t *testing.T) {
	list, err := ListForRole(userModel.RoleCR)
	require.NoError(t, err)
	assert.Equal(t, ListCRs, list)

	list, err = ListForRole(userModel.RoleCA)
	require.NoError(t, err)
	assert.Equal(t, ListCAs, list)

	list, err = ListForRole(userModel.RoleStudent)
	require.NoError(t, err)
	assert.Equal(t, ListStudents, list)

	_, err = ListForRole(userModel.RoleFaculty)
	assert.Error(t, err)
	_, err = ListForRole(userModel.RoleAdmin)
	assert.Error(t, err)
}

func TestAppendUnique(t *testing.T) {
	out, changed := AppendUnique(nil, "a")
	assert.True(t, changed)
	assert.Equal(t, []string{"a"}, out)

	out, changed = AppendUnique(out, "a")
	assert.False(t, changed)
	assert.Equal(t, []string{"a"}, out)

	out, changed = AppendUnique(out, "b")
	assert.True(t, changed)
	assert.Equal(t, []string{"a", "b"}, out)
}

func TestRemove(t *testing.T) {
	out, changed := Remove([]string{"a", "b", "c"}, "b")
	assert.True(t, changed)
	assert.Equal(t, []string{"a", "c"}, out)

	out, changed = Remove(out, "zz")
	assert.False(t, changed)
	assert.Equal(t, []string{"a", "c"}, out)

	out, changed = Remove([]string{"x"}, "x")
	assert.True(t, changed)
	assert.Empty(t, out)
}
