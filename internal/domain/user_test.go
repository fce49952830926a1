package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	t.Parallel()

	t.Run("normalizes email", func(t *testing.T) {
		t.Parallel()
		user, err := NewUser("  Jane.Doe@Example.COM ", "Jane")
		require.NoError(t, err)
		assert.Equal(t, "jane.doe@example.com", user.Email)
		assert.Equal(t, "Jane", user.Name)
		assert.False(t, user.CreatedAt.IsZero())
	})

	t.Run("derives name when blank", func(t *testing.T) {
		t.Parallel()
		user, err := NewUser("jane.doe@example.com", "   ")
		require.NoError(t, err)
		assert.Equal(t, "Jane Doe", user.Name)
	})

	t.Run("rejects empty email", func(t *testing.T) {
		t.Parallel()
		_, err := NewUser("   ", "Jane")
		assert.ErrorIs(t, err, ErrEmptyEmail)
	})

	t.Run("rejects malformed email", func(t *testing.T) {
		t.Parallel()
		for _, email := range []string{"not-an-email", "@example.com", "jane@", "jane@nodot", "jane@.com"} {
			_, err := NewUser(email, "Jane")
			assert.ErrorIs(t, err, ErrInvalidEmail, "email %q", email)
		}
	})
}

func TestNormalizeEmail(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{"A@X.com", "a@x.com"},
		{"  a@x.com  ", "a@x.com"},
		{"MiXeD@Case.Org", "mixed@case.org"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizeEmail(tt.in))
	}
}

func TestDefaultNameFromEmail(t *testing.T) {
	t.Parallel()

	tests := []struct {
		email string
		want  string
	}{
		{"jane.doe@example.com", "Jane Doe"},
		{"jane_doe@example.com", "Jane Doe"},
		{"jane-doe+work@example.com", "Jane Doe Work"},
		{"jane@example.com", "Jane"},
		{"j@example.com", "J"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, DefaultNameFromEmail(tt.email), "email %q", tt.email)
	}
}

func TestValidatePassword(t *testing.T) {
	t.Parallel()

	assert.NoError(t, ValidatePassword("longenough"))
	assert.NoError(t, ValidatePassword("pw1"), "no minimum length is imposed")
	assert.NoError(t, ValidatePassword("a"))
	assert.ErrorIs(t, ValidatePassword(""), ErrEmptyPassword)

	long := make([]byte, 73)
	for i := range long {
		long[i] = 'a'
	}
	assert.ErrorIs(t, ValidatePassword(string(long)), ErrPasswordTooLong)
}
