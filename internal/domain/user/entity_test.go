//go:build unit

package user_test

import (
	"testing"

	"tour-booking-api/internal/domain/user"
	"tour-booking-api/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.UserBuilder)
	errIs  error
}

func TestUser(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewUserBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, "test@example.com", actual.Email().Value())
		assert.Equal(t, user.RoleCustomer, actual.Role())
		assert.Nil(t, actual.OperatorID())
		assert.True(t, actual.IsActive())
	})

	t.Run("email validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "plain address",
				mutate: func(b *builder.UserBuilder) { b.WithEmail("guide@example.com") },
			},
			{
				name:   "address with plus tag",
				mutate: func(b *builder.UserBuilder) { b.WithEmail("guide+tours@example.com") },
			},
			{
				name:   "missing at sign",
				mutate: func(b *builder.UserBuilder) { b.WithEmail("guide.example.com") },
				errIs:  user.ErrInvalidEmail,
			},
			{
				name:   "missing domain",
				mutate: func(b *builder.UserBuilder) { b.WithEmail("guide@") },
				errIs:  user.ErrInvalidEmail,
			},
			{
				name:   "empty email",
				mutate: func(b *builder.UserBuilder) { b.WithEmail("") },
				errIs:  user.ErrInvalidEmail,
			},
		})
	})

	t.Run("role validation", func(t *testing.T) {
		runCases(t, []testCase{
			{name: "customer", mutate: func(b *builder.UserBuilder) { b.WithRole("customer") }},
			{name: "operator", mutate: func(b *builder.UserBuilder) { b.WithRole("operator") }},
			{name: "admin", mutate: func(b *builder.UserBuilder) { b.WithRole("admin") }},
			{
				name:   "unknown role",
				mutate: func(b *builder.UserBuilder) { b.WithRole("superuser") },
				errIs:  user.ErrInvalidRole,
			},
			{
				name:   "empty role",
				mutate: func(b *builder.UserBuilder) { b.WithRole("") },
				errIs:  user.ErrInvalidRole,
			},
		})
	})

	t.Run("operator tenancy", func(t *testing.T) {
		actual, err := builder.NewUserBuilder().AsOperator().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.Equal(t, user.RoleOperator, actual.Role())
		assert.NotNil(t, actual.OperatorID())
	})
}

func TestPassword(t *testing.T) {
	t.Run("minimum length", func(t *testing.T) {
		_, err := user.NewPassword("12345678")
		require.NoError(t, err)
	})

	t.Run("too short", func(t *testing.T) {
		_, err := user.NewPassword("1234567")
		require.ErrorIs(t, err, user.ErrPasswordTooWeak)
	})
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual, err := builder.NewUserBuilder().With(c.mutate).BuildDomain()

			if c.errIs == nil {
				require.NotNil(t, actual)
				require.NoError(t, err)
			} else {
				require.Nil(t, actual)
				require.Error(t, err)
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}
