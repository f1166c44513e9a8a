package memory_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rentdesk/internal/adapter/memory"
	"rentdesk/internal/domain"
)

func TestFirstRegisteredAccountIsAdmin(t *testing.T) {
	b := memory.New()
	ctx := context.Background()

	first, err := b.Session().Register(ctx, domain.RegisterInput{
		Name: "Alice", Email: "alice@test", Password: "hunter2!x",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.RoleAdmin, first.User.Role)
	assert.NotEmpty(t, first.Token)

	second, err := b.Session().Register(ctx, domain.RegisterInput{
		Name: "Bob", Email: "bob@test", Password: "hunter2!x",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.RoleUser, second.User.Role)
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	b := memory.New()
	ctx := context.Background()

	_, err := b.Session().Register(ctx, domain.RegisterInput{Name: "Alice", Email: "alice@test", Password: "hunter2!x"})
	require.NoError(t, err)

	_, err = b.Session().Register(ctx, domain.RegisterInput{Name: "Other", Email: "ALICE@test", Password: "hunter2!x"})
	assert.True(t, domain.IsConflict(err), "want conflict, got %v", err)
}

func TestLogin(t *testing.T) {
	b := memory.New()
	ctx := context.Background()
	_, err := b.Session().Register(ctx, domain.RegisterInput{Name: "Alice", Email: "alice@test", Password: "hunter2!x"})
	require.NoError(t, err)
	require.NoError(t, b.Session().Logout(ctx))

	t.Run("wrong password", func(t *testing.T) {
		_, err := b.Session().Login(ctx, "alice@test", "nope")
		assert.True(t, domain.IsTransport(err))
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := b.Session().Login(ctx, "ghost@test", "hunter2!x")
		assert.True(t, domain.IsTransport(err))
	})

	t.Run("success is case-insensitive on email", func(t *testing.T) {
		sess, err := b.Session().Login(ctx, "Alice@Test", "hunter2!x")
		require.NoError(t, err)
		assert.Equal(t, "alice@test", sess.User.Email)

		user, err := b.Session().CurrentUser(ctx)
		require.NoError(t, err)
		require.NotNil(t, user)
		assert.Equal(t, sess.User.ID, user.ID)
	})
}

func TestLoginRejectsDeactivatedAccount(t *testing.T) {
	b := memory.New()
	ctx := context.Background()
	_, err := b.Session().Register(ctx, domain.RegisterInput{Name: "Alice", Email: "alice@test", Password: "hunter2!x"})
	require.NoError(t, err)
	bob, err := b.Users().Create(ctx, domain.UserInput{Name: "Bob", Email: "bob@test", Password: "hunter2"})
	require.NoError(t, err)

	toggled, err := b.Users().ToggleStatus(ctx, bob.ID)
	require.NoError(t, err)
	require.False(t, toggled.Active)

	_, err = b.Session().Login(ctx, "bob@test", "hunter2")
	assert.True(t, domain.IsTransport(err))
}

func TestLogoutClearsCurrentUser(t *testing.T) {
	b := memory.New()
	ctx := context.Background()
	_, err := b.Session().Register(ctx, domain.RegisterInput{Name: "Alice", Email: "alice@test", Password: "hunter2!x"})
	require.NoError(t, err)

	require.NoError(t, b.Session().Logout(ctx))
	user, err := b.Session().CurrentUser(ctx)
	require.NoError(t, err)
	assert.Nil(t, user)
}

func TestResetPasswordReplacesCredential(t *testing.T) {
	b := memory.New()
	ctx := context.Background()
	sess, err := b.Session().Register(ctx, domain.RegisterInput{Name: "Alice", Email: "alice@test", Password: "hunter2!x"})
	require.NoError(t, err)
	require.NoError(t, b.Session().Logout(ctx))

	require.NoError(t, b.Users().ResetPassword(ctx, sess.User.ID, "newpass1"))

	_, err = b.Session().Login(ctx, "alice@test", "hunter2!x")
	assert.True(t, domain.IsTransport(err), "old password must stop working")

	_, err = b.Session().Login(ctx, "alice@test", "newpass1")
	assert.NoError(t, err)
}

func TestPropertyCRUD(t *testing.T) {
	b := memory.New()
	ctx := context.Background()

	created, err := b.Create(ctx, domain.PropertyInput{Title: "Loft Centro", Type: "Apartment"})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, domain.PropertyAvailable, created.Status, "status defaults to Available")
	assert.False(t, created.CreatedAt.IsZero())

	status := domain.PropertyRented
	updated, err := b.Update(ctx, created.ID, domain.PropertyPatch{Status: &status})
	require.NoError(t, err)
	assert.Equal(t, domain.PropertyRented, updated.Status)

	got, err := b.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.PropertyRented, got.Status)

	require.NoError(t, b.Delete(ctx, created.ID))
	_, err = b.Get(ctx, created.ID)
	assert.True(t, domain.IsNotFound(err))
}

func TestPropertyTypeUniqueness(t *testing.T) {
	b := memory.New()
	ctx := context.Background()

	apt, err := b.PropertyTypes().Create(ctx, "Apartment")
	require.NoError(t, err)

	_, err = b.PropertyTypes().Create(ctx, "apartment")
	assert.True(t, domain.IsConflict(err))

	house, err := b.PropertyTypes().Create(ctx, "House")
	require.NoError(t, err)

	_, err = b.PropertyTypes().Update(ctx, house.ID, "APARTMENT")
	assert.True(t, domain.IsConflict(err))

	renamed, err := b.PropertyTypes().Update(ctx, apt.ID, "Flat")
	require.NoError(t, err)
	assert.Equal(t, "Flat", renamed.Name)
}

func TestSeedProducesWorkingDemoAccount(t *testing.T) {
	b := memory.New()
	require.NoError(t, memory.Seed(b))
	ctx := context.Background()

	sess, err := b.Session().Login(ctx, memory.DemoEmail, memory.DemoPassword)
	require.NoError(t, err)
	assert.Equal(t, domain.RoleAdmin, sess.User.Role)

	props, err := b.List(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, props)

	contracts, err := b.Contracts().List(ctx)
	require.NoError(t, err)
	for _, c := range contracts {
		if !c.Status.Occupying() {
			continue
		}
		p, err := b.Get(ctx, c.PropertyID)
		require.NoError(t, err)
		assert.Equal(t, domain.PropertyRented, p.Status,
			"occupied property %s must be Rented", p.Title)
	}
}
