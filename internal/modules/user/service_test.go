package user

import (
	"context"
	"testing"

	"eventpro/internal/database"
	"eventpro/internal/domain"
	"eventpro/internal/pkg/errs"
	"eventpro/internal/pkg/pagination"
	"eventpro/internal/pkg/password"
	"eventpro/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	db, err := database.Connect(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close(db) })
	require.NoError(t, repository.AutoMigrate(db))
	return NewService(repository.NewUserRepository(db))
}

func seedUser(t *testing.T, svc *Service, username, email string, role domain.UserRole) *domain.User {
	t.Helper()
	u, err := svc.Create(context.Background(), CreateUserRequest{
		Username: username,
		Email:    email,
		Password: "secret1",
		Role:     string(role),
	})
	require.NoError(t, err)
	return u
}

func TestCreate_RejectsUnknownRole(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Create(context.Background(), CreateUserRequest{
		Username: "lan", Email: "lan@x.com", Password: "secret1", Role: "superuser",
	})
	assert.ErrorIs(t, err, ErrInvalidRole)
}

func TestCreate_Duplicates(t *testing.T) {
	svc := newTestService(t)
	seedUser(t, svc, "lan", "lan@x.com", domain.RoleStaff)

	_, err := svc.Create(context.Background(), CreateUserRequest{
		Username: "other", Email: "LAN@x.com", Password: "secret1", Role: "staff",
	})
	assert.ErrorIs(t, err, ErrEmailAlreadyExists)

	_, err = svc.Create(context.Background(), CreateUserRequest{
		Username: "lan", Email: "other@x.com", Password: "secret1", Role: "staff",
	})
	assert.ErrorIs(t, err, ErrUsernameTaken)
}

func TestUpdateProfile_PatchKeepsEmptyFields(t *testing.T) {
	svc := newTestService(t)
	u := seedUser(t, svc, "lan", "lan@x.com", domain.RoleCustomer)

	got, err := svc.UpdateProfile(context.Background(), u.ID, UpdateProfileRequest{Phone: "0909"})
	require.NoError(t, err)
	assert.Equal(t, "lan", got.Username)
	assert.Equal(t, "lan@x.com", got.Email)
	assert.Equal(t, "0909", got.Phone)

	reloaded, err := svc.Get(context.Background(), u.ID)
	require.NoError(t, err)
	assert.Equal(t, "0909", reloaded.Phone)
}

func TestUpdateProfile_EmailTakenByOther(t *testing.T) {
	svc := newTestService(t)
	a := seedUser(t, svc, "lan", "lan@x.com", domain.RoleCustomer)
	seedUser(t, svc, "an", "an@x.com", domain.RoleCustomer)

	_, err := svc.UpdateProfile(context.Background(), a.ID, UpdateProfileRequest{Email: "an@x.com"})
	assert.ErrorIs(t, err, ErrEmailAlreadyExists)

	// own email is fine
	_, err = svc.UpdateProfile(context.Background(), a.ID, UpdateProfileRequest{Email: "lan@x.com"})
	assert.NoError(t, err)
}

func TestChangePassword(t *testing.T) {
	svc := newTestService(t)
	u := seedUser(t, svc, "lan", "lan@x.com", domain.RoleCustomer)
	ctx := context.Background()

	err := svc.ChangePassword(ctx, u.ID, ChangePasswordRequest{OldPassword: "wrong", NewPassword: "newpass", ConfirmPassword: "newpass"})
	assert.ErrorIs(t, err, ErrWrongPassword)

	err = svc.ChangePassword(ctx, u.ID, ChangePasswordRequest{OldPassword: "secret1", NewPassword: "newpass", ConfirmPassword: "nope12"})
	assert.ErrorIs(t, err, ErrPasswordMismatch)

	require.NoError(t, svc.ChangePassword(ctx, u.ID, ChangePasswordRequest{OldPassword: "secret1", NewPassword: "newpass", ConfirmPassword: "newpass"}))

	reloaded, err := svc.Get(ctx, u.ID)
	require.NoError(t, err)
	assert.NoError(t, password.Compare(reloaded.PasswordHash, "newpass"))
}

func TestUpdate_RoleAndPassword(t *testing.T) {
	svc := newTestService(t)
	u := seedUser(t, svc, "lan", "lan@x.com", domain.RoleCustomer)

	got, err := svc.Update(context.Background(), u.ID, UpdateUserRequest{Role: "staff", Password: "reset12"})
	require.NoError(t, err)
	assert.Equal(t, domain.RoleStaff, got.Role)
	assert.NoError(t, password.Compare(got.PasswordHash, "reset12"))

	_, err = svc.Update(context.Background(), u.ID, UpdateUserRequest{Role: "root"})
	assert.ErrorIs(t, err, ErrInvalidRole)
}

func TestList_RoleFilterAndPaging(t *testing.T) {
	svc := newTestService(t)
	for _, name := range []string{"s1", "s2", "s3"} {
		seedUser(t, svc, name, name+"@x.com", domain.RoleStaff)
	}
	seedUser(t, svc, "c1", "c1@x.com", domain.RoleCustomer)

	res, err := svc.List(context.Background(), ListQuery{Query: pagination.Query{Limit: 2}, Role: "staff"})
	require.NoError(t, err)
	assert.Equal(t, int64(3), res.TotalUsers)
	assert.Equal(t, 2, res.TotalPages)
	assert.Len(t, res.Users, 2)

	_, err = svc.List(context.Background(), ListQuery{Role: "ghost"})
	assert.True(t, errs.Is(err, errs.ErrValidation))
}

func TestDelete(t *testing.T) {
	svc := newTestService(t)
	admin := seedUser(t, svc, "admin", "admin@x.com", domain.RoleAdmin)
	u := seedUser(t, svc, "lan", "lan@x.com", domain.RoleCustomer)
	ctx := context.Background()

	assert.ErrorIs(t, svc.Delete(ctx, admin.ID, admin.ID), ErrDeleteSelf)
	require.NoError(t, svc.Delete(ctx, admin.ID, u.ID))
	assert.ErrorIs(t, svc.Delete(ctx, admin.ID, u.ID), ErrUserNotFound)
}
