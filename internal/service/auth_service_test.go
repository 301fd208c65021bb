package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/arpitagupta-cpu/campus-connect-digital/internal/models"
	"github.com/arpitagupta-cpu/campus-connect-digital/internal/session"
	"github.com/arpitagupta-cpu/campus-connect-digital/internal/store/memstore"
	appErrors "github.com/arpitagupta-cpu/campus-connect-digital/pkg/errors"
)

type directoryStub struct {
	created []session.Identity
	revoked []string
	err     error
}

func (d *directoryStub) Create(ctx context.Context, identity session.Identity) (string, error) {
	if d.err != nil {
		return "", d.err
	}
	d.created = append(d.created, identity)
	return fmt.Sprintf("token-%d", len(d.created)), nil
}

func (d *directoryStub) Resolve(ctx context.Context, token string) (*session.Identity, error) {
	return nil, session.ErrInvalid
}

func (d *directoryStub) Revoke(ctx context.Context, token string) error {
	d.revoked = append(d.revoked, token)
	return d.err
}

func TestRegisterStudentClaimsRosterEntry(t *testing.T) {
	st := memstore.New()
	ctx := context.Background()
	section := "A"
	dept := "CSE"
	require.NoError(t, st.CreateStudentEntry(ctx, &models.StudentEntry{
		StudentID: "2021-CSE-042", Section: &section, Department: &dept,
	}))

	sessions := &directoryStub{}
	svc := NewAuthService(st, sessions, nil, nil)

	result, err := svc.Register(ctx, models.RegisterRequest{
		Username: "arya", Password: "secret1", FullName: "Arya Stark",
		UserType: "student", StudentID: "2021-CSE-042",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, result.Token)
	require.NotNil(t, result.User.StudentID)
	assert.Equal(t, "2021-CSE-042", *result.User.StudentID)
	require.NotNil(t, result.User.Section)
	assert.Equal(t, "A", *result.User.Section)

	entry, err := st.GetStudentEntryByStudentID(ctx, "2021-CSE-042")
	require.NoError(t, err)
	assert.True(t, entry.Assigned)
	require.NotNil(t, entry.UserID)
	assert.Equal(t, result.User.ID, *entry.UserID)
}

func TestRegisterUnknownStudentIDRejected(t *testing.T) {
	svc := NewAuthService(memstore.New(), &directoryStub{}, nil, nil)

	_, err := svc.Register(context.Background(), models.RegisterRequest{
		Username: "arya", Password: "secret1", FullName: "Arya Stark",
		UserType: "student", StudentID: "nope",
	})
	var appErr *appErrors.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, appErrors.ErrValidation.Code, appErr.Code)
}

func TestRegisterClaimedStudentIDRejected(t *testing.T) {
	st := memstore.New()
	ctx := context.Background()
	require.NoError(t, st.CreateStudentEntry(ctx, &models.StudentEntry{StudentID: "S-1", Assigned: true}))

	svc := NewAuthService(st, &directoryStub{}, nil, nil)
	_, err := svc.Register(ctx, models.RegisterRequest{
		Username: "arya", Password: "secret1", FullName: "Arya Stark",
		UserType: "student", StudentID: "S-1",
	})
	var appErr *appErrors.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, appErrors.ErrValidation.Code, appErr.Code)
}

func TestRegisterDuplicateUsernameRejected(t *testing.T) {
	st := memstore.New()
	ctx := context.Background()
	svc := NewAuthService(st, &directoryStub{}, nil, nil)

	_, err := svc.Register(ctx, models.RegisterRequest{
		Username: "arya", Password: "secret1", FullName: "Arya Stark", UserType: "admin",
	})
	require.NoError(t, err)

	_, err = svc.Register(ctx, models.RegisterRequest{
		Username: "arya", Password: "other12", FullName: "Pretender", UserType: "admin",
	})
	var appErr *appErrors.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, appErrors.ErrValidation.Code, appErr.Code)
}

func TestRegisterInvalidRoleRejected(t *testing.T) {
	svc := NewAuthService(memstore.New(), &directoryStub{}, nil, nil)

	_, err := svc.Register(context.Background(), models.RegisterRequest{
		Username: "arya", Password: "secret1", FullName: "Arya Stark", UserType: "superuser",
	})
	var appErr *appErrors.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, appErrors.ErrValidation.Code, appErr.Code)
}

func TestLoginSuccessIssuesSession(t *testing.T) {
	st := memstore.New()
	ctx := context.Background()
	hash, err := bcrypt.GenerateFromPassword([]byte("secret1"), bcrypt.MinCost)
	require.NoError(t, err)
	require.NoError(t, st.CreateUser(ctx, &models.User{
		Username: "arya", PasswordHash: string(hash), FullName: "Arya Stark", Role: models.RoleStudent,
	}))

	sessions := &directoryStub{}
	svc := NewAuthService(st, sessions, nil, nil)

	result, err := svc.Login(ctx, models.LoginRequest{Username: "arya", Password: "secret1"})
	require.NoError(t, err)
	assert.Equal(t, "token-1", result.Token)
	require.Len(t, sessions.created, 1)
	assert.Equal(t, models.RoleStudent, sessions.created[0].Role)
}

func TestLoginWrongPassword(t *testing.T) {
	st := memstore.New()
	ctx := context.Background()
	hash, err := bcrypt.GenerateFromPassword([]byte("secret1"), bcrypt.MinCost)
	require.NoError(t, err)
	require.NoError(t, st.CreateUser(ctx, &models.User{
		Username: "arya", PasswordHash: string(hash), FullName: "Arya Stark", Role: models.RoleStudent,
	}))

	svc := NewAuthService(st, &directoryStub{}, nil, nil)
	_, err = svc.Login(ctx, models.LoginRequest{Username: "arya", Password: "wrong"})
	var appErr *appErrors.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, appErrors.ErrInvalidCredentials.Code, appErr.Code)
}

func TestLoginUnknownUserSameErrorAsWrongPassword(t *testing.T) {
	svc := NewAuthService(memstore.New(), &directoryStub{}, nil, nil)

	_, err := svc.Login(context.Background(), models.LoginRequest{Username: "ghost", Password: "whatever"})
	var appErr *appErrors.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, appErrors.ErrInvalidCredentials.Code, appErr.Code)
	assert.Equal(t, appErrors.ErrInvalidCredentials.Message, appErr.Message)
}

func TestLogoutRevokesToken(t *testing.T) {
	sessions := &directoryStub{}
	svc := NewAuthService(memstore.New(), sessions, nil, nil)

	require.NoError(t, svc.Logout(context.Background(), "token-1"))
	assert.Equal(t, []string{"token-1"}, sessions.revoked)
}

func TestCurrentUserMissingAccount(t *testing.T) {
	svc := NewAuthService(memstore.New(), &directoryStub{}, nil, nil)

	_, err := svc.CurrentUser(context.Background(), 99)
	var appErr *appErrors.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, appErrors.ErrUnauthorized.Code, appErr.Code)
}

func TestLoginSessionDirectoryFailure(t *testing.T) {
	st := memstore.New()
	ctx := context.Background()
	hash, err := bcrypt.GenerateFromPassword([]byte("secret1"), bcrypt.MinCost)
	require.NoError(t, err)
	require.NoError(t, st.CreateUser(ctx, &models.User{
		Username: "arya", PasswordHash: string(hash), FullName: "Arya Stark", Role: models.RoleStudent,
	}))

	svc := NewAuthService(st, &directoryStub{err: errors.New("redis down")}, nil, nil)
	_, err = svc.Login(ctx, models.LoginRequest{Username: "arya", Password: "secret1"})
	var appErr *appErrors.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, appErrors.ErrInternal.Code, appErr.Code)
}
