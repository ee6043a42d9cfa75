package dto_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/spec-kit/user-management/internal/api/dto"
)

func TestSignupRequestValidate(t *testing.T) {
	valid := dto.SignupRequest{Email: "a@b.com", Password: "Aa1!aaaa", FullName: "A B"}

	tests := []struct {
		name    string
		mutate  func(r *dto.SignupRequest)
		wantErr bool
	}{
		{name: "valid request"},
		{name: "empty email", mutate: func(r *dto.SignupRequest) { r.Email = "" }, wantErr: true},
		{name: "not an email", mutate: func(r *dto.SignupRequest) { r.Email = "not-an-email" }, wantErr: true},
		{name: "overlong email", mutate: func(r *dto.SignupRequest) { r.Email = strings.Repeat("a", 250) + "@b.com" }, wantErr: true},
		{name: "short password", mutate: func(r *dto.SignupRequest) { r.Password = "Aa1!a" }, wantErr: true},
		{name: "password at hasher limit", mutate: func(r *dto.SignupRequest) { r.Password = "Aa1!" + strings.Repeat("a", 68) }},
		{name: "password beyond hasher limit", mutate: func(r *dto.SignupRequest) { r.Password = "Aa1!" + strings.Repeat("a", 69) }, wantErr: true},
		{name: "no uppercase", mutate: func(r *dto.SignupRequest) { r.Password = "aa1!aaaa" }, wantErr: true},
		{name: "no lowercase", mutate: func(r *dto.SignupRequest) { r.Password = "AA1!AAAA" }, wantErr: true},
		{name: "no digit", mutate: func(r *dto.SignupRequest) { r.Password = "Aaa!aaaa" }, wantErr: true},
		{name: "no special", mutate: func(r *dto.SignupRequest) { r.Password = "Aa1aaaaa" }, wantErr: true},
		{name: "short name", mutate: func(r *dto.SignupRequest) { r.FullName = "A" }, wantErr: true},
		{name: "overlong name", mutate: func(r *dto.SignupRequest) { r.FullName = strings.Repeat("a", 101) }, wantErr: true},
		{name: "name with digits", mutate: func(r *dto.SignupRequest) { r.FullName = "User 2" }, wantErr: true},
		{name: "name with apostrophe and hyphen", mutate: func(r *dto.SignupRequest) { r.FullName = "Mary-Jane O'Neil" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid
			if tt.mutate != nil {
				tt.mutate(&req)
			}
			err := req.Validate()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestLoginRequestValidate(t *testing.T) {
	assert.NoError(t, dto.LoginRequest{Email: "a@b.com", Password: "whatever"}.Validate())
	assert.Error(t, dto.LoginRequest{Password: "whatever"}.Validate())
	assert.Error(t, dto.LoginRequest{Email: "a@b.com"}.Validate())

	// A login attempt with a policy-violating password is not a validation
	// error; it must fall through to the credentials check.
	assert.NoError(t, dto.LoginRequest{Email: "a@b.com", Password: "short"}.Validate())
}

func TestChangePasswordRequestValidate(t *testing.T) {
	assert.NoError(t, dto.ChangePasswordRequest{CurrentPassword: "old", NewPassword: "Aa1!aaaa"}.Validate())
	assert.Error(t, dto.ChangePasswordRequest{NewPassword: "Aa1!aaaa"}.Validate())
	assert.Error(t, dto.ChangePasswordRequest{CurrentPassword: "old", NewPassword: "weak"}.Validate())
}

func TestUpdateProfileRequestValidate(t *testing.T) {
	name := "New Name"
	email := "new@example.com"
	bad := "nope"

	assert.NoError(t, dto.UpdateProfileRequest{FullName: &name}.Validate())
	assert.NoError(t, dto.UpdateProfileRequest{Email: &email}.Validate())
	assert.NoError(t, dto.UpdateProfileRequest{FullName: &name, Email: &email}.Validate())
	assert.Error(t, dto.UpdateProfileRequest{}.Validate())
	assert.Error(t, dto.UpdateProfileRequest{Email: &bad}.Validate())
}
