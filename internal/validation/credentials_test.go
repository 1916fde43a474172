package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gobarber/gobarber-client/pkg/api"
)

func TestValidateEmail(t *testing.T) {
	tests := []struct {
		name    string
		email   string
		errMsg  string
		wantErr bool
	}{
		{
			name:  "valid e-mail",
			email: "johndoe@example.com",
		},
		{
			name:  "valid e-mail - subdomain",
			email: "john.doe@mail.example.com.br",
		},
		{
			name:    "invalid - empty",
			email:   "",
			wantErr: true,
			errMsg:  "e-mail cannot be empty",
		},
		{
			name:    "invalid - no at sign",
			email:   "johndoe.example.com",
			wantErr: true,
			errMsg:  "not a valid address",
		},
		{
			name:    "invalid - display name form",
			email:   "John <johndoe@example.com>",
			wantErr: true,
			errMsg:  "not a valid address",
		},
		{
			name:    "invalid - no domain dot",
			email:   "johndoe@localhost",
			wantErr: true,
			errMsg:  "not a valid address",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateEmail(tt.email)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestValidatePassword(t *testing.T) {
	assert.NoError(t, ValidatePassword("1"))
	assert.EqualError(t, ValidatePassword(""), "password cannot be empty")
}

func TestValidateNewPassword(t *testing.T) {
	assert.NoError(t, ValidateNewPassword("123456"))

	err := ValidateNewPassword("12345")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "at least 6 characters")

	assert.Error(t, ValidateNewPassword(""))
}

func TestValidateProfile(t *testing.T) {
	valid := api.UpdateProfileRequest{
		Name:  "John Doe",
		Email: "johndoe@example.com",
	}

	tests := []struct {
		name    string
		mutate  func(r *api.UpdateProfileRequest)
		errMsg  string
		wantErr bool
	}{
		{
			name:   "name and e-mail only",
			mutate: func(r *api.UpdateProfileRequest) {},
		},
		{
			name: "password change",
			mutate: func(r *api.UpdateProfileRequest) {
				r.OldPassword = "old-pass"
				r.Password = "123123"
				r.PasswordConfirmation = "123123"
			},
		},
		{
			name:    "blank name",
			mutate:  func(r *api.UpdateProfileRequest) { r.Name = "   " },
			wantErr: true,
			errMsg:  "name cannot be empty",
		},
		{
			name:    "bad e-mail",
			mutate:  func(r *api.UpdateProfileRequest) { r.Email = "not-an-email" },
			wantErr: true,
			errMsg:  "not a valid address",
		},
		{
			name: "new password without old password",
			mutate: func(r *api.UpdateProfileRequest) {
				r.Password = "123123"
				r.PasswordConfirmation = "123123"
			},
			wantErr: true,
			errMsg:  "old password is required",
		},
		{
			name: "confirmation mismatch",
			mutate: func(r *api.UpdateProfileRequest) {
				r.OldPassword = "old-pass"
				r.Password = "123123"
				r.PasswordConfirmation = "321321"
			},
			wantErr: true,
			errMsg:  "does not match",
		},
		{
			name: "short new password",
			mutate: func(r *api.UpdateProfileRequest) {
				r.OldPassword = "old-pass"
				r.Password = "123"
				r.PasswordConfirmation = "123"
			},
			wantErr: true,
			errMsg:  "at least 6 characters",
		},
		{
			name:    "confirmation without password",
			mutate:  func(r *api.UpdateProfileRequest) { r.PasswordConfirmation = "123123" },
			wantErr: true,
			errMsg:  "without new password",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid
			tt.mutate(&req)

			err := ValidateProfile(req)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
				return
			}
			assert.NoError(t, err)
		})
	}
}
