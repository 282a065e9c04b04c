package service

import (
	"errors"
	"testing"

	"go-warehouse-api/internal/model"
)

func seedAuthUser(t *testing.T, repo *fakeUserRepo, username, password string, status model.UserStatus, roleCodes ...string) *model.User {
	t.Helper()
	var roles []model.Role
	for i, code := range roleCodes {
		roles = append(roles, model.Role{ID: uint(i + 1), Code: code})
	}
	user := &model.User{
		Username: username,
		Status:   status,
		Roles:    roles,
	}
	if err := user.SetPassword(password); err != nil {
		t.Fatalf("SetPassword: %v", err)
	}
	if err := repo.Create(user); err != nil {
		t.Fatalf("Create: %v", err)
	}
	return user
}

func TestLogin(t *testing.T) {
	repo := newFakeUserRepo()
	seedAuthUser(t, repo, "alice", "secret123", model.UserActive, model.RoleManage, model.RoleStaff)
	svc := NewAuthService(repo)

	resp, err := svc.Login("alice", "secret123")
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}

	if resp.Token == "" {
		t.Error("empty token")
	}
	if resp.User.Username != "alice" {
		t.Errorf("username = %s", resp.User.Username)
	}
	if len(resp.Roles) != 2 {
		t.Errorf("roles = %v", resp.Roles)
	}
}

func TestLoginFailures(t *testing.T) {
	repo := newFakeUserRepo()
	seedAuthUser(t, repo, "alice", "secret123", model.UserActive, model.RoleStaff)
	seedAuthUser(t, repo, "mallory", "secret123", model.UserBlocked, model.RoleStaff)
	svc := NewAuthService(repo)

	tests := []struct {
		name     string
		username string
		password string
		wantErr  error
	}{
		{"unknown user", "nobody", "secret123", ErrInvalidCredentials},
		{"wrong password", "alice", "wrong", ErrInvalidCredentials},
		{"blocked user", "mallory", "secret123", ErrUserBlocked},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := svc.Login(tt.username, tt.password); !errors.Is(err, tt.wantErr) {
				t.Errorf("Login() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateTokenRoundTrip(t *testing.T) {
	repo := newFakeUserRepo()
	user := seedAuthUser(t, repo, "alice", "secret123", model.UserActive, model.RoleStaff)
	svc := NewAuthService(repo)

	login, err := svc.Login("alice", "secret123")
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}

	resp, err := svc.ValidateToken(login.Token)
	if err != nil {
		t.Fatalf("ValidateToken() error = %v", err)
	}
	if resp.User.ID != user.ID {
		t.Errorf("validated user = %s, want %s", resp.User.ID, user.ID)
	}

	// Blocking the account invalidates an otherwise valid token
	repo.users[user.ID].Status = model.UserBlocked
	if _, err := svc.ValidateToken(login.Token); !errors.Is(err, ErrUserBlocked) {
		t.Fatalf("ValidateToken() after block error = %v, want ErrUserBlocked", err)
	}
}

func TestChangePassword(t *testing.T) {
	repo := newFakeUserRepo()
	seedAuthUser(t, repo, "alice", "secret123", model.UserActive, model.RoleStaff)
	svc := NewAuthService(repo)

	if err := svc.ChangePassword("alice", "wrong", "newsecret1"); !errors.Is(err, ErrWrongPassword) {
		t.Fatalf("ChangePassword() error = %v, want ErrWrongPassword", err)
	}

	if err := svc.ChangePassword("alice", "secret123", "newsecret1"); err != nil {
		t.Fatalf("ChangePassword() error = %v", err)
	}

	if _, err := svc.Login("alice", "secret123"); err == nil {
		t.Error("old password still accepted")
	}
	if _, err := svc.Login("alice", "newsecret1"); err != nil {
		t.Errorf("new password refused: %v", err)
	}
}
