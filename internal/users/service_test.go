package users

import (
	"context"
	"testing"

	pkgerrors "github.com/fithouse/console/pkg/errors"
	"github.com/fithouse/console/pkg/pagination"
)

type stubAPI struct {
	listData  []UserDTO
	listPage  pagination.Pagination
	getResult *UserDTO
	created   *CreatePayload
	updatedID string
	updated   *UpdatePayload
	err       error
}

func (s *stubAPI) List(ctx context.Context, params ListParams) ([]UserDTO, pagination.Pagination, error) {
	return s.listData, s.listPage, s.err
}

func (s *stubAPI) Get(ctx context.Context, id string) (*UserDTO, error) {
	return s.getResult, s.err
}

func (s *stubAPI) Create(ctx context.Context, payload CreatePayload) (*UserDTO, error) {
	s.created = &payload
	return &UserDTO{ID: "new", Email: payload.Email}, s.err
}

func (s *stubAPI) Update(ctx context.Context, id string, payload UpdatePayload) (*UserDTO, error) {
	s.updatedID = id
	s.updated = &payload
	return &UserDTO{ID: id, Status: payload.Status}, s.err
}

func TestCreateUserValidation(t *testing.T) {
	tests := []struct {
		name    string
		form    CreateForm
		wantMsg string
	}{
		{"missing email", CreateForm{Nombre: "Ana", Password: "secret"}, "El email es obligatorio"},
		{"missing password", CreateForm{Nombre: "Ana", Email: "ana@test.co"}, "La contraseña es obligatoria"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stub := &stubAPI{}
			svc := &Service{api: stub}

			_, err := svc.CreateUser(context.Background(), tt.form)
			appErr := pkgerrors.As(err)
			if appErr == nil || appErr.Message() != tt.wantMsg {
				t.Fatalf("err = %v, want %q", err, tt.wantMsg)
			}
			if stub.created != nil {
				t.Fatal("invalid form must not reach the backend")
			}
		})
	}
}

func TestUpdateUserStatusWhitelist(t *testing.T) {
	tests := []struct {
		name   string
		status string
		wantOK bool
		sent   string
	}{
		{"active", "active", true, "active"},
		{"inactive", "inactive", true, "inactive"},
		{"upper case is normalized", " Active ", true, "active"},
		{"paused", "paused", false, ""},
		{"empty", "", false, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stub := &stubAPI{}
			svc := &Service{api: stub}

			got, err := svc.UpdateUserStatus(context.Background(), "u1", tt.status)
			if tt.wantOK {
				if err != nil {
					t.Fatalf("UpdateUserStatus: %v", err)
				}
				if stub.updated == nil || stub.updated.Status != tt.sent {
					t.Fatalf("payload = %+v", stub.updated)
				}
				if got.Status != tt.sent {
					t.Fatalf("result = %+v", got)
				}
				return
			}
			appErr := pkgerrors.As(err)
			if appErr == nil || appErr.Message() != `Estado debe ser "active" o "inactive"` {
				t.Fatalf("err = %v", err)
			}
			if stub.updated != nil {
				t.Fatal("invalid status must not reach the backend")
			}
		})
	}
}

func TestGetUserTrimsID(t *testing.T) {
	stub := &stubAPI{getResult: &UserDTO{ID: "u1", FirstName: "Ana"}}
	svc := &Service{api: stub}

	got, err := svc.GetUser(context.Background(), " u1 ")
	if err != nil {
		t.Fatalf("GetUser: %v", err)
	}
	if got.Name != "Ana" {
		t.Fatalf("result = %+v", got)
	}
}

func TestListUsersNormalizes(t *testing.T) {
	stub := &stubAPI{
		listData: []UserDTO{{ID: "u1", Email: "ana@test.co"}},
		listPage: pagination.Pagination{Page: 1, Limit: 20, Total: 1, TotalPages: 1},
	}
	svc := &Service{api: stub}

	res, err := svc.ListUsers(context.Background(), ListParams{})
	if err != nil {
		t.Fatalf("ListUsers: %v", err)
	}
	if len(res.Data) != 1 || res.Data[0].Name != "ana@test.co" {
		t.Fatalf("result = %+v", res.Data)
	}
}
