package service

import (
	"context"

	"github.com/crediya/auth/internal/auth/domain"
	"github.com/crediya/auth/internal/auth/store"
)

// fakeStore is an in-memory store.Store for service tests. It records
// the order of collaborator calls so tests can assert flow ordering.
type fakeStore struct {
	users *fakeUsers
	roles *fakeRoles
	calls []string
}

func newFakeStore() *fakeStore {
	s := &fakeStore{}
	s.users = &fakeUsers{parent: s, byEmail: map[string]domain.User{}, byID: map[string]domain.User{}}
	s.roles = &fakeRoles{parent: s, existing: map[int]domain.Role{}}
	for _, rt := range domain.RoleTypes() {
		s.roles.existing[rt.ID()] = domain.Role{
			ID:          rt.ID(),
			Name:        rt.Name(),
			Description: rt.Description(),
		}
	}
	return s
}

func (s *fakeStore) record(call string) { s.calls = append(s.calls, call) }

func (s *fakeStore) Users() store.Users      { return s.users }
func (s *fakeStore) Roles() store.Roles      { return s.roles }
func (s *fakeStore) ApplyMigrations() error  { return nil }
func (s *fakeStore) Close() error            { return nil }
func (s *fakeStore) Ping(context.Context) error { return nil }

func (s *fakeStore) WithTx(ctx context.Context, fn func(tx store.Tx) error) error {
	return fn(s)
}

func (s *fakeStore) addUser(u domain.User) {
	s.users.byEmail[u.Email.String()] = u
	s.users.byID[u.ID] = u
}

type fakeUsers struct {
	parent  *fakeStore
	byEmail map[string]domain.User
	byID    map[string]domain.User
	created []domain.User

	existsErr error
	createErr error
}

func (f *fakeUsers) GetUserByID(_ context.Context, id string) (domain.User, error) {
	f.parent.record("users.GetUserByID")
	u, ok := f.byID[id]
	if !ok {
		return domain.User{}, store.ErrNotFound
	}
	return u, nil
}

func (f *fakeUsers) GetUserByEmail(_ context.Context, email domain.Email) (domain.User, error) {
	f.parent.record("users.GetUserByEmail")
	u, ok := f.byEmail[email.String()]
	if !ok {
		return domain.User{}, store.ErrNotFound
	}
	return u, nil
}

func (f *fakeUsers) ExistsByEmail(_ context.Context, email domain.Email) (bool, error) {
	f.parent.record("users.ExistsByEmail")
	if f.existsErr != nil {
		return false, f.existsErr
	}
	_, ok := f.byEmail[email.String()]
	return ok, nil
}

func (f *fakeUsers) CreateUser(_ context.Context, u domain.User) error {
	f.parent.record("users.CreateUser")
	if f.createErr != nil {
		return f.createErr
	}
	if _, ok := f.byEmail[u.Email.String()]; ok {
		return store.ErrAlreadyExists
	}
	f.byEmail[u.Email.String()] = u
	f.byID[u.ID] = u
	f.created = append(f.created, u)
	return nil
}

func (f *fakeUsers) ListAll(context.Context) ([]domain.User, error) {
	f.parent.record("users.ListAll")
	out := make([]domain.User, 0, len(f.byID))
	for _, u := range f.byID {
		out = append(out, u)
	}
	return out, nil
}

func (f *fakeUsers) CountUsers(context.Context) (int64, error) {
	return int64(len(f.byID)), nil
}

type fakeRoles struct {
	parent   *fakeStore
	existing map[int]domain.Role

	getErr    error
	existsErr error
}

func (f *fakeRoles) GetRoleByID(_ context.Context, id int) (domain.Role, error) {
	f.parent.record("roles.GetRoleByID")
	if f.getErr != nil {
		return domain.Role{}, f.getErr
	}
	role, ok := f.existing[id]
	if !ok {
		return domain.Role{}, store.ErrNotFound
	}
	return role, nil
}

func (f *fakeRoles) ExistsByID(_ context.Context, id int) (bool, error) {
	f.parent.record("roles.ExistsByID")
	if f.existsErr != nil {
		return false, f.existsErr
	}
	_, ok := f.existing[id]
	return ok, nil
}

func (f *fakeRoles) ListAll(context.Context) ([]domain.Role, error) {
	f.parent.record("roles.ListAll")
	out := make([]domain.Role, 0, len(f.existing))
	for _, r := range f.existing {
		out = append(out, r)
	}
	return out, nil
}
