package sqlite

import (
	"database/sql"

	"github.com/crediya/auth/internal/auth/store"
)

// storeTx exposes the repositories against an open transaction.
type storeTx struct {
	tx *sql.Tx
}

func (t *storeTx) Users() store.Users { return &usersRepo{q: t.tx} }
func (t *storeTx) Roles() store.Roles { return &rolesRepo{q: t.tx} }
