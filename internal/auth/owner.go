package auth

import (
	"github.com/tabelsky/todo-flask-netology/internal/util"
)

// Owned is a resource carrying an owning-user reference.
type Owned interface {
	OwnerID() uint
}

// CheckOwner succeeds only when the resource belongs to the given
// user; any other user is denied.
func CheckOwner(item Owned, userID uint) error {
	if item.OwnerID() != userID {
		return util.Forbidden("access denied")
	}
	return nil
}
