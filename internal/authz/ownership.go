// Package authz decides whether a caller owns a resource. Ownership always
// resolves through the parent chain (task→company→user,
// observation→task→company→user); there is no denormalized owner field on
// child entities.
package authz

import "errors"

// ErrNotOwner is returned when the resolved owner differs from the caller.
// Callers must report it as "not found": a non-owner must not be able to
// tell an existing resource from an absent one.
var ErrNotOwner = errors.New("caller does not own resource")

// CheckOwner compares the resolved owner of a resource with the caller
// identity. Applied uniformly to read, update and delete; creates are
// covered by resolving the parent under the caller's ownership first.
func CheckOwner(resourceOwnerID, callerID string) error {
	if resourceOwnerID == "" || callerID == "" || resourceOwnerID != callerID {
		return ErrNotOwner
	}
	return nil
}
