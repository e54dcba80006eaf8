// Package policy is the authorization core: a pure decision function over
// (caller claims, action, target resource). It holds no state and touches
// no storage; handlers resolve the target first (existence before
// ownership) and then ask for a decision.
package policy

import (
	"teamcal/internal/common"
	"teamcal/internal/server/auth"
	"teamcal/internal/server/models"
)

// Action enumerates every operation the policy can gate.
type Action int

const (
	ActionReadEvents Action = iota
	ActionReadHolidays
	ActionReadUsers
	ActionCreateEvent
	ActionUpdateEvent
	ActionDeleteEvent
	ActionCreateUser
	ActionCreateHoliday
	ActionDeleteHoliday
	ActionSetRole
	ActionDeleteUser
)

// Target carries the facts about the resource a decision concerns. Only the
// fields relevant to the action need to be set.
type Target struct {
	// EventOwner is the createdBy of the event for update/delete decisions.
	EventOwner string
	// UserID and UserRole describe the target account for role and
	// delete-user decisions.
	UserID   string
	UserRole models.Role
}

// Check returns nil when the caller may perform the action,
// common.ErrUnauthenticated when there is no verified caller, and
// common.ErrForbidden (or common.ErrProtectedSuperUser) otherwise.
//
// The decision table:
//
//	read events/holidays/users   any authenticated caller
//	create event                 any authenticated caller
//	update/delete event          event owner or admin
//	create user                  admin
//	create/delete holiday        admin
//	grant/revoke admin           super-user, target not a super-user
//	delete user                  super-user, target not a super-user,
//	                             target is not the caller
func Check(claims *auth.Claims, action Action, target Target) error {
	if claims == nil {
		return common.ErrUnauthenticated
	}

	role := claims.UserRole()

	switch action {
	case ActionReadEvents, ActionReadHolidays, ActionReadUsers, ActionCreateEvent:
		return nil

	case ActionUpdateEvent, ActionDeleteEvent:
		if claims.UserID == target.EventOwner || role.IsAdmin() {
			return nil
		}
		return common.ErrForbidden

	case ActionCreateUser, ActionCreateHoliday, ActionDeleteHoliday:
		if role.IsAdmin() {
			return nil
		}
		return common.ErrForbidden

	case ActionSetRole:
		if !role.IsSuperUser() {
			return common.ErrForbidden
		}
		if target.UserRole.IsSuperUser() {
			return common.ErrProtectedSuperUser
		}
		return nil

	case ActionDeleteUser:
		if !role.IsSuperUser() {
			return common.ErrForbidden
		}
		if target.UserRole.IsSuperUser() {
			return common.ErrProtectedSuperUser
		}
		if target.UserID == claims.UserID {
			return common.ErrForbidden
		}
		return nil
	}

	// Unknown actions are denied rather than silently allowed.
	return common.ErrForbidden
}
