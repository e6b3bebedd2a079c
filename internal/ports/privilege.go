package ports

import "context"

// PrivilegePort resolves a user's privilege level for command gating.
type PrivilegePort interface {
	// Level returns the privilege level stored for userID.
	// Users without an explicit level are level 0.
	Level(ctx context.Context, userID string) (int, error)
}
