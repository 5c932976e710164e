package usecase

import "context"

// ChangeLogger records task-affecting mutations. Implementations never
// fail the calling mutation: appending the audit trail is best-effort.
type ChangeLogger interface {
	Log(ctx context.Context, taskID, action string, payload any)
}
