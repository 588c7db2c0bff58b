package http

import (
	"context"
	"errors"

	"vehicle-rental-backend/internal/domain"
)

type contextKey string

const (
	contextKeyUserID contextKey = "user-id"
	contextKeyRole   contextKey = "role"
)

var errNoUserInContext = errors.New("no authenticated user in context")

// GetUserIDFromContext extracts the authenticated user's ID, injected by the
// auth middleware.
func GetUserIDFromContext(ctx context.Context) (int64, error) {
	userID, ok := ctx.Value(contextKeyUserID).(int64)
	if !ok || userID == 0 {
		return 0, errNoUserInContext
	}
	return userID, nil
}

// GetRoleFromContext extracts the authenticated user's role.
func GetRoleFromContext(ctx context.Context) (domain.Role, error) {
	role, ok := ctx.Value(contextKeyRole).(domain.Role)
	if !ok || role == "" {
		return "", errNoUserInContext
	}
	return role, nil
}

func withUser(ctx context.Context, userID int64, role domain.Role) context.Context {
	ctx = context.WithValue(ctx, contextKeyUserID, userID)
	return context.WithValue(ctx, contextKeyRole, role)
}
