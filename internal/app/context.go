package app

import (
	"context"

	"github.com/google/uuid"
)

type dispatchKey struct{}

// dispatchInfo identifies one Dispatch call and its position in a chain of
// nested dispatches.
type dispatchInfo struct {
	id       string
	parentID string
	depth    int
}

// enterDispatch derives the context for a new dispatch. Depth is 0 for a
// top-level call and grows by one per nested Dispatch.
func enterDispatch(ctx context.Context) (context.Context, dispatchInfo) {
	info := dispatchInfo{id: uuid.NewString()}
	if parent, ok := ctx.Value(dispatchKey{}).(dispatchInfo); ok {
		info.parentID = parent.id
		info.depth = parent.depth + 1
	}
	return context.WithValue(ctx, dispatchKey{}, info), info
}

// DispatchID returns the id of the dispatch ctx belongs to, if any.
// Handlers receive a context carrying it.
func DispatchID(ctx context.Context) (string, bool) {
	info, ok := ctx.Value(dispatchKey{}).(dispatchInfo)
	return info.id, ok
}

// DispatchDepth returns the nesting depth of the dispatch ctx belongs to.
// It is -1 outside a dispatch.
func DispatchDepth(ctx context.Context) int {
	if info, ok := ctx.Value(dispatchKey{}).(dispatchInfo); ok {
		return info.depth
	}
	return -1
}
