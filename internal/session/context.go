package session

import "context"

type contextKey string

const saveReasonKey contextKey = "save_reason"

// Save reasons attached to the context passed to Saver.Save.
const (
	ReasonExplicit = "explicit"
	ReasonQuit     = "quit"
)

// WithSaveReason labels the save carried by ctx.
func WithSaveReason(ctx context.Context, reason string) context.Context {
	return context.WithValue(ctx, saveReasonKey, reason)
}

// SaveReasonFrom extracts the save label from ctx.
func SaveReasonFrom(ctx context.Context) string {
	if v, ok := ctx.Value(saveReasonKey).(string); ok {
		return v
	}
	return "unknown"
}
