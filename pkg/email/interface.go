package email

import "context"

// ISender delivers plain-text messages.
type ISender interface {
	Send(ctx context.Context, msg Message) error
}
