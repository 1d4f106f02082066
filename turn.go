package scout

import "time"

// Turn is one entry in a conversation transcript. The transcript a loop
// run accumulates is an append-only []Turn owned by that run; nothing
// mutates earlier turns, and the transcript is discarded when the run
// returns.
type Turn struct {
	Role      Role
	Content   string
	Timestamp time.Time
}
