package store

import (
	"fmt"
	"time"

	"github.com/Sorin-PSP/EatWise-sub000/models"

	"github.com/lucsky/cuid"
)

// State tracks a store's initialization. There is deliberately no "syncing"
// state: overlapping loads race and the last one to finish wins, matching
// the last-writer-wins policy of the mutations.
type State int

const (
	StateUninitialized State = iota
	StateLoading
	StateReady
)

func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateLoading:
		return "loading"
	case StateReady:
		return "ready"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// newLocalID mints an identifier for records created while the backend was
// unreachable or the user signed out.
func newLocalID() string {
	return fmt.Sprintf("%s%d-%s", models.LocalIDPrefix, time.Now().UnixMilli(), cuid.Slug())
}
