package milestone

import (
	"time"

	"tatvaops/internal/domain"
)

// Draft is the uncommitted copy of a milestone's editable fields, held
// while its card is expanded. It lives only in memory and is dropped on
// collapse or reset.
type Draft struct {
	Description string
	Amount      int64
	StartDate   time.Time
	EndDate     time.Time
}

// editorState is one project's transient editing session: the single
// expanded milestone, drafts keyed by milestone number, and the dirty/
// saving/saved indicator sets.
type editorState struct {
	expanded int // milestone number, 0 = none
	drafts   map[int]Draft
	dirty    map[int]bool
	saving   map[int]bool
	saved    map[int]bool
}

func newEditorState() *editorState {
	return &editorState{
		drafts: make(map[int]Draft),
		dirty:  make(map[int]bool),
		saving: make(map[int]bool),
		saved:  make(map[int]bool),
	}
}

func draftFrom(m domain.Milestone) Draft {
	return Draft{
		Description: m.Description,
		Amount:      m.Amount,
		StartDate:   m.StartDate,
		EndDate:     m.EndDate,
	}
}
