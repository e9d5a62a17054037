package milestone

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"sync"
	"time"

	"gorm.io/gorm"

	"tatvaops/internal/domain"
)

// Service owns the persisted schedules plus the transient per-project
// editor state. Handlers run on many goroutines, so all editor access
// goes through the mutex; the original dashboard had a single UI thread
// and got this ordering for free.
type Service struct {
	repo     Repository
	observer ProgressObserver

	saveDelay time.Duration
	savedTTL  time.Duration

	mu      sync.Mutex
	editors map[int64]*editorState
}

func NewService(repo Repository, observer ProgressObserver, saveDelay, savedTTL time.Duration) *Service {
	return &Service{
		repo:      repo,
		observer:  observer,
		saveDelay: saveDelay,
		savedTTL:  savedTTL,
		editors:   make(map[int64]*editorState),
	}
}

// MilestoneView is a milestone plus its editor flags, in display order.
type MilestoneView struct {
	Milestone domain.Milestone `json:"milestone"`
	Expanded  bool             `json:"expanded"`
	Dirty     bool             `json:"dirty"`
	Saving    bool             `json:"saving"`
	Saved     bool             `json:"saved"`
	Draft     *Draft           `json:"draft,omitempty"`
}

// Schedule returns the project's milestones ordered by display position.
func (s *Service) Schedule(ctx context.Context, projectID int64) ([]domain.Milestone, error) {
	return s.repo.GetSchedule(ctx, projectID)
}

// State returns the schedule annotated with the current editor flags.
func (s *Service) State(ctx context.Context, projectID int64) ([]MilestoneView, error) {
	ms, err := s.repo.GetSchedule(ctx, projectID)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	st := s.editor(projectID)

	out := make([]MilestoneView, 0, len(ms))
	for _, m := range ms {
		v := MilestoneView{
			Milestone: m,
			Expanded:  st.expanded == m.Number,
			Dirty:     st.dirty[m.Number],
			Saving:    st.saving[m.Number],
			Saved:     st.saved[m.Number],
		}
		if d, ok := st.drafts[m.Number]; ok && v.Expanded {
			draft := d
			v.Draft = &draft
		}
		out = append(out, v)
	}
	return out, nil
}

// Expand opens the milestone's card and seeds a draft from the saved
// values. At most one milestone per project is expanded: expanding a
// second one collapses the first and drops its draft.
func (s *Service) Expand(ctx context.Context, projectID int64, number int) error {
	m, err := s.repo.GetByNumber(ctx, projectID, number)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	st := s.editor(projectID)

	if st.expanded != 0 && st.expanded != number {
		s.collapseLocked(st, st.expanded)
	}

	st.expanded = number
	if _, ok := st.drafts[number]; !ok {
		st.drafts[number] = draftFrom(*m)
	}
	return nil
}

// Collapse closes the milestone's card, discarding its draft.
func (s *Service) Collapse(projectID int64, number int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	st := s.editor(projectID)
	if st.expanded == number {
		s.collapseLocked(st, number)
	}
}

func (s *Service) collapseLocked(st *editorState, number int) {
	st.expanded = 0
	if !st.saving[number] {
		delete(st.drafts, number)
		delete(st.dirty, number)
	}
	delete(st.saved, number)
}

// EditField mutates the expanded milestone's draft. The end date is never
// edited directly: moving the start date shifts the end date so the
// duration is preserved, matching the read-only end-date pill.
func (s *Service) EditField(projectID int64, number int, field, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	st := s.editor(projectID)

	if st.expanded != number {
		return ErrNoDraft
	}
	d, ok := st.drafts[number]
	if !ok {
		return ErrNoDraft
	}

	switch strings.ToLower(field) {
	case "description":
		d.Description = value
	case "amount":
		amount, err := strconv.ParseInt(strings.ReplaceAll(value, ",", ""), 10, 64)
		if err != nil || amount < 0 {
			return ErrValidation
		}
		d.Amount = amount
	case "start_date":
		start, err := time.Parse("2006-01-02", value)
		if err != nil {
			return ErrValidation
		}
		duration := int(d.EndDate.Sub(d.StartDate).Hours()/24) + 1
		d.StartDate = day(start)
		d.EndDate = d.StartDate.AddDate(0, 0, duration-1)
	default:
		return ErrValidation
	}

	st.drafts[number] = d
	st.dirty[number] = true
	delete(st.saved, number)
	return nil
}

// Save merges the milestone's draft into the record through the
// repository. The write runs asynchronously after the configured delay;
// the returned channel reports the outcome. A second save for the same
// milestone while one is in flight is rejected with ErrSaveInFlight. On
// failure the draft and dirty flag are left intact.
func (s *Service) Save(ctx context.Context, projectID int64, number int) (<-chan error, error) {
	s.mu.Lock()
	st := s.editor(projectID)

	if st.saving[number] {
		s.mu.Unlock()
		return nil, ErrSaveInFlight
	}
	d, ok := st.drafts[number]
	if !ok {
		s.mu.Unlock()
		return nil, ErrNoDraft
	}
	if !st.dirty[number] {
		s.mu.Unlock()
		return nil, ErrNoDraft
	}

	st.saving[number] = true
	s.mu.Unlock()

	done := make(chan error, 1)
	go func() {
		if s.saveDelay > 0 {
			select {
			case <-time.After(s.saveDelay):
			case <-ctx.Done():
				s.finishSave(projectID, number, nil)
				done <- ErrSaveFailed
				return
			}
		}

		patch := FieldPatch{
			Description: d.Description,
			Amount:      d.Amount,
			StartDate:   d.StartDate,
			EndDate:     d.EndDate,
		}
		if err := s.repo.UpdateFields(context.Background(), projectID, number, patch); err != nil {
			s.finishSave(projectID, number, nil)
			done <- ErrSaveFailed
			return
		}

		s.finishSave(projectID, number, &d)
		done <- nil
	}()

	return done, nil
}

// finishSave clears the in-flight flag; merged is the draft snapshot that
// was written, or nil on failure. Edits made while the save was in flight
// keep the milestone dirty instead of being silently dropped.
func (s *Service) finishSave(projectID int64, number int, merged *Draft) {
	s.mu.Lock()
	defer s.mu.Unlock()
	st := s.editor(projectID)

	delete(st.saving, number)
	if merged == nil {
		return
	}

	if current, ok := st.drafts[number]; !ok || current == *merged {
		delete(st.dirty, number)
	}
	st.saved[number] = true

	if s.savedTTL > 0 {
		time.AfterFunc(s.savedTTL, func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			delete(s.editor(projectID).saved, number)
		})
	}
}

// Reset reverts the milestone's draft to the last-saved values and clears
// the dirty flag. With nothing dirty it is a no-op.
func (s *Service) Reset(ctx context.Context, projectID int64, number int) error {
	s.mu.Lock()
	st := s.editor(projectID)
	if !st.dirty[number] {
		s.mu.Unlock()
		return nil
	}
	if st.saving[number] {
		s.mu.Unlock()
		return ErrSaveInFlight
	}
	s.mu.Unlock()

	m, err := s.repo.GetByNumber(ctx, projectID, number)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	st = s.editor(projectID)
	st.drafts[number] = draftFrom(*m)
	delete(st.dirty, number)
	delete(st.saved, number)
	return nil
}

// Move reorders the schedule's display positions. Milestone numbers are
// stable identity and are never renumbered here.
func (s *Service) Move(ctx context.Context, projectID int64, fromIndex, toIndex int) ([]domain.Milestone, error) {
	ms, err := s.repo.GetSchedule(ctx, projectID)
	if err != nil {
		return nil, err
	}

	reordered, err := Reorder(ms, fromIndex, toIndex)
	if err != nil {
		return nil, err
	}

	order := make([]int, 0, len(reordered))
	for _, m := range reordered {
		order = append(order, m.Number)
	}
	if err := s.repo.UpdatePositions(ctx, projectID, order); err != nil {
		return nil, err
	}
	return reordered, nil
}

// AddInput is a manually appended milestone.
type AddInput struct {
	Title        string
	Description  string
	Amount       *int64
	DurationDays int // optional, defaults to 7
}

// Add appends a milestone after the current last one: it starts the day
// after the last end date, takes the next number, and begins Pending.
func (s *Service) Add(ctx context.Context, projectID int64, in AddInput) (*domain.Milestone, error) {
	if strings.TrimSpace(in.Title) == "" || in.Amount == nil {
		return nil, ErrValidation
	}
	if *in.Amount < 0 {
		return nil, ErrValidation
	}

	duration := in.DurationDays
	if duration <= 0 {
		duration = 7
	}

	ms, err := s.repo.GetSchedule(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if len(ms) == 0 {
		return nil, ErrNotFound
	}

	var last domain.Milestone
	maxNumber := 0
	for _, m := range ms {
		if m.Number > maxNumber {
			maxNumber = m.Number
		}
		if m.Position > last.Position {
			last = m
		}
	}

	start := last.EndDate.AddDate(0, 0, 1)
	m := &domain.Milestone{
		ProjectID:   projectID,
		Number:      maxNumber + 1,
		Position:    len(ms) + 1,
		Title:       in.Title,
		Description: in.Description,
		Status:      domain.MilestonePending,
		Amount:      *in.Amount,
		StartDate:   start,
		EndDate:     start.AddDate(0, 0, duration-1),
	}
	if err := s.repo.Create(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

// Transition moves one milestone's status forward. Regressions are
// rejected, and at most one milestone per project may be InProgress.
// Accepted transitions are reported to the progress observer.
func (s *Service) Transition(ctx context.Context, projectID int64, number int, newStatus domain.MilestoneStatus) error {
	if !newStatus.Valid() {
		return ErrInvalidStatusTransition
	}

	prev, err := s.repo.GetSchedule(ctx, projectID)
	if err != nil {
		return err
	}

	var target *domain.Milestone
	for i := range prev {
		if prev[i].Number == number {
			target = &prev[i]
			continue
		}
		if newStatus == domain.MilestoneInProgress && prev[i].Status == domain.MilestoneInProgress {
			return ErrInvalidStatusTransition
		}
	}
	if target == nil {
		return ErrNotFound
	}
	if !target.Status.CanTransitionTo(newStatus) {
		return ErrInvalidStatusTransition
	}

	if err := s.repo.UpdateStatus(ctx, projectID, number, newStatus); err != nil {
		return err
	}

	if s.observer != nil {
		curr := make([]domain.Milestone, len(prev))
		copy(curr, prev)
		for i := range curr {
			if curr[i].Number == number {
				curr[i].Status = newStatus
			}
		}
		s.observer.Observe(projectID, prev, curr)
	}
	return nil
}

func (s *Service) editor(projectID int64) *editorState {
	st, ok := s.editors[projectID]
	if !ok {
		st = newEditorState()
		s.editors[projectID] = st
	}
	return st
}
