// Package session holds the small persisted per-user flags the dashboard
// keeps across reloads: active role, selected vendor, inspection status
// and the milestones-generated gate.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"tatvaops/internal/domain"
)

var ErrInvalidRole = errors.New("invalid role")

// Repository defines the interface for flag persistence
type Repository interface {
	Get(ctx context.Context, userID int64, key string) (string, error)
	GetAll(ctx context.Context, userID int64) (map[string]string, error)
	Set(ctx context.Context, userID int64, key, value string) error
	Delete(ctx context.Context, userID int64, key string) error
}

// Service caches flags in memory and writes every mutation through to the
// repository immediately, so a process restart behaves like a page reload.
type Service struct {
	repo Repository

	mu    sync.RWMutex
	cache map[int64]map[string]string
}

func NewService(repo Repository) *Service {
	return &Service{
		repo:  repo,
		cache: make(map[int64]map[string]string),
	}
}

// Flags is the full snapshot handed to the dashboard.
type Flags struct {
	CurrentRole         domain.UserRole         `json:"current_role"`
	SelectedVendorID    *int64                  `json:"selected_vendor_id,omitempty"`
	InspectionStatus    domain.InspectionStatus `json:"inspection_status"`
	MilestonesGenerated bool                    `json:"milestones_generated"`
}

func (s *Service) Snapshot(ctx context.Context, userID int64) (*Flags, error) {
	if err := s.warm(ctx, userID); err != nil {
		return nil, err
	}

	flags := &Flags{CurrentRole: domain.RoleCustomer}

	if raw := s.cached(userID, domain.FlagCurrentRole); raw != "" {
		var role string
		if json.Unmarshal([]byte(raw), &role) == nil && role != "" {
			flags.CurrentRole = domain.UserRole(role)
		}
	}
	if raw := s.cached(userID, domain.FlagSelectedVendor); raw != "" {
		var id int64
		if json.Unmarshal([]byte(raw), &id) == nil && id > 0 {
			flags.SelectedVendorID = &id
		}
	}
	if raw := s.cached(userID, domain.FlagInspectionStatus); raw != "" {
		_ = json.Unmarshal([]byte(raw), &flags.InspectionStatus)
	}
	if raw := s.cached(userID, domain.FlagMilestonesGenerated); raw != "" {
		_ = json.Unmarshal([]byte(raw), &flags.MilestonesGenerated)
	}

	return flags, nil
}

func (s *Service) CurrentRole(ctx context.Context, userID int64) (domain.UserRole, error) {
	flags, err := s.Snapshot(ctx, userID)
	if err != nil {
		return "", err
	}
	return flags.CurrentRole, nil
}

func (s *Service) SetCurrentRole(ctx context.Context, userID int64, role domain.UserRole) error {
	if role != domain.RoleCustomer && role != domain.RoleVendor {
		return ErrInvalidRole
	}
	return s.write(ctx, userID, domain.FlagCurrentRole, string(role))
}

func (s *Service) SelectedVendorID(ctx context.Context, userID int64) (*int64, error) {
	flags, err := s.Snapshot(ctx, userID)
	if err != nil {
		return nil, err
	}
	return flags.SelectedVendorID, nil
}

func (s *Service) SetSelectedVendor(ctx context.Context, userID, vendorID int64) error {
	return s.write(ctx, userID, domain.FlagSelectedVendor, vendorID)
}

func (s *Service) ClearSelectedVendor(ctx context.Context, userID int64) error {
	if err := s.repo.Delete(ctx, userID, domain.FlagSelectedVendor); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if flags, ok := s.cache[userID]; ok {
		delete(flags, domain.FlagSelectedVendor)
	}
	return nil
}

func (s *Service) InspectionStatus(ctx context.Context, userID int64) (domain.InspectionStatus, error) {
	flags, err := s.Snapshot(ctx, userID)
	if err != nil {
		return domain.InspectionStatus{}, err
	}
	return flags.InspectionStatus, nil
}

func (s *Service) MarkInspectionCompleted(ctx context.Context, userID int64, date *time.Time) error {
	when := time.Now().UTC()
	if date != nil {
		when = *date
	}
	return s.write(ctx, userID, domain.FlagInspectionStatus, domain.InspectionStatus{
		Completed:      true,
		CompletionDate: &when,
	})
}

func (s *Service) MilestonesGenerated(ctx context.Context, userID int64) (bool, error) {
	flags, err := s.Snapshot(ctx, userID)
	if err != nil {
		return false, err
	}
	return flags.MilestonesGenerated, nil
}

func (s *Service) SetMilestonesGenerated(ctx context.Context, userID int64, generated bool) error {
	return s.write(ctx, userID, domain.FlagMilestonesGenerated, generated)
}

// write marshals the value, persists it and only then updates the cache.
func (s *Service) write(ctx context.Context, userID int64, key string, value interface{}) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	if err := s.repo.Set(ctx, userID, key, string(raw)); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cache[userID] == nil {
		s.cache[userID] = make(map[string]string)
	}
	s.cache[userID][key] = string(raw)
	return nil
}

func (s *Service) warm(ctx context.Context, userID int64) error {
	s.mu.RLock()
	_, ok := s.cache[userID]
	s.mu.RUnlock()
	if ok {
		return nil
	}

	stored, err := s.repo.GetAll(ctx, userID)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.cache[userID]; !ok {
		s.cache[userID] = stored
	}
	return nil
}

func (s *Service) cached(userID int64, key string) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cache[userID][key]
}
