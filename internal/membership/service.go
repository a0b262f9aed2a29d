package membership

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/bookhive/lending-service/internal/errs"
	"github.com/bookhive/lending-service/internal/model"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// UserStore is the persistence commit for the membership snapshot.
type UserStore interface {
	SaveUsers(ctx context.Context, users []model.User) error
}

// Service owns the member registry. Emails are unique case-insensitively;
// user IDs are generated once and never change.
type Service struct {
	mu    sync.Mutex
	users []model.User
	store UserStore
	log   *zap.Logger
}

func NewService(store UserStore, users []model.User, log *zap.Logger) *Service {
	return &Service{
		users: users,
		store: store,
		log:   log.Named("membership"),
	}
}

func (s *Service) AddUser(ctx context.Context, user model.User) (model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.findByEmailLocked(user.Email); ok {
		return model.User{}, errs.ErrConflict
	}

	user.UserID = uuid.New().String()
	user.RegistrationDate = model.NewDate(time.Now())
	if user.Status == "" {
		user.Status = model.MembershipActive
	}
	s.users = append(s.users, user)
	s.commit(ctx)

	s.log.Info("user registered", zap.String("userId", user.UserID), zap.String("email", user.Email))
	return user, nil
}

func (s *Service) ListUsers(ctx context.Context) []model.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.User, len(s.users))
	copy(out, s.users)
	return out
}

func (s *Service) FindUserByID(ctx context.Context, userID string) (model.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.users {
		if s.users[i].UserID == userID {
			return s.users[i], true
		}
	}
	return model.User{}, false
}

func (s *Service) FindUserByEmail(ctx context.Context, email string) (model.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i, ok := s.findByEmailLocked(email); ok {
		return s.users[i], true
	}
	return model.User{}, false
}

// UpdateUser replaces a user's mutable fields. UserID and RegistrationDate are
// immutable; an email change is re-checked for uniqueness.
func (s *Service) UpdateUser(ctx context.Context, user model.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i := range s.users {
		if s.users[i].UserID == user.UserID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return errs.ErrUserNotFound
	}

	if j, ok := s.findByEmailLocked(user.Email); ok && j != idx {
		return errs.ErrConflict
	}

	existing := &s.users[idx]
	existing.FirstName = user.FirstName
	existing.LastName = user.LastName
	existing.Email = user.Email
	existing.Phone = user.Phone
	existing.Address = user.Address
	if user.Status != "" {
		existing.Status = user.Status
	}

	s.commit(ctx)
	return nil
}

func (s *Service) DeleteUserByID(ctx context.Context, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.users {
		if s.users[i].UserID == userID {
			s.users = append(s.users[:i], s.users[i+1:]...)
			s.commit(ctx)
			s.log.Info("user deleted", zap.String("userId", userID))
			return nil
		}
	}
	return errs.ErrUserNotFound
}

func (s *Service) findByEmailLocked(email string) (int, bool) {
	for i := range s.users {
		if strings.EqualFold(s.users[i].Email, email) {
			return i, true
		}
	}
	return 0, false
}

func (s *Service) commit(ctx context.Context) {
	if err := s.store.SaveUsers(ctx, s.users); err != nil {
		s.log.Warn("membership commit failed", zap.Error(err))
	}
}
