// Package ledger holds every user, investment and VIP queue record for the
// lifetime of the process. Nothing is persisted: a restart starts empty.
package ledger

import (
	"sync"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"investledger/internal/models"
)

var (
	DefaultExchangeRate  = decimal.RequireFromString("57.5")
	DefaultReferralBonus = decimal.NewFromInt(10)
)

// Store is the single source of truth for ledger state. All operations take
// the one mutex, so each is atomic with respect to every other.
type Store struct {
	mu          sync.RWMutex
	users       map[int64]*models.User
	byCode      map[string]int64
	investments map[string]*models.Investment
	vipQueue    []models.VIPEntry
	referrals   map[int64][]models.ReferralTransaction
	credits     map[int64][]models.Credit

	admins        map[int64]struct{}
	exchangeRate  decimal.Decimal
	referralBonus decimal.Decimal
	now           func() time.Time
	log           *zap.Logger
}

type Option func(*Store)

func WithLogger(l *zap.Logger) Option {
	return func(s *Store) { s.log = l }
}

func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

func WithAdmins(ids ...int64) Option {
	return func(s *Store) {
		for _, id := range ids {
			s.admins[id] = struct{}{}
		}
	}
}

// WithExchangeRate sets how many local currency units one USD buys.
func WithExchangeRate(rate decimal.Decimal) Option {
	return func(s *Store) { s.exchangeRate = rate }
}

func WithReferralBonus(bonus decimal.Decimal) Option {
	return func(s *Store) { s.referralBonus = bonus }
}

func New(opts ...Option) *Store {
	s := &Store{
		users:         make(map[int64]*models.User),
		byCode:        make(map[string]int64),
		investments:   make(map[string]*models.Investment),
		referrals:     make(map[int64][]models.ReferralTransaction),
		credits:       make(map[int64][]models.Credit),
		admins:        make(map[int64]struct{}),
		exchangeRate:  DefaultExchangeRate,
		referralBonus: DefaultReferralBonus,
		now:           time.Now,
		log:           zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// GetOrCreateUser returns the user with the given id, creating it with zero
// balances on first contact. Non-empty profile fields overwrite stored ones.
func (s *Store) GetOrCreateUser(id int64, p models.Profile) models.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, created := s.ensureUser(id)
	if p.Name != "" {
		u.Name = p.Name
	}
	if p.Username != "" {
		u.Username = p.Username
	}
	if p.Phone != "" {
		u.Phone = p.Phone
	}
	u.LastActive = s.now()

	if created {
		s.log.Info("User created", zap.Int64("userID", id), zap.String("referralCode", u.ReferralCode))
	}
	return u.Clone()
}

// ensureUser must be called with s.mu held for writing.
func (s *Store) ensureUser(id int64) (*models.User, bool) {
	if u, ok := s.users[id]; ok {
		return u, false
	}
	now := s.now()
	u := &models.User{
		ID:           id,
		ReferralCode: ReferralCode(id),
		CreatedAt:    now,
		LastActive:   now,
	}
	s.users[id] = u
	s.byCode[u.ReferralCode] = id
	return u, true
}

func (s *Store) User(id int64) (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[id]
	if !ok {
		return models.User{}, false
	}
	return u.Clone(), true
}

func (s *Store) IsAdmin(id int64) bool {
	_, ok := s.admins[id]
	return ok
}

// Summary aggregates the whole store for the admin panel.
func (s *Store) Summary() models.Summary {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sum := models.Summary{
		Users:        len(s.users),
		Investments:  len(s.investments),
		VIPs:         len(s.vipQueue),
		LastVIPDaily: s.lastVIPDailyPayout(),
	}
	for _, u := range s.users {
		if u.IsAgent {
			sum.Agents++
		}
		if u.IsManager {
			sum.Managers++
		}
		sum.TotalInvested = sum.TotalInvested.Add(u.TotalInvested)
		sum.TotalEarned = sum.TotalEarned.Add(u.TotalEarned)
	}
	return sum
}
