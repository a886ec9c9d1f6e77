package ledger

import (
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"investledger/internal/models"
)

func TestGetOrCreateUser(t *testing.T) {
	clock, advance := fixedClock(time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC))
	s := New(WithClock(clock))

	u := s.GetOrCreateUser(42, models.Profile{Name: "Ana", Username: "ana"})
	assert.Equal(t, int64(42), u.ID)
	assert.Equal(t, "Ana", u.Name)
	assert.Equal(t, ReferralCode(42), u.ReferralCode)
	assert.True(t, u.Balance.IsZero())
	assert.True(t, u.TotalInvested.IsZero())
	assert.Empty(t, u.Referrals)

	advance(time.Hour)
	again := s.GetOrCreateUser(42, models.Profile{Phone: "+100"})
	assert.Equal(t, "Ana", again.Name, "empty profile fields keep stored values")
	assert.Equal(t, "+100", again.Phone)
	assert.Equal(t, u.CreatedAt, again.CreatedAt)
	assert.Equal(t, clock(), again.LastActive)
}

func TestGetOrCreateUserConcurrent(t *testing.T) {
	s := New()

	var wg sync.WaitGroup
	codes := make([]string, 50)
	for i := range codes {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			codes[i] = s.GetOrCreateUser(7, models.Profile{}).ReferralCode
		}(i)
	}
	wg.Wait()

	for _, c := range codes {
		assert.Equal(t, ReferralCode(7), c)
	}
	assert.Equal(t, 1, s.Summary().Users)
}

func TestSnapshotsAreIsolated(t *testing.T) {
	s := New()
	register(s, 1, 2)
	require.True(t, s.AttributeReferral(ReferralCode(1), 2))

	u, ok := s.User(1)
	require.True(t, ok)
	u.Referrals[0] = 99
	u.Balance = decimal.NewFromInt(1000)

	fresh, _ := s.User(1)
	assert.Equal(t, []int64{2}, fresh.Referrals)
	assert.True(t, fresh.Balance.IsZero())

	invitee, _ := s.User(2)
	*invitee.ReferredBy = 55
	invitee, _ = s.User(2)
	assert.Equal(t, int64(1), *invitee.ReferredBy)
}

func TestUserUnknown(t *testing.T) {
	s := New()
	_, ok := s.User(1)
	assert.False(t, ok)
}

func TestSummary(t *testing.T) {
	s := newTestStore()
	register(s, 1, 2, 3)

	inv, err := s.CreateInvestment(1, "2")
	require.NoError(t, err)
	_, err = s.SetInvestmentStatus(adminID, inv.ID, models.StatusActive)
	require.NoError(t, err)
	_, err = s.CreateInvestment(2, "1")
	require.NoError(t, err)
	_, err = s.PromoteAgent(adminID, 3)
	require.NoError(t, err)
	s.EnqueueVIP(2, decimal.NewFromInt(1000))

	sum := s.Summary()
	assert.Equal(t, 3, sum.Users)
	assert.Equal(t, 2, sum.Investments)
	assert.Equal(t, 1, sum.VIPs)
	assert.Equal(t, 1, sum.Agents)
	assert.Equal(t, 0, sum.Managers)
	assert.True(t, sum.TotalInvested.Equal(decimal.NewFromInt(50)))
	assert.True(t, sum.TotalEarned.IsZero())
	assert.True(t, sum.LastVIPDaily.Equal(decimal.NewFromInt(700)))
}
