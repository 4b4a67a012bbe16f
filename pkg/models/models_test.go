package models

import (
	"math"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestWalletAdd(t *testing.T) {
	w := &Wallet{}
	assert.NoError(t, w.Add(DEPOSITED, 500))
	assert.NoError(t, w.Add(WINNING, 300))
	assert.NoError(t, w.Add(BONUS, 20))
	assert.NoError(t, w.Add(WINNING, -100))

	assert.Equal(t, int64(500), w.DepositedBalance)
	assert.Equal(t, int64(200), w.WinningBalance)
	assert.Equal(t, int64(20), w.BonusBalance)
	assert.Equal(t, int64(720), w.WalletBalance)
	assert.True(t, w.Consistent())

	assert.NoError(t, w.Add(SubBalance("cashback"), 50))
	assert.Equal(t, int64(720), w.WalletBalance)
}

func TestWalletAddOverflow(t *testing.T) {
	w := &Wallet{BonusBalance: math.MaxInt64 - 10, WalletBalance: math.MaxInt64 - 10}
	assert.ErrorIs(t, w.Add(BONUS, 11), ErrBalanceOverflow)
	assert.Equal(t, int64(math.MaxInt64-10), w.BonusBalance)
	assert.Equal(t, int64(math.MaxInt64-10), w.WalletBalance)

	w = &Wallet{DepositedBalance: 5, WinningBalance: math.MaxInt64 - 5, WalletBalance: math.MaxInt64}
	assert.ErrorIs(t, w.Add(DEPOSITED, 1), ErrBalanceOverflow)
	assert.Equal(t, int64(5), w.DepositedBalance)

	assert.NoError(t, w.Add(DEPOSITED, -5))
	assert.Equal(t, int64(math.MaxInt64-5), w.WalletBalance)
}

func TestWalletConsistent(t *testing.T) {
	assert.False(t, (&Wallet{WalletBalance: 10, DepositedBalance: 5}).Consistent())
	assert.False(t, (&Wallet{WalletBalance: -5, DepositedBalance: -5}).Consistent())
	assert.True(t, (&Wallet{WalletBalance: 15, DepositedBalance: 5, BonusBalance: 10}).Consistent())
}

func TestSubBalance(t *testing.T) {
	assert.True(t, WINNING.Valid())
	assert.False(t, SubBalance("").Valid())
	assert.Equal(t, "deposited_balance", DEPOSITED.Attribute())
}

func TestMatchType(t *testing.T) {
	assert.Equal(t, 1, SOLO.TeamSize())
	assert.Equal(t, 2, DUO.TeamSize())
	assert.Equal(t, 4, SQUAD.TeamSize())
	assert.False(t, SOLO.IsTeam())
	assert.True(t, SQUAD.IsTeam())
}

func TestTournamentLookups(t *testing.T) {
	tr := &Tournament{
		Prize1: 100, Prize2: 50, Prize3: 25,
		Participants: []Participant{
			{ParticipantId: "a", SlotNumber: 1},
			{ParticipantId: "b", SlotNumber: 2},
			{ParticipantId: "c", SlotNumber: 1},
		},
	}

	members := tr.SlotMembers("1")
	assert.Len(t, members, 2)
	assert.Equal(t, "a", members[0].ParticipantId)
	assert.Equal(t, "c", members[1].ParticipantId)
	assert.Equal(t, 2, tr.ParticipantIndex("c"))
	assert.Equal(t, -1, tr.ParticipantIndex("z"))
	assert.Equal(t, int64(50), tr.Prize(2))
	assert.Equal(t, int64(0), tr.Prize(4))
}

func TestAmounts(t *testing.T) {
	t.Run("To Minor", func(t *testing.T) {
		minor, err := ToMinor(decimal.RequireFromString("12.50"))
		assert.NoError(t, err)
		assert.Equal(t, int64(1250), minor)
	})

	t.Run("Fractional Paise", func(t *testing.T) {
		_, err := ToMinor(decimal.RequireFromString("0.005"))
		assert.ErrorIs(t, err, ErrFractionalAmount)
	})

	t.Run("Out Of Range", func(t *testing.T) {
		for _, in := range []string{"100000000000000000000", "92233720368547758.08", "-100000000000.01"} {
			_, err := ToMinor(decimal.RequireFromString(in))
			assert.ErrorIs(t, err, ErrAmountOutOfRange, in)
		}

		minor, err := ToMinor(decimal.RequireFromString("100000000000"))
		assert.NoError(t, err)
		assert.Equal(t, MaxAmount, minor)
	})

	t.Run("Format", func(t *testing.T) {
		assert.Equal(t, "1000.00", FormatAmount(100000))
		assert.Equal(t, "0.05", FormatAmount(5))
		assert.True(t, FromMinor(1250).Equal(decimal.RequireFromString("12.5")))
	})
}
