package settlement

import (
	"testing"

	"github.com/chris/arena-ledger/pkg/models"
	"github.com/stretchr/testify/assert"
)

func TestComputeEarnings(t *testing.T) {
	solo := &models.Tournament{
		MatchType:    models.SOLO,
		PerKillPrize: 10,
		Prize1:       100, Prize2: 50, Prize3: 25,
		Participants: []models.Participant{
			{ParticipantId: "p1", SlotNumber: 1, Kills: 3},
			{ParticipantId: "p2", SlotNumber: 2, Kills: 0},
		},
	}

	testCases := []struct {
		name        string
		tournament  *models.Tournament
		participant models.Participant
		winners     models.Winners
		expected    int64
	}{
		{
			name:        "Kills Only",
			tournament:  solo,
			participant: models.Participant{ParticipantId: "p1", Kills: 3},
			winners:     models.Winners{First: "p2"},
			expected:    30,
		},
		{
			name:        "Solo Placement Plus Kills",
			tournament:  solo,
			participant: models.Participant{ParticipantId: "p1", Kills: 3},
			winners:     models.Winners{First: "p2", Second: "p1"},
			expected:    80,
		},
		{
			name:        "Solo Ignores Slot References",
			tournament:  solo,
			participant: models.Participant{ParticipantId: "p1", SlotNumber: 1},
			winners:     models.Winners{First: "1"},
			expected:    0,
		},
		{
			name: "Duo Split",
			tournament: &models.Tournament{
				MatchType: models.DUO,
				Prize1:    100,
				Participants: []models.Participant{
					{ParticipantId: "a", SlotNumber: 1},
					{ParticipantId: "b", SlotNumber: 1},
				},
			},
			participant: models.Participant{ParticipantId: "b", SlotNumber: 1},
			winners:     models.Winners{First: "1"},
			expected:    50,
		},
		{
			name: "Odd Split Remainder Goes First",
			tournament: &models.Tournament{
				MatchType: models.SQUAD,
				Prize3:    101,
				Participants: []models.Participant{
					{ParticipantId: "a", SlotNumber: 4},
					{ParticipantId: "b", SlotNumber: 4},
				},
			},
			participant: models.Participant{ParticipantId: "a", SlotNumber: 4},
			winners:     models.Winners{First: "1", Third: "4"},
			expected:    51,
		},
		{
			name: "Split By Current Occupancy",
			tournament: &models.Tournament{
				MatchType: models.SQUAD,
				Prize1:    90,
				Participants: []models.Participant{
					{ParticipantId: "a", SlotNumber: 2},
					{ParticipantId: "b", SlotNumber: 2},
					{ParticipantId: "c", SlotNumber: 2},
				},
			},
			participant: models.Participant{ParticipantId: "c", SlotNumber: 2},
			winners:     models.Winners{First: "2"},
			expected:    30,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, ComputeEarnings(tc.participant, tc.tournament, tc.winners))
		})
	}
}

func TestSplitShareSumsToPrize(t *testing.T) {
	members := []models.Participant{{ParticipantId: "a"}, {ParticipantId: "b"}, {ParticipantId: "c"}}
	var total int64
	for _, m := range members {
		total += splitShare(100, members, m.ParticipantId)
	}
	assert.Equal(t, int64(100), total)
	assert.Equal(t, int64(0), splitShare(100, members, "z"))
	assert.Equal(t, int64(0), splitShare(100, nil, "a"))
}

func TestValidateWinners(t *testing.T) {
	duo := &models.Tournament{
		MatchType: models.DUO,
		Participants: []models.Participant{
			{ParticipantId: "a", SlotNumber: 1},
			{ParticipantId: "b", SlotNumber: 2},
		},
	}

	assert.NoError(t, validateWinners(duo, models.Winners{First: "1", Second: "2"}))
	assert.ErrorIs(t, validateWinners(duo, models.Winners{First: "1", Third: "1"}), ErrValidation)
	assert.ErrorIs(t, validateWinners(duo, models.Winners{First: "9"}), ErrValidation)

	solo := &models.Tournament{MatchType: models.SOLO, Participants: duo.Participants}
	assert.NoError(t, validateWinners(solo, models.Winners{First: "a"}))
	assert.ErrorIs(t, validateWinners(solo, models.Winners{First: "1"}), ErrValidation)
}

func TestResultsSnapshot(t *testing.T) {
	duo := &models.Tournament{
		MatchType: models.DUO,
		Prize1:    100,
		Prize2:    40,
		Participants: []models.Participant{
			{ParticipantId: "a", Name: "Asha", GameId: "g1", SlotNumber: 1},
			{ParticipantId: "b", Name: "Ravi", GameId: "g2", SlotNumber: 1},
			{ParticipantId: "c", Name: "Meera", SlotNumber: 2},
		},
	}

	results := resultsSnapshot(duo, models.Winners{First: "1", Second: "2"})

	assert.Len(t, results.Placements, 2)
	first := results.Placements[0]
	assert.Equal(t, 1, first.Position)
	assert.Equal(t, 1, first.SlotNumber)
	assert.Equal(t, int64(50), first.PrizePerMember)
	assert.Equal(t, []models.TeamMember{{Name: "Asha", GameId: "g1", Share: 50}, {Name: "Ravi", GameId: "g2", Share: 50}}, first.TeamMembers)
	assert.Equal(t, int64(40), results.Placements[1].PrizePerMember)

	solo := &models.Tournament{MatchType: models.SOLO, Prize1: 100, Participants: duo.Participants}
	results = resultsSnapshot(solo, models.Winners{First: "c"})
	assert.Equal(t, "Meera", results.Placements[0].Name)
	assert.Equal(t, "c", results.Placements[0].ParticipantId)
	assert.Equal(t, int64(100), results.Placements[0].Prize)

	duo.Prize1 = 101
	results = resultsSnapshot(duo, models.Winners{First: "1"})
	odd := results.Placements[0]
	assert.Equal(t, int64(50), odd.PrizePerMember)
	assert.Equal(t, int64(51), odd.TeamMembers[0].Share)
	assert.Equal(t, int64(50), odd.TeamMembers[1].Share)
	assert.Equal(t, splitShare(101, duo.SlotMembers("1"), "a"), odd.TeamMembers[0].Share)
}
