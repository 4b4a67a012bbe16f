package models

import (
	"strconv"
	"time"
)

// TournamentStatus is the lifecycle of a tournament.
type TournamentStatus string

const (
	UPCOMING  TournamentStatus = "upcoming"
	LIVE      TournamentStatus = "live"
	FINISHED  TournamentStatus = "finished"
	CANCELLED TournamentStatus = "cancelled"
)

// MatchType decides the team size.
type MatchType string

const (
	SOLO  MatchType = "solo"
	DUO   MatchType = "duo"
	SQUAD MatchType = "squad"
)

// TeamSize is the nominal number of players per slot.
func (m MatchType) TeamSize() int {
	switch m {
	case DUO:
		return 2
	case SQUAD:
		return 4
	}
	return 1
}

// IsTeam reports whether placements are decided by slot rather than by player.
func (m MatchType) IsTeam() bool {
	return m == DUO || m == SQUAD
}

// SettlementKind marks which bulk pass is still owed on a tournament.
type SettlementKind string

const (
	SETTLE_RESULT SettlementKind = "result"
	SETTLE_REFUND SettlementKind = "refund"
)

// Participant is one registered player. PreviousEarnings is the total last
// credited for this player and is the base of every later correction.
type Participant struct {
	ParticipantId    string     `dynamodbav:"participant_id"`
	UserId           string     `dynamodbav:"user_id,omitempty"`
	Name             string     `dynamodbav:"name,omitempty"`
	GameId           string     `dynamodbav:"game_id,omitempty"`
	SlotNumber       int        `dynamodbav:"slot_number"`
	Kills            int        `dynamodbav:"kills"`
	PreviousEarnings int64      `dynamodbav:"previous_earnings"`
	RefundedAt       *time.Time `dynamodbav:"refunded_at,omitempty"`
}

// Slot returns the slot number in the form winners reference it.
func (p *Participant) Slot() string {
	return strconv.Itoa(p.SlotNumber)
}

// Winners references the placed slots (team mode) or participant IDs (solo).
type Winners struct {
	First  string `json:"first,omitempty" dynamodbav:"first,omitempty"`
	Second string `json:"second,omitempty" dynamodbav:"second,omitempty"`
	Third  string `json:"third,omitempty" dynamodbav:"third,omitempty"`
}

// Refs returns the placement references in position order.
func (w Winners) Refs() [3]string {
	return [3]string{w.First, w.Second, w.Third}
}

// TeamMember is a display snapshot of a player on a placed team.
type TeamMember struct {
	Name   string `dynamodbav:"name"`
	GameId string `dynamodbav:"game_id,omitempty"`
	Share  int64  `dynamodbav:"share"`
}

// Placement is the display snapshot of one podium position. PrizePerMember is
// the floor of an even split; the remainder goes to the first members, so each
// TeamMember carries the share actually credited.
type Placement struct {
	Position       int          `dynamodbav:"position"`
	SlotNumber     int          `dynamodbav:"slot_number,omitempty"`
	TeamMembers    []TeamMember `dynamodbav:"team_members,omitempty"`
	PrizePerMember int64        `dynamodbav:"prize_per_member,omitempty"`
	ParticipantId  string       `dynamodbav:"participant_id,omitempty"`
	Name           string       `dynamodbav:"name,omitempty"`
	GameId         string       `dynamodbav:"game_id,omitempty"`
	Prize          int64        `dynamodbav:"prize"`
}

// Results is what was announced for a tournament.
type Results struct {
	Winners    Winners     `dynamodbav:"winners"`
	Placements []Placement `dynamodbav:"placements"`
}

// ResultIntent is the announced input persisted before any wallet moves, so
// an interrupted settlement can be finished from it.
type ResultIntent struct {
	Id          string         `dynamodbav:"intent_id"`
	Winners     Winners        `dynamodbav:"winners"`
	Kills       map[string]int `dynamodbav:"kills"`
	RequestedAt time.Time      `dynamodbav:"requested_at"`
}

// Tournament holds entry, prize and participant data for a match.
type Tournament struct {
	Id                string           `dynamodbav:"id"`
	Name              string           `dynamodbav:"name"`
	Status            TournamentStatus `dynamodbav:"status"`
	MatchType         MatchType        `dynamodbav:"match_type"`
	EntryFee          int64            `dynamodbav:"entry_fee"`
	PrizePool         int64            `dynamodbav:"prize_pool"`
	PerKillPrize      int64            `dynamodbav:"per_kill_prize"`
	Prize1            int64            `dynamodbav:"prize1"`
	Prize2            int64            `dynamodbav:"prize2"`
	Prize3            int64            `dynamodbav:"prize3"`
	Participants      []Participant    `dynamodbav:"participant_details"`
	Results           *Results         `dynamodbav:"results,omitempty"`
	ResultAnnouncedAt *time.Time       `dynamodbav:"result_announced_at,omitempty"`
	CancelledAt       *time.Time       `dynamodbav:"cancelled_at,omitempty"`
	SettlementPending SettlementKind   `dynamodbav:"settlement_pending,omitempty"`
	PendingResult     *ResultIntent    `dynamodbav:"pending_result,omitempty"`
	UpdatedAt         time.Time        `dynamodbav:"updated_at"`
}

// Prize returns the prize for a 1-based podium position.
func (t *Tournament) Prize(position int) int64 {
	switch position {
	case 1:
		return t.Prize1
	case 2:
		return t.Prize2
	case 3:
		return t.Prize3
	}
	return 0
}

// SlotMembers returns the participants sharing a slot, in list order.
func (t *Tournament) SlotMembers(slot string) []Participant {
	var members []Participant
	for _, p := range t.Participants {
		if p.Slot() == slot {
			members = append(members, p)
		}
	}
	return members
}

// ParticipantIndex returns the position of a participant in the list, or -1.
func (t *Tournament) ParticipantIndex(participantID string) int {
	for i := range t.Participants {
		if t.Participants[i].ParticipantId == participantID {
			return i
		}
	}
	return -1
}
