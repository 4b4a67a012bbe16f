package settlement

import (
	"github.com/chris/arena-ledger/pkg/models"
)

// ParticipantResult is the announced kill count of one participant.
type ParticipantResult struct {
	ParticipantID string `json:"participant_id"`
	Kills         int    `json:"kills"`
}

// EarningsLine is what a result pays one participant, relative to what was
// last settled for them.
type EarningsLine struct {
	ParticipantID string `json:"participant_id"`
	UserID        string `json:"user_id,omitempty"`
	Name          string `json:"name,omitempty"`
	Kills         int    `json:"kills"`
	Previous      int64  `json:"previous_earnings"`
	Earnings      int64  `json:"earnings"`
	Delta         int64  `json:"delta"`
}

// ComputeEarnings returns kill earnings plus the placement bonus of p.
// In solo matches placements name participants; in team matches they name
// slots and the prize is split among everyone in the slot.
func ComputeEarnings(p models.Participant, t *models.Tournament, winners models.Winners) int64 {
	return int64(p.Kills)*t.PerKillPrize + placementBonus(p, t, winners)
}

func placementBonus(p models.Participant, t *models.Tournament, winners models.Winners) int64 {
	for i, ref := range winners.Refs() {
		if ref == "" {
			continue
		}
		prize := t.Prize(i + 1)
		if !t.MatchType.IsTeam() {
			if ref == p.ParticipantId {
				return prize
			}
			continue
		}
		if ref == p.Slot() {
			return splitShare(prize, t.SlotMembers(ref), p.ParticipantId)
		}
	}
	return 0
}

// splitShare divides prize evenly over members. The remainder goes one unit
// at a time to the first members in list order, so shares always sum to prize.
func splitShare(prize int64, members []models.Participant, participantID string) int64 {
	n := int64(len(members))
	if n == 0 {
		return 0
	}
	share, rem := prize/n, prize%n
	for i, m := range members {
		if m.ParticipantId != participantID {
			continue
		}
		if int64(i) < rem {
			return share + 1
		}
		return share
	}
	return 0
}

// validateWinners rejects a placement referencing nobody, or the same slot or
// participant in two positions.
func validateWinners(t *models.Tournament, winners models.Winners) error {
	seen := make(map[string]bool, 3)
	for i, ref := range winners.Refs() {
		if ref == "" {
			continue
		}
		if seen[ref] {
			return validation("%q is placed more than once", ref)
		}
		seen[ref] = true

		if t.MatchType.IsTeam() {
			if len(t.SlotMembers(ref)) == 0 {
				return validation("placement %d references empty slot %q", i+1, ref)
			}
		} else if t.ParticipantIndex(ref) < 0 {
			return validation("placement %d references unknown participant %q", i+1, ref)
		}
	}
	return nil
}

// killsByParticipant validates announced results and indexes them.
func killsByParticipant(t *models.Tournament, results []ParticipantResult) (map[string]int, error) {
	kills := make(map[string]int, len(results))
	for _, r := range results {
		if r.Kills < 0 {
			return nil, validation("participant %s has negative kills", r.ParticipantID)
		}
		if t.ParticipantIndex(r.ParticipantID) < 0 {
			return nil, validation("unknown participant %q", r.ParticipantID)
		}
		if _, dup := kills[r.ParticipantID]; dup {
			return nil, validation("participant %s is listed twice", r.ParticipantID)
		}
		kills[r.ParticipantID] = r.Kills
	}
	return kills, nil
}

// plan computes every participant's earnings from one read of the tournament,
// so previous earnings are snapshotted before anything is written. Participants
// missing from the intent keep their stored kills.
func plan(t *models.Tournament, intent models.ResultIntent) []EarningsLine {
	lines := make([]EarningsLine, 0, len(t.Participants))
	for _, p := range t.Participants {
		if k, ok := intent.Kills[p.ParticipantId]; ok {
			p.Kills = k
		}
		earnings := ComputeEarnings(p, t, intent.Winners)
		lines = append(lines, EarningsLine{
			ParticipantID: p.ParticipantId,
			UserID:        p.UserId,
			Name:          p.Name,
			Kills:         p.Kills,
			Previous:      p.PreviousEarnings,
			Earnings:      earnings,
			Delta:         earnings - p.PreviousEarnings,
		})
	}
	return lines
}

// resultsSnapshot is the display record of the podium stored on the tournament.
func resultsSnapshot(t *models.Tournament, winners models.Winners) models.Results {
	results := models.Results{Winners: winners}
	for i, ref := range winners.Refs() {
		if ref == "" {
			continue
		}
		placement := models.Placement{Position: i + 1, Prize: t.Prize(i + 1)}
		if t.MatchType.IsTeam() {
			members := t.SlotMembers(ref)
			if len(members) == 0 {
				continue
			}
			placement.SlotNumber = members[0].SlotNumber
			for _, m := range members {
				placement.TeamMembers = append(placement.TeamMembers, models.TeamMember{
					Name:   m.Name,
					GameId: m.GameId,
					Share:  splitShare(placement.Prize, members, m.ParticipantId),
				})
			}
			placement.PrizePerMember = placement.Prize / int64(len(members))
		} else {
			idx := t.ParticipantIndex(ref)
			if idx < 0 {
				continue
			}
			p := t.Participants[idx]
			placement.ParticipantId = p.ParticipantId
			placement.Name = p.Name
			placement.GameId = p.GameId
		}
		results.Placements = append(results.Placements, placement)
	}
	return results
}
