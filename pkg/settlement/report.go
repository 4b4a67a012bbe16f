package settlement

// ParticipantFailure records one participant a bulk pass could not settle.
type ParticipantFailure struct {
	ParticipantID string `json:"participant_id"`
	UserID        string `json:"user_id,omitempty"`
	Error         string `json:"error"`
}

// BulkReport is the aggregate outcome of a result or refund pass.
type BulkReport struct {
	TournamentID string               `json:"tournament_id"`
	Succeeded    int                  `json:"succeeded"`
	Failed       int                  `json:"failed"`
	Skipped      int                  `json:"skipped"`
	Failures     []ParticipantFailure `json:"failures,omitempty"`
}

// Total is the number of participants the pass looked at.
func (r *BulkReport) Total() int {
	return r.Succeeded + r.Failed + r.Skipped
}

func (r *BulkReport) fail(participantID, userID string, err error) {
	r.Failed++
	r.Failures = append(r.Failures, ParticipantFailure{
		ParticipantID: participantID,
		UserID:        userID,
		Error:         err.Error(),
	})
}
