package tournaments

import (
	"net/http"

	"github.com/chris/arena-ledger/pkg/api"
	"github.com/chris/arena-ledger/pkg/handlers/respond"
	"github.com/chris/arena-ledger/pkg/mapping"
	"github.com/chris/arena-ledger/pkg/settlement"
)

// TournamentsHandler drives the result and cancellation settlements.
type TournamentsHandler struct {
	Settler settlement.Settler
}

// NewTournamentsHandler creates a new TournamentsHandler.
func NewTournamentsHandler(settler settlement.Settler) *TournamentsHandler {
	return &TournamentsHandler{Settler: settler}
}

// AnnounceTournamentResults settles earnings for every participant. A partial
// failure answers 207 with the report; the remainder is retried in the background.
func (h *TournamentsHandler) AnnounceTournamentResults(w http.ResponseWriter, r *http.Request, tournamentId string) {
	var body api.AnnounceTournamentResultsJSONRequestBody
	if err := respond.Decode(r, &body); err != nil {
		respond.BadRequest(w, err.Error())
		return
	}

	report, err := h.Settler.AnnounceResult(r.Context(), tournamentId,
		mapping.ToDomainParticipantResults(body.Participants), mapping.ToDomainWinners(body.Winners))
	respond.Report(w, r, report, err)
}

// PreviewTournamentResults computes the earnings an announcement would settle
// without moving any money.
func (h *TournamentsHandler) PreviewTournamentResults(w http.ResponseWriter, r *http.Request, tournamentId string) {
	var body api.PreviewTournamentResultsJSONRequestBody
	if err := respond.Decode(r, &body); err != nil {
		respond.BadRequest(w, err.Error())
		return
	}

	lines, err := h.Settler.PreviewResult(r.Context(), tournamentId,
		mapping.ToDomainParticipantResults(body.Participants), mapping.ToDomainWinners(body.Winners))
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	respond.JSON(w, http.StatusOK, mapping.ToApiEarningsLines(lines))
}

func (h *TournamentsHandler) CancelTournament(w http.ResponseWriter, r *http.Request, tournamentId string) {
	report, err := h.Settler.CancelMatch(r.Context(), tournamentId)
	respond.Report(w, r, report, err)
}
