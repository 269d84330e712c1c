package v1handler

import (
	"net/http"

	"gemflush/pkg/domain"
)

// teamResponse is the response for GET /v1/team.
type teamResponse struct {
	Team    *domain.Team  `json:"team"`
	Members []domain.User `json:"members"`
	Usage   teamUsage     `json:"usage"`
}

type teamUsage struct {
	Plan            domain.PlanName `json:"plan"`
	Businesses      int64           `json:"businesses"`
	MaxBusinesses   int             `json:"maxBusinesses"`
	RefreshInterval string          `json:"refreshInterval"`
	CanPublish      bool            `json:"canPublish"`
}

// GetTeam returns the authenticated user's team with its members and plan
// consumption.
func (h *Handler) GetTeam(w http.ResponseWriter, r *http.Request) {
	team := GetTeamFromContext(r.Context())

	usage, err := h.deps.Pipeline.TeamUsage(r.Context(), team)
	if err != nil {
		respondError(w, r, err)

		return
	}

	members, err := h.deps.Storage.TeamMembers(r.Context(), team.ID)
	if err != nil {
		respondError(w, r, err)

		return
	}
	if members == nil {
		members = []domain.User{}
	}

	respondJSON(w, http.StatusOK, teamResponse{
		Team:    team,
		Members: members,
		Usage: teamUsage{
			Plan:            usage.Plan.Name,
			Businesses:      usage.Businesses,
			MaxBusinesses:   usage.Plan.MaxBusinesses,
			RefreshInterval: usage.Plan.RefreshInterval.String(),
			CanPublish:      usage.Plan.CanPublish,
		},
	})
}
