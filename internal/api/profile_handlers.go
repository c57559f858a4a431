package api

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (s *Server) registerProfileRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "getProfile",
		Method:      http.MethodGet,
		Path:        "/api/v1/profile",
		Summary:     "Get profile",
		Description: "Returns the current user's profile with freshly computed shelf stats",
		Tags:        []string{"Profile"},
	}, s.handleGetProfile)
}

// === DTOs ===

// UserStatsResponse holds per-status shelf counts.
type UserStatsResponse struct {
	Reading    int `json:"reading" doc:"Books currently being read"`
	Completed  int `json:"completed" doc:"Books finished"`
	WantToRead int `json:"want_to_read" doc:"Books queued to read"`
	Owned      int `json:"owned" doc:"Books owned"`
	Total      int `json:"total" doc:"Total books on the shelf"`
}

// ProfileResponse is the API response for the current user's profile.
type ProfileResponse struct {
	User  UserResponse      `json:"user" doc:"Current user"`
	Stats UserStatsResponse `json:"stats" doc:"Shelf statistics"`
}

// ProfileOutput is the Huma output wrapper for the profile.
type ProfileOutput struct {
	Body ProfileResponse
}

// === Handlers ===

func (s *Server) handleGetProfile(ctx context.Context, _ *struct{}) (*ProfileOutput, error) {
	profile, err := s.services.Profile.Profile(ctx)
	if err != nil {
		return nil, err
	}

	return &ProfileOutput{
		Body: ProfileResponse{
			User: toUserResponse(&profile.User),
			Stats: UserStatsResponse{
				Reading:    profile.Stats.Reading,
				Completed:  profile.Stats.Completed,
				WantToRead: profile.Stats.WantToRead,
				Owned:      profile.Stats.Owned,
				Total:      profile.Stats.Total,
			},
		},
	}, nil
}
