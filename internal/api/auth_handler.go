package api

import (
	"net/http"

	"github.com/phrazzld/taskboard-api/internal/api/shared"
	"github.com/phrazzld/taskboard-api/internal/platform/metrics"
	"github.com/phrazzld/taskboard-api/internal/service/auth"
)

// AuthHandler handles the token issuing endpoint.
type AuthHandler struct {
	jwtService auth.JWTService
}

// NewAuthHandler creates a new AuthHandler with the given dependencies.
func NewAuthHandler(jwtService auth.JWTService) *AuthHandler {
	return &AuthHandler{
		jwtService: jwtService,
	}
}

// GenerateToken handles POST /jwt. The endpoint is unauthenticated: any
// caller that presents an email receives a signed token for it. Extra
// body fields are ignored.
func (h *AuthHandler) GenerateToken(w http.ResponseWriter, r *http.Request) {
	var req GenerateTokenRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithMessage(w, r, http.StatusBadRequest, "Email is required to generate JWT")
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithMessage(w, r, http.StatusBadRequest, "Email is required to generate JWT")
		return
	}

	token, err := h.jwtService.GenerateToken(r.Context(), req.Email)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	metrics.RecordTokenIssued()
	shared.RespondWithJSON(w, r, http.StatusOK, TokenResponse{Token: token})
}
