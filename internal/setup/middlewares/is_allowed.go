package middlewares

import (
	"net/http"

	"github.com/anuntech/decision-backend/internal/domain/usecase"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// IsAllowed admits owners and admins of the workspace named in the workspaceId header.
func IsAllowed(next http.Handler, findMember usecase.FindMemberByIdRepository) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		workspaceObjectID, err := primitive.ObjectIDFromHex(r.Header.Get("workspaceId"))
		if err != nil {
			http.Error(w, "Invalid workspace ID", http.StatusBadRequest)
			return
		}

		userObjectID, err := primitive.ObjectIDFromHex(r.Header.Get("UserId"))
		if err != nil {
			http.Error(w, "Invalid user ID", http.StatusBadRequest)
			return
		}

		member, err := findMember.Find(workspaceObjectID, userObjectID)
		if err != nil {
			log.Error().Err(err).Str("workspaceId", workspaceObjectID.Hex()).Msg("error finding workspace member")
			http.Error(w, "Error finding workspace", http.StatusInternalServerError)
			return
		}

		if !member.CanDecide() {
			http.Error(w, "User not allowed to access this application", http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r)
	})
}
