package usecase

import (
	"github.com/anuntech/decision-backend/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type FindMemberByIdRepository interface {
	Find(workspaceId primitive.ObjectID, memberId primitive.ObjectID) (*models.Member, error)
}
