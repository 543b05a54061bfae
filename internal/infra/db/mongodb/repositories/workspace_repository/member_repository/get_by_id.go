package member_repository

import (
	"context"

	"github.com/anuntech/decision-backend/internal/domain/models"
	"github.com/anuntech/decision-backend/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type FindMemberByIdRepository struct {
	DbWorkspace *mongo.Database
}

func NewFindMemberByIdRepository(db *mongo.Database) *FindMemberByIdRepository {
	return &FindMemberByIdRepository{
		DbWorkspace: db,
	}
}

// Find resolves the member's role in the workspace; the owner is reported with
// role "owner". It returns nil, nil for non-members and unknown workspaces.
func (r *FindMemberByIdRepository) Find(workspaceId primitive.ObjectID, memberId primitive.ObjectID) (*models.Member, error) {
	collection := r.DbWorkspace.Collection("workspaces")

	ctx, cancel := context.WithTimeout(context.Background(), helpers.Timeout)
	defer cancel()

	var workspace models.Workspace
	err := collection.FindOne(ctx, bson.M{"_id": workspaceId}).Decode(&workspace)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	if workspace.Owner == memberId {
		return &models.Member{
			MemberId: memberId,
			Role:     models.MemberRoleOwner,
		}, nil
	}

	for _, member := range workspace.Members {
		if member.MemberId == memberId {
			return &member, nil
		}
	}

	return nil, nil
}
