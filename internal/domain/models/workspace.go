package models

import "go.mongodb.org/mongo-driver/bson/primitive"

const (
	MemberRoleOwner = "owner"
	MemberRoleAdmin = "admin"
)

type Member struct {
	ID       primitive.ObjectID `bson:"_id"`
	Role     string             `bson:"role"`
	MemberId primitive.ObjectID `bson:"memberId"`
}

// CanDecide is true for members allowed to run and read decision validations.
func (m *Member) CanDecide() bool {
	return m != nil && (m.Role == MemberRoleOwner || m.Role == MemberRoleAdmin)
}

type Workspace struct {
	ID      primitive.ObjectID `bson:"_id"`
	Owner   primitive.ObjectID `bson:"owner"`
	Members []Member           `bson:"members"`
}
