package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// LinkTargetKind names the collection a link job appends into.
type LinkTargetKind string

const (
	LinkTargetTeacher LinkTargetKind = "teacher"
	LinkTargetStudent LinkTargetKind = "student"
)

// LinkJob is a back-reference append that could not be applied in-process.
// Failed jobs are persisted to the 'link_outbox' collection and replayed by
// the link maintainer's reconciler until they succeed or their target is
// confirmed gone.
type LinkJob struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	TargetKind  LinkTargetKind     `json:"targetKind" bson:"targetKind"`
	TargetID    primitive.ObjectID `json:"targetId" bson:"targetId"`
	ClassroomID primitive.ObjectID `json:"classroomId" bson:"classroomId"`
	Attempts    int                `json:"attempts" bson:"attempts"`
	LastError   string             `json:"lastError,omitempty" bson:"lastError,omitempty"`
	CreatedAt   time.Time          `json:"createdAt" bson:"createdAt"`
}
