package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Comment is a free-form comment attached to a blog post by BlogID.
type Comment struct {
	ID        primitive.ObjectID     `json:"_id" bson:"_id,omitempty"`
	BlogID    string                 `json:"blogId" bson:"blogId"`
	CreatedAt time.Time              `json:"createdAt" bson:"createdAt"`
	Extra     map[string]interface{} `json:"-" bson:",inline"`
}

var commentKeys = []string{"_id", "blogId", "createdAt"}

type commentJSON Comment

func (c Comment) MarshalJSON() ([]byte, error) {
	return marshalFlat(commentJSON(c), c.Extra)
}

func (c *Comment) UnmarshalJSON(data []byte) error {
	var known commentJSON
	extra, err := unmarshalFlat(data, &known, commentKeys...)
	if err != nil {
		return err
	}
	*c = Comment(known)
	c.Extra = extra
	return nil
}
