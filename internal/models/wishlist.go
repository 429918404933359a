package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// WishlistEntry is a blog saved by a user, unique per (ReviewID, UserEmail).
type WishlistEntry struct {
	ID        primitive.ObjectID     `json:"_id" bson:"_id,omitempty"`
	ReviewID  string                 `json:"reviewId" bson:"reviewId"`
	UserEmail string                 `json:"userEmail" bson:"userEmail"`
	Title     string                 `json:"title,omitempty" bson:"title,omitempty"`
	Category  string                 `json:"category,omitempty" bson:"category,omitempty"`
	Extra     map[string]interface{} `json:"-" bson:",inline"`
}

var wishlistKeys = []string{"_id", "reviewId", "userEmail", "title", "category"}

type wishlistEntryJSON WishlistEntry

func (e WishlistEntry) MarshalJSON() ([]byte, error) {
	return marshalFlat(wishlistEntryJSON(e), e.Extra)
}

func (e *WishlistEntry) UnmarshalJSON(data []byte) error {
	var known wishlistEntryJSON
	extra, err := unmarshalFlat(data, &known, wishlistKeys...)
	if err != nil {
		return err
	}
	*e = WishlistEntry(known)
	e.Extra = extra
	return nil
}
