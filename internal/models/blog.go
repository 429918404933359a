package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// BlogPost is a stored blog post. Fields the client sends beyond the named
// ones are kept in Extra and round-trip through both JSON and BSON.
type BlogPost struct {
	ID               primitive.ObjectID     `json:"_id" bson:"_id,omitempty"`
	Title            string                 `json:"title" bson:"title"`
	Category         string                 `json:"category" bson:"category"`
	ShortDescription string                 `json:"shortDescription,omitempty" bson:"shortDescription,omitempty"`
	LongDescription  string                 `json:"longDescription,omitempty" bson:"longDescription,omitempty"`
	ImageURL         string                 `json:"imageUrl,omitempty" bson:"imageUrl,omitempty"`
	Deadline         string                 `json:"deadline,omitempty" bson:"deadline,omitempty"`
	UserEmail        string                 `json:"userEmail,omitempty" bson:"userEmail,omitempty"`
	CreatedAt        time.Time              `json:"createdAt" bson:"createdAt"`
	WordCount        *int                   `json:"wordCount,omitempty" bson:"-"`
	Extra            map[string]interface{} `json:"-" bson:",inline"`
}

var blogKeys = []string{"_id", "title", "category", "shortDescription", "longDescription", "imageUrl", "deadline", "userEmail", "createdAt", "wordCount"}

type blogPostJSON BlogPost

func (p BlogPost) MarshalJSON() ([]byte, error) {
	return marshalFlat(blogPostJSON(p), p.Extra)
}

func (p *BlogPost) UnmarshalJSON(data []byte) error {
	var known blogPostJSON
	extra, err := unmarshalFlat(data, &known, blogKeys...)
	if err != nil {
		return err
	}
	*p = BlogPost(known)
	p.Extra = extra
	return nil
}
