package models

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestBlogPost_PreservesFreeFormFields(t *testing.T) {
	in := `{"title":"Go tips","category":"Tech","longDescription":"a b c","authorName":"Ann","tags":["go","web"]}`

	var p BlogPost
	require.NoError(t, json.Unmarshal([]byte(in), &p))
	assert.Equal(t, "Go tips", p.Title)
	assert.Equal(t, "Tech", p.Category)
	assert.Equal(t, "Ann", p.Extra["authorName"])
	assert.NotContains(t, p.Extra, "title")

	p.ID = primitive.NewObjectID()
	p.CreatedAt = time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	out, err := json.Marshal(p)
	require.NoError(t, err)

	var flat map[string]interface{}
	require.NoError(t, json.Unmarshal(out, &flat))
	assert.Equal(t, p.ID.Hex(), flat["_id"])
	assert.Equal(t, "Ann", flat["authorName"])
	assert.Equal(t, []interface{}{"go", "web"}, flat["tags"])
	assert.NotContains(t, flat, "Extra")
	assert.NotContains(t, flat, "wordCount")
}

func TestBlogPost_ExtraCannotShadowNamedFields(t *testing.T) {
	p := BlogPost{Title: "real", Extra: map[string]interface{}{"title": "shadow"}}
	out, err := json.Marshal(p)
	require.NoError(t, err)
	var flat map[string]interface{}
	require.NoError(t, json.Unmarshal(out, &flat))
	assert.Equal(t, "real", flat["title"])
}

func TestBlogPost_BSONInlinesExtra(t *testing.T) {
	p := BlogPost{Title: "t", Extra: map[string]interface{}{"authorName": "Ann"}}
	raw, err := bson.Marshal(p)
	require.NoError(t, err)

	var m bson.M
	require.NoError(t, bson.Unmarshal(raw, &m))
	assert.Equal(t, "Ann", m["authorName"])
	assert.NotContains(t, m, "wordCount")
	assert.NotContains(t, m, "_id")

	var back BlogPost
	require.NoError(t, bson.Unmarshal(raw, &back))
	assert.Equal(t, "Ann", back.Extra["authorName"])
}

func TestWishlistEntry_RoundTripKeepsExtras(t *testing.T) {
	in := `{"reviewId":"r1","userEmail":"u@example.com","title":"T","imageUrl":"http://img"}`
	var e WishlistEntry
	require.NoError(t, json.Unmarshal([]byte(in), &e))
	assert.Equal(t, "r1", e.ReviewID)
	assert.Equal(t, map[string]interface{}{"imageUrl": "http://img"}, e.Extra)
}

func TestComment_NoExtrasLeavesNilMap(t *testing.T) {
	var c Comment
	require.NoError(t, json.Unmarshal([]byte(`{"blogId":"b1"}`), &c))
	assert.Equal(t, "b1", c.BlogID)
	assert.Nil(t, c.Extra)
}

func TestComment_RejectsWrongFieldType(t *testing.T) {
	var c Comment
	require.Error(t, json.Unmarshal([]byte(`{"blogId":42}`), &c))
}

func TestParseID(t *testing.T) {
	id := primitive.NewObjectID()
	got, err := ParseID(id.Hex())
	require.NoError(t, err)
	require.Equal(t, id, got)

	_, err = ParseID("not-an-object-id")
	require.True(t, errors.Is(err, ErrInvalidID))
}
