// api/model/neo4j/relationships.go
package casa_neo4j

// Relationship Types
const (
	// RelOwns links a user to the listings they published
	RelOwns = "OWNS"

	// RelBelongsTo links a media item to its listing
	RelBelongsTo = "BELONGS_TO"

	// RelFavorited links a user to a listing they bookmarked
	RelFavorited = "FAVORITED"

	// RelSaved links a user to their saved searches
	RelSaved = "SAVED"
)
