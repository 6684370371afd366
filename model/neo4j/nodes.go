// api/model/neo4j/nodes.go
package casa_neo4j

// Node Labels
const (
	// LabelUser represents an account holder
	LabelUser = "User"

	// LabelProperty represents a real estate listing
	LabelProperty = "Property"

	// LabelMedia represents an image, floor plan or video attached to a listing
	LabelMedia = "Media"

	// LabelSavedSearch represents a named listing filter kept by a user
	LabelSavedSearch = "SavedSearch"

	// LabelSequence holds the last integer id handed out for a label
	LabelSequence = "Sequence"
)
