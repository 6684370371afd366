// api/dao/daos.go
package dao

import "github.com/neo4j/neo4j-go-driver/v5/neo4j"

type DAOs struct {
	User        *UserDAO
	Property    *PropertyDAO
	Media       *MediaDAO
	Favorite    *FavoriteDAO
	SavedSearch *SavedSearchDAO
}

func InitializeDAOs(driver neo4j.DriverWithContext) *DAOs {
	return &DAOs{
		User:        NewUserDAO(driver),
		Property:    NewPropertyDAO(driver),
		Media:       NewMediaDAO(driver),
		Favorite:    NewFavoriteDAO(driver),
		SavedSearch: NewSavedSearchDAO(driver),
	}
}
