// api/seed/seed.go
package seed

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/dev-mohitbeniwal/casa/api/dao"
	echo_errors "github.com/dev-mohitbeniwal/casa/api/errors"
	logger "github.com/dev-mohitbeniwal/casa/api/logging"
	"github.com/dev-mohitbeniwal/casa/api/model"
	"github.com/dev-mohitbeniwal/casa/api/util"
)

const (
	lockName = "seed"
	lockTTL  = time.Minute
)

// ErrSeedLocked is returned when another instance holds the seed lock.
var ErrSeedLocked = errors.New("seed already running")

// Locker is a cluster-wide mutex.
type Locker interface {
	LockResource(ctx context.Context, name string, ttl time.Duration) (bool, error)
	UnlockResource(ctx context.Context, name string) error
}

type account struct {
	email     string
	password  string
	firstName string
	lastName  string
	phone     string
	role      model.Role
	language  model.Language
}

var accounts = []account{
	{"admin@example.com", "admin123", "Admin", "User", "+52 123 456 7890", model.RoleAdmin, model.LanguageSpanish},
	{"user@example.com", "user123", "Regular", "User", "+52 098 765 4321", model.RoleUser, model.LanguageEnglish},
	{"agent@example.com", "agent123", "Agent", "Realtor", "+52 555 555 5555", model.RoleAgent, model.LanguageSpanish},
}

type Seeder struct {
	userDAO     dao.IUserDAO
	propertyDAO dao.IPropertyDAO
	locker      Locker
}

func NewSeeder(userDAO dao.IUserDAO, propertyDAO dao.IPropertyDAO, locker Locker) *Seeder {
	return &Seeder{userDAO: userDAO, propertyDAO: propertyDAO, locker: locker}
}

// Run creates the demo accounts and the sample listing. Accounts that
// already exist are left alone; the listing is only created together with
// a new agent account, so running twice is a no-op.
func (s *Seeder) Run(ctx context.Context) error {
	locked, err := s.locker.LockResource(ctx, lockName, lockTTL)
	if err != nil {
		return fmt.Errorf("failed to acquire seed lock: %w", err)
	}
	if !locked {
		return ErrSeedLocked
	}
	defer func() {
		if err := s.locker.UnlockResource(ctx, lockName); err != nil {
			logger.Warn("Failed to release seed lock", zap.Error(err))
		}
	}()

	users := make(map[model.Role]*model.User, len(accounts))
	created := make(map[model.Role]bool, len(accounts))
	for _, a := range accounts {
		user, isNew, err := s.ensureUser(ctx, a)
		if err != nil {
			return err
		}
		users[a.role] = user
		created[a.role] = isNew
	}

	if !created[model.RoleAgent] {
		logger.Info("Seed data already present")
		return nil
	}

	property, err := s.propertyDAO.CreateProperty(ctx, sampleProperty(users[model.RoleAgent].ID), sampleMedia())
	if err != nil {
		return fmt.Errorf("failed to create sample property: %w", err)
	}
	logger.Info("Sample property created", zap.Int64("propertyID", property.ID))
	logger.Info("Database seeding completed successfully")
	return nil
}

func (s *Seeder) ensureUser(ctx context.Context, a account) (*model.User, bool, error) {
	existing, err := s.userDAO.GetUserByEmail(ctx, a.email)
	if err == nil {
		return existing, false, nil
	}
	if !errors.Is(err, echo_errors.ErrUserNotFound) {
		return nil, false, fmt.Errorf("failed to look up %s: %w", a.email, err)
	}

	hash, err := util.HashPassword(a.password)
	if err != nil {
		return nil, false, err
	}
	user, err := s.userDAO.CreateUser(ctx, model.User{
		Email:        a.email,
		PasswordHash: hash,
		FirstName:    a.firstName,
		LastName:     a.lastName,
		Phone:        a.phone,
		Role:         a.role,
		Language:     a.language,
	})
	if err != nil {
		return nil, false, fmt.Errorf("failed to create %s: %w", a.email, err)
	}
	logger.Info("Seed user created", zap.String("email", a.email), zap.String("role", string(a.role)))
	return user, true, nil
}

func sampleProperty(ownerID int64) model.Property {
	bedrooms, bathrooms, year := 3, 2, 2018
	buildingSize, landSize := 180.0, 250.0
	lat, lng := 19.4137, -99.1726
	return model.Property{
		Title:            "Casa Moderna en Condesa",
		TitleEn:          "Modern House in Condesa",
		Description:      "Hermosa casa moderna con jardín en el corazón de la Condesa. Cerca de restaurantes y parques.",
		DescriptionEn:    "Beautiful modern house with garden in the heart of Condesa. Close to restaurants and parks.",
		Price:            5000000,
		Currency:         model.CurrencyMXN,
		Type:             model.PropertyTypeHouse,
		Status:           model.PropertyStatusActive,
		Bedrooms:         &bedrooms,
		Bathrooms:        &bathrooms,
		BuildingSize:     &buildingSize,
		LandSize:         &landSize,
		ConstructionYear: &year,
		Verified:         true,
		OwnerID:          ownerID,
		Address: &model.Address{
			Street:       "Calle Ozuluama",
			StreetNumber: "12",
			Neighborhood: "Condesa",
			PostalCode:   "06140",
			City:         "Ciudad de México",
			State:        "MEXICO_CITY",
			Latitude:     &lat,
			Longitude:    &lng,
		},
		Features: []model.Feature{
			{Name: "Jardín", NameEn: "Garden"},
			{Name: "Estacionamiento", NameEn: "Parking"},
			{Name: "Seguridad 24/7", NameEn: "24/7 Security"},
		},
	}
}

func sampleMedia() []model.MediaInput {
	return []model.MediaInput{
		{Type: model.MediaTypeImage, URL: "https://example.com/house1.jpg", IsMain: true},
		{Type: model.MediaTypeImage, URL: "https://example.com/house2.jpg"},
		{Type: model.MediaTypeFloorPlan, URL: "https://example.com/floorplan.jpg"},
	}
}
