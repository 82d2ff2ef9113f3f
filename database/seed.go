package database

import (
	"log"

	"nzoo_immo/constants"
	"nzoo_immo/model"
	"nzoo_immo/utils"

	"github.com/gosimple/slug"
	"github.com/lib/pq"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func SeedData(db *gorm.DB) {
	bytes, err := bcrypt.GenerateFromPassword([]byte("nzoo2025admin"), 10)
	if err != nil {
		log.Println("failed to hash seed password:", err)
		return
	}
	hashed := string(bytes)

	users := []model.AdminUser{
		{
			Username: "administration",
			Email:    "contact@nzooimmo.com",
			FullName: "Administration Nzoo Immo",
			Password: hashed,
			Role:     constants.ROLE_ADMIN,
			IsActive: true,
		},
	}

	for _, user := range users {
		if err := db.Where(model.AdminUser{Username: user.Username}).FirstOrCreate(&user).Error; err != nil {
			log.Println("failed to seed admin user:", user.Username, "error:", err)
		}
	}

	// Les quatre offres de base; l'admin peut ensuite les ajuster.
	spaces := []model.Space{
		{
			Name:               "Espace Coworking",
			Slug:               slug.Make("Espace Coworking"),
			Type:               constants.SPACE_COWORKING,
			Description:        "Espace de travail partagé moderne et équipé",
			Features:           pq.StringArray{"WiFi Haut Débit", "Café/Thé Gratuit", "Imprimante", "Salle de Réunion"},
			Images:             pq.StringArray{"/coworking.jpg"},
			DailyPrice:         utils.Ptr(15.0),
			MonthlyPrice:       utils.Ptr(300.0),
			YearlyPrice:        utils.Ptr(3000.0),
			MaxOccupants:       3,
			IsActive:           true,
			AvailabilityStatus: constants.AVAILABILITY_AVAILABLE,
			DisplayOrder:       1,
		},
		{
			Name:               "Bureau Privé",
			Slug:               slug.Make("Bureau Privé"),
			Type:               constants.SPACE_BUREAU_PRIVE,
			Description:        "Bureau privé entièrement équipé pour votre équipe",
			Features:           pq.StringArray{"Bureau Privé", "WiFi Dédié", "Parking", "Sécurité 24/7"},
			Images:             pq.StringArray{"/bureau_prive.jpg"},
			MonthlyPrice:       utils.Ptr(500.0),
			YearlyPrice:        utils.Ptr(5500.0),
			MaxOccupants:       10,
			IsActive:           true,
			AvailabilityStatus: constants.AVAILABILITY_AVAILABLE,
			DisplayOrder:       2,
		},
		{
			Name:               "Salle de Réunion",
			Slug:               slug.Make("Salle de Réunion"),
			Type:               constants.SPACE_SALLE_REUNION,
			Description:        "Salle moderne pour vos réunions professionnelles",
			Features:           pq.StringArray{"Écran de Présentation", "Système Audio", "WiFi", "Climatisation"},
			Images:             pq.StringArray{"/salle_reunion.jpg"},
			HourlyPrice:        utils.Ptr(25.0),
			MaxOccupants:       12,
			IsActive:           true,
			AvailabilityStatus: constants.AVAILABILITY_AVAILABLE,
			DisplayOrder:       3,
		},
		{
			Name:               "Domiciliation Commerciale",
			Slug:               slug.Make("Domiciliation Commerciale"),
			Type:               constants.SPACE_DOMICILIATION,
			Description:        "Adresse professionnelle et siège social pour votre entreprise",
			Features:           pq.StringArray{"Adresse Professionnelle", "Réception du Courrier", "Salle de Réunion à la Demande"},
			Images:             pq.StringArray{"/domiciliation.jpg"},
			MonthlyPrice:       utils.Ptr(300.0),
			YearlyPrice:        utils.Ptr(3200.0),
			MaxOccupants:       1,
			IsActive:           true,
			AvailabilityStatus: constants.AVAILABILITY_AVAILABLE,
			DisplayOrder:       4,
		},
	}

	for _, space := range spaces {
		if err := db.Where(model.Space{Slug: space.Slug}).FirstOrCreate(&space).Error; err != nil {
			log.Println("failed to seed space:", space.Name, "error:", err)
		}
	}
}
