package helper

import (
	"errors"
	"fmt"

	"nzoo_immo/constants"
	"nzoo_immo/model"

	"github.com/gosimple/slug"
	"gorm.io/gorm"
)

// GenerateUniqueSpaceSlug dérive un slug du nom, suffixé si déjà pris.
func GenerateUniqueSpaceSlug(tx *gorm.DB, name string) string {
	base := slug.Make(name)
	result := base
	i := 1

	for {
		var count int64
		tx.Model(&model.Space{}).
			Where("slug = ?", result).
			Count(&count)

		if count == 0 {
			break
		}
		result = fmt.Sprintf("%s-%d", base, i)
		i++
	}

	return result
}

// ValidateSpacePrices vérifie que les tarifs obligatoires pour le type
// d'espace sont renseignés: salle de réunion → horaire, coworking →
// journalier au minimum, bureau privé et domiciliation → mensuel.
func ValidateSpacePrices(spaceType string, hourly, daily, monthly *float64) error {
	switch spaceType {
	case constants.SPACE_SALLE_REUNION:
		if hourly == nil {
			return errors.New("une salle de réunion exige un tarif horaire (hourlyPrice)")
		}
	case constants.SPACE_COWORKING:
		if daily == nil {
			return errors.New("un espace coworking exige un tarif journalier (dailyPrice)")
		}
	case constants.SPACE_BUREAU_PRIVE, constants.SPACE_DOMICILIATION:
		if monthly == nil {
			return errors.New("ce type d'espace exige un tarif mensuel (monthlyPrice)")
		}
	}
	return nil
}

// GetActiveSpaceByType retourne l'espace actif pour un type, nil s'il n'y en
// a pas (le catalogue statique sert alors de repli).
func GetActiveSpaceByType(db *gorm.DB, spaceType string) (*model.Space, error) {
	var space model.Space
	if err := db.Where("type = ? AND is_active = ?", spaceType, true).
		Order("display_order asc").
		First(&space).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &space, nil
}
