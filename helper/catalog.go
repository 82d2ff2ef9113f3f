package helper

import (
	"nzoo_immo/constants"
	"nzoo_immo/utils"
)

// SpaceInfo est la fiche catalogue d'un type d'espace. Les identifiants et
// champs numériques (prix, capacité) sont invariants selon la langue.
type SpaceInfo struct {
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Features     []string `json:"features"`
	HourlyPrice  *float64 `json:"hourlyPrice,omitempty"`
	DailyPrice   *float64 `json:"dailyPrice,omitempty"`
	MonthlyPrice *float64 `json:"monthlyPrice,omitempty"`
	YearlyPrice  *float64 `json:"yearlyPrice,omitempty"`
	MaxOccupants int      `json:"maxOccupants"`
	Images       []string `json:"images"`
	Type         string   `json:"type"`
}

var catalogData = map[string]map[string]SpaceInfo{
	constants.LANG_FR: {
		constants.SPACE_COWORKING: {
			Title:        "Espace Coworking",
			Description:  "Espace de travail partagé moderne et équipé",
			Features:     []string{"WiFi Haut Débit", "Café/Thé Gratuit", "Imprimante", "Salle de Réunion"},
			DailyPrice:   utils.Ptr(15.0),
			MonthlyPrice: utils.Ptr(300.0),
			YearlyPrice:  utils.Ptr(3000.0),
			MaxOccupants: 3,
			Images:       []string{"/coworking.jpg"},
			Type:         constants.SPACE_COWORKING,
		},
		constants.SPACE_BUREAU_PRIVE: {
			Title:        "Bureau Privé",
			Description:  "Bureau privé entièrement équipé pour votre équipe",
			Features:     []string{"Bureau Privé", "WiFi Dédié", "Parking", "Sécurité 24/7"},
			MonthlyPrice: utils.Ptr(500.0),
			YearlyPrice:  utils.Ptr(5500.0),
			MaxOccupants: 10,
			Images:       []string{"/bureau_prive.jpg"},
			Type:         constants.SPACE_BUREAU_PRIVE,
		},
		constants.SPACE_SALLE_REUNION: {
			Title:        "Salle de Réunion",
			Description:  "Salle moderne pour vos réunions professionnelles",
			Features:     []string{"Écran de Présentation", "Système Audio", "WiFi", "Climatisation"},
			HourlyPrice:  utils.Ptr(25.0),
			MaxOccupants: 12,
			Images:       []string{"/salle_reunion.jpg"},
			Type:         constants.SPACE_SALLE_REUNION,
		},
		constants.SPACE_DOMICILIATION: {
			Title:        "Domiciliation Commerciale",
			Description:  "Adresse professionnelle et siège social pour votre entreprise",
			Features:     []string{"Adresse Professionnelle", "Réception du Courrier", "Salle de Réunion à la Demande"},
			MonthlyPrice: utils.Ptr(300.0),
			YearlyPrice:  utils.Ptr(3200.0),
			MaxOccupants: 1,
			Images:       []string{"/domiciliation.jpg"},
			Type:         constants.SPACE_DOMICILIATION,
		},
	},
	constants.LANG_EN: {
		constants.SPACE_COWORKING: {
			Title:        "Coworking Space",
			Description:  "Modern and equipped shared workspace",
			Features:     []string{"High-Speed WiFi", "Free Coffee/Tea", "Printer", "Meeting Room"},
			DailyPrice:   utils.Ptr(15.0),
			MonthlyPrice: utils.Ptr(300.0),
			YearlyPrice:  utils.Ptr(3000.0),
			MaxOccupants: 3,
			Images:       []string{"/coworking.jpg"},
			Type:         constants.SPACE_COWORKING,
		},
		constants.SPACE_BUREAU_PRIVE: {
			Title:        "Private Office",
			Description:  "Fully equipped private office for your team",
			Features:     []string{"Private Office", "Dedicated WiFi", "Parking", "24/7 Security"},
			MonthlyPrice: utils.Ptr(500.0),
			YearlyPrice:  utils.Ptr(5500.0),
			MaxOccupants: 10,
			Images:       []string{"/bureau_prive.jpg"},
			Type:         constants.SPACE_BUREAU_PRIVE,
		},
		constants.SPACE_SALLE_REUNION: {
			Title:        "Meeting Room",
			Description:  "Modern room for your professional meetings",
			Features:     []string{"Presentation Screen", "Audio System", "WiFi", "Air Conditioning"},
			HourlyPrice:  utils.Ptr(25.0),
			MaxOccupants: 12,
			Images:       []string{"/salle_reunion.jpg"},
			Type:         constants.SPACE_SALLE_REUNION,
		},
		constants.SPACE_DOMICILIATION: {
			Title:        "Business Domiciliation",
			Description:  "Professional address and registered office for your company",
			Features:     []string{"Professional Address", "Mail Reception", "Meeting Room on Demand"},
			MonthlyPrice: utils.Ptr(300.0),
			YearlyPrice:  utils.Ptr(3200.0),
			MaxOccupants: 1,
			Images:       []string{"/domiciliation.jpg"},
			Type:         constants.SPACE_DOMICILIATION,
		},
	},
}

// GetSpaceInfo retourne la fiche d'un type d'espace, nil si le type est
// inconnu. L'appelant traite nil comme "non trouvé", pas comme une erreur.
func GetSpaceInfo(spaceType, language string) *SpaceInfo {
	lang, ok := catalogData[language]
	if !ok {
		lang = catalogData[constants.LANG_FR]
	}
	info, ok := lang[spaceType]
	if !ok {
		return nil
	}
	return &info
}

// GetAllSpaces retourne le catalogue complet dans la langue demandée.
func GetAllSpaces(language string) map[string]SpaceInfo {
	lang, ok := catalogData[language]
	if !ok {
		lang = catalogData[constants.LANG_FR]
	}
	out := make(map[string]SpaceInfo, len(lang))
	for k, v := range lang {
		out[k] = v
	}
	return out
}
