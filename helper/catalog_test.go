package helper

import (
	"testing"

	"nzoo_immo/constants"
)

func TestGetSpaceInfo(t *testing.T) {
	info := GetSpaceInfo(constants.SPACE_COWORKING, constants.LANG_FR)
	if info == nil {
		t.Fatal("le coworking doit exister au catalogue")
	}
	if info.Title != "Espace Coworking" {
		t.Errorf("titre FR = %q", info.Title)
	}

	if got := GetSpaceInfo("hangar", constants.LANG_FR); got != nil {
		t.Errorf("un type inconnu doit retourner nil, obtenu %+v", got)
	}
}

func TestGetSpaceInfoFallbackLanguage(t *testing.T) {
	info := GetSpaceInfo(constants.SPACE_BUREAU_PRIVE, "de")
	if info == nil {
		t.Fatal("une langue inconnue doit retomber sur le français")
	}
	if info.Title != "Bureau Privé" {
		t.Errorf("titre attendu en français, obtenu %q", info.Title)
	}
}

// Les prix et capacités sont les mêmes quelle que soit la langue; seuls les
// textes changent.
func TestCatalogPricesLanguageInvariant(t *testing.T) {
	for _, spaceType := range constants.SpaceTypes {
		fr := GetSpaceInfo(spaceType, constants.LANG_FR)
		en := GetSpaceInfo(spaceType, constants.LANG_EN)
		if fr == nil || en == nil {
			t.Fatalf("type %q absent d'une des langues", spaceType)
		}

		same := func(a, b *float64) bool {
			if a == nil || b == nil {
				return a == b
			}
			return *a == *b
		}
		if !same(fr.HourlyPrice, en.HourlyPrice) ||
			!same(fr.DailyPrice, en.DailyPrice) ||
			!same(fr.MonthlyPrice, en.MonthlyPrice) ||
			!same(fr.YearlyPrice, en.YearlyPrice) {
			t.Errorf("prix divergents entre langues pour %q", spaceType)
		}
		if fr.MaxOccupants != en.MaxOccupants {
			t.Errorf("capacité divergente entre langues pour %q", spaceType)
		}
		if fr.Type != spaceType || en.Type != spaceType {
			t.Errorf("identifiant de type incohérent pour %q", spaceType)
		}
	}
}

func TestGetAllSpaces(t *testing.T) {
	spaces := GetAllSpaces(constants.LANG_EN)
	if len(spaces) != len(constants.SpaceTypes) {
		t.Fatalf("catalogue incomplet: %d types", len(spaces))
	}
	if spaces[constants.SPACE_SALLE_REUNION].Title != "Meeting Room" {
		t.Errorf("titre EN inattendu: %q", spaces[constants.SPACE_SALLE_REUNION].Title)
	}
}
