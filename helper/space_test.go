package helper

import (
	"testing"

	"nzoo_immo/constants"
	"nzoo_immo/utils"
)

func TestValidateSpacePrices(t *testing.T) {
	hourly := utils.Ptr(25.0)
	daily := utils.Ptr(15.0)
	monthly := utils.Ptr(300.0)

	tests := []struct {
		name      string
		spaceType string
		hourly    *float64
		daily     *float64
		monthly   *float64
		wantErr   bool
	}{
		{"salle de réunion avec horaire", constants.SPACE_SALLE_REUNION, hourly, nil, nil, false},
		{"salle de réunion sans horaire", constants.SPACE_SALLE_REUNION, nil, daily, monthly, true},
		{"coworking avec journalier", constants.SPACE_COWORKING, nil, daily, nil, false},
		{"coworking sans journalier", constants.SPACE_COWORKING, hourly, nil, monthly, true},
		{"bureau privé avec mensuel", constants.SPACE_BUREAU_PRIVE, nil, nil, monthly, false},
		{"bureau privé sans mensuel", constants.SPACE_BUREAU_PRIVE, hourly, daily, nil, true},
		{"domiciliation sans mensuel", constants.SPACE_DOMICILIATION, nil, nil, nil, true},
		{"domiciliation avec mensuel", constants.SPACE_DOMICILIATION, nil, nil, monthly, false},
	}

	for _, tt := range tests {
		err := ValidateSpacePrices(tt.spaceType, tt.hourly, tt.daily, tt.monthly)
		if tt.wantErr && err == nil {
			t.Errorf("%s: erreur attendue", tt.name)
		}
		if !tt.wantErr && err != nil {
			t.Errorf("%s: erreur inattendue: %v", tt.name, err)
		}
	}
}
