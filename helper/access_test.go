package helper

import (
	"testing"

	"nzoo_immo/constants"
	"nzoo_immo/model"
	"nzoo_immo/utils"
)

func TestCanEditField(t *testing.T) {
	adminFields := []string{"fullName", "email", "amount", "adminNotes", "status", "paymentStatus"}
	for _, f := range adminFields {
		if !CanEditField(f, constants.ROLE_ADMIN) {
			t.Errorf("l'admin doit pouvoir modifier %q", f)
		}
	}

	if !CanEditField("status", constants.ROLE_USER) {
		t.Error("un utilisateur doit pouvoir modifier le statut")
	}
	for _, f := range []string{"amount", "email", "adminNotes", "startDate"} {
		if CanEditField(f, constants.ROLE_USER) {
			t.Errorf("un utilisateur ne doit pas pouvoir modifier %q", f)
		}
	}

	if CanEditField("status", "autre") {
		t.Error("un rôle inconnu ne doit rien pouvoir modifier")
	}
}

func TestFilterEditableFieldsAdmin(t *testing.T) {
	input := model.UpdateReservationInput{
		FullName: utils.StringPtr("Jean Mavungu"),
		Amount:   utils.Ptr(600.0),
		Status:   utils.StringPtr(constants.RESERVATION_CONFIRMED),
	}

	ignored := FilterEditableFields(&input, constants.ROLE_ADMIN)
	if len(ignored) != 0 {
		t.Errorf("aucun champ ne doit être ignoré pour l'admin, obtenu %v", ignored)
	}
	if input.FullName == nil || input.Amount == nil {
		t.Error("les champs de l'admin ne doivent pas être effacés")
	}
}

func TestFilterEditableFieldsUser(t *testing.T) {
	input := model.UpdateReservationInput{
		FullName:   utils.StringPtr("Jean Mavungu"),
		Amount:     utils.Ptr(600.0),
		AdminNotes: utils.StringPtr("remise accordée"),
		Status:     utils.StringPtr(constants.RESERVATION_CANCELLED),
	}

	ignored := FilterEditableFields(&input, constants.ROLE_USER)

	if input.Status == nil || *input.Status != constants.RESERVATION_CANCELLED {
		t.Error("le statut doit être conservé pour un utilisateur")
	}
	if input.FullName != nil || input.Amount != nil || input.AdminNotes != nil {
		t.Error("les champs interdits doivent être effacés avant application")
	}

	if len(ignored) != 3 {
		t.Fatalf("attendu 3 champs ignorés, obtenu %v", ignored)
	}
	found := map[string]bool{}
	for _, f := range ignored {
		found[f] = true
	}
	for _, f := range []string{"fullName", "amount", "adminNotes"} {
		if !found[f] {
			t.Errorf("le champ ignoré %q doit être signalé à l'appelant", f)
		}
	}
}
