package helper

import (
	"nzoo_immo/constants"
	"nzoo_immo/model"
)

// CanEditField décide si un rôle peut modifier un champ de réservation.
// L'admin modifie tout; un utilisateur authentifié non admin ne peut changer
// que le statut. Le contrôle est appliqué ici, côté serveur, pas dans l'UI.
func CanEditField(fieldName, role string) bool {
	if role == constants.ROLE_ADMIN {
		return true
	}
	if role == constants.ROLE_USER {
		return fieldName == "status"
	}
	return false
}

// FilterEditableFields remet à nil les champs que le rôle n'a pas le droit de
// modifier et retourne leurs noms, pour que l'appelant sache ce qui a été
// ignoré au lieu d'un succès partiel silencieux.
func FilterEditableFields(input *model.UpdateReservationInput, role string) []string {
	if role == constants.ROLE_ADMIN {
		return nil
	}

	var ignored []string
	drop := func(name string, clear func()) {
		if !CanEditField(name, role) {
			clear()
			ignored = append(ignored, name)
		}
	}

	if input.FullName != nil {
		drop("fullName", func() { input.FullName = nil })
	}
	if input.Email != nil {
		drop("email", func() { input.Email = nil })
	}
	if input.Phone != nil {
		drop("phone", func() { input.Phone = nil })
	}
	if input.Company != nil {
		drop("company", func() { input.Company = nil })
	}
	if input.Activity != nil {
		drop("activity", func() { input.Activity = nil })
	}
	if input.Address != nil {
		drop("address", func() { input.Address = nil })
	}
	if input.SpaceType != nil {
		drop("spaceType", func() { input.SpaceType = nil })
	}
	if input.StartDate != nil {
		drop("startDate", func() { input.StartDate = nil })
	}
	if input.EndDate != nil {
		drop("endDate", func() { input.EndDate = nil })
	}
	if input.Occupants != nil {
		drop("occupants", func() { input.Occupants = nil })
	}
	if input.SubscriptionType != nil {
		drop("subscriptionType", func() { input.SubscriptionType = nil })
	}
	if input.Amount != nil {
		drop("amount", func() { input.Amount = nil })
	}
	if input.PaymentMethod != nil {
		drop("paymentMethod", func() { input.PaymentMethod = nil })
	}
	if input.PaymentStatus != nil {
		drop("paymentStatus", func() { input.PaymentStatus = nil })
	}
	if input.Notes != nil {
		drop("notes", func() { input.Notes = nil })
	}
	if input.AdminNotes != nil {
		drop("adminNotes", func() { input.AdminNotes = nil })
	}

	return ignored
}
