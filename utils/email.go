package utils

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"
	"io"
	"log"
	"strconv"

	"nzoo_immo/config"

	"gopkg.in/gomail.v2"
)

// ReservationConfirmationData données pour le template email
type ReservationConfirmationData struct {
	ReservationCode string
	FullName        string
	SpaceTitle      string
	StartDate       string
	EndDate         string
	Occupants       int
	Amount          float64
	PaymentMethod   string
	Company         string
	Activity        string
	DetailLink      string
}

// SendReservationConfirmationEmail envoie l'email de confirmation avec le QR
// de la référence en pièce jointe. Retourne une erreur si l'envoi échoue;
// l'appelant décide quoi en faire (la réservation reste créée).
func SendReservationConfirmationEmail(to string, data ReservationConfirmationData) error {
	host := config.Config("SMTP_HOST")
	portStr := config.Config("SMTP_PORT")
	username := config.Config("SMTP_USERNAME")
	password := config.Config("SMTP_PASSWORD")
	from := config.Config("SMTP_FROM")

	if host == "" || from == "" {
		return errors.New("configuration SMTP manquante (SMTP_HOST / SMTP_FROM)")
	}

	tmpl, err := template.ParseFiles("templates/reservation_confirmation.html")
	if err != nil {
		return fmt.Errorf("template email introuvable: %w", err)
	}

	var body bytes.Buffer
	if err := tmpl.Execute(&body, data); err != nil {
		return fmt.Errorf("rendu du template email: %w", err)
	}

	port, _ := strconv.Atoi(portStr)

	m := gomail.NewMessage()
	m.SetHeader("From", from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", "Confirmation de réservation #"+data.ReservationCode)
	m.SetBody("text/html", body.String())

	// QR de la référence, présenté à l'accueil
	if qrBytes, err := GenerateQRCode(data.ReservationCode, 256); err != nil {
		log.Printf("Erreur génération QR pour %s: %v", data.ReservationCode, err)
	} else {
		filename := fmt.Sprintf("Reservation_%s.png", data.ReservationCode)
		m.Attach(filename, gomail.Rename(filename), gomail.SetCopyFunc(func(w io.Writer) error {
			_, err := io.Copy(w, bytes.NewReader(qrBytes))
			return err
		}))
	}

	d := gomail.NewDialer(host, port, username, password)
	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("envoi email: %w", err)
	}
	return nil
}
