package config

import (
	"log"
	"os"
	"sync"

	"github.com/joho/godotenv"
)

var loadOnce sync.Once

// Config lit une variable d'environnement, en chargeant .env au premier appel.
func Config(key string) string {
	loadOnce.Do(func() {
		if err := godotenv.Load(); err != nil {
			log.Println("Fichier .env introuvable, utilisation des variables d'environnement système")
		}
	})
	return os.Getenv(key)
}

// ConfigOr retourne la valeur de la variable ou un défaut si elle est vide.
func ConfigOr(key, fallback string) string {
	if v := Config(key); v != "" {
		return v
	}
	return fallback
}
