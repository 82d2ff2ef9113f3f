package helper

import (
	"testing"

	"nzoo_immo/model"

	"github.com/golang-jwt/jwt/v5"
)

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("nzoo2025admin")
	if err != nil {
		t.Fatalf("erreur hash: %v", err)
	}
	if hash == "nzoo2025admin" {
		t.Fatal("le mot de passe ne doit jamais être stocké en clair")
	}

	if !CheckPasswordHash("nzoo2025admin", hash) {
		t.Error("le bon mot de passe doit être accepté")
	}
	if CheckPasswordHash("autre", hash) {
		t.Error("un mauvais mot de passe doit être refusé")
	}
}

func TestTokenRoundTrip(t *testing.T) {
	claim := model.TokenClaim{UserId: 7, Username: "administration", Role: "admin"}

	signed, err := GenerateAccessToken(claim)
	if err != nil {
		t.Fatalf("erreur génération token: %v", err)
	}

	token, err := ParseToken(signed)
	if err != nil || !token.Valid {
		t.Fatalf("token invalide: %v", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		t.Fatal("claims illisibles")
	}
	if claims["username"] != "administration" || claims["role"] != "admin" {
		t.Errorf("claims inattendus: %v", claims)
	}
	if userId, _ := claims["userId"].(float64); uint(userId) != 7 {
		t.Errorf("userId = %v", claims["userId"])
	}
}

// Le secret est lu au moment de signer/vérifier, pas figé à l'init du
// package: un secret posé après le démarrage (ex: via .env) doit être pris
// en compte.
func TestTokenSecretReadLazily(t *testing.T) {
	claim := model.TokenClaim{UserId: 1, Username: "administration", Role: "admin"}

	t.Setenv("JWT_SECRET", "secret-initial")
	signed, err := GenerateAccessToken(claim)
	if err != nil {
		t.Fatalf("erreur génération token: %v", err)
	}

	token, err := ParseToken(signed)
	if err != nil || !token.Valid {
		t.Fatalf("token signé et vérifié avec le même secret doit être valide: %v", err)
	}

	t.Setenv("JWT_SECRET", "secret-tourne")
	if token, err := ParseToken(signed); err == nil && token.Valid {
		t.Error("un token signé avec l'ancien secret doit être refusé après rotation")
	}
}

func TestValidEmail(t *testing.T) {
	valides := []string{"client@nzooimmo.com", "jean.mavungu@gmail.com"}
	for _, e := range valides {
		if !ValidEmail(e) {
			t.Errorf("%q doit être accepté", e)
		}
	}
	invalides := []string{"", "pas-un-email", "@nzooimmo.com"}
	for _, e := range invalides {
		if ValidEmail(e) {
			t.Errorf("%q doit être refusé", e)
		}
	}
}
