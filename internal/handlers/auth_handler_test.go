package handlers_test

import (
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/gessopro/gesseiros-api/internal/auth"
	"github.com/gessopro/gesseiros-api/internal/models"
)

func TestRegister_TokenCarriesIdentity(t *testing.T) {
	r, _, cfg := setup(t)

	token, id := register(t, r, "Ana", "Recife", "123", "ana@x.com", "secret")

	claims, err := auth.NewService(cfg.JWTSecret, cfg.TokenTTL).VerifyToken(token)
	if err != nil {
		t.Fatalf("VerifyToken: %v", err)
	}
	if claims.GesseiroID != id {
		t.Fatalf("expected gesseiroId %d in token, got %d", id, claims.GesseiroID)
	}
	if claims.Email != "ana@x.com" {
		t.Fatalf("expected email ana@x.com in token, got %q", claims.Email)
	}
}

func TestRegister_CreatesUsuarioAndGesseiro(t *testing.T) {
	r, gdb, _ := setup(t)

	_, id := register(t, r, "Ana", "Recife", "123", "ana@x.com", "secret")

	var usuario models.Usuario
	if err := gdb.Where("email = ?", "ana@x.com").First(&usuario).Error; err != nil {
		t.Fatalf("expected credential row: %v", err)
	}
	if usuario.GesseiroID != id {
		t.Fatalf("expected usuario to reference gesseiro %d, got %d", id, usuario.GesseiroID)
	}
	if usuario.SenhaHash == "secret" {
		t.Fatal("password stored in plaintext")
	}
}

func TestRegister_MissingRequiredField(t *testing.T) {
	r, _, _ := setup(t)

	w := doJSON(t, r, "POST", "/api/cadastro-completo", "", gin.H{
		"nome":   "Ana",
		"cidade": "Recife",
		// sem telefone, email e senha
	})
	if w.Code != 400 {
		t.Fatalf("expected 400, got %d body %s", w.Code, w.Body.String())
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	r, _, _ := setup(t)

	register(t, r, "Ana", "Recife", "123", "ana@x.com", "secret")

	w := doJSON(t, r, "POST", "/api/cadastro-completo", "", gin.H{
		"nome":     "Outra Ana",
		"cidade":   "Olinda",
		"telefone": "999",
		"email":    "ana@x.com",
		"senha":    "outra-senha",
	})
	if w.Code != 400 {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	if erro := decode(t, w)["erro"]; erro != "Este email já está cadastrado" {
		t.Fatalf("unexpected message: %v", erro)
	}
}

func TestLogin_OK(t *testing.T) {
	r, _, _ := setup(t)

	_, id := register(t, r, "Ana", "Recife", "123", "ana@x.com", "secret")

	w := doJSON(t, r, "POST", "/api/login", "", gin.H{
		"email": "ana@x.com",
		"senha": "secret",
	})
	if w.Code != 200 {
		t.Fatalf("expected 200, got %d body %s", w.Code, w.Body.String())
	}

	out := decode(t, w)
	if out["token"] == "" || out["token"] == nil {
		t.Fatal("expected token in login response")
	}
	if uint(out["gesseiroId"].(float64)) != id {
		t.Fatalf("expected gesseiroId %d, got %v", id, out["gesseiroId"])
	}
	if out["nome"] != "Ana" {
		t.Fatalf("expected nome Ana, got %v", out["nome"])
	}
}

// Senha errada e email inexistente respondem idênticos: mesmo status,
// mesma mensagem.
func TestLogin_GenericFailureMessage(t *testing.T) {
	r, _, _ := setup(t)

	register(t, r, "Ana", "Recife", "123", "ana@x.com", "secret")

	wrongPass := doJSON(t, r, "POST", "/api/login", "", gin.H{
		"email": "ana@x.com",
		"senha": "errada",
	})
	unknownEmail := doJSON(t, r, "POST", "/api/login", "", gin.H{
		"email": "ninguem@x.com",
		"senha": "secret",
	})

	if wrongPass.Code != 401 || unknownEmail.Code != 401 {
		t.Fatalf("expected 401/401, got %d/%d", wrongPass.Code, unknownEmail.Code)
	}
	if wrongPass.Body.String() != unknownEmail.Body.String() {
		t.Fatalf("expected identical bodies, got %q vs %q",
			wrongPass.Body.String(), unknownEmail.Body.String())
	}
}

func TestMe_ReturnsCurrentGesseiro(t *testing.T) {
	r, _, _ := setup(t)

	token, _ := register(t, r, "Ana", "Recife", "123", "ana@x.com", "secret")

	w := doJSON(t, r, "GET", "/api/me", token, nil)
	if w.Code != 200 {
		t.Fatalf("expected 200, got %d body %s", w.Code, w.Body.String())
	}

	out := decode(t, w)
	gesseiro, ok := out["gesseiro"].(map[string]any)
	if !ok || gesseiro["nome"] != "Ana" {
		t.Fatalf("unexpected /me payload: %v", out)
	}
	if out["email"] != "ana@x.com" {
		t.Fatalf("expected token email, got %v", out["email"])
	}
}

func TestMe_RejectsMissingToken(t *testing.T) {
	r, _, _ := setup(t)

	w := doJSON(t, r, "GET", "/api/me", "", nil)
	if w.Code != 401 {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}
