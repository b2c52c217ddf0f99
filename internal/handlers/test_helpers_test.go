package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/gessopro/gesseiros-api/internal/config"
	"github.com/gessopro/gesseiros-api/internal/testutils"
)

func setup(t *testing.T) (*gin.Engine, *gorm.DB, *config.Config) {
	t.Helper()

	gdb := testutils.SetupDB(t)
	cfg := testutils.TestConfig(t)
	r := testutils.SetupRouter(t, gdb, cfg)
	return r, gdb, cfg
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var out map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
	return out
}

// register cadastra um gesseiro e devolve o token e o id emitidos.
func register(t *testing.T, r *gin.Engine, nome, cidade, telefone, email, senha string) (string, uint) {
	t.Helper()

	w := doJSON(t, r, "POST", "/api/cadastro-completo", "", gin.H{
		"nome":     nome,
		"cidade":   cidade,
		"telefone": telefone,
		"email":    email,
		"senha":    senha,
	})
	if w.Code != 200 {
		t.Fatalf("register %s: status %d body %s", email, w.Code, w.Body.String())
	}

	out := decode(t, w)
	token, _ := out["token"].(string)
	id, _ := out["gesseiroId"].(float64)
	if token == "" || id == 0 {
		t.Fatalf("register %s: unexpected response %v", email, out)
	}
	return token, uint(id)
}

// multipartPhoto monta um corpo multipart com o campo "foto" e, se não
// vazio, o campo "descricao".
func multipartPhoto(t *testing.T, filename, contentType string, data []byte, descricao string) (*bytes.Buffer, string) {
	t.Helper()

	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)

	hdr := textproto.MIMEHeader{}
	hdr.Set("Content-Disposition", fmt.Sprintf(`form-data; name="foto"; filename="%s"`, filename))
	hdr.Set("Content-Type", contentType)

	part, err := w.CreatePart(hdr)
	if err != nil {
		t.Fatalf("create part: %v", err)
	}
	if _, err := part.Write(data); err != nil {
		t.Fatalf("write part: %v", err)
	}

	if descricao != "" {
		if err := w.WriteField("descricao", descricao); err != nil {
			t.Fatalf("write field: %v", err)
		}
	}

	_ = w.Close()
	return body, w.FormDataContentType()
}
