package storage

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/gessopro/gesseiros-api/internal/httperr"
)

var allowedExts = map[string]string{
	".jpeg": "image/jpeg",
	".jpg":  "image/jpeg",
	".png":  "image/png",
	".gif":  "image/gif",
}

// Uploads grava fotos enviadas no disco local. Os arquivos ficam em dir e
// são expostos publicamente sob /uploads.
type Uploads struct {
	dir     string
	maxSize int64
}

func NewUploads(dir string, maxSize int64) *Uploads {
	return &Uploads{dir: dir, maxSize: maxSize}
}

// Validate verifica extensão, tipo declarado e tamanho. Retorna a extensão
// normalizada ou um BusinessError com a mensagem para o cliente.
func (u *Uploads) Validate(file *multipart.FileHeader) (string, error) {
	if file.Size > u.maxSize {
		return "", httperr.ErrBusiness(
			fmt.Sprintf("Arquivo muito grande (máximo %dMB)", u.maxSize/(1024*1024)))
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	mime, ok := allowedExts[ext]
	if !ok {
		return "", httperr.ErrBusiness("Apenas imagens são permitidas!")
	}

	if ct := file.Header.Get("Content-Type"); ct != "" && ct != mime {
		return "", httperr.ErrBusiness("Apenas imagens são permitidas!")
	}

	return ext, nil
}

// Save valida e persiste o arquivo com um nome único, retornando o caminho
// público ("uploads/<arquivo>") a ser guardado na linha de foto.
func (u *Uploads) Save(file *multipart.FileHeader) (string, error) {
	ext, err := u.Validate(file)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(u.dir, 0o755); err != nil {
		return "", fmt.Errorf("create upload dir: %w", err)
	}

	name := fmt.Sprintf("gesseiro-%d-%s%s", time.Now().UnixMilli(), uuid.New().String(), ext)

	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	dst, err := os.Create(filepath.Join(u.dir, name))
	if err != nil {
		return "", fmt.Errorf("create file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		_ = os.Remove(dst.Name())
		return "", fmt.Errorf("write file: %w", err)
	}

	return "uploads/" + name, nil
}

// Remove apaga o arquivo apontado por um caminho público salvo. Arquivo já
// ausente não é erro.
func (u *Uploads) Remove(urlPath string) error {
	name := filepath.Base(urlPath)
	err := os.Remove(filepath.Join(u.dir, name))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
