package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/jhoicas/Jardineria-api/internal/application/usecase"
)

var _ usecase.FileStorage = (*LocalStorage)(nil)

// LocalStorage almacenamiento de fotos en disco local bajo un directorio raíz.
// Los nombres de archivo se generan con UUID para evitar colisiones y path
// traversal; del nombre original solo se conserva la extensión.
type LocalStorage struct {
	root string
}

// NewLocalStorage crea el directorio raíz si no existe.
func NewLocalStorage(root string) (*LocalStorage, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("crear directorio de uploads: %w", err)
	}
	return &LocalStorage{root: root}, nil
}

// Save escribe el contenido y devuelve la ruta relativa al raíz y el tamaño.
func (s *LocalStorage) Save(name string, r io.Reader) (string, int64, error) {
	ext := strings.ToLower(filepath.Ext(name))
	rel := uuid.New().String() + ext
	f, err := os.Create(filepath.Join(s.root, rel))
	if err != nil {
		return "", 0, fmt.Errorf("crear archivo: %w", err)
	}
	n, err := io.Copy(f, r)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		_ = os.Remove(filepath.Join(s.root, rel))
		return "", 0, fmt.Errorf("escribir archivo: %w", err)
	}
	return rel, n, nil
}

// Remove elimina un archivo por su ruta relativa.
func (s *LocalStorage) Remove(path string) error {
	full, err := s.resolve(path)
	if err != nil {
		return err
	}
	if err := os.Remove(full); err != nil {
		return fmt.Errorf("eliminar archivo: %w", err)
	}
	return nil
}

// Open abre un archivo por su ruta relativa.
func (s *LocalStorage) Open(path string) (io.ReadCloser, error) {
	full, err := s.resolve(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(full)
	if err != nil {
		return nil, fmt.Errorf("abrir archivo: %w", err)
	}
	return f, nil
}

// resolve rechaza rutas que escapen del directorio raíz.
func (s *LocalStorage) resolve(path string) (string, error) {
	full := filepath.Join(s.root, filepath.Clean("/"+path))
	if !strings.HasPrefix(full, filepath.Clean(s.root)+string(os.PathSeparator)) {
		return "", fmt.Errorf("ruta fuera del directorio de uploads: %s", path)
	}
	return full, nil
}
