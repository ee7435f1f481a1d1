package entity

import "time"

// Photo foto de un trabajo (antes/después, avance). El archivo vive en disco
// bajo STORAGE_PATH; el registro guarda la ruta relativa.
type Photo struct {
	ID          string
	CompanyID   string
	OwnerID     string
	JobID       string // vacío = foto suelta, sin trabajo asociado
	FilePath    string
	Caption     string
	ContentType string
	SizeBytes   int64
	CreatedAt   time.Time
}
