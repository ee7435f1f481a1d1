package dto

import "time"

// PhotoResponse salida de una foto (la descarga del archivo va por otra ruta).
type PhotoResponse struct {
	ID          string    `json:"id"`
	CompanyID   string    `json:"company_id"`
	OwnerID     string    `json:"owner_id"`
	JobID       string    `json:"job_id,omitempty"`
	Caption     string    `json:"caption"`
	ContentType string    `json:"content_type"`
	SizeBytes   int64     `json:"size_bytes"`
	CreatedAt   time.Time `json:"created_at"`
}
