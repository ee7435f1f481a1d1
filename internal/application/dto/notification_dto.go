package dto

import "time"

// NotificationEvent evento del feed unificado de notificaciones.
// ID es sintético ("photo:<id>", "job:<id>", "task:<id>") y sirve para deduplicar.
type NotificationEvent struct {
	ID        string                 `json:"id"`
	Kind      string                 `json:"kind"` // photo_uploaded, job_completed, task_done
	Title     string                 `json:"title"`
	Message   string                 `json:"message"`
	Timestamp time.Time              `json:"timestamp"`
	Data      map[string]interface{} `json:"data,omitempty"`
}

// NotificationFeedResponse feed ordenado (descendente por timestamp) más conteo.
type NotificationFeedResponse struct {
	Notifications []NotificationEvent `json:"notifications"`
	Count         int                 `json:"count"`
	LastChecked   time.Time           `json:"last_checked"`
}
