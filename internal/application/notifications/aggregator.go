package notifications

import (
	"context"
	"sort"
	"time"

	"github.com/jhoicas/Jardineria-api/internal/application/dto"
)

// DefaultWindow ventana por defecto del feed cuando no se indica lastChecked.
const DefaultWindow = 7 * 24 * time.Hour

// Source origen de eventos para el feed. Cada fuente devuelve los eventos
// estrictamente posteriores a `after` (el instante exacto queda excluido).
type Source interface {
	EventsAfter(ctx context.Context, companyID string, after time.Time) ([]dto.NotificationEvent, error)
}

// Aggregator fan-in de lectura sobre las fuentes registradas. No muta estado:
// para un mismo `since` el resultado es idéntico mientras no entren eventos.
type Aggregator struct {
	sources []Source
}

// NewAggregator construye el agregador con sus fuentes.
func NewAggregator(sources ...Source) *Aggregator {
	return &Aggregator{sources: sources}
}

// Collect junta los eventos de todas las fuentes posteriores a `since`,
// deduplica por ID sintético y ordena descendente por timestamp (desempate
// por ID para que el orden sea determinista).
// Un `since` cero aplica la ventana por defecto de 7 días.
func (a *Aggregator) Collect(ctx context.Context, companyID string, since time.Time) (*dto.NotificationFeedResponse, error) {
	if since.IsZero() {
		since = time.Now().Add(-DefaultWindow)
	}
	seen := make(map[string]struct{})
	var events []dto.NotificationEvent
	for _, src := range a.sources {
		batch, err := src.EventsAfter(ctx, companyID, since)
		if err != nil {
			return nil, err
		}
		for _, ev := range batch {
			if !ev.Timestamp.After(since) {
				continue
			}
			if _, dup := seen[ev.ID]; dup {
				continue
			}
			seen[ev.ID] = struct{}{}
			events = append(events, ev)
		}
	}
	sort.Slice(events, func(i, j int) bool {
		if events[i].Timestamp.Equal(events[j].Timestamp) {
			return events[i].ID < events[j].ID
		}
		return events[i].Timestamp.After(events[j].Timestamp)
	})
	if events == nil {
		events = []dto.NotificationEvent{}
	}
	return &dto.NotificationFeedResponse{
		Notifications: events,
		Count:         len(events),
		LastChecked:   since,
	}, nil
}
