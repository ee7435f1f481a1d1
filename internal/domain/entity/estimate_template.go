package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// EstimateTemplate plantilla de presupuesto reutilizable. Es estrictamente del
// usuario que la creó: ni admin ni gerente ven plantillas ajenas.
type EstimateTemplate struct {
	ID          string
	CompanyID   string
	OwnerID     string
	Name        string
	Description string
	Items       []TemplateItem
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TemplateItem línea de una plantilla de presupuesto. Al actualizar la plantilla
// se reemplaza el conjunto completo de líneas en una sola transacción.
type TemplateItem struct {
	ID          string
	TemplateID  string
	Description string
	Quantity    decimal.Decimal
	UnitPrice   decimal.Decimal
	Position    int
}
