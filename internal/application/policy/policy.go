package policy

import (
	"github.com/jhoicas/Jardineria-api/internal/domain"
	"github.com/jhoicas/Jardineria-api/internal/domain/entity"
)

// Action acción solicitada sobre un recurso.
type Action string

// Acciones reconocidas por el evaluador.
const (
	ActionRead        Action = "read"
	ActionCreate      Action = "create"
	ActionUpdate      Action = "update"
	ActionDelete      Action = "delete"
	ActionManageUsers Action = "manage_users" // alta/gestión de empleados, solo admin
)

// Kind tipo de recurso evaluado. Para los tipos "solo dueño" la propiedad
// es obligatoria para cualquier rol, incluido admin.
type Kind string

// Tipos de recurso.
const (
	KindClient           Kind = "client"
	KindJob              Kind = "job"
	KindJobNote          Kind = "job_note"
	KindPhoto            Kind = "photo"
	KindTask             Kind = "task"
	KindSavedItem        Kind = "saved_item"
	KindEstimateTemplate Kind = "estimate_template"
	KindUser             Kind = "user"
)

// Session identidad autenticada extraída del JWT. Se pasa explícita a cada
// handler y al evaluador; nunca se lee de estado global.
type Session struct {
	UserID    string
	CompanyID string
	Role      string // entity.RoleAdmin | RoleGerente | RoleOperario
}

// Valid indica si la sesión tiene lo mínimo para ser evaluada.
func (s Session) Valid() bool {
	return s.UserID != "" && s.Role != ""
}

// Resource snapshot mínimo de un recurso para decidir acceso. CompanyID vacío
// significa recurso aún no creado (create) o sin tenant.
type Resource struct {
	Kind       Kind
	CompanyID  string
	OwnerID    string
	AssigneeID string
}

// ownerOnly tipos de recurso estrictamente privados del dueño: ni admin ni
// gerente acceden a los de otro usuario.
func ownerOnly(k Kind) bool {
	return k == KindSavedItem || k == KindEstimateTemplate
}

// Authorize decide si la sesión puede ejecutar la acción sobre el recurso.
// Devuelve nil si se permite, domain.ErrUnauthorized si no hay sesión válida
// y domain.ErrForbidden si la política lo niega.
//
// Orden de evaluación:
//  1. Sin sesión válida → ErrUnauthorized.
//  2. Recurso de otra empresa → ErrForbidden, sin importar el rol.
//  3. Tipos "solo dueño" (saved_item, estimate_template) → requiere ser dueño,
//     sin importar el rol.
//  4. admin → todo dentro de su empresa, incluida la gestión de usuarios.
//  5. gerente → lectura/escritura/borrado de recursos de la empresa;
//     gestión de usuarios negada.
//  6. operario → todo sobre lo propio (OwnerID); lectura y actualización sobre
//     lo asignado (AssigneeID), pero no borrado.
func Authorize(s Session, action Action, r Resource) error {
	if !s.Valid() {
		return domain.ErrUnauthorized
	}
	if r.CompanyID != "" && r.CompanyID != s.CompanyID {
		return domain.ErrForbidden
	}
	if ownerOnly(r.Kind) && action != ActionCreate {
		if r.OwnerID != s.UserID {
			return domain.ErrForbidden
		}
		return nil
	}
	switch s.Role {
	case entity.RoleAdmin:
		return nil
	case entity.RoleGerente:
		if action == ActionManageUsers {
			return domain.ErrForbidden
		}
		return nil
	case entity.RoleOperario:
		if action == ActionManageUsers {
			return domain.ErrForbidden
		}
		if action == ActionCreate {
			return nil
		}
		if r.OwnerID == s.UserID {
			return nil
		}
		if r.AssigneeID != "" && r.AssigneeID == s.UserID {
			if action == ActionRead || action == ActionUpdate {
				return nil
			}
			return domain.ErrForbidden
		}
		return domain.ErrForbidden
	default:
		return domain.ErrForbidden
	}
}
