package usecase

import (
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/jhoicas/Jardineria-api/internal/application/dto"
	"github.com/jhoicas/Jardineria-api/internal/application/policy"
	"github.com/jhoicas/Jardineria-api/internal/domain"
	"github.com/jhoicas/Jardineria-api/internal/domain/entity"
	"github.com/jhoicas/Jardineria-api/internal/domain/repository"
)

// FileStorage puerto de almacenamiento de archivos (disco local en producción).
type FileStorage interface {
	// Save persiste el contenido y devuelve la ruta relativa y el tamaño escrito.
	Save(name string, r io.Reader) (path string, size int64, err error)
	Remove(path string) error
	Open(path string) (io.ReadCloser, error)
}

// UploadPhotoInput metadatos + contenido de una subida de foto.
type UploadPhotoInput struct {
	FileName    string
	ContentType string
	Caption     string
	JobID       string
	Content     io.Reader
}

// PhotoUseCase casos de uso de fotos: el registro en DB es la fuente de verdad,
// el archivo en disco lo sigue.
type PhotoUseCase struct {
	photoRepo repository.PhotoRepository
	jobRepo   repository.JobRepository
	storage   FileStorage
	log       zerolog.Logger
}

// NewPhotoUseCase construye el caso de uso.
func NewPhotoUseCase(photoRepo repository.PhotoRepository, jobRepo repository.JobRepository, storage FileStorage, log zerolog.Logger) *PhotoUseCase {
	return &PhotoUseCase{photoRepo: photoRepo, jobRepo: jobRepo, storage: storage, log: log}
}

func photoSnapshot(p *entity.Photo) policy.Resource {
	return policy.Resource{Kind: policy.KindPhoto, CompanyID: p.CompanyID, OwnerID: p.OwnerID}
}

// Upload guarda el archivo y registra la foto. Si el INSERT falla se elimina
// el archivo recién escrito para no dejar huérfanos en disco.
func (uc *PhotoUseCase) Upload(s policy.Session, in UploadPhotoInput) (*dto.PhotoResponse, error) {
	if in.FileName == "" || in.Content == nil {
		return nil, domain.ErrInvalidInput
	}
	if err := policy.Authorize(s, policy.ActionCreate, policy.Resource{Kind: policy.KindPhoto, CompanyID: s.CompanyID}); err != nil {
		return nil, err
	}
	if in.JobID != "" {
		job, err := uc.jobRepo.GetByID(in.JobID)
		if err != nil {
			return nil, err
		}
		if job == nil || job.CompanyID != s.CompanyID {
			return nil, domain.ErrNotFound
		}
	}
	path, size, err := uc.storage.Save(in.FileName, in.Content)
	if err != nil {
		return nil, err
	}
	photo := &entity.Photo{
		ID:          uuid.New().String(),
		CompanyID:   s.CompanyID,
		OwnerID:     s.UserID,
		JobID:       in.JobID,
		FilePath:    path,
		Caption:     in.Caption,
		ContentType: in.ContentType,
		SizeBytes:   size,
		CreatedAt:   time.Now(),
	}
	if err := uc.photoRepo.Create(photo); err != nil {
		if rmErr := uc.storage.Remove(path); rmErr != nil {
			uc.log.Warn().Err(rmErr).Str("path", path).Msg("no se pudo limpiar el archivo tras fallo de insert")
		}
		return nil, err
	}
	return toPhotoResponse(photo), nil
}

// Get obtiene los metadatos de una foto.
func (uc *PhotoUseCase) Get(s policy.Session, id string) (*dto.PhotoResponse, error) {
	photo, err := uc.photoRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if photo == nil || photo.CompanyID != s.CompanyID {
		return nil, domain.ErrNotFound
	}
	if err := policy.Authorize(s, policy.ActionRead, photoSnapshot(photo)); err != nil {
		return nil, err
	}
	return toPhotoResponse(photo), nil
}

// OpenFile abre el archivo de una foto visible para la sesión (descarga).
func (uc *PhotoUseCase) OpenFile(s policy.Session, id string) (io.ReadCloser, *dto.PhotoResponse, error) {
	photo, err := uc.photoRepo.GetByID(id)
	if err != nil {
		return nil, nil, err
	}
	if photo == nil || photo.CompanyID != s.CompanyID {
		return nil, nil, domain.ErrNotFound
	}
	if err := policy.Authorize(s, policy.ActionRead, photoSnapshot(photo)); err != nil {
		return nil, nil, err
	}
	rc, err := uc.storage.Open(photo.FilePath)
	if err != nil {
		return nil, nil, err
	}
	return rc, toPhotoResponse(photo), nil
}

// List lista fotos: admin/gerente las de la empresa, operario las propias.
func (uc *PhotoUseCase) List(s policy.Session, limit, offset int) ([]*dto.PhotoResponse, error) {
	if !s.Valid() {
		return nil, domain.ErrUnauthorized
	}
	var (
		photos []*entity.Photo
		err    error
	)
	if s.Role == entity.RoleOperario {
		photos, err = uc.photoRepo.ListByOwner(s.CompanyID, s.UserID, limit, offset)
	} else {
		photos, err = uc.photoRepo.ListByCompany(s.CompanyID, limit, offset)
	}
	if err != nil {
		return nil, err
	}
	out := make([]*dto.PhotoResponse, 0, len(photos))
	for _, p := range photos {
		out = append(out, toPhotoResponse(p))
	}
	return out, nil
}

// Delete elimina el registro y después el archivo. Si el archivo no se puede
// borrar se registra y se continúa: el registro es la fuente de verdad.
func (uc *PhotoUseCase) Delete(s policy.Session, id string) error {
	photo, err := uc.photoRepo.GetByID(id)
	if err != nil {
		return err
	}
	if photo == nil {
		return domain.ErrNotFound
	}
	if err := policy.Authorize(s, policy.ActionDelete, photoSnapshot(photo)); err != nil {
		return err
	}
	if err := uc.photoRepo.Delete(id); err != nil {
		return err
	}
	if err := uc.storage.Remove(photo.FilePath); err != nil {
		uc.log.Warn().Err(err).Str("path", photo.FilePath).Msg("registro eliminado pero el archivo no se pudo borrar")
	}
	return nil
}

func toPhotoResponse(p *entity.Photo) *dto.PhotoResponse {
	return &dto.PhotoResponse{
		ID:          p.ID,
		CompanyID:   p.CompanyID,
		OwnerID:     p.OwnerID,
		JobID:       p.JobID,
		Caption:     p.Caption,
		ContentType: p.ContentType,
		SizeBytes:   p.SizeBytes,
		CreatedAt:   p.CreatedAt,
	}
}
