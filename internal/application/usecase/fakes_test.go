package usecase_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"sort"
	"time"

	"github.com/jhoicas/Jardineria-api/internal/application/usecase"
	"github.com/jhoicas/Jardineria-api/internal/domain/entity"
	"github.com/jhoicas/Jardineria-api/internal/domain/repository"
)

// errItemInsert error simulado de inserción de línea.
var errItemInsert = errors.New("fallo simulado al insertar línea")

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria para los tests de use cases. El fakeTxRunner implementa el
// rollback tomando un snapshot del estado antes del callback y restaurándolo
// si el callback falla, igual que haría la transacción real.
// ──────────────────────────────────────────────────────────────────────────────

type fakeClientRepo struct {
	clients map[string]*entity.Client
	// failCreate fuerza el fallo del próximo Create (para probar rollbacks).
	failCreate error
}

var _ repository.ClientRepository = (*fakeClientRepo)(nil)

func newFakeClientRepo() *fakeClientRepo {
	return &fakeClientRepo{clients: map[string]*entity.Client{}}
}

func (r *fakeClientRepo) Create(client *entity.Client) error {
	if r.failCreate != nil {
		return r.failCreate
	}
	cp := *client
	r.clients[client.ID] = &cp
	return nil
}

func (r *fakeClientRepo) GetByID(id string) (*entity.Client, error) {
	c, ok := r.clients[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (r *fakeClientRepo) ListByCompany(companyID string, limit, offset int) ([]*entity.Client, error) {
	var out []*entity.Client
	for _, c := range r.clients {
		if c.CompanyID == companyID {
			cp := *c
			out = append(out, &cp)
		}
	}
	sortClients(out)
	return out, nil
}

func (r *fakeClientRepo) ListByOwner(companyID, ownerID string, limit, offset int) ([]*entity.Client, error) {
	var out []*entity.Client
	for _, c := range r.clients {
		if c.CompanyID == companyID && c.OwnerID == ownerID {
			cp := *c
			out = append(out, &cp)
		}
	}
	sortClients(out)
	return out, nil
}

func (r *fakeClientRepo) Update(client *entity.Client) error {
	cp := *client
	r.clients[client.ID] = &cp
	return nil
}

func (r *fakeClientRepo) Delete(id string) error {
	delete(r.clients, id)
	return nil
}

func (r *fakeClientRepo) snapshot() map[string]*entity.Client {
	s := make(map[string]*entity.Client, len(r.clients))
	for k, v := range r.clients {
		cp := *v
		s[k] = &cp
	}
	return s
}

func (r *fakeClientRepo) restore(s map[string]*entity.Client) { r.clients = s }

func sortClients(cs []*entity.Client) {
	sort.Slice(cs, func(i, j int) bool { return cs[i].ID < cs[j].ID })
}

// ──────────────────────────────────────────────────────────────────────────────

type fakeJobRepo struct {
	jobs       map[string]*entity.Job
	notes      map[string]*entity.JobNote
	failCreate error
}

var _ repository.JobRepository = (*fakeJobRepo)(nil)

func newFakeJobRepo() *fakeJobRepo {
	return &fakeJobRepo{jobs: map[string]*entity.Job{}, notes: map[string]*entity.JobNote{}}
}

func (r *fakeJobRepo) Create(job *entity.Job) error {
	if r.failCreate != nil {
		return r.failCreate
	}
	cp := *job
	r.jobs[job.ID] = &cp
	return nil
}

func (r *fakeJobRepo) GetByID(id string) (*entity.Job, error) {
	j, ok := r.jobs[id]
	if !ok {
		return nil, nil
	}
	cp := *j
	return &cp, nil
}

func (r *fakeJobRepo) ListByCompany(companyID string, limit, offset int) ([]*entity.Job, error) {
	var out []*entity.Job
	for _, j := range r.jobs {
		if j.CompanyID == companyID {
			cp := *j
			out = append(out, &cp)
		}
	}
	sortJobs(out)
	return out, nil
}

func (r *fakeJobRepo) ListForUser(companyID, userID string, limit, offset int) ([]*entity.Job, error) {
	var out []*entity.Job
	for _, j := range r.jobs {
		if j.CompanyID == companyID && (j.OwnerID == userID || j.AssigneeID == userID) {
			cp := *j
			out = append(out, &cp)
		}
	}
	sortJobs(out)
	return out, nil
}

func (r *fakeJobRepo) Update(job *entity.Job) error {
	cp := *job
	r.jobs[job.ID] = &cp
	return nil
}

func (r *fakeJobRepo) Delete(id string) error {
	delete(r.jobs, id)
	return nil
}

func (r *fakeJobRepo) ListCompletedAfter(companyID string, after time.Time) ([]*entity.Job, error) {
	var out []*entity.Job
	for _, j := range r.jobs {
		if j.CompanyID == companyID && j.Status == entity.JobCompletado && j.UpdatedAt.After(after) {
			cp := *j
			out = append(out, &cp)
		}
	}
	sortJobs(out)
	return out, nil
}

func (r *fakeJobRepo) CreateNote(note *entity.JobNote) error {
	cp := *note
	r.notes[note.ID] = &cp
	return nil
}

func (r *fakeJobRepo) GetNote(id string) (*entity.JobNote, error) {
	n, ok := r.notes[id]
	if !ok {
		return nil, nil
	}
	cp := *n
	return &cp, nil
}

func (r *fakeJobRepo) UpdateNote(note *entity.JobNote) error {
	cp := *note
	r.notes[note.ID] = &cp
	return nil
}

func (r *fakeJobRepo) ListNotesByJob(jobID string) ([]*entity.JobNote, error) {
	var out []*entity.JobNote
	for _, n := range r.notes {
		if n.JobID == jobID {
			cp := *n
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (r *fakeJobRepo) snapshot() map[string]*entity.Job {
	s := make(map[string]*entity.Job, len(r.jobs))
	for k, v := range r.jobs {
		cp := *v
		s[k] = &cp
	}
	return s
}

func (r *fakeJobRepo) restore(s map[string]*entity.Job) { r.jobs = s }

func sortJobs(js []*entity.Job) {
	sort.Slice(js, func(i, j int) bool { return js[i].ID < js[j].ID })
}

// ──────────────────────────────────────────────────────────────────────────────

type fakeTemplateRepo struct {
	templates map[string]*entity.EstimateTemplate // solo header
	items     map[string][]entity.TemplateItem    // por templateID
	// failCreateItemAt: falla CreateItem cuando se han insertado N líneas
	// (0 = nunca falla). Sirve para probar la atomicidad del reemplazo.
	failCreateItemAt int
	createdItems     int
}

var _ repository.EstimateTemplateRepository = (*fakeTemplateRepo)(nil)

func newFakeTemplateRepo() *fakeTemplateRepo {
	return &fakeTemplateRepo{
		templates: map[string]*entity.EstimateTemplate{},
		items:     map[string][]entity.TemplateItem{},
	}
}

func (r *fakeTemplateRepo) Create(tpl *entity.EstimateTemplate) error {
	cp := *tpl
	cp.Items = nil
	r.templates[tpl.ID] = &cp
	return nil
}

func (r *fakeTemplateRepo) GetByID(id string) (*entity.EstimateTemplate, error) {
	t, ok := r.templates[id]
	if !ok {
		return nil, nil
	}
	cp := *t
	cp.Items = append([]entity.TemplateItem(nil), r.items[id]...)
	sort.Slice(cp.Items, func(i, j int) bool { return cp.Items[i].Position < cp.Items[j].Position })
	return &cp, nil
}

func (r *fakeTemplateRepo) ListByOwner(companyID, ownerID string, limit, offset int) ([]*entity.EstimateTemplate, error) {
	var out []*entity.EstimateTemplate
	for id, t := range r.templates {
		if t.CompanyID == companyID && t.OwnerID == ownerID {
			cp, _ := r.GetByID(id)
			out = append(out, cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeTemplateRepo) UpdateHeader(tpl *entity.EstimateTemplate) error {
	cp := *tpl
	cp.Items = nil
	r.templates[tpl.ID] = &cp
	return nil
}

func (r *fakeTemplateRepo) DeleteItemsByTemplate(templateID string) error {
	delete(r.items, templateID)
	return nil
}

func (r *fakeTemplateRepo) CreateItem(item *entity.TemplateItem) error {
	r.createdItems++
	if r.failCreateItemAt > 0 && r.createdItems >= r.failCreateItemAt {
		return errItemInsert
	}
	r.items[item.TemplateID] = append(r.items[item.TemplateID], *item)
	return nil
}

func (r *fakeTemplateRepo) Delete(id string) error {
	delete(r.templates, id)
	delete(r.items, id)
	return nil
}

type templateState struct {
	templates map[string]*entity.EstimateTemplate
	items     map[string][]entity.TemplateItem
}

func (r *fakeTemplateRepo) snapshot() templateState {
	s := templateState{
		templates: make(map[string]*entity.EstimateTemplate, len(r.templates)),
		items:     make(map[string][]entity.TemplateItem, len(r.items)),
	}
	for k, v := range r.templates {
		cp := *v
		s.templates[k] = &cp
	}
	for k, v := range r.items {
		s.items[k] = append([]entity.TemplateItem(nil), v...)
	}
	return s
}

func (r *fakeTemplateRepo) restore(s templateState) {
	r.templates = s.templates
	r.items = s.items
}

// ──────────────────────────────────────────────────────────────────────────────

type fakeUserRepo struct {
	users map[string]*entity.User
}

var _ repository.UserRepository = (*fakeUserRepo)(nil)

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*entity.User{}}
}

func (r *fakeUserRepo) Create(user *entity.User) error {
	cp := *user
	r.users[user.ID] = &cp
	return nil
}

func (r *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) GetByEmail(email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) Update(user *entity.User) error {
	cp := *user
	r.users[user.ID] = &cp
	return nil
}

func (r *fakeUserRepo) ListByCompany(companyID string, limit, offset int) ([]*entity.User, error) {
	var out []*entity.User
	for _, u := range r.users {
		if u.CompanyID == companyID {
			cp := *u
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// ──────────────────────────────────────────────────────────────────────────────

type fakePhotoRepo struct {
	photos     map[string]*entity.Photo
	failCreate error
}

var _ repository.PhotoRepository = (*fakePhotoRepo)(nil)

func newFakePhotoRepo() *fakePhotoRepo {
	return &fakePhotoRepo{photos: map[string]*entity.Photo{}}
}

func (r *fakePhotoRepo) Create(photo *entity.Photo) error {
	if r.failCreate != nil {
		return r.failCreate
	}
	cp := *photo
	r.photos[photo.ID] = &cp
	return nil
}

func (r *fakePhotoRepo) GetByID(id string) (*entity.Photo, error) {
	p, ok := r.photos[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *fakePhotoRepo) ListByCompany(companyID string, limit, offset int) ([]*entity.Photo, error) {
	var out []*entity.Photo
	for _, p := range r.photos {
		if p.CompanyID == companyID {
			cp := *p
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakePhotoRepo) ListByOwner(companyID, ownerID string, limit, offset int) ([]*entity.Photo, error) {
	var out []*entity.Photo
	for _, p := range r.photos {
		if p.CompanyID == companyID && p.OwnerID == ownerID {
			cp := *p
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakePhotoRepo) Delete(id string) error {
	delete(r.photos, id)
	return nil
}

func (r *fakePhotoRepo) ListUploadedAfter(companyID string, after time.Time) ([]*entity.Photo, error) {
	var out []*entity.Photo
	for _, p := range r.photos {
		if p.CompanyID == companyID && p.CreatedAt.After(after) {
			cp := *p
			out = append(out, &cp)
		}
	}
	return out, nil
}

// fakeFileStorage almacenamiento en memoria con las mismas garantías que el
// de disco: Save devuelve ruta y tamaño, Remove y Open operan por ruta.
type fakeFileStorage struct {
	files   map[string][]byte
	removed []string
}

var _ usecase.FileStorage = (*fakeFileStorage)(nil)

func newFakeFileStorage() *fakeFileStorage {
	return &fakeFileStorage{files: map[string][]byte{}}
}

func (s *fakeFileStorage) Save(name string, r io.Reader) (string, int64, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", 0, err
	}
	path := "uploads/" + name
	s.files[path] = data
	return path, int64(len(data)), nil
}

func (s *fakeFileStorage) Remove(path string) error {
	delete(s.files, path)
	s.removed = append(s.removed, path)
	return nil
}

func (s *fakeFileStorage) Open(path string) (io.ReadCloser, error) {
	data, ok := s.files[path]
	if !ok {
		return nil, errors.New("archivo no encontrado")
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}

// ──────────────────────────────────────────────────────────────────────────────

type fakeTaskRepo struct {
	tasks map[string]*entity.Task
}

var _ repository.TaskRepository = (*fakeTaskRepo)(nil)

func newFakeTaskRepo() *fakeTaskRepo {
	return &fakeTaskRepo{tasks: map[string]*entity.Task{}}
}

func (r *fakeTaskRepo) Create(task *entity.Task) error {
	cp := *task
	r.tasks[task.ID] = &cp
	return nil
}

func (r *fakeTaskRepo) GetByID(id string) (*entity.Task, error) {
	tk, ok := r.tasks[id]
	if !ok {
		return nil, nil
	}
	cp := *tk
	return &cp, nil
}

func (r *fakeTaskRepo) ListByCompany(companyID string, limit, offset int) ([]*entity.Task, error) {
	var out []*entity.Task
	for _, tk := range r.tasks {
		if tk.CompanyID == companyID {
			cp := *tk
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeTaskRepo) ListForUser(companyID, userID string, limit, offset int) ([]*entity.Task, error) {
	var out []*entity.Task
	for _, tk := range r.tasks {
		if tk.CompanyID == companyID && (tk.OwnerID == userID || tk.AssigneeID == userID) {
			cp := *tk
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeTaskRepo) Update(task *entity.Task) error {
	cp := *task
	r.tasks[task.ID] = &cp
	return nil
}

func (r *fakeTaskRepo) Delete(id string) error {
	delete(r.tasks, id)
	return nil
}

func (r *fakeTaskRepo) ListDoneAfter(companyID string, after time.Time) ([]*entity.Task, error) {
	var out []*entity.Task
	for _, tk := range r.tasks {
		if tk.CompanyID == companyID && tk.Done && tk.UpdatedAt.After(after) {
			cp := *tk
			out = append(out, &cp)
		}
	}
	return out, nil
}

// ──────────────────────────────────────────────────────────────────────────────

type fakeSavedItemRepo struct {
	items map[string]*entity.SavedItem
}

var _ repository.SavedItemRepository = (*fakeSavedItemRepo)(nil)

func newFakeSavedItemRepo() *fakeSavedItemRepo {
	return &fakeSavedItemRepo{items: map[string]*entity.SavedItem{}}
}

func (r *fakeSavedItemRepo) Create(item *entity.SavedItem) error {
	cp := *item
	r.items[item.ID] = &cp
	return nil
}

func (r *fakeSavedItemRepo) GetByID(id string) (*entity.SavedItem, error) {
	i, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	cp := *i
	return &cp, nil
}

func (r *fakeSavedItemRepo) ListByOwner(companyID, ownerID string, limit, offset int) ([]*entity.SavedItem, error) {
	var out []*entity.SavedItem
	for _, i := range r.items {
		if i.CompanyID == companyID && i.OwnerID == ownerID {
			cp := *i
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeSavedItemRepo) Update(item *entity.SavedItem) error {
	cp := *item
	r.items[item.ID] = &cp
	return nil
}

func (r *fakeSavedItemRepo) Delete(id string) error {
	delete(r.items, id)
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────

// fakeTxRunner simula la transacción: snapshot antes, restore si falla.
type fakeTxRunner struct {
	clients *fakeClientRepo
	jobs    *fakeJobRepo
	tpls    *fakeTemplateRepo
}

var _ usecase.TxRunner = (*fakeTxRunner)(nil)

func (r *fakeTxRunner) RunRegister(ctx context.Context, fn func(repository.CompanyRepository, repository.UserRepository) error) error {
	panic("RunRegister no se usa en los tests de usecase")
}

func (r *fakeTxRunner) RunClientCreate(ctx context.Context, fn func(repository.ClientRepository, repository.JobRepository) error) error {
	cs, js := r.clients.snapshot(), r.jobs.snapshot()
	if err := fn(r.clients, r.jobs); err != nil {
		r.clients.restore(cs)
		r.jobs.restore(js)
		return err
	}
	return nil
}

func (r *fakeTxRunner) RunTemplate(ctx context.Context, fn func(repository.EstimateTemplateRepository) error) error {
	ts := r.tpls.snapshot()
	if err := fn(r.tpls); err != nil {
		r.tpls.restore(ts)
		return err
	}
	return nil
}
