package evento

import (
	"errors"

	"gorm.io/gorm"
)

// Repository defines data access for Evento records.
type Repository interface {
	FindAll() ([]Evento, error)
	FindByID(id uint) (*Evento, error)
	FindByNome(nome string) (*Evento, error)
	Save(e *Evento) error
	Delete(e *Evento) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// ===========================
// 📄 List All Eventos
func (r *repository) FindAll() ([]Evento, error) {
	var eventos []Evento
	err := r.db.Order("id ASC").Find(&eventos).Error
	return eventos, err
}

// ===========================
// 🔍 Find Evento By ID (nil when absent)
func (r *repository) FindByID(id uint) (*Evento, error) {
	var e Evento
	err := r.db.First(&e, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &e, nil
}

// ===========================
// 🔍 Find Evento By Nome (nil when absent)
func (r *repository) FindByNome(nome string) (*Evento, error) {
	var e Evento
	err := r.db.Where("nome = ?", nome).First(&e).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &e, nil
}

// ===========================
// 💾 Save Evento (insert or update)
func (r *repository) Save(e *Evento) error {
	return r.db.Save(e).Error
}

// ===========================
// ❌ Delete Evento
func (r *repository) Delete(e *Evento) error {
	return r.db.Delete(e).Error
}
