package usuario

import (
	"errors"

	"gorm.io/gorm"
)

// Repository defines data access for Usuario records.
type Repository interface {
	FindAll() ([]Usuario, error)
	FindByID(id uint) (*Usuario, error)
	FindByEmail(email string) (*Usuario, error)
	Save(u *Usuario) error
	Delete(u *Usuario) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// ===========================
// 📄 List All Usuarios
func (r *repository) FindAll() ([]Usuario, error) {
	var usuarios []Usuario
	err := r.db.Order("id ASC").Find(&usuarios).Error
	return usuarios, err
}

// ===========================
// 🔍 Find Usuario By ID (nil when absent)
func (r *repository) FindByID(id uint) (*Usuario, error) {
	var u Usuario
	err := r.db.First(&u, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// ===========================
// 🔍 Find Usuario By Email (nil when absent)
func (r *repository) FindByEmail(email string) (*Usuario, error) {
	var u Usuario
	err := r.db.Where("email = ?", email).First(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// ===========================
// 💾 Save Usuario (insert or update)
func (r *repository) Save(u *Usuario) error {
	return r.db.Save(u).Error
}

// ===========================
// ❌ Delete Usuario
func (r *repository) Delete(u *Usuario) error {
	return r.db.Delete(u).Error
}
