package usuario

import (
	"time"
)

// ============================
// 🔷 GORM Usuario Model
type Usuario struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Nome      string    `gorm:"type:varchar(100);not null" json:"nome"`
	Email     string    `gorm:"type:varchar(255);not null;index" json:"email"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName overrides table name for Usuario
func (Usuario) TableName() string {
	return "usuarios"
}

// ============================
// 🟡 Usuario Form (create & update)
type UsuarioForm struct {
	Nome  string `form:"nome" validate:"required,min=3,max=100"`
	Email string `form:"email" validate:"required,email"`
}

// ToModel converts the submitted form into a Usuario record.
func (f *UsuarioForm) ToModel() *Usuario {
	return &Usuario{Nome: f.Nome, Email: f.Email}
}
