package evento

import (
	"time"
)

// ============================
// 🔷 GORM Evento Model
// The owning user is stored as a plain foreign id; views resolve it through
// a separate lookup instead of an eager-loaded association.
type Evento struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Nome      string    `gorm:"type:varchar(100);not null" json:"nome"`
	Descricao string    `gorm:"type:varchar(255)" json:"descricao"`
	UsuarioID uint      `gorm:"not null;index" json:"usuario_id"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName overrides table name for Evento
func (Evento) TableName() string {
	return "eventos"
}

// ============================
// 🟡 Evento Form (create & update)
type EventoForm struct {
	Nome      string `form:"nome" validate:"required,min=3,max=100"`
	Descricao string `form:"descricao" validate:"max=255"`
	UsuarioID uint   `form:"usuarioId" validate:"required"`
}

// ToModel converts the submitted form into an Evento record. The owning user
// is resolved by the service, not copied here.
func (f *EventoForm) ToModel() *Evento {
	return &Evento{Nome: f.Nome, Descricao: f.Descricao}
}

// ============================
// 🟢 Denormalized listing row
type EventoComUsuario struct {
	Evento
	UsuarioNome  string `json:"usuario_nome"`
	UsuarioEmail string `json:"usuario_email"`
}
