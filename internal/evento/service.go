package evento

import (
	"context"
	"fmt"

	"github.com/cliente/crudpb/internal/apperr"
	"github.com/cliente/crudpb/internal/auditlog"
	"github.com/cliente/crudpb/internal/usuario"
)

// UsuarioProvider resolves owning users for events.
type UsuarioProvider interface {
	BuscarPorID(id uint) (*usuario.Usuario, error)
	ListarTodos() ([]usuario.Usuario, error)
}

// Service wraps business rules for Evento records.
type Service struct {
	Repo     Repository
	Usuarios UsuarioProvider
	AuditSvc auditlog.Service
}

func NewService(r Repository, usuarios UsuarioProvider, auditSvc auditlog.Service) *Service {
	return &Service{Repo: r, Usuarios: usuarios, AuditSvc: auditSvc}
}

// ===========================
// 📄 List All Eventos
func (s *Service) ListarTodos() ([]Evento, error) {
	return s.Repo.FindAll()
}

// ===========================
// 📄 List Eventos with owning user resolved
// Two explicit fetches: the eventos, then the usuarios they reference.
func (s *Service) ListarComUsuarios() ([]EventoComUsuario, error) {
	eventos, err := s.Repo.FindAll()
	if err != nil {
		return nil, err
	}

	usuarios, err := s.Usuarios.ListarTodos()
	if err != nil {
		return nil, err
	}

	porID := make(map[uint]usuario.Usuario, len(usuarios))
	for _, u := range usuarios {
		porID[u.ID] = u
	}

	linhas := make([]EventoComUsuario, 0, len(eventos))
	for _, e := range eventos {
		linha := EventoComUsuario{Evento: e}
		if u, ok := porID[e.UsuarioID]; ok {
			linha.UsuarioNome = u.Nome
			linha.UsuarioEmail = u.Email
		}
		linhas = append(linhas, linha)
	}

	return linhas, nil
}

// ===========================
// 🔍 Get Evento by ID
func (s *Service) BuscarPorID(id uint) (*Evento, error) {
	e, err := s.Repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, apperr.NotFound(fmt.Sprintf("Evento não encontrado com ID: %d", id))
	}
	return e, nil
}

// ===========================
// 🎯 Create Evento
func (s *Service) CriarEvento(e *Evento, usuarioID uint, ip string) (*Evento, error) {
	// 1. Regra de negócio: nome duplicado
	if err := s.validarNomeDuplicado(e.Nome, nil); err != nil {
		s.logAction(nil, "EVENTO_CRIADO", map[string]interface{}{
			"nome":  e.Nome,
			"error": err.Error(),
		}, ip, "failure")
		return nil, err
	}

	// 2. Busca e associa o usuário criador
	criador, err := s.Usuarios.BuscarPorID(usuarioID)
	if err != nil {
		s.logAction(nil, "EVENTO_CRIADO", map[string]interface{}{
			"nome":       e.Nome,
			"usuario_id": usuarioID,
			"error":      err.Error(),
		}, ip, "failure")
		return nil, err
	}
	e.UsuarioID = criador.ID

	// 3. Salva o evento
	if err := s.Repo.Save(e); err != nil {
		s.logAction(nil, "EVENTO_CRIADO", map[string]interface{}{
			"nome":  e.Nome,
			"error": err.Error(),
		}, ip, "failure")
		return nil, err
	}

	s.logAction(&e.ID, "EVENTO_CRIADO", map[string]interface{}{
		"nome":       e.Nome,
		"usuario_id": e.UsuarioID,
	}, ip, "success")

	return e, nil
}

// ===========================
// 🛠 Update Evento
// Guard order: uniqueness first, then the existing record, then the owner.
func (s *Service) AtualizarEvento(id uint, novo *Evento, usuarioID uint, ip string) (*Evento, error) {
	// 1. Validação de nome duplicado, ignorando o próprio ID
	if err := s.validarNomeDuplicado(novo.Nome, &id); err != nil {
		s.logAction(&id, "EVENTO_ATUALIZADO", map[string]interface{}{
			"nome":  novo.Nome,
			"error": err.Error(),
		}, ip, "failure")
		return nil, err
	}

	// 2. Busca o evento (ou falha com 404)
	existente, err := s.BuscarPorID(id)
	if err != nil {
		s.logAction(&id, "EVENTO_ATUALIZADO", map[string]interface{}{
			"error": err.Error(),
		}, ip, "failure")
		return nil, err
	}

	// 3. Busca e associa o novo usuário (ou o mesmo)
	criador, err := s.Usuarios.BuscarPorID(usuarioID)
	if err != nil {
		s.logAction(&id, "EVENTO_ATUALIZADO", map[string]interface{}{
			"usuario_id": usuarioID,
			"error":      err.Error(),
		}, ip, "failure")
		return nil, err
	}

	// 4. Atualiza os dados
	existente.Nome = novo.Nome
	existente.Descricao = novo.Descricao
	existente.UsuarioID = criador.ID

	if err := s.Repo.Save(existente); err != nil {
		s.logAction(&id, "EVENTO_ATUALIZADO", map[string]interface{}{
			"error": err.Error(),
		}, ip, "failure")
		return nil, err
	}

	s.logAction(&id, "EVENTO_ATUALIZADO", map[string]interface{}{
		"nome":       existente.Nome,
		"usuario_id": existente.UsuarioID,
	}, ip, "success")

	return existente, nil
}

// ===========================
// ❌ Delete Evento
func (s *Service) DeletarEvento(id uint, ip string) error {
	// Verifica se existe antes de deletar (ou falha com 404)
	existente, err := s.BuscarPorID(id)
	if err != nil {
		s.logAction(&id, "EVENTO_DELETADO", map[string]interface{}{
			"error": err.Error(),
		}, ip, "failure")
		return err
	}

	if err := s.Repo.Delete(existente); err != nil {
		s.logAction(&id, "EVENTO_DELETADO", map[string]interface{}{
			"error": err.Error(),
		}, ip, "failure")
		return err
	}

	s.logAction(&id, "EVENTO_DELETADO", map[string]interface{}{
		"nome":       existente.Nome,
		"usuario_id": existente.UsuarioID,
	}, ip, "success")

	return nil
}

// validarNomeDuplicado fails with Conflict when the name belongs to a
// different record than idExcecao.
func (s *Service) validarNomeDuplicado(nome string, idExcecao *uint) error {
	conflito, err := s.Repo.FindByNome(nome)
	if err != nil {
		return err
	}
	if conflito != nil && (idExcecao == nil || conflito.ID != *idExcecao) {
		return apperr.Conflict(fmt.Sprintf("O nome '%s' já está em uso por outro evento.", nome))
	}
	return nil
}

func (s *Service) logAction(eventoID *uint, action string, details map[string]interface{}, ip, status string) {
	if s.AuditSvc != nil {
		_ = s.AuditSvc.LogAction(context.Background(), eventoID, action, details, ip, status)
	}
}
