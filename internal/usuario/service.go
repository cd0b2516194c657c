package usuario

import (
	"context"
	"fmt"

	"github.com/cliente/crudpb/internal/apperr"
	"github.com/cliente/crudpb/internal/auditlog"
)

// Service wraps business rules for Usuario records.
type Service struct {
	Repo     Repository
	AuditSvc auditlog.Service
}

func NewService(r Repository, auditSvc auditlog.Service) *Service {
	return &Service{Repo: r, AuditSvc: auditSvc}
}

// ===========================
// 📄 List All Usuarios
func (s *Service) ListarTodos() ([]Usuario, error) {
	return s.Repo.FindAll()
}

// ===========================
// 🔍 Get Usuario by ID
func (s *Service) BuscarPorID(id uint) (*Usuario, error) {
	u, err := s.Repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, apperr.NotFound(fmt.Sprintf("Usuário não encontrado com ID: %d", id))
	}
	return u, nil
}

// ===========================
// 🎯 Create Usuario
func (s *Service) CriarUsuario(u *Usuario, ip string) (*Usuario, error) {
	// Regra de negócio: e-mail duplicado
	if err := s.validarEmailDuplicado(u.Email, nil); err != nil {
		s.logAction(nil, "USUARIO_CRIADO", map[string]interface{}{
			"nome":  u.Nome,
			"email": u.Email,
			"error": err.Error(),
		}, ip, "failure")
		return nil, err
	}

	if err := s.Repo.Save(u); err != nil {
		s.logAction(nil, "USUARIO_CRIADO", map[string]interface{}{
			"nome":  u.Nome,
			"email": u.Email,
			"error": err.Error(),
		}, ip, "failure")
		return nil, err
	}

	s.logAction(&u.ID, "USUARIO_CRIADO", map[string]interface{}{
		"nome":  u.Nome,
		"email": u.Email,
	}, ip, "success")

	return u, nil
}

// ===========================
// 🛠 Update Usuario
func (s *Service) AtualizarUsuario(id uint, novo *Usuario, ip string) (*Usuario, error) {
	// Busca o usuário (ou falha com 404)
	existente, err := s.BuscarPorID(id)
	if err != nil {
		s.logAction(&id, "USUARIO_ATUALIZADO", map[string]interface{}{
			"error": err.Error(),
		}, ip, "failure")
		return nil, err
	}

	// Validação de e-mail duplicado, ignorando o próprio ID
	if err := s.validarEmailDuplicado(novo.Email, &id); err != nil {
		s.logAction(&id, "USUARIO_ATUALIZADO", map[string]interface{}{
			"email": novo.Email,
			"error": err.Error(),
		}, ip, "failure")
		return nil, err
	}

	existente.Nome = novo.Nome
	existente.Email = novo.Email

	if err := s.Repo.Save(existente); err != nil {
		s.logAction(&id, "USUARIO_ATUALIZADO", map[string]interface{}{
			"error": err.Error(),
		}, ip, "failure")
		return nil, err
	}

	s.logAction(&id, "USUARIO_ATUALIZADO", map[string]interface{}{
		"nome":  existente.Nome,
		"email": existente.Email,
	}, ip, "success")

	return existente, nil
}

// ===========================
// ❌ Delete Usuario
func (s *Service) DeletarUsuario(id uint, ip string) error {
	// Verifica se existe antes de deletar (ou falha com 404)
	existente, err := s.BuscarPorID(id)
	if err != nil {
		s.logAction(&id, "USUARIO_DELETADO", map[string]interface{}{
			"error": err.Error(),
		}, ip, "failure")
		return err
	}

	if err := s.Repo.Delete(existente); err != nil {
		s.logAction(&id, "USUARIO_DELETADO", map[string]interface{}{
			"error": err.Error(),
		}, ip, "failure")
		return err
	}

	s.logAction(&id, "USUARIO_DELETADO", map[string]interface{}{
		"nome":  existente.Nome,
		"email": existente.Email,
	}, ip, "success")

	return nil
}

// validarEmailDuplicado fails with Conflict when the email belongs to a
// different record than idExcecao.
func (s *Service) validarEmailDuplicado(email string, idExcecao *uint) error {
	conflito, err := s.Repo.FindByEmail(email)
	if err != nil {
		return err
	}
	if conflito != nil && (idExcecao == nil || conflito.ID != *idExcecao) {
		return apperr.Conflict(fmt.Sprintf("O e-mail '%s' já está em uso por outro usuário.", email))
	}
	return nil
}

func (s *Service) logAction(usuarioID *uint, action string, details map[string]interface{}, ip, status string) {
	if s.AuditSvc != nil {
		_ = s.AuditSvc.LogAction(context.Background(), usuarioID, action, details, ip, status)
	}
}
