package usuario

import (
	"log"
	"net/http"
	"strconv"

	"github.com/cliente/crudpb/internal/apperr"
	"github.com/cliente/crudpb/middleware"
	"github.com/cliente/crudpb/utils"
	"github.com/gin-gonic/gin"
)

type Handler struct {
	Service *Service
}

func NewHandler(s *Service) *Handler {
	return &Handler{Service: s}
}

// ===========================
// 📄 List Usuarios - GET /usuarios
func (h *Handler) Listar(c *gin.Context) {
	usuarios, err := h.Service.ListarTodos()
	if err != nil {
		c.Error(err)
		return
	}

	c.HTML(http.StatusOK, "lista-usuarios.html", gin.H{
		"PageTitle":       "Usuários",
		"Usuarios":        usuarios,
		"MensagemSucesso": utils.GetFlash(c),
	})
}

// ===========================
// 📝 New Usuario Form - GET /usuarios/novo
func (h *Handler) NovoForm(c *gin.Context) {
	c.HTML(http.StatusOK, "form-usuario.html", gin.H{
		"PageTitle":  "Novo Usuário",
		"FormAction": "/usuarios",
		"Nome":       "",
		"Email":      "",
	})
}

// ===========================
// 🎯 Create Usuario - POST /usuarios
func (h *Handler) Salvar(c *gin.Context) {
	var form UsuarioForm
	if err := c.ShouldBind(&form); err != nil {
		respondBadRequest(c)
		return
	}

	if erros := utils.ValidateStruct(&form); len(erros) > 0 {
		log.Printf("Erro de validação na rota %s: %s", c.Request.URL.Path, utils.JoinFieldErrors(erros))
		c.HTML(http.StatusOK, "form-usuario.html", gin.H{
			"PageTitle":  "Novo Usuário",
			"FormAction": "/usuarios",
			"Nome":       form.Nome,
			"Email":      form.Email,
			"Erros":      erros,
		})
		return
	}

	ip := middleware.GetIPFromContext(c)

	if _, err := h.Service.CriarUsuario(form.ToModel(), ip); err != nil {
		if apperr.IsConflict(err) {
			c.HTML(http.StatusOK, "form-usuario.html", gin.H{
				"PageTitle":    "Novo Usuário",
				"FormAction":   "/usuarios",
				"Nome":         form.Nome,
				"Email":        form.Email,
				"MensagemErro": err.Error(),
			})
			return
		}
		c.Error(err)
		return
	}

	utils.SetFlash(c, "Usuário criado com sucesso!")
	c.Redirect(http.StatusFound, "/usuarios")
}

// ===========================
// 📝 Edit Usuario Form - GET /usuarios/editar/:id
func (h *Handler) EditarForm(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	u, err := h.Service.BuscarPorID(id)
	if err != nil {
		if apperr.IsNotFound(err) {
			respondNotFound(c, err)
			return
		}
		c.Error(err)
		return
	}

	c.HTML(http.StatusOK, "form-usuario.html", gin.H{
		"PageTitle":  "Editar Usuário",
		"FormAction": "/usuarios/" + strconv.Itoa(int(id)),
		"Nome":       u.Nome,
		"Email":      u.Email,
	})
}

// ===========================
// 🛠 Update Usuario - POST /usuarios/:id
func (h *Handler) Atualizar(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var form UsuarioForm
	if err := c.ShouldBind(&form); err != nil {
		respondBadRequest(c)
		return
	}

	formAction := "/usuarios/" + strconv.Itoa(int(id))

	if erros := utils.ValidateStruct(&form); len(erros) > 0 {
		log.Printf("Erro de validação na rota %s: %s", c.Request.URL.Path, utils.JoinFieldErrors(erros))
		c.HTML(http.StatusOK, "form-usuario.html", gin.H{
			"PageTitle":  "Editar Usuário",
			"FormAction": formAction,
			"Nome":       form.Nome,
			"Email":      form.Email,
			"Erros":      erros,
		})
		return
	}

	ip := middleware.GetIPFromContext(c)

	if _, err := h.Service.AtualizarUsuario(id, form.ToModel(), ip); err != nil {
		switch {
		case apperr.IsNotFound(err):
			respondNotFound(c, err)
		case apperr.IsConflict(err):
			c.HTML(http.StatusOK, "form-usuario.html", gin.H{
				"PageTitle":    "Editar Usuário",
				"FormAction":   formAction,
				"Nome":         form.Nome,
				"Email":        form.Email,
				"MensagemErro": err.Error(),
			})
		default:
			c.Error(err)
		}
		return
	}

	utils.SetFlash(c, "Usuário atualizado com sucesso!")
	c.Redirect(http.StatusFound, "/usuarios")
}

// ===========================
// ❌ Delete Usuario - GET /usuarios/deletar/:id
func (h *Handler) Deletar(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	ip := middleware.GetIPFromContext(c)

	if err := h.Service.DeletarUsuario(id, ip); err != nil {
		if apperr.IsNotFound(err) {
			respondNotFound(c, err)
			return
		}
		c.Error(err)
		return
	}

	utils.SetFlash(c, "Usuário deletado com sucesso!")
	c.Redirect(http.StatusFound, "/usuarios")
}

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		c.JSON(http.StatusNotFound, middleware.NovoErro(
			http.StatusNotFound,
			"Recurso não encontrado",
			"ID inválido: "+c.Param("id"),
			c.Request.URL.Path,
		))
		return 0, false
	}
	return uint(id), true
}

func respondNotFound(c *gin.Context, err error) {
	c.JSON(http.StatusNotFound, middleware.NovoErro(
		http.StatusNotFound,
		"Recurso não encontrado",
		err.Error(),
		c.Request.URL.Path,
	))
}

func respondBadRequest(c *gin.Context) {
	c.JSON(http.StatusBadRequest, middleware.NovoErro(
		http.StatusBadRequest,
		"Erro de Validação",
		"Não foi possível processar os dados do formulário.",
		c.Request.URL.Path,
	))
}
