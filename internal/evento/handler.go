package evento

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
// 📄 List Eventos - GET /eventos
func (h *Handler) Listar(c *gin.Context) {
	eventos, err := h.Service.ListarComUsuarios()
	if err != nil {
		c.Error(err)
		return
	}

	c.HTML(http.StatusOK, "lista-eventos.html", gin.H{
		"PageTitle":       "Eventos",
		"Eventos":         eventos,
		"MensagemSucesso": utils.GetFlash(c),
	})
}

// ===========================
// 📝 New Evento Form - GET /eventos/novo
func (h *Handler) NovoForm(c *gin.Context) {
	h.renderForm(c, "Novo Evento", "/eventos", &EventoForm{}, nil, "")
}

// ===========================
// 🎯 Create Evento - POST /eventos
func (h *Handler) Salvar(c *gin.Context) {
	var form EventoForm
	if err := c.ShouldBind(&form); err != nil {
		respondBadRequest(c)
		return
	}

	if erros := utils.ValidateStruct(&form); len(erros) > 0 {
		log.Printf("Erro de validação na rota %s: %s", c.Request.URL.Path, utils.JoinFieldErrors(erros))
		h.renderForm(c, "Novo Evento", "/eventos", &form, erros, "")
		return
	}

	ip := middleware.GetIPFromContext(c)

	if _, err := h.Service.CriarEvento(form.ToModel(), form.UsuarioID, ip); err != nil {
		switch {
		case apperr.IsConflict(err):
			h.renderForm(c, "Novo Evento", "/eventos", &form, nil, err.Error())
		case apperr.IsNotFound(err):
			// usuário criador inexistente
			respondNotFound(c, err)
		default:
			c.Error(err)
		}
		return
	}

	utils.SetFlash(c, "Evento criado com sucesso!")
	c.Redirect(http.StatusFound, "/eventos")
}

// ===========================
// 📝 Edit Evento Form - GET /eventos/editar/:id
func (h *Handler) EditarForm(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	e, err := h.Service.BuscarPorID(id)
	if err != nil {
		if apperr.IsNotFound(err) {
			respondNotFound(c, err)
			return
		}
		c.Error(err)
		return
	}

	form := EventoForm{Nome: e.Nome, Descricao: e.Descricao, UsuarioID: e.UsuarioID}
	h.renderForm(c, "Editar Evento", "/eventos/"+strconv.Itoa(int(id)), &form, nil, "")
}

// ===========================
// 🛠 Update Evento - POST /eventos/:id
func (h *Handler) Atualizar(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var form EventoForm
	if err := c.ShouldBind(&form); err != nil {
		respondBadRequest(c)
		return
	}

	formAction := "/eventos/" + strconv.Itoa(int(id))

	if erros := utils.ValidateStruct(&form); len(erros) > 0 {
		log.Printf("Erro de validação na rota %s: %s", c.Request.URL.Path, utils.JoinFieldErrors(erros))
		h.renderForm(c, "Editar Evento", formAction, &form, erros, "")
		return
	}

	ip := middleware.GetIPFromContext(c)

	if _, err := h.Service.AtualizarEvento(id, form.ToModel(), form.UsuarioID, ip); err != nil {
		switch {
		case apperr.IsConflict(err):
			h.renderForm(c, "Editar Evento", formAction, &form, nil, err.Error())
		case apperr.IsNotFound(err):
			respondNotFound(c, err)
		default:
			c.Error(err)
		}
		return
	}

	utils.SetFlash(c, "Evento atualizado com sucesso!")
	c.Redirect(http.StatusFound, "/eventos")
}

// ===========================
// ❌ Delete Evento - GET /eventos/deletar/:id
func (h *Handler) Deletar(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	ip := middleware.GetIPFromContext(c)

	if err := h.Service.DeletarEvento(id, ip); err != nil {
		if apperr.IsNotFound(err) {
			respondNotFound(c, err)
			return
		}
		c.Error(err)
		return
	}

	utils.SetFlash(c, "Evento deletado com sucesso!")
	c.Redirect(http.StatusFound, "/eventos")
}

// renderForm re-renders the event form, re-supplying the user dropdown.
func (h *Handler) renderForm(c *gin.Context, pageTitle, formAction string, form *EventoForm, erros map[string]string, mensagemErro string) {
	usuarios, err := h.Service.Usuarios.ListarTodos()
	if err != nil {
		c.Error(err)
		return
	}
	data := gin.H{
		"PageTitle":     pageTitle,
		"FormAction":    formAction,
		"Nome":          form.Nome,
		"Descricao":     form.Descricao,
		"UsuarioID":     form.UsuarioID,
		"TodosUsuarios": usuarios,
	}
	if len(erros) > 0 {
		data["Erros"] = erros
	}
	if mensagemErro != "" {
		data["MensagemErro"] = mensagemErro
	}

	c.HTML(http.StatusOK, "form-evento.html", data)
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
