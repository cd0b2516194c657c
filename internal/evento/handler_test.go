package evento

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/cliente/crudpb/middleware"
	"github.com/gin-gonic/gin"
)

func setupRouter(svc *Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.AuditMiddleware())
	r.Use(middleware.ErrorHandler())
	r.LoadHTMLGlob("../../templates/*")

	h := NewHandler(svc)
	r.GET("/eventos", h.Listar)
	r.GET("/eventos/novo", h.NovoForm)
	r.POST("/eventos", h.Salvar)
	r.GET("/eventos/editar/:id", h.EditarForm)
	r.POST("/eventos/:id", h.Atualizar)
	r.GET("/eventos/deletar/:id", h.Deletar)
	return r
}

func postForm(r *gin.Engine, path string, values url.Values) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	r.ServeHTTP(w, req)
	return w
}

func TestSalvarEvento_Sucesso_Redireciona(t *testing.T) {
	svc, repo, _ := setupService()
	r := setupRouter(svc)

	w := postForm(r, "/eventos", url.Values{
		"nome":      {"Festa Junina"},
		"descricao": {"Arraial da comunidade"},
		"usuarioId": {"1"},
	})

	if w.Code != http.StatusFound {
		t.Fatalf("esperava 302, veio %d; body=%s", w.Code, w.Body.String())
	}
	if loc := w.Header().Get("Location"); loc != "/eventos" {
		t.Fatalf("esperava redirect para /eventos, veio %q", loc)
	}
	if len(repo.itens) != 1 {
		t.Fatalf("evento deveria ter sido persistido")
	}
}

func TestSalvarEvento_SemUsuario_ReRenderizaComErro(t *testing.T) {
	svc, _, _ := setupService()
	r := setupRouter(svc)

	w := postForm(r, "/eventos", url.Values{
		"nome":      {"Festa Junina"},
		"usuarioId": {""},
	})

	if w.Code != http.StatusOK {
		t.Fatalf("esperava 200 (re-render), veio %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "O usuário criador é obrigatório.") {
		t.Fatalf("formulário deveria mostrar o erro do criador; body=%s", w.Body.String())
	}
}

func TestSalvarEvento_UsuarioInexistente_Retorna404(t *testing.T) {
	svc, repo, _ := setupService()
	r := setupRouter(svc)

	w := postForm(r, "/eventos", url.Values{
		"nome":      {"Festa Junina"},
		"usuarioId": {"99"},
	})

	if w.Code != http.StatusNotFound {
		t.Fatalf("esperava 404, veio %d; body=%s", w.Code, w.Body.String())
	}
	if len(repo.itens) != 0 {
		t.Fatalf("evento não deveria ser persistido")
	}
}

func TestSalvarEvento_NomeDuplicado_ReRenderiza(t *testing.T) {
	svc, repo, _ := setupService()
	svc.CriarEvento(&Evento{Nome: "Foo Festival"}, 1, "")
	r := setupRouter(svc)

	w := postForm(r, "/eventos", url.Values{
		"nome":      {"Foo Festival"},
		"usuarioId": {"2"},
	})

	if w.Code != http.StatusOK {
		t.Fatalf("esperava 200 (re-render), veio %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "já está em uso por outro evento") {
		t.Fatalf("formulário deveria mostrar o conflito de nome; body=%s", w.Body.String())
	}
	if len(repo.itens) != 1 {
		t.Fatalf("segundo evento não deveria ser persistido")
	}
}

func TestAtualizarEvento_NomeDeOutro_ReRenderiza(t *testing.T) {
	svc, _, _ := setupService()
	svc.CriarEvento(&Evento{Nome: "Foo Festival"}, 1, "")
	outro, _ := svc.CriarEvento(&Evento{Nome: "Bar Festival"}, 1, "")
	r := setupRouter(svc)

	w := postForm(r, "/eventos/2", url.Values{
		"nome":      {"Foo Festival"},
		"usuarioId": {"1"},
	})

	if w.Code != http.StatusOK {
		t.Fatalf("esperava 200 (re-render), veio %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "já está em uso por outro evento") {
		t.Fatalf("formulário deveria mostrar o conflito; body=%s", w.Body.String())
	}

	// O registro original permanece intacto
	atual, err := svc.BuscarPorID(outro.ID)
	if err != nil || atual.Nome != "Bar Festival" {
		t.Fatalf("evento não deveria ter sido alterado: %+v (%v)", atual, err)
	}
}

func TestAtualizarEvento_ProprioNome_Redireciona(t *testing.T) {
	svc, _, _ := setupService()
	svc.CriarEvento(&Evento{Nome: "Foo Festival"}, 1, "")
	r := setupRouter(svc)

	w := postForm(r, "/eventos/1", url.Values{
		"nome":      {"Foo Festival"},
		"descricao": {"nova descrição"},
		"usuarioId": {"1"},
	})

	if w.Code != http.StatusFound {
		t.Fatalf("atualização com o próprio nome deveria redirecionar; veio %d body=%s", w.Code, w.Body.String())
	}
}

func TestListarEventos_MostraCriador(t *testing.T) {
	svc, _, _ := setupService()
	svc.CriarEvento(&Evento{Nome: "Festa Junina"}, 1, "")
	r := setupRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/eventos", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("esperava 200, veio %d", w.Code)
	}
	body := w.Body.String()
	if !strings.Contains(body, "Festa Junina") || !strings.Contains(body, "Maria") {
		t.Fatalf("listagem deveria mostrar o evento e o criador; body=%s", body)
	}
}

func TestDeletarEvento_IDInexistente_Retorna404(t *testing.T) {
	svc, _, _ := setupService()
	r := setupRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/eventos/deletar/999", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("esperava 404, veio %d", w.Code)
	}
}
