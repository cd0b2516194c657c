package usuario

import (
	"testing"

	"github.com/cliente/crudpb/internal/apperr"
)

type fakeRepo struct {
	itens  map[uint]Usuario
	nextID uint
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{itens: map[uint]Usuario{}, nextID: 1}
}

func (f *fakeRepo) FindAll() ([]Usuario, error) {
	out := make([]Usuario, 0, len(f.itens))
	for _, u := range f.itens {
		out = append(out, u)
	}
	return out, nil
}

func (f *fakeRepo) FindByID(id uint) (*Usuario, error) {
	u, ok := f.itens[id]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (f *fakeRepo) FindByEmail(email string) (*Usuario, error) {
	for _, u := range f.itens {
		if u.Email == email {
			u := u
			return &u, nil
		}
	}
	return nil, nil
}

func (f *fakeRepo) Save(u *Usuario) error {
	if u.ID == 0 {
		u.ID = f.nextID
		f.nextID++
	}
	f.itens[u.ID] = *u
	return nil
}

func (f *fakeRepo) Delete(u *Usuario) error {
	delete(f.itens, u.ID)
	return nil
}

func TestCriarUsuario_AtribuiID(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, nil)

	criado, err := svc.CriarUsuario(&Usuario{Nome: "Maria Silva", Email: "maria@exemplo.com"}, "127.0.0.1")
	if err != nil {
		t.Fatalf("esperava sucesso, veio erro: %v", err)
	}
	if criado.ID == 0 {
		t.Fatalf("esperava ID atribuído, veio 0")
	}
	if criado.Nome != "Maria Silva" || criado.Email != "maria@exemplo.com" {
		t.Fatalf("registro persistido difere do submetido: %+v", criado)
	}
}

func TestCriarUsuario_EmailDuplicado(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, nil)

	if _, err := svc.CriarUsuario(&Usuario{Nome: "Maria", Email: "x@exemplo.com"}, ""); err != nil {
		t.Fatalf("primeiro create falhou: %v", err)
	}

	_, err := svc.CriarUsuario(&Usuario{Nome: "Beatriz", Email: "x@exemplo.com"}, "")
	if !apperr.IsConflict(err) {
		t.Fatalf("esperava Conflict, veio %v", err)
	}
	if len(repo.itens) != 1 {
		t.Fatalf("segundo registro não deveria ser persistido; itens=%d", len(repo.itens))
	}
}

func TestAtualizarUsuario_EmailProprioNaoConflita(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, nil)

	criado, _ := svc.CriarUsuario(&Usuario{Nome: "Maria", Email: "maria@exemplo.com"}, "")

	atualizado, err := svc.AtualizarUsuario(criado.ID, &Usuario{Nome: "Maria Souza", Email: "maria@exemplo.com"}, "")
	if err != nil {
		t.Fatalf("atualização com o próprio e-mail deveria passar: %v", err)
	}
	if atualizado.Nome != "Maria Souza" {
		t.Fatalf("nome não atualizado: %+v", atualizado)
	}
}

func TestAtualizarUsuario_EmailDeOutroConflita(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, nil)

	svc.CriarUsuario(&Usuario{Nome: "Maria", Email: "maria@exemplo.com"}, "")
	b, _ := svc.CriarUsuario(&Usuario{Nome: "Beatriz", Email: "bia@exemplo.com"}, "")

	_, err := svc.AtualizarUsuario(b.ID, &Usuario{Nome: "Beatriz", Email: "maria@exemplo.com"}, "")
	if !apperr.IsConflict(err) {
		t.Fatalf("esperava Conflict, veio %v", err)
	}
}

func TestOperacoes_IDInexistente(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, nil)

	if _, err := svc.BuscarPorID(42); !apperr.IsNotFound(err) {
		t.Fatalf("BuscarPorID: esperava NotFound, veio %v", err)
	}
	if _, err := svc.AtualizarUsuario(42, &Usuario{Nome: "X", Email: "x@x.com"}, ""); !apperr.IsNotFound(err) {
		t.Fatalf("AtualizarUsuario: esperava NotFound, veio %v", err)
	}
	if err := svc.DeletarUsuario(42, ""); !apperr.IsNotFound(err) {
		t.Fatalf("DeletarUsuario: esperava NotFound, veio %v", err)
	}
}

func TestDeletarUsuario_RemoveRegistro(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, nil)

	criado, _ := svc.CriarUsuario(&Usuario{Nome: "Maria", Email: "maria@exemplo.com"}, "")

	if err := svc.DeletarUsuario(criado.ID, ""); err != nil {
		t.Fatalf("delete falhou: %v", err)
	}
	if _, err := svc.BuscarPorID(criado.ID); !apperr.IsNotFound(err) {
		t.Fatalf("registro deveria ter sido removido")
	}
}
