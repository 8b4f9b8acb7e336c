package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/resto-pos/internal/application/auth"
	"github.com/tu-usuario/resto-pos/internal/application/dto"
	"github.com/tu-usuario/resto-pos/internal/domain"
	"github.com/tu-usuario/resto-pos/internal/domain/entity"
)

// memUserRepo repositorio de usuarios en memoria para tests.
type memUserRepo struct {
	byUsername map[string]*entity.User
	byEmail    map[string]*entity.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{
		byUsername: make(map[string]*entity.User),
		byEmail:    make(map[string]*entity.User),
	}
}

func (r *memUserRepo) Create(u *entity.User) error {
	if _, ok := r.byUsername[u.Username]; ok {
		return domain.ErrDuplicate
	}
	r.byUsername[u.Username] = u
	r.byEmail[u.Email] = u
	return nil
}

func (r *memUserRepo) GetByUsername(username string) (*entity.User, error) {
	return r.byUsername[username], nil
}

func (r *memUserRepo) GetByEmail(email string) (*entity.User, error) {
	return r.byEmail[email], nil
}

func testUseCase() (*auth.AuthUseCase, *memUserRepo) {
	repo := newMemUserRepo()
	uc := auth.NewAuthUseCase(repo, auth.JWTConfig{
		Secret:     "test-secret",
		ExpMinutes: 30,
		Issuer:     "resto-pos-test",
	})
	return uc, repo
}

func registerReq() dto.RegisterRequest {
	return dto.RegisterRequest{
		Username: "cajero1",
		Email:    "cajero1@dark-restaurant.com",
		FullName: "Cajero Uno",
		Password: "secreto123",
		Role:     entity.RoleWorker,
	}
}

func TestRegister_CreaUsuarioActivo(t *testing.T) {
	uc, repo := testUseCase()

	out, err := uc.Register(registerReq())
	require.NoError(t, err)

	assert.Equal(t, "cajero1", out.Username)
	assert.Equal(t, entity.RoleWorker, out.Role)
	assert.True(t, out.IsActive, "el usuario debe nacer activo")
	assert.NotEmpty(t, out.ID)

	stored := repo.byUsername["cajero1"]
	require.NotNil(t, stored)
	assert.NotEqual(t, "secreto123", stored.PasswordHash, "el password debe almacenarse hasheado")
}

func TestRegister_SinRol_AsignaWorker(t *testing.T) {
	uc, _ := testUseCase()

	in := registerReq()
	in.Role = ""
	out, err := uc.Register(in)
	require.NoError(t, err)
	assert.Equal(t, entity.RoleWorker, out.Role)
}

func TestRegister_RolInvalido_RetornaError(t *testing.T) {
	uc, _ := testUseCase()

	in := registerReq()
	in.Role = "superadmin"
	_, err := uc.Register(in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRegister_UsernameDuplicado_RetornaErrDuplicate(t *testing.T) {
	uc, _ := testUseCase()

	_, err := uc.Register(registerReq())
	require.NoError(t, err)

	in := registerReq()
	in.Email = "otro@dark-restaurant.com"
	_, err = uc.Register(in)
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestRegister_EmailDuplicado_RetornaErrDuplicate(t *testing.T) {
	uc, _ := testUseCase()

	_, err := uc.Register(registerReq())
	require.NoError(t, err)

	in := registerReq()
	in.Username = "cajero2"
	_, err = uc.Register(in)
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestLogin_CredencialesCorrectas_EmiteToken(t *testing.T) {
	uc, _ := testUseCase()
	_, err := uc.Register(registerReq())
	require.NoError(t, err)

	out, err := uc.Login(dto.LoginRequest{Username: "cajero1", Password: "secreto123"})
	require.NoError(t, err)

	assert.NotEmpty(t, out.AccessToken)
	assert.Equal(t, "bearer", out.TokenType)
	assert.Equal(t, "cajero1", out.User.Username)
}

func TestLogin_PasswordIncorrecto_RetornaUnauthorized(t *testing.T) {
	uc, _ := testUseCase()
	_, err := uc.Register(registerReq())
	require.NoError(t, err)

	_, err = uc.Login(dto.LoginRequest{Username: "cajero1", Password: "equivocado"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_UsuarioInexistente_RetornaUnauthorized(t *testing.T) {
	uc, _ := testUseCase()

	_, err := uc.Login(dto.LoginRequest{Username: "fantasma", Password: "lo-que-sea"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_CuentaInactiva_RetornaErrInactiveAccount(t *testing.T) {
	uc, repo := testUseCase()
	_, err := uc.Register(registerReq())
	require.NoError(t, err)

	repo.byUsername["cajero1"].IsActive = false

	_, err = uc.Login(dto.LoginRequest{Username: "cajero1", Password: "secreto123"})
	assert.ErrorIs(t, err, domain.ErrInactiveAccount)
}

func TestResolveUser_UsuarioBorrado_RetornaErrUserNotFound(t *testing.T) {
	uc, _ := testUseCase()

	_, err := uc.ResolveUser("fantasma")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestResolveUser_Existente_DevuelveUsuario(t *testing.T) {
	uc, _ := testUseCase()
	_, err := uc.Register(registerReq())
	require.NoError(t, err)

	user, err := uc.ResolveUser("cajero1")
	require.NoError(t, err)
	assert.Equal(t, "cajero1", user.Username)
}
