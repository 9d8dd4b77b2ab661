package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/estoque-api/internal/application/auth"
	"github.com/jhoicas/estoque-api/internal/application/dto"
	"github.com/jhoicas/estoque-api/internal/domain"
	"github.com/jhoicas/estoque-api/internal/domain/entity"
	pkgjwt "github.com/jhoicas/estoque-api/pkg/jwt"
)

// fakeUserRepo repositorio en memoria indexado por email.
type fakeUserRepo struct {
	byEmail map[string]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byEmail: make(map[string]*entity.User)}
}

func (r *fakeUserRepo) Create(u *entity.User) error {
	if _, ok := r.byEmail[u.Email]; ok {
		return domain.ErrEmailAlreadyExists
	}
	copied := *u
	r.byEmail[u.Email] = &copied
	return nil
}

func (r *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	for _, u := range r.byEmail {
		if u.ID == id {
			copied := *u
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) GetByEmail(email string) (*entity.User, error) {
	u, ok := r.byEmail[email]
	if !ok {
		return nil, nil
	}
	copied := *u
	return &copied, nil
}

var testJWTCfg = auth.JWTConfig{
	Secret:     "test-secret-key-for-unit-tests",
	ExpMinutes: 60,
	Issuer:     "estoque-api-test",
}

func TestRegisterUser_HasheaPassword(t *testing.T) {
	repo := newFakeUserRepo()
	uc := auth.NewAuthUseCase(repo, testJWTCfg)

	user, err := uc.RegisterUser(dto.RegisterRequest{
		Email:    "maria@salon.com",
		Password: "secreto-fuerte",
		Name:     "María",
	})
	require.NoError(t, err)
	assert.Equal(t, "maria@salon.com", user.Email)
	assert.Equal(t, "María", user.Name)

	stored := repo.byEmail["maria@salon.com"]
	require.NotNil(t, stored)
	assert.NotEqual(t, "secreto-fuerte", stored.PasswordHash, "el password nunca se guarda en claro")
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("secreto-fuerte")))
}

func TestRegisterUser_NombreVacioUsaEmail(t *testing.T) {
	uc := auth.NewAuthUseCase(newFakeUserRepo(), testJWTCfg)

	user, err := uc.RegisterUser(dto.RegisterRequest{
		Email:    "maria@salon.com",
		Password: "secreto-fuerte",
	})
	require.NoError(t, err)
	assert.Equal(t, "maria@salon.com", user.Name)
}

func TestRegisterUser_EmailDuplicado(t *testing.T) {
	uc := auth.NewAuthUseCase(newFakeUserRepo(), testJWTCfg)

	_, err := uc.RegisterUser(dto.RegisterRequest{Email: "maria@salon.com", Password: "secreto-fuerte"})
	require.NoError(t, err)

	_, err = uc.RegisterUser(dto.RegisterRequest{Email: "maria@salon.com", Password: "otro-password"})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestLogin_TokenConClaimsDelUsuario(t *testing.T) {
	repo := newFakeUserRepo()
	uc := auth.NewAuthUseCase(repo, testJWTCfg)

	_, err := uc.RegisterUser(dto.RegisterRequest{
		Email:    "maria@salon.com",
		Password: "secreto-fuerte",
		Name:     "María",
	})
	require.NoError(t, err)

	out, err := uc.Login(dto.LoginRequest{Email: "maria@salon.com", Password: "secreto-fuerte"})
	require.NoError(t, err)
	require.NotEmpty(t, out.Token)
	assert.Equal(t, "María", out.User.Name)

	userID, email, name, err := pkgjwt.Parse(testJWTCfg.Secret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, out.User.ID, userID)
	assert.Equal(t, "maria@salon.com", email)
	assert.Equal(t, "María", name)
}

func TestLogin_PasswordIncorrecto(t *testing.T) {
	uc := auth.NewAuthUseCase(newFakeUserRepo(), testJWTCfg)

	_, err := uc.RegisterUser(dto.RegisterRequest{Email: "maria@salon.com", Password: "secreto-fuerte"})
	require.NoError(t, err)

	_, err = uc.Login(dto.LoginRequest{Email: "maria@salon.com", Password: "equivocado"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_UsuarioInexistente(t *testing.T) {
	uc := auth.NewAuthUseCase(newFakeUserRepo(), testJWTCfg)

	_, err := uc.Login(dto.LoginRequest{Email: "nadie@salon.com", Password: "da-igual"})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
