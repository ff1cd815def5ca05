package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jeacloset/erp-vestuario/internal/adapter/api/dto"
	"github.com/jeacloset/erp-vestuario/internal/adapter/repository"
	userdomain "github.com/jeacloset/erp-vestuario/internal/domain/user"
	"github.com/jeacloset/erp-vestuario/pkg/auth"
	"github.com/jeacloset/erp-vestuario/pkg/logger"
)

// AuthController gerencia as requisições de autenticação
type AuthController struct {
	userRepo   userdomain.Repository
	jwtService *auth.JWTService
	logger     logger.Logger
}

// NewAuthController cria uma nova instância de AuthController
func NewAuthController(userRepo userdomain.Repository, jwtService *auth.JWTService, logger logger.Logger) *AuthController {
	return &AuthController{
		userRepo:   userRepo,
		jwtService: jwtService,
		logger:     logger,
	}
}

// Login autentica um usuário e retorna um token JWT
// @Summary Login
// @Description Autentica um usuário com email e senha e retorna um token de acesso
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body dto.LoginRequest true "Credenciais de acesso"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /auth/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	u, err := c.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(http.StatusUnauthorized, "credenciais inválidas", ""))
			return
		}
		c.logger.Error("erro ao buscar usuário para login", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao autenticar", err.Error()))
		return
	}

	if !u.CheckPassword(req.Password) {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(http.StatusUnauthorized, "credenciais inválidas", ""))
		return
	}

	token, err := c.jwtService.GenerateToken(u)
	if err != nil {
		c.logger.Error("erro ao gerar token JWT", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao gerar token", err.Error()))
		return
	}

	u.RegisterLogin()
	if err := c.userRepo.Update(ctx, u); err != nil {
		// Falha ao registrar o último login não impede o acesso
		c.logger.Warn("erro ao registrar último login", "error", err)
	}

	ctx.JSON(http.StatusOK, dto.LoginResponse{
		User:        dto.ToUserResponse(u),
		AccessToken: token,
		ExpiresAt:   time.Now().Add(24 * time.Hour),
	})
}

// Me retorna os dados do usuário autenticado
// @Summary Usuário atual
// @Description Retorna os dados do usuário autenticado pelo token
// @Tags auth
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Success 200 {object} dto.UserResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /auth/me [get]
func (c *AuthController) Me(ctx *gin.Context) {
	userID := ctx.GetString("user_id")
	if userID == "" {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(http.StatusUnauthorized, "autenticação requerida", ""))
		return
	}

	u, err := c.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(http.StatusUnauthorized, "usuário não encontrado", ""))
			return
		}
		c.logger.Error("erro ao buscar usuário autenticado", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar usuário", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToUserResponse(u))
}
