package controller

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jeacloset/erp-vestuario/internal/adapter/api/dto"
	"github.com/jeacloset/erp-vestuario/internal/domain/stock"
	"github.com/jeacloset/erp-vestuario/pkg/backup"
	"github.com/jeacloset/erp-vestuario/pkg/drive"
	"github.com/jeacloset/erp-vestuario/pkg/logger"
)

// BackupController gerencia a exportação e restauração de backups
type BackupController struct {
	service  *backup.Service
	lotCache *stock.LotCache
	logger   logger.Logger
}

// NewBackupController cria uma nova instância de BackupController
func NewBackupController(service *backup.Service, lotCache *stock.LotCache, logger logger.Logger) *BackupController {
	return &BackupController{
		service:  service,
		lotCache: lotCache,
		logger:   logger,
	}
}

// Export gera e devolve o arquivo de backup completo
// @Summary Exportar backup
// @Description Gera um arquivo JSON com todas as coleções do sistema
// @Tags backup
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Success 200 {object} backup.File
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /backup/export [get]
func (c *BackupController) Export(ctx *gin.Context) {
	data, err := c.service.ExportJSON(ctx)
	if err != nil {
		c.logger.Error("erro ao exportar backup", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao exportar backup", err.Error()))
		return
	}

	fileName := fmt.Sprintf("backup-jeacloset-%s.json", time.Now().Format("2006-01-02"))
	ctx.Header("Content-Disposition", "attachment; filename="+fileName)
	ctx.Data(http.StatusOK, "application/json", data)
}

// Restore importa um arquivo de backup (somente administradores)
// @Summary Restaurar backup
// @Description Importa um arquivo de backup e recria os registros; a coleção de investimentos é ignorada por ser derivada
// @Tags backup
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Success 200 {object} dto.RestoreSummaryResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /backup/restore [post]
func (c *BackupController) Restore(ctx *gin.Context) {
	data, err := io.ReadAll(ctx.Request.Body)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "erro ao ler arquivo de backup", err.Error()))
		return
	}

	summary, err := c.service.Restore(ctx, data)
	if err != nil {
		if errors.Is(err, backup.ErrInvalidBackup) {
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "arquivo de backup inválido", err.Error()))
			return
		}
		c.logger.Error("erro ao restaurar backup", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao restaurar backup", err.Error()))
		return
	}

	c.lotCache.Invalidate()

	ctx.JSON(http.StatusOK, dto.RestoreSummaryResponse{
		Users:    summary.Users,
		Clothing: summary.Clothing,
		Sales:    summary.Sales,
		Fluxo:    summary.Fluxo,
		Notes:    summary.Notes,
	})
}

// UploadToDrive exporta o backup e envia o arquivo ao Google Drive
// @Summary Enviar backup ao Drive
// @Description Gera o backup completo e envia o arquivo ao Google Drive configurado
// @Tags backup
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Success 200 {object} dto.DriveUploadResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Failure 503 {object} dto.ErrorResponse
// @Router /backup/drive [post]
func (c *BackupController) UploadToDrive(ctx *gin.Context) {
	uploader, err := drive.NewUploaderFromEnv()
	if err != nil {
		if errors.Is(err, drive.ErrMissingCredentials) {
			ctx.JSON(http.StatusServiceUnavailable, dto.NewErrorResponse(http.StatusServiceUnavailable, "Google Drive não configurado", err.Error()))
			return
		}
		c.logger.Error("erro ao preparar envio ao Drive", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao preparar envio ao Drive", err.Error()))
		return
	}

	data, err := c.service.ExportJSON(ctx)
	if err != nil {
		c.logger.Error("erro ao exportar backup para o Drive", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao exportar backup", err.Error()))
		return
	}

	fileName := fmt.Sprintf("backup-jeacloset-%s.json", time.Now().Format("2006-01-02-150405"))
	fileID, err := uploader.Upload(ctx, fileName, data)
	if err != nil {
		c.logger.Error("erro ao enviar backup ao Drive", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao enviar backup ao Drive", err.Error()))
		return
	}

	c.logger.Info("backup enviado ao Google Drive", "file_id", fileID, "file_name", fileName)
	ctx.JSON(http.StatusOK, dto.DriveUploadResponse{
		FileID:   fileID,
		FileName: fileName,
	})
}
