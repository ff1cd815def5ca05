package drive

import (
	"bytes"
	"context"
	"crypto/rsa"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/jeacloset/erp-vestuario/pkg/pkcs12"
)

// Envio de backups para o Google Drive usando uma conta de serviço.
// A credencial é o arquivo .p12 emitido pelo console do Google; a chave
// RSA assina uma assertion JWT trocada por um token OAuth de acesso.

const (
	tokenURL  = "https://oauth2.googleapis.com/token"
	uploadURL = "https://www.googleapis.com/upload/drive/v3/files?uploadType=multipart"
	scope     = "https://www.googleapis.com/auth/drive.file"

	// Senha padrão dos arquivos .p12 emitidos pelo Google
	defaultKeyPassword = "notasecret"
)

var (
	ErrMissingCredentials = errors.New("credenciais do Google Drive não configuradas")
	ErrUploadFailed       = errors.New("falha no envio do arquivo para o Google Drive")
)

// Uploader envia arquivos de backup para o Google Drive
type Uploader struct {
	serviceAccount string
	privateKey     *rsa.PrivateKey
	folderID       string
	httpClient     *http.Client
}

// NewUploaderFromEnv cria um Uploader a partir das variáveis de ambiente
// GDRIVE_SERVICE_ACCOUNT, GDRIVE_KEY_FILE e GDRIVE_FOLDER_ID
func NewUploaderFromEnv() (*Uploader, error) {
	account := os.Getenv("GDRIVE_SERVICE_ACCOUNT")
	keyFile := os.Getenv("GDRIVE_KEY_FILE")
	if account == "" || keyFile == "" {
		return nil, ErrMissingCredentials
	}

	keyData, err := os.ReadFile(keyFile)
	if err != nil {
		return nil, fmt.Errorf("erro ao ler o arquivo de chave: %w", err)
	}

	password := os.Getenv("GDRIVE_KEY_PASSWORD")
	if password == "" {
		password = defaultKeyPassword
	}

	key, err := pkcs12.RSAPrivateKey(keyData, password)
	if err != nil {
		return nil, fmt.Errorf("erro ao extrair a chave privada: %w", err)
	}

	return &Uploader{
		serviceAccount: account,
		privateKey:     key,
		folderID:       os.Getenv("GDRIVE_FOLDER_ID"),
		httpClient:     &http.Client{Timeout: 60 * time.Second},
	}, nil
}

// Upload envia o conteúdo informado como um arquivo no Google Drive e
// retorna o ID do arquivo criado
func (u *Uploader) Upload(ctx context.Context, name string, content []byte) (string, error) {
	token, err := u.accessToken(ctx)
	if err != nil {
		return "", err
	}

	metadata := map[string]interface{}{
		"name":     name,
		"mimeType": "application/json",
	}
	if u.folderID != "" {
		metadata["parents"] = []string{u.folderID}
	}
	metadataJSON, err := json.Marshal(metadata)
	if err != nil {
		return "", fmt.Errorf("erro ao montar metadados: %w", err)
	}

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	metaHeader := textproto.MIMEHeader{}
	metaHeader.Set("Content-Type", "application/json; charset=UTF-8")
	metaPart, err := writer.CreatePart(metaHeader)
	if err != nil {
		return "", err
	}
	if _, err := metaPart.Write(metadataJSON); err != nil {
		return "", err
	}

	fileHeader := textproto.MIMEHeader{}
	fileHeader.Set("Content-Type", "application/json")
	filePart, err := writer.CreatePart(fileHeader)
	if err != nil {
		return "", err
	}
	if _, err := filePart.Write(content); err != nil {
		return "", err
	}
	if err := writer.Close(); err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, uploadURL, &body)
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "multipart/related; boundary="+writer.Boundary())

	resp, err := u.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("erro ao enviar arquivo: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("%w: status %d: %s", ErrUploadFailed, resp.StatusCode, string(respBody))
	}

	var result struct {
		ID string `json:"id"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("erro ao ler resposta do Drive: %w", err)
	}
	return result.ID, nil
}

// accessToken troca uma assertion JWT assinada pela chave da conta de
// serviço por um token OAuth de acesso
func (u *Uploader) accessToken(ctx context.Context) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"iss":   u.serviceAccount,
		"scope": scope,
		"aud":   tokenURL,
		"iat":   now.Unix(),
		"exp":   now.Add(time.Hour).Unix(),
	}

	assertion, err := jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(u.privateKey)
	if err != nil {
		return "", fmt.Errorf("erro ao assinar a assertion JWT: %w", err)
	}

	form := url.Values{}
	form.Set("grant_type", "urn:ietf:params:oauth:grant-type:jwt-bearer")
	form.Set("assertion", assertion)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, tokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := u.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("erro ao obter token de acesso: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("erro ao obter token de acesso: status %d: %s", resp.StatusCode, string(respBody))
	}

	var tokenResp struct {
		AccessToken string `json:"access_token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&tokenResp); err != nil {
		return "", fmt.Errorf("erro ao ler resposta do token: %w", err)
	}
	if tokenResp.AccessToken == "" {
		return "", errors.New("resposta do token sem access_token")
	}
	return tokenResp.AccessToken, nil
}
