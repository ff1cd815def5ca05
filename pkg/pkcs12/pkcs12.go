package pkcs12

import (
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"errors"

	"software.sslmate.com/src/go-pkcs12"
)

// ErrNoRSAKey é retornado quando o arquivo não contém uma chave RSA
var ErrNoRSAKey = errors.New("o arquivo PKCS12 não contém uma chave privada RSA")

// ToPEM converte um arquivo PKCS12 para blocos PEM
func ToPEM(pfxData []byte, password string) ([]*pem.Block, error) {
	privateKey, certificate, caCerts, err := pkcs12.DecodeChain(pfxData, password)
	if err != nil {
		return nil, err
	}

	var blocks []*pem.Block

	if certificate != nil {
		blocks = append(blocks, &pem.Block{
			Type:  "CERTIFICATE",
			Bytes: certificate.Raw,
		})
	}

	for _, cert := range caCerts {
		blocks = append(blocks, &pem.Block{
			Type:  "CERTIFICATE",
			Bytes: cert.Raw,
		})
	}

	if privateKey != nil {
		pkData, err := x509.MarshalPKCS8PrivateKey(privateKey)
		if err != nil {
			return nil, err
		}
		blocks = append(blocks, &pem.Block{
			Type:  "PRIVATE KEY",
			Bytes: pkData,
		})
	}

	return blocks, nil
}

// RSAPrivateKey extrai a chave privada RSA de um arquivo PKCS12.
// Usado para assinar as credenciais de conta de serviço do Google Drive,
// que são distribuídas como arquivos .p12.
func RSAPrivateKey(pfxData []byte, password string) (*rsa.PrivateKey, error) {
	privateKey, _, err := pkcs12.Decode(pfxData, password)
	if err != nil {
		return nil, err
	}

	rsaKey, ok := privateKey.(*rsa.PrivateKey)
	if !ok {
		return nil, ErrNoRSAKey
	}
	return rsaKey, nil
}
