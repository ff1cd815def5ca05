package dto

// RestoreSummaryResponse resume os registros restaurados por coleção
type RestoreSummaryResponse struct {
	Users    int `json:"users"`
	Clothing int `json:"clothing"`
	Sales    int `json:"sales"`
	Fluxo    int `json:"fluxo"`
	Notes    int `json:"notes"`
}

// DriveUploadResponse representa o resultado do envio de backup ao Drive
type DriveUploadResponse struct {
	FileID   string `json:"file_id"`
	FileName string `json:"file_name"`
}
