package dto

// CompanyInput campos de empresa que reporta la página embebida.
type CompanyInput struct {
	Name     string `json:"name"`
	Size     int    `json:"size"`
	Industry string `json:"industry"`
	Website  string `json:"website"`
	Plan     string `json:"plan"`
}

// AttachCompanyRequest entrada de POST /widget/company: resuelve la empresa
// por nombre (get-or-create) y la asocia al cliente.
type AttachCompanyRequest struct {
	CustomerID string       `json:"customerId"`
	Company    CompanyInput `json:"company"`
}

// AttachCompanyResponse salida de la asociación.
type AttachCompanyResponse struct {
	CompanyID  string   `json:"companyId"`
	CompanyIDs []string `json:"companyIds"`
}
