package models

// CompanyProfile is the issuer block printed on invoices. It is a singleton,
// overwritten wholesale on save.
type CompanyProfile struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	TaxNote string `json:"taxNote"`
}
