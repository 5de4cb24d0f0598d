package entity

// Paging carries the page/size query parameters every list call sends.
type Paging struct {
	Page int `url:"page"`
	Size int `url:"size"`
}

// AccountQuery selects a client's accounts.
type AccountQuery struct {
	ClienteId string `url:"clienteId"`
	Paging
}

// MovementQuery selects movements of one account within a date range.
type MovementQuery struct {
	NumeroCuenta string `url:"numeroCuenta"`
	ClienteId    string `url:"clienteId"`
	FechaDesde   string `url:"fechaDesde"`
	FechaHasta   string `url:"fechaHasta"`
	Paging
}

// ReportQuery selects a client statement for a date range.
type ReportQuery struct {
	ClienteId  string `url:"clienteId"`
	FechaDesde string `url:"fechaDesde"`
	FechaHasta string `url:"fechaHasta"`
	Formato    string `url:"formato"`
}

// PdfReport is the remote service's response to a pdf report request.
type PdfReport struct {
	PdfBase64 string `json:"pdfBase64"`
}
