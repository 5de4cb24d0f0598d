package entity

// Report is a client statement over a date range.
type Report struct {
	ClientId     string           `json:"clienteId"`
	ClientName   string           `json:"cliente"`
	StartDate    string           `json:"fechaDesde"`
	EndDate      string           `json:"fechaHasta"`
	Accounts     []AccountSummary `json:"cuentas"`
	TotalDebits  string           `json:"totalDebitos"`
	TotalCredits string           `json:"totalCreditos"`
}

// AccountSummary totals one account's movements within a report.
type AccountSummary struct {
	AccountNumber  int64      `json:"numeroCuenta"`
	AccountType    string     `json:"tipo"`
	InitialBalance string     `json:"saldoInicial"`
	CurrentBalance string     `json:"saldoActual"`
	TotalDebits    string     `json:"totalDebitos"`
	TotalCredits   string     `json:"totalCreditos"`
	Movements      []Movement `json:"movimientos"`
}
