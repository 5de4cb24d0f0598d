package entity

// Person holds the personal data of a client.
type Person struct {
	Id              string `json:"id,omitempty"`
	Nombre          string `json:"nombre" validate:"required"`
	Apellido        string `json:"apellido" validate:"required"`
	Genero          string `json:"genero" validate:"required,oneof=MASCULINO FEMENINO"`
	FechaNacimiento string `json:"fechaNacimiento" validate:"required,datetime=2006-01-02"`
	Identificacion  string `json:"identificacion" validate:"required"`
	Telefono        string `json:"telefono" validate:"required"`
	Direccion       string `json:"direccion" validate:"required"`
	Estado          bool   `json:"estado"`
	CreatedAt       string `json:"createdAt,omitempty"`
	UpdatedAt       string `json:"updatedAt,omitempty"`
}

// Client is a bank client as exchanged with the remote service.
type Client struct {
	Id        string `json:"id,omitempty"`
	PersonaId string `json:"personaId,omitempty"`
	Persona   Person `json:"persona"`
	Username  string `json:"username" validate:"required"`
	Password  string `json:"password,omitempty" validate:"required"`
	Estado    bool   `json:"estado"`
	CreatedAt string `json:"createdAt,omitempty"`
	UpdatedAt string `json:"updatedAt,omitempty"`
}

// Account is a client's bank account.
type Account struct {
	Id           string  `json:"id"`
	ClienteId    string  `json:"clienteId"`
	NumeroCuenta int64   `json:"numeroCuenta"`
	Tipo         string  `json:"tipo"`
	SaldoInicial float64 `json:"saldoInicial"`
	SaldoActual  float64 `json:"saldoActual"`
	Estado       bool    `json:"estado"`
	CreatedAt    string  `json:"createdAt,omitempty"`
	UpdatedAt    string  `json:"updatedAt,omitempty"`
}

// Movement is a debit or credit against an account.
type Movement struct {
	Id                  string  `json:"id"`
	CuentaId            string  `json:"cuentaId"`
	Fecha               string  `json:"fecha"`
	Tipo                string  `json:"tipo"`
	Valor               float64 `json:"valor"`
	SaldoPostMovimiento float64 `json:"saldoPostMovimiento"`
	CreatedAt           string  `json:"createdAt,omitempty"`
}

const (
	Debit  = "DEBITO"
	Credit = "CREDITO"
)
