package mockapi

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	nt "bankview/entity"
)

// buildReport totals debits and credits per account and overall
func buildReport(client nt.Record, accounts []nt.Record, movements [][]nt.Record, from, to string) (rpt nt.Report, err error) {

	nombre, _ := client.Lookup("persona.nombre")
	apellido, _ := client.Lookup("persona.apellido")
	name := strings.TrimSpace(nombre.String() + " " + apellido.String())
	if name == "" {
		name = "Cliente Desconocido"
	}

	rpt = nt.Report{
		ClientId:   client.Id(),
		ClientName: name,
		StartDate:  from,
		EndDate:    to,
		Accounts:   []nt.AccountSummary{},
	}

	totalDebits, totalCredits := decimal.Zero, decimal.Zero
	for i, rec := range accounts {
		var account nt.Account
		err = decode(rec, &account)
		if err != nil {
			return
		}

		summary := nt.AccountSummary{
			AccountNumber:  account.NumeroCuenta,
			AccountType:    account.Tipo,
			InitialBalance: decimal.NewFromFloat(account.SaldoInicial).StringFixed(2),
			CurrentBalance: decimal.NewFromFloat(account.SaldoActual).StringFixed(2),
			Movements:      []nt.Movement{},
		}

		debits, credits := decimal.Zero, decimal.Zero
		for _, mrec := range movements[i] {
			var mv nt.Movement
			err = decode(mrec, &mv)
			if err != nil {
				return
			}

			switch mv.Tipo {
			case nt.Debit:
				debits = debits.Add(decimal.NewFromFloat(mv.Valor))
			case nt.Credit:
				credits = credits.Add(decimal.NewFromFloat(mv.Valor))
			}
			summary.Movements = append(summary.Movements, mv)
		}

		summary.TotalDebits = debits.StringFixed(2)
		summary.TotalCredits = credits.StringFixed(2)
		rpt.Accounts = append(rpt.Accounts, summary)

		totalDebits = totalDebits.Add(debits)
		totalCredits = totalCredits.Add(credits)
	}

	rpt.TotalDebits = totalDebits.StringFixed(2)
	rpt.TotalCredits = totalCredits.StringFixed(2)
	return
}

// encodeStatement renders a plain text statement, base64 encoded as the pdf payload
func encodeStatement(rpt nt.Report) string {

	var buf strings.Builder
	fmt.Fprintf(&buf, "ESTADO DE CUENTA\n")
	fmt.Fprintf(&buf, "Cliente: %s (%s)\n", rpt.ClientName, rpt.ClientId)
	fmt.Fprintf(&buf, "Periodo: %s a %s\n\n", rpt.StartDate, rpt.EndDate)

	for _, acct := range rpt.Accounts {
		fmt.Fprintf(&buf, "Cuenta %d %s  saldo inicial %s  saldo actual %s\n",
			acct.AccountNumber, acct.AccountType, acct.InitialBalance, acct.CurrentBalance)
		for _, mv := range acct.Movements {
			fmt.Fprintf(&buf, "  %-19s %-8s %12.2f %12.2f\n", mv.Fecha, mv.Tipo, mv.Valor, mv.SaldoPostMovimiento)
		}
		fmt.Fprintf(&buf, "  debitos %s  creditos %s\n\n", acct.TotalDebits, acct.TotalCredits)
	}

	fmt.Fprintf(&buf, "Total debitos %s  Total creditos %s\n", rpt.TotalDebits, rpt.TotalCredits)
	return base64.StdEncoding.EncodeToString([]byte(buf.String()))
}

func decode(rec nt.Record, out any) (err error) {

	data, err := json.Marshal(rec)
	if err != nil {
		err = errors.Wrapf(err, "failed to marshal record")
		return
	}

	err = json.Unmarshal(data, out)
	err = errors.Wrapf(err, "failed to decode record %s", rec.Id())
	return
}
