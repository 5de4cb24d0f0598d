package bankview

import (
	tea "charm.land/bubbletea/v2"
	"github.com/pkg/errors"

	nt "bankview/entity"
	"bankview/message"
	"bankview/report"
)

func pushCmd(screen Screen) tea.Cmd {
	return func() tea.Msg {
		return pushMsg{screen: screen}
	}
}

// fetchClients gets the first page of clients from the service
func (env *env) fetchClients() tea.Cmd {

	return func() tea.Msg {
		recs, err := env.svc.ListClients(env.ctx, 0, env.cfg.FetchSize)
		if err != nil {
			return message.ErrorMsg{Err: errors.Wrapf(err, "failed to load clients")}
		}
		return clientsMsg{records: recs}
	}
}

// fetchAccounts gets a client's accounts
func (env *env) fetchAccounts(clientId string) tea.Cmd {

	qry := nt.AccountQuery{
		ClienteId: clientId,
		Paging:    nt.Paging{Size: env.cfg.FetchSize},
	}

	return func() tea.Msg {
		recs, err := env.svc.ListAccounts(env.ctx, qry)
		if err != nil {
			return message.ErrorMsg{Err: errors.Wrapf(err, "failed to load accounts of %s", clientId)}
		}
		return accountsMsg{clientId: clientId, records: recs}
	}
}

// fetchMovements gets an account's movements within the configured range
func (env *env) fetchMovements(clientId, number string) tea.Cmd {

	qry := nt.MovementQuery{
		NumeroCuenta: number,
		ClienteId:    clientId,
		FechaDesde:   env.cfg.MovesFrom,
		FechaHasta:   env.cfg.MovesTo,
		Paging:       nt.Paging{Size: env.cfg.FetchSize},
	}

	return func() tea.Msg {
		recs, err := env.svc.ListMovements(env.ctx, qry)
		if err != nil {
			return message.ErrorMsg{Err: errors.Wrapf(err, "failed to load movements of %s", number)}
		}
		return movementsMsg{clientId: clientId, number: number, records: recs}
	}
}

// editClient gets a client and opens it in the form
func (env *env) editClient(id string) tea.Cmd {

	return func() tea.Msg {
		client, err := env.svc.GetClient(env.ctx, id)
		if err != nil {
			return message.ErrorMsg{Err: errors.Wrapf(err, "failed to get client %s", id)}
		}
		return pushMsg{screen: newFormScreen(env, client)}
	}
}

func (env *env) deleteClient(id string) tea.Cmd {

	return func() tea.Msg {
		err := env.svc.DeleteClient(env.ctx, id)
		if err != nil {
			return message.ErrorMsg{Err: errors.Wrapf(err, "failed to delete client %s", id)}
		}
		env.logger.Info(env.ctx, "deleted client", "id", id)
		return deletedMsg{id: id}
	}
}

// saveClient creates or updates a client
func (env *env) saveClient(client nt.Client, create bool) tea.Cmd {

	return func() tea.Msg {
		var saved nt.Client
		var err error
		if create {
			saved, err = env.svc.CreateClient(env.ctx, client)
		} else {
			saved, err = env.svc.UpdateClient(env.ctx, client)
		}
		if err != nil {
			return message.ErrorMsg{Err: errors.Wrapf(err, "failed to save client %s", client.Username)}
		}
		env.logger.Info(env.ctx, "saved client", "id", saved.Id, "create", create)
		return savedMsg{client: saved, create: create}
	}
}

// exportReport gets a client's pdf statement and writes it to the report dir
func (env *env) exportReport(qry nt.ReportQuery) tea.Cmd {

	return func() tea.Msg {
		pdf, err := env.svc.GenerateReport(env.ctx, qry)
		if err != nil {
			return message.ErrorMsg{Err: errors.Wrapf(err, "failed to generate report for %s", qry.ClienteId)}
		}

		path, err := report.Export(env.cfg.Report.Dir, qry, pdf)
		if err != nil {
			return message.ErrorMsg{Err: err}
		}
		env.logger.Info(env.ctx, "exported report", "client_id", qry.ClienteId, "path", path)
		return exportedMsg{clientId: qry.ClienteId, path: path}
	}
}
