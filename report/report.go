// Package report saves client statements delivered by the remote service.
package report

import (
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"

	nt "bankview/entity"
)

// FileName is the name a statement is saved under.
func FileName(qry nt.ReportQuery) string {
	return fmt.Sprintf("reporte_%s_%s_%s.pdf", qry.ClienteId, qry.FechaDesde, qry.FechaHasta)
}

// Export decodes a base64 pdf and writes it under dir, creating dir if need be.
func Export(dir string, qry nt.ReportQuery, pdf nt.PdfReport) (path string, err error) {

	encoded := strings.TrimSpace(pdf.PdfBase64)
	if encoded == "" {
		err = errors.Errorf("empty report for client %s", qry.ClienteId)
		return
	}

	data, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		err = errors.Wrapf(err, "failed to decode report for client %s", qry.ClienteId)
		return
	}

	if dir == "" {
		dir = "."
	}
	err = os.MkdirAll(dir, 0755)
	if err != nil {
		err = errors.Wrapf(err, "failed to create %s", dir)
		return
	}

	path = filepath.Join(dir, FileName(qry))
	err = os.WriteFile(path, data, 0644)
	err = errors.Wrapf(err, "failed to write to %s", path)
	return
}
