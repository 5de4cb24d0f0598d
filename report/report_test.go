package report

import (
	"encoding/base64"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	nt "bankview/entity"
)

var qry = nt.ReportQuery{
	ClienteId:  "c1",
	FechaDesde: "2025-01-01",
	FechaHasta: "2025-03-31",
}

func TestExport(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "reportes")
	body := "%PDF-1.4 estado de cuenta"

	path, err := Export(dir, qry, nt.PdfReport{PdfBase64: base64.StdEncoding.EncodeToString([]byte(body))})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "reporte_c1_2025-01-01_2025-03-31.pdf"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, body, string(data))
}

func TestExportErrors(t *testing.T) {
	tests := []struct {
		name string
		pdf  string
		err  string
	}{
		{name: "empty", pdf: "  ", err: "empty report for client c1"},
		{name: "not base64", pdf: "@@@", err: "failed to decode report for client c1"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			dir := t.TempDir()

			_, err := Export(dir, qry, nt.PdfReport{PdfBase64: tc.pdf})
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.err)

			entries, err := os.ReadDir(dir)
			require.NoError(t, err)
			assert.Empty(t, entries)
		})
	}
}
