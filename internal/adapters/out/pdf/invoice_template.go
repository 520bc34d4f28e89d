package pdf

import (
	"bytes"
	"html/template"

	"github.com/Keloce-2005/Back-office/internal/core/ports"
)

const invoiceLayout = `<!DOCTYPE html>
<html lang="fr">
<head>
<meta charset="utf-8">
<title>Facture {{.Reference}}</title>
<style>
body { font-family: Helvetica, Arial, sans-serif; font-size: 12px; color: #222; margin: 0; }
h1 { font-size: 20px; margin-bottom: 4px; }
.meta { color: #666; margin-bottom: 24px; }
.parties { display: flex; justify-content: space-between; margin-bottom: 24px; }
table { width: 100%; border-collapse: collapse; }
th, td { padding: 8px; border-bottom: 1px solid #ddd; text-align: left; }
td.amount, th.amount { text-align: right; }
tfoot td { font-weight: bold; border-top: 2px solid #222; }
</style>
</head>
<body>
<h1>Facture {{.Reference}}</h1>
<div class="meta">Émise le {{.IssuedAt.Format "02/01/2006"}} · Paiement {{.PaymentReference}}</div>
<div class="parties">
  <div><strong>Client</strong><br>{{.PayerName}}<br>{{.PayerEmail}}</div>
  {{- if .BeneficiaryName}}
  <div><strong>Bénéficiaire</strong><br>{{.BeneficiaryName}}</div>
  {{- end}}
</div>
<table>
  <thead><tr><th>Désignation</th><th class="amount">Montant (EUR)</th></tr></thead>
  <tbody>
  {{- range .Lines}}
    <tr><td>{{.Label}}</td><td class="amount">{{.Amount}}</td></tr>
  {{- end}}
  </tbody>
  <tfoot><tr><td>Total</td><td class="amount">{{.Total}}</td></tr></tfoot>
</table>
</body>
</html>`

var invoiceTemplate = template.Must(template.New("invoice").Parse(invoiceLayout))

// RenderInvoiceHTML produces the page printed by the PDF renderer.
func RenderInvoiceHTML(doc ports.InvoiceDocument) (string, error) {
	var buf bytes.Buffer
	if err := invoiceTemplate.Execute(&buf, doc); err != nil {
		return "", err
	}
	return buf.String(), nil
}
