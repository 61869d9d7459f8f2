package render

import (
	"bytes"
	"html/template"
	"time"

	"github.com/shopspring/decimal"
)

const trialBalanceHTMLTemplate = `<!doctype html>
<html lang="en">
<head>
  <meta charset="utf-8" />
  <title>Trial Balance</title>
  <style>
    * { box-sizing: border-box; }
    body {
      margin: 0;
      padding: 32px;
      font-family: "Helvetica Neue", Arial, sans-serif;
      color: #111827;
      background: #ffffff;
    }
    .report { max-width: 920px; margin: 0 auto; }
    .header {
      display: flex;
      justify-content: space-between;
      align-items: flex-start;
      border-bottom: 2px solid #111827;
      padding-bottom: 16px;
      margin-bottom: 24px;
    }
    .meta { text-align: right; font-size: 14px; }
    .meta .label {
      color: #6b7280;
      text-transform: uppercase;
      letter-spacing: 0.04em;
      font-size: 11px;
    }
    table { width: 100%; border-collapse: collapse; font-size: 13px; }
    th, td { padding: 8px 10px; border-bottom: 1px solid #e5e7eb; text-align: left; }
    th {
      text-transform: uppercase;
      font-size: 11px;
      letter-spacing: 0.04em;
      color: #6b7280;
    }
    td.num, th.num { text-align: right; font-variant-numeric: tabular-nums; }
    .account-row td { font-weight: 600; background: #f9fafb; }
    .synthetic td { color: #6b7280; font-style: italic; }
    .footer {
      margin-top: 24px;
      border-top: 1px solid #e5e7eb;
      padding-top: 16px;
      font-size: 12px;
      color: #6b7280;
    }
    @media print { body { padding: 0; } }
  </style>
</head>
<body>
  <div class="report">
    <div class="header">
      <div>
        <div><strong>{{.CompanyName}}</strong></div>
        <div>Trial Balance</div>
      </div>
      <div class="meta">
        <div class="label">Period</div>
        <div>{{formatRange .From .To}}</div>
        <div class="label">Generated</div>
        <div>{{formatDate .GeneratedAt}}</div>
      </div>
    </div>

    <table>
      <thead>
        <tr>
          <th>Account</th>
          <th>Reference</th>
          <th>Date</th>
          <th class="num">Debit</th>
          <th class="num">Credit</th>
          <th class="num">Balance</th>
        </tr>
      </thead>
      <tbody>
        {{range .Rows}}
        <tr class="account-row">
          <td>{{.Account.Number}} {{.Account.Description}}</td>
          <td></td>
          <td></td>
          <td class="num">{{formatMoney .DebitTotal}}</td>
          <td class="num">{{formatMoney .CreditTotal}}</td>
          <td class="num">{{formatMoney .Balance}}</td>
        </tr>
        {{if .Transactions}}
        <tr class="synthetic">
          <td>Opening Balance</td>
          <td></td><td></td><td class="num"></td><td class="num"></td>
          <td class="num">{{formatMoney .OpeningBalance}}</td>
        </tr>
        {{range .Transactions}}
        <tr>
          <td>{{.Entry.Description}}</td>
          <td>{{.DisplayReference}}</td>
          <td>{{formatDate .DisplayDate}}</td>
          <td class="num">{{formatMoney .Entry.Debit}}</td>
          <td class="num">{{formatMoney .Entry.Credit}}</td>
          <td class="num"></td>
        </tr>
        {{end}}
        <tr class="synthetic">
          <td>Closing Balance</td>
          <td></td><td></td><td class="num"></td><td class="num"></td>
          <td class="num">{{formatMoney .Balance}}</td>
        </tr>
        {{end}}
        {{end}}
      </tbody>
    </table>

    <div class="footer">{{.TotalCount}} transactions in period.</div>
  </div>
</body>
</html>`

const journalHTMLTemplate = `<!doctype html>
<html lang="en">
<head>
  <meta charset="utf-8" />
  <title>Journal Listing</title>
  <style>
    body {
      margin: 0;
      padding: 32px;
      font-family: "Helvetica Neue", Arial, sans-serif;
      color: #111827;
    }
    .report { max-width: 920px; margin: 0 auto; }
    h1 { font-size: 18px; border-bottom: 2px solid #111827; padding-bottom: 12px; }
    table { width: 100%; border-collapse: collapse; font-size: 13px; }
    th, td { padding: 8px 10px; border-bottom: 1px solid #e5e7eb; text-align: left; }
    td.num, th.num { text-align: right; font-variant-numeric: tabular-nums; }
    @media print { body { padding: 0; } }
  </style>
</head>
<body>
  <div class="report">
    <h1>{{.CompanyName}} — Journal Listing</h1>
    <table>
      <thead>
        <tr>
          <th>Date</th>
          <th>Reference</th>
          <th>Account</th>
          <th>Description</th>
          <th class="num">Debit</th>
          <th class="num">Credit</th>
        </tr>
      </thead>
      <tbody>
        {{range .Rows}}
        <tr>
          <td>{{formatDate .DisplayDate}}</td>
          <td>{{.DisplayReference}}</td>
          <td>{{.Entry.AccountNumber}} {{.Entry.AccountName}}</td>
          <td>{{.Entry.Description}}</td>
          <td class="num">{{formatMoney .Entry.Debit}}</td>
          <td class="num">{{formatMoney .Entry.Credit}}</td>
        </tr>
        {{end}}
      </tbody>
    </table>
    <p>Generated {{formatDate .GeneratedAt}}</p>
  </div>
</body>
</html>`

type htmlRenderer struct {
	trialBalance *template.Template
	journal      *template.Template
}

// NewRenderer parses the report templates once at construction.
func NewRenderer() (Renderer, error) {
	funcs := template.FuncMap{
		"formatMoney": formatMoney,
		"formatDate":  formatDate,
		"formatRange": formatRange,
	}
	tb, err := template.New("trial_balance").Funcs(funcs).Parse(trialBalanceHTMLTemplate)
	if err != nil {
		return nil, err
	}
	journal, err := template.New("journal").Funcs(funcs).Parse(journalHTMLTemplate)
	if err != nil {
		return nil, err
	}
	return &htmlRenderer{trialBalance: tb, journal: journal}, nil
}

func (r *htmlRenderer) RenderTrialBalanceHTML(input TrialBalanceInput) (string, error) {
	var buf bytes.Buffer
	if err := r.trialBalance.Execute(&buf, input); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func (r *htmlRenderer) RenderJournalHTML(input JournalInput) (string, error) {
	var buf bytes.Buffer
	if err := r.journal.Execute(&buf, input); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func formatMoney(value decimal.Decimal) string {
	return value.StringFixed(2)
}

func formatDate(value time.Time) string {
	if value.IsZero() {
		return "-"
	}
	return value.Format("2006-01-02")
}

func formatRange(from, to *time.Time) string {
	if from == nil || to == nil {
		return "All dates"
	}
	return from.Format("2006-01-02") + " - " + to.Format("2006-01-02")
}
