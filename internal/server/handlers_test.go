package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/homelife/backoffice/internal/coa"
	"github.com/homelife/backoffice/internal/config"
	ledgerdomain "github.com/homelife/backoffice/internal/ledger/domain"
	obscontext "github.com/homelife/backoffice/internal/observability/context"
	"github.com/homelife/backoffice/internal/observability/metrics"
	tbdomain "github.com/homelife/backoffice/internal/trialbalance/domain"
)

type stubLedgerService struct {
	entries []ledgerdomain.LedgerEntry
	postErr error
	next    string
	cleared bool
}

func (s *stubLedgerService) PostBatch(ctx context.Context, date *time.Time, description string, lines []ledgerdomain.PostLine) ([]ledgerdomain.LedgerEntry, error) {
	if s.postErr != nil {
		return nil, s.postErr
	}
	return s.entries, nil
}

func (s *stubLedgerService) List(ctx context.Context, from, to *time.Time) ([]ledgerdomain.LedgerEntry, error) {
	return s.entries, nil
}

func (s *stubLedgerService) NextReference(ctx context.Context) (string, error) {
	return s.next, nil
}

func (s *stubLedgerService) ClearAll(ctx context.Context) error {
	s.cleared = true
	return nil
}

type stubTrialBalanceService struct {
	report tbdomain.TrialBalance
}

func (s *stubTrialBalanceService) Build(ctx context.Context, from, to *time.Time) (tbdomain.TrialBalance, error) {
	return s.report, nil
}

func newTestServer(t *testing.T, ledger ledgerdomain.Service, tb tbdomain.TrialBalanceService) (*Server, *gin.Engine) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	srv := &Server{
		log:             zap.NewNop(),
		ledgerSvc:       ledger,
		trialBalanceSvc: tb,
		httpMetrics:     metrics.NewHTTPMetrics(config.Config{Environment: "test"}),
	}
	engine := gin.New()
	srv.RegisterAPIRoutes(engine)
	return srv, engine
}

func TestPostLedgerEntries(t *testing.T) {
	stub := &stubLedgerService{
		entries: []ledgerdomain.LedgerEntry{
			{Reference: "JE1000", AccountNumber: "10001"},
			{Reference: "JE1000", AccountNumber: "40001"},
		},
	}
	_, engine := newTestServer(t, stub, &stubTrialBalanceService{})

	body := `{"lines":[
		{"accountNumber":"10001","debit":"100"},
		{"accountNumber":"40001","credit":"100"}
	]}`
	req := httptest.NewRequest(http.MethodPost, "/api/ledger", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), "JE1000") {
		t.Fatalf("expected stored entries in response, got %s", w.Body.String())
	}
}

func TestPostLedgerEntriesUnbalancedReturns400(t *testing.T) {
	stub := &stubLedgerService{postErr: ledgerdomain.ErrUnbalancedEntry}
	_, engine := newTestServer(t, stub, &stubTrialBalanceService{})

	body := `{"lines":[
		{"accountNumber":"10001","debit":"100"},
		{"accountNumber":"40001","credit":"60"}
	]}`
	req := httptest.NewRequest(http.MethodPost, "/api/ledger", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "unbalanced_entry") {
		t.Fatalf("expected unbalanced_entry code, got %s", w.Body.String())
	}
}

func TestPostLedgerEntriesRejectsBadDate(t *testing.T) {
	_, engine := newTestServer(t, &stubLedgerService{}, &stubTrialBalanceService{})

	req := httptest.NewRequest(http.MethodPost, "/api/ledger", strings.NewReader(`{"date":"not-a-date","lines":[]}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestNextReferenceRejectsUnknownKind(t *testing.T) {
	_, engine := newTestServer(t, &stubLedgerService{next: "JE1001"}, &stubTrialBalanceService{})

	req := httptest.NewRequest(http.MethodGet, "/api/ledger/next-reference/PO", nil)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestNextReferenceJournalEntry(t *testing.T) {
	_, engine := newTestServer(t, &stubLedgerService{next: "JE1001"}, &stubTrialBalanceService{})

	req := httptest.NewRequest(http.MethodGet, "/api/ledger/next-reference/JE", nil)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "JE1001") {
		t.Fatalf("expected JE1001, got %s", w.Body.String())
	}
}

func TestClearLedger(t *testing.T) {
	stub := &stubLedgerService{}
	_, engine := newTestServer(t, stub, &stubTrialBalanceService{})

	req := httptest.NewRequest(http.MethodDelete, "/api/ledger", nil)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if !stub.cleared {
		t.Fatalf("expected ClearAll to be called")
	}
}

func TestGetTrialBalanceCSV(t *testing.T) {
	tb := &stubTrialBalanceService{
		report: tbdomain.TrialBalance{
			Rows: []tbdomain.AccountBalance{
				{
					Account:     coa.Account{Number: "10001", Description: "Cash - Operating", Type: coa.TypeAsset},
					DebitTotal:  decimal.NewFromInt(100),
					CreditTotal: decimal.NewFromInt(40),
					Balance:     decimal.NewFromInt(60),
				},
			},
			RowCount: 1,
		},
	}
	_, engine := newTestServer(t, &stubLedgerService{}, tb)

	req := httptest.NewRequest(http.MethodGet, "/api/trial-balance?format=csv", nil)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if got := w.Header().Get("Content-Type"); got != "text/csv" {
		t.Fatalf("expected text/csv, got %q", got)
	}
	body := w.Body.String()
	if !strings.Contains(body, "10001") || !strings.Contains(body, "60.00") {
		t.Fatalf("expected account row in CSV, got %s", body)
	}
}

func TestGetTrialBalanceRejectsInvertedRange(t *testing.T) {
	_, engine := newTestServer(t, &stubLedgerService{}, &stubTrialBalanceService{})

	req := httptest.NewRequest(http.MethodGet, "/api/trial-balance?from=2025-03-10&to=2025-03-01", nil)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestUpdateListingRejectsBadID(t *testing.T) {
	_, engine := newTestServer(t, &stubLedgerService{}, &stubTrialBalanceService{})

	req := httptest.NewRequest(http.MethodPut, "/api/listings/not-an-id", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

type stubAuditService struct {
	actorType string
	actorID   *string
	action    string
}

func (s *stubAuditService) AuditLog(ctx context.Context, actorType string, actorID *string, action, targetType string, targetID *string, metadata map[string]any) error {
	s.actorType = actorType
	s.actorID = actorID
	s.action = action
	return nil
}

func TestAuditPassesActorFromRequestContext(t *testing.T) {
	gin.SetMode(gin.TestMode)
	stub := &stubAuditService{}
	srv := &Server{log: zap.NewNop(), auditSvc: stub}

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req := httptest.NewRequest(http.MethodPost, "/api/ledger", nil)
	c.Request = req.WithContext(obscontext.WithActor(req.Context(), "user", "staff-41"))

	srv.audit(c, "ledger.post", "ledger_entry", nil, nil)

	if stub.action != "ledger.post" {
		t.Fatalf("expected audit call, got action %q", stub.action)
	}
	if stub.actorType != "user" {
		t.Fatalf("expected actor type user, got %q", stub.actorType)
	}
	if stub.actorID == nil || *stub.actorID != "staff-41" {
		t.Fatalf("expected actor id staff-41, got %v", stub.actorID)
	}
}
