package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/radieske/lotto-bet-platform-poc/internal/entry-service/bet"
	"github.com/radieske/lotto-bet-platform-poc/internal/entry-service/compiler"
	"github.com/radieske/lotto-bet-platform-poc/internal/entry-service/dto"
	"github.com/radieske/lotto-bet-platform-poc/internal/entry-service/report"
	"github.com/radieske/lotto-bet-platform-poc/internal/entry-service/repo"
	"github.com/radieske/lotto-bet-platform-poc/internal/entry-service/settings"
	"github.com/radieske/lotto-bet-platform-poc/pkg/contracts/events"
)

type Server struct {
	log      *zap.Logger
	repo     *repo.Postgres
	settings *settings.Store
	publ     interface {
		PublishBillSubmitted(context.Context, events.BillSubmitted) error
	}

	OnCompiled func(wagers int) // métricas
	OnRejected func()           // métricas
}

func NewServer(log *zap.Logger, r *repo.Postgres, s *settings.Store, p interface {
	PublishBillSubmitted(context.Context, events.BillSubmitted) error
}) *Server {
	return &Server{log: log, repo: r, settings: s, publ: p}
}

func (s *Server) Router() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/bills", s.submitBill)      // POST
	mux.HandleFunc("/bills/", s.billRoutes)     // GET /bills/{id} | GET /bills/{id}/report
	mux.HandleFunc("/entries/", s.entryRoutes)  // POST /entries/{id}/supersede
	mux.HandleFunc("/rates/", s.saveRates)      // PUT /rates/{dealerId}
	return mux
}

// compileAll compila todas as entradas do bilhete; qualquer falha rejeita o
// bilhete inteiro — nenhuma aposta parcial é persistida.
func (s *Server) compileAll(ctx context.Context, dealerID string, round bet.RoundContext, entries []dto.EntryInput) ([]bet.CanonicalWager, error) {
	snap, err := s.settings.Snapshot(ctx, dealerID)
	if err != nil {
		return nil, err
	}
	var out []bet.CanonicalWager
	for i, e := range entries {
		ws, err := compiler.Compile(bet.RawEntry{
			Numbers:    e.Numbers,
			AmountExpr: e.Amount,
			BetType:    e.BetType,
		}, snap, round)
		if err != nil {
			return nil, fmt.Errorf("entry %d (%s): %w", i, e.Numbers, err)
		}
		out = append(out, ws...)
	}
	return out, nil
}

func isRejection(err error) bool {
	return errors.Is(err, bet.ErrInvalidInput) ||
		errors.Is(err, bet.ErrDigitCountMismatch) ||
		errors.Is(err, bet.ErrZeroOrNegativeAmount) ||
		errors.Is(err, bet.ErrUnknownBetType)
}

func (s *Server) submitBill(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req dto.SubmitBillRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad json", http.StatusBadRequest)
		return
	}
	if req.DealerID == "" || req.Category == "" || len(req.Entries) == 0 {
		http.Error(w, "invalid payload", http.StatusBadRequest)
		return
	}

	round := bet.RoundContext{Category: req.Category, SetPrices: req.SetPrices}
	wagers, err := s.compileAll(r.Context(), req.DealerID, round, req.Entries)
	if err != nil {
		if isRejection(err) {
			if s.OnRejected != nil {
				s.OnRejected()
			}
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	billID, inserted, err := s.repo.CreateBill(r.Context(), &repo.Bill{
		DealerID:    req.DealerID,
		Category:    req.Category,
		Label:       req.Label,
		SubmittedBy: req.SubmittedBy,
		CutoffAt:    req.CutoffAt,
	}, wagers)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if s.OnCompiled != nil {
		s.OnCompiled(len(inserted))
	}

	var total, commission float64
	entryIDs := map[string]struct{}{}
	for _, w := range inserted {
		total += w.Amount
		commission += w.CommissionAmount
		entryIDs[w.EntryID] = struct{}{}
	}

	_ = s.publ.PublishBillSubmitted(r.Context(), events.BillSubmitted{
		BillID:          billID,
		DealerID:        req.DealerID,
		Category:        req.Category,
		EntryCount:      len(entryIDs),
		WagerCount:      len(inserted),
		TotalAmount:     total,
		TotalCommission: commission,
	})

	views := make([]dto.WagerView, len(inserted))
	for i, w := range inserted {
		views[i] = dto.ToWagerView(w)
	}
	writeJSON(w, dto.SubmitBillResponse{
		BillID:          billID,
		EntryCount:      len(entryIDs),
		WagerCount:      len(inserted),
		TotalAmount:     total,
		TotalCommission: commission,
		Wagers:          views,
	})
}

func (s *Server) billRoutes(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	// path: /bills/{id} ou /bills/{id}/report
	rest := strings.TrimPrefix(r.URL.Path, "/bills/")
	id, sub, _ := strings.Cut(rest, "/")
	if id == "" {
		http.Error(w, "billId required", http.StatusBadRequest)
		return
	}
	switch sub {
	case "":
		s.getBill(w, r, id)
	case "report":
		s.getReport(w, r, id)
	default:
		http.Error(w, "not found", http.StatusNotFound)
	}
}

func (s *Server) getBill(w http.ResponseWriter, r *http.Request, billID string) {
	b, err := s.repo.GetBill(r.Context(), billID)
	if err != nil {
		http.Error(w, "not found", http.StatusNotFound)
		return
	}
	ws, err := s.repo.ListByBill(r.Context(), billID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	views := make([]dto.WagerView, len(ws))
	for i, wg := range ws {
		views[i] = dto.ToWagerView(wg)
	}
	writeJSON(w, dto.BillResponse{
		BillID:      b.ID,
		DealerID:    b.DealerID,
		Category:    b.Category,
		Label:       b.Label,
		SubmittedBy: b.SubmittedBy,
		CutoffAt:    b.CutoffAt,
		Wagers:      views,
	})
}

func (s *Server) getReport(w http.ResponseWriter, r *http.Request, billID string) {
	b, err := s.repo.GetBill(r.Context(), billID)
	if err != nil {
		http.Error(w, "not found", http.StatusNotFound)
		return
	}
	ws, err := s.repo.ListByBill(r.Context(), billID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	title := r.URL.Query().Get("title")
	if title == "" {
		title = "โพยหวย"
	}
	text := report.Render(report.Header{
		Title:     title,
		BillLabel: b.Label,
		Cutoff:    b.CutoffAt,
		Submitter: b.SubmittedBy,
	}, ws)
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte(text))
}

func (s *Server) entryRoutes(w http.ResponseWriter, r *http.Request) {
	// path: /entries/{id}/supersede
	rest := strings.TrimPrefix(r.URL.Path, "/entries/")
	entryID, sub, _ := strings.Cut(rest, "/")
	if entryID == "" || sub != "supersede" {
		http.Error(w, "not found", http.StatusNotFound)
		return
	}
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req dto.SupersedeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad json", http.StatusBadRequest)
		return
	}
	if req.BillID == "" {
		http.Error(w, "billId required", http.StatusBadRequest)
		return
	}

	b, err := s.repo.GetBill(r.Context(), req.BillID)
	if err != nil {
		http.Error(w, "bill not found", http.StatusNotFound)
		return
	}

	round := bet.RoundContext{Category: b.Category}
	wagers, err := s.compileAll(r.Context(), b.DealerID, round, []dto.EntryInput{req.Entry})
	if err != nil {
		if isRejection(err) {
			if s.OnRejected != nil {
				s.OnRejected()
			}
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	inserted, err := s.repo.Supersede(r.Context(), entryID, req.BillID, wagers)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if s.OnCompiled != nil {
		s.OnCompiled(len(inserted))
	}

	views := make([]dto.WagerView, len(inserted))
	for i, wg := range inserted {
		views[i] = dto.ToWagerView(wg)
	}
	writeJSON(w, dto.SupersedeResponse{
		BillID:     req.BillID,
		NewEntryID: inserted[0].EntryID,
		Wagers:     views,
	})
}

func (s *Server) saveRates(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPut {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	dealerID := strings.TrimPrefix(r.URL.Path, "/rates/")
	if dealerID == "" || strings.Contains(dealerID, "/") {
		http.Error(w, "dealerId required", http.StatusBadRequest)
		return
	}
	var req dto.SaveRatesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad json", http.StatusBadRequest)
		return
	}
	if err := s.settings.Save(r.Context(), dealerID, req.Settings); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}
