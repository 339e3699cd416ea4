package api

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/atomic"

	"github.com/kwenta/futures-data-watcher/common/logging"
	"github.com/kwenta/futures-data-watcher/futures"
	"github.com/kwenta/futures-data-watcher/graph"
)

// Server exposes mapped futures view models over HTTP. Upstream subgraph
// failures are logged and degrade to empty results: consumers cannot tell
// "no data" from "fetch failed".
type Server struct {
	ctx    context.Context
	logger logging.Logger
	graph  graph.Interface
	sizes  futures.MarketSizesSource
	server *http.Server
	ready  atomic.Bool
}

func NewServer(
	ctx context.Context, logger logging.Logger, addr string,
	graphClient graph.Interface, sizes futures.MarketSizesSource,
) *Server {
	s := &Server{
		ctx:    ctx,
		logger: logger,
		graph:  graphClient,
		sizes:  sizes,
	}
	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", s.OnHealthz)
	mux.HandleFunc("/positions", s.OnQueryPositions)
	mux.HandleFunc("/trades", s.OnQueryTrades)
	mux.HandleFunc("/margin-transfers", s.OnQueryMarginTransfers)
	mux.HandleFunc("/funding-rate", s.OnQueryFundingRate)
	mux.HandleFunc("/open-interest", s.OnQueryOpenInterest)
	mux.HandleFunc("/volumes", s.OnQueryVolumes)
	mux.HandleFunc("/volumes/synths", s.OnQuerySynthVolumes)
	mux.HandleFunc("/stats/daily", s.OnQueryDailyStats)
	s.server = &http.Server{
		Addr:         addr,
		WriteTimeout: time.Second * 25,
		Handler:      mux,
	}
	return s
}

func (s *Server) Shutdown() error {
	return s.server.Shutdown(s.ctx)
}

// Run serves until the context is canceled.
func (s *Server) Run() error {
	s.logger.Info("Starting futures data api httpserver on %s", s.server.Addr)
	errChan := make(chan error, 1)
	go func() {
		err := s.server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			errChan <- err
		}
	}()
	s.ready.Store(true)

	select {
	case <-s.ctx.Done():
		s.ready.Store(false)
		s.logger.Info("Server receives shutdown signal.")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return s.server.Shutdown(shutdownCtx)
	case err := <-errChan:
		s.ready.Store(false)
		return err
	}
}

func (s *Server) OnHealthz(w http.ResponseWriter, r *http.Request) {
	if !s.ready.Load() {
		w.WriteHeader(http.StatusServiceUnavailable)
		return
	}
	w.WriteHeader(http.StatusOK)
}

// OnQueryPositions maps the account's subgraph position rows to history
// records.
func (s *Server) OnQueryPositions(w http.ResponseWriter, r *http.Request) {
	account := r.URL.Query().Get("account")
	if account == "" {
		http.Error(w, "account is required", http.StatusBadRequest)
		return
	}
	rows, err := s.graph.GetPositions(account)
	if err != nil {
		s.logger.Error("fail to get positions account=%s err=%s", account, err)
		s.writeJSON(w, []futures.PositionHistory{})
		return
	}
	s.writeJSON(w, futures.MapPositionHistory(rows))
}

func (s *Server) OnQueryTrades(w http.ResponseWriter, r *http.Request) {
	account := r.URL.Query().Get("account")
	if account == "" {
		http.Error(w, "account is required", http.StatusBadRequest)
		return
	}
	rows, err := s.graph.GetTrades(account, 1000)
	if err != nil {
		s.logger.Error("fail to get trades account=%s err=%s", account, err)
		s.writeJSON(w, []futures.FuturesTrade{})
		return
	}
	s.writeJSON(w, futures.MapTrades(rows))
}

func (s *Server) OnQueryMarginTransfers(w http.ResponseWriter, r *http.Request) {
	market := r.URL.Query().Get("market")
	account := r.URL.Query().Get("account")
	if market == "" || account == "" {
		http.Error(w, "market and account are required", http.StatusBadRequest)
		return
	}
	rows, err := s.graph.GetMarginTransfers(market, account)
	if err != nil {
		s.logger.Error("fail to get margin transfers market=%s account=%s err=%s",
			market, account, err)
		s.writeJSON(w, []futures.MarginTransfer{})
		return
	}
	s.writeJSON(w, futures.MapMarginTransfers(rows))
}

// FundingRateResp carries the estimated rate; Rate is null when fewer than
// two checkpoints exist in the window.
type FundingRateResp struct {
	Market string           `json:"market"`
	Rate   *decimal.Decimal `json:"rate"`
}

func (s *Server) OnQueryFundingRate(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	market := q.Get("market")
	if market == "" {
		http.Error(w, "market is required", http.StatusBadRequest)
		return
	}
	price, err := decimal.NewFromString(q.Get("price"))
	if err != nil {
		http.Error(w, "price is required", http.StatusBadRequest)
		return
	}
	currentRate, err := decimal.NewFromString(q.Get("currentRate"))
	if err != nil {
		http.Error(w, "currentRate is required", http.StatusBadRequest)
		return
	}

	periodLength := futures.SecondsPerDay
	minTimestamp := time.Now().Unix() - periodLength

	rows, err := s.graph.GetFundingRateUpdates(market, minTimestamp)
	if err != nil {
		s.logger.Error("fail to get funding rate updates market=%s err=%s", market, err)
		s.writeJSON(w, FundingRateResp{Market: market})
		return
	}
	updates := make([]futures.FundingRateUpdate, 0, len(rows))
	for _, row := range rows {
		updates = append(updates, futures.FundingRateUpdate{
			Timestamp: row.Timestamp.IntPart(),
			Funding:   row.Funding,
		})
	}

	rate, err := futures.CalculateFundingRate(minTimestamp, periodLength, updates, price, currentRate)
	if err != nil {
		if err != futures.ErrInsufficientData {
			s.logger.Error("fail to calculate funding rate market=%s err=%s", market, err)
		}
		s.writeJSON(w, FundingRateResp{Market: market})
		return
	}
	s.writeJSON(w, FundingRateResp{Market: market, Rate: &rate})
}

func (s *Server) OnQueryOpenInterest(w http.ResponseWriter, r *http.Request) {
	assetsParam := r.URL.Query().Get("assets")
	if assetsParam == "" {
		http.Error(w, "assets is required", http.StatusBadRequest)
		return
	}
	if s.sizes == nil {
		s.writeJSON(w, []futures.OpenInterest{})
		return
	}
	assets := strings.Split(assetsParam, ",")
	s.writeJSON(w, futures.MapOpenInterest(assets, s.sizes))
}

func (s *Server) OnQueryVolumes(w http.ResponseWriter, r *http.Request) {
	minTimestamp := time.Now().Unix() - futures.SecondsPerDay
	rows, err := s.graph.GetHourlyStats(minTimestamp)
	if err != nil {
		s.logger.Error("fail to get hourly stats err=%s", err)
		s.writeJSON(w, futures.Volumes{})
		return
	}
	s.writeJSON(w, futures.CalculateVolumes(rows))
}

func (s *Server) OnQuerySynthVolumes(w http.ResponseWriter, r *http.Request) {
	minTimestamp := time.Now().Unix() - futures.SecondsPerDay
	rows, err := s.graph.GetSynthExchanges(minTimestamp)
	if err != nil {
		s.logger.Error("fail to get synth exchanges err=%s", err)
		s.writeJSON(w, map[string]decimal.Decimal{})
		return
	}
	s.writeJSON(w, futures.CalculateSynthVolumes(rows))
}

func (s *Server) OnQueryDailyStats(w http.ResponseWriter, r *http.Request) {
	minTimestamp := time.Now().Unix() - futures.SecondsPerDay
	rows, err := s.graph.GetOneMinStats(minTimestamp)
	if err != nil {
		s.logger.Error("fail to get one minute stats err=%s", err)
		s.writeJSON(w, futures.DailyStats{})
		return
	}
	s.writeJSON(w, futures.CalculateDailyTradeStats(rows))
}

func (s *Server) writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("fail to encode response err=%s", err)
	}
}
