package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/kwenta/futures-data-watcher/common/logging"
	"github.com/kwenta/futures-data-watcher/futures"
	"github.com/kwenta/futures-data-watcher/graph"
)

// mockGraph is an in-memory graph.Interface. With fail set every call
// errors, exercising the degrade-to-empty contract.
type mockGraph struct {
	fail      bool
	transfers []graph.MarginTransferResult
	trades    []graph.TradeResult
	fundings  []graph.FundingRateUpdateResult
}

var errMock = errors.New("mock graph failure")

func (m *mockGraph) GetPositions(account string) ([]graph.PositionResult, error) {
	if m.fail {
		return nil, errMock
	}
	return nil, nil
}

func (m *mockGraph) GetTrades(account string, first int) ([]graph.TradeResult, error) {
	if m.fail {
		return nil, errMock
	}
	return m.trades, nil
}

func (m *mockGraph) GetMarginTransfers(market string, account string) ([]graph.MarginTransferResult, error) {
	if m.fail {
		return nil, errMock
	}
	return m.transfers, nil
}

func (m *mockGraph) GetFundingRateUpdates(market string, minTimestamp int64) ([]graph.FundingRateUpdateResult, error) {
	if m.fail {
		return nil, errMock
	}
	return m.fundings, nil
}

func (m *mockGraph) GetHourlyStats(minTimestamp int64) ([]graph.HourlyStatResult, error) {
	if m.fail {
		return nil, errMock
	}
	return nil, nil
}

func (m *mockGraph) GetOneMinStats(minTimestamp int64) ([]graph.OneMinStatResult, error) {
	if m.fail {
		return nil, errMock
	}
	return nil, nil
}

func (m *mockGraph) GetSynthExchanges(minTimestamp int64) ([]graph.SynthExchangeResult, error) {
	if m.fail {
		return nil, errMock
	}
	return nil, nil
}

type ServerSuite struct {
	suite.Suite

	mock   *mockGraph
	server *Server
}

func (s *ServerSuite) SetupTest() {
	s.mock = &mockGraph{}
	s.server = NewServer(context.Background(), logging.NewLoggerTag("test"),
		":0", s.mock, nil)
}

func (s *ServerSuite) get(handler http.HandlerFunc, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	handler(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func (s *ServerSuite) TestFailedFetchDegradesToEmpty() {
	s.mock.fail = true

	rec := s.get(s.server.OnQueryPositions, "/positions?account=0xabc")
	s.Require().Equal(http.StatusOK, rec.Code)
	var history []futures.PositionHistory
	s.Require().Nil(json.Unmarshal(rec.Body.Bytes(), &history))
	s.Require().Empty(history)

	rec = s.get(s.server.OnQueryTrades, "/trades?account=0xabc")
	s.Require().Equal(http.StatusOK, rec.Code)
	var trades []futures.FuturesTrade
	s.Require().Nil(json.Unmarshal(rec.Body.Bytes(), &trades))
	s.Require().Empty(trades)

	rec = s.get(s.server.OnQueryMarginTransfers, "/margin-transfers?market=0xm&account=0xabc")
	s.Require().Equal(http.StatusOK, rec.Code)
	var transfers []futures.MarginTransfer
	s.Require().Nil(json.Unmarshal(rec.Body.Bytes(), &transfers))
	s.Require().Empty(transfers)
}

func (s *ServerSuite) TestMissingParamsRejected() {
	rec := s.get(s.server.OnQueryPositions, "/positions")
	s.Require().Equal(http.StatusBadRequest, rec.Code)

	rec = s.get(s.server.OnQueryMarginTransfers, "/margin-transfers?market=0xm")
	s.Require().Equal(http.StatusBadRequest, rec.Code)
}

func (s *ServerSuite) TestMarginTransfers() {
	s.mock.transfers = []graph.MarginTransferResult{
		{
			ID:        "0xaaa-1",
			Timestamp: decimal.NewFromInt(1650000000),
			Account:   "0xabc",
			Market:    "0xm",
			Size:      decimal.NewFromInt(100).Shift(18),
			Asset:     "0x7345544800000000000000000000000000000000000000000000000000000000",
			TxHash:    "0xaaa",
		},
	}
	rec := s.get(s.server.OnQueryMarginTransfers, "/margin-transfers?market=0xm&account=0xabc")
	s.Require().Equal(http.StatusOK, rec.Code)

	var transfers []futures.MarginTransfer
	s.Require().Nil(json.Unmarshal(rec.Body.Bytes(), &transfers))
	s.Require().Len(transfers, 1)
	s.Require().Equal(futures.ActionDeposit, transfers[0].Action)
	s.Require().Equal("+$100.00", transfers[0].Amount)
	s.Require().Equal("sETH", transfers[0].Asset)
}

func (s *ServerSuite) TestFundingRateInsufficientData() {
	s.mock.fundings = []graph.FundingRateUpdateResult{
		{Timestamp: decimal.NewFromInt(1), Funding: decimal.NewFromInt(0)},
	}
	rec := s.get(s.server.OnQueryFundingRate,
		"/funding-rate?market=0xm&price=1000&currentRate=0.0001")
	s.Require().Equal(http.StatusOK, rec.Code)

	var resp FundingRateResp
	s.Require().Nil(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Require().Nil(resp.Rate)
}

func (s *ServerSuite) TestOpenInterestWithoutSource() {
	rec := s.get(s.server.OnQueryOpenInterest, "/open-interest?assets=sETH,sBTC")
	s.Require().Equal(http.StatusOK, rec.Code)
	var oi []futures.OpenInterest
	s.Require().Nil(json.Unmarshal(rec.Body.Bytes(), &oi))
	s.Require().Empty(oi)
}

func TestServer(t *testing.T) {
	suite.Run(t, new(ServerSuite))
}
