package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/aidar/team-dao/internal/domain"
	"github.com/aidar/team-dao/internal/handler"
	"github.com/aidar/team-dao/internal/handler/mocks"
	"github.com/aidar/team-dao/internal/service"
)

func TestTournamentHandler_Vote(t *testing.T) {
	tests := []struct {
		name           string
		body           map[string]interface{}
		mockSetup      func(m *mocks.MockTournamentService)
		expectedStatus int
		expectedCode   domain.ErrorCode
		resolved       bool
	}{
		{
			name: "success - vote resolves",
			body: map[string]interface{}{"team_name": "team1", "team_uid": 42, "vote": "YES"},
			mockSetup: func(m *mocks.MockTournamentService) {
				m.EXPECT().VoteForTournament(gomock.Any(), testKey, "alice", domain.ChoiceYes).
					Return(&service.VoteResult{Team: &domain.Team{Key: testKey}, Resolved: true}, nil)
			},
			expectedStatus: http.StatusOK,
			resolved:       true,
		},
		{
			name:           "error - unknown vote",
			body:           map[string]interface{}{"team_name": "team1", "team_uid": 42, "vote": "maybe"},
			mockSetup:      func(m *mocks.MockTournamentService) {},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   domain.CodeInvalidVote,
		},
		{
			name: "error - already voted",
			body: map[string]interface{}{"team_name": "team1", "team_uid": 42, "vote": "no"},
			mockSetup: func(m *mocks.MockTournamentService) {
				m.EXPECT().VoteForTournament(gomock.Any(), testKey, "alice", domain.ChoiceNo).Return(nil, domain.ErrAlreadyVoted)
			},
			expectedStatus: http.StatusConflict,
			expectedCode:   domain.CodeAlreadyVoted,
		},
		{
			name: "error - no tournament",
			body: map[string]interface{}{"team_name": "team1", "team_uid": 42, "vote": "yes"},
			mockSetup: func(m *mocks.MockTournamentService) {
				m.EXPECT().VoteForTournament(gomock.Any(), testKey, "alice", domain.ChoiceYes).Return(nil, domain.ErrNoActiveTournament)
			},
			expectedStatus: http.StatusConflict,
			expectedCode:   domain.CodeNoActiveTournament,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockService := mocks.NewMockTournamentService(ctrl)
			tt.mockSetup(mockService)

			h := handler.NewTournamentHandler(mockService)
			w := httptest.NewRecorder()
			h.Vote(w, newRequest(t, http.MethodPost, "/tournament/vote", tt.body, "alice"))

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedCode != "" {
				assert.Equal(t, string(tt.expectedCode), decodeError(t, w).Error.Code)
				return
			}

			var response service.VoteResult
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
			assert.Equal(t, tt.resolved, response.Resolved)
		})
	}
}

func TestTournamentHandler_InitTournament(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockService := mocks.NewMockTournamentService(ctrl)
	mockService.EXPECT().InitTournament(gomock.Any(), testKey, "alice", "T-1", int64(500)).
		Return(nil, domain.ErrAlreadyActiveTournament)

	h := handler.NewTournamentHandler(mockService)

	w := httptest.NewRecorder()
	h.InitTournament(w, newRequest(t, http.MethodPost, "/tournament/init",
		map[string]interface{}{"team_name": "team1", "team_uid": 42, "tournament_id": "T-1", "entry_fee": 500}, "alice"))
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, string(domain.CodeAlreadyActiveTournament), decodeError(t, w).Error.Code)

	w = httptest.NewRecorder()
	h.InitTournament(w, newRequest(t, http.MethodPost, "/tournament/init",
		map[string]interface{}{"team_name": "team1", "team_uid": 42}, "alice"))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDistributionHandler_Propose(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		expectedStatus int
		expectedCode   domain.ErrorCode
	}{
		{name: "length mismatch", err: domain.ErrLengthMismatch, expectedStatus: http.StatusBadRequest, expectedCode: domain.CodeLengthMismatch},
		{name: "invalid percentages", err: domain.ErrInvalidPercentages, expectedStatus: http.StatusBadRequest, expectedCode: domain.CodeInvalidPercentages},
		{name: "not captain", err: domain.ErrNotCaptain, expectedStatus: http.StatusForbidden, expectedCode: domain.CodeNotCaptain},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockService := mocks.NewMockDistributionService(ctrl)
			mockService.EXPECT().ProposeDistribution(gomock.Any(), testKey, "alice", []int{60, 40}).Return(nil, tt.err)

			h := handler.NewDistributionHandler(mockService)
			w := httptest.NewRecorder()
			h.Propose(w, newRequest(t, http.MethodPost, "/distribution/propose",
				map[string]interface{}{"team_name": "team1", "team_uid": 42, "percentages": []int{60, 40}}, "alice"))

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Equal(t, string(tt.expectedCode), decodeError(t, w).Error.Code)
		})
	}
}

func TestDistributionHandler_CanJoinAndResult(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockService := mocks.NewMockDistributionService(ctrl)
	gomock.InOrder(
		mockService.EXPECT().MarkReadyToJoin(gomock.Any(), testKey, "alice").Return(nil, domain.ErrProposalNotApproved),
		mockService.EXPECT().VotingResult(gomock.Any(), testKey).Return(true, nil),
	)

	h := handler.NewDistributionHandler(mockService)

	w := httptest.NewRecorder()
	h.CanJoin(w, newRequest(t, http.MethodPost, "/distribution/canJoin",
		map[string]interface{}{"team_name": "team1", "team_uid": 42}, "alice"))
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, string(domain.CodeProposalNotApproved), decodeError(t, w).Error.Code)

	w = httptest.NewRecorder()
	h.Result(w, newRequest(t, http.MethodGet, "/distribution/result?team_name=team1&team_uid=42", nil, "alice"))
	require.Equal(t, http.StatusOK, w.Code)

	var response handler.VotingResultResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.True(t, response.Approved)
}

func TestTreasuryHandler_Claim(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		expectedStatus int
		expectedCode   domain.ErrorCode
	}{
		{name: "neither beneficiary nor captain", err: domain.ErrClaimNotAuthorized, expectedStatus: http.StatusForbidden, expectedCode: domain.CodeUnauthorized},
		{name: "insufficient funds", err: domain.ErrInsufficientFunds, expectedStatus: http.StatusConflict, expectedCode: domain.CodeInsufficientFunds},
		{name: "exceeds share", err: domain.ErrClaimExceedsShare, expectedStatus: http.StatusConflict, expectedCode: domain.CodeClaimExceedsShare},
		{name: "invalid amount", err: domain.ErrInvalidAmount, expectedStatus: http.StatusBadRequest, expectedCode: domain.CodeInvalidAmount},
		{name: "treasury beneficiary", err: domain.ErrReservedIdentity, expectedStatus: http.StatusBadRequest, expectedCode: domain.CodeReservedIdentity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockService := mocks.NewMockTreasuryService(ctrl)
			mockService.EXPECT().Claim(gomock.Any(), testKey, "alice", "bob", int64(100)).Return(nil, tt.err)

			h := handler.NewTreasuryHandler(mockService)
			w := httptest.NewRecorder()
			h.Claim(w, newRequest(t, http.MethodPost, "/treasury/claim",
				map[string]interface{}{"team_name": "team1", "team_uid": 42, "beneficiary": "bob", "amount": 100}, "alice"))

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Equal(t, string(tt.expectedCode), decodeError(t, w).Error.Code)
		})
	}
}

func TestTreasuryHandler_FundAndBalance(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockService := mocks.NewMockTreasuryService(ctrl)
	mockService.EXPECT().Fund(gomock.Any(), testKey, "alice", int64(250)).Return(int64(250), nil)
	mockService.EXPECT().Balance(gomock.Any(), testKey).Return(int64(250), nil)

	h := handler.NewTreasuryHandler(mockService)

	w := httptest.NewRecorder()
	h.Fund(w, newRequest(t, http.MethodPost, "/treasury/fund",
		map[string]interface{}{"team_name": "team1", "team_uid": 42, "amount": 250}, "alice"))
	require.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	h.Balance(w, newRequest(t, http.MethodGet, "/treasury/balance?team_name=team1&team_uid=42", nil, "alice"))
	require.Equal(t, http.StatusOK, w.Code)

	var response handler.BalanceResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, int64(250), response.Balance)
	assert.Equal(t, "team1", response.TeamName)
	assert.Equal(t, uint64(42), response.TeamUID)
}
