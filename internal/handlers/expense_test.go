package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trip-collab/gw-trip-wallet/internal/apperrors"
	"github.com/trip-collab/gw-trip-wallet/internal/models"
	"github.com/trip-collab/gw-trip-wallet/internal/services"
)

func TestCreateExpenseHandler(t *testing.T) {
	tripID := uuid.New()
	payer := uuid.New()
	amount := decimal.RequireFromString("100.00")

	tests := []struct {
		name               string
		requestBody        any
		setupMocks         func(svc *MockExpenseWorkflow)
		expectedStatusCode int
	}{
		{
			name: "successful create",
			requestBody: ExpenseRequest{
				Title:                "Dinner",
				Amount:               &amount,
				Currency:             "EUR",
				PaidByMemberID:       &payer,
				ExpenseDate:          "2026-08-20",
				ParticipantMemberIDs: []uuid.UUID{payer},
			},
			setupMocks: func(svc *MockExpenseWorkflow) {
				svc.EXPECT().Create(gomock.Any(), tripID, gomock.Any()).DoAndReturn(
					func(_ interface{}, _ uuid.UUID, p services.ExpenseParams) (*models.ExpenseDB, error) {
						assert.Equal(t, "Dinner", p.Title)
						assert.True(t, p.Amount.Valid)
						require.NotNil(t, p.ExpenseDate)
						assert.Equal(t, 2026, p.ExpenseDate.Year())
						return &models.ExpenseDB{ExpenseID: uuid.New(), TripID: tripID, Title: p.Title}, nil
					})
			},
			expectedStatusCode: http.StatusCreated,
		},
		{
			name:               "missing title",
			requestBody:        ExpenseRequest{Amount: &amount, Currency: "EUR"},
			setupMocks:         func(svc *MockExpenseWorkflow) {},
			expectedStatusCode: http.StatusBadRequest,
		},
		{
			name: "insufficient wallet balance",
			requestBody: ExpenseRequest{
				Title:         "Hotel",
				PaymentSource: models.PaymentSourceSharedWallet,
			},
			setupMocks: func(svc *MockExpenseWorkflow) {
				svc.EXPECT().Create(gomock.Any(), tripID, gomock.Any()).
					Return(nil, apperrors.Conflictf("insufficient wallet balance in THB"))
			},
			expectedStatusCode: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc := NewMockExpenseWorkflow(ctrl)
			tt.setupMocks(svc)

			router := chi.NewRouter()
			router.Post("/trips/{tripId}/expenses", NewCreateExpenseHandler(svc))

			body, _ := json.Marshal(tt.requestBody)
			req := httptest.NewRequest(http.MethodPost, "/trips/"+tripID.String()+"/expenses", bytes.NewReader(body))
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)
			assert.Equal(t, tt.expectedStatusCode, rec.Code)
		})
	}
}

func TestUpdateExpenseHandler_WalletPaid(t *testing.T) {
	tripID := uuid.New()
	expenseID := uuid.New()
	payer := uuid.New()
	amount := decimal.RequireFromString("50.00")

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := NewMockExpenseWorkflow(ctrl)
	svc.EXPECT().Update(gomock.Any(), tripID, expenseID, gomock.Any()).
		Return(nil, apperrors.Conflictf("editing shared-wallet-paid expenses is not supported"))

	router := chi.NewRouter()
	router.Put("/trips/{tripId}/expenses/{expenseId}", NewUpdateExpenseHandler(svc))

	body, _ := json.Marshal(ExpenseRequest{Title: "Edit", Amount: &amount, PaidByMemberID: &payer})
	req := httptest.NewRequest(http.MethodPut, "/trips/"+tripID.String()+"/expenses/"+expenseID.String(), bytes.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestDeleteExpenseHandler(t *testing.T) {
	tripID := uuid.New()
	expenseID := uuid.New()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := NewMockExpenseWorkflow(ctrl)
	svc.EXPECT().Delete(gomock.Any(), tripID, expenseID).Return(nil)

	router := chi.NewRouter()
	router.Delete("/trips/{tripId}/expenses/{expenseId}", NewDeleteExpenseHandler(svc))

	req := httptest.NewRequest(http.MethodDelete, "/trips/"+tripID.String()+"/expenses/"+expenseID.String(), nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestMoveExpenseHandler(t *testing.T) {
	tripID := uuid.New()
	expenseID := uuid.New()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := NewMockExpenseWorkflow(ctrl)
	svc.EXPECT().Move(gomock.Any(), tripID, expenseID, gomock.Any()).DoAndReturn(
		func(_ interface{}, _, _ uuid.UUID, newDate *time.Time) (*models.ExpenseDB, error) {
			require.NotNil(t, newDate)
			assert.Equal(t, "2026-08-21", newDate.Format("2006-01-02"))
			return &models.ExpenseDB{ExpenseID: expenseID, ExpenseDate: *newDate}, nil
		})

	router := chi.NewRouter()
	router.Post("/trips/{tripId}/expenses/{expenseId}/move", NewMoveExpenseHandler(svc))

	body, _ := json.Marshal(MoveExpenseRequest{NewDate: "2026-08-21"})
	req := httptest.NewRequest(http.MethodPost, "/trips/"+tripID.String()+"/expenses/"+expenseID.String()+"/move", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestListExpensesHandler(t *testing.T) {
	tripID := uuid.New()

	tests := []struct {
		name       string
		query      string
		setupMocks func(svc *MockExpenseQuerier)
	}{
		{
			name:  "full list",
			query: "",
			setupMocks: func(svc *MockExpenseQuerier) {
				svc.EXPECT().List(gomock.Any(), tripID).Return([]models.ExpenseDB{}, nil)
			},
		},
		{
			name:  "single day",
			query: "?date=2026-08-20",
			setupMocks: func(svc *MockExpenseQuerier) {
				svc.EXPECT().ListDay(gomock.Any(), tripID, gomock.Any()).Return([]models.ExpenseDB{}, nil)
			},
		},
		{
			name:  "title search",
			query: "?q=dinner&from=2026-08-01",
			setupMocks: func(svc *MockExpenseQuerier) {
				svc.EXPECT().Search(gomock.Any(), tripID, "dinner", gomock.Any(), nil).Return([]models.ExpenseDB{}, nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc := NewMockExpenseQuerier(ctrl)
			tt.setupMocks(svc)

			router := chi.NewRouter()
			router.Get("/trips/{tripId}/expenses", NewListExpensesHandler(svc))

			req := httptest.NewRequest(http.MethodGet, "/trips/"+tripID.String()+"/expenses"+tt.query, nil)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusOK, rec.Code)
		})
	}
}

func TestGetExpenseHandler(t *testing.T) {
	tripID := uuid.New()
	expenseID := uuid.New()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := NewMockExpenseQuerier(ctrl)
	svc.EXPECT().Get(gomock.Any(), tripID, expenseID).
		Return(&models.ExpenseDB{ExpenseID: expenseID, TripID: tripID, Title: "Dinner"}, nil)
	svc.EXPECT().GetSplits(gomock.Any(), tripID, expenseID).
		Return([]models.ExpenseSplitDB{{ExpenseID: expenseID, MemberID: uuid.New()}}, nil)

	router := chi.NewRouter()
	router.Get("/trips/{tripId}/expenses/{expenseId}", NewGetExpenseHandler(svc))

	req := httptest.NewRequest(http.MethodGet, "/trips/"+tripID.String()+"/expenses/"+expenseID.String(), nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp ExpenseWithSplits
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Dinner", resp.Expense.Title)
	assert.Len(t, resp.Splits, 1)
}
