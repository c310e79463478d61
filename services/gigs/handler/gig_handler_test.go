package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"gig-hire/internal/auth"
	"gig-hire/internal/gigerrors"
	model "gig-hire/internal/models"
	"gig-hire/services/gigs/helpers"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

// decimalEq matches a decimal by value rather than by representation
type decimalEq struct{ want decimal.Decimal }

func (m decimalEq) Matches(x any) bool {
	d, ok := x.(decimal.Decimal)
	return ok && d.Equal(m.want)
}

func (m decimalEq) String() string { return "is equal to " + m.want.String() }

func amount(v int64) gomock.Matcher { return decimalEq{want: decimal.NewFromInt(v)} }

// newRouter registers route on a router that authenticates every request as actorID
func newRouter(actorID, method, path string, h gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(func(c *gin.Context) {
		if actorID != "" {
			c.Set(auth.ActorKey, actorID)
		}
		c.Next()
	})
	router.Handle(method, path, h)
	return router
}

func doJSON(router http.Handler, method, target string, body any) (*httptest.ResponseRecorder, map[string]any) {
	var reqBody []byte
	switch b := body.(type) {
	case nil:
	case string:
		reqBody = []byte(b)
	default:
		reqBody, _ = json.Marshal(b)
	}

	req := httptest.NewRequest(method, target, bytes.NewBuffer(reqBody))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var resp map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	return w, resp
}

// Test CreateGigHandler
func TestCreateGigHandler(t *testing.T) {
	now := time.Now().UTC()

	tests := []struct {
		name           string
		requestBody    any
		mockSetup      func(m *MockHiringServiceInterface)
		expectedStatus int
		expectedMsg    string
		validateData   func(t *testing.T, data map[string]any)
	}{
		{
			name:        "success",
			requestBody: map[string]any{"title": "Logo", "description": "Need a logo", "budget": 250},
			mockSetup: func(m *MockHiringServiceInterface) {
				m.EXPECT().
					CreateGig(gomock.Any(), "owner1", "Logo", "Need a logo", amount(250)).
					Return(model.Gig{
						GigID:       uuid.NewString(),
						OwnerID:     "owner1",
						Title:       "Logo",
						Description: "Need a logo",
						Budget:      decimal.NewFromInt(250),
						Status:      model.GigOpen,
						CreatedAt:   now,
					}, nil)
			},
			expectedStatus: http.StatusCreated,
			expectedMsg:    "gig created successfully",
			validateData: func(t *testing.T, data map[string]any) {
				_, err := uuid.Parse(data["gig_id"].(string))
				require.NoError(t, err, "GigID should be a valid UUID")
				require.Equal(t, "owner1", data["owner_id"])
				require.Equal(t, "250", data["budget"])
				require.Equal(t, "open", data["status"])
			},
		},
		{
			name:           "missing_title",
			requestBody:    map[string]any{"description": "Need a logo", "budget": 250},
			mockSetup:      func(*MockHiringServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request payload",
		},
		{
			name:           "invalid_json",
			requestBody:    `{invalid json}`,
			mockSetup:      func(*MockHiringServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request payload",
		},
		{
			name:        "service_rejects_budget",
			requestBody: map[string]any{"title": "Logo", "description": "Need a logo", "budget": -5},
			mockSetup: func(m *MockHiringServiceInterface) {
				m.EXPECT().
					CreateGig(gomock.Any(), "owner1", "Logo", "Need a logo", amount(-5)).
					Return(model.Gig{}, gigerrors.ErrInvalidGig)
			},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid gig details",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			mockService := NewMockHiringServiceInterface(ctrl)
			tc.mockSetup(mockService)

			router := newRouter("owner1", http.MethodPost, "/api/gigs", NewGigHandler(mockService).CreateGigHandler)
			w, resp := doJSON(router, http.MethodPost, "/api/gigs", tc.requestBody)

			require.Equal(t, tc.expectedStatus, w.Code)
			require.Contains(t, resp["message"], tc.expectedMsg)
			if tc.validateData != nil {
				tc.validateData(t, resp["data"].(map[string]any))
			}
		})
	}
}

// Test ListGigsHandler
func TestListGigsHandler(t *testing.T) {
	tests := []struct {
		name           string
		mockSetup      func(m *MockHiringServiceInterface)
		expectedStatus int
		expectedMsg    string
		expectedCount  int
	}{
		{
			name: "two_open_gigs",
			mockSetup: func(m *MockHiringServiceInterface) {
				m.EXPECT().ListOpenGigs(gomock.Any()).Return([]model.Gig{
					{GigID: "g2", Title: "newer", Status: model.GigOpen, Budget: decimal.NewFromInt(10)},
					{GigID: "g1", Title: "older", Status: model.GigOpen, Budget: decimal.NewFromInt(20)},
				}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedMsg:    "gigs retrieved successfully",
			expectedCount:  2,
		},
		{
			name: "no_gigs_is_empty_list",
			mockSetup: func(m *MockHiringServiceInterface) {
				m.EXPECT().ListOpenGigs(gomock.Any()).Return(nil, nil)
			},
			expectedStatus: http.StatusOK,
			expectedMsg:    "gigs retrieved successfully",
			expectedCount:  0,
		},
		{
			name: "service_error",
			mockSetup: func(m *MockHiringServiceInterface) {
				m.EXPECT().ListOpenGigs(gomock.Any()).Return(nil, errors.New("DB connection failed"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedMsg:    "internal server error",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			mockService := NewMockHiringServiceInterface(ctrl)
			tc.mockSetup(mockService)

			router := newRouter("", http.MethodGet, "/api/gigs", NewGigHandler(mockService).ListGigsHandler)
			w, resp := doJSON(router, http.MethodGet, "/api/gigs", nil)

			require.Equal(t, tc.expectedStatus, w.Code)
			require.Contains(t, resp["message"], tc.expectedMsg)
			if w.Code == http.StatusOK {
				data := resp["data"].([]any)
				require.Len(t, data, tc.expectedCount)
			}
		})
	}
}

// Test GetGigHandler
func TestGetGigHandler(t *testing.T) {
	tests := []struct {
		name           string
		gigID          string
		mockSetup      func(m *MockHiringServiceInterface)
		expectedStatus int
		expectedMsg    string
	}{
		{
			name:  "found",
			gigID: "g1",
			mockSetup: func(m *MockHiringServiceInterface) {
				m.EXPECT().GetGig(gomock.Any(), "g1").Return(model.Gig{GigID: "g1", Status: model.GigAssigned}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedMsg:    "gig retrieved successfully",
		},
		{
			name:  "not_found",
			gigID: "missing",
			mockSetup: func(m *MockHiringServiceInterface) {
				m.EXPECT().GetGig(gomock.Any(), "missing").
					Return(model.Gig{}, fmt.Errorf("service: failed to get gig missing: %w", gigerrors.ErrGigNotFound))
			},
			expectedStatus: http.StatusNotFound,
			expectedMsg:    "gig not found",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			mockService := NewMockHiringServiceInterface(ctrl)
			tc.mockSetup(mockService)

			router := newRouter("", http.MethodGet, "/api/gigs/:gig_id", NewGigHandler(mockService).GetGigHandler)
			w, resp := doJSON(router, http.MethodGet, "/api/gigs/"+tc.gigID, nil)

			require.Equal(t, tc.expectedStatus, w.Code)
			require.Contains(t, resp["message"], tc.expectedMsg)
		})
	}
}

// Test PlaceBidHandler
func TestPlaceBidHandler(t *testing.T) {
	now := time.Now().UTC()

	tests := []struct {
		name           string
		requestBody    any
		mockSetup      func(m *MockHiringServiceInterface)
		expectedStatus int
		expectedMsg    string
		validateData   func(t *testing.T, data map[string]any)
	}{
		{
			name:        "success_valid_bid",
			requestBody: map[string]any{"gig_id": "gig1", "message": "I can do it", "price": 100},
			mockSetup: func(m *MockHiringServiceInterface) {
				m.EXPECT().
					PlaceBid(gomock.Any(), "gig1", "user1", "I can do it", amount(100)).
					Return(model.Bid{
						BidID:     uuid.NewString(),
						GigID:     "gig1",
						BidderID:  "user1",
						Message:   "I can do it",
						Price:     decimal.NewFromInt(100),
						Status:    model.BidPending,
						CreatedAt: now,
					}, nil)
			},
			expectedStatus: http.StatusCreated,
			expectedMsg:    "bid placed successfully",
			validateData: func(t *testing.T, data map[string]any) {
				_, err := uuid.Parse(data["bid_id"].(string))
				require.NoError(t, err, "BidID should be a valid UUID")
				require.Equal(t, "gig1", data["gig_id"])
				require.Equal(t, "user1", data["bidder_id"])
				require.Equal(t, "100", data["price"])
				require.Equal(t, "pending", data["status"])
			},
		},
		{
			name:        "price_as_string",
			requestBody: `{"gig_id":"gig1","message":"exact","price":"99.95"}`,
			mockSetup: func(m *MockHiringServiceInterface) {
				m.EXPECT().
					PlaceBid(gomock.Any(), "gig1", "user1", "exact", decimalEq{want: decimal.RequireFromString("99.95")}).
					Return(model.Bid{BidID: "b1", GigID: "gig1", BidderID: "user1", Price: decimal.RequireFromString("99.95")}, nil)
			},
			expectedStatus: http.StatusCreated,
			expectedMsg:    "bid placed successfully",
			validateData: func(t *testing.T, data map[string]any) {
				require.Equal(t, "99.95", data["price"])
			},
		},
		{
			name:           "invalid_json",
			requestBody:    `{invalid json}`,
			mockSetup:      func(*MockHiringServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request payload",
		},
		{
			name:           "missing_gig_id",
			requestBody:    map[string]any{"message": "hi", "price": 50},
			mockSetup:      func(*MockHiringServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request payload",
		},
		{
			name:           "missing_message",
			requestBody:    map[string]any{"gig_id": "gig1", "price": 50},
			mockSetup:      func(*MockHiringServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request payload",
		},
		{
			name:        "zero_price",
			requestBody: map[string]any{"gig_id": "gig1", "message": "free", "price": 0},
			mockSetup: func(m *MockHiringServiceInterface) {
				m.EXPECT().
					PlaceBid(gomock.Any(), "gig1", "user1", "free", amount(0)).
					Return(model.Bid{}, gigerrors.ErrInvalidBid)
			},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid bid details",
		},
		{
			name:        "gig_closed",
			requestBody: map[string]any{"gig_id": "gig1", "message": "late", "price": 50},
			mockSetup: func(m *MockHiringServiceInterface) {
				m.EXPECT().
					PlaceBid(gomock.Any(), "gig1", "user1", "late", amount(50)).
					Return(model.Bid{}, gigerrors.ErrGigClosed)
			},
			expectedStatus: http.StatusConflict,
			expectedMsg:    "gig is not open for bidding",
		},
		{
			name:        "duplicate_bid",
			requestBody: map[string]any{"gig_id": "gig1", "message": "again", "price": 50},
			mockSetup: func(m *MockHiringServiceInterface) {
				m.EXPECT().
					PlaceBid(gomock.Any(), "gig1", "user1", "again", amount(50)).
					Return(model.Bid{}, gigerrors.ErrDuplicateBid)
			},
			expectedStatus: http.StatusConflict,
			expectedMsg:    "you have already bid on this gig",
		},
		{
			name:        "gig_not_found",
			requestBody: map[string]any{"gig_id": "nope", "message": "hi", "price": 50},
			mockSetup: func(m *MockHiringServiceInterface) {
				m.EXPECT().
					PlaceBid(gomock.Any(), "nope", "user1", "hi", amount(50)).
					Return(model.Bid{}, gigerrors.ErrGigNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedMsg:    "gig not found",
		},
		{
			name:        "service_generic_error",
			requestBody: map[string]any{"gig_id": "gig1", "message": "hi", "price": 100},
			mockSetup: func(m *MockHiringServiceInterface) {
				m.EXPECT().
					PlaceBid(gomock.Any(), "gig1", "user1", "hi", amount(100)).
					Return(model.Bid{}, errors.New("database failure"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedMsg:    "internal server error",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			mockService := NewMockHiringServiceInterface(ctrl)
			tc.mockSetup(mockService)

			router := newRouter("user1", http.MethodPost, "/api/bids", NewGigHandler(mockService).PlaceBidHandler)
			w, resp := doJSON(router, http.MethodPost, "/api/bids", tc.requestBody)

			require.Equal(t, tc.expectedStatus, w.Code)
			require.Contains(t, resp["message"], tc.expectedMsg)
			if tc.validateData != nil && w.Code == http.StatusCreated {
				tc.validateData(t, resp["data"].(map[string]any))
			}
		})
	}
}

// Test GetBidsHandler
func TestGetBidsHandler(t *testing.T) {
	tests := []struct {
		name           string
		gigID          string
		mockSetup      func(m *MockHiringServiceInterface)
		expectedStatus int
		expectedMsg    string
		validateData   func(t *testing.T, data []helpers.BidResponse)
	}{
		{
			name:  "owner_sees_bids",
			gigID: "gig1",
			mockSetup: func(m *MockHiringServiceInterface) {
				m.EXPECT().GetBids(gomock.Any(), "gig1", "owner1").Return([]model.Bid{
					{BidID: "b1", GigID: "gig1", BidderID: "u1", Price: decimal.NewFromInt(100), Status: model.BidPending},
					{BidID: "b2", GigID: "gig1", BidderID: "u2", Price: decimal.NewFromInt(150), Status: model.BidRejected},
				}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedMsg:    "bids retrieved successfully",
			validateData: func(t *testing.T, data []helpers.BidResponse) {
				require.Len(t, data, 2)
				require.Equal(t, "b1", data[0].BidID)
				require.True(t, data[0].Price.Equal(decimal.NewFromInt(100)))
				require.Equal(t, "rejected", data[1].Status)
			},
		},
		{
			name:  "no_bids",
			gigID: "gig2",
			mockSetup: func(m *MockHiringServiceInterface) {
				m.EXPECT().GetBids(gomock.Any(), "gig2", "owner1").Return([]model.Bid{}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedMsg:    "bids retrieved successfully",
			validateData: func(t *testing.T, data []helpers.BidResponse) {
				require.Len(t, data, 0)
			},
		},
		{
			name:  "not_owner",
			gigID: "gig3",
			mockSetup: func(m *MockHiringServiceInterface) {
				m.EXPECT().GetBids(gomock.Any(), "gig3", "owner1").Return(nil, gigerrors.ErrNotGigOwner)
			},
			expectedStatus: http.StatusForbidden,
			expectedMsg:    "only the gig owner can do this",
		},
		{
			name:  "gig_not_found",
			gigID: "gigX",
			mockSetup: func(m *MockHiringServiceInterface) {
				m.EXPECT().GetBids(gomock.Any(), "gigX", "owner1").Return(nil, gigerrors.ErrGigNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedMsg:    "gig not found",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			mockService := NewMockHiringServiceInterface(ctrl)
			tc.mockSetup(mockService)

			router := newRouter("owner1", http.MethodGet, "/api/bids/:gig_id", NewGigHandler(mockService).GetBidsHandler)
			w, resp := doJSON(router, http.MethodGet, "/api/bids/"+tc.gigID, nil)

			require.Equal(t, tc.expectedStatus, w.Code)
			require.Contains(t, resp["message"], tc.expectedMsg)

			if tc.validateData != nil && w.Code == http.StatusOK {
				dataBytes, _ := json.Marshal(resp["data"])
				var data []helpers.BidResponse
				require.NoError(t, json.Unmarshal(dataBytes, &data))
				tc.validateData(t, data)
			}
		})
	}
}

// Test HireHandler
func TestHireHandler(t *testing.T) {
	hiredAt := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name           string
		bidID          string
		mockSetup      func(m *MockHiringServiceInterface)
		expectedStatus int
		expectedMsg    string
		validateData   func(t *testing.T, data map[string]any)
	}{
		{
			name:  "hired",
			bidID: "b1",
			mockSetup: func(m *MockHiringServiceInterface) {
				m.EXPECT().Hire(gomock.Any(), "b1", "owner1").Return(model.HireConfirmation{
					GigID:    "gig1",
					GigTitle: "Logo",
					BidID:    "b1",
					BidderID: "u1",
					Rejected: 3,
					HiredAt:  hiredAt,
				}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedMsg:    "freelancer hired successfully",
			validateData: func(t *testing.T, data map[string]any) {
				require.Equal(t, "gig1", data["gig_id"])
				require.Equal(t, "u1", data["bidder_id"])
				require.Equal(t, 3.0, data["rejected"])
				require.Equal(t, "2026-03-01T12:00:00Z", data["hired_at"])
			},
		},
		{
			name:  "bid_not_found",
			bidID: "missing",
			mockSetup: func(m *MockHiringServiceInterface) {
				m.EXPECT().Hire(gomock.Any(), "missing", "owner1").Return(model.HireConfirmation{}, gigerrors.ErrBidNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedMsg:    "bid not found",
		},
		{
			name:  "not_owner",
			bidID: "b2",
			mockSetup: func(m *MockHiringServiceInterface) {
				m.EXPECT().Hire(gomock.Any(), "b2", "owner1").Return(model.HireConfirmation{}, gigerrors.ErrNotGigOwner)
			},
			expectedStatus: http.StatusForbidden,
			expectedMsg:    "only the gig owner can do this",
		},
		{
			name:  "already_assigned",
			bidID: "b3",
			mockSetup: func(m *MockHiringServiceInterface) {
				m.EXPECT().Hire(gomock.Any(), "b3", "owner1").
					Return(model.HireConfirmation{}, fmt.Errorf("service: failed to hire bid b3: %w", gigerrors.ErrGigAssigned))
			},
			expectedStatus: http.StatusConflict,
			expectedMsg:    "gig already assigned",
		},
		{
			name:  "storage_conflict",
			bidID: "b4",
			mockSetup: func(m *MockHiringServiceInterface) {
				m.EXPECT().Hire(gomock.Any(), "b4", "owner1").Return(model.HireConfirmation{}, gigerrors.ErrTxConflict)
			},
			expectedStatus: http.StatusConflict,
			expectedMsg:    "concurrent update, retry the request",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			mockService := NewMockHiringServiceInterface(ctrl)
			tc.mockSetup(mockService)

			router := newRouter("owner1", http.MethodPatch, "/api/bids/:bid_id/hire", NewGigHandler(mockService).HireHandler)
			w, resp := doJSON(router, http.MethodPatch, "/api/bids/"+tc.bidID+"/hire", nil)

			require.Equal(t, tc.expectedStatus, w.Code)
			require.Contains(t, resp["message"], tc.expectedMsg)
			if tc.validateData != nil && w.Code == http.StatusOK {
				tc.validateData(t, resp["data"].(map[string]any))
			}
		})
	}
}
