package service

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"finan/ms-pos-report/pkg/mocks"
	"finan/ms-pos-report/pkg/model"
	"finan/ms-pos-report/pkg/utils"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

var (
	testBrandID   = uuid.MustParse("c3a9e0a4-6f3f-4d8b-bb2e-7a0c4f1e0001")
	testSessionID = uuid.MustParse("d1e2f3a4-b5c6-4d7e-8f90-a1b2c3d4e001")
	testUserID    = uuid.MustParse("1b0c26d6-e53f-4326-a5c7-8076c24b530d")
)

func testIdentity(storeID uuid.UUID) model.Identity {
	return model.Identity{
		UserID:  testUserID,
		StoreID: storeID,
		BrandID: testBrandID,
		Role:    model.RoleStoreManager,
	}
}

func assertStatus(t *testing.T, err error, code int) {
	t.Helper()
	require.Error(t, err)
	assert.Equal(t, code, utils.StatusCode(err))
}

func TestReportService_GetStoreEndDayReport(t *testing.T) {
	latte := testProduct(latteID, coffeeCateID, "Latte", model.ProductSizeM, 45000, 20000)
	paidOrders := []model.Order{
		testOrder(model.OrderTypeEatIn, model.PaymentTypeCash, at(9, 30), testLine(latte, 2, 0)),
	}
	var tx *gorm.DB

	tests := []struct {
		name     string
		identity model.Identity
		req      model.StoreReportRequest
		mock     func(m *mocks.MockPGInterface)
		wantCode int
		check    func(t *testing.T, rs model.StoreEndDayReport)
	}{
		{
			name:     "empty store id",
			identity: testIdentity(testStoreID),
			req:      model.StoreReportRequest{StartDate: "2023-05-01", EndDate: "2023-05-01"},
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "malformed start date",
			identity: testIdentity(testStoreID),
			req:      model.StoreReportRequest{StoreID: testStoreID, StartDate: "01/05/2023", EndDate: "2023-05-01"},
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "missing end date",
			identity: testIdentity(testStoreID),
			req:      model.StoreReportRequest{StoreID: testStoreID, StartDate: "2023-05-01"},
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "inverted dates",
			identity: testIdentity(testStoreID),
			req:      model.StoreReportRequest{StoreID: testStoreID, StartDate: "2023-05-02", EndDate: "2023-05-01"},
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "store of another caller",
			identity: testIdentity(uuid.New()),
			req:      model.StoreReportRequest{StoreID: testStoreID, StartDate: "2023-05-01", EndDate: "2023-05-01"},
			wantCode: http.StatusForbidden,
		},
		{
			name:     "order read fails",
			identity: testIdentity(testStoreID),
			req:      model.StoreReportRequest{StoreID: testStoreID, StartDate: "2023-05-01", EndDate: "2023-05-01"},
			mock: func(m *mocks.MockPGInterface) {
				m.EXPECT().GetBrandIDOfStore(gomock.Any(), testStoreID, tx).Return(testBrandID, nil).AnyTimes()
				m.EXPECT().GetListCategoryByBrand(gomock.Any(), testBrandID, tx).Return(testCategories(), nil).AnyTimes()
				m.EXPECT().GetListPaidOrder(gomock.Any(), gomock.Any(), tx).
					Return(nil, utils.NewError(http.StatusInternalServerError, ""))
			},
			wantCode: http.StatusInternalServerError,
		},
		{
			name:     "happy flow: one dine-in order",
			identity: testIdentity(testStoreID),
			req:      model.StoreReportRequest{StoreID: testStoreID, StartDate: "2023-05-01", EndDate: "2023-05-02"},
			mock: func(m *mocks.MockPGInterface) {
				m.EXPECT().GetBrandIDOfStore(gomock.Any(), testStoreID, tx).Return(testBrandID, nil)
				m.EXPECT().GetListCategoryByBrand(gomock.Any(), testBrandID, tx).Return(testCategories(), nil)
				m.EXPECT().GetListPaidOrder(gomock.Any(), gomock.Any(), tx).
					DoAndReturn(func(_ context.Context, filter model.PaidOrderFilter, _ *gorm.DB) ([]model.Order, error) {
						assert.Equal(t, testStoreID, filter.StoreID)
						assert.True(t, filter.From.Equal(time.Date(2023, 5, 1, 0, 0, 0, 0, time.UTC)), filter.From)
						assert.True(t, filter.To.Equal(time.Date(2023, 5, 3, 0, 0, 0, 0, time.UTC)), filter.To)
						return paidOrders, nil
					})
			},
			check: func(t *testing.T, rs model.StoreEndDayReport) {
				assert.Equal(t, testStoreID, rs.StoreID)
				assert.Equal(t, 1, rs.TotalOrder)
				assert.Equal(t, 1, rs.TotalOrderInStore)
				assert.Equal(t, 1, rs.TotalCash)
				assert.Equal(t, 90000.0, rs.FinalAmount)
				assert.Len(t, rs.CategoryReports, 2)
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repoMock := mocks.NewMockPGInterface(ctrl)
			if tt.mock != nil {
				tt.mock(repoMock)
			}
			s := NewReportService(repoMock, mocks.NewMockReportExporter(ctrl), mocks.NewMockHistoryServiceInterface(ctrl), time.UTC)

			rs, err := s.GetStoreEndDayReport(context.Background(), tt.identity, tt.req)
			if tt.wantCode != 0 {
				assertStatus(t, err, tt.wantCode)
				return
			}
			require.NoError(t, err)
			tt.check(t, rs)
		})
	}
}

func TestReportService_GetSessionReportDetail(t *testing.T) {
	latte := testProduct(latteID, coffeeCateID, "Latte", "", 45000, 20000)
	var tx *gorm.DB

	tests := []struct {
		name      string
		sessionID uuid.UUID
		mock      func(m *mocks.MockPGInterface)
		wantCode  int
		want      model.SessionReport
	}{
		{
			name:      "empty session id",
			sessionID: uuid.Nil,
			wantCode:  http.StatusBadRequest,
		},
		{
			name:      "session not found",
			sessionID: testSessionID,
			mock: func(m *mocks.MockPGInterface) {
				m.EXPECT().GetOneSession(gomock.Any(), testSessionID, testStoreID, tx).
					Return(model.Session{}, utils.NewError(http.StatusNotFound, utils.MESS_SESSION_NOT_FOUND))
			},
			wantCode: http.StatusNotFound,
		},
		{
			name:      "happy flow",
			sessionID: testSessionID,
			mock: func(m *mocks.MockPGInterface) {
				m.EXPECT().GetOneSession(gomock.Any(), testSessionID, testStoreID, tx).
					Return(model.Session{StoreID: testStoreID}, nil)
				m.EXPECT().GetListPaidOrderBySession(gomock.Any(), testSessionID, tx).Return([]model.Order{
					testOrder(model.OrderTypeEatIn, model.PaymentTypeVisa, at(9, 0), testLine(latte, 1, 0)),
					testOrder(model.OrderTypeTakeAway, model.PaymentTypeBanking, at(10, 0), testLine(latte, 2, 0)),
				}, nil)
			},
			want: model.SessionReport{
				TotalAmount:   135000,
				FinalAmount:   135000,
				TotalOrder:    2,
				VisaAmount:    45000,
				TotalVisa:     1,
				BankingAmount: 90000,
				TotalBanking:  1,
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repoMock := mocks.NewMockPGInterface(ctrl)
			if tt.mock != nil {
				tt.mock(repoMock)
			}
			s := NewReportService(repoMock, nil, nil, time.UTC)

			rs, err := s.GetSessionReportDetail(context.Background(), testIdentity(testStoreID), tt.sessionID)
			if tt.wantCode != 0 {
				assertStatus(t, err, tt.wantCode)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, rs)
		})
	}
}

func TestReportService_DownloadStoreReport(t *testing.T) {
	var tx *gorm.DB
	store := model.Store{BrandID: testBrandID, Name: "Cửa hàng 1"}
	store.ID = testStoreID
	req := model.StoreReportRequest{StoreID: testStoreID, StartDate: "2023-05-01", EndDate: "2023-05-07"}

	t.Run("store not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repoMock := mocks.NewMockPGInterface(ctrl)
		repoMock.EXPECT().GetOneStore(gomock.Any(), testStoreID, tx).
			Return(model.Store{}, utils.NewError(http.StatusNotFound, utils.MESS_STORE_NOT_FOUND))

		s := NewReportService(repoMock, mocks.NewMockReportExporter(ctrl), mocks.NewMockHistoryServiceInterface(ctrl), time.UTC)
		_, err := s.DownloadStoreReport(context.Background(), testIdentity(testStoreID), req)
		assertStatus(t, err, http.StatusNotFound)
	})

	t.Run("store of another caller", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		s := NewReportService(mocks.NewMockPGInterface(ctrl), mocks.NewMockReportExporter(ctrl), mocks.NewMockHistoryServiceInterface(ctrl), time.UTC)
		_, err := s.DownloadStoreReport(context.Background(), testIdentity(uuid.New()), req)
		assertStatus(t, err, http.StatusForbidden)
	})

	t.Run("export fails", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repoMock := mocks.NewMockPGInterface(ctrl)
		repoMock.EXPECT().GetOneStore(gomock.Any(), testStoreID, tx).Return(store, nil)
		repoMock.EXPECT().GetBrandIDOfStore(gomock.Any(), testStoreID, tx).Return(testBrandID, nil)
		repoMock.EXPECT().GetListCategoryByBrand(gomock.Any(), testBrandID, tx).Return(testCategories(), nil)
		repoMock.EXPECT().GetListPaidOrder(gomock.Any(), gomock.Any(), tx).Return(nil, nil)

		exporter := mocks.NewMockReportExporter(ctrl)
		exporter.EXPECT().ExportStoreReport(gomock.Any(), store.Name, gomock.Any(), gomock.Any()).
			Return(model.ReportFile{}, errors.New("disk full"))

		s := NewReportService(repoMock, exporter, mocks.NewMockHistoryServiceInterface(ctrl), time.UTC)
		_, err := s.DownloadStoreReport(context.Background(), testIdentity(testStoreID), req)
		assertStatus(t, err, http.StatusInternalServerError)
	})

	t.Run("happy flow", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repoMock := mocks.NewMockPGInterface(ctrl)
		repoMock.EXPECT().GetOneStore(gomock.Any(), testStoreID, tx).Return(store, nil)
		repoMock.EXPECT().GetBrandIDOfStore(gomock.Any(), testStoreID, tx).Return(testBrandID, nil)
		repoMock.EXPECT().GetListCategoryByBrand(gomock.Any(), testBrandID, tx).Return(testCategories(), nil)
		repoMock.EXPECT().GetListPaidOrder(gomock.Any(), gomock.Any(), tx).Return([]model.Order{}, nil)

		want := model.ReportFile{
			FileName:    "Report_Cửa hàng 1_01/05/2023-01/05/2023.xlsx",
			ContentType: utils.MIME_XLSX,
			Content:     []byte("xlsx"),
		}
		exporter := mocks.NewMockReportExporter(ctrl)
		exporter.EXPECT().ExportStoreReport(gomock.Any(), store.Name, gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, startDate time.Time, report model.StoreEndDayReport) (model.ReportFile, error) {
				assert.True(t, startDate.Equal(time.Date(2023, 5, 1, 0, 0, 0, 0, time.UTC)))
				assert.Equal(t, testStoreID, report.StoreID)
				return want, nil
			})

		history := mocks.NewMockHistoryServiceInterface(ctrl)
		history.EXPECT().LogHistory(gomock.Any(), gomock.Any()).Do(func(_ context.Context, h model.History) {
			assert.Equal(t, testStoreID, h.ObjectID)
			assert.Equal(t, utils.TABLE_STORE, h.ObjectTable)
			assert.Equal(t, utils.ACTION_DOWNLOAD_STORE_REPORT, h.Action)
			assert.Equal(t, testUserID.String(), h.Worker)
			assert.Contains(t, string(h.Data), `"end_date":"2023-05-07"`)
		})

		s := NewReportService(repoMock, exporter, history, time.UTC)
		rs, err := s.DownloadStoreReport(context.Background(), testIdentity(testStoreID), req)
		require.NoError(t, err)
		assert.Equal(t, want, rs)
	})
}
