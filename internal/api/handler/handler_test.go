package handler

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/smart-inventory-api/infrastructure/integrator/fynd"
	"github.com/vfg2006/smart-inventory-api/internal/domain"
	"github.com/vfg2006/smart-inventory-api/internal/usecases/authenticating"
	authmocks "github.com/vfg2006/smart-inventory-api/internal/usecases/authenticating/mocks"
	dashmocks "github.com/vfg2006/smart-inventory-api/internal/usecases/dashboarding/mocks"
	"github.com/vfg2006/smart-inventory-api/internal/usecases/eventing"
	eventmocks "github.com/vfg2006/smart-inventory-api/internal/usecases/eventing/mocks"
	forecastmocks "github.com/vfg2006/smart-inventory-api/internal/usecases/forecasting/mocks"
	"github.com/vfg2006/smart-inventory-api/internal/usecases/ingesting"
	ingestmocks "github.com/vfg2006/smart-inventory-api/internal/usecases/ingesting/mocks"
	"github.com/vfg2006/smart-inventory-api/internal/usecases/salesentry"
	salesmocks "github.com/vfg2006/smart-inventory-api/internal/usecases/salesentry/mocks"
	stockmocks "github.com/vfg2006/smart-inventory-api/internal/usecases/stocking/mocks"
	"github.com/vfg2006/smart-inventory-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

func withParams(req *http.Request, params ...string) *http.Request {
	var ps httprouter.Params
	for i := 0; i+1 < len(params); i += 2 {
		ps = append(ps, httprouter.Param{Key: params[i], Value: params[i+1]})
	}
	return req.WithContext(context.WithValue(req.Context(), httprouter.ParamsKey, ps))
}

func decodeAPIError(t *testing.T, rec *httptest.ResponseRecorder) apiErrors.APIError {
	t.Helper()
	var body apiErrors.APIError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func multipartCSV(t *testing.T, fileName, content string) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile(uploadField, fileName)
	require.NoError(t, err)
	_, err = part.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, writer.Close())
	return body, writer.FormDataContentType()
}

func TestErrorCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "no valid rows", err: domain.ErrNoValidRows, want: apiErrors.ErrNoValidRows},
		{name: "no complete entries", err: domain.ErrNoCompleteEntries, want: apiErrors.ErrNoCompleteEntries},
		{name: "session", err: ingesting.ErrSessionNotFound, want: apiErrors.ErrSessionNotFound},
		{name: "upload blocked", err: ingesting.ErrUploadNotAllowed, want: apiErrors.ErrUploadNotAllowed},
		{name: "parse", err: &domain.FileParseError{Err: errors.New("bare quote")}, want: apiErrors.ErrFileParse},
		{name: "wrapped not found", err: fmt.Errorf("item: %w", domain.ErrNotFound), want: apiErrors.ErrNotFound},
		{name: "invalid input", err: fmt.Errorf("%w: reorder_multiple", domain.ErrInvalidInput), want: apiErrors.ErrInvalidFormat},
		{name: "network", err: &domain.NetworkError{Op: "upsert", StatusCode: 502, Err: errors.New("bad gateway")}, want: apiErrors.ErrExternalService},
		{name: "other", err: errors.New("boom"), want: apiErrors.ErrInternalServer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, errorCode(tt.err))
		})
	}
}

func TestLogin(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		setup      func(m *authmocks.MockAuthenticator)
		wantStatus int
		wantCode   string
	}{
		{
			name: "success",
			body: `{"email":"ops@store.in","password":"pw"}`,
			setup: func(m *authmocks.MockAuthenticator) {
				m.EXPECT().LoginUser("ops@store.in", "pw").Return("jwt-token", nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "unknown user looks like bad password",
			body: `{"email":"x@store.in","password":"pw"}`,
			setup: func(m *authmocks.MockAuthenticator) {
				m.EXPECT().LoginUser(gomock.Any(), gomock.Any()).
					Return("", authenticating.NewAuthError(authenticating.ErrUserNotFound, apiErrors.ErrInvalidCredentials, ""))
			},
			wantStatus: http.StatusUnauthorized,
			wantCode:   apiErrors.ErrInvalidCredentials,
		},
		{name: "bad json", body: `{`, wantStatus: http.StatusBadRequest, wantCode: apiErrors.ErrInvalidRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			authMock := authmocks.NewMockAuthenticator(ctrl)
			if tt.setup != nil {
				tt.setup(authMock)
			}

			rec := httptest.NewRecorder()
			Login(authMock).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/login", strings.NewReader(tt.body)))

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantCode != "" {
				assert.Equal(t, tt.wantCode, decodeAPIError(t, rec).Code)
				return
			}
			var resp LoginResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, "jwt-token", resp.Token)
		})
	}
}

func TestGetDashboard(t *testing.T) {
	ctrl := gomock.NewController(t)
	dashMock := dashmocks.NewMockDashboarder(ctrl)
	dashMock.EXPECT().Summary(gomock.Any()).Return(&domain.DashboardSummary{
		Metrics: domain.DashboardMetrics{TotalStores: 3, LowStockItems: 2},
		TopSKUs: []domain.SKUDemand{{SKUID: "BEV-COC-750", EstimatedSales: 20}},
	}, nil)

	rec := httptest.NewRecorder()
	GetDashboard(dashMock).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/dashboard", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	var summary domain.DashboardSummary
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &summary))
	assert.Equal(t, 3, summary.Metrics.TotalStores)
	assert.Equal(t, "BEV-COC-750", summary.TopSKUs[0].SKUID)
}

func TestGetDashboard_UpstreamFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	dashMock := dashmocks.NewMockDashboarder(ctrl)
	dashMock.EXPECT().Summary(gomock.Any()).Return(nil, &domain.NetworkError{Op: "list store_master", StatusCode: 500, Err: errors.New("down")})

	rec := httptest.NewRecorder()
	GetDashboard(dashMock).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/dashboard", nil))

	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Equal(t, apiErrors.ErrExternalService, decodeAPIError(t, rec).Code)
}

func TestUpdateInventory(t *testing.T) {
	ctrl := gomock.NewController(t)
	stockMock := stockmocks.NewMockStocker(ctrl)

	qty := 45
	stockMock.EXPECT().Update(gomock.Any(), "S1", "BEV-COC-750", domain.InventoryUpdate{OnHandQty: &qty}).
		Return(&domain.InventoryItemView{
			InventorySnapshot: domain.InventorySnapshot{StoreID: "S1", SKUID: "BEV-COC-750", OnHandQty: 45, SafetyStock: 30},
			Status:            domain.StockStatusSafe,
		}, nil)

	req := withParams(httptest.NewRequest(http.MethodPut, "/v1/inventory/S1/BEV-COC-750", strings.NewReader(`{"on_hand_qty":45}`)),
		"store_id", "S1", "sku_id", "BEV-COC-750")
	rec := httptest.NewRecorder()
	UpdateInventory(stockMock).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"safe"`)
}

func TestUpdateInventory_Invalid(t *testing.T) {
	ctrl := gomock.NewController(t)
	stockMock := stockmocks.NewMockStocker(ctrl)
	stockMock.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, fmt.Errorf("%w: reorder_multiple must be positive", domain.ErrInvalidInput))

	req := withParams(httptest.NewRequest(http.MethodPut, "/v1/inventory/S1/X", strings.NewReader(`{"reorder_multiple":0}`)),
		"store_id", "S1", "sku_id", "X")
	rec := httptest.NewRecorder()
	UpdateInventory(stockMock).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid input: reorder_multiple must be positive", decodeAPIError(t, rec).Message)
}

func TestCreatePurchaseOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	forecastMock := forecastmocks.NewMockForecaster(ctrl)
	forecastMock.EXPECT().CreatePurchaseOrder(gomock.Any(), "S1", "BEV-COC-750").Return(&domain.ReplenishmentAction{
		StoreID: "S1", SKUID: "BEV-COC-750", ActionType: domain.ActionTypeOrderRequest,
	}, nil)

	req := withParams(httptest.NewRequest(http.MethodPost, "/v1/forecasts/S1/BEV-COC-750/purchase-order", nil),
		"store_id", "S1", "sku_id", "BEV-COC-750")
	rec := httptest.NewRecorder()
	CreatePurchaseOrder(forecastMock).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "Purchase order created successfully!")
}

func TestStartIngestSession(t *testing.T) {
	t.Run("creates session from multipart file", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		ingestMock := ingestmocks.NewMockIngester(ctrl)

		csv := "date,store_id,sku_id,units_sold\n2025-01-15,S1,BEV-COC-750,12\n"
		ingestMock.EXPECT().StartSession(gomock.Any(), "sales.csv", []byte(csv)).
			Return(&ingesting.SessionView{ID: "ing_abc", Phase: ingesting.PhaseReady, CanUpload: true}, nil)

		body, contentType := multipartCSV(t, "sales.csv", csv)
		req := httptest.NewRequest(http.MethodPost, "/v1/ingest/sessions", body)
		req.Header.Set("Content-Type", contentType)
		rec := httptest.NewRecorder()
		StartIngestSession(ingestMock).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Contains(t, rec.Body.String(), `"can_upload":true`)
	})

	t.Run("rejects non csv", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		body, contentType := multipartCSV(t, "sales.xlsx", "x")
		req := httptest.NewRequest(http.MethodPost, "/v1/ingest/sessions", body)
		req.Header.Set("Content-Type", contentType)
		rec := httptest.NewRecorder()
		StartIngestSession(ingestmocks.NewMockIngester(ctrl)).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, apiErrors.ErrInvalidFormat, decodeAPIError(t, rec).Code)
	})

	t.Run("missing file", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		req := httptest.NewRequest(http.MethodPost, "/v1/ingest/sessions", strings.NewReader("{}"))
		rec := httptest.NewRecorder()
		StartIngestSession(ingestmocks.NewMockIngester(ctrl)).ServeHTTP(rec, req)

		assert.Equal(t, apiErrors.ErrMissingRequiredData, decodeAPIError(t, rec).Code)
	})
}

func TestUploadIngestSession(t *testing.T) {
	tests := []struct {
		name       string
		outcome    *domain.UploadOutcome
		view       *ingesting.SessionView
		err        error
		wantStatus int
		wantBody   string
	}{
		{
			name: "success",
			outcome: &domain.UploadOutcome{
				Primary: domain.UpsertResult{Success: true, Inserted: 2},
				Message: "Successfully ingested 2 rows (2 new, 0 updated)",
			},
			view:       &ingesting.SessionView{ID: "ing_abc", Phase: ingesting.PhaseUploaded},
			wantStatus: http.StatusOK,
			wantBody:   "Successfully ingested 2 rows",
		},
		{
			name:       "blocked by validation errors",
			view:       &ingesting.SessionView{ID: "ing_abc", Phase: ingesting.PhaseInvalid},
			err:        ingesting.ErrUploadNotAllowed,
			wantStatus: http.StatusConflict,
			wantBody:   apiErrors.ErrUploadNotAllowed,
		},
		{
			name:       "no valid rows",
			err:        domain.ErrNoValidRows,
			wantStatus: http.StatusUnprocessableEntity,
			wantBody:   "No valid rows found in CSV",
		},
		{
			name:       "unknown session",
			err:        ingesting.ErrSessionNotFound,
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			ingestMock := ingestmocks.NewMockIngester(ctrl)
			ingestMock.EXPECT().Upload(gomock.Any(), "ing_abc").Return(tt.outcome, tt.view, tt.err)

			req := withParams(httptest.NewRequest(http.MethodPost, "/v1/ingest/sessions/ing_abc/upload", nil), "id", "ing_abc")
			rec := httptest.NewRecorder()
			UploadIngestSession(ingestMock).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantBody)
		})
	}
}

func TestListIngestionRuns_Disabled(t *testing.T) {
	ctrl := gomock.NewController(t)
	ingestMock := ingestmocks.NewMockIngester(ctrl)
	ingestMock.EXPECT().ListRuns(gomock.Any()).Return(nil, ingesting.ErrAuditDisabled)

	rec := httptest.NewRecorder()
	ListIngestionRuns(ingestMock).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/ingest/runs", nil))

	assert.Equal(t, http.StatusNotImplemented, rec.Code)
}

func TestSubmitManualEntries(t *testing.T) {
	t.Run("submits entries", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		salesMock := salesmocks.NewMockSubmitter(ctrl)
		salesMock.EXPECT().Submit(gomock.Any(), []domain.SalesEntry{
			{Date: "2025-01-15", StoreID: "S1", SKUID: "BEV-COC-750", UnitsSold: 4},
		}).Return(&salesentry.SubmitResult{Submitted: 1, Message: "Successfully sent 1 sales entries to Boltic workflow!"}, nil)

		body := `{"entries":[{"date":"2025-01-15","store_id":"S1","sku_id":"BEV-COC-750","units_sold":4}]}`
		rec := httptest.NewRecorder()
		SubmitManualEntries(salesMock).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/sales/manual", strings.NewReader(body)))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Successfully sent 1 sales entries")
	})

	t.Run("nothing complete", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		salesMock := salesmocks.NewMockSubmitter(ctrl)
		salesMock.EXPECT().Submit(gomock.Any(), gomock.Any()).Return(nil, domain.ErrNoCompleteEntries)

		rec := httptest.NewRecorder()
		SubmitManualEntries(salesMock).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/sales/manual", strings.NewReader(`{"entries":[{}]}`)))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, apiErrors.ErrNoCompleteEntries, decodeAPIError(t, rec).Code)
	})
}

func TestReceiveFyndWebhook(t *testing.T) {
	tests := []struct {
		name       string
		received   *domain.ReceivedEvent
		err        error
		wantStatus int
	}{
		{name: "forwarded", received: &domain.ReceivedEvent{Key: "company/product/create", Forwarded: true}, wantStatus: http.StatusOK},
		{name: "unsupported", received: &domain.ReceivedEvent{Key: "company/article/update"}, err: eventing.ErrUnsupportedEvent, wantStatus: http.StatusAccepted},
		{name: "bad signature", err: fynd.ErrInvalidSignature, wantStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			eventMock := eventmocks.NewMockReceiver(ctrl)
			eventMock.EXPECT().Receive(gomock.Any(), []byte(`{"a":1}`), "abc123").Return(tt.received, tt.err)

			req := httptest.NewRequest(http.MethodPost, "/v1/webhooks/fynd", strings.NewReader(`{"a":1}`))
			req.Header.Set("x-fp-signature", "abc123")
			rec := httptest.NewRecorder()
			ReceiveFyndWebhook(eventMock).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

type fakeJob struct {
	runs   int
	status map[string]any
}

func (f *fakeJob) TriggerManualSync()        { f.runs++ }
func (f *fakeJob) GetStatus() map[string]any { return f.status }

func TestRunCronJob(t *testing.T) {
	sync := &fakeJob{status: map[string]any{"sync_enabled": true}}
	scan := &fakeJob{status: map[string]any{"sync_enabled": false}}
	services := CronJobServices{
		CronJobTypeSalesSignalsSync:  sync,
		CronJobTypeReplenishmentScan: scan,
	}

	run := func(cronType string) *httptest.ResponseRecorder {
		req := withParams(httptest.NewRequest(http.MethodPost, "/v1/cron/"+cronType+"/run", nil), "type", cronType)
		rec := httptest.NewRecorder()
		RunCronJob(services).ServeHTTP(rec, req)
		return rec
	}

	assert.Equal(t, http.StatusAccepted, run(CronJobTypeSalesSignalsSync).Code)
	assert.Equal(t, 1, sync.runs)
	assert.Equal(t, 0, scan.runs)

	assert.Equal(t, http.StatusAccepted, run(CronJobTypeAll).Code)
	assert.Equal(t, 2, sync.runs)
	assert.Equal(t, 1, scan.runs)

	rec := run("nightly-report")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decodeAPIError(t, rec).Message, "replenishment-scan, sales-signals-sync, all")

	statusRec := httptest.NewRecorder()
	GetCronStatus(services).ServeHTTP(statusRec, httptest.NewRequest(http.MethodGet, "/v1/cron/status", nil))
	assert.JSONEq(t, `{"sales-signals-sync":{"sync_enabled":true},"replenishment-scan":{"sync_enabled":false}}`, statusRec.Body.String())
}
