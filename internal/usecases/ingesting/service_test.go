package ingesting

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	bolticmocks "github.com/vfg2006/smart-inventory-api/infrastructure/integrator/boltic/mocks"
	repomocks "github.com/vfg2006/smart-inventory-api/infrastructure/repository/mocks"
	"github.com/vfg2006/smart-inventory-api/internal/config"
	"github.com/vfg2006/smart-inventory-api/internal/domain"
	"go.uber.org/mock/gomock"
)

const salesCSV = "date,store_id,sku_id,units_sold\n" +
	"2025-11-27, S1 ,SKU1,5\n" +
	"2025-11-27,S1,SKU2,0\n" +
	"2025-11-27,S2,SKU1,abc\n" +
	"2025-11-28,S2,SKU3,7.9\n"

var fixedNow = time.Date(2025, 12, 1, 9, 0, 0, 0, time.UTC)

func testConfig() *config.Config {
	return &config.Config{
		Boltic: config.Boltic{SalesSyncWorkflow: "A_sales_signals_sync"},
		Ingest: config.Ingest{PreviewRows: 20, RecentRuns: 10},
	}
}

func newTestService(ctrl *gomock.Controller, withAudit bool) (*Service, *bolticmocks.MockBolticIntegrator, *repomocks.MockIngestionRunRepository) {
	bolticMock := bolticmocks.NewMockBolticIntegrator(ctrl)
	var repoMock *repomocks.MockIngestionRunRepository

	service := NewService(testConfig(), bolticMock, nil, NewSessionStore())
	if withAudit {
		repoMock = repomocks.NewMockIngestionRunRepository(ctrl)
		service.runsRepo = repoMock
	}
	service.now = func() time.Time { return fixedNow }

	return service, bolticMock, repoMock
}

func TestService_Ingest(t *testing.T) {
	expectedRecords := []domain.SalesRecord{
		{Date: time.Date(2025, 11, 27, 0, 0, 0, 0, time.UTC), StoreID: "S1", SKUID: "SKU1", UnitsSold: 5, UpdatedAt: fixedNow},
		{Date: time.Date(2025, 11, 28, 0, 0, 0, 0, time.UTC), StoreID: "S2", SKUID: "SKU3", UnitsSold: 7, UpdatedAt: fixedNow},
	}

	tests := []struct {
		name     string
		input    string
		audit    bool
		setup    func(b *bolticmocks.MockBolticIntegrator, r *repomocks.MockIngestionRunRepository)
		validate func(t *testing.T, outcome *domain.UploadOutcome, err error)
	}{
		{
			name:  "success triggers the sales sync workflow",
			input: salesCSV,
			setup: func(b *bolticmocks.MockBolticIntegrator, _ *repomocks.MockIngestionRunRepository) {
				b.EXPECT().UpsertSales(gomock.Any(), expectedRecords).
					Return(&domain.UpsertResult{Success: true, Inserted: 1, Updated: 1}, nil)
				b.EXPECT().TriggerWorkflow(gomock.Any(), "A_sales_signals_sync", map[string]any{
					"source":     "csv_upload",
					"rows_count": 2,
				}).Return(nil)
			},
			validate: func(t *testing.T, outcome *domain.UploadOutcome, err error) {
				require.NoError(t, err)
				assert.True(t, outcome.Primary.Success)
				assert.Equal(t, 2, outcome.RowsValid)
				assert.Equal(t, "Successfully ingested 2 rows (1 new, 1 updated)", outcome.Message)
				assert.Equal(t, []domain.SecondaryOutcome{
					{Operation: "trigger_workflow:A_sales_signals_sync", Succeeded: true},
				}, outcome.Secondary)
			},
		},
		{
			name:  "trigger failure does not change the primary result",
			input: salesCSV,
			setup: func(b *bolticmocks.MockBolticIntegrator, _ *repomocks.MockIngestionRunRepository) {
				b.EXPECT().UpsertSales(gomock.Any(), gomock.Any()).
					Return(&domain.UpsertResult{Success: true, Inserted: 2}, nil)
				b.EXPECT().TriggerWorkflow(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("workflow unavailable"))
			},
			validate: func(t *testing.T, outcome *domain.UploadOutcome, err error) {
				require.NoError(t, err)
				assert.Equal(t, domain.UpsertResult{Success: true, Inserted: 2}, outcome.Primary)
				assert.Equal(t, "Successfully ingested 2 rows (2 new, 0 updated)", outcome.Message)
				require.Len(t, outcome.Secondary, 1)
				assert.False(t, outcome.Secondary[0].Succeeded)
				assert.Equal(t, "workflow unavailable", outcome.Secondary[0].Error)
			},
		},
		{
			name:  "rejected upsert skips the trigger",
			input: salesCSV,
			setup: func(b *bolticmocks.MockBolticIntegrator, _ *repomocks.MockIngestionRunRepository) {
				b.EXPECT().UpsertSales(gomock.Any(), gomock.Any()).
					Return(&domain.UpsertResult{Success: false, Errors: []string{"bad date", "bad sku", "timeout"}}, nil)
			},
			validate: func(t *testing.T, outcome *domain.UploadOutcome, err error) {
				require.NoError(t, err)
				assert.False(t, outcome.Primary.Success)
				assert.Equal(t, "Upload failed: 3 errors", outcome.Message)
				assert.Empty(t, outcome.Secondary)
			},
		},
		{
			name:  "no valid rows never calls the table store",
			input: "date,store_id,sku_id,units_sold\n2025-11-27,S1,SKU1,0\nbad,S1,SKU1,4\n",
			setup: func(_ *bolticmocks.MockBolticIntegrator, _ *repomocks.MockIngestionRunRepository) {},
			validate: func(t *testing.T, outcome *domain.UploadOutcome, err error) {
				assert.ErrorIs(t, err, domain.ErrNoValidRows)
				assert.Nil(t, outcome)
			},
		},
		{
			name:  "network failure is returned",
			input: salesCSV,
			setup: func(b *bolticmocks.MockBolticIntegrator, _ *repomocks.MockIngestionRunRepository) {
				b.EXPECT().UpsertSales(gomock.Any(), gomock.Any()).
					Return(nil, &domain.NetworkError{Op: "upsert rows", StatusCode: 502, Err: errors.New("bad gateway")})
			},
			validate: func(t *testing.T, outcome *domain.UploadOutcome, err error) {
				var netErr *domain.NetworkError
				require.True(t, errors.As(err, &netErr))
				assert.Nil(t, outcome)
				assert.Equal(t, "Upload failed: bad gateway", UserMessage(err))
			},
		},
		{
			name:  "audit entry is recorded as a secondary outcome",
			input: salesCSV,
			audit: true,
			setup: func(b *bolticmocks.MockBolticIntegrator, r *repomocks.MockIngestionRunRepository) {
				b.EXPECT().UpsertSales(gomock.Any(), gomock.Any()).
					Return(&domain.UpsertResult{Success: true, Inserted: 2}, nil)
				b.EXPECT().TriggerWorkflow(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
				r.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, run *domain.IngestionRun) error {
					assert.True(t, strings.HasPrefix(run.ID, "run_"))
					assert.Equal(t, domain.IngestionSourceCSV, run.Source)
					assert.Equal(t, "sales.csv", run.FileName)
					assert.Equal(t, 4, run.RowsReceived)
					assert.Equal(t, 2, run.RowsValid)
					assert.Equal(t, domain.IngestionStatusSucceeded, run.Status)
					assert.True(t, run.WorkflowTriggered)
					return errors.New("connection refused")
				})
			},
			validate: func(t *testing.T, outcome *domain.UploadOutcome, err error) {
				require.NoError(t, err)
				assert.True(t, outcome.Primary.Success)
				require.Len(t, outcome.Secondary, 2)
				assert.Equal(t, OperationRecordRun, outcome.Secondary[1].Operation)
				assert.False(t, outcome.Secondary[1].Succeeded)
			},
		},
		{
			name:  "rejected file is audited",
			input: "date,store_id,sku_id,units_sold\n",
			audit: true,
			setup: func(_ *bolticmocks.MockBolticIntegrator, r *repomocks.MockIngestionRunRepository) {
				r.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, run *domain.IngestionRun) error {
					assert.Equal(t, domain.IngestionStatusRejected, run.Status)
					assert.Equal(t, "No valid rows found in CSV", run.Message)
					return nil
				})
			},
			validate: func(t *testing.T, outcome *domain.UploadOutcome, err error) {
				assert.ErrorIs(t, err, domain.ErrNoValidRows)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			service, bolticMock, repoMock := newTestService(ctrl, tt.audit)
			tt.setup(bolticMock, repoMock)

			outcome, err := service.Ingest(context.Background(), "sales.csv", strings.NewReader(tt.input))
			tt.validate(t, outcome, err)
		})
	}
}

func TestService_SessionUpload(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, bolticMock, _ := newTestService(ctrl, false)

	view, err := service.StartSession(context.Background(), "sales.csv", []byte(salesCSV))
	require.NoError(t, err)
	assert.Equal(t, PhaseInvalid, view.Phase)
	assert.False(t, view.CanUpload)
	require.Len(t, view.Rows, 4)
	assert.False(t, view.Rows[2].Valid)
	assert.Equal(t, "units_sold", view.Rows[2].Errors[0].Field)

	_, _, err = service.Upload(context.Background(), view.ID)
	assert.ErrorIs(t, err, ErrUploadNotAllowed)

	clean := "date,store_id,sku_id,units_sold\n2025-11-27,S1,SKU1,5\n"
	view, err = service.ReplaceFile(context.Background(), view.ID, "clean.csv", []byte(clean))
	require.NoError(t, err)
	require.True(t, view.CanUpload)
	assert.Equal(t, uint64(2), view.Generation)

	bolticMock.EXPECT().UpsertSales(gomock.Any(), gomock.Len(1)).
		Return(&domain.UpsertResult{Success: true, Updated: 1}, nil)
	bolticMock.EXPECT().TriggerWorkflow(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	outcome, view, err := service.Upload(context.Background(), view.ID)
	require.NoError(t, err)
	assert.Equal(t, "Successfully ingested 1 rows (0 new, 1 updated)", outcome.Message)
	assert.Equal(t, PhaseUploaded, view.Phase)
	assert.Equal(t, outcome, view.Outcome)
}

func TestService_SupersededUploadDoesNotOverwriteNewerFile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, bolticMock, _ := newTestService(ctrl, false)
	clean := []byte("date,store_id,sku_id,units_sold\n2025-11-27,S1,SKU1,5\n")

	view, err := service.StartSession(context.Background(), "first.csv", clean)
	require.NoError(t, err)
	id := view.ID

	bolticMock.EXPECT().UpsertSales(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, _ []domain.SalesRecord) (*domain.UpsertResult, error) {
			_, err := service.ReplaceFile(ctx, id, "second.csv", clean)
			require.NoError(t, err)
			return &domain.UpsertResult{Success: true, Inserted: 1}, nil
		})
	bolticMock.EXPECT().TriggerWorkflow(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	outcome, view, err := service.Upload(context.Background(), id)

	require.NoError(t, err)
	assert.True(t, outcome.Primary.Success)
	assert.Equal(t, "second.csv", view.FileName)
	assert.Equal(t, PhaseReady, view.Phase)
	assert.Nil(t, view.Outcome)
}

func TestService_ClearSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, _, _ := newTestService(ctrl, false)

	view, err := service.StartSession(context.Background(), "sales.csv", []byte(salesCSV))
	require.NoError(t, err)

	cleared, err := service.ClearSession(view.ID)
	require.NoError(t, err)
	assert.Equal(t, PhaseIdle, cleared.Phase)
	assert.Empty(t, cleared.Rows)

	_, err = service.GetSession("unknown")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestService_ListRuns(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, _, _ := newTestService(ctrl, false)
	_, err := service.ListRuns(context.Background())
	assert.ErrorIs(t, err, ErrAuditDisabled)

	service, _, repoMock := newTestService(ctrl, true)
	repoMock.EXPECT().ListRecent(gomock.Any(), 10).Return([]domain.IngestionRun{{ID: "run_1"}}, nil)

	runs, err := service.ListRuns(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []domain.IngestionRun{{ID: "run_1"}}, runs)
}

func TestUserMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "no valid rows", err: domain.ErrNoValidRows, want: "No valid rows found in CSV"},
		{name: "ascii", err: errors.New("session expired"), want: "Session expired"},
		{name: "multi-byte first rune", err: errors.New("écart de stock"), want: "Écart de stock"},
		{name: "empty", err: errors.New(""), want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, UserMessage(tt.err))
		})
	}
}
