package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"classbooking/config"
	kafkaMocks "classbooking/infras/kafka/mocks"
	otelMocks "classbooking/infras/otel/mocks"
	pgMocks "classbooking/infras/postgres/mocks"
	allocationMocks "classbooking/internal/domains/allocation/mocks"
	"classbooking/internal/domains/allocation/model"
	"classbooking/internal/domains/allocation/model/dto"
	"classbooking/internal/domains/allocation/service"
	"classbooking/internal/domains/classroom/catalog"
	classroomModel "classbooking/internal/domains/classroom/model"
	classroomMocks "classbooking/internal/domains/classroom/mocks"
	cacheMocks "classbooking/shared/cache/mocks"
	gModel "classbooking/shared/model"
	"classbooking/shared/timezone"
)

func testCatalog() *catalog.Catalog {
	return catalog.FromRules(map[string]catalog.Rule{
		"class-a": {
			Days:     []int{1, 3},
			Window:   catalog.HourWindow{Start: 9, End: 18},
			Hours:    1,
			Capacity: 10,
		},
		"class-b": {
			Days:     []int{1, 4, 6},
			Window:   catalog.HourWindow{Start: 8, End: 18},
			Hours:    2,
			Capacity: 15,
		},
		"class-c": {
			Days:     []int{2, 5, 6},
			Window:   catalog.HourWindow{Start: 15, End: 22},
			Hours:    1,
			Capacity: 7,
		},
	})
}

func intPtr(v int) *int {
	return &v
}

type slotMocks struct {
	classroomRepo *classroomMocks.MockClassroom
	dateRepo      *allocationMocks.MockDateAllocation
	timeRepo      *allocationMocks.MockTimeAllocation
	cache         *cacheMocks.MockRedisCache
	events        *kafkaMocks.MockClient
}

func newSlotService(ctrl *gomock.Controller) (service.Slot, slotMocks) {
	mocks := slotMocks{
		classroomRepo: classroomMocks.NewMockClassroom(ctrl),
		dateRepo:      allocationMocks.NewMockDateAllocation(ctrl),
		timeRepo:      allocationMocks.NewMockTimeAllocation(ctrl),
		cache:         cacheMocks.NewMockRedisCache(ctrl),
		events:        kafkaMocks.NewMockClient(ctrl),
	}

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(
		mocks.classroomRepo,
		mocks.dateRepo,
		mocks.timeRepo,
		testCatalog(),
		pgMocks.NewTxRunner(),
		cfg,
		mocks.cache,
		mocks.events,
		otelMocks.NewOtel(),
	)

	return svc, mocks
}

func expectClassroom(mocks slotMocks, classroom classroomModel.Classroom) {
	mocks.classroomRepo.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(classroom, nil)
}

func classA() classroomModel.Classroom {
	return classroomModel.Classroom{ID: "class-a", Name: "Class A"}
}

func classC() classroomModel.Classroom {
	return classroomModel.Classroom{ID: "class-c", Name: "Class C"}
}

func TestSlotService_Book(t *testing.T) {
	// 2026-09-07 is a Monday, 2026-09-08 a Tuesday.
	tests := []struct {
		name      string
		req       dto.BookSlotRequest
		setupMock func(mocks slotMocks)
		wantErr   string
	}{
		{
			name: "unknown class",
			req: dto.BookSlotRequest{
				Class:   "Class Z",
				Date:    "2026-09-07",
				StartHr: intPtr(9),
				EndHr:   intPtr(10),
				People:  intPtr(1),
			},
			setupMock: func(mocks slotMocks) {
				expectClassroom(mocks, classroomModel.Classroom{})
			},
			wantErr: "The selected class is invalid.",
		},
		{
			name: "day not allowed",
			req: dto.BookSlotRequest{
				Class:   "Class A",
				Date:    "2026-09-08",
				StartHr: intPtr(9),
				EndHr:   intPtr(10),
				People:  intPtr(1),
			},
			setupMock: func(mocks slotMocks) {
				expectClassroom(mocks, classA())
			},
			wantErr: "The Class A not available on the 2026-09-08",
		},
		{
			name: "wrong duration",
			req: dto.BookSlotRequest{
				Class:   "Class A",
				Date:    "2026-09-07",
				StartHr: intPtr(9),
				EndHr:   intPtr(11),
				People:  intPtr(1),
			},
			setupMock: func(mocks slotMocks) {
				expectClassroom(mocks, classA())
			},
			wantErr: "The Class A should be bookable only 1 hour(s).",
		},
		{
			name: "start hour before window",
			req: dto.BookSlotRequest{
				Class:   "Class A",
				Date:    "2026-09-07",
				StartHr: intPtr(8),
				EndHr:   intPtr(9),
				People:  intPtr(1),
			},
			setupMock: func(mocks slotMocks) {
				expectClassroom(mocks, classA())
			},
			wantErr: "Invalid Class A bookable hour.",
		},
		{
			name: "end hour after window",
			req: dto.BookSlotRequest{
				Class:   "Class A",
				Date:    "2026-09-07",
				StartHr: intPtr(18),
				EndHr:   intPtr(19),
				People:  intPtr(1),
			},
			setupMock: func(mocks slotMocks) {
				expectClassroom(mocks, classA())
			},
			wantErr: "Invalid Class A bookable hour.",
		},
		{
			name: "window edges are inclusive",
			req: dto.BookSlotRequest{
				Class:   "Class A",
				Date:    "2026-09-07",
				StartHr: intPtr(17),
				EndHr:   intPtr(18),
				People:  intPtr(1),
			},
			setupMock: func(mocks slotMocks) {
				expectClassroom(mocks, classA())

				mocks.dateRepo.EXPECT().
					GetActiveTx(gomock.Any(), gomock.Any(), "class-a", "2026-09-07").
					Return(model.DateAllocation{ID: "da-1"}, nil)

				mocks.timeRepo.EXPECT().
					SumPeopleTx(gomock.Any(), gomock.Any(), "da-1", 17, 18).
					Return(0, nil)

				mocks.timeRepo.EXPECT().
					InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)

				mocks.cache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
		},
		{
			name: "capacity exceeded reports existing sum",
			req: dto.BookSlotRequest{
				Class:   "Class A",
				Date:    "2026-09-07",
				StartHr: intPtr(10),
				EndHr:   intPtr(11),
				People:  intPtr(2),
			},
			setupMock: func(mocks slotMocks) {
				expectClassroom(mocks, classA())

				mocks.dateRepo.EXPECT().
					GetActiveTx(gomock.Any(), gomock.Any(), "class-a", "2026-09-07").
					Return(model.DateAllocation{ID: "da-1"}, nil)

				mocks.timeRepo.EXPECT().
					SumPeopleTx(gomock.Any(), gomock.Any(), "da-1", 10, 11).
					Return(9, nil)
			},
			wantErr: "Already allocated 9 people for the given hour.",
		},
		{
			name: "second group pushing past capacity is rejected",
			req: dto.BookSlotRequest{
				Class:   "Class A",
				Date:    "2026-09-07",
				StartHr: intPtr(9),
				EndHr:   intPtr(10),
				People:  intPtr(6),
			},
			setupMock: func(mocks slotMocks) {
				expectClassroom(mocks, classA())

				mocks.dateRepo.EXPECT().
					GetActiveTx(gomock.Any(), gomock.Any(), "class-a", "2026-09-07").
					Return(model.DateAllocation{ID: "da-1"}, nil)

				mocks.timeRepo.EXPECT().
					SumPeopleTx(gomock.Any(), gomock.Any(), "da-1", 9, 10).
					Return(5, nil)
			},
			wantErr: "Already allocated 5 people for the given hour.",
		},
		{
			name: "booking exactly up to capacity succeeds",
			req: dto.BookSlotRequest{
				Class:   "Class A",
				Date:    "2026-09-07",
				StartHr: intPtr(10),
				EndHr:   intPtr(11),
				People:  intPtr(1),
			},
			setupMock: func(mocks slotMocks) {
				expectClassroom(mocks, classA())

				mocks.dateRepo.EXPECT().
					GetActiveTx(gomock.Any(), gomock.Any(), "class-a", "2026-09-07").
					Return(model.DateAllocation{ID: "da-1"}, nil)

				mocks.timeRepo.EXPECT().
					SumPeopleTx(gomock.Any(), gomock.Any(), "da-1", 10, 11).
					Return(9, nil)

				mocks.timeRepo.EXPECT().
					InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)

				mocks.cache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
		},
		{
			name: "first booking creates the date allocation",
			req: dto.BookSlotRequest{
				Class:   "Class A",
				Date:    "2026-09-07",
				StartHr: intPtr(9),
				EndHr:   intPtr(10),
				People:  intPtr(3),
			},
			setupMock: func(mocks slotMocks) {
				expectClassroom(mocks, classA())

				mocks.dateRepo.EXPECT().
					GetActiveTx(gomock.Any(), gomock.Any(), "class-a", "2026-09-07").
					Return(model.DateAllocation{}, nil)

				mocks.dateRepo.EXPECT().
					InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ any, da model.DateAllocation) error {
						assert.Equal(t, "class-a", da.ClassroomID)
						assert.NotEmpty(t, da.ID)

						return nil
					})

				mocks.timeRepo.EXPECT().
					InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ any, ta model.TimeAllocation) error {
						assert.Equal(t, 9, ta.StartHr)
						assert.Equal(t, 10, ta.EndHr)
						assert.Equal(t, 3, ta.People)

						return nil
					})

				mocks.cache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
		},
		{
			name: "evening classroom accepts its own window",
			req: dto.BookSlotRequest{
				Class:   "Class C",
				Date:    "2026-09-08",
				StartHr: intPtr(21),
				EndHr:   intPtr(22),
				People:  intPtr(2),
			},
			setupMock: func(mocks slotMocks) {
				expectClassroom(mocks, classC())

				mocks.dateRepo.EXPECT().
					GetActiveTx(gomock.Any(), gomock.Any(), "class-c", "2026-09-08").
					Return(model.DateAllocation{ID: "da-2"}, nil)

				mocks.timeRepo.EXPECT().
					SumPeopleTx(gomock.Any(), gomock.Any(), "da-2", 21, 22).
					Return(0, nil)

				mocks.timeRepo.EXPECT().
					InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)

				mocks.cache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
		},
		{
			name: "repository error surfaces",
			req: dto.BookSlotRequest{
				Class:   "Class A",
				Date:    "2026-09-07",
				StartHr: intPtr(9),
				EndHr:   intPtr(10),
				People:  intPtr(1),
			},
			setupMock: func(mocks slotMocks) {
				expectClassroom(mocks, classA())

				mocks.dateRepo.EXPECT().
					GetActiveTx(gomock.Any(), gomock.Any(), "class-a", "2026-09-07").
					Return(model.DateAllocation{}, errors.New("database error"))
			},
			wantErr: "failed to get date allocation: database error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc, mocks := newSlotService(ctrl)
			tt.setupMock(mocks)

			err := svc.Book(context.Background(), tt.req)

			if tt.wantErr != "" {
				assert.EqualError(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSlotService_Cancel(t *testing.T) {
	tests := []struct {
		name      string
		req       dto.CancelSlotRequest
		setupMock func(mocks slotMocks)
		wantErr   string
	}{
		{
			name: "unknown class",
			req: dto.CancelSlotRequest{
				Class:   "Class Z",
				Date:    "2026-09-07",
				StartHr: intPtr(9),
				EndHr:   intPtr(10),
				People:  intPtr(1),
			},
			setupMock: func(mocks slotMocks) {
				expectClassroom(mocks, classroomModel.Classroom{})
			},
			wantErr: "The selected class is invalid.",
		},
		{
			name: "no allocation for the date",
			req: dto.CancelSlotRequest{
				Class:   "Class A",
				Date:    "2026-09-07",
				StartHr: intPtr(9),
				EndHr:   intPtr(10),
				People:  intPtr(1),
			},
			setupMock: func(mocks slotMocks) {
				expectClassroom(mocks, classA())

				mocks.dateRepo.EXPECT().
					GetActive(gomock.Any(), "class-a", "2026-09-07").
					Return(model.DateAllocation{}, nil)
			},
			wantErr: "Slot allocation not found.",
		},
		{
			name: "no booking matches the interval and people exactly",
			req: dto.CancelSlotRequest{
				Class:   "Class A",
				Date:    "2026-09-07",
				StartHr: intPtr(9),
				EndHr:   intPtr(10),
				People:  intPtr(4),
			},
			setupMock: func(mocks slotMocks) {
				expectClassroom(mocks, classA())

				mocks.dateRepo.EXPECT().
					GetActive(gomock.Any(), "class-a", "2026-09-07").
					Return(model.DateAllocation{ID: "da-1"}, nil)

				mocks.timeRepo.EXPECT().
					GetActiveMatch(gomock.Any(), "da-1", 9, 10, 4).
					Return(model.TimeAllocation{}, nil)
			},
			wantErr: "Slot allocation not found.",
		},
		{
			name: "booking older than a day cannot be cancelled",
			req: dto.CancelSlotRequest{
				Class:   "Class A",
				Date:    "2026-09-07",
				StartHr: intPtr(9),
				EndHr:   intPtr(10),
				People:  intPtr(1),
			},
			setupMock: func(mocks slotMocks) {
				expectClassroom(mocks, classA())

				mocks.dateRepo.EXPECT().
					GetActive(gomock.Any(), "class-a", "2026-09-07").
					Return(model.DateAllocation{ID: "da-1"}, nil)

				mocks.timeRepo.EXPECT().
					GetActiveMatch(gomock.Any(), "da-1", 9, 10, 1).
					Return(model.TimeAllocation{
						ID: "ta-1",
						Metadata: gModel.Metadata{
							CreatedAt: timezone.Now().Add(-25 * time.Hour),
						},
					}, nil)
			},
			wantErr: "A class cannot be canceled less than 24 hours.",
		},
		{
			name: "recent booking cancels",
			req: dto.CancelSlotRequest{
				Class:   "Class A",
				Date:    "2026-09-07",
				StartHr: intPtr(9),
				EndHr:   intPtr(10),
				People:  intPtr(1),
			},
			setupMock: func(mocks slotMocks) {
				expectClassroom(mocks, classA())

				mocks.dateRepo.EXPECT().
					GetActive(gomock.Any(), "class-a", "2026-09-07").
					Return(model.DateAllocation{ID: "da-1"}, nil)

				mocks.timeRepo.EXPECT().
					GetActiveMatch(gomock.Any(), "da-1", 9, 10, 1).
					Return(model.TimeAllocation{
						ID:      "ta-1",
						StartHr: 9,
						EndHr:   10,
						People:  1,
						Metadata: gModel.Metadata{
							CreatedAt: timezone.Now().Add(-2 * time.Hour),
						},
					}, nil)

				mocks.timeRepo.EXPECT().
					SoftDeleteByID(gomock.Any(), "ta-1", gomock.Any()).
					Return(nil)

				mocks.cache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
		},
		{
			name: "repository error surfaces",
			req: dto.CancelSlotRequest{
				Class:   "Class A",
				Date:    "2026-09-07",
				StartHr: intPtr(9),
				EndHr:   intPtr(10),
				People:  intPtr(1),
			},
			setupMock: func(mocks slotMocks) {
				expectClassroom(mocks, classA())

				mocks.dateRepo.EXPECT().
					GetActive(gomock.Any(), "class-a", "2026-09-07").
					Return(model.DateAllocation{}, errors.New("database error"))
			},
			wantErr: "failed to get date allocation: database error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc, mocks := newSlotService(ctrl)
			tt.setupMock(mocks)

			err := svc.Cancel(context.Background(), tt.req)

			if tt.wantErr != "" {
				assert.EqualError(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSlotService_GetAvailability(t *testing.T) {
	date := func(value string) model.DateAllocation {
		parsed, err := timezone.Parse("2006-01-02", value)
		assert.NoError(t, err)

		return model.DateAllocation{Date: parsed}
	}

	t.Run("cache hit skips the repositories", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, mocks := newSlotService(ctrl)

		cached := dto.Availability{"Class A": {"2026-09-07": {"9-10": 4}}}

		mocks.cache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, value any) error {
				*value.(*dto.Availability) = cached

				return nil
			})

		res, err := svc.GetAvailability(context.Background())

		assert.NoError(t, err)
		assert.Equal(t, cached, res)
	})

	t.Run("cache miss assembles from repositories", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, mocks := newSlotService(ctrl)

		da1 := date("2026-09-07")
		da1.ID = "da-1"
		da1.ClassroomID = "class-a"

		da2 := date("2026-09-08")
		da2.ID = "da-2"
		da2.ClassroomID = "class-c"

		mocks.cache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss"))

		mocks.classroomRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]classroomModel.Classroom{classA(), classC()}, nil)

		mocks.dateRepo.EXPECT().
			GetAllActive(gomock.Any()).
			Return([]model.DateAllocation{da1, da2}, nil)

		mocks.timeRepo.EXPECT().
			GetAllActive(gomock.Any()).
			Return([]model.TimeAllocation{
				{ID: "ta-1", DateAllocationID: "da-1", StartHr: 9, EndHr: 10, People: 4},
				{ID: "ta-2", DateAllocationID: "da-1", StartHr: 9, EndHr: 10, People: 2},
				{ID: "ta-3", DateAllocationID: "da-1", StartHr: 10, EndHr: 11, People: 5},
				{ID: "ta-4", DateAllocationID: "da-2", StartHr: 21, EndHr: 22, People: 1},
			}, nil)

		mocks.cache.EXPECT().
			Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil).
			AnyTimes()

		res, err := svc.GetAvailability(context.Background())

		assert.NoError(t, err)
		assert.Equal(t, dto.Availability{
			"Class A": {
				"2026-09-07": {
					"9-10":  6,
					"10-11": 5,
				},
			},
			"Class C": {
				"2026-09-08": {
					"21-22": 1,
				},
			},
		}, res)
	})

	t.Run("classroom without bookings keeps an empty entry", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, mocks := newSlotService(ctrl)

		mocks.cache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss"))

		mocks.classroomRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]classroomModel.Classroom{classA()}, nil)

		mocks.dateRepo.EXPECT().
			GetAllActive(gomock.Any()).
			Return(nil, nil)

		mocks.timeRepo.EXPECT().
			GetAllActive(gomock.Any()).
			Return(nil, nil)

		mocks.cache.EXPECT().
			Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil).
			AnyTimes()

		res, err := svc.GetAvailability(context.Background())

		assert.NoError(t, err)
		assert.Equal(t, dto.Availability{"Class A": {}}, res)
	})

	t.Run("repository error surfaces", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, mocks := newSlotService(ctrl)

		mocks.cache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss"))

		mocks.classroomRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errors.New("database error"))

		_, err := svc.GetAvailability(context.Background())

		assert.Error(t, err)
	})
}
