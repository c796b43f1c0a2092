package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"classbooking/config"
	"classbooking/infras/kafka"
	"classbooking/infras/otel"
	"classbooking/infras/postgres"
	"classbooking/internal/domains/allocation/model"
	"classbooking/internal/domains/allocation/model/dto"
	"classbooking/internal/domains/allocation/repository"
	"classbooking/internal/domains/classroom/catalog"
	classroomModel "classbooking/internal/domains/classroom/model"
	classroomRepo "classbooking/internal/domains/classroom/repository"
	"classbooking/shared"
	"classbooking/shared/cache"
	"classbooking/shared/constant"
	gDto "classbooking/shared/dto"
	"classbooking/shared/failure"
	"classbooking/shared/timezone"
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

const (
	cacheAvailability = "slot:availability"

	// Bookings become immutable this many hours after they were made. The
	// window is measured from the booking's creation time, not from the
	// booked slot itself.
	cancelCutoffHours = 24
)

type Slot interface {
	GetAvailability(ctx context.Context) (dto.Availability, error)
	Book(ctx context.Context, req dto.BookSlotRequest) error
	Cancel(ctx context.Context, req dto.CancelSlotRequest) error
}

type serviceImpl struct {
	classroomRepo classroomRepo.Classroom
	dateRepo      repository.DateAllocation
	timeRepo      repository.TimeAllocation
	rules         *catalog.Catalog
	tx            postgres.TxRunner
	cfg           *config.Config
	cache         cache.RedisCache
	events        kafka.Client
	otel          otel.Otel
}

func New(
	classroomRepo classroomRepo.Classroom,
	dateRepo repository.DateAllocation,
	timeRepo repository.TimeAllocation,
	rules *catalog.Catalog,
	tx postgres.TxRunner,
	cfg *config.Config,
	cache cache.RedisCache,
	events kafka.Client,
	otel otel.Otel,
) Slot {
	return &serviceImpl{
		classroomRepo: classroomRepo,
		dateRepo:      dateRepo,
		timeRepo:      timeRepo,
		rules:         rules,
		tx:            tx,
		cfg:           cfg,
		cache:         cache,
		events:        events,
		otel:          otel,
	}
}

func (s *serviceImpl) GetAvailability(ctx context.Context) (res dto.Availability, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAvailability")
	defer scope.End()
	defer scope.TraceIfError(err)

	err = s.cache.Get(ctx, cacheAvailability, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheAvailability).Msg("cache hit for availability")

		return res, nil
	}

	classrooms, err := s.classroomRepo.GetAll(ctx, gDto.QueryParams{}, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to get classrooms")

		return res, fmt.Errorf("failed to get classrooms: %w", err)
	}

	dateAllocations, err := s.dateRepo.GetAllActive(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get date allocations")

		return res, fmt.Errorf("failed to get date allocations: %w", err)
	}

	timeAllocations, err := s.timeRepo.GetAllActive(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get time allocations")

		return res, fmt.Errorf("failed to get time allocations: %w", err)
	}

	timeByDateAllocation := map[string][]model.TimeAllocation{}
	for _, ta := range timeAllocations {
		timeByDateAllocation[ta.DateAllocationID] = append(timeByDateAllocation[ta.DateAllocationID], ta)
	}

	res = dto.Availability{}

	for _, classroom := range classrooms {
		res[classroom.Name] = map[string]map[string]int{}

		for _, da := range dateAllocations {
			if da.ClassroomID != classroom.ID {
				continue
			}

			date := da.Date.Format(constant.BookingDateFormat)

			for _, ta := range timeByDateAllocation[da.ID] {
				if res[classroom.Name][date] == nil {
					res[classroom.Name][date] = map[string]int{}
				}

				res[classroom.Name][date][ta.CombineID()] += ta.People
			}
		}
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheAvailability, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save availability to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Book(ctx context.Context, req dto.BookSlotRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Book")
	defer scope.End()
	defer scope.TraceIfError(err)

	classroom, rule, err := s.lookupClassroom(ctx, req.Class)
	if err != nil {
		return err
	}

	date, err := timezone.Parse(constant.BookingDateFormat, req.Date)
	if err != nil {
		return failure.BadRequestFromString("date must match the format " + constant.BookingDateFormat) //nolint:wrapcheck
	}

	startHr, endHr, people := *req.StartHr, *req.EndHr, *req.People

	if !rule.AllowsDay(isoWeekday(date)) {
		return failure.BadRequestFromString(fmt.Sprintf("The %s not available on the %s", classroom.Name, req.Date)) //nolint:wrapcheck
	}

	if endHr-startHr != rule.Hours {
		return failure.BadRequestFromString(fmt.Sprintf("The %s should be bookable only %d hour(s).", classroom.Name, rule.Hours)) //nolint:wrapcheck
	}

	if !rule.InWindow(startHr) || !rule.InWindow(endHr) {
		return failure.BadRequestFromString(fmt.Sprintf("Invalid %s bookable hour.", classroom.Name)) //nolint:wrapcheck
	}

	user := userFromContext(ctx)

	err = s.tx.WithSerializableTx(ctx, func(tx *sqlx.Tx) error {
		dateAllocation, err := s.dateRepo.GetActiveTx(ctx, tx, classroom.ID, req.Date)
		if err != nil {
			log.Error().Err(err).Msg("failed to get date allocation")

			return fmt.Errorf("failed to get date allocation: %w", err)
		}

		existing := 0

		if dateAllocation.ID != constant.Empty {
			existing, err = s.timeRepo.SumPeopleTx(ctx, tx, dateAllocation.ID, startHr, endHr)
			if err != nil {
				log.Error().Err(err).Msg("failed to sum booked people")

				return fmt.Errorf("failed to sum booked people: %w", err)
			}
		}

		if existing+people > rule.Capacity {
			return failure.BadRequestFromString(fmt.Sprintf("Already allocated %d people for the given hour.", existing)) //nolint:wrapcheck
		}

		if dateAllocation.ID == constant.Empty {
			dateAllocation = model.NewDateAllocation(classroom.ID, date, user)

			if err := s.dateRepo.InsertTx(ctx, tx, dateAllocation); err != nil {
				log.Error().Err(err).Msg("failed to create date allocation")

				return fmt.Errorf("failed to create date allocation: %w", err)
			}
		}

		timeAllocation := model.NewTimeAllocation(dateAllocation.ID, startHr, endHr, people, user)

		if err := s.timeRepo.InsertTx(ctx, tx, timeAllocation); err != nil {
			log.Error().Err(err).Msg("failed to create time allocation")

			return fmt.Errorf("failed to create time allocation: %w", err)
		}

		return nil
	})
	if err != nil {
		return err
	}

	scope.AddEvent("Slot booked for " + classroom.Name)

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheAvailability)
		s.publishEvent(c, s.cfg.Kafka.Topic.SlotBooked, classroom, dto.SlotEvent{
			Class:      classroom.Name,
			Date:       req.Date,
			StartHr:    startHr,
			EndHr:      endHr,
			People:     people,
			OccurredAt: timezone.Now(),
		})
	}()

	return nil
}

func (s *serviceImpl) Cancel(ctx context.Context, req dto.CancelSlotRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Cancel")
	defer scope.End()
	defer scope.TraceIfError(err)

	classroom, _, err := s.lookupClassroom(ctx, req.Class)
	if err != nil {
		return err
	}

	dateAllocation, err := s.dateRepo.GetActive(ctx, classroom.ID, req.Date)
	if err != nil {
		log.Error().Err(err).Msg("failed to get date allocation")

		return fmt.Errorf("failed to get date allocation: %w", err)
	}

	if dateAllocation.ID == constant.Empty {
		return failure.NotFound("Slot allocation not found.") //nolint:wrapcheck
	}

	timeAllocation, err := s.timeRepo.GetActiveMatch(ctx, dateAllocation.ID, *req.StartHr, *req.EndHr, *req.People)
	if err != nil {
		log.Error().Err(err).Msg("failed to get time allocation")

		return fmt.Errorf("failed to get time allocation: %w", err)
	}

	if timeAllocation.ID == constant.Empty {
		return failure.NotFound("Slot allocation not found.") //nolint:wrapcheck
	}

	if timezone.Now().Sub(timeAllocation.CreatedAt).Hours() > cancelCutoffHours {
		return failure.Forbidden("A class cannot be canceled less than 24 hours.") //nolint:wrapcheck
	}

	if err := s.timeRepo.SoftDeleteByID(ctx, timeAllocation.ID, userFromContext(ctx)); err != nil {
		log.Error().Err(err).Msg("failed to cancel time allocation")

		return fmt.Errorf("failed to cancel time allocation: %w", err)
	}

	scope.AddEvent("Slot cancelled for " + classroom.Name)

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheAvailability)
		s.publishEvent(c, s.cfg.Kafka.Topic.SlotCancelled, classroom, dto.SlotEvent{
			Class:      classroom.Name,
			Date:       req.Date,
			StartHr:    timeAllocation.StartHr,
			EndHr:      timeAllocation.EndHr,
			People:     timeAllocation.People,
			OccurredAt: timezone.Now(),
		})
	}()

	return nil
}

// lookupClassroom resolves a display name to the catalog entry and its booking
// rule. Unknown names surface as a field-level validation failure, keeping the
// existence guarantee explicit instead of relying on an unchecked lookup.
func (s *serviceImpl) lookupClassroom(ctx context.Context, name string) (classroomModel.Classroom, catalog.Rule, error) {
	classroom, err := s.classroomRepo.Get(ctx, gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    classroomModel.FieldName,
				Operator: gDto.FilterOperatorEq,
				Value:    name,
			},
		},
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to get classroom")

		return classroomModel.Classroom{}, catalog.Rule{}, fmt.Errorf("failed to get classroom: %w", err)
	}

	if classroom.ID == constant.Empty {
		return classroomModel.Classroom{}, catalog.Rule{}, failure.BadRequestFromString("The selected class is invalid.") //nolint:wrapcheck
	}

	rule, ok := s.rules.Rule(classroom.ID)
	if !ok {
		log.Error().Str("classroom", classroom.ID).Msg("classroom has no booking rule configured")

		return classroomModel.Classroom{}, catalog.Rule{}, failure.BadRequestFromString("The selected class is invalid.") //nolint:wrapcheck
	}

	return classroom, rule, nil
}

func (s *serviceImpl) publishEvent(ctx context.Context, topic string, classroom classroomModel.Classroom, event dto.SlotEvent) {
	if !s.cfg.Kafka.Enable {
		return
	}

	err := s.events.SendMessages(ctx, topic, kafka.Message{
		Key:   classroom.ID,
		Value: event,
	})
	if err != nil {
		log.Error().Err(err).Str("topic", topic).Msg("failed to publish slot event")
	}
}

func userFromContext(ctx context.Context) string {
	if user, ok := ctx.Value(constant.ContextKeyUserID).(string); ok && user != constant.Empty {
		return user
	}

	return constant.ContextGuest
}

// isoWeekday maps time.Weekday to ISO-8601 numbering (1=Monday .. 7=Sunday).
func isoWeekday(t time.Time) int {
	if day := int(t.Weekday()); day != 0 {
		return day
	}

	return 7
}
