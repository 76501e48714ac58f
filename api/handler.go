package api

import (
	"bytes"
	"encoding/json"
	"strconv"
	"time"

	"github.com/dgraph-io/ristretto"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"cpu-scheduler/config"
	"cpu-scheduler/internal/advisor"
	"cpu-scheduler/internal/core"
	"cpu-scheduler/internal/generator"
	"cpu-scheduler/internal/report"
	"cpu-scheduler/internal/requests"
	"cpu-scheduler/internal/responses"
	"cpu-scheduler/internal/schedulers"
)

type SchedulerHandler interface {
	FirstComeFirstServe(ctx *fiber.Ctx) error
	ShortestJobFirst(ctx *fiber.Ctx) error
	ShortestRemainingTimeFirst(ctx *fiber.Ctx) error
	RoundRobin(ctx *fiber.Ctx) error
	Priority(ctx *fiber.Ctx) error
	HighestResponseRatioNext(ctx *fiber.Ctx) error
	MultilevelFeedbackQueue(ctx *fiber.Ctx) error
	AllAlgorithms(ctx *fiber.Ctx) error
	Recommend(ctx *fiber.Ctx) error
	Report(ctx *fiber.Ctx) error
	Generate(ctx *fiber.Ctx) error
}

type SchedulerHandlerImpl struct {
	config   *config.SchedulerConfig
	cache    *ristretto.Cache
	uploader *report.S3Uploader
	now      func() time.Time
}

// NewSchedulerHandlerImpl wires the handlers. cache and uploader may be nil,
// which disables result memoisation and report upload respectively.
func NewSchedulerHandlerImpl(config *config.SchedulerConfig, cache *ristretto.Cache, uploader *report.S3Uploader) *SchedulerHandlerImpl {
	return &SchedulerHandlerImpl{config: config, cache: cache, uploader: uploader, now: time.Now}
}

func (s *SchedulerHandlerImpl) FirstComeFirstServe(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.FirstComeFirstServe)
}

func (s *SchedulerHandlerImpl) ShortestJobFirst(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.ShortestJobFirst)
}

func (s *SchedulerHandlerImpl) ShortestRemainingTimeFirst(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.ShortestRemainingTimeFirst)
}

func (s *SchedulerHandlerImpl) RoundRobin(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.RoundRobin)
}

func (s *SchedulerHandlerImpl) Priority(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.PriorityScheduling)
}

func (s *SchedulerHandlerImpl) HighestResponseRatioNext(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.HighestResponseRatioNext)
}

func (s *SchedulerHandlerImpl) MultilevelFeedbackQueue(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.MultilevelFeedbackQueue)
}

func (s *SchedulerHandlerImpl) AllAlgorithms(ctx *fiber.Ctx) error {
	request, err := parseRequest(ctx)
	if err != nil {
		return badRequest(ctx, "invalid request format")
	}
	comparisons, err := schedulers.CompareAll(request.Processes(), s.options(request))
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	response := responses.CompareResponse{
		RunId:   uuid.NewString(),
		Results: make([]responses.ScheduleResponse, len(comparisons)),
	}
	for i, c := range comparisons {
		response.Results[i] = schedulers.GenerateResponse(c.Algorithm, c.Result)
	}
	return ctx.JSON(response)
}

func (s *SchedulerHandlerImpl) Recommend(ctx *fiber.Ctx) error {
	request, err := parseRequest(ctx)
	if err != nil {
		return badRequest(ctx, "invalid request format")
	}
	processes := request.Processes()
	if err := core.Validate(processes); err != nil {
		return badRequest(ctx, err.Error())
	}
	recommendation := advisor.Recommend(processes)
	return ctx.JSON(responses.RecommendResponse{
		Algorithm:     string(recommendation.Algorithm),
		AlgorithmName: recommendation.Algorithm.Name(),
		Reason:        recommendation.Reason,
	})
}

func (s *SchedulerHandlerImpl) Report(ctx *fiber.Ctx) error {
	request, err := parseRequest(ctx)
	if err != nil {
		return badRequest(ctx, "invalid request format")
	}
	algorithm := schedulers.Algorithm(ctx.Params("algorithm")).Resolve()
	response, err := s.run(algorithm, request)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	var buf bytes.Buffer
	if err := report.WriteCSV(&buf, response); err != nil {
		logrus.Errorf("writing report: %v", err)
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "can not process request"})
	}
	fileName := report.FileName(string(algorithm), s.now())
	if s.uploader != nil {
		if err := s.uploader.Upload(ctx.Context(), fileName, bytes.NewReader(buf.Bytes())); err != nil {
			logrus.Errorf("%v", err)
			return ctx.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": "can not store report"})
		}
	}

	ctx.Set(fiber.HeaderContentType, "text/csv")
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="`+fileName+`"`)
	return ctx.Send(buf.Bytes())
}

func (s *SchedulerHandlerImpl) Generate(ctx *fiber.Ctx) error {
	seed := s.now().UnixNano()
	if raw := ctx.Query("seed"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return badRequest(ctx, "seed must be an integer")
		}
		seed = parsed
	}
	processes, err := generator.Generate(generator.NewRand(seed), s.config.Generator)
	if err != nil {
		return badRequest(ctx, err.Error())
	}
	return ctx.JSON(requests.ScheduleRequests{
		TimeQuantum: s.config.RoundRobinTimeQuantum,
		Jobs:        requests.FromProcesses(processes),
	})
}

func (s *SchedulerHandlerImpl) schedule(ctx *fiber.Ctx, algorithm schedulers.Algorithm) error {
	request, err := parseRequest(ctx)
	if err != nil {
		return badRequest(ctx, "invalid request format")
	}
	response, err := s.run(algorithm, request)
	if err != nil {
		return badRequest(ctx, err.Error())
	}
	response.RunId = uuid.NewString()
	return ctx.JSON(response)
}

// run schedules request, memoising the response: the engine is a pure
// function of algorithm, options and processes.
func (s *SchedulerHandlerImpl) run(algorithm schedulers.Algorithm, request *requests.ScheduleRequests) (responses.ScheduleResponse, error) {
	processes := request.Processes()
	opts := s.options(request)

	key := cacheKey(algorithm, opts, processes)
	if s.cache != nil && key != "" {
		if cached, ok := s.cache.Get(key); ok {
			logrus.Debugf("%s: cache hit", algorithm)
			return cached.(responses.ScheduleResponse), nil
		}
	}

	result, err := schedulers.Schedule(algorithm, processes, opts)
	if err != nil {
		return responses.ScheduleResponse{}, err
	}
	response := schedulers.GenerateResponse(algorithm, result)

	if s.cache != nil && key != "" {
		cost := int64(1 + len(response.Timeline) + len(response.Details))
		s.cache.SetWithTTL(key, response, cost, time.Duration(s.config.Cache.TTLSeconds)*time.Second)
	}
	return response, nil
}

func (s *SchedulerHandlerImpl) options(request *requests.ScheduleRequests) schedulers.Options {
	opts := schedulers.Options{
		TimeQuantum:    request.TimeQuantum,
		FeedbackLevels: request.FeedbackLevels,
	}
	if opts.TimeQuantum == 0 {
		opts.TimeQuantum = s.config.RoundRobinTimeQuantum
	}
	if opts.FeedbackLevels == nil {
		opts.FeedbackLevels = s.config.MultilevelFeedbackQueueLevelsTimeQuantum
	}
	return opts
}

func cacheKey(algorithm schedulers.Algorithm, opts schedulers.Options, processes []core.Process) string {
	key, err := json.Marshal(struct {
		Algorithm schedulers.Algorithm
		Options   schedulers.Options
		Processes []core.Process
	}{algorithm.Resolve(), opts, processes})
	if err != nil {
		return ""
	}
	return string(key)
}

func parseRequest(ctx *fiber.Ctx) (*requests.ScheduleRequests, error) {
	request := new(requests.ScheduleRequests)
	if err := ctx.BodyParser(request); err != nil {
		logrus.Debugf("parsing request body: %v", err)
		return nil, err
	}
	return request, nil
}

func badRequest(ctx *fiber.Ctx, message string) error {
	return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": message})
}
