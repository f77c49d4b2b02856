package handler

import (
	"Contract-Service/internal/app/contract"
	"Contract-Service/internal/app/ds"
	"Contract-Service/internal/app/middleware"
	"Contract-Service/internal/app/redis"
	"context"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

const intervalsResource = "intervals"

// IntervalStore - источник данных интервалов
type IntervalStore interface {
	Page(ctx context.Context, q contract.Query[ds.IntervalCriteria]) (contract.PageResult[ds.Interval], error)
	Get(ctx context.Context, id uint) (ds.Interval, error)
	Create(ctx context.Context, interval *ds.Interval) error
	Delete(ctx context.Context, id uint) (bool, error)
}

// PageCache - кеш готовых страниц
type PageCache interface {
	GetPage(ctx context.Context, key string, dst any) (bool, error)
	SetPage(ctx context.Context, key string, page any) error
	InvalidatePages(ctx context.Context, resource string) (int64, error)
}

type IntervalHandler struct {
	responder
	store IntervalStore
	cache PageCache
}

func NewIntervalHandler(store IntervalStore, cache PageCache, policy contract.Policy) *IntervalHandler {
	return &IntervalHandler{
		responder: newResponder(policy),
		store:     store,
		cache:     cache,
	}
}

// Page godoc
// @Summary Page of intervals
// @Description Flattened query: filter fields sit next to page, size, ascs and descs
// @Tags Intervals
// @Accept json
// @Produce json
// @Param request body IntervalPageQuery true "Flattened query"
// @Success 200 {object} IntervalPageResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /intervals/page [post]
func (h *IntervalHandler) Page(ctx *gin.Context) {
	q := contract.EmptyQuery[ds.IntervalCriteria]().Flatten()
	if err := ctx.ShouldBindJSON(&q); err != nil {
		h.bindFailed(ctx, err)
		return
	}

	page, err := h.page(ctx, q)
	if err != nil {
		h.fail(ctx, err)
		return
	}
	h.respond(ctx, contract.Ok(h.policy, page))
}

// Search godoc
// @Summary Search intervals
// @Description Nested query: filter fields are wrapped in "query"
// @Tags Intervals
// @Accept json
// @Produce json
// @Param request body IntervalSearchQuery true "Nested query"
// @Success 200 {object} IntervalPageResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /intervals/search [post]
func (h *IntervalHandler) Search(ctx *gin.Context) {
	q := contract.EmptyQuery[ds.IntervalCriteria]()
	if err := ctx.ShouldBindJSON(&q); err != nil {
		h.bindFailed(ctx, err)
		return
	}

	page, err := h.page(ctx, q)
	if err != nil {
		h.fail(ctx, err)
		return
	}
	h.respond(ctx, contract.Ok(h.policy, page))
}

// Titles godoc
// @Summary Page of interval titles
// @Tags Intervals
// @Accept json
// @Produce json
// @Param request body IntervalPageQuery true "Flattened query"
// @Success 200 {object} IntervalTitlesResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /intervals/titles [post]
func (h *IntervalHandler) Titles(ctx *gin.Context) {
	q := contract.EmptyQuery[ds.IntervalCriteria]().Flatten()
	if err := ctx.ShouldBindJSON(&q); err != nil {
		h.bindFailed(ctx, err)
		return
	}

	page, err := h.page(ctx, q)
	if err != nil {
		h.fail(ctx, err)
		return
	}
	h.respond(ctx, contract.Ok(h.policy, contract.MapPage(page, ds.Interval.TitleOnly)))
}

// ByTitle godoc
// @Summary Find interval by exact title
// @Description Looks through the first page of the title search
// @Tags Intervals
// @Produce json
// @Param title path string true "Interval title"
// @Success 200 {object} IntervalResponse
// @Failure 404 {object} ErrorResponse
// @Router /intervals/by-title/{title} [get]
func (h *IntervalHandler) ByTitle(ctx *gin.Context) {
	title := ctx.Param("title")

	page, err := h.page(ctx, contract.NewQuery(ds.IntervalCriteria{Title: title}))
	if err != nil {
		h.fail(ctx, err)
		return
	}

	interval, ok := page.FirstMatch(func(i ds.Interval) bool {
		return strings.EqualFold(i.Title, title)
	})
	if !ok {
		h.respond(ctx, contract.Failure(h.policy, h.policy.NotFoundCode, h.policy.NotFoundMessage))
		return
	}
	h.respond(ctx, interval)
}

// GetInterval godoc
// @Summary Get interval details
// @Tags Intervals
// @Produce json
// @Param id path int true "Interval ID"
// @Success 200 {object} IntervalResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /intervals/{id} [get]
func (h *IntervalHandler) GetInterval(ctx *gin.Context) {
	id, ok := h.intervalID(ctx)
	if !ok {
		return
	}

	interval, err := h.store.Get(ctx, id)
	if err != nil {
		h.fail(ctx, err)
		return
	}
	h.respond(ctx, interval)
}

// CreateInterval godoc
// @Summary Create interval
// @Tags Intervals
// @Accept json
// @Produce json
// @Param request body ds.CreateIntervalRequest true "Interval data"
// @Success 200 {object} IntervalResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /intervals [post]
func (h *IntervalHandler) CreateInterval(ctx *gin.Context) {
	var req ds.CreateIntervalRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		h.bindFailed(ctx, err)
		return
	}

	interval := req.Interval()
	if err := h.store.Create(ctx, &interval); err != nil {
		h.fail(ctx, err)
		return
	}
	h.invalidate(ctx)

	h.respond(ctx, interval)
}

// DeleteInterval godoc
// @Summary Delete interval
// @Description Soft delete, data.value reports whether the interval existed
// @Tags Intervals
// @Produce json
// @Param id path int true "Interval ID"
// @Success 200 {object} DeletedResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /intervals/{id} [delete]
func (h *IntervalHandler) DeleteInterval(ctx *gin.Context) {
	id, ok := h.intervalID(ctx)
	if !ok {
		return
	}

	deleted, err := h.store.Delete(ctx, id)
	if err != nil {
		h.fail(ctx, err)
		return
	}
	if deleted {
		h.invalidate(ctx)
	}

	h.respond(ctx, contract.OkValue(h.policy, deleted))
}

// page отдает страницу из кеша или из хранилища
func (h *IntervalHandler) page(ctx *gin.Context, q contract.Query[ds.IntervalCriteria]) (contract.PageResult[ds.Interval], error) {
	if h.cache == nil {
		return h.store.Page(ctx, q)
	}

	// ключ не зависит от раскладки входящего запроса
	key, err := redis.PageKey(intervalsResource, q.Nest())
	if err != nil {
		return contract.PageResult[ds.Interval]{}, err
	}

	var cached contract.PageResult[ds.Interval]
	hit, err := h.cache.GetPage(ctx, key, &cached)
	if err != nil {
		h.logCache(ctx, err, "Failed to read cached page")
	} else if hit {
		return cached, nil
	}

	page, err := h.store.Page(ctx, q)
	if err != nil {
		return contract.PageResult[ds.Interval]{}, err
	}
	if err := h.cache.SetPage(ctx, key, page); err != nil {
		h.logCache(ctx, err, "Failed to cache page")
	}
	return page, nil
}

func (h *IntervalHandler) invalidate(ctx *gin.Context) {
	if h.cache == nil {
		return
	}
	if _, err := h.cache.InvalidatePages(ctx, intervalsResource); err != nil {
		h.logCache(ctx, err, "Failed to invalidate cached pages")
	}
}

func (h *IntervalHandler) logCache(ctx *gin.Context, err error, msg string) {
	logrus.WithError(err).WithField("request_id", middleware.GetRequestID(ctx)).Warn(msg)
}

func (h *IntervalHandler) intervalID(ctx *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		h.respond(ctx, contract.Failure(h.policy, h.policy.BadRequestCode, "invalid interval id"))
		return 0, false
	}
	return uint(id), true
}
