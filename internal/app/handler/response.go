package handler

import (
	"Contract-Service/internal/app/contract"
	"Contract-Service/internal/app/middleware"
	"Contract-Service/internal/app/repository"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// ErrorCodeHeader дублирует прикладной код неуспешного ответа
const ErrorCodeHeader = "X-Error-Code"

type responder struct {
	policy contract.Policy
}

func newResponder(policy contract.Policy) responder {
	return responder{policy: policy}
}

// respond приводит body к конверту и пишет его с HTTP статусом по коду
func (r responder) respond(ctx *gin.Context, body any) {
	resp := contract.Wrap(r.policy, body)

	raw, err := resp.MarshalJSON()
	if err != nil {
		logrus.WithError(err).WithField("request_id", middleware.GetRequestID(ctx)).
			Error("Failed to encode response")
		_ = ctx.Error(err)
		resp = contract.Failure(r.policy, r.policy.ErrorCode, r.policy.ErrorMessage)
		raw, _ = resp.MarshalJSON()
	}

	if !resp.Success() {
		ctx.Header(ErrorCodeHeader, strconv.Itoa(resp.Code()))
	}
	ctx.Data(r.status(resp.Code()), "application/json; charset=utf-8", raw)
}

// fail отвечает конвертом ошибки
func (r responder) fail(ctx *gin.Context, err error) {
	_ = ctx.Error(err)

	var sortErr *repository.SortFieldError
	switch {
	case errors.Is(err, repository.ErrIntervalNotFound):
		r.respond(ctx, contract.Failure(r.policy, r.policy.NotFoundCode, r.policy.NotFoundMessage))
	case errors.As(err, &sortErr):
		r.respond(ctx, contract.Failure(r.policy, r.policy.BadRequestCode, sortErr.Error()))
	case errors.Is(err, repository.ErrInvalidPaging):
		r.respond(ctx, contract.Failure(r.policy, r.policy.BadRequestCode, r.policy.BadRequestMessage))
	default:
		resp := contract.FailureFrom(r.policy, err)
		if resp.Code() == r.policy.ErrorCode {
			logrus.WithError(err).WithField("request_id", middleware.GetRequestID(ctx)).
				Error("Request failed")
		}
		r.respond(ctx, resp)
	}
}

// bindFailed отвечает на ошибку разбора тела запроса
func (r responder) bindFailed(ctx *gin.Context, err error) {
	_ = ctx.Error(err)

	var violations contract.Violations
	if errors.As(err, &violations) {
		r.respond(ctx, contract.FailureFrom(r.policy, violations))
		return
	}
	r.respond(ctx, contract.Failure(r.policy, r.policy.BadRequestCode, r.policy.BadRequestMessage))
}

func (r responder) status(code int) int {
	switch code {
	case r.policy.OkCode:
		return http.StatusOK
	case r.policy.BadRequestCode, r.policy.PreconditionFailedCode:
		return http.StatusBadRequest
	case r.policy.UnauthorizedCode:
		return http.StatusUnauthorized
	case r.policy.NotFoundCode:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
