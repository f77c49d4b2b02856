package handler

import "Contract-Service/internal/app/ds"

// Модели ниже описывают JSON для swagger, в коде не используются.

// IntervalPageQuery - плоский запрос страницы
type IntervalPageQuery struct {
	Title   string   `json:"title,omitempty"`
	ToneMin float64  `json:"tone_min,omitempty"`
	ToneMax float64  `json:"tone_max,omitempty"`
	Page    int64    `json:"page" example:"1"`
	Size    int64    `json:"size" example:"10"`
	Ascs    []string `json:"ascs"`
	Descs   []string `json:"descs"`
}

// IntervalSearchQuery - вложенный запрос страницы
type IntervalSearchQuery struct {
	Query ds.IntervalCriteria `json:"query"`
	Page  int64               `json:"page" example:"1"`
	Size  int64               `json:"size" example:"10"`
	Ascs  []string            `json:"ascs"`
	Descs []string            `json:"descs"`
}

type IntervalPage struct {
	Page    int64         `json:"page"`
	Size    int64         `json:"size"`
	Total   int64         `json:"total"`
	Pages   int64         `json:"pages"`
	HasNext bool          `json:"hasNext"`
	Rows    []ds.Interval `json:"rows"`
}

type IntervalPageResponse struct {
	Success bool         `json:"success"`
	Code    int          `json:"code" example:"20000"`
	Message string       `json:"message" example:"ok"`
	Data    IntervalPage `json:"data"`
}

type IntervalTitlesPage struct {
	Page    int64              `json:"page"`
	Size    int64              `json:"size"`
	Total   int64              `json:"total"`
	Pages   int64              `json:"pages"`
	HasNext bool               `json:"hasNext"`
	Rows    []ds.IntervalTitle `json:"rows"`
}

type IntervalTitlesResponse struct {
	Success bool               `json:"success"`
	Code    int                `json:"code" example:"20000"`
	Message string             `json:"message" example:"ok"`
	Data    IntervalTitlesPage `json:"data"`
}

type IntervalResponse struct {
	Success bool        `json:"success"`
	Code    int         `json:"code" example:"20000"`
	Message string      `json:"message" example:"ok"`
	Data    ds.Interval `json:"data"`
}

type DeletedResponse struct {
	Success bool   `json:"success"`
	Code    int    `json:"code" example:"20000"`
	Message string `json:"message" example:"ok"`
	Data    struct {
		Value bool `json:"value"`
	} `json:"data"`
}

type ErrorResponse struct {
	Success bool     `json:"success" example:"false"`
	Code    int      `json:"code" example:"40000"`
	Message string   `json:"message"`
	Data    struct{} `json:"data"`
}
