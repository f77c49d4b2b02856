package ds

// IntervalCriteria - фильтры страницы интервалов.
// Нулевое значение поля означает отсутствие фильтра.
type IntervalCriteria struct {
	Title   string  `json:"title,omitempty" binding:"max=255"`
	ToneMin float64 `json:"tone_min,omitempty" binding:"gte=0"`
	ToneMax float64 `json:"tone_max,omitempty" binding:"gte=0"`
}

// IntervalSortColumns - поля, по которым разрешена сортировка, и их колонки
var IntervalSortColumns = map[string]string{
	"id":    "id",
	"title": "title",
	"tone":  "tone",
}

// CreateIntervalRequest - тело POST /intervals
type CreateIntervalRequest struct {
	Title       string  `json:"title" binding:"required,max=255"`
	Description string  `json:"description" binding:"required,max=255"`
	Tone        float64 `json:"tone" binding:"gte=0"`
}

func (r CreateIntervalRequest) Interval() Interval {
	return Interval{
		Title:       r.Title,
		Description: r.Description,
		Tone:        r.Tone,
	}
}
