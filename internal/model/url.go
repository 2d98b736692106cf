package model

import "time"

// Code представляет короткий код, идентифицирующий сохранённый URL
type Code string

func (c Code) String() string {
	return string(c)
}

// URL представляет оригинальный (длинный) URL
type URL string

func (u URL) String() string {
	return string(u)
}

// URLMapping представляет одну запись сокращённого URL.
// После создания изменяется только счётчик Clicks, и только в сторону увеличения
type URLMapping struct {
	ID          int64
	OriginalURL URL
	ShortCode   Code
	CreatedAt   time.Time
	Clicks      int64
}

// URLEntry представляет запись URL с уникальным идентификатором для файлового хранения
type URLEntry struct {
	UUID        string    `json:"uuid"`
	ShortCode   string    `json:"short_code"`
	OriginalURL string    `json:"original_url"`
	CreatedAt   time.Time `json:"created_at"`
	Clicks      int64     `json:"clicks"`
}

// ShortenRequest представляет тело запроса POST /shorten
type ShortenRequest struct {
	URL string `json:"url"`
}

// ShortenResponse представляет тело ответа POST /shorten
type ShortenResponse struct {
	OriginalURL string `json:"original_url"`
	ShortURL    string `json:"short_url"`
}

// BatchShortenRequest представляет элемент запроса для батчевого сокращения URL
type BatchShortenRequest struct {
	CorrelationID string `json:"correlation_id"`
	OriginalURL   string `json:"original_url"`
}

// BatchShortenResponse представляет элемент ответа для батчевого сокращения URL
type BatchShortenResponse struct {
	CorrelationID string `json:"correlation_id"`
	ShortURL      string `json:"short_url"`
}

// StatsResponse представляет тело ответа GET /api/{code}/stats
type StatsResponse struct {
	ShortCode   string    `json:"short_code"`
	OriginalURL string    `json:"original_url"`
	CreatedAt   time.Time `json:"created_at"`
	Clicks      int64     `json:"clicks"`
}

// ErrorResponse представляет единый формат JSON ошибки
type ErrorResponse struct {
	Error string `json:"error"`
}
